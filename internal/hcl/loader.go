package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/plughost/internal/config"
	"github.com/vk/plughost/internal/ctxlog"
)

// Loader reads a plughost.hcl host-configuration file.
type Loader struct{}

// NewLoader returns a concrete HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "toolchain"},
		{Name: "plugins"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "log"},
		{Type: "samples"},
	},
}

var logSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "level"},
		{Name: "format"},
	},
}

var samplesSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "str"},
		{Name: "u64"},
	},
}

// Load implements config.Loader. Attributes absent from the file keep their
// built-in defaults.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.Default()

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid config file %s: %w", path, diags)
	}

	if err := decodeInto(content.Attributes, "toolchain", cty.String, &model.ToolchainPath); err != nil {
		return nil, err
	}
	if err := decodeInto(content.Attributes, "plugins", cty.String, &model.PluginsPath); err != nil {
		return nil, err
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "log":
			blockContent, diags := block.Body.Content(logSchema)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid log block in %s: %w", path, diags)
			}
			if err := decodeInto(blockContent.Attributes, "level", cty.String, &model.LogLevel); err != nil {
				return nil, err
			}
			if err := decodeInto(blockContent.Attributes, "format", cty.String, &model.LogFormat); err != nil {
				return nil, err
			}
		case "samples":
			blockContent, diags := block.Body.Content(samplesSchema)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid samples block in %s: %w", path, diags)
			}
			if err := decodeInto(blockContent.Attributes, "str", cty.String, &model.Samples.Str); err != nil {
				return nil, err
			}
			if err := decodeInto(blockContent.Attributes, "u64", cty.Number, &model.Samples.U64); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("Host configuration loaded.", "path", path)
	return model, nil
}

// decodeInto evaluates one attribute, converts it to the wanted cty type,
// and binds it into the Go destination. A missing attribute is not an error.
func decodeInto(attrs hcl.Attributes, name string, want cty.Type, dst any) error {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("config attribute %q: %w", name, diags)
	}

	val, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("config attribute %q: %w", name, err)
	}

	if err := gocty.FromCtyValue(val, dst); err != nil {
		return fmt.Errorf("config attribute %q: %w", name, err)
	}
	return nil
}
