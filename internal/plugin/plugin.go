// Package plugin ties the per-plugin pipeline together: read the source
// file, parse the header, compile through the external toolchain, and own
// the loaded library for the invocation's lifetime.
package plugin

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/plughost/internal/compiler"
	"github.com/vk/plughost/internal/ctxlog"
	"github.com/vk/plughost/internal/dylib"
	"github.com/vk/plughost/internal/invoke"
	"github.com/vk/plughost/internal/signature"
)

// Plugin is one loaded plugin: its declared signature and the library
// session it exclusively owns until Close.
type Plugin struct {
	sig     *signature.Signature
	session *dylib.Session
}

// Load reads, compiles and maps the plugin at path. The first line of the
// file is the header; everything after it is passed to the toolchain
// verbatim. The scratch build directory is released before Load returns;
// the loaded library does not depend on it surviving.
func Load(ctx context.Context, driver *compiler.Driver, path string) (*Plugin, error) {
	logger := ctxlog.FromContext(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin source %s: %w", path, err)
	}

	header, body, found := strings.Cut(string(raw), "\n")
	if !found {
		// A header with no body line cannot be a plugin.
		return nil, &signature.ParseError{Header: header}
	}

	sig, err := signature.ParseHeader(header)
	if err != nil {
		return nil, err
	}
	logger.Debug("Parsed plugin header.", "name", sig.Name, "arity", sig.Arity(), "return", sig.Return.String())

	art, err := driver.Compile(ctx, sig, body)
	if err != nil {
		return nil, err
	}
	defer art.Close()

	session, err := dylib.Open(art.LibraryPath)
	if err != nil {
		return nil, err
	}

	return &Plugin{sig: sig, session: session}, nil
}

// Name returns the plugin's declared exported name.
func (p *Plugin) Name() string {
	return p.sig.Name
}

// Signature returns the plugin's declared interface.
func (p *Plugin) Signature() *signature.Signature {
	return p.sig
}

// Invoke resolves the entry symbol and performs one type-directed call.
func (p *Plugin) Invoke(ctx context.Context, inv *invoke.Invoker) (string, error) {
	sym, err := p.session.Entry()
	if err != nil {
		return "", err
	}
	return inv.Call(ctx, p.sig, sym)
}

// Close releases the plugin's library mapping.
func (p *Plugin) Close() error {
	return p.session.Close()
}
