package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/plughost/internal/compiler"
	"github.com/vk/plughost/internal/config"
	"github.com/vk/plughost/internal/ctxlog"
	"github.com/vk/plughost/internal/invoke"
)

// App encapsulates the host's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	errW    io.Writer
	logger  *slog.Logger
	cfg     *config.Model
	driver  *compiler.Driver
	invoker *invoke.Invoker
}

// NewApp is the constructor for the host. The optional configuration file
// is loaded first; command-line settings override it.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader) *App {
	model := config.Default()
	if appConfig.ConfigPath != "" {
		loaded, err := loader.Load(context.Background(), appConfig.ConfigPath)
		if err != nil {
			// A failure to load config is a fatal startup error.
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		model = loaded
	}
	applyOverrides(model, appConfig)

	logger := newLogger(model.LogLevel, model.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		errW:    errW,
		logger:  logger,
		cfg:     model,
		driver:  compiler.NewDriver(model.ToolchainPath),
		invoker: invoke.New(invoke.Samples{Str: model.Samples.Str, U64: model.Samples.U64}),
	}
}

// Config returns the merged host configuration. This is primarily for testing.
func (a *App) Config() *config.Model {
	return a.cfg
}

// applyOverrides lays the non-empty command-line settings over the file model.
func applyOverrides(model *config.Model, cfg *Config) {
	if cfg.PluginsPath != "" {
		model.PluginsPath = cfg.PluginsPath
	}
	if cfg.Toolchain != "" {
		model.ToolchainPath = cfg.Toolchain
	}
	if cfg.LogFormat != "" {
		model.LogFormat = cfg.LogFormat
	}
	if cfg.LogLevel != "" {
		model.LogLevel = cfg.LogLevel
	}
}

// ctx returns a context carrying the app's logger.
func (a *App) ctx(parent context.Context) context.Context {
	return ctxlog.WithLogger(parent, a.logger)
}
