package app

import (
	"context"
	"fmt"

	"github.com/vk/plughost/internal/fsutil"
	"github.com/vk/plughost/internal/plugin"
)

// Run executes the host's plugin loop: discover source files, then compile,
// load, invoke and release each plugin strictly one at a time, in discovery
// order. Every per-plugin failure is reported and the loop continues; Run
// returns an error when discovery itself fails or to signal that at least
// one plugin failed.
func (a *App) Run(ctx context.Context) error {
	ctx = a.ctx(ctx)
	a.logger.Debug("App.Run method started.")

	paths, err := fsutil.FindPluginFiles(a.cfg.PluginsPath)
	if err != nil {
		return fmt.Errorf("failed to discover plugins in %s: %w", a.cfg.PluginsPath, err)
	}
	if len(paths) == 0 {
		a.logger.Warn("No plugin files found, nothing to do.", "path", a.cfg.PluginsPath)
		return nil
	}
	a.logger.Debug("Plugin discovery complete.", "count", len(paths))

	failed := 0
	for _, path := range paths {
		if err := a.runOne(ctx, path); err != nil {
			failed++
			fmt.Fprintf(a.errW, "plugin %s failed: %v\n", path, err)
			a.logger.Error("Plugin failed.", "path", path, "error", err)
		}
		fmt.Fprintln(a.outW)
	}

	a.logger.Debug("App.Run method finished.", "plugins", len(paths), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d plugins failed", failed, len(paths))
	}
	return nil
}

// runOne carries a single plugin from source file to rendered result. All
// per-plugin error kinds (parse, compile, load, unsupported arity, and
// runtime faults) surface here and are recovered by the caller.
func (a *App) runOne(ctx context.Context, path string) error {
	fmt.Fprintf(a.outW, "loading plugin from %s\n", path)
	p, err := plugin.Load(ctx, a.driver, path)
	if err != nil {
		return err
	}
	defer p.Close()

	fmt.Fprintf(a.outW, "invoking plugin: %s\n", p.Name())
	result, err := p.Invoke(ctx, a.invoker)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, ">>> %s\n", result)
	return nil
}
