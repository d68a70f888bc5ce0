package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/read2env/internal/bytesource"
	"github.com/specialistvlad/read2env/internal/ctxlog"
	"github.com/specialistvlad/read2env/internal/read2env"
	"github.com/specialistvlad/read2env/internal/registry"
	"github.com/specialistvlad/read2env/internal/varstore"
	"github.com/zclconf/go-cty/cty"
)

// App encapsulates the host's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	vars     *varstore.Store
	opener   read2env.Opener
	modules  []registry.Module
}

// New builds an App and registers modules with its registry, or the core
// modules when none are given. Command output goes to outW and logs to logW.
// Call Close to unregister the modules again.
func New(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("session", uuid.NewString())
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules()
	}
	reg := registry.New()
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All modules registered.", "count", len(modules), "commands", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		vars:     varstore.New(),
		opener:   bytesource.OS{},
		modules:  modules,
	}
}

// Close unregisters every module in reverse registration order.
func (a *App) Close() {
	for i := len(a.modules) - 1; i >= 0; i-- {
		a.modules[i].Unregister(a.registry)
	}
	a.logger.Debug("All modules unregistered.", "remaining", len(a.registry.Names()))
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Vars returns the application's variable store.
func (a *App) Vars() *varstore.Store {
	return a.vars
}

// Exec binds raw against the named command's options and runs it.
func (a *App) Exec(ctx context.Context, command string, raw map[string]cty.Value) error {
	cmd, ok := a.registry.Lookup(command)
	if !ok {
		return fmt.Errorf("%w '%s'", registry.ErrUnknownCommand, command)
	}
	args, err := cmd.Bind(raw)
	if err != nil {
		return err
	}

	env := &registry.Env{
		Vars:        a.vars,
		Out:         a.outW,
		Opener:      a.opener,
		MaxFileSize: a.config.MaxFileSize,
	}
	ctx = ctxlog.WithLogger(ctx, a.logger.With("command", command))
	if err := cmd.Run(ctx, env, args); err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}

// EvalContext exposes the current variables to script expressions.
func (a *App) EvalContext(ctx context.Context) *hcl.EvalContext {
	return a.vars.EvalContext(ctx)
}
