package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/read2env/internal/ctxlog"
	"github.com/specialistvlad/read2env/internal/script"
	"github.com/specialistvlad/read2env/modules/read2env"
)

// Run imports the env file, performs the direct invocation, runs scripts and
// exports the variables, in that order. The first failure stops the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	cfg := a.config

	if cfg.EnvFile != "" {
		n, err := a.vars.ImportDotenv(ctx, cfg.EnvFile)
		if err != nil {
			return err
		}
		a.logger.Debug("Env file imported.", "path", cfg.EnvFile, "count", n)
	}

	if cfg.Invoke != nil {
		if err := a.Exec(ctx, read2env.CommandName, cfg.Invoke); err != nil {
			return err
		}
	}

	if cfg.ScriptPath != "" {
		if err := script.RunPath(ctx, cfg.ScriptPath, a); err != nil {
			return fmt.Errorf("script failed: %w", err)
		}
	}

	switch cfg.ExportPath {
	case "":
	case "-":
		if err := a.vars.WriteDotenv(ctx, a.outW); err != nil {
			return err
		}
	default:
		if err := a.vars.ExportDotenv(ctx, cfg.ExportPath); err != nil {
			return err
		}
		a.logger.Info("Variables exported.", "path", cfg.ExportPath)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
