package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/vk/stepflow/internal/ctxlog"
	"github.com/vk/stepflow/internal/hooks"
	"github.com/vk/stepflow/internal/runner"
)

// Run executes every loaded procedure in order. A skipped step or group
// is not an error; the first fatal failure aborts the run.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	ctx = hooks.WithSet(ctx, a.hooks)
	logger.Debug("App.Run method started.")

	if cfg.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx, cfg.HealthcheckPort)
		defer a.stopHealthcheckServer(ctx)
	}

	shell := &runner.LocalShell{OutW: a.outW, ErrW: a.errW}
	run := runner.New(a.hooks, shell)

	for _, proc := range a.procs {
		if err := run.Run(ctx, proc); err != nil {
			return err
		}
	}

	logger.Debug("App.Run method finished.")
	return nil
}
