package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/vk/stepflow/internal/ctxlog"
	"github.com/vk/stepflow/internal/hooks"
	"github.com/vk/stepflow/internal/procfile"
	"github.com/vk/stepflow/internal/scriptenv"
	"github.com/vk/stepflow/internal/skip"
)

// App encapsulates a configured procedure run: the logger, the resolved
// environment contract, the loaded procedures, and the hook set.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	env    *scriptenv.Context
	hooks  *hooks.Set
	procs  []*procfile.Procedure

	httpServer *http.Server
	healthAddr string
}

// NewApp is the constructor for the main application. It resolves the
// environment contract, assembles the hook set (filling only the slots
// the caller left unset), and loads every procedure. Startup failures
// panic; the entrypoint recovers and converts them into a clean exit.
func NewApp(outW, errW io.Writer, cfg *Config, overrides *hooks.Set) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Assemble the hook set before anything can fail, so the failure
	// path itself goes through the (possibly overridden) failure hook.
	engine := skip.NewEngine(outW, errW)
	set := overrides
	if set == nil {
		set = &hooks.Set{}
	}
	set.ApplyDefaults(engine)
	logger.Debug("Hook set assembled, defaults injected where unset.")

	env, err := scriptenv.Load(cfg.ProcedurePath, cfg.DataDir)
	if err != nil {
		panic(fatal(set, "resolving script environment:", err.Error()))
	}
	if err := env.Export(); err != nil {
		panic(fatal(set, "exporting script environment:", err.Error()))
	}
	logger.Debug("Script environment exported.",
		"orgcodedir", env.OrgCodeDir, "linkcodedir", env.LinkCodeDir, "datadir", env.DataDir)

	if !env.DataDirConfigured() {
		logger.Warn("DATADIR is not configured; downstream consumers will see the sentinel.", "datadir", env.DataDir)
	}

	// Resolve the procedure path before pinning the working directory;
	// everything after this point must use absolute paths.
	procPath, err := filepath.Abs(cfg.ProcedurePath)
	if err != nil {
		panic(fatal(set, "resolving procedure path:", err.Error()))
	}
	if err := scriptenv.PinWorkingDir(); err != nil {
		logger.Warn("Could not pin the working directory.", "error", err)
	}

	loader := procfile.NewLoader()
	procs, err := loader.Load(ctx, procfile.EvalContext(env), procPath)
	if err != nil {
		panic(fmt.Errorf("failed to load procedures: %w", err))
	}
	logger.Debug("Procedures loaded.", "count", len(procs))

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		env:    env,
		hooks:  set,
		procs:  procs,
	}
}

// fatal routes a startup failure through the (possibly overridden)
// failure hook. An override may swallow the error and return nil, but
// the panic value must stay a terminal *skip.FailError so the entrypoint
// still maps it to the fatal exit code.
func fatal(set *hooks.Set, args ...string) error {
	if err := set.ReportFailed(args...); err != nil {
		return err
	}
	return &skip.FailError{Context: args}
}

// Hooks returns the application's hook set. This is primarily for testing.
func (a *App) Hooks() *hooks.Set {
	return a.hooks
}

// Procedures returns the loaded procedures. This is primarily for testing.
func (a *App) Procedures() []*procfile.Procedure {
	return a.procs
}
