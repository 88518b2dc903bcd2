package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/stepflow/internal/app"
	"github.com/vk/stepflow/internal/cli"
	"github.com/vk/stepflow/internal/skip"
)

// main is the entrypoint for the stepflow application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		var failErr *skip.FailError
		if errors.As(err, &failErr) {
			// The diagnostic line was already printed by the failure hook.
			os.Exit(skip.FailExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Intentional skips are not errors, so a fully skipped procedure
// exits 0.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors; recover here so the
	// caller sees a clean error and exit code instead of a stack trace.
	defer func() {
		if r := recover(); r != nil {
			if rErr, ok := r.(error); ok {
				var failErr *skip.FailError
				if errors.As(rErr, &failErr) {
					err = rErr
					return
				}
			}
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	stepflowApp := app.NewApp(outW, os.Stderr, appConfig, nil)

	return stepflowApp.Run(context.Background(), appConfig)
}
