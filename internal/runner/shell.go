package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Shell abstracts command execution so tests can script exit statuses.
type Shell interface {
	// Run executes command and returns its exit status. A non-nil error
	// means the command could not be run at all, which is distinct from
	// the command running and exiting nonzero.
	Run(ctx context.Context, command string) (int, error)

	// Name returns the backend identifier (e.g. "local").
	Name() string
}

// LocalShell runs commands through /bin/sh in a child process. The
// process inherits the exported scriptenv contract from the environment.
type LocalShell struct {
	OutW io.Writer
	ErrW io.Writer

	// Env holds extra KEY=VALUE entries appended to the inherited
	// environment.
	Env []string
}

// Run implements Shell.
func (s *LocalShell) Run(ctx context.Context, command string) (int, error) {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	cmd.Stdout = s.OutW
	cmd.Stderr = s.ErrW
	cmd.Env = append(os.Environ(), s.Env...)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Name implements Shell.
func (s *LocalShell) Name() string {
	return "local"
}
