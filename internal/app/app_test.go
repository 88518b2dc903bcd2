package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/stepflow/internal/hooks"
	"github.com/vk/stepflow/internal/skip"
)

func writeProcedure(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewApp_LoadsProceduresAndInjectsDefaults(t *testing.T) {
	path := writeProcedure(t, `procedure "p" {
  step "a" {
    run = "true"
  }
}`)
	cfg, err := NewConfig(Config{ProcedurePath: path, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, nil)

	require.Len(t, a.Procedures(), 1)
	assert.Equal(t, "p", a.Procedures()[0].Name)
	assert.NotNil(t, a.Hooks().StartingStep)
	assert.NotNil(t, a.Hooks().SkipRestIfAlreadyDone)
}

func TestNewApp_CallerHookOverrideSurvives(t *testing.T) {
	path := writeProcedure(t, `procedure "p" {
  step "a" {
    check = "true"
  }
}`)
	cfg, err := NewConfig(Config{ProcedurePath: path, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, err)

	var titles []string
	overrides := &hooks.Set{
		StartingStep: func(title string) { titles = append(titles, title) },
	}

	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, overrides)
	require.NoError(t, a.Run(context.Background(), cfg))

	assert.Equal(t, []string{"a"}, titles, "the caller's hook must be used instead of the default")
}

func TestNewApp_BadProcedurePathPanicsWithFailError(t *testing.T) {
	cfg, err := NewConfig(Config{ProcedurePath: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "error"})
	require.NoError(t, err)

	errW := &bytes.Buffer{}
	defer func() {
		r := recover()
		require.NotNil(t, r, "NewApp must panic on an unresolvable path")
		assert.Contains(t, errW.String(), "Script failed...exiting.")
	}()

	NewApp(&bytes.Buffer{}, errW, cfg, nil)
}

func TestNewApp_NilReturningFailureOverrideStaysFatal(t *testing.T) {
	cfg, err := NewConfig(Config{ProcedurePath: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "error"})
	require.NoError(t, err)

	// An override that swallows the error entirely.
	overrides := &hooks.Set{
		ReportFailed: func(...string) error { return nil },
	}

	defer func() {
		r := recover()
		require.NotNil(t, r, "NewApp must still panic when the override returns nil")
		rErr, ok := r.(error)
		require.True(t, ok, "the panic value must be an error, not nil")
		var failErr *skip.FailError
		assert.True(t, errors.As(rErr, &failErr), "the panic value must keep the fatal exit mapping")
	}()

	NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, overrides)
}

func TestNewConfig_RequiresProcedurePath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)
}
