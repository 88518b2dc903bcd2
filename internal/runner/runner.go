package runner

import (
	"context"
	"errors"

	"github.com/vk/stepflow/internal/ctxlog"
	"github.com/vk/stepflow/internal/hooks"
	"github.com/vk/stepflow/internal/procfile"
	"github.com/vk/stepflow/internal/skip"
)

// ErrNoHookSet is returned when neither the Runner nor the context
// carries a hook set.
var ErrNoHookSet = errors.New("runner: no hook set bound")

// Runner executes procedures against a hook set and a shell backend.
type Runner struct {
	hooks *hooks.Set
	shell Shell
}

// New creates a Runner. A nil hook set makes Run fall back to the set
// carried by the context, so an ancestor's overrides apply to every
// procedure run beneath it.
func New(set *hooks.Set, shell Shell) *Runner {
	return &Runner{hooks: set, shell: shell}
}

// Run executes every item of the procedure in order. A fatal failure is
// returned as *skip.FailError; a fully skipped procedure returns nil.
func (r *Runner) Run(ctx context.Context, proc *procfile.Procedure) error {
	set := r.set(ctx)
	if set == nil {
		return ErrNoHookSet
	}

	logger := ctxlog.FromContext(ctx).With("procedure", proc.Name)
	logger.Info("▶️ Starting procedure", "shell", r.shell.Name())

	for _, item := range proc.Items {
		switch {
		case item.Group != nil:
			if err := r.runGroup(ctx, set, item.Group); err != nil {
				return err
			}
		case item.Step != nil:
			if err := r.runStep(ctx, set, item.Step); err != nil {
				return err
			}
		}
	}

	logger.Info("✅ Finished procedure")
	return nil
}

func (r *Runner) runGroup(ctx context.Context, set *hooks.Set, group *procfile.Group) error {
	logger := ctxlog.FromContext(ctx).With("group", group.Name)

	set.StartingGroup(group.Title)
	status, err := r.check(ctx, group.Check)
	if err != nil {
		return set.ReportFailed("group", group.Name, err.Error())
	}
	if set.SkipGroupIfUnnecessary(status) == skip.Skip {
		logger.Debug("Group already satisfied, skipping members.", "steps", len(group.Steps))
		return nil
	}

	for _, step := range group.Steps {
		if err := r.runStep(ctx, set, step); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, set *hooks.Set, step *procfile.Step) error {
	logger := ctxlog.FromContext(ctx).With("step", step.Name)

	set.StartingStep(step.Title)
	status, err := r.check(ctx, step.Check)
	if err != nil {
		return set.ReportFailed("step", step.Name, err.Error())
	}
	if set.SkipStepIfAlreadyDone(status) == skip.Skip {
		return nil
	}
	if step.Run == "" {
		logger.Debug("Step has no body.")
		return nil
	}

	bodyStatus, err := r.shell.Run(ctx, step.Run)
	if err != nil {
		return set.ReportFailed("step", step.Name, err.Error())
	}
	return set.PrevCmdFailed(bodyStatus, "step", step.Name)
}

// check runs the read-only check command. No check command means the
// work is always pending, so the body runs.
func (r *Runner) check(ctx context.Context, command string) (int, error) {
	if command == "" {
		return 1, nil
	}
	return r.shell.Run(ctx, command)
}

func (r *Runner) set(ctx context.Context) *hooks.Set {
	if r.hooks != nil {
		return r.hooks
	}
	return hooks.FromContext(ctx)
}
