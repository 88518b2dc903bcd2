package hooks

import "github.com/vk/stepflow/internal/skip"

// StartFunc announces the title of the step or group about to be checked.
type StartFunc func(title string)

// SkipFunc turns a check command's exit status into a skip decision.
type SkipFunc func(checkStatus int) skip.Decision

// FailFunc reports a fatal failure and returns the terminal error.
type FailFunc func(args ...string) error

// EscalateFunc escalates a nonzero exit status to a fatal failure and
// returns nil otherwise.
type EscalateFunc func(status int, args ...string) error

// Set is the hook registry for one procedure run. All fields are
// optional; ApplyDefaults fills the ones the caller left unset. A field
// bound before ApplyDefaults is never rebound by this package.
type Set struct {
	StartingStep           StartFunc
	SkipStepIfAlreadyDone  SkipFunc
	StartingGroup          StartFunc
	SkipGroupIfUnnecessary SkipFunc
	ReportFailed           FailFunc
	PrevCmdFailed          EscalateFunc

	// Deprecated: aliases kept for callers written against the old hook
	// names. They share the step-level defaults. New code should use the
	// step-named hooks above.
	StartingDependents    StartFunc
	StartingChecks        StartFunc
	SkipRestIfAlreadyDone SkipFunc
}

// DefaultSource supplies the default implementation for every hook.
// *skip.Engine satisfies it.
type DefaultSource interface {
	StartingStep(title string)
	SkipStepIfAlreadyDone(checkStatus int) skip.Decision
	StartingGroup(title string)
	SkipGroupIfUnnecessary(checkStatus int) skip.Decision
	ReportFailed(args ...string) error
	PrevCmdFailed(status int, args ...string) error
}

// ApplyDefaults binds every unset hook to the implementation from d.
// Hooks bound by the caller, or by an earlier ApplyDefaults, keep their
// binding, so re-applying at any depth of the call chain is a no-op for
// bound hooks. It never fails.
func (s *Set) ApplyDefaults(d DefaultSource) {
	if s.StartingStep == nil {
		s.StartingStep = d.StartingStep
	}
	if s.SkipStepIfAlreadyDone == nil {
		s.SkipStepIfAlreadyDone = d.SkipStepIfAlreadyDone
	}
	if s.StartingGroup == nil {
		s.StartingGroup = d.StartingGroup
	}
	if s.SkipGroupIfUnnecessary == nil {
		s.SkipGroupIfUnnecessary = d.SkipGroupIfUnnecessary
	}
	if s.ReportFailed == nil {
		s.ReportFailed = d.ReportFailed
	}
	if s.PrevCmdFailed == nil {
		s.PrevCmdFailed = d.PrevCmdFailed
	}

	// The deprecated aliases take the step-level defaults.
	if s.StartingDependents == nil {
		s.StartingDependents = d.StartingStep
	}
	if s.StartingChecks == nil {
		s.StartingChecks = d.StartingStep
	}
	if s.SkipRestIfAlreadyDone == nil {
		s.SkipRestIfAlreadyDone = d.SkipStepIfAlreadyDone
	}
}
