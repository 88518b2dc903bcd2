package skip

import (
	"fmt"
	"io"
)

// Engine drives the step and group skip decisions for a single run. It
// holds the title announced by the most recent starting hook; the next
// decision consumes and clears that title.
//
// The step and group state machines are structurally identical and differ
// only in the label printed, so both share one implementation.
type Engine struct {
	outW  io.Writer
	errW  io.Writer
	title string
}

// NewEngine returns an Engine printing the skip/do protocol to outW and
// fatal diagnostics to errW.
func NewEngine(outW, errW io.Writer) *Engine {
	return &Engine{outW: outW, errW: errW}
}

// StartingStep records the title for the next step decision. An empty
// title is ignored.
func (e *Engine) StartingStep(title string) {
	if title != "" {
		e.title = title
	}
}

// StartingGroup records the title for the next group decision. An empty
// title is ignored.
func (e *Engine) StartingGroup(title string) {
	if title != "" {
		e.title = title
	}
}

// SkipStepIfAlreadyDone inspects the exit status of the step's check
// command. Status 0 means the step's work was already performed, so the
// step body must be skipped.
func (e *Engine) SkipStepIfAlreadyDone(checkStatus int) Decision {
	return e.decide(checkStatus, "step", "STEP")
}

// SkipGroupIfUnnecessary inspects the exit status of the group's check
// command. Status 0 means the whole group is unnecessary.
func (e *Engine) SkipGroupIfUnnecessary(checkStatus int) Decision {
	return e.decide(checkStatus, "group", "GROUP")
}

// decide is the shared state machine. The printed literals are a stable
// operator-facing protocol; do not reword them.
func (e *Engine) decide(checkStatus int, label, doingLabel string) Decision {
	title := e.title
	e.title = ""

	if checkStatus == 0 {
		fmt.Fprintf(e.outW, "** Skipping %s: %s\n", label, title)
		return Skip
	}
	fmt.Fprintf(e.outW, "\n** DOING %s: %s\n", doingLabel, title)
	return Continue
}
