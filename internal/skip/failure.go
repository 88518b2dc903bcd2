package skip

import (
	"fmt"
	"strings"
)

// FailExitCode is the process exit code for a fatal procedure failure.
const FailExitCode = 255

// FailError is a fatal, non-recoverable procedure failure. The CLI maps
// it to FailExitCode.
type FailError struct {
	// Context holds the caller-supplied context strings, joined with
	// spaces in the diagnostic line.
	Context []string
}

// Error implements the error interface. The wording is part of the
// console protocol.
func (e *FailError) Error() string {
	return fmt.Sprintf("Script failed...exiting. (%s)", strings.Join(e.Context, " "))
}

// ReportFailed prints the fatal diagnostic to the error writer and returns
// the terminal *FailError for the caller to propagate. There is no
// recovery path from it.
func (e *Engine) ReportFailed(args ...string) error {
	ferr := &FailError{Context: args}
	fmt.Fprintln(e.errW, ferr.Error())
	return ferr
}

// PrevCmdFailed escalates a failed command to a fatal failure. A zero
// status is a no-op and returns nil.
func (e *Engine) PrevCmdFailed(status int, args ...string) error {
	if status == 0 {
		return nil
	}
	return e.ReportFailed(args...)
}
