package skip

// Decision is the outcome of a skip check.
type Decision int

const (
	// Continue means the check command reported the work as still pending;
	// execution falls through into the step or group body.
	Continue Decision = iota

	// Skip means the check command reported the work as already done; the
	// runner must abort the current step or group scope without running
	// its body.
	Skip
)

// String returns the decision name for logs.
func (d Decision) String() string {
	switch d {
	case Continue:
		return "continue"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}
