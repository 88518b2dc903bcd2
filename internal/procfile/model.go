package procfile

// Procedure is the format-agnostic representation of a `procedure` block:
// an ordered sequence of groups and standalone steps.
type Procedure struct {
	Name  string
	Items []Item
}

// Item is a single member of a procedure, in file order. Exactly one of
// Group and Step is set.
type Item struct {
	Group *Group
	Step  *Step
}

// Group is a skippable container of steps. An empty Check means the
// group always runs.
type Group struct {
	Name  string
	Title string
	Check string
	Steps []*Step
}

// Step is the unit of idempotent work. Check is the read-only command
// whose exit status drives the skip decision; Run is the step body,
// executed in its own child process.
type Step struct {
	Name  string
	Title string
	Check string
	Run   string
}
