// Package runner walks a procedure and drives the skip/do protocol
// through the hook set. Check commands and step bodies run in their own
// child processes, so a skipped or failing body never takes down the
// invoking process.
package runner
