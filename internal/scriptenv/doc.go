// Package scriptenv establishes the directory contract a procedure run
// publishes for itself and every child process it spawns: where the
// procedure's code really lives, where it was invoked from, and where its
// data directory is.
package scriptenv
