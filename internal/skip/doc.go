// Package skip implements the skip/do decision protocol for resumable
// procedures. A step or group announces a title, runs its read-only check
// command, and feeds the check's exit status to the engine; the engine
// prints the operator-facing protocol line and answers Skip or Continue.
package skip
