// Package hooks defines the overridable hook set that procedure runners
// invoke around steps and groups.
//
// Every hook is an optional callable slot on a Set. ApplyDefaults fills
// only the unset slots, so an enclosing caller that bound a hook first
// keeps its binding for the whole call chain. The Set travels down the
// chain on a context.Context, which replaces environment-variable
// inheritance while preserving "an ancestor can override behavior for all
// descendants".
package hooks
