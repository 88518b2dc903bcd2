package hooks

import "context"

// key is an unexported type to prevent collisions with context keys from
// other packages.
type key struct{}

var setKey = key{}

// WithSet returns a new context carrying s. Descendant call chains see
// the ancestor's bindings.
func WithSet(ctx context.Context, s *Set) context.Context {
	return context.WithValue(ctx, setKey, s)
}

// FromContext returns the Set carried by ctx, or nil when no ancestor
// installed one.
func FromContext(ctx context.Context) *Set {
	if s, ok := ctx.Value(setKey).(*Set); ok {
		return s
	}
	return nil
}
