package domain

import (
	"context"
	"io"
)

// ActionCall carries everything a handler needs for one invocation.
type ActionCall struct {
	// Path is the full path of the leaf, root included.
	Path []string
	// Args is the full argument list as typed, verb included.
	Args []string

	Stdout io.Writer
	Stderr io.Writer
}

// ActionHandler is the external capability bound to an Action leaf.
// Its effects (remote calls, printed output) are opaque to the engine.
type ActionHandler interface {
	Invoke(ctx context.Context, call ActionCall) error
}

// ActionFunc adapts an ordinary function to ActionHandler.
type ActionFunc func(ctx context.Context, call ActionCall) error

// Invoke calls f.
func (f ActionFunc) Invoke(ctx context.Context, call ActionCall) error {
	return f(ctx, call)
}
