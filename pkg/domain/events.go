package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNavigate     EventType = "navigate"
	EventList         EventType = "list"
	EventInvoke       EventType = "invoke"
	EventInvokeReturn EventType = "invoke_return"
	EventCommandError EventType = "command_error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NavigateEvent is emitted after the session Position changes.
type NavigateEvent struct {
	EventBase
	From Position `json:"from"`
	To   Position `json:"to"`
}

// ListEvent is emitted when a Category is listed.
type ListEvent struct {
	EventBase
	Position Position `json:"position"`
	Count    int      `json:"count"`
}

// InvokeEvent represents an action invocation.
// Err and Duration are only set on the return event.
type InvokeEvent struct {
	EventBase
	Path     []string      `json:"path"`
	Args     []string      `json:"args"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// CommandErrorEvent is emitted when a line fails with a recoverable error.
type CommandErrorEvent struct {
	EventBase
	Position Position `json:"position"`
	Line     string   `json:"line"`
	Err      error    `json:"-"`
}

// LifecycleHooks defines callbacks for console observability.
type LifecycleHooks struct {
	OnNavigate     func(context.Context, *NavigateEvent)
	OnList         func(context.Context, *ListEvent)
	OnInvoke       func(context.Context, *InvokeEvent)
	OnInvokeReturn func(context.Context, *InvokeEvent)
	OnCommandError func(context.Context, *CommandErrorEvent)
}

// MergeHooks fans each callback out to every non-nil hook in order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	var merged LifecycleHooks
	for _, h := range hooks {
		h := h
		if h.OnNavigate != nil {
			prev := merged.OnNavigate
			merged.OnNavigate = func(ctx context.Context, e *NavigateEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnNavigate(ctx, e)
			}
		}
		if h.OnList != nil {
			prev := merged.OnList
			merged.OnList = func(ctx context.Context, e *ListEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnList(ctx, e)
			}
		}
		if h.OnInvoke != nil {
			prev := merged.OnInvoke
			merged.OnInvoke = func(ctx context.Context, e *InvokeEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnInvoke(ctx, e)
			}
		}
		if h.OnInvokeReturn != nil {
			prev := merged.OnInvokeReturn
			merged.OnInvokeReturn = func(ctx context.Context, e *InvokeEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnInvokeReturn(ctx, e)
			}
		}
		if h.OnCommandError != nil {
			prev := merged.OnCommandError
			merged.OnCommandError = func(ctx context.Context, e *CommandErrorEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnCommandError(ctx, e)
			}
		}
	}
	return merged
}
