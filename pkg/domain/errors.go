package domain

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInterrupted is returned by a line source when the operator cancels the pending read.
var ErrInterrupted = errors.New("interrupted")

// ErrEndOfInput signals that the input stream closed. It is io.EOF so that
// readers from the standard library satisfy it without translation.
var ErrEndOfInput = io.EOF

// CommandNotFoundError is returned when a verb is neither a built-in nor a child
// of the current Category.
type CommandNotFoundError struct {
	Verb string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Verb)
}

// Reasons attached to InvalidPathError.
const (
	ReasonNotFound    = "no such category"
	ReasonNotCategory = "is an action, not a category"
	ReasonTooDeep     = "exceeds depth limit"
)

// InvalidPathError is returned when a path expression resolves to something
// that is not a reachable Category.
type InvalidPathError struct {
	Attempted Position
	Reason    string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %s: %s", e.Attempted.String(), e.Reason)
}

// UsageError is returned for a malformed built-in invocation.
type UsageError struct {
	Command string
	Usage   string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s", e.Usage)
}

// ActionError wraps a failure raised by an ActionHandler, including recovered panics.
type ActionError struct {
	Path []string
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %s failed: %v", strings.Join(e.Path, PathSeparator), e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// MalformedTreeError signals that the session Position no longer resolves to a
// Category. Continuing would operate on invalid state, so it is fatal.
type MalformedTreeError struct {
	Position Position
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed tree: position %s does not resolve to a category", e.Position.String())
}

// IsRecoverable reports whether the session loop should report err and continue.
func IsRecoverable(err error) bool {
	if err == nil {
		return true
	}
	var notFound *CommandNotFoundError
	var invalid *InvalidPathError
	var usage *UsageError
	var action *ActionError
	switch {
	case errors.As(err, &notFound), errors.As(err, &invalid),
		errors.As(err, &usage), errors.As(err, &action):
		return true
	}
	return false
}
