package runtime

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
)

// Engine binds the pure resolution functions to one tree and a logger.
type Engine struct {
	tree   *namespace.Tree
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger used for debug tracing.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine over tree.
func NewEngine(tree *namespace.Tree, opts ...EngineOption) *Engine {
	e := &Engine{
		tree:   tree,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tree returns the namespace the engine resolves against.
func (e *Engine) Tree() *namespace.Tree {
	return e.tree
}

// Root returns the initial session Position.
func (e *Engine) Root() domain.Position {
	return e.tree.RootPosition()
}

// Resolve is Resolve bound to the engine's tree.
func (e *Engine) Resolve(current domain.Position, expr string) (domain.Position, error) {
	next, err := Resolve(e.tree, current, expr)
	if err != nil {
		e.logger.Debug("path rejected", "from", current.String(), "expr", expr, "err", err)
		return nil, err
	}
	e.logger.Debug("path resolved", "from", current.String(), "expr", expr, "to", next.String())
	return next, nil
}

// Dispatch is Dispatch bound to the engine's tree.
func (e *Engine) Dispatch(current domain.Position, line string) (domain.Outcome, error) {
	outcome, err := Dispatch(e.tree, current, line)
	if err != nil {
		e.logger.Debug("dispatch failed", "position", current.String(), "line", line, "err", err)
		return outcome, err
	}
	e.logger.Debug("dispatched", "position", current.String(), "line", line, "outcome", outcome.Kind.String())
	return outcome, nil
}

// Complete is Complete bound to the engine's tree.
func (e *Engine) Complete(current domain.Position, line string) []string {
	return Complete(e.tree, current, line)
}

// Placeholder is the hint shown for an empty line: the child names of current.
func (e *Engine) Placeholder(current domain.Position) string {
	names, err := e.tree.ChildrenOf(current)
	if err != nil {
		return ""
	}
	return strings.Join(names, " ")
}
