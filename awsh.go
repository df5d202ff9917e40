package awsh

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/awsh/internal/config"
	"github.com/aretw0/awsh/internal/runtime"
	"github.com/aretw0/awsh/pkg/adapters/process"
	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
	"github.com/aretw0/awsh/pkg/registry"
)

// Console is the high-level entry point for the awsh library.
// It wraps the internal runtime and owns the namespace tree a session walks.
type Console struct {
	runtime  *runtime.Engine
	tree     *namespace.Tree
	cfg      *config.Config
	registry *registry.Registry
	procs    *process.Runner
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Console.
type Option func(*Console)

// WithTree injects a prebuilt namespace, bypassing configuration loading.
func WithTree(tree *namespace.Tree) Option {
	return func(c *Console) {
		c.tree = tree
	}
}

// WithConfig uses an already loaded configuration instead of reading one.
func WithConfig(cfg *config.Config) Option {
	return func(c *Console) {
		c.cfg = cfg
	}
}

// WithRegistry supplies the handlers that `handler:` leaves refer to.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Console) {
		c.registry = reg
	}
}

// WithProcessRunner sets the runner used for `command:` leaves.
func WithProcessRunner(r *process.Runner) Option {
	return func(c *Console) {
		c.procs = r
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Console) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the console.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// New initializes a Console.
// By default the namespace is read from the YAML file at configPath (the
// embedded default is used when the file does not exist). If WithTree is
// provided, configPath is ignored.
func New(configPath string, opts ...Option) (*Console, error) {
	c := &Console{}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.registry == nil {
		c.registry = registry.NewRegistry()
	}
	if c.procs == nil {
		c.procs = process.NewRunner()
	}

	if c.tree == nil {
		if c.cfg == nil {
			cfg, err := config.Load(configPath)
			if err != nil {
				return nil, err
			}
			c.cfg = cfg
		}

		tree, err := c.cfg.BuildTree(c.registry, c.procs)
		if err != nil {
			return nil, fmt.Errorf("failed to build namespace: %w", err)
		}
		c.tree = tree
	}

	c.logger = c.logger.With("root", c.tree.Root().Name())
	c.runtime = runtime.NewEngine(c.tree, runtime.WithLogger(c.logger))
	return c, nil
}

// Tree returns the immutable namespace.
func (c *Console) Tree() *namespace.Tree {
	return c.tree
}

// Config returns the loaded configuration, or nil when built WithTree.
func (c *Console) Config() *config.Config {
	return c.cfg
}

// Hooks returns the registered lifecycle hooks.
func (c *Console) Hooks() domain.LifecycleHooks {
	return c.hooks
}

// Logger returns the console logger.
func (c *Console) Logger() *slog.Logger {
	return c.logger
}

// Root returns the Position a session starts at.
func (c *Console) Root() domain.Position {
	return c.runtime.Root()
}

// Resolve computes the Position a path expression leads to from current.
func (c *Console) Resolve(current domain.Position, expr string) (domain.Position, error) {
	return c.runtime.Resolve(current, expr)
}

// Dispatch classifies one input line against current.
func (c *Console) Dispatch(current domain.Position, line string) (domain.Outcome, error) {
	return c.runtime.Dispatch(current, line)
}

// Complete returns completion candidates for a partial line.
func (c *Console) Complete(current domain.Position, line string) []string {
	return c.runtime.Complete(current, line)
}

// Placeholder returns the hint shown on an empty prompt.
func (c *Console) Placeholder(current domain.Position) string {
	return c.runtime.Placeholder(current)
}

// Invoke runs the handler of an Invoke outcome.
// Handler failures and panics come back as *domain.ActionError.
func (c *Console) Invoke(ctx context.Context, outcome domain.Outcome, stdout, stderr io.Writer) (err error) {
	if outcome.Kind != domain.OutcomeInvoke || outcome.Handler == nil {
		return fmt.Errorf("outcome %s is not an invocation", outcome.Kind)
	}

	call := domain.ActionCall{
		Path:   outcome.Path,
		Args:   outcome.Args,
		Stdout: stdout,
		Stderr: stderr,
	}

	if c.hooks.OnInvoke != nil {
		c.hooks.OnInvoke(ctx, &domain.InvokeEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventInvoke},
			Path:      call.Path,
			Args:      call.Args,
		})
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = &domain.ActionError{Path: call.Path, Err: fmt.Errorf("panic: %v", r)}
		}
		elapsed := time.Since(start)
		c.logger.Debug("action returned", "path", domain.Position(call.Path).String(), "duration", elapsed, "err", err)
		if c.hooks.OnInvokeReturn != nil {
			c.hooks.OnInvokeReturn(ctx, &domain.InvokeEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventInvokeReturn},
				Path:      call.Path,
				Args:      call.Args,
				Duration:  elapsed,
				Err:       err,
			})
		}
	}()

	if herr := outcome.Handler.Invoke(ctx, call); herr != nil {
		return &domain.ActionError{Path: call.Path, Err: herr}
	}
	return nil
}
