package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/awsh"
	"github.com/aretw0/awsh/pkg/domain"
)

// Runner owns the operator's Position and drives the read, dispatch, act loop.
type Runner struct {
	// Source supplies command lines. Defaults to a TextSource on stdin.
	Source LineSource

	// Sink receives listings, errors and notices. Defaults to a PlainSink on stdout.
	Sink OutputSink

	// Stdout and Stderr are handed to action handlers.
	Stdout io.Writer
	Stderr io.Writer

	// Interceptor gates action execution. If nil, Confirm selects between
	// ConfirmationMiddleware and AutoApproveMiddleware.
	Interceptor ActionInterceptor
	Confirm     bool

	// Logger is used for internal debug logging.
	Logger *slog.Logger
}

// NewRunner creates a Runner; unset collaborators get stdio defaults.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Source == nil {
		r.Source = NewTextSource(os.Stdin, os.Stdout)
	}
	if r.Sink == nil {
		r.Sink = NewPlainSink(os.Stdout)
	}
	if r.Stdout == nil {
		r.Stdout = os.Stdout
	}
	if r.Stderr == nil {
		r.Stderr = os.Stderr
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run starts at the console root and loops until the source reaches end of
// input, ctx is cancelled, or the tree turns out to be malformed.
// It returns the last Position; a clean end of input returns a nil error.
func (r *Runner) Run(ctx context.Context, console *awsh.Console) (domain.Position, error) {
	interceptor := r.resolveInterceptor()
	hooks := console.Hooks()

	signals := NewSignalManager()
	defer signals.Stop()

	pos := console.Root()
	r.Logger.Debug("session started", "position", pos.String())

	for {
		if err := ctx.Err(); err != nil {
			return pos, err
		}
		if signals.Interrupted() {
			signals.Reset()
		}

		if cs, ok := r.Source.(CompletingSource); ok {
			current := pos
			cs.SetCompleter(func(line string) []string {
				return console.Complete(current, line)
			})
		}

		line, err := r.read(ctx, signals, pos, console.Placeholder(pos))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInterrupted):
				if ctx.Err() != nil {
					return pos, ctx.Err()
				}
				r.Logger.Debug("read interrupted", "position", pos.String())
				continue
			case errors.Is(err, io.EOF):
				r.Sink.WriteStyled("Goodbye", StyleMuted)
				r.Logger.Debug("session ended", "position", pos.String())
				return pos, nil
			default:
				return pos, fmt.Errorf("input error: %w", err)
			}
		}

		next, err := r.step(ctx, console, interceptor, pos, line)
		if err != nil {
			if !domain.IsRecoverable(err) {
				return pos, err
			}
			r.Sink.WriteStyled(err.Error(), StyleError)
			if hooks.OnCommandError != nil {
				hooks.OnCommandError(ctx, &domain.CommandErrorEvent{
					EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCommandError},
					Position:  pos.Clone(),
					Line:      line,
					Err:       err,
				})
			}
			continue
		}
		pos = next
	}
}

// read waits for one line; either ctx or an interrupt aborts the wait.
func (r *Runner) read(ctx context.Context, signals *SignalManager, pos domain.Position, placeholder string) (string, error) {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(signals.Context(), cancel)
	defer stop()

	line, err := r.Source.ReadLine(readCtx, pos.Prompt(), placeholder)
	if err != nil && !errors.Is(err, domain.ErrInterrupted) && !errors.Is(err, io.EOF) {
		signals.CheckRace()
		if signals.Interrupted() {
			return "", domain.ErrInterrupted
		}
	}
	return line, err
}

// step evaluates one line and returns the Position after it.
func (r *Runner) step(
	ctx context.Context,
	console *awsh.Console,
	interceptor ActionInterceptor,
	pos domain.Position,
	line string,
) (domain.Position, error) {
	hooks := console.Hooks()

	outcome, err := console.Dispatch(pos, line)
	if err != nil {
		return pos, err
	}

	switch outcome.Kind {
	case domain.OutcomeNavigate:
		if hooks.OnNavigate != nil {
			hooks.OnNavigate(ctx, &domain.NavigateEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNavigate},
				From:      pos.Clone(),
				To:        outcome.To.Clone(),
			})
		}
		return outcome.To, nil

	case domain.OutcomeList:
		for _, entry := range outcome.Entries {
			style := StyleCategory
			if entry.Kind == domain.EntryAction {
				style = StyleAction
			}
			r.Sink.WriteStyled(entry.Name, style)
		}
		if hooks.OnList != nil {
			hooks.OnList(ctx, &domain.ListEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventList},
				Position:  outcome.Listed.Clone(),
				Count:     len(outcome.Entries),
			})
		}
		return pos, nil

	case domain.OutcomeInvoke:
		call := domain.ActionCall{Path: outcome.Path, Args: outcome.Args}
		allowed, err := interceptor(ctx, call)
		if err != nil {
			return pos, &domain.ActionError{Path: outcome.Path, Err: fmt.Errorf("interceptor: %w", err)}
		}
		if !allowed {
			r.Sink.WriteStyled("Cancelled.", StyleMuted)
			return pos, nil
		}
		return pos, console.Invoke(ctx, outcome, r.Stdout, r.Stderr)
	}

	return pos, nil
}

func (r *Runner) resolveInterceptor() ActionInterceptor {
	if r.Interceptor != nil {
		return r.Interceptor
	}
	if r.Confirm {
		return ConfirmationMiddleware(r.Source, r.Sink)
	}
	return AutoApproveMiddleware()
}
