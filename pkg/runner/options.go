package runner

import (
	"io"
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithLineSource configures where command lines come from.
func WithLineSource(source LineSource) Option {
	return func(r *Runner) {
		r.Source = source
	}
}

// WithOutputSink configures where listings and errors go.
func WithOutputSink(sink OutputSink) Option {
	return func(r *Runner) {
		r.Sink = sink
	}
}

// WithActionOutput sets the writers handed to action handlers.
func WithActionOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.Stdout = stdout
		r.Stderr = stderr
	}
}

// WithInterceptor configures the action execution middleware.
func WithInterceptor(interceptor ActionInterceptor) Option {
	return func(r *Runner) {
		r.Interceptor = interceptor
	}
}

// WithConfirmation asks before every action unless an interceptor is set.
func WithConfirmation(confirm bool) Option {
	return func(r *Runner) {
		r.Confirm = confirm
	}
}
