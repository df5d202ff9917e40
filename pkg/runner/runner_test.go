package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/awsh"
	"github.com/aretw0/awsh/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, console *awsh.Console, input string, opts ...Option) (domain.Position, *recordingSink, *bytes.Buffer, error) {
	t.Helper()
	sink := &recordingSink{}
	stdout := &bytes.Buffer{}

	base := []Option{
		WithLineSource(NewTextSource(strings.NewReader(input), nil)),
		WithOutputSink(sink),
		WithActionOutput(stdout, io.Discard),
	}
	r := NewRunner(append(base, opts...)...)

	type result struct {
		pos domain.Position
		err error
	}
	done := make(chan result, 1)
	go func() {
		pos, err := r.Run(context.Background(), console)
		done <- result{pos, err}
	}()

	select {
	case res := <-done:
		return res.pos, sink, stdout, res.err
	case <-time.After(2 * time.Second):
		t.Fatal("runner timed out")
	}
	return nil, nil, nil, nil
}

func TestRunner_EndToEndScenario(t *testing.T) {
	log := &invocationLog{}
	console := newTestConsole(t, log)

	pos, sink, stdout, err := runScript(t, console, strings.Join([]string{
		"ls",
		"cd ec2",
		"instances",
		"ls",
		"describe --region eu-west-1",
		"cd ../..",
		"",
	}, "\n"))

	require.NoError(t, err)
	assert.Equal(t, domain.Position{"aws"}, pos)

	assert.Equal(t, []string{"ec2", "s3"}, sink.byStyle(StyleCategory))
	assert.Equal(t, []string{"describe", "fail", "explode"}, sink.byStyle(StyleAction))
	assert.Empty(t, sink.byStyle(StyleError))
	assert.Equal(t, []string{"Goodbye"}, sink.byStyle(StyleMuted))

	require.Equal(t, 1, log.count())
	call := log.calls[0]
	assert.Equal(t, []string{"aws", "ec2", "instances", "describe"}, call.Path)
	assert.Equal(t, []string{"describe", "--region", "eu-west-1"}, call.Args)
	assert.Equal(t, "describe --region eu-west-1\n", stdout.String())
}

func TestRunner_RecoverableErrorsKeepPosition(t *testing.T) {
	isNotFound := func(err error) bool {
		var e *domain.CommandNotFoundError
		return errors.As(err, &e)
	}
	isInvalidPath := func(err error) bool {
		var e *domain.InvalidPathError
		return errors.As(err, &e)
	}
	isUsage := func(err error) bool {
		var e *domain.UsageError
		return errors.As(err, &e)
	}
	isAction := func(err error) bool {
		var e *domain.ActionError
		return errors.As(err, &e)
	}

	tests := []struct {
		name  string
		line  string
		match func(error) bool
	}{
		{"unknown verb", "terminate", isNotFound},
		{"missing path", "cd nowhere", isInvalidPath},
		{"cd into action", "cd describe", isInvalidPath},
		{"cd without argument", "cd", isUsage},
		{"handler error", "fail", isAction},
		{"handler panic", "explode", isAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured []error
			console := newTestConsole(t, &invocationLog{}, awsh.WithLifecycleHooks(domain.LifecycleHooks{
				OnCommandError: func(_ context.Context, e *domain.CommandErrorEvent) {
					captured = append(captured, e.Err)
				},
			}))

			pos, sink, _, err := runScript(t, console, "cd ec2/instances\n"+tt.line+"\n")
			require.NoError(t, err)
			assert.Equal(t, domain.Position{"aws", "ec2", "instances"}, pos)

			require.Len(t, sink.byStyle(StyleError), 1)
			require.Len(t, captured, 1)
			assert.True(t, tt.match(captured[0]), "unexpected error type %T", captured[0])
		})
	}
}

func TestRunner_PanicIsReportedAsActionError(t *testing.T) {
	console := newTestConsole(t, &invocationLog{})

	_, sink, _, err := runScript(t, console, "cd ec2/instances\nexplode\nls\n")
	require.NoError(t, err)

	errs := sink.byStyle(StyleError)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "kaboom")
	// the loop kept going after the panic
	assert.Equal(t, []string{"describe", "fail", "explode"}, sink.byStyle(StyleAction))
}

func TestRunner_HandlerErrorIsWrapped(t *testing.T) {
	var got error
	console := newTestConsole(t, &invocationLog{}, awsh.WithLifecycleHooks(domain.LifecycleHooks{
		OnInvokeReturn: func(_ context.Context, e *domain.InvokeEvent) { got = e.Err },
	}))

	_, _, _, err := runScript(t, console, "cd ec2/instances\nfail\n")
	require.NoError(t, err)

	var actionErr *domain.ActionError
	require.ErrorAs(t, got, &actionErr)
	assert.ErrorIs(t, got, errBoom)
	assert.Equal(t, []string{"aws", "ec2", "instances", "fail"}, actionErr.Path)
}

func TestRunner_InterruptRepromptsWithoutMoving(t *testing.T) {
	console := newTestConsole(t, &invocationLog{})
	source := &scriptedSource{steps: []scriptStep{
		{line: "cd ec2"},
		{err: domain.ErrInterrupted},
		{line: "ls"},
	}}
	sink := &recordingSink{}

	r := NewRunner(WithLineSource(source), WithOutputSink(sink))
	pos, err := r.Run(context.Background(), console)

	require.NoError(t, err)
	assert.Equal(t, domain.Position{"aws", "ec2"}, pos)
	assert.Equal(t, []string{"aws > ", "aws/ec2 > ", "aws/ec2 > ", "aws/ec2 > "}, source.prompts)
	assert.Equal(t, []string{"instances"}, sink.byStyle(StyleCategory))
	assert.Empty(t, sink.byStyle(StyleError))
}

func TestRunner_CompleterFollowsPosition(t *testing.T) {
	console := newTestConsole(t, &invocationLog{})
	source := &scriptedSource{steps: []scriptStep{{line: "cd ec2"}}}

	r := NewRunner(WithLineSource(source), WithOutputSink(&recordingSink{}))
	_, err := r.Run(context.Background(), console)
	require.NoError(t, err)

	require.Len(t, source.completed, 2)
	assert.Equal(t, []string{"ls", "cd", "ec2", "s3"}, source.completed[0])
	assert.Equal(t, []string{"ls", "cd", "instances"}, source.completed[1])
}

func TestRunner_InputErrorIsFatal(t *testing.T) {
	console := newTestConsole(t, &invocationLog{})
	source := &scriptedSource{steps: []scriptStep{{err: errors.New("tty gone")}}}

	r := NewRunner(WithLineSource(source), WithOutputSink(&recordingSink{}))
	_, err := r.Run(context.Background(), console)
	assert.ErrorContains(t, err, "tty gone")
}

func TestRunner_ContextCancelStops(t *testing.T) {
	console := newTestConsole(t, &invocationLog{})
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewRunner(
		WithLineSource(NewTextSource(pr, nil)),
		WithOutputSink(&recordingSink{}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.Run(ctx, console)
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop on cancel")
	}
}

func TestRunner_Confirmation(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		invoked int
	}{
		{"yes", "y", 1},
		{"long yes", "YES", 1},
		{"no", "n", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &invocationLog{}
			console := newTestConsole(t, log)

			_, sink, _, err := runScript(t, console,
				"cd ec2/instances\ndescribe\n"+tt.answer+"\n",
				WithConfirmation(true))
			require.NoError(t, err)

			assert.Equal(t, tt.invoked, log.count())
			assert.Contains(t, sink.byStyle(StyleInfo), "Run aws/ec2/instances/describe?")
			if tt.invoked == 0 {
				assert.Contains(t, sink.byStyle(StyleMuted), "Cancelled.")
			}
		})
	}
}

func TestRunner_HooksFire(t *testing.T) {
	var navigated []string
	var listed []int
	var invoked, returned int

	console := newTestConsole(t, &invocationLog{}, awsh.WithLifecycleHooks(domain.LifecycleHooks{
		OnNavigate: func(_ context.Context, e *domain.NavigateEvent) {
			navigated = append(navigated, e.From.String()+"->"+e.To.String())
		},
		OnList:         func(_ context.Context, e *domain.ListEvent) { listed = append(listed, e.Count) },
		OnInvoke:       func(context.Context, *domain.InvokeEvent) { invoked++ },
		OnInvokeReturn: func(context.Context, *domain.InvokeEvent) { returned++ },
	}))

	_, _, _, err := runScript(t, console, "ec2\ncd instances\nls\ndescribe\nls ..\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"/aws->/aws/ec2", "/aws/ec2->/aws/ec2/instances"}, navigated)
	assert.Equal(t, []int{3, 1}, listed)
	assert.Equal(t, 1, invoked)
	assert.Equal(t, 1, returned)
}
