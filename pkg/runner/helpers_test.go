package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/awsh"
	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/dsl"
	"github.com/stretchr/testify/require"
)

type styledLine struct {
	Text  string
	Style Style
}

// recordingSink keeps everything written to it.
type recordingSink struct {
	mu    sync.Mutex
	lines []styledLine
}

func (s *recordingSink) WriteStyled(text string, style Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, styledLine{Text: text, Style: style})
}

func (s *recordingSink) byStyle(style Style) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, l := range s.lines {
		if l.Style == style {
			out = append(out, l.Text)
		}
	}
	return out
}

// scriptedSource replays canned results and then reports end of input.
type scriptedSource struct {
	steps     []scriptStep
	prompts   []string
	completer Completer
	completed [][]string
}

type scriptStep struct {
	line string
	err  error
}

func (s *scriptedSource) ReadLine(ctx context.Context, prompt, placeholder string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.completer != nil {
		s.completed = append(s.completed, s.completer(""))
	}
	if len(s.steps) == 0 {
		return "", io.EOF
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	return step.line, step.err
}

func (s *scriptedSource) SetCompleter(fn Completer) { s.completer = fn }

func (s *scriptedSource) Close() error { return nil }

// invocationLog records calls made to test handlers.
type invocationLog struct {
	mu    sync.Mutex
	calls []domain.ActionCall
}

func (l *invocationLog) handler() func(context.Context, domain.ActionCall) error {
	return func(ctx context.Context, call domain.ActionCall) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.calls = append(l.calls, call)
		fmt.Fprintf(call.Stdout, "%s\n", strings.Join(call.Args, " "))
		return nil
	}
}

func (l *invocationLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

var errBoom = errors.New("boom")

// newTestConsole builds aws -> {ec2 -> instances -> {describe, fail, explode}, s3}.
func newTestConsole(t *testing.T, log *invocationLog, opts ...awsh.Option) *awsh.Console {
	t.Helper()

	b := dsl.New("aws")
	b.Category("ec2").Category("instances").
		ActionFunc("describe", log.handler()).
		ActionFunc("fail", func(context.Context, domain.ActionCall) error { return errBoom }).
		ActionFunc("explode", func(context.Context, domain.ActionCall) error { panic("kaboom") })
	b.Category("s3")

	tree, err := b.Build()
	require.NoError(t, err)

	console, err := awsh.New("", append([]awsh.Option{awsh.WithTree(tree)}, opts...)...)
	require.NoError(t, err)
	return console
}
