package runner

import (
	"context"
	"fmt"
	"io"
	"os"
)

// LineSource supplies operator lines to the session loop.
//
// ReadLine shows prompt, waits for one line and returns it without the
// trailing newline. It returns domain.ErrInterrupted when the pending read is
// cancelled (Ctrl-C or ctx) and io.EOF when the stream is closed.
// placeholder is a hint for an empty line; sources that cannot show it ignore it.
type LineSource interface {
	ReadLine(ctx context.Context, prompt, placeholder string) (string, error)
	Close() error
}

// Completer returns whole-word candidates for a partial line.
type Completer func(line string) []string

// CompletingSource is a LineSource that can offer completions.
// The runner refreshes the completer before each read, since candidates
// depend on the current position.
type CompletingSource interface {
	LineSource
	SetCompleter(Completer)
}

// Style tells a sink how to present a line.
type Style int

const (
	StyleInfo Style = iota
	StyleCategory
	StyleAction
	StyleError
	StyleMuted
)

func (s Style) String() string {
	switch s {
	case StyleCategory:
		return "category"
	case StyleAction:
		return "action"
	case StyleError:
		return "error"
	case StyleMuted:
		return "muted"
	}
	return "info"
}

// OutputSink receives everything the console prints that is not action output.
type OutputSink interface {
	WriteStyled(text string, style Style)
}

// PlainSink writes lines without styling. Errors are prefixed so they stay
// recognisable in logs and pipes.
type PlainSink struct {
	W io.Writer
}

// NewPlainSink returns a sink on w, or stdout when w is nil.
func NewPlainSink(w io.Writer) *PlainSink {
	if w == nil {
		w = os.Stdout
	}
	return &PlainSink{W: w}
}

func (s *PlainSink) WriteStyled(text string, style Style) {
	if style == StyleError {
		fmt.Fprintf(s.W, "Error: %s\n", text)
		return
	}
	fmt.Fprintln(s.W, text)
}
