package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/awsh/pkg/runner"
	"github.com/muesli/termenv"
)

// Printer is the styled runner.OutputSink for terminals.
// Categories are bold blue with a trailing "/", actions green, errors red.
type Printer struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewPrinter detects the color profile of w.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

func (p *Printer) WriteStyled(text string, style runner.Style) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var s termenv.Style
	switch style {
	case runner.StyleCategory:
		s = p.out.String(text + "/").Foreground(p.out.Color("#60a5fa")).Bold()
	case runner.StyleAction:
		s = p.out.String(text).Foreground(p.out.Color("#4ade80"))
	case runner.StyleError:
		s = p.out.String("Error: " + text).Foreground(p.out.Color("#f87171"))
	case runner.StyleMuted:
		s = p.out.String(text).Faint()
	default:
		s = p.out.String(text)
	}
	fmt.Fprintln(p.out, s)
}
