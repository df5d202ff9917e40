package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/chzyer/readline"
)

// ReadlineOptions configures a ReadlineSource.
type ReadlineOptions struct {
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
	Stderr      io.Writer
}

// ReadlineSource is the interactive LineSource: line editing, history and
// tab completion on a terminal.
type ReadlineSource struct {
	rl        *readline.Instance
	completer *dynamicCompleter
}

// NewReadlineSource opens a readline instance on the terminal.
func NewReadlineSource(opts ReadlineOptions) (*ReadlineSource, error) {
	completer := &dynamicCompleter{}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       opts.HistoryFile,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdin:             opts.Stdin,
		Stdout:            opts.Stdout,
		Stderr:            opts.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &ReadlineSource{rl: rl, completer: completer}, nil
}

// SetCompleter replaces the completion function used on Tab.
func (s *ReadlineSource) SetCompleter(fn Completer) {
	s.completer.set(fn)
}

// ReadLine reads one edited line. Ctrl-C returns domain.ErrInterrupted and
// Ctrl-D on an empty line returns io.EOF. The placeholder is what Tab offers
// on an empty line, so it is not drawn separately.
func (s *ReadlineSource) ReadLine(ctx context.Context, prompt, _ string) (string, error) {
	if ctx.Err() != nil {
		return "", domain.ErrInterrupted
	}

	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", domain.ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", io.EOF
	case err != nil:
		return "", fmt.Errorf("read failed: %w", err)
	}

	if ctx.Err() != nil {
		return "", domain.ErrInterrupted
	}

	clean, err := SanitizeInput(line)
	if err != nil {
		fmt.Fprintf(s.rl.Stderr(), "Error: %v. Please try again.\n", err)
		return "", domain.ErrInterrupted
	}
	return clean, nil
}

// Close restores the terminal and flushes history.
func (s *ReadlineSource) Close() error {
	return s.rl.Close()
}

// dynamicCompleter adapts a Completer to readline.AutoCompleter.
type dynamicCompleter struct {
	mu sync.RWMutex
	fn Completer
}

func (c *dynamicCompleter) set(fn Completer) {
	c.mu.Lock()
	c.fn = fn
	c.mu.Unlock()
}

// Do returns the suffixes that complete the word under the cursor, and the
// length of that word.
func (c *dynamicCompleter) Do(line []rune, pos int) ([][]rune, int) {
	c.mu.RLock()
	fn := c.fn
	c.mu.RUnlock()
	if fn == nil {
		return nil, 0
	}

	head := string(line[:pos])
	word := head
	if i := strings.LastIndex(head, " "); i >= 0 {
		word = head[i+1:]
	}

	candidates := fn(head)
	out := make([][]rune, 0, len(candidates))
	for _, cand := range candidates {
		if !strings.HasPrefix(cand, word) {
			continue
		}
		suffix := cand[len(word):]
		if !strings.HasSuffix(cand, "/") {
			suffix += " "
		}
		out = append(out, []rune(suffix))
	}
	return out, len([]rune(word))
}
