package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/awsh/pkg/domain"
)

// TextSource reads lines from any io.Reader.
// A pump goroutine turns the blocking reader into a channel so that a
// cancelled context aborts the pending read without losing the next line.
type TextSource struct {
	Reader *bufio.Reader
	Writer io.Writer

	lines     chan lineResult
	startOnce sync.Once
}

type lineResult struct {
	text string
	err  error
}

// NewTextSource creates a source reading r and echoing prompts to w.
// A nil r means stdin; a nil w suppresses prompts.
func NewTextSource(r io.Reader, w io.Writer) *TextSource {
	if r == nil {
		r = os.Stdin
	}
	return &TextSource{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

func (s *TextSource) initPump() {
	s.startOnce.Do(func() {
		s.lines = make(chan lineResult)
		go s.pump()
	})
}

func (s *TextSource) pump() {
	for {
		text, err := s.Reader.ReadString('\n')

		// a final line without newline still counts
		if text != "" {
			s.lines <- lineResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(s.lines)
				return
			}
			s.lines <- lineResult{err: err}
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func (s *TextSource) ReadLine(ctx context.Context, prompt, _ string) (string, error) {
	s.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", domain.ErrInterrupted
		default:
			if s.Writer != nil {
				fmt.Fprint(s.Writer, prompt)
			}
		}

		select {
		case <-ctx.Done():
			return "", domain.ErrInterrupted
		case res, ok := <-s.lines:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", fmt.Errorf("read failed: %w", res.err)
			}

			clean, err := SanitizeInput(strings.TrimRight(res.text, "\r\n"))
			if err != nil {
				if s.Writer != nil {
					fmt.Fprintf(s.Writer, "Error: %v. Please try again.\n", err)
				}
				continue
			}
			return clean, nil
		}
	}
}

// Close is a no-op; the pump exits when the reader reaches EOF.
func (s *TextSource) Close() error {
	return nil
}
