package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/awsh"
	"github.com/aretw0/awsh/internal/config"
	"github.com/aretw0/awsh/internal/presentation/graph"
	"github.com/aretw0/awsh/internal/validator"
	"github.com/aretw0/awsh/pkg/namespace"
)

// PrintTree writes the configured namespace as text or Mermaid.
func PrintTree(w io.Writer, opts TreeOptions) error {
	console, err := awsh.New(config.ResolvePath(opts.ConfigPath))
	if err != nil {
		return err
	}

	switch opts.Format {
	case "", FormatText:
		fmt.Fprint(w, graph.GenerateText(console.Tree()))
	case FormatMermaid:
		fmt.Fprint(w, graph.GenerateMermaid(console.Tree(), nil))
	default:
		return fmt.Errorf("unknown format %q (expected %s or %s)", opts.Format, FormatText, FormatMermaid)
	}
	return nil
}

// Summary describes a valid namespace. Warnings are lint findings that do
// not prevent a session from starting.
type Summary struct {
	Categories int
	Actions    int
	Depth      int
	Warnings   []validator.Finding
}

func (s Summary) String() string {
	return fmt.Sprintf("%d categories, %d actions, depth %d", s.Categories, s.Actions, s.Depth)
}

// Validate loads path and builds its namespace without running anything.
// Unlike a session, a missing file is an error here.
func Validate(path string) (Summary, error) {
	path = config.ResolvePath(path)
	if _, err := os.Stat(path); err != nil {
		return Summary{}, fmt.Errorf("cannot read %s: %w", path, err)
	}

	console, err := awsh.New(path)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(console.Tree()), nil
}

// Summarize counts the nodes of tree and lints it.
func Summarize(tree *namespace.Tree) Summary {
	s := Summary{Depth: tree.DepthLimit(), Warnings: validator.Lint(tree)}
	_ = tree.Walk(func(_ []string, n *namespace.Node) error {
		if n.IsAction() {
			s.Actions++
		} else {
			s.Categories++
		}
		return nil
	})
	return s
}
