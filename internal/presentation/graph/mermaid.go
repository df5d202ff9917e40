package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
)

// GraphOverlay marks session state on top of the static tree.
type GraphOverlay struct {
	// Current is the Position to highlight, along with every ancestor on the way.
	Current domain.Position
}

// GenerateMermaid produces a Mermaid flowchart of the namespace.
// Shapes:
// - Root: ((Circle))
// - Category: [Rectangle]
// - Action: [[Subroutine]]
func GenerateMermaid(tree *namespace.Tree, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	_ = tree.Walk(func(path []string, n *namespace.Node) error {
		id := sanitizeMermaidID(path)

		opener, closer := "[", "]"
		switch {
		case len(path) == 1:
			opener, closer = "((", "))"
		case n.IsAction():
			opener, closer = "[[", "]]"
		}

		label := n.Name()
		if d := n.Description(); d != "" {
			label = fmt.Sprintf("%s <br/> %s", label, strings.ReplaceAll(d, "\"", "'"))
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, label, closer)

		if len(path) > 1 {
			fmt.Fprintf(&sb, "    %s --> %s\n", sanitizeMermaidID(path[:len(path)-1]), id)
		}
		return nil
	})

	if overlay != nil && len(overlay.Current) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// black text stays readable on both light and dark themes
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for i := 1; i < len(overlay.Current); i++ {
			fmt.Fprintf(&sb, "    class %s visited;\n", sanitizeMermaidID(overlay.Current[:i]))
		}
		fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.Current))
	}

	return sb.String()
}

func sanitizeMermaidID(path []string) string {
	s := strings.Join(path, "__")
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
