package graph

import (
	"strings"

	"github.com/aretw0/awsh/pkg/namespace"
)

// GenerateText renders the namespace as an indented tree, categories
// suffixed with "/".
func GenerateText(tree *namespace.Tree) string {
	var sb strings.Builder
	root := tree.Root()
	sb.WriteString(root.Name() + "/\n")
	writeChildren(&sb, root, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, n *namespace.Node, indent string) {
	children := n.Children()
	for i, c := range children {
		last := i == len(children)-1

		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}

		sb.WriteString(indent + branch + c.Name())
		if c.IsCategory() {
			sb.WriteString("/")
		}
		if d := c.Description(); d != "" {
			sb.WriteString("  # " + d)
		}
		sb.WriteString("\n")

		if c.IsCategory() {
			writeChildren(sb, c, indent+next)
		}
	}
}
