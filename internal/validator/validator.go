package validator

import (
	"fmt"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
)

// Finding is a problem in a namespace that Build accepts but an operator
// would trip over.
type Finding struct {
	Path    domain.Position
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Path.String(), f.Message)
}

// Lint crawls the tree breadth-first from the root and reports:
//   - categories with no entries (nothing to list or run),
//   - entries named like a built-in, which a bare verb can never reach.
func Lint(tree *namespace.Tree) []Finding {
	type item struct {
		path domain.Position
		node *namespace.Node
	}

	var findings []Finding
	queue := []item{{path: tree.RootPosition(), node: tree.Root()}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !current.path.IsRoot() && domain.IsBuiltin(current.node.Name()) {
			findings = append(findings, Finding{
				Path:    current.path,
				Message: fmt.Sprintf("shadowed by the built-in %q; reachable only as a path segment", current.node.Name()),
			})
		}

		if current.node.IsAction() {
			continue
		}

		children := current.node.Children()
		if len(children) == 0 {
			findings = append(findings, Finding{Path: current.path, Message: "empty category"})
		}
		for _, c := range children {
			queue = append(queue, item{path: current.path.Child(c.Name()), node: c})
		}
	}

	return findings
}
