package runtime

import (
	"strings"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
)

// Resolve computes the destination of expr relative to current.
//
// expr is split on "/" and empty tokens are dropped, so leading, trailing and
// doubled slashes are ignored (a leading slash does not make the path
// absolute). ".." pops a segment but never the root. Only the final path is
// validated: it must be a Category no deeper than the tree's depth limit.
//
// current is never modified; on failure the caller keeps using it.
func Resolve(tree *namespace.Tree, current domain.Position, expr string) (domain.Position, error) {
	working := current.Clone()

	for _, token := range strings.Split(expr, domain.PathSeparator) {
		switch token {
		case "":
			continue
		case domain.ParentSegment:
			if len(working) > 1 {
				working = working[:len(working)-1]
			}
		default:
			working = append(working, token)
		}
	}

	node, ok := tree.Lookup(working)
	switch {
	case !ok:
		return nil, &domain.InvalidPathError{Attempted: working, Reason: domain.ReasonNotFound}
	case !node.IsCategory():
		return nil, &domain.InvalidPathError{Attempted: working, Reason: domain.ReasonNotCategory}
	case len(working) > tree.DepthLimit():
		return nil, &domain.InvalidPathError{Attempted: working, Reason: domain.ReasonTooDeep}
	}

	return working, nil
}
