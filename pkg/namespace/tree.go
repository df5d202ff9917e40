package namespace

import (
	"errors"
	"fmt"

	"github.com/aretw0/awsh/pkg/domain"
)

// ErrNotCategory is returned by ChildrenOf when the path does not name a Category.
var ErrNotCategory = errors.New("not a category")

// Tree is the rooted, ordered, acyclic namespace.
type Tree struct {
	root       *Node
	depthLimit int
	policy     CollisionPolicy
}

// Root returns the root Category.
func (t *Tree) Root() *Node { return t.root }

// RootPosition returns the Position a new session starts at.
func (t *Tree) RootPosition() domain.Position {
	return domain.RootPosition(t.root.name)
}

// Policy returns the collision policy the tree was built with.
func (t *Tree) Policy() CollisionPolicy { return t.policy }

// DepthLimit is the maximum number of segments (root included) on any
// root-to-node path. It is computed once at construction.
func (t *Tree) DepthLimit() int { return t.depthLimit }

// Lookup walks path one segment at a time from the root.
// The first segment must be the root name. It reports false on the first
// segment that is absent, or when a segment would descend below an Action.
func (t *Tree) Lookup(path []string) (*Node, bool) {
	if len(path) == 0 || path[0] != t.root.name {
		return nil, false
	}
	current := t.root
	for _, segment := range path[1:] {
		next, ok := current.Child(segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Category is Lookup restricted to Categories.
func (t *Tree) Category(path []string) (*Node, bool) {
	n, ok := t.Lookup(path)
	if !ok || !n.IsCategory() {
		return nil, false
	}
	return n, true
}

// ChildrenOf returns the ordered child names of the Category at path.
func (t *Tree) ChildrenOf(path []string) ([]string, error) {
	n, ok := t.Category(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", domain.Position(path).String(), ErrNotCategory)
	}
	return n.ChildNames(), nil
}

// Children returns the ordered child nodes of the Category at path.
func (t *Tree) Children(path []string) ([]*Node, error) {
	n, ok := t.Category(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", domain.Position(path).String(), ErrNotCategory)
	}
	return n.Children(), nil
}

// WalkFunc is called for every node in pre-order. path includes the node itself.
type WalkFunc func(path []string, n *Node) error

// Walk visits every node in pre-order, children in construction order.
// Returning an error from fn stops the walk.
func (t *Tree) Walk(fn WalkFunc) error {
	return walk([]string{t.root.name}, t.root, fn)
}

func walk(path []string, n *Node, fn WalkFunc) error {
	if err := fn(path, n); err != nil {
		return err
	}
	for _, c := range n.children {
		childPath := make([]string, len(path), len(path)+1)
		copy(childPath, path)
		if err := walk(append(childPath, c.name), c, fn); err != nil {
			return err
		}
	}
	return nil
}

// Actions returns the path of every Action in pre-order.
func (t *Tree) Actions() [][]string {
	var out [][]string
	_ = t.Walk(func(path []string, n *Node) error {
		if n.IsAction() {
			out = append(out, path)
		}
		return nil
	})
	return out
}
