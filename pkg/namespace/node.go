package namespace

import "github.com/aretw0/awsh/pkg/domain"

// Kind tags a Node as a navigable Category or an invocable Action.
type Kind int

const (
	KindCategory Kind = iota
	KindAction
)

func (k Kind) String() string {
	if k == KindAction {
		return "action"
	}
	return "category"
}

// Node is an immutable element of the Tree.
type Node struct {
	name        string
	kind        Kind
	description string
	handler     domain.ActionHandler

	children []*Node
	index    map[string]int
}

// Name returns the segment name of the node.
func (n *Node) Name() string { return n.name }

// Kind returns the node tag.
func (n *Node) Kind() Kind { return n.kind }

// IsCategory reports whether the node can be navigated into.
func (n *Node) IsCategory() bool { return n.kind == KindCategory }

// IsAction reports whether the node can be invoked.
func (n *Node) IsAction() bool { return n.kind == KindAction }

// Description is the optional human text attached at construction.
func (n *Node) Description() string { return n.description }

// Handler returns the bound handler. It is nil for Categories.
func (n *Node) Handler() domain.ActionHandler { return n.handler }

// Child returns the named child of a Category.
func (n *Node) Child(name string) (*Node, bool) {
	i, ok := n.index[name]
	if !ok {
		return nil, false
	}
	return n.children[i], true
}

// Children returns the children in construction order.
// The returned slice is a copy; the nodes themselves are shared and immutable.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildNames returns the child names in construction order.
func (n *Node) ChildNames() []string {
	names := make([]string, len(n.children))
	for i, c := range n.children {
		names[i] = c.name
	}
	return names
}

// Entry describes the node as a listing entry.
func (n *Node) Entry() domain.Entry {
	kind := domain.EntryCategory
	if n.kind == KindAction {
		kind = domain.EntryAction
	}
	return domain.Entry{Name: n.name, Kind: kind, Description: n.description}
}
