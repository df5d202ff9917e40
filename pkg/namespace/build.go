package namespace

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/awsh/pkg/domain"
)

// Spec is the plain construction input for a Tree.
// A Spec with a Handler is an Action; any other Spec is a Category.
type Spec struct {
	Name        string
	Description string
	Handler     domain.ActionHandler
	Children    []Spec
}

// CollisionPolicy decides what happens when a tree entry is named like a built-in.
type CollisionPolicy int

const (
	// RejectBuiltinNames fails Build when any entry is named "ls" or "cd".
	RejectBuiltinNames CollisionPolicy = iota
	// ShadowBuiltins accepts such entries; dispatch still resolves the
	// built-in first, so the entry is only reachable as a cd path segment.
	ShadowBuiltins
)

func (p CollisionPolicy) String() string {
	if p == ShadowBuiltins {
		return "shadow"
	}
	return "reject"
}

// ParseCollisionPolicy maps the configuration spelling to a policy.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return RejectBuiltinNames, nil
	case "shadow":
		return ShadowBuiltins, nil
	}
	return RejectBuiltinNames, fmt.Errorf("unknown collision policy %q (expected reject or shadow)", s)
}

// BuildError reports an invalid Spec. Path points at the offending entry.
type BuildError struct {
	Path   []string
	Reason string
}

func (e *BuildError) Error() string {
	if len(e.Path) == 0 {
		return "invalid namespace: " + e.Reason
	}
	return fmt.Sprintf("invalid namespace entry %s: %s", domain.Position(e.Path).String(), e.Reason)
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	policy CollisionPolicy
}

// WithCollisionPolicy selects how built-in name collisions are treated.
func WithCollisionPolicy(p CollisionPolicy) BuildOption {
	return func(c *buildConfig) {
		c.policy = p
	}
}

// Build validates spec and produces an immutable Tree.
func Build(spec Spec, opts ...BuildOption) (*Tree, error) {
	cfg := buildConfig{policy: RejectBuiltinNames}
	for _, opt := range opts {
		opt(&cfg)
	}

	if spec.Handler != nil {
		return nil, &BuildError{Path: []string{spec.Name}, Reason: "root must be a category"}
	}

	root, depth, err := buildNode(nil, spec, cfg)
	if err != nil {
		return nil, err
	}

	return &Tree{root: root, depthLimit: depth, policy: cfg.policy}, nil
}

// buildNode returns the node and the deepest segment count beneath it, itself included.
func buildNode(parent []string, spec Spec, cfg buildConfig) (*Node, int, error) {
	path := append(append([]string{}, parent...), spec.Name)

	if err := validateName(spec.Name); err != nil {
		return nil, 0, &BuildError{Path: path, Reason: err.Error()}
	}
	if len(parent) > 0 && cfg.policy == RejectBuiltinNames && domain.IsBuiltin(spec.Name) {
		return nil, 0, &BuildError{Path: path, Reason: fmt.Sprintf("%q collides with a built-in command", spec.Name)}
	}

	if spec.Handler != nil {
		if len(spec.Children) > 0 {
			return nil, 0, &BuildError{Path: path, Reason: "an action cannot have children"}
		}
		return &Node{
			name:        spec.Name,
			kind:        KindAction,
			description: spec.Description,
			handler:     spec.Handler,
		}, len(path), nil
	}

	n := &Node{
		name:        spec.Name,
		kind:        KindCategory,
		description: spec.Description,
		children:    make([]*Node, 0, len(spec.Children)),
		index:       make(map[string]int, len(spec.Children)),
	}
	deepest := len(path)
	for _, childSpec := range spec.Children {
		if _, dup := n.index[childSpec.Name]; dup {
			return nil, 0, &BuildError{Path: append(path, childSpec.Name), Reason: "duplicate entry"}
		}
		child, depth, err := buildNode(path, childSpec, cfg)
		if err != nil {
			return nil, 0, err
		}
		n.index[child.name] = len(n.children)
		n.children = append(n.children, child)
		if depth > deepest {
			deepest = depth
		}
	}
	return n, deepest, nil
}

func validateName(name string) error {
	switch name {
	case "":
		return fmt.Errorf("empty name")
	case domain.ParentSegment, domain.CurrentSegment:
		return fmt.Errorf("%q is reserved for path navigation", name)
	}
	if strings.Contains(name, domain.PathSeparator) {
		return fmt.Errorf("name %q contains %q", name, domain.PathSeparator)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("name %q contains whitespace", name)
	}
	return nil
}
