package config

import (
	"fmt"

	"github.com/aretw0/awsh/pkg/adapters/process"
	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
	"github.com/aretw0/awsh/pkg/registry"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Keys that turn a mapping into an action leaf when their value is a scalar.
const (
	keyCommand     = "command"
	keyHandler     = "handler"
	keyDescription = "description"
)

// ActionSpec is the decoded form of an action leaf.
// Exactly one of Command or Handler must be set.
type ActionSpec struct {
	Command     string            `mapstructure:"command"`
	Args        []string          `mapstructure:"args"`
	Env         map[string]string `mapstructure:"env"`
	Handler     string            `mapstructure:"handler"`
	Description string            `mapstructure:"description"`
}

// Entry is one decoded namespace entry, in file order.
type Entry struct {
	Name        string
	Description string
	Action      *ActionSpec
	Children    []Entry
	Line        int
}

// Entries decodes the namespace section.
func (c *Config) Entries() ([]Entry, error) {
	if c.Namespace.Kind == 0 {
		return nil, nil
	}
	_, children, err := decodeCategory(&c.Namespace)
	return children, err
}

func decodeCategory(node *yaml.Node) (string, []Entry, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return "", nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return "", nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	var description string
	var entries []Entry
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if value.Kind == yaml.ScalarNode && value.Tag != "!!null" {
			if key.Value == keyDescription {
				description = value.Value
				continue
			}
			return "", nil, fmt.Errorf("line %d: %q: expected a category or an action", key.Line, key.Value)
		}

		entry := Entry{Name: key.Value, Line: key.Line}
		if isAction(value) {
			spec, err := decodeAction(value)
			if err != nil {
				return "", nil, fmt.Errorf("line %d: action %q: %w", key.Line, key.Value, err)
			}
			entry.Action = spec
			entry.Description = spec.Description
		} else {
			desc, children, err := decodeCategory(value)
			if err != nil {
				return "", nil, err
			}
			entry.Description = desc
			entry.Children = children
		}
		entries = append(entries, entry)
	}
	return description, entries, nil
}

func isAction(node *yaml.Node) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if (key.Value == keyCommand || key.Value == keyHandler) && value.Kind == yaml.ScalarNode {
			return true
		}
	}
	return false
}

func decodeAction(node *yaml.Node) (*ActionSpec, error) {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}

	var spec ActionSpec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &spec,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	switch {
	case spec.Command != "" && spec.Handler != "":
		return nil, fmt.Errorf("set either command or handler, not both")
	case spec.Command == "" && spec.Handler == "":
		return nil, fmt.Errorf("missing command or handler")
	}
	return &spec, nil
}

// BuildTree turns the namespace section into an immutable tree.
// Leaves with `command` are registered on procs under their path; leaves with
// `handler` resolve against reg first, then against the configured handlers.
func (c *Config) BuildTree(reg *registry.Registry, procs *process.Runner) (*namespace.Tree, error) {
	policy, err := namespace.ParseCollisionPolicy(c.Collisions)
	if err != nil {
		return nil, err
	}

	named, err := process.Index(c.Handlers)
	if err != nil {
		return nil, err
	}
	for _, p := range named {
		procs.Register(p)
	}

	entries, err := c.Entries()
	if err != nil {
		return nil, err
	}

	root := c.Root
	if root == "" {
		root = domain.DefaultRoot
	}

	b := &treeBinder{reg: reg, procs: procs}
	children, err := b.specs([]string{root}, entries)
	if err != nil {
		return nil, err
	}

	return namespace.Build(namespace.Spec{Name: root, Children: children}, namespace.WithCollisionPolicy(policy))
}

type treeBinder struct {
	reg   *registry.Registry
	procs *process.Runner
}

func (b *treeBinder) specs(parent []string, entries []Entry) ([]namespace.Spec, error) {
	out := make([]namespace.Spec, 0, len(entries))
	for _, e := range entries {
		path := append(append([]string{}, parent...), e.Name)
		spec := namespace.Spec{Name: e.Name, Description: e.Description}

		if e.Action != nil {
			handler, err := b.handler(path, e.Action)
			if err != nil {
				return nil, fmt.Errorf("line %d: action %s: %w", e.Line, domain.Position(path).String(), err)
			}
			spec.Handler = handler
		} else {
			children, err := b.specs(path, e.Children)
			if err != nil {
				return nil, err
			}
			spec.Children = children
		}
		out = append(out, spec)
	}
	return out, nil
}

func (b *treeBinder) handler(path []string, a *ActionSpec) (domain.ActionHandler, error) {
	if a.Handler != "" {
		if b.reg != nil {
			if h, err := b.reg.Lookup(a.Handler); err == nil {
				return h, nil
			}
		}
		if b.procs.Registered(a.Handler) {
			return b.procs.Handler(a.Handler), nil
		}
		return nil, fmt.Errorf("handler not found: %s", a.Handler)
	}

	key := domain.Position(path).String()
	b.procs.Register(process.ProcessConfig{
		Name:        key,
		Command:     a.Command,
		Args:        a.Args,
		Environment: a.Env,
		Description: a.Description,
	})
	return b.procs.Handler(key), nil
}
