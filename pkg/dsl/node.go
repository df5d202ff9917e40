package dsl

import (
	"context"
	"fmt"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
)

// CategoryBuilder provides a fluent API for configuring a Category.
type CategoryBuilder struct {
	spec       *namespace.Spec
	children   []*CategoryBuilder
	lastAction int // index into spec.Children of the last Action, -1 if none
	builder    *Builder
}

// Category opens a child Category. If the child already exists, it returns
// the existing builder so declarations can be split across call sites.
func (c *CategoryBuilder) Category(name string) *CategoryBuilder {
	for _, child := range c.children {
		if child.spec.Name == name {
			return child
		}
	}
	child := &CategoryBuilder{
		spec:       &namespace.Spec{Name: name},
		lastAction: -1,
		builder:    c.builder,
	}
	c.children = append(c.children, child)
	// Placeholder keeps sibling order; snapshot replaces it with the child's spec.
	c.spec.Children = append(c.spec.Children, namespace.Spec{Name: name})
	return child
}

// Action binds a leaf to handler. It returns the receiver so sibling actions
// can be chained.
func (c *CategoryBuilder) Action(name string, handler domain.ActionHandler) *CategoryBuilder {
	if handler == nil {
		c.builder.fail(fmt.Errorf("action %q: nil handler", name))
		return c
	}
	c.spec.Children = append(c.spec.Children, namespace.Spec{Name: name, Handler: handler})
	c.lastAction = len(c.spec.Children) - 1
	return c
}

// ActionFunc binds a leaf to a plain function.
func (c *CategoryBuilder) ActionFunc(name string, fn func(ctx context.Context, call domain.ActionCall) error) *CategoryBuilder {
	if fn == nil {
		return c.Action(name, nil)
	}
	return c.Action(name, domain.ActionFunc(fn))
}

// Describe attaches help text to the most recent Action, or to the Category
// itself when no Action has been declared on it yet.
func (c *CategoryBuilder) Describe(text string) *CategoryBuilder {
	if c.lastAction >= 0 {
		c.spec.Children[c.lastAction].Description = text
		return c
	}
	c.spec.Description = text
	return c
}

// snapshot materialises the Spec, resolving Category placeholders.
func (c *CategoryBuilder) snapshot() namespace.Spec {
	out := namespace.Spec{
		Name:        c.spec.Name,
		Description: c.spec.Description,
		Children:    make([]namespace.Spec, 0, len(c.spec.Children)),
	}
	byName := make(map[string]*CategoryBuilder, len(c.children))
	for _, child := range c.children {
		byName[child.spec.Name] = child
	}
	for _, s := range c.spec.Children {
		if s.Handler == nil {
			if child, ok := byName[s.Name]; ok {
				out.Children = append(out.Children, child.snapshot())
				delete(byName, s.Name)
				continue
			}
		}
		out.Children = append(out.Children, s)
	}
	return out
}
