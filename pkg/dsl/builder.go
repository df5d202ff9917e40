package dsl

import (
	"fmt"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
)

// Builder manages the namespace construction.
type Builder struct {
	root *CategoryBuilder
	opts []namespace.BuildOption
	errs []error
}

// New creates a new namespace builder rooted at rootName.
func New(rootName string, opts ...namespace.BuildOption) *Builder {
	b := &Builder{opts: opts}
	b.root = &CategoryBuilder{spec: &namespace.Spec{Name: rootName}, lastAction: -1, builder: b}
	return b
}

// Root returns the builder of the root Category.
func (b *Builder) Root() *CategoryBuilder {
	return b.root
}

// Category opens (or reopens) a top-level Category.
func (b *Builder) Category(name string) *CategoryBuilder {
	return b.root.Category(name)
}

// Action binds a top-level Action.
func (b *Builder) Action(name string, handler domain.ActionHandler) *CategoryBuilder {
	return b.root.Action(name, handler)
}

// Build compiles the declaration into a Tree.
func (b *Builder) Build() (*namespace.Tree, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("failed to build namespace: %w", b.errs[0])
	}
	tree, err := namespace.Build(b.root.snapshot(), b.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build namespace: %w", err)
	}
	return tree, nil
}

// MustBuild is Build for static declarations; it panics on error.
func (b *Builder) MustBuild() *namespace.Tree {
	tree, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tree
}

func (b *Builder) fail(err error) {
	b.errs = append(b.errs, err)
}
