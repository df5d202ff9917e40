package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/awsh/pkg/domain"
)

// Registry maps handler names to ActionHandlers.
// Namespace leaves refer to registered handlers by name.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]domain.ActionHandler
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]domain.ActionHandler),
	}
}

// Register adds a handler to the registry.
// If a handler with the same name exists, it is overwritten.
func (r *Registry) Register(name string, handler domain.ActionHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = handler
}

// RegisterFunc is Register for plain functions.
func (r *Registry) RegisterFunc(name string, fn domain.ActionFunc) {
	r.Register(name, fn)
}

// Lookup returns the named handler.
// Returns an error if the handler is not found.
func (r *Registry) Lookup(name string) (domain.ActionHandler, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("handler not found: %s", name)
	}
	return h, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
