package states

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores bindings keyed by entity type name so callers (templates,
// form builders) can reach an entity's states by name.
type Registry struct {
	resolver *Resolver
	mu       sync.RWMutex
	bindings map[string]*Binding
}

// NewRegistry constructs an empty registry whose bindings use resolver.
func NewRegistry(resolver *Resolver) *Registry {
	return &Registry{
		resolver: resolver,
		bindings: make(map[string]*Binding),
	}
}

// Register binds entity and stores it under its type name, guarding against
// duplicates. Entities failing the naming rule are rejected.
func (r *Registry) Register(entity StateValueProvider) (*Binding, error) {
	if r.resolver == nil {
		return nil, fmt.Errorf("states: registry resolver is nil")
	}
	binding, err := r.resolver.Bind(entity)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bindings == nil {
		r.bindings = make(map[string]*Binding)
	}
	if _, exists := r.bindings[binding.Name()]; exists {
		return nil, fmt.Errorf("states: entity %q already registered", binding.Name())
	}
	r.bindings[binding.Name()] = binding
	return binding, nil
}

// Lookup returns the binding registered under name.
func (r *Registry) Lookup(name string) (*Binding, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	binding, ok := r.bindings[name]
	r.mu.RUnlock()
	return binding, ok
}

// Call dispatches accessor on the entity registered under name.
func (r *Registry) Call(name, accessor string, args ...any) (any, error) {
	binding, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("states: entity %q not registered", name)
	}
	return binding.Call(accessor, args...)
}

// Names returns registered entity names sorted alphabetically.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
