package indicator

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownIndicator is returned for names no definition is registered under.
var ErrUnknownIndicator = errors.New("unknown indicator")

// Registry manages indicator definitions
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]*Definition
}

// NewRegistry creates a new indicator registry
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]*Definition),
	}
}

// Register registers a definition with the registry
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return fmt.Errorf("definition cannot be nil")
	}
	if def.Name == "" {
		return fmt.Errorf("definition name cannot be empty")
	}
	if def.lookback == nil || def.compute == nil {
		return fmt.Errorf("definition %q has no compute function", def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[def.Name]; exists {
		return fmt.Errorf("indicator %q already registered", def.Name)
	}

	r.definitions[def.Name] = def
	return nil
}

// Get retrieves a definition by name
func (r *Registry) Get(name string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.definitions[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}

	return def, nil
}

// List returns all registered definitions sorted by name
func (r *Registry) List() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*Definition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})

	return defs
}

// Names returns the sorted names of all registered indicators
func (r *Registry) Names() []string {
	defs := r.List()
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	return names
}

// Unregister removes a definition from the registry
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[name]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}

	delete(r.definitions, name)
	return nil
}

// Len returns the number of registered indicators
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.definitions)
}
