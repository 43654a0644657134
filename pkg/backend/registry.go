package backend

import (
	"fmt"
	"sync"
)

// Registry manages named backends. The first backend registered becomes the
// default until SetDefault says otherwise.
type Registry struct {
	backends       map[string]Backend
	defaultBackend string
	mu             sync.RWMutex
}

// NewRegistry creates a new backend registry
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]Backend),
	}
}

// Register registers a new backend
func (r *Registry) Register(name string, backend Backend) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[name]; exists {
		return fmt.Errorf("backend %s already registered", name)
	}

	r.backends[name] = backend

	if len(r.backends) == 1 {
		r.defaultBackend = name
	}

	return nil
}

// Get retrieves a backend by name
func (r *Registry) Get(name string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, exists := r.backends[name]
	if !exists {
		return nil, fmt.Errorf("backend %s not found", name)
	}

	return backend, nil
}

// List returns all registered backend names
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	return names
}

// SetDefault sets the default backend
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[name]; !exists {
		return fmt.Errorf("backend %s not found", name)
	}

	r.defaultBackend = name
	return nil
}

// GetDefault returns the default backend
func (r *Registry) GetDefault() (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.defaultBackend == "" {
		return nil, fmt.Errorf("no default backend set")
	}

	backend, exists := r.backends[r.defaultBackend]
	if !exists {
		return nil, fmt.Errorf("default backend %s not found", r.defaultBackend)
	}

	return backend, nil
}
