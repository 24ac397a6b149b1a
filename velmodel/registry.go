package velmodel

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a concurrency-safe store of named velocity models.
type Registry struct {
	mu     sync.RWMutex
	models map[string]*LayeredModel
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*LayeredModel)}
}

// Register adds m under its name.
func (r *Registry) Register(m *LayeredModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.models[m.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrModelExists, m.Name())
	}
	r.models[m.Name()] = m
	return nil
}

// Get returns the model registered under name.
func (r *Registry) Get(name string) (*LayeredModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	return m, nil
}

// Names returns the registered model names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.models))
	for n := range r.models {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry preloaded with the built-in models.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := defaultRegistry.Register(PREM()); err != nil {
			panic("velmodel: register built-ins: " + err.Error())
		}
	})
	return defaultRegistry
}
