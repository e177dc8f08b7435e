// Package generator provides the domain generators that turn an application
// requirement into per-domain file bundles by calling tool providers.
package generator

import (
	"context"

	"github.com/appforge/appforge/internal/spec"
)

// Bundle maps a relative output file path to its generated text content.
type Bundle map[string]string

// Generator defines the interface for all domain generators.
type Generator interface {
	// Name returns the name of the generator.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Generate produces the generator's file bundle for the requirement.
	Generate(ctx context.Context, req *spec.AppRequirement) (Bundle, error)
}

// Registry manages available generators. It is an extension point: nothing in
// the coordinator dispatches through it yet, and the last registration under
// a given name wins.
type Registry struct {
	generators map[string]Generator
	order      []string
}

// NewRegistry creates a new generator registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry, replacing any previous
// registration under the same name.
func (r *Registry) Register(g Generator) {
	name := g.Name()
	if _, exists := r.generators[name]; !exists {
		r.order = append(r.order, name)
	}
	r.generators[name] = g
}

// Get retrieves a generator by name.
func (r *Registry) Get(name string) (Generator, bool) {
	g, exists := r.generators[name]
	return g, exists
}

// List returns all registered generator names in registration order.
func (r *Registry) List() []string {
	return append([]string(nil), r.order...)
}
