// pkg/canvas/registry.go
package canvas

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a surface is looked up by an identifier no
// surface was registered under.
var ErrNotFound = errors.New("surface not found")

// Registry holds surfaces by logical identifier so callers can attach to
// them by name.
type Registry struct {
	surfaces map[string]*Surface
}

func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]*Surface)}
}

// Add registers the surface under its own ID, replacing any previous
// surface with the same ID.
func (r *Registry) Add(s *Surface) {
	r.surfaces[s.ID()] = s
}

// Lookup returns the surface registered under id, or ErrNotFound.
func (r *Registry) Lookup(id string) (*Surface, error) {
	s, ok := r.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("canvas: %q: %w", id, ErrNotFound)
	}
	return s, nil
}

// Len returns the number of registered surfaces.
func (r *Registry) Len() int { return len(r.surfaces) }
