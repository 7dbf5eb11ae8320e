// Package registry manages the set of available hooks.
package registry

import (
	"fmt"
	"sort"

	"github.com/hookworks/hookrun/internal/hooks"
	"github.com/hookworks/hookrun/internal/manifest"
)

// Registry maps hook ids to their implementations.
type Registry struct {
	byID  map[string]*hooks.Hook
	order []string
}

// New creates a registry populated with the builtin hooks.
func New() *Registry {
	r := &Registry{byID: make(map[string]*hooks.Hook)}
	for _, h := range hooks.Builtins() {
		r.byID[h.ID] = h
		r.order = append(r.order, h.ID)
	}
	return r
}

// Get retrieves a hook by id.
func (r *Registry) Get(id string) (*hooks.Hook, bool) {
	h, ok := r.byID[id]
	return h, ok
}

// All returns all hooks in registration order.
func (r *Registry) All() []*hooks.Hook {
	result := make([]*hooks.Hook, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result
}

// Names returns all hook ids sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byID))
	for id := range r.byID {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every hook id the manifest mentions is known.
// Unknown ids are a configuration mistake the user should hear about
// before any file is touched.
func (r *Registry) Validate(m *manifest.Manifest) error {
	for _, id := range m.IDs() {
		if _, ok := r.byID[id]; !ok {
			return fmt.Errorf("manifest references unknown hook %q", id)
		}
	}
	return nil
}

// Title returns the help-text description for a hook, preferring a
// manifest override.
func (r *Registry) Title(h *hooks.Hook, m *manifest.Manifest) string {
	if override := m.Hook(h.ID).Description; override != "" {
		return override
	}
	return h.Title
}
