package project

import (
	"errors"
	"fmt"

	"github.com/kris-hansen/dctl/internal/config"
)

// ErrNotFound is returned when no project is registered under an alias.
var ErrNotFound = errors.New("project not found")

// Registry holds the configured projects in declaration order.
type Registry struct {
	projects []Project
	index    map[string]int
}

// NewRegistry builds a registry from config entries. Aliases must be
// non-empty and unique.
func NewRegistry(collections []config.Collection) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(collections))}

	for _, c := range collections {
		p, err := FromCollection(c)
		if err != nil {
			return nil, err
		}
		if _, dup := r.index[p.Alias]; dup {
			return nil, fmt.Errorf("project alias %q is declared more than once", p.Alias)
		}
		r.index[p.Alias] = len(r.projects)
		r.projects = append(r.projects, p)
	}

	return r, nil
}

// Lookup returns the project registered under alias.
func (r *Registry) Lookup(alias string) (Project, bool) {
	i, ok := r.index[alias]
	if !ok {
		return Project{}, false
	}
	return r.projects[i], true
}

// Resolve is Lookup that reports a miss as an error wrapping ErrNotFound.
func (r *Registry) Resolve(alias string) (Project, error) {
	p, ok := r.Lookup(alias)
	if !ok {
		return Project{}, fmt.Errorf("%w: no project with alias %q", ErrNotFound, alias)
	}
	return p, nil
}

// All returns every project in declaration order.
func (r *Registry) All() []Project {
	out := make([]Project, len(r.projects))
	copy(out, r.projects)
	return out
}

// Aliases returns every alias in declaration order.
func (r *Registry) Aliases() []string {
	out := make([]string, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p.Alias)
	}
	return out
}

// Len returns the number of registered projects.
func (r *Registry) Len() int {
	return len(r.projects)
}
