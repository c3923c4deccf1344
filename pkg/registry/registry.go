// Package registry holds the named block library. A registry is built
// once from a validated site definition and frozen; resolutions from
// any number of goroutines read it without coordination.
package registry

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/latticeui/lattice/pkg/domain"
)

// namePattern is the kebab-case contract for block names.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Registry is an immutable snapshot of named blocks.
type Registry struct {
	blocks map[string]domain.Node
}

// New builds a registry from block definitions. It rejects unnamed
// blocks, names that are not kebab-case, and duplicates.
func New(blocks []domain.Node) (*Registry, error) {
	m := make(map[string]domain.Node, len(blocks))
	for _, b := range blocks {
		if b.Name == "" {
			return nil, fmt.Errorf("block missing name")
		}
		if !namePattern.MatchString(b.Name) {
			return nil, fmt.Errorf("block name %q is not kebab-case", b.Name)
		}
		if _, exists := m[b.Name]; exists {
			return nil, fmt.Errorf("duplicate block name %q", b.Name)
		}
		m[b.Name] = b
	}
	return &Registry{blocks: m}, nil
}

// Get returns the block for a name.
func (r *Registry) Get(name string) (domain.Node, error) {
	b, ok := r.blocks[name]
	if !ok {
		return domain.Node{}, fmt.Errorf("%w: %s", domain.ErrBlockNotFound, name)
	}
	return b, nil
}

// Has reports whether a block with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.blocks[name]
	return ok
}

// Names returns all registered block names in deterministic order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.blocks))
	for name := range r.blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered blocks.
func (r *Registry) Len() int { return len(r.blocks) }
