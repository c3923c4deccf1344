// Package memory provides an in-memory ports.SiteLoader, used by
// tests, the DSL builder and embedded scenarios.
package memory

import (
	"encoding/json"
	"fmt"

	"github.com/latticeui/lattice/pkg/domain"
)

// Loader implements ports.SiteLoader over an in-memory site.
type Loader struct {
	site domain.Site
}

// NewLoader creates a loader from a raw JSON site definition.
func NewLoader(data string) (*Loader, error) {
	var site domain.Site
	if err := json.Unmarshal([]byte(data), &site); err != nil {
		return nil, fmt.Errorf("failed to parse site definition: %w", err)
	}
	return &Loader{site: site}, nil
}

// NewFromSite creates a loader from domain objects. This skips
// serialization entirely, improving DX for tests.
func NewFromSite(site domain.Site) *Loader {
	return &Loader{site: site}
}

// NewFromBlocks creates a loader holding only a block library, for
// resolving blocks directly without pages.
func NewFromBlocks(blocks ...domain.Node) (*Loader, error) {
	for _, b := range blocks {
		if b.Name == "" {
			return nil, fmt.Errorf("block missing name")
		}
	}
	return &Loader{site: domain.Site{Blocks: blocks}}, nil
}

// Site returns the in-memory site definition.
func (l *Loader) Site() (*domain.Site, error) {
	return &l.site, nil
}
