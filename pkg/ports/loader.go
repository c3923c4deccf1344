package ports

import "github.com/latticeui/lattice/pkg/domain"

// SiteLoader produces the site definition the engine snapshots at
// startup: the block library, the page set and the language
// configuration. Implementations must return data that is safe for
// the engine to keep without copying.
type SiteLoader interface {
	Site() (*domain.Site, error)
}
