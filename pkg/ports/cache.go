package ports

import (
	"context"

	"github.com/latticeui/lattice/pkg/domain"
)

// RenderCache stores resolved render trees. Keys combine page path and
// locale; a Get for an absent key returns domain.ErrCacheMiss.
//
// The cache is an optimization layer only: resolution is pure, so a
// cache failure is never fatal and callers fall through to resolving.
type RenderCache interface {
	Get(ctx context.Context, path, locale string) (*domain.RenderTree, error)
	Set(ctx context.Context, tree *domain.RenderTree) error
	// Purge drops every cached tree (used on site reload).
	Purge(ctx context.Context) error
}
