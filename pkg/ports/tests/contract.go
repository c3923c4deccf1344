package tests

import (
	"context"
	"testing"

	"github.com/latticeui/lattice/pkg/domain"
	"github.com/latticeui/lattice/pkg/ports"
)

// RenderCacheContractTest is a reusable suite that verifies an adapter
// complies with ports.RenderCache.
func RenderCacheContractTest(t *testing.T, cache ports.RenderCache) {
	t.Helper()
	ctx := context.Background()

	tree := &domain.RenderTree{
		Path:   "/pricing",
		Locale: "en-US",
		Sections: []*domain.RenderNode{
			{Type: "div", BlockName: "hero", Content: "Plans"},
		},
	}

	t.Run("Set_Get", func(t *testing.T) {
		if err := cache.Set(ctx, tree); err != nil {
			t.Fatalf("unexpected error setting tree: %v", err)
		}
		got, err := cache.Get(ctx, "/pricing", "en-US")
		if err != nil {
			t.Fatalf("unexpected error getting tree: %v", err)
		}
		if got.Path != tree.Path || got.Locale != tree.Locale {
			t.Errorf("identity mismatch: got %s/%s, want %s/%s", got.Path, got.Locale, tree.Path, tree.Locale)
		}
		if len(got.Sections) != 1 || got.Sections[0].Content != "Plans" {
			t.Errorf("sections not preserved: %+v", got.Sections)
		}
	})

	t.Run("Get_Miss", func(t *testing.T) {
		if _, err := cache.Get(ctx, "/absent", "en-US"); err != domain.ErrCacheMiss {
			t.Errorf("expected ErrCacheMiss, got %v", err)
		}
	})

	t.Run("Locale_Isolation", func(t *testing.T) {
		if _, err := cache.Get(ctx, "/pricing", "fr"); err != domain.ErrCacheMiss {
			t.Errorf("expected miss for other locale, got %v", err)
		}
	})

	t.Run("Purge", func(t *testing.T) {
		if err := cache.Set(ctx, tree); err != nil {
			t.Fatalf("unexpected error setting tree: %v", err)
		}
		if err := cache.Purge(ctx); err != nil {
			t.Fatalf("unexpected error purging: %v", err)
		}
		if _, err := cache.Get(ctx, "/pricing", "en-US"); err != domain.ErrCacheMiss {
			t.Errorf("expected miss after purge, got %v", err)
		}
	})
}
