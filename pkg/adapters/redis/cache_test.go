package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/latticeui/lattice/pkg/adapters/redis"
	"github.com/latticeui/lattice/pkg/domain"
	"github.com/latticeui/lattice/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCache_Contract(t *testing.T) {
	// Setup miniredis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	// Run contract
	cache := redis.NewFromClient(client)
	tests.RenderCacheContractTest(t, cache)
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	// Cache with 1s TTL
	cache := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	tree := &domain.RenderTree{
		Path:   "/",
		Locale: "en",
		Sections: []*domain.RenderNode{
			{Type: "div", Content: "Home"},
		},
	}

	// 1. Set
	err = cache.Set(ctx, tree)
	assert.NoError(t, err)

	// 2. Verify Get (immediately)
	got, err := cache.Get(ctx, "/", "en")
	assert.NoError(t, err)
	assert.Equal(t, "Home", got.Sections[0].Content)

	// 3. Fast Forward time in miniredis (for Key Expiration)
	mr.FastForward(2 * time.Second)

	// 4. Verify Get (should miss)
	_, err = cache.Get(ctx, "/", "en")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCache_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	// Custom prefix
	cache := redis.NewFromClient(client, redis.WithPrefix("custom:render:"))
	ctx := context.Background()

	err = cache.Set(ctx, &domain.RenderTree{Path: "/about", Locale: "fr"})
	assert.NoError(t, err)

	// Verify keys in Redis directly
	// Key should be "custom:render:fr:/about"
	exists := mr.Exists("custom:render:fr:/about")
	assert.True(t, exists, "Expected key with custom prefix to exist")

	// Index should be "custom:render:index"
	existsIndex := mr.Exists("custom:render:index")
	assert.True(t, existsIndex, "Expected index with custom prefix to exist")
}

func TestRedisCache_PurgeDropsIndex(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	cache := redis.NewFromClient(client)
	ctx := context.Background()

	assert.NoError(t, cache.Set(ctx, &domain.RenderTree{Path: "/a", Locale: "en"}))
	assert.NoError(t, cache.Set(ctx, &domain.RenderTree{Path: "/b", Locale: "en"}))
	assert.NoError(t, cache.Purge(ctx))

	assert.False(t, mr.Exists("lattice:render:en:/a"))
	assert.False(t, mr.Exists("lattice:render:en:/b"))
	assert.False(t, mr.Exists("lattice:render:index"))
}
