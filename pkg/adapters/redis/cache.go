// Package redis implements ports.RenderCache on Redis. Resolved render
// trees are stored as JSON under a configurable prefix with an
// optional TTL; an index set tracks live keys so Purge can drop them
// without a blocking SCAN.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/latticeui/lattice/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.RenderCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the expiration for cached trees.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached trees.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "lattice:render:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

func (c *Cache) key(path, locale string) string {
	return c.prefix + locale + ":" + path
}

func (c *Cache) indexKey() string {
	return c.prefix + "index"
}

// Set stores a resolved tree under its path and locale.
func (c *Cache) Set(ctx context.Context, tree *domain.RenderTree) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to marshal render tree: %w", err)
	}

	key := c.key(tree.Path, tree.Locale)
	pipe := c.client.Pipeline()
	pipe.Set(ctx, key, data, c.ttl)
	pipe.SAdd(ctx, c.indexKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save render tree to redis: %w", err)
	}
	return nil
}

// Get loads a cached tree, or domain.ErrCacheMiss when absent.
func (c *Cache) Get(ctx context.Context, path, locale string) (*domain.RenderTree, error) {
	val, err := c.client.Get(ctx, c.key(path, locale)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to load render tree from redis: %w", err)
	}

	var tree domain.RenderTree
	if err := json.Unmarshal([]byte(val), &tree); err != nil {
		return nil, fmt.Errorf("failed to unmarshal render tree: %w", err)
	}
	return &tree, nil
}

// Purge removes every cached tree. Called after a site reload so stale
// trees never outlive the definitions they were resolved from.
func (c *Cache) Purge(ctx context.Context) error {
	keys, err := c.client.SMembers(ctx, c.indexKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to list cache index: %w", err)
	}

	pipe := c.client.Pipeline()
	if len(keys) > 0 {
		pipe.Del(ctx, keys...)
	}
	pipe.Del(ctx, c.indexKey())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to purge render cache: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
