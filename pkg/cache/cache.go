// Package cache is the read-through cache for listing endpoints: a
// bounded in-process LRU tier with an optional distributed tier behind
// it. Values are opaque byte slices (JSON-encoded responses).
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
)

// Cache is the interface the API handlers and jobs depend on. A no-op
// implementation is available for tests.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	InvalidatePrefix(ctx context.Context, prefix string)
}

type localEntry struct {
	value     []byte
	expiresAt time.Time
}

// TwoTier caches locally with LRU eviction and lazy TTL expiry, and
// mirrors entries into a distributed KV when one is configured.
// Distributed failures degrade to tier-1-only operation.
type TwoTier struct {
	local  *lru.Cache[string, localEntry]
	remote *redis.Client
	logger *slog.Logger
}

// New creates a two-tier cache. remote may be nil for tier-1-only
// operation.
func New(localSize int, remote *redis.Client, logger *slog.Logger) (*TwoTier, error) {
	if localSize <= 0 {
		localSize = 256
	}
	local, err := lru.New[string, localEntry](localSize)
	if err != nil {
		return nil, err
	}
	return &TwoTier{local: local, remote: remote, logger: logger}, nil
}

// Get checks the local tier first; on a local miss it falls through to
// the distributed tier and backfills locally on a hit. Expired local
// entries are removed lazily.
func (c *TwoTier) Get(ctx context.Context, key string) ([]byte, bool) {
	if entry, ok := c.local.Get(key); ok {
		if time.Now().Before(entry.expiresAt) {
			return entry.value, true
		}
		c.local.Remove(key)
	}

	if c.remote == nil {
		return nil, false
	}

	value, err := c.remote.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("distributed cache get failed", "key", key, "error", err)
		}
		return nil, false
	}

	ttl, err := c.remote.TTL(ctx, key).Result()
	if err != nil || ttl <= 0 {
		ttl = time.Minute
	}
	c.local.Add(key, localEntry{value: value, expiresAt: time.Now().Add(ttl)})
	return value, true
}

// Set stores the value in both tiers.
func (c *TwoTier) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.local.Add(key, localEntry{value: value, expiresAt: time.Now().Add(ttl)})

	if c.remote == nil {
		return
	}
	if err := c.remote.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("distributed cache set failed", "key", key, "error", err)
	}
}

// InvalidatePrefix drops every entry whose key starts with prefix from
// both tiers. Jobs call this on completion (the scorer invalidates
// signal listings, the lifecycle engine invalidates narrative listings).
func (c *TwoTier) InvalidatePrefix(ctx context.Context, prefix string) {
	for _, key := range c.local.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.local.Remove(key)
		}
	}

	if c.remote == nil {
		return
	}

	var cursor uint64
	for {
		keys, next, err := c.remote.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			c.logger.Warn("distributed cache scan failed", "prefix", prefix, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.remote.Del(ctx, keys...).Err(); err != nil {
				c.logger.Warn("distributed cache delete failed", "prefix", prefix, "error", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

// Noop satisfies Cache without storing anything. Used in tests and when
// caching is disabled.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool)         { return nil, false }
func (Noop) Set(context.Context, string, []byte, time.Duration) {}
func (Noop) InvalidatePrefix(context.Context, string)           {}
