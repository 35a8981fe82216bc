package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// PromptCache short-circuits identical prompts, keyed by
// (model, prompt hash). A hit means the caller records a zero-cost
// APICost row with cached=true. Expired entries are cleaned up lazily
// on Get; no background goroutine.
type PromptCache struct {
	mu      sync.RWMutex
	entries map[string]*promptEntry
	ttl     time.Duration
}

type promptEntry struct {
	resp     GenerateResponse
	cachedAt time.Time
}

// NewPromptCache creates a prompt cache with the given TTL.
func NewPromptCache(ttl time.Duration) *PromptCache {
	return &PromptCache{
		entries: make(map[string]*promptEntry),
		ttl:     ttl,
	}
}

// CacheKey derives the cache key for a model + prompt pair.
func CacheKey(model, prompt string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + prompt))
	return model + ":" + hex.EncodeToString(sum[:])
}

// Get returns the cached response for key if present and fresh.
func (c *PromptCache) Get(key string) (*GenerateResponse, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.cachedAt) > c.ttl {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.cachedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	resp := entry.resp
	return &resp, true
}

// Set stores a response under key with the current timestamp.
func (c *PromptCache) Set(key string, resp GenerateResponse) {
	c.mu.Lock()
	c.entries[key] = &promptEntry{
		resp:     resp,
		cachedAt: time.Now(),
	}
	c.mu.Unlock()
}
