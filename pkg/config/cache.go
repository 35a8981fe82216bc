package config

import (
	"os"
	"time"
)

// CacheConfig tunes the two-tier listing cache. An empty URL disables
// the distributed tier; the in-process tier always runs.
type CacheConfig struct {
	// URL is the redis connection URL (redis://host:port/db).
	URL string

	// LocalSize bounds the in-process LRU tier.
	LocalSize int

	// TTLSignals applies to signal listing keys, TTLNarratives to
	// narrative listing keys.
	TTLSignals    time.Duration
	TTLNarratives time.Duration
}

// DefaultCacheConfig returns the built-in cache defaults.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		LocalSize:     256,
		TTLSignals:    120 * time.Second,
		TTLNarratives: 600 * time.Second,
	}
}

func (c *CacheConfig) loadEnv() error {
	c.URL = os.Getenv("CACHE_URL")

	var err error
	if c.LocalSize, err = envInt("CACHE_LOCAL_SIZE", c.LocalSize); err != nil {
		return err
	}
	if c.TTLSignals, err = envSeconds("CACHE_TTL_SIGNALS_SECONDS", c.TTLSignals); err != nil {
		return err
	}
	if c.TTLNarratives, err = envSeconds("CACHE_TTL_NARRATIVES_SECONDS", c.TTLNarratives); err != nil {
		return err
	}
	return nil
}
