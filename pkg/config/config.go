// Package config holds the resolved runtime configuration for the
// pipeline: LLM settings, pipeline tuning knobs, cache settings, and
// the HTTP listen address. Values come from environment variables with
// built-in defaults; a .env file is honored in development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the top-level runtime configuration.
type Config struct {
	LLM       LLMConfig
	Pipeline  PipelineConfig
	Cache     CacheConfig
	Scheduler SchedulerConfig
	Feeds     []FeedConfig
	HTTPPort  int
	LogLevel  slog.Level
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present (development
// convenience; real deployments set the environment directly).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LLM:       DefaultLLMConfig(),
		Pipeline:  DefaultPipelineConfig(),
		Cache:     DefaultCacheConfig(),
		Scheduler: DefaultSchedulerConfig(),
		HTTPPort:  8080,
		LogLevel:  slog.LevelInfo,
	}

	var err error
	if err = cfg.LLM.loadEnv(); err != nil {
		return nil, err
	}
	if err = cfg.Pipeline.loadEnv(); err != nil {
		return nil, err
	}
	if err = cfg.Cache.loadEnv(); err != nil {
		return nil, err
	}
	if err = cfg.Scheduler.loadEnv(); err != nil {
		return nil, err
	}
	if cfg.Feeds, err = loadFeeds(); err != nil {
		return nil, err
	}

	if cfg.HTTPPort, err = envInt("HTTP_PORT", cfg.HTTPPort); err != nil {
		return nil, err
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("%w: LOG_LEVEL=%q", ErrInvalidValue, level)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails loudly on configuration that cannot work. Called at
// startup; a non-nil error exits the process.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return err
	}
	if err := c.Pipeline.validate(); err != nil {
		return err
	}
	if err := c.Scheduler.validate(); err != nil {
		return err
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("%w: HTTP_PORT=%d", ErrInvalidValue, c.HTTPPort)
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
	}
	return v, nil
}

func envFloat(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
	}
	return v, nil
}

func envSeconds(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
	}
	return time.Duration(v * float64(time.Second)), nil
}
