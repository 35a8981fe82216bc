package config

import (
	"fmt"
	"os"
)

// LLMConfig tunes the Gemini client and the extraction rate limits.
type LLMConfig struct {
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string

	// ModelEntity handles batched entity extraction (fast/cheap).
	ModelEntity string

	// ModelNarrative handles narrative summarization (high quality).
	ModelNarrative string

	// TokensPerMinute is the provider TPM budget the limiter enforces.
	TokensPerMinute int

	// SafetyMargin keeps steady-state throughput under the provider
	// limit; 0.8 means the limiter spends at most 80% of the budget.
	SafetyMargin float64

	// MaxConcurrent caps in-flight LLM requests.
	MaxConcurrent int
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		APIKeyEnv:       "GEMINI_API_KEY",
		ModelEntity:     "gemini-2.5-flash",
		ModelNarrative:  "gemini-2.5-pro",
		TokensPerMinute: 25000,
		SafetyMargin:    0.8,
		MaxConcurrent:   4,
	}
}

// APIKey resolves the API key from the configured environment variable.
func (c LLMConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

func (c *LLMConfig) loadEnv() error {
	if v := os.Getenv("LLM_MODEL_ENTITY"); v != "" {
		c.ModelEntity = v
	}
	if v := os.Getenv("LLM_MODEL_NARRATIVE"); v != "" {
		c.ModelNarrative = v
	}

	var err error
	if c.TokensPerMinute, err = envInt("LLM_TPM_BUDGET", c.TokensPerMinute); err != nil {
		return err
	}
	if c.SafetyMargin, err = envFloat("LLM_SAFETY_MARGIN", c.SafetyMargin); err != nil {
		return err
	}
	if c.MaxConcurrent, err = envInt("LLM_MAX_CONCURRENT", c.MaxConcurrent); err != nil {
		return err
	}
	return nil
}

func (c LLMConfig) validate() error {
	if c.ModelEntity == "" || c.ModelNarrative == "" {
		return fmt.Errorf("%w: LLM model names must not be empty", ErrInvalidValue)
	}
	if c.TokensPerMinute <= 0 {
		return fmt.Errorf("%w: LLM_TPM_BUDGET=%d", ErrInvalidValue, c.TokensPerMinute)
	}
	if c.SafetyMargin <= 0 || c.SafetyMargin > 1 {
		return fmt.Errorf("%w: LLM_SAFETY_MARGIN=%v (want 0 < margin <= 1)", ErrInvalidValue, c.SafetyMargin)
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("%w: LLM_MAX_CONCURRENT=%d", ErrInvalidValue, c.MaxConcurrent)
	}
	return nil
}
