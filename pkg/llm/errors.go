package llm

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingAPIKey indicates the provider credential is absent.
	// Treated as a startup (permanent config) failure.
	ErrMissingAPIKey = errors.New("missing LLM API key")

	// ErrEmptyResponse indicates the provider returned no candidates.
	ErrEmptyResponse = errors.New("empty LLM response")
)

// TransientError marks an error as retryable: network timeouts and
// provider 5xx responses. Fully recovered inside the client via
// exponential backoff; callers only see it after retries are exhausted.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient LLM error: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// RateLimitError carries the provider's Retry-After hint. The rate
// limiter sleeps that duration (plus jitter) before resuming.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// IsTransient reports whether err is retryable (transient or
// rate-limit).
func IsTransient(err error) bool {
	var te *TransientError
	var re *RateLimitError
	return errors.As(err, &te) || errors.As(err, &re)
}
