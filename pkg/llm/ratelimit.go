package llm

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"
)

// TokenBudget enforces a per-minute token budget across all LLM calls
// in the process. Steady-state throughput stays under
// budget × safetyMargin of the provider TPM. Blocking, never dropping:
// a reservation that would exceed the window sleeps until the next one.
type TokenBudget struct {
	limiter *rate.Limiter
	burst   int
}

// NewTokenBudget creates a budget for tokensPerMinute with the given
// safety margin (e.g. 0.8 keeps usage at 80% of provider TPM).
func NewTokenBudget(tokensPerMinute int, safetyMargin float64) *TokenBudget {
	if safetyMargin <= 0 || safetyMargin > 1 {
		safetyMargin = 1
	}
	effective := float64(tokensPerMinute) * safetyMargin
	burst := int(effective)
	if burst < 1 {
		burst = 1
	}
	return &TokenBudget{
		limiter: rate.NewLimiter(rate.Limit(effective/60.0), burst),
		burst:   burst,
	}
}

// Wait blocks until tokens can be spent, or ctx is cancelled. Requests
// larger than the whole budget are clamped to the burst size rather
// than erroring: a single oversized batch should stall, not fail.
func (b *TokenBudget) Wait(ctx context.Context, tokens int) error {
	if tokens > b.burst {
		tokens = b.burst
	}
	if tokens < 1 {
		tokens = 1
	}
	if err := b.limiter.WaitN(ctx, tokens); err != nil {
		return fmt.Errorf("token budget wait: %w", err)
	}
	return nil
}

// SleepRetryAfter sleeps for the provider's Retry-After hint plus up to
// 10% jitter, or until ctx is cancelled.
func SleepRetryAfter(ctx context.Context, retryAfter time.Duration) error {
	if retryAfter <= 0 {
		retryAfter = 5 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(retryAfter / 10)))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(retryAfter + jitter):
		return nil
	}
}

// EstimateTokens approximates the token count of a prompt. Gemini
// averages roughly 4 characters per token for English text.
func EstimateTokens(text string) int {
	n := len(text) / 4
	if n < 1 {
		n = 1
	}
	return n
}
