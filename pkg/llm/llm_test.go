package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCost(t *testing.T) {
	// 1M input tokens of gemini-2.5-flash costs $0.30.
	assert.InDelta(t, 0.30, Cost("gemini-2.5-flash", 1_000_000, 0), 1e-9)
	assert.InDelta(t, 2.50, Cost("gemini-2.5-flash", 0, 1_000_000), 1e-9)

	// Unknown models fall back to the default rate, never zero.
	assert.Greater(t, Cost("mystery-model", 1000, 1000), 0.0)

	// Zero tokens cost nothing.
	assert.Zero(t, Cost("gemini-2.5-pro", 0, 0))
}

func TestTokenBudgetBlocksOverBudget(t *testing.T) {
	budget := NewTokenBudget(600, 1.0) // 10 tokens/sec

	ctx := context.Background()
	require.NoError(t, budget.Wait(ctx, 600)) // drains the burst

	// The next request cannot be served immediately.
	start := time.Now()
	require.NoError(t, budget.Wait(ctx, 10))
	assert.GreaterOrEqual(t, time.Since(start), 500*time.Millisecond)
}

func TestTokenBudgetClampsOversizedRequests(t *testing.T) {
	budget := NewTokenBudget(60, 1.0)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	// A request larger than the whole budget is clamped, not rejected.
	require.NoError(t, budget.Wait(ctx, 10_000))
}

func TestTokenBudgetRespectsCancellation(t *testing.T) {
	budget := NewTokenBudget(60, 1.0)
	ctx := context.Background()
	require.NoError(t, budget.Wait(ctx, 60))

	cancelCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := budget.Wait(cancelCtx, 60)
	require.Error(t, err)
}

func TestPromptCache(t *testing.T) {
	cache := NewPromptCache(time.Minute)
	key := CacheKey("gemini-2.5-flash", "extract entities from ...")

	_, ok := cache.Get(key)
	assert.False(t, ok)

	cache.Set(key, GenerateResponse{Text: `{"articles":[]}`, InputTokens: 100, OutputTokens: 20})

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, `{"articles":[]}`, got.Text)
	assert.Equal(t, 100, got.InputTokens)
}

func TestPromptCacheExpiry(t *testing.T) {
	cache := NewPromptCache(10 * time.Millisecond)
	key := CacheKey("m", "p")
	cache.Set(key, GenerateResponse{Text: "x"})

	time.Sleep(30 * time.Millisecond)
	_, ok := cache.Get(key)
	assert.False(t, ok)
}

func TestCacheKeyDistinguishesModels(t *testing.T) {
	assert.NotEqual(t, CacheKey("model-a", "same prompt"), CacheKey("model-b", "same prompt"))
	assert.Equal(t, CacheKey("m", "p"), CacheKey("m", "p"))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 1, EstimateTokens(""))
	assert.Equal(t, 25, EstimateTokens(string(make([]byte, 100))))
}
