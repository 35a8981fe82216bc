package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/extractor"
	testdb "github.com/mikechavez/crypto-news-aggregator-sub003/test/database"
)

func TestCostService_Summary(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCostService(client.Client)
	ctx := context.Background()

	day1 := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)

	records := []extractor.CostRecord{
		{Timestamp: day1, Operation: "entity_extraction", Model: "gemini-2.5-flash", InputTokens: 4000, OutputTokens: 900, CostUSD: 0.0034, CacheKey: "k1"},
		{Timestamp: day1.Add(time.Hour), Operation: "entity_extraction", Model: "gemini-2.5-flash", Cached: true, CacheKey: "k1"},
		{Timestamp: day2, Operation: "narrative_summary", Model: "gemini-2.5-pro", InputTokens: 2000, OutputTokens: 400, CostUSD: 0.0065},
	}
	for _, rec := range records {
		require.NoError(t, service.RecordCost(ctx, rec))
	}

	summary, err := service.Summary(ctx, day1.Add(-time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalCalls)
	assert.Equal(t, 1, summary.CachedCalls)
	assert.InDelta(t, 0.0099, summary.TotalCostUSD, 1e-9)
	assert.Equal(t, 6000, summary.InputTokens)
	assert.Equal(t, 1300, summary.OutputTokens)

	assert.InDelta(t, 0.0034, summary.ByOperation["entity_extraction"], 1e-9)
	assert.InDelta(t, 0.0065, summary.ByModel["gemini-2.5-pro"], 1e-9)

	require.Len(t, summary.Daily, 2)
	assert.Equal(t, "2026-08-20", summary.Daily[0].Date)
	assert.Equal(t, 2, summary.Daily[0].Calls)
	assert.Equal(t, "2026-08-21", summary.Daily[1].Date)

	require.Len(t, summary.Monthly, 1)
	assert.Equal(t, "2026-08", summary.Monthly[0].Date)
	assert.Equal(t, 3, summary.Monthly[0].Calls)

	t.Run("cutoff excludes older rows", func(t *testing.T) {
		summary, err := service.Summary(ctx, day2)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.TotalCalls)
		assert.InDelta(t, 0.0065, summary.TotalCostUSD, 1e-9)
	})
}
