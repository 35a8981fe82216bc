package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/cache"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/config"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/services"
	testdb "github.com/mikechavez/crypto-news-aggregator-sub003/test/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrendingSignalsHandler_Validation(t *testing.T) {
	// Parameter validation returns 400 before hitting the service.
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{"invalid timeframe", "timeframe=90d", "invalid timeframe"},
		{"zero limit", "limit=0", "invalid limit"},
		{"oversized limit", "limit=500", "invalid limit"},
		{"non-numeric limit", "limit=many", "invalid limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/signals/trending?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.trendingSignalsHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}

func newTestServer(t *testing.T, c cache.Cache) *Server {
	client := testdb.NewTestClient(t)
	mentions := services.NewMentionService(client.Client)
	narratives := services.NewNarrativeService(client.Client,
		services.NarrativeThresholds{MergeRecent: 0.5, MergeOld: 0.6}, testLogger())
	signals := services.NewSignalService(client.Client, mentions, narratives, testLogger())
	articles := services.NewArticleService(client.Client)
	costs := services.NewCostService(client.Client)

	return NewServer(client, signals, narratives, articles, costs, c,
		config.CacheConfig{TTLSignals: 120 * time.Second, TTLNarratives: 600 * time.Second})
}

func TestTrendingSignalsHandler(t *testing.T) {
	s := newTestServer(t, cache.Noop{})
	ctx := context.Background()

	seed := func(entityName, entityType string, score7d float64) {
		sig := models.EntitySignal{
			Entity:     entityName,
			EntityType: entityType,
			Timeframes: map[string]models.TimeframeScore{
				models.Timeframe7d: {Score: score7d, Mentions: 10},
			},
		}
		require.NoError(t, s.signals.Upsert(ctx, sig, models.Timeframe7d))
	}
	seed("Bitcoin", "cryptocurrency", 8.0)
	seed("Coinbase", "company", 6.5)

	t.Run("returns ranked signals", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/signals/trending", nil)
		rec := httptest.NewRecorder()
		s.Echo().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []SignalResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Bitcoin", got[0].Entity)
		assert.InDelta(t, 8.0, got[0].Timeframes["7d"].Score, 0.001)
		assert.NotNil(t, got[0].NarrativeIDs)
	})

	t.Run("entity type filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/signals/trending?entity_type=company", nil)
		rec := httptest.NewRecorder()
		s.Echo().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []SignalResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Coinbase", got[0].Entity)
	})

	t.Run("empty result is an empty array, not an error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/signals/trending?entity_type=person", nil)
		rec := httptest.NewRecorder()
		s.Echo().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestTrendingSignalsHandler_CacheReadThrough(t *testing.T) {
	tiered, err := cache.New(16, nil, testLogger())
	require.NoError(t, err)
	s := newTestServer(t, tiered)
	ctx := context.Background()

	sig := models.EntitySignal{
		Entity:     "Solana",
		EntityType: "cryptocurrency",
		Timeframes: map[string]models.TimeframeScore{models.Timeframe7d: {Score: 5.0}},
	}
	require.NoError(t, s.signals.Upsert(ctx, sig, models.Timeframe7d))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/signals/trending", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	first := rec.Body.String()

	// A write after caching is not visible until invalidation.
	sig.Entity = "Celestia"
	require.NoError(t, s.signals.Upsert(ctx, sig, models.Timeframe7d))

	rec = httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/signals/trending", nil))
	assert.JSONEq(t, first, rec.Body.String())

	tiered.InvalidatePrefix(ctx, cache.PrefixSignals)

	rec = httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/signals/trending", nil))
	var got []SignalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
