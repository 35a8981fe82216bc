package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entnarrative "github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/cache"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

func TestNarrativeHandlers_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name    string
		handler func(c *echo.Context) error
		query   string
		errMsg  string
	}{
		{"invalid lifecycle_state", s.activeNarrativesHandler, "lifecycle_state=bogus", "invalid lifecycle_state"},
		{"invalid state alias", s.activeNarrativesHandler, "state=bogus", "invalid lifecycle_state"},
		{"archived state rejected on active listing", s.activeNarrativesHandler, "lifecycle_state=archived", "archived narratives"},
		{"invalid limit", s.activeNarrativesHandler, "limit=0", "invalid limit"},
		{"invalid days", s.archivedNarrativesHandler, "days=0", "invalid days"},
		{"oversized days", s.resurrectionsHandler, "days=1000", "invalid days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/narratives?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := tt.handler(c)
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

// seedNarrative inserts a narrative row directly.
func seedNarrative(t *testing.T, s *Server, nucleus, state string, reawakenings int) string {
	t.Helper()
	now := time.Now().UTC()
	id := uuid.NewString()
	create := s.db.Narrative.Create().
		SetID(id).
		SetTitle(nucleus).
		SetNucleusEntity(nucleus).
		SetEntities([]string{nucleus}).
		SetArticleIds([]string{}).
		SetFingerprint(models.Fingerprint{NucleusEntity: nucleus, Timestamp: now}).
		SetLifecycleState(entnarrative.LifecycleState(state)).
		SetLifecycleHistory([]models.LifecycleEntry{{State: state, Timestamp: now}}).
		SetReawakeningCount(reawakenings)
	if reawakenings > 0 {
		create = create.SetReawakenedFrom(now).SetResurrectionVelocity(2.5)
	}
	require.NoError(t, create.Exec(context.Background()))
	return id
}

func TestNarrativeHandlers(t *testing.T) {
	s := newTestServer(t, cache.Noop{})

	hotID := seedNarrative(t, s, "Bitcoin", models.StateHot, 0)
	seedNarrative(t, s, "Solana", models.StateDormant, 1)
	seedNarrative(t, s, "Terra", models.StateArchived, 0)

	get := func(path string) (*httptest.ResponseRecorder, []NarrativeResponse) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		s.Echo().ServeHTTP(rec, req)
		var out []NarrativeResponse
		if rec.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		}
		return rec, out
	}

	t.Run("active excludes archived", func(t *testing.T) {
		rec, got := get("/api/v1/narratives/active")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, got, 2)
		for _, n := range got {
			assert.NotEqual(t, models.StateArchived, n.LifecycleState)
		}
	})

	t.Run("active filters by lifecycle_state", func(t *testing.T) {
		rec, got := get("/api/v1/narratives/active?lifecycle_state=hot")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, got, 1)
		assert.Equal(t, hotID, got[0].ID)
	})

	t.Run("state alias still filters", func(t *testing.T) {
		rec, got := get("/api/v1/narratives/active?state=hot")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, got, 1)
		assert.Equal(t, hotID, got[0].ID)
	})

	t.Run("archived lists dormant and archived", func(t *testing.T) {
		rec, got := get("/api/v1/narratives/archived")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, got, 2)
	})

	t.Run("resurrections lists reawakened narratives", func(t *testing.T) {
		rec, got := get("/api/v1/narratives/resurrections")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, got, 1)
		assert.Equal(t, "Solana", got[0].NucleusEntity)
		assert.Equal(t, 1, got[0].ReawakeningCount)
	})

	t.Run("detail includes history", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/narratives/"+hotID, nil)
		rec := httptest.NewRecorder()
		s.Echo().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got NarrativeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, hotID, got.ID)
		assert.NotEmpty(t, got.LifecycleHistory)
		assert.NotNil(t, got.Articles)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/narratives/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		s.Echo().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCostSummaryHandler(t *testing.T) {
	s := newTestServer(t, cache.Noop{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/costs/summary", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.EqualValues(t, 0, got["total_calls"])
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(t, cache.Noop{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "healthy", got["status"])
}
