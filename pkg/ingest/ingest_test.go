package ingest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/services"
	testdb "github.com/mikechavez/crypto-news-aggregator-sub003/test/database"
)

type staticSource struct {
	name     string
	articles []models.IncomingArticle
	err      error
}

func (s *staticSource) Name() string { return s.name }
func (s *staticSource) Fetch(context.Context) ([]models.IncomingArticle, error) {
	return s.articles, s.err
}

func TestFeedSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`[
			{"url": "https://news.example.com/a", "title": "A", "text": "body a", "source": "upstream", "published_at": "2026-08-20T10:00:00Z"},
			{"url": "https://news.example.com/b", "title": "B", "text": "body b", "published_at": "2026-08-20T11:00:00Z"}
		]`))
	}))
	defer srv.Close()

	src := NewFeedSource("coindesk", srv.URL)
	articles, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	// The adapter label overrides whatever the feed claims.
	assert.Equal(t, "coindesk", articles[0].Source)
	assert.Equal(t, "coindesk", articles[1].Source)
	assert.Equal(t, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC), articles[0].PublishedAt)
}

func TestFeedSource_FetchErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewFeedSource("x", srv.URL).Fetch(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		_, err := NewFeedSource("x", srv.URL).Fetch(context.Background())
		require.Error(t, err)
	})
}

func TestRunner_RunOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	articles := services.NewArticleService(client.Client)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	now := time.Now().UTC()
	good := &staticSource{name: "coindesk", articles: []models.IncomingArticle{
		{URL: "https://news.example.com/1", Title: "One", Text: "t", Source: "coindesk", PublishedAt: now},
		{URL: "https://news.example.com/2", Title: "Two", Text: "t", Source: "coindesk", PublishedAt: now},
		{URL: "", Title: "broken", Source: "coindesk", PublishedAt: now},
	}}
	broken := &staticSource{name: "downfeed", err: assert.AnError}

	runner := NewRunner([]Source{good, broken}, articles, logger)

	stats, err := runner.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Fetched)
	assert.Equal(t, 2, stats.Inserted)
	assert.Equal(t, 1, stats.Rejected)

	// Re-running ingests nothing new.
	stats, err = runner.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Duplicates)
	assert.Zero(t, stats.Inserted)
}
