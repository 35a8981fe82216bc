package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	testdb "github.com/mikechavez/crypto-news-aggregator-sub003/test/database"
)

func TestArticleService_UpsertArticle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArticleService(client.Client)
	ctx := context.Background()

	t.Run("creates new article and reports novelty", func(t *testing.T) {
		in := models.IncomingArticle{
			URL:         "https://news.example.com/btc-etf",
			Title:       "Bitcoin ETF inflows hit record",
			Text:        "Spot bitcoin ETF products saw record inflows on Tuesday.",
			Source:      "coindesk",
			PublishedAt: time.Date(2026, 8, 20, 9, 30, 0, 0, time.FixedZone("EST", -5*3600)),
		}

		a, isNew, err := service.UpsertArticle(ctx, in)
		require.NoError(t, err)
		assert.True(t, isNew)
		assert.Equal(t, in.URL, a.URL)
		assert.Equal(t, time.UTC, a.PublishedAt.Location())
		require.NotNil(t, a.RelevanceTier)
	})

	t.Run("same URL is not novel and keeps the original row", func(t *testing.T) {
		in := models.IncomingArticle{
			URL:         "https://news.example.com/eth-upgrade",
			Title:       "Ethereum upgrade ships",
			Text:        "The upgrade activated at epoch 1000.",
			Source:      "theblock",
			PublishedAt: time.Now().UTC(),
		}

		first, isNew, err := service.UpsertArticle(ctx, in)
		require.NoError(t, err)
		require.True(t, isNew)

		in.Title = "Completely different title"
		second, isNew, err := service.UpsertArticle(ctx, in)
		require.NoError(t, err)
		assert.False(t, isNew)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Ethereum upgrade ships", second.Title)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			in   models.IncomingArticle
		}{
			{"missing url", models.IncomingArticle{Title: "t", Source: "s", PublishedAt: time.Now()}},
			{"malformed url", models.IncomingArticle{URL: "not a url", Title: "t", Source: "s", PublishedAt: time.Now()}},
			{"missing title", models.IncomingArticle{URL: "https://x.com/a", Source: "s", PublishedAt: time.Now()}},
			{"missing source", models.IncomingArticle{URL: "https://x.com/b", Title: "t", PublishedAt: time.Now()}},
			{"missing published_at", models.IncomingArticle{URL: "https://x.com/c", Title: "t", Source: "s"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, _, err := service.UpsertArticle(ctx, tt.in)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestArticleService_ExtractionBookkeeping(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArticleService(client.Client)
	mentions := NewMentionService(client.Client)
	ctx := context.Background()

	in := models.IncomingArticle{
		URL:         "https://news.example.com/sol-outage",
		Title:       "Solana network stalls",
		Text:        "Block production halted for two hours.",
		Source:      "coindesk",
		PublishedAt: time.Now().UTC().Add(-time.Hour),
	}
	a, _, err := service.UpsertArticle(ctx, in)
	require.NoError(t, err)

	t.Run("fresh article needs extraction", func(t *testing.T) {
		needs, err := service.NeedsExtraction(ctx, a)
		require.NoError(t, err)
		assert.True(t, needs)
	})

	t.Run("listed as unenriched until extraction applied", func(t *testing.T) {
		unenriched, err := service.ListUnenriched(ctx, 0)
		require.NoError(t, err)
		require.Len(t, unenriched, 1)
		assert.Equal(t, a.ID, unenriched[0].ID)
	})

	ext := models.ArticleExtraction{
		ArticleID:     a.ID,
		Sentiment:     "negative",
		NucleusEntity: "Solana",
		Actors:        []string{"Solana", "Anza"},
		ActorSalience: map[string]int{"Solana": 5, "Anza": 3},
		KeyActions:    []string{"halted block production"},
		Entities: []models.ExtractedEntity{
			{Type: "blockchain", Value: "Solana", Confidence: 0.99, IsPrimary: true},
		},
		NarrativeSummary: "Solana suffered another outage.",
	}

	t.Run("apply extraction makes re-extraction a no-op", func(t *testing.T) {
		require.NoError(t, service.ApplyExtraction(ctx, a.ID, ext, a.Title, a.Text))
		_, err := mentions.UpsertMentions(ctx, a, ext.Entities, ext.Sentiment)
		require.NoError(t, err)

		reloaded, err := client.Article.Get(ctx, a.ID)
		require.NoError(t, err)

		needs, err := service.NeedsExtraction(ctx, reloaded)
		require.NoError(t, err)
		assert.False(t, needs)

		unenriched, err := service.ListUnenriched(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, unenriched)
	})

	t.Run("changed content needs extraction again", func(t *testing.T) {
		reloaded, err := client.Article.Get(ctx, a.ID)
		require.NoError(t, err)
		reloaded.Text = reloaded.Text + " Updated with a postmortem."

		needs, err := service.NeedsExtraction(ctx, reloaded)
		require.NoError(t, err)
		assert.True(t, needs)
	})

	t.Run("older extractor version goes back on the backlog", func(t *testing.T) {
		require.NoError(t, client.Article.UpdateOneID(a.ID).
			SetNarrativeHash("v0:"+strings.Repeat("0", 64)).
			Exec(ctx))

		unenriched, err := service.ListUnenriched(ctx, 0)
		require.NoError(t, err)
		require.Len(t, unenriched, 1)
		assert.Equal(t, a.ID, unenriched[0].ID)
	})
}

func TestArticleService_ListForClustering(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArticleService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	inWindow := seedArticle(t, client.Client, "Bitcoin", "coindesk", models.TierHigh,
		now.Add(-2*time.Hour), []string{"Bitcoin"}, []string{"rallied"})
	seedArticle(t, client.Client, "Bitcoin", "theblock", models.TierLow,
		now.Add(-3*time.Hour), []string{"Bitcoin"}, []string{"rallied"})
	seedArticle(t, client.Client, "Bitcoin", "decrypt", models.TierHigh,
		now.Add(-72*time.Hour), []string{"Bitcoin"}, []string{"rallied"})

	got, err := service.ListForClustering(ctx, 48*time.Hour, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inWindow.ID, got[0].ID)
}
