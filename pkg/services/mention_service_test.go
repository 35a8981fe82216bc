package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	testdb "github.com/mikechavez/crypto-news-aggregator-sub003/test/database"
)

func TestMentionService_UpsertMentions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMentionService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	a := seedArticle(t, client.Client, "Bitcoin", "coindesk", models.TierHigh,
		now.Add(-time.Hour), []string{"Bitcoin", "BlackRock"}, []string{"approved etf"})

	entities := []models.ExtractedEntity{
		{Type: "cryptocurrency", Value: "Bitcoin", Confidence: 0.99, IsPrimary: true},
		{Type: "company", Value: "BlackRock", Confidence: 0.9, IsPrimary: false},
	}

	t.Run("inserts one row per entity", func(t *testing.T) {
		inserted, err := service.UpsertMentions(ctx, a, entities, "positive")
		require.NoError(t, err)
		assert.Equal(t, 2, inserted)

		n, err := service.CountForArticle(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("re-running the same extraction inserts nothing", func(t *testing.T) {
		inserted, err := service.UpsertMentions(ctx, a, entities, "positive")
		require.NoError(t, err)
		assert.Zero(t, inserted)

		n, err := service.CountForArticle(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("mention timestamps follow the article publish time", func(t *testing.T) {
		mentions, err := service.MentionsForEntity(ctx, "Bitcoin", now.Add(-24*time.Hour))
		require.NoError(t, err)
		require.Len(t, mentions, 1)
		assert.WithinDuration(t, a.PublishedAt, mentions[0].CreatedAt, time.Second)
		assert.Equal(t, "coindesk", mentions[0].Source)
	})
}

func TestMentionService_TierThreeExcluded(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMentionService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	scored := seedArticle(t, client.Client, "Solana", "coindesk", models.TierHigh,
		now.Add(-2*time.Hour), []string{"Solana"}, []string{"halted"})
	ignored := seedArticle(t, client.Client, "Solana", "cryptoblog", models.TierLow,
		now.Add(-time.Hour), []string{"Solana"}, []string{"halted"})

	entities := []models.ExtractedEntity{
		{Type: "blockchain", Value: "Solana", Confidence: 0.95, IsPrimary: true},
	}
	_, err := service.UpsertMentions(ctx, scored, entities, "negative")
	require.NoError(t, err)
	_, err = service.UpsertMentions(ctx, ignored, entities, "negative")
	require.NoError(t, err)

	t.Run("primary entity listing skips tier-3 mentions", func(t *testing.T) {
		names, err := service.PrimaryEntitiesSince(ctx, now.Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, []string{"Solana"}, names)
	})

	t.Run("mention loading skips tier-3 mentions", func(t *testing.T) {
		mentions, err := service.MentionsForEntity(ctx, "Solana", now.Add(-24*time.Hour))
		require.NoError(t, err)
		require.Len(t, mentions, 1)
		assert.WithinDuration(t, scored.PublishedAt, mentions[0].CreatedAt, time.Second)
	})
}
