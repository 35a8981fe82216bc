package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	testdb "github.com/mikechavez/crypto-news-aggregator-sub003/test/database"
)

// seedMention inserts one enriched article plus one primary mention of
// the entity, timestamped at publishedAt.
func seedMention(t *testing.T, client *ent.Client, mentions *MentionService, entityName, entityType, source, sentiment string, publishedAt time.Time) {
	t.Helper()
	a := seedArticle(t, client, entityName, source, models.TierHigh, publishedAt,
		[]string{entityName}, []string{"moved"})
	_, err := mentions.UpsertMentions(context.Background(), a,
		[]models.ExtractedEntity{{Type: entityType, Value: entityName, Confidence: 0.95, IsPrimary: true}},
		sentiment)
	require.NoError(t, err)
}

func newSignalService(client *ent.Client) *SignalService {
	mentions := NewMentionService(client)
	narratives := NewNarrativeService(client, testThresholds(), testLogger())
	return NewSignalService(client, mentions, narratives, testLogger())
}

func TestSignalService_RecomputeSignals(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newSignalService(client.Client)
	mentions := NewMentionService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	// Bitcoin: 3 mentions in the last 24h from two sources, 2 in the
	// prior 24h window. Velocity 24h = 100*(3-2)/2 = 50%.
	seedMention(t, client.Client, mentions, "Bitcoin", "cryptocurrency", "coindesk", "positive", now.Add(-1*time.Hour))
	seedMention(t, client.Client, mentions, "Bitcoin", "cryptocurrency", "coindesk", "positive", now.Add(-2*time.Hour))
	seedMention(t, client.Client, mentions, "Bitcoin", "cryptocurrency", "theblock", "neutral", now.Add(-20*time.Hour))
	seedMention(t, client.Client, mentions, "Bitcoin", "cryptocurrency", "coindesk", "neutral", now.Add(-30*time.Hour))
	seedMention(t, client.Client, mentions, "Bitcoin", "cryptocurrency", "theblock", "negative", now.Add(-40*time.Hour))

	// A narrative containing Bitcoin, so it is not emerging.
	require.NoError(t, client.Narrative.Create().
		SetID(uuid.NewString()).
		SetTitle("Bitcoin").
		SetNucleusEntity("Bitcoin").
		SetEntities([]string{"BlackRock", "Bitcoin"}).
		SetArticleIds([]string{}).
		SetFingerprint(models.Fingerprint{NucleusEntity: "Bitcoin", Timestamp: now}).
		SetLifecycleHistory([]models.LifecycleEntry{{State: models.StateEmerging, Timestamp: now}}).
		Exec(ctx))

	// Celestia: 3 very recent mentions, no narrative. High recency and
	// positive sentiment push it over the emerging floor.
	seedMention(t, client.Client, mentions, "Celestia", "cryptocurrency", "decrypt", "positive", now.Add(-1*time.Hour))
	seedMention(t, client.Client, mentions, "Celestia", "cryptocurrency", "decrypt", "positive", now.Add(-2*time.Hour))
	seedMention(t, client.Client, mentions, "Celestia", "cryptocurrency", "decrypt", "positive", now.Add(-3*time.Hour))

	scored, err := service.RecomputeSignals(ctx, 168*time.Hour, 5.0, now)
	require.NoError(t, err)
	assert.Equal(t, 2, scored)

	t.Run("timeframe counts and velocity", func(t *testing.T) {
		sig, err := service.GetByEntity(ctx, "Bitcoin")
		require.NoError(t, err)
		assert.Equal(t, 3, sig.Mentions24h)
		assert.InDelta(t, 50.0, sig.Velocity24h, 0.001)
		assert.Equal(t, 5, sig.Mentions7d)
		assert.Equal(t, 5, sig.Mentions30d)
		assert.Equal(t, 2, sig.SourceCount)
		assert.Greater(t, sig.Score24h, 0.0)
	})

	t.Run("narrative membership suppresses emerging", func(t *testing.T) {
		sig, err := service.GetByEntity(ctx, "Bitcoin")
		require.NoError(t, err)
		assert.False(t, sig.IsEmerging)
		require.Len(t, sig.NarrativeIds, 1)
	})

	t.Run("unclustered entity over the floor is emerging", func(t *testing.T) {
		sig, err := service.GetByEntity(ctx, "Celestia")
		require.NoError(t, err)
		assert.Empty(t, sig.NarrativeIds)
		assert.True(t, sig.IsEmerging)
		assert.Greater(t, sig.Score24h, 5.0)
	})

	t.Run("recompute is stable", func(t *testing.T) {
		before, err := service.GetByEntity(ctx, "Bitcoin")
		require.NoError(t, err)

		_, err = service.RecomputeSignals(ctx, 168*time.Hour, 5.0, now)
		require.NoError(t, err)

		after, err := service.GetByEntity(ctx, "Bitcoin")
		require.NoError(t, err)
		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, before.Score24h, after.Score24h)
		assert.Equal(t, before.Mentions7d, after.Mentions7d)
	})
}

func TestSignalService_PartialUpsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newSignalService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	sig := models.EntitySignal{
		Entity:     "Ethereum",
		EntityType: "cryptocurrency",
		Timeframes: map[string]models.TimeframeScore{
			models.Timeframe24h: {Score: 6.1, Velocity: 120, Mentions: 11, Recency: 0.5},
			models.Timeframe7d:  {Score: 4.2, Velocity: 30, Mentions: 40, Recency: 0.3},
		},
		SourceCount: 4,
		FirstSeen:   now.Add(-90 * 24 * time.Hour),
	}
	require.NoError(t, service.Upsert(ctx, sig, models.Timeframe24h, models.Timeframe7d))

	// A later partial recompute of only the 24h window must leave the
	// 7d columns intact.
	sig.Timeframes[models.Timeframe24h] = models.TimeframeScore{Score: 2.0, Velocity: -50, Mentions: 3, Recency: 0.1}
	sig.Timeframes[models.Timeframe7d] = models.TimeframeScore{Score: 9.9, Velocity: 999, Mentions: 999, Recency: 0.9}
	require.NoError(t, service.Upsert(ctx, sig, models.Timeframe24h))

	row, err := service.GetByEntity(ctx, "Ethereum")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, row.Score24h, 0.001)
	assert.Equal(t, 3, row.Mentions24h)
	assert.InDelta(t, 4.2, row.Score7d, 0.001)
	assert.Equal(t, 40, row.Mentions7d)
}

func TestSignalService_ListTrending(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newSignalService(client.Client)
	ctx := context.Background()

	seed := func(entityName, entityType string, score7d, score24h float64) {
		sig := models.EntitySignal{
			Entity:     entityName,
			EntityType: entityType,
			Timeframes: map[string]models.TimeframeScore{
				models.Timeframe24h: {Score: score24h},
				models.Timeframe7d:  {Score: score7d},
			},
		}
		require.NoError(t, service.Upsert(ctx, sig, models.Timeframe24h, models.Timeframe7d))
	}
	seed("Bitcoin", "cryptocurrency", 8.0, 2.0)
	seed("Solana", "cryptocurrency", 6.0, 9.0)
	seed("Coinbase", "company", 7.0, 1.0)

	t.Run("defaults to 7d ordering", func(t *testing.T) {
		rows, err := service.ListTrending(ctx, models.SignalFilters{})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Bitcoin", rows[0].Entity)
		assert.Equal(t, "Coinbase", rows[1].Entity)
		assert.Equal(t, "Solana", rows[2].Entity)
	})

	t.Run("24h timeframe reorders", func(t *testing.T) {
		rows, err := service.ListTrending(ctx, models.SignalFilters{Timeframe: models.Timeframe24h, Limit: 1})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Solana", rows[0].Entity)
	})

	t.Run("entity type filter", func(t *testing.T) {
		rows, err := service.ListTrending(ctx, models.SignalFilters{EntityType: "company"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Coinbase", rows[0].Entity)
	})

	t.Run("rejects unknown timeframe", func(t *testing.T) {
		_, err := service.ListTrending(ctx, models.SignalFilters{Timeframe: "90d"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
