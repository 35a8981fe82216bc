package signals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

func TestVelocityPercentageSemantics(t *testing.T) {
	// 50 mentions now vs 30 before is ~66.7% growth.
	assert.InDelta(t, 66.7, Velocity(50, 30), 0.05)

	// Previous window empty: +100% per current mention.
	assert.Equal(t, 500.0, Velocity(5, 0))

	// Shrinking coverage goes negative but never below -100%.
	assert.Equal(t, -50.0, Velocity(5, 10))
	assert.Equal(t, -100.0, Velocity(0, 10))
	assert.Zero(t, Velocity(0, 0))
}

func TestCompositeScoreBounds(t *testing.T) {
	w := DefaultWeights()
	assert.GreaterOrEqual(t, CompositeScore(-1000, 0, 0, 0, w), 0.0)
	assert.LessOrEqual(t, CompositeScore(100000, 100, 1, 1, w), 10.0)
}

func TestCompositeScoreMonotonicity(t *testing.T) {
	w := DefaultWeights()
	base := CompositeScore(50, 3, 0.4, 0.2, w)

	assert.GreaterOrEqual(t, CompositeScore(80, 3, 0.4, 0.2, w), base)
	assert.GreaterOrEqual(t, CompositeScore(50, 6, 0.4, 0.2, w), base)
	assert.GreaterOrEqual(t, CompositeScore(50, 3, 0.8, 0.2, w), base)
}

func TestSentimentStats(t *testing.T) {
	mentions := []Mention{
		{Sentiment: models.SentimentPositive},
		{Sentiment: models.SentimentPositive},
		{Sentiment: models.SentimentNegative},
		{Sentiment: models.SentimentNeutral},
	}
	stats := SentimentStatsOf(mentions)
	assert.InDelta(t, 0.25, stats.Avg, 1e-9)
	assert.Equal(t, -1.0, stats.Min)
	assert.Equal(t, 1.0, stats.Max)
	assert.Equal(t, 1.0, stats.Divergence)

	assert.Zero(t, SentimentStatsOf(nil))
}

func mentionsAt(now time.Time, source string, hoursAgo ...float64) []Mention {
	out := make([]Mention, len(hoursAgo))
	for i, h := range hoursAgo {
		out[i] = Mention{
			Entity:     "Ethereum",
			EntityType: "cryptocurrency",
			Source:     source,
			Sentiment:  models.SentimentNeutral,
			CreatedAt:  now.Add(-time.Duration(h * float64(time.Hour))),
		}
	}
	return out
}

func TestComputeTimeframe(t *testing.T) {
	now := time.Now().UTC()

	// 3 mentions in the last 24h, 2 in the prior 24h.
	mentions := append(
		mentionsAt(now, "coindesk", 1, 5, 23),
		mentionsAt(now, "theblock", 30, 40)...,
	)

	tf := ComputeTimeframe(mentions, models.Timeframe24h, now, DefaultWeights())
	assert.Equal(t, 3, tf.Mentions)
	assert.InDelta(t, 50.0, tf.Velocity, 1e-9)
	// One of three mentions falls in the most recent 4.8h.
	assert.InDelta(t, 1.0/3.0, tf.Recency, 1e-9)
	assert.Greater(t, tf.Score, 0.0)
}

func TestComputeTimeframeDivergenceDampensSalience(t *testing.T) {
	now := time.Now().UTC()

	unanimous := mentionsAt(now, "coindesk", 1, 2, 3)
	for i := range unanimous {
		unanimous[i].Sentiment = models.SentimentPositive
	}
	split := mentionsAt(now, "coindesk", 1, 2, 3)
	split[0].Sentiment = models.SentimentPositive
	split[1].Sentiment = models.SentimentPositive
	split[2].Sentiment = models.SentimentNegative

	w := DefaultWeights()
	assert.Greater(t,
		ComputeTimeframe(unanimous, models.Timeframe24h, now, w).Score,
		ComputeTimeframe(split, models.Timeframe24h, now, w).Score)
}

func TestComputeTimeframeEmptyWindowScoresZero(t *testing.T) {
	now := time.Now().UTC()
	old := mentionsAt(now, "coindesk", 48, 40)

	tf := ComputeTimeframe(old, models.Timeframe24h, now, DefaultWeights())
	assert.Zero(t, tf.Mentions)
	assert.Zero(t, tf.Score)
	assert.Equal(t, -100.0, tf.Velocity)
}

func TestCompute(t *testing.T) {
	now := time.Now().UTC()
	mentions := append(
		mentionsAt(now, "coindesk", 1, 2, 3, 30),
		mentionsAt(now, "theblock", 4, 200)...,
	)

	sig := Compute("Ethereum", "cryptocurrency", mentions, 168*time.Hour, now, DefaultWeights())

	assert.Equal(t, "Ethereum", sig.Entity)
	require.Contains(t, sig.Timeframes, models.Timeframe24h)
	require.Contains(t, sig.Timeframes, models.Timeframe7d)
	require.Contains(t, sig.Timeframes, models.Timeframe30d)

	// 200h-old mention is outside the 7d lookback for diversity but
	// inside the 30d timeframe.
	assert.Equal(t, 2, sig.SourceCount)
	assert.Equal(t, 6, sig.Timeframes[models.Timeframe30d].Mentions)
	assert.Equal(t, 5, sig.Timeframes[models.Timeframe7d].Mentions)
	assert.Equal(t, 4, sig.Timeframes[models.Timeframe24h].Mentions)
	assert.Equal(t, now.Add(-200*time.Hour), sig.FirstSeen)
}

func TestIsEmerging(t *testing.T) {
	sig := models.EntitySignal{
		Timeframes: map[string]models.TimeframeScore{
			models.Timeframe24h: {Score: 6.1},
			models.Timeframe7d:  {Score: 2.0},
		},
	}

	assert.True(t, IsEmerging(sig, nil, 5.0))
	assert.False(t, IsEmerging(sig, []string{"n1"}, 5.0))

	low := models.EntitySignal{
		Timeframes: map[string]models.TimeframeScore{
			models.Timeframe24h: {Score: 3.0},
		},
	}
	assert.False(t, IsEmerging(low, nil, 5.0))
}
