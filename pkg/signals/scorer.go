// Package signals computes per-entity multi-timeframe signal scores
// from primary entity mentions. All functions are pure; the services
// layer loads mentions and persists the results.
package signals

import (
	"math"
	"time"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// Mention is the slice of an entity mention the scorer needs.
type Mention struct {
	Entity     string
	EntityType string
	Source     string
	Sentiment  string
	CreatedAt  time.Time
}

// Weights blends the normalized factors into the composite score.
// The contract is monotonicity: increasing velocity, source count, or
// recency with the others held fixed never decreases the score.
type Weights struct {
	Velocity  float64
	Diversity float64
	Recency   float64
	Sentiment float64
}

// DefaultWeights returns the standard composite blend.
func DefaultWeights() Weights {
	return Weights{Velocity: 0.40, Diversity: 0.25, Recency: 0.20, Sentiment: 0.15}
}

// Velocity returns percent growth between the current and previous
// window. nPrev == 0 with nCurr > 0 yields 100 * nCurr rather than a
// division by zero.
func Velocity(nCurr, nPrev int) float64 {
	denom := nPrev
	if denom < 1 {
		denom = 1
	}
	return 100 * float64(nCurr-nPrev) / float64(denom)
}

// CompositeScore blends normalized velocity, source diversity, recency,
// and sentiment salience into a score in [0,10].
//
// Velocity is squashed so that 0% growth maps to 0.5 and +/-200% maps
// to the extremes; source count is log-scaled and saturates at 15
// distinct sources.
func CompositeScore(velocityPct float64, sourceCount int, recency, sentimentSalience float64, w Weights) float64 {
	vNorm := clamp01(velocityPct/200 + 0.5)
	dNorm := clamp01(math.Log2(1+float64(sourceCount)) / 4)
	blend := w.Velocity*vNorm + w.Diversity*dNorm + w.Recency*clamp01(recency) + w.Sentiment*clamp01(sentimentSalience)
	return 10 * clamp01(blend)
}

// SentimentStatsOf aggregates mention sentiments into avg/min/max and
// divergence ((max-min)/2, in [0,1]). Empty input yields zeroes.
func SentimentStatsOf(mentions []Mention) models.SentimentStats {
	if len(mentions) == 0 {
		return models.SentimentStats{}
	}
	var sum float64
	min, max := math.Inf(1), math.Inf(-1)
	for _, m := range mentions {
		v := models.SentimentValue(m.Sentiment)
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return models.SentimentStats{
		Avg:        sum / float64(len(mentions)),
		Min:        min,
		Max:        max,
		Divergence: (max - min) / 2,
	}
}

// ComputeTimeframe scores one entity over one window. mentions must all
// belong to the entity; the function partitions them into the current
// window [now-w, now] and the prior window [now-2w, now-w).
func ComputeTimeframe(mentions []Mention, timeframe string, now time.Time, w Weights) models.TimeframeScore {
	window := time.Duration(models.TimeframeHours(timeframe)) * time.Hour
	if window == 0 {
		return models.TimeframeScore{}
	}
	currStart := now.Add(-window)
	prevStart := now.Add(-2 * window)
	recentStart := now.Add(-window / 5)

	var nCurr, nPrev, nRecent int
	sources := map[string]struct{}{}
	var sentimentSum float64
	sentMin, sentMax := math.Inf(1), math.Inf(-1)
	for _, m := range mentions {
		switch {
		case m.CreatedAt.After(now):
			continue
		case !m.CreatedAt.Before(currStart):
			nCurr++
			sources[m.Source] = struct{}{}
			v := models.SentimentValue(m.Sentiment)
			sentimentSum += v
			if v < sentMin {
				sentMin = v
			}
			if v > sentMax {
				sentMax = v
			}
			if !m.CreatedAt.Before(recentStart) {
				nRecent++
			}
		case !m.CreatedAt.Before(prevStart):
			nPrev++
		}
	}

	if nCurr == 0 {
		return models.TimeframeScore{Velocity: Velocity(0, nPrev)}
	}

	velocity := Velocity(nCurr, nPrev)
	recency := float64(nRecent) / float64(nCurr)
	// Divergent sentiment dampens salience: a split crowd is a weaker
	// signal than a unanimous one.
	divergence := (sentMax - sentMin) / 2
	salience := math.Abs(sentimentSum/float64(nCurr)) * (1 - divergence/2)

	return models.TimeframeScore{
		Score:    CompositeScore(velocity, len(sources), recency, salience, w),
		Velocity: velocity,
		Mentions: nCurr,
		Recency:  recency,
	}
}

// Compute scores one entity across all timeframes. Sentiment stats and
// source diversity are taken over the signal lookback window.
func Compute(entity, entityType string, mentions []Mention, lookback time.Duration, now time.Time, w Weights) models.EntitySignal {
	timeframes := map[string]models.TimeframeScore{
		models.Timeframe24h: ComputeTimeframe(mentions, models.Timeframe24h, now, w),
		models.Timeframe7d:  ComputeTimeframe(mentions, models.Timeframe7d, now, w),
		models.Timeframe30d: ComputeTimeframe(mentions, models.Timeframe30d, now, w),
	}

	cutoff := now.Add(-lookback)
	var windowed []Mention
	sources := map[string]struct{}{}
	firstSeen := now
	for _, m := range mentions {
		if m.CreatedAt.Before(firstSeen) {
			firstSeen = m.CreatedAt
		}
		if m.CreatedAt.Before(cutoff) || m.CreatedAt.After(now) {
			continue
		}
		windowed = append(windowed, m)
		sources[m.Source] = struct{}{}
	}

	return models.EntitySignal{
		Entity:      entity,
		EntityType:  entityType,
		Timeframes:  timeframes,
		Sentiment:   SentimentStatsOf(windowed),
		SourceCount: len(sources),
		FirstSeen:   firstSeen,
	}
}

// IsEmerging reports whether a signal with no narrative membership
// clears the emerging floor on any timeframe.
func IsEmerging(sig models.EntitySignal, narrativeIDs []string, floor float64) bool {
	if len(narrativeIDs) > 0 {
		return false
	}
	for _, tf := range sig.Timeframes {
		if tf.Score > floor {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
