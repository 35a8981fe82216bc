package narrative

import (
	"time"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// LookbackWindow is the rolling window velocity and momentum are
// computed over.
const LookbackWindow = 7 * 24 * time.Hour

// Momentum ratio thresholds between the recent and older half of the
// lookback window.
const (
	growingRatio   = 1.25
	decliningRatio = 0.80
)

// minMomentumArticles is the minimum number of in-window articles
// needed before momentum is meaningful.
const minMomentumArticles = 4

// ComputeVelocity returns articles per day over the lookback window.
// The denominator is the window length in days, not the observed span
// between the first and last article.
func ComputeVelocity(published []time.Time, now time.Time) float64 {
	cutoff := now.Add(-LookbackWindow)
	n := 0
	for _, ts := range published {
		if !ts.Before(cutoff) && !ts.After(now) {
			n++
		}
	}
	return float64(n) / (LookbackWindow.Hours() / 24)
}

// ComputeMomentum compares velocity over the recent half of the window
// against the older half. Fewer than four in-window articles yields
// unknown.
func ComputeMomentum(published []time.Time, now time.Time) string {
	cutoff := now.Add(-LookbackWindow)
	mid := now.Add(-LookbackWindow / 2)

	var older, recent int
	for _, ts := range published {
		if ts.Before(cutoff) || ts.After(now) {
			continue
		}
		if ts.Before(mid) {
			older++
		} else {
			recent++
		}
	}

	if older+recent < minMomentumArticles {
		return models.MomentumUnknown
	}

	halfDays := LookbackWindow.Hours() / 24 / 2
	vOld := float64(older) / halfDays
	vNew := float64(recent) / halfDays

	switch {
	case vNew > growingRatio*vOld:
		return models.MomentumGrowing
	case vNew < decliningRatio*vOld:
		return models.MomentumDeclining
	default:
		return models.MomentumStable
	}
}

// RecencyScore returns the fraction of in-window timestamps that fall
// in the most recent 20% of the window. No in-window articles scores 0.
func RecencyScore(published []time.Time, now time.Time, window time.Duration) float64 {
	cutoff := now.Add(-window)
	recentCutoff := now.Add(-window / 5)

	var total, recent int
	for _, ts := range published {
		if ts.Before(cutoff) || ts.After(now) {
			continue
		}
		total++
		if !ts.Before(recentCutoff) {
			recent++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(recent) / float64(total)
}
