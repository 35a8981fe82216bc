package narrative

import (
	"strings"
	"time"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// Similarity weights. Nucleus identity dominates; actor overlap and
// action overlap refine; a matching nucleus earns a semantic boost.
const (
	weightNucleus = 0.45
	weightActors  = 0.35
	weightActions = 0.20
	nucleusBoost  = 0.10
)

// recentWindow is how recently both narratives must have been updated
// for the lower merge threshold to apply.
const recentWindow = 48 * time.Hour

// Similarity scores two fingerprints in [0,1]. Symmetric; a non-empty
// fingerprint scores 1.0 against itself.
func Similarity(a, b models.Fingerprint) float64 {
	score := 0.0

	nucleusMatch := a.NucleusEntity != "" && b.NucleusEntity != "" &&
		strings.EqualFold(a.NucleusEntity, b.NucleusEntity)
	if nucleusMatch {
		score += weightNucleus
	}

	// Two empty sets only count as full overlap when the nuclei already
	// match; otherwise sparse fingerprints around different entities
	// would score above the merge threshold on missing data alone.
	emptyOverlap := 0.0
	if nucleusMatch {
		emptyOverlap = 1.0
	}
	score += weightActors * jaccard(a.TopActors, b.TopActors, emptyOverlap)
	score += weightActions * jaccard(a.KeyActions, b.KeyActions, emptyOverlap)

	if nucleusMatch {
		score += nucleusBoost
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// jaccard computes |A∩B| / |A∪B| over case-insensitive string sets.
// bothEmpty is the score when neither set has elements; one empty set
// scores 0.
func jaccard(a, b []string, bothEmpty float64) float64 {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return bothEmpty
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for k := range setA {
		if _, ok := setB[k]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it))
		if key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

// MergeThreshold returns the similarity needed to merge two narratives
// given their last-update times: thresholdRecent when a narrative was
// updated within the recent window, thresholdOld otherwise. The lower
// of the two narrative-specific thresholds wins.
func MergeThreshold(aUpdated, bUpdated, now time.Time, thresholdRecent, thresholdOld float64) float64 {
	ta := thresholdOld
	if now.Sub(aUpdated) <= recentWindow {
		ta = thresholdRecent
	}
	tb := thresholdOld
	if now.Sub(bUpdated) <= recentWindow {
		tb = thresholdRecent
	}
	if ta < tb {
		return ta
	}
	return tb
}
