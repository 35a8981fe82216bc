package cache

import "fmt"

// Key prefixes used for write-invalidation.
const (
	PrefixSignals    = "signals:"
	PrefixNarratives = "narratives:"
)

// TrendingKey is the cache key for a trending-signals listing.
func TrendingKey(timeframe string, limit int, entityType string) string {
	if entityType == "" {
		entityType = "all"
	}
	return fmt.Sprintf("%strending:%s:%d:%s", PrefixSignals, timeframe, limit, entityType)
}

// ActiveNarrativesKey is the cache key for an active-narratives listing.
func ActiveNarrativesKey(limit int, lifecycleState string) string {
	if lifecycleState == "" {
		lifecycleState = "any"
	}
	return fmt.Sprintf("%sactive:%d:%s", PrefixNarratives, limit, lifecycleState)
}

// ArchivedNarrativesKey is the cache key for an archived listing.
func ArchivedNarrativesKey(days, limit int) string {
	return fmt.Sprintf("%sarchived:%d:%d", PrefixNarratives, days, limit)
}

// ResurrectionsKey is the cache key for a resurrections listing.
func ResurrectionsKey(days, limit int) string {
	return fmt.Sprintf("%sresurrections:%d:%d", PrefixNarratives, days, limit)
}
