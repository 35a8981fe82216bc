package models

import "time"

// Signal timeframes. Window lengths in hours: 24, 168, 720.
const (
	Timeframe24h = "24h"
	Timeframe7d  = "7d"
	Timeframe30d = "30d"
)

// TimeframeHours maps a timeframe label to its window length in hours.
// Returns 0 for unknown labels.
func TimeframeHours(tf string) int {
	switch tf {
	case Timeframe24h:
		return 24
	case Timeframe7d:
		return 168
	case Timeframe30d:
		return 720
	}
	return 0
}

// TimeframeScore is the score triple for one entity and one window.
type TimeframeScore struct {
	Score    float64 `json:"score"`
	Velocity float64 `json:"velocity"` // percent growth vs the prior window
	Mentions int     `json:"mentions"`
	Recency  float64 `json:"recency"`
}

// SentimentStats aggregates mention-level sentiment over the most
// recent window. Divergence is (max-min)/2, normalized to [0,1].
type SentimentStats struct {
	Avg        float64 `json:"avg"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Divergence float64 `json:"divergence"`
}

// EntitySignal is the computed signal for one canonical entity across
// all timeframes, prior to persistence.
type EntitySignal struct {
	Entity       string                    `json:"entity"`
	EntityType   string                    `json:"entity_type"`
	Timeframes   map[string]TimeframeScore `json:"timeframes"`
	Sentiment    SentimentStats            `json:"sentiment"`
	SourceCount  int                       `json:"source_count"`
	NarrativeIDs []string                  `json:"narrative_ids"`
	IsEmerging   bool                      `json:"is_emerging"`
	FirstSeen    time.Time                 `json:"first_seen"`
}

// SignalFilters narrows trending-signal queries.
type SignalFilters struct {
	Timeframe  string
	EntityType string
	Limit      int
}
