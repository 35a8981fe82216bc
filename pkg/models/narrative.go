package models

import "time"

// Lifecycle states for narratives. Transitions are owned by the
// lifecycle engine in pkg/narrative.
const (
	StateEmerging = "emerging"
	StateRising   = "rising"
	StateHot      = "hot"
	StateMature   = "mature"
	StateCooling  = "cooling"
	StateDormant  = "dormant"
	StateArchived = "archived"
)

// Momentum categories derived from velocity over the two halves of the
// lookback window.
const (
	MomentumGrowing   = "growing"
	MomentumStable    = "stable"
	MomentumDeclining = "declining"
	MomentumUnknown   = "unknown"
)

// ActiveStates are the states a narrative can be resurrected into.
var ActiveStates = []string{StateEmerging, StateRising, StateHot, StateMature}

// IsActiveState reports whether s counts as active for resurrection
// detection (dormant/archived -> active increments reawakening_count).
func IsActiveState(s string) bool {
	switch s {
	case StateEmerging, StateRising, StateHot, StateMature:
		return true
	}
	return false
}

// Fingerprint is the compact identity of a narrative used for
// similarity matching: the nucleus entity plus the highest-salience
// actors and deduped action phrases.
type Fingerprint struct {
	NucleusEntity string    `json:"nucleus_entity"`
	TopActors     []string  `json:"top_actors"`
	KeyActions    []string  `json:"key_actions"`
	Timestamp     time.Time `json:"timestamp"`
}

// LifecycleEntry is one append-only history record. The engine writes
// an entry on every state change, and once per 24h of continued
// activity as an observability heartbeat.
type LifecycleEntry struct {
	State           string    `json:"state"`
	Timestamp       time.Time `json:"timestamp"`
	ArticleCount    int       `json:"article_count"`
	MentionVelocity float64   `json:"mention_velocity"`
}

// PeakActivity records the narrative's busiest day.
type PeakActivity struct {
	Date         time.Time `json:"date"`
	ArticleCount int       `json:"article_count"`
	Velocity     float64   `json:"velocity"`
}

// NarrativeFilters narrows narrative listing queries.
type NarrativeFilters struct {
	LifecycleState string
	Since          *time.Time
	Limit          int
}
