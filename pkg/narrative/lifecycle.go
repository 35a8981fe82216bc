package narrative

import (
	"time"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// Staleness boundaries in days since last update.
const (
	coolingAfterDays  = 3.0
	dormantAfterDays  = 7.0
	archivedAfterDays = 30.0
)

// Activity thresholds for the state rules below.
const (
	emergingMaxArticles = 4
	matureMinArticles   = 8
	hotMinVelocity      = 2.0
	matureMinVelocity   = 3.0
)

// historyHeartbeat is how often a history entry is appended for a
// narrative whose state has not changed.
const historyHeartbeat = 24 * time.Hour

// LifecycleInput carries everything the state machine needs for one
// narrative. Velocity and Momentum come from ComputeVelocity and
// ComputeMomentum over the same article set.
type LifecycleInput struct {
	ArticleCount  int
	Velocity      float64
	Momentum      string
	PreviousState string
	LastUpdated   time.Time
	Now           time.Time

	// DormantAfter and ArchiveAfter override the default staleness
	// cutoffs (in days) when positive.
	DormantAfter float64
	ArchiveAfter float64
}

// EvaluateState returns the next lifecycle state.
//
// Staleness rules run first: a narrative that has received nothing for
// long enough archives, goes dormant, or cools regardless of its
// historical article count. Activity rules then classify narratives
// that are still receiving articles. Anything active that matches no
// rule keeps its previous state.
func EvaluateState(in LifecycleInput) string {
	days := in.Now.Sub(in.LastUpdated).Hours() / 24

	dormantCutoff, archiveCutoff := dormantAfterDays, archivedAfterDays
	if in.DormantAfter > 0 {
		dormantCutoff = in.DormantAfter
	}
	if in.ArchiveAfter > 0 {
		archiveCutoff = in.ArchiveAfter
	}

	switch {
	case days > archiveCutoff:
		return models.StateArchived
	case days > dormantCutoff:
		return models.StateDormant
	}
	if days > coolingAfterDays {
		switch in.PreviousState {
		case models.StateHot, models.StateMature, models.StateRising:
			return models.StateCooling
		}
	}

	switch {
	case in.ArticleCount <= emergingMaxArticles:
		return models.StateEmerging
	case in.Momentum == models.MomentumGrowing:
		return models.StateRising
	case in.ArticleCount >= matureMinArticles && in.Velocity >= matureMinVelocity:
		return models.StateMature
	case in.Velocity >= hotMinVelocity && in.Momentum == models.MomentumStable:
		return models.StateHot
	case in.Velocity >= hotMinVelocity && in.Momentum == models.MomentumDeclining:
		return models.StateCooling
	}

	if models.IsActiveState(in.PreviousState) || in.PreviousState == models.StateCooling {
		return in.PreviousState
	}
	return models.StateEmerging
}

// IsResurrection reports whether moving from prev to next counts as a
// resurrection: dormant or archived back to any active state.
func IsResurrection(prev, next string) bool {
	if prev != models.StateDormant && prev != models.StateArchived {
		return false
	}
	return models.IsActiveState(next)
}

// ShouldAppendHistory reports whether a new lifecycle_history entry is
// due: on every state change, and once per heartbeat interval while the
// state holds steady. History is append-only; prior entries are never
// rewritten.
func ShouldAppendHistory(history []models.LifecycleEntry, newState string, now time.Time) bool {
	if len(history) == 0 {
		return true
	}
	last := history[len(history)-1]
	if last.State != newState {
		return true
	}
	return now.Sub(last.Timestamp) >= historyHeartbeat
}
