package api

import (
	"time"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// SignalResponse is the wire shape of one trending entity.
type SignalResponse struct {
	Entity       string                           `json:"entity"`
	EntityType   string                           `json:"entity_type"`
	Timeframes   map[string]models.TimeframeScore `json:"timeframes"`
	Sentiment    models.SentimentStats            `json:"sentiment"`
	SourceCount  int                              `json:"source_count"`
	NarrativeIDs []string                         `json:"narrative_ids"`
	IsEmerging   bool                             `json:"is_emerging"`
	FirstSeen    time.Time                        `json:"first_seen"`
	UpdatedAt    time.Time                        `json:"updated_at"`
}

func signalResponse(row *ent.SignalScore) SignalResponse {
	narrativeIDs := row.NarrativeIds
	if narrativeIDs == nil {
		narrativeIDs = []string{}
	}
	return SignalResponse{
		Entity:     row.Entity,
		EntityType: row.EntityType,
		Timeframes: map[string]models.TimeframeScore{
			models.Timeframe24h: {Score: row.Score24h, Velocity: row.Velocity24h, Mentions: row.Mentions24h, Recency: row.Recency24h},
			models.Timeframe7d:  {Score: row.Score7d, Velocity: row.Velocity7d, Mentions: row.Mentions7d, Recency: row.Recency7d},
			models.Timeframe30d: {Score: row.Score30d, Velocity: row.Velocity30d, Mentions: row.Mentions30d, Recency: row.Recency30d},
		},
		Sentiment: models.SentimentStats{
			Avg:        row.SentimentAvg,
			Min:        row.SentimentMin,
			Max:        row.SentimentMax,
			Divergence: row.SentimentDivergence,
		},
		SourceCount:  row.SourceCount,
		NarrativeIDs: narrativeIDs,
		IsEmerging:   row.IsEmerging,
		FirstSeen:    row.FirstSeen,
		UpdatedAt:    row.UpdatedAt,
	}
}

func signalResponses(rows []*ent.SignalScore) []SignalResponse {
	out := make([]SignalResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, signalResponse(row))
	}
	return out
}

// NarrativeResponse is the wire shape of one narrative.
type NarrativeResponse struct {
	ID                   string                  `json:"id"`
	Title                string                  `json:"title"`
	Summary              string                  `json:"summary,omitempty"`
	NucleusEntity        string                  `json:"nucleus_entity"`
	Entities             []string                `json:"entities"`
	ArticleCount         int                     `json:"article_count"`
	LifecycleState       string                  `json:"lifecycle_state"`
	LifecycleHistory     []models.LifecycleEntry `json:"lifecycle_history,omitempty"`
	MentionVelocity      float64                 `json:"mention_velocity"`
	Momentum             string                  `json:"momentum"`
	RecencyScore         float64                 `json:"recency_score"`
	FirstSeen            time.Time               `json:"first_seen"`
	LastUpdated          time.Time               `json:"last_updated"`
	DaysActive           int                     `json:"days_active"`
	ReawakeningCount     int                     `json:"reawakening_count"`
	ReawakenedFrom       *time.Time              `json:"reawakened_from,omitempty"`
	ResurrectionVelocity *float64                `json:"resurrection_velocity,omitempty"`
	PeakActivity         *models.PeakActivity    `json:"peak_activity,omitempty"`
	MergedInto           *string                 `json:"merged_into,omitempty"`
	Articles             []ArticleSummary        `json:"articles,omitempty"`
}

// ArticleSummary is the member-article shape embedded in narrative
// detail responses.
type ArticleSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

func narrativeResponse(n *ent.Narrative, includeHistory bool) NarrativeResponse {
	entities := n.Entities
	if entities == nil {
		entities = []string{}
	}
	resp := NarrativeResponse{
		ID:                   n.ID,
		Title:                n.Title,
		Summary:              n.Summary,
		NucleusEntity:        n.NucleusEntity,
		Entities:             entities,
		ArticleCount:         n.ArticleCount,
		LifecycleState:       string(n.LifecycleState),
		MentionVelocity:      n.MentionVelocity,
		Momentum:             string(n.Momentum),
		RecencyScore:         n.RecencyScore,
		FirstSeen:            n.FirstSeen,
		LastUpdated:          n.LastUpdated,
		DaysActive:           n.DaysActive,
		ReawakeningCount:     n.ReawakeningCount,
		ReawakenedFrom:       n.ReawakenedFrom,
		ResurrectionVelocity: n.ResurrectionVelocity,
		MergedInto:           n.MergedInto,
	}
	if includeHistory {
		resp.LifecycleHistory = n.LifecycleHistory
	}
	if n.PeakActivity.ArticleCount > 0 {
		peak := n.PeakActivity
		resp.PeakActivity = &peak
	}
	return resp
}

func narrativeResponses(rows []*ent.Narrative) []NarrativeResponse {
	out := make([]NarrativeResponse, 0, len(rows))
	for _, n := range rows {
		out = append(out, narrativeResponse(n, false))
	}
	return out
}
