package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// Narrative holds the schema definition for the Narrative entity: the
// aggregate of a coherent story over a set of articles, owned by the
// clusterer/matcher/lifecycle engine.
//
// The nucleus_entity column mirrors fingerprint.nucleus_entity so the
// partial unique index over non-archived narratives (created in
// pkg/database.CreatePartialUniqueIndexes) can enforce uniqueness.
type Narrative struct {
	ent.Schema
}

// Fields of the Narrative.
func (Narrative) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("narrative_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("summary").
			Optional(),
		field.String("theme").
			Optional().
			Comment("Deprecated: written once at creation, read-only after"),
		field.String("nucleus_entity").
			Comment("Canonical form; mirrors fingerprint.nucleus_entity"),
		field.JSON("entities", []string{}).
			Comment("Sorted deduped actors across member articles"),
		field.JSON("article_ids", []string{}),
		field.Int("article_count").
			Default(0),
		field.JSON("fingerprint", models.Fingerprint{}),
		field.Enum("lifecycle_state").
			Values("emerging", "rising", "hot", "mature", "cooling", "dormant", "archived").
			Default("emerging"),
		field.JSON("lifecycle_history", []models.LifecycleEntry{}).
			Comment("Append-only; last entry state == lifecycle_state"),
		field.Float("mention_velocity").
			Default(0).
			Comment("Articles/day over the 7-day lookback (denominator = lookback)"),
		field.Enum("momentum").
			Values("growing", "stable", "declining", "unknown").
			Default("unknown"),
		field.Float("recency_score").
			Default(0),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("last_updated").
			Default(time.Now),
		field.Int("days_active").
			Default(0),
		field.Int("reawakening_count").
			Default(0),
		field.Time("reawakened_from").
			Optional().
			Nillable().
			Comment("Timestamp of the most recent resurrection"),
		field.Float("resurrection_velocity").
			Optional().
			Nillable(),
		field.JSON("peak_activity", models.PeakActivity{}).
			Optional(),
		field.String("merged_into").
			Optional().
			Nillable().
			Comment("Set when archived by a merge; survivor narrative id"),
		field.Int("version").
			Default(1).
			Comment("Optimistic concurrency token for attach updates"),
	}
}

// Indexes of the Narrative.
func (Narrative) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("nucleus_entity"),
		index.Fields("last_updated"),
		index.Fields("lifecycle_state", "last_updated"),
		index.Fields("reawakened_from"),
	}
}
