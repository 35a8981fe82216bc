package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SignalScore holds the schema definition for the SignalScore entity:
// one row per canonical entity, upserted by the signal scorer with
// field-level partial updates per timeframe.
type SignalScore struct {
	ent.Schema
}

// Fields of the SignalScore.
func (SignalScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("signal_id").
			Unique().
			Immutable(),
		field.String("entity").
			Unique().
			Comment("Canonical form"),
		field.String("entity_type"),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),

		field.Float("score_24h").Default(0),
		field.Float("velocity_24h").Default(0).
			Comment("Percent growth; 67.0 means +67%"),
		field.Int("mentions_24h").Default(0),
		field.Float("recency_24h").Default(0),

		field.Float("score_7d").Default(0),
		field.Float("velocity_7d").Default(0),
		field.Int("mentions_7d").Default(0),
		field.Float("recency_7d").Default(0),

		field.Float("score_30d").Default(0),
		field.Float("velocity_30d").Default(0),
		field.Int("mentions_30d").Default(0),
		field.Float("recency_30d").Default(0),

		field.Float("sentiment_avg").Default(0),
		field.Float("sentiment_min").Default(0),
		field.Float("sentiment_max").Default(0),
		field.Float("sentiment_divergence").Default(0),

		field.Int("source_count").Default(0),
		field.JSON("narrative_ids", []string{}).
			Optional(),
		field.Bool("is_emerging").
			Default(false).
			Comment("True iff no narrative contains the entity and a score exceeds the floor"),
	}
}

// Indexes of the SignalScore.
func (SignalScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("score_7d"),
		index.Fields("score_24h"),
		index.Fields("entity_type", "score_7d"),
		index.Fields("is_emerging"),
	}
}
