package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APICost holds the schema definition for the APICost entity: an
// append-only record of every LLM call, including cache hits (recorded
// with cost 0 for hit-rate analytics).
type APICost struct {
	ent.Schema
}

// Fields of the APICost.
func (APICost) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cost_id").
			Unique().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("operation").
			Immutable().
			Comment("e.g. entity_extraction, narrative_summary"),
		field.String("model").
			Immutable(),
		field.Int("input_tokens").
			Default(0).
			Immutable(),
		field.Int("output_tokens").
			Default(0).
			Immutable(),
		field.Float("cost_usd").
			Default(0).
			Immutable(),
		field.Bool("cached").
			Default(false).
			Immutable(),
		field.String("cache_key").
			Optional().
			Nillable().
			Immutable(),
	}
}

// Indexes of the APICost.
func (APICost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("operation", "timestamp"),
		index.Fields("model", "timestamp"),
	}
}
