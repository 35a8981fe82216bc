package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Article holds the schema definition for the Article entity.
// Core fields are immutable after ingestion; enrichment fields are
// written once per content hash by the extractor, and narrative_id is
// written by the clusterer.
type Article struct {
	ent.Schema
}

// Fields of the Article.
func (Article) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("article_id").
			Unique().
			Immutable(),
		field.String("url").
			Unique().
			Immutable(),
		field.Text("title").
			Immutable(),
		field.Text("text").
			Immutable(),
		field.String("source").
			Immutable(),
		field.Time("published_at").
			Immutable().
			Comment("UTC; normalized at ingestion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		// Enrichment written by the relevance classifier + extractor.
		field.Int("relevance_tier").
			Optional().
			Nillable().
			Comment("1=high, 2=medium, 3=low (excluded from scoring)"),
		field.String("relevance_reason").
			Optional().
			Nillable(),
		field.Enum("sentiment_label").
			Values("positive", "neutral", "negative").
			Optional(),
		field.String("nucleus_entity").
			Optional().
			Nillable().
			Comment("Canonical form; cluster key"),
		field.JSON("actors", []string{}).
			Optional(),
		field.JSON("actor_salience", map[string]int{}).
			Optional().
			Comment("actor -> salience 1..5"),
		field.JSON("key_actions", []string{}).
			Optional(),
		field.Text("narrative_summary").
			Optional().
			Nillable(),
		field.String("narrative_hash").
			Optional().
			Nillable().
			Comment("<extractor version>:<sha256(title+text)>; idempotence key"),

		// Back-reference written by the clusterer.
		field.String("narrative_id").
			Optional().
			Nillable(),
	}
}

// Edges of the Article.
func (Article) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("mentions", EntityMention.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Article.
func (Article) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("published_at"),
		index.Fields("narrative_id"),
		index.Fields("narrative_hash"),
		index.Fields("relevance_tier", "published_at"),
	}
}
