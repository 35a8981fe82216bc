package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityMention holds the schema definition for the EntityMention
// entity: one row per (article, entity) pair, written by the extractor.
type EntityMention struct {
	ent.Schema
}

// Fields of the EntityMention.
func (EntityMention) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mention_id").
			Unique().
			Immutable(),
		field.String("article_id").
			Immutable(),
		field.String("entity").
			Immutable().
			Comment("Canonical form (normalized before insert)"),
		field.Enum("entity_type").
			Values("cryptocurrency", "blockchain", "protocol", "company",
				"organization", "person", "location", "concept", "event").
			Immutable(),
		field.Bool("is_primary").
			Immutable().
			Comment("True for cryptocurrency/blockchain/protocol/company/organization"),
		field.Enum("sentiment").
			Values("positive", "neutral", "negative").
			Immutable(),
		field.Float("confidence").
			Immutable().
			Comment("0..1"),
		field.String("source").
			Immutable().
			Comment("Propagated from article.source"),
		field.Time("created_at").
			Immutable().
			Comment("Equals article.published_at, not insert time"),
	}
}

// Edges of the EntityMention.
func (EntityMention) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("article", Article.Type).
			Ref("mentions").
			Field("article_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EntityMention.
func (EntityMention) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("article_id", "entity").
			Unique(),
		index.Fields("entity", "is_primary", "created_at"),
		index.Fields("article_id"),
	}
}
