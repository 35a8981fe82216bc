// Code generated by ent, DO NOT EDIT.

package article

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the article type in the database.
	Label = "article"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "article_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldRelevanceTier holds the string denoting the relevance_tier field in the database.
	FieldRelevanceTier = "relevance_tier"
	// FieldRelevanceReason holds the string denoting the relevance_reason field in the database.
	FieldRelevanceReason = "relevance_reason"
	// FieldSentimentLabel holds the string denoting the sentiment_label field in the database.
	FieldSentimentLabel = "sentiment_label"
	// FieldNucleusEntity holds the string denoting the nucleus_entity field in the database.
	FieldNucleusEntity = "nucleus_entity"
	// FieldActors holds the string denoting the actors field in the database.
	FieldActors = "actors"
	// FieldActorSalience holds the string denoting the actor_salience field in the database.
	FieldActorSalience = "actor_salience"
	// FieldKeyActions holds the string denoting the key_actions field in the database.
	FieldKeyActions = "key_actions"
	// FieldNarrativeSummary holds the string denoting the narrative_summary field in the database.
	FieldNarrativeSummary = "narrative_summary"
	// FieldNarrativeHash holds the string denoting the narrative_hash field in the database.
	FieldNarrativeHash = "narrative_hash"
	// FieldNarrativeID holds the string denoting the narrative_id field in the database.
	FieldNarrativeID = "narrative_id"
	// EdgeMentions holds the string denoting the mentions edge name in mutations.
	EdgeMentions = "mentions"
	// EntityMentionFieldID holds the string denoting the ID field of the EntityMention.
	EntityMentionFieldID = "mention_id"
	// Table holds the table name of the article in the database.
	Table = "articles"
	// MentionsTable is the table that holds the mentions relation/edge.
	MentionsTable = "entity_mentions"
	// MentionsInverseTable is the table name for the EntityMention entity.
	// It exists in this package in order to avoid circular dependency with the "entitymention" package.
	MentionsInverseTable = "entity_mentions"
	// MentionsColumn is the table column denoting the mentions relation/edge.
	MentionsColumn = "article_id"
)

// Columns holds all SQL columns for article fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldTitle,
	FieldText,
	FieldSource,
	FieldPublishedAt,
	FieldCreatedAt,
	FieldRelevanceTier,
	FieldRelevanceReason,
	FieldSentimentLabel,
	FieldNucleusEntity,
	FieldActors,
	FieldActorSalience,
	FieldKeyActions,
	FieldNarrativeSummary,
	FieldNarrativeHash,
	FieldNarrativeID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SentimentLabel defines the type for the "sentiment_label" enum field.
type SentimentLabel string

// SentimentLabel values.
const (
	SentimentLabelPositive SentimentLabel = "positive"
	SentimentLabelNeutral  SentimentLabel = "neutral"
	SentimentLabelNegative SentimentLabel = "negative"
)

func (sl SentimentLabel) String() string {
	return string(sl)
}

// SentimentLabelValidator is a validator for the "sentiment_label" field enum values. It is called by the builders before save.
func SentimentLabelValidator(sl SentimentLabel) error {
	switch sl {
	case SentimentLabelPositive, SentimentLabelNeutral, SentimentLabelNegative:
		return nil
	default:
		return fmt.Errorf("article: invalid enum value for sentiment_label field: %q", sl)
	}
}

// OrderOption defines the ordering options for the Article queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRelevanceTier orders the results by the relevance_tier field.
func ByRelevanceTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceTier, opts...).ToFunc()
}

// ByRelevanceReason orders the results by the relevance_reason field.
func ByRelevanceReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceReason, opts...).ToFunc()
}

// BySentimentLabel orders the results by the sentiment_label field.
func BySentimentLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentLabel, opts...).ToFunc()
}

// ByNucleusEntity orders the results by the nucleus_entity field.
func ByNucleusEntity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNucleusEntity, opts...).ToFunc()
}

// ByNarrativeSummary orders the results by the narrative_summary field.
func ByNarrativeSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNarrativeSummary, opts...).ToFunc()
}

// ByNarrativeHash orders the results by the narrative_hash field.
func ByNarrativeHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNarrativeHash, opts...).ToFunc()
}

// ByNarrativeID orders the results by the narrative_id field.
func ByNarrativeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNarrativeID, opts...).ToFunc()
}

// ByMentionsCount orders the results by mentions count.
func ByMentionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMentionsStep(), opts...)
	}
}

// ByMentions orders the results by mentions terms.
func ByMentions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMentionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMentionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MentionsInverseTable, EntityMentionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MentionsTable, MentionsColumn),
	)
}
