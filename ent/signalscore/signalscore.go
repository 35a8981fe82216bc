// Code generated by ent, DO NOT EDIT.

package signalscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the signalscore type in the database.
	Label = "signal_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "signal_id"
	// FieldEntity holds the string denoting the entity field in the database.
	FieldEntity = "entity"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldScore24h holds the string denoting the score_24h field in the database.
	FieldScore24h = "score_24h"
	// FieldVelocity24h holds the string denoting the velocity_24h field in the database.
	FieldVelocity24h = "velocity_24h"
	// FieldMentions24h holds the string denoting the mentions_24h field in the database.
	FieldMentions24h = "mentions_24h"
	// FieldRecency24h holds the string denoting the recency_24h field in the database.
	FieldRecency24h = "recency_24h"
	// FieldScore7d holds the string denoting the score_7d field in the database.
	FieldScore7d = "score_7d"
	// FieldVelocity7d holds the string denoting the velocity_7d field in the database.
	FieldVelocity7d = "velocity_7d"
	// FieldMentions7d holds the string denoting the mentions_7d field in the database.
	FieldMentions7d = "mentions_7d"
	// FieldRecency7d holds the string denoting the recency_7d field in the database.
	FieldRecency7d = "recency_7d"
	// FieldScore30d holds the string denoting the score_30d field in the database.
	FieldScore30d = "score_30d"
	// FieldVelocity30d holds the string denoting the velocity_30d field in the database.
	FieldVelocity30d = "velocity_30d"
	// FieldMentions30d holds the string denoting the mentions_30d field in the database.
	FieldMentions30d = "mentions_30d"
	// FieldRecency30d holds the string denoting the recency_30d field in the database.
	FieldRecency30d = "recency_30d"
	// FieldSentimentAvg holds the string denoting the sentiment_avg field in the database.
	FieldSentimentAvg = "sentiment_avg"
	// FieldSentimentMin holds the string denoting the sentiment_min field in the database.
	FieldSentimentMin = "sentiment_min"
	// FieldSentimentMax holds the string denoting the sentiment_max field in the database.
	FieldSentimentMax = "sentiment_max"
	// FieldSentimentDivergence holds the string denoting the sentiment_divergence field in the database.
	FieldSentimentDivergence = "sentiment_divergence"
	// FieldSourceCount holds the string denoting the source_count field in the database.
	FieldSourceCount = "source_count"
	// FieldNarrativeIds holds the string denoting the narrative_ids field in the database.
	FieldNarrativeIds = "narrative_ids"
	// FieldIsEmerging holds the string denoting the is_emerging field in the database.
	FieldIsEmerging = "is_emerging"
	// Table holds the table name of the signalscore in the database.
	Table = "signal_scores"
)

// Columns holds all SQL columns for signalscore fields.
var Columns = []string{
	FieldID,
	FieldEntity,
	FieldEntityType,
	FieldFirstSeen,
	FieldUpdatedAt,
	FieldScore24h,
	FieldVelocity24h,
	FieldMentions24h,
	FieldRecency24h,
	FieldScore7d,
	FieldVelocity7d,
	FieldMentions7d,
	FieldRecency7d,
	FieldScore30d,
	FieldVelocity30d,
	FieldMentions30d,
	FieldRecency30d,
	FieldSentimentAvg,
	FieldSentimentMin,
	FieldSentimentMax,
	FieldSentimentDivergence,
	FieldSourceCount,
	FieldNarrativeIds,
	FieldIsEmerging,
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
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultScore24h holds the default value on creation for the "score_24h" field.
	DefaultScore24h float64
	// DefaultVelocity24h holds the default value on creation for the "velocity_24h" field.
	DefaultVelocity24h float64
	// DefaultMentions24h holds the default value on creation for the "mentions_24h" field.
	DefaultMentions24h int
	// DefaultRecency24h holds the default value on creation for the "recency_24h" field.
	DefaultRecency24h float64
	// DefaultScore7d holds the default value on creation for the "score_7d" field.
	DefaultScore7d float64
	// DefaultVelocity7d holds the default value on creation for the "velocity_7d" field.
	DefaultVelocity7d float64
	// DefaultMentions7d holds the default value on creation for the "mentions_7d" field.
	DefaultMentions7d int
	// DefaultRecency7d holds the default value on creation for the "recency_7d" field.
	DefaultRecency7d float64
	// DefaultScore30d holds the default value on creation for the "score_30d" field.
	DefaultScore30d float64
	// DefaultVelocity30d holds the default value on creation for the "velocity_30d" field.
	DefaultVelocity30d float64
	// DefaultMentions30d holds the default value on creation for the "mentions_30d" field.
	DefaultMentions30d int
	// DefaultRecency30d holds the default value on creation for the "recency_30d" field.
	DefaultRecency30d float64
	// DefaultSentimentAvg holds the default value on creation for the "sentiment_avg" field.
	DefaultSentimentAvg float64
	// DefaultSentimentMin holds the default value on creation for the "sentiment_min" field.
	DefaultSentimentMin float64
	// DefaultSentimentMax holds the default value on creation for the "sentiment_max" field.
	DefaultSentimentMax float64
	// DefaultSentimentDivergence holds the default value on creation for the "sentiment_divergence" field.
	DefaultSentimentDivergence float64
	// DefaultSourceCount holds the default value on creation for the "source_count" field.
	DefaultSourceCount int
	// DefaultIsEmerging holds the default value on creation for the "is_emerging" field.
	DefaultIsEmerging bool
)

// OrderOption defines the ordering options for the SignalScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntity orders the results by the entity field.
func ByEntity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntity, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByScore24h orders the results by the score_24h field.
func ByScore24h(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore24h, opts...).ToFunc()
}

// ByVelocity24h orders the results by the velocity_24h field.
func ByVelocity24h(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVelocity24h, opts...).ToFunc()
}

// ByMentions24h orders the results by the mentions_24h field.
func ByMentions24h(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentions24h, opts...).ToFunc()
}

// ByRecency24h orders the results by the recency_24h field.
func ByRecency24h(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecency24h, opts...).ToFunc()
}

// ByScore7d orders the results by the score_7d field.
func ByScore7d(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore7d, opts...).ToFunc()
}

// ByVelocity7d orders the results by the velocity_7d field.
func ByVelocity7d(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVelocity7d, opts...).ToFunc()
}

// ByMentions7d orders the results by the mentions_7d field.
func ByMentions7d(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentions7d, opts...).ToFunc()
}

// ByRecency7d orders the results by the recency_7d field.
func ByRecency7d(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecency7d, opts...).ToFunc()
}

// ByScore30d orders the results by the score_30d field.
func ByScore30d(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore30d, opts...).ToFunc()
}

// ByVelocity30d orders the results by the velocity_30d field.
func ByVelocity30d(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVelocity30d, opts...).ToFunc()
}

// ByMentions30d orders the results by the mentions_30d field.
func ByMentions30d(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentions30d, opts...).ToFunc()
}

// ByRecency30d orders the results by the recency_30d field.
func ByRecency30d(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecency30d, opts...).ToFunc()
}

// BySentimentAvg orders the results by the sentiment_avg field.
func BySentimentAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentAvg, opts...).ToFunc()
}

// BySentimentMin orders the results by the sentiment_min field.
func BySentimentMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentMin, opts...).ToFunc()
}

// BySentimentMax orders the results by the sentiment_max field.
func BySentimentMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentMax, opts...).ToFunc()
}

// BySentimentDivergence orders the results by the sentiment_divergence field.
func BySentimentDivergence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentDivergence, opts...).ToFunc()
}

// BySourceCount orders the results by the source_count field.
func BySourceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceCount, opts...).ToFunc()
}

// ByIsEmerging orders the results by the is_emerging field.
func ByIsEmerging(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEmerging, opts...).ToFunc()
}
