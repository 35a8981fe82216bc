// Code generated by ent, DO NOT EDIT.

package signalscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldContainsFold(FieldID, id))
}

// Entity applies equality check predicate on the "entity" field. It's identical to EntityEQ.
func Entity(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldEntity, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldEntityType, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldFirstSeen, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// Score24h applies equality check predicate on the "score_24h" field. It's identical to Score24hEQ.
func Score24h(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldScore24h, v))
}

// Velocity24h applies equality check predicate on the "velocity_24h" field. It's identical to Velocity24hEQ.
func Velocity24h(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldVelocity24h, v))
}

// Mentions24h applies equality check predicate on the "mentions_24h" field. It's identical to Mentions24hEQ.
func Mentions24h(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldMentions24h, v))
}

// Recency24h applies equality check predicate on the "recency_24h" field. It's identical to Recency24hEQ.
func Recency24h(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldRecency24h, v))
}

// Score7d applies equality check predicate on the "score_7d" field. It's identical to Score7dEQ.
func Score7d(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldScore7d, v))
}

// Velocity7d applies equality check predicate on the "velocity_7d" field. It's identical to Velocity7dEQ.
func Velocity7d(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldVelocity7d, v))
}

// Mentions7d applies equality check predicate on the "mentions_7d" field. It's identical to Mentions7dEQ.
func Mentions7d(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldMentions7d, v))
}

// Recency7d applies equality check predicate on the "recency_7d" field. It's identical to Recency7dEQ.
func Recency7d(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldRecency7d, v))
}

// Score30d applies equality check predicate on the "score_30d" field. It's identical to Score30dEQ.
func Score30d(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldScore30d, v))
}

// Velocity30d applies equality check predicate on the "velocity_30d" field. It's identical to Velocity30dEQ.
func Velocity30d(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldVelocity30d, v))
}

// Mentions30d applies equality check predicate on the "mentions_30d" field. It's identical to Mentions30dEQ.
func Mentions30d(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldMentions30d, v))
}

// Recency30d applies equality check predicate on the "recency_30d" field. It's identical to Recency30dEQ.
func Recency30d(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldRecency30d, v))
}

// SentimentAvg applies equality check predicate on the "sentiment_avg" field. It's identical to SentimentAvgEQ.
func SentimentAvg(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldSentimentAvg, v))
}

// SentimentMin applies equality check predicate on the "sentiment_min" field. It's identical to SentimentMinEQ.
func SentimentMin(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldSentimentMin, v))
}

// SentimentMax applies equality check predicate on the "sentiment_max" field. It's identical to SentimentMaxEQ.
func SentimentMax(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldSentimentMax, v))
}

// SentimentDivergence applies equality check predicate on the "sentiment_divergence" field. It's identical to SentimentDivergenceEQ.
func SentimentDivergence(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldSentimentDivergence, v))
}

// SourceCount applies equality check predicate on the "source_count" field. It's identical to SourceCountEQ.
func SourceCount(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldSourceCount, v))
}

// IsEmerging applies equality check predicate on the "is_emerging" field. It's identical to IsEmergingEQ.
func IsEmerging(v bool) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldIsEmerging, v))
}

// EntityEQ applies the EQ predicate on the "entity" field.
func EntityEQ(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldEntity, v))
}

// EntityNEQ applies the NEQ predicate on the "entity" field.
func EntityNEQ(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldEntity, v))
}

// EntityIn applies the In predicate on the "entity" field.
func EntityIn(vs ...string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldEntity, vs...))
}

// EntityNotIn applies the NotIn predicate on the "entity" field.
func EntityNotIn(vs ...string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldEntity, vs...))
}

// EntityGT applies the GT predicate on the "entity" field.
func EntityGT(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldEntity, v))
}

// EntityGTE applies the GTE predicate on the "entity" field.
func EntityGTE(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldEntity, v))
}

// EntityLT applies the LT predicate on the "entity" field.
func EntityLT(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldEntity, v))
}

// EntityLTE applies the LTE predicate on the "entity" field.
func EntityLTE(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldEntity, v))
}

// EntityContains applies the Contains predicate on the "entity" field.
func EntityContains(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldContains(FieldEntity, v))
}

// EntityHasPrefix applies the HasPrefix predicate on the "entity" field.
func EntityHasPrefix(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldHasPrefix(FieldEntity, v))
}

// EntityHasSuffix applies the HasSuffix predicate on the "entity" field.
func EntityHasSuffix(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldHasSuffix(FieldEntity, v))
}

// EntityEqualFold applies the EqualFold predicate on the "entity" field.
func EntityEqualFold(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEqualFold(FieldEntity, v))
}

// EntityContainsFold applies the ContainsFold predicate on the "entity" field.
func EntityContainsFold(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldContainsFold(FieldEntity, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldContainsFold(FieldEntityType, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldFirstSeen, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldUpdatedAt, v))
}

// Score24hEQ applies the EQ predicate on the "score_24h" field.
func Score24hEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldScore24h, v))
}

// Score24hNEQ applies the NEQ predicate on the "score_24h" field.
func Score24hNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldScore24h, v))
}

// Score24hIn applies the In predicate on the "score_24h" field.
func Score24hIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldScore24h, vs...))
}

// Score24hNotIn applies the NotIn predicate on the "score_24h" field.
func Score24hNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldScore24h, vs...))
}

// Score24hGT applies the GT predicate on the "score_24h" field.
func Score24hGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldScore24h, v))
}

// Score24hGTE applies the GTE predicate on the "score_24h" field.
func Score24hGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldScore24h, v))
}

// Score24hLT applies the LT predicate on the "score_24h" field.
func Score24hLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldScore24h, v))
}

// Score24hLTE applies the LTE predicate on the "score_24h" field.
func Score24hLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldScore24h, v))
}

// Velocity24hEQ applies the EQ predicate on the "velocity_24h" field.
func Velocity24hEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldVelocity24h, v))
}

// Velocity24hNEQ applies the NEQ predicate on the "velocity_24h" field.
func Velocity24hNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldVelocity24h, v))
}

// Velocity24hIn applies the In predicate on the "velocity_24h" field.
func Velocity24hIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldVelocity24h, vs...))
}

// Velocity24hNotIn applies the NotIn predicate on the "velocity_24h" field.
func Velocity24hNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldVelocity24h, vs...))
}

// Velocity24hGT applies the GT predicate on the "velocity_24h" field.
func Velocity24hGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldVelocity24h, v))
}

// Velocity24hGTE applies the GTE predicate on the "velocity_24h" field.
func Velocity24hGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldVelocity24h, v))
}

// Velocity24hLT applies the LT predicate on the "velocity_24h" field.
func Velocity24hLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldVelocity24h, v))
}

// Velocity24hLTE applies the LTE predicate on the "velocity_24h" field.
func Velocity24hLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldVelocity24h, v))
}

// Mentions24hEQ applies the EQ predicate on the "mentions_24h" field.
func Mentions24hEQ(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldMentions24h, v))
}

// Mentions24hNEQ applies the NEQ predicate on the "mentions_24h" field.
func Mentions24hNEQ(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldMentions24h, v))
}

// Mentions24hIn applies the In predicate on the "mentions_24h" field.
func Mentions24hIn(vs ...int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldMentions24h, vs...))
}

// Mentions24hNotIn applies the NotIn predicate on the "mentions_24h" field.
func Mentions24hNotIn(vs ...int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldMentions24h, vs...))
}

// Mentions24hGT applies the GT predicate on the "mentions_24h" field.
func Mentions24hGT(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldMentions24h, v))
}

// Mentions24hGTE applies the GTE predicate on the "mentions_24h" field.
func Mentions24hGTE(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldMentions24h, v))
}

// Mentions24hLT applies the LT predicate on the "mentions_24h" field.
func Mentions24hLT(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldMentions24h, v))
}

// Mentions24hLTE applies the LTE predicate on the "mentions_24h" field.
func Mentions24hLTE(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldMentions24h, v))
}

// Recency24hEQ applies the EQ predicate on the "recency_24h" field.
func Recency24hEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldRecency24h, v))
}

// Recency24hNEQ applies the NEQ predicate on the "recency_24h" field.
func Recency24hNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldRecency24h, v))
}

// Recency24hIn applies the In predicate on the "recency_24h" field.
func Recency24hIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldRecency24h, vs...))
}

// Recency24hNotIn applies the NotIn predicate on the "recency_24h" field.
func Recency24hNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldRecency24h, vs...))
}

// Recency24hGT applies the GT predicate on the "recency_24h" field.
func Recency24hGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldRecency24h, v))
}

// Recency24hGTE applies the GTE predicate on the "recency_24h" field.
func Recency24hGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldRecency24h, v))
}

// Recency24hLT applies the LT predicate on the "recency_24h" field.
func Recency24hLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldRecency24h, v))
}

// Recency24hLTE applies the LTE predicate on the "recency_24h" field.
func Recency24hLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldRecency24h, v))
}

// Score7dEQ applies the EQ predicate on the "score_7d" field.
func Score7dEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldScore7d, v))
}

// Score7dNEQ applies the NEQ predicate on the "score_7d" field.
func Score7dNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldScore7d, v))
}

// Score7dIn applies the In predicate on the "score_7d" field.
func Score7dIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldScore7d, vs...))
}

// Score7dNotIn applies the NotIn predicate on the "score_7d" field.
func Score7dNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldScore7d, vs...))
}

// Score7dGT applies the GT predicate on the "score_7d" field.
func Score7dGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldScore7d, v))
}

// Score7dGTE applies the GTE predicate on the "score_7d" field.
func Score7dGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldScore7d, v))
}

// Score7dLT applies the LT predicate on the "score_7d" field.
func Score7dLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldScore7d, v))
}

// Score7dLTE applies the LTE predicate on the "score_7d" field.
func Score7dLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldScore7d, v))
}

// Velocity7dEQ applies the EQ predicate on the "velocity_7d" field.
func Velocity7dEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldVelocity7d, v))
}

// Velocity7dNEQ applies the NEQ predicate on the "velocity_7d" field.
func Velocity7dNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldVelocity7d, v))
}

// Velocity7dIn applies the In predicate on the "velocity_7d" field.
func Velocity7dIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldVelocity7d, vs...))
}

// Velocity7dNotIn applies the NotIn predicate on the "velocity_7d" field.
func Velocity7dNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldVelocity7d, vs...))
}

// Velocity7dGT applies the GT predicate on the "velocity_7d" field.
func Velocity7dGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldVelocity7d, v))
}

// Velocity7dGTE applies the GTE predicate on the "velocity_7d" field.
func Velocity7dGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldVelocity7d, v))
}

// Velocity7dLT applies the LT predicate on the "velocity_7d" field.
func Velocity7dLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldVelocity7d, v))
}

// Velocity7dLTE applies the LTE predicate on the "velocity_7d" field.
func Velocity7dLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldVelocity7d, v))
}

// Mentions7dEQ applies the EQ predicate on the "mentions_7d" field.
func Mentions7dEQ(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldMentions7d, v))
}

// Mentions7dNEQ applies the NEQ predicate on the "mentions_7d" field.
func Mentions7dNEQ(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldMentions7d, v))
}

// Mentions7dIn applies the In predicate on the "mentions_7d" field.
func Mentions7dIn(vs ...int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldMentions7d, vs...))
}

// Mentions7dNotIn applies the NotIn predicate on the "mentions_7d" field.
func Mentions7dNotIn(vs ...int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldMentions7d, vs...))
}

// Mentions7dGT applies the GT predicate on the "mentions_7d" field.
func Mentions7dGT(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldMentions7d, v))
}

// Mentions7dGTE applies the GTE predicate on the "mentions_7d" field.
func Mentions7dGTE(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldMentions7d, v))
}

// Mentions7dLT applies the LT predicate on the "mentions_7d" field.
func Mentions7dLT(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldMentions7d, v))
}

// Mentions7dLTE applies the LTE predicate on the "mentions_7d" field.
func Mentions7dLTE(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldMentions7d, v))
}

// Recency7dEQ applies the EQ predicate on the "recency_7d" field.
func Recency7dEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldRecency7d, v))
}

// Recency7dNEQ applies the NEQ predicate on the "recency_7d" field.
func Recency7dNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldRecency7d, v))
}

// Recency7dIn applies the In predicate on the "recency_7d" field.
func Recency7dIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldRecency7d, vs...))
}

// Recency7dNotIn applies the NotIn predicate on the "recency_7d" field.
func Recency7dNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldRecency7d, vs...))
}

// Recency7dGT applies the GT predicate on the "recency_7d" field.
func Recency7dGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldRecency7d, v))
}

// Recency7dGTE applies the GTE predicate on the "recency_7d" field.
func Recency7dGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldRecency7d, v))
}

// Recency7dLT applies the LT predicate on the "recency_7d" field.
func Recency7dLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldRecency7d, v))
}

// Recency7dLTE applies the LTE predicate on the "recency_7d" field.
func Recency7dLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldRecency7d, v))
}

// Score30dEQ applies the EQ predicate on the "score_30d" field.
func Score30dEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldScore30d, v))
}

// Score30dNEQ applies the NEQ predicate on the "score_30d" field.
func Score30dNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldScore30d, v))
}

// Score30dIn applies the In predicate on the "score_30d" field.
func Score30dIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldScore30d, vs...))
}

// Score30dNotIn applies the NotIn predicate on the "score_30d" field.
func Score30dNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldScore30d, vs...))
}

// Score30dGT applies the GT predicate on the "score_30d" field.
func Score30dGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldScore30d, v))
}

// Score30dGTE applies the GTE predicate on the "score_30d" field.
func Score30dGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldScore30d, v))
}

// Score30dLT applies the LT predicate on the "score_30d" field.
func Score30dLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldScore30d, v))
}

// Score30dLTE applies the LTE predicate on the "score_30d" field.
func Score30dLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldScore30d, v))
}

// Velocity30dEQ applies the EQ predicate on the "velocity_30d" field.
func Velocity30dEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldVelocity30d, v))
}

// Velocity30dNEQ applies the NEQ predicate on the "velocity_30d" field.
func Velocity30dNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldVelocity30d, v))
}

// Velocity30dIn applies the In predicate on the "velocity_30d" field.
func Velocity30dIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldVelocity30d, vs...))
}

// Velocity30dNotIn applies the NotIn predicate on the "velocity_30d" field.
func Velocity30dNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldVelocity30d, vs...))
}

// Velocity30dGT applies the GT predicate on the "velocity_30d" field.
func Velocity30dGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldVelocity30d, v))
}

// Velocity30dGTE applies the GTE predicate on the "velocity_30d" field.
func Velocity30dGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldVelocity30d, v))
}

// Velocity30dLT applies the LT predicate on the "velocity_30d" field.
func Velocity30dLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldVelocity30d, v))
}

// Velocity30dLTE applies the LTE predicate on the "velocity_30d" field.
func Velocity30dLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldVelocity30d, v))
}

// Mentions30dEQ applies the EQ predicate on the "mentions_30d" field.
func Mentions30dEQ(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldMentions30d, v))
}

// Mentions30dNEQ applies the NEQ predicate on the "mentions_30d" field.
func Mentions30dNEQ(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldMentions30d, v))
}

// Mentions30dIn applies the In predicate on the "mentions_30d" field.
func Mentions30dIn(vs ...int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldMentions30d, vs...))
}

// Mentions30dNotIn applies the NotIn predicate on the "mentions_30d" field.
func Mentions30dNotIn(vs ...int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldMentions30d, vs...))
}

// Mentions30dGT applies the GT predicate on the "mentions_30d" field.
func Mentions30dGT(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldMentions30d, v))
}

// Mentions30dGTE applies the GTE predicate on the "mentions_30d" field.
func Mentions30dGTE(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldMentions30d, v))
}

// Mentions30dLT applies the LT predicate on the "mentions_30d" field.
func Mentions30dLT(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldMentions30d, v))
}

// Mentions30dLTE applies the LTE predicate on the "mentions_30d" field.
func Mentions30dLTE(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldMentions30d, v))
}

// Recency30dEQ applies the EQ predicate on the "recency_30d" field.
func Recency30dEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldRecency30d, v))
}

// Recency30dNEQ applies the NEQ predicate on the "recency_30d" field.
func Recency30dNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldRecency30d, v))
}

// Recency30dIn applies the In predicate on the "recency_30d" field.
func Recency30dIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldRecency30d, vs...))
}

// Recency30dNotIn applies the NotIn predicate on the "recency_30d" field.
func Recency30dNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldRecency30d, vs...))
}

// Recency30dGT applies the GT predicate on the "recency_30d" field.
func Recency30dGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldRecency30d, v))
}

// Recency30dGTE applies the GTE predicate on the "recency_30d" field.
func Recency30dGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldRecency30d, v))
}

// Recency30dLT applies the LT predicate on the "recency_30d" field.
func Recency30dLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldRecency30d, v))
}

// Recency30dLTE applies the LTE predicate on the "recency_30d" field.
func Recency30dLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldRecency30d, v))
}

// SentimentAvgEQ applies the EQ predicate on the "sentiment_avg" field.
func SentimentAvgEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldSentimentAvg, v))
}

// SentimentAvgNEQ applies the NEQ predicate on the "sentiment_avg" field.
func SentimentAvgNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldSentimentAvg, v))
}

// SentimentAvgIn applies the In predicate on the "sentiment_avg" field.
func SentimentAvgIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldSentimentAvg, vs...))
}

// SentimentAvgNotIn applies the NotIn predicate on the "sentiment_avg" field.
func SentimentAvgNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldSentimentAvg, vs...))
}

// SentimentAvgGT applies the GT predicate on the "sentiment_avg" field.
func SentimentAvgGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldSentimentAvg, v))
}

// SentimentAvgGTE applies the GTE predicate on the "sentiment_avg" field.
func SentimentAvgGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldSentimentAvg, v))
}

// SentimentAvgLT applies the LT predicate on the "sentiment_avg" field.
func SentimentAvgLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldSentimentAvg, v))
}

// SentimentAvgLTE applies the LTE predicate on the "sentiment_avg" field.
func SentimentAvgLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldSentimentAvg, v))
}

// SentimentMinEQ applies the EQ predicate on the "sentiment_min" field.
func SentimentMinEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldSentimentMin, v))
}

// SentimentMinNEQ applies the NEQ predicate on the "sentiment_min" field.
func SentimentMinNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldSentimentMin, v))
}

// SentimentMinIn applies the In predicate on the "sentiment_min" field.
func SentimentMinIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldSentimentMin, vs...))
}

// SentimentMinNotIn applies the NotIn predicate on the "sentiment_min" field.
func SentimentMinNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldSentimentMin, vs...))
}

// SentimentMinGT applies the GT predicate on the "sentiment_min" field.
func SentimentMinGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldSentimentMin, v))
}

// SentimentMinGTE applies the GTE predicate on the "sentiment_min" field.
func SentimentMinGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldSentimentMin, v))
}

// SentimentMinLT applies the LT predicate on the "sentiment_min" field.
func SentimentMinLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldSentimentMin, v))
}

// SentimentMinLTE applies the LTE predicate on the "sentiment_min" field.
func SentimentMinLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldSentimentMin, v))
}

// SentimentMaxEQ applies the EQ predicate on the "sentiment_max" field.
func SentimentMaxEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldSentimentMax, v))
}

// SentimentMaxNEQ applies the NEQ predicate on the "sentiment_max" field.
func SentimentMaxNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldSentimentMax, v))
}

// SentimentMaxIn applies the In predicate on the "sentiment_max" field.
func SentimentMaxIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldSentimentMax, vs...))
}

// SentimentMaxNotIn applies the NotIn predicate on the "sentiment_max" field.
func SentimentMaxNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldSentimentMax, vs...))
}

// SentimentMaxGT applies the GT predicate on the "sentiment_max" field.
func SentimentMaxGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldSentimentMax, v))
}

// SentimentMaxGTE applies the GTE predicate on the "sentiment_max" field.
func SentimentMaxGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldSentimentMax, v))
}

// SentimentMaxLT applies the LT predicate on the "sentiment_max" field.
func SentimentMaxLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldSentimentMax, v))
}

// SentimentMaxLTE applies the LTE predicate on the "sentiment_max" field.
func SentimentMaxLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldSentimentMax, v))
}

// SentimentDivergenceEQ applies the EQ predicate on the "sentiment_divergence" field.
func SentimentDivergenceEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldSentimentDivergence, v))
}

// SentimentDivergenceNEQ applies the NEQ predicate on the "sentiment_divergence" field.
func SentimentDivergenceNEQ(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldSentimentDivergence, v))
}

// SentimentDivergenceIn applies the In predicate on the "sentiment_divergence" field.
func SentimentDivergenceIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldSentimentDivergence, vs...))
}

// SentimentDivergenceNotIn applies the NotIn predicate on the "sentiment_divergence" field.
func SentimentDivergenceNotIn(vs ...float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldSentimentDivergence, vs...))
}

// SentimentDivergenceGT applies the GT predicate on the "sentiment_divergence" field.
func SentimentDivergenceGT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldSentimentDivergence, v))
}

// SentimentDivergenceGTE applies the GTE predicate on the "sentiment_divergence" field.
func SentimentDivergenceGTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldSentimentDivergence, v))
}

// SentimentDivergenceLT applies the LT predicate on the "sentiment_divergence" field.
func SentimentDivergenceLT(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldSentimentDivergence, v))
}

// SentimentDivergenceLTE applies the LTE predicate on the "sentiment_divergence" field.
func SentimentDivergenceLTE(v float64) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldSentimentDivergence, v))
}

// SourceCountEQ applies the EQ predicate on the "source_count" field.
func SourceCountEQ(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldSourceCount, v))
}

// SourceCountNEQ applies the NEQ predicate on the "source_count" field.
func SourceCountNEQ(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldSourceCount, v))
}

// SourceCountIn applies the In predicate on the "source_count" field.
func SourceCountIn(vs ...int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIn(FieldSourceCount, vs...))
}

// SourceCountNotIn applies the NotIn predicate on the "source_count" field.
func SourceCountNotIn(vs ...int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotIn(FieldSourceCount, vs...))
}

// SourceCountGT applies the GT predicate on the "source_count" field.
func SourceCountGT(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGT(FieldSourceCount, v))
}

// SourceCountGTE applies the GTE predicate on the "source_count" field.
func SourceCountGTE(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldGTE(FieldSourceCount, v))
}

// SourceCountLT applies the LT predicate on the "source_count" field.
func SourceCountLT(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLT(FieldSourceCount, v))
}

// SourceCountLTE applies the LTE predicate on the "source_count" field.
func SourceCountLTE(v int) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldLTE(FieldSourceCount, v))
}

// NarrativeIdsIsNil applies the IsNil predicate on the "narrative_ids" field.
func NarrativeIdsIsNil() predicate.SignalScore {
	return predicate.SignalScore(sql.FieldIsNull(FieldNarrativeIds))
}

// NarrativeIdsNotNil applies the NotNil predicate on the "narrative_ids" field.
func NarrativeIdsNotNil() predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNotNull(FieldNarrativeIds))
}

// IsEmergingEQ applies the EQ predicate on the "is_emerging" field.
func IsEmergingEQ(v bool) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldEQ(FieldIsEmerging, v))
}

// IsEmergingNEQ applies the NEQ predicate on the "is_emerging" field.
func IsEmergingNEQ(v bool) predicate.SignalScore {
	return predicate.SignalScore(sql.FieldNEQ(FieldIsEmerging, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SignalScore) predicate.SignalScore {
	return predicate.SignalScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SignalScore) predicate.SignalScore {
	return predicate.SignalScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SignalScore) predicate.SignalScore {
	return predicate.SignalScore(sql.NotPredicates(p))
}
