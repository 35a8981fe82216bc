// Code generated by ent, DO NOT EDIT.

package article

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldTitle, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldText, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSource, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldPublishedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldCreatedAt, v))
}

// RelevanceTier applies equality check predicate on the "relevance_tier" field. It's identical to RelevanceTierEQ.
func RelevanceTier(v int) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldRelevanceTier, v))
}

// RelevanceReason applies equality check predicate on the "relevance_reason" field. It's identical to RelevanceReasonEQ.
func RelevanceReason(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldRelevanceReason, v))
}

// NucleusEntity applies equality check predicate on the "nucleus_entity" field. It's identical to NucleusEntityEQ.
func NucleusEntity(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldNucleusEntity, v))
}

// NarrativeSummary applies equality check predicate on the "narrative_summary" field. It's identical to NarrativeSummaryEQ.
func NarrativeSummary(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldNarrativeSummary, v))
}

// NarrativeHash applies equality check predicate on the "narrative_hash" field. It's identical to NarrativeHashEQ.
func NarrativeHash(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldNarrativeHash, v))
}

// NarrativeID applies equality check predicate on the "narrative_id" field. It's identical to NarrativeIDEQ.
func NarrativeID(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldNarrativeID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldTitle, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldText, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldSource, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldPublishedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldCreatedAt, v))
}

// RelevanceTierEQ applies the EQ predicate on the "relevance_tier" field.
func RelevanceTierEQ(v int) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldRelevanceTier, v))
}

// RelevanceTierNEQ applies the NEQ predicate on the "relevance_tier" field.
func RelevanceTierNEQ(v int) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldRelevanceTier, v))
}

// RelevanceTierIn applies the In predicate on the "relevance_tier" field.
func RelevanceTierIn(vs ...int) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldRelevanceTier, vs...))
}

// RelevanceTierNotIn applies the NotIn predicate on the "relevance_tier" field.
func RelevanceTierNotIn(vs ...int) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldRelevanceTier, vs...))
}

// RelevanceTierGT applies the GT predicate on the "relevance_tier" field.
func RelevanceTierGT(v int) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldRelevanceTier, v))
}

// RelevanceTierGTE applies the GTE predicate on the "relevance_tier" field.
func RelevanceTierGTE(v int) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldRelevanceTier, v))
}

// RelevanceTierLT applies the LT predicate on the "relevance_tier" field.
func RelevanceTierLT(v int) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldRelevanceTier, v))
}

// RelevanceTierLTE applies the LTE predicate on the "relevance_tier" field.
func RelevanceTierLTE(v int) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldRelevanceTier, v))
}

// RelevanceTierIsNil applies the IsNil predicate on the "relevance_tier" field.
func RelevanceTierIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldRelevanceTier))
}

// RelevanceTierNotNil applies the NotNil predicate on the "relevance_tier" field.
func RelevanceTierNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldRelevanceTier))
}

// RelevanceReasonEQ applies the EQ predicate on the "relevance_reason" field.
func RelevanceReasonEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldRelevanceReason, v))
}

// RelevanceReasonNEQ applies the NEQ predicate on the "relevance_reason" field.
func RelevanceReasonNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldRelevanceReason, v))
}

// RelevanceReasonIn applies the In predicate on the "relevance_reason" field.
func RelevanceReasonIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldRelevanceReason, vs...))
}

// RelevanceReasonNotIn applies the NotIn predicate on the "relevance_reason" field.
func RelevanceReasonNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldRelevanceReason, vs...))
}

// RelevanceReasonGT applies the GT predicate on the "relevance_reason" field.
func RelevanceReasonGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldRelevanceReason, v))
}

// RelevanceReasonGTE applies the GTE predicate on the "relevance_reason" field.
func RelevanceReasonGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldRelevanceReason, v))
}

// RelevanceReasonLT applies the LT predicate on the "relevance_reason" field.
func RelevanceReasonLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldRelevanceReason, v))
}

// RelevanceReasonLTE applies the LTE predicate on the "relevance_reason" field.
func RelevanceReasonLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldRelevanceReason, v))
}

// RelevanceReasonContains applies the Contains predicate on the "relevance_reason" field.
func RelevanceReasonContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldRelevanceReason, v))
}

// RelevanceReasonHasPrefix applies the HasPrefix predicate on the "relevance_reason" field.
func RelevanceReasonHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldRelevanceReason, v))
}

// RelevanceReasonHasSuffix applies the HasSuffix predicate on the "relevance_reason" field.
func RelevanceReasonHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldRelevanceReason, v))
}

// RelevanceReasonIsNil applies the IsNil predicate on the "relevance_reason" field.
func RelevanceReasonIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldRelevanceReason))
}

// RelevanceReasonNotNil applies the NotNil predicate on the "relevance_reason" field.
func RelevanceReasonNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldRelevanceReason))
}

// RelevanceReasonEqualFold applies the EqualFold predicate on the "relevance_reason" field.
func RelevanceReasonEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldRelevanceReason, v))
}

// RelevanceReasonContainsFold applies the ContainsFold predicate on the "relevance_reason" field.
func RelevanceReasonContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldRelevanceReason, v))
}

// SentimentLabelEQ applies the EQ predicate on the "sentiment_label" field.
func SentimentLabelEQ(v SentimentLabel) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldSentimentLabel, v))
}

// SentimentLabelNEQ applies the NEQ predicate on the "sentiment_label" field.
func SentimentLabelNEQ(v SentimentLabel) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldSentimentLabel, v))
}

// SentimentLabelIn applies the In predicate on the "sentiment_label" field.
func SentimentLabelIn(vs ...SentimentLabel) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldSentimentLabel, vs...))
}

// SentimentLabelNotIn applies the NotIn predicate on the "sentiment_label" field.
func SentimentLabelNotIn(vs ...SentimentLabel) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldSentimentLabel, vs...))
}

// SentimentLabelIsNil applies the IsNil predicate on the "sentiment_label" field.
func SentimentLabelIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldSentimentLabel))
}

// SentimentLabelNotNil applies the NotNil predicate on the "sentiment_label" field.
func SentimentLabelNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldSentimentLabel))
}

// NucleusEntityEQ applies the EQ predicate on the "nucleus_entity" field.
func NucleusEntityEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldNucleusEntity, v))
}

// NucleusEntityNEQ applies the NEQ predicate on the "nucleus_entity" field.
func NucleusEntityNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldNucleusEntity, v))
}

// NucleusEntityIn applies the In predicate on the "nucleus_entity" field.
func NucleusEntityIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldNucleusEntity, vs...))
}

// NucleusEntityNotIn applies the NotIn predicate on the "nucleus_entity" field.
func NucleusEntityNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldNucleusEntity, vs...))
}

// NucleusEntityGT applies the GT predicate on the "nucleus_entity" field.
func NucleusEntityGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldNucleusEntity, v))
}

// NucleusEntityGTE applies the GTE predicate on the "nucleus_entity" field.
func NucleusEntityGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldNucleusEntity, v))
}

// NucleusEntityLT applies the LT predicate on the "nucleus_entity" field.
func NucleusEntityLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldNucleusEntity, v))
}

// NucleusEntityLTE applies the LTE predicate on the "nucleus_entity" field.
func NucleusEntityLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldNucleusEntity, v))
}

// NucleusEntityContains applies the Contains predicate on the "nucleus_entity" field.
func NucleusEntityContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldNucleusEntity, v))
}

// NucleusEntityHasPrefix applies the HasPrefix predicate on the "nucleus_entity" field.
func NucleusEntityHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldNucleusEntity, v))
}

// NucleusEntityHasSuffix applies the HasSuffix predicate on the "nucleus_entity" field.
func NucleusEntityHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldNucleusEntity, v))
}

// NucleusEntityIsNil applies the IsNil predicate on the "nucleus_entity" field.
func NucleusEntityIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldNucleusEntity))
}

// NucleusEntityNotNil applies the NotNil predicate on the "nucleus_entity" field.
func NucleusEntityNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldNucleusEntity))
}

// NucleusEntityEqualFold applies the EqualFold predicate on the "nucleus_entity" field.
func NucleusEntityEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldNucleusEntity, v))
}

// NucleusEntityContainsFold applies the ContainsFold predicate on the "nucleus_entity" field.
func NucleusEntityContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldNucleusEntity, v))
}

// ActorsIsNil applies the IsNil predicate on the "actors" field.
func ActorsIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldActors))
}

// ActorsNotNil applies the NotNil predicate on the "actors" field.
func ActorsNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldActors))
}

// ActorSalienceIsNil applies the IsNil predicate on the "actor_salience" field.
func ActorSalienceIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldActorSalience))
}

// ActorSalienceNotNil applies the NotNil predicate on the "actor_salience" field.
func ActorSalienceNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldActorSalience))
}

// KeyActionsIsNil applies the IsNil predicate on the "key_actions" field.
func KeyActionsIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldKeyActions))
}

// KeyActionsNotNil applies the NotNil predicate on the "key_actions" field.
func KeyActionsNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldKeyActions))
}

// NarrativeSummaryEQ applies the EQ predicate on the "narrative_summary" field.
func NarrativeSummaryEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldNarrativeSummary, v))
}

// NarrativeSummaryNEQ applies the NEQ predicate on the "narrative_summary" field.
func NarrativeSummaryNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldNarrativeSummary, v))
}

// NarrativeSummaryIn applies the In predicate on the "narrative_summary" field.
func NarrativeSummaryIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldNarrativeSummary, vs...))
}

// NarrativeSummaryNotIn applies the NotIn predicate on the "narrative_summary" field.
func NarrativeSummaryNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldNarrativeSummary, vs...))
}

// NarrativeSummaryGT applies the GT predicate on the "narrative_summary" field.
func NarrativeSummaryGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldNarrativeSummary, v))
}

// NarrativeSummaryGTE applies the GTE predicate on the "narrative_summary" field.
func NarrativeSummaryGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldNarrativeSummary, v))
}

// NarrativeSummaryLT applies the LT predicate on the "narrative_summary" field.
func NarrativeSummaryLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldNarrativeSummary, v))
}

// NarrativeSummaryLTE applies the LTE predicate on the "narrative_summary" field.
func NarrativeSummaryLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldNarrativeSummary, v))
}

// NarrativeSummaryContains applies the Contains predicate on the "narrative_summary" field.
func NarrativeSummaryContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldNarrativeSummary, v))
}

// NarrativeSummaryHasPrefix applies the HasPrefix predicate on the "narrative_summary" field.
func NarrativeSummaryHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldNarrativeSummary, v))
}

// NarrativeSummaryHasSuffix applies the HasSuffix predicate on the "narrative_summary" field.
func NarrativeSummaryHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldNarrativeSummary, v))
}

// NarrativeSummaryIsNil applies the IsNil predicate on the "narrative_summary" field.
func NarrativeSummaryIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldNarrativeSummary))
}

// NarrativeSummaryNotNil applies the NotNil predicate on the "narrative_summary" field.
func NarrativeSummaryNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldNarrativeSummary))
}

// NarrativeSummaryEqualFold applies the EqualFold predicate on the "narrative_summary" field.
func NarrativeSummaryEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldNarrativeSummary, v))
}

// NarrativeSummaryContainsFold applies the ContainsFold predicate on the "narrative_summary" field.
func NarrativeSummaryContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldNarrativeSummary, v))
}

// NarrativeHashEQ applies the EQ predicate on the "narrative_hash" field.
func NarrativeHashEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldNarrativeHash, v))
}

// NarrativeHashNEQ applies the NEQ predicate on the "narrative_hash" field.
func NarrativeHashNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldNarrativeHash, v))
}

// NarrativeHashIn applies the In predicate on the "narrative_hash" field.
func NarrativeHashIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldNarrativeHash, vs...))
}

// NarrativeHashNotIn applies the NotIn predicate on the "narrative_hash" field.
func NarrativeHashNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldNarrativeHash, vs...))
}

// NarrativeHashGT applies the GT predicate on the "narrative_hash" field.
func NarrativeHashGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldNarrativeHash, v))
}

// NarrativeHashGTE applies the GTE predicate on the "narrative_hash" field.
func NarrativeHashGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldNarrativeHash, v))
}

// NarrativeHashLT applies the LT predicate on the "narrative_hash" field.
func NarrativeHashLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldNarrativeHash, v))
}

// NarrativeHashLTE applies the LTE predicate on the "narrative_hash" field.
func NarrativeHashLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldNarrativeHash, v))
}

// NarrativeHashContains applies the Contains predicate on the "narrative_hash" field.
func NarrativeHashContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldNarrativeHash, v))
}

// NarrativeHashHasPrefix applies the HasPrefix predicate on the "narrative_hash" field.
func NarrativeHashHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldNarrativeHash, v))
}

// NarrativeHashHasSuffix applies the HasSuffix predicate on the "narrative_hash" field.
func NarrativeHashHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldNarrativeHash, v))
}

// NarrativeHashIsNil applies the IsNil predicate on the "narrative_hash" field.
func NarrativeHashIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldNarrativeHash))
}

// NarrativeHashNotNil applies the NotNil predicate on the "narrative_hash" field.
func NarrativeHashNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldNarrativeHash))
}

// NarrativeHashEqualFold applies the EqualFold predicate on the "narrative_hash" field.
func NarrativeHashEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldNarrativeHash, v))
}

// NarrativeHashContainsFold applies the ContainsFold predicate on the "narrative_hash" field.
func NarrativeHashContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldNarrativeHash, v))
}

// NarrativeIDEQ applies the EQ predicate on the "narrative_id" field.
func NarrativeIDEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldEQ(FieldNarrativeID, v))
}

// NarrativeIDNEQ applies the NEQ predicate on the "narrative_id" field.
func NarrativeIDNEQ(v string) predicate.Article {
	return predicate.Article(sql.FieldNEQ(FieldNarrativeID, v))
}

// NarrativeIDIn applies the In predicate on the "narrative_id" field.
func NarrativeIDIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldIn(FieldNarrativeID, vs...))
}

// NarrativeIDNotIn applies the NotIn predicate on the "narrative_id" field.
func NarrativeIDNotIn(vs ...string) predicate.Article {
	return predicate.Article(sql.FieldNotIn(FieldNarrativeID, vs...))
}

// NarrativeIDGT applies the GT predicate on the "narrative_id" field.
func NarrativeIDGT(v string) predicate.Article {
	return predicate.Article(sql.FieldGT(FieldNarrativeID, v))
}

// NarrativeIDGTE applies the GTE predicate on the "narrative_id" field.
func NarrativeIDGTE(v string) predicate.Article {
	return predicate.Article(sql.FieldGTE(FieldNarrativeID, v))
}

// NarrativeIDLT applies the LT predicate on the "narrative_id" field.
func NarrativeIDLT(v string) predicate.Article {
	return predicate.Article(sql.FieldLT(FieldNarrativeID, v))
}

// NarrativeIDLTE applies the LTE predicate on the "narrative_id" field.
func NarrativeIDLTE(v string) predicate.Article {
	return predicate.Article(sql.FieldLTE(FieldNarrativeID, v))
}

// NarrativeIDContains applies the Contains predicate on the "narrative_id" field.
func NarrativeIDContains(v string) predicate.Article {
	return predicate.Article(sql.FieldContains(FieldNarrativeID, v))
}

// NarrativeIDHasPrefix applies the HasPrefix predicate on the "narrative_id" field.
func NarrativeIDHasPrefix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasPrefix(FieldNarrativeID, v))
}

// NarrativeIDHasSuffix applies the HasSuffix predicate on the "narrative_id" field.
func NarrativeIDHasSuffix(v string) predicate.Article {
	return predicate.Article(sql.FieldHasSuffix(FieldNarrativeID, v))
}

// NarrativeIDIsNil applies the IsNil predicate on the "narrative_id" field.
func NarrativeIDIsNil() predicate.Article {
	return predicate.Article(sql.FieldIsNull(FieldNarrativeID))
}

// NarrativeIDNotNil applies the NotNil predicate on the "narrative_id" field.
func NarrativeIDNotNil() predicate.Article {
	return predicate.Article(sql.FieldNotNull(FieldNarrativeID))
}

// NarrativeIDEqualFold applies the EqualFold predicate on the "narrative_id" field.
func NarrativeIDEqualFold(v string) predicate.Article {
	return predicate.Article(sql.FieldEqualFold(FieldNarrativeID, v))
}

// NarrativeIDContainsFold applies the ContainsFold predicate on the "narrative_id" field.
func NarrativeIDContainsFold(v string) predicate.Article {
	return predicate.Article(sql.FieldContainsFold(FieldNarrativeID, v))
}

// HasMentions applies the HasEdge predicate on the "mentions" edge.
func HasMentions() predicate.Article {
	return predicate.Article(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MentionsTable, MentionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMentionsWith applies the HasEdge predicate on the "mentions" edge with a given conditions (other predicates).
func HasMentionsWith(preds ...predicate.EntityMention) predicate.Article {
	return predicate.Article(func(s *sql.Selector) {
		step := newMentionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Article) predicate.Article {
	return predicate.Article(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Article) predicate.Article {
	return predicate.Article(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Article) predicate.Article {
	return predicate.Article(sql.NotPredicates(p))
}
