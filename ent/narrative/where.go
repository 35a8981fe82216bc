// Code generated by ent, DO NOT EDIT.

package narrative

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldTitle, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldSummary, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldTheme, v))
}

// NucleusEntity applies equality check predicate on the "nucleus_entity" field. It's identical to NucleusEntityEQ.
func NucleusEntity(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldNucleusEntity, v))
}

// ArticleCount applies equality check predicate on the "article_count" field. It's identical to ArticleCountEQ.
func ArticleCount(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldArticleCount, v))
}

// MentionVelocity applies equality check predicate on the "mention_velocity" field. It's identical to MentionVelocityEQ.
func MentionVelocity(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldMentionVelocity, v))
}

// RecencyScore applies equality check predicate on the "recency_score" field. It's identical to RecencyScoreEQ.
func RecencyScore(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldRecencyScore, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldFirstSeen, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldLastUpdated, v))
}

// DaysActive applies equality check predicate on the "days_active" field. It's identical to DaysActiveEQ.
func DaysActive(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldDaysActive, v))
}

// ReawakeningCount applies equality check predicate on the "reawakening_count" field. It's identical to ReawakeningCountEQ.
func ReawakeningCount(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldReawakeningCount, v))
}

// ReawakenedFrom applies equality check predicate on the "reawakened_from" field. It's identical to ReawakenedFromEQ.
func ReawakenedFrom(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldReawakenedFrom, v))
}

// ResurrectionVelocity applies equality check predicate on the "resurrection_velocity" field. It's identical to ResurrectionVelocityEQ.
func ResurrectionVelocity(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldResurrectionVelocity, v))
}

// MergedInto applies equality check predicate on the "merged_into" field. It's identical to MergedIntoEQ.
func MergedInto(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldMergedInto, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldVersion, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContainsFold(FieldTitle, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContainsFold(FieldSummary, v))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeIsNil applies the IsNil predicate on the "theme" field.
func ThemeIsNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldIsNull(FieldTheme))
}

// ThemeNotNil applies the NotNil predicate on the "theme" field.
func ThemeNotNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldNotNull(FieldTheme))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContainsFold(FieldTheme, v))
}

// NucleusEntityEQ applies the EQ predicate on the "nucleus_entity" field.
func NucleusEntityEQ(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldNucleusEntity, v))
}

// NucleusEntityNEQ applies the NEQ predicate on the "nucleus_entity" field.
func NucleusEntityNEQ(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldNucleusEntity, v))
}

// NucleusEntityIn applies the In predicate on the "nucleus_entity" field.
func NucleusEntityIn(vs ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldNucleusEntity, vs...))
}

// NucleusEntityNotIn applies the NotIn predicate on the "nucleus_entity" field.
func NucleusEntityNotIn(vs ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldNucleusEntity, vs...))
}

// NucleusEntityGT applies the GT predicate on the "nucleus_entity" field.
func NucleusEntityGT(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldNucleusEntity, v))
}

// NucleusEntityGTE applies the GTE predicate on the "nucleus_entity" field.
func NucleusEntityGTE(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldNucleusEntity, v))
}

// NucleusEntityLT applies the LT predicate on the "nucleus_entity" field.
func NucleusEntityLT(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldNucleusEntity, v))
}

// NucleusEntityLTE applies the LTE predicate on the "nucleus_entity" field.
func NucleusEntityLTE(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldNucleusEntity, v))
}

// NucleusEntityContains applies the Contains predicate on the "nucleus_entity" field.
func NucleusEntityContains(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContains(FieldNucleusEntity, v))
}

// NucleusEntityHasPrefix applies the HasPrefix predicate on the "nucleus_entity" field.
func NucleusEntityHasPrefix(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldHasPrefix(FieldNucleusEntity, v))
}

// NucleusEntityHasSuffix applies the HasSuffix predicate on the "nucleus_entity" field.
func NucleusEntityHasSuffix(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldHasSuffix(FieldNucleusEntity, v))
}

// NucleusEntityEqualFold applies the EqualFold predicate on the "nucleus_entity" field.
func NucleusEntityEqualFold(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEqualFold(FieldNucleusEntity, v))
}

// NucleusEntityContainsFold applies the ContainsFold predicate on the "nucleus_entity" field.
func NucleusEntityContainsFold(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContainsFold(FieldNucleusEntity, v))
}

// ArticleCountEQ applies the EQ predicate on the "article_count" field.
func ArticleCountEQ(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldArticleCount, v))
}

// ArticleCountNEQ applies the NEQ predicate on the "article_count" field.
func ArticleCountNEQ(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldArticleCount, v))
}

// ArticleCountIn applies the In predicate on the "article_count" field.
func ArticleCountIn(vs ...int) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldArticleCount, vs...))
}

// ArticleCountNotIn applies the NotIn predicate on the "article_count" field.
func ArticleCountNotIn(vs ...int) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldArticleCount, vs...))
}

// ArticleCountGT applies the GT predicate on the "article_count" field.
func ArticleCountGT(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldArticleCount, v))
}

// ArticleCountGTE applies the GTE predicate on the "article_count" field.
func ArticleCountGTE(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldArticleCount, v))
}

// ArticleCountLT applies the LT predicate on the "article_count" field.
func ArticleCountLT(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldArticleCount, v))
}

// ArticleCountLTE applies the LTE predicate on the "article_count" field.
func ArticleCountLTE(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldArticleCount, v))
}

// LifecycleStateEQ applies the EQ predicate on the "lifecycle_state" field.
func LifecycleStateEQ(v LifecycleState) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldLifecycleState, v))
}

// LifecycleStateNEQ applies the NEQ predicate on the "lifecycle_state" field.
func LifecycleStateNEQ(v LifecycleState) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldLifecycleState, v))
}

// LifecycleStateIn applies the In predicate on the "lifecycle_state" field.
func LifecycleStateIn(vs ...LifecycleState) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldLifecycleState, vs...))
}

// LifecycleStateNotIn applies the NotIn predicate on the "lifecycle_state" field.
func LifecycleStateNotIn(vs ...LifecycleState) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldLifecycleState, vs...))
}

// MentionVelocityEQ applies the EQ predicate on the "mention_velocity" field.
func MentionVelocityEQ(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldMentionVelocity, v))
}

// MentionVelocityNEQ applies the NEQ predicate on the "mention_velocity" field.
func MentionVelocityNEQ(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldMentionVelocity, v))
}

// MentionVelocityIn applies the In predicate on the "mention_velocity" field.
func MentionVelocityIn(vs ...float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldMentionVelocity, vs...))
}

// MentionVelocityNotIn applies the NotIn predicate on the "mention_velocity" field.
func MentionVelocityNotIn(vs ...float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldMentionVelocity, vs...))
}

// MentionVelocityGT applies the GT predicate on the "mention_velocity" field.
func MentionVelocityGT(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldMentionVelocity, v))
}

// MentionVelocityGTE applies the GTE predicate on the "mention_velocity" field.
func MentionVelocityGTE(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldMentionVelocity, v))
}

// MentionVelocityLT applies the LT predicate on the "mention_velocity" field.
func MentionVelocityLT(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldMentionVelocity, v))
}

// MentionVelocityLTE applies the LTE predicate on the "mention_velocity" field.
func MentionVelocityLTE(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldMentionVelocity, v))
}

// MomentumEQ applies the EQ predicate on the "momentum" field.
func MomentumEQ(v Momentum) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldMomentum, v))
}

// MomentumNEQ applies the NEQ predicate on the "momentum" field.
func MomentumNEQ(v Momentum) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldMomentum, v))
}

// MomentumIn applies the In predicate on the "momentum" field.
func MomentumIn(vs ...Momentum) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldMomentum, vs...))
}

// MomentumNotIn applies the NotIn predicate on the "momentum" field.
func MomentumNotIn(vs ...Momentum) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldMomentum, vs...))
}

// RecencyScoreEQ applies the EQ predicate on the "recency_score" field.
func RecencyScoreEQ(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldRecencyScore, v))
}

// RecencyScoreNEQ applies the NEQ predicate on the "recency_score" field.
func RecencyScoreNEQ(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldRecencyScore, v))
}

// RecencyScoreIn applies the In predicate on the "recency_score" field.
func RecencyScoreIn(vs ...float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldRecencyScore, vs...))
}

// RecencyScoreNotIn applies the NotIn predicate on the "recency_score" field.
func RecencyScoreNotIn(vs ...float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldRecencyScore, vs...))
}

// RecencyScoreGT applies the GT predicate on the "recency_score" field.
func RecencyScoreGT(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldRecencyScore, v))
}

// RecencyScoreGTE applies the GTE predicate on the "recency_score" field.
func RecencyScoreGTE(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldRecencyScore, v))
}

// RecencyScoreLT applies the LT predicate on the "recency_score" field.
func RecencyScoreLT(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldRecencyScore, v))
}

// RecencyScoreLTE applies the LTE predicate on the "recency_score" field.
func RecencyScoreLTE(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldRecencyScore, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldFirstSeen, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldLastUpdated, v))
}

// DaysActiveEQ applies the EQ predicate on the "days_active" field.
func DaysActiveEQ(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldDaysActive, v))
}

// DaysActiveNEQ applies the NEQ predicate on the "days_active" field.
func DaysActiveNEQ(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldDaysActive, v))
}

// DaysActiveIn applies the In predicate on the "days_active" field.
func DaysActiveIn(vs ...int) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldDaysActive, vs...))
}

// DaysActiveNotIn applies the NotIn predicate on the "days_active" field.
func DaysActiveNotIn(vs ...int) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldDaysActive, vs...))
}

// DaysActiveGT applies the GT predicate on the "days_active" field.
func DaysActiveGT(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldDaysActive, v))
}

// DaysActiveGTE applies the GTE predicate on the "days_active" field.
func DaysActiveGTE(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldDaysActive, v))
}

// DaysActiveLT applies the LT predicate on the "days_active" field.
func DaysActiveLT(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldDaysActive, v))
}

// DaysActiveLTE applies the LTE predicate on the "days_active" field.
func DaysActiveLTE(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldDaysActive, v))
}

// ReawakeningCountEQ applies the EQ predicate on the "reawakening_count" field.
func ReawakeningCountEQ(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldReawakeningCount, v))
}

// ReawakeningCountNEQ applies the NEQ predicate on the "reawakening_count" field.
func ReawakeningCountNEQ(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldReawakeningCount, v))
}

// ReawakeningCountIn applies the In predicate on the "reawakening_count" field.
func ReawakeningCountIn(vs ...int) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldReawakeningCount, vs...))
}

// ReawakeningCountNotIn applies the NotIn predicate on the "reawakening_count" field.
func ReawakeningCountNotIn(vs ...int) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldReawakeningCount, vs...))
}

// ReawakeningCountGT applies the GT predicate on the "reawakening_count" field.
func ReawakeningCountGT(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldReawakeningCount, v))
}

// ReawakeningCountGTE applies the GTE predicate on the "reawakening_count" field.
func ReawakeningCountGTE(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldReawakeningCount, v))
}

// ReawakeningCountLT applies the LT predicate on the "reawakening_count" field.
func ReawakeningCountLT(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldReawakeningCount, v))
}

// ReawakeningCountLTE applies the LTE predicate on the "reawakening_count" field.
func ReawakeningCountLTE(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldReawakeningCount, v))
}

// ReawakenedFromEQ applies the EQ predicate on the "reawakened_from" field.
func ReawakenedFromEQ(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldReawakenedFrom, v))
}

// ReawakenedFromNEQ applies the NEQ predicate on the "reawakened_from" field.
func ReawakenedFromNEQ(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldReawakenedFrom, v))
}

// ReawakenedFromIn applies the In predicate on the "reawakened_from" field.
func ReawakenedFromIn(vs ...time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldReawakenedFrom, vs...))
}

// ReawakenedFromNotIn applies the NotIn predicate on the "reawakened_from" field.
func ReawakenedFromNotIn(vs ...time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldReawakenedFrom, vs...))
}

// ReawakenedFromGT applies the GT predicate on the "reawakened_from" field.
func ReawakenedFromGT(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldReawakenedFrom, v))
}

// ReawakenedFromGTE applies the GTE predicate on the "reawakened_from" field.
func ReawakenedFromGTE(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldReawakenedFrom, v))
}

// ReawakenedFromLT applies the LT predicate on the "reawakened_from" field.
func ReawakenedFromLT(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldReawakenedFrom, v))
}

// ReawakenedFromLTE applies the LTE predicate on the "reawakened_from" field.
func ReawakenedFromLTE(v time.Time) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldReawakenedFrom, v))
}

// ReawakenedFromIsNil applies the IsNil predicate on the "reawakened_from" field.
func ReawakenedFromIsNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldIsNull(FieldReawakenedFrom))
}

// ReawakenedFromNotNil applies the NotNil predicate on the "reawakened_from" field.
func ReawakenedFromNotNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldNotNull(FieldReawakenedFrom))
}

// ResurrectionVelocityEQ applies the EQ predicate on the "resurrection_velocity" field.
func ResurrectionVelocityEQ(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldResurrectionVelocity, v))
}

// ResurrectionVelocityNEQ applies the NEQ predicate on the "resurrection_velocity" field.
func ResurrectionVelocityNEQ(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldResurrectionVelocity, v))
}

// ResurrectionVelocityIn applies the In predicate on the "resurrection_velocity" field.
func ResurrectionVelocityIn(vs ...float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldResurrectionVelocity, vs...))
}

// ResurrectionVelocityNotIn applies the NotIn predicate on the "resurrection_velocity" field.
func ResurrectionVelocityNotIn(vs ...float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldResurrectionVelocity, vs...))
}

// ResurrectionVelocityGT applies the GT predicate on the "resurrection_velocity" field.
func ResurrectionVelocityGT(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldResurrectionVelocity, v))
}

// ResurrectionVelocityGTE applies the GTE predicate on the "resurrection_velocity" field.
func ResurrectionVelocityGTE(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldResurrectionVelocity, v))
}

// ResurrectionVelocityLT applies the LT predicate on the "resurrection_velocity" field.
func ResurrectionVelocityLT(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldResurrectionVelocity, v))
}

// ResurrectionVelocityLTE applies the LTE predicate on the "resurrection_velocity" field.
func ResurrectionVelocityLTE(v float64) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldResurrectionVelocity, v))
}

// ResurrectionVelocityIsNil applies the IsNil predicate on the "resurrection_velocity" field.
func ResurrectionVelocityIsNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldIsNull(FieldResurrectionVelocity))
}

// ResurrectionVelocityNotNil applies the NotNil predicate on the "resurrection_velocity" field.
func ResurrectionVelocityNotNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldNotNull(FieldResurrectionVelocity))
}

// PeakActivityIsNil applies the IsNil predicate on the "peak_activity" field.
func PeakActivityIsNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldIsNull(FieldPeakActivity))
}

// PeakActivityNotNil applies the NotNil predicate on the "peak_activity" field.
func PeakActivityNotNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldNotNull(FieldPeakActivity))
}

// MergedIntoEQ applies the EQ predicate on the "merged_into" field.
func MergedIntoEQ(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldMergedInto, v))
}

// MergedIntoNEQ applies the NEQ predicate on the "merged_into" field.
func MergedIntoNEQ(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldMergedInto, v))
}

// MergedIntoIn applies the In predicate on the "merged_into" field.
func MergedIntoIn(vs ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldMergedInto, vs...))
}

// MergedIntoNotIn applies the NotIn predicate on the "merged_into" field.
func MergedIntoNotIn(vs ...string) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldMergedInto, vs...))
}

// MergedIntoGT applies the GT predicate on the "merged_into" field.
func MergedIntoGT(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldMergedInto, v))
}

// MergedIntoGTE applies the GTE predicate on the "merged_into" field.
func MergedIntoGTE(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldMergedInto, v))
}

// MergedIntoLT applies the LT predicate on the "merged_into" field.
func MergedIntoLT(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldMergedInto, v))
}

// MergedIntoLTE applies the LTE predicate on the "merged_into" field.
func MergedIntoLTE(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldMergedInto, v))
}

// MergedIntoContains applies the Contains predicate on the "merged_into" field.
func MergedIntoContains(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContains(FieldMergedInto, v))
}

// MergedIntoHasPrefix applies the HasPrefix predicate on the "merged_into" field.
func MergedIntoHasPrefix(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldHasPrefix(FieldMergedInto, v))
}

// MergedIntoHasSuffix applies the HasSuffix predicate on the "merged_into" field.
func MergedIntoHasSuffix(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldHasSuffix(FieldMergedInto, v))
}

// MergedIntoIsNil applies the IsNil predicate on the "merged_into" field.
func MergedIntoIsNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldIsNull(FieldMergedInto))
}

// MergedIntoNotNil applies the NotNil predicate on the "merged_into" field.
func MergedIntoNotNil() predicate.Narrative {
	return predicate.Narrative(sql.FieldNotNull(FieldMergedInto))
}

// MergedIntoEqualFold applies the EqualFold predicate on the "merged_into" field.
func MergedIntoEqualFold(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldEqualFold(FieldMergedInto, v))
}

// MergedIntoContainsFold applies the ContainsFold predicate on the "merged_into" field.
func MergedIntoContainsFold(v string) predicate.Narrative {
	return predicate.Narrative(sql.FieldContainsFold(FieldMergedInto, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Narrative {
	return predicate.Narrative(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Narrative {
	return predicate.Narrative(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Narrative {
	return predicate.Narrative(sql.FieldLTE(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Narrative) predicate.Narrative {
	return predicate.Narrative(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Narrative) predicate.Narrative {
	return predicate.Narrative(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Narrative) predicate.Narrative {
	return predicate.Narrative(sql.NotPredicates(p))
}
