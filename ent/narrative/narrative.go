// Code generated by ent, DO NOT EDIT.

package narrative

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the narrative type in the database.
	Label = "narrative"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "narrative_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldTheme holds the string denoting the theme field in the database.
	FieldTheme = "theme"
	// FieldNucleusEntity holds the string denoting the nucleus_entity field in the database.
	FieldNucleusEntity = "nucleus_entity"
	// FieldEntities holds the string denoting the entities field in the database.
	FieldEntities = "entities"
	// FieldArticleIds holds the string denoting the article_ids field in the database.
	FieldArticleIds = "article_ids"
	// FieldArticleCount holds the string denoting the article_count field in the database.
	FieldArticleCount = "article_count"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldLifecycleState holds the string denoting the lifecycle_state field in the database.
	FieldLifecycleState = "lifecycle_state"
	// FieldLifecycleHistory holds the string denoting the lifecycle_history field in the database.
	FieldLifecycleHistory = "lifecycle_history"
	// FieldMentionVelocity holds the string denoting the mention_velocity field in the database.
	FieldMentionVelocity = "mention_velocity"
	// FieldMomentum holds the string denoting the momentum field in the database.
	FieldMomentum = "momentum"
	// FieldRecencyScore holds the string denoting the recency_score field in the database.
	FieldRecencyScore = "recency_score"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// FieldDaysActive holds the string denoting the days_active field in the database.
	FieldDaysActive = "days_active"
	// FieldReawakeningCount holds the string denoting the reawakening_count field in the database.
	FieldReawakeningCount = "reawakening_count"
	// FieldReawakenedFrom holds the string denoting the reawakened_from field in the database.
	FieldReawakenedFrom = "reawakened_from"
	// FieldResurrectionVelocity holds the string denoting the resurrection_velocity field in the database.
	FieldResurrectionVelocity = "resurrection_velocity"
	// FieldPeakActivity holds the string denoting the peak_activity field in the database.
	FieldPeakActivity = "peak_activity"
	// FieldMergedInto holds the string denoting the merged_into field in the database.
	FieldMergedInto = "merged_into"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the narrative in the database.
	Table = "narratives"
)

// Columns holds all SQL columns for narrative fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldSummary,
	FieldTheme,
	FieldNucleusEntity,
	FieldEntities,
	FieldArticleIds,
	FieldArticleCount,
	FieldFingerprint,
	FieldLifecycleState,
	FieldLifecycleHistory,
	FieldMentionVelocity,
	FieldMomentum,
	FieldRecencyScore,
	FieldFirstSeen,
	FieldLastUpdated,
	FieldDaysActive,
	FieldReawakeningCount,
	FieldReawakenedFrom,
	FieldResurrectionVelocity,
	FieldPeakActivity,
	FieldMergedInto,
	FieldVersion,
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
	// DefaultArticleCount holds the default value on creation for the "article_count" field.
	DefaultArticleCount int
	// DefaultMentionVelocity holds the default value on creation for the "mention_velocity" field.
	DefaultMentionVelocity float64
	// DefaultRecencyScore holds the default value on creation for the "recency_score" field.
	DefaultRecencyScore float64
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// DefaultDaysActive holds the default value on creation for the "days_active" field.
	DefaultDaysActive int
	// DefaultReawakeningCount holds the default value on creation for the "reawakening_count" field.
	DefaultReawakeningCount int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
)

// LifecycleState defines the type for the "lifecycle_state" enum field.
type LifecycleState string

// LifecycleStateEmerging is the default value of the LifecycleState enum.
const DefaultLifecycleState = LifecycleStateEmerging

// LifecycleState values.
const (
	LifecycleStateEmerging LifecycleState = "emerging"
	LifecycleStateRising   LifecycleState = "rising"
	LifecycleStateHot      LifecycleState = "hot"
	LifecycleStateMature   LifecycleState = "mature"
	LifecycleStateCooling  LifecycleState = "cooling"
	LifecycleStateDormant  LifecycleState = "dormant"
	LifecycleStateArchived LifecycleState = "archived"
)

func (ls LifecycleState) String() string {
	return string(ls)
}

// LifecycleStateValidator is a validator for the "lifecycle_state" field enum values. It is called by the builders before save.
func LifecycleStateValidator(ls LifecycleState) error {
	switch ls {
	case LifecycleStateEmerging, LifecycleStateRising, LifecycleStateHot, LifecycleStateMature, LifecycleStateCooling, LifecycleStateDormant, LifecycleStateArchived:
		return nil
	default:
		return fmt.Errorf("narrative: invalid enum value for lifecycle_state field: %q", ls)
	}
}

// Momentum defines the type for the "momentum" enum field.
type Momentum string

// MomentumUnknown is the default value of the Momentum enum.
const DefaultMomentum = MomentumUnknown

// Momentum values.
const (
	MomentumGrowing   Momentum = "growing"
	MomentumStable    Momentum = "stable"
	MomentumDeclining Momentum = "declining"
	MomentumUnknown   Momentum = "unknown"
)

func (m Momentum) String() string {
	return string(m)
}

// MomentumValidator is a validator for the "momentum" field enum values. It is called by the builders before save.
func MomentumValidator(m Momentum) error {
	switch m {
	case MomentumGrowing, MomentumStable, MomentumDeclining, MomentumUnknown:
		return nil
	default:
		return fmt.Errorf("narrative: invalid enum value for momentum field: %q", m)
	}
}

// OrderOption defines the ordering options for the Narrative queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByTheme orders the results by the theme field.
func ByTheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheme, opts...).ToFunc()
}

// ByNucleusEntity orders the results by the nucleus_entity field.
func ByNucleusEntity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNucleusEntity, opts...).ToFunc()
}

// ByArticleCount orders the results by the article_count field.
func ByArticleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleCount, opts...).ToFunc()
}

// ByLifecycleState orders the results by the lifecycle_state field.
func ByLifecycleState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLifecycleState, opts...).ToFunc()
}

// ByMentionVelocity orders the results by the mention_velocity field.
func ByMentionVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionVelocity, opts...).ToFunc()
}

// ByMomentum orders the results by the momentum field.
func ByMomentum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMomentum, opts...).ToFunc()
}

// ByRecencyScore orders the results by the recency_score field.
func ByRecencyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecencyScore, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}

// ByDaysActive orders the results by the days_active field.
func ByDaysActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDaysActive, opts...).ToFunc()
}

// ByReawakeningCount orders the results by the reawakening_count field.
func ByReawakeningCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReawakeningCount, opts...).ToFunc()
}

// ByReawakenedFrom orders the results by the reawakened_from field.
func ByReawakenedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReawakenedFrom, opts...).ToFunc()
}

// ByResurrectionVelocity orders the results by the resurrection_velocity field.
func ByResurrectionVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResurrectionVelocity, opts...).ToFunc()
}

// ByMergedInto orders the results by the merged_into field.
func ByMergedInto(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergedInto, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}
