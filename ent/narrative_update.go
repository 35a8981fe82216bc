// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/predicate"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// NarrativeUpdate is the builder for updating Narrative entities.
type NarrativeUpdate struct {
	config
	hooks    []Hook
	mutation *NarrativeMutation
}

// Where appends a list predicates to the NarrativeUpdate builder.
func (_u *NarrativeUpdate) Where(ps ...predicate.Narrative) *NarrativeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *NarrativeUpdate) SetTitle(v string) *NarrativeUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableTitle(v *string) *NarrativeUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *NarrativeUpdate) SetSummary(v string) *NarrativeUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableSummary(v *string) *NarrativeUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *NarrativeUpdate) ClearSummary() *NarrativeUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetTheme sets the "theme" field.
func (_u *NarrativeUpdate) SetTheme(v string) *NarrativeUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableTheme(v *string) *NarrativeUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *NarrativeUpdate) ClearTheme() *NarrativeUpdate {
	_u.mutation.ClearTheme()
	return _u
}

// SetNucleusEntity sets the "nucleus_entity" field.
func (_u *NarrativeUpdate) SetNucleusEntity(v string) *NarrativeUpdate {
	_u.mutation.SetNucleusEntity(v)
	return _u
}

// SetNillableNucleusEntity sets the "nucleus_entity" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableNucleusEntity(v *string) *NarrativeUpdate {
	if v != nil {
		_u.SetNucleusEntity(*v)
	}
	return _u
}

// SetEntities sets the "entities" field.
func (_u *NarrativeUpdate) SetEntities(v []string) *NarrativeUpdate {
	_u.mutation.SetEntities(v)
	return _u
}

// AppendEntities appends value to the "entities" field.
func (_u *NarrativeUpdate) AppendEntities(v []string) *NarrativeUpdate {
	_u.mutation.AppendEntities(v)
	return _u
}

// SetArticleIds sets the "article_ids" field.
func (_u *NarrativeUpdate) SetArticleIds(v []string) *NarrativeUpdate {
	_u.mutation.SetArticleIds(v)
	return _u
}

// AppendArticleIds appends value to the "article_ids" field.
func (_u *NarrativeUpdate) AppendArticleIds(v []string) *NarrativeUpdate {
	_u.mutation.AppendArticleIds(v)
	return _u
}

// SetArticleCount sets the "article_count" field.
func (_u *NarrativeUpdate) SetArticleCount(v int) *NarrativeUpdate {
	_u.mutation.ResetArticleCount()
	_u.mutation.SetArticleCount(v)
	return _u
}

// SetNillableArticleCount sets the "article_count" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableArticleCount(v *int) *NarrativeUpdate {
	if v != nil {
		_u.SetArticleCount(*v)
	}
	return _u
}

// AddArticleCount adds value to the "article_count" field.
func (_u *NarrativeUpdate) AddArticleCount(v int) *NarrativeUpdate {
	_u.mutation.AddArticleCount(v)
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *NarrativeUpdate) SetFingerprint(v models.Fingerprint) *NarrativeUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableFingerprint(v *models.Fingerprint) *NarrativeUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetLifecycleState sets the "lifecycle_state" field.
func (_u *NarrativeUpdate) SetLifecycleState(v narrative.LifecycleState) *NarrativeUpdate {
	_u.mutation.SetLifecycleState(v)
	return _u
}

// SetNillableLifecycleState sets the "lifecycle_state" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableLifecycleState(v *narrative.LifecycleState) *NarrativeUpdate {
	if v != nil {
		_u.SetLifecycleState(*v)
	}
	return _u
}

// SetLifecycleHistory sets the "lifecycle_history" field.
func (_u *NarrativeUpdate) SetLifecycleHistory(v []models.LifecycleEntry) *NarrativeUpdate {
	_u.mutation.SetLifecycleHistory(v)
	return _u
}

// AppendLifecycleHistory appends value to the "lifecycle_history" field.
func (_u *NarrativeUpdate) AppendLifecycleHistory(v []models.LifecycleEntry) *NarrativeUpdate {
	_u.mutation.AppendLifecycleHistory(v)
	return _u
}

// SetMentionVelocity sets the "mention_velocity" field.
func (_u *NarrativeUpdate) SetMentionVelocity(v float64) *NarrativeUpdate {
	_u.mutation.ResetMentionVelocity()
	_u.mutation.SetMentionVelocity(v)
	return _u
}

// SetNillableMentionVelocity sets the "mention_velocity" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableMentionVelocity(v *float64) *NarrativeUpdate {
	if v != nil {
		_u.SetMentionVelocity(*v)
	}
	return _u
}

// AddMentionVelocity adds value to the "mention_velocity" field.
func (_u *NarrativeUpdate) AddMentionVelocity(v float64) *NarrativeUpdate {
	_u.mutation.AddMentionVelocity(v)
	return _u
}

// SetMomentum sets the "momentum" field.
func (_u *NarrativeUpdate) SetMomentum(v narrative.Momentum) *NarrativeUpdate {
	_u.mutation.SetMomentum(v)
	return _u
}

// SetNillableMomentum sets the "momentum" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableMomentum(v *narrative.Momentum) *NarrativeUpdate {
	if v != nil {
		_u.SetMomentum(*v)
	}
	return _u
}

// SetRecencyScore sets the "recency_score" field.
func (_u *NarrativeUpdate) SetRecencyScore(v float64) *NarrativeUpdate {
	_u.mutation.ResetRecencyScore()
	_u.mutation.SetRecencyScore(v)
	return _u
}

// SetNillableRecencyScore sets the "recency_score" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableRecencyScore(v *float64) *NarrativeUpdate {
	if v != nil {
		_u.SetRecencyScore(*v)
	}
	return _u
}

// AddRecencyScore adds value to the "recency_score" field.
func (_u *NarrativeUpdate) AddRecencyScore(v float64) *NarrativeUpdate {
	_u.mutation.AddRecencyScore(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *NarrativeUpdate) SetLastUpdated(v time.Time) *NarrativeUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableLastUpdated(v *time.Time) *NarrativeUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetDaysActive sets the "days_active" field.
func (_u *NarrativeUpdate) SetDaysActive(v int) *NarrativeUpdate {
	_u.mutation.ResetDaysActive()
	_u.mutation.SetDaysActive(v)
	return _u
}

// SetNillableDaysActive sets the "days_active" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableDaysActive(v *int) *NarrativeUpdate {
	if v != nil {
		_u.SetDaysActive(*v)
	}
	return _u
}

// AddDaysActive adds value to the "days_active" field.
func (_u *NarrativeUpdate) AddDaysActive(v int) *NarrativeUpdate {
	_u.mutation.AddDaysActive(v)
	return _u
}

// SetReawakeningCount sets the "reawakening_count" field.
func (_u *NarrativeUpdate) SetReawakeningCount(v int) *NarrativeUpdate {
	_u.mutation.ResetReawakeningCount()
	_u.mutation.SetReawakeningCount(v)
	return _u
}

// SetNillableReawakeningCount sets the "reawakening_count" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableReawakeningCount(v *int) *NarrativeUpdate {
	if v != nil {
		_u.SetReawakeningCount(*v)
	}
	return _u
}

// AddReawakeningCount adds value to the "reawakening_count" field.
func (_u *NarrativeUpdate) AddReawakeningCount(v int) *NarrativeUpdate {
	_u.mutation.AddReawakeningCount(v)
	return _u
}

// SetReawakenedFrom sets the "reawakened_from" field.
func (_u *NarrativeUpdate) SetReawakenedFrom(v time.Time) *NarrativeUpdate {
	_u.mutation.SetReawakenedFrom(v)
	return _u
}

// SetNillableReawakenedFrom sets the "reawakened_from" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableReawakenedFrom(v *time.Time) *NarrativeUpdate {
	if v != nil {
		_u.SetReawakenedFrom(*v)
	}
	return _u
}

// ClearReawakenedFrom clears the value of the "reawakened_from" field.
func (_u *NarrativeUpdate) ClearReawakenedFrom() *NarrativeUpdate {
	_u.mutation.ClearReawakenedFrom()
	return _u
}

// SetResurrectionVelocity sets the "resurrection_velocity" field.
func (_u *NarrativeUpdate) SetResurrectionVelocity(v float64) *NarrativeUpdate {
	_u.mutation.ResetResurrectionVelocity()
	_u.mutation.SetResurrectionVelocity(v)
	return _u
}

// SetNillableResurrectionVelocity sets the "resurrection_velocity" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableResurrectionVelocity(v *float64) *NarrativeUpdate {
	if v != nil {
		_u.SetResurrectionVelocity(*v)
	}
	return _u
}

// AddResurrectionVelocity adds value to the "resurrection_velocity" field.
func (_u *NarrativeUpdate) AddResurrectionVelocity(v float64) *NarrativeUpdate {
	_u.mutation.AddResurrectionVelocity(v)
	return _u
}

// ClearResurrectionVelocity clears the value of the "resurrection_velocity" field.
func (_u *NarrativeUpdate) ClearResurrectionVelocity() *NarrativeUpdate {
	_u.mutation.ClearResurrectionVelocity()
	return _u
}

// SetPeakActivity sets the "peak_activity" field.
func (_u *NarrativeUpdate) SetPeakActivity(v models.PeakActivity) *NarrativeUpdate {
	_u.mutation.SetPeakActivity(v)
	return _u
}

// SetNillablePeakActivity sets the "peak_activity" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillablePeakActivity(v *models.PeakActivity) *NarrativeUpdate {
	if v != nil {
		_u.SetPeakActivity(*v)
	}
	return _u
}

// ClearPeakActivity clears the value of the "peak_activity" field.
func (_u *NarrativeUpdate) ClearPeakActivity() *NarrativeUpdate {
	_u.mutation.ClearPeakActivity()
	return _u
}

// SetMergedInto sets the "merged_into" field.
func (_u *NarrativeUpdate) SetMergedInto(v string) *NarrativeUpdate {
	_u.mutation.SetMergedInto(v)
	return _u
}

// SetNillableMergedInto sets the "merged_into" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableMergedInto(v *string) *NarrativeUpdate {
	if v != nil {
		_u.SetMergedInto(*v)
	}
	return _u
}

// ClearMergedInto clears the value of the "merged_into" field.
func (_u *NarrativeUpdate) ClearMergedInto() *NarrativeUpdate {
	_u.mutation.ClearMergedInto()
	return _u
}

// SetVersion sets the "version" field.
func (_u *NarrativeUpdate) SetVersion(v int) *NarrativeUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *NarrativeUpdate) SetNillableVersion(v *int) *NarrativeUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *NarrativeUpdate) AddVersion(v int) *NarrativeUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the NarrativeMutation object of the builder.
func (_u *NarrativeUpdate) Mutation() *NarrativeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NarrativeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NarrativeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NarrativeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NarrativeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NarrativeUpdate) check() error {
	if v, ok := _u.mutation.LifecycleState(); ok {
		if err := narrative.LifecycleStateValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_state", err: fmt.Errorf(`ent: validator failed for field "Narrative.lifecycle_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Momentum(); ok {
		if err := narrative.MomentumValidator(v); err != nil {
			return &ValidationError{Name: "momentum", err: fmt.Errorf(`ent: validator failed for field "Narrative.momentum": %w`, err)}
		}
	}
	return nil
}

func (_u *NarrativeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(narrative.Table, narrative.Columns, sqlgraph.NewFieldSpec(narrative.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(narrative.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(narrative.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(narrative.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(narrative.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(narrative.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.NucleusEntity(); ok {
		_spec.SetField(narrative.FieldNucleusEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(narrative.FieldEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, narrative.FieldEntities, value)
		})
	}
	if value, ok := _u.mutation.ArticleIds(); ok {
		_spec.SetField(narrative.FieldArticleIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArticleIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, narrative.FieldArticleIds, value)
		})
	}
	if value, ok := _u.mutation.ArticleCount(); ok {
		_spec.SetField(narrative.FieldArticleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleCount(); ok {
		_spec.AddField(narrative.FieldArticleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(narrative.FieldFingerprint, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LifecycleState(); ok {
		_spec.SetField(narrative.FieldLifecycleState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LifecycleHistory(); ok {
		_spec.SetField(narrative.FieldLifecycleHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLifecycleHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, narrative.FieldLifecycleHistory, value)
		})
	}
	if value, ok := _u.mutation.MentionVelocity(); ok {
		_spec.SetField(narrative.FieldMentionVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMentionVelocity(); ok {
		_spec.AddField(narrative.FieldMentionVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Momentum(); ok {
		_spec.SetField(narrative.FieldMomentum, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecencyScore(); ok {
		_spec.SetField(narrative.FieldRecencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecencyScore(); ok {
		_spec.AddField(narrative.FieldRecencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(narrative.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DaysActive(); ok {
		_spec.SetField(narrative.FieldDaysActive, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysActive(); ok {
		_spec.AddField(narrative.FieldDaysActive, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReawakeningCount(); ok {
		_spec.SetField(narrative.FieldReawakeningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReawakeningCount(); ok {
		_spec.AddField(narrative.FieldReawakeningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReawakenedFrom(); ok {
		_spec.SetField(narrative.FieldReawakenedFrom, field.TypeTime, value)
	}
	if _u.mutation.ReawakenedFromCleared() {
		_spec.ClearField(narrative.FieldReawakenedFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ResurrectionVelocity(); ok {
		_spec.SetField(narrative.FieldResurrectionVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResurrectionVelocity(); ok {
		_spec.AddField(narrative.FieldResurrectionVelocity, field.TypeFloat64, value)
	}
	if _u.mutation.ResurrectionVelocityCleared() {
		_spec.ClearField(narrative.FieldResurrectionVelocity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PeakActivity(); ok {
		_spec.SetField(narrative.FieldPeakActivity, field.TypeJSON, value)
	}
	if _u.mutation.PeakActivityCleared() {
		_spec.ClearField(narrative.FieldPeakActivity, field.TypeJSON)
	}
	if value, ok := _u.mutation.MergedInto(); ok {
		_spec.SetField(narrative.FieldMergedInto, field.TypeString, value)
	}
	if _u.mutation.MergedIntoCleared() {
		_spec.ClearField(narrative.FieldMergedInto, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(narrative.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(narrative.FieldVersion, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{narrative.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NarrativeUpdateOne is the builder for updating a single Narrative entity.
type NarrativeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NarrativeMutation
}

// SetTitle sets the "title" field.
func (_u *NarrativeUpdateOne) SetTitle(v string) *NarrativeUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableTitle(v *string) *NarrativeUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *NarrativeUpdateOne) SetSummary(v string) *NarrativeUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableSummary(v *string) *NarrativeUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *NarrativeUpdateOne) ClearSummary() *NarrativeUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetTheme sets the "theme" field.
func (_u *NarrativeUpdateOne) SetTheme(v string) *NarrativeUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableTheme(v *string) *NarrativeUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *NarrativeUpdateOne) ClearTheme() *NarrativeUpdateOne {
	_u.mutation.ClearTheme()
	return _u
}

// SetNucleusEntity sets the "nucleus_entity" field.
func (_u *NarrativeUpdateOne) SetNucleusEntity(v string) *NarrativeUpdateOne {
	_u.mutation.SetNucleusEntity(v)
	return _u
}

// SetNillableNucleusEntity sets the "nucleus_entity" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableNucleusEntity(v *string) *NarrativeUpdateOne {
	if v != nil {
		_u.SetNucleusEntity(*v)
	}
	return _u
}

// SetEntities sets the "entities" field.
func (_u *NarrativeUpdateOne) SetEntities(v []string) *NarrativeUpdateOne {
	_u.mutation.SetEntities(v)
	return _u
}

// AppendEntities appends value to the "entities" field.
func (_u *NarrativeUpdateOne) AppendEntities(v []string) *NarrativeUpdateOne {
	_u.mutation.AppendEntities(v)
	return _u
}

// SetArticleIds sets the "article_ids" field.
func (_u *NarrativeUpdateOne) SetArticleIds(v []string) *NarrativeUpdateOne {
	_u.mutation.SetArticleIds(v)
	return _u
}

// AppendArticleIds appends value to the "article_ids" field.
func (_u *NarrativeUpdateOne) AppendArticleIds(v []string) *NarrativeUpdateOne {
	_u.mutation.AppendArticleIds(v)
	return _u
}

// SetArticleCount sets the "article_count" field.
func (_u *NarrativeUpdateOne) SetArticleCount(v int) *NarrativeUpdateOne {
	_u.mutation.ResetArticleCount()
	_u.mutation.SetArticleCount(v)
	return _u
}

// SetNillableArticleCount sets the "article_count" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableArticleCount(v *int) *NarrativeUpdateOne {
	if v != nil {
		_u.SetArticleCount(*v)
	}
	return _u
}

// AddArticleCount adds value to the "article_count" field.
func (_u *NarrativeUpdateOne) AddArticleCount(v int) *NarrativeUpdateOne {
	_u.mutation.AddArticleCount(v)
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *NarrativeUpdateOne) SetFingerprint(v models.Fingerprint) *NarrativeUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableFingerprint(v *models.Fingerprint) *NarrativeUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetLifecycleState sets the "lifecycle_state" field.
func (_u *NarrativeUpdateOne) SetLifecycleState(v narrative.LifecycleState) *NarrativeUpdateOne {
	_u.mutation.SetLifecycleState(v)
	return _u
}

// SetNillableLifecycleState sets the "lifecycle_state" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableLifecycleState(v *narrative.LifecycleState) *NarrativeUpdateOne {
	if v != nil {
		_u.SetLifecycleState(*v)
	}
	return _u
}

// SetLifecycleHistory sets the "lifecycle_history" field.
func (_u *NarrativeUpdateOne) SetLifecycleHistory(v []models.LifecycleEntry) *NarrativeUpdateOne {
	_u.mutation.SetLifecycleHistory(v)
	return _u
}

// AppendLifecycleHistory appends value to the "lifecycle_history" field.
func (_u *NarrativeUpdateOne) AppendLifecycleHistory(v []models.LifecycleEntry) *NarrativeUpdateOne {
	_u.mutation.AppendLifecycleHistory(v)
	return _u
}

// SetMentionVelocity sets the "mention_velocity" field.
func (_u *NarrativeUpdateOne) SetMentionVelocity(v float64) *NarrativeUpdateOne {
	_u.mutation.ResetMentionVelocity()
	_u.mutation.SetMentionVelocity(v)
	return _u
}

// SetNillableMentionVelocity sets the "mention_velocity" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableMentionVelocity(v *float64) *NarrativeUpdateOne {
	if v != nil {
		_u.SetMentionVelocity(*v)
	}
	return _u
}

// AddMentionVelocity adds value to the "mention_velocity" field.
func (_u *NarrativeUpdateOne) AddMentionVelocity(v float64) *NarrativeUpdateOne {
	_u.mutation.AddMentionVelocity(v)
	return _u
}

// SetMomentum sets the "momentum" field.
func (_u *NarrativeUpdateOne) SetMomentum(v narrative.Momentum) *NarrativeUpdateOne {
	_u.mutation.SetMomentum(v)
	return _u
}

// SetNillableMomentum sets the "momentum" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableMomentum(v *narrative.Momentum) *NarrativeUpdateOne {
	if v != nil {
		_u.SetMomentum(*v)
	}
	return _u
}

// SetRecencyScore sets the "recency_score" field.
func (_u *NarrativeUpdateOne) SetRecencyScore(v float64) *NarrativeUpdateOne {
	_u.mutation.ResetRecencyScore()
	_u.mutation.SetRecencyScore(v)
	return _u
}

// SetNillableRecencyScore sets the "recency_score" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableRecencyScore(v *float64) *NarrativeUpdateOne {
	if v != nil {
		_u.SetRecencyScore(*v)
	}
	return _u
}

// AddRecencyScore adds value to the "recency_score" field.
func (_u *NarrativeUpdateOne) AddRecencyScore(v float64) *NarrativeUpdateOne {
	_u.mutation.AddRecencyScore(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *NarrativeUpdateOne) SetLastUpdated(v time.Time) *NarrativeUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableLastUpdated(v *time.Time) *NarrativeUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetDaysActive sets the "days_active" field.
func (_u *NarrativeUpdateOne) SetDaysActive(v int) *NarrativeUpdateOne {
	_u.mutation.ResetDaysActive()
	_u.mutation.SetDaysActive(v)
	return _u
}

// SetNillableDaysActive sets the "days_active" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableDaysActive(v *int) *NarrativeUpdateOne {
	if v != nil {
		_u.SetDaysActive(*v)
	}
	return _u
}

// AddDaysActive adds value to the "days_active" field.
func (_u *NarrativeUpdateOne) AddDaysActive(v int) *NarrativeUpdateOne {
	_u.mutation.AddDaysActive(v)
	return _u
}

// SetReawakeningCount sets the "reawakening_count" field.
func (_u *NarrativeUpdateOne) SetReawakeningCount(v int) *NarrativeUpdateOne {
	_u.mutation.ResetReawakeningCount()
	_u.mutation.SetReawakeningCount(v)
	return _u
}

// SetNillableReawakeningCount sets the "reawakening_count" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableReawakeningCount(v *int) *NarrativeUpdateOne {
	if v != nil {
		_u.SetReawakeningCount(*v)
	}
	return _u
}

// AddReawakeningCount adds value to the "reawakening_count" field.
func (_u *NarrativeUpdateOne) AddReawakeningCount(v int) *NarrativeUpdateOne {
	_u.mutation.AddReawakeningCount(v)
	return _u
}

// SetReawakenedFrom sets the "reawakened_from" field.
func (_u *NarrativeUpdateOne) SetReawakenedFrom(v time.Time) *NarrativeUpdateOne {
	_u.mutation.SetReawakenedFrom(v)
	return _u
}

// SetNillableReawakenedFrom sets the "reawakened_from" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableReawakenedFrom(v *time.Time) *NarrativeUpdateOne {
	if v != nil {
		_u.SetReawakenedFrom(*v)
	}
	return _u
}

// ClearReawakenedFrom clears the value of the "reawakened_from" field.
func (_u *NarrativeUpdateOne) ClearReawakenedFrom() *NarrativeUpdateOne {
	_u.mutation.ClearReawakenedFrom()
	return _u
}

// SetResurrectionVelocity sets the "resurrection_velocity" field.
func (_u *NarrativeUpdateOne) SetResurrectionVelocity(v float64) *NarrativeUpdateOne {
	_u.mutation.ResetResurrectionVelocity()
	_u.mutation.SetResurrectionVelocity(v)
	return _u
}

// SetNillableResurrectionVelocity sets the "resurrection_velocity" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableResurrectionVelocity(v *float64) *NarrativeUpdateOne {
	if v != nil {
		_u.SetResurrectionVelocity(*v)
	}
	return _u
}

// AddResurrectionVelocity adds value to the "resurrection_velocity" field.
func (_u *NarrativeUpdateOne) AddResurrectionVelocity(v float64) *NarrativeUpdateOne {
	_u.mutation.AddResurrectionVelocity(v)
	return _u
}

// ClearResurrectionVelocity clears the value of the "resurrection_velocity" field.
func (_u *NarrativeUpdateOne) ClearResurrectionVelocity() *NarrativeUpdateOne {
	_u.mutation.ClearResurrectionVelocity()
	return _u
}

// SetPeakActivity sets the "peak_activity" field.
func (_u *NarrativeUpdateOne) SetPeakActivity(v models.PeakActivity) *NarrativeUpdateOne {
	_u.mutation.SetPeakActivity(v)
	return _u
}

// SetNillablePeakActivity sets the "peak_activity" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillablePeakActivity(v *models.PeakActivity) *NarrativeUpdateOne {
	if v != nil {
		_u.SetPeakActivity(*v)
	}
	return _u
}

// ClearPeakActivity clears the value of the "peak_activity" field.
func (_u *NarrativeUpdateOne) ClearPeakActivity() *NarrativeUpdateOne {
	_u.mutation.ClearPeakActivity()
	return _u
}

// SetMergedInto sets the "merged_into" field.
func (_u *NarrativeUpdateOne) SetMergedInto(v string) *NarrativeUpdateOne {
	_u.mutation.SetMergedInto(v)
	return _u
}

// SetNillableMergedInto sets the "merged_into" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableMergedInto(v *string) *NarrativeUpdateOne {
	if v != nil {
		_u.SetMergedInto(*v)
	}
	return _u
}

// ClearMergedInto clears the value of the "merged_into" field.
func (_u *NarrativeUpdateOne) ClearMergedInto() *NarrativeUpdateOne {
	_u.mutation.ClearMergedInto()
	return _u
}

// SetVersion sets the "version" field.
func (_u *NarrativeUpdateOne) SetVersion(v int) *NarrativeUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *NarrativeUpdateOne) SetNillableVersion(v *int) *NarrativeUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *NarrativeUpdateOne) AddVersion(v int) *NarrativeUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the NarrativeMutation object of the builder.
func (_u *NarrativeUpdateOne) Mutation() *NarrativeMutation {
	return _u.mutation
}

// Where appends a list predicates to the NarrativeUpdate builder.
func (_u *NarrativeUpdateOne) Where(ps ...predicate.Narrative) *NarrativeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NarrativeUpdateOne) Select(field string, fields ...string) *NarrativeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Narrative entity.
func (_u *NarrativeUpdateOne) Save(ctx context.Context) (*Narrative, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NarrativeUpdateOne) SaveX(ctx context.Context) *Narrative {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NarrativeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NarrativeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NarrativeUpdateOne) check() error {
	if v, ok := _u.mutation.LifecycleState(); ok {
		if err := narrative.LifecycleStateValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_state", err: fmt.Errorf(`ent: validator failed for field "Narrative.lifecycle_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Momentum(); ok {
		if err := narrative.MomentumValidator(v); err != nil {
			return &ValidationError{Name: "momentum", err: fmt.Errorf(`ent: validator failed for field "Narrative.momentum": %w`, err)}
		}
	}
	return nil
}

func (_u *NarrativeUpdateOne) sqlSave(ctx context.Context) (_node *Narrative, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(narrative.Table, narrative.Columns, sqlgraph.NewFieldSpec(narrative.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Narrative.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, narrative.FieldID)
		for _, f := range fields {
			if !narrative.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != narrative.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(narrative.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(narrative.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(narrative.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(narrative.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(narrative.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.NucleusEntity(); ok {
		_spec.SetField(narrative.FieldNucleusEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(narrative.FieldEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, narrative.FieldEntities, value)
		})
	}
	if value, ok := _u.mutation.ArticleIds(); ok {
		_spec.SetField(narrative.FieldArticleIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArticleIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, narrative.FieldArticleIds, value)
		})
	}
	if value, ok := _u.mutation.ArticleCount(); ok {
		_spec.SetField(narrative.FieldArticleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleCount(); ok {
		_spec.AddField(narrative.FieldArticleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(narrative.FieldFingerprint, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LifecycleState(); ok {
		_spec.SetField(narrative.FieldLifecycleState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LifecycleHistory(); ok {
		_spec.SetField(narrative.FieldLifecycleHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLifecycleHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, narrative.FieldLifecycleHistory, value)
		})
	}
	if value, ok := _u.mutation.MentionVelocity(); ok {
		_spec.SetField(narrative.FieldMentionVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMentionVelocity(); ok {
		_spec.AddField(narrative.FieldMentionVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Momentum(); ok {
		_spec.SetField(narrative.FieldMomentum, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecencyScore(); ok {
		_spec.SetField(narrative.FieldRecencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecencyScore(); ok {
		_spec.AddField(narrative.FieldRecencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(narrative.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DaysActive(); ok {
		_spec.SetField(narrative.FieldDaysActive, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysActive(); ok {
		_spec.AddField(narrative.FieldDaysActive, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReawakeningCount(); ok {
		_spec.SetField(narrative.FieldReawakeningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReawakeningCount(); ok {
		_spec.AddField(narrative.FieldReawakeningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReawakenedFrom(); ok {
		_spec.SetField(narrative.FieldReawakenedFrom, field.TypeTime, value)
	}
	if _u.mutation.ReawakenedFromCleared() {
		_spec.ClearField(narrative.FieldReawakenedFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ResurrectionVelocity(); ok {
		_spec.SetField(narrative.FieldResurrectionVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResurrectionVelocity(); ok {
		_spec.AddField(narrative.FieldResurrectionVelocity, field.TypeFloat64, value)
	}
	if _u.mutation.ResurrectionVelocityCleared() {
		_spec.ClearField(narrative.FieldResurrectionVelocity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PeakActivity(); ok {
		_spec.SetField(narrative.FieldPeakActivity, field.TypeJSON, value)
	}
	if _u.mutation.PeakActivityCleared() {
		_spec.ClearField(narrative.FieldPeakActivity, field.TypeJSON)
	}
	if value, ok := _u.mutation.MergedInto(); ok {
		_spec.SetField(narrative.FieldMergedInto, field.TypeString, value)
	}
	if _u.mutation.MergedIntoCleared() {
		_spec.ClearField(narrative.FieldMergedInto, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(narrative.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(narrative.FieldVersion, field.TypeInt, value)
	}
	_node = &Narrative{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{narrative.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
