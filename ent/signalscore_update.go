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
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/predicate"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/signalscore"
)

// SignalScoreUpdate is the builder for updating SignalScore entities.
type SignalScoreUpdate struct {
	config
	hooks    []Hook
	mutation *SignalScoreMutation
}

// Where appends a list predicates to the SignalScoreUpdate builder.
func (_u *SignalScoreUpdate) Where(ps ...predicate.SignalScore) *SignalScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntity sets the "entity" field.
func (_u *SignalScoreUpdate) SetEntity(v string) *SignalScoreUpdate {
	_u.mutation.SetEntity(v)
	return _u
}

// SetNillableEntity sets the "entity" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableEntity(v *string) *SignalScoreUpdate {
	if v != nil {
		_u.SetEntity(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *SignalScoreUpdate) SetEntityType(v string) *SignalScoreUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableEntityType(v *string) *SignalScoreUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SignalScoreUpdate) SetUpdatedAt(v time.Time) *SignalScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScore24h sets the "score_24h" field.
func (_u *SignalScoreUpdate) SetScore24h(v float64) *SignalScoreUpdate {
	_u.mutation.ResetScore24h()
	_u.mutation.SetScore24h(v)
	return _u
}

// SetNillableScore24h sets the "score_24h" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableScore24h(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetScore24h(*v)
	}
	return _u
}

// AddScore24h adds value to the "score_24h" field.
func (_u *SignalScoreUpdate) AddScore24h(v float64) *SignalScoreUpdate {
	_u.mutation.AddScore24h(v)
	return _u
}

// SetVelocity24h sets the "velocity_24h" field.
func (_u *SignalScoreUpdate) SetVelocity24h(v float64) *SignalScoreUpdate {
	_u.mutation.ResetVelocity24h()
	_u.mutation.SetVelocity24h(v)
	return _u
}

// SetNillableVelocity24h sets the "velocity_24h" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableVelocity24h(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetVelocity24h(*v)
	}
	return _u
}

// AddVelocity24h adds value to the "velocity_24h" field.
func (_u *SignalScoreUpdate) AddVelocity24h(v float64) *SignalScoreUpdate {
	_u.mutation.AddVelocity24h(v)
	return _u
}

// SetMentions24h sets the "mentions_24h" field.
func (_u *SignalScoreUpdate) SetMentions24h(v int) *SignalScoreUpdate {
	_u.mutation.ResetMentions24h()
	_u.mutation.SetMentions24h(v)
	return _u
}

// SetNillableMentions24h sets the "mentions_24h" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableMentions24h(v *int) *SignalScoreUpdate {
	if v != nil {
		_u.SetMentions24h(*v)
	}
	return _u
}

// AddMentions24h adds value to the "mentions_24h" field.
func (_u *SignalScoreUpdate) AddMentions24h(v int) *SignalScoreUpdate {
	_u.mutation.AddMentions24h(v)
	return _u
}

// SetRecency24h sets the "recency_24h" field.
func (_u *SignalScoreUpdate) SetRecency24h(v float64) *SignalScoreUpdate {
	_u.mutation.ResetRecency24h()
	_u.mutation.SetRecency24h(v)
	return _u
}

// SetNillableRecency24h sets the "recency_24h" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableRecency24h(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetRecency24h(*v)
	}
	return _u
}

// AddRecency24h adds value to the "recency_24h" field.
func (_u *SignalScoreUpdate) AddRecency24h(v float64) *SignalScoreUpdate {
	_u.mutation.AddRecency24h(v)
	return _u
}

// SetScore7d sets the "score_7d" field.
func (_u *SignalScoreUpdate) SetScore7d(v float64) *SignalScoreUpdate {
	_u.mutation.ResetScore7d()
	_u.mutation.SetScore7d(v)
	return _u
}

// SetNillableScore7d sets the "score_7d" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableScore7d(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetScore7d(*v)
	}
	return _u
}

// AddScore7d adds value to the "score_7d" field.
func (_u *SignalScoreUpdate) AddScore7d(v float64) *SignalScoreUpdate {
	_u.mutation.AddScore7d(v)
	return _u
}

// SetVelocity7d sets the "velocity_7d" field.
func (_u *SignalScoreUpdate) SetVelocity7d(v float64) *SignalScoreUpdate {
	_u.mutation.ResetVelocity7d()
	_u.mutation.SetVelocity7d(v)
	return _u
}

// SetNillableVelocity7d sets the "velocity_7d" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableVelocity7d(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetVelocity7d(*v)
	}
	return _u
}

// AddVelocity7d adds value to the "velocity_7d" field.
func (_u *SignalScoreUpdate) AddVelocity7d(v float64) *SignalScoreUpdate {
	_u.mutation.AddVelocity7d(v)
	return _u
}

// SetMentions7d sets the "mentions_7d" field.
func (_u *SignalScoreUpdate) SetMentions7d(v int) *SignalScoreUpdate {
	_u.mutation.ResetMentions7d()
	_u.mutation.SetMentions7d(v)
	return _u
}

// SetNillableMentions7d sets the "mentions_7d" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableMentions7d(v *int) *SignalScoreUpdate {
	if v != nil {
		_u.SetMentions7d(*v)
	}
	return _u
}

// AddMentions7d adds value to the "mentions_7d" field.
func (_u *SignalScoreUpdate) AddMentions7d(v int) *SignalScoreUpdate {
	_u.mutation.AddMentions7d(v)
	return _u
}

// SetRecency7d sets the "recency_7d" field.
func (_u *SignalScoreUpdate) SetRecency7d(v float64) *SignalScoreUpdate {
	_u.mutation.ResetRecency7d()
	_u.mutation.SetRecency7d(v)
	return _u
}

// SetNillableRecency7d sets the "recency_7d" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableRecency7d(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetRecency7d(*v)
	}
	return _u
}

// AddRecency7d adds value to the "recency_7d" field.
func (_u *SignalScoreUpdate) AddRecency7d(v float64) *SignalScoreUpdate {
	_u.mutation.AddRecency7d(v)
	return _u
}

// SetScore30d sets the "score_30d" field.
func (_u *SignalScoreUpdate) SetScore30d(v float64) *SignalScoreUpdate {
	_u.mutation.ResetScore30d()
	_u.mutation.SetScore30d(v)
	return _u
}

// SetNillableScore30d sets the "score_30d" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableScore30d(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetScore30d(*v)
	}
	return _u
}

// AddScore30d adds value to the "score_30d" field.
func (_u *SignalScoreUpdate) AddScore30d(v float64) *SignalScoreUpdate {
	_u.mutation.AddScore30d(v)
	return _u
}

// SetVelocity30d sets the "velocity_30d" field.
func (_u *SignalScoreUpdate) SetVelocity30d(v float64) *SignalScoreUpdate {
	_u.mutation.ResetVelocity30d()
	_u.mutation.SetVelocity30d(v)
	return _u
}

// SetNillableVelocity30d sets the "velocity_30d" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableVelocity30d(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetVelocity30d(*v)
	}
	return _u
}

// AddVelocity30d adds value to the "velocity_30d" field.
func (_u *SignalScoreUpdate) AddVelocity30d(v float64) *SignalScoreUpdate {
	_u.mutation.AddVelocity30d(v)
	return _u
}

// SetMentions30d sets the "mentions_30d" field.
func (_u *SignalScoreUpdate) SetMentions30d(v int) *SignalScoreUpdate {
	_u.mutation.ResetMentions30d()
	_u.mutation.SetMentions30d(v)
	return _u
}

// SetNillableMentions30d sets the "mentions_30d" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableMentions30d(v *int) *SignalScoreUpdate {
	if v != nil {
		_u.SetMentions30d(*v)
	}
	return _u
}

// AddMentions30d adds value to the "mentions_30d" field.
func (_u *SignalScoreUpdate) AddMentions30d(v int) *SignalScoreUpdate {
	_u.mutation.AddMentions30d(v)
	return _u
}

// SetRecency30d sets the "recency_30d" field.
func (_u *SignalScoreUpdate) SetRecency30d(v float64) *SignalScoreUpdate {
	_u.mutation.ResetRecency30d()
	_u.mutation.SetRecency30d(v)
	return _u
}

// SetNillableRecency30d sets the "recency_30d" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableRecency30d(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetRecency30d(*v)
	}
	return _u
}

// AddRecency30d adds value to the "recency_30d" field.
func (_u *SignalScoreUpdate) AddRecency30d(v float64) *SignalScoreUpdate {
	_u.mutation.AddRecency30d(v)
	return _u
}

// SetSentimentAvg sets the "sentiment_avg" field.
func (_u *SignalScoreUpdate) SetSentimentAvg(v float64) *SignalScoreUpdate {
	_u.mutation.ResetSentimentAvg()
	_u.mutation.SetSentimentAvg(v)
	return _u
}

// SetNillableSentimentAvg sets the "sentiment_avg" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableSentimentAvg(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetSentimentAvg(*v)
	}
	return _u
}

// AddSentimentAvg adds value to the "sentiment_avg" field.
func (_u *SignalScoreUpdate) AddSentimentAvg(v float64) *SignalScoreUpdate {
	_u.mutation.AddSentimentAvg(v)
	return _u
}

// SetSentimentMin sets the "sentiment_min" field.
func (_u *SignalScoreUpdate) SetSentimentMin(v float64) *SignalScoreUpdate {
	_u.mutation.ResetSentimentMin()
	_u.mutation.SetSentimentMin(v)
	return _u
}

// SetNillableSentimentMin sets the "sentiment_min" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableSentimentMin(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetSentimentMin(*v)
	}
	return _u
}

// AddSentimentMin adds value to the "sentiment_min" field.
func (_u *SignalScoreUpdate) AddSentimentMin(v float64) *SignalScoreUpdate {
	_u.mutation.AddSentimentMin(v)
	return _u
}

// SetSentimentMax sets the "sentiment_max" field.
func (_u *SignalScoreUpdate) SetSentimentMax(v float64) *SignalScoreUpdate {
	_u.mutation.ResetSentimentMax()
	_u.mutation.SetSentimentMax(v)
	return _u
}

// SetNillableSentimentMax sets the "sentiment_max" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableSentimentMax(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetSentimentMax(*v)
	}
	return _u
}

// AddSentimentMax adds value to the "sentiment_max" field.
func (_u *SignalScoreUpdate) AddSentimentMax(v float64) *SignalScoreUpdate {
	_u.mutation.AddSentimentMax(v)
	return _u
}

// SetSentimentDivergence sets the "sentiment_divergence" field.
func (_u *SignalScoreUpdate) SetSentimentDivergence(v float64) *SignalScoreUpdate {
	_u.mutation.ResetSentimentDivergence()
	_u.mutation.SetSentimentDivergence(v)
	return _u
}

// SetNillableSentimentDivergence sets the "sentiment_divergence" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableSentimentDivergence(v *float64) *SignalScoreUpdate {
	if v != nil {
		_u.SetSentimentDivergence(*v)
	}
	return _u
}

// AddSentimentDivergence adds value to the "sentiment_divergence" field.
func (_u *SignalScoreUpdate) AddSentimentDivergence(v float64) *SignalScoreUpdate {
	_u.mutation.AddSentimentDivergence(v)
	return _u
}

// SetSourceCount sets the "source_count" field.
func (_u *SignalScoreUpdate) SetSourceCount(v int) *SignalScoreUpdate {
	_u.mutation.ResetSourceCount()
	_u.mutation.SetSourceCount(v)
	return _u
}

// SetNillableSourceCount sets the "source_count" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableSourceCount(v *int) *SignalScoreUpdate {
	if v != nil {
		_u.SetSourceCount(*v)
	}
	return _u
}

// AddSourceCount adds value to the "source_count" field.
func (_u *SignalScoreUpdate) AddSourceCount(v int) *SignalScoreUpdate {
	_u.mutation.AddSourceCount(v)
	return _u
}

// SetNarrativeIds sets the "narrative_ids" field.
func (_u *SignalScoreUpdate) SetNarrativeIds(v []string) *SignalScoreUpdate {
	_u.mutation.SetNarrativeIds(v)
	return _u
}

// AppendNarrativeIds appends value to the "narrative_ids" field.
func (_u *SignalScoreUpdate) AppendNarrativeIds(v []string) *SignalScoreUpdate {
	_u.mutation.AppendNarrativeIds(v)
	return _u
}

// ClearNarrativeIds clears the value of the "narrative_ids" field.
func (_u *SignalScoreUpdate) ClearNarrativeIds() *SignalScoreUpdate {
	_u.mutation.ClearNarrativeIds()
	return _u
}

// SetIsEmerging sets the "is_emerging" field.
func (_u *SignalScoreUpdate) SetIsEmerging(v bool) *SignalScoreUpdate {
	_u.mutation.SetIsEmerging(v)
	return _u
}

// SetNillableIsEmerging sets the "is_emerging" field if the given value is not nil.
func (_u *SignalScoreUpdate) SetNillableIsEmerging(v *bool) *SignalScoreUpdate {
	if v != nil {
		_u.SetIsEmerging(*v)
	}
	return _u
}

// Mutation returns the SignalScoreMutation object of the builder.
func (_u *SignalScoreUpdate) Mutation() *SignalScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SignalScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignalScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SignalScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignalScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SignalScoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := signalscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SignalScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(signalscore.Table, signalscore.Columns, sqlgraph.NewFieldSpec(signalscore.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Entity(); ok {
		_spec.SetField(signalscore.FieldEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(signalscore.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(signalscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Score24h(); ok {
		_spec.SetField(signalscore.FieldScore24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore24h(); ok {
		_spec.AddField(signalscore.FieldScore24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Velocity24h(); ok {
		_spec.SetField(signalscore.FieldVelocity24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocity24h(); ok {
		_spec.AddField(signalscore.FieldVelocity24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mentions24h(); ok {
		_spec.SetField(signalscore.FieldMentions24h, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentions24h(); ok {
		_spec.AddField(signalscore.FieldMentions24h, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recency24h(); ok {
		_spec.SetField(signalscore.FieldRecency24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecency24h(); ok {
		_spec.AddField(signalscore.FieldRecency24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score7d(); ok {
		_spec.SetField(signalscore.FieldScore7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore7d(); ok {
		_spec.AddField(signalscore.FieldScore7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Velocity7d(); ok {
		_spec.SetField(signalscore.FieldVelocity7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocity7d(); ok {
		_spec.AddField(signalscore.FieldVelocity7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mentions7d(); ok {
		_spec.SetField(signalscore.FieldMentions7d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentions7d(); ok {
		_spec.AddField(signalscore.FieldMentions7d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recency7d(); ok {
		_spec.SetField(signalscore.FieldRecency7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecency7d(); ok {
		_spec.AddField(signalscore.FieldRecency7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score30d(); ok {
		_spec.SetField(signalscore.FieldScore30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore30d(); ok {
		_spec.AddField(signalscore.FieldScore30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Velocity30d(); ok {
		_spec.SetField(signalscore.FieldVelocity30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocity30d(); ok {
		_spec.AddField(signalscore.FieldVelocity30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mentions30d(); ok {
		_spec.SetField(signalscore.FieldMentions30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentions30d(); ok {
		_spec.AddField(signalscore.FieldMentions30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recency30d(); ok {
		_spec.SetField(signalscore.FieldRecency30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecency30d(); ok {
		_spec.AddField(signalscore.FieldRecency30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SentimentAvg(); ok {
		_spec.SetField(signalscore.FieldSentimentAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentAvg(); ok {
		_spec.AddField(signalscore.FieldSentimentAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SentimentMin(); ok {
		_spec.SetField(signalscore.FieldSentimentMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentMin(); ok {
		_spec.AddField(signalscore.FieldSentimentMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SentimentMax(); ok {
		_spec.SetField(signalscore.FieldSentimentMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentMax(); ok {
		_spec.AddField(signalscore.FieldSentimentMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SentimentDivergence(); ok {
		_spec.SetField(signalscore.FieldSentimentDivergence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentDivergence(); ok {
		_spec.AddField(signalscore.FieldSentimentDivergence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceCount(); ok {
		_spec.SetField(signalscore.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceCount(); ok {
		_spec.AddField(signalscore.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NarrativeIds(); ok {
		_spec.SetField(signalscore.FieldNarrativeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNarrativeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, signalscore.FieldNarrativeIds, value)
		})
	}
	if _u.mutation.NarrativeIdsCleared() {
		_spec.ClearField(signalscore.FieldNarrativeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsEmerging(); ok {
		_spec.SetField(signalscore.FieldIsEmerging, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signalscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SignalScoreUpdateOne is the builder for updating a single SignalScore entity.
type SignalScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SignalScoreMutation
}

// SetEntity sets the "entity" field.
func (_u *SignalScoreUpdateOne) SetEntity(v string) *SignalScoreUpdateOne {
	_u.mutation.SetEntity(v)
	return _u
}

// SetNillableEntity sets the "entity" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableEntity(v *string) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetEntity(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *SignalScoreUpdateOne) SetEntityType(v string) *SignalScoreUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableEntityType(v *string) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SignalScoreUpdateOne) SetUpdatedAt(v time.Time) *SignalScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScore24h sets the "score_24h" field.
func (_u *SignalScoreUpdateOne) SetScore24h(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetScore24h()
	_u.mutation.SetScore24h(v)
	return _u
}

// SetNillableScore24h sets the "score_24h" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableScore24h(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetScore24h(*v)
	}
	return _u
}

// AddScore24h adds value to the "score_24h" field.
func (_u *SignalScoreUpdateOne) AddScore24h(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddScore24h(v)
	return _u
}

// SetVelocity24h sets the "velocity_24h" field.
func (_u *SignalScoreUpdateOne) SetVelocity24h(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetVelocity24h()
	_u.mutation.SetVelocity24h(v)
	return _u
}

// SetNillableVelocity24h sets the "velocity_24h" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableVelocity24h(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetVelocity24h(*v)
	}
	return _u
}

// AddVelocity24h adds value to the "velocity_24h" field.
func (_u *SignalScoreUpdateOne) AddVelocity24h(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddVelocity24h(v)
	return _u
}

// SetMentions24h sets the "mentions_24h" field.
func (_u *SignalScoreUpdateOne) SetMentions24h(v int) *SignalScoreUpdateOne {
	_u.mutation.ResetMentions24h()
	_u.mutation.SetMentions24h(v)
	return _u
}

// SetNillableMentions24h sets the "mentions_24h" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableMentions24h(v *int) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetMentions24h(*v)
	}
	return _u
}

// AddMentions24h adds value to the "mentions_24h" field.
func (_u *SignalScoreUpdateOne) AddMentions24h(v int) *SignalScoreUpdateOne {
	_u.mutation.AddMentions24h(v)
	return _u
}

// SetRecency24h sets the "recency_24h" field.
func (_u *SignalScoreUpdateOne) SetRecency24h(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetRecency24h()
	_u.mutation.SetRecency24h(v)
	return _u
}

// SetNillableRecency24h sets the "recency_24h" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableRecency24h(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetRecency24h(*v)
	}
	return _u
}

// AddRecency24h adds value to the "recency_24h" field.
func (_u *SignalScoreUpdateOne) AddRecency24h(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddRecency24h(v)
	return _u
}

// SetScore7d sets the "score_7d" field.
func (_u *SignalScoreUpdateOne) SetScore7d(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetScore7d()
	_u.mutation.SetScore7d(v)
	return _u
}

// SetNillableScore7d sets the "score_7d" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableScore7d(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetScore7d(*v)
	}
	return _u
}

// AddScore7d adds value to the "score_7d" field.
func (_u *SignalScoreUpdateOne) AddScore7d(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddScore7d(v)
	return _u
}

// SetVelocity7d sets the "velocity_7d" field.
func (_u *SignalScoreUpdateOne) SetVelocity7d(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetVelocity7d()
	_u.mutation.SetVelocity7d(v)
	return _u
}

// SetNillableVelocity7d sets the "velocity_7d" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableVelocity7d(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetVelocity7d(*v)
	}
	return _u
}

// AddVelocity7d adds value to the "velocity_7d" field.
func (_u *SignalScoreUpdateOne) AddVelocity7d(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddVelocity7d(v)
	return _u
}

// SetMentions7d sets the "mentions_7d" field.
func (_u *SignalScoreUpdateOne) SetMentions7d(v int) *SignalScoreUpdateOne {
	_u.mutation.ResetMentions7d()
	_u.mutation.SetMentions7d(v)
	return _u
}

// SetNillableMentions7d sets the "mentions_7d" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableMentions7d(v *int) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetMentions7d(*v)
	}
	return _u
}

// AddMentions7d adds value to the "mentions_7d" field.
func (_u *SignalScoreUpdateOne) AddMentions7d(v int) *SignalScoreUpdateOne {
	_u.mutation.AddMentions7d(v)
	return _u
}

// SetRecency7d sets the "recency_7d" field.
func (_u *SignalScoreUpdateOne) SetRecency7d(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetRecency7d()
	_u.mutation.SetRecency7d(v)
	return _u
}

// SetNillableRecency7d sets the "recency_7d" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableRecency7d(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetRecency7d(*v)
	}
	return _u
}

// AddRecency7d adds value to the "recency_7d" field.
func (_u *SignalScoreUpdateOne) AddRecency7d(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddRecency7d(v)
	return _u
}

// SetScore30d sets the "score_30d" field.
func (_u *SignalScoreUpdateOne) SetScore30d(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetScore30d()
	_u.mutation.SetScore30d(v)
	return _u
}

// SetNillableScore30d sets the "score_30d" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableScore30d(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetScore30d(*v)
	}
	return _u
}

// AddScore30d adds value to the "score_30d" field.
func (_u *SignalScoreUpdateOne) AddScore30d(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddScore30d(v)
	return _u
}

// SetVelocity30d sets the "velocity_30d" field.
func (_u *SignalScoreUpdateOne) SetVelocity30d(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetVelocity30d()
	_u.mutation.SetVelocity30d(v)
	return _u
}

// SetNillableVelocity30d sets the "velocity_30d" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableVelocity30d(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetVelocity30d(*v)
	}
	return _u
}

// AddVelocity30d adds value to the "velocity_30d" field.
func (_u *SignalScoreUpdateOne) AddVelocity30d(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddVelocity30d(v)
	return _u
}

// SetMentions30d sets the "mentions_30d" field.
func (_u *SignalScoreUpdateOne) SetMentions30d(v int) *SignalScoreUpdateOne {
	_u.mutation.ResetMentions30d()
	_u.mutation.SetMentions30d(v)
	return _u
}

// SetNillableMentions30d sets the "mentions_30d" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableMentions30d(v *int) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetMentions30d(*v)
	}
	return _u
}

// AddMentions30d adds value to the "mentions_30d" field.
func (_u *SignalScoreUpdateOne) AddMentions30d(v int) *SignalScoreUpdateOne {
	_u.mutation.AddMentions30d(v)
	return _u
}

// SetRecency30d sets the "recency_30d" field.
func (_u *SignalScoreUpdateOne) SetRecency30d(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetRecency30d()
	_u.mutation.SetRecency30d(v)
	return _u
}

// SetNillableRecency30d sets the "recency_30d" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableRecency30d(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetRecency30d(*v)
	}
	return _u
}

// AddRecency30d adds value to the "recency_30d" field.
func (_u *SignalScoreUpdateOne) AddRecency30d(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddRecency30d(v)
	return _u
}

// SetSentimentAvg sets the "sentiment_avg" field.
func (_u *SignalScoreUpdateOne) SetSentimentAvg(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetSentimentAvg()
	_u.mutation.SetSentimentAvg(v)
	return _u
}

// SetNillableSentimentAvg sets the "sentiment_avg" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableSentimentAvg(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetSentimentAvg(*v)
	}
	return _u
}

// AddSentimentAvg adds value to the "sentiment_avg" field.
func (_u *SignalScoreUpdateOne) AddSentimentAvg(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddSentimentAvg(v)
	return _u
}

// SetSentimentMin sets the "sentiment_min" field.
func (_u *SignalScoreUpdateOne) SetSentimentMin(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetSentimentMin()
	_u.mutation.SetSentimentMin(v)
	return _u
}

// SetNillableSentimentMin sets the "sentiment_min" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableSentimentMin(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetSentimentMin(*v)
	}
	return _u
}

// AddSentimentMin adds value to the "sentiment_min" field.
func (_u *SignalScoreUpdateOne) AddSentimentMin(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddSentimentMin(v)
	return _u
}

// SetSentimentMax sets the "sentiment_max" field.
func (_u *SignalScoreUpdateOne) SetSentimentMax(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetSentimentMax()
	_u.mutation.SetSentimentMax(v)
	return _u
}

// SetNillableSentimentMax sets the "sentiment_max" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableSentimentMax(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetSentimentMax(*v)
	}
	return _u
}

// AddSentimentMax adds value to the "sentiment_max" field.
func (_u *SignalScoreUpdateOne) AddSentimentMax(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddSentimentMax(v)
	return _u
}

// SetSentimentDivergence sets the "sentiment_divergence" field.
func (_u *SignalScoreUpdateOne) SetSentimentDivergence(v float64) *SignalScoreUpdateOne {
	_u.mutation.ResetSentimentDivergence()
	_u.mutation.SetSentimentDivergence(v)
	return _u
}

// SetNillableSentimentDivergence sets the "sentiment_divergence" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableSentimentDivergence(v *float64) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetSentimentDivergence(*v)
	}
	return _u
}

// AddSentimentDivergence adds value to the "sentiment_divergence" field.
func (_u *SignalScoreUpdateOne) AddSentimentDivergence(v float64) *SignalScoreUpdateOne {
	_u.mutation.AddSentimentDivergence(v)
	return _u
}

// SetSourceCount sets the "source_count" field.
func (_u *SignalScoreUpdateOne) SetSourceCount(v int) *SignalScoreUpdateOne {
	_u.mutation.ResetSourceCount()
	_u.mutation.SetSourceCount(v)
	return _u
}

// SetNillableSourceCount sets the "source_count" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableSourceCount(v *int) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetSourceCount(*v)
	}
	return _u
}

// AddSourceCount adds value to the "source_count" field.
func (_u *SignalScoreUpdateOne) AddSourceCount(v int) *SignalScoreUpdateOne {
	_u.mutation.AddSourceCount(v)
	return _u
}

// SetNarrativeIds sets the "narrative_ids" field.
func (_u *SignalScoreUpdateOne) SetNarrativeIds(v []string) *SignalScoreUpdateOne {
	_u.mutation.SetNarrativeIds(v)
	return _u
}

// AppendNarrativeIds appends value to the "narrative_ids" field.
func (_u *SignalScoreUpdateOne) AppendNarrativeIds(v []string) *SignalScoreUpdateOne {
	_u.mutation.AppendNarrativeIds(v)
	return _u
}

// ClearNarrativeIds clears the value of the "narrative_ids" field.
func (_u *SignalScoreUpdateOne) ClearNarrativeIds() *SignalScoreUpdateOne {
	_u.mutation.ClearNarrativeIds()
	return _u
}

// SetIsEmerging sets the "is_emerging" field.
func (_u *SignalScoreUpdateOne) SetIsEmerging(v bool) *SignalScoreUpdateOne {
	_u.mutation.SetIsEmerging(v)
	return _u
}

// SetNillableIsEmerging sets the "is_emerging" field if the given value is not nil.
func (_u *SignalScoreUpdateOne) SetNillableIsEmerging(v *bool) *SignalScoreUpdateOne {
	if v != nil {
		_u.SetIsEmerging(*v)
	}
	return _u
}

// Mutation returns the SignalScoreMutation object of the builder.
func (_u *SignalScoreUpdateOne) Mutation() *SignalScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the SignalScoreUpdate builder.
func (_u *SignalScoreUpdateOne) Where(ps ...predicate.SignalScore) *SignalScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SignalScoreUpdateOne) Select(field string, fields ...string) *SignalScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SignalScore entity.
func (_u *SignalScoreUpdateOne) Save(ctx context.Context) (*SignalScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignalScoreUpdateOne) SaveX(ctx context.Context) *SignalScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SignalScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignalScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SignalScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := signalscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SignalScoreUpdateOne) sqlSave(ctx context.Context) (_node *SignalScore, err error) {
	_spec := sqlgraph.NewUpdateSpec(signalscore.Table, signalscore.Columns, sqlgraph.NewFieldSpec(signalscore.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SignalScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, signalscore.FieldID)
		for _, f := range fields {
			if !signalscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != signalscore.FieldID {
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
	if value, ok := _u.mutation.Entity(); ok {
		_spec.SetField(signalscore.FieldEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(signalscore.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(signalscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Score24h(); ok {
		_spec.SetField(signalscore.FieldScore24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore24h(); ok {
		_spec.AddField(signalscore.FieldScore24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Velocity24h(); ok {
		_spec.SetField(signalscore.FieldVelocity24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocity24h(); ok {
		_spec.AddField(signalscore.FieldVelocity24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mentions24h(); ok {
		_spec.SetField(signalscore.FieldMentions24h, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentions24h(); ok {
		_spec.AddField(signalscore.FieldMentions24h, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recency24h(); ok {
		_spec.SetField(signalscore.FieldRecency24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecency24h(); ok {
		_spec.AddField(signalscore.FieldRecency24h, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score7d(); ok {
		_spec.SetField(signalscore.FieldScore7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore7d(); ok {
		_spec.AddField(signalscore.FieldScore7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Velocity7d(); ok {
		_spec.SetField(signalscore.FieldVelocity7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocity7d(); ok {
		_spec.AddField(signalscore.FieldVelocity7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mentions7d(); ok {
		_spec.SetField(signalscore.FieldMentions7d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentions7d(); ok {
		_spec.AddField(signalscore.FieldMentions7d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recency7d(); ok {
		_spec.SetField(signalscore.FieldRecency7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecency7d(); ok {
		_spec.AddField(signalscore.FieldRecency7d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score30d(); ok {
		_spec.SetField(signalscore.FieldScore30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore30d(); ok {
		_spec.AddField(signalscore.FieldScore30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Velocity30d(); ok {
		_spec.SetField(signalscore.FieldVelocity30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocity30d(); ok {
		_spec.AddField(signalscore.FieldVelocity30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mentions30d(); ok {
		_spec.SetField(signalscore.FieldMentions30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentions30d(); ok {
		_spec.AddField(signalscore.FieldMentions30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recency30d(); ok {
		_spec.SetField(signalscore.FieldRecency30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecency30d(); ok {
		_spec.AddField(signalscore.FieldRecency30d, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SentimentAvg(); ok {
		_spec.SetField(signalscore.FieldSentimentAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentAvg(); ok {
		_spec.AddField(signalscore.FieldSentimentAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SentimentMin(); ok {
		_spec.SetField(signalscore.FieldSentimentMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentMin(); ok {
		_spec.AddField(signalscore.FieldSentimentMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SentimentMax(); ok {
		_spec.SetField(signalscore.FieldSentimentMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentMax(); ok {
		_spec.AddField(signalscore.FieldSentimentMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SentimentDivergence(); ok {
		_spec.SetField(signalscore.FieldSentimentDivergence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentimentDivergence(); ok {
		_spec.AddField(signalscore.FieldSentimentDivergence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceCount(); ok {
		_spec.SetField(signalscore.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceCount(); ok {
		_spec.AddField(signalscore.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NarrativeIds(); ok {
		_spec.SetField(signalscore.FieldNarrativeIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNarrativeIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, signalscore.FieldNarrativeIds, value)
		})
	}
	if _u.mutation.NarrativeIdsCleared() {
		_spec.ClearField(signalscore.FieldNarrativeIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsEmerging(); ok {
		_spec.SetField(signalscore.FieldIsEmerging, field.TypeBool, value)
	}
	_node = &SignalScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signalscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
