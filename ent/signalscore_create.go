// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/signalscore"
)

// SignalScoreCreate is the builder for creating a SignalScore entity.
type SignalScoreCreate struct {
	config
	mutation *SignalScoreMutation
	hooks    []Hook
}

// SetEntity sets the "entity" field.
func (_c *SignalScoreCreate) SetEntity(v string) *SignalScoreCreate {
	_c.mutation.SetEntity(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *SignalScoreCreate) SetEntityType(v string) *SignalScoreCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *SignalScoreCreate) SetFirstSeen(v time.Time) *SignalScoreCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableFirstSeen(v *time.Time) *SignalScoreCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SignalScoreCreate) SetUpdatedAt(v time.Time) *SignalScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableUpdatedAt(v *time.Time) *SignalScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetScore24h sets the "score_24h" field.
func (_c *SignalScoreCreate) SetScore24h(v float64) *SignalScoreCreate {
	_c.mutation.SetScore24h(v)
	return _c
}

// SetNillableScore24h sets the "score_24h" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableScore24h(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetScore24h(*v)
	}
	return _c
}

// SetVelocity24h sets the "velocity_24h" field.
func (_c *SignalScoreCreate) SetVelocity24h(v float64) *SignalScoreCreate {
	_c.mutation.SetVelocity24h(v)
	return _c
}

// SetNillableVelocity24h sets the "velocity_24h" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableVelocity24h(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetVelocity24h(*v)
	}
	return _c
}

// SetMentions24h sets the "mentions_24h" field.
func (_c *SignalScoreCreate) SetMentions24h(v int) *SignalScoreCreate {
	_c.mutation.SetMentions24h(v)
	return _c
}

// SetNillableMentions24h sets the "mentions_24h" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableMentions24h(v *int) *SignalScoreCreate {
	if v != nil {
		_c.SetMentions24h(*v)
	}
	return _c
}

// SetRecency24h sets the "recency_24h" field.
func (_c *SignalScoreCreate) SetRecency24h(v float64) *SignalScoreCreate {
	_c.mutation.SetRecency24h(v)
	return _c
}

// SetNillableRecency24h sets the "recency_24h" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableRecency24h(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetRecency24h(*v)
	}
	return _c
}

// SetScore7d sets the "score_7d" field.
func (_c *SignalScoreCreate) SetScore7d(v float64) *SignalScoreCreate {
	_c.mutation.SetScore7d(v)
	return _c
}

// SetNillableScore7d sets the "score_7d" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableScore7d(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetScore7d(*v)
	}
	return _c
}

// SetVelocity7d sets the "velocity_7d" field.
func (_c *SignalScoreCreate) SetVelocity7d(v float64) *SignalScoreCreate {
	_c.mutation.SetVelocity7d(v)
	return _c
}

// SetNillableVelocity7d sets the "velocity_7d" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableVelocity7d(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetVelocity7d(*v)
	}
	return _c
}

// SetMentions7d sets the "mentions_7d" field.
func (_c *SignalScoreCreate) SetMentions7d(v int) *SignalScoreCreate {
	_c.mutation.SetMentions7d(v)
	return _c
}

// SetNillableMentions7d sets the "mentions_7d" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableMentions7d(v *int) *SignalScoreCreate {
	if v != nil {
		_c.SetMentions7d(*v)
	}
	return _c
}

// SetRecency7d sets the "recency_7d" field.
func (_c *SignalScoreCreate) SetRecency7d(v float64) *SignalScoreCreate {
	_c.mutation.SetRecency7d(v)
	return _c
}

// SetNillableRecency7d sets the "recency_7d" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableRecency7d(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetRecency7d(*v)
	}
	return _c
}

// SetScore30d sets the "score_30d" field.
func (_c *SignalScoreCreate) SetScore30d(v float64) *SignalScoreCreate {
	_c.mutation.SetScore30d(v)
	return _c
}

// SetNillableScore30d sets the "score_30d" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableScore30d(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetScore30d(*v)
	}
	return _c
}

// SetVelocity30d sets the "velocity_30d" field.
func (_c *SignalScoreCreate) SetVelocity30d(v float64) *SignalScoreCreate {
	_c.mutation.SetVelocity30d(v)
	return _c
}

// SetNillableVelocity30d sets the "velocity_30d" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableVelocity30d(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetVelocity30d(*v)
	}
	return _c
}

// SetMentions30d sets the "mentions_30d" field.
func (_c *SignalScoreCreate) SetMentions30d(v int) *SignalScoreCreate {
	_c.mutation.SetMentions30d(v)
	return _c
}

// SetNillableMentions30d sets the "mentions_30d" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableMentions30d(v *int) *SignalScoreCreate {
	if v != nil {
		_c.SetMentions30d(*v)
	}
	return _c
}

// SetRecency30d sets the "recency_30d" field.
func (_c *SignalScoreCreate) SetRecency30d(v float64) *SignalScoreCreate {
	_c.mutation.SetRecency30d(v)
	return _c
}

// SetNillableRecency30d sets the "recency_30d" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableRecency30d(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetRecency30d(*v)
	}
	return _c
}

// SetSentimentAvg sets the "sentiment_avg" field.
func (_c *SignalScoreCreate) SetSentimentAvg(v float64) *SignalScoreCreate {
	_c.mutation.SetSentimentAvg(v)
	return _c
}

// SetNillableSentimentAvg sets the "sentiment_avg" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableSentimentAvg(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetSentimentAvg(*v)
	}
	return _c
}

// SetSentimentMin sets the "sentiment_min" field.
func (_c *SignalScoreCreate) SetSentimentMin(v float64) *SignalScoreCreate {
	_c.mutation.SetSentimentMin(v)
	return _c
}

// SetNillableSentimentMin sets the "sentiment_min" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableSentimentMin(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetSentimentMin(*v)
	}
	return _c
}

// SetSentimentMax sets the "sentiment_max" field.
func (_c *SignalScoreCreate) SetSentimentMax(v float64) *SignalScoreCreate {
	_c.mutation.SetSentimentMax(v)
	return _c
}

// SetNillableSentimentMax sets the "sentiment_max" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableSentimentMax(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetSentimentMax(*v)
	}
	return _c
}

// SetSentimentDivergence sets the "sentiment_divergence" field.
func (_c *SignalScoreCreate) SetSentimentDivergence(v float64) *SignalScoreCreate {
	_c.mutation.SetSentimentDivergence(v)
	return _c
}

// SetNillableSentimentDivergence sets the "sentiment_divergence" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableSentimentDivergence(v *float64) *SignalScoreCreate {
	if v != nil {
		_c.SetSentimentDivergence(*v)
	}
	return _c
}

// SetSourceCount sets the "source_count" field.
func (_c *SignalScoreCreate) SetSourceCount(v int) *SignalScoreCreate {
	_c.mutation.SetSourceCount(v)
	return _c
}

// SetNillableSourceCount sets the "source_count" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableSourceCount(v *int) *SignalScoreCreate {
	if v != nil {
		_c.SetSourceCount(*v)
	}
	return _c
}

// SetNarrativeIds sets the "narrative_ids" field.
func (_c *SignalScoreCreate) SetNarrativeIds(v []string) *SignalScoreCreate {
	_c.mutation.SetNarrativeIds(v)
	return _c
}

// SetIsEmerging sets the "is_emerging" field.
func (_c *SignalScoreCreate) SetIsEmerging(v bool) *SignalScoreCreate {
	_c.mutation.SetIsEmerging(v)
	return _c
}

// SetNillableIsEmerging sets the "is_emerging" field if the given value is not nil.
func (_c *SignalScoreCreate) SetNillableIsEmerging(v *bool) *SignalScoreCreate {
	if v != nil {
		_c.SetIsEmerging(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SignalScoreCreate) SetID(v string) *SignalScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SignalScoreMutation object of the builder.
func (_c *SignalScoreCreate) Mutation() *SignalScoreMutation {
	return _c.mutation
}

// Save creates the SignalScore in the database.
func (_c *SignalScoreCreate) Save(ctx context.Context) (*SignalScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SignalScoreCreate) SaveX(ctx context.Context) *SignalScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignalScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignalScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SignalScoreCreate) defaults() {
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := signalscore.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := signalscore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Score24h(); !ok {
		v := signalscore.DefaultScore24h
		_c.mutation.SetScore24h(v)
	}
	if _, ok := _c.mutation.Velocity24h(); !ok {
		v := signalscore.DefaultVelocity24h
		_c.mutation.SetVelocity24h(v)
	}
	if _, ok := _c.mutation.Mentions24h(); !ok {
		v := signalscore.DefaultMentions24h
		_c.mutation.SetMentions24h(v)
	}
	if _, ok := _c.mutation.Recency24h(); !ok {
		v := signalscore.DefaultRecency24h
		_c.mutation.SetRecency24h(v)
	}
	if _, ok := _c.mutation.Score7d(); !ok {
		v := signalscore.DefaultScore7d
		_c.mutation.SetScore7d(v)
	}
	if _, ok := _c.mutation.Velocity7d(); !ok {
		v := signalscore.DefaultVelocity7d
		_c.mutation.SetVelocity7d(v)
	}
	if _, ok := _c.mutation.Mentions7d(); !ok {
		v := signalscore.DefaultMentions7d
		_c.mutation.SetMentions7d(v)
	}
	if _, ok := _c.mutation.Recency7d(); !ok {
		v := signalscore.DefaultRecency7d
		_c.mutation.SetRecency7d(v)
	}
	if _, ok := _c.mutation.Score30d(); !ok {
		v := signalscore.DefaultScore30d
		_c.mutation.SetScore30d(v)
	}
	if _, ok := _c.mutation.Velocity30d(); !ok {
		v := signalscore.DefaultVelocity30d
		_c.mutation.SetVelocity30d(v)
	}
	if _, ok := _c.mutation.Mentions30d(); !ok {
		v := signalscore.DefaultMentions30d
		_c.mutation.SetMentions30d(v)
	}
	if _, ok := _c.mutation.Recency30d(); !ok {
		v := signalscore.DefaultRecency30d
		_c.mutation.SetRecency30d(v)
	}
	if _, ok := _c.mutation.SentimentAvg(); !ok {
		v := signalscore.DefaultSentimentAvg
		_c.mutation.SetSentimentAvg(v)
	}
	if _, ok := _c.mutation.SentimentMin(); !ok {
		v := signalscore.DefaultSentimentMin
		_c.mutation.SetSentimentMin(v)
	}
	if _, ok := _c.mutation.SentimentMax(); !ok {
		v := signalscore.DefaultSentimentMax
		_c.mutation.SetSentimentMax(v)
	}
	if _, ok := _c.mutation.SentimentDivergence(); !ok {
		v := signalscore.DefaultSentimentDivergence
		_c.mutation.SetSentimentDivergence(v)
	}
	if _, ok := _c.mutation.SourceCount(); !ok {
		v := signalscore.DefaultSourceCount
		_c.mutation.SetSourceCount(v)
	}
	if _, ok := _c.mutation.IsEmerging(); !ok {
		v := signalscore.DefaultIsEmerging
		_c.mutation.SetIsEmerging(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SignalScoreCreate) check() error {
	if _, ok := _c.mutation.Entity(); !ok {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required field "SignalScore.entity"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "SignalScore.entity_type"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "SignalScore.first_seen"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SignalScore.updated_at"`)}
	}
	if _, ok := _c.mutation.Score24h(); !ok {
		return &ValidationError{Name: "score_24h", err: errors.New(`ent: missing required field "SignalScore.score_24h"`)}
	}
	if _, ok := _c.mutation.Velocity24h(); !ok {
		return &ValidationError{Name: "velocity_24h", err: errors.New(`ent: missing required field "SignalScore.velocity_24h"`)}
	}
	if _, ok := _c.mutation.Mentions24h(); !ok {
		return &ValidationError{Name: "mentions_24h", err: errors.New(`ent: missing required field "SignalScore.mentions_24h"`)}
	}
	if _, ok := _c.mutation.Recency24h(); !ok {
		return &ValidationError{Name: "recency_24h", err: errors.New(`ent: missing required field "SignalScore.recency_24h"`)}
	}
	if _, ok := _c.mutation.Score7d(); !ok {
		return &ValidationError{Name: "score_7d", err: errors.New(`ent: missing required field "SignalScore.score_7d"`)}
	}
	if _, ok := _c.mutation.Velocity7d(); !ok {
		return &ValidationError{Name: "velocity_7d", err: errors.New(`ent: missing required field "SignalScore.velocity_7d"`)}
	}
	if _, ok := _c.mutation.Mentions7d(); !ok {
		return &ValidationError{Name: "mentions_7d", err: errors.New(`ent: missing required field "SignalScore.mentions_7d"`)}
	}
	if _, ok := _c.mutation.Recency7d(); !ok {
		return &ValidationError{Name: "recency_7d", err: errors.New(`ent: missing required field "SignalScore.recency_7d"`)}
	}
	if _, ok := _c.mutation.Score30d(); !ok {
		return &ValidationError{Name: "score_30d", err: errors.New(`ent: missing required field "SignalScore.score_30d"`)}
	}
	if _, ok := _c.mutation.Velocity30d(); !ok {
		return &ValidationError{Name: "velocity_30d", err: errors.New(`ent: missing required field "SignalScore.velocity_30d"`)}
	}
	if _, ok := _c.mutation.Mentions30d(); !ok {
		return &ValidationError{Name: "mentions_30d", err: errors.New(`ent: missing required field "SignalScore.mentions_30d"`)}
	}
	if _, ok := _c.mutation.Recency30d(); !ok {
		return &ValidationError{Name: "recency_30d", err: errors.New(`ent: missing required field "SignalScore.recency_30d"`)}
	}
	if _, ok := _c.mutation.SentimentAvg(); !ok {
		return &ValidationError{Name: "sentiment_avg", err: errors.New(`ent: missing required field "SignalScore.sentiment_avg"`)}
	}
	if _, ok := _c.mutation.SentimentMin(); !ok {
		return &ValidationError{Name: "sentiment_min", err: errors.New(`ent: missing required field "SignalScore.sentiment_min"`)}
	}
	if _, ok := _c.mutation.SentimentMax(); !ok {
		return &ValidationError{Name: "sentiment_max", err: errors.New(`ent: missing required field "SignalScore.sentiment_max"`)}
	}
	if _, ok := _c.mutation.SentimentDivergence(); !ok {
		return &ValidationError{Name: "sentiment_divergence", err: errors.New(`ent: missing required field "SignalScore.sentiment_divergence"`)}
	}
	if _, ok := _c.mutation.SourceCount(); !ok {
		return &ValidationError{Name: "source_count", err: errors.New(`ent: missing required field "SignalScore.source_count"`)}
	}
	if _, ok := _c.mutation.IsEmerging(); !ok {
		return &ValidationError{Name: "is_emerging", err: errors.New(`ent: missing required field "SignalScore.is_emerging"`)}
	}
	return nil
}

func (_c *SignalScoreCreate) sqlSave(ctx context.Context) (*SignalScore, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SignalScore.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SignalScoreCreate) createSpec() (*SignalScore, *sqlgraph.CreateSpec) {
	var (
		_node = &SignalScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(signalscore.Table, sqlgraph.NewFieldSpec(signalscore.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Entity(); ok {
		_spec.SetField(signalscore.FieldEntity, field.TypeString, value)
		_node.Entity = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(signalscore.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(signalscore.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(signalscore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Score24h(); ok {
		_spec.SetField(signalscore.FieldScore24h, field.TypeFloat64, value)
		_node.Score24h = value
	}
	if value, ok := _c.mutation.Velocity24h(); ok {
		_spec.SetField(signalscore.FieldVelocity24h, field.TypeFloat64, value)
		_node.Velocity24h = value
	}
	if value, ok := _c.mutation.Mentions24h(); ok {
		_spec.SetField(signalscore.FieldMentions24h, field.TypeInt, value)
		_node.Mentions24h = value
	}
	if value, ok := _c.mutation.Recency24h(); ok {
		_spec.SetField(signalscore.FieldRecency24h, field.TypeFloat64, value)
		_node.Recency24h = value
	}
	if value, ok := _c.mutation.Score7d(); ok {
		_spec.SetField(signalscore.FieldScore7d, field.TypeFloat64, value)
		_node.Score7d = value
	}
	if value, ok := _c.mutation.Velocity7d(); ok {
		_spec.SetField(signalscore.FieldVelocity7d, field.TypeFloat64, value)
		_node.Velocity7d = value
	}
	if value, ok := _c.mutation.Mentions7d(); ok {
		_spec.SetField(signalscore.FieldMentions7d, field.TypeInt, value)
		_node.Mentions7d = value
	}
	if value, ok := _c.mutation.Recency7d(); ok {
		_spec.SetField(signalscore.FieldRecency7d, field.TypeFloat64, value)
		_node.Recency7d = value
	}
	if value, ok := _c.mutation.Score30d(); ok {
		_spec.SetField(signalscore.FieldScore30d, field.TypeFloat64, value)
		_node.Score30d = value
	}
	if value, ok := _c.mutation.Velocity30d(); ok {
		_spec.SetField(signalscore.FieldVelocity30d, field.TypeFloat64, value)
		_node.Velocity30d = value
	}
	if value, ok := _c.mutation.Mentions30d(); ok {
		_spec.SetField(signalscore.FieldMentions30d, field.TypeInt, value)
		_node.Mentions30d = value
	}
	if value, ok := _c.mutation.Recency30d(); ok {
		_spec.SetField(signalscore.FieldRecency30d, field.TypeFloat64, value)
		_node.Recency30d = value
	}
	if value, ok := _c.mutation.SentimentAvg(); ok {
		_spec.SetField(signalscore.FieldSentimentAvg, field.TypeFloat64, value)
		_node.SentimentAvg = value
	}
	if value, ok := _c.mutation.SentimentMin(); ok {
		_spec.SetField(signalscore.FieldSentimentMin, field.TypeFloat64, value)
		_node.SentimentMin = value
	}
	if value, ok := _c.mutation.SentimentMax(); ok {
		_spec.SetField(signalscore.FieldSentimentMax, field.TypeFloat64, value)
		_node.SentimentMax = value
	}
	if value, ok := _c.mutation.SentimentDivergence(); ok {
		_spec.SetField(signalscore.FieldSentimentDivergence, field.TypeFloat64, value)
		_node.SentimentDivergence = value
	}
	if value, ok := _c.mutation.SourceCount(); ok {
		_spec.SetField(signalscore.FieldSourceCount, field.TypeInt, value)
		_node.SourceCount = value
	}
	if value, ok := _c.mutation.NarrativeIds(); ok {
		_spec.SetField(signalscore.FieldNarrativeIds, field.TypeJSON, value)
		_node.NarrativeIds = value
	}
	if value, ok := _c.mutation.IsEmerging(); ok {
		_spec.SetField(signalscore.FieldIsEmerging, field.TypeBool, value)
		_node.IsEmerging = value
	}
	return _node, _spec
}

// SignalScoreCreateBulk is the builder for creating many SignalScore entities in bulk.
type SignalScoreCreateBulk struct {
	config
	err      error
	builders []*SignalScoreCreate
}

// Save creates the SignalScore entities in the database.
func (_c *SignalScoreCreateBulk) Save(ctx context.Context) ([]*SignalScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SignalScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SignalScoreMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SignalScoreCreateBulk) SaveX(ctx context.Context) []*SignalScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignalScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignalScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
