// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// NarrativeCreate is the builder for creating a Narrative entity.
type NarrativeCreate struct {
	config
	mutation *NarrativeMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *NarrativeCreate) SetTitle(v string) *NarrativeCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *NarrativeCreate) SetSummary(v string) *NarrativeCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableSummary(v *string) *NarrativeCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetTheme sets the "theme" field.
func (_c *NarrativeCreate) SetTheme(v string) *NarrativeCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableTheme(v *string) *NarrativeCreate {
	if v != nil {
		_c.SetTheme(*v)
	}
	return _c
}

// SetNucleusEntity sets the "nucleus_entity" field.
func (_c *NarrativeCreate) SetNucleusEntity(v string) *NarrativeCreate {
	_c.mutation.SetNucleusEntity(v)
	return _c
}

// SetEntities sets the "entities" field.
func (_c *NarrativeCreate) SetEntities(v []string) *NarrativeCreate {
	_c.mutation.SetEntities(v)
	return _c
}

// SetArticleIds sets the "article_ids" field.
func (_c *NarrativeCreate) SetArticleIds(v []string) *NarrativeCreate {
	_c.mutation.SetArticleIds(v)
	return _c
}

// SetArticleCount sets the "article_count" field.
func (_c *NarrativeCreate) SetArticleCount(v int) *NarrativeCreate {
	_c.mutation.SetArticleCount(v)
	return _c
}

// SetNillableArticleCount sets the "article_count" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableArticleCount(v *int) *NarrativeCreate {
	if v != nil {
		_c.SetArticleCount(*v)
	}
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *NarrativeCreate) SetFingerprint(v models.Fingerprint) *NarrativeCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetLifecycleState sets the "lifecycle_state" field.
func (_c *NarrativeCreate) SetLifecycleState(v narrative.LifecycleState) *NarrativeCreate {
	_c.mutation.SetLifecycleState(v)
	return _c
}

// SetNillableLifecycleState sets the "lifecycle_state" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableLifecycleState(v *narrative.LifecycleState) *NarrativeCreate {
	if v != nil {
		_c.SetLifecycleState(*v)
	}
	return _c
}

// SetLifecycleHistory sets the "lifecycle_history" field.
func (_c *NarrativeCreate) SetLifecycleHistory(v []models.LifecycleEntry) *NarrativeCreate {
	_c.mutation.SetLifecycleHistory(v)
	return _c
}

// SetMentionVelocity sets the "mention_velocity" field.
func (_c *NarrativeCreate) SetMentionVelocity(v float64) *NarrativeCreate {
	_c.mutation.SetMentionVelocity(v)
	return _c
}

// SetNillableMentionVelocity sets the "mention_velocity" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableMentionVelocity(v *float64) *NarrativeCreate {
	if v != nil {
		_c.SetMentionVelocity(*v)
	}
	return _c
}

// SetMomentum sets the "momentum" field.
func (_c *NarrativeCreate) SetMomentum(v narrative.Momentum) *NarrativeCreate {
	_c.mutation.SetMomentum(v)
	return _c
}

// SetNillableMomentum sets the "momentum" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableMomentum(v *narrative.Momentum) *NarrativeCreate {
	if v != nil {
		_c.SetMomentum(*v)
	}
	return _c
}

// SetRecencyScore sets the "recency_score" field.
func (_c *NarrativeCreate) SetRecencyScore(v float64) *NarrativeCreate {
	_c.mutation.SetRecencyScore(v)
	return _c
}

// SetNillableRecencyScore sets the "recency_score" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableRecencyScore(v *float64) *NarrativeCreate {
	if v != nil {
		_c.SetRecencyScore(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *NarrativeCreate) SetFirstSeen(v time.Time) *NarrativeCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableFirstSeen(v *time.Time) *NarrativeCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *NarrativeCreate) SetLastUpdated(v time.Time) *NarrativeCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableLastUpdated(v *time.Time) *NarrativeCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetDaysActive sets the "days_active" field.
func (_c *NarrativeCreate) SetDaysActive(v int) *NarrativeCreate {
	_c.mutation.SetDaysActive(v)
	return _c
}

// SetNillableDaysActive sets the "days_active" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableDaysActive(v *int) *NarrativeCreate {
	if v != nil {
		_c.SetDaysActive(*v)
	}
	return _c
}

// SetReawakeningCount sets the "reawakening_count" field.
func (_c *NarrativeCreate) SetReawakeningCount(v int) *NarrativeCreate {
	_c.mutation.SetReawakeningCount(v)
	return _c
}

// SetNillableReawakeningCount sets the "reawakening_count" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableReawakeningCount(v *int) *NarrativeCreate {
	if v != nil {
		_c.SetReawakeningCount(*v)
	}
	return _c
}

// SetReawakenedFrom sets the "reawakened_from" field.
func (_c *NarrativeCreate) SetReawakenedFrom(v time.Time) *NarrativeCreate {
	_c.mutation.SetReawakenedFrom(v)
	return _c
}

// SetNillableReawakenedFrom sets the "reawakened_from" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableReawakenedFrom(v *time.Time) *NarrativeCreate {
	if v != nil {
		_c.SetReawakenedFrom(*v)
	}
	return _c
}

// SetResurrectionVelocity sets the "resurrection_velocity" field.
func (_c *NarrativeCreate) SetResurrectionVelocity(v float64) *NarrativeCreate {
	_c.mutation.SetResurrectionVelocity(v)
	return _c
}

// SetNillableResurrectionVelocity sets the "resurrection_velocity" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableResurrectionVelocity(v *float64) *NarrativeCreate {
	if v != nil {
		_c.SetResurrectionVelocity(*v)
	}
	return _c
}

// SetPeakActivity sets the "peak_activity" field.
func (_c *NarrativeCreate) SetPeakActivity(v models.PeakActivity) *NarrativeCreate {
	_c.mutation.SetPeakActivity(v)
	return _c
}

// SetNillablePeakActivity sets the "peak_activity" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillablePeakActivity(v *models.PeakActivity) *NarrativeCreate {
	if v != nil {
		_c.SetPeakActivity(*v)
	}
	return _c
}

// SetMergedInto sets the "merged_into" field.
func (_c *NarrativeCreate) SetMergedInto(v string) *NarrativeCreate {
	_c.mutation.SetMergedInto(v)
	return _c
}

// SetNillableMergedInto sets the "merged_into" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableMergedInto(v *string) *NarrativeCreate {
	if v != nil {
		_c.SetMergedInto(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *NarrativeCreate) SetVersion(v int) *NarrativeCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *NarrativeCreate) SetNillableVersion(v *int) *NarrativeCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NarrativeCreate) SetID(v string) *NarrativeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the NarrativeMutation object of the builder.
func (_c *NarrativeCreate) Mutation() *NarrativeMutation {
	return _c.mutation
}

// Save creates the Narrative in the database.
func (_c *NarrativeCreate) Save(ctx context.Context) (*Narrative, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NarrativeCreate) SaveX(ctx context.Context) *Narrative {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NarrativeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NarrativeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NarrativeCreate) defaults() {
	if _, ok := _c.mutation.ArticleCount(); !ok {
		v := narrative.DefaultArticleCount
		_c.mutation.SetArticleCount(v)
	}
	if _, ok := _c.mutation.LifecycleState(); !ok {
		v := narrative.DefaultLifecycleState
		_c.mutation.SetLifecycleState(v)
	}
	if _, ok := _c.mutation.MentionVelocity(); !ok {
		v := narrative.DefaultMentionVelocity
		_c.mutation.SetMentionVelocity(v)
	}
	if _, ok := _c.mutation.Momentum(); !ok {
		v := narrative.DefaultMomentum
		_c.mutation.SetMomentum(v)
	}
	if _, ok := _c.mutation.RecencyScore(); !ok {
		v := narrative.DefaultRecencyScore
		_c.mutation.SetRecencyScore(v)
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := narrative.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := narrative.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
	if _, ok := _c.mutation.DaysActive(); !ok {
		v := narrative.DefaultDaysActive
		_c.mutation.SetDaysActive(v)
	}
	if _, ok := _c.mutation.ReawakeningCount(); !ok {
		v := narrative.DefaultReawakeningCount
		_c.mutation.SetReawakeningCount(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := narrative.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NarrativeCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Narrative.title"`)}
	}
	if _, ok := _c.mutation.NucleusEntity(); !ok {
		return &ValidationError{Name: "nucleus_entity", err: errors.New(`ent: missing required field "Narrative.nucleus_entity"`)}
	}
	if _, ok := _c.mutation.Entities(); !ok {
		return &ValidationError{Name: "entities", err: errors.New(`ent: missing required field "Narrative.entities"`)}
	}
	if _, ok := _c.mutation.ArticleIds(); !ok {
		return &ValidationError{Name: "article_ids", err: errors.New(`ent: missing required field "Narrative.article_ids"`)}
	}
	if _, ok := _c.mutation.ArticleCount(); !ok {
		return &ValidationError{Name: "article_count", err: errors.New(`ent: missing required field "Narrative.article_count"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Narrative.fingerprint"`)}
	}
	if _, ok := _c.mutation.LifecycleState(); !ok {
		return &ValidationError{Name: "lifecycle_state", err: errors.New(`ent: missing required field "Narrative.lifecycle_state"`)}
	}
	if v, ok := _c.mutation.LifecycleState(); ok {
		if err := narrative.LifecycleStateValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_state", err: fmt.Errorf(`ent: validator failed for field "Narrative.lifecycle_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LifecycleHistory(); !ok {
		return &ValidationError{Name: "lifecycle_history", err: errors.New(`ent: missing required field "Narrative.lifecycle_history"`)}
	}
	if _, ok := _c.mutation.MentionVelocity(); !ok {
		return &ValidationError{Name: "mention_velocity", err: errors.New(`ent: missing required field "Narrative.mention_velocity"`)}
	}
	if _, ok := _c.mutation.Momentum(); !ok {
		return &ValidationError{Name: "momentum", err: errors.New(`ent: missing required field "Narrative.momentum"`)}
	}
	if v, ok := _c.mutation.Momentum(); ok {
		if err := narrative.MomentumValidator(v); err != nil {
			return &ValidationError{Name: "momentum", err: fmt.Errorf(`ent: validator failed for field "Narrative.momentum": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecencyScore(); !ok {
		return &ValidationError{Name: "recency_score", err: errors.New(`ent: missing required field "Narrative.recency_score"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "Narrative.first_seen"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "Narrative.last_updated"`)}
	}
	if _, ok := _c.mutation.DaysActive(); !ok {
		return &ValidationError{Name: "days_active", err: errors.New(`ent: missing required field "Narrative.days_active"`)}
	}
	if _, ok := _c.mutation.ReawakeningCount(); !ok {
		return &ValidationError{Name: "reawakening_count", err: errors.New(`ent: missing required field "Narrative.reawakening_count"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Narrative.version"`)}
	}
	return nil
}

func (_c *NarrativeCreate) sqlSave(ctx context.Context) (*Narrative, error) {
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
			return nil, fmt.Errorf("unexpected Narrative.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NarrativeCreate) createSpec() (*Narrative, *sqlgraph.CreateSpec) {
	var (
		_node = &Narrative{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(narrative.Table, sqlgraph.NewFieldSpec(narrative.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(narrative.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(narrative.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(narrative.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.NucleusEntity(); ok {
		_spec.SetField(narrative.FieldNucleusEntity, field.TypeString, value)
		_node.NucleusEntity = value
	}
	if value, ok := _c.mutation.Entities(); ok {
		_spec.SetField(narrative.FieldEntities, field.TypeJSON, value)
		_node.Entities = value
	}
	if value, ok := _c.mutation.ArticleIds(); ok {
		_spec.SetField(narrative.FieldArticleIds, field.TypeJSON, value)
		_node.ArticleIds = value
	}
	if value, ok := _c.mutation.ArticleCount(); ok {
		_spec.SetField(narrative.FieldArticleCount, field.TypeInt, value)
		_node.ArticleCount = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(narrative.FieldFingerprint, field.TypeJSON, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.LifecycleState(); ok {
		_spec.SetField(narrative.FieldLifecycleState, field.TypeEnum, value)
		_node.LifecycleState = value
	}
	if value, ok := _c.mutation.LifecycleHistory(); ok {
		_spec.SetField(narrative.FieldLifecycleHistory, field.TypeJSON, value)
		_node.LifecycleHistory = value
	}
	if value, ok := _c.mutation.MentionVelocity(); ok {
		_spec.SetField(narrative.FieldMentionVelocity, field.TypeFloat64, value)
		_node.MentionVelocity = value
	}
	if value, ok := _c.mutation.Momentum(); ok {
		_spec.SetField(narrative.FieldMomentum, field.TypeEnum, value)
		_node.Momentum = value
	}
	if value, ok := _c.mutation.RecencyScore(); ok {
		_spec.SetField(narrative.FieldRecencyScore, field.TypeFloat64, value)
		_node.RecencyScore = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(narrative.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(narrative.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if value, ok := _c.mutation.DaysActive(); ok {
		_spec.SetField(narrative.FieldDaysActive, field.TypeInt, value)
		_node.DaysActive = value
	}
	if value, ok := _c.mutation.ReawakeningCount(); ok {
		_spec.SetField(narrative.FieldReawakeningCount, field.TypeInt, value)
		_node.ReawakeningCount = value
	}
	if value, ok := _c.mutation.ReawakenedFrom(); ok {
		_spec.SetField(narrative.FieldReawakenedFrom, field.TypeTime, value)
		_node.ReawakenedFrom = &value
	}
	if value, ok := _c.mutation.ResurrectionVelocity(); ok {
		_spec.SetField(narrative.FieldResurrectionVelocity, field.TypeFloat64, value)
		_node.ResurrectionVelocity = &value
	}
	if value, ok := _c.mutation.PeakActivity(); ok {
		_spec.SetField(narrative.FieldPeakActivity, field.TypeJSON, value)
		_node.PeakActivity = value
	}
	if value, ok := _c.mutation.MergedInto(); ok {
		_spec.SetField(narrative.FieldMergedInto, field.TypeString, value)
		_node.MergedInto = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(narrative.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	return _node, _spec
}

// NarrativeCreateBulk is the builder for creating many Narrative entities in bulk.
type NarrativeCreateBulk struct {
	config
	err      error
	builders []*NarrativeCreate
}

// Save creates the Narrative entities in the database.
func (_c *NarrativeCreateBulk) Save(ctx context.Context) ([]*Narrative, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Narrative, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NarrativeMutation)
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
func (_c *NarrativeCreateBulk) SaveX(ctx context.Context) []*Narrative {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NarrativeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NarrativeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
