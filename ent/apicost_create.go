// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/apicost"
)

// APICostCreate is the builder for creating a APICost entity.
type APICostCreate struct {
	config
	mutation *APICostMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *APICostCreate) SetTimestamp(v time.Time) *APICostCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *APICostCreate) SetNillableTimestamp(v *time.Time) *APICostCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetOperation sets the "operation" field.
func (_c *APICostCreate) SetOperation(v string) *APICostCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *APICostCreate) SetModel(v string) *APICostCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *APICostCreate) SetInputTokens(v int) *APICostCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *APICostCreate) SetNillableInputTokens(v *int) *APICostCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *APICostCreate) SetOutputTokens(v int) *APICostCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *APICostCreate) SetNillableOutputTokens(v *int) *APICostCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *APICostCreate) SetCostUsd(v float64) *APICostCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *APICostCreate) SetNillableCostUsd(v *float64) *APICostCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetCached sets the "cached" field.
func (_c *APICostCreate) SetCached(v bool) *APICostCreate {
	_c.mutation.SetCached(v)
	return _c
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_c *APICostCreate) SetNillableCached(v *bool) *APICostCreate {
	if v != nil {
		_c.SetCached(*v)
	}
	return _c
}

// SetCacheKey sets the "cache_key" field.
func (_c *APICostCreate) SetCacheKey(v string) *APICostCreate {
	_c.mutation.SetCacheKey(v)
	return _c
}

// SetNillableCacheKey sets the "cache_key" field if the given value is not nil.
func (_c *APICostCreate) SetNillableCacheKey(v *string) *APICostCreate {
	if v != nil {
		_c.SetCacheKey(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *APICostCreate) SetID(v string) *APICostCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the APICostMutation object of the builder.
func (_c *APICostCreate) Mutation() *APICostMutation {
	return _c.mutation
}

// Save creates the APICost in the database.
func (_c *APICostCreate) Save(ctx context.Context) (*APICost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *APICostCreate) SaveX(ctx context.Context) *APICost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APICostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APICostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *APICostCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := apicost.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := apicost.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := apicost.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := apicost.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.Cached(); !ok {
		v := apicost.DefaultCached
		_c.mutation.SetCached(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *APICostCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "APICost.timestamp"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "APICost.operation"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "APICost.model"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "APICost.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "APICost.output_tokens"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "APICost.cost_usd"`)}
	}
	if _, ok := _c.mutation.Cached(); !ok {
		return &ValidationError{Name: "cached", err: errors.New(`ent: missing required field "APICost.cached"`)}
	}
	return nil
}

func (_c *APICostCreate) sqlSave(ctx context.Context) (*APICost, error) {
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
			return nil, fmt.Errorf("unexpected APICost.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *APICostCreate) createSpec() (*APICost, *sqlgraph.CreateSpec) {
	var (
		_node = &APICost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apicost.Table, sqlgraph.NewFieldSpec(apicost.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(apicost.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(apicost.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(apicost.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(apicost.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(apicost.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(apicost.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.Cached(); ok {
		_spec.SetField(apicost.FieldCached, field.TypeBool, value)
		_node.Cached = value
	}
	if value, ok := _c.mutation.CacheKey(); ok {
		_spec.SetField(apicost.FieldCacheKey, field.TypeString, value)
		_node.CacheKey = &value
	}
	return _node, _spec
}

// APICostCreateBulk is the builder for creating many APICost entities in bulk.
type APICostCreateBulk struct {
	config
	err      error
	builders []*APICostCreate
}

// Save creates the APICost entities in the database.
func (_c *APICostCreateBulk) Save(ctx context.Context) ([]*APICost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*APICost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*APICostMutation)
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
func (_c *APICostCreateBulk) SaveX(ctx context.Context) []*APICost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APICostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APICostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
