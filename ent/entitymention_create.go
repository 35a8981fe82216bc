// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/entitymention"
)

// EntityMentionCreate is the builder for creating a EntityMention entity.
type EntityMentionCreate struct {
	config
	mutation *EntityMentionMutation
	hooks    []Hook
}

// SetArticleID sets the "article_id" field.
func (_c *EntityMentionCreate) SetArticleID(v string) *EntityMentionCreate {
	_c.mutation.SetArticleID(v)
	return _c
}

// SetEntity sets the "entity" field.
func (_c *EntityMentionCreate) SetEntity(v string) *EntityMentionCreate {
	_c.mutation.SetEntity(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntityMentionCreate) SetEntityType(v entitymention.EntityType) *EntityMentionCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *EntityMentionCreate) SetIsPrimary(v bool) *EntityMentionCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetSentiment sets the "sentiment" field.
func (_c *EntityMentionCreate) SetSentiment(v entitymention.Sentiment) *EntityMentionCreate {
	_c.mutation.SetSentiment(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EntityMentionCreate) SetConfidence(v float64) *EntityMentionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *EntityMentionCreate) SetSource(v string) *EntityMentionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityMentionCreate) SetCreatedAt(v time.Time) *EntityMentionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EntityMentionCreate) SetID(v string) *EntityMentionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetArticle sets the "article" edge to the Article entity.
func (_c *EntityMentionCreate) SetArticle(v *Article) *EntityMentionCreate {
	return _c.SetArticleID(v.ID)
}

// Mutation returns the EntityMentionMutation object of the builder.
func (_c *EntityMentionCreate) Mutation() *EntityMentionMutation {
	return _c.mutation
}

// Save creates the EntityMention in the database.
func (_c *EntityMentionCreate) Save(ctx context.Context) (*EntityMention, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityMentionCreate) SaveX(ctx context.Context) *EntityMention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityMentionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityMentionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityMentionCreate) check() error {
	if _, ok := _c.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "EntityMention.article_id"`)}
	}
	if _, ok := _c.mutation.Entity(); !ok {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required field "EntityMention.entity"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "EntityMention.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := entitymention.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntityMention.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "EntityMention.is_primary"`)}
	}
	if _, ok := _c.mutation.Sentiment(); !ok {
		return &ValidationError{Name: "sentiment", err: errors.New(`ent: missing required field "EntityMention.sentiment"`)}
	}
	if v, ok := _c.mutation.Sentiment(); ok {
		if err := entitymention.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "EntityMention.sentiment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "EntityMention.confidence"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "EntityMention.source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntityMention.created_at"`)}
	}
	if len(_c.mutation.ArticleIDs()) == 0 {
		return &ValidationError{Name: "article", err: errors.New(`ent: missing required edge "EntityMention.article"`)}
	}
	return nil
}

func (_c *EntityMentionCreate) sqlSave(ctx context.Context) (*EntityMention, error) {
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
			return nil, fmt.Errorf("unexpected EntityMention.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityMentionCreate) createSpec() (*EntityMention, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityMention{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitymention.Table, sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Entity(); ok {
		_spec.SetField(entitymention.FieldEntity, field.TypeString, value)
		_node.Entity = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entitymention.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(entitymention.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	if value, ok := _c.mutation.Sentiment(); ok {
		_spec.SetField(entitymention.FieldSentiment, field.TypeEnum, value)
		_node.Sentiment = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(entitymention.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(entitymention.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entitymention.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ArticleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitymention.ArticleTable,
			Columns: []string{entitymention.ArticleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ArticleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EntityMentionCreateBulk is the builder for creating many EntityMention entities in bulk.
type EntityMentionCreateBulk struct {
	config
	err      error
	builders []*EntityMentionCreate
}

// Save creates the EntityMention entities in the database.
func (_c *EntityMentionCreateBulk) Save(ctx context.Context) ([]*EntityMention, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityMention, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityMentionMutation)
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
func (_c *EntityMentionCreateBulk) SaveX(ctx context.Context) []*EntityMention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityMentionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityMentionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
