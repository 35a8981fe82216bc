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

// ArticleCreate is the builder for creating a Article entity.
type ArticleCreate struct {
	config
	mutation *ArticleMutation
	hooks    []Hook
}

// SetURL sets the "url" field.
func (_c *ArticleCreate) SetURL(v string) *ArticleCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ArticleCreate) SetTitle(v string) *ArticleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ArticleCreate) SetText(v string) *ArticleCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ArticleCreate) SetSource(v string) *ArticleCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *ArticleCreate) SetPublishedAt(v time.Time) *ArticleCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArticleCreate) SetCreatedAt(v time.Time) *ArticleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableCreatedAt(v *time.Time) *ArticleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRelevanceTier sets the "relevance_tier" field.
func (_c *ArticleCreate) SetRelevanceTier(v int) *ArticleCreate {
	_c.mutation.SetRelevanceTier(v)
	return _c
}

// SetNillableRelevanceTier sets the "relevance_tier" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableRelevanceTier(v *int) *ArticleCreate {
	if v != nil {
		_c.SetRelevanceTier(*v)
	}
	return _c
}

// SetRelevanceReason sets the "relevance_reason" field.
func (_c *ArticleCreate) SetRelevanceReason(v string) *ArticleCreate {
	_c.mutation.SetRelevanceReason(v)
	return _c
}

// SetNillableRelevanceReason sets the "relevance_reason" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableRelevanceReason(v *string) *ArticleCreate {
	if v != nil {
		_c.SetRelevanceReason(*v)
	}
	return _c
}

// SetSentimentLabel sets the "sentiment_label" field.
func (_c *ArticleCreate) SetSentimentLabel(v article.SentimentLabel) *ArticleCreate {
	_c.mutation.SetSentimentLabel(v)
	return _c
}

// SetNillableSentimentLabel sets the "sentiment_label" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableSentimentLabel(v *article.SentimentLabel) *ArticleCreate {
	if v != nil {
		_c.SetSentimentLabel(*v)
	}
	return _c
}

// SetNucleusEntity sets the "nucleus_entity" field.
func (_c *ArticleCreate) SetNucleusEntity(v string) *ArticleCreate {
	_c.mutation.SetNucleusEntity(v)
	return _c
}

// SetNillableNucleusEntity sets the "nucleus_entity" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableNucleusEntity(v *string) *ArticleCreate {
	if v != nil {
		_c.SetNucleusEntity(*v)
	}
	return _c
}

// SetActors sets the "actors" field.
func (_c *ArticleCreate) SetActors(v []string) *ArticleCreate {
	_c.mutation.SetActors(v)
	return _c
}

// SetActorSalience sets the "actor_salience" field.
func (_c *ArticleCreate) SetActorSalience(v map[string]int) *ArticleCreate {
	_c.mutation.SetActorSalience(v)
	return _c
}

// SetKeyActions sets the "key_actions" field.
func (_c *ArticleCreate) SetKeyActions(v []string) *ArticleCreate {
	_c.mutation.SetKeyActions(v)
	return _c
}

// SetNarrativeSummary sets the "narrative_summary" field.
func (_c *ArticleCreate) SetNarrativeSummary(v string) *ArticleCreate {
	_c.mutation.SetNarrativeSummary(v)
	return _c
}

// SetNillableNarrativeSummary sets the "narrative_summary" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableNarrativeSummary(v *string) *ArticleCreate {
	if v != nil {
		_c.SetNarrativeSummary(*v)
	}
	return _c
}

// SetNarrativeHash sets the "narrative_hash" field.
func (_c *ArticleCreate) SetNarrativeHash(v string) *ArticleCreate {
	_c.mutation.SetNarrativeHash(v)
	return _c
}

// SetNillableNarrativeHash sets the "narrative_hash" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableNarrativeHash(v *string) *ArticleCreate {
	if v != nil {
		_c.SetNarrativeHash(*v)
	}
	return _c
}

// SetNarrativeID sets the "narrative_id" field.
func (_c *ArticleCreate) SetNarrativeID(v string) *ArticleCreate {
	_c.mutation.SetNarrativeID(v)
	return _c
}

// SetNillableNarrativeID sets the "narrative_id" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableNarrativeID(v *string) *ArticleCreate {
	if v != nil {
		_c.SetNarrativeID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArticleCreate) SetID(v string) *ArticleCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMentionIDs adds the "mentions" edge to the EntityMention entity by IDs.
func (_c *ArticleCreate) AddMentionIDs(ids ...string) *ArticleCreate {
	_c.mutation.AddMentionIDs(ids...)
	return _c
}

// AddMentions adds the "mentions" edges to the EntityMention entity.
func (_c *ArticleCreate) AddMentions(v ...*EntityMention) *ArticleCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMentionIDs(ids...)
}

// Mutation returns the ArticleMutation object of the builder.
func (_c *ArticleCreate) Mutation() *ArticleMutation {
	return _c.mutation
}

// Save creates the Article in the database.
func (_c *ArticleCreate) Save(ctx context.Context) (*Article, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArticleCreate) SaveX(ctx context.Context) *Article {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArticleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := article.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArticleCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Article.url"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Article.title"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Article.text"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Article.source"`)}
	}
	if _, ok := _c.mutation.PublishedAt(); !ok {
		return &ValidationError{Name: "published_at", err: errors.New(`ent: missing required field "Article.published_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Article.created_at"`)}
	}
	if v, ok := _c.mutation.SentimentLabel(); ok {
		if err := article.SentimentLabelValidator(v); err != nil {
			return &ValidationError{Name: "sentiment_label", err: fmt.Errorf(`ent: validator failed for field "Article.sentiment_label": %w`, err)}
		}
	}
	return nil
}

func (_c *ArticleCreate) sqlSave(ctx context.Context) (*Article, error) {
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
			return nil, fmt.Errorf("unexpected Article.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArticleCreate) createSpec() (*Article, *sqlgraph.CreateSpec) {
	var (
		_node = &Article{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(article.Table, sqlgraph.NewFieldSpec(article.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(article.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(article.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(article.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(article.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(article.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(article.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RelevanceTier(); ok {
		_spec.SetField(article.FieldRelevanceTier, field.TypeInt, value)
		_node.RelevanceTier = &value
	}
	if value, ok := _c.mutation.RelevanceReason(); ok {
		_spec.SetField(article.FieldRelevanceReason, field.TypeString, value)
		_node.RelevanceReason = &value
	}
	if value, ok := _c.mutation.SentimentLabel(); ok {
		_spec.SetField(article.FieldSentimentLabel, field.TypeEnum, value)
		_node.SentimentLabel = value
	}
	if value, ok := _c.mutation.NucleusEntity(); ok {
		_spec.SetField(article.FieldNucleusEntity, field.TypeString, value)
		_node.NucleusEntity = &value
	}
	if value, ok := _c.mutation.Actors(); ok {
		_spec.SetField(article.FieldActors, field.TypeJSON, value)
		_node.Actors = value
	}
	if value, ok := _c.mutation.ActorSalience(); ok {
		_spec.SetField(article.FieldActorSalience, field.TypeJSON, value)
		_node.ActorSalience = value
	}
	if value, ok := _c.mutation.KeyActions(); ok {
		_spec.SetField(article.FieldKeyActions, field.TypeJSON, value)
		_node.KeyActions = value
	}
	if value, ok := _c.mutation.NarrativeSummary(); ok {
		_spec.SetField(article.FieldNarrativeSummary, field.TypeString, value)
		_node.NarrativeSummary = &value
	}
	if value, ok := _c.mutation.NarrativeHash(); ok {
		_spec.SetField(article.FieldNarrativeHash, field.TypeString, value)
		_node.NarrativeHash = &value
	}
	if value, ok := _c.mutation.NarrativeID(); ok {
		_spec.SetField(article.FieldNarrativeID, field.TypeString, value)
		_node.NarrativeID = &value
	}
	if nodes := _c.mutation.MentionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   article.MentionsTable,
			Columns: []string{article.MentionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ArticleCreateBulk is the builder for creating many Article entities in bulk.
type ArticleCreateBulk struct {
	config
	err      error
	builders []*ArticleCreate
}

// Save creates the Article entities in the database.
func (_c *ArticleCreateBulk) Save(ctx context.Context) ([]*Article, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Article, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArticleMutation)
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
func (_c *ArticleCreateBulk) SaveX(ctx context.Context) []*Article {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
