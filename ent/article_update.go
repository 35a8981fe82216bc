// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/entitymention"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/predicate"
)

// ArticleUpdate is the builder for updating Article entities.
type ArticleUpdate struct {
	config
	hooks    []Hook
	mutation *ArticleMutation
}

// Where appends a list predicates to the ArticleUpdate builder.
func (_u *ArticleUpdate) Where(ps ...predicate.Article) *ArticleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRelevanceTier sets the "relevance_tier" field.
func (_u *ArticleUpdate) SetRelevanceTier(v int) *ArticleUpdate {
	_u.mutation.ResetRelevanceTier()
	_u.mutation.SetRelevanceTier(v)
	return _u
}

// SetNillableRelevanceTier sets the "relevance_tier" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableRelevanceTier(v *int) *ArticleUpdate {
	if v != nil {
		_u.SetRelevanceTier(*v)
	}
	return _u
}

// AddRelevanceTier adds value to the "relevance_tier" field.
func (_u *ArticleUpdate) AddRelevanceTier(v int) *ArticleUpdate {
	_u.mutation.AddRelevanceTier(v)
	return _u
}

// ClearRelevanceTier clears the value of the "relevance_tier" field.
func (_u *ArticleUpdate) ClearRelevanceTier() *ArticleUpdate {
	_u.mutation.ClearRelevanceTier()
	return _u
}

// SetRelevanceReason sets the "relevance_reason" field.
func (_u *ArticleUpdate) SetRelevanceReason(v string) *ArticleUpdate {
	_u.mutation.SetRelevanceReason(v)
	return _u
}

// SetNillableRelevanceReason sets the "relevance_reason" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableRelevanceReason(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetRelevanceReason(*v)
	}
	return _u
}

// ClearRelevanceReason clears the value of the "relevance_reason" field.
func (_u *ArticleUpdate) ClearRelevanceReason() *ArticleUpdate {
	_u.mutation.ClearRelevanceReason()
	return _u
}

// SetSentimentLabel sets the "sentiment_label" field.
func (_u *ArticleUpdate) SetSentimentLabel(v article.SentimentLabel) *ArticleUpdate {
	_u.mutation.SetSentimentLabel(v)
	return _u
}

// SetNillableSentimentLabel sets the "sentiment_label" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableSentimentLabel(v *article.SentimentLabel) *ArticleUpdate {
	if v != nil {
		_u.SetSentimentLabel(*v)
	}
	return _u
}

// ClearSentimentLabel clears the value of the "sentiment_label" field.
func (_u *ArticleUpdate) ClearSentimentLabel() *ArticleUpdate {
	_u.mutation.ClearSentimentLabel()
	return _u
}

// SetNucleusEntity sets the "nucleus_entity" field.
func (_u *ArticleUpdate) SetNucleusEntity(v string) *ArticleUpdate {
	_u.mutation.SetNucleusEntity(v)
	return _u
}

// SetNillableNucleusEntity sets the "nucleus_entity" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableNucleusEntity(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetNucleusEntity(*v)
	}
	return _u
}

// ClearNucleusEntity clears the value of the "nucleus_entity" field.
func (_u *ArticleUpdate) ClearNucleusEntity() *ArticleUpdate {
	_u.mutation.ClearNucleusEntity()
	return _u
}

// SetActors sets the "actors" field.
func (_u *ArticleUpdate) SetActors(v []string) *ArticleUpdate {
	_u.mutation.SetActors(v)
	return _u
}

// AppendActors appends value to the "actors" field.
func (_u *ArticleUpdate) AppendActors(v []string) *ArticleUpdate {
	_u.mutation.AppendActors(v)
	return _u
}

// ClearActors clears the value of the "actors" field.
func (_u *ArticleUpdate) ClearActors() *ArticleUpdate {
	_u.mutation.ClearActors()
	return _u
}

// SetActorSalience sets the "actor_salience" field.
func (_u *ArticleUpdate) SetActorSalience(v map[string]int) *ArticleUpdate {
	_u.mutation.SetActorSalience(v)
	return _u
}

// ClearActorSalience clears the value of the "actor_salience" field.
func (_u *ArticleUpdate) ClearActorSalience() *ArticleUpdate {
	_u.mutation.ClearActorSalience()
	return _u
}

// SetKeyActions sets the "key_actions" field.
func (_u *ArticleUpdate) SetKeyActions(v []string) *ArticleUpdate {
	_u.mutation.SetKeyActions(v)
	return _u
}

// AppendKeyActions appends value to the "key_actions" field.
func (_u *ArticleUpdate) AppendKeyActions(v []string) *ArticleUpdate {
	_u.mutation.AppendKeyActions(v)
	return _u
}

// ClearKeyActions clears the value of the "key_actions" field.
func (_u *ArticleUpdate) ClearKeyActions() *ArticleUpdate {
	_u.mutation.ClearKeyActions()
	return _u
}

// SetNarrativeSummary sets the "narrative_summary" field.
func (_u *ArticleUpdate) SetNarrativeSummary(v string) *ArticleUpdate {
	_u.mutation.SetNarrativeSummary(v)
	return _u
}

// SetNillableNarrativeSummary sets the "narrative_summary" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableNarrativeSummary(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetNarrativeSummary(*v)
	}
	return _u
}

// ClearNarrativeSummary clears the value of the "narrative_summary" field.
func (_u *ArticleUpdate) ClearNarrativeSummary() *ArticleUpdate {
	_u.mutation.ClearNarrativeSummary()
	return _u
}

// SetNarrativeHash sets the "narrative_hash" field.
func (_u *ArticleUpdate) SetNarrativeHash(v string) *ArticleUpdate {
	_u.mutation.SetNarrativeHash(v)
	return _u
}

// SetNillableNarrativeHash sets the "narrative_hash" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableNarrativeHash(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetNarrativeHash(*v)
	}
	return _u
}

// ClearNarrativeHash clears the value of the "narrative_hash" field.
func (_u *ArticleUpdate) ClearNarrativeHash() *ArticleUpdate {
	_u.mutation.ClearNarrativeHash()
	return _u
}

// SetNarrativeID sets the "narrative_id" field.
func (_u *ArticleUpdate) SetNarrativeID(v string) *ArticleUpdate {
	_u.mutation.SetNarrativeID(v)
	return _u
}

// SetNillableNarrativeID sets the "narrative_id" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableNarrativeID(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetNarrativeID(*v)
	}
	return _u
}

// ClearNarrativeID clears the value of the "narrative_id" field.
func (_u *ArticleUpdate) ClearNarrativeID() *ArticleUpdate {
	_u.mutation.ClearNarrativeID()
	return _u
}

// AddMentionIDs adds the "mentions" edge to the EntityMention entity by IDs.
func (_u *ArticleUpdate) AddMentionIDs(ids ...string) *ArticleUpdate {
	_u.mutation.AddMentionIDs(ids...)
	return _u
}

// AddMentions adds the "mentions" edges to the EntityMention entity.
func (_u *ArticleUpdate) AddMentions(v ...*EntityMention) *ArticleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMentionIDs(ids...)
}

// Mutation returns the ArticleMutation object of the builder.
func (_u *ArticleUpdate) Mutation() *ArticleMutation {
	return _u.mutation
}

// ClearMentions clears all "mentions" edges to the EntityMention entity.
func (_u *ArticleUpdate) ClearMentions() *ArticleUpdate {
	_u.mutation.ClearMentions()
	return _u
}

// RemoveMentionIDs removes the "mentions" edge to EntityMention entities by IDs.
func (_u *ArticleUpdate) RemoveMentionIDs(ids ...string) *ArticleUpdate {
	_u.mutation.RemoveMentionIDs(ids...)
	return _u
}

// RemoveMentions removes "mentions" edges to EntityMention entities.
func (_u *ArticleUpdate) RemoveMentions(v ...*EntityMention) *ArticleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMentionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArticleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArticleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleUpdate) check() error {
	if v, ok := _u.mutation.SentimentLabel(); ok {
		if err := article.SentimentLabelValidator(v); err != nil {
			return &ValidationError{Name: "sentiment_label", err: fmt.Errorf(`ent: validator failed for field "Article.sentiment_label": %w`, err)}
		}
	}
	return nil
}

func (_u *ArticleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(article.Table, article.Columns, sqlgraph.NewFieldSpec(article.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RelevanceTier(); ok {
		_spec.SetField(article.FieldRelevanceTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelevanceTier(); ok {
		_spec.AddField(article.FieldRelevanceTier, field.TypeInt, value)
	}
	if _u.mutation.RelevanceTierCleared() {
		_spec.ClearField(article.FieldRelevanceTier, field.TypeInt)
	}
	if value, ok := _u.mutation.RelevanceReason(); ok {
		_spec.SetField(article.FieldRelevanceReason, field.TypeString, value)
	}
	if _u.mutation.RelevanceReasonCleared() {
		_spec.ClearField(article.FieldRelevanceReason, field.TypeString)
	}
	if value, ok := _u.mutation.SentimentLabel(); ok {
		_spec.SetField(article.FieldSentimentLabel, field.TypeEnum, value)
	}
	if _u.mutation.SentimentLabelCleared() {
		_spec.ClearField(article.FieldSentimentLabel, field.TypeEnum)
	}
	if value, ok := _u.mutation.NucleusEntity(); ok {
		_spec.SetField(article.FieldNucleusEntity, field.TypeString, value)
	}
	if _u.mutation.NucleusEntityCleared() {
		_spec.ClearField(article.FieldNucleusEntity, field.TypeString)
	}
	if value, ok := _u.mutation.Actors(); ok {
		_spec.SetField(article.FieldActors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, article.FieldActors, value)
		})
	}
	if _u.mutation.ActorsCleared() {
		_spec.ClearField(article.FieldActors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActorSalience(); ok {
		_spec.SetField(article.FieldActorSalience, field.TypeJSON, value)
	}
	if _u.mutation.ActorSalienceCleared() {
		_spec.ClearField(article.FieldActorSalience, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeyActions(); ok {
		_spec.SetField(article.FieldKeyActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, article.FieldKeyActions, value)
		})
	}
	if _u.mutation.KeyActionsCleared() {
		_spec.ClearField(article.FieldKeyActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.NarrativeSummary(); ok {
		_spec.SetField(article.FieldNarrativeSummary, field.TypeString, value)
	}
	if _u.mutation.NarrativeSummaryCleared() {
		_spec.ClearField(article.FieldNarrativeSummary, field.TypeString)
	}
	if value, ok := _u.mutation.NarrativeHash(); ok {
		_spec.SetField(article.FieldNarrativeHash, field.TypeString, value)
	}
	if _u.mutation.NarrativeHashCleared() {
		_spec.ClearField(article.FieldNarrativeHash, field.TypeString)
	}
	if value, ok := _u.mutation.NarrativeID(); ok {
		_spec.SetField(article.FieldNarrativeID, field.TypeString, value)
	}
	if _u.mutation.NarrativeIDCleared() {
		_spec.ClearField(article.FieldNarrativeID, field.TypeString)
	}
	if _u.mutation.MentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMentionsIDs(); len(nodes) > 0 && !_u.mutation.MentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MentionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{article.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArticleUpdateOne is the builder for updating a single Article entity.
type ArticleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArticleMutation
}

// SetRelevanceTier sets the "relevance_tier" field.
func (_u *ArticleUpdateOne) SetRelevanceTier(v int) *ArticleUpdateOne {
	_u.mutation.ResetRelevanceTier()
	_u.mutation.SetRelevanceTier(v)
	return _u
}

// SetNillableRelevanceTier sets the "relevance_tier" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableRelevanceTier(v *int) *ArticleUpdateOne {
	if v != nil {
		_u.SetRelevanceTier(*v)
	}
	return _u
}

// AddRelevanceTier adds value to the "relevance_tier" field.
func (_u *ArticleUpdateOne) AddRelevanceTier(v int) *ArticleUpdateOne {
	_u.mutation.AddRelevanceTier(v)
	return _u
}

// ClearRelevanceTier clears the value of the "relevance_tier" field.
func (_u *ArticleUpdateOne) ClearRelevanceTier() *ArticleUpdateOne {
	_u.mutation.ClearRelevanceTier()
	return _u
}

// SetRelevanceReason sets the "relevance_reason" field.
func (_u *ArticleUpdateOne) SetRelevanceReason(v string) *ArticleUpdateOne {
	_u.mutation.SetRelevanceReason(v)
	return _u
}

// SetNillableRelevanceReason sets the "relevance_reason" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableRelevanceReason(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetRelevanceReason(*v)
	}
	return _u
}

// ClearRelevanceReason clears the value of the "relevance_reason" field.
func (_u *ArticleUpdateOne) ClearRelevanceReason() *ArticleUpdateOne {
	_u.mutation.ClearRelevanceReason()
	return _u
}

// SetSentimentLabel sets the "sentiment_label" field.
func (_u *ArticleUpdateOne) SetSentimentLabel(v article.SentimentLabel) *ArticleUpdateOne {
	_u.mutation.SetSentimentLabel(v)
	return _u
}

// SetNillableSentimentLabel sets the "sentiment_label" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableSentimentLabel(v *article.SentimentLabel) *ArticleUpdateOne {
	if v != nil {
		_u.SetSentimentLabel(*v)
	}
	return _u
}

// ClearSentimentLabel clears the value of the "sentiment_label" field.
func (_u *ArticleUpdateOne) ClearSentimentLabel() *ArticleUpdateOne {
	_u.mutation.ClearSentimentLabel()
	return _u
}

// SetNucleusEntity sets the "nucleus_entity" field.
func (_u *ArticleUpdateOne) SetNucleusEntity(v string) *ArticleUpdateOne {
	_u.mutation.SetNucleusEntity(v)
	return _u
}

// SetNillableNucleusEntity sets the "nucleus_entity" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableNucleusEntity(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetNucleusEntity(*v)
	}
	return _u
}

// ClearNucleusEntity clears the value of the "nucleus_entity" field.
func (_u *ArticleUpdateOne) ClearNucleusEntity() *ArticleUpdateOne {
	_u.mutation.ClearNucleusEntity()
	return _u
}

// SetActors sets the "actors" field.
func (_u *ArticleUpdateOne) SetActors(v []string) *ArticleUpdateOne {
	_u.mutation.SetActors(v)
	return _u
}

// AppendActors appends value to the "actors" field.
func (_u *ArticleUpdateOne) AppendActors(v []string) *ArticleUpdateOne {
	_u.mutation.AppendActors(v)
	return _u
}

// ClearActors clears the value of the "actors" field.
func (_u *ArticleUpdateOne) ClearActors() *ArticleUpdateOne {
	_u.mutation.ClearActors()
	return _u
}

// SetActorSalience sets the "actor_salience" field.
func (_u *ArticleUpdateOne) SetActorSalience(v map[string]int) *ArticleUpdateOne {
	_u.mutation.SetActorSalience(v)
	return _u
}

// ClearActorSalience clears the value of the "actor_salience" field.
func (_u *ArticleUpdateOne) ClearActorSalience() *ArticleUpdateOne {
	_u.mutation.ClearActorSalience()
	return _u
}

// SetKeyActions sets the "key_actions" field.
func (_u *ArticleUpdateOne) SetKeyActions(v []string) *ArticleUpdateOne {
	_u.mutation.SetKeyActions(v)
	return _u
}

// AppendKeyActions appends value to the "key_actions" field.
func (_u *ArticleUpdateOne) AppendKeyActions(v []string) *ArticleUpdateOne {
	_u.mutation.AppendKeyActions(v)
	return _u
}

// ClearKeyActions clears the value of the "key_actions" field.
func (_u *ArticleUpdateOne) ClearKeyActions() *ArticleUpdateOne {
	_u.mutation.ClearKeyActions()
	return _u
}

// SetNarrativeSummary sets the "narrative_summary" field.
func (_u *ArticleUpdateOne) SetNarrativeSummary(v string) *ArticleUpdateOne {
	_u.mutation.SetNarrativeSummary(v)
	return _u
}

// SetNillableNarrativeSummary sets the "narrative_summary" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableNarrativeSummary(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetNarrativeSummary(*v)
	}
	return _u
}

// ClearNarrativeSummary clears the value of the "narrative_summary" field.
func (_u *ArticleUpdateOne) ClearNarrativeSummary() *ArticleUpdateOne {
	_u.mutation.ClearNarrativeSummary()
	return _u
}

// SetNarrativeHash sets the "narrative_hash" field.
func (_u *ArticleUpdateOne) SetNarrativeHash(v string) *ArticleUpdateOne {
	_u.mutation.SetNarrativeHash(v)
	return _u
}

// SetNillableNarrativeHash sets the "narrative_hash" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableNarrativeHash(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetNarrativeHash(*v)
	}
	return _u
}

// ClearNarrativeHash clears the value of the "narrative_hash" field.
func (_u *ArticleUpdateOne) ClearNarrativeHash() *ArticleUpdateOne {
	_u.mutation.ClearNarrativeHash()
	return _u
}

// SetNarrativeID sets the "narrative_id" field.
func (_u *ArticleUpdateOne) SetNarrativeID(v string) *ArticleUpdateOne {
	_u.mutation.SetNarrativeID(v)
	return _u
}

// SetNillableNarrativeID sets the "narrative_id" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableNarrativeID(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetNarrativeID(*v)
	}
	return _u
}

// ClearNarrativeID clears the value of the "narrative_id" field.
func (_u *ArticleUpdateOne) ClearNarrativeID() *ArticleUpdateOne {
	_u.mutation.ClearNarrativeID()
	return _u
}

// AddMentionIDs adds the "mentions" edge to the EntityMention entity by IDs.
func (_u *ArticleUpdateOne) AddMentionIDs(ids ...string) *ArticleUpdateOne {
	_u.mutation.AddMentionIDs(ids...)
	return _u
}

// AddMentions adds the "mentions" edges to the EntityMention entity.
func (_u *ArticleUpdateOne) AddMentions(v ...*EntityMention) *ArticleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMentionIDs(ids...)
}

// Mutation returns the ArticleMutation object of the builder.
func (_u *ArticleUpdateOne) Mutation() *ArticleMutation {
	return _u.mutation
}

// ClearMentions clears all "mentions" edges to the EntityMention entity.
func (_u *ArticleUpdateOne) ClearMentions() *ArticleUpdateOne {
	_u.mutation.ClearMentions()
	return _u
}

// RemoveMentionIDs removes the "mentions" edge to EntityMention entities by IDs.
func (_u *ArticleUpdateOne) RemoveMentionIDs(ids ...string) *ArticleUpdateOne {
	_u.mutation.RemoveMentionIDs(ids...)
	return _u
}

// RemoveMentions removes "mentions" edges to EntityMention entities.
func (_u *ArticleUpdateOne) RemoveMentions(v ...*EntityMention) *ArticleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMentionIDs(ids...)
}

// Where appends a list predicates to the ArticleUpdate builder.
func (_u *ArticleUpdateOne) Where(ps ...predicate.Article) *ArticleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArticleUpdateOne) Select(field string, fields ...string) *ArticleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Article entity.
func (_u *ArticleUpdateOne) Save(ctx context.Context) (*Article, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleUpdateOne) SaveX(ctx context.Context) *Article {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArticleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleUpdateOne) check() error {
	if v, ok := _u.mutation.SentimentLabel(); ok {
		if err := article.SentimentLabelValidator(v); err != nil {
			return &ValidationError{Name: "sentiment_label", err: fmt.Errorf(`ent: validator failed for field "Article.sentiment_label": %w`, err)}
		}
	}
	return nil
}

func (_u *ArticleUpdateOne) sqlSave(ctx context.Context) (_node *Article, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(article.Table, article.Columns, sqlgraph.NewFieldSpec(article.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Article.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, article.FieldID)
		for _, f := range fields {
			if !article.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != article.FieldID {
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
	if value, ok := _u.mutation.RelevanceTier(); ok {
		_spec.SetField(article.FieldRelevanceTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelevanceTier(); ok {
		_spec.AddField(article.FieldRelevanceTier, field.TypeInt, value)
	}
	if _u.mutation.RelevanceTierCleared() {
		_spec.ClearField(article.FieldRelevanceTier, field.TypeInt)
	}
	if value, ok := _u.mutation.RelevanceReason(); ok {
		_spec.SetField(article.FieldRelevanceReason, field.TypeString, value)
	}
	if _u.mutation.RelevanceReasonCleared() {
		_spec.ClearField(article.FieldRelevanceReason, field.TypeString)
	}
	if value, ok := _u.mutation.SentimentLabel(); ok {
		_spec.SetField(article.FieldSentimentLabel, field.TypeEnum, value)
	}
	if _u.mutation.SentimentLabelCleared() {
		_spec.ClearField(article.FieldSentimentLabel, field.TypeEnum)
	}
	if value, ok := _u.mutation.NucleusEntity(); ok {
		_spec.SetField(article.FieldNucleusEntity, field.TypeString, value)
	}
	if _u.mutation.NucleusEntityCleared() {
		_spec.ClearField(article.FieldNucleusEntity, field.TypeString)
	}
	if value, ok := _u.mutation.Actors(); ok {
		_spec.SetField(article.FieldActors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, article.FieldActors, value)
		})
	}
	if _u.mutation.ActorsCleared() {
		_spec.ClearField(article.FieldActors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActorSalience(); ok {
		_spec.SetField(article.FieldActorSalience, field.TypeJSON, value)
	}
	if _u.mutation.ActorSalienceCleared() {
		_spec.ClearField(article.FieldActorSalience, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeyActions(); ok {
		_spec.SetField(article.FieldKeyActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, article.FieldKeyActions, value)
		})
	}
	if _u.mutation.KeyActionsCleared() {
		_spec.ClearField(article.FieldKeyActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.NarrativeSummary(); ok {
		_spec.SetField(article.FieldNarrativeSummary, field.TypeString, value)
	}
	if _u.mutation.NarrativeSummaryCleared() {
		_spec.ClearField(article.FieldNarrativeSummary, field.TypeString)
	}
	if value, ok := _u.mutation.NarrativeHash(); ok {
		_spec.SetField(article.FieldNarrativeHash, field.TypeString, value)
	}
	if _u.mutation.NarrativeHashCleared() {
		_spec.ClearField(article.FieldNarrativeHash, field.TypeString)
	}
	if value, ok := _u.mutation.NarrativeID(); ok {
		_spec.SetField(article.FieldNarrativeID, field.TypeString, value)
	}
	if _u.mutation.NarrativeIDCleared() {
		_spec.ClearField(article.FieldNarrativeID, field.TypeString)
	}
	if _u.mutation.MentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMentionsIDs(); len(nodes) > 0 && !_u.mutation.MentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MentionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Article{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{article.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
