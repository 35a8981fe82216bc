// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/apicost"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/entitymention"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/predicate"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/signalscore"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAPICost       = "APICost"
	TypeArticle       = "Article"
	TypeEntityMention = "EntityMention"
	TypeNarrative     = "Narrative"
	TypeSignalScore   = "SignalScore"
)

// APICostMutation represents an operation that mutates the APICost nodes in the graph.
type APICostMutation struct {
	config
	op               Op
	typ              string
	id               *string
	timestamp        *time.Time
	operation        *string
	model            *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cost_usd         *float64
	addcost_usd      *float64
	cached           *bool
	cache_key        *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*APICost, error)
	predicates       []predicate.APICost
}

var _ ent.Mutation = (*APICostMutation)(nil)

// apicostOption allows management of the mutation configuration using functional options.
type apicostOption func(*APICostMutation)

// newAPICostMutation creates new mutation for the APICost entity.
func newAPICostMutation(c config, op Op, opts ...apicostOption) *APICostMutation {
	m := &APICostMutation{
		config:        c,
		op:            op,
		typ:           TypeAPICost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPICostID sets the ID field of the mutation.
func withAPICostID(id string) apicostOption {
	return func(m *APICostMutation) {
		var (
			err   error
			once  sync.Once
			value *APICost
		)
		m.oldValue = func(ctx context.Context) (*APICost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APICost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPICost sets the old APICost of the mutation.
func withAPICost(node *APICost) apicostOption {
	return func(m *APICostMutation) {
		m.oldValue = func(context.Context) (*APICost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APICostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APICostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APICost entities.
func (m *APICostMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APICostMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APICostMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APICost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *APICostMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *APICostMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the APICost entity.
// If the APICost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICostMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *APICostMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetOperation sets the "operation" field.
func (m *APICostMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *APICostMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the APICost entity.
// If the APICost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICostMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *APICostMutation) ResetOperation() {
	m.operation = nil
}

// SetModel sets the "model" field.
func (m *APICostMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *APICostMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the APICost entity.
// If the APICost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICostMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *APICostMutation) ResetModel() {
	m.model = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *APICostMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *APICostMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the APICost entity.
// If the APICost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICostMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *APICostMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *APICostMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *APICostMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *APICostMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *APICostMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the APICost entity.
// If the APICost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICostMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *APICostMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *APICostMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *APICostMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *APICostMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *APICostMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the APICost entity.
// If the APICost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICostMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *APICostMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *APICostMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *APICostMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetCached sets the "cached" field.
func (m *APICostMutation) SetCached(b bool) {
	m.cached = &b
}

// Cached returns the value of the "cached" field in the mutation.
func (m *APICostMutation) Cached() (r bool, exists bool) {
	v := m.cached
	if v == nil {
		return
	}
	return *v, true
}

// OldCached returns the old "cached" field's value of the APICost entity.
// If the APICost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICostMutation) OldCached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCached: %w", err)
	}
	return oldValue.Cached, nil
}

// ResetCached resets all changes to the "cached" field.
func (m *APICostMutation) ResetCached() {
	m.cached = nil
}

// SetCacheKey sets the "cache_key" field.
func (m *APICostMutation) SetCacheKey(s string) {
	m.cache_key = &s
}

// CacheKey returns the value of the "cache_key" field in the mutation.
func (m *APICostMutation) CacheKey() (r string, exists bool) {
	v := m.cache_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheKey returns the old "cache_key" field's value of the APICost entity.
// If the APICost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APICostMutation) OldCacheKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheKey: %w", err)
	}
	return oldValue.CacheKey, nil
}

// ClearCacheKey clears the value of the "cache_key" field.
func (m *APICostMutation) ClearCacheKey() {
	m.cache_key = nil
	m.clearedFields[apicost.FieldCacheKey] = struct{}{}
}

// CacheKeyCleared returns if the "cache_key" field was cleared in this mutation.
func (m *APICostMutation) CacheKeyCleared() bool {
	_, ok := m.clearedFields[apicost.FieldCacheKey]
	return ok
}

// ResetCacheKey resets all changes to the "cache_key" field.
func (m *APICostMutation) ResetCacheKey() {
	m.cache_key = nil
	delete(m.clearedFields, apicost.FieldCacheKey)
}

// Where appends a list predicates to the APICostMutation builder.
func (m *APICostMutation) Where(ps ...predicate.APICost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APICostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APICostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APICost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APICostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APICostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APICost).
func (m *APICostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APICostMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.timestamp != nil {
		fields = append(fields, apicost.FieldTimestamp)
	}
	if m.operation != nil {
		fields = append(fields, apicost.FieldOperation)
	}
	if m.model != nil {
		fields = append(fields, apicost.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, apicost.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, apicost.FieldOutputTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, apicost.FieldCostUsd)
	}
	if m.cached != nil {
		fields = append(fields, apicost.FieldCached)
	}
	if m.cache_key != nil {
		fields = append(fields, apicost.FieldCacheKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APICostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apicost.FieldTimestamp:
		return m.Timestamp()
	case apicost.FieldOperation:
		return m.Operation()
	case apicost.FieldModel:
		return m.Model()
	case apicost.FieldInputTokens:
		return m.InputTokens()
	case apicost.FieldOutputTokens:
		return m.OutputTokens()
	case apicost.FieldCostUsd:
		return m.CostUsd()
	case apicost.FieldCached:
		return m.Cached()
	case apicost.FieldCacheKey:
		return m.CacheKey()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APICostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apicost.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case apicost.FieldOperation:
		return m.OldOperation(ctx)
	case apicost.FieldModel:
		return m.OldModel(ctx)
	case apicost.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case apicost.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case apicost.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case apicost.FieldCached:
		return m.OldCached(ctx)
	case apicost.FieldCacheKey:
		return m.OldCacheKey(ctx)
	}
	return nil, fmt.Errorf("unknown APICost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APICostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apicost.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case apicost.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case apicost.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case apicost.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case apicost.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case apicost.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case apicost.FieldCached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCached(v)
		return nil
	case apicost.FieldCacheKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheKey(v)
		return nil
	}
	return fmt.Errorf("unknown APICost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APICostMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, apicost.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, apicost.FieldOutputTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, apicost.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APICostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apicost.FieldInputTokens:
		return m.AddedInputTokens()
	case apicost.FieldOutputTokens:
		return m.AddedOutputTokens()
	case apicost.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APICostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apicost.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case apicost.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case apicost.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown APICost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APICostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apicost.FieldCacheKey) {
		fields = append(fields, apicost.FieldCacheKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APICostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APICostMutation) ClearField(name string) error {
	switch name {
	case apicost.FieldCacheKey:
		m.ClearCacheKey()
		return nil
	}
	return fmt.Errorf("unknown APICost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APICostMutation) ResetField(name string) error {
	switch name {
	case apicost.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case apicost.FieldOperation:
		m.ResetOperation()
		return nil
	case apicost.FieldModel:
		m.ResetModel()
		return nil
	case apicost.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case apicost.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case apicost.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case apicost.FieldCached:
		m.ResetCached()
		return nil
	case apicost.FieldCacheKey:
		m.ResetCacheKey()
		return nil
	}
	return fmt.Errorf("unknown APICost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APICostMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APICostMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APICostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APICostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APICostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APICostMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APICostMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown APICost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APICostMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown APICost edge %s", name)
}

// ArticleMutation represents an operation that mutates the Article nodes in the graph.
type ArticleMutation struct {
	config
	op                Op
	typ               string
	id                *string
	url               *string
	title             *string
	text              *string
	source            *string
	published_at      *time.Time
	created_at        *time.Time
	relevance_tier    *int
	addrelevance_tier *int
	relevance_reason  *string
	sentiment_label   *article.SentimentLabel
	nucleus_entity    *string
	actors            *[]string
	appendactors      []string
	actor_salience    *map[string]int
	key_actions       *[]string
	appendkey_actions []string
	narrative_summary *string
	narrative_hash    *string
	narrative_id      *string
	clearedFields     map[string]struct{}
	mentions          map[string]struct{}
	removedmentions   map[string]struct{}
	clearedmentions   bool
	done              bool
	oldValue          func(context.Context) (*Article, error)
	predicates        []predicate.Article
}

var _ ent.Mutation = (*ArticleMutation)(nil)

// articleOption allows management of the mutation configuration using functional options.
type articleOption func(*ArticleMutation)

// newArticleMutation creates new mutation for the Article entity.
func newArticleMutation(c config, op Op, opts ...articleOption) *ArticleMutation {
	m := &ArticleMutation{
		config:        c,
		op:            op,
		typ:           TypeArticle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArticleID sets the ID field of the mutation.
func withArticleID(id string) articleOption {
	return func(m *ArticleMutation) {
		var (
			err   error
			once  sync.Once
			value *Article
		)
		m.oldValue = func(ctx context.Context) (*Article, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Article.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArticle sets the old Article of the mutation.
func withArticle(node *Article) articleOption {
	return func(m *ArticleMutation) {
		m.oldValue = func(context.Context) (*Article, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArticleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArticleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Article entities.
func (m *ArticleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArticleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArticleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Article.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *ArticleMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ArticleMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ArticleMutation) ResetURL() {
	m.url = nil
}

// SetTitle sets the "title" field.
func (m *ArticleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ArticleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ArticleMutation) ResetTitle() {
	m.title = nil
}

// SetText sets the "text" field.
func (m *ArticleMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ArticleMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ArticleMutation) ResetText() {
	m.text = nil
}

// SetSource sets the "source" field.
func (m *ArticleMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ArticleMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ArticleMutation) ResetSource() {
	m.source = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *ArticleMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *ArticleMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldPublishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *ArticleMutation) ResetPublishedAt() {
	m.published_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArticleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArticleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArticleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRelevanceTier sets the "relevance_tier" field.
func (m *ArticleMutation) SetRelevanceTier(i int) {
	m.relevance_tier = &i
	m.addrelevance_tier = nil
}

// RelevanceTier returns the value of the "relevance_tier" field in the mutation.
func (m *ArticleMutation) RelevanceTier() (r int, exists bool) {
	v := m.relevance_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceTier returns the old "relevance_tier" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldRelevanceTier(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceTier: %w", err)
	}
	return oldValue.RelevanceTier, nil
}

// AddRelevanceTier adds i to the "relevance_tier" field.
func (m *ArticleMutation) AddRelevanceTier(i int) {
	if m.addrelevance_tier != nil {
		*m.addrelevance_tier += i
	} else {
		m.addrelevance_tier = &i
	}
}

// AddedRelevanceTier returns the value that was added to the "relevance_tier" field in this mutation.
func (m *ArticleMutation) AddedRelevanceTier() (r int, exists bool) {
	v := m.addrelevance_tier
	if v == nil {
		return
	}
	return *v, true
}

// ClearRelevanceTier clears the value of the "relevance_tier" field.
func (m *ArticleMutation) ClearRelevanceTier() {
	m.relevance_tier = nil
	m.addrelevance_tier = nil
	m.clearedFields[article.FieldRelevanceTier] = struct{}{}
}

// RelevanceTierCleared returns if the "relevance_tier" field was cleared in this mutation.
func (m *ArticleMutation) RelevanceTierCleared() bool {
	_, ok := m.clearedFields[article.FieldRelevanceTier]
	return ok
}

// ResetRelevanceTier resets all changes to the "relevance_tier" field.
func (m *ArticleMutation) ResetRelevanceTier() {
	m.relevance_tier = nil
	m.addrelevance_tier = nil
	delete(m.clearedFields, article.FieldRelevanceTier)
}

// SetRelevanceReason sets the "relevance_reason" field.
func (m *ArticleMutation) SetRelevanceReason(s string) {
	m.relevance_reason = &s
}

// RelevanceReason returns the value of the "relevance_reason" field in the mutation.
func (m *ArticleMutation) RelevanceReason() (r string, exists bool) {
	v := m.relevance_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceReason returns the old "relevance_reason" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldRelevanceReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceReason: %w", err)
	}
	return oldValue.RelevanceReason, nil
}

// ClearRelevanceReason clears the value of the "relevance_reason" field.
func (m *ArticleMutation) ClearRelevanceReason() {
	m.relevance_reason = nil
	m.clearedFields[article.FieldRelevanceReason] = struct{}{}
}

// RelevanceReasonCleared returns if the "relevance_reason" field was cleared in this mutation.
func (m *ArticleMutation) RelevanceReasonCleared() bool {
	_, ok := m.clearedFields[article.FieldRelevanceReason]
	return ok
}

// ResetRelevanceReason resets all changes to the "relevance_reason" field.
func (m *ArticleMutation) ResetRelevanceReason() {
	m.relevance_reason = nil
	delete(m.clearedFields, article.FieldRelevanceReason)
}

// SetSentimentLabel sets the "sentiment_label" field.
func (m *ArticleMutation) SetSentimentLabel(al article.SentimentLabel) {
	m.sentiment_label = &al
}

// SentimentLabel returns the value of the "sentiment_label" field in the mutation.
func (m *ArticleMutation) SentimentLabel() (r article.SentimentLabel, exists bool) {
	v := m.sentiment_label
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentLabel returns the old "sentiment_label" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldSentimentLabel(ctx context.Context) (v article.SentimentLabel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentLabel: %w", err)
	}
	return oldValue.SentimentLabel, nil
}

// ClearSentimentLabel clears the value of the "sentiment_label" field.
func (m *ArticleMutation) ClearSentimentLabel() {
	m.sentiment_label = nil
	m.clearedFields[article.FieldSentimentLabel] = struct{}{}
}

// SentimentLabelCleared returns if the "sentiment_label" field was cleared in this mutation.
func (m *ArticleMutation) SentimentLabelCleared() bool {
	_, ok := m.clearedFields[article.FieldSentimentLabel]
	return ok
}

// ResetSentimentLabel resets all changes to the "sentiment_label" field.
func (m *ArticleMutation) ResetSentimentLabel() {
	m.sentiment_label = nil
	delete(m.clearedFields, article.FieldSentimentLabel)
}

// SetNucleusEntity sets the "nucleus_entity" field.
func (m *ArticleMutation) SetNucleusEntity(s string) {
	m.nucleus_entity = &s
}

// NucleusEntity returns the value of the "nucleus_entity" field in the mutation.
func (m *ArticleMutation) NucleusEntity() (r string, exists bool) {
	v := m.nucleus_entity
	if v == nil {
		return
	}
	return *v, true
}

// OldNucleusEntity returns the old "nucleus_entity" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldNucleusEntity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNucleusEntity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNucleusEntity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNucleusEntity: %w", err)
	}
	return oldValue.NucleusEntity, nil
}

// ClearNucleusEntity clears the value of the "nucleus_entity" field.
func (m *ArticleMutation) ClearNucleusEntity() {
	m.nucleus_entity = nil
	m.clearedFields[article.FieldNucleusEntity] = struct{}{}
}

// NucleusEntityCleared returns if the "nucleus_entity" field was cleared in this mutation.
func (m *ArticleMutation) NucleusEntityCleared() bool {
	_, ok := m.clearedFields[article.FieldNucleusEntity]
	return ok
}

// ResetNucleusEntity resets all changes to the "nucleus_entity" field.
func (m *ArticleMutation) ResetNucleusEntity() {
	m.nucleus_entity = nil
	delete(m.clearedFields, article.FieldNucleusEntity)
}

// SetActors sets the "actors" field.
func (m *ArticleMutation) SetActors(s []string) {
	m.actors = &s
	m.appendactors = nil
}

// Actors returns the value of the "actors" field in the mutation.
func (m *ArticleMutation) Actors() (r []string, exists bool) {
	v := m.actors
	if v == nil {
		return
	}
	return *v, true
}

// OldActors returns the old "actors" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldActors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActors: %w", err)
	}
	return oldValue.Actors, nil
}

// AppendActors adds s to the "actors" field.
func (m *ArticleMutation) AppendActors(s []string) {
	m.appendactors = append(m.appendactors, s...)
}

// AppendedActors returns the list of values that were appended to the "actors" field in this mutation.
func (m *ArticleMutation) AppendedActors() ([]string, bool) {
	if len(m.appendactors) == 0 {
		return nil, false
	}
	return m.appendactors, true
}

// ClearActors clears the value of the "actors" field.
func (m *ArticleMutation) ClearActors() {
	m.actors = nil
	m.appendactors = nil
	m.clearedFields[article.FieldActors] = struct{}{}
}

// ActorsCleared returns if the "actors" field was cleared in this mutation.
func (m *ArticleMutation) ActorsCleared() bool {
	_, ok := m.clearedFields[article.FieldActors]
	return ok
}

// ResetActors resets all changes to the "actors" field.
func (m *ArticleMutation) ResetActors() {
	m.actors = nil
	m.appendactors = nil
	delete(m.clearedFields, article.FieldActors)
}

// SetActorSalience sets the "actor_salience" field.
func (m *ArticleMutation) SetActorSalience(value map[string]int) {
	m.actor_salience = &value
}

// ActorSalience returns the value of the "actor_salience" field in the mutation.
func (m *ArticleMutation) ActorSalience() (r map[string]int, exists bool) {
	v := m.actor_salience
	if v == nil {
		return
	}
	return *v, true
}

// OldActorSalience returns the old "actor_salience" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldActorSalience(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorSalience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorSalience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorSalience: %w", err)
	}
	return oldValue.ActorSalience, nil
}

// ClearActorSalience clears the value of the "actor_salience" field.
func (m *ArticleMutation) ClearActorSalience() {
	m.actor_salience = nil
	m.clearedFields[article.FieldActorSalience] = struct{}{}
}

// ActorSalienceCleared returns if the "actor_salience" field was cleared in this mutation.
func (m *ArticleMutation) ActorSalienceCleared() bool {
	_, ok := m.clearedFields[article.FieldActorSalience]
	return ok
}

// ResetActorSalience resets all changes to the "actor_salience" field.
func (m *ArticleMutation) ResetActorSalience() {
	m.actor_salience = nil
	delete(m.clearedFields, article.FieldActorSalience)
}

// SetKeyActions sets the "key_actions" field.
func (m *ArticleMutation) SetKeyActions(s []string) {
	m.key_actions = &s
	m.appendkey_actions = nil
}

// KeyActions returns the value of the "key_actions" field in the mutation.
func (m *ArticleMutation) KeyActions() (r []string, exists bool) {
	v := m.key_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyActions returns the old "key_actions" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldKeyActions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyActions: %w", err)
	}
	return oldValue.KeyActions, nil
}

// AppendKeyActions adds s to the "key_actions" field.
func (m *ArticleMutation) AppendKeyActions(s []string) {
	m.appendkey_actions = append(m.appendkey_actions, s...)
}

// AppendedKeyActions returns the list of values that were appended to the "key_actions" field in this mutation.
func (m *ArticleMutation) AppendedKeyActions() ([]string, bool) {
	if len(m.appendkey_actions) == 0 {
		return nil, false
	}
	return m.appendkey_actions, true
}

// ClearKeyActions clears the value of the "key_actions" field.
func (m *ArticleMutation) ClearKeyActions() {
	m.key_actions = nil
	m.appendkey_actions = nil
	m.clearedFields[article.FieldKeyActions] = struct{}{}
}

// KeyActionsCleared returns if the "key_actions" field was cleared in this mutation.
func (m *ArticleMutation) KeyActionsCleared() bool {
	_, ok := m.clearedFields[article.FieldKeyActions]
	return ok
}

// ResetKeyActions resets all changes to the "key_actions" field.
func (m *ArticleMutation) ResetKeyActions() {
	m.key_actions = nil
	m.appendkey_actions = nil
	delete(m.clearedFields, article.FieldKeyActions)
}

// SetNarrativeSummary sets the "narrative_summary" field.
func (m *ArticleMutation) SetNarrativeSummary(s string) {
	m.narrative_summary = &s
}

// NarrativeSummary returns the value of the "narrative_summary" field in the mutation.
func (m *ArticleMutation) NarrativeSummary() (r string, exists bool) {
	v := m.narrative_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrativeSummary returns the old "narrative_summary" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldNarrativeSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrativeSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrativeSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrativeSummary: %w", err)
	}
	return oldValue.NarrativeSummary, nil
}

// ClearNarrativeSummary clears the value of the "narrative_summary" field.
func (m *ArticleMutation) ClearNarrativeSummary() {
	m.narrative_summary = nil
	m.clearedFields[article.FieldNarrativeSummary] = struct{}{}
}

// NarrativeSummaryCleared returns if the "narrative_summary" field was cleared in this mutation.
func (m *ArticleMutation) NarrativeSummaryCleared() bool {
	_, ok := m.clearedFields[article.FieldNarrativeSummary]
	return ok
}

// ResetNarrativeSummary resets all changes to the "narrative_summary" field.
func (m *ArticleMutation) ResetNarrativeSummary() {
	m.narrative_summary = nil
	delete(m.clearedFields, article.FieldNarrativeSummary)
}

// SetNarrativeHash sets the "narrative_hash" field.
func (m *ArticleMutation) SetNarrativeHash(s string) {
	m.narrative_hash = &s
}

// NarrativeHash returns the value of the "narrative_hash" field in the mutation.
func (m *ArticleMutation) NarrativeHash() (r string, exists bool) {
	v := m.narrative_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrativeHash returns the old "narrative_hash" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldNarrativeHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrativeHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrativeHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrativeHash: %w", err)
	}
	return oldValue.NarrativeHash, nil
}

// ClearNarrativeHash clears the value of the "narrative_hash" field.
func (m *ArticleMutation) ClearNarrativeHash() {
	m.narrative_hash = nil
	m.clearedFields[article.FieldNarrativeHash] = struct{}{}
}

// NarrativeHashCleared returns if the "narrative_hash" field was cleared in this mutation.
func (m *ArticleMutation) NarrativeHashCleared() bool {
	_, ok := m.clearedFields[article.FieldNarrativeHash]
	return ok
}

// ResetNarrativeHash resets all changes to the "narrative_hash" field.
func (m *ArticleMutation) ResetNarrativeHash() {
	m.narrative_hash = nil
	delete(m.clearedFields, article.FieldNarrativeHash)
}

// SetNarrativeID sets the "narrative_id" field.
func (m *ArticleMutation) SetNarrativeID(s string) {
	m.narrative_id = &s
}

// NarrativeID returns the value of the "narrative_id" field in the mutation.
func (m *ArticleMutation) NarrativeID() (r string, exists bool) {
	v := m.narrative_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrativeID returns the old "narrative_id" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldNarrativeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrativeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrativeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrativeID: %w", err)
	}
	return oldValue.NarrativeID, nil
}

// ClearNarrativeID clears the value of the "narrative_id" field.
func (m *ArticleMutation) ClearNarrativeID() {
	m.narrative_id = nil
	m.clearedFields[article.FieldNarrativeID] = struct{}{}
}

// NarrativeIDCleared returns if the "narrative_id" field was cleared in this mutation.
func (m *ArticleMutation) NarrativeIDCleared() bool {
	_, ok := m.clearedFields[article.FieldNarrativeID]
	return ok
}

// ResetNarrativeID resets all changes to the "narrative_id" field.
func (m *ArticleMutation) ResetNarrativeID() {
	m.narrative_id = nil
	delete(m.clearedFields, article.FieldNarrativeID)
}

// AddMentionIDs adds the "mentions" edge to the EntityMention entity by ids.
func (m *ArticleMutation) AddMentionIDs(ids ...string) {
	if m.mentions == nil {
		m.mentions = make(map[string]struct{})
	}
	for i := range ids {
		m.mentions[ids[i]] = struct{}{}
	}
}

// ClearMentions clears the "mentions" edge to the EntityMention entity.
func (m *ArticleMutation) ClearMentions() {
	m.clearedmentions = true
}

// MentionsCleared reports if the "mentions" edge to the EntityMention entity was cleared.
func (m *ArticleMutation) MentionsCleared() bool {
	return m.clearedmentions
}

// RemoveMentionIDs removes the "mentions" edge to the EntityMention entity by IDs.
func (m *ArticleMutation) RemoveMentionIDs(ids ...string) {
	if m.removedmentions == nil {
		m.removedmentions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.mentions, ids[i])
		m.removedmentions[ids[i]] = struct{}{}
	}
}

// RemovedMentions returns the removed IDs of the "mentions" edge to the EntityMention entity.
func (m *ArticleMutation) RemovedMentionsIDs() (ids []string) {
	for id := range m.removedmentions {
		ids = append(ids, id)
	}
	return
}

// MentionsIDs returns the "mentions" edge IDs in the mutation.
func (m *ArticleMutation) MentionsIDs() (ids []string) {
	for id := range m.mentions {
		ids = append(ids, id)
	}
	return
}

// ResetMentions resets all changes to the "mentions" edge.
func (m *ArticleMutation) ResetMentions() {
	m.mentions = nil
	m.clearedmentions = false
	m.removedmentions = nil
}

// Where appends a list predicates to the ArticleMutation builder.
func (m *ArticleMutation) Where(ps ...predicate.Article) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArticleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArticleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Article, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArticleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArticleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Article).
func (m *ArticleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArticleMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.url != nil {
		fields = append(fields, article.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, article.FieldTitle)
	}
	if m.text != nil {
		fields = append(fields, article.FieldText)
	}
	if m.source != nil {
		fields = append(fields, article.FieldSource)
	}
	if m.published_at != nil {
		fields = append(fields, article.FieldPublishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, article.FieldCreatedAt)
	}
	if m.relevance_tier != nil {
		fields = append(fields, article.FieldRelevanceTier)
	}
	if m.relevance_reason != nil {
		fields = append(fields, article.FieldRelevanceReason)
	}
	if m.sentiment_label != nil {
		fields = append(fields, article.FieldSentimentLabel)
	}
	if m.nucleus_entity != nil {
		fields = append(fields, article.FieldNucleusEntity)
	}
	if m.actors != nil {
		fields = append(fields, article.FieldActors)
	}
	if m.actor_salience != nil {
		fields = append(fields, article.FieldActorSalience)
	}
	if m.key_actions != nil {
		fields = append(fields, article.FieldKeyActions)
	}
	if m.narrative_summary != nil {
		fields = append(fields, article.FieldNarrativeSummary)
	}
	if m.narrative_hash != nil {
		fields = append(fields, article.FieldNarrativeHash)
	}
	if m.narrative_id != nil {
		fields = append(fields, article.FieldNarrativeID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArticleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case article.FieldURL:
		return m.URL()
	case article.FieldTitle:
		return m.Title()
	case article.FieldText:
		return m.Text()
	case article.FieldSource:
		return m.Source()
	case article.FieldPublishedAt:
		return m.PublishedAt()
	case article.FieldCreatedAt:
		return m.CreatedAt()
	case article.FieldRelevanceTier:
		return m.RelevanceTier()
	case article.FieldRelevanceReason:
		return m.RelevanceReason()
	case article.FieldSentimentLabel:
		return m.SentimentLabel()
	case article.FieldNucleusEntity:
		return m.NucleusEntity()
	case article.FieldActors:
		return m.Actors()
	case article.FieldActorSalience:
		return m.ActorSalience()
	case article.FieldKeyActions:
		return m.KeyActions()
	case article.FieldNarrativeSummary:
		return m.NarrativeSummary()
	case article.FieldNarrativeHash:
		return m.NarrativeHash()
	case article.FieldNarrativeID:
		return m.NarrativeID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArticleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case article.FieldURL:
		return m.OldURL(ctx)
	case article.FieldTitle:
		return m.OldTitle(ctx)
	case article.FieldText:
		return m.OldText(ctx)
	case article.FieldSource:
		return m.OldSource(ctx)
	case article.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case article.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case article.FieldRelevanceTier:
		return m.OldRelevanceTier(ctx)
	case article.FieldRelevanceReason:
		return m.OldRelevanceReason(ctx)
	case article.FieldSentimentLabel:
		return m.OldSentimentLabel(ctx)
	case article.FieldNucleusEntity:
		return m.OldNucleusEntity(ctx)
	case article.FieldActors:
		return m.OldActors(ctx)
	case article.FieldActorSalience:
		return m.OldActorSalience(ctx)
	case article.FieldKeyActions:
		return m.OldKeyActions(ctx)
	case article.FieldNarrativeSummary:
		return m.OldNarrativeSummary(ctx)
	case article.FieldNarrativeHash:
		return m.OldNarrativeHash(ctx)
	case article.FieldNarrativeID:
		return m.OldNarrativeID(ctx)
	}
	return nil, fmt.Errorf("unknown Article field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case article.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case article.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case article.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case article.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case article.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case article.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case article.FieldRelevanceTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceTier(v)
		return nil
	case article.FieldRelevanceReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceReason(v)
		return nil
	case article.FieldSentimentLabel:
		v, ok := value.(article.SentimentLabel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentLabel(v)
		return nil
	case article.FieldNucleusEntity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNucleusEntity(v)
		return nil
	case article.FieldActors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActors(v)
		return nil
	case article.FieldActorSalience:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorSalience(v)
		return nil
	case article.FieldKeyActions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyActions(v)
		return nil
	case article.FieldNarrativeSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrativeSummary(v)
		return nil
	case article.FieldNarrativeHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrativeHash(v)
		return nil
	case article.FieldNarrativeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrativeID(v)
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArticleMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance_tier != nil {
		fields = append(fields, article.FieldRelevanceTier)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArticleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case article.FieldRelevanceTier:
		return m.AddedRelevanceTier()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case article.FieldRelevanceTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceTier(v)
		return nil
	}
	return fmt.Errorf("unknown Article numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArticleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(article.FieldRelevanceTier) {
		fields = append(fields, article.FieldRelevanceTier)
	}
	if m.FieldCleared(article.FieldRelevanceReason) {
		fields = append(fields, article.FieldRelevanceReason)
	}
	if m.FieldCleared(article.FieldSentimentLabel) {
		fields = append(fields, article.FieldSentimentLabel)
	}
	if m.FieldCleared(article.FieldNucleusEntity) {
		fields = append(fields, article.FieldNucleusEntity)
	}
	if m.FieldCleared(article.FieldActors) {
		fields = append(fields, article.FieldActors)
	}
	if m.FieldCleared(article.FieldActorSalience) {
		fields = append(fields, article.FieldActorSalience)
	}
	if m.FieldCleared(article.FieldKeyActions) {
		fields = append(fields, article.FieldKeyActions)
	}
	if m.FieldCleared(article.FieldNarrativeSummary) {
		fields = append(fields, article.FieldNarrativeSummary)
	}
	if m.FieldCleared(article.FieldNarrativeHash) {
		fields = append(fields, article.FieldNarrativeHash)
	}
	if m.FieldCleared(article.FieldNarrativeID) {
		fields = append(fields, article.FieldNarrativeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArticleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArticleMutation) ClearField(name string) error {
	switch name {
	case article.FieldRelevanceTier:
		m.ClearRelevanceTier()
		return nil
	case article.FieldRelevanceReason:
		m.ClearRelevanceReason()
		return nil
	case article.FieldSentimentLabel:
		m.ClearSentimentLabel()
		return nil
	case article.FieldNucleusEntity:
		m.ClearNucleusEntity()
		return nil
	case article.FieldActors:
		m.ClearActors()
		return nil
	case article.FieldActorSalience:
		m.ClearActorSalience()
		return nil
	case article.FieldKeyActions:
		m.ClearKeyActions()
		return nil
	case article.FieldNarrativeSummary:
		m.ClearNarrativeSummary()
		return nil
	case article.FieldNarrativeHash:
		m.ClearNarrativeHash()
		return nil
	case article.FieldNarrativeID:
		m.ClearNarrativeID()
		return nil
	}
	return fmt.Errorf("unknown Article nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArticleMutation) ResetField(name string) error {
	switch name {
	case article.FieldURL:
		m.ResetURL()
		return nil
	case article.FieldTitle:
		m.ResetTitle()
		return nil
	case article.FieldText:
		m.ResetText()
		return nil
	case article.FieldSource:
		m.ResetSource()
		return nil
	case article.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case article.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case article.FieldRelevanceTier:
		m.ResetRelevanceTier()
		return nil
	case article.FieldRelevanceReason:
		m.ResetRelevanceReason()
		return nil
	case article.FieldSentimentLabel:
		m.ResetSentimentLabel()
		return nil
	case article.FieldNucleusEntity:
		m.ResetNucleusEntity()
		return nil
	case article.FieldActors:
		m.ResetActors()
		return nil
	case article.FieldActorSalience:
		m.ResetActorSalience()
		return nil
	case article.FieldKeyActions:
		m.ResetKeyActions()
		return nil
	case article.FieldNarrativeSummary:
		m.ResetNarrativeSummary()
		return nil
	case article.FieldNarrativeHash:
		m.ResetNarrativeHash()
		return nil
	case article.FieldNarrativeID:
		m.ResetNarrativeID()
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArticleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.mentions != nil {
		edges = append(edges, article.EdgeMentions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArticleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case article.EdgeMentions:
		ids := make([]ent.Value, 0, len(m.mentions))
		for id := range m.mentions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArticleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmentions != nil {
		edges = append(edges, article.EdgeMentions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArticleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case article.EdgeMentions:
		ids := make([]ent.Value, 0, len(m.removedmentions))
		for id := range m.removedmentions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArticleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmentions {
		edges = append(edges, article.EdgeMentions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArticleMutation) EdgeCleared(name string) bool {
	switch name {
	case article.EdgeMentions:
		return m.clearedmentions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArticleMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Article unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArticleMutation) ResetEdge(name string) error {
	switch name {
	case article.EdgeMentions:
		m.ResetMentions()
		return nil
	}
	return fmt.Errorf("unknown Article edge %s", name)
}

// EntityMentionMutation represents an operation that mutates the EntityMention nodes in the graph.
type EntityMentionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	entity         *string
	entity_type    *entitymention.EntityType
	is_primary     *bool
	sentiment      *entitymention.Sentiment
	confidence     *float64
	addconfidence  *float64
	source         *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	article        *string
	clearedarticle bool
	done           bool
	oldValue       func(context.Context) (*EntityMention, error)
	predicates     []predicate.EntityMention
}

var _ ent.Mutation = (*EntityMentionMutation)(nil)

// entitymentionOption allows management of the mutation configuration using functional options.
type entitymentionOption func(*EntityMentionMutation)

// newEntityMentionMutation creates new mutation for the EntityMention entity.
func newEntityMentionMutation(c config, op Op, opts ...entitymentionOption) *EntityMentionMutation {
	m := &EntityMentionMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityMention,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityMentionID sets the ID field of the mutation.
func withEntityMentionID(id string) entitymentionOption {
	return func(m *EntityMentionMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityMention
		)
		m.oldValue = func(ctx context.Context) (*EntityMention, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityMention.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityMention sets the old EntityMention of the mutation.
func withEntityMention(node *EntityMention) entitymentionOption {
	return func(m *EntityMentionMutation) {
		m.oldValue = func(context.Context) (*EntityMention, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMentionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMentionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityMention entities.
func (m *EntityMentionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMentionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMentionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityMention.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetArticleID sets the "article_id" field.
func (m *EntityMentionMutation) SetArticleID(s string) {
	m.article = &s
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *EntityMentionMutation) ArticleID() (r string, exists bool) {
	v := m.article
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldArticleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *EntityMentionMutation) ResetArticleID() {
	m.article = nil
}

// SetEntity sets the "entity" field.
func (m *EntityMentionMutation) SetEntity(s string) {
	m.entity = &s
}

// Entity returns the value of the "entity" field in the mutation.
func (m *EntityMentionMutation) Entity() (r string, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntity returns the old "entity" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldEntity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntity: %w", err)
	}
	return oldValue.Entity, nil
}

// ResetEntity resets all changes to the "entity" field.
func (m *EntityMentionMutation) ResetEntity() {
	m.entity = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntityMentionMutation) SetEntityType(et entitymention.EntityType) {
	m.entity_type = &et
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityMentionMutation) EntityType() (r entitymention.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldEntityType(ctx context.Context) (v entitymention.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityMentionMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetIsPrimary sets the "is_primary" field.
func (m *EntityMentionMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *EntityMentionMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *EntityMentionMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// SetSentiment sets the "sentiment" field.
func (m *EntityMentionMutation) SetSentiment(e entitymention.Sentiment) {
	m.sentiment = &e
}

// Sentiment returns the value of the "sentiment" field in the mutation.
func (m *EntityMentionMutation) Sentiment() (r entitymention.Sentiment, exists bool) {
	v := m.sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldSentiment returns the old "sentiment" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldSentiment(ctx context.Context) (v entitymention.Sentiment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentiment: %w", err)
	}
	return oldValue.Sentiment, nil
}

// ResetSentiment resets all changes to the "sentiment" field.
func (m *EntityMentionMutation) ResetSentiment() {
	m.sentiment = nil
}

// SetConfidence sets the "confidence" field.
func (m *EntityMentionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EntityMentionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EntityMentionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EntityMentionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EntityMentionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSource sets the "source" field.
func (m *EntityMentionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *EntityMentionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *EntityMentionMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityMentionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityMentionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityMentionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearArticle clears the "article" edge to the Article entity.
func (m *EntityMentionMutation) ClearArticle() {
	m.clearedarticle = true
	m.clearedFields[entitymention.FieldArticleID] = struct{}{}
}

// ArticleCleared reports if the "article" edge to the Article entity was cleared.
func (m *EntityMentionMutation) ArticleCleared() bool {
	return m.clearedarticle
}

// ArticleIDs returns the "article" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArticleID instead. It exists only for internal usage by the builders.
func (m *EntityMentionMutation) ArticleIDs() (ids []string) {
	if id := m.article; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArticle resets all changes to the "article" edge.
func (m *EntityMentionMutation) ResetArticle() {
	m.article = nil
	m.clearedarticle = false
}

// Where appends a list predicates to the EntityMentionMutation builder.
func (m *EntityMentionMutation) Where(ps ...predicate.EntityMention) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMentionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMentionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityMention, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMentionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMentionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityMention).
func (m *EntityMentionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMentionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.article != nil {
		fields = append(fields, entitymention.FieldArticleID)
	}
	if m.entity != nil {
		fields = append(fields, entitymention.FieldEntity)
	}
	if m.entity_type != nil {
		fields = append(fields, entitymention.FieldEntityType)
	}
	if m.is_primary != nil {
		fields = append(fields, entitymention.FieldIsPrimary)
	}
	if m.sentiment != nil {
		fields = append(fields, entitymention.FieldSentiment)
	}
	if m.confidence != nil {
		fields = append(fields, entitymention.FieldConfidence)
	}
	if m.source != nil {
		fields = append(fields, entitymention.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, entitymention.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMentionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitymention.FieldArticleID:
		return m.ArticleID()
	case entitymention.FieldEntity:
		return m.Entity()
	case entitymention.FieldEntityType:
		return m.EntityType()
	case entitymention.FieldIsPrimary:
		return m.IsPrimary()
	case entitymention.FieldSentiment:
		return m.Sentiment()
	case entitymention.FieldConfidence:
		return m.Confidence()
	case entitymention.FieldSource:
		return m.Source()
	case entitymention.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMentionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitymention.FieldArticleID:
		return m.OldArticleID(ctx)
	case entitymention.FieldEntity:
		return m.OldEntity(ctx)
	case entitymention.FieldEntityType:
		return m.OldEntityType(ctx)
	case entitymention.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	case entitymention.FieldSentiment:
		return m.OldSentiment(ctx)
	case entitymention.FieldConfidence:
		return m.OldConfidence(ctx)
	case entitymention.FieldSource:
		return m.OldSource(ctx)
	case entitymention.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityMention field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMentionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitymention.FieldArticleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case entitymention.FieldEntity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntity(v)
		return nil
	case entitymention.FieldEntityType:
		v, ok := value.(entitymention.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entitymention.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	case entitymention.FieldSentiment:
		v, ok := value.(entitymention.Sentiment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentiment(v)
		return nil
	case entitymention.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case entitymention.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case entitymention.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityMention field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMentionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, entitymention.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMentionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitymention.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMentionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitymention.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown EntityMention numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMentionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMentionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMentionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EntityMention nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMentionMutation) ResetField(name string) error {
	switch name {
	case entitymention.FieldArticleID:
		m.ResetArticleID()
		return nil
	case entitymention.FieldEntity:
		m.ResetEntity()
		return nil
	case entitymention.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entitymention.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	case entitymention.FieldSentiment:
		m.ResetSentiment()
		return nil
	case entitymention.FieldConfidence:
		m.ResetConfidence()
		return nil
	case entitymention.FieldSource:
		m.ResetSource()
		return nil
	case entitymention.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityMention field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMentionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.article != nil {
		edges = append(edges, entitymention.EdgeArticle)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMentionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entitymention.EdgeArticle:
		if id := m.article; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMentionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMentionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMentionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedarticle {
		edges = append(edges, entitymention.EdgeArticle)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMentionMutation) EdgeCleared(name string) bool {
	switch name {
	case entitymention.EdgeArticle:
		return m.clearedarticle
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMentionMutation) ClearEdge(name string) error {
	switch name {
	case entitymention.EdgeArticle:
		m.ClearArticle()
		return nil
	}
	return fmt.Errorf("unknown EntityMention unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMentionMutation) ResetEdge(name string) error {
	switch name {
	case entitymention.EdgeArticle:
		m.ResetArticle()
		return nil
	}
	return fmt.Errorf("unknown EntityMention edge %s", name)
}

// NarrativeMutation represents an operation that mutates the Narrative nodes in the graph.
type NarrativeMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	title                    *string
	summary                  *string
	theme                    *string
	nucleus_entity           *string
	entities                 *[]string
	appendentities           []string
	article_ids              *[]string
	appendarticle_ids        []string
	article_count            *int
	addarticle_count         *int
	fingerprint              *models.Fingerprint
	lifecycle_state          *narrative.LifecycleState
	lifecycle_history        *[]models.LifecycleEntry
	appendlifecycle_history  []models.LifecycleEntry
	mention_velocity         *float64
	addmention_velocity      *float64
	momentum                 *narrative.Momentum
	recency_score            *float64
	addrecency_score         *float64
	first_seen               *time.Time
	last_updated             *time.Time
	days_active              *int
	adddays_active           *int
	reawakening_count        *int
	addreawakening_count     *int
	reawakened_from          *time.Time
	resurrection_velocity    *float64
	addresurrection_velocity *float64
	peak_activity            *models.PeakActivity
	merged_into              *string
	version                  *int
	addversion               *int
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Narrative, error)
	predicates               []predicate.Narrative
}

var _ ent.Mutation = (*NarrativeMutation)(nil)

// narrativeOption allows management of the mutation configuration using functional options.
type narrativeOption func(*NarrativeMutation)

// newNarrativeMutation creates new mutation for the Narrative entity.
func newNarrativeMutation(c config, op Op, opts ...narrativeOption) *NarrativeMutation {
	m := &NarrativeMutation{
		config:        c,
		op:            op,
		typ:           TypeNarrative,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNarrativeID sets the ID field of the mutation.
func withNarrativeID(id string) narrativeOption {
	return func(m *NarrativeMutation) {
		var (
			err   error
			once  sync.Once
			value *Narrative
		)
		m.oldValue = func(ctx context.Context) (*Narrative, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Narrative.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNarrative sets the old Narrative of the mutation.
func withNarrative(node *Narrative) narrativeOption {
	return func(m *NarrativeMutation) {
		m.oldValue = func(context.Context) (*Narrative, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NarrativeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NarrativeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Narrative entities.
func (m *NarrativeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NarrativeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NarrativeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Narrative.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *NarrativeMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NarrativeMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NarrativeMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *NarrativeMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *NarrativeMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *NarrativeMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[narrative.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *NarrativeMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[narrative.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *NarrativeMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, narrative.FieldSummary)
}

// SetTheme sets the "theme" field.
func (m *NarrativeMutation) SetTheme(s string) {
	m.theme = &s
}

// Theme returns the value of the "theme" field in the mutation.
func (m *NarrativeMutation) Theme() (r string, exists bool) {
	v := m.theme
	if v == nil {
		return
	}
	return *v, true
}

// OldTheme returns the old "theme" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldTheme(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheme: %w", err)
	}
	return oldValue.Theme, nil
}

// ClearTheme clears the value of the "theme" field.
func (m *NarrativeMutation) ClearTheme() {
	m.theme = nil
	m.clearedFields[narrative.FieldTheme] = struct{}{}
}

// ThemeCleared returns if the "theme" field was cleared in this mutation.
func (m *NarrativeMutation) ThemeCleared() bool {
	_, ok := m.clearedFields[narrative.FieldTheme]
	return ok
}

// ResetTheme resets all changes to the "theme" field.
func (m *NarrativeMutation) ResetTheme() {
	m.theme = nil
	delete(m.clearedFields, narrative.FieldTheme)
}

// SetNucleusEntity sets the "nucleus_entity" field.
func (m *NarrativeMutation) SetNucleusEntity(s string) {
	m.nucleus_entity = &s
}

// NucleusEntity returns the value of the "nucleus_entity" field in the mutation.
func (m *NarrativeMutation) NucleusEntity() (r string, exists bool) {
	v := m.nucleus_entity
	if v == nil {
		return
	}
	return *v, true
}

// OldNucleusEntity returns the old "nucleus_entity" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldNucleusEntity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNucleusEntity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNucleusEntity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNucleusEntity: %w", err)
	}
	return oldValue.NucleusEntity, nil
}

// ResetNucleusEntity resets all changes to the "nucleus_entity" field.
func (m *NarrativeMutation) ResetNucleusEntity() {
	m.nucleus_entity = nil
}

// SetEntities sets the "entities" field.
func (m *NarrativeMutation) SetEntities(s []string) {
	m.entities = &s
	m.appendentities = nil
}

// Entities returns the value of the "entities" field in the mutation.
func (m *NarrativeMutation) Entities() (r []string, exists bool) {
	v := m.entities
	if v == nil {
		return
	}
	return *v, true
}

// OldEntities returns the old "entities" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldEntities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntities: %w", err)
	}
	return oldValue.Entities, nil
}

// AppendEntities adds s to the "entities" field.
func (m *NarrativeMutation) AppendEntities(s []string) {
	m.appendentities = append(m.appendentities, s...)
}

// AppendedEntities returns the list of values that were appended to the "entities" field in this mutation.
func (m *NarrativeMutation) AppendedEntities() ([]string, bool) {
	if len(m.appendentities) == 0 {
		return nil, false
	}
	return m.appendentities, true
}

// ResetEntities resets all changes to the "entities" field.
func (m *NarrativeMutation) ResetEntities() {
	m.entities = nil
	m.appendentities = nil
}

// SetArticleIds sets the "article_ids" field.
func (m *NarrativeMutation) SetArticleIds(s []string) {
	m.article_ids = &s
	m.appendarticle_ids = nil
}

// ArticleIds returns the value of the "article_ids" field in the mutation.
func (m *NarrativeMutation) ArticleIds() (r []string, exists bool) {
	v := m.article_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleIds returns the old "article_ids" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldArticleIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleIds: %w", err)
	}
	return oldValue.ArticleIds, nil
}

// AppendArticleIds adds s to the "article_ids" field.
func (m *NarrativeMutation) AppendArticleIds(s []string) {
	m.appendarticle_ids = append(m.appendarticle_ids, s...)
}

// AppendedArticleIds returns the list of values that were appended to the "article_ids" field in this mutation.
func (m *NarrativeMutation) AppendedArticleIds() ([]string, bool) {
	if len(m.appendarticle_ids) == 0 {
		return nil, false
	}
	return m.appendarticle_ids, true
}

// ResetArticleIds resets all changes to the "article_ids" field.
func (m *NarrativeMutation) ResetArticleIds() {
	m.article_ids = nil
	m.appendarticle_ids = nil
}

// SetArticleCount sets the "article_count" field.
func (m *NarrativeMutation) SetArticleCount(i int) {
	m.article_count = &i
	m.addarticle_count = nil
}

// ArticleCount returns the value of the "article_count" field in the mutation.
func (m *NarrativeMutation) ArticleCount() (r int, exists bool) {
	v := m.article_count
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleCount returns the old "article_count" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldArticleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleCount: %w", err)
	}
	return oldValue.ArticleCount, nil
}

// AddArticleCount adds i to the "article_count" field.
func (m *NarrativeMutation) AddArticleCount(i int) {
	if m.addarticle_count != nil {
		*m.addarticle_count += i
	} else {
		m.addarticle_count = &i
	}
}

// AddedArticleCount returns the value that was added to the "article_count" field in this mutation.
func (m *NarrativeMutation) AddedArticleCount() (r int, exists bool) {
	v := m.addarticle_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleCount resets all changes to the "article_count" field.
func (m *NarrativeMutation) ResetArticleCount() {
	m.article_count = nil
	m.addarticle_count = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *NarrativeMutation) SetFingerprint(value models.Fingerprint) {
	m.fingerprint = &value
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *NarrativeMutation) Fingerprint() (r models.Fingerprint, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldFingerprint(ctx context.Context) (v models.Fingerprint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *NarrativeMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetLifecycleState sets the "lifecycle_state" field.
func (m *NarrativeMutation) SetLifecycleState(ns narrative.LifecycleState) {
	m.lifecycle_state = &ns
}

// LifecycleState returns the value of the "lifecycle_state" field in the mutation.
func (m *NarrativeMutation) LifecycleState() (r narrative.LifecycleState, exists bool) {
	v := m.lifecycle_state
	if v == nil {
		return
	}
	return *v, true
}

// OldLifecycleState returns the old "lifecycle_state" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldLifecycleState(ctx context.Context) (v narrative.LifecycleState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLifecycleState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLifecycleState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLifecycleState: %w", err)
	}
	return oldValue.LifecycleState, nil
}

// ResetLifecycleState resets all changes to the "lifecycle_state" field.
func (m *NarrativeMutation) ResetLifecycleState() {
	m.lifecycle_state = nil
}

// SetLifecycleHistory sets the "lifecycle_history" field.
func (m *NarrativeMutation) SetLifecycleHistory(me []models.LifecycleEntry) {
	m.lifecycle_history = &me
	m.appendlifecycle_history = nil
}

// LifecycleHistory returns the value of the "lifecycle_history" field in the mutation.
func (m *NarrativeMutation) LifecycleHistory() (r []models.LifecycleEntry, exists bool) {
	v := m.lifecycle_history
	if v == nil {
		return
	}
	return *v, true
}

// OldLifecycleHistory returns the old "lifecycle_history" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldLifecycleHistory(ctx context.Context) (v []models.LifecycleEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLifecycleHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLifecycleHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLifecycleHistory: %w", err)
	}
	return oldValue.LifecycleHistory, nil
}

// AppendLifecycleHistory adds me to the "lifecycle_history" field.
func (m *NarrativeMutation) AppendLifecycleHistory(me []models.LifecycleEntry) {
	m.appendlifecycle_history = append(m.appendlifecycle_history, me...)
}

// AppendedLifecycleHistory returns the list of values that were appended to the "lifecycle_history" field in this mutation.
func (m *NarrativeMutation) AppendedLifecycleHistory() ([]models.LifecycleEntry, bool) {
	if len(m.appendlifecycle_history) == 0 {
		return nil, false
	}
	return m.appendlifecycle_history, true
}

// ResetLifecycleHistory resets all changes to the "lifecycle_history" field.
func (m *NarrativeMutation) ResetLifecycleHistory() {
	m.lifecycle_history = nil
	m.appendlifecycle_history = nil
}

// SetMentionVelocity sets the "mention_velocity" field.
func (m *NarrativeMutation) SetMentionVelocity(f float64) {
	m.mention_velocity = &f
	m.addmention_velocity = nil
}

// MentionVelocity returns the value of the "mention_velocity" field in the mutation.
func (m *NarrativeMutation) MentionVelocity() (r float64, exists bool) {
	v := m.mention_velocity
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionVelocity returns the old "mention_velocity" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldMentionVelocity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionVelocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionVelocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionVelocity: %w", err)
	}
	return oldValue.MentionVelocity, nil
}

// AddMentionVelocity adds f to the "mention_velocity" field.
func (m *NarrativeMutation) AddMentionVelocity(f float64) {
	if m.addmention_velocity != nil {
		*m.addmention_velocity += f
	} else {
		m.addmention_velocity = &f
	}
}

// AddedMentionVelocity returns the value that was added to the "mention_velocity" field in this mutation.
func (m *NarrativeMutation) AddedMentionVelocity() (r float64, exists bool) {
	v := m.addmention_velocity
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentionVelocity resets all changes to the "mention_velocity" field.
func (m *NarrativeMutation) ResetMentionVelocity() {
	m.mention_velocity = nil
	m.addmention_velocity = nil
}

// SetMomentum sets the "momentum" field.
func (m *NarrativeMutation) SetMomentum(n narrative.Momentum) {
	m.momentum = &n
}

// Momentum returns the value of the "momentum" field in the mutation.
func (m *NarrativeMutation) Momentum() (r narrative.Momentum, exists bool) {
	v := m.momentum
	if v == nil {
		return
	}
	return *v, true
}

// OldMomentum returns the old "momentum" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldMomentum(ctx context.Context) (v narrative.Momentum, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMomentum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMomentum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMomentum: %w", err)
	}
	return oldValue.Momentum, nil
}

// ResetMomentum resets all changes to the "momentum" field.
func (m *NarrativeMutation) ResetMomentum() {
	m.momentum = nil
}

// SetRecencyScore sets the "recency_score" field.
func (m *NarrativeMutation) SetRecencyScore(f float64) {
	m.recency_score = &f
	m.addrecency_score = nil
}

// RecencyScore returns the value of the "recency_score" field in the mutation.
func (m *NarrativeMutation) RecencyScore() (r float64, exists bool) {
	v := m.recency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRecencyScore returns the old "recency_score" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldRecencyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecencyScore: %w", err)
	}
	return oldValue.RecencyScore, nil
}

// AddRecencyScore adds f to the "recency_score" field.
func (m *NarrativeMutation) AddRecencyScore(f float64) {
	if m.addrecency_score != nil {
		*m.addrecency_score += f
	} else {
		m.addrecency_score = &f
	}
}

// AddedRecencyScore returns the value that was added to the "recency_score" field in this mutation.
func (m *NarrativeMutation) AddedRecencyScore() (r float64, exists bool) {
	v := m.addrecency_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecencyScore resets all changes to the "recency_score" field.
func (m *NarrativeMutation) ResetRecencyScore() {
	m.recency_score = nil
	m.addrecency_score = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *NarrativeMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *NarrativeMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *NarrativeMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *NarrativeMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *NarrativeMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *NarrativeMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// SetDaysActive sets the "days_active" field.
func (m *NarrativeMutation) SetDaysActive(i int) {
	m.days_active = &i
	m.adddays_active = nil
}

// DaysActive returns the value of the "days_active" field in the mutation.
func (m *NarrativeMutation) DaysActive() (r int, exists bool) {
	v := m.days_active
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysActive returns the old "days_active" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldDaysActive(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysActive: %w", err)
	}
	return oldValue.DaysActive, nil
}

// AddDaysActive adds i to the "days_active" field.
func (m *NarrativeMutation) AddDaysActive(i int) {
	if m.adddays_active != nil {
		*m.adddays_active += i
	} else {
		m.adddays_active = &i
	}
}

// AddedDaysActive returns the value that was added to the "days_active" field in this mutation.
func (m *NarrativeMutation) AddedDaysActive() (r int, exists bool) {
	v := m.adddays_active
	if v == nil {
		return
	}
	return *v, true
}

// ResetDaysActive resets all changes to the "days_active" field.
func (m *NarrativeMutation) ResetDaysActive() {
	m.days_active = nil
	m.adddays_active = nil
}

// SetReawakeningCount sets the "reawakening_count" field.
func (m *NarrativeMutation) SetReawakeningCount(i int) {
	m.reawakening_count = &i
	m.addreawakening_count = nil
}

// ReawakeningCount returns the value of the "reawakening_count" field in the mutation.
func (m *NarrativeMutation) ReawakeningCount() (r int, exists bool) {
	v := m.reawakening_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReawakeningCount returns the old "reawakening_count" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldReawakeningCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReawakeningCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReawakeningCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReawakeningCount: %w", err)
	}
	return oldValue.ReawakeningCount, nil
}

// AddReawakeningCount adds i to the "reawakening_count" field.
func (m *NarrativeMutation) AddReawakeningCount(i int) {
	if m.addreawakening_count != nil {
		*m.addreawakening_count += i
	} else {
		m.addreawakening_count = &i
	}
}

// AddedReawakeningCount returns the value that was added to the "reawakening_count" field in this mutation.
func (m *NarrativeMutation) AddedReawakeningCount() (r int, exists bool) {
	v := m.addreawakening_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReawakeningCount resets all changes to the "reawakening_count" field.
func (m *NarrativeMutation) ResetReawakeningCount() {
	m.reawakening_count = nil
	m.addreawakening_count = nil
}

// SetReawakenedFrom sets the "reawakened_from" field.
func (m *NarrativeMutation) SetReawakenedFrom(t time.Time) {
	m.reawakened_from = &t
}

// ReawakenedFrom returns the value of the "reawakened_from" field in the mutation.
func (m *NarrativeMutation) ReawakenedFrom() (r time.Time, exists bool) {
	v := m.reawakened_from
	if v == nil {
		return
	}
	return *v, true
}

// OldReawakenedFrom returns the old "reawakened_from" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldReawakenedFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReawakenedFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReawakenedFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReawakenedFrom: %w", err)
	}
	return oldValue.ReawakenedFrom, nil
}

// ClearReawakenedFrom clears the value of the "reawakened_from" field.
func (m *NarrativeMutation) ClearReawakenedFrom() {
	m.reawakened_from = nil
	m.clearedFields[narrative.FieldReawakenedFrom] = struct{}{}
}

// ReawakenedFromCleared returns if the "reawakened_from" field was cleared in this mutation.
func (m *NarrativeMutation) ReawakenedFromCleared() bool {
	_, ok := m.clearedFields[narrative.FieldReawakenedFrom]
	return ok
}

// ResetReawakenedFrom resets all changes to the "reawakened_from" field.
func (m *NarrativeMutation) ResetReawakenedFrom() {
	m.reawakened_from = nil
	delete(m.clearedFields, narrative.FieldReawakenedFrom)
}

// SetResurrectionVelocity sets the "resurrection_velocity" field.
func (m *NarrativeMutation) SetResurrectionVelocity(f float64) {
	m.resurrection_velocity = &f
	m.addresurrection_velocity = nil
}

// ResurrectionVelocity returns the value of the "resurrection_velocity" field in the mutation.
func (m *NarrativeMutation) ResurrectionVelocity() (r float64, exists bool) {
	v := m.resurrection_velocity
	if v == nil {
		return
	}
	return *v, true
}

// OldResurrectionVelocity returns the old "resurrection_velocity" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldResurrectionVelocity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResurrectionVelocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResurrectionVelocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResurrectionVelocity: %w", err)
	}
	return oldValue.ResurrectionVelocity, nil
}

// AddResurrectionVelocity adds f to the "resurrection_velocity" field.
func (m *NarrativeMutation) AddResurrectionVelocity(f float64) {
	if m.addresurrection_velocity != nil {
		*m.addresurrection_velocity += f
	} else {
		m.addresurrection_velocity = &f
	}
}

// AddedResurrectionVelocity returns the value that was added to the "resurrection_velocity" field in this mutation.
func (m *NarrativeMutation) AddedResurrectionVelocity() (r float64, exists bool) {
	v := m.addresurrection_velocity
	if v == nil {
		return
	}
	return *v, true
}

// ClearResurrectionVelocity clears the value of the "resurrection_velocity" field.
func (m *NarrativeMutation) ClearResurrectionVelocity() {
	m.resurrection_velocity = nil
	m.addresurrection_velocity = nil
	m.clearedFields[narrative.FieldResurrectionVelocity] = struct{}{}
}

// ResurrectionVelocityCleared returns if the "resurrection_velocity" field was cleared in this mutation.
func (m *NarrativeMutation) ResurrectionVelocityCleared() bool {
	_, ok := m.clearedFields[narrative.FieldResurrectionVelocity]
	return ok
}

// ResetResurrectionVelocity resets all changes to the "resurrection_velocity" field.
func (m *NarrativeMutation) ResetResurrectionVelocity() {
	m.resurrection_velocity = nil
	m.addresurrection_velocity = nil
	delete(m.clearedFields, narrative.FieldResurrectionVelocity)
}

// SetPeakActivity sets the "peak_activity" field.
func (m *NarrativeMutation) SetPeakActivity(ma models.PeakActivity) {
	m.peak_activity = &ma
}

// PeakActivity returns the value of the "peak_activity" field in the mutation.
func (m *NarrativeMutation) PeakActivity() (r models.PeakActivity, exists bool) {
	v := m.peak_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldPeakActivity returns the old "peak_activity" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldPeakActivity(ctx context.Context) (v models.PeakActivity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeakActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeakActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeakActivity: %w", err)
	}
	return oldValue.PeakActivity, nil
}

// ClearPeakActivity clears the value of the "peak_activity" field.
func (m *NarrativeMutation) ClearPeakActivity() {
	m.peak_activity = nil
	m.clearedFields[narrative.FieldPeakActivity] = struct{}{}
}

// PeakActivityCleared returns if the "peak_activity" field was cleared in this mutation.
func (m *NarrativeMutation) PeakActivityCleared() bool {
	_, ok := m.clearedFields[narrative.FieldPeakActivity]
	return ok
}

// ResetPeakActivity resets all changes to the "peak_activity" field.
func (m *NarrativeMutation) ResetPeakActivity() {
	m.peak_activity = nil
	delete(m.clearedFields, narrative.FieldPeakActivity)
}

// SetMergedInto sets the "merged_into" field.
func (m *NarrativeMutation) SetMergedInto(s string) {
	m.merged_into = &s
}

// MergedInto returns the value of the "merged_into" field in the mutation.
func (m *NarrativeMutation) MergedInto() (r string, exists bool) {
	v := m.merged_into
	if v == nil {
		return
	}
	return *v, true
}

// OldMergedInto returns the old "merged_into" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldMergedInto(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergedInto is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergedInto requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergedInto: %w", err)
	}
	return oldValue.MergedInto, nil
}

// ClearMergedInto clears the value of the "merged_into" field.
func (m *NarrativeMutation) ClearMergedInto() {
	m.merged_into = nil
	m.clearedFields[narrative.FieldMergedInto] = struct{}{}
}

// MergedIntoCleared returns if the "merged_into" field was cleared in this mutation.
func (m *NarrativeMutation) MergedIntoCleared() bool {
	_, ok := m.clearedFields[narrative.FieldMergedInto]
	return ok
}

// ResetMergedInto resets all changes to the "merged_into" field.
func (m *NarrativeMutation) ResetMergedInto() {
	m.merged_into = nil
	delete(m.clearedFields, narrative.FieldMergedInto)
}

// SetVersion sets the "version" field.
func (m *NarrativeMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *NarrativeMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Narrative entity.
// If the Narrative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NarrativeMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *NarrativeMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *NarrativeMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *NarrativeMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the NarrativeMutation builder.
func (m *NarrativeMutation) Where(ps ...predicate.Narrative) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NarrativeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NarrativeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Narrative, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NarrativeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NarrativeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Narrative).
func (m *NarrativeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NarrativeMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.title != nil {
		fields = append(fields, narrative.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, narrative.FieldSummary)
	}
	if m.theme != nil {
		fields = append(fields, narrative.FieldTheme)
	}
	if m.nucleus_entity != nil {
		fields = append(fields, narrative.FieldNucleusEntity)
	}
	if m.entities != nil {
		fields = append(fields, narrative.FieldEntities)
	}
	if m.article_ids != nil {
		fields = append(fields, narrative.FieldArticleIds)
	}
	if m.article_count != nil {
		fields = append(fields, narrative.FieldArticleCount)
	}
	if m.fingerprint != nil {
		fields = append(fields, narrative.FieldFingerprint)
	}
	if m.lifecycle_state != nil {
		fields = append(fields, narrative.FieldLifecycleState)
	}
	if m.lifecycle_history != nil {
		fields = append(fields, narrative.FieldLifecycleHistory)
	}
	if m.mention_velocity != nil {
		fields = append(fields, narrative.FieldMentionVelocity)
	}
	if m.momentum != nil {
		fields = append(fields, narrative.FieldMomentum)
	}
	if m.recency_score != nil {
		fields = append(fields, narrative.FieldRecencyScore)
	}
	if m.first_seen != nil {
		fields = append(fields, narrative.FieldFirstSeen)
	}
	if m.last_updated != nil {
		fields = append(fields, narrative.FieldLastUpdated)
	}
	if m.days_active != nil {
		fields = append(fields, narrative.FieldDaysActive)
	}
	if m.reawakening_count != nil {
		fields = append(fields, narrative.FieldReawakeningCount)
	}
	if m.reawakened_from != nil {
		fields = append(fields, narrative.FieldReawakenedFrom)
	}
	if m.resurrection_velocity != nil {
		fields = append(fields, narrative.FieldResurrectionVelocity)
	}
	if m.peak_activity != nil {
		fields = append(fields, narrative.FieldPeakActivity)
	}
	if m.merged_into != nil {
		fields = append(fields, narrative.FieldMergedInto)
	}
	if m.version != nil {
		fields = append(fields, narrative.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NarrativeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case narrative.FieldTitle:
		return m.Title()
	case narrative.FieldSummary:
		return m.Summary()
	case narrative.FieldTheme:
		return m.Theme()
	case narrative.FieldNucleusEntity:
		return m.NucleusEntity()
	case narrative.FieldEntities:
		return m.Entities()
	case narrative.FieldArticleIds:
		return m.ArticleIds()
	case narrative.FieldArticleCount:
		return m.ArticleCount()
	case narrative.FieldFingerprint:
		return m.Fingerprint()
	case narrative.FieldLifecycleState:
		return m.LifecycleState()
	case narrative.FieldLifecycleHistory:
		return m.LifecycleHistory()
	case narrative.FieldMentionVelocity:
		return m.MentionVelocity()
	case narrative.FieldMomentum:
		return m.Momentum()
	case narrative.FieldRecencyScore:
		return m.RecencyScore()
	case narrative.FieldFirstSeen:
		return m.FirstSeen()
	case narrative.FieldLastUpdated:
		return m.LastUpdated()
	case narrative.FieldDaysActive:
		return m.DaysActive()
	case narrative.FieldReawakeningCount:
		return m.ReawakeningCount()
	case narrative.FieldReawakenedFrom:
		return m.ReawakenedFrom()
	case narrative.FieldResurrectionVelocity:
		return m.ResurrectionVelocity()
	case narrative.FieldPeakActivity:
		return m.PeakActivity()
	case narrative.FieldMergedInto:
		return m.MergedInto()
	case narrative.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NarrativeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case narrative.FieldTitle:
		return m.OldTitle(ctx)
	case narrative.FieldSummary:
		return m.OldSummary(ctx)
	case narrative.FieldTheme:
		return m.OldTheme(ctx)
	case narrative.FieldNucleusEntity:
		return m.OldNucleusEntity(ctx)
	case narrative.FieldEntities:
		return m.OldEntities(ctx)
	case narrative.FieldArticleIds:
		return m.OldArticleIds(ctx)
	case narrative.FieldArticleCount:
		return m.OldArticleCount(ctx)
	case narrative.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case narrative.FieldLifecycleState:
		return m.OldLifecycleState(ctx)
	case narrative.FieldLifecycleHistory:
		return m.OldLifecycleHistory(ctx)
	case narrative.FieldMentionVelocity:
		return m.OldMentionVelocity(ctx)
	case narrative.FieldMomentum:
		return m.OldMomentum(ctx)
	case narrative.FieldRecencyScore:
		return m.OldRecencyScore(ctx)
	case narrative.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case narrative.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	case narrative.FieldDaysActive:
		return m.OldDaysActive(ctx)
	case narrative.FieldReawakeningCount:
		return m.OldReawakeningCount(ctx)
	case narrative.FieldReawakenedFrom:
		return m.OldReawakenedFrom(ctx)
	case narrative.FieldResurrectionVelocity:
		return m.OldResurrectionVelocity(ctx)
	case narrative.FieldPeakActivity:
		return m.OldPeakActivity(ctx)
	case narrative.FieldMergedInto:
		return m.OldMergedInto(ctx)
	case narrative.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown Narrative field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NarrativeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case narrative.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case narrative.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case narrative.FieldTheme:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheme(v)
		return nil
	case narrative.FieldNucleusEntity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNucleusEntity(v)
		return nil
	case narrative.FieldEntities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntities(v)
		return nil
	case narrative.FieldArticleIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleIds(v)
		return nil
	case narrative.FieldArticleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleCount(v)
		return nil
	case narrative.FieldFingerprint:
		v, ok := value.(models.Fingerprint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case narrative.FieldLifecycleState:
		v, ok := value.(narrative.LifecycleState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLifecycleState(v)
		return nil
	case narrative.FieldLifecycleHistory:
		v, ok := value.([]models.LifecycleEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLifecycleHistory(v)
		return nil
	case narrative.FieldMentionVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionVelocity(v)
		return nil
	case narrative.FieldMomentum:
		v, ok := value.(narrative.Momentum)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMomentum(v)
		return nil
	case narrative.FieldRecencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecencyScore(v)
		return nil
	case narrative.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case narrative.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	case narrative.FieldDaysActive:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysActive(v)
		return nil
	case narrative.FieldReawakeningCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReawakeningCount(v)
		return nil
	case narrative.FieldReawakenedFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReawakenedFrom(v)
		return nil
	case narrative.FieldResurrectionVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResurrectionVelocity(v)
		return nil
	case narrative.FieldPeakActivity:
		v, ok := value.(models.PeakActivity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeakActivity(v)
		return nil
	case narrative.FieldMergedInto:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergedInto(v)
		return nil
	case narrative.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Narrative field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NarrativeMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_count != nil {
		fields = append(fields, narrative.FieldArticleCount)
	}
	if m.addmention_velocity != nil {
		fields = append(fields, narrative.FieldMentionVelocity)
	}
	if m.addrecency_score != nil {
		fields = append(fields, narrative.FieldRecencyScore)
	}
	if m.adddays_active != nil {
		fields = append(fields, narrative.FieldDaysActive)
	}
	if m.addreawakening_count != nil {
		fields = append(fields, narrative.FieldReawakeningCount)
	}
	if m.addresurrection_velocity != nil {
		fields = append(fields, narrative.FieldResurrectionVelocity)
	}
	if m.addversion != nil {
		fields = append(fields, narrative.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NarrativeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case narrative.FieldArticleCount:
		return m.AddedArticleCount()
	case narrative.FieldMentionVelocity:
		return m.AddedMentionVelocity()
	case narrative.FieldRecencyScore:
		return m.AddedRecencyScore()
	case narrative.FieldDaysActive:
		return m.AddedDaysActive()
	case narrative.FieldReawakeningCount:
		return m.AddedReawakeningCount()
	case narrative.FieldResurrectionVelocity:
		return m.AddedResurrectionVelocity()
	case narrative.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NarrativeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case narrative.FieldArticleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleCount(v)
		return nil
	case narrative.FieldMentionVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentionVelocity(v)
		return nil
	case narrative.FieldRecencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecencyScore(v)
		return nil
	case narrative.FieldDaysActive:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDaysActive(v)
		return nil
	case narrative.FieldReawakeningCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReawakeningCount(v)
		return nil
	case narrative.FieldResurrectionVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResurrectionVelocity(v)
		return nil
	case narrative.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Narrative numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NarrativeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(narrative.FieldSummary) {
		fields = append(fields, narrative.FieldSummary)
	}
	if m.FieldCleared(narrative.FieldTheme) {
		fields = append(fields, narrative.FieldTheme)
	}
	if m.FieldCleared(narrative.FieldReawakenedFrom) {
		fields = append(fields, narrative.FieldReawakenedFrom)
	}
	if m.FieldCleared(narrative.FieldResurrectionVelocity) {
		fields = append(fields, narrative.FieldResurrectionVelocity)
	}
	if m.FieldCleared(narrative.FieldPeakActivity) {
		fields = append(fields, narrative.FieldPeakActivity)
	}
	if m.FieldCleared(narrative.FieldMergedInto) {
		fields = append(fields, narrative.FieldMergedInto)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NarrativeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NarrativeMutation) ClearField(name string) error {
	switch name {
	case narrative.FieldSummary:
		m.ClearSummary()
		return nil
	case narrative.FieldTheme:
		m.ClearTheme()
		return nil
	case narrative.FieldReawakenedFrom:
		m.ClearReawakenedFrom()
		return nil
	case narrative.FieldResurrectionVelocity:
		m.ClearResurrectionVelocity()
		return nil
	case narrative.FieldPeakActivity:
		m.ClearPeakActivity()
		return nil
	case narrative.FieldMergedInto:
		m.ClearMergedInto()
		return nil
	}
	return fmt.Errorf("unknown Narrative nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NarrativeMutation) ResetField(name string) error {
	switch name {
	case narrative.FieldTitle:
		m.ResetTitle()
		return nil
	case narrative.FieldSummary:
		m.ResetSummary()
		return nil
	case narrative.FieldTheme:
		m.ResetTheme()
		return nil
	case narrative.FieldNucleusEntity:
		m.ResetNucleusEntity()
		return nil
	case narrative.FieldEntities:
		m.ResetEntities()
		return nil
	case narrative.FieldArticleIds:
		m.ResetArticleIds()
		return nil
	case narrative.FieldArticleCount:
		m.ResetArticleCount()
		return nil
	case narrative.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case narrative.FieldLifecycleState:
		m.ResetLifecycleState()
		return nil
	case narrative.FieldLifecycleHistory:
		m.ResetLifecycleHistory()
		return nil
	case narrative.FieldMentionVelocity:
		m.ResetMentionVelocity()
		return nil
	case narrative.FieldMomentum:
		m.ResetMomentum()
		return nil
	case narrative.FieldRecencyScore:
		m.ResetRecencyScore()
		return nil
	case narrative.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case narrative.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	case narrative.FieldDaysActive:
		m.ResetDaysActive()
		return nil
	case narrative.FieldReawakeningCount:
		m.ResetReawakeningCount()
		return nil
	case narrative.FieldReawakenedFrom:
		m.ResetReawakenedFrom()
		return nil
	case narrative.FieldResurrectionVelocity:
		m.ResetResurrectionVelocity()
		return nil
	case narrative.FieldPeakActivity:
		m.ResetPeakActivity()
		return nil
	case narrative.FieldMergedInto:
		m.ResetMergedInto()
		return nil
	case narrative.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown Narrative field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NarrativeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NarrativeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NarrativeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NarrativeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NarrativeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NarrativeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NarrativeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Narrative unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NarrativeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Narrative edge %s", name)
}

// SignalScoreMutation represents an operation that mutates the SignalScore nodes in the graph.
type SignalScoreMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	entity                  *string
	entity_type             *string
	first_seen              *time.Time
	updated_at              *time.Time
	score_24h               *float64
	addscore_24h            *float64
	velocity_24h            *float64
	addvelocity_24h         *float64
	mentions_24h            *int
	addmentions_24h         *int
	recency_24h             *float64
	addrecency_24h          *float64
	score_7d                *float64
	addscore_7d             *float64
	velocity_7d             *float64
	addvelocity_7d          *float64
	mentions_7d             *int
	addmentions_7d          *int
	recency_7d              *float64
	addrecency_7d           *float64
	score_30d               *float64
	addscore_30d            *float64
	velocity_30d            *float64
	addvelocity_30d         *float64
	mentions_30d            *int
	addmentions_30d         *int
	recency_30d             *float64
	addrecency_30d          *float64
	sentiment_avg           *float64
	addsentiment_avg        *float64
	sentiment_min           *float64
	addsentiment_min        *float64
	sentiment_max           *float64
	addsentiment_max        *float64
	sentiment_divergence    *float64
	addsentiment_divergence *float64
	source_count            *int
	addsource_count         *int
	narrative_ids           *[]string
	appendnarrative_ids     []string
	is_emerging             *bool
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*SignalScore, error)
	predicates              []predicate.SignalScore
}

var _ ent.Mutation = (*SignalScoreMutation)(nil)

// signalscoreOption allows management of the mutation configuration using functional options.
type signalscoreOption func(*SignalScoreMutation)

// newSignalScoreMutation creates new mutation for the SignalScore entity.
func newSignalScoreMutation(c config, op Op, opts ...signalscoreOption) *SignalScoreMutation {
	m := &SignalScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeSignalScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSignalScoreID sets the ID field of the mutation.
func withSignalScoreID(id string) signalscoreOption {
	return func(m *SignalScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *SignalScore
		)
		m.oldValue = func(ctx context.Context) (*SignalScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SignalScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSignalScore sets the old SignalScore of the mutation.
func withSignalScore(node *SignalScore) signalscoreOption {
	return func(m *SignalScoreMutation) {
		m.oldValue = func(context.Context) (*SignalScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SignalScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SignalScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SignalScore entities.
func (m *SignalScoreMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SignalScoreMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SignalScoreMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SignalScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntity sets the "entity" field.
func (m *SignalScoreMutation) SetEntity(s string) {
	m.entity = &s
}

// Entity returns the value of the "entity" field in the mutation.
func (m *SignalScoreMutation) Entity() (r string, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntity returns the old "entity" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldEntity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntity: %w", err)
	}
	return oldValue.Entity, nil
}

// ResetEntity resets all changes to the "entity" field.
func (m *SignalScoreMutation) ResetEntity() {
	m.entity = nil
}

// SetEntityType sets the "entity_type" field.
func (m *SignalScoreMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *SignalScoreMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *SignalScoreMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *SignalScoreMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *SignalScoreMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *SignalScoreMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SignalScoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SignalScoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SignalScoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetScore24h sets the "score_24h" field.
func (m *SignalScoreMutation) SetScore24h(f float64) {
	m.score_24h = &f
	m.addscore_24h = nil
}

// Score24h returns the value of the "score_24h" field in the mutation.
func (m *SignalScoreMutation) Score24h() (r float64, exists bool) {
	v := m.score_24h
	if v == nil {
		return
	}
	return *v, true
}

// OldScore24h returns the old "score_24h" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldScore24h(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore24h is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore24h requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore24h: %w", err)
	}
	return oldValue.Score24h, nil
}

// AddScore24h adds f to the "score_24h" field.
func (m *SignalScoreMutation) AddScore24h(f float64) {
	if m.addscore_24h != nil {
		*m.addscore_24h += f
	} else {
		m.addscore_24h = &f
	}
}

// AddedScore24h returns the value that was added to the "score_24h" field in this mutation.
func (m *SignalScoreMutation) AddedScore24h() (r float64, exists bool) {
	v := m.addscore_24h
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore24h resets all changes to the "score_24h" field.
func (m *SignalScoreMutation) ResetScore24h() {
	m.score_24h = nil
	m.addscore_24h = nil
}

// SetVelocity24h sets the "velocity_24h" field.
func (m *SignalScoreMutation) SetVelocity24h(f float64) {
	m.velocity_24h = &f
	m.addvelocity_24h = nil
}

// Velocity24h returns the value of the "velocity_24h" field in the mutation.
func (m *SignalScoreMutation) Velocity24h() (r float64, exists bool) {
	v := m.velocity_24h
	if v == nil {
		return
	}
	return *v, true
}

// OldVelocity24h returns the old "velocity_24h" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldVelocity24h(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVelocity24h is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVelocity24h requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVelocity24h: %w", err)
	}
	return oldValue.Velocity24h, nil
}

// AddVelocity24h adds f to the "velocity_24h" field.
func (m *SignalScoreMutation) AddVelocity24h(f float64) {
	if m.addvelocity_24h != nil {
		*m.addvelocity_24h += f
	} else {
		m.addvelocity_24h = &f
	}
}

// AddedVelocity24h returns the value that was added to the "velocity_24h" field in this mutation.
func (m *SignalScoreMutation) AddedVelocity24h() (r float64, exists bool) {
	v := m.addvelocity_24h
	if v == nil {
		return
	}
	return *v, true
}

// ResetVelocity24h resets all changes to the "velocity_24h" field.
func (m *SignalScoreMutation) ResetVelocity24h() {
	m.velocity_24h = nil
	m.addvelocity_24h = nil
}

// SetMentions24h sets the "mentions_24h" field.
func (m *SignalScoreMutation) SetMentions24h(i int) {
	m.mentions_24h = &i
	m.addmentions_24h = nil
}

// Mentions24h returns the value of the "mentions_24h" field in the mutation.
func (m *SignalScoreMutation) Mentions24h() (r int, exists bool) {
	v := m.mentions_24h
	if v == nil {
		return
	}
	return *v, true
}

// OldMentions24h returns the old "mentions_24h" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldMentions24h(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentions24h is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentions24h requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentions24h: %w", err)
	}
	return oldValue.Mentions24h, nil
}

// AddMentions24h adds i to the "mentions_24h" field.
func (m *SignalScoreMutation) AddMentions24h(i int) {
	if m.addmentions_24h != nil {
		*m.addmentions_24h += i
	} else {
		m.addmentions_24h = &i
	}
}

// AddedMentions24h returns the value that was added to the "mentions_24h" field in this mutation.
func (m *SignalScoreMutation) AddedMentions24h() (r int, exists bool) {
	v := m.addmentions_24h
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentions24h resets all changes to the "mentions_24h" field.
func (m *SignalScoreMutation) ResetMentions24h() {
	m.mentions_24h = nil
	m.addmentions_24h = nil
}

// SetRecency24h sets the "recency_24h" field.
func (m *SignalScoreMutation) SetRecency24h(f float64) {
	m.recency_24h = &f
	m.addrecency_24h = nil
}

// Recency24h returns the value of the "recency_24h" field in the mutation.
func (m *SignalScoreMutation) Recency24h() (r float64, exists bool) {
	v := m.recency_24h
	if v == nil {
		return
	}
	return *v, true
}

// OldRecency24h returns the old "recency_24h" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldRecency24h(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecency24h is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecency24h requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecency24h: %w", err)
	}
	return oldValue.Recency24h, nil
}

// AddRecency24h adds f to the "recency_24h" field.
func (m *SignalScoreMutation) AddRecency24h(f float64) {
	if m.addrecency_24h != nil {
		*m.addrecency_24h += f
	} else {
		m.addrecency_24h = &f
	}
}

// AddedRecency24h returns the value that was added to the "recency_24h" field in this mutation.
func (m *SignalScoreMutation) AddedRecency24h() (r float64, exists bool) {
	v := m.addrecency_24h
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecency24h resets all changes to the "recency_24h" field.
func (m *SignalScoreMutation) ResetRecency24h() {
	m.recency_24h = nil
	m.addrecency_24h = nil
}

// SetScore7d sets the "score_7d" field.
func (m *SignalScoreMutation) SetScore7d(f float64) {
	m.score_7d = &f
	m.addscore_7d = nil
}

// Score7d returns the value of the "score_7d" field in the mutation.
func (m *SignalScoreMutation) Score7d() (r float64, exists bool) {
	v := m.score_7d
	if v == nil {
		return
	}
	return *v, true
}

// OldScore7d returns the old "score_7d" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldScore7d(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore7d is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore7d requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore7d: %w", err)
	}
	return oldValue.Score7d, nil
}

// AddScore7d adds f to the "score_7d" field.
func (m *SignalScoreMutation) AddScore7d(f float64) {
	if m.addscore_7d != nil {
		*m.addscore_7d += f
	} else {
		m.addscore_7d = &f
	}
}

// AddedScore7d returns the value that was added to the "score_7d" field in this mutation.
func (m *SignalScoreMutation) AddedScore7d() (r float64, exists bool) {
	v := m.addscore_7d
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore7d resets all changes to the "score_7d" field.
func (m *SignalScoreMutation) ResetScore7d() {
	m.score_7d = nil
	m.addscore_7d = nil
}

// SetVelocity7d sets the "velocity_7d" field.
func (m *SignalScoreMutation) SetVelocity7d(f float64) {
	m.velocity_7d = &f
	m.addvelocity_7d = nil
}

// Velocity7d returns the value of the "velocity_7d" field in the mutation.
func (m *SignalScoreMutation) Velocity7d() (r float64, exists bool) {
	v := m.velocity_7d
	if v == nil {
		return
	}
	return *v, true
}

// OldVelocity7d returns the old "velocity_7d" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldVelocity7d(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVelocity7d is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVelocity7d requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVelocity7d: %w", err)
	}
	return oldValue.Velocity7d, nil
}

// AddVelocity7d adds f to the "velocity_7d" field.
func (m *SignalScoreMutation) AddVelocity7d(f float64) {
	if m.addvelocity_7d != nil {
		*m.addvelocity_7d += f
	} else {
		m.addvelocity_7d = &f
	}
}

// AddedVelocity7d returns the value that was added to the "velocity_7d" field in this mutation.
func (m *SignalScoreMutation) AddedVelocity7d() (r float64, exists bool) {
	v := m.addvelocity_7d
	if v == nil {
		return
	}
	return *v, true
}

// ResetVelocity7d resets all changes to the "velocity_7d" field.
func (m *SignalScoreMutation) ResetVelocity7d() {
	m.velocity_7d = nil
	m.addvelocity_7d = nil
}

// SetMentions7d sets the "mentions_7d" field.
func (m *SignalScoreMutation) SetMentions7d(i int) {
	m.mentions_7d = &i
	m.addmentions_7d = nil
}

// Mentions7d returns the value of the "mentions_7d" field in the mutation.
func (m *SignalScoreMutation) Mentions7d() (r int, exists bool) {
	v := m.mentions_7d
	if v == nil {
		return
	}
	return *v, true
}

// OldMentions7d returns the old "mentions_7d" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldMentions7d(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentions7d is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentions7d requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentions7d: %w", err)
	}
	return oldValue.Mentions7d, nil
}

// AddMentions7d adds i to the "mentions_7d" field.
func (m *SignalScoreMutation) AddMentions7d(i int) {
	if m.addmentions_7d != nil {
		*m.addmentions_7d += i
	} else {
		m.addmentions_7d = &i
	}
}

// AddedMentions7d returns the value that was added to the "mentions_7d" field in this mutation.
func (m *SignalScoreMutation) AddedMentions7d() (r int, exists bool) {
	v := m.addmentions_7d
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentions7d resets all changes to the "mentions_7d" field.
func (m *SignalScoreMutation) ResetMentions7d() {
	m.mentions_7d = nil
	m.addmentions_7d = nil
}

// SetRecency7d sets the "recency_7d" field.
func (m *SignalScoreMutation) SetRecency7d(f float64) {
	m.recency_7d = &f
	m.addrecency_7d = nil
}

// Recency7d returns the value of the "recency_7d" field in the mutation.
func (m *SignalScoreMutation) Recency7d() (r float64, exists bool) {
	v := m.recency_7d
	if v == nil {
		return
	}
	return *v, true
}

// OldRecency7d returns the old "recency_7d" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldRecency7d(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecency7d is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecency7d requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecency7d: %w", err)
	}
	return oldValue.Recency7d, nil
}

// AddRecency7d adds f to the "recency_7d" field.
func (m *SignalScoreMutation) AddRecency7d(f float64) {
	if m.addrecency_7d != nil {
		*m.addrecency_7d += f
	} else {
		m.addrecency_7d = &f
	}
}

// AddedRecency7d returns the value that was added to the "recency_7d" field in this mutation.
func (m *SignalScoreMutation) AddedRecency7d() (r float64, exists bool) {
	v := m.addrecency_7d
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecency7d resets all changes to the "recency_7d" field.
func (m *SignalScoreMutation) ResetRecency7d() {
	m.recency_7d = nil
	m.addrecency_7d = nil
}

// SetScore30d sets the "score_30d" field.
func (m *SignalScoreMutation) SetScore30d(f float64) {
	m.score_30d = &f
	m.addscore_30d = nil
}

// Score30d returns the value of the "score_30d" field in the mutation.
func (m *SignalScoreMutation) Score30d() (r float64, exists bool) {
	v := m.score_30d
	if v == nil {
		return
	}
	return *v, true
}

// OldScore30d returns the old "score_30d" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldScore30d(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore30d is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore30d requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore30d: %w", err)
	}
	return oldValue.Score30d, nil
}

// AddScore30d adds f to the "score_30d" field.
func (m *SignalScoreMutation) AddScore30d(f float64) {
	if m.addscore_30d != nil {
		*m.addscore_30d += f
	} else {
		m.addscore_30d = &f
	}
}

// AddedScore30d returns the value that was added to the "score_30d" field in this mutation.
func (m *SignalScoreMutation) AddedScore30d() (r float64, exists bool) {
	v := m.addscore_30d
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore30d resets all changes to the "score_30d" field.
func (m *SignalScoreMutation) ResetScore30d() {
	m.score_30d = nil
	m.addscore_30d = nil
}

// SetVelocity30d sets the "velocity_30d" field.
func (m *SignalScoreMutation) SetVelocity30d(f float64) {
	m.velocity_30d = &f
	m.addvelocity_30d = nil
}

// Velocity30d returns the value of the "velocity_30d" field in the mutation.
func (m *SignalScoreMutation) Velocity30d() (r float64, exists bool) {
	v := m.velocity_30d
	if v == nil {
		return
	}
	return *v, true
}

// OldVelocity30d returns the old "velocity_30d" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldVelocity30d(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVelocity30d is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVelocity30d requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVelocity30d: %w", err)
	}
	return oldValue.Velocity30d, nil
}

// AddVelocity30d adds f to the "velocity_30d" field.
func (m *SignalScoreMutation) AddVelocity30d(f float64) {
	if m.addvelocity_30d != nil {
		*m.addvelocity_30d += f
	} else {
		m.addvelocity_30d = &f
	}
}

// AddedVelocity30d returns the value that was added to the "velocity_30d" field in this mutation.
func (m *SignalScoreMutation) AddedVelocity30d() (r float64, exists bool) {
	v := m.addvelocity_30d
	if v == nil {
		return
	}
	return *v, true
}

// ResetVelocity30d resets all changes to the "velocity_30d" field.
func (m *SignalScoreMutation) ResetVelocity30d() {
	m.velocity_30d = nil
	m.addvelocity_30d = nil
}

// SetMentions30d sets the "mentions_30d" field.
func (m *SignalScoreMutation) SetMentions30d(i int) {
	m.mentions_30d = &i
	m.addmentions_30d = nil
}

// Mentions30d returns the value of the "mentions_30d" field in the mutation.
func (m *SignalScoreMutation) Mentions30d() (r int, exists bool) {
	v := m.mentions_30d
	if v == nil {
		return
	}
	return *v, true
}

// OldMentions30d returns the old "mentions_30d" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldMentions30d(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentions30d is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentions30d requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentions30d: %w", err)
	}
	return oldValue.Mentions30d, nil
}

// AddMentions30d adds i to the "mentions_30d" field.
func (m *SignalScoreMutation) AddMentions30d(i int) {
	if m.addmentions_30d != nil {
		*m.addmentions_30d += i
	} else {
		m.addmentions_30d = &i
	}
}

// AddedMentions30d returns the value that was added to the "mentions_30d" field in this mutation.
func (m *SignalScoreMutation) AddedMentions30d() (r int, exists bool) {
	v := m.addmentions_30d
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentions30d resets all changes to the "mentions_30d" field.
func (m *SignalScoreMutation) ResetMentions30d() {
	m.mentions_30d = nil
	m.addmentions_30d = nil
}

// SetRecency30d sets the "recency_30d" field.
func (m *SignalScoreMutation) SetRecency30d(f float64) {
	m.recency_30d = &f
	m.addrecency_30d = nil
}

// Recency30d returns the value of the "recency_30d" field in the mutation.
func (m *SignalScoreMutation) Recency30d() (r float64, exists bool) {
	v := m.recency_30d
	if v == nil {
		return
	}
	return *v, true
}

// OldRecency30d returns the old "recency_30d" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldRecency30d(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecency30d is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecency30d requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecency30d: %w", err)
	}
	return oldValue.Recency30d, nil
}

// AddRecency30d adds f to the "recency_30d" field.
func (m *SignalScoreMutation) AddRecency30d(f float64) {
	if m.addrecency_30d != nil {
		*m.addrecency_30d += f
	} else {
		m.addrecency_30d = &f
	}
}

// AddedRecency30d returns the value that was added to the "recency_30d" field in this mutation.
func (m *SignalScoreMutation) AddedRecency30d() (r float64, exists bool) {
	v := m.addrecency_30d
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecency30d resets all changes to the "recency_30d" field.
func (m *SignalScoreMutation) ResetRecency30d() {
	m.recency_30d = nil
	m.addrecency_30d = nil
}

// SetSentimentAvg sets the "sentiment_avg" field.
func (m *SignalScoreMutation) SetSentimentAvg(f float64) {
	m.sentiment_avg = &f
	m.addsentiment_avg = nil
}

// SentimentAvg returns the value of the "sentiment_avg" field in the mutation.
func (m *SignalScoreMutation) SentimentAvg() (r float64, exists bool) {
	v := m.sentiment_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentAvg returns the old "sentiment_avg" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldSentimentAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentAvg: %w", err)
	}
	return oldValue.SentimentAvg, nil
}

// AddSentimentAvg adds f to the "sentiment_avg" field.
func (m *SignalScoreMutation) AddSentimentAvg(f float64) {
	if m.addsentiment_avg != nil {
		*m.addsentiment_avg += f
	} else {
		m.addsentiment_avg = &f
	}
}

// AddedSentimentAvg returns the value that was added to the "sentiment_avg" field in this mutation.
func (m *SignalScoreMutation) AddedSentimentAvg() (r float64, exists bool) {
	v := m.addsentiment_avg
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentimentAvg resets all changes to the "sentiment_avg" field.
func (m *SignalScoreMutation) ResetSentimentAvg() {
	m.sentiment_avg = nil
	m.addsentiment_avg = nil
}

// SetSentimentMin sets the "sentiment_min" field.
func (m *SignalScoreMutation) SetSentimentMin(f float64) {
	m.sentiment_min = &f
	m.addsentiment_min = nil
}

// SentimentMin returns the value of the "sentiment_min" field in the mutation.
func (m *SignalScoreMutation) SentimentMin() (r float64, exists bool) {
	v := m.sentiment_min
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentMin returns the old "sentiment_min" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldSentimentMin(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentMin: %w", err)
	}
	return oldValue.SentimentMin, nil
}

// AddSentimentMin adds f to the "sentiment_min" field.
func (m *SignalScoreMutation) AddSentimentMin(f float64) {
	if m.addsentiment_min != nil {
		*m.addsentiment_min += f
	} else {
		m.addsentiment_min = &f
	}
}

// AddedSentimentMin returns the value that was added to the "sentiment_min" field in this mutation.
func (m *SignalScoreMutation) AddedSentimentMin() (r float64, exists bool) {
	v := m.addsentiment_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentimentMin resets all changes to the "sentiment_min" field.
func (m *SignalScoreMutation) ResetSentimentMin() {
	m.sentiment_min = nil
	m.addsentiment_min = nil
}

// SetSentimentMax sets the "sentiment_max" field.
func (m *SignalScoreMutation) SetSentimentMax(f float64) {
	m.sentiment_max = &f
	m.addsentiment_max = nil
}

// SentimentMax returns the value of the "sentiment_max" field in the mutation.
func (m *SignalScoreMutation) SentimentMax() (r float64, exists bool) {
	v := m.sentiment_max
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentMax returns the old "sentiment_max" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldSentimentMax(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentMax: %w", err)
	}
	return oldValue.SentimentMax, nil
}

// AddSentimentMax adds f to the "sentiment_max" field.
func (m *SignalScoreMutation) AddSentimentMax(f float64) {
	if m.addsentiment_max != nil {
		*m.addsentiment_max += f
	} else {
		m.addsentiment_max = &f
	}
}

// AddedSentimentMax returns the value that was added to the "sentiment_max" field in this mutation.
func (m *SignalScoreMutation) AddedSentimentMax() (r float64, exists bool) {
	v := m.addsentiment_max
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentimentMax resets all changes to the "sentiment_max" field.
func (m *SignalScoreMutation) ResetSentimentMax() {
	m.sentiment_max = nil
	m.addsentiment_max = nil
}

// SetSentimentDivergence sets the "sentiment_divergence" field.
func (m *SignalScoreMutation) SetSentimentDivergence(f float64) {
	m.sentiment_divergence = &f
	m.addsentiment_divergence = nil
}

// SentimentDivergence returns the value of the "sentiment_divergence" field in the mutation.
func (m *SignalScoreMutation) SentimentDivergence() (r float64, exists bool) {
	v := m.sentiment_divergence
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentDivergence returns the old "sentiment_divergence" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldSentimentDivergence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentDivergence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentDivergence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentDivergence: %w", err)
	}
	return oldValue.SentimentDivergence, nil
}

// AddSentimentDivergence adds f to the "sentiment_divergence" field.
func (m *SignalScoreMutation) AddSentimentDivergence(f float64) {
	if m.addsentiment_divergence != nil {
		*m.addsentiment_divergence += f
	} else {
		m.addsentiment_divergence = &f
	}
}

// AddedSentimentDivergence returns the value that was added to the "sentiment_divergence" field in this mutation.
func (m *SignalScoreMutation) AddedSentimentDivergence() (r float64, exists bool) {
	v := m.addsentiment_divergence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentimentDivergence resets all changes to the "sentiment_divergence" field.
func (m *SignalScoreMutation) ResetSentimentDivergence() {
	m.sentiment_divergence = nil
	m.addsentiment_divergence = nil
}

// SetSourceCount sets the "source_count" field.
func (m *SignalScoreMutation) SetSourceCount(i int) {
	m.source_count = &i
	m.addsource_count = nil
}

// SourceCount returns the value of the "source_count" field in the mutation.
func (m *SignalScoreMutation) SourceCount() (r int, exists bool) {
	v := m.source_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceCount returns the old "source_count" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldSourceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceCount: %w", err)
	}
	return oldValue.SourceCount, nil
}

// AddSourceCount adds i to the "source_count" field.
func (m *SignalScoreMutation) AddSourceCount(i int) {
	if m.addsource_count != nil {
		*m.addsource_count += i
	} else {
		m.addsource_count = &i
	}
}

// AddedSourceCount returns the value that was added to the "source_count" field in this mutation.
func (m *SignalScoreMutation) AddedSourceCount() (r int, exists bool) {
	v := m.addsource_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceCount resets all changes to the "source_count" field.
func (m *SignalScoreMutation) ResetSourceCount() {
	m.source_count = nil
	m.addsource_count = nil
}

// SetNarrativeIds sets the "narrative_ids" field.
func (m *SignalScoreMutation) SetNarrativeIds(s []string) {
	m.narrative_ids = &s
	m.appendnarrative_ids = nil
}

// NarrativeIds returns the value of the "narrative_ids" field in the mutation.
func (m *SignalScoreMutation) NarrativeIds() (r []string, exists bool) {
	v := m.narrative_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrativeIds returns the old "narrative_ids" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldNarrativeIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrativeIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrativeIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrativeIds: %w", err)
	}
	return oldValue.NarrativeIds, nil
}

// AppendNarrativeIds adds s to the "narrative_ids" field.
func (m *SignalScoreMutation) AppendNarrativeIds(s []string) {
	m.appendnarrative_ids = append(m.appendnarrative_ids, s...)
}

// AppendedNarrativeIds returns the list of values that were appended to the "narrative_ids" field in this mutation.
func (m *SignalScoreMutation) AppendedNarrativeIds() ([]string, bool) {
	if len(m.appendnarrative_ids) == 0 {
		return nil, false
	}
	return m.appendnarrative_ids, true
}

// ClearNarrativeIds clears the value of the "narrative_ids" field.
func (m *SignalScoreMutation) ClearNarrativeIds() {
	m.narrative_ids = nil
	m.appendnarrative_ids = nil
	m.clearedFields[signalscore.FieldNarrativeIds] = struct{}{}
}

// NarrativeIdsCleared returns if the "narrative_ids" field was cleared in this mutation.
func (m *SignalScoreMutation) NarrativeIdsCleared() bool {
	_, ok := m.clearedFields[signalscore.FieldNarrativeIds]
	return ok
}

// ResetNarrativeIds resets all changes to the "narrative_ids" field.
func (m *SignalScoreMutation) ResetNarrativeIds() {
	m.narrative_ids = nil
	m.appendnarrative_ids = nil
	delete(m.clearedFields, signalscore.FieldNarrativeIds)
}

// SetIsEmerging sets the "is_emerging" field.
func (m *SignalScoreMutation) SetIsEmerging(b bool) {
	m.is_emerging = &b
}

// IsEmerging returns the value of the "is_emerging" field in the mutation.
func (m *SignalScoreMutation) IsEmerging() (r bool, exists bool) {
	v := m.is_emerging
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEmerging returns the old "is_emerging" field's value of the SignalScore entity.
// If the SignalScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalScoreMutation) OldIsEmerging(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEmerging is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEmerging requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEmerging: %w", err)
	}
	return oldValue.IsEmerging, nil
}

// ResetIsEmerging resets all changes to the "is_emerging" field.
func (m *SignalScoreMutation) ResetIsEmerging() {
	m.is_emerging = nil
}

// Where appends a list predicates to the SignalScoreMutation builder.
func (m *SignalScoreMutation) Where(ps ...predicate.SignalScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SignalScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SignalScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SignalScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SignalScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SignalScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SignalScore).
func (m *SignalScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SignalScoreMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.entity != nil {
		fields = append(fields, signalscore.FieldEntity)
	}
	if m.entity_type != nil {
		fields = append(fields, signalscore.FieldEntityType)
	}
	if m.first_seen != nil {
		fields = append(fields, signalscore.FieldFirstSeen)
	}
	if m.updated_at != nil {
		fields = append(fields, signalscore.FieldUpdatedAt)
	}
	if m.score_24h != nil {
		fields = append(fields, signalscore.FieldScore24h)
	}
	if m.velocity_24h != nil {
		fields = append(fields, signalscore.FieldVelocity24h)
	}
	if m.mentions_24h != nil {
		fields = append(fields, signalscore.FieldMentions24h)
	}
	if m.recency_24h != nil {
		fields = append(fields, signalscore.FieldRecency24h)
	}
	if m.score_7d != nil {
		fields = append(fields, signalscore.FieldScore7d)
	}
	if m.velocity_7d != nil {
		fields = append(fields, signalscore.FieldVelocity7d)
	}
	if m.mentions_7d != nil {
		fields = append(fields, signalscore.FieldMentions7d)
	}
	if m.recency_7d != nil {
		fields = append(fields, signalscore.FieldRecency7d)
	}
	if m.score_30d != nil {
		fields = append(fields, signalscore.FieldScore30d)
	}
	if m.velocity_30d != nil {
		fields = append(fields, signalscore.FieldVelocity30d)
	}
	if m.mentions_30d != nil {
		fields = append(fields, signalscore.FieldMentions30d)
	}
	if m.recency_30d != nil {
		fields = append(fields, signalscore.FieldRecency30d)
	}
	if m.sentiment_avg != nil {
		fields = append(fields, signalscore.FieldSentimentAvg)
	}
	if m.sentiment_min != nil {
		fields = append(fields, signalscore.FieldSentimentMin)
	}
	if m.sentiment_max != nil {
		fields = append(fields, signalscore.FieldSentimentMax)
	}
	if m.sentiment_divergence != nil {
		fields = append(fields, signalscore.FieldSentimentDivergence)
	}
	if m.source_count != nil {
		fields = append(fields, signalscore.FieldSourceCount)
	}
	if m.narrative_ids != nil {
		fields = append(fields, signalscore.FieldNarrativeIds)
	}
	if m.is_emerging != nil {
		fields = append(fields, signalscore.FieldIsEmerging)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SignalScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case signalscore.FieldEntity:
		return m.Entity()
	case signalscore.FieldEntityType:
		return m.EntityType()
	case signalscore.FieldFirstSeen:
		return m.FirstSeen()
	case signalscore.FieldUpdatedAt:
		return m.UpdatedAt()
	case signalscore.FieldScore24h:
		return m.Score24h()
	case signalscore.FieldVelocity24h:
		return m.Velocity24h()
	case signalscore.FieldMentions24h:
		return m.Mentions24h()
	case signalscore.FieldRecency24h:
		return m.Recency24h()
	case signalscore.FieldScore7d:
		return m.Score7d()
	case signalscore.FieldVelocity7d:
		return m.Velocity7d()
	case signalscore.FieldMentions7d:
		return m.Mentions7d()
	case signalscore.FieldRecency7d:
		return m.Recency7d()
	case signalscore.FieldScore30d:
		return m.Score30d()
	case signalscore.FieldVelocity30d:
		return m.Velocity30d()
	case signalscore.FieldMentions30d:
		return m.Mentions30d()
	case signalscore.FieldRecency30d:
		return m.Recency30d()
	case signalscore.FieldSentimentAvg:
		return m.SentimentAvg()
	case signalscore.FieldSentimentMin:
		return m.SentimentMin()
	case signalscore.FieldSentimentMax:
		return m.SentimentMax()
	case signalscore.FieldSentimentDivergence:
		return m.SentimentDivergence()
	case signalscore.FieldSourceCount:
		return m.SourceCount()
	case signalscore.FieldNarrativeIds:
		return m.NarrativeIds()
	case signalscore.FieldIsEmerging:
		return m.IsEmerging()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SignalScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case signalscore.FieldEntity:
		return m.OldEntity(ctx)
	case signalscore.FieldEntityType:
		return m.OldEntityType(ctx)
	case signalscore.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case signalscore.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case signalscore.FieldScore24h:
		return m.OldScore24h(ctx)
	case signalscore.FieldVelocity24h:
		return m.OldVelocity24h(ctx)
	case signalscore.FieldMentions24h:
		return m.OldMentions24h(ctx)
	case signalscore.FieldRecency24h:
		return m.OldRecency24h(ctx)
	case signalscore.FieldScore7d:
		return m.OldScore7d(ctx)
	case signalscore.FieldVelocity7d:
		return m.OldVelocity7d(ctx)
	case signalscore.FieldMentions7d:
		return m.OldMentions7d(ctx)
	case signalscore.FieldRecency7d:
		return m.OldRecency7d(ctx)
	case signalscore.FieldScore30d:
		return m.OldScore30d(ctx)
	case signalscore.FieldVelocity30d:
		return m.OldVelocity30d(ctx)
	case signalscore.FieldMentions30d:
		return m.OldMentions30d(ctx)
	case signalscore.FieldRecency30d:
		return m.OldRecency30d(ctx)
	case signalscore.FieldSentimentAvg:
		return m.OldSentimentAvg(ctx)
	case signalscore.FieldSentimentMin:
		return m.OldSentimentMin(ctx)
	case signalscore.FieldSentimentMax:
		return m.OldSentimentMax(ctx)
	case signalscore.FieldSentimentDivergence:
		return m.OldSentimentDivergence(ctx)
	case signalscore.FieldSourceCount:
		return m.OldSourceCount(ctx)
	case signalscore.FieldNarrativeIds:
		return m.OldNarrativeIds(ctx)
	case signalscore.FieldIsEmerging:
		return m.OldIsEmerging(ctx)
	}
	return nil, fmt.Errorf("unknown SignalScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignalScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case signalscore.FieldEntity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntity(v)
		return nil
	case signalscore.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case signalscore.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case signalscore.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case signalscore.FieldScore24h:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore24h(v)
		return nil
	case signalscore.FieldVelocity24h:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVelocity24h(v)
		return nil
	case signalscore.FieldMentions24h:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentions24h(v)
		return nil
	case signalscore.FieldRecency24h:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecency24h(v)
		return nil
	case signalscore.FieldScore7d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore7d(v)
		return nil
	case signalscore.FieldVelocity7d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVelocity7d(v)
		return nil
	case signalscore.FieldMentions7d:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentions7d(v)
		return nil
	case signalscore.FieldRecency7d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecency7d(v)
		return nil
	case signalscore.FieldScore30d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore30d(v)
		return nil
	case signalscore.FieldVelocity30d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVelocity30d(v)
		return nil
	case signalscore.FieldMentions30d:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentions30d(v)
		return nil
	case signalscore.FieldRecency30d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecency30d(v)
		return nil
	case signalscore.FieldSentimentAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentAvg(v)
		return nil
	case signalscore.FieldSentimentMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentMin(v)
		return nil
	case signalscore.FieldSentimentMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentMax(v)
		return nil
	case signalscore.FieldSentimentDivergence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentDivergence(v)
		return nil
	case signalscore.FieldSourceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceCount(v)
		return nil
	case signalscore.FieldNarrativeIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrativeIds(v)
		return nil
	case signalscore.FieldIsEmerging:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEmerging(v)
		return nil
	}
	return fmt.Errorf("unknown SignalScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SignalScoreMutation) AddedFields() []string {
	var fields []string
	if m.addscore_24h != nil {
		fields = append(fields, signalscore.FieldScore24h)
	}
	if m.addvelocity_24h != nil {
		fields = append(fields, signalscore.FieldVelocity24h)
	}
	if m.addmentions_24h != nil {
		fields = append(fields, signalscore.FieldMentions24h)
	}
	if m.addrecency_24h != nil {
		fields = append(fields, signalscore.FieldRecency24h)
	}
	if m.addscore_7d != nil {
		fields = append(fields, signalscore.FieldScore7d)
	}
	if m.addvelocity_7d != nil {
		fields = append(fields, signalscore.FieldVelocity7d)
	}
	if m.addmentions_7d != nil {
		fields = append(fields, signalscore.FieldMentions7d)
	}
	if m.addrecency_7d != nil {
		fields = append(fields, signalscore.FieldRecency7d)
	}
	if m.addscore_30d != nil {
		fields = append(fields, signalscore.FieldScore30d)
	}
	if m.addvelocity_30d != nil {
		fields = append(fields, signalscore.FieldVelocity30d)
	}
	if m.addmentions_30d != nil {
		fields = append(fields, signalscore.FieldMentions30d)
	}
	if m.addrecency_30d != nil {
		fields = append(fields, signalscore.FieldRecency30d)
	}
	if m.addsentiment_avg != nil {
		fields = append(fields, signalscore.FieldSentimentAvg)
	}
	if m.addsentiment_min != nil {
		fields = append(fields, signalscore.FieldSentimentMin)
	}
	if m.addsentiment_max != nil {
		fields = append(fields, signalscore.FieldSentimentMax)
	}
	if m.addsentiment_divergence != nil {
		fields = append(fields, signalscore.FieldSentimentDivergence)
	}
	if m.addsource_count != nil {
		fields = append(fields, signalscore.FieldSourceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SignalScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case signalscore.FieldScore24h:
		return m.AddedScore24h()
	case signalscore.FieldVelocity24h:
		return m.AddedVelocity24h()
	case signalscore.FieldMentions24h:
		return m.AddedMentions24h()
	case signalscore.FieldRecency24h:
		return m.AddedRecency24h()
	case signalscore.FieldScore7d:
		return m.AddedScore7d()
	case signalscore.FieldVelocity7d:
		return m.AddedVelocity7d()
	case signalscore.FieldMentions7d:
		return m.AddedMentions7d()
	case signalscore.FieldRecency7d:
		return m.AddedRecency7d()
	case signalscore.FieldScore30d:
		return m.AddedScore30d()
	case signalscore.FieldVelocity30d:
		return m.AddedVelocity30d()
	case signalscore.FieldMentions30d:
		return m.AddedMentions30d()
	case signalscore.FieldRecency30d:
		return m.AddedRecency30d()
	case signalscore.FieldSentimentAvg:
		return m.AddedSentimentAvg()
	case signalscore.FieldSentimentMin:
		return m.AddedSentimentMin()
	case signalscore.FieldSentimentMax:
		return m.AddedSentimentMax()
	case signalscore.FieldSentimentDivergence:
		return m.AddedSentimentDivergence()
	case signalscore.FieldSourceCount:
		return m.AddedSourceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignalScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case signalscore.FieldScore24h:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore24h(v)
		return nil
	case signalscore.FieldVelocity24h:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVelocity24h(v)
		return nil
	case signalscore.FieldMentions24h:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentions24h(v)
		return nil
	case signalscore.FieldRecency24h:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecency24h(v)
		return nil
	case signalscore.FieldScore7d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore7d(v)
		return nil
	case signalscore.FieldVelocity7d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVelocity7d(v)
		return nil
	case signalscore.FieldMentions7d:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentions7d(v)
		return nil
	case signalscore.FieldRecency7d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecency7d(v)
		return nil
	case signalscore.FieldScore30d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore30d(v)
		return nil
	case signalscore.FieldVelocity30d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVelocity30d(v)
		return nil
	case signalscore.FieldMentions30d:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentions30d(v)
		return nil
	case signalscore.FieldRecency30d:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecency30d(v)
		return nil
	case signalscore.FieldSentimentAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentimentAvg(v)
		return nil
	case signalscore.FieldSentimentMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentimentMin(v)
		return nil
	case signalscore.FieldSentimentMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentimentMax(v)
		return nil
	case signalscore.FieldSentimentDivergence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentimentDivergence(v)
		return nil
	case signalscore.FieldSourceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceCount(v)
		return nil
	}
	return fmt.Errorf("unknown SignalScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SignalScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(signalscore.FieldNarrativeIds) {
		fields = append(fields, signalscore.FieldNarrativeIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SignalScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SignalScoreMutation) ClearField(name string) error {
	switch name {
	case signalscore.FieldNarrativeIds:
		m.ClearNarrativeIds()
		return nil
	}
	return fmt.Errorf("unknown SignalScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SignalScoreMutation) ResetField(name string) error {
	switch name {
	case signalscore.FieldEntity:
		m.ResetEntity()
		return nil
	case signalscore.FieldEntityType:
		m.ResetEntityType()
		return nil
	case signalscore.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case signalscore.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case signalscore.FieldScore24h:
		m.ResetScore24h()
		return nil
	case signalscore.FieldVelocity24h:
		m.ResetVelocity24h()
		return nil
	case signalscore.FieldMentions24h:
		m.ResetMentions24h()
		return nil
	case signalscore.FieldRecency24h:
		m.ResetRecency24h()
		return nil
	case signalscore.FieldScore7d:
		m.ResetScore7d()
		return nil
	case signalscore.FieldVelocity7d:
		m.ResetVelocity7d()
		return nil
	case signalscore.FieldMentions7d:
		m.ResetMentions7d()
		return nil
	case signalscore.FieldRecency7d:
		m.ResetRecency7d()
		return nil
	case signalscore.FieldScore30d:
		m.ResetScore30d()
		return nil
	case signalscore.FieldVelocity30d:
		m.ResetVelocity30d()
		return nil
	case signalscore.FieldMentions30d:
		m.ResetMentions30d()
		return nil
	case signalscore.FieldRecency30d:
		m.ResetRecency30d()
		return nil
	case signalscore.FieldSentimentAvg:
		m.ResetSentimentAvg()
		return nil
	case signalscore.FieldSentimentMin:
		m.ResetSentimentMin()
		return nil
	case signalscore.FieldSentimentMax:
		m.ResetSentimentMax()
		return nil
	case signalscore.FieldSentimentDivergence:
		m.ResetSentimentDivergence()
		return nil
	case signalscore.FieldSourceCount:
		m.ResetSourceCount()
		return nil
	case signalscore.FieldNarrativeIds:
		m.ResetNarrativeIds()
		return nil
	case signalscore.FieldIsEmerging:
		m.ResetIsEmerging()
		return nil
	}
	return fmt.Errorf("unknown SignalScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SignalScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SignalScoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SignalScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SignalScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SignalScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SignalScoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SignalScoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SignalScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SignalScoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SignalScore edge %s", name)
}
