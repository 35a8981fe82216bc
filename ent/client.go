// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/apicost"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/entitymention"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/signalscore"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// APICost is the client for interacting with the APICost builders.
	APICost *APICostClient
	// Article is the client for interacting with the Article builders.
	Article *ArticleClient
	// EntityMention is the client for interacting with the EntityMention builders.
	EntityMention *EntityMentionClient
	// Narrative is the client for interacting with the Narrative builders.
	Narrative *NarrativeClient
	// SignalScore is the client for interacting with the SignalScore builders.
	SignalScore *SignalScoreClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.APICost = NewAPICostClient(c.config)
	c.Article = NewArticleClient(c.config)
	c.EntityMention = NewEntityMentionClient(c.config)
	c.Narrative = NewNarrativeClient(c.config)
	c.SignalScore = NewSignalScoreClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		APICost:       NewAPICostClient(cfg),
		Article:       NewArticleClient(cfg),
		EntityMention: NewEntityMentionClient(cfg),
		Narrative:     NewNarrativeClient(cfg),
		SignalScore:   NewSignalScoreClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		APICost:       NewAPICostClient(cfg),
		Article:       NewArticleClient(cfg),
		EntityMention: NewEntityMentionClient(cfg),
		Narrative:     NewNarrativeClient(cfg),
		SignalScore:   NewSignalScoreClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		APICost.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.APICost.Use(hooks...)
	c.Article.Use(hooks...)
	c.EntityMention.Use(hooks...)
	c.Narrative.Use(hooks...)
	c.SignalScore.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.APICost.Intercept(interceptors...)
	c.Article.Intercept(interceptors...)
	c.EntityMention.Intercept(interceptors...)
	c.Narrative.Intercept(interceptors...)
	c.SignalScore.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *APICostMutation:
		return c.APICost.mutate(ctx, m)
	case *ArticleMutation:
		return c.Article.mutate(ctx, m)
	case *EntityMentionMutation:
		return c.EntityMention.mutate(ctx, m)
	case *NarrativeMutation:
		return c.Narrative.mutate(ctx, m)
	case *SignalScoreMutation:
		return c.SignalScore.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// APICostClient is a client for the APICost schema.
type APICostClient struct {
	config
}

// NewAPICostClient returns a client for the APICost from the given config.
func NewAPICostClient(c config) *APICostClient {
	return &APICostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apicost.Hooks(f(g(h())))`.
func (c *APICostClient) Use(hooks ...Hook) {
	c.hooks.APICost = append(c.hooks.APICost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apicost.Intercept(f(g(h())))`.
func (c *APICostClient) Intercept(interceptors ...Interceptor) {
	c.inters.APICost = append(c.inters.APICost, interceptors...)
}

// Create returns a builder for creating a APICost entity.
func (c *APICostClient) Create() *APICostCreate {
	mutation := newAPICostMutation(c.config, OpCreate)
	return &APICostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APICost entities.
func (c *APICostClient) CreateBulk(builders ...*APICostCreate) *APICostCreateBulk {
	return &APICostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APICostClient) MapCreateBulk(slice any, setFunc func(*APICostCreate, int)) *APICostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APICostCreateBulk{err: fmt.Errorf("calling to APICostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APICostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APICostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APICost.
func (c *APICostClient) Update() *APICostUpdate {
	mutation := newAPICostMutation(c.config, OpUpdate)
	return &APICostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APICostClient) UpdateOne(_m *APICost) *APICostUpdateOne {
	mutation := newAPICostMutation(c.config, OpUpdateOne, withAPICost(_m))
	return &APICostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APICostClient) UpdateOneID(id string) *APICostUpdateOne {
	mutation := newAPICostMutation(c.config, OpUpdateOne, withAPICostID(id))
	return &APICostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APICost.
func (c *APICostClient) Delete() *APICostDelete {
	mutation := newAPICostMutation(c.config, OpDelete)
	return &APICostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APICostClient) DeleteOne(_m *APICost) *APICostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APICostClient) DeleteOneID(id string) *APICostDeleteOne {
	builder := c.Delete().Where(apicost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APICostDeleteOne{builder}
}

// Query returns a query builder for APICost.
func (c *APICostClient) Query() *APICostQuery {
	return &APICostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPICost},
		inters: c.Interceptors(),
	}
}

// Get returns a APICost entity by its id.
func (c *APICostClient) Get(ctx context.Context, id string) (*APICost, error) {
	return c.Query().Where(apicost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APICostClient) GetX(ctx context.Context, id string) *APICost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *APICostClient) Hooks() []Hook {
	return c.hooks.APICost
}

// Interceptors returns the client interceptors.
func (c *APICostClient) Interceptors() []Interceptor {
	return c.inters.APICost
}

func (c *APICostClient) mutate(ctx context.Context, m *APICostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APICostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APICostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APICostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APICostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APICost mutation op: %q", m.Op())
	}
}

// ArticleClient is a client for the Article schema.
type ArticleClient struct {
	config
}

// NewArticleClient returns a client for the Article from the given config.
func NewArticleClient(c config) *ArticleClient {
	return &ArticleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `article.Hooks(f(g(h())))`.
func (c *ArticleClient) Use(hooks ...Hook) {
	c.hooks.Article = append(c.hooks.Article, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `article.Intercept(f(g(h())))`.
func (c *ArticleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Article = append(c.inters.Article, interceptors...)
}

// Create returns a builder for creating a Article entity.
func (c *ArticleClient) Create() *ArticleCreate {
	mutation := newArticleMutation(c.config, OpCreate)
	return &ArticleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Article entities.
func (c *ArticleClient) CreateBulk(builders ...*ArticleCreate) *ArticleCreateBulk {
	return &ArticleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArticleClient) MapCreateBulk(slice any, setFunc func(*ArticleCreate, int)) *ArticleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArticleCreateBulk{err: fmt.Errorf("calling to ArticleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArticleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArticleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Article.
func (c *ArticleClient) Update() *ArticleUpdate {
	mutation := newArticleMutation(c.config, OpUpdate)
	return &ArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArticleClient) UpdateOne(_m *Article) *ArticleUpdateOne {
	mutation := newArticleMutation(c.config, OpUpdateOne, withArticle(_m))
	return &ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArticleClient) UpdateOneID(id string) *ArticleUpdateOne {
	mutation := newArticleMutation(c.config, OpUpdateOne, withArticleID(id))
	return &ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Article.
func (c *ArticleClient) Delete() *ArticleDelete {
	mutation := newArticleMutation(c.config, OpDelete)
	return &ArticleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArticleClient) DeleteOne(_m *Article) *ArticleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArticleClient) DeleteOneID(id string) *ArticleDeleteOne {
	builder := c.Delete().Where(article.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArticleDeleteOne{builder}
}

// Query returns a query builder for Article.
func (c *ArticleClient) Query() *ArticleQuery {
	return &ArticleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArticle},
		inters: c.Interceptors(),
	}
}

// Get returns a Article entity by its id.
func (c *ArticleClient) Get(ctx context.Context, id string) (*Article, error) {
	return c.Query().Where(article.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArticleClient) GetX(ctx context.Context, id string) *Article {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMentions queries the mentions edge of a Article.
func (c *ArticleClient) QueryMentions(_m *Article) *EntityMentionQuery {
	query := (&EntityMentionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(article.Table, article.FieldID, id),
			sqlgraph.To(entitymention.Table, entitymention.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, article.MentionsTable, article.MentionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArticleClient) Hooks() []Hook {
	return c.hooks.Article
}

// Interceptors returns the client interceptors.
func (c *ArticleClient) Interceptors() []Interceptor {
	return c.inters.Article
}

func (c *ArticleClient) mutate(ctx context.Context, m *ArticleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArticleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArticleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Article mutation op: %q", m.Op())
	}
}

// EntityMentionClient is a client for the EntityMention schema.
type EntityMentionClient struct {
	config
}

// NewEntityMentionClient returns a client for the EntityMention from the given config.
func NewEntityMentionClient(c config) *EntityMentionClient {
	return &EntityMentionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitymention.Hooks(f(g(h())))`.
func (c *EntityMentionClient) Use(hooks ...Hook) {
	c.hooks.EntityMention = append(c.hooks.EntityMention, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitymention.Intercept(f(g(h())))`.
func (c *EntityMentionClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityMention = append(c.inters.EntityMention, interceptors...)
}

// Create returns a builder for creating a EntityMention entity.
func (c *EntityMentionClient) Create() *EntityMentionCreate {
	mutation := newEntityMentionMutation(c.config, OpCreate)
	return &EntityMentionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityMention entities.
func (c *EntityMentionClient) CreateBulk(builders ...*EntityMentionCreate) *EntityMentionCreateBulk {
	return &EntityMentionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityMentionClient) MapCreateBulk(slice any, setFunc func(*EntityMentionCreate, int)) *EntityMentionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityMentionCreateBulk{err: fmt.Errorf("calling to EntityMentionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityMentionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityMentionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityMention.
func (c *EntityMentionClient) Update() *EntityMentionUpdate {
	mutation := newEntityMentionMutation(c.config, OpUpdate)
	return &EntityMentionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityMentionClient) UpdateOne(_m *EntityMention) *EntityMentionUpdateOne {
	mutation := newEntityMentionMutation(c.config, OpUpdateOne, withEntityMention(_m))
	return &EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityMentionClient) UpdateOneID(id string) *EntityMentionUpdateOne {
	mutation := newEntityMentionMutation(c.config, OpUpdateOne, withEntityMentionID(id))
	return &EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityMention.
func (c *EntityMentionClient) Delete() *EntityMentionDelete {
	mutation := newEntityMentionMutation(c.config, OpDelete)
	return &EntityMentionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityMentionClient) DeleteOne(_m *EntityMention) *EntityMentionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityMentionClient) DeleteOneID(id string) *EntityMentionDeleteOne {
	builder := c.Delete().Where(entitymention.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityMentionDeleteOne{builder}
}

// Query returns a query builder for EntityMention.
func (c *EntityMentionClient) Query() *EntityMentionQuery {
	return &EntityMentionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityMention},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityMention entity by its id.
func (c *EntityMentionClient) Get(ctx context.Context, id string) (*EntityMention, error) {
	return c.Query().Where(entitymention.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityMentionClient) GetX(ctx context.Context, id string) *EntityMention {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArticle queries the article edge of a EntityMention.
func (c *EntityMentionClient) QueryArticle(_m *EntityMention) *ArticleQuery {
	query := (&ArticleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entitymention.Table, entitymention.FieldID, id),
			sqlgraph.To(article.Table, article.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entitymention.ArticleTable, entitymention.ArticleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityMentionClient) Hooks() []Hook {
	return c.hooks.EntityMention
}

// Interceptors returns the client interceptors.
func (c *EntityMentionClient) Interceptors() []Interceptor {
	return c.inters.EntityMention
}

func (c *EntityMentionClient) mutate(ctx context.Context, m *EntityMentionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityMentionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityMentionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityMentionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityMention mutation op: %q", m.Op())
	}
}

// NarrativeClient is a client for the Narrative schema.
type NarrativeClient struct {
	config
}

// NewNarrativeClient returns a client for the Narrative from the given config.
func NewNarrativeClient(c config) *NarrativeClient {
	return &NarrativeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `narrative.Hooks(f(g(h())))`.
func (c *NarrativeClient) Use(hooks ...Hook) {
	c.hooks.Narrative = append(c.hooks.Narrative, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `narrative.Intercept(f(g(h())))`.
func (c *NarrativeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Narrative = append(c.inters.Narrative, interceptors...)
}

// Create returns a builder for creating a Narrative entity.
func (c *NarrativeClient) Create() *NarrativeCreate {
	mutation := newNarrativeMutation(c.config, OpCreate)
	return &NarrativeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Narrative entities.
func (c *NarrativeClient) CreateBulk(builders ...*NarrativeCreate) *NarrativeCreateBulk {
	return &NarrativeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NarrativeClient) MapCreateBulk(slice any, setFunc func(*NarrativeCreate, int)) *NarrativeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NarrativeCreateBulk{err: fmt.Errorf("calling to NarrativeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NarrativeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NarrativeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Narrative.
func (c *NarrativeClient) Update() *NarrativeUpdate {
	mutation := newNarrativeMutation(c.config, OpUpdate)
	return &NarrativeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NarrativeClient) UpdateOne(_m *Narrative) *NarrativeUpdateOne {
	mutation := newNarrativeMutation(c.config, OpUpdateOne, withNarrative(_m))
	return &NarrativeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NarrativeClient) UpdateOneID(id string) *NarrativeUpdateOne {
	mutation := newNarrativeMutation(c.config, OpUpdateOne, withNarrativeID(id))
	return &NarrativeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Narrative.
func (c *NarrativeClient) Delete() *NarrativeDelete {
	mutation := newNarrativeMutation(c.config, OpDelete)
	return &NarrativeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NarrativeClient) DeleteOne(_m *Narrative) *NarrativeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NarrativeClient) DeleteOneID(id string) *NarrativeDeleteOne {
	builder := c.Delete().Where(narrative.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NarrativeDeleteOne{builder}
}

// Query returns a query builder for Narrative.
func (c *NarrativeClient) Query() *NarrativeQuery {
	return &NarrativeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNarrative},
		inters: c.Interceptors(),
	}
}

// Get returns a Narrative entity by its id.
func (c *NarrativeClient) Get(ctx context.Context, id string) (*Narrative, error) {
	return c.Query().Where(narrative.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NarrativeClient) GetX(ctx context.Context, id string) *Narrative {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NarrativeClient) Hooks() []Hook {
	return c.hooks.Narrative
}

// Interceptors returns the client interceptors.
func (c *NarrativeClient) Interceptors() []Interceptor {
	return c.inters.Narrative
}

func (c *NarrativeClient) mutate(ctx context.Context, m *NarrativeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NarrativeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NarrativeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NarrativeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NarrativeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Narrative mutation op: %q", m.Op())
	}
}

// SignalScoreClient is a client for the SignalScore schema.
type SignalScoreClient struct {
	config
}

// NewSignalScoreClient returns a client for the SignalScore from the given config.
func NewSignalScoreClient(c config) *SignalScoreClient {
	return &SignalScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `signalscore.Hooks(f(g(h())))`.
func (c *SignalScoreClient) Use(hooks ...Hook) {
	c.hooks.SignalScore = append(c.hooks.SignalScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `signalscore.Intercept(f(g(h())))`.
func (c *SignalScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.SignalScore = append(c.inters.SignalScore, interceptors...)
}

// Create returns a builder for creating a SignalScore entity.
func (c *SignalScoreClient) Create() *SignalScoreCreate {
	mutation := newSignalScoreMutation(c.config, OpCreate)
	return &SignalScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SignalScore entities.
func (c *SignalScoreClient) CreateBulk(builders ...*SignalScoreCreate) *SignalScoreCreateBulk {
	return &SignalScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SignalScoreClient) MapCreateBulk(slice any, setFunc func(*SignalScoreCreate, int)) *SignalScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SignalScoreCreateBulk{err: fmt.Errorf("calling to SignalScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SignalScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SignalScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SignalScore.
func (c *SignalScoreClient) Update() *SignalScoreUpdate {
	mutation := newSignalScoreMutation(c.config, OpUpdate)
	return &SignalScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SignalScoreClient) UpdateOne(_m *SignalScore) *SignalScoreUpdateOne {
	mutation := newSignalScoreMutation(c.config, OpUpdateOne, withSignalScore(_m))
	return &SignalScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SignalScoreClient) UpdateOneID(id string) *SignalScoreUpdateOne {
	mutation := newSignalScoreMutation(c.config, OpUpdateOne, withSignalScoreID(id))
	return &SignalScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SignalScore.
func (c *SignalScoreClient) Delete() *SignalScoreDelete {
	mutation := newSignalScoreMutation(c.config, OpDelete)
	return &SignalScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SignalScoreClient) DeleteOne(_m *SignalScore) *SignalScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SignalScoreClient) DeleteOneID(id string) *SignalScoreDeleteOne {
	builder := c.Delete().Where(signalscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SignalScoreDeleteOne{builder}
}

// Query returns a query builder for SignalScore.
func (c *SignalScoreClient) Query() *SignalScoreQuery {
	return &SignalScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSignalScore},
		inters: c.Interceptors(),
	}
}

// Get returns a SignalScore entity by its id.
func (c *SignalScoreClient) Get(ctx context.Context, id string) (*SignalScore, error) {
	return c.Query().Where(signalscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SignalScoreClient) GetX(ctx context.Context, id string) *SignalScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SignalScoreClient) Hooks() []Hook {
	return c.hooks.SignalScore
}

// Interceptors returns the client interceptors.
func (c *SignalScoreClient) Interceptors() []Interceptor {
	return c.inters.SignalScore
}

func (c *SignalScoreClient) mutate(ctx context.Context, m *SignalScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SignalScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SignalScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SignalScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SignalScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SignalScore mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		APICost, Article, EntityMention, Narrative, SignalScore []ent.Hook
	}
	inters struct {
		APICost, Article, EntityMention, Narrative, SignalScore []ent.Interceptor
	}
)
