// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/rkoval/brightpath/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/rkoval/brightpath/ent/attemptevent"
	"github.com/rkoval/brightpath/ent/difficultyrecord"
	"github.com/rkoval/brightpath/ent/item"
	"github.com/rkoval/brightpath/ent/reviewstate"
	"github.com/rkoval/brightpath/ent/streakstate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// DifficultyRecord is the client for interacting with the DifficultyRecord builders.
	DifficultyRecord *DifficultyRecordClient
	// Item is the client for interacting with the Item builders.
	Item *ItemClient
	// ReviewState is the client for interacting with the ReviewState builders.
	ReviewState *ReviewStateClient
	// StreakState is the client for interacting with the StreakState builders.
	StreakState *StreakStateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.DifficultyRecord = NewDifficultyRecordClient(c.config)
	c.Item = NewItemClient(c.config)
	c.ReviewState = NewReviewStateClient(c.config)
	c.StreakState = NewStreakStateClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AttemptEvent:     NewAttemptEventClient(cfg),
		DifficultyRecord: NewDifficultyRecordClient(cfg),
		Item:             NewItemClient(cfg),
		ReviewState:      NewReviewStateClient(cfg),
		StreakState:      NewStreakStateClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AttemptEvent:     NewAttemptEventClient(cfg),
		DifficultyRecord: NewDifficultyRecordClient(cfg),
		Item:             NewItemClient(cfg),
		ReviewState:      NewReviewStateClient(cfg),
		StreakState:      NewStreakStateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptEvent.
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
	c.AttemptEvent.Use(hooks...)
	c.DifficultyRecord.Use(hooks...)
	c.Item.Use(hooks...)
	c.ReviewState.Use(hooks...)
	c.StreakState.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AttemptEvent.Intercept(interceptors...)
	c.DifficultyRecord.Intercept(interceptors...)
	c.Item.Intercept(interceptors...)
	c.ReviewState.Intercept(interceptors...)
	c.StreakState.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *DifficultyRecordMutation:
		return c.DifficultyRecord.mutate(ctx, m)
	case *ItemMutation:
		return c.Item.mutate(ctx, m)
	case *ReviewStateMutation:
		return c.ReviewState.mutate(ctx, m)
	case *StreakStateMutation:
		return c.StreakState.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// DifficultyRecordClient is a client for the DifficultyRecord schema.
type DifficultyRecordClient struct {
	config
}

// NewDifficultyRecordClient returns a client for the DifficultyRecord from the given config.
func NewDifficultyRecordClient(c config) *DifficultyRecordClient {
	return &DifficultyRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `difficultyrecord.Hooks(f(g(h())))`.
func (c *DifficultyRecordClient) Use(hooks ...Hook) {
	c.hooks.DifficultyRecord = append(c.hooks.DifficultyRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `difficultyrecord.Intercept(f(g(h())))`.
func (c *DifficultyRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.DifficultyRecord = append(c.inters.DifficultyRecord, interceptors...)
}

// Create returns a builder for creating a DifficultyRecord entity.
func (c *DifficultyRecordClient) Create() *DifficultyRecordCreate {
	mutation := newDifficultyRecordMutation(c.config, OpCreate)
	return &DifficultyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DifficultyRecord entities.
func (c *DifficultyRecordClient) CreateBulk(builders ...*DifficultyRecordCreate) *DifficultyRecordCreateBulk {
	return &DifficultyRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DifficultyRecordClient) MapCreateBulk(slice any, setFunc func(*DifficultyRecordCreate, int)) *DifficultyRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DifficultyRecordCreateBulk{err: fmt.Errorf("calling to DifficultyRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DifficultyRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DifficultyRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DifficultyRecord.
func (c *DifficultyRecordClient) Update() *DifficultyRecordUpdate {
	mutation := newDifficultyRecordMutation(c.config, OpUpdate)
	return &DifficultyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DifficultyRecordClient) UpdateOne(_m *DifficultyRecord) *DifficultyRecordUpdateOne {
	mutation := newDifficultyRecordMutation(c.config, OpUpdateOne, withDifficultyRecord(_m))
	return &DifficultyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DifficultyRecordClient) UpdateOneID(id int) *DifficultyRecordUpdateOne {
	mutation := newDifficultyRecordMutation(c.config, OpUpdateOne, withDifficultyRecordID(id))
	return &DifficultyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DifficultyRecord.
func (c *DifficultyRecordClient) Delete() *DifficultyRecordDelete {
	mutation := newDifficultyRecordMutation(c.config, OpDelete)
	return &DifficultyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DifficultyRecordClient) DeleteOne(_m *DifficultyRecord) *DifficultyRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DifficultyRecordClient) DeleteOneID(id int) *DifficultyRecordDeleteOne {
	builder := c.Delete().Where(difficultyrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DifficultyRecordDeleteOne{builder}
}

// Query returns a query builder for DifficultyRecord.
func (c *DifficultyRecordClient) Query() *DifficultyRecordQuery {
	return &DifficultyRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDifficultyRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a DifficultyRecord entity by its id.
func (c *DifficultyRecordClient) Get(ctx context.Context, id int) (*DifficultyRecord, error) {
	return c.Query().Where(difficultyrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DifficultyRecordClient) GetX(ctx context.Context, id int) *DifficultyRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DifficultyRecordClient) Hooks() []Hook {
	return c.hooks.DifficultyRecord
}

// Interceptors returns the client interceptors.
func (c *DifficultyRecordClient) Interceptors() []Interceptor {
	return c.inters.DifficultyRecord
}

func (c *DifficultyRecordClient) mutate(ctx context.Context, m *DifficultyRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DifficultyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DifficultyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DifficultyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DifficultyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DifficultyRecord mutation op: %q", m.Op())
	}
}

// ItemClient is a client for the Item schema.
type ItemClient struct {
	config
}

// NewItemClient returns a client for the Item from the given config.
func NewItemClient(c config) *ItemClient {
	return &ItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `item.Hooks(f(g(h())))`.
func (c *ItemClient) Use(hooks ...Hook) {
	c.hooks.Item = append(c.hooks.Item, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `item.Intercept(f(g(h())))`.
func (c *ItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.Item = append(c.inters.Item, interceptors...)
}

// Create returns a builder for creating a Item entity.
func (c *ItemClient) Create() *ItemCreate {
	mutation := newItemMutation(c.config, OpCreate)
	return &ItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Item entities.
func (c *ItemClient) CreateBulk(builders ...*ItemCreate) *ItemCreateBulk {
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemClient) MapCreateBulk(slice any, setFunc func(*ItemCreate, int)) *ItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemCreateBulk{err: fmt.Errorf("calling to ItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Item.
func (c *ItemClient) Update() *ItemUpdate {
	mutation := newItemMutation(c.config, OpUpdate)
	return &ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemClient) UpdateOne(_m *Item) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItem(_m))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemClient) UpdateOneID(id int) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItemID(id))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Item.
func (c *ItemClient) Delete() *ItemDelete {
	mutation := newItemMutation(c.config, OpDelete)
	return &ItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemClient) DeleteOne(_m *Item) *ItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemClient) DeleteOneID(id int) *ItemDeleteOne {
	builder := c.Delete().Where(item.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemDeleteOne{builder}
}

// Query returns a query builder for Item.
func (c *ItemClient) Query() *ItemQuery {
	return &ItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItem},
		inters: c.Interceptors(),
	}
}

// Get returns a Item entity by its id.
func (c *ItemClient) Get(ctx context.Context, id int) (*Item, error) {
	return c.Query().Where(item.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemClient) GetX(ctx context.Context, id int) *Item {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemClient) Hooks() []Hook {
	return c.hooks.Item
}

// Interceptors returns the client interceptors.
func (c *ItemClient) Interceptors() []Interceptor {
	return c.inters.Item
}

func (c *ItemClient) mutate(ctx context.Context, m *ItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Item mutation op: %q", m.Op())
	}
}

// ReviewStateClient is a client for the ReviewState schema.
type ReviewStateClient struct {
	config
}

// NewReviewStateClient returns a client for the ReviewState from the given config.
func NewReviewStateClient(c config) *ReviewStateClient {
	return &ReviewStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewstate.Hooks(f(g(h())))`.
func (c *ReviewStateClient) Use(hooks ...Hook) {
	c.hooks.ReviewState = append(c.hooks.ReviewState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewstate.Intercept(f(g(h())))`.
func (c *ReviewStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewState = append(c.inters.ReviewState, interceptors...)
}

// Create returns a builder for creating a ReviewState entity.
func (c *ReviewStateClient) Create() *ReviewStateCreate {
	mutation := newReviewStateMutation(c.config, OpCreate)
	return &ReviewStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewState entities.
func (c *ReviewStateClient) CreateBulk(builders ...*ReviewStateCreate) *ReviewStateCreateBulk {
	return &ReviewStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewStateClient) MapCreateBulk(slice any, setFunc func(*ReviewStateCreate, int)) *ReviewStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewStateCreateBulk{err: fmt.Errorf("calling to ReviewStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewState.
func (c *ReviewStateClient) Update() *ReviewStateUpdate {
	mutation := newReviewStateMutation(c.config, OpUpdate)
	return &ReviewStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewStateClient) UpdateOne(_m *ReviewState) *ReviewStateUpdateOne {
	mutation := newReviewStateMutation(c.config, OpUpdateOne, withReviewState(_m))
	return &ReviewStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewStateClient) UpdateOneID(id int) *ReviewStateUpdateOne {
	mutation := newReviewStateMutation(c.config, OpUpdateOne, withReviewStateID(id))
	return &ReviewStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewState.
func (c *ReviewStateClient) Delete() *ReviewStateDelete {
	mutation := newReviewStateMutation(c.config, OpDelete)
	return &ReviewStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewStateClient) DeleteOne(_m *ReviewState) *ReviewStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewStateClient) DeleteOneID(id int) *ReviewStateDeleteOne {
	builder := c.Delete().Where(reviewstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewStateDeleteOne{builder}
}

// Query returns a query builder for ReviewState.
func (c *ReviewStateClient) Query() *ReviewStateQuery {
	return &ReviewStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewState},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewState entity by its id.
func (c *ReviewStateClient) Get(ctx context.Context, id int) (*ReviewState, error) {
	return c.Query().Where(reviewstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewStateClient) GetX(ctx context.Context, id int) *ReviewState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewStateClient) Hooks() []Hook {
	return c.hooks.ReviewState
}

// Interceptors returns the client interceptors.
func (c *ReviewStateClient) Interceptors() []Interceptor {
	return c.inters.ReviewState
}

func (c *ReviewStateClient) mutate(ctx context.Context, m *ReviewStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewState mutation op: %q", m.Op())
	}
}

// StreakStateClient is a client for the StreakState schema.
type StreakStateClient struct {
	config
}

// NewStreakStateClient returns a client for the StreakState from the given config.
func NewStreakStateClient(c config) *StreakStateClient {
	return &StreakStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `streakstate.Hooks(f(g(h())))`.
func (c *StreakStateClient) Use(hooks ...Hook) {
	c.hooks.StreakState = append(c.hooks.StreakState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `streakstate.Intercept(f(g(h())))`.
func (c *StreakStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.StreakState = append(c.inters.StreakState, interceptors...)
}

// Create returns a builder for creating a StreakState entity.
func (c *StreakStateClient) Create() *StreakStateCreate {
	mutation := newStreakStateMutation(c.config, OpCreate)
	return &StreakStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StreakState entities.
func (c *StreakStateClient) CreateBulk(builders ...*StreakStateCreate) *StreakStateCreateBulk {
	return &StreakStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StreakStateClient) MapCreateBulk(slice any, setFunc func(*StreakStateCreate, int)) *StreakStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StreakStateCreateBulk{err: fmt.Errorf("calling to StreakStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StreakStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StreakStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StreakState.
func (c *StreakStateClient) Update() *StreakStateUpdate {
	mutation := newStreakStateMutation(c.config, OpUpdate)
	return &StreakStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StreakStateClient) UpdateOne(_m *StreakState) *StreakStateUpdateOne {
	mutation := newStreakStateMutation(c.config, OpUpdateOne, withStreakState(_m))
	return &StreakStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StreakStateClient) UpdateOneID(id int) *StreakStateUpdateOne {
	mutation := newStreakStateMutation(c.config, OpUpdateOne, withStreakStateID(id))
	return &StreakStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StreakState.
func (c *StreakStateClient) Delete() *StreakStateDelete {
	mutation := newStreakStateMutation(c.config, OpDelete)
	return &StreakStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StreakStateClient) DeleteOne(_m *StreakState) *StreakStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StreakStateClient) DeleteOneID(id int) *StreakStateDeleteOne {
	builder := c.Delete().Where(streakstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StreakStateDeleteOne{builder}
}

// Query returns a query builder for StreakState.
func (c *StreakStateClient) Query() *StreakStateQuery {
	return &StreakStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStreakState},
		inters: c.Interceptors(),
	}
}

// Get returns a StreakState entity by its id.
func (c *StreakStateClient) Get(ctx context.Context, id int) (*StreakState, error) {
	return c.Query().Where(streakstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StreakStateClient) GetX(ctx context.Context, id int) *StreakState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StreakStateClient) Hooks() []Hook {
	return c.hooks.StreakState
}

// Interceptors returns the client interceptors.
func (c *StreakStateClient) Interceptors() []Interceptor {
	return c.inters.StreakState
}

func (c *StreakStateClient) mutate(ctx context.Context, m *StreakStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StreakStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StreakStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StreakStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StreakStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StreakState mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptEvent, DifficultyRecord, Item, ReviewState, StreakState []ent.Hook
	}
	inters struct {
		AttemptEvent, DifficultyRecord, Item, ReviewState, StreakState []ent.Interceptor
	}
)
