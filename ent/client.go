// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/datasleuth/sleuth/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datasleuth/sleuth/ent/feedbackevent"
	"github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/ent/trainingsignal"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FeedbackEvent is the client for interacting with the FeedbackEvent builders.
	FeedbackEvent *FeedbackEventClient
	// Investigation is the client for interacting with the Investigation builders.
	Investigation *InvestigationClient
	// TrainingSignal is the client for interacting with the TrainingSignal builders.
	TrainingSignal *TrainingSignalClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FeedbackEvent = NewFeedbackEventClient(c.config)
	c.Investigation = NewInvestigationClient(c.config)
	c.TrainingSignal = NewTrainingSignalClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		FeedbackEvent:  NewFeedbackEventClient(cfg),
		Investigation:  NewInvestigationClient(cfg),
		TrainingSignal: NewTrainingSignalClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		FeedbackEvent:  NewFeedbackEventClient(cfg),
		Investigation:  NewInvestigationClient(cfg),
		TrainingSignal: NewTrainingSignalClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FeedbackEvent.
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
	c.FeedbackEvent.Use(hooks...)
	c.Investigation.Use(hooks...)
	c.TrainingSignal.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.FeedbackEvent.Intercept(interceptors...)
	c.Investigation.Intercept(interceptors...)
	c.TrainingSignal.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FeedbackEventMutation:
		return c.FeedbackEvent.mutate(ctx, m)
	case *InvestigationMutation:
		return c.Investigation.mutate(ctx, m)
	case *TrainingSignalMutation:
		return c.TrainingSignal.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FeedbackEventClient is a client for the FeedbackEvent schema.
type FeedbackEventClient struct {
	config
}

// NewFeedbackEventClient returns a client for the FeedbackEvent from the given config.
func NewFeedbackEventClient(c config) *FeedbackEventClient {
	return &FeedbackEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedbackevent.Hooks(f(g(h())))`.
func (c *FeedbackEventClient) Use(hooks ...Hook) {
	c.hooks.FeedbackEvent = append(c.hooks.FeedbackEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedbackevent.Intercept(f(g(h())))`.
func (c *FeedbackEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedbackEvent = append(c.inters.FeedbackEvent, interceptors...)
}

// Create returns a builder for creating a FeedbackEvent entity.
func (c *FeedbackEventClient) Create() *FeedbackEventCreate {
	mutation := newFeedbackEventMutation(c.config, OpCreate)
	return &FeedbackEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedbackEvent entities.
func (c *FeedbackEventClient) CreateBulk(builders ...*FeedbackEventCreate) *FeedbackEventCreateBulk {
	return &FeedbackEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackEventClient) MapCreateBulk(slice any, setFunc func(*FeedbackEventCreate, int)) *FeedbackEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackEventCreateBulk{err: fmt.Errorf("calling to FeedbackEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedbackEvent.
func (c *FeedbackEventClient) Update() *FeedbackEventUpdate {
	mutation := newFeedbackEventMutation(c.config, OpUpdate)
	return &FeedbackEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackEventClient) UpdateOne(_m *FeedbackEvent) *FeedbackEventUpdateOne {
	mutation := newFeedbackEventMutation(c.config, OpUpdateOne, withFeedbackEvent(_m))
	return &FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackEventClient) UpdateOneID(id string) *FeedbackEventUpdateOne {
	mutation := newFeedbackEventMutation(c.config, OpUpdateOne, withFeedbackEventID(id))
	return &FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedbackEvent.
func (c *FeedbackEventClient) Delete() *FeedbackEventDelete {
	mutation := newFeedbackEventMutation(c.config, OpDelete)
	return &FeedbackEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackEventClient) DeleteOne(_m *FeedbackEvent) *FeedbackEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackEventClient) DeleteOneID(id string) *FeedbackEventDeleteOne {
	builder := c.Delete().Where(feedbackevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackEventDeleteOne{builder}
}

// Query returns a query builder for FeedbackEvent.
func (c *FeedbackEventClient) Query() *FeedbackEventQuery {
	return &FeedbackEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedbackEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedbackEvent entity by its id.
func (c *FeedbackEventClient) Get(ctx context.Context, id string) (*FeedbackEvent, error) {
	return c.Query().Where(feedbackevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackEventClient) GetX(ctx context.Context, id string) *FeedbackEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeedbackEventClient) Hooks() []Hook {
	return c.hooks.FeedbackEvent
}

// Interceptors returns the client interceptors.
func (c *FeedbackEventClient) Interceptors() []Interceptor {
	return c.inters.FeedbackEvent
}

func (c *FeedbackEventClient) mutate(ctx context.Context, m *FeedbackEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedbackEvent mutation op: %q", m.Op())
	}
}

// InvestigationClient is a client for the Investigation schema.
type InvestigationClient struct {
	config
}

// NewInvestigationClient returns a client for the Investigation from the given config.
func NewInvestigationClient(c config) *InvestigationClient {
	return &InvestigationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `investigation.Hooks(f(g(h())))`.
func (c *InvestigationClient) Use(hooks ...Hook) {
	c.hooks.Investigation = append(c.hooks.Investigation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `investigation.Intercept(f(g(h())))`.
func (c *InvestigationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Investigation = append(c.inters.Investigation, interceptors...)
}

// Create returns a builder for creating a Investigation entity.
func (c *InvestigationClient) Create() *InvestigationCreate {
	mutation := newInvestigationMutation(c.config, OpCreate)
	return &InvestigationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Investigation entities.
func (c *InvestigationClient) CreateBulk(builders ...*InvestigationCreate) *InvestigationCreateBulk {
	return &InvestigationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvestigationClient) MapCreateBulk(slice any, setFunc func(*InvestigationCreate, int)) *InvestigationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvestigationCreateBulk{err: fmt.Errorf("calling to InvestigationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvestigationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvestigationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Investigation.
func (c *InvestigationClient) Update() *InvestigationUpdate {
	mutation := newInvestigationMutation(c.config, OpUpdate)
	return &InvestigationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvestigationClient) UpdateOne(_m *Investigation) *InvestigationUpdateOne {
	mutation := newInvestigationMutation(c.config, OpUpdateOne, withInvestigation(_m))
	return &InvestigationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvestigationClient) UpdateOneID(id string) *InvestigationUpdateOne {
	mutation := newInvestigationMutation(c.config, OpUpdateOne, withInvestigationID(id))
	return &InvestigationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Investigation.
func (c *InvestigationClient) Delete() *InvestigationDelete {
	mutation := newInvestigationMutation(c.config, OpDelete)
	return &InvestigationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvestigationClient) DeleteOne(_m *Investigation) *InvestigationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvestigationClient) DeleteOneID(id string) *InvestigationDeleteOne {
	builder := c.Delete().Where(investigation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvestigationDeleteOne{builder}
}

// Query returns a query builder for Investigation.
func (c *InvestigationClient) Query() *InvestigationQuery {
	return &InvestigationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvestigation},
		inters: c.Interceptors(),
	}
}

// Get returns a Investigation entity by its id.
func (c *InvestigationClient) Get(ctx context.Context, id string) (*Investigation, error) {
	return c.Query().Where(investigation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvestigationClient) GetX(ctx context.Context, id string) *Investigation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTrainingSignals queries the training_signals edge of a Investigation.
func (c *InvestigationClient) QueryTrainingSignals(_m *Investigation) *TrainingSignalQuery {
	query := (&TrainingSignalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigation.Table, investigation.FieldID, id),
			sqlgraph.To(trainingsignal.Table, trainingsignal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigation.TrainingSignalsTable, investigation.TrainingSignalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvestigationClient) Hooks() []Hook {
	return c.hooks.Investigation
}

// Interceptors returns the client interceptors.
func (c *InvestigationClient) Interceptors() []Interceptor {
	return c.inters.Investigation
}

func (c *InvestigationClient) mutate(ctx context.Context, m *InvestigationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvestigationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvestigationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvestigationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvestigationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Investigation mutation op: %q", m.Op())
	}
}

// TrainingSignalClient is a client for the TrainingSignal schema.
type TrainingSignalClient struct {
	config
}

// NewTrainingSignalClient returns a client for the TrainingSignal from the given config.
func NewTrainingSignalClient(c config) *TrainingSignalClient {
	return &TrainingSignalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trainingsignal.Hooks(f(g(h())))`.
func (c *TrainingSignalClient) Use(hooks ...Hook) {
	c.hooks.TrainingSignal = append(c.hooks.TrainingSignal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trainingsignal.Intercept(f(g(h())))`.
func (c *TrainingSignalClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrainingSignal = append(c.inters.TrainingSignal, interceptors...)
}

// Create returns a builder for creating a TrainingSignal entity.
func (c *TrainingSignalClient) Create() *TrainingSignalCreate {
	mutation := newTrainingSignalMutation(c.config, OpCreate)
	return &TrainingSignalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrainingSignal entities.
func (c *TrainingSignalClient) CreateBulk(builders ...*TrainingSignalCreate) *TrainingSignalCreateBulk {
	return &TrainingSignalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrainingSignalClient) MapCreateBulk(slice any, setFunc func(*TrainingSignalCreate, int)) *TrainingSignalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrainingSignalCreateBulk{err: fmt.Errorf("calling to TrainingSignalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrainingSignalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrainingSignalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrainingSignal.
func (c *TrainingSignalClient) Update() *TrainingSignalUpdate {
	mutation := newTrainingSignalMutation(c.config, OpUpdate)
	return &TrainingSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrainingSignalClient) UpdateOne(_m *TrainingSignal) *TrainingSignalUpdateOne {
	mutation := newTrainingSignalMutation(c.config, OpUpdateOne, withTrainingSignal(_m))
	return &TrainingSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrainingSignalClient) UpdateOneID(id string) *TrainingSignalUpdateOne {
	mutation := newTrainingSignalMutation(c.config, OpUpdateOne, withTrainingSignalID(id))
	return &TrainingSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrainingSignal.
func (c *TrainingSignalClient) Delete() *TrainingSignalDelete {
	mutation := newTrainingSignalMutation(c.config, OpDelete)
	return &TrainingSignalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrainingSignalClient) DeleteOne(_m *TrainingSignal) *TrainingSignalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrainingSignalClient) DeleteOneID(id string) *TrainingSignalDeleteOne {
	builder := c.Delete().Where(trainingsignal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrainingSignalDeleteOne{builder}
}

// Query returns a query builder for TrainingSignal.
func (c *TrainingSignalClient) Query() *TrainingSignalQuery {
	return &TrainingSignalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrainingSignal},
		inters: c.Interceptors(),
	}
}

// Get returns a TrainingSignal entity by its id.
func (c *TrainingSignalClient) Get(ctx context.Context, id string) (*TrainingSignal, error) {
	return c.Query().Where(trainingsignal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrainingSignalClient) GetX(ctx context.Context, id string) *TrainingSignal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvestigation queries the investigation edge of a TrainingSignal.
func (c *TrainingSignalClient) QueryInvestigation(_m *TrainingSignal) *InvestigationQuery {
	query := (&InvestigationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trainingsignal.Table, trainingsignal.FieldID, id),
			sqlgraph.To(investigation.Table, investigation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trainingsignal.InvestigationTable, trainingsignal.InvestigationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrainingSignalClient) Hooks() []Hook {
	return c.hooks.TrainingSignal
}

// Interceptors returns the client interceptors.
func (c *TrainingSignalClient) Interceptors() []Interceptor {
	return c.inters.TrainingSignal
}

func (c *TrainingSignalClient) mutate(ctx context.Context, m *TrainingSignalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrainingSignalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrainingSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrainingSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrainingSignalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrainingSignal mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FeedbackEvent, Investigation, TrainingSignal []ent.Hook
	}
	inters struct {
		FeedbackEvent, Investigation, TrainingSignal []ent.Interceptor
	}
)
