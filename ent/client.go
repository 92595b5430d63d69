// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/oslerlabs/osler/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/oslerlabs/osler/ent/assessmentevent"
	"github.com/oslerlabs/osler/ent/llmrequestevent"
	"github.com/oslerlabs/osler/ent/notesevent"
	"github.com/oslerlabs/osler/ent/sessionevent"
	"github.com/oslerlabs/osler/ent/snapshot"
	"github.com/oslerlabs/osler/ent/turnevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentEvent is the client for interacting with the AssessmentEvent builders.
	AssessmentEvent *AssessmentEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// NotesEvent is the client for interacting with the NotesEvent builders.
	NotesEvent *NotesEventClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// TurnEvent is the client for interacting with the TurnEvent builders.
	TurnEvent *TurnEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentEvent = NewAssessmentEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.NotesEvent = NewNotesEventClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.TurnEvent = NewTurnEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AssessmentEvent: NewAssessmentEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		NotesEvent:      NewNotesEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		TurnEvent:       NewTurnEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AssessmentEvent: NewAssessmentEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		NotesEvent:      NewNotesEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		TurnEvent:       NewTurnEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AssessmentEvent, c.LLMRequestEvent, c.NotesEvent, c.SessionEvent, c.Snapshot,
		c.TurnEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AssessmentEvent, c.LLMRequestEvent, c.NotesEvent, c.SessionEvent, c.Snapshot,
		c.TurnEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentEventMutation:
		return c.AssessmentEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *NotesEventMutation:
		return c.NotesEvent.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *TurnEventMutation:
		return c.TurnEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentEventClient is a client for the AssessmentEvent schema.
type AssessmentEventClient struct {
	config
}

// NewAssessmentEventClient returns a client for the AssessmentEvent from the given config.
func NewAssessmentEventClient(c config) *AssessmentEventClient {
	return &AssessmentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentevent.Hooks(f(g(h())))`.
func (c *AssessmentEventClient) Use(hooks ...Hook) {
	c.hooks.AssessmentEvent = append(c.hooks.AssessmentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentevent.Intercept(f(g(h())))`.
func (c *AssessmentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentEvent = append(c.inters.AssessmentEvent, interceptors...)
}

// Create returns a builder for creating a AssessmentEvent entity.
func (c *AssessmentEventClient) Create() *AssessmentEventCreate {
	mutation := newAssessmentEventMutation(c.config, OpCreate)
	return &AssessmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentEvent entities.
func (c *AssessmentEventClient) CreateBulk(builders ...*AssessmentEventCreate) *AssessmentEventCreateBulk {
	return &AssessmentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentEventClient) MapCreateBulk(slice any, setFunc func(*AssessmentEventCreate, int)) *AssessmentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentEventCreateBulk{err: fmt.Errorf("calling to AssessmentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentEvent.
func (c *AssessmentEventClient) Update() *AssessmentEventUpdate {
	mutation := newAssessmentEventMutation(c.config, OpUpdate)
	return &AssessmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentEventClient) UpdateOne(_m *AssessmentEvent) *AssessmentEventUpdateOne {
	mutation := newAssessmentEventMutation(c.config, OpUpdateOne, withAssessmentEvent(_m))
	return &AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentEventClient) UpdateOneID(id int) *AssessmentEventUpdateOne {
	mutation := newAssessmentEventMutation(c.config, OpUpdateOne, withAssessmentEventID(id))
	return &AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentEvent.
func (c *AssessmentEventClient) Delete() *AssessmentEventDelete {
	mutation := newAssessmentEventMutation(c.config, OpDelete)
	return &AssessmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentEventClient) DeleteOne(_m *AssessmentEvent) *AssessmentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentEventClient) DeleteOneID(id int) *AssessmentEventDeleteOne {
	builder := c.Delete().Where(assessmentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentEventDeleteOne{builder}
}

// Query returns a query builder for AssessmentEvent.
func (c *AssessmentEventClient) Query() *AssessmentEventQuery {
	return &AssessmentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentEvent entity by its id.
func (c *AssessmentEventClient) Get(ctx context.Context, id int) (*AssessmentEvent, error) {
	return c.Query().Where(assessmentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentEventClient) GetX(ctx context.Context, id int) *AssessmentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentEventClient) Hooks() []Hook {
	return c.hooks.AssessmentEvent
}

// Interceptors returns the client interceptors.
func (c *AssessmentEventClient) Interceptors() []Interceptor {
	return c.inters.AssessmentEvent
}

func (c *AssessmentEventClient) mutate(ctx context.Context, m *AssessmentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// NotesEventClient is a client for the NotesEvent schema.
type NotesEventClient struct {
	config
}

// NewNotesEventClient returns a client for the NotesEvent from the given config.
func NewNotesEventClient(c config) *NotesEventClient {
	return &NotesEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notesevent.Hooks(f(g(h())))`.
func (c *NotesEventClient) Use(hooks ...Hook) {
	c.hooks.NotesEvent = append(c.hooks.NotesEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notesevent.Intercept(f(g(h())))`.
func (c *NotesEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotesEvent = append(c.inters.NotesEvent, interceptors...)
}

// Create returns a builder for creating a NotesEvent entity.
func (c *NotesEventClient) Create() *NotesEventCreate {
	mutation := newNotesEventMutation(c.config, OpCreate)
	return &NotesEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotesEvent entities.
func (c *NotesEventClient) CreateBulk(builders ...*NotesEventCreate) *NotesEventCreateBulk {
	return &NotesEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotesEventClient) MapCreateBulk(slice any, setFunc func(*NotesEventCreate, int)) *NotesEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotesEventCreateBulk{err: fmt.Errorf("calling to NotesEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotesEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotesEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotesEvent.
func (c *NotesEventClient) Update() *NotesEventUpdate {
	mutation := newNotesEventMutation(c.config, OpUpdate)
	return &NotesEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotesEventClient) UpdateOne(_m *NotesEvent) *NotesEventUpdateOne {
	mutation := newNotesEventMutation(c.config, OpUpdateOne, withNotesEvent(_m))
	return &NotesEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotesEventClient) UpdateOneID(id int) *NotesEventUpdateOne {
	mutation := newNotesEventMutation(c.config, OpUpdateOne, withNotesEventID(id))
	return &NotesEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotesEvent.
func (c *NotesEventClient) Delete() *NotesEventDelete {
	mutation := newNotesEventMutation(c.config, OpDelete)
	return &NotesEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotesEventClient) DeleteOne(_m *NotesEvent) *NotesEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotesEventClient) DeleteOneID(id int) *NotesEventDeleteOne {
	builder := c.Delete().Where(notesevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotesEventDeleteOne{builder}
}

// Query returns a query builder for NotesEvent.
func (c *NotesEventClient) Query() *NotesEventQuery {
	return &NotesEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotesEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a NotesEvent entity by its id.
func (c *NotesEventClient) Get(ctx context.Context, id int) (*NotesEvent, error) {
	return c.Query().Where(notesevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotesEventClient) GetX(ctx context.Context, id int) *NotesEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotesEventClient) Hooks() []Hook {
	return c.hooks.NotesEvent
}

// Interceptors returns the client interceptors.
func (c *NotesEventClient) Interceptors() []Interceptor {
	return c.inters.NotesEvent
}

func (c *NotesEventClient) mutate(ctx context.Context, m *NotesEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotesEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotesEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotesEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotesEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NotesEvent mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// TurnEventClient is a client for the TurnEvent schema.
type TurnEventClient struct {
	config
}

// NewTurnEventClient returns a client for the TurnEvent from the given config.
func NewTurnEventClient(c config) *TurnEventClient {
	return &TurnEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `turnevent.Hooks(f(g(h())))`.
func (c *TurnEventClient) Use(hooks ...Hook) {
	c.hooks.TurnEvent = append(c.hooks.TurnEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `turnevent.Intercept(f(g(h())))`.
func (c *TurnEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TurnEvent = append(c.inters.TurnEvent, interceptors...)
}

// Create returns a builder for creating a TurnEvent entity.
func (c *TurnEventClient) Create() *TurnEventCreate {
	mutation := newTurnEventMutation(c.config, OpCreate)
	return &TurnEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TurnEvent entities.
func (c *TurnEventClient) CreateBulk(builders ...*TurnEventCreate) *TurnEventCreateBulk {
	return &TurnEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TurnEventClient) MapCreateBulk(slice any, setFunc func(*TurnEventCreate, int)) *TurnEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TurnEventCreateBulk{err: fmt.Errorf("calling to TurnEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TurnEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TurnEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TurnEvent.
func (c *TurnEventClient) Update() *TurnEventUpdate {
	mutation := newTurnEventMutation(c.config, OpUpdate)
	return &TurnEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TurnEventClient) UpdateOne(_m *TurnEvent) *TurnEventUpdateOne {
	mutation := newTurnEventMutation(c.config, OpUpdateOne, withTurnEvent(_m))
	return &TurnEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TurnEventClient) UpdateOneID(id int) *TurnEventUpdateOne {
	mutation := newTurnEventMutation(c.config, OpUpdateOne, withTurnEventID(id))
	return &TurnEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TurnEvent.
func (c *TurnEventClient) Delete() *TurnEventDelete {
	mutation := newTurnEventMutation(c.config, OpDelete)
	return &TurnEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TurnEventClient) DeleteOne(_m *TurnEvent) *TurnEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TurnEventClient) DeleteOneID(id int) *TurnEventDeleteOne {
	builder := c.Delete().Where(turnevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TurnEventDeleteOne{builder}
}

// Query returns a query builder for TurnEvent.
func (c *TurnEventClient) Query() *TurnEventQuery {
	return &TurnEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTurnEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TurnEvent entity by its id.
func (c *TurnEventClient) Get(ctx context.Context, id int) (*TurnEvent, error) {
	return c.Query().Where(turnevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TurnEventClient) GetX(ctx context.Context, id int) *TurnEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TurnEventClient) Hooks() []Hook {
	return c.hooks.TurnEvent
}

// Interceptors returns the client interceptors.
func (c *TurnEventClient) Interceptors() []Interceptor {
	return c.inters.TurnEvent
}

func (c *TurnEventClient) mutate(ctx context.Context, m *TurnEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TurnEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TurnEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TurnEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TurnEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TurnEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentEvent, LLMRequestEvent, NotesEvent, SessionEvent, Snapshot,
		TurnEvent []ent.Hook
	}
	inters struct {
		AssessmentEvent, LLMRequestEvent, NotesEvent, SessionEvent, Snapshot,
		TurnEvent []ent.Interceptor
	}
)
