// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/localbzz/clientops/ent/generated/activityevent"
	"github.com/localbzz/clientops/ent/generated/clientaccount"
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/shoot"
	"github.com/localbzz/clientops/ent/generated/task"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivityEvent is the client for interacting with the ActivityEvent builders.
	ActivityEvent *ActivityEventClient
	// ClientAccount is the client for interacting with the ClientAccount builders.
	ClientAccount *ClientAccountClient
	// ClientTaskAssignment is the client for interacting with the ClientTaskAssignment builders.
	ClientTaskAssignment *ClientTaskAssignmentClient
	// ContextEntry is the client for interacting with the ContextEntry builders.
	ContextEntry *ContextEntryClient
	// Cycle is the client for interacting with the Cycle builders.
	Cycle *CycleClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// Shoot is the client for interacting with the Shoot builders.
	Shoot *ShootClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskTemplate is the client for interacting with the TaskTemplate builders.
	TaskTemplate *TaskTemplateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivityEvent = NewActivityEventClient(c.config)
	c.ClientAccount = NewClientAccountClient(c.config)
	c.ClientTaskAssignment = NewClientTaskAssignmentClient(c.config)
	c.ContextEntry = NewContextEntryClient(c.config)
	c.Cycle = NewCycleClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.Shoot = NewShootClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskTemplate = NewTaskTemplateClient(c.config)
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
var ErrTxStarted = errors.New("generated: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("generated: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		ActivityEvent:        NewActivityEventClient(cfg),
		ClientAccount:        NewClientAccountClient(cfg),
		ClientTaskAssignment: NewClientTaskAssignmentClient(cfg),
		ContextEntry:         NewContextEntryClient(cfg),
		Cycle:                NewCycleClient(cfg),
		Profile:              NewProfileClient(cfg),
		Shoot:                NewShootClient(cfg),
		Task:                 NewTaskClient(cfg),
		TaskTemplate:         NewTaskTemplateClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		ActivityEvent:        NewActivityEventClient(cfg),
		ClientAccount:        NewClientAccountClient(cfg),
		ClientTaskAssignment: NewClientTaskAssignmentClient(cfg),
		ContextEntry:         NewContextEntryClient(cfg),
		Cycle:                NewCycleClient(cfg),
		Profile:              NewProfileClient(cfg),
		Shoot:                NewShootClient(cfg),
		Task:                 NewTaskClient(cfg),
		TaskTemplate:         NewTaskTemplateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivityEvent.
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
		c.ActivityEvent, c.ClientAccount, c.ClientTaskAssignment, c.ContextEntry,
		c.Cycle, c.Profile, c.Shoot, c.Task, c.TaskTemplate,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActivityEvent, c.ClientAccount, c.ClientTaskAssignment, c.ContextEntry,
		c.Cycle, c.Profile, c.Shoot, c.Task, c.TaskTemplate,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityEventMutation:
		return c.ActivityEvent.mutate(ctx, m)
	case *ClientAccountMutation:
		return c.ClientAccount.mutate(ctx, m)
	case *ClientTaskAssignmentMutation:
		return c.ClientTaskAssignment.mutate(ctx, m)
	case *ContextEntryMutation:
		return c.ContextEntry.mutate(ctx, m)
	case *CycleMutation:
		return c.Cycle.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *ShootMutation:
		return c.Shoot.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskTemplateMutation:
		return c.TaskTemplate.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("generated: unknown mutation type %T", m)
	}
}

// ActivityEventClient is a client for the ActivityEvent schema.
type ActivityEventClient struct {
	config
}

// NewActivityEventClient returns a client for the ActivityEvent from the given config.
func NewActivityEventClient(c config) *ActivityEventClient {
	return &ActivityEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activityevent.Hooks(f(g(h())))`.
func (c *ActivityEventClient) Use(hooks ...Hook) {
	c.hooks.ActivityEvent = append(c.hooks.ActivityEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activityevent.Intercept(f(g(h())))`.
func (c *ActivityEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityEvent = append(c.inters.ActivityEvent, interceptors...)
}

// Create returns a builder for creating a ActivityEvent entity.
func (c *ActivityEventClient) Create() *ActivityEventCreate {
	mutation := newActivityEventMutation(c.config, OpCreate)
	return &ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityEvent entities.
func (c *ActivityEventClient) CreateBulk(builders ...*ActivityEventCreate) *ActivityEventCreateBulk {
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityEventClient) MapCreateBulk(slice any, setFunc func(*ActivityEventCreate, int)) *ActivityEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityEventCreateBulk{err: fmt.Errorf("calling to ActivityEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityEvent.
func (c *ActivityEventClient) Update() *ActivityEventUpdate {
	mutation := newActivityEventMutation(c.config, OpUpdate)
	return &ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityEventClient) UpdateOne(ae *ActivityEvent) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEvent(ae))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityEventClient) UpdateOneID(id uuid.UUID) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEventID(id))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityEvent.
func (c *ActivityEventClient) Delete() *ActivityEventDelete {
	mutation := newActivityEventMutation(c.config, OpDelete)
	return &ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityEventClient) DeleteOne(ae *ActivityEvent) *ActivityEventDeleteOne {
	return c.DeleteOneID(ae.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityEventClient) DeleteOneID(id uuid.UUID) *ActivityEventDeleteOne {
	builder := c.Delete().Where(activityevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityEventDeleteOne{builder}
}

// Query returns a query builder for ActivityEvent.
func (c *ActivityEventClient) Query() *ActivityEventQuery {
	return &ActivityEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityEvent entity by its id.
func (c *ActivityEventClient) Get(ctx context.Context, id uuid.UUID) (*ActivityEvent, error) {
	return c.Query().Where(activityevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityEventClient) GetX(ctx context.Context, id uuid.UUID) *ActivityEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryActor queries the actor edge of a ActivityEvent.
func (c *ActivityEventClient) QueryActor(ae *ActivityEvent) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ae.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(activityevent.Table, activityevent.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, activityevent.ActorTable, activityevent.ActorColumn),
		)
		fromV = sqlgraph.Neighbors(ae.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ActivityEventClient) Hooks() []Hook {
	return c.hooks.ActivityEvent
}

// Interceptors returns the client interceptors.
func (c *ActivityEventClient) Interceptors() []Interceptor {
	return c.inters.ActivityEvent
}

func (c *ActivityEventClient) mutate(ctx context.Context, m *ActivityEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown ActivityEvent mutation op: %q", m.Op())
	}
}

// ClientAccountClient is a client for the ClientAccount schema.
type ClientAccountClient struct {
	config
}

// NewClientAccountClient returns a client for the ClientAccount from the given config.
func NewClientAccountClient(c config) *ClientAccountClient {
	return &ClientAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clientaccount.Hooks(f(g(h())))`.
func (c *ClientAccountClient) Use(hooks ...Hook) {
	c.hooks.ClientAccount = append(c.hooks.ClientAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clientaccount.Intercept(f(g(h())))`.
func (c *ClientAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientAccount = append(c.inters.ClientAccount, interceptors...)
}

// Create returns a builder for creating a ClientAccount entity.
func (c *ClientAccountClient) Create() *ClientAccountCreate {
	mutation := newClientAccountMutation(c.config, OpCreate)
	return &ClientAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientAccount entities.
func (c *ClientAccountClient) CreateBulk(builders ...*ClientAccountCreate) *ClientAccountCreateBulk {
	return &ClientAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientAccountClient) MapCreateBulk(slice any, setFunc func(*ClientAccountCreate, int)) *ClientAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientAccountCreateBulk{err: fmt.Errorf("calling to ClientAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientAccount.
func (c *ClientAccountClient) Update() *ClientAccountUpdate {
	mutation := newClientAccountMutation(c.config, OpUpdate)
	return &ClientAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientAccountClient) UpdateOne(ca *ClientAccount) *ClientAccountUpdateOne {
	mutation := newClientAccountMutation(c.config, OpUpdateOne, withClientAccount(ca))
	return &ClientAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientAccountClient) UpdateOneID(id uuid.UUID) *ClientAccountUpdateOne {
	mutation := newClientAccountMutation(c.config, OpUpdateOne, withClientAccountID(id))
	return &ClientAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientAccount.
func (c *ClientAccountClient) Delete() *ClientAccountDelete {
	mutation := newClientAccountMutation(c.config, OpDelete)
	return &ClientAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientAccountClient) DeleteOne(ca *ClientAccount) *ClientAccountDeleteOne {
	return c.DeleteOneID(ca.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientAccountClient) DeleteOneID(id uuid.UUID) *ClientAccountDeleteOne {
	builder := c.Delete().Where(clientaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientAccountDeleteOne{builder}
}

// Query returns a query builder for ClientAccount.
func (c *ClientAccountClient) Query() *ClientAccountQuery {
	return &ClientAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientAccount entity by its id.
func (c *ClientAccountClient) Get(ctx context.Context, id uuid.UUID) (*ClientAccount, error) {
	return c.Query().Where(clientaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientAccountClient) GetX(ctx context.Context, id uuid.UUID) *ClientAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCycles queries the cycles edge of a ClientAccount.
func (c *ClientAccountClient) QueryCycles(ca *ClientAccount) *CycleQuery {
	query := (&CycleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ca.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientaccount.Table, clientaccount.FieldID, id),
			sqlgraph.To(cycle.Table, cycle.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientaccount.CyclesTable, clientaccount.CyclesColumn),
		)
		fromV = sqlgraph.Neighbors(ca.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryShoots queries the shoots edge of a ClientAccount.
func (c *ClientAccountClient) QueryShoots(ca *ClientAccount) *ShootQuery {
	query := (&ShootClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ca.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientaccount.Table, clientaccount.FieldID, id),
			sqlgraph.To(shoot.Table, shoot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientaccount.ShootsTable, clientaccount.ShootsColumn),
		)
		fromV = sqlgraph.Neighbors(ca.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplates queries the templates edge of a ClientAccount.
func (c *ClientAccountClient) QueryTemplates(ca *ClientAccount) *TaskTemplateQuery {
	query := (&TaskTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ca.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientaccount.Table, clientaccount.FieldID, id),
			sqlgraph.To(tasktemplate.Table, tasktemplate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientaccount.TemplatesTable, clientaccount.TemplatesColumn),
		)
		fromV = sqlgraph.Neighbors(ca.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignments queries the assignments edge of a ClientAccount.
func (c *ClientAccountClient) QueryAssignments(ca *ClientAccount) *ClientTaskAssignmentQuery {
	query := (&ClientTaskAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ca.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientaccount.Table, clientaccount.FieldID, id),
			sqlgraph.To(clienttaskassignment.Table, clienttaskassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientaccount.AssignmentsTable, clientaccount.AssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(ca.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContextEntries queries the context_entries edge of a ClientAccount.
func (c *ClientAccountClient) QueryContextEntries(ca *ClientAccount) *ContextEntryQuery {
	query := (&ContextEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ca.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientaccount.Table, clientaccount.FieldID, id),
			sqlgraph.To(contextentry.Table, contextentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientaccount.ContextEntriesTable, clientaccount.ContextEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(ca.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClientAccountClient) Hooks() []Hook {
	return c.hooks.ClientAccount
}

// Interceptors returns the client interceptors.
func (c *ClientAccountClient) Interceptors() []Interceptor {
	return c.inters.ClientAccount
}

func (c *ClientAccountClient) mutate(ctx context.Context, m *ClientAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown ClientAccount mutation op: %q", m.Op())
	}
}

// ClientTaskAssignmentClient is a client for the ClientTaskAssignment schema.
type ClientTaskAssignmentClient struct {
	config
}

// NewClientTaskAssignmentClient returns a client for the ClientTaskAssignment from the given config.
func NewClientTaskAssignmentClient(c config) *ClientTaskAssignmentClient {
	return &ClientTaskAssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clienttaskassignment.Hooks(f(g(h())))`.
func (c *ClientTaskAssignmentClient) Use(hooks ...Hook) {
	c.hooks.ClientTaskAssignment = append(c.hooks.ClientTaskAssignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clienttaskassignment.Intercept(f(g(h())))`.
func (c *ClientTaskAssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientTaskAssignment = append(c.inters.ClientTaskAssignment, interceptors...)
}

// Create returns a builder for creating a ClientTaskAssignment entity.
func (c *ClientTaskAssignmentClient) Create() *ClientTaskAssignmentCreate {
	mutation := newClientTaskAssignmentMutation(c.config, OpCreate)
	return &ClientTaskAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientTaskAssignment entities.
func (c *ClientTaskAssignmentClient) CreateBulk(builders ...*ClientTaskAssignmentCreate) *ClientTaskAssignmentCreateBulk {
	return &ClientTaskAssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientTaskAssignmentClient) MapCreateBulk(slice any, setFunc func(*ClientTaskAssignmentCreate, int)) *ClientTaskAssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientTaskAssignmentCreateBulk{err: fmt.Errorf("calling to ClientTaskAssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientTaskAssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientTaskAssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientTaskAssignment.
func (c *ClientTaskAssignmentClient) Update() *ClientTaskAssignmentUpdate {
	mutation := newClientTaskAssignmentMutation(c.config, OpUpdate)
	return &ClientTaskAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientTaskAssignmentClient) UpdateOne(cta *ClientTaskAssignment) *ClientTaskAssignmentUpdateOne {
	mutation := newClientTaskAssignmentMutation(c.config, OpUpdateOne, withClientTaskAssignment(cta))
	return &ClientTaskAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientTaskAssignmentClient) UpdateOneID(id uuid.UUID) *ClientTaskAssignmentUpdateOne {
	mutation := newClientTaskAssignmentMutation(c.config, OpUpdateOne, withClientTaskAssignmentID(id))
	return &ClientTaskAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientTaskAssignment.
func (c *ClientTaskAssignmentClient) Delete() *ClientTaskAssignmentDelete {
	mutation := newClientTaskAssignmentMutation(c.config, OpDelete)
	return &ClientTaskAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientTaskAssignmentClient) DeleteOne(cta *ClientTaskAssignment) *ClientTaskAssignmentDeleteOne {
	return c.DeleteOneID(cta.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientTaskAssignmentClient) DeleteOneID(id uuid.UUID) *ClientTaskAssignmentDeleteOne {
	builder := c.Delete().Where(clienttaskassignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientTaskAssignmentDeleteOne{builder}
}

// Query returns a query builder for ClientTaskAssignment.
func (c *ClientTaskAssignmentClient) Query() *ClientTaskAssignmentQuery {
	return &ClientTaskAssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientTaskAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientTaskAssignment entity by its id.
func (c *ClientTaskAssignmentClient) Get(ctx context.Context, id uuid.UUID) (*ClientTaskAssignment, error) {
	return c.Query().Where(clienttaskassignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientTaskAssignmentClient) GetX(ctx context.Context, id uuid.UUID) *ClientTaskAssignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClient queries the client edge of a ClientTaskAssignment.
func (c *ClientTaskAssignmentClient) QueryClient(cta *ClientTaskAssignment) *ClientAccountQuery {
	query := (&ClientAccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cta.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clienttaskassignment.Table, clienttaskassignment.FieldID, id),
			sqlgraph.To(clientaccount.Table, clientaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clienttaskassignment.ClientTable, clienttaskassignment.ClientColumn),
		)
		fromV = sqlgraph.Neighbors(cta.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplate queries the template edge of a ClientTaskAssignment.
func (c *ClientTaskAssignmentClient) QueryTemplate(cta *ClientTaskAssignment) *TaskTemplateQuery {
	query := (&TaskTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cta.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clienttaskassignment.Table, clienttaskassignment.FieldID, id),
			sqlgraph.To(tasktemplate.Table, tasktemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clienttaskassignment.TemplateTable, clienttaskassignment.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(cta.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignee queries the assignee edge of a ClientTaskAssignment.
func (c *ClientTaskAssignmentClient) QueryAssignee(cta *ClientTaskAssignment) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cta.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clienttaskassignment.Table, clienttaskassignment.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clienttaskassignment.AssigneeTable, clienttaskassignment.AssigneeColumn),
		)
		fromV = sqlgraph.Neighbors(cta.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClientTaskAssignmentClient) Hooks() []Hook {
	return c.hooks.ClientTaskAssignment
}

// Interceptors returns the client interceptors.
func (c *ClientTaskAssignmentClient) Interceptors() []Interceptor {
	return c.inters.ClientTaskAssignment
}

func (c *ClientTaskAssignmentClient) mutate(ctx context.Context, m *ClientTaskAssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientTaskAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientTaskAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientTaskAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientTaskAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown ClientTaskAssignment mutation op: %q", m.Op())
	}
}

// ContextEntryClient is a client for the ContextEntry schema.
type ContextEntryClient struct {
	config
}

// NewContextEntryClient returns a client for the ContextEntry from the given config.
func NewContextEntryClient(c config) *ContextEntryClient {
	return &ContextEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contextentry.Hooks(f(g(h())))`.
func (c *ContextEntryClient) Use(hooks ...Hook) {
	c.hooks.ContextEntry = append(c.hooks.ContextEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contextentry.Intercept(f(g(h())))`.
func (c *ContextEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextEntry = append(c.inters.ContextEntry, interceptors...)
}

// Create returns a builder for creating a ContextEntry entity.
func (c *ContextEntryClient) Create() *ContextEntryCreate {
	mutation := newContextEntryMutation(c.config, OpCreate)
	return &ContextEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextEntry entities.
func (c *ContextEntryClient) CreateBulk(builders ...*ContextEntryCreate) *ContextEntryCreateBulk {
	return &ContextEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextEntryClient) MapCreateBulk(slice any, setFunc func(*ContextEntryCreate, int)) *ContextEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextEntryCreateBulk{err: fmt.Errorf("calling to ContextEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextEntry.
func (c *ContextEntryClient) Update() *ContextEntryUpdate {
	mutation := newContextEntryMutation(c.config, OpUpdate)
	return &ContextEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextEntryClient) UpdateOne(ce *ContextEntry) *ContextEntryUpdateOne {
	mutation := newContextEntryMutation(c.config, OpUpdateOne, withContextEntry(ce))
	return &ContextEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextEntryClient) UpdateOneID(id uuid.UUID) *ContextEntryUpdateOne {
	mutation := newContextEntryMutation(c.config, OpUpdateOne, withContextEntryID(id))
	return &ContextEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextEntry.
func (c *ContextEntryClient) Delete() *ContextEntryDelete {
	mutation := newContextEntryMutation(c.config, OpDelete)
	return &ContextEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextEntryClient) DeleteOne(ce *ContextEntry) *ContextEntryDeleteOne {
	return c.DeleteOneID(ce.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextEntryClient) DeleteOneID(id uuid.UUID) *ContextEntryDeleteOne {
	builder := c.Delete().Where(contextentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextEntryDeleteOne{builder}
}

// Query returns a query builder for ContextEntry.
func (c *ContextEntryClient) Query() *ContextEntryQuery {
	return &ContextEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextEntry entity by its id.
func (c *ContextEntryClient) Get(ctx context.Context, id uuid.UUID) (*ContextEntry, error) {
	return c.Query().Where(contextentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextEntryClient) GetX(ctx context.Context, id uuid.UUID) *ContextEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClient queries the client edge of a ContextEntry.
func (c *ContextEntryClient) QueryClient(ce *ContextEntry) *ClientAccountQuery {
	query := (&ClientAccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ce.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contextentry.Table, contextentry.FieldID, id),
			sqlgraph.To(clientaccount.Table, clientaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contextentry.ClientTable, contextentry.ClientColumn),
		)
		fromV = sqlgraph.Neighbors(ce.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCycle queries the cycle edge of a ContextEntry.
func (c *ContextEntryClient) QueryCycle(ce *ContextEntry) *CycleQuery {
	query := (&CycleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ce.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contextentry.Table, contextentry.FieldID, id),
			sqlgraph.To(cycle.Table, cycle.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contextentry.CycleTable, contextentry.CycleColumn),
		)
		fromV = sqlgraph.Neighbors(ce.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthor queries the author edge of a ContextEntry.
func (c *ContextEntryClient) QueryAuthor(ce *ContextEntry) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ce.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contextentry.Table, contextentry.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contextentry.AuthorTable, contextentry.AuthorColumn),
		)
		fromV = sqlgraph.Neighbors(ce.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContextEntryClient) Hooks() []Hook {
	return c.hooks.ContextEntry
}

// Interceptors returns the client interceptors.
func (c *ContextEntryClient) Interceptors() []Interceptor {
	return c.inters.ContextEntry
}

func (c *ContextEntryClient) mutate(ctx context.Context, m *ContextEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown ContextEntry mutation op: %q", m.Op())
	}
}

// CycleClient is a client for the Cycle schema.
type CycleClient struct {
	config
}

// NewCycleClient returns a client for the Cycle from the given config.
func NewCycleClient(c config) *CycleClient {
	return &CycleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cycle.Hooks(f(g(h())))`.
func (c *CycleClient) Use(hooks ...Hook) {
	c.hooks.Cycle = append(c.hooks.Cycle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cycle.Intercept(f(g(h())))`.
func (c *CycleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Cycle = append(c.inters.Cycle, interceptors...)
}

// Create returns a builder for creating a Cycle entity.
func (c *CycleClient) Create() *CycleCreate {
	mutation := newCycleMutation(c.config, OpCreate)
	return &CycleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Cycle entities.
func (c *CycleClient) CreateBulk(builders ...*CycleCreate) *CycleCreateBulk {
	return &CycleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CycleClient) MapCreateBulk(slice any, setFunc func(*CycleCreate, int)) *CycleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CycleCreateBulk{err: fmt.Errorf("calling to CycleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CycleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CycleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Cycle.
func (c *CycleClient) Update() *CycleUpdate {
	mutation := newCycleMutation(c.config, OpUpdate)
	return &CycleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CycleClient) UpdateOne(cy *Cycle) *CycleUpdateOne {
	mutation := newCycleMutation(c.config, OpUpdateOne, withCycle(cy))
	return &CycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CycleClient) UpdateOneID(id uuid.UUID) *CycleUpdateOne {
	mutation := newCycleMutation(c.config, OpUpdateOne, withCycleID(id))
	return &CycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Cycle.
func (c *CycleClient) Delete() *CycleDelete {
	mutation := newCycleMutation(c.config, OpDelete)
	return &CycleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CycleClient) DeleteOne(cy *Cycle) *CycleDeleteOne {
	return c.DeleteOneID(cy.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CycleClient) DeleteOneID(id uuid.UUID) *CycleDeleteOne {
	builder := c.Delete().Where(cycle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CycleDeleteOne{builder}
}

// Query returns a query builder for Cycle.
func (c *CycleClient) Query() *CycleQuery {
	return &CycleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCycle},
		inters: c.Interceptors(),
	}
}

// Get returns a Cycle entity by its id.
func (c *CycleClient) Get(ctx context.Context, id uuid.UUID) (*Cycle, error) {
	return c.Query().Where(cycle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CycleClient) GetX(ctx context.Context, id uuid.UUID) *Cycle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClient queries the client edge of a Cycle.
func (c *CycleClient) QueryClient(cy *Cycle) *ClientAccountQuery {
	query := (&ClientAccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cy.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cycle.Table, cycle.FieldID, id),
			sqlgraph.To(clientaccount.Table, clientaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cycle.ClientTable, cycle.ClientColumn),
		)
		fromV = sqlgraph.Neighbors(cy.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryShoots queries the shoots edge of a Cycle.
func (c *CycleClient) QueryShoots(cy *Cycle) *ShootQuery {
	query := (&ShootClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cy.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cycle.Table, cycle.FieldID, id),
			sqlgraph.To(shoot.Table, shoot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cycle.ShootsTable, cycle.ShootsColumn),
		)
		fromV = sqlgraph.Neighbors(cy.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContextEntries queries the context_entries edge of a Cycle.
func (c *CycleClient) QueryContextEntries(cy *Cycle) *ContextEntryQuery {
	query := (&ContextEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cy.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cycle.Table, cycle.FieldID, id),
			sqlgraph.To(contextentry.Table, contextentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cycle.ContextEntriesTable, cycle.ContextEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(cy.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CycleClient) Hooks() []Hook {
	return c.hooks.Cycle
}

// Interceptors returns the client interceptors.
func (c *CycleClient) Interceptors() []Interceptor {
	return c.inters.Cycle
}

func (c *CycleClient) mutate(ctx context.Context, m *CycleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CycleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CycleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CycleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Cycle mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(pr *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(pr))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(pr *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(pr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAssignedTasks queries the assigned_tasks edge of a Profile.
func (c *ProfileClient) QueryAssignedTasks(pr *Profile) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.AssignedTasksTable, profile.AssignedTasksColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContextEntries queries the context_entries edge of a Profile.
func (c *ProfileClient) QueryContextEntries(pr *Profile) *ContextEntryQuery {
	query := (&ContextEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(contextentry.Table, contextentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.ContextEntriesTable, profile.ContextEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDefaultAssignments queries the default_assignments edge of a Profile.
func (c *ProfileClient) QueryDefaultAssignments(pr *Profile) *ClientTaskAssignmentQuery {
	query := (&ClientTaskAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(clienttaskassignment.Table, clienttaskassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.DefaultAssignmentsTable, profile.DefaultAssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActivityEvents queries the activity_events edge of a Profile.
func (c *ProfileClient) QueryActivityEvents(pr *Profile) *ActivityEventQuery {
	query := (&ActivityEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(activityevent.Table, activityevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.ActivityEventsTable, profile.ActivityEventsColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Profile mutation op: %q", m.Op())
	}
}

// ShootClient is a client for the Shoot schema.
type ShootClient struct {
	config
}

// NewShootClient returns a client for the Shoot from the given config.
func NewShootClient(c config) *ShootClient {
	return &ShootClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `shoot.Hooks(f(g(h())))`.
func (c *ShootClient) Use(hooks ...Hook) {
	c.hooks.Shoot = append(c.hooks.Shoot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `shoot.Intercept(f(g(h())))`.
func (c *ShootClient) Intercept(interceptors ...Interceptor) {
	c.inters.Shoot = append(c.inters.Shoot, interceptors...)
}

// Create returns a builder for creating a Shoot entity.
func (c *ShootClient) Create() *ShootCreate {
	mutation := newShootMutation(c.config, OpCreate)
	return &ShootCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Shoot entities.
func (c *ShootClient) CreateBulk(builders ...*ShootCreate) *ShootCreateBulk {
	return &ShootCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ShootClient) MapCreateBulk(slice any, setFunc func(*ShootCreate, int)) *ShootCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ShootCreateBulk{err: fmt.Errorf("calling to ShootClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ShootCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ShootCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Shoot.
func (c *ShootClient) Update() *ShootUpdate {
	mutation := newShootMutation(c.config, OpUpdate)
	return &ShootUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ShootClient) UpdateOne(s *Shoot) *ShootUpdateOne {
	mutation := newShootMutation(c.config, OpUpdateOne, withShoot(s))
	return &ShootUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ShootClient) UpdateOneID(id uuid.UUID) *ShootUpdateOne {
	mutation := newShootMutation(c.config, OpUpdateOne, withShootID(id))
	return &ShootUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Shoot.
func (c *ShootClient) Delete() *ShootDelete {
	mutation := newShootMutation(c.config, OpDelete)
	return &ShootDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ShootClient) DeleteOne(s *Shoot) *ShootDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ShootClient) DeleteOneID(id uuid.UUID) *ShootDeleteOne {
	builder := c.Delete().Where(shoot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ShootDeleteOne{builder}
}

// Query returns a query builder for Shoot.
func (c *ShootClient) Query() *ShootQuery {
	return &ShootQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeShoot},
		inters: c.Interceptors(),
	}
}

// Get returns a Shoot entity by its id.
func (c *ShootClient) Get(ctx context.Context, id uuid.UUID) (*Shoot, error) {
	return c.Query().Where(shoot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ShootClient) GetX(ctx context.Context, id uuid.UUID) *Shoot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClient queries the client edge of a Shoot.
func (c *ShootClient) QueryClient(s *Shoot) *ClientAccountQuery {
	query := (&ClientAccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := s.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(shoot.Table, shoot.FieldID, id),
			sqlgraph.To(clientaccount.Table, clientaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, shoot.ClientTable, shoot.ClientColumn),
		)
		fromV = sqlgraph.Neighbors(s.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCycle queries the cycle edge of a Shoot.
func (c *ShootClient) QueryCycle(s *Shoot) *CycleQuery {
	query := (&CycleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := s.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(shoot.Table, shoot.FieldID, id),
			sqlgraph.To(cycle.Table, cycle.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, shoot.CycleTable, shoot.CycleColumn),
		)
		fromV = sqlgraph.Neighbors(s.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ShootClient) Hooks() []Hook {
	return c.hooks.Shoot
}

// Interceptors returns the client interceptors.
func (c *ShootClient) Interceptors() []Interceptor {
	return c.inters.Shoot
}

func (c *ShootClient) mutate(ctx context.Context, m *ShootMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ShootCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ShootUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ShootUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ShootDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Shoot mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(t *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(t))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id uuid.UUID) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(t *Task) *TaskDeleteOne {
	return c.DeleteOneID(t.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id uuid.UUID) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id uuid.UUID) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAssignee queries the assignee edge of a Task.
func (c *TaskClient) QueryAssignee(t *Task) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.AssigneeTable, task.AssigneeColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Task mutation op: %q", m.Op())
	}
}

// TaskTemplateClient is a client for the TaskTemplate schema.
type TaskTemplateClient struct {
	config
}

// NewTaskTemplateClient returns a client for the TaskTemplate from the given config.
func NewTaskTemplateClient(c config) *TaskTemplateClient {
	return &TaskTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tasktemplate.Hooks(f(g(h())))`.
func (c *TaskTemplateClient) Use(hooks ...Hook) {
	c.hooks.TaskTemplate = append(c.hooks.TaskTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tasktemplate.Intercept(f(g(h())))`.
func (c *TaskTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskTemplate = append(c.inters.TaskTemplate, interceptors...)
}

// Create returns a builder for creating a TaskTemplate entity.
func (c *TaskTemplateClient) Create() *TaskTemplateCreate {
	mutation := newTaskTemplateMutation(c.config, OpCreate)
	return &TaskTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskTemplate entities.
func (c *TaskTemplateClient) CreateBulk(builders ...*TaskTemplateCreate) *TaskTemplateCreateBulk {
	return &TaskTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskTemplateClient) MapCreateBulk(slice any, setFunc func(*TaskTemplateCreate, int)) *TaskTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskTemplateCreateBulk{err: fmt.Errorf("calling to TaskTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskTemplate.
func (c *TaskTemplateClient) Update() *TaskTemplateUpdate {
	mutation := newTaskTemplateMutation(c.config, OpUpdate)
	return &TaskTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskTemplateClient) UpdateOne(tt *TaskTemplate) *TaskTemplateUpdateOne {
	mutation := newTaskTemplateMutation(c.config, OpUpdateOne, withTaskTemplate(tt))
	return &TaskTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskTemplateClient) UpdateOneID(id uuid.UUID) *TaskTemplateUpdateOne {
	mutation := newTaskTemplateMutation(c.config, OpUpdateOne, withTaskTemplateID(id))
	return &TaskTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskTemplate.
func (c *TaskTemplateClient) Delete() *TaskTemplateDelete {
	mutation := newTaskTemplateMutation(c.config, OpDelete)
	return &TaskTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskTemplateClient) DeleteOne(tt *TaskTemplate) *TaskTemplateDeleteOne {
	return c.DeleteOneID(tt.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskTemplateClient) DeleteOneID(id uuid.UUID) *TaskTemplateDeleteOne {
	builder := c.Delete().Where(tasktemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskTemplateDeleteOne{builder}
}

// Query returns a query builder for TaskTemplate.
func (c *TaskTemplateClient) Query() *TaskTemplateQuery {
	return &TaskTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskTemplate entity by its id.
func (c *TaskTemplateClient) Get(ctx context.Context, id uuid.UUID) (*TaskTemplate, error) {
	return c.Query().Where(tasktemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskTemplateClient) GetX(ctx context.Context, id uuid.UUID) *TaskTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClient queries the client edge of a TaskTemplate.
func (c *TaskTemplateClient) QueryClient(tt *TaskTemplate) *ClientAccountQuery {
	query := (&ClientAccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := tt.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tasktemplate.Table, tasktemplate.FieldID, id),
			sqlgraph.To(clientaccount.Table, clientaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tasktemplate.ClientTable, tasktemplate.ClientColumn),
		)
		fromV = sqlgraph.Neighbors(tt.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignments queries the assignments edge of a TaskTemplate.
func (c *TaskTemplateClient) QueryAssignments(tt *TaskTemplate) *ClientTaskAssignmentQuery {
	query := (&ClientTaskAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := tt.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tasktemplate.Table, tasktemplate.FieldID, id),
			sqlgraph.To(clienttaskassignment.Table, clienttaskassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tasktemplate.AssignmentsTable, tasktemplate.AssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(tt.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskTemplateClient) Hooks() []Hook {
	return c.hooks.TaskTemplate
}

// Interceptors returns the client interceptors.
func (c *TaskTemplateClient) Interceptors() []Interceptor {
	return c.inters.TaskTemplate
}

func (c *TaskTemplateClient) mutate(ctx context.Context, m *TaskTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown TaskTemplate mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivityEvent, ClientAccount, ClientTaskAssignment, ContextEntry, Cycle,
		Profile, Shoot, Task, TaskTemplate []ent.Hook
	}
	inters struct {
		ActivityEvent, ClientAccount, ClientTaskAssignment, ContextEntry, Cycle,
		Profile, Shoot, Task, TaskTemplate []ent.Interceptor
	}
)
