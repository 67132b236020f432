// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/adriankd/maintenance-plus/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceheader"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceline"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// InvoiceHeader is the client for interacting with the InvoiceHeader builders.
	InvoiceHeader *InvoiceHeaderClient
	// InvoiceLine is the client for interacting with the InvoiceLine builders.
	InvoiceLine *InvoiceLineClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.InvoiceHeader = NewInvoiceHeaderClient(c.config)
	c.InvoiceLine = NewInvoiceLineClient(c.config)
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
		InvoiceHeader: NewInvoiceHeaderClient(cfg),
		InvoiceLine:   NewInvoiceLineClient(cfg),
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
		InvoiceHeader: NewInvoiceHeaderClient(cfg),
		InvoiceLine:   NewInvoiceLineClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		InvoiceHeader.
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
	c.InvoiceHeader.Use(hooks...)
	c.InvoiceLine.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.InvoiceHeader.Intercept(interceptors...)
	c.InvoiceLine.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InvoiceHeaderMutation:
		return c.InvoiceHeader.mutate(ctx, m)
	case *InvoiceLineMutation:
		return c.InvoiceLine.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// InvoiceHeaderClient is a client for the InvoiceHeader schema.
type InvoiceHeaderClient struct {
	config
}

// NewInvoiceHeaderClient returns a client for the InvoiceHeader from the given config.
func NewInvoiceHeaderClient(c config) *InvoiceHeaderClient {
	return &InvoiceHeaderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoiceheader.Hooks(f(g(h())))`.
func (c *InvoiceHeaderClient) Use(hooks ...Hook) {
	c.hooks.InvoiceHeader = append(c.hooks.InvoiceHeader, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoiceheader.Intercept(f(g(h())))`.
func (c *InvoiceHeaderClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvoiceHeader = append(c.inters.InvoiceHeader, interceptors...)
}

// Create returns a builder for creating a InvoiceHeader entity.
func (c *InvoiceHeaderClient) Create() *InvoiceHeaderCreate {
	mutation := newInvoiceHeaderMutation(c.config, OpCreate)
	return &InvoiceHeaderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvoiceHeader entities.
func (c *InvoiceHeaderClient) CreateBulk(builders ...*InvoiceHeaderCreate) *InvoiceHeaderCreateBulk {
	return &InvoiceHeaderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceHeaderClient) MapCreateBulk(slice any, setFunc func(*InvoiceHeaderCreate, int)) *InvoiceHeaderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceHeaderCreateBulk{err: fmt.Errorf("calling to InvoiceHeaderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceHeaderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceHeaderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvoiceHeader.
func (c *InvoiceHeaderClient) Update() *InvoiceHeaderUpdate {
	mutation := newInvoiceHeaderMutation(c.config, OpUpdate)
	return &InvoiceHeaderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceHeaderClient) UpdateOne(_m *InvoiceHeader) *InvoiceHeaderUpdateOne {
	mutation := newInvoiceHeaderMutation(c.config, OpUpdateOne, withInvoiceHeader(_m))
	return &InvoiceHeaderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceHeaderClient) UpdateOneID(id int) *InvoiceHeaderUpdateOne {
	mutation := newInvoiceHeaderMutation(c.config, OpUpdateOne, withInvoiceHeaderID(id))
	return &InvoiceHeaderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvoiceHeader.
func (c *InvoiceHeaderClient) Delete() *InvoiceHeaderDelete {
	mutation := newInvoiceHeaderMutation(c.config, OpDelete)
	return &InvoiceHeaderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceHeaderClient) DeleteOne(_m *InvoiceHeader) *InvoiceHeaderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceHeaderClient) DeleteOneID(id int) *InvoiceHeaderDeleteOne {
	builder := c.Delete().Where(invoiceheader.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceHeaderDeleteOne{builder}
}

// Query returns a query builder for InvoiceHeader.
func (c *InvoiceHeaderClient) Query() *InvoiceHeaderQuery {
	return &InvoiceHeaderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoiceHeader},
		inters: c.Interceptors(),
	}
}

// Get returns a InvoiceHeader entity by its id.
func (c *InvoiceHeaderClient) Get(ctx context.Context, id int) (*InvoiceHeader, error) {
	return c.Query().Where(invoiceheader.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceHeaderClient) GetX(ctx context.Context, id int) *InvoiceHeader {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLines queries the lines edge of a InvoiceHeader.
func (c *InvoiceHeaderClient) QueryLines(_m *InvoiceHeader) *InvoiceLineQuery {
	query := (&InvoiceLineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoiceheader.Table, invoiceheader.FieldID, id),
			sqlgraph.To(invoiceline.Table, invoiceline.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, invoiceheader.LinesTable, invoiceheader.LinesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceHeaderClient) Hooks() []Hook {
	return c.hooks.InvoiceHeader
}

// Interceptors returns the client interceptors.
func (c *InvoiceHeaderClient) Interceptors() []Interceptor {
	return c.inters.InvoiceHeader
}

func (c *InvoiceHeaderClient) mutate(ctx context.Context, m *InvoiceHeaderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceHeaderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceHeaderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceHeaderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceHeaderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvoiceHeader mutation op: %q", m.Op())
	}
}

// InvoiceLineClient is a client for the InvoiceLine schema.
type InvoiceLineClient struct {
	config
}

// NewInvoiceLineClient returns a client for the InvoiceLine from the given config.
func NewInvoiceLineClient(c config) *InvoiceLineClient {
	return &InvoiceLineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoiceline.Hooks(f(g(h())))`.
func (c *InvoiceLineClient) Use(hooks ...Hook) {
	c.hooks.InvoiceLine = append(c.hooks.InvoiceLine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoiceline.Intercept(f(g(h())))`.
func (c *InvoiceLineClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvoiceLine = append(c.inters.InvoiceLine, interceptors...)
}

// Create returns a builder for creating a InvoiceLine entity.
func (c *InvoiceLineClient) Create() *InvoiceLineCreate {
	mutation := newInvoiceLineMutation(c.config, OpCreate)
	return &InvoiceLineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvoiceLine entities.
func (c *InvoiceLineClient) CreateBulk(builders ...*InvoiceLineCreate) *InvoiceLineCreateBulk {
	return &InvoiceLineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceLineClient) MapCreateBulk(slice any, setFunc func(*InvoiceLineCreate, int)) *InvoiceLineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceLineCreateBulk{err: fmt.Errorf("calling to InvoiceLineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceLineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceLineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvoiceLine.
func (c *InvoiceLineClient) Update() *InvoiceLineUpdate {
	mutation := newInvoiceLineMutation(c.config, OpUpdate)
	return &InvoiceLineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceLineClient) UpdateOne(_m *InvoiceLine) *InvoiceLineUpdateOne {
	mutation := newInvoiceLineMutation(c.config, OpUpdateOne, withInvoiceLine(_m))
	return &InvoiceLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceLineClient) UpdateOneID(id int) *InvoiceLineUpdateOne {
	mutation := newInvoiceLineMutation(c.config, OpUpdateOne, withInvoiceLineID(id))
	return &InvoiceLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvoiceLine.
func (c *InvoiceLineClient) Delete() *InvoiceLineDelete {
	mutation := newInvoiceLineMutation(c.config, OpDelete)
	return &InvoiceLineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceLineClient) DeleteOne(_m *InvoiceLine) *InvoiceLineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceLineClient) DeleteOneID(id int) *InvoiceLineDeleteOne {
	builder := c.Delete().Where(invoiceline.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceLineDeleteOne{builder}
}

// Query returns a query builder for InvoiceLine.
func (c *InvoiceLineClient) Query() *InvoiceLineQuery {
	return &InvoiceLineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoiceLine},
		inters: c.Interceptors(),
	}
}

// Get returns a InvoiceLine entity by its id.
func (c *InvoiceLineClient) Get(ctx context.Context, id int) (*InvoiceLine, error) {
	return c.Query().Where(invoiceline.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceLineClient) GetX(ctx context.Context, id int) *InvoiceLine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHeader queries the header edge of a InvoiceLine.
func (c *InvoiceLineClient) QueryHeader(_m *InvoiceLine) *InvoiceHeaderQuery {
	query := (&InvoiceHeaderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoiceline.Table, invoiceline.FieldID, id),
			sqlgraph.To(invoiceheader.Table, invoiceheader.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, invoiceline.HeaderTable, invoiceline.HeaderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceLineClient) Hooks() []Hook {
	return c.hooks.InvoiceLine
}

// Interceptors returns the client interceptors.
func (c *InvoiceLineClient) Interceptors() []Interceptor {
	return c.inters.InvoiceLine
}

func (c *InvoiceLineClient) mutate(ctx context.Context, m *InvoiceLineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceLineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceLineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceLineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvoiceLine mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		InvoiceHeader, InvoiceLine []ent.Hook
	}
	inters struct {
		InvoiceHeader, InvoiceLine []ent.Interceptor
	}
)
