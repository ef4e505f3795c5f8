// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pcaldeira/contractdraft/gen/ent/contractdraft"
	"github.com/pcaldeira/contractdraft/gen/ent/draftdocument"
	"github.com/pcaldeira/contractdraft/gen/ent/partner"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ContractDraft is the client for interacting with the ContractDraft builders.
	ContractDraft *ContractDraftClient
	// DraftDocument is the client for interacting with the DraftDocument builders.
	DraftDocument *DraftDocumentClient
	// Partner is the client for interacting with the Partner builders.
	Partner *PartnerClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ContractDraft = NewContractDraftClient(c.config)
	c.DraftDocument = NewDraftDocumentClient(c.config)
	c.Partner = NewPartnerClient(c.config)
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
		ContractDraft: NewContractDraftClient(cfg),
		DraftDocument: NewDraftDocumentClient(cfg),
		Partner:       NewPartnerClient(cfg),
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
		ContractDraft: NewContractDraftClient(cfg),
		DraftDocument: NewDraftDocumentClient(cfg),
		Partner:       NewPartnerClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ContractDraft.
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
	c.ContractDraft.Use(hooks...)
	c.DraftDocument.Use(hooks...)
	c.Partner.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ContractDraft.Intercept(interceptors...)
	c.DraftDocument.Intercept(interceptors...)
	c.Partner.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContractDraftMutation:
		return c.ContractDraft.mutate(ctx, m)
	case *DraftDocumentMutation:
		return c.DraftDocument.mutate(ctx, m)
	case *PartnerMutation:
		return c.Partner.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContractDraftClient is a client for the ContractDraft schema.
type ContractDraftClient struct {
	config
}

// NewContractDraftClient returns a client for the ContractDraft from the given config.
func NewContractDraftClient(c config) *ContractDraftClient {
	return &ContractDraftClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contractdraft.Hooks(f(g(h())))`.
func (c *ContractDraftClient) Use(hooks ...Hook) {
	c.hooks.ContractDraft = append(c.hooks.ContractDraft, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contractdraft.Intercept(f(g(h())))`.
func (c *ContractDraftClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContractDraft = append(c.inters.ContractDraft, interceptors...)
}

// Create returns a builder for creating a ContractDraft entity.
func (c *ContractDraftClient) Create() *ContractDraftCreate {
	mutation := newContractDraftMutation(c.config, OpCreate)
	return &ContractDraftCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContractDraft entities.
func (c *ContractDraftClient) CreateBulk(builders ...*ContractDraftCreate) *ContractDraftCreateBulk {
	return &ContractDraftCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContractDraftClient) MapCreateBulk(slice any, setFunc func(*ContractDraftCreate, int)) *ContractDraftCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContractDraftCreateBulk{err: fmt.Errorf("calling to ContractDraftClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContractDraftCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContractDraftCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContractDraft.
func (c *ContractDraftClient) Update() *ContractDraftUpdate {
	mutation := newContractDraftMutation(c.config, OpUpdate)
	return &ContractDraftUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContractDraftClient) UpdateOne(_m *ContractDraft) *ContractDraftUpdateOne {
	mutation := newContractDraftMutation(c.config, OpUpdateOne, withContractDraft(_m))
	return &ContractDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContractDraftClient) UpdateOneID(id uuid.UUID) *ContractDraftUpdateOne {
	mutation := newContractDraftMutation(c.config, OpUpdateOne, withContractDraftID(id))
	return &ContractDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContractDraft.
func (c *ContractDraftClient) Delete() *ContractDraftDelete {
	mutation := newContractDraftMutation(c.config, OpDelete)
	return &ContractDraftDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContractDraftClient) DeleteOne(_m *ContractDraft) *ContractDraftDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContractDraftClient) DeleteOneID(id uuid.UUID) *ContractDraftDeleteOne {
	builder := c.Delete().Where(contractdraft.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContractDraftDeleteOne{builder}
}

// Query returns a query builder for ContractDraft.
func (c *ContractDraftClient) Query() *ContractDraftQuery {
	return &ContractDraftQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContractDraft},
		inters: c.Interceptors(),
	}
}

// Get returns a ContractDraft entity by its id.
func (c *ContractDraftClient) Get(ctx context.Context, id uuid.UUID) (*ContractDraft, error) {
	return c.Query().Where(contractdraft.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContractDraftClient) GetX(ctx context.Context, id uuid.UUID) *ContractDraft {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPartners queries the partners edge of a ContractDraft.
func (c *ContractDraftClient) QueryPartners(_m *ContractDraft) *PartnerQuery {
	query := (&PartnerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contractdraft.Table, contractdraft.FieldID, id),
			sqlgraph.To(partner.Table, partner.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contractdraft.PartnersTable, contractdraft.PartnersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a ContractDraft.
func (c *ContractDraftClient) QueryDocuments(_m *ContractDraft) *DraftDocumentQuery {
	query := (&DraftDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contractdraft.Table, contractdraft.FieldID, id),
			sqlgraph.To(draftdocument.Table, draftdocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contractdraft.DocumentsTable, contractdraft.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContractDraftClient) Hooks() []Hook {
	return c.hooks.ContractDraft
}

// Interceptors returns the client interceptors.
func (c *ContractDraftClient) Interceptors() []Interceptor {
	return c.inters.ContractDraft
}

func (c *ContractDraftClient) mutate(ctx context.Context, m *ContractDraftMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContractDraftCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContractDraftUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContractDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContractDraftDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContractDraft mutation op: %q", m.Op())
	}
}

// DraftDocumentClient is a client for the DraftDocument schema.
type DraftDocumentClient struct {
	config
}

// NewDraftDocumentClient returns a client for the DraftDocument from the given config.
func NewDraftDocumentClient(c config) *DraftDocumentClient {
	return &DraftDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `draftdocument.Hooks(f(g(h())))`.
func (c *DraftDocumentClient) Use(hooks ...Hook) {
	c.hooks.DraftDocument = append(c.hooks.DraftDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `draftdocument.Intercept(f(g(h())))`.
func (c *DraftDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.DraftDocument = append(c.inters.DraftDocument, interceptors...)
}

// Create returns a builder for creating a DraftDocument entity.
func (c *DraftDocumentClient) Create() *DraftDocumentCreate {
	mutation := newDraftDocumentMutation(c.config, OpCreate)
	return &DraftDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DraftDocument entities.
func (c *DraftDocumentClient) CreateBulk(builders ...*DraftDocumentCreate) *DraftDocumentCreateBulk {
	return &DraftDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DraftDocumentClient) MapCreateBulk(slice any, setFunc func(*DraftDocumentCreate, int)) *DraftDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DraftDocumentCreateBulk{err: fmt.Errorf("calling to DraftDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DraftDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DraftDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DraftDocument.
func (c *DraftDocumentClient) Update() *DraftDocumentUpdate {
	mutation := newDraftDocumentMutation(c.config, OpUpdate)
	return &DraftDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DraftDocumentClient) UpdateOne(_m *DraftDocument) *DraftDocumentUpdateOne {
	mutation := newDraftDocumentMutation(c.config, OpUpdateOne, withDraftDocument(_m))
	return &DraftDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DraftDocumentClient) UpdateOneID(id uuid.UUID) *DraftDocumentUpdateOne {
	mutation := newDraftDocumentMutation(c.config, OpUpdateOne, withDraftDocumentID(id))
	return &DraftDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DraftDocument.
func (c *DraftDocumentClient) Delete() *DraftDocumentDelete {
	mutation := newDraftDocumentMutation(c.config, OpDelete)
	return &DraftDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DraftDocumentClient) DeleteOne(_m *DraftDocument) *DraftDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DraftDocumentClient) DeleteOneID(id uuid.UUID) *DraftDocumentDeleteOne {
	builder := c.Delete().Where(draftdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DraftDocumentDeleteOne{builder}
}

// Query returns a query builder for DraftDocument.
func (c *DraftDocumentClient) Query() *DraftDocumentQuery {
	return &DraftDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDraftDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a DraftDocument entity by its id.
func (c *DraftDocumentClient) Get(ctx context.Context, id uuid.UUID) (*DraftDocument, error) {
	return c.Query().Where(draftdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DraftDocumentClient) GetX(ctx context.Context, id uuid.UUID) *DraftDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDraft queries the draft edge of a DraftDocument.
func (c *DraftDocumentClient) QueryDraft(_m *DraftDocument) *ContractDraftQuery {
	query := (&ContractDraftClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(draftdocument.Table, draftdocument.FieldID, id),
			sqlgraph.To(contractdraft.Table, contractdraft.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, draftdocument.DraftTable, draftdocument.DraftColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DraftDocumentClient) Hooks() []Hook {
	return c.hooks.DraftDocument
}

// Interceptors returns the client interceptors.
func (c *DraftDocumentClient) Interceptors() []Interceptor {
	return c.inters.DraftDocument
}

func (c *DraftDocumentClient) mutate(ctx context.Context, m *DraftDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DraftDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DraftDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DraftDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DraftDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DraftDocument mutation op: %q", m.Op())
	}
}

// PartnerClient is a client for the Partner schema.
type PartnerClient struct {
	config
}

// NewPartnerClient returns a client for the Partner from the given config.
func NewPartnerClient(c config) *PartnerClient {
	return &PartnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `partner.Hooks(f(g(h())))`.
func (c *PartnerClient) Use(hooks ...Hook) {
	c.hooks.Partner = append(c.hooks.Partner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `partner.Intercept(f(g(h())))`.
func (c *PartnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Partner = append(c.inters.Partner, interceptors...)
}

// Create returns a builder for creating a Partner entity.
func (c *PartnerClient) Create() *PartnerCreate {
	mutation := newPartnerMutation(c.config, OpCreate)
	return &PartnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Partner entities.
func (c *PartnerClient) CreateBulk(builders ...*PartnerCreate) *PartnerCreateBulk {
	return &PartnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PartnerClient) MapCreateBulk(slice any, setFunc func(*PartnerCreate, int)) *PartnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PartnerCreateBulk{err: fmt.Errorf("calling to PartnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PartnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PartnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Partner.
func (c *PartnerClient) Update() *PartnerUpdate {
	mutation := newPartnerMutation(c.config, OpUpdate)
	return &PartnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PartnerClient) UpdateOne(_m *Partner) *PartnerUpdateOne {
	mutation := newPartnerMutation(c.config, OpUpdateOne, withPartner(_m))
	return &PartnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PartnerClient) UpdateOneID(id uuid.UUID) *PartnerUpdateOne {
	mutation := newPartnerMutation(c.config, OpUpdateOne, withPartnerID(id))
	return &PartnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Partner.
func (c *PartnerClient) Delete() *PartnerDelete {
	mutation := newPartnerMutation(c.config, OpDelete)
	return &PartnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PartnerClient) DeleteOne(_m *Partner) *PartnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PartnerClient) DeleteOneID(id uuid.UUID) *PartnerDeleteOne {
	builder := c.Delete().Where(partner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PartnerDeleteOne{builder}
}

// Query returns a query builder for Partner.
func (c *PartnerClient) Query() *PartnerQuery {
	return &PartnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePartner},
		inters: c.Interceptors(),
	}
}

// Get returns a Partner entity by its id.
func (c *PartnerClient) Get(ctx context.Context, id uuid.UUID) (*Partner, error) {
	return c.Query().Where(partner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PartnerClient) GetX(ctx context.Context, id uuid.UUID) *Partner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDraft queries the draft edge of a Partner.
func (c *PartnerClient) QueryDraft(_m *Partner) *ContractDraftQuery {
	query := (&ContractDraftClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(partner.Table, partner.FieldID, id),
			sqlgraph.To(contractdraft.Table, contractdraft.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, partner.DraftTable, partner.DraftColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PartnerClient) Hooks() []Hook {
	return c.hooks.Partner
}

// Interceptors returns the client interceptors.
func (c *PartnerClient) Interceptors() []Interceptor {
	return c.inters.Partner
}

func (c *PartnerClient) mutate(ctx context.Context, m *PartnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PartnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PartnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PartnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PartnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Partner mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ContractDraft, DraftDocument, Partner []ent.Hook
	}
	inters struct {
		ContractDraft, DraftDocument, Partner []ent.Interceptor
	}
)
