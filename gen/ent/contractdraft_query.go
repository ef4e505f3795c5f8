// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/gen/ent/contractdraft"
	"github.com/pcaldeira/contractdraft/gen/ent/draftdocument"
	"github.com/pcaldeira/contractdraft/gen/ent/partner"
	"github.com/pcaldeira/contractdraft/gen/ent/predicate"
)

// ContractDraftQuery is the builder for querying ContractDraft entities.
type ContractDraftQuery struct {
	config
	ctx           *QueryContext
	order         []contractdraft.OrderOption
	inters        []Interceptor
	predicates    []predicate.ContractDraft
	withPartners  *PartnerQuery
	withDocuments *DraftDocumentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ContractDraftQuery builder.
func (_q *ContractDraftQuery) Where(ps ...predicate.ContractDraft) *ContractDraftQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ContractDraftQuery) Limit(limit int) *ContractDraftQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ContractDraftQuery) Offset(offset int) *ContractDraftQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ContractDraftQuery) Unique(unique bool) *ContractDraftQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ContractDraftQuery) Order(o ...contractdraft.OrderOption) *ContractDraftQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPartners chains the current query on the "partners" edge.
func (_q *ContractDraftQuery) QueryPartners() *PartnerQuery {
	query := (&PartnerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(contractdraft.Table, contractdraft.FieldID, selector),
			sqlgraph.To(partner.Table, partner.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contractdraft.PartnersTable, contractdraft.PartnersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocuments chains the current query on the "documents" edge.
func (_q *ContractDraftQuery) QueryDocuments() *DraftDocumentQuery {
	query := (&DraftDocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(contractdraft.Table, contractdraft.FieldID, selector),
			sqlgraph.To(draftdocument.Table, draftdocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contractdraft.DocumentsTable, contractdraft.DocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ContractDraft entity from the query.
// Returns a *NotFoundError when no ContractDraft was found.
func (_q *ContractDraftQuery) First(ctx context.Context) (*ContractDraft, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{contractdraft.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ContractDraftQuery) FirstX(ctx context.Context) *ContractDraft {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ContractDraft ID from the query.
// Returns a *NotFoundError when no ContractDraft ID was found.
func (_q *ContractDraftQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{contractdraft.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ContractDraftQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ContractDraft entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ContractDraft entity is found.
// Returns a *NotFoundError when no ContractDraft entities are found.
func (_q *ContractDraftQuery) Only(ctx context.Context) (*ContractDraft, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{contractdraft.Label}
	default:
		return nil, &NotSingularError{contractdraft.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ContractDraftQuery) OnlyX(ctx context.Context) *ContractDraft {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ContractDraft ID in the query.
// Returns a *NotSingularError when more than one ContractDraft ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ContractDraftQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{contractdraft.Label}
	default:
		err = &NotSingularError{contractdraft.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ContractDraftQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ContractDrafts.
func (_q *ContractDraftQuery) All(ctx context.Context) ([]*ContractDraft, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ContractDraft, *ContractDraftQuery]()
	return withInterceptors[[]*ContractDraft](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ContractDraftQuery) AllX(ctx context.Context) []*ContractDraft {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ContractDraft IDs.
func (_q *ContractDraftQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(contractdraft.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ContractDraftQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ContractDraftQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ContractDraftQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ContractDraftQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ContractDraftQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ContractDraftQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ContractDraftQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ContractDraftQuery) Clone() *ContractDraftQuery {
	if _q == nil {
		return nil
	}
	return &ContractDraftQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]contractdraft.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.ContractDraft{}, _q.predicates...),
		withPartners:  _q.withPartners.Clone(),
		withDocuments: _q.withDocuments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPartners tells the query-builder to eager-load the nodes that are connected to
// the "partners" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ContractDraftQuery) WithPartners(opts ...func(*PartnerQuery)) *ContractDraftQuery {
	query := (&PartnerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPartners = query
	return _q
}

// WithDocuments tells the query-builder to eager-load the nodes that are connected to
// the "documents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ContractDraftQuery) WithDocuments(opts ...func(*DraftDocumentQuery)) *ContractDraftQuery {
	query := (&DraftDocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocuments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ContractDraft.Query().
//		GroupBy(contractdraft.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ContractDraftQuery) GroupBy(field string, fields ...string) *ContractDraftGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ContractDraftGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = contractdraft.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.ContractDraft.Query().
//		Select(contractdraft.FieldName).
//		Scan(ctx, &v)
func (_q *ContractDraftQuery) Select(fields ...string) *ContractDraftSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ContractDraftSelect{ContractDraftQuery: _q}
	sbuild.label = contractdraft.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ContractDraftSelect configured with the given aggregations.
func (_q *ContractDraftQuery) Aggregate(fns ...AggregateFunc) *ContractDraftSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ContractDraftQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !contractdraft.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ContractDraftQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ContractDraft, error) {
	var (
		nodes       = []*ContractDraft{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPartners != nil,
			_q.withDocuments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ContractDraft).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ContractDraft{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPartners; query != nil {
		if err := _q.loadPartners(ctx, query, nodes,
			func(n *ContractDraft) { n.Edges.Partners = []*Partner{} },
			func(n *ContractDraft, e *Partner) { n.Edges.Partners = append(n.Edges.Partners, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocuments; query != nil {
		if err := _q.loadDocuments(ctx, query, nodes,
			func(n *ContractDraft) { n.Edges.Documents = []*DraftDocument{} },
			func(n *ContractDraft, e *DraftDocument) { n.Edges.Documents = append(n.Edges.Documents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ContractDraftQuery) loadPartners(ctx context.Context, query *PartnerQuery, nodes []*ContractDraft, init func(*ContractDraft), assign func(*ContractDraft, *Partner)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ContractDraft)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(partner.FieldDraftID)
	}
	query.Where(predicate.Partner(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(contractdraft.PartnersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DraftID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "draft_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ContractDraftQuery) loadDocuments(ctx context.Context, query *DraftDocumentQuery, nodes []*ContractDraft, init func(*ContractDraft), assign func(*ContractDraft, *DraftDocument)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ContractDraft)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(draftdocument.FieldDraftID)
	}
	query.Where(predicate.DraftDocument(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(contractdraft.DocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DraftID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "draft_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ContractDraftQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ContractDraftQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(contractdraft.Table, contractdraft.Columns, sqlgraph.NewFieldSpec(contractdraft.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contractdraft.FieldID)
		for i := range fields {
			if fields[i] != contractdraft.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ContractDraftQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(contractdraft.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = contractdraft.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ContractDraftGroupBy is the group-by builder for ContractDraft entities.
type ContractDraftGroupBy struct {
	selector
	build *ContractDraftQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ContractDraftGroupBy) Aggregate(fns ...AggregateFunc) *ContractDraftGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ContractDraftGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContractDraftQuery, *ContractDraftGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ContractDraftGroupBy) sqlScan(ctx context.Context, root *ContractDraftQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ContractDraftSelect is the builder for selecting fields of ContractDraft entities.
type ContractDraftSelect struct {
	*ContractDraftQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ContractDraftSelect) Aggregate(fns ...AggregateFunc) *ContractDraftSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ContractDraftSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContractDraftQuery, *ContractDraftSelect](ctx, _s.ContractDraftQuery, _s, _s.inters, v)
}

func (_s *ContractDraftSelect) sqlScan(ctx context.Context, root *ContractDraftQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
