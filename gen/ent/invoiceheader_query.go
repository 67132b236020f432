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
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceheader"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceline"
	"github.com/adriankd/maintenance-plus/gen/ent/predicate"
)

// InvoiceHeaderQuery is the builder for querying InvoiceHeader entities.
type InvoiceHeaderQuery struct {
	config
	ctx        *QueryContext
	order      []invoiceheader.OrderOption
	inters     []Interceptor
	predicates []predicate.InvoiceHeader
	withLines  *InvoiceLineQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InvoiceHeaderQuery builder.
func (_q *InvoiceHeaderQuery) Where(ps ...predicate.InvoiceHeader) *InvoiceHeaderQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InvoiceHeaderQuery) Limit(limit int) *InvoiceHeaderQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InvoiceHeaderQuery) Offset(offset int) *InvoiceHeaderQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InvoiceHeaderQuery) Unique(unique bool) *InvoiceHeaderQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InvoiceHeaderQuery) Order(o ...invoiceheader.OrderOption) *InvoiceHeaderQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLines chains the current query on the "lines" edge.
func (_q *InvoiceHeaderQuery) QueryLines() *InvoiceLineQuery {
	query := (&InvoiceLineClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(invoiceheader.Table, invoiceheader.FieldID, selector),
			sqlgraph.To(invoiceline.Table, invoiceline.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, invoiceheader.LinesTable, invoiceheader.LinesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first InvoiceHeader entity from the query.
// Returns a *NotFoundError when no InvoiceHeader was found.
func (_q *InvoiceHeaderQuery) First(ctx context.Context) (*InvoiceHeader, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{invoiceheader.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InvoiceHeaderQuery) FirstX(ctx context.Context) *InvoiceHeader {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InvoiceHeader ID from the query.
// Returns a *NotFoundError when no InvoiceHeader ID was found.
func (_q *InvoiceHeaderQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{invoiceheader.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InvoiceHeaderQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InvoiceHeader entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InvoiceHeader entity is found.
// Returns a *NotFoundError when no InvoiceHeader entities are found.
func (_q *InvoiceHeaderQuery) Only(ctx context.Context) (*InvoiceHeader, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{invoiceheader.Label}
	default:
		return nil, &NotSingularError{invoiceheader.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InvoiceHeaderQuery) OnlyX(ctx context.Context) *InvoiceHeader {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InvoiceHeader ID in the query.
// Returns a *NotSingularError when more than one InvoiceHeader ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InvoiceHeaderQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{invoiceheader.Label}
	default:
		err = &NotSingularError{invoiceheader.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InvoiceHeaderQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InvoiceHeaders.
func (_q *InvoiceHeaderQuery) All(ctx context.Context) ([]*InvoiceHeader, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InvoiceHeader, *InvoiceHeaderQuery]()
	return withInterceptors[[]*InvoiceHeader](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InvoiceHeaderQuery) AllX(ctx context.Context) []*InvoiceHeader {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InvoiceHeader IDs.
func (_q *InvoiceHeaderQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(invoiceheader.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InvoiceHeaderQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InvoiceHeaderQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InvoiceHeaderQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InvoiceHeaderQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InvoiceHeaderQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *InvoiceHeaderQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InvoiceHeaderQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InvoiceHeaderQuery) Clone() *InvoiceHeaderQuery {
	if _q == nil {
		return nil
	}
	return &InvoiceHeaderQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]invoiceheader.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.InvoiceHeader{}, _q.predicates...),
		withLines:  _q.withLines.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLines tells the query-builder to eager-load the nodes that are connected to
// the "lines" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InvoiceHeaderQuery) WithLines(opts ...func(*InvoiceLineQuery)) *InvoiceHeaderQuery {
	query := (&InvoiceLineClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLines = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		VehicleID int `json:"vehicle_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.InvoiceHeader.Query().
//		GroupBy(invoiceheader.FieldVehicleID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InvoiceHeaderQuery) GroupBy(field string, fields ...string) *InvoiceHeaderGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InvoiceHeaderGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = invoiceheader.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		VehicleID int `json:"vehicle_id,omitempty"`
//	}
//
//	client.InvoiceHeader.Query().
//		Select(invoiceheader.FieldVehicleID).
//		Scan(ctx, &v)
func (_q *InvoiceHeaderQuery) Select(fields ...string) *InvoiceHeaderSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InvoiceHeaderSelect{InvoiceHeaderQuery: _q}
	sbuild.label = invoiceheader.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InvoiceHeaderSelect configured with the given aggregations.
func (_q *InvoiceHeaderQuery) Aggregate(fns ...AggregateFunc) *InvoiceHeaderSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InvoiceHeaderQuery) prepareQuery(ctx context.Context) error {
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
		if !invoiceheader.ValidColumn(f) {
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

func (_q *InvoiceHeaderQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InvoiceHeader, error) {
	var (
		nodes       = []*InvoiceHeader{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withLines != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InvoiceHeader).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InvoiceHeader{config: _q.config}
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
	if query := _q.withLines; query != nil {
		if err := _q.loadLines(ctx, query, nodes,
			func(n *InvoiceHeader) { n.Edges.Lines = []*InvoiceLine{} },
			func(n *InvoiceHeader, e *InvoiceLine) { n.Edges.Lines = append(n.Edges.Lines, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InvoiceHeaderQuery) loadLines(ctx context.Context, query *InvoiceLineQuery, nodes []*InvoiceHeader, init func(*InvoiceHeader), assign func(*InvoiceHeader, *InvoiceLine)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*InvoiceHeader)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(invoiceline.FieldInvoiceID)
	}
	query.Where(predicate.InvoiceLine(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(invoiceheader.LinesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InvoiceID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "invoice_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InvoiceHeaderQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InvoiceHeaderQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(invoiceheader.Table, invoiceheader.Columns, sqlgraph.NewFieldSpec(invoiceheader.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoiceheader.FieldID)
		for i := range fields {
			if fields[i] != invoiceheader.FieldID {
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

func (_q *InvoiceHeaderQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(invoiceheader.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = invoiceheader.Columns
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

// InvoiceHeaderGroupBy is the group-by builder for InvoiceHeader entities.
type InvoiceHeaderGroupBy struct {
	selector
	build *InvoiceHeaderQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InvoiceHeaderGroupBy) Aggregate(fns ...AggregateFunc) *InvoiceHeaderGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InvoiceHeaderGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InvoiceHeaderQuery, *InvoiceHeaderGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InvoiceHeaderGroupBy) sqlScan(ctx context.Context, root *InvoiceHeaderQuery, v any) error {
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

// InvoiceHeaderSelect is the builder for selecting fields of InvoiceHeader entities.
type InvoiceHeaderSelect struct {
	*InvoiceHeaderQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InvoiceHeaderSelect) Aggregate(fns ...AggregateFunc) *InvoiceHeaderSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InvoiceHeaderSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InvoiceHeaderQuery, *InvoiceHeaderSelect](ctx, _s.InvoiceHeaderQuery, _s, _s.inters, v)
}

func (_s *InvoiceHeaderSelect) sqlScan(ctx context.Context, root *InvoiceHeaderQuery, v any) error {
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
