// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/clientaccount"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/profile"
)

// ContextEntryQuery is the builder for querying ContextEntry entities.
type ContextEntryQuery struct {
	config
	ctx        *QueryContext
	order      []contextentry.OrderOption
	inters     []Interceptor
	predicates []predicate.ContextEntry
	withClient *ClientAccountQuery
	withCycle  *CycleQuery
	withAuthor *ProfileQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ContextEntryQuery builder.
func (ceq *ContextEntryQuery) Where(ps ...predicate.ContextEntry) *ContextEntryQuery {
	ceq.predicates = append(ceq.predicates, ps...)
	return ceq
}

// Limit the number of records to be returned by this query.
func (ceq *ContextEntryQuery) Limit(limit int) *ContextEntryQuery {
	ceq.ctx.Limit = &limit
	return ceq
}

// Offset to start from.
func (ceq *ContextEntryQuery) Offset(offset int) *ContextEntryQuery {
	ceq.ctx.Offset = &offset
	return ceq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ceq *ContextEntryQuery) Unique(unique bool) *ContextEntryQuery {
	ceq.ctx.Unique = &unique
	return ceq
}

// Order specifies how the records should be ordered.
func (ceq *ContextEntryQuery) Order(o ...contextentry.OrderOption) *ContextEntryQuery {
	ceq.order = append(ceq.order, o...)
	return ceq
}

// QueryClient chains the current query on the "client" edge.
func (ceq *ContextEntryQuery) QueryClient() *ClientAccountQuery {
	query := (&ClientAccountClient{config: ceq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ceq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ceq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(contextentry.Table, contextentry.FieldID, selector),
			sqlgraph.To(clientaccount.Table, clientaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contextentry.ClientTable, contextentry.ClientColumn),
		)
		fromU = sqlgraph.SetNeighbors(ceq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCycle chains the current query on the "cycle" edge.
func (ceq *ContextEntryQuery) QueryCycle() *CycleQuery {
	query := (&CycleClient{config: ceq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ceq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ceq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(contextentry.Table, contextentry.FieldID, selector),
			sqlgraph.To(cycle.Table, cycle.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contextentry.CycleTable, contextentry.CycleColumn),
		)
		fromU = sqlgraph.SetNeighbors(ceq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuthor chains the current query on the "author" edge.
func (ceq *ContextEntryQuery) QueryAuthor() *ProfileQuery {
	query := (&ProfileClient{config: ceq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ceq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ceq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(contextentry.Table, contextentry.FieldID, selector),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contextentry.AuthorTable, contextentry.AuthorColumn),
		)
		fromU = sqlgraph.SetNeighbors(ceq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ContextEntry entity from the query.
// Returns a *NotFoundError when no ContextEntry was found.
func (ceq *ContextEntryQuery) First(ctx context.Context) (*ContextEntry, error) {
	nodes, err := ceq.Limit(1).All(setContextOp(ctx, ceq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{contextentry.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ceq *ContextEntryQuery) FirstX(ctx context.Context) *ContextEntry {
	node, err := ceq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ContextEntry ID from the query.
// Returns a *NotFoundError when no ContextEntry ID was found.
func (ceq *ContextEntryQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ceq.Limit(1).IDs(setContextOp(ctx, ceq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{contextentry.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ceq *ContextEntryQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := ceq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ContextEntry entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ContextEntry entity is found.
// Returns a *NotFoundError when no ContextEntry entities are found.
func (ceq *ContextEntryQuery) Only(ctx context.Context) (*ContextEntry, error) {
	nodes, err := ceq.Limit(2).All(setContextOp(ctx, ceq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{contextentry.Label}
	default:
		return nil, &NotSingularError{contextentry.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ceq *ContextEntryQuery) OnlyX(ctx context.Context) *ContextEntry {
	node, err := ceq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ContextEntry ID in the query.
// Returns a *NotSingularError when more than one ContextEntry ID is found.
// Returns a *NotFoundError when no entities are found.
func (ceq *ContextEntryQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ceq.Limit(2).IDs(setContextOp(ctx, ceq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{contextentry.Label}
	default:
		err = &NotSingularError{contextentry.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ceq *ContextEntryQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := ceq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ContextEntries.
func (ceq *ContextEntryQuery) All(ctx context.Context) ([]*ContextEntry, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryAll)
	if err := ceq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ContextEntry, *ContextEntryQuery]()
	return withInterceptors[[]*ContextEntry](ctx, ceq, qr, ceq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ceq *ContextEntryQuery) AllX(ctx context.Context) []*ContextEntry {
	nodes, err := ceq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ContextEntry IDs.
func (ceq *ContextEntryQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if ceq.ctx.Unique == nil && ceq.path != nil {
		ceq.Unique(true)
	}
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryIDs)
	if err = ceq.Select(contextentry.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ceq *ContextEntryQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := ceq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ceq *ContextEntryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryCount)
	if err := ceq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ceq, querierCount[*ContextEntryQuery](), ceq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ceq *ContextEntryQuery) CountX(ctx context.Context) int {
	count, err := ceq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ceq *ContextEntryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryExist)
	switch _, err := ceq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ceq *ContextEntryQuery) ExistX(ctx context.Context) bool {
	exist, err := ceq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ContextEntryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ceq *ContextEntryQuery) Clone() *ContextEntryQuery {
	if ceq == nil {
		return nil
	}
	return &ContextEntryQuery{
		config:     ceq.config,
		ctx:        ceq.ctx.Clone(),
		order:      append([]contextentry.OrderOption{}, ceq.order...),
		inters:     append([]Interceptor{}, ceq.inters...),
		predicates: append([]predicate.ContextEntry{}, ceq.predicates...),
		withClient: ceq.withClient.Clone(),
		withCycle:  ceq.withCycle.Clone(),
		withAuthor: ceq.withAuthor.Clone(),
		// clone intermediate query.
		sql:  ceq.sql.Clone(),
		path: ceq.path,
	}
}

// WithClient tells the query-builder to eager-load the nodes that are connected to
// the "client" edge. The optional arguments are used to configure the query builder of the edge.
func (ceq *ContextEntryQuery) WithClient(opts ...func(*ClientAccountQuery)) *ContextEntryQuery {
	query := (&ClientAccountClient{config: ceq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ceq.withClient = query
	return ceq
}

// WithCycle tells the query-builder to eager-load the nodes that are connected to
// the "cycle" edge. The optional arguments are used to configure the query builder of the edge.
func (ceq *ContextEntryQuery) WithCycle(opts ...func(*CycleQuery)) *ContextEntryQuery {
	query := (&CycleClient{config: ceq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ceq.withCycle = query
	return ceq
}

// WithAuthor tells the query-builder to eager-load the nodes that are connected to
// the "author" edge. The optional arguments are used to configure the query builder of the edge.
func (ceq *ContextEntryQuery) WithAuthor(opts ...func(*ProfileQuery)) *ContextEntryQuery {
	query := (&ProfileClient{config: ceq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ceq.withAuthor = query
	return ceq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ClientID uuid.UUID `json:"client_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ContextEntry.Query().
//		GroupBy(contextentry.FieldClientID).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (ceq *ContextEntryQuery) GroupBy(field string, fields ...string) *ContextEntryGroupBy {
	ceq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ContextEntryGroupBy{build: ceq}
	grbuild.flds = &ceq.ctx.Fields
	grbuild.label = contextentry.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ClientID uuid.UUID `json:"client_id,omitempty"`
//	}
//
//	client.ContextEntry.Query().
//		Select(contextentry.FieldClientID).
//		Scan(ctx, &v)
func (ceq *ContextEntryQuery) Select(fields ...string) *ContextEntrySelect {
	ceq.ctx.Fields = append(ceq.ctx.Fields, fields...)
	sbuild := &ContextEntrySelect{ContextEntryQuery: ceq}
	sbuild.label = contextentry.Label
	sbuild.flds, sbuild.scan = &ceq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ContextEntrySelect configured with the given aggregations.
func (ceq *ContextEntryQuery) Aggregate(fns ...AggregateFunc) *ContextEntrySelect {
	return ceq.Select().Aggregate(fns...)
}

func (ceq *ContextEntryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ceq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ceq); err != nil {
				return err
			}
		}
	}
	for _, f := range ceq.ctx.Fields {
		if !contextentry.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if ceq.path != nil {
		prev, err := ceq.path(ctx)
		if err != nil {
			return err
		}
		ceq.sql = prev
	}
	return nil
}

func (ceq *ContextEntryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ContextEntry, error) {
	var (
		nodes       = []*ContextEntry{}
		_spec       = ceq.querySpec()
		loadedTypes = [3]bool{
			ceq.withClient != nil,
			ceq.withCycle != nil,
			ceq.withAuthor != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ContextEntry).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ContextEntry{config: ceq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ceq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ceq.withClient; query != nil {
		if err := ceq.loadClient(ctx, query, nodes, nil,
			func(n *ContextEntry, e *ClientAccount) { n.Edges.Client = e }); err != nil {
			return nil, err
		}
	}
	if query := ceq.withCycle; query != nil {
		if err := ceq.loadCycle(ctx, query, nodes, nil,
			func(n *ContextEntry, e *Cycle) { n.Edges.Cycle = e }); err != nil {
			return nil, err
		}
	}
	if query := ceq.withAuthor; query != nil {
		if err := ceq.loadAuthor(ctx, query, nodes, nil,
			func(n *ContextEntry, e *Profile) { n.Edges.Author = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ceq *ContextEntryQuery) loadClient(ctx context.Context, query *ClientAccountQuery, nodes []*ContextEntry, init func(*ContextEntry), assign func(*ContextEntry, *ClientAccount)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ContextEntry)
	for i := range nodes {
		fk := nodes[i].ClientID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(clientaccount.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "client_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (ceq *ContextEntryQuery) loadCycle(ctx context.Context, query *CycleQuery, nodes []*ContextEntry, init func(*ContextEntry), assign func(*ContextEntry, *Cycle)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ContextEntry)
	for i := range nodes {
		if nodes[i].CycleID == nil {
			continue
		}
		fk := *nodes[i].CycleID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(cycle.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "cycle_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (ceq *ContextEntryQuery) loadAuthor(ctx context.Context, query *ProfileQuery, nodes []*ContextEntry, init func(*ContextEntry), assign func(*ContextEntry, *Profile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ContextEntry)
	for i := range nodes {
		fk := nodes[i].AuthorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(profile.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "author_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (ceq *ContextEntryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ceq.querySpec()
	_spec.Node.Columns = ceq.ctx.Fields
	if len(ceq.ctx.Fields) > 0 {
		_spec.Unique = ceq.ctx.Unique != nil && *ceq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ceq.driver, _spec)
}

func (ceq *ContextEntryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(contextentry.Table, contextentry.Columns, sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID))
	_spec.From = ceq.sql
	if unique := ceq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ceq.path != nil {
		_spec.Unique = true
	}
	if fields := ceq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextentry.FieldID)
		for i := range fields {
			if fields[i] != contextentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if ceq.withClient != nil {
			_spec.Node.AddColumnOnce(contextentry.FieldClientID)
		}
		if ceq.withCycle != nil {
			_spec.Node.AddColumnOnce(contextentry.FieldCycleID)
		}
		if ceq.withAuthor != nil {
			_spec.Node.AddColumnOnce(contextentry.FieldAuthorID)
		}
	}
	if ps := ceq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ceq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ceq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ceq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ceq *ContextEntryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ceq.driver.Dialect())
	t1 := builder.Table(contextentry.Table)
	columns := ceq.ctx.Fields
	if len(columns) == 0 {
		columns = contextentry.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ceq.sql != nil {
		selector = ceq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ceq.ctx.Unique != nil && *ceq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ceq.predicates {
		p(selector)
	}
	for _, p := range ceq.order {
		p(selector)
	}
	if offset := ceq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ceq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ContextEntryGroupBy is the group-by builder for ContextEntry entities.
type ContextEntryGroupBy struct {
	selector
	build *ContextEntryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cegb *ContextEntryGroupBy) Aggregate(fns ...AggregateFunc) *ContextEntryGroupBy {
	cegb.fns = append(cegb.fns, fns...)
	return cegb
}

// Scan applies the selector query and scans the result into the given value.
func (cegb *ContextEntryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cegb.build.ctx, ent.OpQueryGroupBy)
	if err := cegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContextEntryQuery, *ContextEntryGroupBy](ctx, cegb.build, cegb, cegb.build.inters, v)
}

func (cegb *ContextEntryGroupBy) sqlScan(ctx context.Context, root *ContextEntryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cegb.fns))
	for _, fn := range cegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cegb.flds)+len(cegb.fns))
		for _, f := range *cegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ContextEntrySelect is the builder for selecting fields of ContextEntry entities.
type ContextEntrySelect struct {
	*ContextEntryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ces *ContextEntrySelect) Aggregate(fns ...AggregateFunc) *ContextEntrySelect {
	ces.fns = append(ces.fns, fns...)
	return ces
}

// Scan applies the selector query and scans the result into the given value.
func (ces *ContextEntrySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ces.ctx, ent.OpQuerySelect)
	if err := ces.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContextEntryQuery, *ContextEntrySelect](ctx, ces.ContextEntryQuery, ces, ces.inters, v)
}

func (ces *ContextEntrySelect) sqlScan(ctx context.Context, root *ContextEntryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ces.fns))
	for _, fn := range ces.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ces.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ces.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
