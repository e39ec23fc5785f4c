// Code generated by ent, DO NOT EDIT.

package generated

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
	"github.com/localbzz/clientops/ent/generated/clientaccount"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/shoot"
)

// CycleQuery is the builder for querying Cycle entities.
type CycleQuery struct {
	config
	ctx                *QueryContext
	order              []cycle.OrderOption
	inters             []Interceptor
	predicates         []predicate.Cycle
	withClient         *ClientAccountQuery
	withShoots         *ShootQuery
	withContextEntries *ContextEntryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CycleQuery builder.
func (cq *CycleQuery) Where(ps ...predicate.Cycle) *CycleQuery {
	cq.predicates = append(cq.predicates, ps...)
	return cq
}

// Limit the number of records to be returned by this query.
func (cq *CycleQuery) Limit(limit int) *CycleQuery {
	cq.ctx.Limit = &limit
	return cq
}

// Offset to start from.
func (cq *CycleQuery) Offset(offset int) *CycleQuery {
	cq.ctx.Offset = &offset
	return cq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (cq *CycleQuery) Unique(unique bool) *CycleQuery {
	cq.ctx.Unique = &unique
	return cq
}

// Order specifies how the records should be ordered.
func (cq *CycleQuery) Order(o ...cycle.OrderOption) *CycleQuery {
	cq.order = append(cq.order, o...)
	return cq
}

// QueryClient chains the current query on the "client" edge.
func (cq *CycleQuery) QueryClient() *ClientAccountQuery {
	query := (&ClientAccountClient{config: cq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := cq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := cq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cycle.Table, cycle.FieldID, selector),
			sqlgraph.To(clientaccount.Table, clientaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cycle.ClientTable, cycle.ClientColumn),
		)
		fromU = sqlgraph.SetNeighbors(cq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryShoots chains the current query on the "shoots" edge.
func (cq *CycleQuery) QueryShoots() *ShootQuery {
	query := (&ShootClient{config: cq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := cq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := cq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cycle.Table, cycle.FieldID, selector),
			sqlgraph.To(shoot.Table, shoot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cycle.ShootsTable, cycle.ShootsColumn),
		)
		fromU = sqlgraph.SetNeighbors(cq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryContextEntries chains the current query on the "context_entries" edge.
func (cq *CycleQuery) QueryContextEntries() *ContextEntryQuery {
	query := (&ContextEntryClient{config: cq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := cq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := cq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cycle.Table, cycle.FieldID, selector),
			sqlgraph.To(contextentry.Table, contextentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cycle.ContextEntriesTable, cycle.ContextEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(cq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Cycle entity from the query.
// Returns a *NotFoundError when no Cycle was found.
func (cq *CycleQuery) First(ctx context.Context) (*Cycle, error) {
	nodes, err := cq.Limit(1).All(setContextOp(ctx, cq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{cycle.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (cq *CycleQuery) FirstX(ctx context.Context) *Cycle {
	node, err := cq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Cycle ID from the query.
// Returns a *NotFoundError when no Cycle ID was found.
func (cq *CycleQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = cq.Limit(1).IDs(setContextOp(ctx, cq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{cycle.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (cq *CycleQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := cq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Cycle entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Cycle entity is found.
// Returns a *NotFoundError when no Cycle entities are found.
func (cq *CycleQuery) Only(ctx context.Context) (*Cycle, error) {
	nodes, err := cq.Limit(2).All(setContextOp(ctx, cq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{cycle.Label}
	default:
		return nil, &NotSingularError{cycle.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (cq *CycleQuery) OnlyX(ctx context.Context) *Cycle {
	node, err := cq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Cycle ID in the query.
// Returns a *NotSingularError when more than one Cycle ID is found.
// Returns a *NotFoundError when no entities are found.
func (cq *CycleQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = cq.Limit(2).IDs(setContextOp(ctx, cq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{cycle.Label}
	default:
		err = &NotSingularError{cycle.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (cq *CycleQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := cq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Cycles.
func (cq *CycleQuery) All(ctx context.Context) ([]*Cycle, error) {
	ctx = setContextOp(ctx, cq.ctx, ent.OpQueryAll)
	if err := cq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Cycle, *CycleQuery]()
	return withInterceptors[[]*Cycle](ctx, cq, qr, cq.inters)
}

// AllX is like All, but panics if an error occurs.
func (cq *CycleQuery) AllX(ctx context.Context) []*Cycle {
	nodes, err := cq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Cycle IDs.
func (cq *CycleQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if cq.ctx.Unique == nil && cq.path != nil {
		cq.Unique(true)
	}
	ctx = setContextOp(ctx, cq.ctx, ent.OpQueryIDs)
	if err = cq.Select(cycle.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (cq *CycleQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := cq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (cq *CycleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, cq.ctx, ent.OpQueryCount)
	if err := cq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, cq, querierCount[*CycleQuery](), cq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (cq *CycleQuery) CountX(ctx context.Context) int {
	count, err := cq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (cq *CycleQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, cq.ctx, ent.OpQueryExist)
	switch _, err := cq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (cq *CycleQuery) ExistX(ctx context.Context) bool {
	exist, err := cq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CycleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (cq *CycleQuery) Clone() *CycleQuery {
	if cq == nil {
		return nil
	}
	return &CycleQuery{
		config:             cq.config,
		ctx:                cq.ctx.Clone(),
		order:              append([]cycle.OrderOption{}, cq.order...),
		inters:             append([]Interceptor{}, cq.inters...),
		predicates:         append([]predicate.Cycle{}, cq.predicates...),
		withClient:         cq.withClient.Clone(),
		withShoots:         cq.withShoots.Clone(),
		withContextEntries: cq.withContextEntries.Clone(),
		// clone intermediate query.
		sql:  cq.sql.Clone(),
		path: cq.path,
	}
}

// WithClient tells the query-builder to eager-load the nodes that are connected to
// the "client" edge. The optional arguments are used to configure the query builder of the edge.
func (cq *CycleQuery) WithClient(opts ...func(*ClientAccountQuery)) *CycleQuery {
	query := (&ClientAccountClient{config: cq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	cq.withClient = query
	return cq
}

// WithShoots tells the query-builder to eager-load the nodes that are connected to
// the "shoots" edge. The optional arguments are used to configure the query builder of the edge.
func (cq *CycleQuery) WithShoots(opts ...func(*ShootQuery)) *CycleQuery {
	query := (&ShootClient{config: cq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	cq.withShoots = query
	return cq
}

// WithContextEntries tells the query-builder to eager-load the nodes that are connected to
// the "context_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (cq *CycleQuery) WithContextEntries(opts ...func(*ContextEntryQuery)) *CycleQuery {
	query := (&ContextEntryClient{config: cq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	cq.withContextEntries = query
	return cq
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
//	client.Cycle.Query().
//		GroupBy(cycle.FieldClientID).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (cq *CycleQuery) GroupBy(field string, fields ...string) *CycleGroupBy {
	cq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CycleGroupBy{build: cq}
	grbuild.flds = &cq.ctx.Fields
	grbuild.label = cycle.Label
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
//	client.Cycle.Query().
//		Select(cycle.FieldClientID).
//		Scan(ctx, &v)
func (cq *CycleQuery) Select(fields ...string) *CycleSelect {
	cq.ctx.Fields = append(cq.ctx.Fields, fields...)
	sbuild := &CycleSelect{CycleQuery: cq}
	sbuild.label = cycle.Label
	sbuild.flds, sbuild.scan = &cq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CycleSelect configured with the given aggregations.
func (cq *CycleQuery) Aggregate(fns ...AggregateFunc) *CycleSelect {
	return cq.Select().Aggregate(fns...)
}

func (cq *CycleQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range cq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, cq); err != nil {
				return err
			}
		}
	}
	for _, f := range cq.ctx.Fields {
		if !cycle.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if cq.path != nil {
		prev, err := cq.path(ctx)
		if err != nil {
			return err
		}
		cq.sql = prev
	}
	return nil
}

func (cq *CycleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Cycle, error) {
	var (
		nodes       = []*Cycle{}
		_spec       = cq.querySpec()
		loadedTypes = [3]bool{
			cq.withClient != nil,
			cq.withShoots != nil,
			cq.withContextEntries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Cycle).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Cycle{config: cq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, cq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := cq.withClient; query != nil {
		if err := cq.loadClient(ctx, query, nodes, nil,
			func(n *Cycle, e *ClientAccount) { n.Edges.Client = e }); err != nil {
			return nil, err
		}
	}
	if query := cq.withShoots; query != nil {
		if err := cq.loadShoots(ctx, query, nodes,
			func(n *Cycle) { n.Edges.Shoots = []*Shoot{} },
			func(n *Cycle, e *Shoot) { n.Edges.Shoots = append(n.Edges.Shoots, e) }); err != nil {
			return nil, err
		}
	}
	if query := cq.withContextEntries; query != nil {
		if err := cq.loadContextEntries(ctx, query, nodes,
			func(n *Cycle) { n.Edges.ContextEntries = []*ContextEntry{} },
			func(n *Cycle, e *ContextEntry) { n.Edges.ContextEntries = append(n.Edges.ContextEntries, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (cq *CycleQuery) loadClient(ctx context.Context, query *ClientAccountQuery, nodes []*Cycle, init func(*Cycle), assign func(*Cycle, *ClientAccount)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Cycle)
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
func (cq *CycleQuery) loadShoots(ctx context.Context, query *ShootQuery, nodes []*Cycle, init func(*Cycle), assign func(*Cycle, *Shoot)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Cycle)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(shoot.FieldCycleID)
	}
	query.Where(predicate.Shoot(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(cycle.ShootsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CycleID
		if fk == nil {
			return fmt.Errorf(`foreign-key "cycle_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "cycle_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (cq *CycleQuery) loadContextEntries(ctx context.Context, query *ContextEntryQuery, nodes []*Cycle, init func(*Cycle), assign func(*Cycle, *ContextEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Cycle)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(contextentry.FieldCycleID)
	}
	query.Where(predicate.ContextEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(cycle.ContextEntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CycleID
		if fk == nil {
			return fmt.Errorf(`foreign-key "cycle_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "cycle_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (cq *CycleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := cq.querySpec()
	_spec.Node.Columns = cq.ctx.Fields
	if len(cq.ctx.Fields) > 0 {
		_spec.Unique = cq.ctx.Unique != nil && *cq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, cq.driver, _spec)
}

func (cq *CycleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(cycle.Table, cycle.Columns, sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID))
	_spec.From = cq.sql
	if unique := cq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if cq.path != nil {
		_spec.Unique = true
	}
	if fields := cq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cycle.FieldID)
		for i := range fields {
			if fields[i] != cycle.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if cq.withClient != nil {
			_spec.Node.AddColumnOnce(cycle.FieldClientID)
		}
	}
	if ps := cq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := cq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := cq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := cq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (cq *CycleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(cq.driver.Dialect())
	t1 := builder.Table(cycle.Table)
	columns := cq.ctx.Fields
	if len(columns) == 0 {
		columns = cycle.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if cq.sql != nil {
		selector = cq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if cq.ctx.Unique != nil && *cq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range cq.predicates {
		p(selector)
	}
	for _, p := range cq.order {
		p(selector)
	}
	if offset := cq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := cq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CycleGroupBy is the group-by builder for Cycle entities.
type CycleGroupBy struct {
	selector
	build *CycleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cgb *CycleGroupBy) Aggregate(fns ...AggregateFunc) *CycleGroupBy {
	cgb.fns = append(cgb.fns, fns...)
	return cgb
}

// Scan applies the selector query and scans the result into the given value.
func (cgb *CycleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cgb.build.ctx, ent.OpQueryGroupBy)
	if err := cgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CycleQuery, *CycleGroupBy](ctx, cgb.build, cgb, cgb.build.inters, v)
}

func (cgb *CycleGroupBy) sqlScan(ctx context.Context, root *CycleQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cgb.fns))
	for _, fn := range cgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cgb.flds)+len(cgb.fns))
		for _, f := range *cgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CycleSelect is the builder for selecting fields of Cycle entities.
type CycleSelect struct {
	*CycleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cs *CycleSelect) Aggregate(fns ...AggregateFunc) *CycleSelect {
	cs.fns = append(cs.fns, fns...)
	return cs
}

// Scan applies the selector query and scans the result into the given value.
func (cs *CycleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cs.ctx, ent.OpQuerySelect)
	if err := cs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CycleQuery, *CycleSelect](ctx, cs.CycleQuery, cs, cs.inters, v)
}

func (cs *CycleSelect) sqlScan(ctx context.Context, root *CycleQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cs.fns))
	for _, fn := range cs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
