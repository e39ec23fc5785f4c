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
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/shoot"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// ClientAccountQuery is the builder for querying ClientAccount entities.
type ClientAccountQuery struct {
	config
	ctx                *QueryContext
	order              []clientaccount.OrderOption
	inters             []Interceptor
	predicates         []predicate.ClientAccount
	withCycles         *CycleQuery
	withShoots         *ShootQuery
	withTemplates      *TaskTemplateQuery
	withAssignments    *ClientTaskAssignmentQuery
	withContextEntries *ContextEntryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ClientAccountQuery builder.
func (caq *ClientAccountQuery) Where(ps ...predicate.ClientAccount) *ClientAccountQuery {
	caq.predicates = append(caq.predicates, ps...)
	return caq
}

// Limit the number of records to be returned by this query.
func (caq *ClientAccountQuery) Limit(limit int) *ClientAccountQuery {
	caq.ctx.Limit = &limit
	return caq
}

// Offset to start from.
func (caq *ClientAccountQuery) Offset(offset int) *ClientAccountQuery {
	caq.ctx.Offset = &offset
	return caq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (caq *ClientAccountQuery) Unique(unique bool) *ClientAccountQuery {
	caq.ctx.Unique = &unique
	return caq
}

// Order specifies how the records should be ordered.
func (caq *ClientAccountQuery) Order(o ...clientaccount.OrderOption) *ClientAccountQuery {
	caq.order = append(caq.order, o...)
	return caq
}

// QueryCycles chains the current query on the "cycles" edge.
func (caq *ClientAccountQuery) QueryCycles() *CycleQuery {
	query := (&CycleClient{config: caq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := caq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := caq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clientaccount.Table, clientaccount.FieldID, selector),
			sqlgraph.To(cycle.Table, cycle.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientaccount.CyclesTable, clientaccount.CyclesColumn),
		)
		fromU = sqlgraph.SetNeighbors(caq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryShoots chains the current query on the "shoots" edge.
func (caq *ClientAccountQuery) QueryShoots() *ShootQuery {
	query := (&ShootClient{config: caq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := caq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := caq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clientaccount.Table, clientaccount.FieldID, selector),
			sqlgraph.To(shoot.Table, shoot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientaccount.ShootsTable, clientaccount.ShootsColumn),
		)
		fromU = sqlgraph.SetNeighbors(caq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTemplates chains the current query on the "templates" edge.
func (caq *ClientAccountQuery) QueryTemplates() *TaskTemplateQuery {
	query := (&TaskTemplateClient{config: caq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := caq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := caq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clientaccount.Table, clientaccount.FieldID, selector),
			sqlgraph.To(tasktemplate.Table, tasktemplate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientaccount.TemplatesTable, clientaccount.TemplatesColumn),
		)
		fromU = sqlgraph.SetNeighbors(caq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignments chains the current query on the "assignments" edge.
func (caq *ClientAccountQuery) QueryAssignments() *ClientTaskAssignmentQuery {
	query := (&ClientTaskAssignmentClient{config: caq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := caq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := caq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clientaccount.Table, clientaccount.FieldID, selector),
			sqlgraph.To(clienttaskassignment.Table, clienttaskassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientaccount.AssignmentsTable, clientaccount.AssignmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(caq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryContextEntries chains the current query on the "context_entries" edge.
func (caq *ClientAccountQuery) QueryContextEntries() *ContextEntryQuery {
	query := (&ContextEntryClient{config: caq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := caq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := caq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clientaccount.Table, clientaccount.FieldID, selector),
			sqlgraph.To(contextentry.Table, contextentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clientaccount.ContextEntriesTable, clientaccount.ContextEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(caq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ClientAccount entity from the query.
// Returns a *NotFoundError when no ClientAccount was found.
func (caq *ClientAccountQuery) First(ctx context.Context) (*ClientAccount, error) {
	nodes, err := caq.Limit(1).All(setContextOp(ctx, caq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{clientaccount.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (caq *ClientAccountQuery) FirstX(ctx context.Context) *ClientAccount {
	node, err := caq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ClientAccount ID from the query.
// Returns a *NotFoundError when no ClientAccount ID was found.
func (caq *ClientAccountQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = caq.Limit(1).IDs(setContextOp(ctx, caq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{clientaccount.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (caq *ClientAccountQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := caq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ClientAccount entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ClientAccount entity is found.
// Returns a *NotFoundError when no ClientAccount entities are found.
func (caq *ClientAccountQuery) Only(ctx context.Context) (*ClientAccount, error) {
	nodes, err := caq.Limit(2).All(setContextOp(ctx, caq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{clientaccount.Label}
	default:
		return nil, &NotSingularError{clientaccount.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (caq *ClientAccountQuery) OnlyX(ctx context.Context) *ClientAccount {
	node, err := caq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ClientAccount ID in the query.
// Returns a *NotSingularError when more than one ClientAccount ID is found.
// Returns a *NotFoundError when no entities are found.
func (caq *ClientAccountQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = caq.Limit(2).IDs(setContextOp(ctx, caq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{clientaccount.Label}
	default:
		err = &NotSingularError{clientaccount.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (caq *ClientAccountQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := caq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ClientAccounts.
func (caq *ClientAccountQuery) All(ctx context.Context) ([]*ClientAccount, error) {
	ctx = setContextOp(ctx, caq.ctx, ent.OpQueryAll)
	if err := caq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ClientAccount, *ClientAccountQuery]()
	return withInterceptors[[]*ClientAccount](ctx, caq, qr, caq.inters)
}

// AllX is like All, but panics if an error occurs.
func (caq *ClientAccountQuery) AllX(ctx context.Context) []*ClientAccount {
	nodes, err := caq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ClientAccount IDs.
func (caq *ClientAccountQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if caq.ctx.Unique == nil && caq.path != nil {
		caq.Unique(true)
	}
	ctx = setContextOp(ctx, caq.ctx, ent.OpQueryIDs)
	if err = caq.Select(clientaccount.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (caq *ClientAccountQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := caq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (caq *ClientAccountQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, caq.ctx, ent.OpQueryCount)
	if err := caq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, caq, querierCount[*ClientAccountQuery](), caq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (caq *ClientAccountQuery) CountX(ctx context.Context) int {
	count, err := caq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (caq *ClientAccountQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, caq.ctx, ent.OpQueryExist)
	switch _, err := caq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (caq *ClientAccountQuery) ExistX(ctx context.Context) bool {
	exist, err := caq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ClientAccountQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (caq *ClientAccountQuery) Clone() *ClientAccountQuery {
	if caq == nil {
		return nil
	}
	return &ClientAccountQuery{
		config:             caq.config,
		ctx:                caq.ctx.Clone(),
		order:              append([]clientaccount.OrderOption{}, caq.order...),
		inters:             append([]Interceptor{}, caq.inters...),
		predicates:         append([]predicate.ClientAccount{}, caq.predicates...),
		withCycles:         caq.withCycles.Clone(),
		withShoots:         caq.withShoots.Clone(),
		withTemplates:      caq.withTemplates.Clone(),
		withAssignments:    caq.withAssignments.Clone(),
		withContextEntries: caq.withContextEntries.Clone(),
		// clone intermediate query.
		sql:  caq.sql.Clone(),
		path: caq.path,
	}
}

// WithCycles tells the query-builder to eager-load the nodes that are connected to
// the "cycles" edge. The optional arguments are used to configure the query builder of the edge.
func (caq *ClientAccountQuery) WithCycles(opts ...func(*CycleQuery)) *ClientAccountQuery {
	query := (&CycleClient{config: caq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	caq.withCycles = query
	return caq
}

// WithShoots tells the query-builder to eager-load the nodes that are connected to
// the "shoots" edge. The optional arguments are used to configure the query builder of the edge.
func (caq *ClientAccountQuery) WithShoots(opts ...func(*ShootQuery)) *ClientAccountQuery {
	query := (&ShootClient{config: caq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	caq.withShoots = query
	return caq
}

// WithTemplates tells the query-builder to eager-load the nodes that are connected to
// the "templates" edge. The optional arguments are used to configure the query builder of the edge.
func (caq *ClientAccountQuery) WithTemplates(opts ...func(*TaskTemplateQuery)) *ClientAccountQuery {
	query := (&TaskTemplateClient{config: caq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	caq.withTemplates = query
	return caq
}

// WithAssignments tells the query-builder to eager-load the nodes that are connected to
// the "assignments" edge. The optional arguments are used to configure the query builder of the edge.
func (caq *ClientAccountQuery) WithAssignments(opts ...func(*ClientTaskAssignmentQuery)) *ClientAccountQuery {
	query := (&ClientTaskAssignmentClient{config: caq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	caq.withAssignments = query
	return caq
}

// WithContextEntries tells the query-builder to eager-load the nodes that are connected to
// the "context_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (caq *ClientAccountQuery) WithContextEntries(opts ...func(*ContextEntryQuery)) *ClientAccountQuery {
	query := (&ContextEntryClient{config: caq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	caq.withContextEntries = query
	return caq
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
//	client.ClientAccount.Query().
//		GroupBy(clientaccount.FieldName).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (caq *ClientAccountQuery) GroupBy(field string, fields ...string) *ClientAccountGroupBy {
	caq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ClientAccountGroupBy{build: caq}
	grbuild.flds = &caq.ctx.Fields
	grbuild.label = clientaccount.Label
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
//	client.ClientAccount.Query().
//		Select(clientaccount.FieldName).
//		Scan(ctx, &v)
func (caq *ClientAccountQuery) Select(fields ...string) *ClientAccountSelect {
	caq.ctx.Fields = append(caq.ctx.Fields, fields...)
	sbuild := &ClientAccountSelect{ClientAccountQuery: caq}
	sbuild.label = clientaccount.Label
	sbuild.flds, sbuild.scan = &caq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ClientAccountSelect configured with the given aggregations.
func (caq *ClientAccountQuery) Aggregate(fns ...AggregateFunc) *ClientAccountSelect {
	return caq.Select().Aggregate(fns...)
}

func (caq *ClientAccountQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range caq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, caq); err != nil {
				return err
			}
		}
	}
	for _, f := range caq.ctx.Fields {
		if !clientaccount.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if caq.path != nil {
		prev, err := caq.path(ctx)
		if err != nil {
			return err
		}
		caq.sql = prev
	}
	return nil
}

func (caq *ClientAccountQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ClientAccount, error) {
	var (
		nodes       = []*ClientAccount{}
		_spec       = caq.querySpec()
		loadedTypes = [5]bool{
			caq.withCycles != nil,
			caq.withShoots != nil,
			caq.withTemplates != nil,
			caq.withAssignments != nil,
			caq.withContextEntries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ClientAccount).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ClientAccount{config: caq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, caq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := caq.withCycles; query != nil {
		if err := caq.loadCycles(ctx, query, nodes,
			func(n *ClientAccount) { n.Edges.Cycles = []*Cycle{} },
			func(n *ClientAccount, e *Cycle) { n.Edges.Cycles = append(n.Edges.Cycles, e) }); err != nil {
			return nil, err
		}
	}
	if query := caq.withShoots; query != nil {
		if err := caq.loadShoots(ctx, query, nodes,
			func(n *ClientAccount) { n.Edges.Shoots = []*Shoot{} },
			func(n *ClientAccount, e *Shoot) { n.Edges.Shoots = append(n.Edges.Shoots, e) }); err != nil {
			return nil, err
		}
	}
	if query := caq.withTemplates; query != nil {
		if err := caq.loadTemplates(ctx, query, nodes,
			func(n *ClientAccount) { n.Edges.Templates = []*TaskTemplate{} },
			func(n *ClientAccount, e *TaskTemplate) { n.Edges.Templates = append(n.Edges.Templates, e) }); err != nil {
			return nil, err
		}
	}
	if query := caq.withAssignments; query != nil {
		if err := caq.loadAssignments(ctx, query, nodes,
			func(n *ClientAccount) { n.Edges.Assignments = []*ClientTaskAssignment{} },
			func(n *ClientAccount, e *ClientTaskAssignment) { n.Edges.Assignments = append(n.Edges.Assignments, e) }); err != nil {
			return nil, err
		}
	}
	if query := caq.withContextEntries; query != nil {
		if err := caq.loadContextEntries(ctx, query, nodes,
			func(n *ClientAccount) { n.Edges.ContextEntries = []*ContextEntry{} },
			func(n *ClientAccount, e *ContextEntry) { n.Edges.ContextEntries = append(n.Edges.ContextEntries, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (caq *ClientAccountQuery) loadCycles(ctx context.Context, query *CycleQuery, nodes []*ClientAccount, init func(*ClientAccount), assign func(*ClientAccount, *Cycle)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ClientAccount)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(cycle.FieldClientID)
	}
	query.Where(predicate.Cycle(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(clientaccount.CyclesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClientID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "client_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (caq *ClientAccountQuery) loadShoots(ctx context.Context, query *ShootQuery, nodes []*ClientAccount, init func(*ClientAccount), assign func(*ClientAccount, *Shoot)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ClientAccount)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(shoot.FieldClientID)
	}
	query.Where(predicate.Shoot(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(clientaccount.ShootsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClientID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "client_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (caq *ClientAccountQuery) loadTemplates(ctx context.Context, query *TaskTemplateQuery, nodes []*ClientAccount, init func(*ClientAccount), assign func(*ClientAccount, *TaskTemplate)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ClientAccount)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(tasktemplate.FieldClientID)
	}
	query.Where(predicate.TaskTemplate(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(clientaccount.TemplatesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClientID
		if fk == nil {
			return fmt.Errorf(`foreign-key "client_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "client_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (caq *ClientAccountQuery) loadAssignments(ctx context.Context, query *ClientTaskAssignmentQuery, nodes []*ClientAccount, init func(*ClientAccount), assign func(*ClientAccount, *ClientTaskAssignment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ClientAccount)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(clienttaskassignment.FieldClientID)
	}
	query.Where(predicate.ClientTaskAssignment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(clientaccount.AssignmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClientID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "client_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (caq *ClientAccountQuery) loadContextEntries(ctx context.Context, query *ContextEntryQuery, nodes []*ClientAccount, init func(*ClientAccount), assign func(*ClientAccount, *ContextEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ClientAccount)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(contextentry.FieldClientID)
	}
	query.Where(predicate.ContextEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(clientaccount.ContextEntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClientID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "client_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (caq *ClientAccountQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := caq.querySpec()
	_spec.Node.Columns = caq.ctx.Fields
	if len(caq.ctx.Fields) > 0 {
		_spec.Unique = caq.ctx.Unique != nil && *caq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, caq.driver, _spec)
}

func (caq *ClientAccountQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(clientaccount.Table, clientaccount.Columns, sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID))
	_spec.From = caq.sql
	if unique := caq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if caq.path != nil {
		_spec.Unique = true
	}
	if fields := caq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientaccount.FieldID)
		for i := range fields {
			if fields[i] != clientaccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := caq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := caq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := caq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := caq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (caq *ClientAccountQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(caq.driver.Dialect())
	t1 := builder.Table(clientaccount.Table)
	columns := caq.ctx.Fields
	if len(columns) == 0 {
		columns = clientaccount.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if caq.sql != nil {
		selector = caq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if caq.ctx.Unique != nil && *caq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range caq.predicates {
		p(selector)
	}
	for _, p := range caq.order {
		p(selector)
	}
	if offset := caq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := caq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ClientAccountGroupBy is the group-by builder for ClientAccount entities.
type ClientAccountGroupBy struct {
	selector
	build *ClientAccountQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cagb *ClientAccountGroupBy) Aggregate(fns ...AggregateFunc) *ClientAccountGroupBy {
	cagb.fns = append(cagb.fns, fns...)
	return cagb
}

// Scan applies the selector query and scans the result into the given value.
func (cagb *ClientAccountGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cagb.build.ctx, ent.OpQueryGroupBy)
	if err := cagb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ClientAccountQuery, *ClientAccountGroupBy](ctx, cagb.build, cagb, cagb.build.inters, v)
}

func (cagb *ClientAccountGroupBy) sqlScan(ctx context.Context, root *ClientAccountQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cagb.fns))
	for _, fn := range cagb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cagb.flds)+len(cagb.fns))
		for _, f := range *cagb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cagb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cagb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ClientAccountSelect is the builder for selecting fields of ClientAccount entities.
type ClientAccountSelect struct {
	*ClientAccountQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cas *ClientAccountSelect) Aggregate(fns ...AggregateFunc) *ClientAccountSelect {
	cas.fns = append(cas.fns, fns...)
	return cas
}

// Scan applies the selector query and scans the result into the given value.
func (cas *ClientAccountSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cas.ctx, ent.OpQuerySelect)
	if err := cas.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ClientAccountQuery, *ClientAccountSelect](ctx, cas.ClientAccountQuery, cas, cas.inters, v)
}

func (cas *ClientAccountSelect) sqlScan(ctx context.Context, root *ClientAccountQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cas.fns))
	for _, fn := range cas.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cas.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cas.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
