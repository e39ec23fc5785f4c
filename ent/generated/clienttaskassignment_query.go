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
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// ClientTaskAssignmentQuery is the builder for querying ClientTaskAssignment entities.
type ClientTaskAssignmentQuery struct {
	config
	ctx          *QueryContext
	order        []clienttaskassignment.OrderOption
	inters       []Interceptor
	predicates   []predicate.ClientTaskAssignment
	withClient   *ClientAccountQuery
	withTemplate *TaskTemplateQuery
	withAssignee *ProfileQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ClientTaskAssignmentQuery builder.
func (ctaq *ClientTaskAssignmentQuery) Where(ps ...predicate.ClientTaskAssignment) *ClientTaskAssignmentQuery {
	ctaq.predicates = append(ctaq.predicates, ps...)
	return ctaq
}

// Limit the number of records to be returned by this query.
func (ctaq *ClientTaskAssignmentQuery) Limit(limit int) *ClientTaskAssignmentQuery {
	ctaq.ctx.Limit = &limit
	return ctaq
}

// Offset to start from.
func (ctaq *ClientTaskAssignmentQuery) Offset(offset int) *ClientTaskAssignmentQuery {
	ctaq.ctx.Offset = &offset
	return ctaq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ctaq *ClientTaskAssignmentQuery) Unique(unique bool) *ClientTaskAssignmentQuery {
	ctaq.ctx.Unique = &unique
	return ctaq
}

// Order specifies how the records should be ordered.
func (ctaq *ClientTaskAssignmentQuery) Order(o ...clienttaskassignment.OrderOption) *ClientTaskAssignmentQuery {
	ctaq.order = append(ctaq.order, o...)
	return ctaq
}

// QueryClient chains the current query on the "client" edge.
func (ctaq *ClientTaskAssignmentQuery) QueryClient() *ClientAccountQuery {
	query := (&ClientAccountClient{config: ctaq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ctaq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ctaq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clienttaskassignment.Table, clienttaskassignment.FieldID, selector),
			sqlgraph.To(clientaccount.Table, clientaccount.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clienttaskassignment.ClientTable, clienttaskassignment.ClientColumn),
		)
		fromU = sqlgraph.SetNeighbors(ctaq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTemplate chains the current query on the "template" edge.
func (ctaq *ClientTaskAssignmentQuery) QueryTemplate() *TaskTemplateQuery {
	query := (&TaskTemplateClient{config: ctaq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ctaq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ctaq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clienttaskassignment.Table, clienttaskassignment.FieldID, selector),
			sqlgraph.To(tasktemplate.Table, tasktemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clienttaskassignment.TemplateTable, clienttaskassignment.TemplateColumn),
		)
		fromU = sqlgraph.SetNeighbors(ctaq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignee chains the current query on the "assignee" edge.
func (ctaq *ClientTaskAssignmentQuery) QueryAssignee() *ProfileQuery {
	query := (&ProfileClient{config: ctaq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ctaq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ctaq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clienttaskassignment.Table, clienttaskassignment.FieldID, selector),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clienttaskassignment.AssigneeTable, clienttaskassignment.AssigneeColumn),
		)
		fromU = sqlgraph.SetNeighbors(ctaq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ClientTaskAssignment entity from the query.
// Returns a *NotFoundError when no ClientTaskAssignment was found.
func (ctaq *ClientTaskAssignmentQuery) First(ctx context.Context) (*ClientTaskAssignment, error) {
	nodes, err := ctaq.Limit(1).All(setContextOp(ctx, ctaq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{clienttaskassignment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ctaq *ClientTaskAssignmentQuery) FirstX(ctx context.Context) *ClientTaskAssignment {
	node, err := ctaq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ClientTaskAssignment ID from the query.
// Returns a *NotFoundError when no ClientTaskAssignment ID was found.
func (ctaq *ClientTaskAssignmentQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ctaq.Limit(1).IDs(setContextOp(ctx, ctaq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{clienttaskassignment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ctaq *ClientTaskAssignmentQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := ctaq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ClientTaskAssignment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ClientTaskAssignment entity is found.
// Returns a *NotFoundError when no ClientTaskAssignment entities are found.
func (ctaq *ClientTaskAssignmentQuery) Only(ctx context.Context) (*ClientTaskAssignment, error) {
	nodes, err := ctaq.Limit(2).All(setContextOp(ctx, ctaq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{clienttaskassignment.Label}
	default:
		return nil, &NotSingularError{clienttaskassignment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ctaq *ClientTaskAssignmentQuery) OnlyX(ctx context.Context) *ClientTaskAssignment {
	node, err := ctaq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ClientTaskAssignment ID in the query.
// Returns a *NotSingularError when more than one ClientTaskAssignment ID is found.
// Returns a *NotFoundError when no entities are found.
func (ctaq *ClientTaskAssignmentQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ctaq.Limit(2).IDs(setContextOp(ctx, ctaq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{clienttaskassignment.Label}
	default:
		err = &NotSingularError{clienttaskassignment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ctaq *ClientTaskAssignmentQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := ctaq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ClientTaskAssignments.
func (ctaq *ClientTaskAssignmentQuery) All(ctx context.Context) ([]*ClientTaskAssignment, error) {
	ctx = setContextOp(ctx, ctaq.ctx, ent.OpQueryAll)
	if err := ctaq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ClientTaskAssignment, *ClientTaskAssignmentQuery]()
	return withInterceptors[[]*ClientTaskAssignment](ctx, ctaq, qr, ctaq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ctaq *ClientTaskAssignmentQuery) AllX(ctx context.Context) []*ClientTaskAssignment {
	nodes, err := ctaq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ClientTaskAssignment IDs.
func (ctaq *ClientTaskAssignmentQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if ctaq.ctx.Unique == nil && ctaq.path != nil {
		ctaq.Unique(true)
	}
	ctx = setContextOp(ctx, ctaq.ctx, ent.OpQueryIDs)
	if err = ctaq.Select(clienttaskassignment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ctaq *ClientTaskAssignmentQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := ctaq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ctaq *ClientTaskAssignmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ctaq.ctx, ent.OpQueryCount)
	if err := ctaq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ctaq, querierCount[*ClientTaskAssignmentQuery](), ctaq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ctaq *ClientTaskAssignmentQuery) CountX(ctx context.Context) int {
	count, err := ctaq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ctaq *ClientTaskAssignmentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ctaq.ctx, ent.OpQueryExist)
	switch _, err := ctaq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ctaq *ClientTaskAssignmentQuery) ExistX(ctx context.Context) bool {
	exist, err := ctaq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ClientTaskAssignmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ctaq *ClientTaskAssignmentQuery) Clone() *ClientTaskAssignmentQuery {
	if ctaq == nil {
		return nil
	}
	return &ClientTaskAssignmentQuery{
		config:       ctaq.config,
		ctx:          ctaq.ctx.Clone(),
		order:        append([]clienttaskassignment.OrderOption{}, ctaq.order...),
		inters:       append([]Interceptor{}, ctaq.inters...),
		predicates:   append([]predicate.ClientTaskAssignment{}, ctaq.predicates...),
		withClient:   ctaq.withClient.Clone(),
		withTemplate: ctaq.withTemplate.Clone(),
		withAssignee: ctaq.withAssignee.Clone(),
		// clone intermediate query.
		sql:  ctaq.sql.Clone(),
		path: ctaq.path,
	}
}

// WithClient tells the query-builder to eager-load the nodes that are connected to
// the "client" edge. The optional arguments are used to configure the query builder of the edge.
func (ctaq *ClientTaskAssignmentQuery) WithClient(opts ...func(*ClientAccountQuery)) *ClientTaskAssignmentQuery {
	query := (&ClientAccountClient{config: ctaq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ctaq.withClient = query
	return ctaq
}

// WithTemplate tells the query-builder to eager-load the nodes that are connected to
// the "template" edge. The optional arguments are used to configure the query builder of the edge.
func (ctaq *ClientTaskAssignmentQuery) WithTemplate(opts ...func(*TaskTemplateQuery)) *ClientTaskAssignmentQuery {
	query := (&TaskTemplateClient{config: ctaq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ctaq.withTemplate = query
	return ctaq
}

// WithAssignee tells the query-builder to eager-load the nodes that are connected to
// the "assignee" edge. The optional arguments are used to configure the query builder of the edge.
func (ctaq *ClientTaskAssignmentQuery) WithAssignee(opts ...func(*ProfileQuery)) *ClientTaskAssignmentQuery {
	query := (&ProfileClient{config: ctaq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ctaq.withAssignee = query
	return ctaq
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
//	client.ClientTaskAssignment.Query().
//		GroupBy(clienttaskassignment.FieldClientID).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (ctaq *ClientTaskAssignmentQuery) GroupBy(field string, fields ...string) *ClientTaskAssignmentGroupBy {
	ctaq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ClientTaskAssignmentGroupBy{build: ctaq}
	grbuild.flds = &ctaq.ctx.Fields
	grbuild.label = clienttaskassignment.Label
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
//	client.ClientTaskAssignment.Query().
//		Select(clienttaskassignment.FieldClientID).
//		Scan(ctx, &v)
func (ctaq *ClientTaskAssignmentQuery) Select(fields ...string) *ClientTaskAssignmentSelect {
	ctaq.ctx.Fields = append(ctaq.ctx.Fields, fields...)
	sbuild := &ClientTaskAssignmentSelect{ClientTaskAssignmentQuery: ctaq}
	sbuild.label = clienttaskassignment.Label
	sbuild.flds, sbuild.scan = &ctaq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ClientTaskAssignmentSelect configured with the given aggregations.
func (ctaq *ClientTaskAssignmentQuery) Aggregate(fns ...AggregateFunc) *ClientTaskAssignmentSelect {
	return ctaq.Select().Aggregate(fns...)
}

func (ctaq *ClientTaskAssignmentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ctaq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ctaq); err != nil {
				return err
			}
		}
	}
	for _, f := range ctaq.ctx.Fields {
		if !clienttaskassignment.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if ctaq.path != nil {
		prev, err := ctaq.path(ctx)
		if err != nil {
			return err
		}
		ctaq.sql = prev
	}
	return nil
}

func (ctaq *ClientTaskAssignmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ClientTaskAssignment, error) {
	var (
		nodes       = []*ClientTaskAssignment{}
		_spec       = ctaq.querySpec()
		loadedTypes = [3]bool{
			ctaq.withClient != nil,
			ctaq.withTemplate != nil,
			ctaq.withAssignee != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ClientTaskAssignment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ClientTaskAssignment{config: ctaq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ctaq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ctaq.withClient; query != nil {
		if err := ctaq.loadClient(ctx, query, nodes, nil,
			func(n *ClientTaskAssignment, e *ClientAccount) { n.Edges.Client = e }); err != nil {
			return nil, err
		}
	}
	if query := ctaq.withTemplate; query != nil {
		if err := ctaq.loadTemplate(ctx, query, nodes, nil,
			func(n *ClientTaskAssignment, e *TaskTemplate) { n.Edges.Template = e }); err != nil {
			return nil, err
		}
	}
	if query := ctaq.withAssignee; query != nil {
		if err := ctaq.loadAssignee(ctx, query, nodes, nil,
			func(n *ClientTaskAssignment, e *Profile) { n.Edges.Assignee = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ctaq *ClientTaskAssignmentQuery) loadClient(ctx context.Context, query *ClientAccountQuery, nodes []*ClientTaskAssignment, init func(*ClientTaskAssignment), assign func(*ClientTaskAssignment, *ClientAccount)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ClientTaskAssignment)
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
func (ctaq *ClientTaskAssignmentQuery) loadTemplate(ctx context.Context, query *TaskTemplateQuery, nodes []*ClientTaskAssignment, init func(*ClientTaskAssignment), assign func(*ClientTaskAssignment, *TaskTemplate)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ClientTaskAssignment)
	for i := range nodes {
		fk := nodes[i].TemplateID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(tasktemplate.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "template_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (ctaq *ClientTaskAssignmentQuery) loadAssignee(ctx context.Context, query *ProfileQuery, nodes []*ClientTaskAssignment, init func(*ClientTaskAssignment), assign func(*ClientTaskAssignment, *Profile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ClientTaskAssignment)
	for i := range nodes {
		if nodes[i].AssigneeID == nil {
			continue
		}
		fk := *nodes[i].AssigneeID
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
			return fmt.Errorf(`unexpected foreign-key "assignee_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (ctaq *ClientTaskAssignmentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ctaq.querySpec()
	_spec.Node.Columns = ctaq.ctx.Fields
	if len(ctaq.ctx.Fields) > 0 {
		_spec.Unique = ctaq.ctx.Unique != nil && *ctaq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ctaq.driver, _spec)
}

func (ctaq *ClientTaskAssignmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(clienttaskassignment.Table, clienttaskassignment.Columns, sqlgraph.NewFieldSpec(clienttaskassignment.FieldID, field.TypeUUID))
	_spec.From = ctaq.sql
	if unique := ctaq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ctaq.path != nil {
		_spec.Unique = true
	}
	if fields := ctaq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clienttaskassignment.FieldID)
		for i := range fields {
			if fields[i] != clienttaskassignment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if ctaq.withClient != nil {
			_spec.Node.AddColumnOnce(clienttaskassignment.FieldClientID)
		}
		if ctaq.withTemplate != nil {
			_spec.Node.AddColumnOnce(clienttaskassignment.FieldTemplateID)
		}
		if ctaq.withAssignee != nil {
			_spec.Node.AddColumnOnce(clienttaskassignment.FieldAssigneeID)
		}
	}
	if ps := ctaq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ctaq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ctaq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ctaq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ctaq *ClientTaskAssignmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ctaq.driver.Dialect())
	t1 := builder.Table(clienttaskassignment.Table)
	columns := ctaq.ctx.Fields
	if len(columns) == 0 {
		columns = clienttaskassignment.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ctaq.sql != nil {
		selector = ctaq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ctaq.ctx.Unique != nil && *ctaq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ctaq.predicates {
		p(selector)
	}
	for _, p := range ctaq.order {
		p(selector)
	}
	if offset := ctaq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ctaq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ClientTaskAssignmentGroupBy is the group-by builder for ClientTaskAssignment entities.
type ClientTaskAssignmentGroupBy struct {
	selector
	build *ClientTaskAssignmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ctagb *ClientTaskAssignmentGroupBy) Aggregate(fns ...AggregateFunc) *ClientTaskAssignmentGroupBy {
	ctagb.fns = append(ctagb.fns, fns...)
	return ctagb
}

// Scan applies the selector query and scans the result into the given value.
func (ctagb *ClientTaskAssignmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ctagb.build.ctx, ent.OpQueryGroupBy)
	if err := ctagb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ClientTaskAssignmentQuery, *ClientTaskAssignmentGroupBy](ctx, ctagb.build, ctagb, ctagb.build.inters, v)
}

func (ctagb *ClientTaskAssignmentGroupBy) sqlScan(ctx context.Context, root *ClientTaskAssignmentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ctagb.fns))
	for _, fn := range ctagb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ctagb.flds)+len(ctagb.fns))
		for _, f := range *ctagb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ctagb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ctagb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ClientTaskAssignmentSelect is the builder for selecting fields of ClientTaskAssignment entities.
type ClientTaskAssignmentSelect struct {
	*ClientTaskAssignmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ctas *ClientTaskAssignmentSelect) Aggregate(fns ...AggregateFunc) *ClientTaskAssignmentSelect {
	ctas.fns = append(ctas.fns, fns...)
	return ctas
}

// Scan applies the selector query and scans the result into the given value.
func (ctas *ClientTaskAssignmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ctas.ctx, ent.OpQuerySelect)
	if err := ctas.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ClientTaskAssignmentQuery, *ClientTaskAssignmentSelect](ctx, ctas.ClientTaskAssignmentQuery, ctas, ctas.inters, v)
}

func (ctas *ClientTaskAssignmentSelect) sqlScan(ctx context.Context, root *ClientTaskAssignmentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ctas.fns))
	for _, fn := range ctas.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ctas.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ctas.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
