// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// CycleUpdate is the builder for updating Cycle entities.
type CycleUpdate struct {
	config
	hooks    []Hook
	mutation *CycleMutation
}

// Where appends a list predicates to the CycleUpdate builder.
func (cu *CycleUpdate) Where(ps ...predicate.Cycle) *CycleUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetClientID sets the "client_id" field.
func (cu *CycleUpdate) SetClientID(u uuid.UUID) *CycleUpdate {
	cu.mutation.SetClientID(u)
	return cu
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (cu *CycleUpdate) SetNillableClientID(u *uuid.UUID) *CycleUpdate {
	if u != nil {
		cu.SetClientID(*u)
	}
	return cu
}

// SetStatus sets the "status" field.
func (cu *CycleUpdate) SetStatus(c cycle.Status) *CycleUpdate {
	cu.mutation.SetStatus(c)
	return cu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cu *CycleUpdate) SetNillableStatus(c *cycle.Status) *CycleUpdate {
	if c != nil {
		cu.SetStatus(*c)
	}
	return cu
}

// SetUpdatedAt sets the "updated_at" field.
func (cu *CycleUpdate) SetUpdatedAt(t time.Time) *CycleUpdate {
	cu.mutation.SetUpdatedAt(t)
	return cu
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (cu *CycleUpdate) SetClient(c *ClientAccount) *CycleUpdate {
	return cu.SetClientID(c.ID)
}

// AddShootIDs adds the "shoots" edge to the Shoot entity by IDs.
func (cu *CycleUpdate) AddShootIDs(ids ...uuid.UUID) *CycleUpdate {
	cu.mutation.AddShootIDs(ids...)
	return cu
}

// AddShoots adds the "shoots" edges to the Shoot entity.
func (cu *CycleUpdate) AddShoots(s ...*Shoot) *CycleUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return cu.AddShootIDs(ids...)
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by IDs.
func (cu *CycleUpdate) AddContextEntryIDs(ids ...uuid.UUID) *CycleUpdate {
	cu.mutation.AddContextEntryIDs(ids...)
	return cu
}

// AddContextEntries adds the "context_entries" edges to the ContextEntry entity.
func (cu *CycleUpdate) AddContextEntries(c ...*ContextEntry) *CycleUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cu.AddContextEntryIDs(ids...)
}

// Mutation returns the CycleMutation object of the builder.
func (cu *CycleUpdate) Mutation() *CycleMutation {
	return cu.mutation
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (cu *CycleUpdate) ClearClient() *CycleUpdate {
	cu.mutation.ClearClient()
	return cu
}

// ClearShoots clears all "shoots" edges to the Shoot entity.
func (cu *CycleUpdate) ClearShoots() *CycleUpdate {
	cu.mutation.ClearShoots()
	return cu
}

// RemoveShootIDs removes the "shoots" edge to Shoot entities by IDs.
func (cu *CycleUpdate) RemoveShootIDs(ids ...uuid.UUID) *CycleUpdate {
	cu.mutation.RemoveShootIDs(ids...)
	return cu
}

// RemoveShoots removes "shoots" edges to Shoot entities.
func (cu *CycleUpdate) RemoveShoots(s ...*Shoot) *CycleUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return cu.RemoveShootIDs(ids...)
}

// ClearContextEntries clears all "context_entries" edges to the ContextEntry entity.
func (cu *CycleUpdate) ClearContextEntries() *CycleUpdate {
	cu.mutation.ClearContextEntries()
	return cu
}

// RemoveContextEntryIDs removes the "context_entries" edge to ContextEntry entities by IDs.
func (cu *CycleUpdate) RemoveContextEntryIDs(ids ...uuid.UUID) *CycleUpdate {
	cu.mutation.RemoveContextEntryIDs(ids...)
	return cu
}

// RemoveContextEntries removes "context_entries" edges to ContextEntry entities.
func (cu *CycleUpdate) RemoveContextEntries(c ...*ContextEntry) *CycleUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cu.RemoveContextEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *CycleUpdate) Save(ctx context.Context) (int, error) {
	cu.defaults()
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *CycleUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *CycleUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *CycleUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cu *CycleUpdate) defaults() {
	if _, ok := cu.mutation.UpdatedAt(); !ok {
		v := cycle.UpdateDefaultUpdatedAt()
		cu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *CycleUpdate) check() error {
	if v, ok := cu.mutation.Status(); ok {
		if err := cycle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Cycle.status": %w`, err)}
		}
	}
	if cu.mutation.ClientCleared() && len(cu.mutation.ClientIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Cycle.client"`)
	}
	return nil
}

func (cu *CycleUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(cycle.Table, cycle.Columns, sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.Status(); ok {
		_spec.SetField(cycle.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := cu.mutation.UpdatedAt(); ok {
		_spec.SetField(cycle.FieldUpdatedAt, field.TypeTime, value)
	}
	if cu.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cycle.ClientTable,
			Columns: []string{cycle.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cycle.ClientTable,
			Columns: []string{cycle.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cu.mutation.ShootsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ShootsTable,
			Columns: []string{cycle.ShootsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shoot.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.RemovedShootsIDs(); len(nodes) > 0 && !cu.mutation.ShootsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ShootsTable,
			Columns: []string{cycle.ShootsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shoot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.ShootsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ShootsTable,
			Columns: []string{cycle.ShootsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shoot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cu.mutation.ContextEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ContextEntriesTable,
			Columns: []string{cycle.ContextEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.RemovedContextEntriesIDs(); len(nodes) > 0 && !cu.mutation.ContextEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ContextEntriesTable,
			Columns: []string{cycle.ContextEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.ContextEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ContextEntriesTable,
			Columns: []string{cycle.ContextEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// CycleUpdateOne is the builder for updating a single Cycle entity.
type CycleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CycleMutation
}

// SetClientID sets the "client_id" field.
func (cuo *CycleUpdateOne) SetClientID(u uuid.UUID) *CycleUpdateOne {
	cuo.mutation.SetClientID(u)
	return cuo
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (cuo *CycleUpdateOne) SetNillableClientID(u *uuid.UUID) *CycleUpdateOne {
	if u != nil {
		cuo.SetClientID(*u)
	}
	return cuo
}

// SetStatus sets the "status" field.
func (cuo *CycleUpdateOne) SetStatus(c cycle.Status) *CycleUpdateOne {
	cuo.mutation.SetStatus(c)
	return cuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cuo *CycleUpdateOne) SetNillableStatus(c *cycle.Status) *CycleUpdateOne {
	if c != nil {
		cuo.SetStatus(*c)
	}
	return cuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cuo *CycleUpdateOne) SetUpdatedAt(t time.Time) *CycleUpdateOne {
	cuo.mutation.SetUpdatedAt(t)
	return cuo
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (cuo *CycleUpdateOne) SetClient(c *ClientAccount) *CycleUpdateOne {
	return cuo.SetClientID(c.ID)
}

// AddShootIDs adds the "shoots" edge to the Shoot entity by IDs.
func (cuo *CycleUpdateOne) AddShootIDs(ids ...uuid.UUID) *CycleUpdateOne {
	cuo.mutation.AddShootIDs(ids...)
	return cuo
}

// AddShoots adds the "shoots" edges to the Shoot entity.
func (cuo *CycleUpdateOne) AddShoots(s ...*Shoot) *CycleUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return cuo.AddShootIDs(ids...)
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by IDs.
func (cuo *CycleUpdateOne) AddContextEntryIDs(ids ...uuid.UUID) *CycleUpdateOne {
	cuo.mutation.AddContextEntryIDs(ids...)
	return cuo
}

// AddContextEntries adds the "context_entries" edges to the ContextEntry entity.
func (cuo *CycleUpdateOne) AddContextEntries(c ...*ContextEntry) *CycleUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cuo.AddContextEntryIDs(ids...)
}

// Mutation returns the CycleMutation object of the builder.
func (cuo *CycleUpdateOne) Mutation() *CycleMutation {
	return cuo.mutation
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (cuo *CycleUpdateOne) ClearClient() *CycleUpdateOne {
	cuo.mutation.ClearClient()
	return cuo
}

// ClearShoots clears all "shoots" edges to the Shoot entity.
func (cuo *CycleUpdateOne) ClearShoots() *CycleUpdateOne {
	cuo.mutation.ClearShoots()
	return cuo
}

// RemoveShootIDs removes the "shoots" edge to Shoot entities by IDs.
func (cuo *CycleUpdateOne) RemoveShootIDs(ids ...uuid.UUID) *CycleUpdateOne {
	cuo.mutation.RemoveShootIDs(ids...)
	return cuo
}

// RemoveShoots removes "shoots" edges to Shoot entities.
func (cuo *CycleUpdateOne) RemoveShoots(s ...*Shoot) *CycleUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return cuo.RemoveShootIDs(ids...)
}

// ClearContextEntries clears all "context_entries" edges to the ContextEntry entity.
func (cuo *CycleUpdateOne) ClearContextEntries() *CycleUpdateOne {
	cuo.mutation.ClearContextEntries()
	return cuo
}

// RemoveContextEntryIDs removes the "context_entries" edge to ContextEntry entities by IDs.
func (cuo *CycleUpdateOne) RemoveContextEntryIDs(ids ...uuid.UUID) *CycleUpdateOne {
	cuo.mutation.RemoveContextEntryIDs(ids...)
	return cuo
}

// RemoveContextEntries removes "context_entries" edges to ContextEntry entities.
func (cuo *CycleUpdateOne) RemoveContextEntries(c ...*ContextEntry) *CycleUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cuo.RemoveContextEntryIDs(ids...)
}

// Where appends a list predicates to the CycleUpdate builder.
func (cuo *CycleUpdateOne) Where(ps ...predicate.Cycle) *CycleUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *CycleUpdateOne) Select(field string, fields ...string) *CycleUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Cycle entity.
func (cuo *CycleUpdateOne) Save(ctx context.Context) (*Cycle, error) {
	cuo.defaults()
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *CycleUpdateOne) SaveX(ctx context.Context) *Cycle {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *CycleUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *CycleUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cuo *CycleUpdateOne) defaults() {
	if _, ok := cuo.mutation.UpdatedAt(); !ok {
		v := cycle.UpdateDefaultUpdatedAt()
		cuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *CycleUpdateOne) check() error {
	if v, ok := cuo.mutation.Status(); ok {
		if err := cycle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Cycle.status": %w`, err)}
		}
	}
	if cuo.mutation.ClientCleared() && len(cuo.mutation.ClientIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Cycle.client"`)
	}
	return nil
}

func (cuo *CycleUpdateOne) sqlSave(ctx context.Context) (_node *Cycle, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cycle.Table, cycle.Columns, sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Cycle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cycle.FieldID)
		for _, f := range fields {
			if !cycle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != cycle.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.Status(); ok {
		_spec.SetField(cycle.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := cuo.mutation.UpdatedAt(); ok {
		_spec.SetField(cycle.FieldUpdatedAt, field.TypeTime, value)
	}
	if cuo.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cycle.ClientTable,
			Columns: []string{cycle.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cycle.ClientTable,
			Columns: []string{cycle.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cuo.mutation.ShootsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ShootsTable,
			Columns: []string{cycle.ShootsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shoot.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.RemovedShootsIDs(); len(nodes) > 0 && !cuo.mutation.ShootsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ShootsTable,
			Columns: []string{cycle.ShootsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shoot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.ShootsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ShootsTable,
			Columns: []string{cycle.ShootsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shoot.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cuo.mutation.ContextEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ContextEntriesTable,
			Columns: []string{cycle.ContextEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.RemovedContextEntriesIDs(); len(nodes) > 0 && !cuo.mutation.ContextEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ContextEntriesTable,
			Columns: []string{cycle.ContextEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.ContextEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ContextEntriesTable,
			Columns: []string{cycle.ContextEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Cycle{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
