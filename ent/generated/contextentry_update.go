// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"

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

// ContextEntryUpdate is the builder for updating ContextEntry entities.
type ContextEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ContextEntryMutation
}

// Where appends a list predicates to the ContextEntryUpdate builder.
func (ceu *ContextEntryUpdate) Where(ps ...predicate.ContextEntry) *ContextEntryUpdate {
	ceu.mutation.Where(ps...)
	return ceu
}

// SetClientID sets the "client_id" field.
func (ceu *ContextEntryUpdate) SetClientID(u uuid.UUID) *ContextEntryUpdate {
	ceu.mutation.SetClientID(u)
	return ceu
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (ceu *ContextEntryUpdate) SetNillableClientID(u *uuid.UUID) *ContextEntryUpdate {
	if u != nil {
		ceu.SetClientID(*u)
	}
	return ceu
}

// SetCycleID sets the "cycle_id" field.
func (ceu *ContextEntryUpdate) SetCycleID(u uuid.UUID) *ContextEntryUpdate {
	ceu.mutation.SetCycleID(u)
	return ceu
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (ceu *ContextEntryUpdate) SetNillableCycleID(u *uuid.UUID) *ContextEntryUpdate {
	if u != nil {
		ceu.SetCycleID(*u)
	}
	return ceu
}

// ClearCycleID clears the value of the "cycle_id" field.
func (ceu *ContextEntryUpdate) ClearCycleID() *ContextEntryUpdate {
	ceu.mutation.ClearCycleID()
	return ceu
}

// SetAuthorID sets the "author_id" field.
func (ceu *ContextEntryUpdate) SetAuthorID(u uuid.UUID) *ContextEntryUpdate {
	ceu.mutation.SetAuthorID(u)
	return ceu
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (ceu *ContextEntryUpdate) SetNillableAuthorID(u *uuid.UUID) *ContextEntryUpdate {
	if u != nil {
		ceu.SetAuthorID(*u)
	}
	return ceu
}

// SetType sets the "type" field.
func (ceu *ContextEntryUpdate) SetType(c contextentry.Type) *ContextEntryUpdate {
	ceu.mutation.SetType(c)
	return ceu
}

// SetNillableType sets the "type" field if the given value is not nil.
func (ceu *ContextEntryUpdate) SetNillableType(c *contextentry.Type) *ContextEntryUpdate {
	if c != nil {
		ceu.SetType(*c)
	}
	return ceu
}

// SetContent sets the "content" field.
func (ceu *ContextEntryUpdate) SetContent(s string) *ContextEntryUpdate {
	ceu.mutation.SetContent(s)
	return ceu
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (ceu *ContextEntryUpdate) SetNillableContent(s *string) *ContextEntryUpdate {
	if s != nil {
		ceu.SetContent(*s)
	}
	return ceu
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (ceu *ContextEntryUpdate) SetClient(c *ClientAccount) *ContextEntryUpdate {
	return ceu.SetClientID(c.ID)
}

// SetCycle sets the "cycle" edge to the Cycle entity.
func (ceu *ContextEntryUpdate) SetCycle(c *Cycle) *ContextEntryUpdate {
	return ceu.SetCycleID(c.ID)
}

// SetAuthor sets the "author" edge to the Profile entity.
func (ceu *ContextEntryUpdate) SetAuthor(p *Profile) *ContextEntryUpdate {
	return ceu.SetAuthorID(p.ID)
}

// Mutation returns the ContextEntryMutation object of the builder.
func (ceu *ContextEntryUpdate) Mutation() *ContextEntryMutation {
	return ceu.mutation
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (ceu *ContextEntryUpdate) ClearClient() *ContextEntryUpdate {
	ceu.mutation.ClearClient()
	return ceu
}

// ClearCycle clears the "cycle" edge to the Cycle entity.
func (ceu *ContextEntryUpdate) ClearCycle() *ContextEntryUpdate {
	ceu.mutation.ClearCycle()
	return ceu
}

// ClearAuthor clears the "author" edge to the Profile entity.
func (ceu *ContextEntryUpdate) ClearAuthor() *ContextEntryUpdate {
	ceu.mutation.ClearAuthor()
	return ceu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ceu *ContextEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ceu.sqlSave, ceu.mutation, ceu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceu *ContextEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := ceu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ceu *ContextEntryUpdate) Exec(ctx context.Context) error {
	_, err := ceu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceu *ContextEntryUpdate) ExecX(ctx context.Context) {
	if err := ceu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ceu *ContextEntryUpdate) check() error {
	if v, ok := ceu.mutation.GetType(); ok {
		if err := contextentry.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`generated: validator failed for field "ContextEntry.type": %w`, err)}
		}
	}
	if v, ok := ceu.mutation.Content(); ok {
		if err := contextentry.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`generated: validator failed for field "ContextEntry.content": %w`, err)}
		}
	}
	if ceu.mutation.ClientCleared() && len(ceu.mutation.ClientIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "ContextEntry.client"`)
	}
	if ceu.mutation.AuthorCleared() && len(ceu.mutation.AuthorIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "ContextEntry.author"`)
	}
	return nil
}

func (ceu *ContextEntryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ceu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextentry.Table, contextentry.Columns, sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID))
	if ps := ceu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceu.mutation.GetType(); ok {
		_spec.SetField(contextentry.FieldType, field.TypeEnum, value)
	}
	if value, ok := ceu.mutation.Content(); ok {
		_spec.SetField(contextentry.FieldContent, field.TypeString, value)
	}
	if ceu.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.ClientTable,
			Columns: []string{contextentry.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceu.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.ClientTable,
			Columns: []string{contextentry.ClientColumn},
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
	if ceu.mutation.CycleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.CycleTable,
			Columns: []string{contextentry.CycleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceu.mutation.CycleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.CycleTable,
			Columns: []string{contextentry.CycleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ceu.mutation.AuthorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.AuthorTable,
			Columns: []string{contextentry.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceu.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.AuthorTable,
			Columns: []string{contextentry.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ceu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ceu.mutation.done = true
	return n, nil
}

// ContextEntryUpdateOne is the builder for updating a single ContextEntry entity.
type ContextEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextEntryMutation
}

// SetClientID sets the "client_id" field.
func (ceuo *ContextEntryUpdateOne) SetClientID(u uuid.UUID) *ContextEntryUpdateOne {
	ceuo.mutation.SetClientID(u)
	return ceuo
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (ceuo *ContextEntryUpdateOne) SetNillableClientID(u *uuid.UUID) *ContextEntryUpdateOne {
	if u != nil {
		ceuo.SetClientID(*u)
	}
	return ceuo
}

// SetCycleID sets the "cycle_id" field.
func (ceuo *ContextEntryUpdateOne) SetCycleID(u uuid.UUID) *ContextEntryUpdateOne {
	ceuo.mutation.SetCycleID(u)
	return ceuo
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (ceuo *ContextEntryUpdateOne) SetNillableCycleID(u *uuid.UUID) *ContextEntryUpdateOne {
	if u != nil {
		ceuo.SetCycleID(*u)
	}
	return ceuo
}

// ClearCycleID clears the value of the "cycle_id" field.
func (ceuo *ContextEntryUpdateOne) ClearCycleID() *ContextEntryUpdateOne {
	ceuo.mutation.ClearCycleID()
	return ceuo
}

// SetAuthorID sets the "author_id" field.
func (ceuo *ContextEntryUpdateOne) SetAuthorID(u uuid.UUID) *ContextEntryUpdateOne {
	ceuo.mutation.SetAuthorID(u)
	return ceuo
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (ceuo *ContextEntryUpdateOne) SetNillableAuthorID(u *uuid.UUID) *ContextEntryUpdateOne {
	if u != nil {
		ceuo.SetAuthorID(*u)
	}
	return ceuo
}

// SetType sets the "type" field.
func (ceuo *ContextEntryUpdateOne) SetType(c contextentry.Type) *ContextEntryUpdateOne {
	ceuo.mutation.SetType(c)
	return ceuo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (ceuo *ContextEntryUpdateOne) SetNillableType(c *contextentry.Type) *ContextEntryUpdateOne {
	if c != nil {
		ceuo.SetType(*c)
	}
	return ceuo
}

// SetContent sets the "content" field.
func (ceuo *ContextEntryUpdateOne) SetContent(s string) *ContextEntryUpdateOne {
	ceuo.mutation.SetContent(s)
	return ceuo
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (ceuo *ContextEntryUpdateOne) SetNillableContent(s *string) *ContextEntryUpdateOne {
	if s != nil {
		ceuo.SetContent(*s)
	}
	return ceuo
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (ceuo *ContextEntryUpdateOne) SetClient(c *ClientAccount) *ContextEntryUpdateOne {
	return ceuo.SetClientID(c.ID)
}

// SetCycle sets the "cycle" edge to the Cycle entity.
func (ceuo *ContextEntryUpdateOne) SetCycle(c *Cycle) *ContextEntryUpdateOne {
	return ceuo.SetCycleID(c.ID)
}

// SetAuthor sets the "author" edge to the Profile entity.
func (ceuo *ContextEntryUpdateOne) SetAuthor(p *Profile) *ContextEntryUpdateOne {
	return ceuo.SetAuthorID(p.ID)
}

// Mutation returns the ContextEntryMutation object of the builder.
func (ceuo *ContextEntryUpdateOne) Mutation() *ContextEntryMutation {
	return ceuo.mutation
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (ceuo *ContextEntryUpdateOne) ClearClient() *ContextEntryUpdateOne {
	ceuo.mutation.ClearClient()
	return ceuo
}

// ClearCycle clears the "cycle" edge to the Cycle entity.
func (ceuo *ContextEntryUpdateOne) ClearCycle() *ContextEntryUpdateOne {
	ceuo.mutation.ClearCycle()
	return ceuo
}

// ClearAuthor clears the "author" edge to the Profile entity.
func (ceuo *ContextEntryUpdateOne) ClearAuthor() *ContextEntryUpdateOne {
	ceuo.mutation.ClearAuthor()
	return ceuo
}

// Where appends a list predicates to the ContextEntryUpdate builder.
func (ceuo *ContextEntryUpdateOne) Where(ps ...predicate.ContextEntry) *ContextEntryUpdateOne {
	ceuo.mutation.Where(ps...)
	return ceuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ceuo *ContextEntryUpdateOne) Select(field string, fields ...string) *ContextEntryUpdateOne {
	ceuo.fields = append([]string{field}, fields...)
	return ceuo
}

// Save executes the query and returns the updated ContextEntry entity.
func (ceuo *ContextEntryUpdateOne) Save(ctx context.Context) (*ContextEntry, error) {
	return withHooks(ctx, ceuo.sqlSave, ceuo.mutation, ceuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceuo *ContextEntryUpdateOne) SaveX(ctx context.Context) *ContextEntry {
	node, err := ceuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ceuo *ContextEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := ceuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceuo *ContextEntryUpdateOne) ExecX(ctx context.Context) {
	if err := ceuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ceuo *ContextEntryUpdateOne) check() error {
	if v, ok := ceuo.mutation.GetType(); ok {
		if err := contextentry.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`generated: validator failed for field "ContextEntry.type": %w`, err)}
		}
	}
	if v, ok := ceuo.mutation.Content(); ok {
		if err := contextentry.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`generated: validator failed for field "ContextEntry.content": %w`, err)}
		}
	}
	if ceuo.mutation.ClientCleared() && len(ceuo.mutation.ClientIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "ContextEntry.client"`)
	}
	if ceuo.mutation.AuthorCleared() && len(ceuo.mutation.AuthorIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "ContextEntry.author"`)
	}
	return nil
}

func (ceuo *ContextEntryUpdateOne) sqlSave(ctx context.Context) (_node *ContextEntry, err error) {
	if err := ceuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextentry.Table, contextentry.Columns, sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID))
	id, ok := ceuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "ContextEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ceuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextentry.FieldID)
		for _, f := range fields {
			if !contextentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != contextentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ceuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceuo.mutation.GetType(); ok {
		_spec.SetField(contextentry.FieldType, field.TypeEnum, value)
	}
	if value, ok := ceuo.mutation.Content(); ok {
		_spec.SetField(contextentry.FieldContent, field.TypeString, value)
	}
	if ceuo.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.ClientTable,
			Columns: []string{contextentry.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceuo.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.ClientTable,
			Columns: []string{contextentry.ClientColumn},
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
	if ceuo.mutation.CycleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.CycleTable,
			Columns: []string{contextentry.CycleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceuo.mutation.CycleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.CycleTable,
			Columns: []string{contextentry.CycleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ceuo.mutation.AuthorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.AuthorTable,
			Columns: []string{contextentry.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceuo.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.AuthorTable,
			Columns: []string{contextentry.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContextEntry{config: ceuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ceuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ceuo.mutation.done = true
	return _node, nil
}
