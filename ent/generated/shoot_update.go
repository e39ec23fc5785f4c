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
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/shoot"
)

// ShootUpdate is the builder for updating Shoot entities.
type ShootUpdate struct {
	config
	hooks    []Hook
	mutation *ShootMutation
}

// Where appends a list predicates to the ShootUpdate builder.
func (su *ShootUpdate) Where(ps ...predicate.Shoot) *ShootUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetClientID sets the "client_id" field.
func (su *ShootUpdate) SetClientID(u uuid.UUID) *ShootUpdate {
	su.mutation.SetClientID(u)
	return su
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (su *ShootUpdate) SetNillableClientID(u *uuid.UUID) *ShootUpdate {
	if u != nil {
		su.SetClientID(*u)
	}
	return su
}

// SetCycleID sets the "cycle_id" field.
func (su *ShootUpdate) SetCycleID(u uuid.UUID) *ShootUpdate {
	su.mutation.SetCycleID(u)
	return su
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (su *ShootUpdate) SetNillableCycleID(u *uuid.UUID) *ShootUpdate {
	if u != nil {
		su.SetCycleID(*u)
	}
	return su
}

// ClearCycleID clears the value of the "cycle_id" field.
func (su *ShootUpdate) ClearCycleID() *ShootUpdate {
	su.mutation.ClearCycleID()
	return su
}

// SetShootDate sets the "shoot_date" field.
func (su *ShootUpdate) SetShootDate(t time.Time) *ShootUpdate {
	su.mutation.SetShootDate(t)
	return su
}

// SetNillableShootDate sets the "shoot_date" field if the given value is not nil.
func (su *ShootUpdate) SetNillableShootDate(t *time.Time) *ShootUpdate {
	if t != nil {
		su.SetShootDate(*t)
	}
	return su
}

// SetShootTime sets the "shoot_time" field.
func (su *ShootUpdate) SetShootTime(s string) *ShootUpdate {
	su.mutation.SetShootTime(s)
	return su
}

// SetNillableShootTime sets the "shoot_time" field if the given value is not nil.
func (su *ShootUpdate) SetNillableShootTime(s *string) *ShootUpdate {
	if s != nil {
		su.SetShootTime(*s)
	}
	return su
}

// ClearShootTime clears the value of the "shoot_time" field.
func (su *ShootUpdate) ClearShootTime() *ShootUpdate {
	su.mutation.ClearShootTime()
	return su
}

// SetLocation sets the "location" field.
func (su *ShootUpdate) SetLocation(s string) *ShootUpdate {
	su.mutation.SetLocation(s)
	return su
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (su *ShootUpdate) SetNillableLocation(s *string) *ShootUpdate {
	if s != nil {
		su.SetLocation(*s)
	}
	return su
}

// ClearLocation clears the value of the "location" field.
func (su *ShootUpdate) ClearLocation() *ShootUpdate {
	su.mutation.ClearLocation()
	return su
}

// SetCalendarLink sets the "calendar_link" field.
func (su *ShootUpdate) SetCalendarLink(s string) *ShootUpdate {
	su.mutation.SetCalendarLink(s)
	return su
}

// SetNillableCalendarLink sets the "calendar_link" field if the given value is not nil.
func (su *ShootUpdate) SetNillableCalendarLink(s *string) *ShootUpdate {
	if s != nil {
		su.SetCalendarLink(*s)
	}
	return su
}

// ClearCalendarLink clears the value of the "calendar_link" field.
func (su *ShootUpdate) ClearCalendarLink() *ShootUpdate {
	su.mutation.ClearCalendarLink()
	return su
}

// SetStatus sets the "status" field.
func (su *ShootUpdate) SetStatus(s shoot.Status) *ShootUpdate {
	su.mutation.SetStatus(s)
	return su
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (su *ShootUpdate) SetNillableStatus(s *shoot.Status) *ShootUpdate {
	if s != nil {
		su.SetStatus(*s)
	}
	return su
}

// SetType sets the "type" field.
func (su *ShootUpdate) SetType(s shoot.Type) *ShootUpdate {
	su.mutation.SetType(s)
	return su
}

// SetNillableType sets the "type" field if the given value is not nil.
func (su *ShootUpdate) SetNillableType(s *shoot.Type) *ShootUpdate {
	if s != nil {
		su.SetType(*s)
	}
	return su
}

// SetUpdatedAt sets the "updated_at" field.
func (su *ShootUpdate) SetUpdatedAt(t time.Time) *ShootUpdate {
	su.mutation.SetUpdatedAt(t)
	return su
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (su *ShootUpdate) SetClient(c *ClientAccount) *ShootUpdate {
	return su.SetClientID(c.ID)
}

// SetCycle sets the "cycle" edge to the Cycle entity.
func (su *ShootUpdate) SetCycle(c *Cycle) *ShootUpdate {
	return su.SetCycleID(c.ID)
}

// Mutation returns the ShootMutation object of the builder.
func (su *ShootUpdate) Mutation() *ShootMutation {
	return su.mutation
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (su *ShootUpdate) ClearClient() *ShootUpdate {
	su.mutation.ClearClient()
	return su
}

// ClearCycle clears the "cycle" edge to the Cycle entity.
func (su *ShootUpdate) ClearCycle() *ShootUpdate {
	su.mutation.ClearCycle()
	return su
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *ShootUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *ShootUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *ShootUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *ShootUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *ShootUpdate) defaults() {
	if _, ok := su.mutation.UpdatedAt(); !ok {
		v := shoot.UpdateDefaultUpdatedAt()
		su.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *ShootUpdate) check() error {
	if v, ok := su.mutation.Status(); ok {
		if err := shoot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Shoot.status": %w`, err)}
		}
	}
	if v, ok := su.mutation.GetType(); ok {
		if err := shoot.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`generated: validator failed for field "Shoot.type": %w`, err)}
		}
	}
	if su.mutation.ClientCleared() && len(su.mutation.ClientIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Shoot.client"`)
	}
	return nil
}

func (su *ShootUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(shoot.Table, shoot.Columns, sqlgraph.NewFieldSpec(shoot.FieldID, field.TypeUUID))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.ShootDate(); ok {
		_spec.SetField(shoot.FieldShootDate, field.TypeTime, value)
	}
	if value, ok := su.mutation.ShootTime(); ok {
		_spec.SetField(shoot.FieldShootTime, field.TypeString, value)
	}
	if su.mutation.ShootTimeCleared() {
		_spec.ClearField(shoot.FieldShootTime, field.TypeString)
	}
	if value, ok := su.mutation.Location(); ok {
		_spec.SetField(shoot.FieldLocation, field.TypeString, value)
	}
	if su.mutation.LocationCleared() {
		_spec.ClearField(shoot.FieldLocation, field.TypeString)
	}
	if value, ok := su.mutation.CalendarLink(); ok {
		_spec.SetField(shoot.FieldCalendarLink, field.TypeString, value)
	}
	if su.mutation.CalendarLinkCleared() {
		_spec.ClearField(shoot.FieldCalendarLink, field.TypeString)
	}
	if value, ok := su.mutation.Status(); ok {
		_spec.SetField(shoot.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := su.mutation.GetType(); ok {
		_spec.SetField(shoot.FieldType, field.TypeEnum, value)
	}
	if value, ok := su.mutation.UpdatedAt(); ok {
		_spec.SetField(shoot.FieldUpdatedAt, field.TypeTime, value)
	}
	if su.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shoot.ClientTable,
			Columns: []string{shoot.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := su.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shoot.ClientTable,
			Columns: []string{shoot.ClientColumn},
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
	if su.mutation.CycleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shoot.CycleTable,
			Columns: []string{shoot.CycleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := su.mutation.CycleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shoot.CycleTable,
			Columns: []string{shoot.CycleColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shoot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// ShootUpdateOne is the builder for updating a single Shoot entity.
type ShootUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShootMutation
}

// SetClientID sets the "client_id" field.
func (suo *ShootUpdateOne) SetClientID(u uuid.UUID) *ShootUpdateOne {
	suo.mutation.SetClientID(u)
	return suo
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (suo *ShootUpdateOne) SetNillableClientID(u *uuid.UUID) *ShootUpdateOne {
	if u != nil {
		suo.SetClientID(*u)
	}
	return suo
}

// SetCycleID sets the "cycle_id" field.
func (suo *ShootUpdateOne) SetCycleID(u uuid.UUID) *ShootUpdateOne {
	suo.mutation.SetCycleID(u)
	return suo
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (suo *ShootUpdateOne) SetNillableCycleID(u *uuid.UUID) *ShootUpdateOne {
	if u != nil {
		suo.SetCycleID(*u)
	}
	return suo
}

// ClearCycleID clears the value of the "cycle_id" field.
func (suo *ShootUpdateOne) ClearCycleID() *ShootUpdateOne {
	suo.mutation.ClearCycleID()
	return suo
}

// SetShootDate sets the "shoot_date" field.
func (suo *ShootUpdateOne) SetShootDate(t time.Time) *ShootUpdateOne {
	suo.mutation.SetShootDate(t)
	return suo
}

// SetNillableShootDate sets the "shoot_date" field if the given value is not nil.
func (suo *ShootUpdateOne) SetNillableShootDate(t *time.Time) *ShootUpdateOne {
	if t != nil {
		suo.SetShootDate(*t)
	}
	return suo
}

// SetShootTime sets the "shoot_time" field.
func (suo *ShootUpdateOne) SetShootTime(s string) *ShootUpdateOne {
	suo.mutation.SetShootTime(s)
	return suo
}

// SetNillableShootTime sets the "shoot_time" field if the given value is not nil.
func (suo *ShootUpdateOne) SetNillableShootTime(s *string) *ShootUpdateOne {
	if s != nil {
		suo.SetShootTime(*s)
	}
	return suo
}

// ClearShootTime clears the value of the "shoot_time" field.
func (suo *ShootUpdateOne) ClearShootTime() *ShootUpdateOne {
	suo.mutation.ClearShootTime()
	return suo
}

// SetLocation sets the "location" field.
func (suo *ShootUpdateOne) SetLocation(s string) *ShootUpdateOne {
	suo.mutation.SetLocation(s)
	return suo
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (suo *ShootUpdateOne) SetNillableLocation(s *string) *ShootUpdateOne {
	if s != nil {
		suo.SetLocation(*s)
	}
	return suo
}

// ClearLocation clears the value of the "location" field.
func (suo *ShootUpdateOne) ClearLocation() *ShootUpdateOne {
	suo.mutation.ClearLocation()
	return suo
}

// SetCalendarLink sets the "calendar_link" field.
func (suo *ShootUpdateOne) SetCalendarLink(s string) *ShootUpdateOne {
	suo.mutation.SetCalendarLink(s)
	return suo
}

// SetNillableCalendarLink sets the "calendar_link" field if the given value is not nil.
func (suo *ShootUpdateOne) SetNillableCalendarLink(s *string) *ShootUpdateOne {
	if s != nil {
		suo.SetCalendarLink(*s)
	}
	return suo
}

// ClearCalendarLink clears the value of the "calendar_link" field.
func (suo *ShootUpdateOne) ClearCalendarLink() *ShootUpdateOne {
	suo.mutation.ClearCalendarLink()
	return suo
}

// SetStatus sets the "status" field.
func (suo *ShootUpdateOne) SetStatus(s shoot.Status) *ShootUpdateOne {
	suo.mutation.SetStatus(s)
	return suo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (suo *ShootUpdateOne) SetNillableStatus(s *shoot.Status) *ShootUpdateOne {
	if s != nil {
		suo.SetStatus(*s)
	}
	return suo
}

// SetType sets the "type" field.
func (suo *ShootUpdateOne) SetType(s shoot.Type) *ShootUpdateOne {
	suo.mutation.SetType(s)
	return suo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (suo *ShootUpdateOne) SetNillableType(s *shoot.Type) *ShootUpdateOne {
	if s != nil {
		suo.SetType(*s)
	}
	return suo
}

// SetUpdatedAt sets the "updated_at" field.
func (suo *ShootUpdateOne) SetUpdatedAt(t time.Time) *ShootUpdateOne {
	suo.mutation.SetUpdatedAt(t)
	return suo
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (suo *ShootUpdateOne) SetClient(c *ClientAccount) *ShootUpdateOne {
	return suo.SetClientID(c.ID)
}

// SetCycle sets the "cycle" edge to the Cycle entity.
func (suo *ShootUpdateOne) SetCycle(c *Cycle) *ShootUpdateOne {
	return suo.SetCycleID(c.ID)
}

// Mutation returns the ShootMutation object of the builder.
func (suo *ShootUpdateOne) Mutation() *ShootMutation {
	return suo.mutation
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (suo *ShootUpdateOne) ClearClient() *ShootUpdateOne {
	suo.mutation.ClearClient()
	return suo
}

// ClearCycle clears the "cycle" edge to the Cycle entity.
func (suo *ShootUpdateOne) ClearCycle() *ShootUpdateOne {
	suo.mutation.ClearCycle()
	return suo
}

// Where appends a list predicates to the ShootUpdate builder.
func (suo *ShootUpdateOne) Where(ps ...predicate.Shoot) *ShootUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *ShootUpdateOne) Select(field string, fields ...string) *ShootUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Shoot entity.
func (suo *ShootUpdateOne) Save(ctx context.Context) (*Shoot, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *ShootUpdateOne) SaveX(ctx context.Context) *Shoot {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *ShootUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *ShootUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *ShootUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdatedAt(); !ok {
		v := shoot.UpdateDefaultUpdatedAt()
		suo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *ShootUpdateOne) check() error {
	if v, ok := suo.mutation.Status(); ok {
		if err := shoot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Shoot.status": %w`, err)}
		}
	}
	if v, ok := suo.mutation.GetType(); ok {
		if err := shoot.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`generated: validator failed for field "Shoot.type": %w`, err)}
		}
	}
	if suo.mutation.ClientCleared() && len(suo.mutation.ClientIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Shoot.client"`)
	}
	return nil
}

func (suo *ShootUpdateOne) sqlSave(ctx context.Context) (_node *Shoot, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shoot.Table, shoot.Columns, sqlgraph.NewFieldSpec(shoot.FieldID, field.TypeUUID))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Shoot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shoot.FieldID)
		for _, f := range fields {
			if !shoot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != shoot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.ShootDate(); ok {
		_spec.SetField(shoot.FieldShootDate, field.TypeTime, value)
	}
	if value, ok := suo.mutation.ShootTime(); ok {
		_spec.SetField(shoot.FieldShootTime, field.TypeString, value)
	}
	if suo.mutation.ShootTimeCleared() {
		_spec.ClearField(shoot.FieldShootTime, field.TypeString)
	}
	if value, ok := suo.mutation.Location(); ok {
		_spec.SetField(shoot.FieldLocation, field.TypeString, value)
	}
	if suo.mutation.LocationCleared() {
		_spec.ClearField(shoot.FieldLocation, field.TypeString)
	}
	if value, ok := suo.mutation.CalendarLink(); ok {
		_spec.SetField(shoot.FieldCalendarLink, field.TypeString, value)
	}
	if suo.mutation.CalendarLinkCleared() {
		_spec.ClearField(shoot.FieldCalendarLink, field.TypeString)
	}
	if value, ok := suo.mutation.Status(); ok {
		_spec.SetField(shoot.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := suo.mutation.GetType(); ok {
		_spec.SetField(shoot.FieldType, field.TypeEnum, value)
	}
	if value, ok := suo.mutation.UpdatedAt(); ok {
		_spec.SetField(shoot.FieldUpdatedAt, field.TypeTime, value)
	}
	if suo.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shoot.ClientTable,
			Columns: []string{shoot.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := suo.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shoot.ClientTable,
			Columns: []string{shoot.ClientColumn},
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
	if suo.mutation.CycleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shoot.CycleTable,
			Columns: []string{shoot.CycleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := suo.mutation.CycleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shoot.CycleTable,
			Columns: []string{shoot.CycleColumn},
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
	_node = &Shoot{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shoot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
