// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/clientaccount"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/shoot"
)

// ShootCreate is the builder for creating a Shoot entity.
type ShootCreate struct {
	config
	mutation *ShootMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (sc *ShootCreate) SetClientID(u uuid.UUID) *ShootCreate {
	sc.mutation.SetClientID(u)
	return sc
}

// SetCycleID sets the "cycle_id" field.
func (sc *ShootCreate) SetCycleID(u uuid.UUID) *ShootCreate {
	sc.mutation.SetCycleID(u)
	return sc
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (sc *ShootCreate) SetNillableCycleID(u *uuid.UUID) *ShootCreate {
	if u != nil {
		sc.SetCycleID(*u)
	}
	return sc
}

// SetShootDate sets the "shoot_date" field.
func (sc *ShootCreate) SetShootDate(t time.Time) *ShootCreate {
	sc.mutation.SetShootDate(t)
	return sc
}

// SetShootTime sets the "shoot_time" field.
func (sc *ShootCreate) SetShootTime(s string) *ShootCreate {
	sc.mutation.SetShootTime(s)
	return sc
}

// SetNillableShootTime sets the "shoot_time" field if the given value is not nil.
func (sc *ShootCreate) SetNillableShootTime(s *string) *ShootCreate {
	if s != nil {
		sc.SetShootTime(*s)
	}
	return sc
}

// SetLocation sets the "location" field.
func (sc *ShootCreate) SetLocation(s string) *ShootCreate {
	sc.mutation.SetLocation(s)
	return sc
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (sc *ShootCreate) SetNillableLocation(s *string) *ShootCreate {
	if s != nil {
		sc.SetLocation(*s)
	}
	return sc
}

// SetCalendarLink sets the "calendar_link" field.
func (sc *ShootCreate) SetCalendarLink(s string) *ShootCreate {
	sc.mutation.SetCalendarLink(s)
	return sc
}

// SetNillableCalendarLink sets the "calendar_link" field if the given value is not nil.
func (sc *ShootCreate) SetNillableCalendarLink(s *string) *ShootCreate {
	if s != nil {
		sc.SetCalendarLink(*s)
	}
	return sc
}

// SetStatus sets the "status" field.
func (sc *ShootCreate) SetStatus(s shoot.Status) *ShootCreate {
	sc.mutation.SetStatus(s)
	return sc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sc *ShootCreate) SetNillableStatus(s *shoot.Status) *ShootCreate {
	if s != nil {
		sc.SetStatus(*s)
	}
	return sc
}

// SetType sets the "type" field.
func (sc *ShootCreate) SetType(s shoot.Type) *ShootCreate {
	sc.mutation.SetType(s)
	return sc
}

// SetNillableType sets the "type" field if the given value is not nil.
func (sc *ShootCreate) SetNillableType(s *shoot.Type) *ShootCreate {
	if s != nil {
		sc.SetType(*s)
	}
	return sc
}

// SetCreatedAt sets the "created_at" field.
func (sc *ShootCreate) SetCreatedAt(t time.Time) *ShootCreate {
	sc.mutation.SetCreatedAt(t)
	return sc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sc *ShootCreate) SetNillableCreatedAt(t *time.Time) *ShootCreate {
	if t != nil {
		sc.SetCreatedAt(*t)
	}
	return sc
}

// SetUpdatedAt sets the "updated_at" field.
func (sc *ShootCreate) SetUpdatedAt(t time.Time) *ShootCreate {
	sc.mutation.SetUpdatedAt(t)
	return sc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (sc *ShootCreate) SetNillableUpdatedAt(t *time.Time) *ShootCreate {
	if t != nil {
		sc.SetUpdatedAt(*t)
	}
	return sc
}

// SetID sets the "id" field.
func (sc *ShootCreate) SetID(u uuid.UUID) *ShootCreate {
	sc.mutation.SetID(u)
	return sc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (sc *ShootCreate) SetNillableID(u *uuid.UUID) *ShootCreate {
	if u != nil {
		sc.SetID(*u)
	}
	return sc
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (sc *ShootCreate) SetClient(c *ClientAccount) *ShootCreate {
	return sc.SetClientID(c.ID)
}

// SetCycle sets the "cycle" edge to the Cycle entity.
func (sc *ShootCreate) SetCycle(c *Cycle) *ShootCreate {
	return sc.SetCycleID(c.ID)
}

// Mutation returns the ShootMutation object of the builder.
func (sc *ShootCreate) Mutation() *ShootMutation {
	return sc.mutation
}

// Save creates the Shoot in the database.
func (sc *ShootCreate) Save(ctx context.Context) (*Shoot, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *ShootCreate) SaveX(ctx context.Context) *Shoot {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *ShootCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *ShootCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *ShootCreate) defaults() {
	if _, ok := sc.mutation.Status(); !ok {
		v := shoot.DefaultStatus
		sc.mutation.SetStatus(v)
	}
	if _, ok := sc.mutation.GetType(); !ok {
		v := shoot.DefaultType
		sc.mutation.SetType(v)
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		v := shoot.DefaultCreatedAt()
		sc.mutation.SetCreatedAt(v)
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		v := shoot.DefaultUpdatedAt()
		sc.mutation.SetUpdatedAt(v)
	}
	if _, ok := sc.mutation.ID(); !ok {
		v := shoot.DefaultID()
		sc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *ShootCreate) check() error {
	if _, ok := sc.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`generated: missing required field "Shoot.client_id"`)}
	}
	if _, ok := sc.mutation.ShootDate(); !ok {
		return &ValidationError{Name: "shoot_date", err: errors.New(`generated: missing required field "Shoot.shoot_date"`)}
	}
	if _, ok := sc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "Shoot.status"`)}
	}
	if v, ok := sc.mutation.Status(); ok {
		if err := shoot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Shoot.status": %w`, err)}
		}
	}
	if _, ok := sc.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`generated: missing required field "Shoot.type"`)}
	}
	if v, ok := sc.mutation.GetType(); ok {
		if err := shoot.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`generated: validator failed for field "Shoot.type": %w`, err)}
		}
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Shoot.created_at"`)}
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Shoot.updated_at"`)}
	}
	if len(sc.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`generated: missing required edge "Shoot.client"`)}
	}
	return nil
}

func (sc *ShootCreate) sqlSave(ctx context.Context) (*Shoot, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *ShootCreate) createSpec() (*Shoot, *sqlgraph.CreateSpec) {
	var (
		_node = &Shoot{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(shoot.Table, sqlgraph.NewFieldSpec(shoot.FieldID, field.TypeUUID))
	)
	if id, ok := sc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := sc.mutation.ShootDate(); ok {
		_spec.SetField(shoot.FieldShootDate, field.TypeTime, value)
		_node.ShootDate = value
	}
	if value, ok := sc.mutation.ShootTime(); ok {
		_spec.SetField(shoot.FieldShootTime, field.TypeString, value)
		_node.ShootTime = value
	}
	if value, ok := sc.mutation.Location(); ok {
		_spec.SetField(shoot.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := sc.mutation.CalendarLink(); ok {
		_spec.SetField(shoot.FieldCalendarLink, field.TypeString, value)
		_node.CalendarLink = value
	}
	if value, ok := sc.mutation.Status(); ok {
		_spec.SetField(shoot.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := sc.mutation.GetType(); ok {
		_spec.SetField(shoot.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := sc.mutation.CreatedAt(); ok {
		_spec.SetField(shoot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := sc.mutation.UpdatedAt(); ok {
		_spec.SetField(shoot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := sc.mutation.ClientIDs(); len(nodes) > 0 {
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
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := sc.mutation.CycleIDs(); len(nodes) > 0 {
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
		_node.CycleID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ShootCreateBulk is the builder for creating many Shoot entities in bulk.
type ShootCreateBulk struct {
	config
	err      error
	builders []*ShootCreate
}

// Save creates the Shoot entities in the database.
func (scb *ShootCreateBulk) Save(ctx context.Context) ([]*Shoot, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Shoot, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShootMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *ShootCreateBulk) SaveX(ctx context.Context) []*Shoot {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *ShootCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *ShootCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
