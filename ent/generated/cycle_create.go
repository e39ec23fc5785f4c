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
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/shoot"
)

// CycleCreate is the builder for creating a Cycle entity.
type CycleCreate struct {
	config
	mutation *CycleMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (cc *CycleCreate) SetClientID(u uuid.UUID) *CycleCreate {
	cc.mutation.SetClientID(u)
	return cc
}

// SetMonth sets the "month" field.
func (cc *CycleCreate) SetMonth(t time.Time) *CycleCreate {
	cc.mutation.SetMonth(t)
	return cc
}

// SetStatus sets the "status" field.
func (cc *CycleCreate) SetStatus(c cycle.Status) *CycleCreate {
	cc.mutation.SetStatus(c)
	return cc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cc *CycleCreate) SetNillableStatus(c *cycle.Status) *CycleCreate {
	if c != nil {
		cc.SetStatus(*c)
	}
	return cc
}

// SetCreatedAt sets the "created_at" field.
func (cc *CycleCreate) SetCreatedAt(t time.Time) *CycleCreate {
	cc.mutation.SetCreatedAt(t)
	return cc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cc *CycleCreate) SetNillableCreatedAt(t *time.Time) *CycleCreate {
	if t != nil {
		cc.SetCreatedAt(*t)
	}
	return cc
}

// SetUpdatedAt sets the "updated_at" field.
func (cc *CycleCreate) SetUpdatedAt(t time.Time) *CycleCreate {
	cc.mutation.SetUpdatedAt(t)
	return cc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cc *CycleCreate) SetNillableUpdatedAt(t *time.Time) *CycleCreate {
	if t != nil {
		cc.SetUpdatedAt(*t)
	}
	return cc
}

// SetID sets the "id" field.
func (cc *CycleCreate) SetID(u uuid.UUID) *CycleCreate {
	cc.mutation.SetID(u)
	return cc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (cc *CycleCreate) SetNillableID(u *uuid.UUID) *CycleCreate {
	if u != nil {
		cc.SetID(*u)
	}
	return cc
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (cc *CycleCreate) SetClient(c *ClientAccount) *CycleCreate {
	return cc.SetClientID(c.ID)
}

// AddShootIDs adds the "shoots" edge to the Shoot entity by IDs.
func (cc *CycleCreate) AddShootIDs(ids ...uuid.UUID) *CycleCreate {
	cc.mutation.AddShootIDs(ids...)
	return cc
}

// AddShoots adds the "shoots" edges to the Shoot entity.
func (cc *CycleCreate) AddShoots(s ...*Shoot) *CycleCreate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return cc.AddShootIDs(ids...)
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by IDs.
func (cc *CycleCreate) AddContextEntryIDs(ids ...uuid.UUID) *CycleCreate {
	cc.mutation.AddContextEntryIDs(ids...)
	return cc
}

// AddContextEntries adds the "context_entries" edges to the ContextEntry entity.
func (cc *CycleCreate) AddContextEntries(c ...*ContextEntry) *CycleCreate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cc.AddContextEntryIDs(ids...)
}

// Mutation returns the CycleMutation object of the builder.
func (cc *CycleCreate) Mutation() *CycleMutation {
	return cc.mutation
}

// Save creates the Cycle in the database.
func (cc *CycleCreate) Save(ctx context.Context) (*Cycle, error) {
	cc.defaults()
	return withHooks(ctx, cc.sqlSave, cc.mutation, cc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cc *CycleCreate) SaveX(ctx context.Context) *Cycle {
	v, err := cc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cc *CycleCreate) Exec(ctx context.Context) error {
	_, err := cc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cc *CycleCreate) ExecX(ctx context.Context) {
	if err := cc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cc *CycleCreate) defaults() {
	if _, ok := cc.mutation.Status(); !ok {
		v := cycle.DefaultStatus
		cc.mutation.SetStatus(v)
	}
	if _, ok := cc.mutation.CreatedAt(); !ok {
		v := cycle.DefaultCreatedAt()
		cc.mutation.SetCreatedAt(v)
	}
	if _, ok := cc.mutation.UpdatedAt(); !ok {
		v := cycle.DefaultUpdatedAt()
		cc.mutation.SetUpdatedAt(v)
	}
	if _, ok := cc.mutation.ID(); !ok {
		v := cycle.DefaultID()
		cc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cc *CycleCreate) check() error {
	if _, ok := cc.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`generated: missing required field "Cycle.client_id"`)}
	}
	if _, ok := cc.mutation.Month(); !ok {
		return &ValidationError{Name: "month", err: errors.New(`generated: missing required field "Cycle.month"`)}
	}
	if _, ok := cc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "Cycle.status"`)}
	}
	if v, ok := cc.mutation.Status(); ok {
		if err := cycle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Cycle.status": %w`, err)}
		}
	}
	if _, ok := cc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Cycle.created_at"`)}
	}
	if _, ok := cc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Cycle.updated_at"`)}
	}
	if len(cc.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`generated: missing required edge "Cycle.client"`)}
	}
	return nil
}

func (cc *CycleCreate) sqlSave(ctx context.Context) (*Cycle, error) {
	if err := cc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cc.driver, _spec); err != nil {
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
	cc.mutation.id = &_node.ID
	cc.mutation.done = true
	return _node, nil
}

func (cc *CycleCreate) createSpec() (*Cycle, *sqlgraph.CreateSpec) {
	var (
		_node = &Cycle{config: cc.config}
		_spec = sqlgraph.NewCreateSpec(cycle.Table, sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID))
	)
	if id, ok := cc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := cc.mutation.Month(); ok {
		_spec.SetField(cycle.FieldMonth, field.TypeTime, value)
		_node.Month = value
	}
	if value, ok := cc.mutation.Status(); ok {
		_spec.SetField(cycle.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := cc.mutation.CreatedAt(); ok {
		_spec.SetField(cycle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cc.mutation.UpdatedAt(); ok {
		_spec.SetField(cycle.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := cc.mutation.ClientIDs(); len(nodes) > 0 {
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
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cc.mutation.ShootsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cc.mutation.ContextEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CycleCreateBulk is the builder for creating many Cycle entities in bulk.
type CycleCreateBulk struct {
	config
	err      error
	builders []*CycleCreate
}

// Save creates the Cycle entities in the database.
func (ccb *CycleCreateBulk) Save(ctx context.Context) ([]*Cycle, error) {
	if ccb.err != nil {
		return nil, ccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ccb.builders))
	nodes := make([]*Cycle, len(ccb.builders))
	mutators := make([]Mutator, len(ccb.builders))
	for i := range ccb.builders {
		func(i int, root context.Context) {
			builder := ccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CycleMutation)
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
					_, err = mutators[i+1].Mutate(root, ccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ccb *CycleCreateBulk) SaveX(ctx context.Context) []*Cycle {
	v, err := ccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ccb *CycleCreateBulk) Exec(ctx context.Context) error {
	_, err := ccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccb *CycleCreateBulk) ExecX(ctx context.Context) {
	if err := ccb.Exec(ctx); err != nil {
		panic(err)
	}
}
