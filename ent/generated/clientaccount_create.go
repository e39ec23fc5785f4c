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
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/shoot"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// ClientAccountCreate is the builder for creating a ClientAccount entity.
type ClientAccountCreate struct {
	config
	mutation *ClientAccountMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (cac *ClientAccountCreate) SetName(s string) *ClientAccountCreate {
	cac.mutation.SetName(s)
	return cac
}

// SetStatus sets the "status" field.
func (cac *ClientAccountCreate) SetStatus(c clientaccount.Status) *ClientAccountCreate {
	cac.mutation.SetStatus(c)
	return cac
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cac *ClientAccountCreate) SetNillableStatus(c *clientaccount.Status) *ClientAccountCreate {
	if c != nil {
		cac.SetStatus(*c)
	}
	return cac
}

// SetAssets sets the "assets" field.
func (cac *ClientAccountCreate) SetAssets(m map[string]string) *ClientAccountCreate {
	cac.mutation.SetAssets(m)
	return cac
}

// SetCreatedAt sets the "created_at" field.
func (cac *ClientAccountCreate) SetCreatedAt(t time.Time) *ClientAccountCreate {
	cac.mutation.SetCreatedAt(t)
	return cac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cac *ClientAccountCreate) SetNillableCreatedAt(t *time.Time) *ClientAccountCreate {
	if t != nil {
		cac.SetCreatedAt(*t)
	}
	return cac
}

// SetUpdatedAt sets the "updated_at" field.
func (cac *ClientAccountCreate) SetUpdatedAt(t time.Time) *ClientAccountCreate {
	cac.mutation.SetUpdatedAt(t)
	return cac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cac *ClientAccountCreate) SetNillableUpdatedAt(t *time.Time) *ClientAccountCreate {
	if t != nil {
		cac.SetUpdatedAt(*t)
	}
	return cac
}

// SetID sets the "id" field.
func (cac *ClientAccountCreate) SetID(u uuid.UUID) *ClientAccountCreate {
	cac.mutation.SetID(u)
	return cac
}

// SetNillableID sets the "id" field if the given value is not nil.
func (cac *ClientAccountCreate) SetNillableID(u *uuid.UUID) *ClientAccountCreate {
	if u != nil {
		cac.SetID(*u)
	}
	return cac
}

// AddCycleIDs adds the "cycles" edge to the Cycle entity by IDs.
func (cac *ClientAccountCreate) AddCycleIDs(ids ...uuid.UUID) *ClientAccountCreate {
	cac.mutation.AddCycleIDs(ids...)
	return cac
}

// AddCycles adds the "cycles" edges to the Cycle entity.
func (cac *ClientAccountCreate) AddCycles(c ...*Cycle) *ClientAccountCreate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cac.AddCycleIDs(ids...)
}

// AddShootIDs adds the "shoots" edge to the Shoot entity by IDs.
func (cac *ClientAccountCreate) AddShootIDs(ids ...uuid.UUID) *ClientAccountCreate {
	cac.mutation.AddShootIDs(ids...)
	return cac
}

// AddShoots adds the "shoots" edges to the Shoot entity.
func (cac *ClientAccountCreate) AddShoots(s ...*Shoot) *ClientAccountCreate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return cac.AddShootIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the TaskTemplate entity by IDs.
func (cac *ClientAccountCreate) AddTemplateIDs(ids ...uuid.UUID) *ClientAccountCreate {
	cac.mutation.AddTemplateIDs(ids...)
	return cac
}

// AddTemplates adds the "templates" edges to the TaskTemplate entity.
func (cac *ClientAccountCreate) AddTemplates(t ...*TaskTemplate) *ClientAccountCreate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cac.AddTemplateIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the ClientTaskAssignment entity by IDs.
func (cac *ClientAccountCreate) AddAssignmentIDs(ids ...uuid.UUID) *ClientAccountCreate {
	cac.mutation.AddAssignmentIDs(ids...)
	return cac
}

// AddAssignments adds the "assignments" edges to the ClientTaskAssignment entity.
func (cac *ClientAccountCreate) AddAssignments(c ...*ClientTaskAssignment) *ClientAccountCreate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cac.AddAssignmentIDs(ids...)
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by IDs.
func (cac *ClientAccountCreate) AddContextEntryIDs(ids ...uuid.UUID) *ClientAccountCreate {
	cac.mutation.AddContextEntryIDs(ids...)
	return cac
}

// AddContextEntries adds the "context_entries" edges to the ContextEntry entity.
func (cac *ClientAccountCreate) AddContextEntries(c ...*ContextEntry) *ClientAccountCreate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cac.AddContextEntryIDs(ids...)
}

// Mutation returns the ClientAccountMutation object of the builder.
func (cac *ClientAccountCreate) Mutation() *ClientAccountMutation {
	return cac.mutation
}

// Save creates the ClientAccount in the database.
func (cac *ClientAccountCreate) Save(ctx context.Context) (*ClientAccount, error) {
	cac.defaults()
	return withHooks(ctx, cac.sqlSave, cac.mutation, cac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cac *ClientAccountCreate) SaveX(ctx context.Context) *ClientAccount {
	v, err := cac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cac *ClientAccountCreate) Exec(ctx context.Context) error {
	_, err := cac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cac *ClientAccountCreate) ExecX(ctx context.Context) {
	if err := cac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cac *ClientAccountCreate) defaults() {
	if _, ok := cac.mutation.Status(); !ok {
		v := clientaccount.DefaultStatus
		cac.mutation.SetStatus(v)
	}
	if _, ok := cac.mutation.Assets(); !ok {
		v := clientaccount.DefaultAssets
		cac.mutation.SetAssets(v)
	}
	if _, ok := cac.mutation.CreatedAt(); !ok {
		v := clientaccount.DefaultCreatedAt()
		cac.mutation.SetCreatedAt(v)
	}
	if _, ok := cac.mutation.UpdatedAt(); !ok {
		v := clientaccount.DefaultUpdatedAt()
		cac.mutation.SetUpdatedAt(v)
	}
	if _, ok := cac.mutation.ID(); !ok {
		v := clientaccount.DefaultID()
		cac.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cac *ClientAccountCreate) check() error {
	if _, ok := cac.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`generated: missing required field "ClientAccount.name"`)}
	}
	if v, ok := cac.mutation.Name(); ok {
		if err := clientaccount.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "ClientAccount.name": %w`, err)}
		}
	}
	if _, ok := cac.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "ClientAccount.status"`)}
	}
	if v, ok := cac.mutation.Status(); ok {
		if err := clientaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "ClientAccount.status": %w`, err)}
		}
	}
	if _, ok := cac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "ClientAccount.created_at"`)}
	}
	if _, ok := cac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "ClientAccount.updated_at"`)}
	}
	return nil
}

func (cac *ClientAccountCreate) sqlSave(ctx context.Context) (*ClientAccount, error) {
	if err := cac.check(); err != nil {
		return nil, err
	}
	_node, _spec := cac.createSpec()
	if err := sqlgraph.CreateNode(ctx, cac.driver, _spec); err != nil {
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
	cac.mutation.id = &_node.ID
	cac.mutation.done = true
	return _node, nil
}

func (cac *ClientAccountCreate) createSpec() (*ClientAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientAccount{config: cac.config}
		_spec = sqlgraph.NewCreateSpec(clientaccount.Table, sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID))
	)
	if id, ok := cac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := cac.mutation.Name(); ok {
		_spec.SetField(clientaccount.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := cac.mutation.Status(); ok {
		_spec.SetField(clientaccount.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := cac.mutation.Assets(); ok {
		_spec.SetField(clientaccount.FieldAssets, field.TypeJSON, value)
		_node.Assets = value
	}
	if value, ok := cac.mutation.CreatedAt(); ok {
		_spec.SetField(clientaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cac.mutation.UpdatedAt(); ok {
		_spec.SetField(clientaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := cac.mutation.CyclesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientaccount.CyclesTable,
			Columns: []string{clientaccount.CyclesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cac.mutation.ShootsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientaccount.ShootsTable,
			Columns: []string{clientaccount.ShootsColumn},
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
	if nodes := cac.mutation.TemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientaccount.TemplatesTable,
			Columns: []string{clientaccount.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasktemplate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cac.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientaccount.AssignmentsTable,
			Columns: []string{clientaccount.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clienttaskassignment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cac.mutation.ContextEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientaccount.ContextEntriesTable,
			Columns: []string{clientaccount.ContextEntriesColumn},
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

// ClientAccountCreateBulk is the builder for creating many ClientAccount entities in bulk.
type ClientAccountCreateBulk struct {
	config
	err      error
	builders []*ClientAccountCreate
}

// Save creates the ClientAccount entities in the database.
func (cacb *ClientAccountCreateBulk) Save(ctx context.Context) ([]*ClientAccount, error) {
	if cacb.err != nil {
		return nil, cacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cacb.builders))
	nodes := make([]*ClientAccount, len(cacb.builders))
	mutators := make([]Mutator, len(cacb.builders))
	for i := range cacb.builders {
		func(i int, root context.Context) {
			builder := cacb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientAccountMutation)
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
					_, err = mutators[i+1].Mutate(root, cacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cacb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cacb *ClientAccountCreateBulk) SaveX(ctx context.Context) []*ClientAccount {
	v, err := cacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cacb *ClientAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := cacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cacb *ClientAccountCreateBulk) ExecX(ctx context.Context) {
	if err := cacb.Exec(ctx); err != nil {
		panic(err)
	}
}
