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
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// ClientTaskAssignmentCreate is the builder for creating a ClientTaskAssignment entity.
type ClientTaskAssignmentCreate struct {
	config
	mutation *ClientTaskAssignmentMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (ctac *ClientTaskAssignmentCreate) SetClientID(u uuid.UUID) *ClientTaskAssignmentCreate {
	ctac.mutation.SetClientID(u)
	return ctac
}

// SetTemplateID sets the "template_id" field.
func (ctac *ClientTaskAssignmentCreate) SetTemplateID(u uuid.UUID) *ClientTaskAssignmentCreate {
	ctac.mutation.SetTemplateID(u)
	return ctac
}

// SetAssigneeID sets the "assignee_id" field.
func (ctac *ClientTaskAssignmentCreate) SetAssigneeID(u uuid.UUID) *ClientTaskAssignmentCreate {
	ctac.mutation.SetAssigneeID(u)
	return ctac
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (ctac *ClientTaskAssignmentCreate) SetNillableAssigneeID(u *uuid.UUID) *ClientTaskAssignmentCreate {
	if u != nil {
		ctac.SetAssigneeID(*u)
	}
	return ctac
}

// SetDaysOffsetOverride sets the "days_offset_override" field.
func (ctac *ClientTaskAssignmentCreate) SetDaysOffsetOverride(i int) *ClientTaskAssignmentCreate {
	ctac.mutation.SetDaysOffsetOverride(i)
	return ctac
}

// SetNillableDaysOffsetOverride sets the "days_offset_override" field if the given value is not nil.
func (ctac *ClientTaskAssignmentCreate) SetNillableDaysOffsetOverride(i *int) *ClientTaskAssignmentCreate {
	if i != nil {
		ctac.SetDaysOffsetOverride(*i)
	}
	return ctac
}

// SetCreatedAt sets the "created_at" field.
func (ctac *ClientTaskAssignmentCreate) SetCreatedAt(t time.Time) *ClientTaskAssignmentCreate {
	ctac.mutation.SetCreatedAt(t)
	return ctac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ctac *ClientTaskAssignmentCreate) SetNillableCreatedAt(t *time.Time) *ClientTaskAssignmentCreate {
	if t != nil {
		ctac.SetCreatedAt(*t)
	}
	return ctac
}

// SetUpdatedAt sets the "updated_at" field.
func (ctac *ClientTaskAssignmentCreate) SetUpdatedAt(t time.Time) *ClientTaskAssignmentCreate {
	ctac.mutation.SetUpdatedAt(t)
	return ctac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ctac *ClientTaskAssignmentCreate) SetNillableUpdatedAt(t *time.Time) *ClientTaskAssignmentCreate {
	if t != nil {
		ctac.SetUpdatedAt(*t)
	}
	return ctac
}

// SetID sets the "id" field.
func (ctac *ClientTaskAssignmentCreate) SetID(u uuid.UUID) *ClientTaskAssignmentCreate {
	ctac.mutation.SetID(u)
	return ctac
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ctac *ClientTaskAssignmentCreate) SetNillableID(u *uuid.UUID) *ClientTaskAssignmentCreate {
	if u != nil {
		ctac.SetID(*u)
	}
	return ctac
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (ctac *ClientTaskAssignmentCreate) SetClient(c *ClientAccount) *ClientTaskAssignmentCreate {
	return ctac.SetClientID(c.ID)
}

// SetTemplate sets the "template" edge to the TaskTemplate entity.
func (ctac *ClientTaskAssignmentCreate) SetTemplate(t *TaskTemplate) *ClientTaskAssignmentCreate {
	return ctac.SetTemplateID(t.ID)
}

// SetAssignee sets the "assignee" edge to the Profile entity.
func (ctac *ClientTaskAssignmentCreate) SetAssignee(p *Profile) *ClientTaskAssignmentCreate {
	return ctac.SetAssigneeID(p.ID)
}

// Mutation returns the ClientTaskAssignmentMutation object of the builder.
func (ctac *ClientTaskAssignmentCreate) Mutation() *ClientTaskAssignmentMutation {
	return ctac.mutation
}

// Save creates the ClientTaskAssignment in the database.
func (ctac *ClientTaskAssignmentCreate) Save(ctx context.Context) (*ClientTaskAssignment, error) {
	ctac.defaults()
	return withHooks(ctx, ctac.sqlSave, ctac.mutation, ctac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ctac *ClientTaskAssignmentCreate) SaveX(ctx context.Context) *ClientTaskAssignment {
	v, err := ctac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ctac *ClientTaskAssignmentCreate) Exec(ctx context.Context) error {
	_, err := ctac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ctac *ClientTaskAssignmentCreate) ExecX(ctx context.Context) {
	if err := ctac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ctac *ClientTaskAssignmentCreate) defaults() {
	if _, ok := ctac.mutation.CreatedAt(); !ok {
		v := clienttaskassignment.DefaultCreatedAt()
		ctac.mutation.SetCreatedAt(v)
	}
	if _, ok := ctac.mutation.UpdatedAt(); !ok {
		v := clienttaskassignment.DefaultUpdatedAt()
		ctac.mutation.SetUpdatedAt(v)
	}
	if _, ok := ctac.mutation.ID(); !ok {
		v := clienttaskassignment.DefaultID()
		ctac.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ctac *ClientTaskAssignmentCreate) check() error {
	if _, ok := ctac.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`generated: missing required field "ClientTaskAssignment.client_id"`)}
	}
	if _, ok := ctac.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`generated: missing required field "ClientTaskAssignment.template_id"`)}
	}
	if _, ok := ctac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "ClientTaskAssignment.created_at"`)}
	}
	if _, ok := ctac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "ClientTaskAssignment.updated_at"`)}
	}
	if len(ctac.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`generated: missing required edge "ClientTaskAssignment.client"`)}
	}
	if len(ctac.mutation.TemplateIDs()) == 0 {
		return &ValidationError{Name: "template", err: errors.New(`generated: missing required edge "ClientTaskAssignment.template"`)}
	}
	return nil
}

func (ctac *ClientTaskAssignmentCreate) sqlSave(ctx context.Context) (*ClientTaskAssignment, error) {
	if err := ctac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ctac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ctac.driver, _spec); err != nil {
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
	ctac.mutation.id = &_node.ID
	ctac.mutation.done = true
	return _node, nil
}

func (ctac *ClientTaskAssignmentCreate) createSpec() (*ClientTaskAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientTaskAssignment{config: ctac.config}
		_spec = sqlgraph.NewCreateSpec(clienttaskassignment.Table, sqlgraph.NewFieldSpec(clienttaskassignment.FieldID, field.TypeUUID))
	)
	if id, ok := ctac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ctac.mutation.DaysOffsetOverride(); ok {
		_spec.SetField(clienttaskassignment.FieldDaysOffsetOverride, field.TypeInt, value)
		_node.DaysOffsetOverride = &value
	}
	if value, ok := ctac.mutation.CreatedAt(); ok {
		_spec.SetField(clienttaskassignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ctac.mutation.UpdatedAt(); ok {
		_spec.SetField(clienttaskassignment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ctac.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clienttaskassignment.ClientTable,
			Columns: []string{clienttaskassignment.ClientColumn},
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
	if nodes := ctac.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clienttaskassignment.TemplateTable,
			Columns: []string{clienttaskassignment.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasktemplate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TemplateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ctac.mutation.AssigneeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clienttaskassignment.AssigneeTable,
			Columns: []string{clienttaskassignment.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssigneeID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClientTaskAssignmentCreateBulk is the builder for creating many ClientTaskAssignment entities in bulk.
type ClientTaskAssignmentCreateBulk struct {
	config
	err      error
	builders []*ClientTaskAssignmentCreate
}

// Save creates the ClientTaskAssignment entities in the database.
func (ctacb *ClientTaskAssignmentCreateBulk) Save(ctx context.Context) ([]*ClientTaskAssignment, error) {
	if ctacb.err != nil {
		return nil, ctacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ctacb.builders))
	nodes := make([]*ClientTaskAssignment, len(ctacb.builders))
	mutators := make([]Mutator, len(ctacb.builders))
	for i := range ctacb.builders {
		func(i int, root context.Context) {
			builder := ctacb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientTaskAssignmentMutation)
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
					_, err = mutators[i+1].Mutate(root, ctacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ctacb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ctacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ctacb *ClientTaskAssignmentCreateBulk) SaveX(ctx context.Context) []*ClientTaskAssignment {
	v, err := ctacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ctacb *ClientTaskAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := ctacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ctacb *ClientTaskAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := ctacb.Exec(ctx); err != nil {
		panic(err)
	}
}
