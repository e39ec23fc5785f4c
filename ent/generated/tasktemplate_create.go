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
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// TaskTemplateCreate is the builder for creating a TaskTemplate entity.
type TaskTemplateCreate struct {
	config
	mutation *TaskTemplateMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (ttc *TaskTemplateCreate) SetClientID(u uuid.UUID) *TaskTemplateCreate {
	ttc.mutation.SetClientID(u)
	return ttc
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (ttc *TaskTemplateCreate) SetNillableClientID(u *uuid.UUID) *TaskTemplateCreate {
	if u != nil {
		ttc.SetClientID(*u)
	}
	return ttc
}

// SetParentType sets the "parent_type" field.
func (ttc *TaskTemplateCreate) SetParentType(tt tasktemplate.ParentType) *TaskTemplateCreate {
	ttc.mutation.SetParentType(tt)
	return ttc
}

// SetTitle sets the "title" field.
func (ttc *TaskTemplateCreate) SetTitle(s string) *TaskTemplateCreate {
	ttc.mutation.SetTitle(s)
	return ttc
}

// SetRole sets the "role" field.
func (ttc *TaskTemplateCreate) SetRole(t tasktemplate.Role) *TaskTemplateCreate {
	ttc.mutation.SetRole(t)
	return ttc
}

// SetSortOrder sets the "sort_order" field.
func (ttc *TaskTemplateCreate) SetSortOrder(i int) *TaskTemplateCreate {
	ttc.mutation.SetSortOrder(i)
	return ttc
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (ttc *TaskTemplateCreate) SetNillableSortOrder(i *int) *TaskTemplateCreate {
	if i != nil {
		ttc.SetSortOrder(*i)
	}
	return ttc
}

// SetDaysOffset sets the "days_offset" field.
func (ttc *TaskTemplateCreate) SetDaysOffset(i int) *TaskTemplateCreate {
	ttc.mutation.SetDaysOffset(i)
	return ttc
}

// SetNillableDaysOffset sets the "days_offset" field if the given value is not nil.
func (ttc *TaskTemplateCreate) SetNillableDaysOffset(i *int) *TaskTemplateCreate {
	if i != nil {
		ttc.SetDaysOffset(*i)
	}
	return ttc
}

// SetIsActive sets the "is_active" field.
func (ttc *TaskTemplateCreate) SetIsActive(b bool) *TaskTemplateCreate {
	ttc.mutation.SetIsActive(b)
	return ttc
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (ttc *TaskTemplateCreate) SetNillableIsActive(b *bool) *TaskTemplateCreate {
	if b != nil {
		ttc.SetIsActive(*b)
	}
	return ttc
}

// SetCreatedAt sets the "created_at" field.
func (ttc *TaskTemplateCreate) SetCreatedAt(t time.Time) *TaskTemplateCreate {
	ttc.mutation.SetCreatedAt(t)
	return ttc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ttc *TaskTemplateCreate) SetNillableCreatedAt(t *time.Time) *TaskTemplateCreate {
	if t != nil {
		ttc.SetCreatedAt(*t)
	}
	return ttc
}

// SetUpdatedAt sets the "updated_at" field.
func (ttc *TaskTemplateCreate) SetUpdatedAt(t time.Time) *TaskTemplateCreate {
	ttc.mutation.SetUpdatedAt(t)
	return ttc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ttc *TaskTemplateCreate) SetNillableUpdatedAt(t *time.Time) *TaskTemplateCreate {
	if t != nil {
		ttc.SetUpdatedAt(*t)
	}
	return ttc
}

// SetID sets the "id" field.
func (ttc *TaskTemplateCreate) SetID(u uuid.UUID) *TaskTemplateCreate {
	ttc.mutation.SetID(u)
	return ttc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ttc *TaskTemplateCreate) SetNillableID(u *uuid.UUID) *TaskTemplateCreate {
	if u != nil {
		ttc.SetID(*u)
	}
	return ttc
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (ttc *TaskTemplateCreate) SetClient(c *ClientAccount) *TaskTemplateCreate {
	return ttc.SetClientID(c.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the ClientTaskAssignment entity by IDs.
func (ttc *TaskTemplateCreate) AddAssignmentIDs(ids ...uuid.UUID) *TaskTemplateCreate {
	ttc.mutation.AddAssignmentIDs(ids...)
	return ttc
}

// AddAssignments adds the "assignments" edges to the ClientTaskAssignment entity.
func (ttc *TaskTemplateCreate) AddAssignments(c ...*ClientTaskAssignment) *TaskTemplateCreate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ttc.AddAssignmentIDs(ids...)
}

// Mutation returns the TaskTemplateMutation object of the builder.
func (ttc *TaskTemplateCreate) Mutation() *TaskTemplateMutation {
	return ttc.mutation
}

// Save creates the TaskTemplate in the database.
func (ttc *TaskTemplateCreate) Save(ctx context.Context) (*TaskTemplate, error) {
	ttc.defaults()
	return withHooks(ctx, ttc.sqlSave, ttc.mutation, ttc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ttc *TaskTemplateCreate) SaveX(ctx context.Context) *TaskTemplate {
	v, err := ttc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ttc *TaskTemplateCreate) Exec(ctx context.Context) error {
	_, err := ttc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttc *TaskTemplateCreate) ExecX(ctx context.Context) {
	if err := ttc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ttc *TaskTemplateCreate) defaults() {
	if _, ok := ttc.mutation.SortOrder(); !ok {
		v := tasktemplate.DefaultSortOrder
		ttc.mutation.SetSortOrder(v)
	}
	if _, ok := ttc.mutation.DaysOffset(); !ok {
		v := tasktemplate.DefaultDaysOffset
		ttc.mutation.SetDaysOffset(v)
	}
	if _, ok := ttc.mutation.IsActive(); !ok {
		v := tasktemplate.DefaultIsActive
		ttc.mutation.SetIsActive(v)
	}
	if _, ok := ttc.mutation.CreatedAt(); !ok {
		v := tasktemplate.DefaultCreatedAt()
		ttc.mutation.SetCreatedAt(v)
	}
	if _, ok := ttc.mutation.UpdatedAt(); !ok {
		v := tasktemplate.DefaultUpdatedAt()
		ttc.mutation.SetUpdatedAt(v)
	}
	if _, ok := ttc.mutation.ID(); !ok {
		v := tasktemplate.DefaultID()
		ttc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ttc *TaskTemplateCreate) check() error {
	if _, ok := ttc.mutation.ParentType(); !ok {
		return &ValidationError{Name: "parent_type", err: errors.New(`generated: missing required field "TaskTemplate.parent_type"`)}
	}
	if v, ok := ttc.mutation.ParentType(); ok {
		if err := tasktemplate.ParentTypeValidator(v); err != nil {
			return &ValidationError{Name: "parent_type", err: fmt.Errorf(`generated: validator failed for field "TaskTemplate.parent_type": %w`, err)}
		}
	}
	if _, ok := ttc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`generated: missing required field "TaskTemplate.title"`)}
	}
	if v, ok := ttc.mutation.Title(); ok {
		if err := tasktemplate.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`generated: validator failed for field "TaskTemplate.title": %w`, err)}
		}
	}
	if _, ok := ttc.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`generated: missing required field "TaskTemplate.role"`)}
	}
	if v, ok := ttc.mutation.Role(); ok {
		if err := tasktemplate.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`generated: validator failed for field "TaskTemplate.role": %w`, err)}
		}
	}
	if _, ok := ttc.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`generated: missing required field "TaskTemplate.sort_order"`)}
	}
	if _, ok := ttc.mutation.DaysOffset(); !ok {
		return &ValidationError{Name: "days_offset", err: errors.New(`generated: missing required field "TaskTemplate.days_offset"`)}
	}
	if _, ok := ttc.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`generated: missing required field "TaskTemplate.is_active"`)}
	}
	if _, ok := ttc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "TaskTemplate.created_at"`)}
	}
	if _, ok := ttc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "TaskTemplate.updated_at"`)}
	}
	return nil
}

func (ttc *TaskTemplateCreate) sqlSave(ctx context.Context) (*TaskTemplate, error) {
	if err := ttc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ttc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ttc.driver, _spec); err != nil {
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
	ttc.mutation.id = &_node.ID
	ttc.mutation.done = true
	return _node, nil
}

func (ttc *TaskTemplateCreate) createSpec() (*TaskTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskTemplate{config: ttc.config}
		_spec = sqlgraph.NewCreateSpec(tasktemplate.Table, sqlgraph.NewFieldSpec(tasktemplate.FieldID, field.TypeUUID))
	)
	if id, ok := ttc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ttc.mutation.ParentType(); ok {
		_spec.SetField(tasktemplate.FieldParentType, field.TypeEnum, value)
		_node.ParentType = value
	}
	if value, ok := ttc.mutation.Title(); ok {
		_spec.SetField(tasktemplate.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := ttc.mutation.Role(); ok {
		_spec.SetField(tasktemplate.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := ttc.mutation.SortOrder(); ok {
		_spec.SetField(tasktemplate.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := ttc.mutation.DaysOffset(); ok {
		_spec.SetField(tasktemplate.FieldDaysOffset, field.TypeInt, value)
		_node.DaysOffset = value
	}
	if value, ok := ttc.mutation.IsActive(); ok {
		_spec.SetField(tasktemplate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := ttc.mutation.CreatedAt(); ok {
		_spec.SetField(tasktemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ttc.mutation.UpdatedAt(); ok {
		_spec.SetField(tasktemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ttc.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tasktemplate.ClientTable,
			Columns: []string{tasktemplate.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClientID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ttc.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tasktemplate.AssignmentsTable,
			Columns: []string{tasktemplate.AssignmentsColumn},
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
	return _node, _spec
}

// TaskTemplateCreateBulk is the builder for creating many TaskTemplate entities in bulk.
type TaskTemplateCreateBulk struct {
	config
	err      error
	builders []*TaskTemplateCreate
}

// Save creates the TaskTemplate entities in the database.
func (ttcb *TaskTemplateCreateBulk) Save(ctx context.Context) ([]*TaskTemplate, error) {
	if ttcb.err != nil {
		return nil, ttcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ttcb.builders))
	nodes := make([]*TaskTemplate, len(ttcb.builders))
	mutators := make([]Mutator, len(ttcb.builders))
	for i := range ttcb.builders {
		func(i int, root context.Context) {
			builder := ttcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskTemplateMutation)
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
					_, err = mutators[i+1].Mutate(root, ttcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ttcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ttcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ttcb *TaskTemplateCreateBulk) SaveX(ctx context.Context) []*TaskTemplate {
	v, err := ttcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ttcb *TaskTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := ttcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttcb *TaskTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := ttcb.Exec(ctx); err != nil {
		panic(err)
	}
}
