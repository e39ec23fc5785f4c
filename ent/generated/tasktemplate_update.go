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
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// TaskTemplateUpdate is the builder for updating TaskTemplate entities.
type TaskTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *TaskTemplateMutation
}

// Where appends a list predicates to the TaskTemplateUpdate builder.
func (ttu *TaskTemplateUpdate) Where(ps ...predicate.TaskTemplate) *TaskTemplateUpdate {
	ttu.mutation.Where(ps...)
	return ttu
}

// SetClientID sets the "client_id" field.
func (ttu *TaskTemplateUpdate) SetClientID(u uuid.UUID) *TaskTemplateUpdate {
	ttu.mutation.SetClientID(u)
	return ttu
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (ttu *TaskTemplateUpdate) SetNillableClientID(u *uuid.UUID) *TaskTemplateUpdate {
	if u != nil {
		ttu.SetClientID(*u)
	}
	return ttu
}

// ClearClientID clears the value of the "client_id" field.
func (ttu *TaskTemplateUpdate) ClearClientID() *TaskTemplateUpdate {
	ttu.mutation.ClearClientID()
	return ttu
}

// SetParentType sets the "parent_type" field.
func (ttu *TaskTemplateUpdate) SetParentType(tt tasktemplate.ParentType) *TaskTemplateUpdate {
	ttu.mutation.SetParentType(tt)
	return ttu
}

// SetNillableParentType sets the "parent_type" field if the given value is not nil.
func (ttu *TaskTemplateUpdate) SetNillableParentType(tt *tasktemplate.ParentType) *TaskTemplateUpdate {
	if tt != nil {
		ttu.SetParentType(*tt)
	}
	return ttu
}

// SetTitle sets the "title" field.
func (ttu *TaskTemplateUpdate) SetTitle(s string) *TaskTemplateUpdate {
	ttu.mutation.SetTitle(s)
	return ttu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ttu *TaskTemplateUpdate) SetNillableTitle(s *string) *TaskTemplateUpdate {
	if s != nil {
		ttu.SetTitle(*s)
	}
	return ttu
}

// SetRole sets the "role" field.
func (ttu *TaskTemplateUpdate) SetRole(t tasktemplate.Role) *TaskTemplateUpdate {
	ttu.mutation.SetRole(t)
	return ttu
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (ttu *TaskTemplateUpdate) SetNillableRole(t *tasktemplate.Role) *TaskTemplateUpdate {
	if t != nil {
		ttu.SetRole(*t)
	}
	return ttu
}

// SetSortOrder sets the "sort_order" field.
func (ttu *TaskTemplateUpdate) SetSortOrder(i int) *TaskTemplateUpdate {
	ttu.mutation.ResetSortOrder()
	ttu.mutation.SetSortOrder(i)
	return ttu
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (ttu *TaskTemplateUpdate) SetNillableSortOrder(i *int) *TaskTemplateUpdate {
	if i != nil {
		ttu.SetSortOrder(*i)
	}
	return ttu
}

// AddSortOrder adds i to the "sort_order" field.
func (ttu *TaskTemplateUpdate) AddSortOrder(i int) *TaskTemplateUpdate {
	ttu.mutation.AddSortOrder(i)
	return ttu
}

// SetDaysOffset sets the "days_offset" field.
func (ttu *TaskTemplateUpdate) SetDaysOffset(i int) *TaskTemplateUpdate {
	ttu.mutation.ResetDaysOffset()
	ttu.mutation.SetDaysOffset(i)
	return ttu
}

// SetNillableDaysOffset sets the "days_offset" field if the given value is not nil.
func (ttu *TaskTemplateUpdate) SetNillableDaysOffset(i *int) *TaskTemplateUpdate {
	if i != nil {
		ttu.SetDaysOffset(*i)
	}
	return ttu
}

// AddDaysOffset adds i to the "days_offset" field.
func (ttu *TaskTemplateUpdate) AddDaysOffset(i int) *TaskTemplateUpdate {
	ttu.mutation.AddDaysOffset(i)
	return ttu
}

// SetIsActive sets the "is_active" field.
func (ttu *TaskTemplateUpdate) SetIsActive(b bool) *TaskTemplateUpdate {
	ttu.mutation.SetIsActive(b)
	return ttu
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (ttu *TaskTemplateUpdate) SetNillableIsActive(b *bool) *TaskTemplateUpdate {
	if b != nil {
		ttu.SetIsActive(*b)
	}
	return ttu
}

// SetUpdatedAt sets the "updated_at" field.
func (ttu *TaskTemplateUpdate) SetUpdatedAt(t time.Time) *TaskTemplateUpdate {
	ttu.mutation.SetUpdatedAt(t)
	return ttu
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (ttu *TaskTemplateUpdate) SetClient(c *ClientAccount) *TaskTemplateUpdate {
	return ttu.SetClientID(c.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the ClientTaskAssignment entity by IDs.
func (ttu *TaskTemplateUpdate) AddAssignmentIDs(ids ...uuid.UUID) *TaskTemplateUpdate {
	ttu.mutation.AddAssignmentIDs(ids...)
	return ttu
}

// AddAssignments adds the "assignments" edges to the ClientTaskAssignment entity.
func (ttu *TaskTemplateUpdate) AddAssignments(c ...*ClientTaskAssignment) *TaskTemplateUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ttu.AddAssignmentIDs(ids...)
}

// Mutation returns the TaskTemplateMutation object of the builder.
func (ttu *TaskTemplateUpdate) Mutation() *TaskTemplateMutation {
	return ttu.mutation
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (ttu *TaskTemplateUpdate) ClearClient() *TaskTemplateUpdate {
	ttu.mutation.ClearClient()
	return ttu
}

// ClearAssignments clears all "assignments" edges to the ClientTaskAssignment entity.
func (ttu *TaskTemplateUpdate) ClearAssignments() *TaskTemplateUpdate {
	ttu.mutation.ClearAssignments()
	return ttu
}

// RemoveAssignmentIDs removes the "assignments" edge to ClientTaskAssignment entities by IDs.
func (ttu *TaskTemplateUpdate) RemoveAssignmentIDs(ids ...uuid.UUID) *TaskTemplateUpdate {
	ttu.mutation.RemoveAssignmentIDs(ids...)
	return ttu
}

// RemoveAssignments removes "assignments" edges to ClientTaskAssignment entities.
func (ttu *TaskTemplateUpdate) RemoveAssignments(c ...*ClientTaskAssignment) *TaskTemplateUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ttu.RemoveAssignmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ttu *TaskTemplateUpdate) Save(ctx context.Context) (int, error) {
	ttu.defaults()
	return withHooks(ctx, ttu.sqlSave, ttu.mutation, ttu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ttu *TaskTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := ttu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ttu *TaskTemplateUpdate) Exec(ctx context.Context) error {
	_, err := ttu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttu *TaskTemplateUpdate) ExecX(ctx context.Context) {
	if err := ttu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ttu *TaskTemplateUpdate) defaults() {
	if _, ok := ttu.mutation.UpdatedAt(); !ok {
		v := tasktemplate.UpdateDefaultUpdatedAt()
		ttu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ttu *TaskTemplateUpdate) check() error {
	if v, ok := ttu.mutation.ParentType(); ok {
		if err := tasktemplate.ParentTypeValidator(v); err != nil {
			return &ValidationError{Name: "parent_type", err: fmt.Errorf(`generated: validator failed for field "TaskTemplate.parent_type": %w`, err)}
		}
	}
	if v, ok := ttu.mutation.Title(); ok {
		if err := tasktemplate.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`generated: validator failed for field "TaskTemplate.title": %w`, err)}
		}
	}
	if v, ok := ttu.mutation.Role(); ok {
		if err := tasktemplate.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`generated: validator failed for field "TaskTemplate.role": %w`, err)}
		}
	}
	return nil
}

func (ttu *TaskTemplateUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ttu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasktemplate.Table, tasktemplate.Columns, sqlgraph.NewFieldSpec(tasktemplate.FieldID, field.TypeUUID))
	if ps := ttu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ttu.mutation.ParentType(); ok {
		_spec.SetField(tasktemplate.FieldParentType, field.TypeEnum, value)
	}
	if value, ok := ttu.mutation.Title(); ok {
		_spec.SetField(tasktemplate.FieldTitle, field.TypeString, value)
	}
	if value, ok := ttu.mutation.Role(); ok {
		_spec.SetField(tasktemplate.FieldRole, field.TypeEnum, value)
	}
	if value, ok := ttu.mutation.SortOrder(); ok {
		_spec.SetField(tasktemplate.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := ttu.mutation.AddedSortOrder(); ok {
		_spec.AddField(tasktemplate.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := ttu.mutation.DaysOffset(); ok {
		_spec.SetField(tasktemplate.FieldDaysOffset, field.TypeInt, value)
	}
	if value, ok := ttu.mutation.AddedDaysOffset(); ok {
		_spec.AddField(tasktemplate.FieldDaysOffset, field.TypeInt, value)
	}
	if value, ok := ttu.mutation.IsActive(); ok {
		_spec.SetField(tasktemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := ttu.mutation.UpdatedAt(); ok {
		_spec.SetField(tasktemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if ttu.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ttu.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ttu.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ttu.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !ttu.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ttu.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ttu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ttu.mutation.done = true
	return n, nil
}

// TaskTemplateUpdateOne is the builder for updating a single TaskTemplate entity.
type TaskTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskTemplateMutation
}

// SetClientID sets the "client_id" field.
func (ttuo *TaskTemplateUpdateOne) SetClientID(u uuid.UUID) *TaskTemplateUpdateOne {
	ttuo.mutation.SetClientID(u)
	return ttuo
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (ttuo *TaskTemplateUpdateOne) SetNillableClientID(u *uuid.UUID) *TaskTemplateUpdateOne {
	if u != nil {
		ttuo.SetClientID(*u)
	}
	return ttuo
}

// ClearClientID clears the value of the "client_id" field.
func (ttuo *TaskTemplateUpdateOne) ClearClientID() *TaskTemplateUpdateOne {
	ttuo.mutation.ClearClientID()
	return ttuo
}

// SetParentType sets the "parent_type" field.
func (ttuo *TaskTemplateUpdateOne) SetParentType(tt tasktemplate.ParentType) *TaskTemplateUpdateOne {
	ttuo.mutation.SetParentType(tt)
	return ttuo
}

// SetNillableParentType sets the "parent_type" field if the given value is not nil.
func (ttuo *TaskTemplateUpdateOne) SetNillableParentType(tt *tasktemplate.ParentType) *TaskTemplateUpdateOne {
	if tt != nil {
		ttuo.SetParentType(*tt)
	}
	return ttuo
}

// SetTitle sets the "title" field.
func (ttuo *TaskTemplateUpdateOne) SetTitle(s string) *TaskTemplateUpdateOne {
	ttuo.mutation.SetTitle(s)
	return ttuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ttuo *TaskTemplateUpdateOne) SetNillableTitle(s *string) *TaskTemplateUpdateOne {
	if s != nil {
		ttuo.SetTitle(*s)
	}
	return ttuo
}

// SetRole sets the "role" field.
func (ttuo *TaskTemplateUpdateOne) SetRole(t tasktemplate.Role) *TaskTemplateUpdateOne {
	ttuo.mutation.SetRole(t)
	return ttuo
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (ttuo *TaskTemplateUpdateOne) SetNillableRole(t *tasktemplate.Role) *TaskTemplateUpdateOne {
	if t != nil {
		ttuo.SetRole(*t)
	}
	return ttuo
}

// SetSortOrder sets the "sort_order" field.
func (ttuo *TaskTemplateUpdateOne) SetSortOrder(i int) *TaskTemplateUpdateOne {
	ttuo.mutation.ResetSortOrder()
	ttuo.mutation.SetSortOrder(i)
	return ttuo
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (ttuo *TaskTemplateUpdateOne) SetNillableSortOrder(i *int) *TaskTemplateUpdateOne {
	if i != nil {
		ttuo.SetSortOrder(*i)
	}
	return ttuo
}

// AddSortOrder adds i to the "sort_order" field.
func (ttuo *TaskTemplateUpdateOne) AddSortOrder(i int) *TaskTemplateUpdateOne {
	ttuo.mutation.AddSortOrder(i)
	return ttuo
}

// SetDaysOffset sets the "days_offset" field.
func (ttuo *TaskTemplateUpdateOne) SetDaysOffset(i int) *TaskTemplateUpdateOne {
	ttuo.mutation.ResetDaysOffset()
	ttuo.mutation.SetDaysOffset(i)
	return ttuo
}

// SetNillableDaysOffset sets the "days_offset" field if the given value is not nil.
func (ttuo *TaskTemplateUpdateOne) SetNillableDaysOffset(i *int) *TaskTemplateUpdateOne {
	if i != nil {
		ttuo.SetDaysOffset(*i)
	}
	return ttuo
}

// AddDaysOffset adds i to the "days_offset" field.
func (ttuo *TaskTemplateUpdateOne) AddDaysOffset(i int) *TaskTemplateUpdateOne {
	ttuo.mutation.AddDaysOffset(i)
	return ttuo
}

// SetIsActive sets the "is_active" field.
func (ttuo *TaskTemplateUpdateOne) SetIsActive(b bool) *TaskTemplateUpdateOne {
	ttuo.mutation.SetIsActive(b)
	return ttuo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (ttuo *TaskTemplateUpdateOne) SetNillableIsActive(b *bool) *TaskTemplateUpdateOne {
	if b != nil {
		ttuo.SetIsActive(*b)
	}
	return ttuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ttuo *TaskTemplateUpdateOne) SetUpdatedAt(t time.Time) *TaskTemplateUpdateOne {
	ttuo.mutation.SetUpdatedAt(t)
	return ttuo
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (ttuo *TaskTemplateUpdateOne) SetClient(c *ClientAccount) *TaskTemplateUpdateOne {
	return ttuo.SetClientID(c.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the ClientTaskAssignment entity by IDs.
func (ttuo *TaskTemplateUpdateOne) AddAssignmentIDs(ids ...uuid.UUID) *TaskTemplateUpdateOne {
	ttuo.mutation.AddAssignmentIDs(ids...)
	return ttuo
}

// AddAssignments adds the "assignments" edges to the ClientTaskAssignment entity.
func (ttuo *TaskTemplateUpdateOne) AddAssignments(c ...*ClientTaskAssignment) *TaskTemplateUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ttuo.AddAssignmentIDs(ids...)
}

// Mutation returns the TaskTemplateMutation object of the builder.
func (ttuo *TaskTemplateUpdateOne) Mutation() *TaskTemplateMutation {
	return ttuo.mutation
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (ttuo *TaskTemplateUpdateOne) ClearClient() *TaskTemplateUpdateOne {
	ttuo.mutation.ClearClient()
	return ttuo
}

// ClearAssignments clears all "assignments" edges to the ClientTaskAssignment entity.
func (ttuo *TaskTemplateUpdateOne) ClearAssignments() *TaskTemplateUpdateOne {
	ttuo.mutation.ClearAssignments()
	return ttuo
}

// RemoveAssignmentIDs removes the "assignments" edge to ClientTaskAssignment entities by IDs.
func (ttuo *TaskTemplateUpdateOne) RemoveAssignmentIDs(ids ...uuid.UUID) *TaskTemplateUpdateOne {
	ttuo.mutation.RemoveAssignmentIDs(ids...)
	return ttuo
}

// RemoveAssignments removes "assignments" edges to ClientTaskAssignment entities.
func (ttuo *TaskTemplateUpdateOne) RemoveAssignments(c ...*ClientTaskAssignment) *TaskTemplateUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ttuo.RemoveAssignmentIDs(ids...)
}

// Where appends a list predicates to the TaskTemplateUpdate builder.
func (ttuo *TaskTemplateUpdateOne) Where(ps ...predicate.TaskTemplate) *TaskTemplateUpdateOne {
	ttuo.mutation.Where(ps...)
	return ttuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ttuo *TaskTemplateUpdateOne) Select(field string, fields ...string) *TaskTemplateUpdateOne {
	ttuo.fields = append([]string{field}, fields...)
	return ttuo
}

// Save executes the query and returns the updated TaskTemplate entity.
func (ttuo *TaskTemplateUpdateOne) Save(ctx context.Context) (*TaskTemplate, error) {
	ttuo.defaults()
	return withHooks(ctx, ttuo.sqlSave, ttuo.mutation, ttuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ttuo *TaskTemplateUpdateOne) SaveX(ctx context.Context) *TaskTemplate {
	node, err := ttuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ttuo *TaskTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := ttuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ttuo *TaskTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := ttuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ttuo *TaskTemplateUpdateOne) defaults() {
	if _, ok := ttuo.mutation.UpdatedAt(); !ok {
		v := tasktemplate.UpdateDefaultUpdatedAt()
		ttuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ttuo *TaskTemplateUpdateOne) check() error {
	if v, ok := ttuo.mutation.ParentType(); ok {
		if err := tasktemplate.ParentTypeValidator(v); err != nil {
			return &ValidationError{Name: "parent_type", err: fmt.Errorf(`generated: validator failed for field "TaskTemplate.parent_type": %w`, err)}
		}
	}
	if v, ok := ttuo.mutation.Title(); ok {
		if err := tasktemplate.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`generated: validator failed for field "TaskTemplate.title": %w`, err)}
		}
	}
	if v, ok := ttuo.mutation.Role(); ok {
		if err := tasktemplate.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`generated: validator failed for field "TaskTemplate.role": %w`, err)}
		}
	}
	return nil
}

func (ttuo *TaskTemplateUpdateOne) sqlSave(ctx context.Context) (_node *TaskTemplate, err error) {
	if err := ttuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasktemplate.Table, tasktemplate.Columns, sqlgraph.NewFieldSpec(tasktemplate.FieldID, field.TypeUUID))
	id, ok := ttuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "TaskTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ttuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasktemplate.FieldID)
		for _, f := range fields {
			if !tasktemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != tasktemplate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ttuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ttuo.mutation.ParentType(); ok {
		_spec.SetField(tasktemplate.FieldParentType, field.TypeEnum, value)
	}
	if value, ok := ttuo.mutation.Title(); ok {
		_spec.SetField(tasktemplate.FieldTitle, field.TypeString, value)
	}
	if value, ok := ttuo.mutation.Role(); ok {
		_spec.SetField(tasktemplate.FieldRole, field.TypeEnum, value)
	}
	if value, ok := ttuo.mutation.SortOrder(); ok {
		_spec.SetField(tasktemplate.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := ttuo.mutation.AddedSortOrder(); ok {
		_spec.AddField(tasktemplate.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := ttuo.mutation.DaysOffset(); ok {
		_spec.SetField(tasktemplate.FieldDaysOffset, field.TypeInt, value)
	}
	if value, ok := ttuo.mutation.AddedDaysOffset(); ok {
		_spec.AddField(tasktemplate.FieldDaysOffset, field.TypeInt, value)
	}
	if value, ok := ttuo.mutation.IsActive(); ok {
		_spec.SetField(tasktemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := ttuo.mutation.UpdatedAt(); ok {
		_spec.SetField(tasktemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if ttuo.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ttuo.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ttuo.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ttuo.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !ttuo.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ttuo.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaskTemplate{config: ttuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ttuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ttuo.mutation.done = true
	return _node, nil
}
