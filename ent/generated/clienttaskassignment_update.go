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
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// ClientTaskAssignmentUpdate is the builder for updating ClientTaskAssignment entities.
type ClientTaskAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *ClientTaskAssignmentMutation
}

// Where appends a list predicates to the ClientTaskAssignmentUpdate builder.
func (ctau *ClientTaskAssignmentUpdate) Where(ps ...predicate.ClientTaskAssignment) *ClientTaskAssignmentUpdate {
	ctau.mutation.Where(ps...)
	return ctau
}

// SetClientID sets the "client_id" field.
func (ctau *ClientTaskAssignmentUpdate) SetClientID(u uuid.UUID) *ClientTaskAssignmentUpdate {
	ctau.mutation.SetClientID(u)
	return ctau
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (ctau *ClientTaskAssignmentUpdate) SetNillableClientID(u *uuid.UUID) *ClientTaskAssignmentUpdate {
	if u != nil {
		ctau.SetClientID(*u)
	}
	return ctau
}

// SetTemplateID sets the "template_id" field.
func (ctau *ClientTaskAssignmentUpdate) SetTemplateID(u uuid.UUID) *ClientTaskAssignmentUpdate {
	ctau.mutation.SetTemplateID(u)
	return ctau
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (ctau *ClientTaskAssignmentUpdate) SetNillableTemplateID(u *uuid.UUID) *ClientTaskAssignmentUpdate {
	if u != nil {
		ctau.SetTemplateID(*u)
	}
	return ctau
}

// SetAssigneeID sets the "assignee_id" field.
func (ctau *ClientTaskAssignmentUpdate) SetAssigneeID(u uuid.UUID) *ClientTaskAssignmentUpdate {
	ctau.mutation.SetAssigneeID(u)
	return ctau
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (ctau *ClientTaskAssignmentUpdate) SetNillableAssigneeID(u *uuid.UUID) *ClientTaskAssignmentUpdate {
	if u != nil {
		ctau.SetAssigneeID(*u)
	}
	return ctau
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (ctau *ClientTaskAssignmentUpdate) ClearAssigneeID() *ClientTaskAssignmentUpdate {
	ctau.mutation.ClearAssigneeID()
	return ctau
}

// SetDaysOffsetOverride sets the "days_offset_override" field.
func (ctau *ClientTaskAssignmentUpdate) SetDaysOffsetOverride(i int) *ClientTaskAssignmentUpdate {
	ctau.mutation.ResetDaysOffsetOverride()
	ctau.mutation.SetDaysOffsetOverride(i)
	return ctau
}

// SetNillableDaysOffsetOverride sets the "days_offset_override" field if the given value is not nil.
func (ctau *ClientTaskAssignmentUpdate) SetNillableDaysOffsetOverride(i *int) *ClientTaskAssignmentUpdate {
	if i != nil {
		ctau.SetDaysOffsetOverride(*i)
	}
	return ctau
}

// AddDaysOffsetOverride adds i to the "days_offset_override" field.
func (ctau *ClientTaskAssignmentUpdate) AddDaysOffsetOverride(i int) *ClientTaskAssignmentUpdate {
	ctau.mutation.AddDaysOffsetOverride(i)
	return ctau
}

// ClearDaysOffsetOverride clears the value of the "days_offset_override" field.
func (ctau *ClientTaskAssignmentUpdate) ClearDaysOffsetOverride() *ClientTaskAssignmentUpdate {
	ctau.mutation.ClearDaysOffsetOverride()
	return ctau
}

// SetUpdatedAt sets the "updated_at" field.
func (ctau *ClientTaskAssignmentUpdate) SetUpdatedAt(t time.Time) *ClientTaskAssignmentUpdate {
	ctau.mutation.SetUpdatedAt(t)
	return ctau
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (ctau *ClientTaskAssignmentUpdate) SetClient(c *ClientAccount) *ClientTaskAssignmentUpdate {
	return ctau.SetClientID(c.ID)
}

// SetTemplate sets the "template" edge to the TaskTemplate entity.
func (ctau *ClientTaskAssignmentUpdate) SetTemplate(t *TaskTemplate) *ClientTaskAssignmentUpdate {
	return ctau.SetTemplateID(t.ID)
}

// SetAssignee sets the "assignee" edge to the Profile entity.
func (ctau *ClientTaskAssignmentUpdate) SetAssignee(p *Profile) *ClientTaskAssignmentUpdate {
	return ctau.SetAssigneeID(p.ID)
}

// Mutation returns the ClientTaskAssignmentMutation object of the builder.
func (ctau *ClientTaskAssignmentUpdate) Mutation() *ClientTaskAssignmentMutation {
	return ctau.mutation
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (ctau *ClientTaskAssignmentUpdate) ClearClient() *ClientTaskAssignmentUpdate {
	ctau.mutation.ClearClient()
	return ctau
}

// ClearTemplate clears the "template" edge to the TaskTemplate entity.
func (ctau *ClientTaskAssignmentUpdate) ClearTemplate() *ClientTaskAssignmentUpdate {
	ctau.mutation.ClearTemplate()
	return ctau
}

// ClearAssignee clears the "assignee" edge to the Profile entity.
func (ctau *ClientTaskAssignmentUpdate) ClearAssignee() *ClientTaskAssignmentUpdate {
	ctau.mutation.ClearAssignee()
	return ctau
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ctau *ClientTaskAssignmentUpdate) Save(ctx context.Context) (int, error) {
	ctau.defaults()
	return withHooks(ctx, ctau.sqlSave, ctau.mutation, ctau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ctau *ClientTaskAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := ctau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ctau *ClientTaskAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := ctau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ctau *ClientTaskAssignmentUpdate) ExecX(ctx context.Context) {
	if err := ctau.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ctau *ClientTaskAssignmentUpdate) defaults() {
	if _, ok := ctau.mutation.UpdatedAt(); !ok {
		v := clienttaskassignment.UpdateDefaultUpdatedAt()
		ctau.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ctau *ClientTaskAssignmentUpdate) check() error {
	if ctau.mutation.ClientCleared() && len(ctau.mutation.ClientIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "ClientTaskAssignment.client"`)
	}
	if ctau.mutation.TemplateCleared() && len(ctau.mutation.TemplateIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "ClientTaskAssignment.template"`)
	}
	return nil
}

func (ctau *ClientTaskAssignmentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ctau.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(clienttaskassignment.Table, clienttaskassignment.Columns, sqlgraph.NewFieldSpec(clienttaskassignment.FieldID, field.TypeUUID))
	if ps := ctau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ctau.mutation.DaysOffsetOverride(); ok {
		_spec.SetField(clienttaskassignment.FieldDaysOffsetOverride, field.TypeInt, value)
	}
	if value, ok := ctau.mutation.AddedDaysOffsetOverride(); ok {
		_spec.AddField(clienttaskassignment.FieldDaysOffsetOverride, field.TypeInt, value)
	}
	if ctau.mutation.DaysOffsetOverrideCleared() {
		_spec.ClearField(clienttaskassignment.FieldDaysOffsetOverride, field.TypeInt)
	}
	if value, ok := ctau.mutation.UpdatedAt(); ok {
		_spec.SetField(clienttaskassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if ctau.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ctau.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ctau.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ctau.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ctau.mutation.AssigneeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ctau.mutation.AssigneeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ctau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clienttaskassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ctau.mutation.done = true
	return n, nil
}

// ClientTaskAssignmentUpdateOne is the builder for updating a single ClientTaskAssignment entity.
type ClientTaskAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientTaskAssignmentMutation
}

// SetClientID sets the "client_id" field.
func (ctauo *ClientTaskAssignmentUpdateOne) SetClientID(u uuid.UUID) *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.SetClientID(u)
	return ctauo
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (ctauo *ClientTaskAssignmentUpdateOne) SetNillableClientID(u *uuid.UUID) *ClientTaskAssignmentUpdateOne {
	if u != nil {
		ctauo.SetClientID(*u)
	}
	return ctauo
}

// SetTemplateID sets the "template_id" field.
func (ctauo *ClientTaskAssignmentUpdateOne) SetTemplateID(u uuid.UUID) *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.SetTemplateID(u)
	return ctauo
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (ctauo *ClientTaskAssignmentUpdateOne) SetNillableTemplateID(u *uuid.UUID) *ClientTaskAssignmentUpdateOne {
	if u != nil {
		ctauo.SetTemplateID(*u)
	}
	return ctauo
}

// SetAssigneeID sets the "assignee_id" field.
func (ctauo *ClientTaskAssignmentUpdateOne) SetAssigneeID(u uuid.UUID) *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.SetAssigneeID(u)
	return ctauo
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (ctauo *ClientTaskAssignmentUpdateOne) SetNillableAssigneeID(u *uuid.UUID) *ClientTaskAssignmentUpdateOne {
	if u != nil {
		ctauo.SetAssigneeID(*u)
	}
	return ctauo
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (ctauo *ClientTaskAssignmentUpdateOne) ClearAssigneeID() *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.ClearAssigneeID()
	return ctauo
}

// SetDaysOffsetOverride sets the "days_offset_override" field.
func (ctauo *ClientTaskAssignmentUpdateOne) SetDaysOffsetOverride(i int) *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.ResetDaysOffsetOverride()
	ctauo.mutation.SetDaysOffsetOverride(i)
	return ctauo
}

// SetNillableDaysOffsetOverride sets the "days_offset_override" field if the given value is not nil.
func (ctauo *ClientTaskAssignmentUpdateOne) SetNillableDaysOffsetOverride(i *int) *ClientTaskAssignmentUpdateOne {
	if i != nil {
		ctauo.SetDaysOffsetOverride(*i)
	}
	return ctauo
}

// AddDaysOffsetOverride adds i to the "days_offset_override" field.
func (ctauo *ClientTaskAssignmentUpdateOne) AddDaysOffsetOverride(i int) *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.AddDaysOffsetOverride(i)
	return ctauo
}

// ClearDaysOffsetOverride clears the value of the "days_offset_override" field.
func (ctauo *ClientTaskAssignmentUpdateOne) ClearDaysOffsetOverride() *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.ClearDaysOffsetOverride()
	return ctauo
}

// SetUpdatedAt sets the "updated_at" field.
func (ctauo *ClientTaskAssignmentUpdateOne) SetUpdatedAt(t time.Time) *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.SetUpdatedAt(t)
	return ctauo
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (ctauo *ClientTaskAssignmentUpdateOne) SetClient(c *ClientAccount) *ClientTaskAssignmentUpdateOne {
	return ctauo.SetClientID(c.ID)
}

// SetTemplate sets the "template" edge to the TaskTemplate entity.
func (ctauo *ClientTaskAssignmentUpdateOne) SetTemplate(t *TaskTemplate) *ClientTaskAssignmentUpdateOne {
	return ctauo.SetTemplateID(t.ID)
}

// SetAssignee sets the "assignee" edge to the Profile entity.
func (ctauo *ClientTaskAssignmentUpdateOne) SetAssignee(p *Profile) *ClientTaskAssignmentUpdateOne {
	return ctauo.SetAssigneeID(p.ID)
}

// Mutation returns the ClientTaskAssignmentMutation object of the builder.
func (ctauo *ClientTaskAssignmentUpdateOne) Mutation() *ClientTaskAssignmentMutation {
	return ctauo.mutation
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (ctauo *ClientTaskAssignmentUpdateOne) ClearClient() *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.ClearClient()
	return ctauo
}

// ClearTemplate clears the "template" edge to the TaskTemplate entity.
func (ctauo *ClientTaskAssignmentUpdateOne) ClearTemplate() *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.ClearTemplate()
	return ctauo
}

// ClearAssignee clears the "assignee" edge to the Profile entity.
func (ctauo *ClientTaskAssignmentUpdateOne) ClearAssignee() *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.ClearAssignee()
	return ctauo
}

// Where appends a list predicates to the ClientTaskAssignmentUpdate builder.
func (ctauo *ClientTaskAssignmentUpdateOne) Where(ps ...predicate.ClientTaskAssignment) *ClientTaskAssignmentUpdateOne {
	ctauo.mutation.Where(ps...)
	return ctauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ctauo *ClientTaskAssignmentUpdateOne) Select(field string, fields ...string) *ClientTaskAssignmentUpdateOne {
	ctauo.fields = append([]string{field}, fields...)
	return ctauo
}

// Save executes the query and returns the updated ClientTaskAssignment entity.
func (ctauo *ClientTaskAssignmentUpdateOne) Save(ctx context.Context) (*ClientTaskAssignment, error) {
	ctauo.defaults()
	return withHooks(ctx, ctauo.sqlSave, ctauo.mutation, ctauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ctauo *ClientTaskAssignmentUpdateOne) SaveX(ctx context.Context) *ClientTaskAssignment {
	node, err := ctauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ctauo *ClientTaskAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := ctauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ctauo *ClientTaskAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := ctauo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ctauo *ClientTaskAssignmentUpdateOne) defaults() {
	if _, ok := ctauo.mutation.UpdatedAt(); !ok {
		v := clienttaskassignment.UpdateDefaultUpdatedAt()
		ctauo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ctauo *ClientTaskAssignmentUpdateOne) check() error {
	if ctauo.mutation.ClientCleared() && len(ctauo.mutation.ClientIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "ClientTaskAssignment.client"`)
	}
	if ctauo.mutation.TemplateCleared() && len(ctauo.mutation.TemplateIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "ClientTaskAssignment.template"`)
	}
	return nil
}

func (ctauo *ClientTaskAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *ClientTaskAssignment, err error) {
	if err := ctauo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clienttaskassignment.Table, clienttaskassignment.Columns, sqlgraph.NewFieldSpec(clienttaskassignment.FieldID, field.TypeUUID))
	id, ok := ctauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "ClientTaskAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ctauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clienttaskassignment.FieldID)
		for _, f := range fields {
			if !clienttaskassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != clienttaskassignment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ctauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ctauo.mutation.DaysOffsetOverride(); ok {
		_spec.SetField(clienttaskassignment.FieldDaysOffsetOverride, field.TypeInt, value)
	}
	if value, ok := ctauo.mutation.AddedDaysOffsetOverride(); ok {
		_spec.AddField(clienttaskassignment.FieldDaysOffsetOverride, field.TypeInt, value)
	}
	if ctauo.mutation.DaysOffsetOverrideCleared() {
		_spec.ClearField(clienttaskassignment.FieldDaysOffsetOverride, field.TypeInt)
	}
	if value, ok := ctauo.mutation.UpdatedAt(); ok {
		_spec.SetField(clienttaskassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if ctauo.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ctauo.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ctauo.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ctauo.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ctauo.mutation.AssigneeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ctauo.mutation.AssigneeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClientTaskAssignment{config: ctauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ctauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clienttaskassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ctauo.mutation.done = true
	return _node, nil
}
