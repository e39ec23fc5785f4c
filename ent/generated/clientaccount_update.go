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
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/shoot"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// ClientAccountUpdate is the builder for updating ClientAccount entities.
type ClientAccountUpdate struct {
	config
	hooks    []Hook
	mutation *ClientAccountMutation
}

// Where appends a list predicates to the ClientAccountUpdate builder.
func (cau *ClientAccountUpdate) Where(ps ...predicate.ClientAccount) *ClientAccountUpdate {
	cau.mutation.Where(ps...)
	return cau
}

// SetName sets the "name" field.
func (cau *ClientAccountUpdate) SetName(s string) *ClientAccountUpdate {
	cau.mutation.SetName(s)
	return cau
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cau *ClientAccountUpdate) SetNillableName(s *string) *ClientAccountUpdate {
	if s != nil {
		cau.SetName(*s)
	}
	return cau
}

// SetStatus sets the "status" field.
func (cau *ClientAccountUpdate) SetStatus(c clientaccount.Status) *ClientAccountUpdate {
	cau.mutation.SetStatus(c)
	return cau
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cau *ClientAccountUpdate) SetNillableStatus(c *clientaccount.Status) *ClientAccountUpdate {
	if c != nil {
		cau.SetStatus(*c)
	}
	return cau
}

// SetAssets sets the "assets" field.
func (cau *ClientAccountUpdate) SetAssets(m map[string]string) *ClientAccountUpdate {
	cau.mutation.SetAssets(m)
	return cau
}

// ClearAssets clears the value of the "assets" field.
func (cau *ClientAccountUpdate) ClearAssets() *ClientAccountUpdate {
	cau.mutation.ClearAssets()
	return cau
}

// SetUpdatedAt sets the "updated_at" field.
func (cau *ClientAccountUpdate) SetUpdatedAt(t time.Time) *ClientAccountUpdate {
	cau.mutation.SetUpdatedAt(t)
	return cau
}

// AddCycleIDs adds the "cycles" edge to the Cycle entity by IDs.
func (cau *ClientAccountUpdate) AddCycleIDs(ids ...uuid.UUID) *ClientAccountUpdate {
	cau.mutation.AddCycleIDs(ids...)
	return cau
}

// AddCycles adds the "cycles" edges to the Cycle entity.
func (cau *ClientAccountUpdate) AddCycles(c ...*Cycle) *ClientAccountUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cau.AddCycleIDs(ids...)
}

// AddShootIDs adds the "shoots" edge to the Shoot entity by IDs.
func (cau *ClientAccountUpdate) AddShootIDs(ids ...uuid.UUID) *ClientAccountUpdate {
	cau.mutation.AddShootIDs(ids...)
	return cau
}

// AddShoots adds the "shoots" edges to the Shoot entity.
func (cau *ClientAccountUpdate) AddShoots(s ...*Shoot) *ClientAccountUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return cau.AddShootIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the TaskTemplate entity by IDs.
func (cau *ClientAccountUpdate) AddTemplateIDs(ids ...uuid.UUID) *ClientAccountUpdate {
	cau.mutation.AddTemplateIDs(ids...)
	return cau
}

// AddTemplates adds the "templates" edges to the TaskTemplate entity.
func (cau *ClientAccountUpdate) AddTemplates(t ...*TaskTemplate) *ClientAccountUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cau.AddTemplateIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the ClientTaskAssignment entity by IDs.
func (cau *ClientAccountUpdate) AddAssignmentIDs(ids ...uuid.UUID) *ClientAccountUpdate {
	cau.mutation.AddAssignmentIDs(ids...)
	return cau
}

// AddAssignments adds the "assignments" edges to the ClientTaskAssignment entity.
func (cau *ClientAccountUpdate) AddAssignments(c ...*ClientTaskAssignment) *ClientAccountUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cau.AddAssignmentIDs(ids...)
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by IDs.
func (cau *ClientAccountUpdate) AddContextEntryIDs(ids ...uuid.UUID) *ClientAccountUpdate {
	cau.mutation.AddContextEntryIDs(ids...)
	return cau
}

// AddContextEntries adds the "context_entries" edges to the ContextEntry entity.
func (cau *ClientAccountUpdate) AddContextEntries(c ...*ContextEntry) *ClientAccountUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cau.AddContextEntryIDs(ids...)
}

// Mutation returns the ClientAccountMutation object of the builder.
func (cau *ClientAccountUpdate) Mutation() *ClientAccountMutation {
	return cau.mutation
}

// ClearCycles clears all "cycles" edges to the Cycle entity.
func (cau *ClientAccountUpdate) ClearCycles() *ClientAccountUpdate {
	cau.mutation.ClearCycles()
	return cau
}

// RemoveCycleIDs removes the "cycles" edge to Cycle entities by IDs.
func (cau *ClientAccountUpdate) RemoveCycleIDs(ids ...uuid.UUID) *ClientAccountUpdate {
	cau.mutation.RemoveCycleIDs(ids...)
	return cau
}

// RemoveCycles removes "cycles" edges to Cycle entities.
func (cau *ClientAccountUpdate) RemoveCycles(c ...*Cycle) *ClientAccountUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cau.RemoveCycleIDs(ids...)
}

// ClearShoots clears all "shoots" edges to the Shoot entity.
func (cau *ClientAccountUpdate) ClearShoots() *ClientAccountUpdate {
	cau.mutation.ClearShoots()
	return cau
}

// RemoveShootIDs removes the "shoots" edge to Shoot entities by IDs.
func (cau *ClientAccountUpdate) RemoveShootIDs(ids ...uuid.UUID) *ClientAccountUpdate {
	cau.mutation.RemoveShootIDs(ids...)
	return cau
}

// RemoveShoots removes "shoots" edges to Shoot entities.
func (cau *ClientAccountUpdate) RemoveShoots(s ...*Shoot) *ClientAccountUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return cau.RemoveShootIDs(ids...)
}

// ClearTemplates clears all "templates" edges to the TaskTemplate entity.
func (cau *ClientAccountUpdate) ClearTemplates() *ClientAccountUpdate {
	cau.mutation.ClearTemplates()
	return cau
}

// RemoveTemplateIDs removes the "templates" edge to TaskTemplate entities by IDs.
func (cau *ClientAccountUpdate) RemoveTemplateIDs(ids ...uuid.UUID) *ClientAccountUpdate {
	cau.mutation.RemoveTemplateIDs(ids...)
	return cau
}

// RemoveTemplates removes "templates" edges to TaskTemplate entities.
func (cau *ClientAccountUpdate) RemoveTemplates(t ...*TaskTemplate) *ClientAccountUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cau.RemoveTemplateIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the ClientTaskAssignment entity.
func (cau *ClientAccountUpdate) ClearAssignments() *ClientAccountUpdate {
	cau.mutation.ClearAssignments()
	return cau
}

// RemoveAssignmentIDs removes the "assignments" edge to ClientTaskAssignment entities by IDs.
func (cau *ClientAccountUpdate) RemoveAssignmentIDs(ids ...uuid.UUID) *ClientAccountUpdate {
	cau.mutation.RemoveAssignmentIDs(ids...)
	return cau
}

// RemoveAssignments removes "assignments" edges to ClientTaskAssignment entities.
func (cau *ClientAccountUpdate) RemoveAssignments(c ...*ClientTaskAssignment) *ClientAccountUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cau.RemoveAssignmentIDs(ids...)
}

// ClearContextEntries clears all "context_entries" edges to the ContextEntry entity.
func (cau *ClientAccountUpdate) ClearContextEntries() *ClientAccountUpdate {
	cau.mutation.ClearContextEntries()
	return cau
}

// RemoveContextEntryIDs removes the "context_entries" edge to ContextEntry entities by IDs.
func (cau *ClientAccountUpdate) RemoveContextEntryIDs(ids ...uuid.UUID) *ClientAccountUpdate {
	cau.mutation.RemoveContextEntryIDs(ids...)
	return cau
}

// RemoveContextEntries removes "context_entries" edges to ContextEntry entities.
func (cau *ClientAccountUpdate) RemoveContextEntries(c ...*ContextEntry) *ClientAccountUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cau.RemoveContextEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cau *ClientAccountUpdate) Save(ctx context.Context) (int, error) {
	cau.defaults()
	return withHooks(ctx, cau.sqlSave, cau.mutation, cau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cau *ClientAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := cau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cau *ClientAccountUpdate) Exec(ctx context.Context) error {
	_, err := cau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cau *ClientAccountUpdate) ExecX(ctx context.Context) {
	if err := cau.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cau *ClientAccountUpdate) defaults() {
	if _, ok := cau.mutation.UpdatedAt(); !ok {
		v := clientaccount.UpdateDefaultUpdatedAt()
		cau.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cau *ClientAccountUpdate) check() error {
	if v, ok := cau.mutation.Name(); ok {
		if err := clientaccount.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "ClientAccount.name": %w`, err)}
		}
	}
	if v, ok := cau.mutation.Status(); ok {
		if err := clientaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "ClientAccount.status": %w`, err)}
		}
	}
	return nil
}

func (cau *ClientAccountUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cau.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientaccount.Table, clientaccount.Columns, sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID))
	if ps := cau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cau.mutation.Name(); ok {
		_spec.SetField(clientaccount.FieldName, field.TypeString, value)
	}
	if value, ok := cau.mutation.Status(); ok {
		_spec.SetField(clientaccount.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := cau.mutation.Assets(); ok {
		_spec.SetField(clientaccount.FieldAssets, field.TypeJSON, value)
	}
	if cau.mutation.AssetsCleared() {
		_spec.ClearField(clientaccount.FieldAssets, field.TypeJSON)
	}
	if value, ok := cau.mutation.UpdatedAt(); ok {
		_spec.SetField(clientaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if cau.mutation.CyclesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cau.mutation.RemovedCyclesIDs(); len(nodes) > 0 && !cau.mutation.CyclesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cau.mutation.CyclesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cau.mutation.ShootsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cau.mutation.RemovedShootsIDs(); len(nodes) > 0 && !cau.mutation.ShootsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cau.mutation.ShootsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cau.mutation.TemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cau.mutation.RemovedTemplatesIDs(); len(nodes) > 0 && !cau.mutation.TemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cau.mutation.TemplatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cau.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cau.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !cau.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cau.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cau.mutation.ContextEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cau.mutation.RemovedContextEntriesIDs(); len(nodes) > 0 && !cau.mutation.ContextEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cau.mutation.ContextEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cau.mutation.done = true
	return n, nil
}

// ClientAccountUpdateOne is the builder for updating a single ClientAccount entity.
type ClientAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientAccountMutation
}

// SetName sets the "name" field.
func (cauo *ClientAccountUpdateOne) SetName(s string) *ClientAccountUpdateOne {
	cauo.mutation.SetName(s)
	return cauo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cauo *ClientAccountUpdateOne) SetNillableName(s *string) *ClientAccountUpdateOne {
	if s != nil {
		cauo.SetName(*s)
	}
	return cauo
}

// SetStatus sets the "status" field.
func (cauo *ClientAccountUpdateOne) SetStatus(c clientaccount.Status) *ClientAccountUpdateOne {
	cauo.mutation.SetStatus(c)
	return cauo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cauo *ClientAccountUpdateOne) SetNillableStatus(c *clientaccount.Status) *ClientAccountUpdateOne {
	if c != nil {
		cauo.SetStatus(*c)
	}
	return cauo
}

// SetAssets sets the "assets" field.
func (cauo *ClientAccountUpdateOne) SetAssets(m map[string]string) *ClientAccountUpdateOne {
	cauo.mutation.SetAssets(m)
	return cauo
}

// ClearAssets clears the value of the "assets" field.
func (cauo *ClientAccountUpdateOne) ClearAssets() *ClientAccountUpdateOne {
	cauo.mutation.ClearAssets()
	return cauo
}

// SetUpdatedAt sets the "updated_at" field.
func (cauo *ClientAccountUpdateOne) SetUpdatedAt(t time.Time) *ClientAccountUpdateOne {
	cauo.mutation.SetUpdatedAt(t)
	return cauo
}

// AddCycleIDs adds the "cycles" edge to the Cycle entity by IDs.
func (cauo *ClientAccountUpdateOne) AddCycleIDs(ids ...uuid.UUID) *ClientAccountUpdateOne {
	cauo.mutation.AddCycleIDs(ids...)
	return cauo
}

// AddCycles adds the "cycles" edges to the Cycle entity.
func (cauo *ClientAccountUpdateOne) AddCycles(c ...*Cycle) *ClientAccountUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cauo.AddCycleIDs(ids...)
}

// AddShootIDs adds the "shoots" edge to the Shoot entity by IDs.
func (cauo *ClientAccountUpdateOne) AddShootIDs(ids ...uuid.UUID) *ClientAccountUpdateOne {
	cauo.mutation.AddShootIDs(ids...)
	return cauo
}

// AddShoots adds the "shoots" edges to the Shoot entity.
func (cauo *ClientAccountUpdateOne) AddShoots(s ...*Shoot) *ClientAccountUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return cauo.AddShootIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the TaskTemplate entity by IDs.
func (cauo *ClientAccountUpdateOne) AddTemplateIDs(ids ...uuid.UUID) *ClientAccountUpdateOne {
	cauo.mutation.AddTemplateIDs(ids...)
	return cauo
}

// AddTemplates adds the "templates" edges to the TaskTemplate entity.
func (cauo *ClientAccountUpdateOne) AddTemplates(t ...*TaskTemplate) *ClientAccountUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cauo.AddTemplateIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the ClientTaskAssignment entity by IDs.
func (cauo *ClientAccountUpdateOne) AddAssignmentIDs(ids ...uuid.UUID) *ClientAccountUpdateOne {
	cauo.mutation.AddAssignmentIDs(ids...)
	return cauo
}

// AddAssignments adds the "assignments" edges to the ClientTaskAssignment entity.
func (cauo *ClientAccountUpdateOne) AddAssignments(c ...*ClientTaskAssignment) *ClientAccountUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cauo.AddAssignmentIDs(ids...)
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by IDs.
func (cauo *ClientAccountUpdateOne) AddContextEntryIDs(ids ...uuid.UUID) *ClientAccountUpdateOne {
	cauo.mutation.AddContextEntryIDs(ids...)
	return cauo
}

// AddContextEntries adds the "context_entries" edges to the ContextEntry entity.
func (cauo *ClientAccountUpdateOne) AddContextEntries(c ...*ContextEntry) *ClientAccountUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cauo.AddContextEntryIDs(ids...)
}

// Mutation returns the ClientAccountMutation object of the builder.
func (cauo *ClientAccountUpdateOne) Mutation() *ClientAccountMutation {
	return cauo.mutation
}

// ClearCycles clears all "cycles" edges to the Cycle entity.
func (cauo *ClientAccountUpdateOne) ClearCycles() *ClientAccountUpdateOne {
	cauo.mutation.ClearCycles()
	return cauo
}

// RemoveCycleIDs removes the "cycles" edge to Cycle entities by IDs.
func (cauo *ClientAccountUpdateOne) RemoveCycleIDs(ids ...uuid.UUID) *ClientAccountUpdateOne {
	cauo.mutation.RemoveCycleIDs(ids...)
	return cauo
}

// RemoveCycles removes "cycles" edges to Cycle entities.
func (cauo *ClientAccountUpdateOne) RemoveCycles(c ...*Cycle) *ClientAccountUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cauo.RemoveCycleIDs(ids...)
}

// ClearShoots clears all "shoots" edges to the Shoot entity.
func (cauo *ClientAccountUpdateOne) ClearShoots() *ClientAccountUpdateOne {
	cauo.mutation.ClearShoots()
	return cauo
}

// RemoveShootIDs removes the "shoots" edge to Shoot entities by IDs.
func (cauo *ClientAccountUpdateOne) RemoveShootIDs(ids ...uuid.UUID) *ClientAccountUpdateOne {
	cauo.mutation.RemoveShootIDs(ids...)
	return cauo
}

// RemoveShoots removes "shoots" edges to Shoot entities.
func (cauo *ClientAccountUpdateOne) RemoveShoots(s ...*Shoot) *ClientAccountUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return cauo.RemoveShootIDs(ids...)
}

// ClearTemplates clears all "templates" edges to the TaskTemplate entity.
func (cauo *ClientAccountUpdateOne) ClearTemplates() *ClientAccountUpdateOne {
	cauo.mutation.ClearTemplates()
	return cauo
}

// RemoveTemplateIDs removes the "templates" edge to TaskTemplate entities by IDs.
func (cauo *ClientAccountUpdateOne) RemoveTemplateIDs(ids ...uuid.UUID) *ClientAccountUpdateOne {
	cauo.mutation.RemoveTemplateIDs(ids...)
	return cauo
}

// RemoveTemplates removes "templates" edges to TaskTemplate entities.
func (cauo *ClientAccountUpdateOne) RemoveTemplates(t ...*TaskTemplate) *ClientAccountUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cauo.RemoveTemplateIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the ClientTaskAssignment entity.
func (cauo *ClientAccountUpdateOne) ClearAssignments() *ClientAccountUpdateOne {
	cauo.mutation.ClearAssignments()
	return cauo
}

// RemoveAssignmentIDs removes the "assignments" edge to ClientTaskAssignment entities by IDs.
func (cauo *ClientAccountUpdateOne) RemoveAssignmentIDs(ids ...uuid.UUID) *ClientAccountUpdateOne {
	cauo.mutation.RemoveAssignmentIDs(ids...)
	return cauo
}

// RemoveAssignments removes "assignments" edges to ClientTaskAssignment entities.
func (cauo *ClientAccountUpdateOne) RemoveAssignments(c ...*ClientTaskAssignment) *ClientAccountUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cauo.RemoveAssignmentIDs(ids...)
}

// ClearContextEntries clears all "context_entries" edges to the ContextEntry entity.
func (cauo *ClientAccountUpdateOne) ClearContextEntries() *ClientAccountUpdateOne {
	cauo.mutation.ClearContextEntries()
	return cauo
}

// RemoveContextEntryIDs removes the "context_entries" edge to ContextEntry entities by IDs.
func (cauo *ClientAccountUpdateOne) RemoveContextEntryIDs(ids ...uuid.UUID) *ClientAccountUpdateOne {
	cauo.mutation.RemoveContextEntryIDs(ids...)
	return cauo
}

// RemoveContextEntries removes "context_entries" edges to ContextEntry entities.
func (cauo *ClientAccountUpdateOne) RemoveContextEntries(c ...*ContextEntry) *ClientAccountUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cauo.RemoveContextEntryIDs(ids...)
}

// Where appends a list predicates to the ClientAccountUpdate builder.
func (cauo *ClientAccountUpdateOne) Where(ps ...predicate.ClientAccount) *ClientAccountUpdateOne {
	cauo.mutation.Where(ps...)
	return cauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cauo *ClientAccountUpdateOne) Select(field string, fields ...string) *ClientAccountUpdateOne {
	cauo.fields = append([]string{field}, fields...)
	return cauo
}

// Save executes the query and returns the updated ClientAccount entity.
func (cauo *ClientAccountUpdateOne) Save(ctx context.Context) (*ClientAccount, error) {
	cauo.defaults()
	return withHooks(ctx, cauo.sqlSave, cauo.mutation, cauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cauo *ClientAccountUpdateOne) SaveX(ctx context.Context) *ClientAccount {
	node, err := cauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cauo *ClientAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := cauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cauo *ClientAccountUpdateOne) ExecX(ctx context.Context) {
	if err := cauo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cauo *ClientAccountUpdateOne) defaults() {
	if _, ok := cauo.mutation.UpdatedAt(); !ok {
		v := clientaccount.UpdateDefaultUpdatedAt()
		cauo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cauo *ClientAccountUpdateOne) check() error {
	if v, ok := cauo.mutation.Name(); ok {
		if err := clientaccount.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "ClientAccount.name": %w`, err)}
		}
	}
	if v, ok := cauo.mutation.Status(); ok {
		if err := clientaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "ClientAccount.status": %w`, err)}
		}
	}
	return nil
}

func (cauo *ClientAccountUpdateOne) sqlSave(ctx context.Context) (_node *ClientAccount, err error) {
	if err := cauo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientaccount.Table, clientaccount.Columns, sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID))
	id, ok := cauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "ClientAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientaccount.FieldID)
		for _, f := range fields {
			if !clientaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != clientaccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cauo.mutation.Name(); ok {
		_spec.SetField(clientaccount.FieldName, field.TypeString, value)
	}
	if value, ok := cauo.mutation.Status(); ok {
		_spec.SetField(clientaccount.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := cauo.mutation.Assets(); ok {
		_spec.SetField(clientaccount.FieldAssets, field.TypeJSON, value)
	}
	if cauo.mutation.AssetsCleared() {
		_spec.ClearField(clientaccount.FieldAssets, field.TypeJSON)
	}
	if value, ok := cauo.mutation.UpdatedAt(); ok {
		_spec.SetField(clientaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if cauo.mutation.CyclesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cauo.mutation.RemovedCyclesIDs(); len(nodes) > 0 && !cauo.mutation.CyclesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cauo.mutation.CyclesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cauo.mutation.ShootsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cauo.mutation.RemovedShootsIDs(); len(nodes) > 0 && !cauo.mutation.ShootsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cauo.mutation.ShootsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cauo.mutation.TemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cauo.mutation.RemovedTemplatesIDs(); len(nodes) > 0 && !cauo.mutation.TemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cauo.mutation.TemplatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cauo.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cauo.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !cauo.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cauo.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cauo.mutation.ContextEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cauo.mutation.RemovedContextEntriesIDs(); len(nodes) > 0 && !cauo.mutation.ContextEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cauo.mutation.ContextEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClientAccount{config: cauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cauo.mutation.done = true
	return _node, nil
}
