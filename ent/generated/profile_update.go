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
	"github.com/localbzz/clientops/ent/generated/activityevent"
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/task"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (pu *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetEmail sets the "email" field.
func (pu *ProfileUpdate) SetEmail(s string) *ProfileUpdate {
	pu.mutation.SetEmail(s)
	return pu
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableEmail(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetEmail(*s)
	}
	return pu
}

// SetDisplayName sets the "display_name" field.
func (pu *ProfileUpdate) SetDisplayName(s string) *ProfileUpdate {
	pu.mutation.SetDisplayName(s)
	return pu
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableDisplayName(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetDisplayName(*s)
	}
	return pu
}

// ClearDisplayName clears the value of the "display_name" field.
func (pu *ProfileUpdate) ClearDisplayName() *ProfileUpdate {
	pu.mutation.ClearDisplayName()
	return pu
}

// SetAvatarURL sets the "avatar_url" field.
func (pu *ProfileUpdate) SetAvatarURL(s string) *ProfileUpdate {
	pu.mutation.SetAvatarURL(s)
	return pu
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableAvatarURL(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetAvatarURL(*s)
	}
	return pu
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (pu *ProfileUpdate) ClearAvatarURL() *ProfileUpdate {
	pu.mutation.ClearAvatarURL()
	return pu
}

// SetRole sets the "role" field.
func (pu *ProfileUpdate) SetRole(pr profile.Role) *ProfileUpdate {
	pu.mutation.SetRole(pr)
	return pu
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableRole(pr *profile.Role) *ProfileUpdate {
	if pr != nil {
		pu.SetRole(*pr)
	}
	return pu
}

// SetPasswordHash sets the "password_hash" field.
func (pu *ProfileUpdate) SetPasswordHash(s string) *ProfileUpdate {
	pu.mutation.SetPasswordHash(s)
	return pu
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillablePasswordHash(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetPasswordHash(*s)
	}
	return pu
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (pu *ProfileUpdate) ClearPasswordHash() *ProfileUpdate {
	pu.mutation.ClearPasswordHash()
	return pu
}

// SetIsActive sets the "is_active" field.
func (pu *ProfileUpdate) SetIsActive(b bool) *ProfileUpdate {
	pu.mutation.SetIsActive(b)
	return pu
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableIsActive(b *bool) *ProfileUpdate {
	if b != nil {
		pu.SetIsActive(*b)
	}
	return pu
}

// SetInviteToken sets the "invite_token" field.
func (pu *ProfileUpdate) SetInviteToken(s string) *ProfileUpdate {
	pu.mutation.SetInviteToken(s)
	return pu
}

// SetNillableInviteToken sets the "invite_token" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableInviteToken(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetInviteToken(*s)
	}
	return pu
}

// ClearInviteToken clears the value of the "invite_token" field.
func (pu *ProfileUpdate) ClearInviteToken() *ProfileUpdate {
	pu.mutation.ClearInviteToken()
	return pu
}

// SetInviteExpiresAt sets the "invite_expires_at" field.
func (pu *ProfileUpdate) SetInviteExpiresAt(t time.Time) *ProfileUpdate {
	pu.mutation.SetInviteExpiresAt(t)
	return pu
}

// SetNillableInviteExpiresAt sets the "invite_expires_at" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableInviteExpiresAt(t *time.Time) *ProfileUpdate {
	if t != nil {
		pu.SetInviteExpiresAt(*t)
	}
	return pu
}

// ClearInviteExpiresAt clears the value of the "invite_expires_at" field.
func (pu *ProfileUpdate) ClearInviteExpiresAt() *ProfileUpdate {
	pu.mutation.ClearInviteExpiresAt()
	return pu
}

// SetLastLogin sets the "last_login" field.
func (pu *ProfileUpdate) SetLastLogin(t time.Time) *ProfileUpdate {
	pu.mutation.SetLastLogin(t)
	return pu
}

// SetNillableLastLogin sets the "last_login" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableLastLogin(t *time.Time) *ProfileUpdate {
	if t != nil {
		pu.SetLastLogin(*t)
	}
	return pu
}

// ClearLastLogin clears the value of the "last_login" field.
func (pu *ProfileUpdate) ClearLastLogin() *ProfileUpdate {
	pu.mutation.ClearLastLogin()
	return pu
}

// SetUpdatedAt sets the "updated_at" field.
func (pu *ProfileUpdate) SetUpdatedAt(t time.Time) *ProfileUpdate {
	pu.mutation.SetUpdatedAt(t)
	return pu
}

// AddAssignedTaskIDs adds the "assigned_tasks" edge to the Task entity by IDs.
func (pu *ProfileUpdate) AddAssignedTaskIDs(ids ...uuid.UUID) *ProfileUpdate {
	pu.mutation.AddAssignedTaskIDs(ids...)
	return pu
}

// AddAssignedTasks adds the "assigned_tasks" edges to the Task entity.
func (pu *ProfileUpdate) AddAssignedTasks(t ...*Task) *ProfileUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return pu.AddAssignedTaskIDs(ids...)
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by IDs.
func (pu *ProfileUpdate) AddContextEntryIDs(ids ...uuid.UUID) *ProfileUpdate {
	pu.mutation.AddContextEntryIDs(ids...)
	return pu
}

// AddContextEntries adds the "context_entries" edges to the ContextEntry entity.
func (pu *ProfileUpdate) AddContextEntries(c ...*ContextEntry) *ProfileUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pu.AddContextEntryIDs(ids...)
}

// AddDefaultAssignmentIDs adds the "default_assignments" edge to the ClientTaskAssignment entity by IDs.
func (pu *ProfileUpdate) AddDefaultAssignmentIDs(ids ...uuid.UUID) *ProfileUpdate {
	pu.mutation.AddDefaultAssignmentIDs(ids...)
	return pu
}

// AddDefaultAssignments adds the "default_assignments" edges to the ClientTaskAssignment entity.
func (pu *ProfileUpdate) AddDefaultAssignments(c ...*ClientTaskAssignment) *ProfileUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pu.AddDefaultAssignmentIDs(ids...)
}

// AddActivityEventIDs adds the "activity_events" edge to the ActivityEvent entity by IDs.
func (pu *ProfileUpdate) AddActivityEventIDs(ids ...uuid.UUID) *ProfileUpdate {
	pu.mutation.AddActivityEventIDs(ids...)
	return pu
}

// AddActivityEvents adds the "activity_events" edges to the ActivityEvent entity.
func (pu *ProfileUpdate) AddActivityEvents(a ...*ActivityEvent) *ProfileUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return pu.AddActivityEventIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (pu *ProfileUpdate) Mutation() *ProfileMutation {
	return pu.mutation
}

// ClearAssignedTasks clears all "assigned_tasks" edges to the Task entity.
func (pu *ProfileUpdate) ClearAssignedTasks() *ProfileUpdate {
	pu.mutation.ClearAssignedTasks()
	return pu
}

// RemoveAssignedTaskIDs removes the "assigned_tasks" edge to Task entities by IDs.
func (pu *ProfileUpdate) RemoveAssignedTaskIDs(ids ...uuid.UUID) *ProfileUpdate {
	pu.mutation.RemoveAssignedTaskIDs(ids...)
	return pu
}

// RemoveAssignedTasks removes "assigned_tasks" edges to Task entities.
func (pu *ProfileUpdate) RemoveAssignedTasks(t ...*Task) *ProfileUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return pu.RemoveAssignedTaskIDs(ids...)
}

// ClearContextEntries clears all "context_entries" edges to the ContextEntry entity.
func (pu *ProfileUpdate) ClearContextEntries() *ProfileUpdate {
	pu.mutation.ClearContextEntries()
	return pu
}

// RemoveContextEntryIDs removes the "context_entries" edge to ContextEntry entities by IDs.
func (pu *ProfileUpdate) RemoveContextEntryIDs(ids ...uuid.UUID) *ProfileUpdate {
	pu.mutation.RemoveContextEntryIDs(ids...)
	return pu
}

// RemoveContextEntries removes "context_entries" edges to ContextEntry entities.
func (pu *ProfileUpdate) RemoveContextEntries(c ...*ContextEntry) *ProfileUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pu.RemoveContextEntryIDs(ids...)
}

// ClearDefaultAssignments clears all "default_assignments" edges to the ClientTaskAssignment entity.
func (pu *ProfileUpdate) ClearDefaultAssignments() *ProfileUpdate {
	pu.mutation.ClearDefaultAssignments()
	return pu
}

// RemoveDefaultAssignmentIDs removes the "default_assignments" edge to ClientTaskAssignment entities by IDs.
func (pu *ProfileUpdate) RemoveDefaultAssignmentIDs(ids ...uuid.UUID) *ProfileUpdate {
	pu.mutation.RemoveDefaultAssignmentIDs(ids...)
	return pu
}

// RemoveDefaultAssignments removes "default_assignments" edges to ClientTaskAssignment entities.
func (pu *ProfileUpdate) RemoveDefaultAssignments(c ...*ClientTaskAssignment) *ProfileUpdate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pu.RemoveDefaultAssignmentIDs(ids...)
}

// ClearActivityEvents clears all "activity_events" edges to the ActivityEvent entity.
func (pu *ProfileUpdate) ClearActivityEvents() *ProfileUpdate {
	pu.mutation.ClearActivityEvents()
	return pu
}

// RemoveActivityEventIDs removes the "activity_events" edge to ActivityEvent entities by IDs.
func (pu *ProfileUpdate) RemoveActivityEventIDs(ids ...uuid.UUID) *ProfileUpdate {
	pu.mutation.RemoveActivityEventIDs(ids...)
	return pu
}

// RemoveActivityEvents removes "activity_events" edges to ActivityEvent entities.
func (pu *ProfileUpdate) RemoveActivityEvents(a ...*ActivityEvent) *ProfileUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return pu.RemoveActivityEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *ProfileUpdate) Save(ctx context.Context) (int, error) {
	pu.defaults()
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *ProfileUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pu *ProfileUpdate) defaults() {
	if _, ok := pu.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		pu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *ProfileUpdate) check() error {
	if v, ok := pu.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`generated: validator failed for field "Profile.email": %w`, err)}
		}
	}
	if v, ok := pu.mutation.DisplayName(); ok {
		if err := profile.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`generated: validator failed for field "Profile.display_name": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Role(); ok {
		if err := profile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`generated: validator failed for field "Profile.role": %w`, err)}
		}
	}
	return nil
}

func (pu *ProfileUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := pu.mutation.DisplayName(); ok {
		_spec.SetField(profile.FieldDisplayName, field.TypeString, value)
	}
	if pu.mutation.DisplayNameCleared() {
		_spec.ClearField(profile.FieldDisplayName, field.TypeString)
	}
	if value, ok := pu.mutation.AvatarURL(); ok {
		_spec.SetField(profile.FieldAvatarURL, field.TypeString, value)
	}
	if pu.mutation.AvatarURLCleared() {
		_spec.ClearField(profile.FieldAvatarURL, field.TypeString)
	}
	if value, ok := pu.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeEnum, value)
	}
	if value, ok := pu.mutation.PasswordHash(); ok {
		_spec.SetField(profile.FieldPasswordHash, field.TypeString, value)
	}
	if pu.mutation.PasswordHashCleared() {
		_spec.ClearField(profile.FieldPasswordHash, field.TypeString)
	}
	if value, ok := pu.mutation.IsActive(); ok {
		_spec.SetField(profile.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := pu.mutation.InviteToken(); ok {
		_spec.SetField(profile.FieldInviteToken, field.TypeString, value)
	}
	if pu.mutation.InviteTokenCleared() {
		_spec.ClearField(profile.FieldInviteToken, field.TypeString)
	}
	if value, ok := pu.mutation.InviteExpiresAt(); ok {
		_spec.SetField(profile.FieldInviteExpiresAt, field.TypeTime, value)
	}
	if pu.mutation.InviteExpiresAtCleared() {
		_spec.ClearField(profile.FieldInviteExpiresAt, field.TypeTime)
	}
	if value, ok := pu.mutation.LastLogin(); ok {
		_spec.SetField(profile.FieldLastLogin, field.TypeTime, value)
	}
	if pu.mutation.LastLoginCleared() {
		_spec.ClearField(profile.FieldLastLogin, field.TypeTime)
	}
	if value, ok := pu.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if pu.mutation.AssignedTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AssignedTasksTable,
			Columns: []string{profile.AssignedTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedAssignedTasksIDs(); len(nodes) > 0 && !pu.mutation.AssignedTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AssignedTasksTable,
			Columns: []string{profile.AssignedTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.AssignedTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AssignedTasksTable,
			Columns: []string{profile.AssignedTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if pu.mutation.ContextEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ContextEntriesTable,
			Columns: []string{profile.ContextEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedContextEntriesIDs(); len(nodes) > 0 && !pu.mutation.ContextEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ContextEntriesTable,
			Columns: []string{profile.ContextEntriesColumn},
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
	if nodes := pu.mutation.ContextEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ContextEntriesTable,
			Columns: []string{profile.ContextEntriesColumn},
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
	if pu.mutation.DefaultAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.DefaultAssignmentsTable,
			Columns: []string{profile.DefaultAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clienttaskassignment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedDefaultAssignmentsIDs(); len(nodes) > 0 && !pu.mutation.DefaultAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.DefaultAssignmentsTable,
			Columns: []string{profile.DefaultAssignmentsColumn},
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
	if nodes := pu.mutation.DefaultAssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.DefaultAssignmentsTable,
			Columns: []string{profile.DefaultAssignmentsColumn},
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
	if pu.mutation.ActivityEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ActivityEventsTable,
			Columns: []string{profile.ActivityEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedActivityEventsIDs(); len(nodes) > 0 && !pu.mutation.ActivityEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ActivityEventsTable,
			Columns: []string{profile.ActivityEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.ActivityEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ActivityEventsTable,
			Columns: []string{profile.ActivityEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetEmail sets the "email" field.
func (puo *ProfileUpdateOne) SetEmail(s string) *ProfileUpdateOne {
	puo.mutation.SetEmail(s)
	return puo
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableEmail(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetEmail(*s)
	}
	return puo
}

// SetDisplayName sets the "display_name" field.
func (puo *ProfileUpdateOne) SetDisplayName(s string) *ProfileUpdateOne {
	puo.mutation.SetDisplayName(s)
	return puo
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableDisplayName(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetDisplayName(*s)
	}
	return puo
}

// ClearDisplayName clears the value of the "display_name" field.
func (puo *ProfileUpdateOne) ClearDisplayName() *ProfileUpdateOne {
	puo.mutation.ClearDisplayName()
	return puo
}

// SetAvatarURL sets the "avatar_url" field.
func (puo *ProfileUpdateOne) SetAvatarURL(s string) *ProfileUpdateOne {
	puo.mutation.SetAvatarURL(s)
	return puo
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableAvatarURL(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetAvatarURL(*s)
	}
	return puo
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (puo *ProfileUpdateOne) ClearAvatarURL() *ProfileUpdateOne {
	puo.mutation.ClearAvatarURL()
	return puo
}

// SetRole sets the "role" field.
func (puo *ProfileUpdateOne) SetRole(pr profile.Role) *ProfileUpdateOne {
	puo.mutation.SetRole(pr)
	return puo
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableRole(pr *profile.Role) *ProfileUpdateOne {
	if pr != nil {
		puo.SetRole(*pr)
	}
	return puo
}

// SetPasswordHash sets the "password_hash" field.
func (puo *ProfileUpdateOne) SetPasswordHash(s string) *ProfileUpdateOne {
	puo.mutation.SetPasswordHash(s)
	return puo
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillablePasswordHash(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetPasswordHash(*s)
	}
	return puo
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (puo *ProfileUpdateOne) ClearPasswordHash() *ProfileUpdateOne {
	puo.mutation.ClearPasswordHash()
	return puo
}

// SetIsActive sets the "is_active" field.
func (puo *ProfileUpdateOne) SetIsActive(b bool) *ProfileUpdateOne {
	puo.mutation.SetIsActive(b)
	return puo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableIsActive(b *bool) *ProfileUpdateOne {
	if b != nil {
		puo.SetIsActive(*b)
	}
	return puo
}

// SetInviteToken sets the "invite_token" field.
func (puo *ProfileUpdateOne) SetInviteToken(s string) *ProfileUpdateOne {
	puo.mutation.SetInviteToken(s)
	return puo
}

// SetNillableInviteToken sets the "invite_token" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableInviteToken(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetInviteToken(*s)
	}
	return puo
}

// ClearInviteToken clears the value of the "invite_token" field.
func (puo *ProfileUpdateOne) ClearInviteToken() *ProfileUpdateOne {
	puo.mutation.ClearInviteToken()
	return puo
}

// SetInviteExpiresAt sets the "invite_expires_at" field.
func (puo *ProfileUpdateOne) SetInviteExpiresAt(t time.Time) *ProfileUpdateOne {
	puo.mutation.SetInviteExpiresAt(t)
	return puo
}

// SetNillableInviteExpiresAt sets the "invite_expires_at" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableInviteExpiresAt(t *time.Time) *ProfileUpdateOne {
	if t != nil {
		puo.SetInviteExpiresAt(*t)
	}
	return puo
}

// ClearInviteExpiresAt clears the value of the "invite_expires_at" field.
func (puo *ProfileUpdateOne) ClearInviteExpiresAt() *ProfileUpdateOne {
	puo.mutation.ClearInviteExpiresAt()
	return puo
}

// SetLastLogin sets the "last_login" field.
func (puo *ProfileUpdateOne) SetLastLogin(t time.Time) *ProfileUpdateOne {
	puo.mutation.SetLastLogin(t)
	return puo
}

// SetNillableLastLogin sets the "last_login" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableLastLogin(t *time.Time) *ProfileUpdateOne {
	if t != nil {
		puo.SetLastLogin(*t)
	}
	return puo
}

// ClearLastLogin clears the value of the "last_login" field.
func (puo *ProfileUpdateOne) ClearLastLogin() *ProfileUpdateOne {
	puo.mutation.ClearLastLogin()
	return puo
}

// SetUpdatedAt sets the "updated_at" field.
func (puo *ProfileUpdateOne) SetUpdatedAt(t time.Time) *ProfileUpdateOne {
	puo.mutation.SetUpdatedAt(t)
	return puo
}

// AddAssignedTaskIDs adds the "assigned_tasks" edge to the Task entity by IDs.
func (puo *ProfileUpdateOne) AddAssignedTaskIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	puo.mutation.AddAssignedTaskIDs(ids...)
	return puo
}

// AddAssignedTasks adds the "assigned_tasks" edges to the Task entity.
func (puo *ProfileUpdateOne) AddAssignedTasks(t ...*Task) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return puo.AddAssignedTaskIDs(ids...)
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by IDs.
func (puo *ProfileUpdateOne) AddContextEntryIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	puo.mutation.AddContextEntryIDs(ids...)
	return puo
}

// AddContextEntries adds the "context_entries" edges to the ContextEntry entity.
func (puo *ProfileUpdateOne) AddContextEntries(c ...*ContextEntry) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return puo.AddContextEntryIDs(ids...)
}

// AddDefaultAssignmentIDs adds the "default_assignments" edge to the ClientTaskAssignment entity by IDs.
func (puo *ProfileUpdateOne) AddDefaultAssignmentIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	puo.mutation.AddDefaultAssignmentIDs(ids...)
	return puo
}

// AddDefaultAssignments adds the "default_assignments" edges to the ClientTaskAssignment entity.
func (puo *ProfileUpdateOne) AddDefaultAssignments(c ...*ClientTaskAssignment) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return puo.AddDefaultAssignmentIDs(ids...)
}

// AddActivityEventIDs adds the "activity_events" edge to the ActivityEvent entity by IDs.
func (puo *ProfileUpdateOne) AddActivityEventIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	puo.mutation.AddActivityEventIDs(ids...)
	return puo
}

// AddActivityEvents adds the "activity_events" edges to the ActivityEvent entity.
func (puo *ProfileUpdateOne) AddActivityEvents(a ...*ActivityEvent) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return puo.AddActivityEventIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (puo *ProfileUpdateOne) Mutation() *ProfileMutation {
	return puo.mutation
}

// ClearAssignedTasks clears all "assigned_tasks" edges to the Task entity.
func (puo *ProfileUpdateOne) ClearAssignedTasks() *ProfileUpdateOne {
	puo.mutation.ClearAssignedTasks()
	return puo
}

// RemoveAssignedTaskIDs removes the "assigned_tasks" edge to Task entities by IDs.
func (puo *ProfileUpdateOne) RemoveAssignedTaskIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	puo.mutation.RemoveAssignedTaskIDs(ids...)
	return puo
}

// RemoveAssignedTasks removes "assigned_tasks" edges to Task entities.
func (puo *ProfileUpdateOne) RemoveAssignedTasks(t ...*Task) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return puo.RemoveAssignedTaskIDs(ids...)
}

// ClearContextEntries clears all "context_entries" edges to the ContextEntry entity.
func (puo *ProfileUpdateOne) ClearContextEntries() *ProfileUpdateOne {
	puo.mutation.ClearContextEntries()
	return puo
}

// RemoveContextEntryIDs removes the "context_entries" edge to ContextEntry entities by IDs.
func (puo *ProfileUpdateOne) RemoveContextEntryIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	puo.mutation.RemoveContextEntryIDs(ids...)
	return puo
}

// RemoveContextEntries removes "context_entries" edges to ContextEntry entities.
func (puo *ProfileUpdateOne) RemoveContextEntries(c ...*ContextEntry) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return puo.RemoveContextEntryIDs(ids...)
}

// ClearDefaultAssignments clears all "default_assignments" edges to the ClientTaskAssignment entity.
func (puo *ProfileUpdateOne) ClearDefaultAssignments() *ProfileUpdateOne {
	puo.mutation.ClearDefaultAssignments()
	return puo
}

// RemoveDefaultAssignmentIDs removes the "default_assignments" edge to ClientTaskAssignment entities by IDs.
func (puo *ProfileUpdateOne) RemoveDefaultAssignmentIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	puo.mutation.RemoveDefaultAssignmentIDs(ids...)
	return puo
}

// RemoveDefaultAssignments removes "default_assignments" edges to ClientTaskAssignment entities.
func (puo *ProfileUpdateOne) RemoveDefaultAssignments(c ...*ClientTaskAssignment) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return puo.RemoveDefaultAssignmentIDs(ids...)
}

// ClearActivityEvents clears all "activity_events" edges to the ActivityEvent entity.
func (puo *ProfileUpdateOne) ClearActivityEvents() *ProfileUpdateOne {
	puo.mutation.ClearActivityEvents()
	return puo
}

// RemoveActivityEventIDs removes the "activity_events" edge to ActivityEvent entities by IDs.
func (puo *ProfileUpdateOne) RemoveActivityEventIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	puo.mutation.RemoveActivityEventIDs(ids...)
	return puo
}

// RemoveActivityEvents removes "activity_events" edges to ActivityEvent entities.
func (puo *ProfileUpdateOne) RemoveActivityEvents(a ...*ActivityEvent) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return puo.RemoveActivityEventIDs(ids...)
}

// Where appends a list predicates to the ProfileUpdate builder.
func (puo *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Profile entity.
func (puo *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	puo.defaults()
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (puo *ProfileUpdateOne) defaults() {
	if _, ok := puo.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		puo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *ProfileUpdateOne) check() error {
	if v, ok := puo.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`generated: validator failed for field "Profile.email": %w`, err)}
		}
	}
	if v, ok := puo.mutation.DisplayName(); ok {
		if err := profile.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`generated: validator failed for field "Profile.display_name": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Role(); ok {
		if err := profile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`generated: validator failed for field "Profile.role": %w`, err)}
		}
	}
	return nil
}

func (puo *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := puo.mutation.DisplayName(); ok {
		_spec.SetField(profile.FieldDisplayName, field.TypeString, value)
	}
	if puo.mutation.DisplayNameCleared() {
		_spec.ClearField(profile.FieldDisplayName, field.TypeString)
	}
	if value, ok := puo.mutation.AvatarURL(); ok {
		_spec.SetField(profile.FieldAvatarURL, field.TypeString, value)
	}
	if puo.mutation.AvatarURLCleared() {
		_spec.ClearField(profile.FieldAvatarURL, field.TypeString)
	}
	if value, ok := puo.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeEnum, value)
	}
	if value, ok := puo.mutation.PasswordHash(); ok {
		_spec.SetField(profile.FieldPasswordHash, field.TypeString, value)
	}
	if puo.mutation.PasswordHashCleared() {
		_spec.ClearField(profile.FieldPasswordHash, field.TypeString)
	}
	if value, ok := puo.mutation.IsActive(); ok {
		_spec.SetField(profile.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := puo.mutation.InviteToken(); ok {
		_spec.SetField(profile.FieldInviteToken, field.TypeString, value)
	}
	if puo.mutation.InviteTokenCleared() {
		_spec.ClearField(profile.FieldInviteToken, field.TypeString)
	}
	if value, ok := puo.mutation.InviteExpiresAt(); ok {
		_spec.SetField(profile.FieldInviteExpiresAt, field.TypeTime, value)
	}
	if puo.mutation.InviteExpiresAtCleared() {
		_spec.ClearField(profile.FieldInviteExpiresAt, field.TypeTime)
	}
	if value, ok := puo.mutation.LastLogin(); ok {
		_spec.SetField(profile.FieldLastLogin, field.TypeTime, value)
	}
	if puo.mutation.LastLoginCleared() {
		_spec.ClearField(profile.FieldLastLogin, field.TypeTime)
	}
	if value, ok := puo.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if puo.mutation.AssignedTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AssignedTasksTable,
			Columns: []string{profile.AssignedTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedAssignedTasksIDs(); len(nodes) > 0 && !puo.mutation.AssignedTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AssignedTasksTable,
			Columns: []string{profile.AssignedTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.AssignedTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AssignedTasksTable,
			Columns: []string{profile.AssignedTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if puo.mutation.ContextEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ContextEntriesTable,
			Columns: []string{profile.ContextEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedContextEntriesIDs(); len(nodes) > 0 && !puo.mutation.ContextEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ContextEntriesTable,
			Columns: []string{profile.ContextEntriesColumn},
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
	if nodes := puo.mutation.ContextEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ContextEntriesTable,
			Columns: []string{profile.ContextEntriesColumn},
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
	if puo.mutation.DefaultAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.DefaultAssignmentsTable,
			Columns: []string{profile.DefaultAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clienttaskassignment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedDefaultAssignmentsIDs(); len(nodes) > 0 && !puo.mutation.DefaultAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.DefaultAssignmentsTable,
			Columns: []string{profile.DefaultAssignmentsColumn},
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
	if nodes := puo.mutation.DefaultAssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.DefaultAssignmentsTable,
			Columns: []string{profile.DefaultAssignmentsColumn},
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
	if puo.mutation.ActivityEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ActivityEventsTable,
			Columns: []string{profile.ActivityEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedActivityEventsIDs(); len(nodes) > 0 && !puo.mutation.ActivityEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ActivityEventsTable,
			Columns: []string{profile.ActivityEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.ActivityEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ActivityEventsTable,
			Columns: []string{profile.ActivityEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Profile{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
