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
	"github.com/localbzz/clientops/ent/generated/activityevent"
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/task"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (pc *ProfileCreate) SetEmail(s string) *ProfileCreate {
	pc.mutation.SetEmail(s)
	return pc
}

// SetDisplayName sets the "display_name" field.
func (pc *ProfileCreate) SetDisplayName(s string) *ProfileCreate {
	pc.mutation.SetDisplayName(s)
	return pc
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableDisplayName(s *string) *ProfileCreate {
	if s != nil {
		pc.SetDisplayName(*s)
	}
	return pc
}

// SetAvatarURL sets the "avatar_url" field.
func (pc *ProfileCreate) SetAvatarURL(s string) *ProfileCreate {
	pc.mutation.SetAvatarURL(s)
	return pc
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableAvatarURL(s *string) *ProfileCreate {
	if s != nil {
		pc.SetAvatarURL(*s)
	}
	return pc
}

// SetRole sets the "role" field.
func (pc *ProfileCreate) SetRole(pr profile.Role) *ProfileCreate {
	pc.mutation.SetRole(pr)
	return pc
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableRole(pr *profile.Role) *ProfileCreate {
	if pr != nil {
		pc.SetRole(*pr)
	}
	return pc
}

// SetPasswordHash sets the "password_hash" field.
func (pc *ProfileCreate) SetPasswordHash(s string) *ProfileCreate {
	pc.mutation.SetPasswordHash(s)
	return pc
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (pc *ProfileCreate) SetNillablePasswordHash(s *string) *ProfileCreate {
	if s != nil {
		pc.SetPasswordHash(*s)
	}
	return pc
}

// SetIsActive sets the "is_active" field.
func (pc *ProfileCreate) SetIsActive(b bool) *ProfileCreate {
	pc.mutation.SetIsActive(b)
	return pc
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableIsActive(b *bool) *ProfileCreate {
	if b != nil {
		pc.SetIsActive(*b)
	}
	return pc
}

// SetInviteToken sets the "invite_token" field.
func (pc *ProfileCreate) SetInviteToken(s string) *ProfileCreate {
	pc.mutation.SetInviteToken(s)
	return pc
}

// SetNillableInviteToken sets the "invite_token" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableInviteToken(s *string) *ProfileCreate {
	if s != nil {
		pc.SetInviteToken(*s)
	}
	return pc
}

// SetInviteExpiresAt sets the "invite_expires_at" field.
func (pc *ProfileCreate) SetInviteExpiresAt(t time.Time) *ProfileCreate {
	pc.mutation.SetInviteExpiresAt(t)
	return pc
}

// SetNillableInviteExpiresAt sets the "invite_expires_at" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableInviteExpiresAt(t *time.Time) *ProfileCreate {
	if t != nil {
		pc.SetInviteExpiresAt(*t)
	}
	return pc
}

// SetLastLogin sets the "last_login" field.
func (pc *ProfileCreate) SetLastLogin(t time.Time) *ProfileCreate {
	pc.mutation.SetLastLogin(t)
	return pc
}

// SetNillableLastLogin sets the "last_login" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableLastLogin(t *time.Time) *ProfileCreate {
	if t != nil {
		pc.SetLastLogin(*t)
	}
	return pc
}

// SetCreatedAt sets the "created_at" field.
func (pc *ProfileCreate) SetCreatedAt(t time.Time) *ProfileCreate {
	pc.mutation.SetCreatedAt(t)
	return pc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableCreatedAt(t *time.Time) *ProfileCreate {
	if t != nil {
		pc.SetCreatedAt(*t)
	}
	return pc
}

// SetUpdatedAt sets the "updated_at" field.
func (pc *ProfileCreate) SetUpdatedAt(t time.Time) *ProfileCreate {
	pc.mutation.SetUpdatedAt(t)
	return pc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableUpdatedAt(t *time.Time) *ProfileCreate {
	if t != nil {
		pc.SetUpdatedAt(*t)
	}
	return pc
}

// SetID sets the "id" field.
func (pc *ProfileCreate) SetID(u uuid.UUID) *ProfileCreate {
	pc.mutation.SetID(u)
	return pc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableID(u *uuid.UUID) *ProfileCreate {
	if u != nil {
		pc.SetID(*u)
	}
	return pc
}

// AddAssignedTaskIDs adds the "assigned_tasks" edge to the Task entity by IDs.
func (pc *ProfileCreate) AddAssignedTaskIDs(ids ...uuid.UUID) *ProfileCreate {
	pc.mutation.AddAssignedTaskIDs(ids...)
	return pc
}

// AddAssignedTasks adds the "assigned_tasks" edges to the Task entity.
func (pc *ProfileCreate) AddAssignedTasks(t ...*Task) *ProfileCreate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return pc.AddAssignedTaskIDs(ids...)
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by IDs.
func (pc *ProfileCreate) AddContextEntryIDs(ids ...uuid.UUID) *ProfileCreate {
	pc.mutation.AddContextEntryIDs(ids...)
	return pc
}

// AddContextEntries adds the "context_entries" edges to the ContextEntry entity.
func (pc *ProfileCreate) AddContextEntries(c ...*ContextEntry) *ProfileCreate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pc.AddContextEntryIDs(ids...)
}

// AddDefaultAssignmentIDs adds the "default_assignments" edge to the ClientTaskAssignment entity by IDs.
func (pc *ProfileCreate) AddDefaultAssignmentIDs(ids ...uuid.UUID) *ProfileCreate {
	pc.mutation.AddDefaultAssignmentIDs(ids...)
	return pc
}

// AddDefaultAssignments adds the "default_assignments" edges to the ClientTaskAssignment entity.
func (pc *ProfileCreate) AddDefaultAssignments(c ...*ClientTaskAssignment) *ProfileCreate {
	ids := make([]uuid.UUID, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pc.AddDefaultAssignmentIDs(ids...)
}

// AddActivityEventIDs adds the "activity_events" edge to the ActivityEvent entity by IDs.
func (pc *ProfileCreate) AddActivityEventIDs(ids ...uuid.UUID) *ProfileCreate {
	pc.mutation.AddActivityEventIDs(ids...)
	return pc
}

// AddActivityEvents adds the "activity_events" edges to the ActivityEvent entity.
func (pc *ProfileCreate) AddActivityEvents(a ...*ActivityEvent) *ProfileCreate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return pc.AddActivityEventIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (pc *ProfileCreate) Mutation() *ProfileMutation {
	return pc.mutation
}

// Save creates the Profile in the database.
func (pc *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *ProfileCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *ProfileCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *ProfileCreate) defaults() {
	if _, ok := pc.mutation.DisplayName(); !ok {
		v := profile.DefaultDisplayName
		pc.mutation.SetDisplayName(v)
	}
	if _, ok := pc.mutation.Role(); !ok {
		v := profile.DefaultRole
		pc.mutation.SetRole(v)
	}
	if _, ok := pc.mutation.IsActive(); !ok {
		v := profile.DefaultIsActive
		pc.mutation.SetIsActive(v)
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		v := profile.DefaultCreatedAt()
		pc.mutation.SetCreatedAt(v)
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		pc.mutation.SetUpdatedAt(v)
	}
	if _, ok := pc.mutation.ID(); !ok {
		v := profile.DefaultID()
		pc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *ProfileCreate) check() error {
	if _, ok := pc.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`generated: missing required field "Profile.email"`)}
	}
	if v, ok := pc.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`generated: validator failed for field "Profile.email": %w`, err)}
		}
	}
	if v, ok := pc.mutation.DisplayName(); ok {
		if err := profile.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`generated: validator failed for field "Profile.display_name": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`generated: missing required field "Profile.role"`)}
	}
	if v, ok := pc.mutation.Role(); ok {
		if err := profile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`generated: validator failed for field "Profile.role": %w`, err)}
		}
	}
	if _, ok := pc.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`generated: missing required field "Profile.is_active"`)}
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Profile.created_at"`)}
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (pc *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
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
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	)
	if id, ok := pc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := pc.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := pc.mutation.DisplayName(); ok {
		_spec.SetField(profile.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := pc.mutation.AvatarURL(); ok {
		_spec.SetField(profile.FieldAvatarURL, field.TypeString, value)
		_node.AvatarURL = value
	}
	if value, ok := pc.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := pc.mutation.PasswordHash(); ok {
		_spec.SetField(profile.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := pc.mutation.IsActive(); ok {
		_spec.SetField(profile.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := pc.mutation.InviteToken(); ok {
		_spec.SetField(profile.FieldInviteToken, field.TypeString, value)
		_node.InviteToken = value
	}
	if value, ok := pc.mutation.InviteExpiresAt(); ok {
		_spec.SetField(profile.FieldInviteExpiresAt, field.TypeTime, value)
		_node.InviteExpiresAt = &value
	}
	if value, ok := pc.mutation.LastLogin(); ok {
		_spec.SetField(profile.FieldLastLogin, field.TypeTime, value)
		_node.LastLogin = &value
	}
	if value, ok := pc.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pc.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := pc.mutation.AssignedTasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := pc.mutation.ContextEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := pc.mutation.DefaultAssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := pc.mutation.ActivityEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (pcb *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Profile, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}
