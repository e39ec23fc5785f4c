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
	"github.com/localbzz/clientops/ent/generated/profile"
)

// ActivityEventCreate is the builder for creating a ActivityEvent entity.
type ActivityEventCreate struct {
	config
	mutation *ActivityEventMutation
	hooks    []Hook
}

// SetActorID sets the "actor_id" field.
func (aec *ActivityEventCreate) SetActorID(u uuid.UUID) *ActivityEventCreate {
	aec.mutation.SetActorID(u)
	return aec
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (aec *ActivityEventCreate) SetNillableActorID(u *uuid.UUID) *ActivityEventCreate {
	if u != nil {
		aec.SetActorID(*u)
	}
	return aec
}

// SetClientID sets the "client_id" field.
func (aec *ActivityEventCreate) SetClientID(u uuid.UUID) *ActivityEventCreate {
	aec.mutation.SetClientID(u)
	return aec
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (aec *ActivityEventCreate) SetNillableClientID(u *uuid.UUID) *ActivityEventCreate {
	if u != nil {
		aec.SetClientID(*u)
	}
	return aec
}

// SetEventType sets the "event_type" field.
func (aec *ActivityEventCreate) SetEventType(at activityevent.EventType) *ActivityEventCreate {
	aec.mutation.SetEventType(at)
	return aec
}

// SetDescription sets the "description" field.
func (aec *ActivityEventCreate) SetDescription(s string) *ActivityEventCreate {
	aec.mutation.SetDescription(s)
	return aec
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (aec *ActivityEventCreate) SetNillableDescription(s *string) *ActivityEventCreate {
	if s != nil {
		aec.SetDescription(*s)
	}
	return aec
}

// SetMetadata sets the "metadata" field.
func (aec *ActivityEventCreate) SetMetadata(m map[string]interface{}) *ActivityEventCreate {
	aec.mutation.SetMetadata(m)
	return aec
}

// SetSeverity sets the "severity" field.
func (aec *ActivityEventCreate) SetSeverity(a activityevent.Severity) *ActivityEventCreate {
	aec.mutation.SetSeverity(a)
	return aec
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (aec *ActivityEventCreate) SetNillableSeverity(a *activityevent.Severity) *ActivityEventCreate {
	if a != nil {
		aec.SetSeverity(*a)
	}
	return aec
}

// SetIPAddress sets the "ip_address" field.
func (aec *ActivityEventCreate) SetIPAddress(s string) *ActivityEventCreate {
	aec.mutation.SetIPAddress(s)
	return aec
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (aec *ActivityEventCreate) SetNillableIPAddress(s *string) *ActivityEventCreate {
	if s != nil {
		aec.SetIPAddress(*s)
	}
	return aec
}

// SetCreatedAt sets the "created_at" field.
func (aec *ActivityEventCreate) SetCreatedAt(t time.Time) *ActivityEventCreate {
	aec.mutation.SetCreatedAt(t)
	return aec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (aec *ActivityEventCreate) SetNillableCreatedAt(t *time.Time) *ActivityEventCreate {
	if t != nil {
		aec.SetCreatedAt(*t)
	}
	return aec
}

// SetID sets the "id" field.
func (aec *ActivityEventCreate) SetID(u uuid.UUID) *ActivityEventCreate {
	aec.mutation.SetID(u)
	return aec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (aec *ActivityEventCreate) SetNillableID(u *uuid.UUID) *ActivityEventCreate {
	if u != nil {
		aec.SetID(*u)
	}
	return aec
}

// SetActor sets the "actor" edge to the Profile entity.
func (aec *ActivityEventCreate) SetActor(p *Profile) *ActivityEventCreate {
	return aec.SetActorID(p.ID)
}

// Mutation returns the ActivityEventMutation object of the builder.
func (aec *ActivityEventCreate) Mutation() *ActivityEventMutation {
	return aec.mutation
}

// Save creates the ActivityEvent in the database.
func (aec *ActivityEventCreate) Save(ctx context.Context) (*ActivityEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *ActivityEventCreate) SaveX(ctx context.Context) *ActivityEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *ActivityEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *ActivityEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *ActivityEventCreate) defaults() {
	if _, ok := aec.mutation.Metadata(); !ok {
		v := activityevent.DefaultMetadata
		aec.mutation.SetMetadata(v)
	}
	if _, ok := aec.mutation.Severity(); !ok {
		v := activityevent.DefaultSeverity
		aec.mutation.SetSeverity(v)
	}
	if _, ok := aec.mutation.CreatedAt(); !ok {
		v := activityevent.DefaultCreatedAt()
		aec.mutation.SetCreatedAt(v)
	}
	if _, ok := aec.mutation.ID(); !ok {
		v := activityevent.DefaultID()
		aec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *ActivityEventCreate) check() error {
	if _, ok := aec.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`generated: missing required field "ActivityEvent.event_type"`)}
	}
	if v, ok := aec.mutation.EventType(); ok {
		if err := activityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`generated: validator failed for field "ActivityEvent.event_type": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`generated: missing required field "ActivityEvent.severity"`)}
	}
	if v, ok := aec.mutation.Severity(); ok {
		if err := activityevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`generated: validator failed for field "ActivityEvent.severity": %w`, err)}
		}
	}
	if _, ok := aec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "ActivityEvent.created_at"`)}
	}
	return nil
}

func (aec *ActivityEventCreate) sqlSave(ctx context.Context) (*ActivityEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
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
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *ActivityEventCreate) createSpec() (*ActivityEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(activityevent.Table, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeUUID))
	)
	if id, ok := aec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := aec.mutation.ClientID(); ok {
		_spec.SetField(activityevent.FieldClientID, field.TypeUUID, value)
		_node.ClientID = &value
	}
	if value, ok := aec.mutation.EventType(); ok {
		_spec.SetField(activityevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := aec.mutation.Description(); ok {
		_spec.SetField(activityevent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := aec.mutation.Metadata(); ok {
		_spec.SetField(activityevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := aec.mutation.Severity(); ok {
		_spec.SetField(activityevent.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := aec.mutation.IPAddress(); ok {
		_spec.SetField(activityevent.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := aec.mutation.CreatedAt(); ok {
		_spec.SetField(activityevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := aec.mutation.ActorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activityevent.ActorTable,
			Columns: []string{activityevent.ActorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ActorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ActivityEventCreateBulk is the builder for creating many ActivityEvent entities in bulk.
type ActivityEventCreateBulk struct {
	config
	err      error
	builders []*ActivityEventCreate
}

// Save creates the ActivityEvent entities in the database.
func (aecb *ActivityEventCreateBulk) Save(ctx context.Context) ([]*ActivityEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*ActivityEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityEventMutation)
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
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *ActivityEventCreateBulk) SaveX(ctx context.Context) []*ActivityEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *ActivityEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *ActivityEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
