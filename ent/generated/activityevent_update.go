// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/activityevent"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/profile"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (aeu *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetActorID sets the "actor_id" field.
func (aeu *ActivityEventUpdate) SetActorID(u uuid.UUID) *ActivityEventUpdate {
	aeu.mutation.SetActorID(u)
	return aeu
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (aeu *ActivityEventUpdate) SetNillableActorID(u *uuid.UUID) *ActivityEventUpdate {
	if u != nil {
		aeu.SetActorID(*u)
	}
	return aeu
}

// ClearActorID clears the value of the "actor_id" field.
func (aeu *ActivityEventUpdate) ClearActorID() *ActivityEventUpdate {
	aeu.mutation.ClearActorID()
	return aeu
}

// SetClientID sets the "client_id" field.
func (aeu *ActivityEventUpdate) SetClientID(u uuid.UUID) *ActivityEventUpdate {
	aeu.mutation.SetClientID(u)
	return aeu
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (aeu *ActivityEventUpdate) SetNillableClientID(u *uuid.UUID) *ActivityEventUpdate {
	if u != nil {
		aeu.SetClientID(*u)
	}
	return aeu
}

// ClearClientID clears the value of the "client_id" field.
func (aeu *ActivityEventUpdate) ClearClientID() *ActivityEventUpdate {
	aeu.mutation.ClearClientID()
	return aeu
}

// SetEventType sets the "event_type" field.
func (aeu *ActivityEventUpdate) SetEventType(at activityevent.EventType) *ActivityEventUpdate {
	aeu.mutation.SetEventType(at)
	return aeu
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (aeu *ActivityEventUpdate) SetNillableEventType(at *activityevent.EventType) *ActivityEventUpdate {
	if at != nil {
		aeu.SetEventType(*at)
	}
	return aeu
}

// SetDescription sets the "description" field.
func (aeu *ActivityEventUpdate) SetDescription(s string) *ActivityEventUpdate {
	aeu.mutation.SetDescription(s)
	return aeu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (aeu *ActivityEventUpdate) SetNillableDescription(s *string) *ActivityEventUpdate {
	if s != nil {
		aeu.SetDescription(*s)
	}
	return aeu
}

// ClearDescription clears the value of the "description" field.
func (aeu *ActivityEventUpdate) ClearDescription() *ActivityEventUpdate {
	aeu.mutation.ClearDescription()
	return aeu
}

// SetMetadata sets the "metadata" field.
func (aeu *ActivityEventUpdate) SetMetadata(m map[string]interface{}) *ActivityEventUpdate {
	aeu.mutation.SetMetadata(m)
	return aeu
}

// ClearMetadata clears the value of the "metadata" field.
func (aeu *ActivityEventUpdate) ClearMetadata() *ActivityEventUpdate {
	aeu.mutation.ClearMetadata()
	return aeu
}

// SetSeverity sets the "severity" field.
func (aeu *ActivityEventUpdate) SetSeverity(a activityevent.Severity) *ActivityEventUpdate {
	aeu.mutation.SetSeverity(a)
	return aeu
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (aeu *ActivityEventUpdate) SetNillableSeverity(a *activityevent.Severity) *ActivityEventUpdate {
	if a != nil {
		aeu.SetSeverity(*a)
	}
	return aeu
}

// SetIPAddress sets the "ip_address" field.
func (aeu *ActivityEventUpdate) SetIPAddress(s string) *ActivityEventUpdate {
	aeu.mutation.SetIPAddress(s)
	return aeu
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (aeu *ActivityEventUpdate) SetNillableIPAddress(s *string) *ActivityEventUpdate {
	if s != nil {
		aeu.SetIPAddress(*s)
	}
	return aeu
}

// ClearIPAddress clears the value of the "ip_address" field.
func (aeu *ActivityEventUpdate) ClearIPAddress() *ActivityEventUpdate {
	aeu.mutation.ClearIPAddress()
	return aeu
}

// SetActor sets the "actor" edge to the Profile entity.
func (aeu *ActivityEventUpdate) SetActor(p *Profile) *ActivityEventUpdate {
	return aeu.SetActorID(p.ID)
}

// Mutation returns the ActivityEventMutation object of the builder.
func (aeu *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return aeu.mutation
}

// ClearActor clears the "actor" edge to the Profile entity.
func (aeu *ActivityEventUpdate) ClearActor() *ActivityEventUpdate {
	aeu.mutation.ClearActor()
	return aeu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *ActivityEventUpdate) check() error {
	if v, ok := aeu.mutation.EventType(); ok {
		if err := activityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`generated: validator failed for field "ActivityEvent.event_type": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Severity(); ok {
		if err := activityevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`generated: validator failed for field "ActivityEvent.severity": %w`, err)}
		}
	}
	return nil
}

func (aeu *ActivityEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeUUID))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.ClientID(); ok {
		_spec.SetField(activityevent.FieldClientID, field.TypeUUID, value)
	}
	if aeu.mutation.ClientIDCleared() {
		_spec.ClearField(activityevent.FieldClientID, field.TypeUUID)
	}
	if value, ok := aeu.mutation.EventType(); ok {
		_spec.SetField(activityevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := aeu.mutation.Description(); ok {
		_spec.SetField(activityevent.FieldDescription, field.TypeString, value)
	}
	if aeu.mutation.DescriptionCleared() {
		_spec.ClearField(activityevent.FieldDescription, field.TypeString)
	}
	if value, ok := aeu.mutation.Metadata(); ok {
		_spec.SetField(activityevent.FieldMetadata, field.TypeJSON, value)
	}
	if aeu.mutation.MetadataCleared() {
		_spec.ClearField(activityevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := aeu.mutation.Severity(); ok {
		_spec.SetField(activityevent.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := aeu.mutation.IPAddress(); ok {
		_spec.SetField(activityevent.FieldIPAddress, field.TypeString, value)
	}
	if aeu.mutation.IPAddressCleared() {
		_spec.ClearField(activityevent.FieldIPAddress, field.TypeString)
	}
	if aeu.mutation.ActorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aeu.mutation.ActorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetActorID sets the "actor_id" field.
func (aeuo *ActivityEventUpdateOne) SetActorID(u uuid.UUID) *ActivityEventUpdateOne {
	aeuo.mutation.SetActorID(u)
	return aeuo
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (aeuo *ActivityEventUpdateOne) SetNillableActorID(u *uuid.UUID) *ActivityEventUpdateOne {
	if u != nil {
		aeuo.SetActorID(*u)
	}
	return aeuo
}

// ClearActorID clears the value of the "actor_id" field.
func (aeuo *ActivityEventUpdateOne) ClearActorID() *ActivityEventUpdateOne {
	aeuo.mutation.ClearActorID()
	return aeuo
}

// SetClientID sets the "client_id" field.
func (aeuo *ActivityEventUpdateOne) SetClientID(u uuid.UUID) *ActivityEventUpdateOne {
	aeuo.mutation.SetClientID(u)
	return aeuo
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (aeuo *ActivityEventUpdateOne) SetNillableClientID(u *uuid.UUID) *ActivityEventUpdateOne {
	if u != nil {
		aeuo.SetClientID(*u)
	}
	return aeuo
}

// ClearClientID clears the value of the "client_id" field.
func (aeuo *ActivityEventUpdateOne) ClearClientID() *ActivityEventUpdateOne {
	aeuo.mutation.ClearClientID()
	return aeuo
}

// SetEventType sets the "event_type" field.
func (aeuo *ActivityEventUpdateOne) SetEventType(at activityevent.EventType) *ActivityEventUpdateOne {
	aeuo.mutation.SetEventType(at)
	return aeuo
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (aeuo *ActivityEventUpdateOne) SetNillableEventType(at *activityevent.EventType) *ActivityEventUpdateOne {
	if at != nil {
		aeuo.SetEventType(*at)
	}
	return aeuo
}

// SetDescription sets the "description" field.
func (aeuo *ActivityEventUpdateOne) SetDescription(s string) *ActivityEventUpdateOne {
	aeuo.mutation.SetDescription(s)
	return aeuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (aeuo *ActivityEventUpdateOne) SetNillableDescription(s *string) *ActivityEventUpdateOne {
	if s != nil {
		aeuo.SetDescription(*s)
	}
	return aeuo
}

// ClearDescription clears the value of the "description" field.
func (aeuo *ActivityEventUpdateOne) ClearDescription() *ActivityEventUpdateOne {
	aeuo.mutation.ClearDescription()
	return aeuo
}

// SetMetadata sets the "metadata" field.
func (aeuo *ActivityEventUpdateOne) SetMetadata(m map[string]interface{}) *ActivityEventUpdateOne {
	aeuo.mutation.SetMetadata(m)
	return aeuo
}

// ClearMetadata clears the value of the "metadata" field.
func (aeuo *ActivityEventUpdateOne) ClearMetadata() *ActivityEventUpdateOne {
	aeuo.mutation.ClearMetadata()
	return aeuo
}

// SetSeverity sets the "severity" field.
func (aeuo *ActivityEventUpdateOne) SetSeverity(a activityevent.Severity) *ActivityEventUpdateOne {
	aeuo.mutation.SetSeverity(a)
	return aeuo
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (aeuo *ActivityEventUpdateOne) SetNillableSeverity(a *activityevent.Severity) *ActivityEventUpdateOne {
	if a != nil {
		aeuo.SetSeverity(*a)
	}
	return aeuo
}

// SetIPAddress sets the "ip_address" field.
func (aeuo *ActivityEventUpdateOne) SetIPAddress(s string) *ActivityEventUpdateOne {
	aeuo.mutation.SetIPAddress(s)
	return aeuo
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (aeuo *ActivityEventUpdateOne) SetNillableIPAddress(s *string) *ActivityEventUpdateOne {
	if s != nil {
		aeuo.SetIPAddress(*s)
	}
	return aeuo
}

// ClearIPAddress clears the value of the "ip_address" field.
func (aeuo *ActivityEventUpdateOne) ClearIPAddress() *ActivityEventUpdateOne {
	aeuo.mutation.ClearIPAddress()
	return aeuo
}

// SetActor sets the "actor" edge to the Profile entity.
func (aeuo *ActivityEventUpdateOne) SetActor(p *Profile) *ActivityEventUpdateOne {
	return aeuo.SetActorID(p.ID)
}

// Mutation returns the ActivityEventMutation object of the builder.
func (aeuo *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return aeuo.mutation
}

// ClearActor clears the "actor" edge to the Profile entity.
func (aeuo *ActivityEventUpdateOne) ClearActor() *ActivityEventUpdateOne {
	aeuo.mutation.ClearActor()
	return aeuo
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (aeuo *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated ActivityEvent entity.
func (aeuo *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *ActivityEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.EventType(); ok {
		if err := activityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`generated: validator failed for field "ActivityEvent.event_type": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Severity(); ok {
		if err := activityevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`generated: validator failed for field "ActivityEvent.severity": %w`, err)}
		}
	}
	return nil
}

func (aeuo *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeUUID))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.ClientID(); ok {
		_spec.SetField(activityevent.FieldClientID, field.TypeUUID, value)
	}
	if aeuo.mutation.ClientIDCleared() {
		_spec.ClearField(activityevent.FieldClientID, field.TypeUUID)
	}
	if value, ok := aeuo.mutation.EventType(); ok {
		_spec.SetField(activityevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := aeuo.mutation.Description(); ok {
		_spec.SetField(activityevent.FieldDescription, field.TypeString, value)
	}
	if aeuo.mutation.DescriptionCleared() {
		_spec.ClearField(activityevent.FieldDescription, field.TypeString)
	}
	if value, ok := aeuo.mutation.Metadata(); ok {
		_spec.SetField(activityevent.FieldMetadata, field.TypeJSON, value)
	}
	if aeuo.mutation.MetadataCleared() {
		_spec.ClearField(activityevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := aeuo.mutation.Severity(); ok {
		_spec.SetField(activityevent.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := aeuo.mutation.IPAddress(); ok {
		_spec.SetField(activityevent.FieldIPAddress, field.TypeString, value)
	}
	if aeuo.mutation.IPAddressCleared() {
		_spec.ClearField(activityevent.FieldIPAddress, field.TypeString)
	}
	if aeuo.mutation.ActorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aeuo.mutation.ActorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ActivityEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
