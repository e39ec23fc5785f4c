// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/activityevent"
	"github.com/localbzz/clientops/ent/generated/clientaccount"
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/shoot"
	"github.com/localbzz/clientops/ent/generated/task"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivityEvent        = "ActivityEvent"
	TypeClientAccount        = "ClientAccount"
	TypeClientTaskAssignment = "ClientTaskAssignment"
	TypeContextEntry         = "ContextEntry"
	TypeCycle                = "Cycle"
	TypeProfile              = "Profile"
	TypeShoot                = "Shoot"
	TypeTask                 = "Task"
	TypeTaskTemplate         = "TaskTemplate"
)

// ActivityEventMutation represents an operation that mutates the ActivityEvent nodes in the graph.
type ActivityEventMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	client_id     *uuid.UUID
	event_type    *activityevent.EventType
	description   *string
	metadata      *map[string]interface{}
	severity      *activityevent.Severity
	ip_address    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	actor         *uuid.UUID
	clearedactor  bool
	done          bool
	oldValue      func(context.Context) (*ActivityEvent, error)
	predicates    []predicate.ActivityEvent
}

var _ ent.Mutation = (*ActivityEventMutation)(nil)

// activityeventOption allows management of the mutation configuration using functional options.
type activityeventOption func(*ActivityEventMutation)

// newActivityEventMutation creates new mutation for the ActivityEvent entity.
func newActivityEventMutation(c config, op Op, opts ...activityeventOption) *ActivityEventMutation {
	m := &ActivityEventMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityEventID sets the ID field of the mutation.
func withActivityEventID(id uuid.UUID) activityeventOption {
	return func(m *ActivityEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityEvent
		)
		m.oldValue = func(ctx context.Context) (*ActivityEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityEvent sets the old ActivityEvent of the mutation.
func withActivityEvent(node *ActivityEvent) activityeventOption {
	return func(m *ActivityEventMutation) {
		m.oldValue = func(context.Context) (*ActivityEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActivityEvent entities.
func (m *ActivityEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActorID sets the "actor_id" field.
func (m *ActivityEventMutation) SetActorID(u uuid.UUID) {
	m.actor = &u
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *ActivityEventMutation) ActorID() (r uuid.UUID, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldActorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *ActivityEventMutation) ClearActorID() {
	m.actor = nil
	m.clearedFields[activityevent.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *ActivityEventMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[activityevent.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *ActivityEventMutation) ResetActorID() {
	m.actor = nil
	delete(m.clearedFields, activityevent.FieldActorID)
}

// SetClientID sets the "client_id" field.
func (m *ActivityEventMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ActivityEventMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldClientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ClearClientID clears the value of the "client_id" field.
func (m *ActivityEventMutation) ClearClientID() {
	m.client_id = nil
	m.clearedFields[activityevent.FieldClientID] = struct{}{}
}

// ClientIDCleared returns if the "client_id" field was cleared in this mutation.
func (m *ActivityEventMutation) ClientIDCleared() bool {
	_, ok := m.clearedFields[activityevent.FieldClientID]
	return ok
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ActivityEventMutation) ResetClientID() {
	m.client_id = nil
	delete(m.clearedFields, activityevent.FieldClientID)
}

// SetEventType sets the "event_type" field.
func (m *ActivityEventMutation) SetEventType(at activityevent.EventType) {
	m.event_type = &at
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ActivityEventMutation) EventType() (r activityevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldEventType(ctx context.Context) (v activityevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ActivityEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetDescription sets the "description" field.
func (m *ActivityEventMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ActivityEventMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ActivityEventMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[activityevent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ActivityEventMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[activityevent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ActivityEventMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, activityevent.FieldDescription)
}

// SetMetadata sets the "metadata" field.
func (m *ActivityEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ActivityEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ActivityEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[activityevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ActivityEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[activityevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ActivityEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, activityevent.FieldMetadata)
}

// SetSeverity sets the "severity" field.
func (m *ActivityEventMutation) SetSeverity(a activityevent.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ActivityEventMutation) Severity() (r activityevent.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldSeverity(ctx context.Context) (v activityevent.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ActivityEventMutation) ResetSeverity() {
	m.severity = nil
}

// SetIPAddress sets the "ip_address" field.
func (m *ActivityEventMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *ActivityEventMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *ActivityEventMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[activityevent.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *ActivityEventMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[activityevent.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *ActivityEventMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, activityevent.FieldIPAddress)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivityEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearActor clears the "actor" edge to the Profile entity.
func (m *ActivityEventMutation) ClearActor() {
	m.clearedactor = true
	m.clearedFields[activityevent.FieldActorID] = struct{}{}
}

// ActorCleared reports if the "actor" edge to the Profile entity was cleared.
func (m *ActivityEventMutation) ActorCleared() bool {
	return m.ActorIDCleared() || m.clearedactor
}

// ActorIDs returns the "actor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ActorID instead. It exists only for internal usage by the builders.
func (m *ActivityEventMutation) ActorIDs() (ids []uuid.UUID) {
	if id := m.actor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetActor resets all changes to the "actor" edge.
func (m *ActivityEventMutation) ResetActor() {
	m.actor = nil
	m.clearedactor = false
}

// Where appends a list predicates to the ActivityEventMutation builder.
func (m *ActivityEventMutation) Where(ps ...predicate.ActivityEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityEvent).
func (m *ActivityEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.actor != nil {
		fields = append(fields, activityevent.FieldActorID)
	}
	if m.client_id != nil {
		fields = append(fields, activityevent.FieldClientID)
	}
	if m.event_type != nil {
		fields = append(fields, activityevent.FieldEventType)
	}
	if m.description != nil {
		fields = append(fields, activityevent.FieldDescription)
	}
	if m.metadata != nil {
		fields = append(fields, activityevent.FieldMetadata)
	}
	if m.severity != nil {
		fields = append(fields, activityevent.FieldSeverity)
	}
	if m.ip_address != nil {
		fields = append(fields, activityevent.FieldIPAddress)
	}
	if m.created_at != nil {
		fields = append(fields, activityevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activityevent.FieldActorID:
		return m.ActorID()
	case activityevent.FieldClientID:
		return m.ClientID()
	case activityevent.FieldEventType:
		return m.EventType()
	case activityevent.FieldDescription:
		return m.Description()
	case activityevent.FieldMetadata:
		return m.Metadata()
	case activityevent.FieldSeverity:
		return m.Severity()
	case activityevent.FieldIPAddress:
		return m.IPAddress()
	case activityevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activityevent.FieldActorID:
		return m.OldActorID(ctx)
	case activityevent.FieldClientID:
		return m.OldClientID(ctx)
	case activityevent.FieldEventType:
		return m.OldEventType(ctx)
	case activityevent.FieldDescription:
		return m.OldDescription(ctx)
	case activityevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case activityevent.FieldSeverity:
		return m.OldSeverity(ctx)
	case activityevent.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case activityevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activityevent.FieldActorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case activityevent.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case activityevent.FieldEventType:
		v, ok := value.(activityevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case activityevent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case activityevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case activityevent.FieldSeverity:
		v, ok := value.(activityevent.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case activityevent.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case activityevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActivityEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activityevent.FieldActorID) {
		fields = append(fields, activityevent.FieldActorID)
	}
	if m.FieldCleared(activityevent.FieldClientID) {
		fields = append(fields, activityevent.FieldClientID)
	}
	if m.FieldCleared(activityevent.FieldDescription) {
		fields = append(fields, activityevent.FieldDescription)
	}
	if m.FieldCleared(activityevent.FieldMetadata) {
		fields = append(fields, activityevent.FieldMetadata)
	}
	if m.FieldCleared(activityevent.FieldIPAddress) {
		fields = append(fields, activityevent.FieldIPAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityEventMutation) ClearField(name string) error {
	switch name {
	case activityevent.FieldActorID:
		m.ClearActorID()
		return nil
	case activityevent.FieldClientID:
		m.ClearClientID()
		return nil
	case activityevent.FieldDescription:
		m.ClearDescription()
		return nil
	case activityevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	case activityevent.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityEventMutation) ResetField(name string) error {
	switch name {
	case activityevent.FieldActorID:
		m.ResetActorID()
		return nil
	case activityevent.FieldClientID:
		m.ResetClientID()
		return nil
	case activityevent.FieldEventType:
		m.ResetEventType()
		return nil
	case activityevent.FieldDescription:
		m.ResetDescription()
		return nil
	case activityevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case activityevent.FieldSeverity:
		m.ResetSeverity()
		return nil
	case activityevent.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case activityevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.actor != nil {
		edges = append(edges, activityevent.EdgeActor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case activityevent.EdgeActor:
		if id := m.actor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedactor {
		edges = append(edges, activityevent.EdgeActor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityEventMutation) EdgeCleared(name string) bool {
	switch name {
	case activityevent.EdgeActor:
		return m.clearedactor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityEventMutation) ClearEdge(name string) error {
	switch name {
	case activityevent.EdgeActor:
		m.ClearActor()
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityEventMutation) ResetEdge(name string) error {
	switch name {
	case activityevent.EdgeActor:
		m.ResetActor()
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent edge %s", name)
}

// ClientAccountMutation represents an operation that mutates the ClientAccount nodes in the graph.
type ClientAccountMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	name                   *string
	status                 *clientaccount.Status
	assets                 *map[string]string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	cycles                 map[uuid.UUID]struct{}
	removedcycles          map[uuid.UUID]struct{}
	clearedcycles          bool
	shoots                 map[uuid.UUID]struct{}
	removedshoots          map[uuid.UUID]struct{}
	clearedshoots          bool
	templates              map[uuid.UUID]struct{}
	removedtemplates       map[uuid.UUID]struct{}
	clearedtemplates       bool
	assignments            map[uuid.UUID]struct{}
	removedassignments     map[uuid.UUID]struct{}
	clearedassignments     bool
	context_entries        map[uuid.UUID]struct{}
	removedcontext_entries map[uuid.UUID]struct{}
	clearedcontext_entries bool
	done                   bool
	oldValue               func(context.Context) (*ClientAccount, error)
	predicates             []predicate.ClientAccount
}

var _ ent.Mutation = (*ClientAccountMutation)(nil)

// clientaccountOption allows management of the mutation configuration using functional options.
type clientaccountOption func(*ClientAccountMutation)

// newClientAccountMutation creates new mutation for the ClientAccount entity.
func newClientAccountMutation(c config, op Op, opts ...clientaccountOption) *ClientAccountMutation {
	m := &ClientAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeClientAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientAccountID sets the ID field of the mutation.
func withClientAccountID(id uuid.UUID) clientaccountOption {
	return func(m *ClientAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientAccount
		)
		m.oldValue = func(ctx context.Context) (*ClientAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientAccount sets the old ClientAccount of the mutation.
func withClientAccount(node *ClientAccount) clientaccountOption {
	return func(m *ClientAccountMutation) {
		m.oldValue = func(context.Context) (*ClientAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClientAccount entities.
func (m *ClientAccountMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientAccountMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientAccountMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ClientAccountMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ClientAccountMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ClientAccount entity.
// If the ClientAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientAccountMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ClientAccountMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *ClientAccountMutation) SetStatus(c clientaccount.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ClientAccountMutation) Status() (r clientaccount.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ClientAccount entity.
// If the ClientAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientAccountMutation) OldStatus(ctx context.Context) (v clientaccount.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ClientAccountMutation) ResetStatus() {
	m.status = nil
}

// SetAssets sets the "assets" field.
func (m *ClientAccountMutation) SetAssets(value map[string]string) {
	m.assets = &value
}

// Assets returns the value of the "assets" field in the mutation.
func (m *ClientAccountMutation) Assets() (r map[string]string, exists bool) {
	v := m.assets
	if v == nil {
		return
	}
	return *v, true
}

// OldAssets returns the old "assets" field's value of the ClientAccount entity.
// If the ClientAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientAccountMutation) OldAssets(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssets: %w", err)
	}
	return oldValue.Assets, nil
}

// ClearAssets clears the value of the "assets" field.
func (m *ClientAccountMutation) ClearAssets() {
	m.assets = nil
	m.clearedFields[clientaccount.FieldAssets] = struct{}{}
}

// AssetsCleared returns if the "assets" field was cleared in this mutation.
func (m *ClientAccountMutation) AssetsCleared() bool {
	_, ok := m.clearedFields[clientaccount.FieldAssets]
	return ok
}

// ResetAssets resets all changes to the "assets" field.
func (m *ClientAccountMutation) ResetAssets() {
	m.assets = nil
	delete(m.clearedFields, clientaccount.FieldAssets)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClientAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClientAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClientAccount entity.
// If the ClientAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClientAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClientAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClientAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClientAccount entity.
// If the ClientAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClientAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCycleIDs adds the "cycles" edge to the Cycle entity by ids.
func (m *ClientAccountMutation) AddCycleIDs(ids ...uuid.UUID) {
	if m.cycles == nil {
		m.cycles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.cycles[ids[i]] = struct{}{}
	}
}

// ClearCycles clears the "cycles" edge to the Cycle entity.
func (m *ClientAccountMutation) ClearCycles() {
	m.clearedcycles = true
}

// CyclesCleared reports if the "cycles" edge to the Cycle entity was cleared.
func (m *ClientAccountMutation) CyclesCleared() bool {
	return m.clearedcycles
}

// RemoveCycleIDs removes the "cycles" edge to the Cycle entity by IDs.
func (m *ClientAccountMutation) RemoveCycleIDs(ids ...uuid.UUID) {
	if m.removedcycles == nil {
		m.removedcycles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.cycles, ids[i])
		m.removedcycles[ids[i]] = struct{}{}
	}
}

// RemovedCycles returns the removed IDs of the "cycles" edge to the Cycle entity.
func (m *ClientAccountMutation) RemovedCyclesIDs() (ids []uuid.UUID) {
	for id := range m.removedcycles {
		ids = append(ids, id)
	}
	return
}

// CyclesIDs returns the "cycles" edge IDs in the mutation.
func (m *ClientAccountMutation) CyclesIDs() (ids []uuid.UUID) {
	for id := range m.cycles {
		ids = append(ids, id)
	}
	return
}

// ResetCycles resets all changes to the "cycles" edge.
func (m *ClientAccountMutation) ResetCycles() {
	m.cycles = nil
	m.clearedcycles = false
	m.removedcycles = nil
}

// AddShootIDs adds the "shoots" edge to the Shoot entity by ids.
func (m *ClientAccountMutation) AddShootIDs(ids ...uuid.UUID) {
	if m.shoots == nil {
		m.shoots = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.shoots[ids[i]] = struct{}{}
	}
}

// ClearShoots clears the "shoots" edge to the Shoot entity.
func (m *ClientAccountMutation) ClearShoots() {
	m.clearedshoots = true
}

// ShootsCleared reports if the "shoots" edge to the Shoot entity was cleared.
func (m *ClientAccountMutation) ShootsCleared() bool {
	return m.clearedshoots
}

// RemoveShootIDs removes the "shoots" edge to the Shoot entity by IDs.
func (m *ClientAccountMutation) RemoveShootIDs(ids ...uuid.UUID) {
	if m.removedshoots == nil {
		m.removedshoots = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.shoots, ids[i])
		m.removedshoots[ids[i]] = struct{}{}
	}
}

// RemovedShoots returns the removed IDs of the "shoots" edge to the Shoot entity.
func (m *ClientAccountMutation) RemovedShootsIDs() (ids []uuid.UUID) {
	for id := range m.removedshoots {
		ids = append(ids, id)
	}
	return
}

// ShootsIDs returns the "shoots" edge IDs in the mutation.
func (m *ClientAccountMutation) ShootsIDs() (ids []uuid.UUID) {
	for id := range m.shoots {
		ids = append(ids, id)
	}
	return
}

// ResetShoots resets all changes to the "shoots" edge.
func (m *ClientAccountMutation) ResetShoots() {
	m.shoots = nil
	m.clearedshoots = false
	m.removedshoots = nil
}

// AddTemplateIDs adds the "templates" edge to the TaskTemplate entity by ids.
func (m *ClientAccountMutation) AddTemplateIDs(ids ...uuid.UUID) {
	if m.templates == nil {
		m.templates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.templates[ids[i]] = struct{}{}
	}
}

// ClearTemplates clears the "templates" edge to the TaskTemplate entity.
func (m *ClientAccountMutation) ClearTemplates() {
	m.clearedtemplates = true
}

// TemplatesCleared reports if the "templates" edge to the TaskTemplate entity was cleared.
func (m *ClientAccountMutation) TemplatesCleared() bool {
	return m.clearedtemplates
}

// RemoveTemplateIDs removes the "templates" edge to the TaskTemplate entity by IDs.
func (m *ClientAccountMutation) RemoveTemplateIDs(ids ...uuid.UUID) {
	if m.removedtemplates == nil {
		m.removedtemplates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.templates, ids[i])
		m.removedtemplates[ids[i]] = struct{}{}
	}
}

// RemovedTemplates returns the removed IDs of the "templates" edge to the TaskTemplate entity.
func (m *ClientAccountMutation) RemovedTemplatesIDs() (ids []uuid.UUID) {
	for id := range m.removedtemplates {
		ids = append(ids, id)
	}
	return
}

// TemplatesIDs returns the "templates" edge IDs in the mutation.
func (m *ClientAccountMutation) TemplatesIDs() (ids []uuid.UUID) {
	for id := range m.templates {
		ids = append(ids, id)
	}
	return
}

// ResetTemplates resets all changes to the "templates" edge.
func (m *ClientAccountMutation) ResetTemplates() {
	m.templates = nil
	m.clearedtemplates = false
	m.removedtemplates = nil
}

// AddAssignmentIDs adds the "assignments" edge to the ClientTaskAssignment entity by ids.
func (m *ClientAccountMutation) AddAssignmentIDs(ids ...uuid.UUID) {
	if m.assignments == nil {
		m.assignments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the ClientTaskAssignment entity.
func (m *ClientAccountMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the ClientTaskAssignment entity was cleared.
func (m *ClientAccountMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the ClientTaskAssignment entity by IDs.
func (m *ClientAccountMutation) RemoveAssignmentIDs(ids ...uuid.UUID) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the ClientTaskAssignment entity.
func (m *ClientAccountMutation) RemovedAssignmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *ClientAccountMutation) AssignmentsIDs() (ids []uuid.UUID) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *ClientAccountMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by ids.
func (m *ClientAccountMutation) AddContextEntryIDs(ids ...uuid.UUID) {
	if m.context_entries == nil {
		m.context_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.context_entries[ids[i]] = struct{}{}
	}
}

// ClearContextEntries clears the "context_entries" edge to the ContextEntry entity.
func (m *ClientAccountMutation) ClearContextEntries() {
	m.clearedcontext_entries = true
}

// ContextEntriesCleared reports if the "context_entries" edge to the ContextEntry entity was cleared.
func (m *ClientAccountMutation) ContextEntriesCleared() bool {
	return m.clearedcontext_entries
}

// RemoveContextEntryIDs removes the "context_entries" edge to the ContextEntry entity by IDs.
func (m *ClientAccountMutation) RemoveContextEntryIDs(ids ...uuid.UUID) {
	if m.removedcontext_entries == nil {
		m.removedcontext_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.context_entries, ids[i])
		m.removedcontext_entries[ids[i]] = struct{}{}
	}
}

// RemovedContextEntries returns the removed IDs of the "context_entries" edge to the ContextEntry entity.
func (m *ClientAccountMutation) RemovedContextEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedcontext_entries {
		ids = append(ids, id)
	}
	return
}

// ContextEntriesIDs returns the "context_entries" edge IDs in the mutation.
func (m *ClientAccountMutation) ContextEntriesIDs() (ids []uuid.UUID) {
	for id := range m.context_entries {
		ids = append(ids, id)
	}
	return
}

// ResetContextEntries resets all changes to the "context_entries" edge.
func (m *ClientAccountMutation) ResetContextEntries() {
	m.context_entries = nil
	m.clearedcontext_entries = false
	m.removedcontext_entries = nil
}

// Where appends a list predicates to the ClientAccountMutation builder.
func (m *ClientAccountMutation) Where(ps ...predicate.ClientAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientAccount).
func (m *ClientAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientAccountMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, clientaccount.FieldName)
	}
	if m.status != nil {
		fields = append(fields, clientaccount.FieldStatus)
	}
	if m.assets != nil {
		fields = append(fields, clientaccount.FieldAssets)
	}
	if m.created_at != nil {
		fields = append(fields, clientaccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clientaccount.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clientaccount.FieldName:
		return m.Name()
	case clientaccount.FieldStatus:
		return m.Status()
	case clientaccount.FieldAssets:
		return m.Assets()
	case clientaccount.FieldCreatedAt:
		return m.CreatedAt()
	case clientaccount.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clientaccount.FieldName:
		return m.OldName(ctx)
	case clientaccount.FieldStatus:
		return m.OldStatus(ctx)
	case clientaccount.FieldAssets:
		return m.OldAssets(ctx)
	case clientaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clientaccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClientAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clientaccount.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case clientaccount.FieldStatus:
		v, ok := value.(clientaccount.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case clientaccount.FieldAssets:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssets(v)
		return nil
	case clientaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clientaccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClientAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientAccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientAccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClientAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientAccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clientaccount.FieldAssets) {
		fields = append(fields, clientaccount.FieldAssets)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientAccountMutation) ClearField(name string) error {
	switch name {
	case clientaccount.FieldAssets:
		m.ClearAssets()
		return nil
	}
	return fmt.Errorf("unknown ClientAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientAccountMutation) ResetField(name string) error {
	switch name {
	case clientaccount.FieldName:
		m.ResetName()
		return nil
	case clientaccount.FieldStatus:
		m.ResetStatus()
		return nil
	case clientaccount.FieldAssets:
		m.ResetAssets()
		return nil
	case clientaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clientaccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClientAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.cycles != nil {
		edges = append(edges, clientaccount.EdgeCycles)
	}
	if m.shoots != nil {
		edges = append(edges, clientaccount.EdgeShoots)
	}
	if m.templates != nil {
		edges = append(edges, clientaccount.EdgeTemplates)
	}
	if m.assignments != nil {
		edges = append(edges, clientaccount.EdgeAssignments)
	}
	if m.context_entries != nil {
		edges = append(edges, clientaccount.EdgeContextEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientAccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clientaccount.EdgeCycles:
		ids := make([]ent.Value, 0, len(m.cycles))
		for id := range m.cycles {
			ids = append(ids, id)
		}
		return ids
	case clientaccount.EdgeShoots:
		ids := make([]ent.Value, 0, len(m.shoots))
		for id := range m.shoots {
			ids = append(ids, id)
		}
		return ids
	case clientaccount.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.templates))
		for id := range m.templates {
			ids = append(ids, id)
		}
		return ids
	case clientaccount.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case clientaccount.EdgeContextEntries:
		ids := make([]ent.Value, 0, len(m.context_entries))
		for id := range m.context_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedcycles != nil {
		edges = append(edges, clientaccount.EdgeCycles)
	}
	if m.removedshoots != nil {
		edges = append(edges, clientaccount.EdgeShoots)
	}
	if m.removedtemplates != nil {
		edges = append(edges, clientaccount.EdgeTemplates)
	}
	if m.removedassignments != nil {
		edges = append(edges, clientaccount.EdgeAssignments)
	}
	if m.removedcontext_entries != nil {
		edges = append(edges, clientaccount.EdgeContextEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientAccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case clientaccount.EdgeCycles:
		ids := make([]ent.Value, 0, len(m.removedcycles))
		for id := range m.removedcycles {
			ids = append(ids, id)
		}
		return ids
	case clientaccount.EdgeShoots:
		ids := make([]ent.Value, 0, len(m.removedshoots))
		for id := range m.removedshoots {
			ids = append(ids, id)
		}
		return ids
	case clientaccount.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.removedtemplates))
		for id := range m.removedtemplates {
			ids = append(ids, id)
		}
		return ids
	case clientaccount.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case clientaccount.EdgeContextEntries:
		ids := make([]ent.Value, 0, len(m.removedcontext_entries))
		for id := range m.removedcontext_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedcycles {
		edges = append(edges, clientaccount.EdgeCycles)
	}
	if m.clearedshoots {
		edges = append(edges, clientaccount.EdgeShoots)
	}
	if m.clearedtemplates {
		edges = append(edges, clientaccount.EdgeTemplates)
	}
	if m.clearedassignments {
		edges = append(edges, clientaccount.EdgeAssignments)
	}
	if m.clearedcontext_entries {
		edges = append(edges, clientaccount.EdgeContextEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientAccountMutation) EdgeCleared(name string) bool {
	switch name {
	case clientaccount.EdgeCycles:
		return m.clearedcycles
	case clientaccount.EdgeShoots:
		return m.clearedshoots
	case clientaccount.EdgeTemplates:
		return m.clearedtemplates
	case clientaccount.EdgeAssignments:
		return m.clearedassignments
	case clientaccount.EdgeContextEntries:
		return m.clearedcontext_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientAccountMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ClientAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientAccountMutation) ResetEdge(name string) error {
	switch name {
	case clientaccount.EdgeCycles:
		m.ResetCycles()
		return nil
	case clientaccount.EdgeShoots:
		m.ResetShoots()
		return nil
	case clientaccount.EdgeTemplates:
		m.ResetTemplates()
		return nil
	case clientaccount.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case clientaccount.EdgeContextEntries:
		m.ResetContextEntries()
		return nil
	}
	return fmt.Errorf("unknown ClientAccount edge %s", name)
}

// ClientTaskAssignmentMutation represents an operation that mutates the ClientTaskAssignment nodes in the graph.
type ClientTaskAssignmentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	days_offset_override    *int
	adddays_offset_override *int
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	client                  *uuid.UUID
	clearedclient           bool
	template                *uuid.UUID
	clearedtemplate         bool
	assignee                *uuid.UUID
	clearedassignee         bool
	done                    bool
	oldValue                func(context.Context) (*ClientTaskAssignment, error)
	predicates              []predicate.ClientTaskAssignment
}

var _ ent.Mutation = (*ClientTaskAssignmentMutation)(nil)

// clienttaskassignmentOption allows management of the mutation configuration using functional options.
type clienttaskassignmentOption func(*ClientTaskAssignmentMutation)

// newClientTaskAssignmentMutation creates new mutation for the ClientTaskAssignment entity.
func newClientTaskAssignmentMutation(c config, op Op, opts ...clienttaskassignmentOption) *ClientTaskAssignmentMutation {
	m := &ClientTaskAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeClientTaskAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientTaskAssignmentID sets the ID field of the mutation.
func withClientTaskAssignmentID(id uuid.UUID) clienttaskassignmentOption {
	return func(m *ClientTaskAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientTaskAssignment
		)
		m.oldValue = func(ctx context.Context) (*ClientTaskAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientTaskAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientTaskAssignment sets the old ClientTaskAssignment of the mutation.
func withClientTaskAssignment(node *ClientTaskAssignment) clienttaskassignmentOption {
	return func(m *ClientTaskAssignmentMutation) {
		m.oldValue = func(context.Context) (*ClientTaskAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientTaskAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientTaskAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClientTaskAssignment entities.
func (m *ClientTaskAssignmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientTaskAssignmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientTaskAssignmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientTaskAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *ClientTaskAssignmentMutation) SetClientID(u uuid.UUID) {
	m.client = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ClientTaskAssignmentMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the ClientTaskAssignment entity.
// If the ClientTaskAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientTaskAssignmentMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ClientTaskAssignmentMutation) ResetClientID() {
	m.client = nil
}

// SetTemplateID sets the "template_id" field.
func (m *ClientTaskAssignmentMutation) SetTemplateID(u uuid.UUID) {
	m.template = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *ClientTaskAssignmentMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the ClientTaskAssignment entity.
// If the ClientTaskAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientTaskAssignmentMutation) OldTemplateID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *ClientTaskAssignmentMutation) ResetTemplateID() {
	m.template = nil
}

// SetAssigneeID sets the "assignee_id" field.
func (m *ClientTaskAssignmentMutation) SetAssigneeID(u uuid.UUID) {
	m.assignee = &u
}

// AssigneeID returns the value of the "assignee_id" field in the mutation.
func (m *ClientTaskAssignmentMutation) AssigneeID() (r uuid.UUID, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeID returns the old "assignee_id" field's value of the ClientTaskAssignment entity.
// If the ClientTaskAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientTaskAssignmentMutation) OldAssigneeID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeID: %w", err)
	}
	return oldValue.AssigneeID, nil
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (m *ClientTaskAssignmentMutation) ClearAssigneeID() {
	m.assignee = nil
	m.clearedFields[clienttaskassignment.FieldAssigneeID] = struct{}{}
}

// AssigneeIDCleared returns if the "assignee_id" field was cleared in this mutation.
func (m *ClientTaskAssignmentMutation) AssigneeIDCleared() bool {
	_, ok := m.clearedFields[clienttaskassignment.FieldAssigneeID]
	return ok
}

// ResetAssigneeID resets all changes to the "assignee_id" field.
func (m *ClientTaskAssignmentMutation) ResetAssigneeID() {
	m.assignee = nil
	delete(m.clearedFields, clienttaskassignment.FieldAssigneeID)
}

// SetDaysOffsetOverride sets the "days_offset_override" field.
func (m *ClientTaskAssignmentMutation) SetDaysOffsetOverride(i int) {
	m.days_offset_override = &i
	m.adddays_offset_override = nil
}

// DaysOffsetOverride returns the value of the "days_offset_override" field in the mutation.
func (m *ClientTaskAssignmentMutation) DaysOffsetOverride() (r int, exists bool) {
	v := m.days_offset_override
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysOffsetOverride returns the old "days_offset_override" field's value of the ClientTaskAssignment entity.
// If the ClientTaskAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientTaskAssignmentMutation) OldDaysOffsetOverride(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysOffsetOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysOffsetOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysOffsetOverride: %w", err)
	}
	return oldValue.DaysOffsetOverride, nil
}

// AddDaysOffsetOverride adds i to the "days_offset_override" field.
func (m *ClientTaskAssignmentMutation) AddDaysOffsetOverride(i int) {
	if m.adddays_offset_override != nil {
		*m.adddays_offset_override += i
	} else {
		m.adddays_offset_override = &i
	}
}

// AddedDaysOffsetOverride returns the value that was added to the "days_offset_override" field in this mutation.
func (m *ClientTaskAssignmentMutation) AddedDaysOffsetOverride() (r int, exists bool) {
	v := m.adddays_offset_override
	if v == nil {
		return
	}
	return *v, true
}

// ClearDaysOffsetOverride clears the value of the "days_offset_override" field.
func (m *ClientTaskAssignmentMutation) ClearDaysOffsetOverride() {
	m.days_offset_override = nil
	m.adddays_offset_override = nil
	m.clearedFields[clienttaskassignment.FieldDaysOffsetOverride] = struct{}{}
}

// DaysOffsetOverrideCleared returns if the "days_offset_override" field was cleared in this mutation.
func (m *ClientTaskAssignmentMutation) DaysOffsetOverrideCleared() bool {
	_, ok := m.clearedFields[clienttaskassignment.FieldDaysOffsetOverride]
	return ok
}

// ResetDaysOffsetOverride resets all changes to the "days_offset_override" field.
func (m *ClientTaskAssignmentMutation) ResetDaysOffsetOverride() {
	m.days_offset_override = nil
	m.adddays_offset_override = nil
	delete(m.clearedFields, clienttaskassignment.FieldDaysOffsetOverride)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClientTaskAssignmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClientTaskAssignmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClientTaskAssignment entity.
// If the ClientTaskAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientTaskAssignmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClientTaskAssignmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClientTaskAssignmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClientTaskAssignmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClientTaskAssignment entity.
// If the ClientTaskAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientTaskAssignmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClientTaskAssignmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (m *ClientTaskAssignmentMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[clienttaskassignment.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the ClientAccount entity was cleared.
func (m *ClientTaskAssignmentMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *ClientTaskAssignmentMutation) ClientIDs() (ids []uuid.UUID) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *ClientTaskAssignmentMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// ClearTemplate clears the "template" edge to the TaskTemplate entity.
func (m *ClientTaskAssignmentMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[clienttaskassignment.FieldTemplateID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the TaskTemplate entity was cleared.
func (m *ClientTaskAssignmentMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *ClientTaskAssignmentMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *ClientTaskAssignmentMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// ClearAssignee clears the "assignee" edge to the Profile entity.
func (m *ClientTaskAssignmentMutation) ClearAssignee() {
	m.clearedassignee = true
	m.clearedFields[clienttaskassignment.FieldAssigneeID] = struct{}{}
}

// AssigneeCleared reports if the "assignee" edge to the Profile entity was cleared.
func (m *ClientTaskAssignmentMutation) AssigneeCleared() bool {
	return m.AssigneeIDCleared() || m.clearedassignee
}

// AssigneeIDs returns the "assignee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssigneeID instead. It exists only for internal usage by the builders.
func (m *ClientTaskAssignmentMutation) AssigneeIDs() (ids []uuid.UUID) {
	if id := m.assignee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignee resets all changes to the "assignee" edge.
func (m *ClientTaskAssignmentMutation) ResetAssignee() {
	m.assignee = nil
	m.clearedassignee = false
}

// Where appends a list predicates to the ClientTaskAssignmentMutation builder.
func (m *ClientTaskAssignmentMutation) Where(ps ...predicate.ClientTaskAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientTaskAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientTaskAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientTaskAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientTaskAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientTaskAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientTaskAssignment).
func (m *ClientTaskAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientTaskAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.client != nil {
		fields = append(fields, clienttaskassignment.FieldClientID)
	}
	if m.template != nil {
		fields = append(fields, clienttaskassignment.FieldTemplateID)
	}
	if m.assignee != nil {
		fields = append(fields, clienttaskassignment.FieldAssigneeID)
	}
	if m.days_offset_override != nil {
		fields = append(fields, clienttaskassignment.FieldDaysOffsetOverride)
	}
	if m.created_at != nil {
		fields = append(fields, clienttaskassignment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clienttaskassignment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientTaskAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clienttaskassignment.FieldClientID:
		return m.ClientID()
	case clienttaskassignment.FieldTemplateID:
		return m.TemplateID()
	case clienttaskassignment.FieldAssigneeID:
		return m.AssigneeID()
	case clienttaskassignment.FieldDaysOffsetOverride:
		return m.DaysOffsetOverride()
	case clienttaskassignment.FieldCreatedAt:
		return m.CreatedAt()
	case clienttaskassignment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientTaskAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clienttaskassignment.FieldClientID:
		return m.OldClientID(ctx)
	case clienttaskassignment.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case clienttaskassignment.FieldAssigneeID:
		return m.OldAssigneeID(ctx)
	case clienttaskassignment.FieldDaysOffsetOverride:
		return m.OldDaysOffsetOverride(ctx)
	case clienttaskassignment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clienttaskassignment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClientTaskAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientTaskAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clienttaskassignment.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case clienttaskassignment.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case clienttaskassignment.FieldAssigneeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeID(v)
		return nil
	case clienttaskassignment.FieldDaysOffsetOverride:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysOffsetOverride(v)
		return nil
	case clienttaskassignment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clienttaskassignment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClientTaskAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientTaskAssignmentMutation) AddedFields() []string {
	var fields []string
	if m.adddays_offset_override != nil {
		fields = append(fields, clienttaskassignment.FieldDaysOffsetOverride)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientTaskAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clienttaskassignment.FieldDaysOffsetOverride:
		return m.AddedDaysOffsetOverride()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientTaskAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clienttaskassignment.FieldDaysOffsetOverride:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDaysOffsetOverride(v)
		return nil
	}
	return fmt.Errorf("unknown ClientTaskAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientTaskAssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clienttaskassignment.FieldAssigneeID) {
		fields = append(fields, clienttaskassignment.FieldAssigneeID)
	}
	if m.FieldCleared(clienttaskassignment.FieldDaysOffsetOverride) {
		fields = append(fields, clienttaskassignment.FieldDaysOffsetOverride)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientTaskAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientTaskAssignmentMutation) ClearField(name string) error {
	switch name {
	case clienttaskassignment.FieldAssigneeID:
		m.ClearAssigneeID()
		return nil
	case clienttaskassignment.FieldDaysOffsetOverride:
		m.ClearDaysOffsetOverride()
		return nil
	}
	return fmt.Errorf("unknown ClientTaskAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientTaskAssignmentMutation) ResetField(name string) error {
	switch name {
	case clienttaskassignment.FieldClientID:
		m.ResetClientID()
		return nil
	case clienttaskassignment.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case clienttaskassignment.FieldAssigneeID:
		m.ResetAssigneeID()
		return nil
	case clienttaskassignment.FieldDaysOffsetOverride:
		m.ResetDaysOffsetOverride()
		return nil
	case clienttaskassignment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clienttaskassignment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClientTaskAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientTaskAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.client != nil {
		edges = append(edges, clienttaskassignment.EdgeClient)
	}
	if m.template != nil {
		edges = append(edges, clienttaskassignment.EdgeTemplate)
	}
	if m.assignee != nil {
		edges = append(edges, clienttaskassignment.EdgeAssignee)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientTaskAssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clienttaskassignment.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case clienttaskassignment.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	case clienttaskassignment.EdgeAssignee:
		if id := m.assignee; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientTaskAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientTaskAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientTaskAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedclient {
		edges = append(edges, clienttaskassignment.EdgeClient)
	}
	if m.clearedtemplate {
		edges = append(edges, clienttaskassignment.EdgeTemplate)
	}
	if m.clearedassignee {
		edges = append(edges, clienttaskassignment.EdgeAssignee)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientTaskAssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case clienttaskassignment.EdgeClient:
		return m.clearedclient
	case clienttaskassignment.EdgeTemplate:
		return m.clearedtemplate
	case clienttaskassignment.EdgeAssignee:
		return m.clearedassignee
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientTaskAssignmentMutation) ClearEdge(name string) error {
	switch name {
	case clienttaskassignment.EdgeClient:
		m.ClearClient()
		return nil
	case clienttaskassignment.EdgeTemplate:
		m.ClearTemplate()
		return nil
	case clienttaskassignment.EdgeAssignee:
		m.ClearAssignee()
		return nil
	}
	return fmt.Errorf("unknown ClientTaskAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientTaskAssignmentMutation) ResetEdge(name string) error {
	switch name {
	case clienttaskassignment.EdgeClient:
		m.ResetClient()
		return nil
	case clienttaskassignment.EdgeTemplate:
		m.ResetTemplate()
		return nil
	case clienttaskassignment.EdgeAssignee:
		m.ResetAssignee()
		return nil
	}
	return fmt.Errorf("unknown ClientTaskAssignment edge %s", name)
}

// ContextEntryMutation represents an operation that mutates the ContextEntry nodes in the graph.
type ContextEntryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	_type         *contextentry.Type
	content       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	client        *uuid.UUID
	clearedclient bool
	cycle         *uuid.UUID
	clearedcycle  bool
	author        *uuid.UUID
	clearedauthor bool
	done          bool
	oldValue      func(context.Context) (*ContextEntry, error)
	predicates    []predicate.ContextEntry
}

var _ ent.Mutation = (*ContextEntryMutation)(nil)

// contextentryOption allows management of the mutation configuration using functional options.
type contextentryOption func(*ContextEntryMutation)

// newContextEntryMutation creates new mutation for the ContextEntry entity.
func newContextEntryMutation(c config, op Op, opts ...contextentryOption) *ContextEntryMutation {
	m := &ContextEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeContextEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextEntryID sets the ID field of the mutation.
func withContextEntryID(id uuid.UUID) contextentryOption {
	return func(m *ContextEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextEntry
		)
		m.oldValue = func(ctx context.Context) (*ContextEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextEntry sets the old ContextEntry of the mutation.
func withContextEntry(node *ContextEntry) contextentryOption {
	return func(m *ContextEntryMutation) {
		m.oldValue = func(context.Context) (*ContextEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContextEntry entities.
func (m *ContextEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *ContextEntryMutation) SetClientID(u uuid.UUID) {
	m.client = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ContextEntryMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ContextEntryMutation) ResetClientID() {
	m.client = nil
}

// SetCycleID sets the "cycle_id" field.
func (m *ContextEntryMutation) SetCycleID(u uuid.UUID) {
	m.cycle = &u
}

// CycleID returns the value of the "cycle_id" field in the mutation.
func (m *ContextEntryMutation) CycleID() (r uuid.UUID, exists bool) {
	v := m.cycle
	if v == nil {
		return
	}
	return *v, true
}

// OldCycleID returns the old "cycle_id" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldCycleID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycleID: %w", err)
	}
	return oldValue.CycleID, nil
}

// ClearCycleID clears the value of the "cycle_id" field.
func (m *ContextEntryMutation) ClearCycleID() {
	m.cycle = nil
	m.clearedFields[contextentry.FieldCycleID] = struct{}{}
}

// CycleIDCleared returns if the "cycle_id" field was cleared in this mutation.
func (m *ContextEntryMutation) CycleIDCleared() bool {
	_, ok := m.clearedFields[contextentry.FieldCycleID]
	return ok
}

// ResetCycleID resets all changes to the "cycle_id" field.
func (m *ContextEntryMutation) ResetCycleID() {
	m.cycle = nil
	delete(m.clearedFields, contextentry.FieldCycleID)
}

// SetAuthorID sets the "author_id" field.
func (m *ContextEntryMutation) SetAuthorID(u uuid.UUID) {
	m.author = &u
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *ContextEntryMutation) AuthorID() (r uuid.UUID, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldAuthorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *ContextEntryMutation) ResetAuthorID() {
	m.author = nil
}

// SetType sets the "type" field.
func (m *ContextEntryMutation) SetType(c contextentry.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *ContextEntryMutation) GetType() (r contextentry.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldType(ctx context.Context) (v contextentry.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ContextEntryMutation) ResetType() {
	m._type = nil
}

// SetContent sets the "content" field.
func (m *ContextEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ContextEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ContextEntryMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContextEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContextEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContextEntry entity.
// If the ContextEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContextEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (m *ContextEntryMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[contextentry.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the ClientAccount entity was cleared.
func (m *ContextEntryMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *ContextEntryMutation) ClientIDs() (ids []uuid.UUID) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *ContextEntryMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// ClearCycle clears the "cycle" edge to the Cycle entity.
func (m *ContextEntryMutation) ClearCycle() {
	m.clearedcycle = true
	m.clearedFields[contextentry.FieldCycleID] = struct{}{}
}

// CycleCleared reports if the "cycle" edge to the Cycle entity was cleared.
func (m *ContextEntryMutation) CycleCleared() bool {
	return m.CycleIDCleared() || m.clearedcycle
}

// CycleIDs returns the "cycle" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CycleID instead. It exists only for internal usage by the builders.
func (m *ContextEntryMutation) CycleIDs() (ids []uuid.UUID) {
	if id := m.cycle; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCycle resets all changes to the "cycle" edge.
func (m *ContextEntryMutation) ResetCycle() {
	m.cycle = nil
	m.clearedcycle = false
}

// ClearAuthor clears the "author" edge to the Profile entity.
func (m *ContextEntryMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[contextentry.FieldAuthorID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the Profile entity was cleared.
func (m *ContextEntryMutation) AuthorCleared() bool {
	return m.clearedauthor
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *ContextEntryMutation) AuthorIDs() (ids []uuid.UUID) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *ContextEntryMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// Where appends a list predicates to the ContextEntryMutation builder.
func (m *ContextEntryMutation) Where(ps ...predicate.ContextEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextEntry).
func (m *ContextEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.client != nil {
		fields = append(fields, contextentry.FieldClientID)
	}
	if m.cycle != nil {
		fields = append(fields, contextentry.FieldCycleID)
	}
	if m.author != nil {
		fields = append(fields, contextentry.FieldAuthorID)
	}
	if m._type != nil {
		fields = append(fields, contextentry.FieldType)
	}
	if m.content != nil {
		fields = append(fields, contextentry.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, contextentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextentry.FieldClientID:
		return m.ClientID()
	case contextentry.FieldCycleID:
		return m.CycleID()
	case contextentry.FieldAuthorID:
		return m.AuthorID()
	case contextentry.FieldType:
		return m.GetType()
	case contextentry.FieldContent:
		return m.Content()
	case contextentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextentry.FieldClientID:
		return m.OldClientID(ctx)
	case contextentry.FieldCycleID:
		return m.OldCycleID(ctx)
	case contextentry.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case contextentry.FieldType:
		return m.OldType(ctx)
	case contextentry.FieldContent:
		return m.OldContent(ctx)
	case contextentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContextEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextentry.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case contextentry.FieldCycleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycleID(v)
		return nil
	case contextentry.FieldAuthorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case contextentry.FieldType:
		v, ok := value.(contextentry.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case contextentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case contextentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContextEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContextEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contextentry.FieldCycleID) {
		fields = append(fields, contextentry.FieldCycleID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextEntryMutation) ClearField(name string) error {
	switch name {
	case contextentry.FieldCycleID:
		m.ClearCycleID()
		return nil
	}
	return fmt.Errorf("unknown ContextEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextEntryMutation) ResetField(name string) error {
	switch name {
	case contextentry.FieldClientID:
		m.ResetClientID()
		return nil
	case contextentry.FieldCycleID:
		m.ResetCycleID()
		return nil
	case contextentry.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case contextentry.FieldType:
		m.ResetType()
		return nil
	case contextentry.FieldContent:
		m.ResetContent()
		return nil
	case contextentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContextEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.client != nil {
		edges = append(edges, contextentry.EdgeClient)
	}
	if m.cycle != nil {
		edges = append(edges, contextentry.EdgeCycle)
	}
	if m.author != nil {
		edges = append(edges, contextentry.EdgeAuthor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contextentry.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case contextentry.EdgeCycle:
		if id := m.cycle; id != nil {
			return []ent.Value{*id}
		}
	case contextentry.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedclient {
		edges = append(edges, contextentry.EdgeClient)
	}
	if m.clearedcycle {
		edges = append(edges, contextentry.EdgeCycle)
	}
	if m.clearedauthor {
		edges = append(edges, contextentry.EdgeAuthor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case contextentry.EdgeClient:
		return m.clearedclient
	case contextentry.EdgeCycle:
		return m.clearedcycle
	case contextentry.EdgeAuthor:
		return m.clearedauthor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextEntryMutation) ClearEdge(name string) error {
	switch name {
	case contextentry.EdgeClient:
		m.ClearClient()
		return nil
	case contextentry.EdgeCycle:
		m.ClearCycle()
		return nil
	case contextentry.EdgeAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown ContextEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextEntryMutation) ResetEdge(name string) error {
	switch name {
	case contextentry.EdgeClient:
		m.ResetClient()
		return nil
	case contextentry.EdgeCycle:
		m.ResetCycle()
		return nil
	case contextentry.EdgeAuthor:
		m.ResetAuthor()
		return nil
	}
	return fmt.Errorf("unknown ContextEntry edge %s", name)
}

// CycleMutation represents an operation that mutates the Cycle nodes in the graph.
type CycleMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	month                  *time.Time
	status                 *cycle.Status
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	client                 *uuid.UUID
	clearedclient          bool
	shoots                 map[uuid.UUID]struct{}
	removedshoots          map[uuid.UUID]struct{}
	clearedshoots          bool
	context_entries        map[uuid.UUID]struct{}
	removedcontext_entries map[uuid.UUID]struct{}
	clearedcontext_entries bool
	done                   bool
	oldValue               func(context.Context) (*Cycle, error)
	predicates             []predicate.Cycle
}

var _ ent.Mutation = (*CycleMutation)(nil)

// cycleOption allows management of the mutation configuration using functional options.
type cycleOption func(*CycleMutation)

// newCycleMutation creates new mutation for the Cycle entity.
func newCycleMutation(c config, op Op, opts ...cycleOption) *CycleMutation {
	m := &CycleMutation{
		config:        c,
		op:            op,
		typ:           TypeCycle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCycleID sets the ID field of the mutation.
func withCycleID(id uuid.UUID) cycleOption {
	return func(m *CycleMutation) {
		var (
			err   error
			once  sync.Once
			value *Cycle
		)
		m.oldValue = func(ctx context.Context) (*Cycle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cycle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCycle sets the old Cycle of the mutation.
func withCycle(node *Cycle) cycleOption {
	return func(m *CycleMutation) {
		m.oldValue = func(context.Context) (*Cycle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CycleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CycleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Cycle entities.
func (m *CycleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CycleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CycleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cycle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *CycleMutation) SetClientID(u uuid.UUID) {
	m.client = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *CycleMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Cycle entity.
// If the Cycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CycleMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *CycleMutation) ResetClientID() {
	m.client = nil
}

// SetMonth sets the "month" field.
func (m *CycleMutation) SetMonth(t time.Time) {
	m.month = &t
}

// Month returns the value of the "month" field in the mutation.
func (m *CycleMutation) Month() (r time.Time, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the Cycle entity.
// If the Cycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CycleMutation) OldMonth(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// ResetMonth resets all changes to the "month" field.
func (m *CycleMutation) ResetMonth() {
	m.month = nil
}

// SetStatus sets the "status" field.
func (m *CycleMutation) SetStatus(c cycle.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CycleMutation) Status() (r cycle.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Cycle entity.
// If the Cycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CycleMutation) OldStatus(ctx context.Context) (v cycle.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CycleMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CycleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CycleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Cycle entity.
// If the Cycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CycleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CycleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CycleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CycleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Cycle entity.
// If the Cycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CycleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CycleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (m *CycleMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[cycle.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the ClientAccount entity was cleared.
func (m *CycleMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *CycleMutation) ClientIDs() (ids []uuid.UUID) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *CycleMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// AddShootIDs adds the "shoots" edge to the Shoot entity by ids.
func (m *CycleMutation) AddShootIDs(ids ...uuid.UUID) {
	if m.shoots == nil {
		m.shoots = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.shoots[ids[i]] = struct{}{}
	}
}

// ClearShoots clears the "shoots" edge to the Shoot entity.
func (m *CycleMutation) ClearShoots() {
	m.clearedshoots = true
}

// ShootsCleared reports if the "shoots" edge to the Shoot entity was cleared.
func (m *CycleMutation) ShootsCleared() bool {
	return m.clearedshoots
}

// RemoveShootIDs removes the "shoots" edge to the Shoot entity by IDs.
func (m *CycleMutation) RemoveShootIDs(ids ...uuid.UUID) {
	if m.removedshoots == nil {
		m.removedshoots = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.shoots, ids[i])
		m.removedshoots[ids[i]] = struct{}{}
	}
}

// RemovedShoots returns the removed IDs of the "shoots" edge to the Shoot entity.
func (m *CycleMutation) RemovedShootsIDs() (ids []uuid.UUID) {
	for id := range m.removedshoots {
		ids = append(ids, id)
	}
	return
}

// ShootsIDs returns the "shoots" edge IDs in the mutation.
func (m *CycleMutation) ShootsIDs() (ids []uuid.UUID) {
	for id := range m.shoots {
		ids = append(ids, id)
	}
	return
}

// ResetShoots resets all changes to the "shoots" edge.
func (m *CycleMutation) ResetShoots() {
	m.shoots = nil
	m.clearedshoots = false
	m.removedshoots = nil
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by ids.
func (m *CycleMutation) AddContextEntryIDs(ids ...uuid.UUID) {
	if m.context_entries == nil {
		m.context_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.context_entries[ids[i]] = struct{}{}
	}
}

// ClearContextEntries clears the "context_entries" edge to the ContextEntry entity.
func (m *CycleMutation) ClearContextEntries() {
	m.clearedcontext_entries = true
}

// ContextEntriesCleared reports if the "context_entries" edge to the ContextEntry entity was cleared.
func (m *CycleMutation) ContextEntriesCleared() bool {
	return m.clearedcontext_entries
}

// RemoveContextEntryIDs removes the "context_entries" edge to the ContextEntry entity by IDs.
func (m *CycleMutation) RemoveContextEntryIDs(ids ...uuid.UUID) {
	if m.removedcontext_entries == nil {
		m.removedcontext_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.context_entries, ids[i])
		m.removedcontext_entries[ids[i]] = struct{}{}
	}
}

// RemovedContextEntries returns the removed IDs of the "context_entries" edge to the ContextEntry entity.
func (m *CycleMutation) RemovedContextEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedcontext_entries {
		ids = append(ids, id)
	}
	return
}

// ContextEntriesIDs returns the "context_entries" edge IDs in the mutation.
func (m *CycleMutation) ContextEntriesIDs() (ids []uuid.UUID) {
	for id := range m.context_entries {
		ids = append(ids, id)
	}
	return
}

// ResetContextEntries resets all changes to the "context_entries" edge.
func (m *CycleMutation) ResetContextEntries() {
	m.context_entries = nil
	m.clearedcontext_entries = false
	m.removedcontext_entries = nil
}

// Where appends a list predicates to the CycleMutation builder.
func (m *CycleMutation) Where(ps ...predicate.Cycle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CycleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CycleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cycle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CycleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CycleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cycle).
func (m *CycleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CycleMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.client != nil {
		fields = append(fields, cycle.FieldClientID)
	}
	if m.month != nil {
		fields = append(fields, cycle.FieldMonth)
	}
	if m.status != nil {
		fields = append(fields, cycle.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, cycle.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cycle.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CycleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cycle.FieldClientID:
		return m.ClientID()
	case cycle.FieldMonth:
		return m.Month()
	case cycle.FieldStatus:
		return m.Status()
	case cycle.FieldCreatedAt:
		return m.CreatedAt()
	case cycle.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CycleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cycle.FieldClientID:
		return m.OldClientID(ctx)
	case cycle.FieldMonth:
		return m.OldMonth(ctx)
	case cycle.FieldStatus:
		return m.OldStatus(ctx)
	case cycle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cycle.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Cycle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CycleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cycle.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case cycle.FieldMonth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case cycle.FieldStatus:
		v, ok := value.(cycle.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case cycle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cycle.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Cycle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CycleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CycleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CycleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Cycle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CycleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CycleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CycleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Cycle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CycleMutation) ResetField(name string) error {
	switch name {
	case cycle.FieldClientID:
		m.ResetClientID()
		return nil
	case cycle.FieldMonth:
		m.ResetMonth()
		return nil
	case cycle.FieldStatus:
		m.ResetStatus()
		return nil
	case cycle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cycle.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Cycle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CycleMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.client != nil {
		edges = append(edges, cycle.EdgeClient)
	}
	if m.shoots != nil {
		edges = append(edges, cycle.EdgeShoots)
	}
	if m.context_entries != nil {
		edges = append(edges, cycle.EdgeContextEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CycleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cycle.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case cycle.EdgeShoots:
		ids := make([]ent.Value, 0, len(m.shoots))
		for id := range m.shoots {
			ids = append(ids, id)
		}
		return ids
	case cycle.EdgeContextEntries:
		ids := make([]ent.Value, 0, len(m.context_entries))
		for id := range m.context_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CycleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedshoots != nil {
		edges = append(edges, cycle.EdgeShoots)
	}
	if m.removedcontext_entries != nil {
		edges = append(edges, cycle.EdgeContextEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CycleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cycle.EdgeShoots:
		ids := make([]ent.Value, 0, len(m.removedshoots))
		for id := range m.removedshoots {
			ids = append(ids, id)
		}
		return ids
	case cycle.EdgeContextEntries:
		ids := make([]ent.Value, 0, len(m.removedcontext_entries))
		for id := range m.removedcontext_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CycleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedclient {
		edges = append(edges, cycle.EdgeClient)
	}
	if m.clearedshoots {
		edges = append(edges, cycle.EdgeShoots)
	}
	if m.clearedcontext_entries {
		edges = append(edges, cycle.EdgeContextEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CycleMutation) EdgeCleared(name string) bool {
	switch name {
	case cycle.EdgeClient:
		return m.clearedclient
	case cycle.EdgeShoots:
		return m.clearedshoots
	case cycle.EdgeContextEntries:
		return m.clearedcontext_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CycleMutation) ClearEdge(name string) error {
	switch name {
	case cycle.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown Cycle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CycleMutation) ResetEdge(name string) error {
	switch name {
	case cycle.EdgeClient:
		m.ResetClient()
		return nil
	case cycle.EdgeShoots:
		m.ResetShoots()
		return nil
	case cycle.EdgeContextEntries:
		m.ResetContextEntries()
		return nil
	}
	return fmt.Errorf("unknown Cycle edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	email                      *string
	display_name               *string
	avatar_url                 *string
	role                       *profile.Role
	password_hash              *string
	is_active                  *bool
	invite_token               *string
	invite_expires_at          *time.Time
	last_login                 *time.Time
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	assigned_tasks             map[uuid.UUID]struct{}
	removedassigned_tasks      map[uuid.UUID]struct{}
	clearedassigned_tasks      bool
	context_entries            map[uuid.UUID]struct{}
	removedcontext_entries     map[uuid.UUID]struct{}
	clearedcontext_entries     bool
	default_assignments        map[uuid.UUID]struct{}
	removeddefault_assignments map[uuid.UUID]struct{}
	cleareddefault_assignments bool
	activity_events            map[uuid.UUID]struct{}
	removedactivity_events     map[uuid.UUID]struct{}
	clearedactivity_events     bool
	done                       bool
	oldValue                   func(context.Context) (*Profile, error)
	predicates                 []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *ProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ProfileMutation) ResetEmail() {
	m.email = nil
}

// SetDisplayName sets the "display_name" field.
func (m *ProfileMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ProfileMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *ProfileMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[profile.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *ProfileMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[profile.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ProfileMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, profile.FieldDisplayName)
}

// SetAvatarURL sets the "avatar_url" field.
func (m *ProfileMutation) SetAvatarURL(s string) {
	m.avatar_url = &s
}

// AvatarURL returns the value of the "avatar_url" field in the mutation.
func (m *ProfileMutation) AvatarURL() (r string, exists bool) {
	v := m.avatar_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarURL returns the old "avatar_url" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldAvatarURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarURL: %w", err)
	}
	return oldValue.AvatarURL, nil
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (m *ProfileMutation) ClearAvatarURL() {
	m.avatar_url = nil
	m.clearedFields[profile.FieldAvatarURL] = struct{}{}
}

// AvatarURLCleared returns if the "avatar_url" field was cleared in this mutation.
func (m *ProfileMutation) AvatarURLCleared() bool {
	_, ok := m.clearedFields[profile.FieldAvatarURL]
	return ok
}

// ResetAvatarURL resets all changes to the "avatar_url" field.
func (m *ProfileMutation) ResetAvatarURL() {
	m.avatar_url = nil
	delete(m.clearedFields, profile.FieldAvatarURL)
}

// SetRole sets the "role" field.
func (m *ProfileMutation) SetRole(pr profile.Role) {
	m.role = &pr
}

// Role returns the value of the "role" field in the mutation.
func (m *ProfileMutation) Role() (r profile.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldRole(ctx context.Context) (v profile.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ProfileMutation) ResetRole() {
	m.role = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *ProfileMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *ProfileMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *ProfileMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[profile.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *ProfileMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[profile.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *ProfileMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, profile.FieldPasswordHash)
}

// SetIsActive sets the "is_active" field.
func (m *ProfileMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ProfileMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ProfileMutation) ResetIsActive() {
	m.is_active = nil
}

// SetInviteToken sets the "invite_token" field.
func (m *ProfileMutation) SetInviteToken(s string) {
	m.invite_token = &s
}

// InviteToken returns the value of the "invite_token" field in the mutation.
func (m *ProfileMutation) InviteToken() (r string, exists bool) {
	v := m.invite_token
	if v == nil {
		return
	}
	return *v, true
}

// OldInviteToken returns the old "invite_token" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldInviteToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInviteToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInviteToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInviteToken: %w", err)
	}
	return oldValue.InviteToken, nil
}

// ClearInviteToken clears the value of the "invite_token" field.
func (m *ProfileMutation) ClearInviteToken() {
	m.invite_token = nil
	m.clearedFields[profile.FieldInviteToken] = struct{}{}
}

// InviteTokenCleared returns if the "invite_token" field was cleared in this mutation.
func (m *ProfileMutation) InviteTokenCleared() bool {
	_, ok := m.clearedFields[profile.FieldInviteToken]
	return ok
}

// ResetInviteToken resets all changes to the "invite_token" field.
func (m *ProfileMutation) ResetInviteToken() {
	m.invite_token = nil
	delete(m.clearedFields, profile.FieldInviteToken)
}

// SetInviteExpiresAt sets the "invite_expires_at" field.
func (m *ProfileMutation) SetInviteExpiresAt(t time.Time) {
	m.invite_expires_at = &t
}

// InviteExpiresAt returns the value of the "invite_expires_at" field in the mutation.
func (m *ProfileMutation) InviteExpiresAt() (r time.Time, exists bool) {
	v := m.invite_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInviteExpiresAt returns the old "invite_expires_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldInviteExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInviteExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInviteExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInviteExpiresAt: %w", err)
	}
	return oldValue.InviteExpiresAt, nil
}

// ClearInviteExpiresAt clears the value of the "invite_expires_at" field.
func (m *ProfileMutation) ClearInviteExpiresAt() {
	m.invite_expires_at = nil
	m.clearedFields[profile.FieldInviteExpiresAt] = struct{}{}
}

// InviteExpiresAtCleared returns if the "invite_expires_at" field was cleared in this mutation.
func (m *ProfileMutation) InviteExpiresAtCleared() bool {
	_, ok := m.clearedFields[profile.FieldInviteExpiresAt]
	return ok
}

// ResetInviteExpiresAt resets all changes to the "invite_expires_at" field.
func (m *ProfileMutation) ResetInviteExpiresAt() {
	m.invite_expires_at = nil
	delete(m.clearedFields, profile.FieldInviteExpiresAt)
}

// SetLastLogin sets the "last_login" field.
func (m *ProfileMutation) SetLastLogin(t time.Time) {
	m.last_login = &t
}

// LastLogin returns the value of the "last_login" field in the mutation.
func (m *ProfileMutation) LastLogin() (r time.Time, exists bool) {
	v := m.last_login
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLogin returns the old "last_login" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldLastLogin(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLogin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLogin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLogin: %w", err)
	}
	return oldValue.LastLogin, nil
}

// ClearLastLogin clears the value of the "last_login" field.
func (m *ProfileMutation) ClearLastLogin() {
	m.last_login = nil
	m.clearedFields[profile.FieldLastLogin] = struct{}{}
}

// LastLoginCleared returns if the "last_login" field was cleared in this mutation.
func (m *ProfileMutation) LastLoginCleared() bool {
	_, ok := m.clearedFields[profile.FieldLastLogin]
	return ok
}

// ResetLastLogin resets all changes to the "last_login" field.
func (m *ProfileMutation) ResetLastLogin() {
	m.last_login = nil
	delete(m.clearedFields, profile.FieldLastLogin)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAssignedTaskIDs adds the "assigned_tasks" edge to the Task entity by ids.
func (m *ProfileMutation) AddAssignedTaskIDs(ids ...uuid.UUID) {
	if m.assigned_tasks == nil {
		m.assigned_tasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.assigned_tasks[ids[i]] = struct{}{}
	}
}

// ClearAssignedTasks clears the "assigned_tasks" edge to the Task entity.
func (m *ProfileMutation) ClearAssignedTasks() {
	m.clearedassigned_tasks = true
}

// AssignedTasksCleared reports if the "assigned_tasks" edge to the Task entity was cleared.
func (m *ProfileMutation) AssignedTasksCleared() bool {
	return m.clearedassigned_tasks
}

// RemoveAssignedTaskIDs removes the "assigned_tasks" edge to the Task entity by IDs.
func (m *ProfileMutation) RemoveAssignedTaskIDs(ids ...uuid.UUID) {
	if m.removedassigned_tasks == nil {
		m.removedassigned_tasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.assigned_tasks, ids[i])
		m.removedassigned_tasks[ids[i]] = struct{}{}
	}
}

// RemovedAssignedTasks returns the removed IDs of the "assigned_tasks" edge to the Task entity.
func (m *ProfileMutation) RemovedAssignedTasksIDs() (ids []uuid.UUID) {
	for id := range m.removedassigned_tasks {
		ids = append(ids, id)
	}
	return
}

// AssignedTasksIDs returns the "assigned_tasks" edge IDs in the mutation.
func (m *ProfileMutation) AssignedTasksIDs() (ids []uuid.UUID) {
	for id := range m.assigned_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetAssignedTasks resets all changes to the "assigned_tasks" edge.
func (m *ProfileMutation) ResetAssignedTasks() {
	m.assigned_tasks = nil
	m.clearedassigned_tasks = false
	m.removedassigned_tasks = nil
}

// AddContextEntryIDs adds the "context_entries" edge to the ContextEntry entity by ids.
func (m *ProfileMutation) AddContextEntryIDs(ids ...uuid.UUID) {
	if m.context_entries == nil {
		m.context_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.context_entries[ids[i]] = struct{}{}
	}
}

// ClearContextEntries clears the "context_entries" edge to the ContextEntry entity.
func (m *ProfileMutation) ClearContextEntries() {
	m.clearedcontext_entries = true
}

// ContextEntriesCleared reports if the "context_entries" edge to the ContextEntry entity was cleared.
func (m *ProfileMutation) ContextEntriesCleared() bool {
	return m.clearedcontext_entries
}

// RemoveContextEntryIDs removes the "context_entries" edge to the ContextEntry entity by IDs.
func (m *ProfileMutation) RemoveContextEntryIDs(ids ...uuid.UUID) {
	if m.removedcontext_entries == nil {
		m.removedcontext_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.context_entries, ids[i])
		m.removedcontext_entries[ids[i]] = struct{}{}
	}
}

// RemovedContextEntries returns the removed IDs of the "context_entries" edge to the ContextEntry entity.
func (m *ProfileMutation) RemovedContextEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedcontext_entries {
		ids = append(ids, id)
	}
	return
}

// ContextEntriesIDs returns the "context_entries" edge IDs in the mutation.
func (m *ProfileMutation) ContextEntriesIDs() (ids []uuid.UUID) {
	for id := range m.context_entries {
		ids = append(ids, id)
	}
	return
}

// ResetContextEntries resets all changes to the "context_entries" edge.
func (m *ProfileMutation) ResetContextEntries() {
	m.context_entries = nil
	m.clearedcontext_entries = false
	m.removedcontext_entries = nil
}

// AddDefaultAssignmentIDs adds the "default_assignments" edge to the ClientTaskAssignment entity by ids.
func (m *ProfileMutation) AddDefaultAssignmentIDs(ids ...uuid.UUID) {
	if m.default_assignments == nil {
		m.default_assignments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.default_assignments[ids[i]] = struct{}{}
	}
}

// ClearDefaultAssignments clears the "default_assignments" edge to the ClientTaskAssignment entity.
func (m *ProfileMutation) ClearDefaultAssignments() {
	m.cleareddefault_assignments = true
}

// DefaultAssignmentsCleared reports if the "default_assignments" edge to the ClientTaskAssignment entity was cleared.
func (m *ProfileMutation) DefaultAssignmentsCleared() bool {
	return m.cleareddefault_assignments
}

// RemoveDefaultAssignmentIDs removes the "default_assignments" edge to the ClientTaskAssignment entity by IDs.
func (m *ProfileMutation) RemoveDefaultAssignmentIDs(ids ...uuid.UUID) {
	if m.removeddefault_assignments == nil {
		m.removeddefault_assignments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.default_assignments, ids[i])
		m.removeddefault_assignments[ids[i]] = struct{}{}
	}
}

// RemovedDefaultAssignments returns the removed IDs of the "default_assignments" edge to the ClientTaskAssignment entity.
func (m *ProfileMutation) RemovedDefaultAssignmentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddefault_assignments {
		ids = append(ids, id)
	}
	return
}

// DefaultAssignmentsIDs returns the "default_assignments" edge IDs in the mutation.
func (m *ProfileMutation) DefaultAssignmentsIDs() (ids []uuid.UUID) {
	for id := range m.default_assignments {
		ids = append(ids, id)
	}
	return
}

// ResetDefaultAssignments resets all changes to the "default_assignments" edge.
func (m *ProfileMutation) ResetDefaultAssignments() {
	m.default_assignments = nil
	m.cleareddefault_assignments = false
	m.removeddefault_assignments = nil
}

// AddActivityEventIDs adds the "activity_events" edge to the ActivityEvent entity by ids.
func (m *ProfileMutation) AddActivityEventIDs(ids ...uuid.UUID) {
	if m.activity_events == nil {
		m.activity_events = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.activity_events[ids[i]] = struct{}{}
	}
}

// ClearActivityEvents clears the "activity_events" edge to the ActivityEvent entity.
func (m *ProfileMutation) ClearActivityEvents() {
	m.clearedactivity_events = true
}

// ActivityEventsCleared reports if the "activity_events" edge to the ActivityEvent entity was cleared.
func (m *ProfileMutation) ActivityEventsCleared() bool {
	return m.clearedactivity_events
}

// RemoveActivityEventIDs removes the "activity_events" edge to the ActivityEvent entity by IDs.
func (m *ProfileMutation) RemoveActivityEventIDs(ids ...uuid.UUID) {
	if m.removedactivity_events == nil {
		m.removedactivity_events = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.activity_events, ids[i])
		m.removedactivity_events[ids[i]] = struct{}{}
	}
}

// RemovedActivityEvents returns the removed IDs of the "activity_events" edge to the ActivityEvent entity.
func (m *ProfileMutation) RemovedActivityEventsIDs() (ids []uuid.UUID) {
	for id := range m.removedactivity_events {
		ids = append(ids, id)
	}
	return
}

// ActivityEventsIDs returns the "activity_events" edge IDs in the mutation.
func (m *ProfileMutation) ActivityEventsIDs() (ids []uuid.UUID) {
	for id := range m.activity_events {
		ids = append(ids, id)
	}
	return
}

// ResetActivityEvents resets all changes to the "activity_events" edge.
func (m *ProfileMutation) ResetActivityEvents() {
	m.activity_events = nil
	m.clearedactivity_events = false
	m.removedactivity_events = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.email != nil {
		fields = append(fields, profile.FieldEmail)
	}
	if m.display_name != nil {
		fields = append(fields, profile.FieldDisplayName)
	}
	if m.avatar_url != nil {
		fields = append(fields, profile.FieldAvatarURL)
	}
	if m.role != nil {
		fields = append(fields, profile.FieldRole)
	}
	if m.password_hash != nil {
		fields = append(fields, profile.FieldPasswordHash)
	}
	if m.is_active != nil {
		fields = append(fields, profile.FieldIsActive)
	}
	if m.invite_token != nil {
		fields = append(fields, profile.FieldInviteToken)
	}
	if m.invite_expires_at != nil {
		fields = append(fields, profile.FieldInviteExpiresAt)
	}
	if m.last_login != nil {
		fields = append(fields, profile.FieldLastLogin)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldEmail:
		return m.Email()
	case profile.FieldDisplayName:
		return m.DisplayName()
	case profile.FieldAvatarURL:
		return m.AvatarURL()
	case profile.FieldRole:
		return m.Role()
	case profile.FieldPasswordHash:
		return m.PasswordHash()
	case profile.FieldIsActive:
		return m.IsActive()
	case profile.FieldInviteToken:
		return m.InviteToken()
	case profile.FieldInviteExpiresAt:
		return m.InviteExpiresAt()
	case profile.FieldLastLogin:
		return m.LastLogin()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldEmail:
		return m.OldEmail(ctx)
	case profile.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case profile.FieldAvatarURL:
		return m.OldAvatarURL(ctx)
	case profile.FieldRole:
		return m.OldRole(ctx)
	case profile.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case profile.FieldIsActive:
		return m.OldIsActive(ctx)
	case profile.FieldInviteToken:
		return m.OldInviteToken(ctx)
	case profile.FieldInviteExpiresAt:
		return m.OldInviteExpiresAt(ctx)
	case profile.FieldLastLogin:
		return m.OldLastLogin(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case profile.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case profile.FieldAvatarURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarURL(v)
		return nil
	case profile.FieldRole:
		v, ok := value.(profile.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case profile.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case profile.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case profile.FieldInviteToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInviteToken(v)
		return nil
	case profile.FieldInviteExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInviteExpiresAt(v)
		return nil
	case profile.FieldLastLogin:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLogin(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldDisplayName) {
		fields = append(fields, profile.FieldDisplayName)
	}
	if m.FieldCleared(profile.FieldAvatarURL) {
		fields = append(fields, profile.FieldAvatarURL)
	}
	if m.FieldCleared(profile.FieldPasswordHash) {
		fields = append(fields, profile.FieldPasswordHash)
	}
	if m.FieldCleared(profile.FieldInviteToken) {
		fields = append(fields, profile.FieldInviteToken)
	}
	if m.FieldCleared(profile.FieldInviteExpiresAt) {
		fields = append(fields, profile.FieldInviteExpiresAt)
	}
	if m.FieldCleared(profile.FieldLastLogin) {
		fields = append(fields, profile.FieldLastLogin)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case profile.FieldAvatarURL:
		m.ClearAvatarURL()
		return nil
	case profile.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case profile.FieldInviteToken:
		m.ClearInviteToken()
		return nil
	case profile.FieldInviteExpiresAt:
		m.ClearInviteExpiresAt()
		return nil
	case profile.FieldLastLogin:
		m.ClearLastLogin()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldEmail:
		m.ResetEmail()
		return nil
	case profile.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case profile.FieldAvatarURL:
		m.ResetAvatarURL()
		return nil
	case profile.FieldRole:
		m.ResetRole()
		return nil
	case profile.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case profile.FieldIsActive:
		m.ResetIsActive()
		return nil
	case profile.FieldInviteToken:
		m.ResetInviteToken()
		return nil
	case profile.FieldInviteExpiresAt:
		m.ResetInviteExpiresAt()
		return nil
	case profile.FieldLastLogin:
		m.ResetLastLogin()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.assigned_tasks != nil {
		edges = append(edges, profile.EdgeAssignedTasks)
	}
	if m.context_entries != nil {
		edges = append(edges, profile.EdgeContextEntries)
	}
	if m.default_assignments != nil {
		edges = append(edges, profile.EdgeDefaultAssignments)
	}
	if m.activity_events != nil {
		edges = append(edges, profile.EdgeActivityEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeAssignedTasks:
		ids := make([]ent.Value, 0, len(m.assigned_tasks))
		for id := range m.assigned_tasks {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeContextEntries:
		ids := make([]ent.Value, 0, len(m.context_entries))
		for id := range m.context_entries {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeDefaultAssignments:
		ids := make([]ent.Value, 0, len(m.default_assignments))
		for id := range m.default_assignments {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeActivityEvents:
		ids := make([]ent.Value, 0, len(m.activity_events))
		for id := range m.activity_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedassigned_tasks != nil {
		edges = append(edges, profile.EdgeAssignedTasks)
	}
	if m.removedcontext_entries != nil {
		edges = append(edges, profile.EdgeContextEntries)
	}
	if m.removeddefault_assignments != nil {
		edges = append(edges, profile.EdgeDefaultAssignments)
	}
	if m.removedactivity_events != nil {
		edges = append(edges, profile.EdgeActivityEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeAssignedTasks:
		ids := make([]ent.Value, 0, len(m.removedassigned_tasks))
		for id := range m.removedassigned_tasks {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeContextEntries:
		ids := make([]ent.Value, 0, len(m.removedcontext_entries))
		for id := range m.removedcontext_entries {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeDefaultAssignments:
		ids := make([]ent.Value, 0, len(m.removeddefault_assignments))
		for id := range m.removeddefault_assignments {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeActivityEvents:
		ids := make([]ent.Value, 0, len(m.removedactivity_events))
		for id := range m.removedactivity_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedassigned_tasks {
		edges = append(edges, profile.EdgeAssignedTasks)
	}
	if m.clearedcontext_entries {
		edges = append(edges, profile.EdgeContextEntries)
	}
	if m.cleareddefault_assignments {
		edges = append(edges, profile.EdgeDefaultAssignments)
	}
	if m.clearedactivity_events {
		edges = append(edges, profile.EdgeActivityEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeAssignedTasks:
		return m.clearedassigned_tasks
	case profile.EdgeContextEntries:
		return m.clearedcontext_entries
	case profile.EdgeDefaultAssignments:
		return m.cleareddefault_assignments
	case profile.EdgeActivityEvents:
		return m.clearedactivity_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeAssignedTasks:
		m.ResetAssignedTasks()
		return nil
	case profile.EdgeContextEntries:
		m.ResetContextEntries()
		return nil
	case profile.EdgeDefaultAssignments:
		m.ResetDefaultAssignments()
		return nil
	case profile.EdgeActivityEvents:
		m.ResetActivityEvents()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}

// ShootMutation represents an operation that mutates the Shoot nodes in the graph.
type ShootMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	shoot_date    *time.Time
	shoot_time    *string
	location      *string
	calendar_link *string
	status        *shoot.Status
	_type         *shoot.Type
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	client        *uuid.UUID
	clearedclient bool
	cycle         *uuid.UUID
	clearedcycle  bool
	done          bool
	oldValue      func(context.Context) (*Shoot, error)
	predicates    []predicate.Shoot
}

var _ ent.Mutation = (*ShootMutation)(nil)

// shootOption allows management of the mutation configuration using functional options.
type shootOption func(*ShootMutation)

// newShootMutation creates new mutation for the Shoot entity.
func newShootMutation(c config, op Op, opts ...shootOption) *ShootMutation {
	m := &ShootMutation{
		config:        c,
		op:            op,
		typ:           TypeShoot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withShootID sets the ID field of the mutation.
func withShootID(id uuid.UUID) shootOption {
	return func(m *ShootMutation) {
		var (
			err   error
			once  sync.Once
			value *Shoot
		)
		m.oldValue = func(ctx context.Context) (*Shoot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Shoot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withShoot sets the old Shoot of the mutation.
func withShoot(node *Shoot) shootOption {
	return func(m *ShootMutation) {
		m.oldValue = func(context.Context) (*Shoot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ShootMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ShootMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Shoot entities.
func (m *ShootMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ShootMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ShootMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Shoot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *ShootMutation) SetClientID(u uuid.UUID) {
	m.client = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ShootMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Shoot entity.
// If the Shoot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShootMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ShootMutation) ResetClientID() {
	m.client = nil
}

// SetCycleID sets the "cycle_id" field.
func (m *ShootMutation) SetCycleID(u uuid.UUID) {
	m.cycle = &u
}

// CycleID returns the value of the "cycle_id" field in the mutation.
func (m *ShootMutation) CycleID() (r uuid.UUID, exists bool) {
	v := m.cycle
	if v == nil {
		return
	}
	return *v, true
}

// OldCycleID returns the old "cycle_id" field's value of the Shoot entity.
// If the Shoot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShootMutation) OldCycleID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycleID: %w", err)
	}
	return oldValue.CycleID, nil
}

// ClearCycleID clears the value of the "cycle_id" field.
func (m *ShootMutation) ClearCycleID() {
	m.cycle = nil
	m.clearedFields[shoot.FieldCycleID] = struct{}{}
}

// CycleIDCleared returns if the "cycle_id" field was cleared in this mutation.
func (m *ShootMutation) CycleIDCleared() bool {
	_, ok := m.clearedFields[shoot.FieldCycleID]
	return ok
}

// ResetCycleID resets all changes to the "cycle_id" field.
func (m *ShootMutation) ResetCycleID() {
	m.cycle = nil
	delete(m.clearedFields, shoot.FieldCycleID)
}

// SetShootDate sets the "shoot_date" field.
func (m *ShootMutation) SetShootDate(t time.Time) {
	m.shoot_date = &t
}

// ShootDate returns the value of the "shoot_date" field in the mutation.
func (m *ShootMutation) ShootDate() (r time.Time, exists bool) {
	v := m.shoot_date
	if v == nil {
		return
	}
	return *v, true
}

// OldShootDate returns the old "shoot_date" field's value of the Shoot entity.
// If the Shoot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShootMutation) OldShootDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShootDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShootDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShootDate: %w", err)
	}
	return oldValue.ShootDate, nil
}

// ResetShootDate resets all changes to the "shoot_date" field.
func (m *ShootMutation) ResetShootDate() {
	m.shoot_date = nil
}

// SetShootTime sets the "shoot_time" field.
func (m *ShootMutation) SetShootTime(s string) {
	m.shoot_time = &s
}

// ShootTime returns the value of the "shoot_time" field in the mutation.
func (m *ShootMutation) ShootTime() (r string, exists bool) {
	v := m.shoot_time
	if v == nil {
		return
	}
	return *v, true
}

// OldShootTime returns the old "shoot_time" field's value of the Shoot entity.
// If the Shoot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShootMutation) OldShootTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShootTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShootTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShootTime: %w", err)
	}
	return oldValue.ShootTime, nil
}

// ClearShootTime clears the value of the "shoot_time" field.
func (m *ShootMutation) ClearShootTime() {
	m.shoot_time = nil
	m.clearedFields[shoot.FieldShootTime] = struct{}{}
}

// ShootTimeCleared returns if the "shoot_time" field was cleared in this mutation.
func (m *ShootMutation) ShootTimeCleared() bool {
	_, ok := m.clearedFields[shoot.FieldShootTime]
	return ok
}

// ResetShootTime resets all changes to the "shoot_time" field.
func (m *ShootMutation) ResetShootTime() {
	m.shoot_time = nil
	delete(m.clearedFields, shoot.FieldShootTime)
}

// SetLocation sets the "location" field.
func (m *ShootMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *ShootMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Shoot entity.
// If the Shoot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShootMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *ShootMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[shoot.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *ShootMutation) LocationCleared() bool {
	_, ok := m.clearedFields[shoot.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *ShootMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, shoot.FieldLocation)
}

// SetCalendarLink sets the "calendar_link" field.
func (m *ShootMutation) SetCalendarLink(s string) {
	m.calendar_link = &s
}

// CalendarLink returns the value of the "calendar_link" field in the mutation.
func (m *ShootMutation) CalendarLink() (r string, exists bool) {
	v := m.calendar_link
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarLink returns the old "calendar_link" field's value of the Shoot entity.
// If the Shoot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShootMutation) OldCalendarLink(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarLink: %w", err)
	}
	return oldValue.CalendarLink, nil
}

// ClearCalendarLink clears the value of the "calendar_link" field.
func (m *ShootMutation) ClearCalendarLink() {
	m.calendar_link = nil
	m.clearedFields[shoot.FieldCalendarLink] = struct{}{}
}

// CalendarLinkCleared returns if the "calendar_link" field was cleared in this mutation.
func (m *ShootMutation) CalendarLinkCleared() bool {
	_, ok := m.clearedFields[shoot.FieldCalendarLink]
	return ok
}

// ResetCalendarLink resets all changes to the "calendar_link" field.
func (m *ShootMutation) ResetCalendarLink() {
	m.calendar_link = nil
	delete(m.clearedFields, shoot.FieldCalendarLink)
}

// SetStatus sets the "status" field.
func (m *ShootMutation) SetStatus(s shoot.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ShootMutation) Status() (r shoot.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Shoot entity.
// If the Shoot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShootMutation) OldStatus(ctx context.Context) (v shoot.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ShootMutation) ResetStatus() {
	m.status = nil
}

// SetType sets the "type" field.
func (m *ShootMutation) SetType(s shoot.Type) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ShootMutation) GetType() (r shoot.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Shoot entity.
// If the Shoot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShootMutation) OldType(ctx context.Context) (v shoot.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ShootMutation) ResetType() {
	m._type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ShootMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ShootMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Shoot entity.
// If the Shoot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShootMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ShootMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ShootMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ShootMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Shoot entity.
// If the Shoot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShootMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ShootMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (m *ShootMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[shoot.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the ClientAccount entity was cleared.
func (m *ShootMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *ShootMutation) ClientIDs() (ids []uuid.UUID) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *ShootMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// ClearCycle clears the "cycle" edge to the Cycle entity.
func (m *ShootMutation) ClearCycle() {
	m.clearedcycle = true
	m.clearedFields[shoot.FieldCycleID] = struct{}{}
}

// CycleCleared reports if the "cycle" edge to the Cycle entity was cleared.
func (m *ShootMutation) CycleCleared() bool {
	return m.CycleIDCleared() || m.clearedcycle
}

// CycleIDs returns the "cycle" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CycleID instead. It exists only for internal usage by the builders.
func (m *ShootMutation) CycleIDs() (ids []uuid.UUID) {
	if id := m.cycle; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCycle resets all changes to the "cycle" edge.
func (m *ShootMutation) ResetCycle() {
	m.cycle = nil
	m.clearedcycle = false
}

// Where appends a list predicates to the ShootMutation builder.
func (m *ShootMutation) Where(ps ...predicate.Shoot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ShootMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ShootMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Shoot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ShootMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ShootMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Shoot).
func (m *ShootMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ShootMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.client != nil {
		fields = append(fields, shoot.FieldClientID)
	}
	if m.cycle != nil {
		fields = append(fields, shoot.FieldCycleID)
	}
	if m.shoot_date != nil {
		fields = append(fields, shoot.FieldShootDate)
	}
	if m.shoot_time != nil {
		fields = append(fields, shoot.FieldShootTime)
	}
	if m.location != nil {
		fields = append(fields, shoot.FieldLocation)
	}
	if m.calendar_link != nil {
		fields = append(fields, shoot.FieldCalendarLink)
	}
	if m.status != nil {
		fields = append(fields, shoot.FieldStatus)
	}
	if m._type != nil {
		fields = append(fields, shoot.FieldType)
	}
	if m.created_at != nil {
		fields = append(fields, shoot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, shoot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ShootMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case shoot.FieldClientID:
		return m.ClientID()
	case shoot.FieldCycleID:
		return m.CycleID()
	case shoot.FieldShootDate:
		return m.ShootDate()
	case shoot.FieldShootTime:
		return m.ShootTime()
	case shoot.FieldLocation:
		return m.Location()
	case shoot.FieldCalendarLink:
		return m.CalendarLink()
	case shoot.FieldStatus:
		return m.Status()
	case shoot.FieldType:
		return m.GetType()
	case shoot.FieldCreatedAt:
		return m.CreatedAt()
	case shoot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ShootMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case shoot.FieldClientID:
		return m.OldClientID(ctx)
	case shoot.FieldCycleID:
		return m.OldCycleID(ctx)
	case shoot.FieldShootDate:
		return m.OldShootDate(ctx)
	case shoot.FieldShootTime:
		return m.OldShootTime(ctx)
	case shoot.FieldLocation:
		return m.OldLocation(ctx)
	case shoot.FieldCalendarLink:
		return m.OldCalendarLink(ctx)
	case shoot.FieldStatus:
		return m.OldStatus(ctx)
	case shoot.FieldType:
		return m.OldType(ctx)
	case shoot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case shoot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Shoot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShootMutation) SetField(name string, value ent.Value) error {
	switch name {
	case shoot.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case shoot.FieldCycleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycleID(v)
		return nil
	case shoot.FieldShootDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShootDate(v)
		return nil
	case shoot.FieldShootTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShootTime(v)
		return nil
	case shoot.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case shoot.FieldCalendarLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarLink(v)
		return nil
	case shoot.FieldStatus:
		v, ok := value.(shoot.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case shoot.FieldType:
		v, ok := value.(shoot.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case shoot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case shoot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Shoot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ShootMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ShootMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShootMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Shoot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ShootMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(shoot.FieldCycleID) {
		fields = append(fields, shoot.FieldCycleID)
	}
	if m.FieldCleared(shoot.FieldShootTime) {
		fields = append(fields, shoot.FieldShootTime)
	}
	if m.FieldCleared(shoot.FieldLocation) {
		fields = append(fields, shoot.FieldLocation)
	}
	if m.FieldCleared(shoot.FieldCalendarLink) {
		fields = append(fields, shoot.FieldCalendarLink)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ShootMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ShootMutation) ClearField(name string) error {
	switch name {
	case shoot.FieldCycleID:
		m.ClearCycleID()
		return nil
	case shoot.FieldShootTime:
		m.ClearShootTime()
		return nil
	case shoot.FieldLocation:
		m.ClearLocation()
		return nil
	case shoot.FieldCalendarLink:
		m.ClearCalendarLink()
		return nil
	}
	return fmt.Errorf("unknown Shoot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ShootMutation) ResetField(name string) error {
	switch name {
	case shoot.FieldClientID:
		m.ResetClientID()
		return nil
	case shoot.FieldCycleID:
		m.ResetCycleID()
		return nil
	case shoot.FieldShootDate:
		m.ResetShootDate()
		return nil
	case shoot.FieldShootTime:
		m.ResetShootTime()
		return nil
	case shoot.FieldLocation:
		m.ResetLocation()
		return nil
	case shoot.FieldCalendarLink:
		m.ResetCalendarLink()
		return nil
	case shoot.FieldStatus:
		m.ResetStatus()
		return nil
	case shoot.FieldType:
		m.ResetType()
		return nil
	case shoot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case shoot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Shoot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ShootMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.client != nil {
		edges = append(edges, shoot.EdgeClient)
	}
	if m.cycle != nil {
		edges = append(edges, shoot.EdgeCycle)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ShootMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case shoot.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case shoot.EdgeCycle:
		if id := m.cycle; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ShootMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ShootMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ShootMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclient {
		edges = append(edges, shoot.EdgeClient)
	}
	if m.clearedcycle {
		edges = append(edges, shoot.EdgeCycle)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ShootMutation) EdgeCleared(name string) bool {
	switch name {
	case shoot.EdgeClient:
		return m.clearedclient
	case shoot.EdgeCycle:
		return m.clearedcycle
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ShootMutation) ClearEdge(name string) error {
	switch name {
	case shoot.EdgeClient:
		m.ClearClient()
		return nil
	case shoot.EdgeCycle:
		m.ClearCycle()
		return nil
	}
	return fmt.Errorf("unknown Shoot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ShootMutation) ResetEdge(name string) error {
	switch name {
	case shoot.EdgeClient:
		m.ResetClient()
		return nil
	case shoot.EdgeCycle:
		m.ResetCycle()
		return nil
	}
	return fmt.Errorf("unknown Shoot edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	parent_type     *task.ParentType
	parent_id       *uuid.UUID
	client_id       *uuid.UUID
	template_id     *uuid.UUID
	title           *string
	role            *task.Role
	sort_order      *int
	addsort_order   *int
	due_date        *time.Time
	status          *task.Status
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	assignee        *uuid.UUID
	clearedassignee bool
	done            bool
	oldValue        func(context.Context) (*Task, error)
	predicates      []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id uuid.UUID) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParentType sets the "parent_type" field.
func (m *TaskMutation) SetParentType(tt task.ParentType) {
	m.parent_type = &tt
}

// ParentType returns the value of the "parent_type" field in the mutation.
func (m *TaskMutation) ParentType() (r task.ParentType, exists bool) {
	v := m.parent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldParentType returns the old "parent_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParentType(ctx context.Context) (v task.ParentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentType: %w", err)
	}
	return oldValue.ParentType, nil
}

// ResetParentType resets all changes to the "parent_type" field.
func (m *TaskMutation) ResetParentType() {
	m.parent_type = nil
}

// SetParentID sets the "parent_id" field.
func (m *TaskMutation) SetParentID(u uuid.UUID) {
	m.parent_id = &u
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *TaskMutation) ParentID() (r uuid.UUID, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *TaskMutation) ResetParentID() {
	m.parent_id = nil
}

// SetClientID sets the "client_id" field.
func (m *TaskMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *TaskMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *TaskMutation) ResetClientID() {
	m.client_id = nil
}

// SetTemplateID sets the "template_id" field.
func (m *TaskMutation) SetTemplateID(u uuid.UUID) {
	m.template_id = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *TaskMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTemplateID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *TaskMutation) ClearTemplateID() {
	m.template_id = nil
	m.clearedFields[task.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *TaskMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[task.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *TaskMutation) ResetTemplateID() {
	m.template_id = nil
	delete(m.clearedFields, task.FieldTemplateID)
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetRole sets the "role" field.
func (m *TaskMutation) SetRole(t task.Role) {
	m.role = &t
}

// Role returns the value of the "role" field in the mutation.
func (m *TaskMutation) Role() (r task.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRole(ctx context.Context) (v task.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *TaskMutation) ResetRole() {
	m.role = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *TaskMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *TaskMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *TaskMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *TaskMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *TaskMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetDueDate sets the "due_date" field.
func (m *TaskMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *TaskMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *TaskMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[task.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *TaskMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[task.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *TaskMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, task.FieldDueDate)
}

// SetAssigneeID sets the "assignee_id" field.
func (m *TaskMutation) SetAssigneeID(u uuid.UUID) {
	m.assignee = &u
}

// AssigneeID returns the value of the "assignee_id" field in the mutation.
func (m *TaskMutation) AssigneeID() (r uuid.UUID, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeID returns the old "assignee_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssigneeID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeID: %w", err)
	}
	return oldValue.AssigneeID, nil
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (m *TaskMutation) ClearAssigneeID() {
	m.assignee = nil
	m.clearedFields[task.FieldAssigneeID] = struct{}{}
}

// AssigneeIDCleared returns if the "assignee_id" field was cleared in this mutation.
func (m *TaskMutation) AssigneeIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAssigneeID]
	return ok
}

// ResetAssigneeID resets all changes to the "assignee_id" field.
func (m *TaskMutation) ResetAssigneeID() {
	m.assignee = nil
	delete(m.clearedFields, task.FieldAssigneeID)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAssignee clears the "assignee" edge to the Profile entity.
func (m *TaskMutation) ClearAssignee() {
	m.clearedassignee = true
	m.clearedFields[task.FieldAssigneeID] = struct{}{}
}

// AssigneeCleared reports if the "assignee" edge to the Profile entity was cleared.
func (m *TaskMutation) AssigneeCleared() bool {
	return m.AssigneeIDCleared() || m.clearedassignee
}

// AssigneeIDs returns the "assignee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssigneeID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) AssigneeIDs() (ids []uuid.UUID) {
	if id := m.assignee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignee resets all changes to the "assignee" edge.
func (m *TaskMutation) ResetAssignee() {
	m.assignee = nil
	m.clearedassignee = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.parent_type != nil {
		fields = append(fields, task.FieldParentType)
	}
	if m.parent_id != nil {
		fields = append(fields, task.FieldParentID)
	}
	if m.client_id != nil {
		fields = append(fields, task.FieldClientID)
	}
	if m.template_id != nil {
		fields = append(fields, task.FieldTemplateID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.role != nil {
		fields = append(fields, task.FieldRole)
	}
	if m.sort_order != nil {
		fields = append(fields, task.FieldSortOrder)
	}
	if m.due_date != nil {
		fields = append(fields, task.FieldDueDate)
	}
	if m.assignee != nil {
		fields = append(fields, task.FieldAssigneeID)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldParentType:
		return m.ParentType()
	case task.FieldParentID:
		return m.ParentID()
	case task.FieldClientID:
		return m.ClientID()
	case task.FieldTemplateID:
		return m.TemplateID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldRole:
		return m.Role()
	case task.FieldSortOrder:
		return m.SortOrder()
	case task.FieldDueDate:
		return m.DueDate()
	case task.FieldAssigneeID:
		return m.AssigneeID()
	case task.FieldStatus:
		return m.Status()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldParentType:
		return m.OldParentType(ctx)
	case task.FieldParentID:
		return m.OldParentID(ctx)
	case task.FieldClientID:
		return m.OldClientID(ctx)
	case task.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldRole:
		return m.OldRole(ctx)
	case task.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case task.FieldDueDate:
		return m.OldDueDate(ctx)
	case task.FieldAssigneeID:
		return m.OldAssigneeID(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldParentType:
		v, ok := value.(task.ParentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentType(v)
		return nil
	case task.FieldParentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case task.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case task.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldRole:
		v, ok := value.(task.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case task.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case task.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case task.FieldAssigneeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeID(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, task.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldTemplateID) {
		fields = append(fields, task.FieldTemplateID)
	}
	if m.FieldCleared(task.FieldDueDate) {
		fields = append(fields, task.FieldDueDate)
	}
	if m.FieldCleared(task.FieldAssigneeID) {
		fields = append(fields, task.FieldAssigneeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	case task.FieldDueDate:
		m.ClearDueDate()
		return nil
	case task.FieldAssigneeID:
		m.ClearAssigneeID()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldParentType:
		m.ResetParentType()
		return nil
	case task.FieldParentID:
		m.ResetParentID()
		return nil
	case task.FieldClientID:
		m.ResetClientID()
		return nil
	case task.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldRole:
		m.ResetRole()
		return nil
	case task.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case task.FieldDueDate:
		m.ResetDueDate()
		return nil
	case task.FieldAssigneeID:
		m.ResetAssigneeID()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.assignee != nil {
		edges = append(edges, task.EdgeAssignee)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeAssignee:
		if id := m.assignee; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedassignee {
		edges = append(edges, task.EdgeAssignee)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeAssignee:
		return m.clearedassignee
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeAssignee:
		m.ClearAssignee()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeAssignee:
		m.ResetAssignee()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskTemplateMutation represents an operation that mutates the TaskTemplate nodes in the graph.
type TaskTemplateMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	parent_type        *tasktemplate.ParentType
	title              *string
	role               *tasktemplate.Role
	sort_order         *int
	addsort_order      *int
	days_offset        *int
	adddays_offset     *int
	is_active          *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	client             *uuid.UUID
	clearedclient      bool
	assignments        map[uuid.UUID]struct{}
	removedassignments map[uuid.UUID]struct{}
	clearedassignments bool
	done               bool
	oldValue           func(context.Context) (*TaskTemplate, error)
	predicates         []predicate.TaskTemplate
}

var _ ent.Mutation = (*TaskTemplateMutation)(nil)

// tasktemplateOption allows management of the mutation configuration using functional options.
type tasktemplateOption func(*TaskTemplateMutation)

// newTaskTemplateMutation creates new mutation for the TaskTemplate entity.
func newTaskTemplateMutation(c config, op Op, opts ...tasktemplateOption) *TaskTemplateMutation {
	m := &TaskTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskTemplateID sets the ID field of the mutation.
func withTaskTemplateID(id uuid.UUID) tasktemplateOption {
	return func(m *TaskTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskTemplate
		)
		m.oldValue = func(ctx context.Context) (*TaskTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskTemplate sets the old TaskTemplate of the mutation.
func withTaskTemplate(node *TaskTemplate) tasktemplateOption {
	return func(m *TaskTemplateMutation) {
		m.oldValue = func(context.Context) (*TaskTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskTemplate entities.
func (m *TaskTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *TaskTemplateMutation) SetClientID(u uuid.UUID) {
	m.client = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *TaskTemplateMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldClientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ClearClientID clears the value of the "client_id" field.
func (m *TaskTemplateMutation) ClearClientID() {
	m.client = nil
	m.clearedFields[tasktemplate.FieldClientID] = struct{}{}
}

// ClientIDCleared returns if the "client_id" field was cleared in this mutation.
func (m *TaskTemplateMutation) ClientIDCleared() bool {
	_, ok := m.clearedFields[tasktemplate.FieldClientID]
	return ok
}

// ResetClientID resets all changes to the "client_id" field.
func (m *TaskTemplateMutation) ResetClientID() {
	m.client = nil
	delete(m.clearedFields, tasktemplate.FieldClientID)
}

// SetParentType sets the "parent_type" field.
func (m *TaskTemplateMutation) SetParentType(tt tasktemplate.ParentType) {
	m.parent_type = &tt
}

// ParentType returns the value of the "parent_type" field in the mutation.
func (m *TaskTemplateMutation) ParentType() (r tasktemplate.ParentType, exists bool) {
	v := m.parent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldParentType returns the old "parent_type" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldParentType(ctx context.Context) (v tasktemplate.ParentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentType: %w", err)
	}
	return oldValue.ParentType, nil
}

// ResetParentType resets all changes to the "parent_type" field.
func (m *TaskTemplateMutation) ResetParentType() {
	m.parent_type = nil
}

// SetTitle sets the "title" field.
func (m *TaskTemplateMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskTemplateMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskTemplateMutation) ResetTitle() {
	m.title = nil
}

// SetRole sets the "role" field.
func (m *TaskTemplateMutation) SetRole(t tasktemplate.Role) {
	m.role = &t
}

// Role returns the value of the "role" field in the mutation.
func (m *TaskTemplateMutation) Role() (r tasktemplate.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldRole(ctx context.Context) (v tasktemplate.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *TaskTemplateMutation) ResetRole() {
	m.role = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *TaskTemplateMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *TaskTemplateMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *TaskTemplateMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *TaskTemplateMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *TaskTemplateMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetDaysOffset sets the "days_offset" field.
func (m *TaskTemplateMutation) SetDaysOffset(i int) {
	m.days_offset = &i
	m.adddays_offset = nil
}

// DaysOffset returns the value of the "days_offset" field in the mutation.
func (m *TaskTemplateMutation) DaysOffset() (r int, exists bool) {
	v := m.days_offset
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysOffset returns the old "days_offset" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldDaysOffset(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysOffset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysOffset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysOffset: %w", err)
	}
	return oldValue.DaysOffset, nil
}

// AddDaysOffset adds i to the "days_offset" field.
func (m *TaskTemplateMutation) AddDaysOffset(i int) {
	if m.adddays_offset != nil {
		*m.adddays_offset += i
	} else {
		m.adddays_offset = &i
	}
}

// AddedDaysOffset returns the value that was added to the "days_offset" field in this mutation.
func (m *TaskTemplateMutation) AddedDaysOffset() (r int, exists bool) {
	v := m.adddays_offset
	if v == nil {
		return
	}
	return *v, true
}

// ResetDaysOffset resets all changes to the "days_offset" field.
func (m *TaskTemplateMutation) ResetDaysOffset() {
	m.days_offset = nil
	m.adddays_offset = nil
}

// SetIsActive sets the "is_active" field.
func (m *TaskTemplateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *TaskTemplateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *TaskTemplateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearClient clears the "client" edge to the ClientAccount entity.
func (m *TaskTemplateMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[tasktemplate.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the ClientAccount entity was cleared.
func (m *TaskTemplateMutation) ClientCleared() bool {
	return m.ClientIDCleared() || m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *TaskTemplateMutation) ClientIDs() (ids []uuid.UUID) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *TaskTemplateMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// AddAssignmentIDs adds the "assignments" edge to the ClientTaskAssignment entity by ids.
func (m *TaskTemplateMutation) AddAssignmentIDs(ids ...uuid.UUID) {
	if m.assignments == nil {
		m.assignments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the ClientTaskAssignment entity.
func (m *TaskTemplateMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the ClientTaskAssignment entity was cleared.
func (m *TaskTemplateMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the ClientTaskAssignment entity by IDs.
func (m *TaskTemplateMutation) RemoveAssignmentIDs(ids ...uuid.UUID) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the ClientTaskAssignment entity.
func (m *TaskTemplateMutation) RemovedAssignmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *TaskTemplateMutation) AssignmentsIDs() (ids []uuid.UUID) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *TaskTemplateMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// Where appends a list predicates to the TaskTemplateMutation builder.
func (m *TaskTemplateMutation) Where(ps ...predicate.TaskTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskTemplate).
func (m *TaskTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskTemplateMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.client != nil {
		fields = append(fields, tasktemplate.FieldClientID)
	}
	if m.parent_type != nil {
		fields = append(fields, tasktemplate.FieldParentType)
	}
	if m.title != nil {
		fields = append(fields, tasktemplate.FieldTitle)
	}
	if m.role != nil {
		fields = append(fields, tasktemplate.FieldRole)
	}
	if m.sort_order != nil {
		fields = append(fields, tasktemplate.FieldSortOrder)
	}
	if m.days_offset != nil {
		fields = append(fields, tasktemplate.FieldDaysOffset)
	}
	if m.is_active != nil {
		fields = append(fields, tasktemplate.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, tasktemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tasktemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tasktemplate.FieldClientID:
		return m.ClientID()
	case tasktemplate.FieldParentType:
		return m.ParentType()
	case tasktemplate.FieldTitle:
		return m.Title()
	case tasktemplate.FieldRole:
		return m.Role()
	case tasktemplate.FieldSortOrder:
		return m.SortOrder()
	case tasktemplate.FieldDaysOffset:
		return m.DaysOffset()
	case tasktemplate.FieldIsActive:
		return m.IsActive()
	case tasktemplate.FieldCreatedAt:
		return m.CreatedAt()
	case tasktemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tasktemplate.FieldClientID:
		return m.OldClientID(ctx)
	case tasktemplate.FieldParentType:
		return m.OldParentType(ctx)
	case tasktemplate.FieldTitle:
		return m.OldTitle(ctx)
	case tasktemplate.FieldRole:
		return m.OldRole(ctx)
	case tasktemplate.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case tasktemplate.FieldDaysOffset:
		return m.OldDaysOffset(ctx)
	case tasktemplate.FieldIsActive:
		return m.OldIsActive(ctx)
	case tasktemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tasktemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tasktemplate.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case tasktemplate.FieldParentType:
		v, ok := value.(tasktemplate.ParentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentType(v)
		return nil
	case tasktemplate.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case tasktemplate.FieldRole:
		v, ok := value.(tasktemplate.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case tasktemplate.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case tasktemplate.FieldDaysOffset:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysOffset(v)
		return nil
	case tasktemplate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case tasktemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tasktemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, tasktemplate.FieldSortOrder)
	}
	if m.adddays_offset != nil {
		fields = append(fields, tasktemplate.FieldDaysOffset)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tasktemplate.FieldSortOrder:
		return m.AddedSortOrder()
	case tasktemplate.FieldDaysOffset:
		return m.AddedDaysOffset()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tasktemplate.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	case tasktemplate.FieldDaysOffset:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDaysOffset(v)
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tasktemplate.FieldClientID) {
		fields = append(fields, tasktemplate.FieldClientID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskTemplateMutation) ClearField(name string) error {
	switch name {
	case tasktemplate.FieldClientID:
		m.ClearClientID()
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskTemplateMutation) ResetField(name string) error {
	switch name {
	case tasktemplate.FieldClientID:
		m.ResetClientID()
		return nil
	case tasktemplate.FieldParentType:
		m.ResetParentType()
		return nil
	case tasktemplate.FieldTitle:
		m.ResetTitle()
		return nil
	case tasktemplate.FieldRole:
		m.ResetRole()
		return nil
	case tasktemplate.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case tasktemplate.FieldDaysOffset:
		m.ResetDaysOffset()
		return nil
	case tasktemplate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case tasktemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tasktemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.client != nil {
		edges = append(edges, tasktemplate.EdgeClient)
	}
	if m.assignments != nil {
		edges = append(edges, tasktemplate.EdgeAssignments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tasktemplate.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case tasktemplate.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedassignments != nil {
		edges = append(edges, tasktemplate.EdgeAssignments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskTemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tasktemplate.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclient {
		edges = append(edges, tasktemplate.EdgeClient)
	}
	if m.clearedassignments {
		edges = append(edges, tasktemplate.EdgeAssignments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case tasktemplate.EdgeClient:
		return m.clearedclient
	case tasktemplate.EdgeAssignments:
		return m.clearedassignments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskTemplateMutation) ClearEdge(name string) error {
	switch name {
	case tasktemplate.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskTemplateMutation) ResetEdge(name string) error {
	switch name {
	case tasktemplate.EdgeClient:
		m.ResetClient()
		return nil
	case tasktemplate.EdgeAssignments:
		m.ResetAssignments()
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate edge %s", name)
}
