// Code generated by ent, DO NOT EDIT.

package generated

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/activityevent"
	"github.com/localbzz/clientops/ent/generated/profile"
)

// ActivityEvent is the model entity for the ActivityEvent schema.
type ActivityEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Profile that performed the action; nil for system events
	ActorID *uuid.UUID `json:"actor_id,omitempty"`
	// Client the event relates to, if any
	ClientID *uuid.UUID `json:"client_id,omitempty"`
	// Type of activity event
	EventType activityevent.EventType `json:"event_type,omitempty"`
	// Human-readable description of the event
	Description string `json:"description,omitempty"`
	// Additional event metadata
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Event severity level
	Severity activityevent.Severity `json:"severity,omitempty"`
	// IP address where the event originated
	IPAddress string `json:"ip_address,omitempty"`
	// When the event occurred
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ActivityEventQuery when eager-loading is set.
	Edges        ActivityEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ActivityEventEdges holds the relations/edges for other nodes in the graph.
type ActivityEventEdges struct {
	// Actor holds the value of the actor edge.
	Actor *Profile `json:"actor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ActorOrErr returns the Actor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ActivityEventEdges) ActorOrErr() (*Profile, error) {
	if e.Actor != nil {
		return e.Actor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "actor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActivityEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activityevent.FieldActorID, activityevent.FieldClientID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case activityevent.FieldMetadata:
			values[i] = new([]byte)
		case activityevent.FieldEventType, activityevent.FieldDescription, activityevent.FieldSeverity, activityevent.FieldIPAddress:
			values[i] = new(sql.NullString)
		case activityevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case activityevent.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActivityEvent fields.
func (ae *ActivityEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activityevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ae.ID = *value
			}
		case activityevent.FieldActorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				ae.ActorID = new(uuid.UUID)
				*ae.ActorID = *value.S.(*uuid.UUID)
			}
		case activityevent.FieldClientID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				ae.ClientID = new(uuid.UUID)
				*ae.ClientID = *value.S.(*uuid.UUID)
			}
		case activityevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				ae.EventType = activityevent.EventType(value.String)
			}
		case activityevent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				ae.Description = value.String
			}
		case activityevent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ae.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case activityevent.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				ae.Severity = activityevent.Severity(value.String)
			}
		case activityevent.FieldIPAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_address", values[i])
			} else if value.Valid {
				ae.IPAddress = value.String
			}
		case activityevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ae.CreatedAt = value.Time
			}
		default:
			ae.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActivityEvent.
// This includes values selected through modifiers, order, etc.
func (ae *ActivityEvent) Value(name string) (ent.Value, error) {
	return ae.selectValues.Get(name)
}

// QueryActor queries the "actor" edge of the ActivityEvent entity.
func (ae *ActivityEvent) QueryActor() *ProfileQuery {
	return NewActivityEventClient(ae.config).QueryActor(ae)
}

// Update returns a builder for updating this ActivityEvent.
// Note that you need to call ActivityEvent.Unwrap() before calling this method if this ActivityEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ae *ActivityEvent) Update() *ActivityEventUpdateOne {
	return NewActivityEventClient(ae.config).UpdateOne(ae)
}

// Unwrap unwraps the ActivityEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ae *ActivityEvent) Unwrap() *ActivityEvent {
	_tx, ok := ae.config.driver.(*txDriver)
	if !ok {
		panic("generated: ActivityEvent is not a transactional entity")
	}
	ae.config.driver = _tx.drv
	return ae
}

// String implements the fmt.Stringer.
func (ae *ActivityEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ActivityEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ae.ID))
	if v := ae.ActorID; v != nil {
		builder.WriteString("actor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := ae.ClientID; v != nil {
		builder.WriteString("client_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", ae.EventType))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(ae.Description)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", ae.Metadata))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", ae.Severity))
	builder.WriteString(", ")
	builder.WriteString("ip_address=")
	builder.WriteString(ae.IPAddress)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ae.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ActivityEvents is a parsable slice of ActivityEvent.
type ActivityEvents []*ActivityEvent
