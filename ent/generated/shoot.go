// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/clientaccount"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/shoot"
)

// Shoot is the model entity for the Shoot schema.
type Shoot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Owning client
	ClientID uuid.UUID `json:"client_id,omitempty"`
	// Parent cycle; nil for an orphan/ad-hoc shoot
	CycleID *uuid.UUID `json:"cycle_id,omitempty"`
	// Anchor date for the shoot's task due dates
	ShootDate time.Time `json:"shoot_date,omitempty"`
	// Time of day as HH:MM
	ShootTime string `json:"shoot_time,omitempty"`
	// Where the shoot takes place
	Location string `json:"location,omitempty"`
	// External calendar event URL
	CalendarLink string `json:"calendar_link,omitempty"`
	// Production pipeline status; transitions complete handoff tasks
	Status shoot.Status `json:"status,omitempty"`
	// Whether the shoot belongs to the monthly cadence
	Type shoot.Type `json:"type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ShootQuery when eager-loading is set.
	Edges        ShootEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ShootEdges holds the relations/edges for other nodes in the graph.
type ShootEdges struct {
	// Client holds the value of the client edge.
	Client *ClientAccount `json:"client,omitempty"`
	// Cycle holds the value of the cycle edge.
	Cycle *Cycle `json:"cycle,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ShootEdges) ClientOrErr() (*ClientAccount, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clientaccount.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// CycleOrErr returns the Cycle value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ShootEdges) CycleOrErr() (*Cycle, error) {
	if e.Cycle != nil {
		return e.Cycle, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: cycle.Label}
	}
	return nil, &NotLoadedError{edge: "cycle"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Shoot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case shoot.FieldCycleID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case shoot.FieldShootTime, shoot.FieldLocation, shoot.FieldCalendarLink, shoot.FieldStatus, shoot.FieldType:
			values[i] = new(sql.NullString)
		case shoot.FieldShootDate, shoot.FieldCreatedAt, shoot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case shoot.FieldID, shoot.FieldClientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Shoot fields.
func (s *Shoot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case shoot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				s.ID = *value
			}
		case shoot.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				s.ClientID = *value
			}
		case shoot.FieldCycleID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_id", values[i])
			} else if value.Valid {
				s.CycleID = new(uuid.UUID)
				*s.CycleID = *value.S.(*uuid.UUID)
			}
		case shoot.FieldShootDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field shoot_date", values[i])
			} else if value.Valid {
				s.ShootDate = value.Time
			}
		case shoot.FieldShootTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shoot_time", values[i])
			} else if value.Valid {
				s.ShootTime = value.String
			}
		case shoot.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				s.Location = value.String
			}
		case shoot.FieldCalendarLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_link", values[i])
			} else if value.Valid {
				s.CalendarLink = value.String
			}
		case shoot.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				s.Status = shoot.Status(value.String)
			}
		case shoot.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				s.Type = shoot.Type(value.String)
			}
		case shoot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				s.CreatedAt = value.Time
			}
		case shoot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				s.UpdatedAt = value.Time
			}
		default:
			s.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Shoot.
// This includes values selected through modifiers, order, etc.
func (s *Shoot) Value(name string) (ent.Value, error) {
	return s.selectValues.Get(name)
}

// QueryClient queries the "client" edge of the Shoot entity.
func (s *Shoot) QueryClient() *ClientAccountQuery {
	return NewShootClient(s.config).QueryClient(s)
}

// QueryCycle queries the "cycle" edge of the Shoot entity.
func (s *Shoot) QueryCycle() *CycleQuery {
	return NewShootClient(s.config).QueryCycle(s)
}

// Update returns a builder for updating this Shoot.
// Note that you need to call Shoot.Unwrap() before calling this method if this Shoot
// was returned from a transaction, and the transaction was committed or rolled back.
func (s *Shoot) Update() *ShootUpdateOne {
	return NewShootClient(s.config).UpdateOne(s)
}

// Unwrap unwraps the Shoot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (s *Shoot) Unwrap() *Shoot {
	_tx, ok := s.config.driver.(*txDriver)
	if !ok {
		panic("generated: Shoot is not a transactional entity")
	}
	s.config.driver = _tx.drv
	return s
}

// String implements the fmt.Stringer.
func (s *Shoot) String() string {
	var builder strings.Builder
	builder.WriteString("Shoot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", s.ID))
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", s.ClientID))
	builder.WriteString(", ")
	if v := s.CycleID; v != nil {
		builder.WriteString("cycle_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("shoot_date=")
	builder.WriteString(s.ShootDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("shoot_time=")
	builder.WriteString(s.ShootTime)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(s.Location)
	builder.WriteString(", ")
	builder.WriteString("calendar_link=")
	builder.WriteString(s.CalendarLink)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", s.Status))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", s.Type))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(s.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(s.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Shoots is a parsable slice of Shoot.
type Shoots []*Shoot
