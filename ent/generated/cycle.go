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
)

// Cycle is the model entity for the Cycle schema.
type Cycle struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Owning client
	ClientID uuid.UUID `json:"client_id,omitempty"`
	// Anchor month, always normalized to the first of the month
	Month time.Time `json:"month,omitempty"`
	// Cycle lifecycle status
	Status cycle.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CycleQuery when eager-loading is set.
	Edges        CycleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CycleEdges holds the relations/edges for other nodes in the graph.
type CycleEdges struct {
	// Client holds the value of the client edge.
	Client *ClientAccount `json:"client,omitempty"`
	// Shoots scheduled against this cycle
	Shoots []*Shoot `json:"shoots,omitempty"`
	// Context entries captured during this cycle
	ContextEntries []*ContextEntry `json:"context_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CycleEdges) ClientOrErr() (*ClientAccount, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clientaccount.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// ShootsOrErr returns the Shoots value or an error if the edge
// was not loaded in eager-loading.
func (e CycleEdges) ShootsOrErr() ([]*Shoot, error) {
	if e.loadedTypes[1] {
		return e.Shoots, nil
	}
	return nil, &NotLoadedError{edge: "shoots"}
}

// ContextEntriesOrErr returns the ContextEntries value or an error if the edge
// was not loaded in eager-loading.
func (e CycleEdges) ContextEntriesOrErr() ([]*ContextEntry, error) {
	if e.loadedTypes[2] {
		return e.ContextEntries, nil
	}
	return nil, &NotLoadedError{edge: "context_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Cycle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cycle.FieldStatus:
			values[i] = new(sql.NullString)
		case cycle.FieldMonth, cycle.FieldCreatedAt, cycle.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case cycle.FieldID, cycle.FieldClientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Cycle fields.
func (c *Cycle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cycle.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				c.ID = *value
			}
		case cycle.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				c.ClientID = *value
			}
		case cycle.FieldMonth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field month", values[i])
			} else if value.Valid {
				c.Month = value.Time
			}
		case cycle.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				c.Status = cycle.Status(value.String)
			}
		case cycle.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				c.CreatedAt = value.Time
			}
		case cycle.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				c.UpdatedAt = value.Time
			}
		default:
			c.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Cycle.
// This includes values selected through modifiers, order, etc.
func (c *Cycle) Value(name string) (ent.Value, error) {
	return c.selectValues.Get(name)
}

// QueryClient queries the "client" edge of the Cycle entity.
func (c *Cycle) QueryClient() *ClientAccountQuery {
	return NewCycleClient(c.config).QueryClient(c)
}

// QueryShoots queries the "shoots" edge of the Cycle entity.
func (c *Cycle) QueryShoots() *ShootQuery {
	return NewCycleClient(c.config).QueryShoots(c)
}

// QueryContextEntries queries the "context_entries" edge of the Cycle entity.
func (c *Cycle) QueryContextEntries() *ContextEntryQuery {
	return NewCycleClient(c.config).QueryContextEntries(c)
}

// Update returns a builder for updating this Cycle.
// Note that you need to call Cycle.Unwrap() before calling this method if this Cycle
// was returned from a transaction, and the transaction was committed or rolled back.
func (c *Cycle) Update() *CycleUpdateOne {
	return NewCycleClient(c.config).UpdateOne(c)
}

// Unwrap unwraps the Cycle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (c *Cycle) Unwrap() *Cycle {
	_tx, ok := c.config.driver.(*txDriver)
	if !ok {
		panic("generated: Cycle is not a transactional entity")
	}
	c.config.driver = _tx.drv
	return c
}

// String implements the fmt.Stringer.
func (c *Cycle) String() string {
	var builder strings.Builder
	builder.WriteString("Cycle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", c.ID))
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", c.ClientID))
	builder.WriteString(", ")
	builder.WriteString("month=")
	builder.WriteString(c.Month.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", c.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(c.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(c.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Cycles is a parsable slice of Cycle.
type Cycles []*Cycle
