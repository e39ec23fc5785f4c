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
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/profile"
)

// ContextEntry is the model entity for the ContextEntry schema.
type ContextEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Client the entry belongs to
	ClientID uuid.UUID `json:"client_id,omitempty"`
	// Cycle the entry was captured during, if any
	CycleID *uuid.UUID `json:"cycle_id,omitempty"`
	// Team member who wrote the entry
	AuthorID uuid.UUID `json:"author_id,omitempty"`
	// Kind of entry
	Type contextentry.Type `json:"type,omitempty"`
	// Entry body, at most 50000 characters
	Content string `json:"content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContextEntryQuery when eager-loading is set.
	Edges        ContextEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContextEntryEdges holds the relations/edges for other nodes in the graph.
type ContextEntryEdges struct {
	// Client holds the value of the client edge.
	Client *ClientAccount `json:"client,omitempty"`
	// Cycle holds the value of the cycle edge.
	Cycle *Cycle `json:"cycle,omitempty"`
	// Author holds the value of the author edge.
	Author *Profile `json:"author,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContextEntryEdges) ClientOrErr() (*ClientAccount, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clientaccount.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// CycleOrErr returns the Cycle value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContextEntryEdges) CycleOrErr() (*Cycle, error) {
	if e.Cycle != nil {
		return e.Cycle, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: cycle.Label}
	}
	return nil, &NotLoadedError{edge: "cycle"}
}

// AuthorOrErr returns the Author value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContextEntryEdges) AuthorOrErr() (*Profile, error) {
	if e.Author != nil {
		return e.Author, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "author"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContextEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contextentry.FieldCycleID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case contextentry.FieldType, contextentry.FieldContent:
			values[i] = new(sql.NullString)
		case contextentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case contextentry.FieldID, contextentry.FieldClientID, contextentry.FieldAuthorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContextEntry fields.
func (ce *ContextEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contextentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ce.ID = *value
			}
		case contextentry.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				ce.ClientID = *value
			}
		case contextentry.FieldCycleID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_id", values[i])
			} else if value.Valid {
				ce.CycleID = new(uuid.UUID)
				*ce.CycleID = *value.S.(*uuid.UUID)
			}
		case contextentry.FieldAuthorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value != nil {
				ce.AuthorID = *value
			}
		case contextentry.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				ce.Type = contextentry.Type(value.String)
			}
		case contextentry.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				ce.Content = value.String
			}
		case contextentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ce.CreatedAt = value.Time
			}
		default:
			ce.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContextEntry.
// This includes values selected through modifiers, order, etc.
func (ce *ContextEntry) Value(name string) (ent.Value, error) {
	return ce.selectValues.Get(name)
}

// QueryClient queries the "client" edge of the ContextEntry entity.
func (ce *ContextEntry) QueryClient() *ClientAccountQuery {
	return NewContextEntryClient(ce.config).QueryClient(ce)
}

// QueryCycle queries the "cycle" edge of the ContextEntry entity.
func (ce *ContextEntry) QueryCycle() *CycleQuery {
	return NewContextEntryClient(ce.config).QueryCycle(ce)
}

// QueryAuthor queries the "author" edge of the ContextEntry entity.
func (ce *ContextEntry) QueryAuthor() *ProfileQuery {
	return NewContextEntryClient(ce.config).QueryAuthor(ce)
}

// Update returns a builder for updating this ContextEntry.
// Note that you need to call ContextEntry.Unwrap() before calling this method if this ContextEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (ce *ContextEntry) Update() *ContextEntryUpdateOne {
	return NewContextEntryClient(ce.config).UpdateOne(ce)
}

// Unwrap unwraps the ContextEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ce *ContextEntry) Unwrap() *ContextEntry {
	_tx, ok := ce.config.driver.(*txDriver)
	if !ok {
		panic("generated: ContextEntry is not a transactional entity")
	}
	ce.config.driver = _tx.drv
	return ce
}

// String implements the fmt.Stringer.
func (ce *ContextEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ContextEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ce.ID))
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", ce.ClientID))
	builder.WriteString(", ")
	if v := ce.CycleID; v != nil {
		builder.WriteString("cycle_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("author_id=")
	builder.WriteString(fmt.Sprintf("%v", ce.AuthorID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", ce.Type))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(ce.Content)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ce.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContextEntries is a parsable slice of ContextEntry.
type ContextEntries []*ContextEntry
