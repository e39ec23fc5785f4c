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
	"github.com/localbzz/clientops/ent/generated/clientaccount"
)

// ClientAccount is the model entity for the ClientAccount schema.
type ClientAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Client display name
	Name string `json:"name,omitempty"`
	// Clients are archived, never hard-deleted
	Status clientaccount.Status `json:"status,omitempty"`
	// Free-form asset links: drive_url, schedule_url, brand_url, contact fields
	Assets map[string]string `json:"assets,omitempty"`
	// When the client was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the client was last updated
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClientAccountQuery when eager-loading is set.
	Edges        ClientAccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClientAccountEdges holds the relations/edges for other nodes in the graph.
type ClientAccountEdges struct {
	// Monthly cycles for this client
	Cycles []*Cycle `json:"cycles,omitempty"`
	// Shoots for this client
	Shoots []*Shoot `json:"shoots,omitempty"`
	// Client-scoped template overrides
	Templates []*TaskTemplate `json:"templates,omitempty"`
	// Per-template default assignments
	Assignments []*ClientTaskAssignment `json:"assignments,omitempty"`
	// Context feed entries for this client
	ContextEntries []*ContextEntry `json:"context_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// CyclesOrErr returns the Cycles value or an error if the edge
// was not loaded in eager-loading.
func (e ClientAccountEdges) CyclesOrErr() ([]*Cycle, error) {
	if e.loadedTypes[0] {
		return e.Cycles, nil
	}
	return nil, &NotLoadedError{edge: "cycles"}
}

// ShootsOrErr returns the Shoots value or an error if the edge
// was not loaded in eager-loading.
func (e ClientAccountEdges) ShootsOrErr() ([]*Shoot, error) {
	if e.loadedTypes[1] {
		return e.Shoots, nil
	}
	return nil, &NotLoadedError{edge: "shoots"}
}

// TemplatesOrErr returns the Templates value or an error if the edge
// was not loaded in eager-loading.
func (e ClientAccountEdges) TemplatesOrErr() ([]*TaskTemplate, error) {
	if e.loadedTypes[2] {
		return e.Templates, nil
	}
	return nil, &NotLoadedError{edge: "templates"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e ClientAccountEdges) AssignmentsOrErr() ([]*ClientTaskAssignment, error) {
	if e.loadedTypes[3] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// ContextEntriesOrErr returns the ContextEntries value or an error if the edge
// was not loaded in eager-loading.
func (e ClientAccountEdges) ContextEntriesOrErr() ([]*ContextEntry, error) {
	if e.loadedTypes[4] {
		return e.ContextEntries, nil
	}
	return nil, &NotLoadedError{edge: "context_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clientaccount.FieldAssets:
			values[i] = new([]byte)
		case clientaccount.FieldName, clientaccount.FieldStatus:
			values[i] = new(sql.NullString)
		case clientaccount.FieldCreatedAt, clientaccount.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case clientaccount.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientAccount fields.
func (ca *ClientAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clientaccount.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ca.ID = *value
			}
		case clientaccount.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				ca.Name = value.String
			}
		case clientaccount.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ca.Status = clientaccount.Status(value.String)
			}
		case clientaccount.FieldAssets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ca.Assets); err != nil {
					return fmt.Errorf("unmarshal field assets: %w", err)
				}
			}
		case clientaccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ca.CreatedAt = value.Time
			}
		case clientaccount.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ca.UpdatedAt = value.Time
			}
		default:
			ca.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClientAccount.
// This includes values selected through modifiers, order, etc.
func (ca *ClientAccount) Value(name string) (ent.Value, error) {
	return ca.selectValues.Get(name)
}

// QueryCycles queries the "cycles" edge of the ClientAccount entity.
func (ca *ClientAccount) QueryCycles() *CycleQuery {
	return NewClientAccountClient(ca.config).QueryCycles(ca)
}

// QueryShoots queries the "shoots" edge of the ClientAccount entity.
func (ca *ClientAccount) QueryShoots() *ShootQuery {
	return NewClientAccountClient(ca.config).QueryShoots(ca)
}

// QueryTemplates queries the "templates" edge of the ClientAccount entity.
func (ca *ClientAccount) QueryTemplates() *TaskTemplateQuery {
	return NewClientAccountClient(ca.config).QueryTemplates(ca)
}

// QueryAssignments queries the "assignments" edge of the ClientAccount entity.
func (ca *ClientAccount) QueryAssignments() *ClientTaskAssignmentQuery {
	return NewClientAccountClient(ca.config).QueryAssignments(ca)
}

// QueryContextEntries queries the "context_entries" edge of the ClientAccount entity.
func (ca *ClientAccount) QueryContextEntries() *ContextEntryQuery {
	return NewClientAccountClient(ca.config).QueryContextEntries(ca)
}

// Update returns a builder for updating this ClientAccount.
// Note that you need to call ClientAccount.Unwrap() before calling this method if this ClientAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (ca *ClientAccount) Update() *ClientAccountUpdateOne {
	return NewClientAccountClient(ca.config).UpdateOne(ca)
}

// Unwrap unwraps the ClientAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ca *ClientAccount) Unwrap() *ClientAccount {
	_tx, ok := ca.config.driver.(*txDriver)
	if !ok {
		panic("generated: ClientAccount is not a transactional entity")
	}
	ca.config.driver = _tx.drv
	return ca
}

// String implements the fmt.Stringer.
func (ca *ClientAccount) String() string {
	var builder strings.Builder
	builder.WriteString("ClientAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ca.ID))
	builder.WriteString("name=")
	builder.WriteString(ca.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", ca.Status))
	builder.WriteString(", ")
	builder.WriteString("assets=")
	builder.WriteString(fmt.Sprintf("%v", ca.Assets))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ca.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ca.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClientAccounts is a parsable slice of ClientAccount.
type ClientAccounts []*ClientAccount
