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
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// ClientTaskAssignment is the model entity for the ClientTaskAssignment schema.
type ClientTaskAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Client the override applies to
	ClientID uuid.UUID `json:"client_id,omitempty"`
	// Template the override applies to
	TemplateID uuid.UUID `json:"template_id,omitempty"`
	// Default assignee; nil means explicitly unassigned
	AssigneeID *uuid.UUID `json:"assignee_id,omitempty"`
	// Replaces the template days_offset when set
	DaysOffsetOverride *int `json:"days_offset_override,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClientTaskAssignmentQuery when eager-loading is set.
	Edges        ClientTaskAssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClientTaskAssignmentEdges holds the relations/edges for other nodes in the graph.
type ClientTaskAssignmentEdges struct {
	// Client holds the value of the client edge.
	Client *ClientAccount `json:"client,omitempty"`
	// Template holds the value of the template edge.
	Template *TaskTemplate `json:"template,omitempty"`
	// Assignee holds the value of the assignee edge.
	Assignee *Profile `json:"assignee,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClientTaskAssignmentEdges) ClientOrErr() (*ClientAccount, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clientaccount.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// TemplateOrErr returns the Template value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClientTaskAssignmentEdges) TemplateOrErr() (*TaskTemplate, error) {
	if e.Template != nil {
		return e.Template, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: tasktemplate.Label}
	}
	return nil, &NotLoadedError{edge: "template"}
}

// AssigneeOrErr returns the Assignee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClientTaskAssignmentEdges) AssigneeOrErr() (*Profile, error) {
	if e.Assignee != nil {
		return e.Assignee, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "assignee"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientTaskAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clienttaskassignment.FieldAssigneeID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case clienttaskassignment.FieldDaysOffsetOverride:
			values[i] = new(sql.NullInt64)
		case clienttaskassignment.FieldCreatedAt, clienttaskassignment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case clienttaskassignment.FieldID, clienttaskassignment.FieldClientID, clienttaskassignment.FieldTemplateID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientTaskAssignment fields.
func (cta *ClientTaskAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clienttaskassignment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				cta.ID = *value
			}
		case clienttaskassignment.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				cta.ClientID = *value
			}
		case clienttaskassignment.FieldTemplateID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value != nil {
				cta.TemplateID = *value
			}
		case clienttaskassignment.FieldAssigneeID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_id", values[i])
			} else if value.Valid {
				cta.AssigneeID = new(uuid.UUID)
				*cta.AssigneeID = *value.S.(*uuid.UUID)
			}
		case clienttaskassignment.FieldDaysOffsetOverride:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field days_offset_override", values[i])
			} else if value.Valid {
				cta.DaysOffsetOverride = new(int)
				*cta.DaysOffsetOverride = int(value.Int64)
			}
		case clienttaskassignment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cta.CreatedAt = value.Time
			}
		case clienttaskassignment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cta.UpdatedAt = value.Time
			}
		default:
			cta.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClientTaskAssignment.
// This includes values selected through modifiers, order, etc.
func (cta *ClientTaskAssignment) Value(name string) (ent.Value, error) {
	return cta.selectValues.Get(name)
}

// QueryClient queries the "client" edge of the ClientTaskAssignment entity.
func (cta *ClientTaskAssignment) QueryClient() *ClientAccountQuery {
	return NewClientTaskAssignmentClient(cta.config).QueryClient(cta)
}

// QueryTemplate queries the "template" edge of the ClientTaskAssignment entity.
func (cta *ClientTaskAssignment) QueryTemplate() *TaskTemplateQuery {
	return NewClientTaskAssignmentClient(cta.config).QueryTemplate(cta)
}

// QueryAssignee queries the "assignee" edge of the ClientTaskAssignment entity.
func (cta *ClientTaskAssignment) QueryAssignee() *ProfileQuery {
	return NewClientTaskAssignmentClient(cta.config).QueryAssignee(cta)
}

// Update returns a builder for updating this ClientTaskAssignment.
// Note that you need to call ClientTaskAssignment.Unwrap() before calling this method if this ClientTaskAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (cta *ClientTaskAssignment) Update() *ClientTaskAssignmentUpdateOne {
	return NewClientTaskAssignmentClient(cta.config).UpdateOne(cta)
}

// Unwrap unwraps the ClientTaskAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cta *ClientTaskAssignment) Unwrap() *ClientTaskAssignment {
	_tx, ok := cta.config.driver.(*txDriver)
	if !ok {
		panic("generated: ClientTaskAssignment is not a transactional entity")
	}
	cta.config.driver = _tx.drv
	return cta
}

// String implements the fmt.Stringer.
func (cta *ClientTaskAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("ClientTaskAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cta.ID))
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", cta.ClientID))
	builder.WriteString(", ")
	builder.WriteString("template_id=")
	builder.WriteString(fmt.Sprintf("%v", cta.TemplateID))
	builder.WriteString(", ")
	if v := cta.AssigneeID; v != nil {
		builder.WriteString("assignee_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := cta.DaysOffsetOverride; v != nil {
		builder.WriteString("days_offset_override=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cta.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cta.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClientTaskAssignments is a parsable slice of ClientTaskAssignment.
type ClientTaskAssignments []*ClientTaskAssignment
