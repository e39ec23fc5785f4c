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
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
)

// TaskTemplate is the model entity for the TaskTemplate schema.
type TaskTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Owning client; nil for a global template
	ClientID *uuid.UUID `json:"client_id,omitempty"`
	// Which parent kind this template materializes under
	ParentType tasktemplate.ParentType `json:"parent_type,omitempty"`
	// Task title; well-known titles drive handoff behavior
	Title string `json:"title,omitempty"`
	// Role the materialized task is tagged with
	Role tasktemplate.Role `json:"role,omitempty"`
	// Materialization order; sort_order <= 4 is pre-event by convention
	SortOrder int `json:"sort_order,omitempty"`
	// Due date offset in calendar days from the parent anchor date
	DaysOffset int `json:"days_offset,omitempty"`
	// Inactive templates are skipped at materialization time
	IsActive bool `json:"is_active,omitempty"`
	// When the template was created; breaks sort_order ties
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the template was last updated
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskTemplateQuery when eager-loading is set.
	Edges        TaskTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskTemplateEdges holds the relations/edges for other nodes in the graph.
type TaskTemplateEdges struct {
	// Client holds the value of the client edge.
	Client *ClientAccount `json:"client,omitempty"`
	// Per-client assignment overrides for this template
	Assignments []*ClientTaskAssignment `json:"assignments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskTemplateEdges) ClientOrErr() (*ClientAccount, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clientaccount.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e TaskTemplateEdges) AssignmentsOrErr() ([]*ClientTaskAssignment, error) {
	if e.loadedTypes[1] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tasktemplate.FieldClientID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case tasktemplate.FieldIsActive:
			values[i] = new(sql.NullBool)
		case tasktemplate.FieldSortOrder, tasktemplate.FieldDaysOffset:
			values[i] = new(sql.NullInt64)
		case tasktemplate.FieldParentType, tasktemplate.FieldTitle, tasktemplate.FieldRole:
			values[i] = new(sql.NullString)
		case tasktemplate.FieldCreatedAt, tasktemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tasktemplate.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskTemplate fields.
func (tt *TaskTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tasktemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				tt.ID = *value
			}
		case tasktemplate.FieldClientID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				tt.ClientID = new(uuid.UUID)
				*tt.ClientID = *value.S.(*uuid.UUID)
			}
		case tasktemplate.FieldParentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_type", values[i])
			} else if value.Valid {
				tt.ParentType = tasktemplate.ParentType(value.String)
			}
		case tasktemplate.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				tt.Title = value.String
			}
		case tasktemplate.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				tt.Role = tasktemplate.Role(value.String)
			}
		case tasktemplate.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				tt.SortOrder = int(value.Int64)
			}
		case tasktemplate.FieldDaysOffset:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field days_offset", values[i])
			} else if value.Valid {
				tt.DaysOffset = int(value.Int64)
			}
		case tasktemplate.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				tt.IsActive = value.Bool
			}
		case tasktemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				tt.CreatedAt = value.Time
			}
		case tasktemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				tt.UpdatedAt = value.Time
			}
		default:
			tt.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskTemplate.
// This includes values selected through modifiers, order, etc.
func (tt *TaskTemplate) Value(name string) (ent.Value, error) {
	return tt.selectValues.Get(name)
}

// QueryClient queries the "client" edge of the TaskTemplate entity.
func (tt *TaskTemplate) QueryClient() *ClientAccountQuery {
	return NewTaskTemplateClient(tt.config).QueryClient(tt)
}

// QueryAssignments queries the "assignments" edge of the TaskTemplate entity.
func (tt *TaskTemplate) QueryAssignments() *ClientTaskAssignmentQuery {
	return NewTaskTemplateClient(tt.config).QueryAssignments(tt)
}

// Update returns a builder for updating this TaskTemplate.
// Note that you need to call TaskTemplate.Unwrap() before calling this method if this TaskTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (tt *TaskTemplate) Update() *TaskTemplateUpdateOne {
	return NewTaskTemplateClient(tt.config).UpdateOne(tt)
}

// Unwrap unwraps the TaskTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (tt *TaskTemplate) Unwrap() *TaskTemplate {
	_tx, ok := tt.config.driver.(*txDriver)
	if !ok {
		panic("generated: TaskTemplate is not a transactional entity")
	}
	tt.config.driver = _tx.drv
	return tt
}

// String implements the fmt.Stringer.
func (tt *TaskTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("TaskTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", tt.ID))
	if v := tt.ClientID; v != nil {
		builder.WriteString("client_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("parent_type=")
	builder.WriteString(fmt.Sprintf("%v", tt.ParentType))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(tt.Title)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", tt.Role))
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", tt.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("days_offset=")
	builder.WriteString(fmt.Sprintf("%v", tt.DaysOffset))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", tt.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(tt.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(tt.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskTemplates is a parsable slice of TaskTemplate.
type TaskTemplates []*TaskTemplate
