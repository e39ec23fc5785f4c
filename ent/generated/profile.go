// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/profile"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Team member email address
	Email string `json:"email,omitempty"`
	// Name shown in assignee pickers
	DisplayName string `json:"display_name,omitempty"`
	// Avatar image URL
	AvatarURL string `json:"avatar_url,omitempty"`
	// Role for authorization checks
	Role profile.Role `json:"role,omitempty"`
	// Hashed password; empty until the invite is accepted
	PasswordHash string `json:"-"`
	// Whether the account can log in
	IsActive bool `json:"is_active,omitempty"`
	// Pending invitation token
	InviteToken string `json:"-"`
	// Invitation token expiration
	InviteExpiresAt *time.Time `json:"invite_expires_at,omitempty"`
	// Last successful login timestamp
	LastLogin *time.Time `json:"last_login,omitempty"`
	// When the profile was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the profile was last updated
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProfileQuery when eager-loading is set.
	Edges        ProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProfileEdges holds the relations/edges for other nodes in the graph.
type ProfileEdges struct {
	// Tasks assigned to this profile
	AssignedTasks []*Task `json:"assigned_tasks,omitempty"`
	// Context entries authored by this profile
	ContextEntries []*ContextEntry `json:"context_entries,omitempty"`
	// Per-client default assignments targeting this profile
	DefaultAssignments []*ClientTaskAssignment `json:"default_assignments,omitempty"`
	// Activity events attributed to this profile
	ActivityEvents []*ActivityEvent `json:"activity_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// AssignedTasksOrErr returns the AssignedTasks value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) AssignedTasksOrErr() ([]*Task, error) {
	if e.loadedTypes[0] {
		return e.AssignedTasks, nil
	}
	return nil, &NotLoadedError{edge: "assigned_tasks"}
}

// ContextEntriesOrErr returns the ContextEntries value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) ContextEntriesOrErr() ([]*ContextEntry, error) {
	if e.loadedTypes[1] {
		return e.ContextEntries, nil
	}
	return nil, &NotLoadedError{edge: "context_entries"}
}

// DefaultAssignmentsOrErr returns the DefaultAssignments value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) DefaultAssignmentsOrErr() ([]*ClientTaskAssignment, error) {
	if e.loadedTypes[2] {
		return e.DefaultAssignments, nil
	}
	return nil, &NotLoadedError{edge: "default_assignments"}
}

// ActivityEventsOrErr returns the ActivityEvents value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) ActivityEventsOrErr() ([]*ActivityEvent, error) {
	if e.loadedTypes[3] {
		return e.ActivityEvents, nil
	}
	return nil, &NotLoadedError{edge: "activity_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldIsActive:
			values[i] = new(sql.NullBool)
		case profile.FieldEmail, profile.FieldDisplayName, profile.FieldAvatarURL, profile.FieldRole, profile.FieldPasswordHash, profile.FieldInviteToken:
			values[i] = new(sql.NullString)
		case profile.FieldInviteExpiresAt, profile.FieldLastLogin, profile.FieldCreatedAt, profile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case profile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (pr *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				pr.ID = *value
			}
		case profile.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				pr.Email = value.String
			}
		case profile.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				pr.DisplayName = value.String
			}
		case profile.FieldAvatarURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar_url", values[i])
			} else if value.Valid {
				pr.AvatarURL = value.String
			}
		case profile.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				pr.Role = profile.Role(value.String)
			}
		case profile.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				pr.PasswordHash = value.String
			}
		case profile.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				pr.IsActive = value.Bool
			}
		case profile.FieldInviteToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invite_token", values[i])
			} else if value.Valid {
				pr.InviteToken = value.String
			}
		case profile.FieldInviteExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invite_expires_at", values[i])
			} else if value.Valid {
				pr.InviteExpiresAt = new(time.Time)
				*pr.InviteExpiresAt = value.Time
			}
		case profile.FieldLastLogin:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_login", values[i])
			} else if value.Valid {
				pr.LastLogin = new(time.Time)
				*pr.LastLogin = value.Time
			}
		case profile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				pr.CreatedAt = value.Time
			}
		case profile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				pr.UpdatedAt = value.Time
			}
		default:
			pr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (pr *Profile) Value(name string) (ent.Value, error) {
	return pr.selectValues.Get(name)
}

// QueryAssignedTasks queries the "assigned_tasks" edge of the Profile entity.
func (pr *Profile) QueryAssignedTasks() *TaskQuery {
	return NewProfileClient(pr.config).QueryAssignedTasks(pr)
}

// QueryContextEntries queries the "context_entries" edge of the Profile entity.
func (pr *Profile) QueryContextEntries() *ContextEntryQuery {
	return NewProfileClient(pr.config).QueryContextEntries(pr)
}

// QueryDefaultAssignments queries the "default_assignments" edge of the Profile entity.
func (pr *Profile) QueryDefaultAssignments() *ClientTaskAssignmentQuery {
	return NewProfileClient(pr.config).QueryDefaultAssignments(pr)
}

// QueryActivityEvents queries the "activity_events" edge of the Profile entity.
func (pr *Profile) QueryActivityEvents() *ActivityEventQuery {
	return NewProfileClient(pr.config).QueryActivityEvents(pr)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (pr *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(pr.config).UpdateOne(pr)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pr *Profile) Unwrap() *Profile {
	_tx, ok := pr.config.driver.(*txDriver)
	if !ok {
		panic("generated: Profile is not a transactional entity")
	}
	pr.config.driver = _tx.drv
	return pr
}

// String implements the fmt.Stringer.
func (pr *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pr.ID))
	builder.WriteString("email=")
	builder.WriteString(pr.Email)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(pr.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("avatar_url=")
	builder.WriteString(pr.AvatarURL)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", pr.Role))
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", pr.IsActive))
	builder.WriteString(", ")
	builder.WriteString("invite_token=<sensitive>")
	builder.WriteString(", ")
	if v := pr.InviteExpiresAt; v != nil {
		builder.WriteString("invite_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := pr.LastLogin; v != nil {
		builder.WriteString("last_login=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(pr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(pr.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
