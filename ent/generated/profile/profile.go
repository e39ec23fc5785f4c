// Code generated by ent, DO NOT EDIT.

package profile

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldAvatarURL holds the string denoting the avatar_url field in the database.
	FieldAvatarURL = "avatar_url"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldInviteToken holds the string denoting the invite_token field in the database.
	FieldInviteToken = "invite_token"
	// FieldInviteExpiresAt holds the string denoting the invite_expires_at field in the database.
	FieldInviteExpiresAt = "invite_expires_at"
	// FieldLastLogin holds the string denoting the last_login field in the database.
	FieldLastLogin = "last_login"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAssignedTasks holds the string denoting the assigned_tasks edge name in mutations.
	EdgeAssignedTasks = "assigned_tasks"
	// EdgeContextEntries holds the string denoting the context_entries edge name in mutations.
	EdgeContextEntries = "context_entries"
	// EdgeDefaultAssignments holds the string denoting the default_assignments edge name in mutations.
	EdgeDefaultAssignments = "default_assignments"
	// EdgeActivityEvents holds the string denoting the activity_events edge name in mutations.
	EdgeActivityEvents = "activity_events"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
	// AssignedTasksTable is the table that holds the assigned_tasks relation/edge.
	AssignedTasksTable = "tasks"
	// AssignedTasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	AssignedTasksInverseTable = "tasks"
	// AssignedTasksColumn is the table column denoting the assigned_tasks relation/edge.
	AssignedTasksColumn = "assignee_id"
	// ContextEntriesTable is the table that holds the context_entries relation/edge.
	ContextEntriesTable = "context_entries"
	// ContextEntriesInverseTable is the table name for the ContextEntry entity.
	// It exists in this package in order to avoid circular dependency with the "contextentry" package.
	ContextEntriesInverseTable = "context_entries"
	// ContextEntriesColumn is the table column denoting the context_entries relation/edge.
	ContextEntriesColumn = "author_id"
	// DefaultAssignmentsTable is the table that holds the default_assignments relation/edge.
	DefaultAssignmentsTable = "client_task_assignments"
	// DefaultAssignmentsInverseTable is the table name for the ClientTaskAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "clienttaskassignment" package.
	DefaultAssignmentsInverseTable = "client_task_assignments"
	// DefaultAssignmentsColumn is the table column denoting the default_assignments relation/edge.
	DefaultAssignmentsColumn = "assignee_id"
	// ActivityEventsTable is the table that holds the activity_events relation/edge.
	ActivityEventsTable = "activity_events"
	// ActivityEventsInverseTable is the table name for the ActivityEvent entity.
	// It exists in this package in order to avoid circular dependency with the "activityevent" package.
	ActivityEventsInverseTable = "activity_events"
	// ActivityEventsColumn is the table column denoting the activity_events relation/edge.
	ActivityEventsColumn = "actor_id"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldDisplayName,
	FieldAvatarURL,
	FieldRole,
	FieldPasswordHash,
	FieldIsActive,
	FieldInviteToken,
	FieldInviteExpiresAt,
	FieldLastLogin,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultDisplayName holds the default value on creation for the "display_name" field.
	DefaultDisplayName string
	// DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	DisplayNameValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Role defines the type for the "role" enum field.
type Role string

// RoleContributor is the default value of the Role enum.
const DefaultRole = RoleContributor

// Role values.
const (
	RoleAdmin       Role = "admin"
	RoleContributor Role = "contributor"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleAdmin, RoleContributor:
		return nil
	default:
		return fmt.Errorf("profile: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByAvatarURL orders the results by the avatar_url field.
func ByAvatarURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatarURL, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByInviteToken orders the results by the invite_token field.
func ByInviteToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInviteToken, opts...).ToFunc()
}

// ByInviteExpiresAt orders the results by the invite_expires_at field.
func ByInviteExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInviteExpiresAt, opts...).ToFunc()
}

// ByLastLogin orders the results by the last_login field.
func ByLastLogin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLogin, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAssignedTasksCount orders the results by assigned_tasks count.
func ByAssignedTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignedTasksStep(), opts...)
	}
}

// ByAssignedTasks orders the results by assigned_tasks terms.
func ByAssignedTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignedTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByContextEntriesCount orders the results by context_entries count.
func ByContextEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContextEntriesStep(), opts...)
	}
}

// ByContextEntries orders the results by context_entries terms.
func ByContextEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContextEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDefaultAssignmentsCount orders the results by default_assignments count.
func ByDefaultAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDefaultAssignmentsStep(), opts...)
	}
}

// ByDefaultAssignments orders the results by default_assignments terms.
func ByDefaultAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefaultAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByActivityEventsCount orders the results by activity_events count.
func ByActivityEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActivityEventsStep(), opts...)
	}
}

// ByActivityEvents orders the results by activity_events terms.
func ByActivityEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActivityEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAssignedTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignedTasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignedTasksTable, AssignedTasksColumn),
	)
}
func newContextEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContextEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContextEntriesTable, ContextEntriesColumn),
	)
}
func newDefaultAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefaultAssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DefaultAssignmentsTable, DefaultAssignmentsColumn),
	)
}
func newActivityEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivityEventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActivityEventsTable, ActivityEventsColumn),
	)
}
