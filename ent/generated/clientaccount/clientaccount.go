// Code generated by ent, DO NOT EDIT.

package clientaccount

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the clientaccount type in the database.
	Label = "client_account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssets holds the string denoting the assets field in the database.
	FieldAssets = "assets"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCycles holds the string denoting the cycles edge name in mutations.
	EdgeCycles = "cycles"
	// EdgeShoots holds the string denoting the shoots edge name in mutations.
	EdgeShoots = "shoots"
	// EdgeTemplates holds the string denoting the templates edge name in mutations.
	EdgeTemplates = "templates"
	// EdgeAssignments holds the string denoting the assignments edge name in mutations.
	EdgeAssignments = "assignments"
	// EdgeContextEntries holds the string denoting the context_entries edge name in mutations.
	EdgeContextEntries = "context_entries"
	// Table holds the table name of the clientaccount in the database.
	Table = "client_accounts"
	// CyclesTable is the table that holds the cycles relation/edge.
	CyclesTable = "cycles"
	// CyclesInverseTable is the table name for the Cycle entity.
	// It exists in this package in order to avoid circular dependency with the "cycle" package.
	CyclesInverseTable = "cycles"
	// CyclesColumn is the table column denoting the cycles relation/edge.
	CyclesColumn = "client_id"
	// ShootsTable is the table that holds the shoots relation/edge.
	ShootsTable = "shoots"
	// ShootsInverseTable is the table name for the Shoot entity.
	// It exists in this package in order to avoid circular dependency with the "shoot" package.
	ShootsInverseTable = "shoots"
	// ShootsColumn is the table column denoting the shoots relation/edge.
	ShootsColumn = "client_id"
	// TemplatesTable is the table that holds the templates relation/edge.
	TemplatesTable = "task_templates"
	// TemplatesInverseTable is the table name for the TaskTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "tasktemplate" package.
	TemplatesInverseTable = "task_templates"
	// TemplatesColumn is the table column denoting the templates relation/edge.
	TemplatesColumn = "client_id"
	// AssignmentsTable is the table that holds the assignments relation/edge.
	AssignmentsTable = "client_task_assignments"
	// AssignmentsInverseTable is the table name for the ClientTaskAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "clienttaskassignment" package.
	AssignmentsInverseTable = "client_task_assignments"
	// AssignmentsColumn is the table column denoting the assignments relation/edge.
	AssignmentsColumn = "client_id"
	// ContextEntriesTable is the table that holds the context_entries relation/edge.
	ContextEntriesTable = "context_entries"
	// ContextEntriesInverseTable is the table name for the ContextEntry entity.
	// It exists in this package in order to avoid circular dependency with the "contextentry" package.
	ContextEntriesInverseTable = "context_entries"
	// ContextEntriesColumn is the table column denoting the context_entries relation/edge.
	ContextEntriesColumn = "client_id"
)

// Columns holds all SQL columns for clientaccount fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldStatus,
	FieldAssets,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultAssets holds the default value on creation for the "assets" field.
	DefaultAssets map[string]string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusArchived:
		return nil
	default:
		return fmt.Errorf("clientaccount: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ClientAccount queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCyclesCount orders the results by cycles count.
func ByCyclesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCyclesStep(), opts...)
	}
}

// ByCycles orders the results by cycles terms.
func ByCycles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCyclesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByShootsCount orders the results by shoots count.
func ByShootsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newShootsStep(), opts...)
	}
}

// ByShoots orders the results by shoots terms.
func ByShoots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newShootsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTemplatesCount orders the results by templates count.
func ByTemplatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTemplatesStep(), opts...)
	}
}

// ByTemplates orders the results by templates terms.
func ByTemplates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTemplatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssignmentsCount orders the results by assignments count.
func ByAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignmentsStep(), opts...)
	}
}

// ByAssignments orders the results by assignments terms.
func ByAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newCyclesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CyclesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CyclesTable, CyclesColumn),
	)
}
func newShootsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ShootsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ShootsTable, ShootsColumn),
	)
}
func newTemplatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TemplatesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TemplatesTable, TemplatesColumn),
	)
}
func newAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
	)
}
func newContextEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContextEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContextEntriesTable, ContextEntriesColumn),
	)
}
