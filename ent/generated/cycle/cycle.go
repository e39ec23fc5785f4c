// Code generated by ent, DO NOT EDIT.

package cycle

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the cycle type in the database.
	Label = "cycle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldMonth holds the string denoting the month field in the database.
	FieldMonth = "month"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeClient holds the string denoting the client edge name in mutations.
	EdgeClient = "client"
	// EdgeShoots holds the string denoting the shoots edge name in mutations.
	EdgeShoots = "shoots"
	// EdgeContextEntries holds the string denoting the context_entries edge name in mutations.
	EdgeContextEntries = "context_entries"
	// Table holds the table name of the cycle in the database.
	Table = "cycles"
	// ClientTable is the table that holds the client relation/edge.
	ClientTable = "cycles"
	// ClientInverseTable is the table name for the ClientAccount entity.
	// It exists in this package in order to avoid circular dependency with the "clientaccount" package.
	ClientInverseTable = "client_accounts"
	// ClientColumn is the table column denoting the client relation/edge.
	ClientColumn = "client_id"
	// ShootsTable is the table that holds the shoots relation/edge.
	ShootsTable = "shoots"
	// ShootsInverseTable is the table name for the Shoot entity.
	// It exists in this package in order to avoid circular dependency with the "shoot" package.
	ShootsInverseTable = "shoots"
	// ShootsColumn is the table column denoting the shoots relation/edge.
	ShootsColumn = "cycle_id"
	// ContextEntriesTable is the table that holds the context_entries relation/edge.
	ContextEntriesTable = "context_entries"
	// ContextEntriesInverseTable is the table name for the ContextEntry entity.
	// It exists in this package in order to avoid circular dependency with the "contextentry" package.
	ContextEntriesInverseTable = "context_entries"
	// ContextEntriesColumn is the table column denoting the context_entries relation/edge.
	ContextEntriesColumn = "cycle_id"
)

// Columns holds all SQL columns for cycle fields.
var Columns = []string{
	FieldID,
	FieldClientID,
	FieldMonth,
	FieldStatus,
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

// StatusPlanning is the default value of the Status enum.
const DefaultStatus = StatusPlanning

// Status values.
const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPlanning, StatusActive, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("cycle: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Cycle queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// ByMonth orders the results by the month field.
func ByMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonth, opts...).ToFunc()
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

// ByClientField orders the results by client field.
func ByClientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClientStep(), sql.OrderByField(field, opts...))
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
func newClientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
	)
}
func newShootsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ShootsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ShootsTable, ShootsColumn),
	)
}
func newContextEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContextEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContextEntriesTable, ContextEntriesColumn),
	)
}
