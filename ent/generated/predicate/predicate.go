// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// ClientAccount is the predicate function for clientaccount builders.
type ClientAccount func(*sql.Selector)

// ClientTaskAssignment is the predicate function for clienttaskassignment builders.
type ClientTaskAssignment func(*sql.Selector)

// ContextEntry is the predicate function for contextentry builders.
type ContextEntry func(*sql.Selector)

// Cycle is the predicate function for cycle builders.
type Cycle func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Shoot is the predicate function for shoot builders.
type Shoot func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskTemplate is the predicate function for tasktemplate builders.
type TaskTemplate func(*sql.Selector)
