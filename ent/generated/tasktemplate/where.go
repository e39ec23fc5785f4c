// Code generated by ent, DO NOT EDIT.

package tasktemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLTE(FieldID, id))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldClientID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldTitle, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldSortOrder, v))
}

// DaysOffset applies equality check predicate on the "days_offset" field. It's identical to DaysOffsetEQ.
func DaysOffset(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldDaysOffset, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDIsNil applies the IsNil predicate on the "client_id" field.
func ClientIDIsNil() predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldIsNull(FieldClientID))
}

// ClientIDNotNil applies the NotNil predicate on the "client_id" field.
func ClientIDNotNil() predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNotNull(FieldClientID))
}

// ParentTypeEQ applies the EQ predicate on the "parent_type" field.
func ParentTypeEQ(v ParentType) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldParentType, v))
}

// ParentTypeNEQ applies the NEQ predicate on the "parent_type" field.
func ParentTypeNEQ(v ParentType) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNEQ(FieldParentType, v))
}

// ParentTypeIn applies the In predicate on the "parent_type" field.
func ParentTypeIn(vs ...ParentType) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldIn(FieldParentType, vs...))
}

// ParentTypeNotIn applies the NotIn predicate on the "parent_type" field.
func ParentTypeNotIn(vs ...ParentType) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNotIn(FieldParentType, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldContainsFold(FieldTitle, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNotIn(FieldRole, vs...))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLTE(FieldSortOrder, v))
}

// DaysOffsetEQ applies the EQ predicate on the "days_offset" field.
func DaysOffsetEQ(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldDaysOffset, v))
}

// DaysOffsetNEQ applies the NEQ predicate on the "days_offset" field.
func DaysOffsetNEQ(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNEQ(FieldDaysOffset, v))
}

// DaysOffsetIn applies the In predicate on the "days_offset" field.
func DaysOffsetIn(vs ...int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldIn(FieldDaysOffset, vs...))
}

// DaysOffsetNotIn applies the NotIn predicate on the "days_offset" field.
func DaysOffsetNotIn(vs ...int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNotIn(FieldDaysOffset, vs...))
}

// DaysOffsetGT applies the GT predicate on the "days_offset" field.
func DaysOffsetGT(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGT(FieldDaysOffset, v))
}

// DaysOffsetGTE applies the GTE predicate on the "days_offset" field.
func DaysOffsetGTE(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGTE(FieldDaysOffset, v))
}

// DaysOffsetLT applies the LT predicate on the "days_offset" field.
func DaysOffsetLT(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLT(FieldDaysOffset, v))
}

// DaysOffsetLTE applies the LTE predicate on the "days_offset" field.
func DaysOffsetLTE(v int) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLTE(FieldDaysOffset, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.TaskTemplate {
	return predicate.TaskTemplate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.ClientAccount) predicate.TaskTemplate {
	return predicate.TaskTemplate(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignments applies the HasEdge predicate on the "assignments" edge.
func HasAssignments() predicate.TaskTemplate {
	return predicate.TaskTemplate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentsWith applies the HasEdge predicate on the "assignments" edge with a given conditions (other predicates).
func HasAssignmentsWith(preds ...predicate.ClientTaskAssignment) predicate.TaskTemplate {
	return predicate.TaskTemplate(func(s *sql.Selector) {
		step := newAssignmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskTemplate) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskTemplate) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskTemplate) predicate.TaskTemplate {
	return predicate.TaskTemplate(sql.NotPredicates(p))
}
