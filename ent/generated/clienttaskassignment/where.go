// Code generated by ent, DO NOT EDIT.

package clienttaskassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldLTE(FieldID, id))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldClientID, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldTemplateID, v))
}

// AssigneeID applies equality check predicate on the "assignee_id" field. It's identical to AssigneeIDEQ.
func AssigneeID(v uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldAssigneeID, v))
}

// DaysOffsetOverride applies equality check predicate on the "days_offset_override" field. It's identical to DaysOffsetOverrideEQ.
func DaysOffsetOverride(v int) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldDaysOffsetOverride, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNotIn(FieldClientID, vs...))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNotIn(FieldTemplateID, vs...))
}

// AssigneeIDEQ applies the EQ predicate on the "assignee_id" field.
func AssigneeIDEQ(v uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldAssigneeID, v))
}

// AssigneeIDNEQ applies the NEQ predicate on the "assignee_id" field.
func AssigneeIDNEQ(v uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNEQ(FieldAssigneeID, v))
}

// AssigneeIDIn applies the In predicate on the "assignee_id" field.
func AssigneeIDIn(vs ...uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldIn(FieldAssigneeID, vs...))
}

// AssigneeIDNotIn applies the NotIn predicate on the "assignee_id" field.
func AssigneeIDNotIn(vs ...uuid.UUID) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNotIn(FieldAssigneeID, vs...))
}

// AssigneeIDIsNil applies the IsNil predicate on the "assignee_id" field.
func AssigneeIDIsNil() predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldIsNull(FieldAssigneeID))
}

// AssigneeIDNotNil applies the NotNil predicate on the "assignee_id" field.
func AssigneeIDNotNil() predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNotNull(FieldAssigneeID))
}

// DaysOffsetOverrideEQ applies the EQ predicate on the "days_offset_override" field.
func DaysOffsetOverrideEQ(v int) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldDaysOffsetOverride, v))
}

// DaysOffsetOverrideNEQ applies the NEQ predicate on the "days_offset_override" field.
func DaysOffsetOverrideNEQ(v int) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNEQ(FieldDaysOffsetOverride, v))
}

// DaysOffsetOverrideIn applies the In predicate on the "days_offset_override" field.
func DaysOffsetOverrideIn(vs ...int) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldIn(FieldDaysOffsetOverride, vs...))
}

// DaysOffsetOverrideNotIn applies the NotIn predicate on the "days_offset_override" field.
func DaysOffsetOverrideNotIn(vs ...int) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNotIn(FieldDaysOffsetOverride, vs...))
}

// DaysOffsetOverrideGT applies the GT predicate on the "days_offset_override" field.
func DaysOffsetOverrideGT(v int) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldGT(FieldDaysOffsetOverride, v))
}

// DaysOffsetOverrideGTE applies the GTE predicate on the "days_offset_override" field.
func DaysOffsetOverrideGTE(v int) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldGTE(FieldDaysOffsetOverride, v))
}

// DaysOffsetOverrideLT applies the LT predicate on the "days_offset_override" field.
func DaysOffsetOverrideLT(v int) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldLT(FieldDaysOffsetOverride, v))
}

// DaysOffsetOverrideLTE applies the LTE predicate on the "days_offset_override" field.
func DaysOffsetOverrideLTE(v int) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldLTE(FieldDaysOffsetOverride, v))
}

// DaysOffsetOverrideIsNil applies the IsNil predicate on the "days_offset_override" field.
func DaysOffsetOverrideIsNil() predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldIsNull(FieldDaysOffsetOverride))
}

// DaysOffsetOverrideNotNil applies the NotNil predicate on the "days_offset_override" field.
func DaysOffsetOverrideNotNil() predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNotNull(FieldDaysOffsetOverride))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.ClientAccount) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTemplate applies the HasEdge predicate on the "template" edge.
func HasTemplate() predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TemplateTable, TemplateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTemplateWith applies the HasEdge predicate on the "template" edge with a given conditions (other predicates).
func HasTemplateWith(preds ...predicate.TaskTemplate) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(func(s *sql.Selector) {
		step := newTemplateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignee applies the HasEdge predicate on the "assignee" edge.
func HasAssignee() predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssigneeTable, AssigneeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssigneeWith applies the HasEdge predicate on the "assignee" edge with a given conditions (other predicates).
func HasAssigneeWith(preds ...predicate.Profile) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(func(s *sql.Selector) {
		step := newAssigneeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClientTaskAssignment) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClientTaskAssignment) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClientTaskAssignment) predicate.ClientTaskAssignment {
	return predicate.ClientTaskAssignment(sql.NotPredicates(p))
}
