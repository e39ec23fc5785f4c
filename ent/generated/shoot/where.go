// Code generated by ent, DO NOT EDIT.

package shoot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldLTE(FieldID, id))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldClientID, v))
}

// CycleID applies equality check predicate on the "cycle_id" field. It's identical to CycleIDEQ.
func CycleID(v uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldCycleID, v))
}

// ShootDate applies equality check predicate on the "shoot_date" field. It's identical to ShootDateEQ.
func ShootDate(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldShootDate, v))
}

// ShootTime applies equality check predicate on the "shoot_time" field. It's identical to ShootTimeEQ.
func ShootTime(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldShootTime, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldLocation, v))
}

// CalendarLink applies equality check predicate on the "calendar_link" field. It's identical to CalendarLinkEQ.
func CalendarLink(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldCalendarLink, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldClientID, vs...))
}

// CycleIDEQ applies the EQ predicate on the "cycle_id" field.
func CycleIDEQ(v uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldCycleID, v))
}

// CycleIDNEQ applies the NEQ predicate on the "cycle_id" field.
func CycleIDNEQ(v uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldCycleID, v))
}

// CycleIDIn applies the In predicate on the "cycle_id" field.
func CycleIDIn(vs ...uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldCycleID, vs...))
}

// CycleIDNotIn applies the NotIn predicate on the "cycle_id" field.
func CycleIDNotIn(vs ...uuid.UUID) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldCycleID, vs...))
}

// CycleIDIsNil applies the IsNil predicate on the "cycle_id" field.
func CycleIDIsNil() predicate.Shoot {
	return predicate.Shoot(sql.FieldIsNull(FieldCycleID))
}

// CycleIDNotNil applies the NotNil predicate on the "cycle_id" field.
func CycleIDNotNil() predicate.Shoot {
	return predicate.Shoot(sql.FieldNotNull(FieldCycleID))
}

// ShootDateEQ applies the EQ predicate on the "shoot_date" field.
func ShootDateEQ(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldShootDate, v))
}

// ShootDateNEQ applies the NEQ predicate on the "shoot_date" field.
func ShootDateNEQ(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldShootDate, v))
}

// ShootDateIn applies the In predicate on the "shoot_date" field.
func ShootDateIn(vs ...time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldShootDate, vs...))
}

// ShootDateNotIn applies the NotIn predicate on the "shoot_date" field.
func ShootDateNotIn(vs ...time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldShootDate, vs...))
}

// ShootDateGT applies the GT predicate on the "shoot_date" field.
func ShootDateGT(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldGT(FieldShootDate, v))
}

// ShootDateGTE applies the GTE predicate on the "shoot_date" field.
func ShootDateGTE(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldGTE(FieldShootDate, v))
}

// ShootDateLT applies the LT predicate on the "shoot_date" field.
func ShootDateLT(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldLT(FieldShootDate, v))
}

// ShootDateLTE applies the LTE predicate on the "shoot_date" field.
func ShootDateLTE(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldLTE(FieldShootDate, v))
}

// ShootTimeEQ applies the EQ predicate on the "shoot_time" field.
func ShootTimeEQ(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldShootTime, v))
}

// ShootTimeNEQ applies the NEQ predicate on the "shoot_time" field.
func ShootTimeNEQ(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldShootTime, v))
}

// ShootTimeIn applies the In predicate on the "shoot_time" field.
func ShootTimeIn(vs ...string) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldShootTime, vs...))
}

// ShootTimeNotIn applies the NotIn predicate on the "shoot_time" field.
func ShootTimeNotIn(vs ...string) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldShootTime, vs...))
}

// ShootTimeGT applies the GT predicate on the "shoot_time" field.
func ShootTimeGT(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldGT(FieldShootTime, v))
}

// ShootTimeGTE applies the GTE predicate on the "shoot_time" field.
func ShootTimeGTE(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldGTE(FieldShootTime, v))
}

// ShootTimeLT applies the LT predicate on the "shoot_time" field.
func ShootTimeLT(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldLT(FieldShootTime, v))
}

// ShootTimeLTE applies the LTE predicate on the "shoot_time" field.
func ShootTimeLTE(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldLTE(FieldShootTime, v))
}

// ShootTimeContains applies the Contains predicate on the "shoot_time" field.
func ShootTimeContains(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldContains(FieldShootTime, v))
}

// ShootTimeHasPrefix applies the HasPrefix predicate on the "shoot_time" field.
func ShootTimeHasPrefix(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldHasPrefix(FieldShootTime, v))
}

// ShootTimeHasSuffix applies the HasSuffix predicate on the "shoot_time" field.
func ShootTimeHasSuffix(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldHasSuffix(FieldShootTime, v))
}

// ShootTimeIsNil applies the IsNil predicate on the "shoot_time" field.
func ShootTimeIsNil() predicate.Shoot {
	return predicate.Shoot(sql.FieldIsNull(FieldShootTime))
}

// ShootTimeNotNil applies the NotNil predicate on the "shoot_time" field.
func ShootTimeNotNil() predicate.Shoot {
	return predicate.Shoot(sql.FieldNotNull(FieldShootTime))
}

// ShootTimeEqualFold applies the EqualFold predicate on the "shoot_time" field.
func ShootTimeEqualFold(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldEqualFold(FieldShootTime, v))
}

// ShootTimeContainsFold applies the ContainsFold predicate on the "shoot_time" field.
func ShootTimeContainsFold(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldContainsFold(FieldShootTime, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Shoot {
	return predicate.Shoot(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Shoot {
	return predicate.Shoot(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldContainsFold(FieldLocation, v))
}

// CalendarLinkEQ applies the EQ predicate on the "calendar_link" field.
func CalendarLinkEQ(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldCalendarLink, v))
}

// CalendarLinkNEQ applies the NEQ predicate on the "calendar_link" field.
func CalendarLinkNEQ(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldCalendarLink, v))
}

// CalendarLinkIn applies the In predicate on the "calendar_link" field.
func CalendarLinkIn(vs ...string) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldCalendarLink, vs...))
}

// CalendarLinkNotIn applies the NotIn predicate on the "calendar_link" field.
func CalendarLinkNotIn(vs ...string) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldCalendarLink, vs...))
}

// CalendarLinkGT applies the GT predicate on the "calendar_link" field.
func CalendarLinkGT(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldGT(FieldCalendarLink, v))
}

// CalendarLinkGTE applies the GTE predicate on the "calendar_link" field.
func CalendarLinkGTE(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldGTE(FieldCalendarLink, v))
}

// CalendarLinkLT applies the LT predicate on the "calendar_link" field.
func CalendarLinkLT(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldLT(FieldCalendarLink, v))
}

// CalendarLinkLTE applies the LTE predicate on the "calendar_link" field.
func CalendarLinkLTE(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldLTE(FieldCalendarLink, v))
}

// CalendarLinkContains applies the Contains predicate on the "calendar_link" field.
func CalendarLinkContains(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldContains(FieldCalendarLink, v))
}

// CalendarLinkHasPrefix applies the HasPrefix predicate on the "calendar_link" field.
func CalendarLinkHasPrefix(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldHasPrefix(FieldCalendarLink, v))
}

// CalendarLinkHasSuffix applies the HasSuffix predicate on the "calendar_link" field.
func CalendarLinkHasSuffix(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldHasSuffix(FieldCalendarLink, v))
}

// CalendarLinkIsNil applies the IsNil predicate on the "calendar_link" field.
func CalendarLinkIsNil() predicate.Shoot {
	return predicate.Shoot(sql.FieldIsNull(FieldCalendarLink))
}

// CalendarLinkNotNil applies the NotNil predicate on the "calendar_link" field.
func CalendarLinkNotNil() predicate.Shoot {
	return predicate.Shoot(sql.FieldNotNull(FieldCalendarLink))
}

// CalendarLinkEqualFold applies the EqualFold predicate on the "calendar_link" field.
func CalendarLinkEqualFold(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldEqualFold(FieldCalendarLink, v))
}

// CalendarLinkContainsFold applies the ContainsFold predicate on the "calendar_link" field.
func CalendarLinkContainsFold(v string) predicate.Shoot {
	return predicate.Shoot(sql.FieldContainsFold(FieldCalendarLink, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldStatus, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldType, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Shoot {
	return predicate.Shoot(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.Shoot {
	return predicate.Shoot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.ClientAccount) predicate.Shoot {
	return predicate.Shoot(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCycle applies the HasEdge predicate on the "cycle" edge.
func HasCycle() predicate.Shoot {
	return predicate.Shoot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CycleTable, CycleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCycleWith applies the HasEdge predicate on the "cycle" edge with a given conditions (other predicates).
func HasCycleWith(preds ...predicate.Cycle) predicate.Shoot {
	return predicate.Shoot(func(s *sql.Selector) {
		step := newCycleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Shoot) predicate.Shoot {
	return predicate.Shoot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Shoot) predicate.Shoot {
	return predicate.Shoot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Shoot) predicate.Shoot {
	return predicate.Shoot(sql.NotPredicates(p))
}
