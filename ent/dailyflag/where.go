// Code generated by ent, DO NOT EDIT.

package dailyflag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/naghz/naghz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldUserID, v))
}

// LastShown applies equality check predicate on the "last_shown" field. It's identical to LastShownEQ.
func LastShown(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldLastShown, v))
}

// DeclinedUntil applies equality check predicate on the "declined_until" field. It's identical to DeclinedUntilEQ.
func DeclinedUntil(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldDeclinedUntil, v))
}

// CompletedDay applies equality check predicate on the "completed_day" field. It's identical to CompletedDayEQ.
func CompletedDay(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldCompletedDay, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldContainsFold(FieldUserID, v))
}

// LastShownEQ applies the EQ predicate on the "last_shown" field.
func LastShownEQ(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldLastShown, v))
}

// LastShownNEQ applies the NEQ predicate on the "last_shown" field.
func LastShownNEQ(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNEQ(FieldLastShown, v))
}

// LastShownIn applies the In predicate on the "last_shown" field.
func LastShownIn(vs ...string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldIn(FieldLastShown, vs...))
}

// LastShownNotIn applies the NotIn predicate on the "last_shown" field.
func LastShownNotIn(vs ...string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNotIn(FieldLastShown, vs...))
}

// LastShownGT applies the GT predicate on the "last_shown" field.
func LastShownGT(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGT(FieldLastShown, v))
}

// LastShownGTE applies the GTE predicate on the "last_shown" field.
func LastShownGTE(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGTE(FieldLastShown, v))
}

// LastShownLT applies the LT predicate on the "last_shown" field.
func LastShownLT(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLT(FieldLastShown, v))
}

// LastShownLTE applies the LTE predicate on the "last_shown" field.
func LastShownLTE(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLTE(FieldLastShown, v))
}

// LastShownContains applies the Contains predicate on the "last_shown" field.
func LastShownContains(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldContains(FieldLastShown, v))
}

// LastShownHasPrefix applies the HasPrefix predicate on the "last_shown" field.
func LastShownHasPrefix(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldHasPrefix(FieldLastShown, v))
}

// LastShownHasSuffix applies the HasSuffix predicate on the "last_shown" field.
func LastShownHasSuffix(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldHasSuffix(FieldLastShown, v))
}

// LastShownEqualFold applies the EqualFold predicate on the "last_shown" field.
func LastShownEqualFold(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEqualFold(FieldLastShown, v))
}

// LastShownContainsFold applies the ContainsFold predicate on the "last_shown" field.
func LastShownContainsFold(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldContainsFold(FieldLastShown, v))
}

// DeclinedUntilEQ applies the EQ predicate on the "declined_until" field.
func DeclinedUntilEQ(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldDeclinedUntil, v))
}

// DeclinedUntilNEQ applies the NEQ predicate on the "declined_until" field.
func DeclinedUntilNEQ(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNEQ(FieldDeclinedUntil, v))
}

// DeclinedUntilIn applies the In predicate on the "declined_until" field.
func DeclinedUntilIn(vs ...time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldIn(FieldDeclinedUntil, vs...))
}

// DeclinedUntilNotIn applies the NotIn predicate on the "declined_until" field.
func DeclinedUntilNotIn(vs ...time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNotIn(FieldDeclinedUntil, vs...))
}

// DeclinedUntilGT applies the GT predicate on the "declined_until" field.
func DeclinedUntilGT(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGT(FieldDeclinedUntil, v))
}

// DeclinedUntilGTE applies the GTE predicate on the "declined_until" field.
func DeclinedUntilGTE(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGTE(FieldDeclinedUntil, v))
}

// DeclinedUntilLT applies the LT predicate on the "declined_until" field.
func DeclinedUntilLT(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLT(FieldDeclinedUntil, v))
}

// DeclinedUntilLTE applies the LTE predicate on the "declined_until" field.
func DeclinedUntilLTE(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLTE(FieldDeclinedUntil, v))
}

// DeclinedUntilIsNil applies the IsNil predicate on the "declined_until" field.
func DeclinedUntilIsNil() predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldIsNull(FieldDeclinedUntil))
}

// DeclinedUntilNotNil applies the NotNil predicate on the "declined_until" field.
func DeclinedUntilNotNil() predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNotNull(FieldDeclinedUntil))
}

// CompletedDayEQ applies the EQ predicate on the "completed_day" field.
func CompletedDayEQ(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldCompletedDay, v))
}

// CompletedDayNEQ applies the NEQ predicate on the "completed_day" field.
func CompletedDayNEQ(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNEQ(FieldCompletedDay, v))
}

// CompletedDayIn applies the In predicate on the "completed_day" field.
func CompletedDayIn(vs ...string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldIn(FieldCompletedDay, vs...))
}

// CompletedDayNotIn applies the NotIn predicate on the "completed_day" field.
func CompletedDayNotIn(vs ...string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNotIn(FieldCompletedDay, vs...))
}

// CompletedDayGT applies the GT predicate on the "completed_day" field.
func CompletedDayGT(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGT(FieldCompletedDay, v))
}

// CompletedDayGTE applies the GTE predicate on the "completed_day" field.
func CompletedDayGTE(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGTE(FieldCompletedDay, v))
}

// CompletedDayLT applies the LT predicate on the "completed_day" field.
func CompletedDayLT(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLT(FieldCompletedDay, v))
}

// CompletedDayLTE applies the LTE predicate on the "completed_day" field.
func CompletedDayLTE(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLTE(FieldCompletedDay, v))
}

// CompletedDayContains applies the Contains predicate on the "completed_day" field.
func CompletedDayContains(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldContains(FieldCompletedDay, v))
}

// CompletedDayHasPrefix applies the HasPrefix predicate on the "completed_day" field.
func CompletedDayHasPrefix(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldHasPrefix(FieldCompletedDay, v))
}

// CompletedDayHasSuffix applies the HasSuffix predicate on the "completed_day" field.
func CompletedDayHasSuffix(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldHasSuffix(FieldCompletedDay, v))
}

// CompletedDayEqualFold applies the EqualFold predicate on the "completed_day" field.
func CompletedDayEqualFold(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEqualFold(FieldCompletedDay, v))
}

// CompletedDayContainsFold applies the ContainsFold predicate on the "completed_day" field.
func CompletedDayContainsFold(v string) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldContainsFold(FieldCompletedDay, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DailyFlag {
	return predicate.DailyFlag(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyFlag) predicate.DailyFlag {
	return predicate.DailyFlag(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyFlag) predicate.DailyFlag {
	return predicate.DailyFlag(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyFlag) predicate.DailyFlag {
	return predicate.DailyFlag(sql.NotPredicates(p))
}
