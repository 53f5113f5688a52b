// Code generated by ent, DO NOT EDIT.

package heartledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/naghz/naghz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldEQ(FieldUserID, v))
}

// Hearts applies equality check predicate on the "hearts" field. It's identical to HeartsEQ.
func Hearts(v int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldEQ(FieldHearts, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldContainsFold(FieldUserID, v))
}

// HeartsEQ applies the EQ predicate on the "hearts" field.
func HeartsEQ(v int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldEQ(FieldHearts, v))
}

// HeartsNEQ applies the NEQ predicate on the "hearts" field.
func HeartsNEQ(v int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldNEQ(FieldHearts, v))
}

// HeartsIn applies the In predicate on the "hearts" field.
func HeartsIn(vs ...int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldIn(FieldHearts, vs...))
}

// HeartsNotIn applies the NotIn predicate on the "hearts" field.
func HeartsNotIn(vs ...int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldNotIn(FieldHearts, vs...))
}

// HeartsGT applies the GT predicate on the "hearts" field.
func HeartsGT(v int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldGT(FieldHearts, v))
}

// HeartsGTE applies the GTE predicate on the "hearts" field.
func HeartsGTE(v int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldGTE(FieldHearts, v))
}

// HeartsLT applies the LT predicate on the "hearts" field.
func HeartsLT(v int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldLT(FieldHearts, v))
}

// HeartsLTE applies the LTE predicate on the "hearts" field.
func HeartsLTE(v int) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldLTE(FieldHearts, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HeartLedger {
	return predicate.HeartLedger(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HeartLedger) predicate.HeartLedger {
	return predicate.HeartLedger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HeartLedger) predicate.HeartLedger {
	return predicate.HeartLedger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HeartLedger) predicate.HeartLedger {
	return predicate.HeartLedger(sql.NotPredicates(p))
}
