// Code generated by ent, DO NOT EDIT.

package pageoption

import (
	"entgo.io/ent/dialect/sql"
	"github.com/naghz/naghz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PageOption {
	return predicate.PageOption(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PageOption {
	return predicate.PageOption(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PageOption {
	return predicate.PageOption(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PageOption {
	return predicate.PageOption(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PageOption {
	return predicate.PageOption(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PageOption {
	return predicate.PageOption(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PageOption {
	return predicate.PageOption(sql.FieldLTE(FieldID, id))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldPageID, v))
}

// OptionID applies equality check predicate on the "option_id" field. It's identical to OptionIDEQ.
func OptionID(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldOptionID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldText, v))
}

// OptionOrder applies equality check predicate on the "option_order" field. It's identical to OptionOrderEQ.
func OptionOrder(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldOptionOrder, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldCorrect, v))
}

// Icon applies equality check predicate on the "icon" field. It's identical to IconEQ.
func Icon(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldIcon, v))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...string) predicate.PageOption {
	return predicate.PageOption(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...string) predicate.PageOption {
	return predicate.PageOption(sql.FieldNotIn(FieldPageID, vs...))
}

// PageIDGT applies the GT predicate on the "page_id" field.
func PageIDGT(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldGT(FieldPageID, v))
}

// PageIDGTE applies the GTE predicate on the "page_id" field.
func PageIDGTE(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldGTE(FieldPageID, v))
}

// PageIDLT applies the LT predicate on the "page_id" field.
func PageIDLT(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldLT(FieldPageID, v))
}

// PageIDLTE applies the LTE predicate on the "page_id" field.
func PageIDLTE(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldLTE(FieldPageID, v))
}

// PageIDContains applies the Contains predicate on the "page_id" field.
func PageIDContains(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldContains(FieldPageID, v))
}

// PageIDHasPrefix applies the HasPrefix predicate on the "page_id" field.
func PageIDHasPrefix(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldHasPrefix(FieldPageID, v))
}

// PageIDHasSuffix applies the HasSuffix predicate on the "page_id" field.
func PageIDHasSuffix(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldHasSuffix(FieldPageID, v))
}

// PageIDEqualFold applies the EqualFold predicate on the "page_id" field.
func PageIDEqualFold(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldEqualFold(FieldPageID, v))
}

// PageIDContainsFold applies the ContainsFold predicate on the "page_id" field.
func PageIDContainsFold(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldContainsFold(FieldPageID, v))
}

// OptionIDEQ applies the EQ predicate on the "option_id" field.
func OptionIDEQ(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldOptionID, v))
}

// OptionIDNEQ applies the NEQ predicate on the "option_id" field.
func OptionIDNEQ(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldNEQ(FieldOptionID, v))
}

// OptionIDIn applies the In predicate on the "option_id" field.
func OptionIDIn(vs ...int) predicate.PageOption {
	return predicate.PageOption(sql.FieldIn(FieldOptionID, vs...))
}

// OptionIDNotIn applies the NotIn predicate on the "option_id" field.
func OptionIDNotIn(vs ...int) predicate.PageOption {
	return predicate.PageOption(sql.FieldNotIn(FieldOptionID, vs...))
}

// OptionIDGT applies the GT predicate on the "option_id" field.
func OptionIDGT(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldGT(FieldOptionID, v))
}

// OptionIDGTE applies the GTE predicate on the "option_id" field.
func OptionIDGTE(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldGTE(FieldOptionID, v))
}

// OptionIDLT applies the LT predicate on the "option_id" field.
func OptionIDLT(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldLT(FieldOptionID, v))
}

// OptionIDLTE applies the LTE predicate on the "option_id" field.
func OptionIDLTE(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldLTE(FieldOptionID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.PageOption {
	return predicate.PageOption(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.PageOption {
	return predicate.PageOption(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldContainsFold(FieldText, v))
}

// OptionOrderEQ applies the EQ predicate on the "option_order" field.
func OptionOrderEQ(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldOptionOrder, v))
}

// OptionOrderNEQ applies the NEQ predicate on the "option_order" field.
func OptionOrderNEQ(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldNEQ(FieldOptionOrder, v))
}

// OptionOrderIn applies the In predicate on the "option_order" field.
func OptionOrderIn(vs ...int) predicate.PageOption {
	return predicate.PageOption(sql.FieldIn(FieldOptionOrder, vs...))
}

// OptionOrderNotIn applies the NotIn predicate on the "option_order" field.
func OptionOrderNotIn(vs ...int) predicate.PageOption {
	return predicate.PageOption(sql.FieldNotIn(FieldOptionOrder, vs...))
}

// OptionOrderGT applies the GT predicate on the "option_order" field.
func OptionOrderGT(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldGT(FieldOptionOrder, v))
}

// OptionOrderGTE applies the GTE predicate on the "option_order" field.
func OptionOrderGTE(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldGTE(FieldOptionOrder, v))
}

// OptionOrderLT applies the LT predicate on the "option_order" field.
func OptionOrderLT(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldLT(FieldOptionOrder, v))
}

// OptionOrderLTE applies the LTE predicate on the "option_order" field.
func OptionOrderLTE(v int) predicate.PageOption {
	return predicate.PageOption(sql.FieldLTE(FieldOptionOrder, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.PageOption {
	return predicate.PageOption(sql.FieldNEQ(FieldCorrect, v))
}

// IconEQ applies the EQ predicate on the "icon" field.
func IconEQ(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldEQ(FieldIcon, v))
}

// IconNEQ applies the NEQ predicate on the "icon" field.
func IconNEQ(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldNEQ(FieldIcon, v))
}

// IconIn applies the In predicate on the "icon" field.
func IconIn(vs ...string) predicate.PageOption {
	return predicate.PageOption(sql.FieldIn(FieldIcon, vs...))
}

// IconNotIn applies the NotIn predicate on the "icon" field.
func IconNotIn(vs ...string) predicate.PageOption {
	return predicate.PageOption(sql.FieldNotIn(FieldIcon, vs...))
}

// IconGT applies the GT predicate on the "icon" field.
func IconGT(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldGT(FieldIcon, v))
}

// IconGTE applies the GTE predicate on the "icon" field.
func IconGTE(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldGTE(FieldIcon, v))
}

// IconLT applies the LT predicate on the "icon" field.
func IconLT(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldLT(FieldIcon, v))
}

// IconLTE applies the LTE predicate on the "icon" field.
func IconLTE(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldLTE(FieldIcon, v))
}

// IconContains applies the Contains predicate on the "icon" field.
func IconContains(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldContains(FieldIcon, v))
}

// IconHasPrefix applies the HasPrefix predicate on the "icon" field.
func IconHasPrefix(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldHasPrefix(FieldIcon, v))
}

// IconHasSuffix applies the HasSuffix predicate on the "icon" field.
func IconHasSuffix(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldHasSuffix(FieldIcon, v))
}

// IconEqualFold applies the EqualFold predicate on the "icon" field.
func IconEqualFold(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldEqualFold(FieldIcon, v))
}

// IconContainsFold applies the ContainsFold predicate on the "icon" field.
func IconContainsFold(v string) predicate.PageOption {
	return predicate.PageOption(sql.FieldContainsFold(FieldIcon, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PageOption) predicate.PageOption {
	return predicate.PageOption(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PageOption) predicate.PageOption {
	return predicate.PageOption(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PageOption) predicate.PageOption {
	return predicate.PageOption(sql.NotPredicates(p))
}
