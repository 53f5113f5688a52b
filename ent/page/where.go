// Code generated by ent, DO NOT EDIT.

package page

import (
	"entgo.io/ent/dialect/sql"
	"github.com/naghz/naghz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldID, id))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldPageID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldCourseID, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldNumber, v))
}

// Length applies equality check predicate on the "length" field. It's identical to LengthEQ.
func Length(v int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLength, v))
}

// PageType applies equality check predicate on the "page_type" field. It's identical to PageTypeEQ.
func PageType(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldPageType, v))
}

// TestType applies equality check predicate on the "test_type" field. It's identical to TestTypeEQ.
func TestType(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldTestType, v))
}

// Grid applies equality check predicate on the "grid" field. It's identical to GridEQ.
func Grid(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldGrid, v))
}

// Header applies equality check predicate on the "header" field. It's identical to HeaderEQ.
func Header(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldHeader, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldBody, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldQuestion, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldSubject, v))
}

// Image applies equality check predicate on the "image" field. It's identical to ImageEQ.
func Image(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldImage, v))
}

// Why applies equality check predicate on the "why" field. It's identical to WhyEQ.
func Why(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldWhy, v))
}

// AnswerText applies equality check predicate on the "answer_text" field. It's identical to AnswerTextEQ.
func AnswerText(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldAnswerText, v))
}

// AiGraded applies equality check predicate on the "ai_graded" field. It's identical to AiGradedEQ.
func AiGraded(v bool) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldAiGraded, v))
}

// GiveFeedback applies equality check predicate on the "give_feedback" field. It's identical to GiveFeedbackEQ.
func GiveFeedback(v bool) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldGiveFeedback, v))
}

// GivePoint applies equality check predicate on the "give_point" field. It's identical to GivePointEQ.
func GivePoint(v bool) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldGivePoint, v))
}

// GivePointByAi applies equality check predicate on the "give_point_by_ai" field. It's identical to GivePointByAiEQ.
func GivePointByAi(v bool) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldGivePointByAi, v))
}

// ScoreThreshold applies equality check predicate on the "score_threshold" field. It's identical to ScoreThresholdEQ.
func ScoreThreshold(v int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldScoreThreshold, v))
}

// LowScorePageID applies equality check predicate on the "low_score_page_id" field. It's identical to LowScorePageIDEQ.
func LowScorePageID(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLowScorePageID, v))
}

// HighScorePageID applies equality check predicate on the "high_score_page_id" field. It's identical to HighScorePageIDEQ.
func HighScorePageID(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldHighScorePageID, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldSystemPrompt, v))
}

// Tip applies equality check predicate on the "tip" field. It's identical to TipEQ.
func Tip(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldTip, v))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldPageID, vs...))
}

// PageIDGT applies the GT predicate on the "page_id" field.
func PageIDGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldPageID, v))
}

// PageIDGTE applies the GTE predicate on the "page_id" field.
func PageIDGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldPageID, v))
}

// PageIDLT applies the LT predicate on the "page_id" field.
func PageIDLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldPageID, v))
}

// PageIDLTE applies the LTE predicate on the "page_id" field.
func PageIDLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldPageID, v))
}

// PageIDContains applies the Contains predicate on the "page_id" field.
func PageIDContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldPageID, v))
}

// PageIDHasPrefix applies the HasPrefix predicate on the "page_id" field.
func PageIDHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldPageID, v))
}

// PageIDHasSuffix applies the HasSuffix predicate on the "page_id" field.
func PageIDHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldPageID, v))
}

// PageIDEqualFold applies the EqualFold predicate on the "page_id" field.
func PageIDEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldPageID, v))
}

// PageIDContainsFold applies the ContainsFold predicate on the "page_id" field.
func PageIDContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldPageID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldCourseID, v))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v int) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...int) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...int) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v int) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v int) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v int) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v int) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldNumber, v))
}

// LengthEQ applies the EQ predicate on the "length" field.
func LengthEQ(v int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLength, v))
}

// LengthNEQ applies the NEQ predicate on the "length" field.
func LengthNEQ(v int) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLength, v))
}

// LengthIn applies the In predicate on the "length" field.
func LengthIn(vs ...int) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLength, vs...))
}

// LengthNotIn applies the NotIn predicate on the "length" field.
func LengthNotIn(vs ...int) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLength, vs...))
}

// LengthGT applies the GT predicate on the "length" field.
func LengthGT(v int) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLength, v))
}

// LengthGTE applies the GTE predicate on the "length" field.
func LengthGTE(v int) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLength, v))
}

// LengthLT applies the LT predicate on the "length" field.
func LengthLT(v int) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLength, v))
}

// LengthLTE applies the LTE predicate on the "length" field.
func LengthLTE(v int) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLength, v))
}

// PageTypeEQ applies the EQ predicate on the "page_type" field.
func PageTypeEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldPageType, v))
}

// PageTypeNEQ applies the NEQ predicate on the "page_type" field.
func PageTypeNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldPageType, v))
}

// PageTypeIn applies the In predicate on the "page_type" field.
func PageTypeIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldPageType, vs...))
}

// PageTypeNotIn applies the NotIn predicate on the "page_type" field.
func PageTypeNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldPageType, vs...))
}

// PageTypeGT applies the GT predicate on the "page_type" field.
func PageTypeGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldPageType, v))
}

// PageTypeGTE applies the GTE predicate on the "page_type" field.
func PageTypeGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldPageType, v))
}

// PageTypeLT applies the LT predicate on the "page_type" field.
func PageTypeLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldPageType, v))
}

// PageTypeLTE applies the LTE predicate on the "page_type" field.
func PageTypeLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldPageType, v))
}

// PageTypeContains applies the Contains predicate on the "page_type" field.
func PageTypeContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldPageType, v))
}

// PageTypeHasPrefix applies the HasPrefix predicate on the "page_type" field.
func PageTypeHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldPageType, v))
}

// PageTypeHasSuffix applies the HasSuffix predicate on the "page_type" field.
func PageTypeHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldPageType, v))
}

// PageTypeEqualFold applies the EqualFold predicate on the "page_type" field.
func PageTypeEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldPageType, v))
}

// PageTypeContainsFold applies the ContainsFold predicate on the "page_type" field.
func PageTypeContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldPageType, v))
}

// TestTypeEQ applies the EQ predicate on the "test_type" field.
func TestTypeEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldTestType, v))
}

// TestTypeNEQ applies the NEQ predicate on the "test_type" field.
func TestTypeNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldTestType, v))
}

// TestTypeIn applies the In predicate on the "test_type" field.
func TestTypeIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldTestType, vs...))
}

// TestTypeNotIn applies the NotIn predicate on the "test_type" field.
func TestTypeNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldTestType, vs...))
}

// TestTypeGT applies the GT predicate on the "test_type" field.
func TestTypeGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldTestType, v))
}

// TestTypeGTE applies the GTE predicate on the "test_type" field.
func TestTypeGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldTestType, v))
}

// TestTypeLT applies the LT predicate on the "test_type" field.
func TestTypeLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldTestType, v))
}

// TestTypeLTE applies the LTE predicate on the "test_type" field.
func TestTypeLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldTestType, v))
}

// TestTypeContains applies the Contains predicate on the "test_type" field.
func TestTypeContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldTestType, v))
}

// TestTypeHasPrefix applies the HasPrefix predicate on the "test_type" field.
func TestTypeHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldTestType, v))
}

// TestTypeHasSuffix applies the HasSuffix predicate on the "test_type" field.
func TestTypeHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldTestType, v))
}

// TestTypeEqualFold applies the EqualFold predicate on the "test_type" field.
func TestTypeEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldTestType, v))
}

// TestTypeContainsFold applies the ContainsFold predicate on the "test_type" field.
func TestTypeContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldTestType, v))
}

// GridEQ applies the EQ predicate on the "grid" field.
func GridEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldGrid, v))
}

// GridNEQ applies the NEQ predicate on the "grid" field.
func GridNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldGrid, v))
}

// GridIn applies the In predicate on the "grid" field.
func GridIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldGrid, vs...))
}

// GridNotIn applies the NotIn predicate on the "grid" field.
func GridNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldGrid, vs...))
}

// GridGT applies the GT predicate on the "grid" field.
func GridGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldGrid, v))
}

// GridGTE applies the GTE predicate on the "grid" field.
func GridGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldGrid, v))
}

// GridLT applies the LT predicate on the "grid" field.
func GridLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldGrid, v))
}

// GridLTE applies the LTE predicate on the "grid" field.
func GridLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldGrid, v))
}

// GridContains applies the Contains predicate on the "grid" field.
func GridContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldGrid, v))
}

// GridHasPrefix applies the HasPrefix predicate on the "grid" field.
func GridHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldGrid, v))
}

// GridHasSuffix applies the HasSuffix predicate on the "grid" field.
func GridHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldGrid, v))
}

// GridEqualFold applies the EqualFold predicate on the "grid" field.
func GridEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldGrid, v))
}

// GridContainsFold applies the ContainsFold predicate on the "grid" field.
func GridContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldGrid, v))
}

// HeaderEQ applies the EQ predicate on the "header" field.
func HeaderEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldHeader, v))
}

// HeaderNEQ applies the NEQ predicate on the "header" field.
func HeaderNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldHeader, v))
}

// HeaderIn applies the In predicate on the "header" field.
func HeaderIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldHeader, vs...))
}

// HeaderNotIn applies the NotIn predicate on the "header" field.
func HeaderNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldHeader, vs...))
}

// HeaderGT applies the GT predicate on the "header" field.
func HeaderGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldHeader, v))
}

// HeaderGTE applies the GTE predicate on the "header" field.
func HeaderGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldHeader, v))
}

// HeaderLT applies the LT predicate on the "header" field.
func HeaderLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldHeader, v))
}

// HeaderLTE applies the LTE predicate on the "header" field.
func HeaderLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldHeader, v))
}

// HeaderContains applies the Contains predicate on the "header" field.
func HeaderContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldHeader, v))
}

// HeaderHasPrefix applies the HasPrefix predicate on the "header" field.
func HeaderHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldHeader, v))
}

// HeaderHasSuffix applies the HasSuffix predicate on the "header" field.
func HeaderHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldHeader, v))
}

// HeaderIsNil applies the IsNil predicate on the "header" field.
func HeaderIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldHeader))
}

// HeaderNotNil applies the NotNil predicate on the "header" field.
func HeaderNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldHeader))
}

// HeaderEqualFold applies the EqualFold predicate on the "header" field.
func HeaderEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldHeader, v))
}

// HeaderContainsFold applies the ContainsFold predicate on the "header" field.
func HeaderContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldHeader, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldBody, v))
}

// BodyIsNil applies the IsNil predicate on the "body" field.
func BodyIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldBody))
}

// BodyNotNil applies the NotNil predicate on the "body" field.
func BodyNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldBody))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldBody, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionIsNil applies the IsNil predicate on the "question" field.
func QuestionIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldQuestion))
}

// QuestionNotNil applies the NotNil predicate on the "question" field.
func QuestionNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldQuestion))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldQuestion, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldSubject, v))
}

// ImageEQ applies the EQ predicate on the "image" field.
func ImageEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldImage, v))
}

// ImageNEQ applies the NEQ predicate on the "image" field.
func ImageNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldImage, v))
}

// ImageIn applies the In predicate on the "image" field.
func ImageIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldImage, vs...))
}

// ImageNotIn applies the NotIn predicate on the "image" field.
func ImageNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldImage, vs...))
}

// ImageGT applies the GT predicate on the "image" field.
func ImageGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldImage, v))
}

// ImageGTE applies the GTE predicate on the "image" field.
func ImageGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldImage, v))
}

// ImageLT applies the LT predicate on the "image" field.
func ImageLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldImage, v))
}

// ImageLTE applies the LTE predicate on the "image" field.
func ImageLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldImage, v))
}

// ImageContains applies the Contains predicate on the "image" field.
func ImageContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldImage, v))
}

// ImageHasPrefix applies the HasPrefix predicate on the "image" field.
func ImageHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldImage, v))
}

// ImageHasSuffix applies the HasSuffix predicate on the "image" field.
func ImageHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldImage, v))
}

// ImageIsNil applies the IsNil predicate on the "image" field.
func ImageIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldImage))
}

// ImageNotNil applies the NotNil predicate on the "image" field.
func ImageNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldImage))
}

// ImageEqualFold applies the EqualFold predicate on the "image" field.
func ImageEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldImage, v))
}

// ImageContainsFold applies the ContainsFold predicate on the "image" field.
func ImageContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldImage, v))
}

// WhyEQ applies the EQ predicate on the "why" field.
func WhyEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldWhy, v))
}

// WhyNEQ applies the NEQ predicate on the "why" field.
func WhyNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldWhy, v))
}

// WhyIn applies the In predicate on the "why" field.
func WhyIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldWhy, vs...))
}

// WhyNotIn applies the NotIn predicate on the "why" field.
func WhyNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldWhy, vs...))
}

// WhyGT applies the GT predicate on the "why" field.
func WhyGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldWhy, v))
}

// WhyGTE applies the GTE predicate on the "why" field.
func WhyGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldWhy, v))
}

// WhyLT applies the LT predicate on the "why" field.
func WhyLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldWhy, v))
}

// WhyLTE applies the LTE predicate on the "why" field.
func WhyLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldWhy, v))
}

// WhyContains applies the Contains predicate on the "why" field.
func WhyContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldWhy, v))
}

// WhyHasPrefix applies the HasPrefix predicate on the "why" field.
func WhyHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldWhy, v))
}

// WhyHasSuffix applies the HasSuffix predicate on the "why" field.
func WhyHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldWhy, v))
}

// WhyIsNil applies the IsNil predicate on the "why" field.
func WhyIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldWhy))
}

// WhyNotNil applies the NotNil predicate on the "why" field.
func WhyNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldWhy))
}

// WhyEqualFold applies the EqualFold predicate on the "why" field.
func WhyEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldWhy, v))
}

// WhyContainsFold applies the ContainsFold predicate on the "why" field.
func WhyContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldWhy, v))
}

// AnswerFlatIsNil applies the IsNil predicate on the "answer_flat" field.
func AnswerFlatIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldAnswerFlat))
}

// AnswerFlatNotNil applies the NotNil predicate on the "answer_flat" field.
func AnswerFlatNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldAnswerFlat))
}

// AnswerTextEQ applies the EQ predicate on the "answer_text" field.
func AnswerTextEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldAnswerText, v))
}

// AnswerTextNEQ applies the NEQ predicate on the "answer_text" field.
func AnswerTextNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldAnswerText, v))
}

// AnswerTextIn applies the In predicate on the "answer_text" field.
func AnswerTextIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldAnswerText, vs...))
}

// AnswerTextNotIn applies the NotIn predicate on the "answer_text" field.
func AnswerTextNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldAnswerText, vs...))
}

// AnswerTextGT applies the GT predicate on the "answer_text" field.
func AnswerTextGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldAnswerText, v))
}

// AnswerTextGTE applies the GTE predicate on the "answer_text" field.
func AnswerTextGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldAnswerText, v))
}

// AnswerTextLT applies the LT predicate on the "answer_text" field.
func AnswerTextLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldAnswerText, v))
}

// AnswerTextLTE applies the LTE predicate on the "answer_text" field.
func AnswerTextLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldAnswerText, v))
}

// AnswerTextContains applies the Contains predicate on the "answer_text" field.
func AnswerTextContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldAnswerText, v))
}

// AnswerTextHasPrefix applies the HasPrefix predicate on the "answer_text" field.
func AnswerTextHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldAnswerText, v))
}

// AnswerTextHasSuffix applies the HasSuffix predicate on the "answer_text" field.
func AnswerTextHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldAnswerText, v))
}

// AnswerTextIsNil applies the IsNil predicate on the "answer_text" field.
func AnswerTextIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldAnswerText))
}

// AnswerTextNotNil applies the NotNil predicate on the "answer_text" field.
func AnswerTextNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldAnswerText))
}

// AnswerTextEqualFold applies the EqualFold predicate on the "answer_text" field.
func AnswerTextEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldAnswerText, v))
}

// AnswerTextContainsFold applies the ContainsFold predicate on the "answer_text" field.
func AnswerTextContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldAnswerText, v))
}

// AiGradedEQ applies the EQ predicate on the "ai_graded" field.
func AiGradedEQ(v bool) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldAiGraded, v))
}

// AiGradedNEQ applies the NEQ predicate on the "ai_graded" field.
func AiGradedNEQ(v bool) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldAiGraded, v))
}

// GiveFeedbackEQ applies the EQ predicate on the "give_feedback" field.
func GiveFeedbackEQ(v bool) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldGiveFeedback, v))
}

// GiveFeedbackNEQ applies the NEQ predicate on the "give_feedback" field.
func GiveFeedbackNEQ(v bool) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldGiveFeedback, v))
}

// GivePointEQ applies the EQ predicate on the "give_point" field.
func GivePointEQ(v bool) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldGivePoint, v))
}

// GivePointNEQ applies the NEQ predicate on the "give_point" field.
func GivePointNEQ(v bool) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldGivePoint, v))
}

// GivePointByAiEQ applies the EQ predicate on the "give_point_by_ai" field.
func GivePointByAiEQ(v bool) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldGivePointByAi, v))
}

// GivePointByAiNEQ applies the NEQ predicate on the "give_point_by_ai" field.
func GivePointByAiNEQ(v bool) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldGivePointByAi, v))
}

// ScoreThresholdEQ applies the EQ predicate on the "score_threshold" field.
func ScoreThresholdEQ(v int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldScoreThreshold, v))
}

// ScoreThresholdNEQ applies the NEQ predicate on the "score_threshold" field.
func ScoreThresholdNEQ(v int) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldScoreThreshold, v))
}

// ScoreThresholdIn applies the In predicate on the "score_threshold" field.
func ScoreThresholdIn(vs ...int) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldScoreThreshold, vs...))
}

// ScoreThresholdNotIn applies the NotIn predicate on the "score_threshold" field.
func ScoreThresholdNotIn(vs ...int) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldScoreThreshold, vs...))
}

// ScoreThresholdGT applies the GT predicate on the "score_threshold" field.
func ScoreThresholdGT(v int) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldScoreThreshold, v))
}

// ScoreThresholdGTE applies the GTE predicate on the "score_threshold" field.
func ScoreThresholdGTE(v int) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldScoreThreshold, v))
}

// ScoreThresholdLT applies the LT predicate on the "score_threshold" field.
func ScoreThresholdLT(v int) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldScoreThreshold, v))
}

// ScoreThresholdLTE applies the LTE predicate on the "score_threshold" field.
func ScoreThresholdLTE(v int) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldScoreThreshold, v))
}

// LowScorePageIDEQ applies the EQ predicate on the "low_score_page_id" field.
func LowScorePageIDEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLowScorePageID, v))
}

// LowScorePageIDNEQ applies the NEQ predicate on the "low_score_page_id" field.
func LowScorePageIDNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLowScorePageID, v))
}

// LowScorePageIDIn applies the In predicate on the "low_score_page_id" field.
func LowScorePageIDIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLowScorePageID, vs...))
}

// LowScorePageIDNotIn applies the NotIn predicate on the "low_score_page_id" field.
func LowScorePageIDNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLowScorePageID, vs...))
}

// LowScorePageIDGT applies the GT predicate on the "low_score_page_id" field.
func LowScorePageIDGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLowScorePageID, v))
}

// LowScorePageIDGTE applies the GTE predicate on the "low_score_page_id" field.
func LowScorePageIDGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLowScorePageID, v))
}

// LowScorePageIDLT applies the LT predicate on the "low_score_page_id" field.
func LowScorePageIDLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLowScorePageID, v))
}

// LowScorePageIDLTE applies the LTE predicate on the "low_score_page_id" field.
func LowScorePageIDLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLowScorePageID, v))
}

// LowScorePageIDContains applies the Contains predicate on the "low_score_page_id" field.
func LowScorePageIDContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLowScorePageID, v))
}

// LowScorePageIDHasPrefix applies the HasPrefix predicate on the "low_score_page_id" field.
func LowScorePageIDHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLowScorePageID, v))
}

// LowScorePageIDHasSuffix applies the HasSuffix predicate on the "low_score_page_id" field.
func LowScorePageIDHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLowScorePageID, v))
}

// LowScorePageIDEqualFold applies the EqualFold predicate on the "low_score_page_id" field.
func LowScorePageIDEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLowScorePageID, v))
}

// LowScorePageIDContainsFold applies the ContainsFold predicate on the "low_score_page_id" field.
func LowScorePageIDContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLowScorePageID, v))
}

// HighScorePageIDEQ applies the EQ predicate on the "high_score_page_id" field.
func HighScorePageIDEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldHighScorePageID, v))
}

// HighScorePageIDNEQ applies the NEQ predicate on the "high_score_page_id" field.
func HighScorePageIDNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldHighScorePageID, v))
}

// HighScorePageIDIn applies the In predicate on the "high_score_page_id" field.
func HighScorePageIDIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldHighScorePageID, vs...))
}

// HighScorePageIDNotIn applies the NotIn predicate on the "high_score_page_id" field.
func HighScorePageIDNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldHighScorePageID, vs...))
}

// HighScorePageIDGT applies the GT predicate on the "high_score_page_id" field.
func HighScorePageIDGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldHighScorePageID, v))
}

// HighScorePageIDGTE applies the GTE predicate on the "high_score_page_id" field.
func HighScorePageIDGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldHighScorePageID, v))
}

// HighScorePageIDLT applies the LT predicate on the "high_score_page_id" field.
func HighScorePageIDLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldHighScorePageID, v))
}

// HighScorePageIDLTE applies the LTE predicate on the "high_score_page_id" field.
func HighScorePageIDLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldHighScorePageID, v))
}

// HighScorePageIDContains applies the Contains predicate on the "high_score_page_id" field.
func HighScorePageIDContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldHighScorePageID, v))
}

// HighScorePageIDHasPrefix applies the HasPrefix predicate on the "high_score_page_id" field.
func HighScorePageIDHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldHighScorePageID, v))
}

// HighScorePageIDHasSuffix applies the HasSuffix predicate on the "high_score_page_id" field.
func HighScorePageIDHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldHighScorePageID, v))
}

// HighScorePageIDEqualFold applies the EqualFold predicate on the "high_score_page_id" field.
func HighScorePageIDEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldHighScorePageID, v))
}

// HighScorePageIDContainsFold applies the ContainsFold predicate on the "high_score_page_id" field.
func HighScorePageIDContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldHighScorePageID, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptIsNil applies the IsNil predicate on the "system_prompt" field.
func SystemPromptIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldSystemPrompt))
}

// SystemPromptNotNil applies the NotNil predicate on the "system_prompt" field.
func SystemPromptNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldSystemPrompt))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// TipEQ applies the EQ predicate on the "tip" field.
func TipEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldTip, v))
}

// TipNEQ applies the NEQ predicate on the "tip" field.
func TipNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldTip, v))
}

// TipIn applies the In predicate on the "tip" field.
func TipIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldTip, vs...))
}

// TipNotIn applies the NotIn predicate on the "tip" field.
func TipNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldTip, vs...))
}

// TipGT applies the GT predicate on the "tip" field.
func TipGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldTip, v))
}

// TipGTE applies the GTE predicate on the "tip" field.
func TipGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldTip, v))
}

// TipLT applies the LT predicate on the "tip" field.
func TipLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldTip, v))
}

// TipLTE applies the LTE predicate on the "tip" field.
func TipLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldTip, v))
}

// TipContains applies the Contains predicate on the "tip" field.
func TipContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldTip, v))
}

// TipHasPrefix applies the HasPrefix predicate on the "tip" field.
func TipHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldTip, v))
}

// TipHasSuffix applies the HasSuffix predicate on the "tip" field.
func TipHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldTip, v))
}

// TipIsNil applies the IsNil predicate on the "tip" field.
func TipIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldTip))
}

// TipNotNil applies the NotNil predicate on the "tip" field.
func TipNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldTip))
}

// TipEqualFold applies the EqualFold predicate on the "tip" field.
func TipEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldTip, v))
}

// TipContainsFold applies the ContainsFold predicate on the "tip" field.
func TipContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldTip, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Page) predicate.Page {
	return predicate.Page(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Page) predicate.Page {
	return predicate.Page(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Page) predicate.Page {
	return predicate.Page(sql.NotPredicates(p))
}
