// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/naghz/naghz/ent/page"
	"github.com/naghz/naghz/ent/predicate"
)

// PageUpdate is the builder for updating Page entities.
type PageUpdate struct {
	config
	hooks    []Hook
	mutation *PageMutation
}

// Where appends a list predicates to the PageUpdate builder.
func (_u *PageUpdate) Where(ps ...predicate.Page) *PageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *PageUpdate) SetPageID(v string) *PageUpdate {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *PageUpdate) SetNillablePageID(v *string) *PageUpdate {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *PageUpdate) SetCourseID(v string) *PageUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *PageUpdate) SetNillableCourseID(v *string) *PageUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *PageUpdate) SetNumber(v int) *PageUpdate {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *PageUpdate) SetNillableNumber(v *int) *PageUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *PageUpdate) AddNumber(v int) *PageUpdate {
	_u.mutation.AddNumber(v)
	return _u
}

// SetLength sets the "length" field.
func (_u *PageUpdate) SetLength(v int) *PageUpdate {
	_u.mutation.ResetLength()
	_u.mutation.SetLength(v)
	return _u
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLength(v *int) *PageUpdate {
	if v != nil {
		_u.SetLength(*v)
	}
	return _u
}

// AddLength adds value to the "length" field.
func (_u *PageUpdate) AddLength(v int) *PageUpdate {
	_u.mutation.AddLength(v)
	return _u
}

// SetPageType sets the "page_type" field.
func (_u *PageUpdate) SetPageType(v string) *PageUpdate {
	_u.mutation.SetPageType(v)
	return _u
}

// SetNillablePageType sets the "page_type" field if the given value is not nil.
func (_u *PageUpdate) SetNillablePageType(v *string) *PageUpdate {
	if v != nil {
		_u.SetPageType(*v)
	}
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *PageUpdate) SetTestType(v string) *PageUpdate {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *PageUpdate) SetNillableTestType(v *string) *PageUpdate {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// SetGrid sets the "grid" field.
func (_u *PageUpdate) SetGrid(v string) *PageUpdate {
	_u.mutation.SetGrid(v)
	return _u
}

// SetNillableGrid sets the "grid" field if the given value is not nil.
func (_u *PageUpdate) SetNillableGrid(v *string) *PageUpdate {
	if v != nil {
		_u.SetGrid(*v)
	}
	return _u
}

// SetHeader sets the "header" field.
func (_u *PageUpdate) SetHeader(v string) *PageUpdate {
	_u.mutation.SetHeader(v)
	return _u
}

// SetNillableHeader sets the "header" field if the given value is not nil.
func (_u *PageUpdate) SetNillableHeader(v *string) *PageUpdate {
	if v != nil {
		_u.SetHeader(*v)
	}
	return _u
}

// ClearHeader clears the value of the "header" field.
func (_u *PageUpdate) ClearHeader() *PageUpdate {
	_u.mutation.ClearHeader()
	return _u
}

// SetBody sets the "body" field.
func (_u *PageUpdate) SetBody(v string) *PageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PageUpdate) SetNillableBody(v *string) *PageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *PageUpdate) ClearBody() *PageUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetQuestion sets the "question" field.
func (_u *PageUpdate) SetQuestion(v string) *PageUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *PageUpdate) SetNillableQuestion(v *string) *PageUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// ClearQuestion clears the value of the "question" field.
func (_u *PageUpdate) ClearQuestion() *PageUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PageUpdate) SetSubject(v string) *PageUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PageUpdate) SetNillableSubject(v *string) *PageUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *PageUpdate) ClearSubject() *PageUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetImage sets the "image" field.
func (_u *PageUpdate) SetImage(v string) *PageUpdate {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *PageUpdate) SetNillableImage(v *string) *PageUpdate {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// ClearImage clears the value of the "image" field.
func (_u *PageUpdate) ClearImage() *PageUpdate {
	_u.mutation.ClearImage()
	return _u
}

// SetWhy sets the "why" field.
func (_u *PageUpdate) SetWhy(v string) *PageUpdate {
	_u.mutation.SetWhy(v)
	return _u
}

// SetNillableWhy sets the "why" field if the given value is not nil.
func (_u *PageUpdate) SetNillableWhy(v *string) *PageUpdate {
	if v != nil {
		_u.SetWhy(*v)
	}
	return _u
}

// ClearWhy clears the value of the "why" field.
func (_u *PageUpdate) ClearWhy() *PageUpdate {
	_u.mutation.ClearWhy()
	return _u
}

// SetAnswerFlat sets the "answer_flat" field.
func (_u *PageUpdate) SetAnswerFlat(v []int) *PageUpdate {
	_u.mutation.SetAnswerFlat(v)
	return _u
}

// AppendAnswerFlat appends value to the "answer_flat" field.
func (_u *PageUpdate) AppendAnswerFlat(v []int) *PageUpdate {
	_u.mutation.AppendAnswerFlat(v)
	return _u
}

// ClearAnswerFlat clears the value of the "answer_flat" field.
func (_u *PageUpdate) ClearAnswerFlat() *PageUpdate {
	_u.mutation.ClearAnswerFlat()
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *PageUpdate) SetAnswerText(v string) *PageUpdate {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *PageUpdate) SetNillableAnswerText(v *string) *PageUpdate {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// ClearAnswerText clears the value of the "answer_text" field.
func (_u *PageUpdate) ClearAnswerText() *PageUpdate {
	_u.mutation.ClearAnswerText()
	return _u
}

// SetAiGraded sets the "ai_graded" field.
func (_u *PageUpdate) SetAiGraded(v bool) *PageUpdate {
	_u.mutation.SetAiGraded(v)
	return _u
}

// SetNillableAiGraded sets the "ai_graded" field if the given value is not nil.
func (_u *PageUpdate) SetNillableAiGraded(v *bool) *PageUpdate {
	if v != nil {
		_u.SetAiGraded(*v)
	}
	return _u
}

// SetGiveFeedback sets the "give_feedback" field.
func (_u *PageUpdate) SetGiveFeedback(v bool) *PageUpdate {
	_u.mutation.SetGiveFeedback(v)
	return _u
}

// SetNillableGiveFeedback sets the "give_feedback" field if the given value is not nil.
func (_u *PageUpdate) SetNillableGiveFeedback(v *bool) *PageUpdate {
	if v != nil {
		_u.SetGiveFeedback(*v)
	}
	return _u
}

// SetGivePoint sets the "give_point" field.
func (_u *PageUpdate) SetGivePoint(v bool) *PageUpdate {
	_u.mutation.SetGivePoint(v)
	return _u
}

// SetNillableGivePoint sets the "give_point" field if the given value is not nil.
func (_u *PageUpdate) SetNillableGivePoint(v *bool) *PageUpdate {
	if v != nil {
		_u.SetGivePoint(*v)
	}
	return _u
}

// SetGivePointByAi sets the "give_point_by_ai" field.
func (_u *PageUpdate) SetGivePointByAi(v bool) *PageUpdate {
	_u.mutation.SetGivePointByAi(v)
	return _u
}

// SetNillableGivePointByAi sets the "give_point_by_ai" field if the given value is not nil.
func (_u *PageUpdate) SetNillableGivePointByAi(v *bool) *PageUpdate {
	if v != nil {
		_u.SetGivePointByAi(*v)
	}
	return _u
}

// SetScoreThreshold sets the "score_threshold" field.
func (_u *PageUpdate) SetScoreThreshold(v int) *PageUpdate {
	_u.mutation.ResetScoreThreshold()
	_u.mutation.SetScoreThreshold(v)
	return _u
}

// SetNillableScoreThreshold sets the "score_threshold" field if the given value is not nil.
func (_u *PageUpdate) SetNillableScoreThreshold(v *int) *PageUpdate {
	if v != nil {
		_u.SetScoreThreshold(*v)
	}
	return _u
}

// AddScoreThreshold adds value to the "score_threshold" field.
func (_u *PageUpdate) AddScoreThreshold(v int) *PageUpdate {
	_u.mutation.AddScoreThreshold(v)
	return _u
}

// SetLowScorePageID sets the "low_score_page_id" field.
func (_u *PageUpdate) SetLowScorePageID(v string) *PageUpdate {
	_u.mutation.SetLowScorePageID(v)
	return _u
}

// SetNillableLowScorePageID sets the "low_score_page_id" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLowScorePageID(v *string) *PageUpdate {
	if v != nil {
		_u.SetLowScorePageID(*v)
	}
	return _u
}

// SetHighScorePageID sets the "high_score_page_id" field.
func (_u *PageUpdate) SetHighScorePageID(v string) *PageUpdate {
	_u.mutation.SetHighScorePageID(v)
	return _u
}

// SetNillableHighScorePageID sets the "high_score_page_id" field if the given value is not nil.
func (_u *PageUpdate) SetNillableHighScorePageID(v *string) *PageUpdate {
	if v != nil {
		_u.SetHighScorePageID(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PageUpdate) SetSystemPrompt(v string) *PageUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PageUpdate) SetNillableSystemPrompt(v *string) *PageUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *PageUpdate) ClearSystemPrompt() *PageUpdate {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetTip sets the "tip" field.
func (_u *PageUpdate) SetTip(v string) *PageUpdate {
	_u.mutation.SetTip(v)
	return _u
}

// SetNillableTip sets the "tip" field if the given value is not nil.
func (_u *PageUpdate) SetNillableTip(v *string) *PageUpdate {
	if v != nil {
		_u.SetTip(*v)
	}
	return _u
}

// ClearTip clears the value of the "tip" field.
func (_u *PageUpdate) ClearTip() *PageUpdate {
	_u.mutation.ClearTip()
	return _u
}

// Mutation returns the PageMutation object of the builder.
func (_u *PageUpdate) Mutation() *PageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageUpdate) check() error {
	if v, ok := _u.mutation.PageID(); ok {
		if err := page.PageIDValidator(v); err != nil {
			return &ValidationError{Name: "page_id", err: fmt.Errorf(`ent: validator failed for field "Page.page_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := page.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Page.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Number(); ok {
		if err := page.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Page.number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Length(); ok {
		if err := page.LengthValidator(v); err != nil {
			return &ValidationError{Name: "length", err: fmt.Errorf(`ent: validator failed for field "Page.length": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageType(); ok {
		if err := page.PageTypeValidator(v); err != nil {
			return &ValidationError{Name: "page_type", err: fmt.Errorf(`ent: validator failed for field "Page.page_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageID(); ok {
		_spec.SetField(page.FieldPageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(page.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(page.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(page.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Length(); ok {
		_spec.SetField(page.FieldLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLength(); ok {
		_spec.AddField(page.FieldLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageType(); ok {
		_spec.SetField(page.FieldPageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(page.FieldTestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grid(); ok {
		_spec.SetField(page.FieldGrid, field.TypeString, value)
	}
	if value, ok := _u.mutation.Header(); ok {
		_spec.SetField(page.FieldHeader, field.TypeString, value)
	}
	if _u.mutation.HeaderCleared() {
		_spec.ClearField(page.FieldHeader, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(page.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(page.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(page.FieldQuestion, field.TypeString, value)
	}
	if _u.mutation.QuestionCleared() {
		_spec.ClearField(page.FieldQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(page.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(page.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(page.FieldImage, field.TypeString, value)
	}
	if _u.mutation.ImageCleared() {
		_spec.ClearField(page.FieldImage, field.TypeString)
	}
	if value, ok := _u.mutation.Why(); ok {
		_spec.SetField(page.FieldWhy, field.TypeString, value)
	}
	if _u.mutation.WhyCleared() {
		_spec.ClearField(page.FieldWhy, field.TypeString)
	}
	if value, ok := _u.mutation.AnswerFlat(); ok {
		_spec.SetField(page.FieldAnswerFlat, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswerFlat(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, page.FieldAnswerFlat, value)
		})
	}
	if _u.mutation.AnswerFlatCleared() {
		_spec.ClearField(page.FieldAnswerFlat, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(page.FieldAnswerText, field.TypeString, value)
	}
	if _u.mutation.AnswerTextCleared() {
		_spec.ClearField(page.FieldAnswerText, field.TypeString)
	}
	if value, ok := _u.mutation.AiGraded(); ok {
		_spec.SetField(page.FieldAiGraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GiveFeedback(); ok {
		_spec.SetField(page.FieldGiveFeedback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GivePoint(); ok {
		_spec.SetField(page.FieldGivePoint, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GivePointByAi(); ok {
		_spec.SetField(page.FieldGivePointByAi, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScoreThreshold(); ok {
		_spec.SetField(page.FieldScoreThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreThreshold(); ok {
		_spec.AddField(page.FieldScoreThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LowScorePageID(); ok {
		_spec.SetField(page.FieldLowScorePageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.HighScorePageID(); ok {
		_spec.SetField(page.FieldHighScorePageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(page.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(page.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Tip(); ok {
		_spec.SetField(page.FieldTip, field.TypeString, value)
	}
	if _u.mutation.TipCleared() {
		_spec.ClearField(page.FieldTip, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PageUpdateOne is the builder for updating a single Page entity.
type PageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageMutation
}

// SetPageID sets the "page_id" field.
func (_u *PageUpdateOne) SetPageID(v string) *PageUpdateOne {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillablePageID(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *PageUpdateOne) SetCourseID(v string) *PageUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableCourseID(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetNumber sets the "number" field.
func (_u *PageUpdateOne) SetNumber(v int) *PageUpdateOne {
	_u.mutation.ResetNumber()
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableNumber(v *int) *PageUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// AddNumber adds value to the "number" field.
func (_u *PageUpdateOne) AddNumber(v int) *PageUpdateOne {
	_u.mutation.AddNumber(v)
	return _u
}

// SetLength sets the "length" field.
func (_u *PageUpdateOne) SetLength(v int) *PageUpdateOne {
	_u.mutation.ResetLength()
	_u.mutation.SetLength(v)
	return _u
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLength(v *int) *PageUpdateOne {
	if v != nil {
		_u.SetLength(*v)
	}
	return _u
}

// AddLength adds value to the "length" field.
func (_u *PageUpdateOne) AddLength(v int) *PageUpdateOne {
	_u.mutation.AddLength(v)
	return _u
}

// SetPageType sets the "page_type" field.
func (_u *PageUpdateOne) SetPageType(v string) *PageUpdateOne {
	_u.mutation.SetPageType(v)
	return _u
}

// SetNillablePageType sets the "page_type" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillablePageType(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetPageType(*v)
	}
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *PageUpdateOne) SetTestType(v string) *PageUpdateOne {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableTestType(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// SetGrid sets the "grid" field.
func (_u *PageUpdateOne) SetGrid(v string) *PageUpdateOne {
	_u.mutation.SetGrid(v)
	return _u
}

// SetNillableGrid sets the "grid" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableGrid(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetGrid(*v)
	}
	return _u
}

// SetHeader sets the "header" field.
func (_u *PageUpdateOne) SetHeader(v string) *PageUpdateOne {
	_u.mutation.SetHeader(v)
	return _u
}

// SetNillableHeader sets the "header" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableHeader(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetHeader(*v)
	}
	return _u
}

// ClearHeader clears the value of the "header" field.
func (_u *PageUpdateOne) ClearHeader() *PageUpdateOne {
	_u.mutation.ClearHeader()
	return _u
}

// SetBody sets the "body" field.
func (_u *PageUpdateOne) SetBody(v string) *PageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableBody(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *PageUpdateOne) ClearBody() *PageUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetQuestion sets the "question" field.
func (_u *PageUpdateOne) SetQuestion(v string) *PageUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableQuestion(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// ClearQuestion clears the value of the "question" field.
func (_u *PageUpdateOne) ClearQuestion() *PageUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PageUpdateOne) SetSubject(v string) *PageUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableSubject(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *PageUpdateOne) ClearSubject() *PageUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetImage sets the "image" field.
func (_u *PageUpdateOne) SetImage(v string) *PageUpdateOne {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableImage(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// ClearImage clears the value of the "image" field.
func (_u *PageUpdateOne) ClearImage() *PageUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// SetWhy sets the "why" field.
func (_u *PageUpdateOne) SetWhy(v string) *PageUpdateOne {
	_u.mutation.SetWhy(v)
	return _u
}

// SetNillableWhy sets the "why" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableWhy(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetWhy(*v)
	}
	return _u
}

// ClearWhy clears the value of the "why" field.
func (_u *PageUpdateOne) ClearWhy() *PageUpdateOne {
	_u.mutation.ClearWhy()
	return _u
}

// SetAnswerFlat sets the "answer_flat" field.
func (_u *PageUpdateOne) SetAnswerFlat(v []int) *PageUpdateOne {
	_u.mutation.SetAnswerFlat(v)
	return _u
}

// AppendAnswerFlat appends value to the "answer_flat" field.
func (_u *PageUpdateOne) AppendAnswerFlat(v []int) *PageUpdateOne {
	_u.mutation.AppendAnswerFlat(v)
	return _u
}

// ClearAnswerFlat clears the value of the "answer_flat" field.
func (_u *PageUpdateOne) ClearAnswerFlat() *PageUpdateOne {
	_u.mutation.ClearAnswerFlat()
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *PageUpdateOne) SetAnswerText(v string) *PageUpdateOne {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableAnswerText(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// ClearAnswerText clears the value of the "answer_text" field.
func (_u *PageUpdateOne) ClearAnswerText() *PageUpdateOne {
	_u.mutation.ClearAnswerText()
	return _u
}

// SetAiGraded sets the "ai_graded" field.
func (_u *PageUpdateOne) SetAiGraded(v bool) *PageUpdateOne {
	_u.mutation.SetAiGraded(v)
	return _u
}

// SetNillableAiGraded sets the "ai_graded" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableAiGraded(v *bool) *PageUpdateOne {
	if v != nil {
		_u.SetAiGraded(*v)
	}
	return _u
}

// SetGiveFeedback sets the "give_feedback" field.
func (_u *PageUpdateOne) SetGiveFeedback(v bool) *PageUpdateOne {
	_u.mutation.SetGiveFeedback(v)
	return _u
}

// SetNillableGiveFeedback sets the "give_feedback" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableGiveFeedback(v *bool) *PageUpdateOne {
	if v != nil {
		_u.SetGiveFeedback(*v)
	}
	return _u
}

// SetGivePoint sets the "give_point" field.
func (_u *PageUpdateOne) SetGivePoint(v bool) *PageUpdateOne {
	_u.mutation.SetGivePoint(v)
	return _u
}

// SetNillableGivePoint sets the "give_point" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableGivePoint(v *bool) *PageUpdateOne {
	if v != nil {
		_u.SetGivePoint(*v)
	}
	return _u
}

// SetGivePointByAi sets the "give_point_by_ai" field.
func (_u *PageUpdateOne) SetGivePointByAi(v bool) *PageUpdateOne {
	_u.mutation.SetGivePointByAi(v)
	return _u
}

// SetNillableGivePointByAi sets the "give_point_by_ai" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableGivePointByAi(v *bool) *PageUpdateOne {
	if v != nil {
		_u.SetGivePointByAi(*v)
	}
	return _u
}

// SetScoreThreshold sets the "score_threshold" field.
func (_u *PageUpdateOne) SetScoreThreshold(v int) *PageUpdateOne {
	_u.mutation.ResetScoreThreshold()
	_u.mutation.SetScoreThreshold(v)
	return _u
}

// SetNillableScoreThreshold sets the "score_threshold" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableScoreThreshold(v *int) *PageUpdateOne {
	if v != nil {
		_u.SetScoreThreshold(*v)
	}
	return _u
}

// AddScoreThreshold adds value to the "score_threshold" field.
func (_u *PageUpdateOne) AddScoreThreshold(v int) *PageUpdateOne {
	_u.mutation.AddScoreThreshold(v)
	return _u
}

// SetLowScorePageID sets the "low_score_page_id" field.
func (_u *PageUpdateOne) SetLowScorePageID(v string) *PageUpdateOne {
	_u.mutation.SetLowScorePageID(v)
	return _u
}

// SetNillableLowScorePageID sets the "low_score_page_id" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLowScorePageID(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLowScorePageID(*v)
	}
	return _u
}

// SetHighScorePageID sets the "high_score_page_id" field.
func (_u *PageUpdateOne) SetHighScorePageID(v string) *PageUpdateOne {
	_u.mutation.SetHighScorePageID(v)
	return _u
}

// SetNillableHighScorePageID sets the "high_score_page_id" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableHighScorePageID(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetHighScorePageID(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PageUpdateOne) SetSystemPrompt(v string) *PageUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableSystemPrompt(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *PageUpdateOne) ClearSystemPrompt() *PageUpdateOne {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetTip sets the "tip" field.
func (_u *PageUpdateOne) SetTip(v string) *PageUpdateOne {
	_u.mutation.SetTip(v)
	return _u
}

// SetNillableTip sets the "tip" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableTip(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetTip(*v)
	}
	return _u
}

// ClearTip clears the value of the "tip" field.
func (_u *PageUpdateOne) ClearTip() *PageUpdateOne {
	_u.mutation.ClearTip()
	return _u
}

// Mutation returns the PageMutation object of the builder.
func (_u *PageUpdateOne) Mutation() *PageMutation {
	return _u.mutation
}

// Where appends a list predicates to the PageUpdate builder.
func (_u *PageUpdateOne) Where(ps ...predicate.Page) *PageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PageUpdateOne) Select(field string, fields ...string) *PageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Page entity.
func (_u *PageUpdateOne) Save(ctx context.Context) (*Page, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageUpdateOne) SaveX(ctx context.Context) *Page {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageUpdateOne) check() error {
	if v, ok := _u.mutation.PageID(); ok {
		if err := page.PageIDValidator(v); err != nil {
			return &ValidationError{Name: "page_id", err: fmt.Errorf(`ent: validator failed for field "Page.page_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := page.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Page.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Number(); ok {
		if err := page.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Page.number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Length(); ok {
		if err := page.LengthValidator(v); err != nil {
			return &ValidationError{Name: "length", err: fmt.Errorf(`ent: validator failed for field "Page.length": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageType(); ok {
		if err := page.PageTypeValidator(v); err != nil {
			return &ValidationError{Name: "page_type", err: fmt.Errorf(`ent: validator failed for field "Page.page_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PageUpdateOne) sqlSave(ctx context.Context) (_node *Page, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Page.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, page.FieldID)
		for _, f := range fields {
			if !page.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != page.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageID(); ok {
		_spec.SetField(page.FieldPageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(page.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(page.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumber(); ok {
		_spec.AddField(page.FieldNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Length(); ok {
		_spec.SetField(page.FieldLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLength(); ok {
		_spec.AddField(page.FieldLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageType(); ok {
		_spec.SetField(page.FieldPageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(page.FieldTestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grid(); ok {
		_spec.SetField(page.FieldGrid, field.TypeString, value)
	}
	if value, ok := _u.mutation.Header(); ok {
		_spec.SetField(page.FieldHeader, field.TypeString, value)
	}
	if _u.mutation.HeaderCleared() {
		_spec.ClearField(page.FieldHeader, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(page.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(page.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(page.FieldQuestion, field.TypeString, value)
	}
	if _u.mutation.QuestionCleared() {
		_spec.ClearField(page.FieldQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(page.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(page.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(page.FieldImage, field.TypeString, value)
	}
	if _u.mutation.ImageCleared() {
		_spec.ClearField(page.FieldImage, field.TypeString)
	}
	if value, ok := _u.mutation.Why(); ok {
		_spec.SetField(page.FieldWhy, field.TypeString, value)
	}
	if _u.mutation.WhyCleared() {
		_spec.ClearField(page.FieldWhy, field.TypeString)
	}
	if value, ok := _u.mutation.AnswerFlat(); ok {
		_spec.SetField(page.FieldAnswerFlat, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswerFlat(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, page.FieldAnswerFlat, value)
		})
	}
	if _u.mutation.AnswerFlatCleared() {
		_spec.ClearField(page.FieldAnswerFlat, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(page.FieldAnswerText, field.TypeString, value)
	}
	if _u.mutation.AnswerTextCleared() {
		_spec.ClearField(page.FieldAnswerText, field.TypeString)
	}
	if value, ok := _u.mutation.AiGraded(); ok {
		_spec.SetField(page.FieldAiGraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GiveFeedback(); ok {
		_spec.SetField(page.FieldGiveFeedback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GivePoint(); ok {
		_spec.SetField(page.FieldGivePoint, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GivePointByAi(); ok {
		_spec.SetField(page.FieldGivePointByAi, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScoreThreshold(); ok {
		_spec.SetField(page.FieldScoreThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreThreshold(); ok {
		_spec.AddField(page.FieldScoreThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LowScorePageID(); ok {
		_spec.SetField(page.FieldLowScorePageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.HighScorePageID(); ok {
		_spec.SetField(page.FieldHighScorePageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(page.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(page.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Tip(); ok {
		_spec.SetField(page.FieldTip, field.TypeString, value)
	}
	if _u.mutation.TipCleared() {
		_spec.ClearField(page.FieldTip, field.TypeString)
	}
	_node = &Page{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
