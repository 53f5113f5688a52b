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
	"github.com/naghz/naghz/ent/answerevent"
	"github.com/naghz/naghz/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *AnswerEventUpdate) SetCourseID(v string) *AnswerEventUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCourseID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *AnswerEventUpdate) SetPageID(v string) *AnswerEventUpdate {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePageID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *AnswerEventUpdate) SetTestType(v string) *AnswerEventUpdate {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTestType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// SetSelectionFlat sets the "selection_flat" field.
func (_u *AnswerEventUpdate) SetSelectionFlat(v []int) *AnswerEventUpdate {
	_u.mutation.SetSelectionFlat(v)
	return _u
}

// AppendSelectionFlat appends value to the "selection_flat" field.
func (_u *AnswerEventUpdate) AppendSelectionFlat(v []int) *AnswerEventUpdate {
	_u.mutation.AppendSelectionFlat(v)
	return _u
}

// ClearSelectionFlat clears the value of the "selection_flat" field.
func (_u *AnswerEventUpdate) ClearSelectionFlat() *AnswerEventUpdate {
	_u.mutation.ClearSelectionFlat()
	return _u
}

// SetSelectionText sets the "selection_text" field.
func (_u *AnswerEventUpdate) SetSelectionText(v string) *AnswerEventUpdate {
	_u.mutation.SetSelectionText(v)
	return _u
}

// SetNillableSelectionText sets the "selection_text" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSelectionText(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSelectionText(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAiScore sets the "ai_score" field.
func (_u *AnswerEventUpdate) SetAiScore(v int) *AnswerEventUpdate {
	_u.mutation.ResetAiScore()
	_u.mutation.SetAiScore(v)
	return _u
}

// SetNillableAiScore sets the "ai_score" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAiScore(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetAiScore(*v)
	}
	return _u
}

// AddAiScore adds value to the "ai_score" field.
func (_u *AnswerEventUpdate) AddAiScore(v int) *AnswerEventUpdate {
	_u.mutation.AddAiScore(v)
	return _u
}

// ClearAiScore clears the value of the "ai_score" field.
func (_u *AnswerEventUpdate) ClearAiScore() *AnswerEventUpdate {
	_u.mutation.ClearAiScore()
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := answerevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageID(); ok {
		if err := answerevent.PageIDValidator(v); err != nil {
			return &ValidationError{Name: "page_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.page_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestType(); ok {
		if err := answerevent.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.test_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(answerevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageID(); ok {
		_spec.SetField(answerevent.FieldPageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(answerevent.FieldTestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectionFlat(); ok {
		_spec.SetField(answerevent.FieldSelectionFlat, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelectionFlat(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerevent.FieldSelectionFlat, value)
		})
	}
	if _u.mutation.SelectionFlatCleared() {
		_spec.ClearField(answerevent.FieldSelectionFlat, field.TypeJSON)
	}
	if value, ok := _u.mutation.SelectionText(); ok {
		_spec.SetField(answerevent.FieldSelectionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AiScore(); ok {
		_spec.SetField(answerevent.FieldAiScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAiScore(); ok {
		_spec.AddField(answerevent.FieldAiScore, field.TypeInt, value)
	}
	if _u.mutation.AiScoreCleared() {
		_spec.ClearField(answerevent.FieldAiScore, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *AnswerEventUpdateOne) SetCourseID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCourseID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *AnswerEventUpdateOne) SetPageID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePageID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *AnswerEventUpdateOne) SetTestType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTestType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// SetSelectionFlat sets the "selection_flat" field.
func (_u *AnswerEventUpdateOne) SetSelectionFlat(v []int) *AnswerEventUpdateOne {
	_u.mutation.SetSelectionFlat(v)
	return _u
}

// AppendSelectionFlat appends value to the "selection_flat" field.
func (_u *AnswerEventUpdateOne) AppendSelectionFlat(v []int) *AnswerEventUpdateOne {
	_u.mutation.AppendSelectionFlat(v)
	return _u
}

// ClearSelectionFlat clears the value of the "selection_flat" field.
func (_u *AnswerEventUpdateOne) ClearSelectionFlat() *AnswerEventUpdateOne {
	_u.mutation.ClearSelectionFlat()
	return _u
}

// SetSelectionText sets the "selection_text" field.
func (_u *AnswerEventUpdateOne) SetSelectionText(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSelectionText(v)
	return _u
}

// SetNillableSelectionText sets the "selection_text" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSelectionText(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSelectionText(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAiScore sets the "ai_score" field.
func (_u *AnswerEventUpdateOne) SetAiScore(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetAiScore()
	_u.mutation.SetAiScore(v)
	return _u
}

// SetNillableAiScore sets the "ai_score" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAiScore(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAiScore(*v)
	}
	return _u
}

// AddAiScore adds value to the "ai_score" field.
func (_u *AnswerEventUpdateOne) AddAiScore(v int) *AnswerEventUpdateOne {
	_u.mutation.AddAiScore(v)
	return _u
}

// ClearAiScore clears the value of the "ai_score" field.
func (_u *AnswerEventUpdateOne) ClearAiScore() *AnswerEventUpdateOne {
	_u.mutation.ClearAiScore()
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := answerevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageID(); ok {
		if err := answerevent.PageIDValidator(v); err != nil {
			return &ValidationError{Name: "page_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.page_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestType(); ok {
		if err := answerevent.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.test_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(answerevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageID(); ok {
		_spec.SetField(answerevent.FieldPageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(answerevent.FieldTestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectionFlat(); ok {
		_spec.SetField(answerevent.FieldSelectionFlat, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelectionFlat(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerevent.FieldSelectionFlat, value)
		})
	}
	if _u.mutation.SelectionFlatCleared() {
		_spec.ClearField(answerevent.FieldSelectionFlat, field.TypeJSON)
	}
	if value, ok := _u.mutation.SelectionText(); ok {
		_spec.SetField(answerevent.FieldSelectionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AiScore(); ok {
		_spec.SetField(answerevent.FieldAiScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAiScore(); ok {
		_spec.AddField(answerevent.FieldAiScore, field.TypeInt, value)
	}
	if _u.mutation.AiScoreCleared() {
		_spec.ClearField(answerevent.FieldAiScore, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
