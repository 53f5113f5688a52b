// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/naghz/naghz/ent/pageprogress"
	"github.com/naghz/naghz/ent/predicate"
)

// PageProgressUpdate is the builder for updating PageProgress entities.
type PageProgressUpdate struct {
	config
	hooks    []Hook
	mutation *PageProgressMutation
}

// Where appends a list predicates to the PageProgressUpdate builder.
func (_u *PageProgressUpdate) Where(ps ...predicate.PageProgress) *PageProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PageProgressUpdate) SetUserID(v string) *PageProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PageProgressUpdate) SetNillableUserID(v *string) *PageProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *PageProgressUpdate) SetCourseID(v string) *PageProgressUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *PageProgressUpdate) SetNillableCourseID(v *string) *PageProgressUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *PageProgressUpdate) SetPageNumber(v int) *PageProgressUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *PageProgressUpdate) SetNillablePageNumber(v *int) *PageProgressUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *PageProgressUpdate) AddPageNumber(v int) *PageProgressUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PageProgressUpdate) SetCompleted(v bool) *PageProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PageProgressUpdate) SetNillableCompleted(v *bool) *PageProgressUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PageProgressUpdate) SetUpdatedAt(v time.Time) *PageProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PageProgressMutation object of the builder.
func (_u *PageProgressUpdate) Mutation() *PageProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PageProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PageProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PageProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pageprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := pageprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PageProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := pageprogress.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "PageProgress.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := pageprogress.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "PageProgress.page_number": %w`, err)}
		}
	}
	return nil
}

func (_u *PageProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pageprogress.Table, pageprogress.Columns, sqlgraph.NewFieldSpec(pageprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pageprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(pageprogress.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(pageprogress.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(pageprogress.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(pageprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pageprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PageProgressUpdateOne is the builder for updating a single PageProgress entity.
type PageProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *PageProgressUpdateOne) SetUserID(v string) *PageProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PageProgressUpdateOne) SetNillableUserID(v *string) *PageProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *PageProgressUpdateOne) SetCourseID(v string) *PageProgressUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *PageProgressUpdateOne) SetNillableCourseID(v *string) *PageProgressUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *PageProgressUpdateOne) SetPageNumber(v int) *PageProgressUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *PageProgressUpdateOne) SetNillablePageNumber(v *int) *PageProgressUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *PageProgressUpdateOne) AddPageNumber(v int) *PageProgressUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PageProgressUpdateOne) SetCompleted(v bool) *PageProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PageProgressUpdateOne) SetNillableCompleted(v *bool) *PageProgressUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PageProgressUpdateOne) SetUpdatedAt(v time.Time) *PageProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PageProgressMutation object of the builder.
func (_u *PageProgressUpdateOne) Mutation() *PageProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the PageProgressUpdate builder.
func (_u *PageProgressUpdateOne) Where(ps ...predicate.PageProgress) *PageProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PageProgressUpdateOne) Select(field string, fields ...string) *PageProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PageProgress entity.
func (_u *PageProgressUpdateOne) Save(ctx context.Context) (*PageProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageProgressUpdateOne) SaveX(ctx context.Context) *PageProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PageProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PageProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pageprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := pageprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PageProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := pageprogress.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "PageProgress.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := pageprogress.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "PageProgress.page_number": %w`, err)}
		}
	}
	return nil
}

func (_u *PageProgressUpdateOne) sqlSave(ctx context.Context) (_node *PageProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pageprogress.Table, pageprogress.Columns, sqlgraph.NewFieldSpec(pageprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PageProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pageprogress.FieldID)
		for _, f := range fields {
			if !pageprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pageprogress.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pageprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(pageprogress.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(pageprogress.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(pageprogress.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(pageprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pageprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PageProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
