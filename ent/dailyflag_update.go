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
	"github.com/naghz/naghz/ent/dailyflag"
	"github.com/naghz/naghz/ent/predicate"
)

// DailyFlagUpdate is the builder for updating DailyFlag entities.
type DailyFlagUpdate struct {
	config
	hooks    []Hook
	mutation *DailyFlagMutation
}

// Where appends a list predicates to the DailyFlagUpdate builder.
func (_u *DailyFlagUpdate) Where(ps ...predicate.DailyFlag) *DailyFlagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DailyFlagUpdate) SetUserID(v string) *DailyFlagUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DailyFlagUpdate) SetNillableUserID(v *string) *DailyFlagUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLastShown sets the "last_shown" field.
func (_u *DailyFlagUpdate) SetLastShown(v string) *DailyFlagUpdate {
	_u.mutation.SetLastShown(v)
	return _u
}

// SetNillableLastShown sets the "last_shown" field if the given value is not nil.
func (_u *DailyFlagUpdate) SetNillableLastShown(v *string) *DailyFlagUpdate {
	if v != nil {
		_u.SetLastShown(*v)
	}
	return _u
}

// SetDeclinedUntil sets the "declined_until" field.
func (_u *DailyFlagUpdate) SetDeclinedUntil(v time.Time) *DailyFlagUpdate {
	_u.mutation.SetDeclinedUntil(v)
	return _u
}

// SetNillableDeclinedUntil sets the "declined_until" field if the given value is not nil.
func (_u *DailyFlagUpdate) SetNillableDeclinedUntil(v *time.Time) *DailyFlagUpdate {
	if v != nil {
		_u.SetDeclinedUntil(*v)
	}
	return _u
}

// ClearDeclinedUntil clears the value of the "declined_until" field.
func (_u *DailyFlagUpdate) ClearDeclinedUntil() *DailyFlagUpdate {
	_u.mutation.ClearDeclinedUntil()
	return _u
}

// SetCompletedDay sets the "completed_day" field.
func (_u *DailyFlagUpdate) SetCompletedDay(v string) *DailyFlagUpdate {
	_u.mutation.SetCompletedDay(v)
	return _u
}

// SetNillableCompletedDay sets the "completed_day" field if the given value is not nil.
func (_u *DailyFlagUpdate) SetNillableCompletedDay(v *string) *DailyFlagUpdate {
	if v != nil {
		_u.SetCompletedDay(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DailyFlagUpdate) SetUpdatedAt(v time.Time) *DailyFlagUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DailyFlagMutation object of the builder.
func (_u *DailyFlagUpdate) Mutation() *DailyFlagMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyFlagUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyFlagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyFlagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyFlagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyFlagUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dailyflag.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyFlagUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := dailyflag.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DailyFlag.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyFlagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyflag.Table, dailyflag.Columns, sqlgraph.NewFieldSpec(dailyflag.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(dailyflag.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastShown(); ok {
		_spec.SetField(dailyflag.FieldLastShown, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeclinedUntil(); ok {
		_spec.SetField(dailyflag.FieldDeclinedUntil, field.TypeTime, value)
	}
	if _u.mutation.DeclinedUntilCleared() {
		_spec.ClearField(dailyflag.FieldDeclinedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedDay(); ok {
		_spec.SetField(dailyflag.FieldCompletedDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dailyflag.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyflag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyFlagUpdateOne is the builder for updating a single DailyFlag entity.
type DailyFlagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyFlagMutation
}

// SetUserID sets the "user_id" field.
func (_u *DailyFlagUpdateOne) SetUserID(v string) *DailyFlagUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DailyFlagUpdateOne) SetNillableUserID(v *string) *DailyFlagUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLastShown sets the "last_shown" field.
func (_u *DailyFlagUpdateOne) SetLastShown(v string) *DailyFlagUpdateOne {
	_u.mutation.SetLastShown(v)
	return _u
}

// SetNillableLastShown sets the "last_shown" field if the given value is not nil.
func (_u *DailyFlagUpdateOne) SetNillableLastShown(v *string) *DailyFlagUpdateOne {
	if v != nil {
		_u.SetLastShown(*v)
	}
	return _u
}

// SetDeclinedUntil sets the "declined_until" field.
func (_u *DailyFlagUpdateOne) SetDeclinedUntil(v time.Time) *DailyFlagUpdateOne {
	_u.mutation.SetDeclinedUntil(v)
	return _u
}

// SetNillableDeclinedUntil sets the "declined_until" field if the given value is not nil.
func (_u *DailyFlagUpdateOne) SetNillableDeclinedUntil(v *time.Time) *DailyFlagUpdateOne {
	if v != nil {
		_u.SetDeclinedUntil(*v)
	}
	return _u
}

// ClearDeclinedUntil clears the value of the "declined_until" field.
func (_u *DailyFlagUpdateOne) ClearDeclinedUntil() *DailyFlagUpdateOne {
	_u.mutation.ClearDeclinedUntil()
	return _u
}

// SetCompletedDay sets the "completed_day" field.
func (_u *DailyFlagUpdateOne) SetCompletedDay(v string) *DailyFlagUpdateOne {
	_u.mutation.SetCompletedDay(v)
	return _u
}

// SetNillableCompletedDay sets the "completed_day" field if the given value is not nil.
func (_u *DailyFlagUpdateOne) SetNillableCompletedDay(v *string) *DailyFlagUpdateOne {
	if v != nil {
		_u.SetCompletedDay(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DailyFlagUpdateOne) SetUpdatedAt(v time.Time) *DailyFlagUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DailyFlagMutation object of the builder.
func (_u *DailyFlagUpdateOne) Mutation() *DailyFlagMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyFlagUpdate builder.
func (_u *DailyFlagUpdateOne) Where(ps ...predicate.DailyFlag) *DailyFlagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyFlagUpdateOne) Select(field string, fields ...string) *DailyFlagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyFlag entity.
func (_u *DailyFlagUpdateOne) Save(ctx context.Context) (*DailyFlag, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyFlagUpdateOne) SaveX(ctx context.Context) *DailyFlag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyFlagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyFlagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyFlagUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dailyflag.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyFlagUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := dailyflag.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DailyFlag.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyFlagUpdateOne) sqlSave(ctx context.Context) (_node *DailyFlag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyflag.Table, dailyflag.Columns, sqlgraph.NewFieldSpec(dailyflag.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyFlag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailyflag.FieldID)
		for _, f := range fields {
			if !dailyflag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailyflag.FieldID {
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
		_spec.SetField(dailyflag.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastShown(); ok {
		_spec.SetField(dailyflag.FieldLastShown, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeclinedUntil(); ok {
		_spec.SetField(dailyflag.FieldDeclinedUntil, field.TypeTime, value)
	}
	if _u.mutation.DeclinedUntilCleared() {
		_spec.ClearField(dailyflag.FieldDeclinedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedDay(); ok {
		_spec.SetField(dailyflag.FieldCompletedDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dailyflag.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DailyFlag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyflag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
