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
	"github.com/naghz/naghz/ent/heartledger"
	"github.com/naghz/naghz/ent/predicate"
)

// HeartLedgerUpdate is the builder for updating HeartLedger entities.
type HeartLedgerUpdate struct {
	config
	hooks    []Hook
	mutation *HeartLedgerMutation
}

// Where appends a list predicates to the HeartLedgerUpdate builder.
func (_u *HeartLedgerUpdate) Where(ps ...predicate.HeartLedger) *HeartLedgerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *HeartLedgerUpdate) SetUserID(v string) *HeartLedgerUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *HeartLedgerUpdate) SetNillableUserID(v *string) *HeartLedgerUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetHearts sets the "hearts" field.
func (_u *HeartLedgerUpdate) SetHearts(v int) *HeartLedgerUpdate {
	_u.mutation.ResetHearts()
	_u.mutation.SetHearts(v)
	return _u
}

// SetNillableHearts sets the "hearts" field if the given value is not nil.
func (_u *HeartLedgerUpdate) SetNillableHearts(v *int) *HeartLedgerUpdate {
	if v != nil {
		_u.SetHearts(*v)
	}
	return _u
}

// AddHearts adds value to the "hearts" field.
func (_u *HeartLedgerUpdate) AddHearts(v int) *HeartLedgerUpdate {
	_u.mutation.AddHearts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HeartLedgerUpdate) SetUpdatedAt(v time.Time) *HeartLedgerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the HeartLedgerMutation object of the builder.
func (_u *HeartLedgerUpdate) Mutation() *HeartLedgerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HeartLedgerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeartLedgerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HeartLedgerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeartLedgerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HeartLedgerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := heartledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeartLedgerUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := heartledger.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "HeartLedger.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hearts(); ok {
		if err := heartledger.HeartsValidator(v); err != nil {
			return &ValidationError{Name: "hearts", err: fmt.Errorf(`ent: validator failed for field "HeartLedger.hearts": %w`, err)}
		}
	}
	return nil
}

func (_u *HeartLedgerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(heartledger.Table, heartledger.Columns, sqlgraph.NewFieldSpec(heartledger.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(heartledger.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hearts(); ok {
		_spec.SetField(heartledger.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHearts(); ok {
		_spec.AddField(heartledger.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(heartledger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{heartledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HeartLedgerUpdateOne is the builder for updating a single HeartLedger entity.
type HeartLedgerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HeartLedgerMutation
}

// SetUserID sets the "user_id" field.
func (_u *HeartLedgerUpdateOne) SetUserID(v string) *HeartLedgerUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *HeartLedgerUpdateOne) SetNillableUserID(v *string) *HeartLedgerUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetHearts sets the "hearts" field.
func (_u *HeartLedgerUpdateOne) SetHearts(v int) *HeartLedgerUpdateOne {
	_u.mutation.ResetHearts()
	_u.mutation.SetHearts(v)
	return _u
}

// SetNillableHearts sets the "hearts" field if the given value is not nil.
func (_u *HeartLedgerUpdateOne) SetNillableHearts(v *int) *HeartLedgerUpdateOne {
	if v != nil {
		_u.SetHearts(*v)
	}
	return _u
}

// AddHearts adds value to the "hearts" field.
func (_u *HeartLedgerUpdateOne) AddHearts(v int) *HeartLedgerUpdateOne {
	_u.mutation.AddHearts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HeartLedgerUpdateOne) SetUpdatedAt(v time.Time) *HeartLedgerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the HeartLedgerMutation object of the builder.
func (_u *HeartLedgerUpdateOne) Mutation() *HeartLedgerMutation {
	return _u.mutation
}

// Where appends a list predicates to the HeartLedgerUpdate builder.
func (_u *HeartLedgerUpdateOne) Where(ps ...predicate.HeartLedger) *HeartLedgerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HeartLedgerUpdateOne) Select(field string, fields ...string) *HeartLedgerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HeartLedger entity.
func (_u *HeartLedgerUpdateOne) Save(ctx context.Context) (*HeartLedger, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeartLedgerUpdateOne) SaveX(ctx context.Context) *HeartLedger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HeartLedgerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeartLedgerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HeartLedgerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := heartledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeartLedgerUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := heartledger.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "HeartLedger.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hearts(); ok {
		if err := heartledger.HeartsValidator(v); err != nil {
			return &ValidationError{Name: "hearts", err: fmt.Errorf(`ent: validator failed for field "HeartLedger.hearts": %w`, err)}
		}
	}
	return nil
}

func (_u *HeartLedgerUpdateOne) sqlSave(ctx context.Context) (_node *HeartLedger, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(heartledger.Table, heartledger.Columns, sqlgraph.NewFieldSpec(heartledger.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HeartLedger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, heartledger.FieldID)
		for _, f := range fields {
			if !heartledger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != heartledger.FieldID {
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
		_spec.SetField(heartledger.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hearts(); ok {
		_spec.SetField(heartledger.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHearts(); ok {
		_spec.AddField(heartledger.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(heartledger.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &HeartLedger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{heartledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
