// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/naghz/naghz/ent/pageoption"
	"github.com/naghz/naghz/ent/predicate"
)

// PageOptionUpdate is the builder for updating PageOption entities.
type PageOptionUpdate struct {
	config
	hooks    []Hook
	mutation *PageOptionMutation
}

// Where appends a list predicates to the PageOptionUpdate builder.
func (_u *PageOptionUpdate) Where(ps ...predicate.PageOption) *PageOptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *PageOptionUpdate) SetPageID(v string) *PageOptionUpdate {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *PageOptionUpdate) SetNillablePageID(v *string) *PageOptionUpdate {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetOptionID sets the "option_id" field.
func (_u *PageOptionUpdate) SetOptionID(v int) *PageOptionUpdate {
	_u.mutation.ResetOptionID()
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *PageOptionUpdate) SetNillableOptionID(v *int) *PageOptionUpdate {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// AddOptionID adds value to the "option_id" field.
func (_u *PageOptionUpdate) AddOptionID(v int) *PageOptionUpdate {
	_u.mutation.AddOptionID(v)
	return _u
}

// SetText sets the "text" field.
func (_u *PageOptionUpdate) SetText(v string) *PageOptionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *PageOptionUpdate) SetNillableText(v *string) *PageOptionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetOptionOrder sets the "option_order" field.
func (_u *PageOptionUpdate) SetOptionOrder(v int) *PageOptionUpdate {
	_u.mutation.ResetOptionOrder()
	_u.mutation.SetOptionOrder(v)
	return _u
}

// SetNillableOptionOrder sets the "option_order" field if the given value is not nil.
func (_u *PageOptionUpdate) SetNillableOptionOrder(v *int) *PageOptionUpdate {
	if v != nil {
		_u.SetOptionOrder(*v)
	}
	return _u
}

// AddOptionOrder adds value to the "option_order" field.
func (_u *PageOptionUpdate) AddOptionOrder(v int) *PageOptionUpdate {
	_u.mutation.AddOptionOrder(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PageOptionUpdate) SetCorrect(v bool) *PageOptionUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PageOptionUpdate) SetNillableCorrect(v *bool) *PageOptionUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *PageOptionUpdate) SetIcon(v string) *PageOptionUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *PageOptionUpdate) SetNillableIcon(v *string) *PageOptionUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// Mutation returns the PageOptionMutation object of the builder.
func (_u *PageOptionUpdate) Mutation() *PageOptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PageOptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageOptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PageOptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageOptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageOptionUpdate) check() error {
	if v, ok := _u.mutation.PageID(); ok {
		if err := pageoption.PageIDValidator(v); err != nil {
			return &ValidationError{Name: "page_id", err: fmt.Errorf(`ent: validator failed for field "PageOption.page_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionID(); ok {
		if err := pageoption.OptionIDValidator(v); err != nil {
			return &ValidationError{Name: "option_id", err: fmt.Errorf(`ent: validator failed for field "PageOption.option_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := pageoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "PageOption.text": %w`, err)}
		}
	}
	return nil
}

func (_u *PageOptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pageoption.Table, pageoption.Columns, sqlgraph.NewFieldSpec(pageoption.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageID(); ok {
		_spec.SetField(pageoption.FieldPageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionID(); ok {
		_spec.SetField(pageoption.FieldOptionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOptionID(); ok {
		_spec.AddField(pageoption.FieldOptionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(pageoption.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionOrder(); ok {
		_spec.SetField(pageoption.FieldOptionOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOptionOrder(); ok {
		_spec.AddField(pageoption.FieldOptionOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(pageoption.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(pageoption.FieldIcon, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageoption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PageOptionUpdateOne is the builder for updating a single PageOption entity.
type PageOptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageOptionMutation
}

// SetPageID sets the "page_id" field.
func (_u *PageOptionUpdateOne) SetPageID(v string) *PageOptionUpdateOne {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *PageOptionUpdateOne) SetNillablePageID(v *string) *PageOptionUpdateOne {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetOptionID sets the "option_id" field.
func (_u *PageOptionUpdateOne) SetOptionID(v int) *PageOptionUpdateOne {
	_u.mutation.ResetOptionID()
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *PageOptionUpdateOne) SetNillableOptionID(v *int) *PageOptionUpdateOne {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// AddOptionID adds value to the "option_id" field.
func (_u *PageOptionUpdateOne) AddOptionID(v int) *PageOptionUpdateOne {
	_u.mutation.AddOptionID(v)
	return _u
}

// SetText sets the "text" field.
func (_u *PageOptionUpdateOne) SetText(v string) *PageOptionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *PageOptionUpdateOne) SetNillableText(v *string) *PageOptionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetOptionOrder sets the "option_order" field.
func (_u *PageOptionUpdateOne) SetOptionOrder(v int) *PageOptionUpdateOne {
	_u.mutation.ResetOptionOrder()
	_u.mutation.SetOptionOrder(v)
	return _u
}

// SetNillableOptionOrder sets the "option_order" field if the given value is not nil.
func (_u *PageOptionUpdateOne) SetNillableOptionOrder(v *int) *PageOptionUpdateOne {
	if v != nil {
		_u.SetOptionOrder(*v)
	}
	return _u
}

// AddOptionOrder adds value to the "option_order" field.
func (_u *PageOptionUpdateOne) AddOptionOrder(v int) *PageOptionUpdateOne {
	_u.mutation.AddOptionOrder(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PageOptionUpdateOne) SetCorrect(v bool) *PageOptionUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PageOptionUpdateOne) SetNillableCorrect(v *bool) *PageOptionUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *PageOptionUpdateOne) SetIcon(v string) *PageOptionUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *PageOptionUpdateOne) SetNillableIcon(v *string) *PageOptionUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// Mutation returns the PageOptionMutation object of the builder.
func (_u *PageOptionUpdateOne) Mutation() *PageOptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PageOptionUpdate builder.
func (_u *PageOptionUpdateOne) Where(ps ...predicate.PageOption) *PageOptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PageOptionUpdateOne) Select(field string, fields ...string) *PageOptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PageOption entity.
func (_u *PageOptionUpdateOne) Save(ctx context.Context) (*PageOption, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageOptionUpdateOne) SaveX(ctx context.Context) *PageOption {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PageOptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageOptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageOptionUpdateOne) check() error {
	if v, ok := _u.mutation.PageID(); ok {
		if err := pageoption.PageIDValidator(v); err != nil {
			return &ValidationError{Name: "page_id", err: fmt.Errorf(`ent: validator failed for field "PageOption.page_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionID(); ok {
		if err := pageoption.OptionIDValidator(v); err != nil {
			return &ValidationError{Name: "option_id", err: fmt.Errorf(`ent: validator failed for field "PageOption.option_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := pageoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "PageOption.text": %w`, err)}
		}
	}
	return nil
}

func (_u *PageOptionUpdateOne) sqlSave(ctx context.Context) (_node *PageOption, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pageoption.Table, pageoption.Columns, sqlgraph.NewFieldSpec(pageoption.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PageOption.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pageoption.FieldID)
		for _, f := range fields {
			if !pageoption.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pageoption.FieldID {
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
		_spec.SetField(pageoption.FieldPageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionID(); ok {
		_spec.SetField(pageoption.FieldOptionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOptionID(); ok {
		_spec.AddField(pageoption.FieldOptionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(pageoption.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionOrder(); ok {
		_spec.SetField(pageoption.FieldOptionOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOptionOrder(); ok {
		_spec.AddField(pageoption.FieldOptionOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(pageoption.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(pageoption.FieldIcon, field.TypeString, value)
	}
	_node = &PageOption{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageoption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
