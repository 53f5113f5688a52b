// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/naghz/naghz/ent/pageoption"
)

// PageOptionCreate is the builder for creating a PageOption entity.
type PageOptionCreate struct {
	config
	mutation *PageOptionMutation
	hooks    []Hook
}

// SetPageID sets the "page_id" field.
func (_c *PageOptionCreate) SetPageID(v string) *PageOptionCreate {
	_c.mutation.SetPageID(v)
	return _c
}

// SetOptionID sets the "option_id" field.
func (_c *PageOptionCreate) SetOptionID(v int) *PageOptionCreate {
	_c.mutation.SetOptionID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *PageOptionCreate) SetText(v string) *PageOptionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetOptionOrder sets the "option_order" field.
func (_c *PageOptionCreate) SetOptionOrder(v int) *PageOptionCreate {
	_c.mutation.SetOptionOrder(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *PageOptionCreate) SetCorrect(v bool) *PageOptionCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *PageOptionCreate) SetNillableCorrect(v *bool) *PageOptionCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetIcon sets the "icon" field.
func (_c *PageOptionCreate) SetIcon(v string) *PageOptionCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_c *PageOptionCreate) SetNillableIcon(v *string) *PageOptionCreate {
	if v != nil {
		_c.SetIcon(*v)
	}
	return _c
}

// Mutation returns the PageOptionMutation object of the builder.
func (_c *PageOptionCreate) Mutation() *PageOptionMutation {
	return _c.mutation
}

// Save creates the PageOption in the database.
func (_c *PageOptionCreate) Save(ctx context.Context) (*PageOption, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PageOptionCreate) SaveX(ctx context.Context) *PageOption {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageOptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageOptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PageOptionCreate) defaults() {
	if _, ok := _c.mutation.Correct(); !ok {
		v := pageoption.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Icon(); !ok {
		v := pageoption.DefaultIcon
		_c.mutation.SetIcon(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PageOptionCreate) check() error {
	if _, ok := _c.mutation.PageID(); !ok {
		return &ValidationError{Name: "page_id", err: errors.New(`ent: missing required field "PageOption.page_id"`)}
	}
	if v, ok := _c.mutation.PageID(); ok {
		if err := pageoption.PageIDValidator(v); err != nil {
			return &ValidationError{Name: "page_id", err: fmt.Errorf(`ent: validator failed for field "PageOption.page_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionID(); !ok {
		return &ValidationError{Name: "option_id", err: errors.New(`ent: missing required field "PageOption.option_id"`)}
	}
	if v, ok := _c.mutation.OptionID(); ok {
		if err := pageoption.OptionIDValidator(v); err != nil {
			return &ValidationError{Name: "option_id", err: fmt.Errorf(`ent: validator failed for field "PageOption.option_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "PageOption.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := pageoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "PageOption.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionOrder(); !ok {
		return &ValidationError{Name: "option_order", err: errors.New(`ent: missing required field "PageOption.option_order"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "PageOption.correct"`)}
	}
	if _, ok := _c.mutation.Icon(); !ok {
		return &ValidationError{Name: "icon", err: errors.New(`ent: missing required field "PageOption.icon"`)}
	}
	return nil
}

func (_c *PageOptionCreate) sqlSave(ctx context.Context) (*PageOption, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PageOptionCreate) createSpec() (*PageOption, *sqlgraph.CreateSpec) {
	var (
		_node = &PageOption{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pageoption.Table, sqlgraph.NewFieldSpec(pageoption.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PageID(); ok {
		_spec.SetField(pageoption.FieldPageID, field.TypeString, value)
		_node.PageID = value
	}
	if value, ok := _c.mutation.OptionID(); ok {
		_spec.SetField(pageoption.FieldOptionID, field.TypeInt, value)
		_node.OptionID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(pageoption.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.OptionOrder(); ok {
		_spec.SetField(pageoption.FieldOptionOrder, field.TypeInt, value)
		_node.OptionOrder = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(pageoption.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(pageoption.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	return _node, _spec
}

// PageOptionCreateBulk is the builder for creating many PageOption entities in bulk.
type PageOptionCreateBulk struct {
	config
	err      error
	builders []*PageOptionCreate
}

// Save creates the PageOption entities in the database.
func (_c *PageOptionCreateBulk) Save(ctx context.Context) ([]*PageOption, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PageOption, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PageOptionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PageOptionCreateBulk) SaveX(ctx context.Context) []*PageOption {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageOptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageOptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
