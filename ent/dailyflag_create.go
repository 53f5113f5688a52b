// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/naghz/naghz/ent/dailyflag"
)

// DailyFlagCreate is the builder for creating a DailyFlag entity.
type DailyFlagCreate struct {
	config
	mutation *DailyFlagMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DailyFlagCreate) SetUserID(v string) *DailyFlagCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLastShown sets the "last_shown" field.
func (_c *DailyFlagCreate) SetLastShown(v string) *DailyFlagCreate {
	_c.mutation.SetLastShown(v)
	return _c
}

// SetNillableLastShown sets the "last_shown" field if the given value is not nil.
func (_c *DailyFlagCreate) SetNillableLastShown(v *string) *DailyFlagCreate {
	if v != nil {
		_c.SetLastShown(*v)
	}
	return _c
}

// SetDeclinedUntil sets the "declined_until" field.
func (_c *DailyFlagCreate) SetDeclinedUntil(v time.Time) *DailyFlagCreate {
	_c.mutation.SetDeclinedUntil(v)
	return _c
}

// SetNillableDeclinedUntil sets the "declined_until" field if the given value is not nil.
func (_c *DailyFlagCreate) SetNillableDeclinedUntil(v *time.Time) *DailyFlagCreate {
	if v != nil {
		_c.SetDeclinedUntil(*v)
	}
	return _c
}

// SetCompletedDay sets the "completed_day" field.
func (_c *DailyFlagCreate) SetCompletedDay(v string) *DailyFlagCreate {
	_c.mutation.SetCompletedDay(v)
	return _c
}

// SetNillableCompletedDay sets the "completed_day" field if the given value is not nil.
func (_c *DailyFlagCreate) SetNillableCompletedDay(v *string) *DailyFlagCreate {
	if v != nil {
		_c.SetCompletedDay(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DailyFlagCreate) SetUpdatedAt(v time.Time) *DailyFlagCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DailyFlagCreate) SetNillableUpdatedAt(v *time.Time) *DailyFlagCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DailyFlagMutation object of the builder.
func (_c *DailyFlagCreate) Mutation() *DailyFlagMutation {
	return _c.mutation
}

// Save creates the DailyFlag in the database.
func (_c *DailyFlagCreate) Save(ctx context.Context) (*DailyFlag, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyFlagCreate) SaveX(ctx context.Context) *DailyFlag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyFlagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyFlagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyFlagCreate) defaults() {
	if _, ok := _c.mutation.LastShown(); !ok {
		v := dailyflag.DefaultLastShown
		_c.mutation.SetLastShown(v)
	}
	if _, ok := _c.mutation.CompletedDay(); !ok {
		v := dailyflag.DefaultCompletedDay
		_c.mutation.SetCompletedDay(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dailyflag.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyFlagCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DailyFlag.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := dailyflag.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DailyFlag.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastShown(); !ok {
		return &ValidationError{Name: "last_shown", err: errors.New(`ent: missing required field "DailyFlag.last_shown"`)}
	}
	if _, ok := _c.mutation.CompletedDay(); !ok {
		return &ValidationError{Name: "completed_day", err: errors.New(`ent: missing required field "DailyFlag.completed_day"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DailyFlag.updated_at"`)}
	}
	return nil
}

func (_c *DailyFlagCreate) sqlSave(ctx context.Context) (*DailyFlag, error) {
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

func (_c *DailyFlagCreate) createSpec() (*DailyFlag, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyFlag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailyflag.Table, sqlgraph.NewFieldSpec(dailyflag.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(dailyflag.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LastShown(); ok {
		_spec.SetField(dailyflag.FieldLastShown, field.TypeString, value)
		_node.LastShown = value
	}
	if value, ok := _c.mutation.DeclinedUntil(); ok {
		_spec.SetField(dailyflag.FieldDeclinedUntil, field.TypeTime, value)
		_node.DeclinedUntil = value
	}
	if value, ok := _c.mutation.CompletedDay(); ok {
		_spec.SetField(dailyflag.FieldCompletedDay, field.TypeString, value)
		_node.CompletedDay = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dailyflag.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DailyFlagCreateBulk is the builder for creating many DailyFlag entities in bulk.
type DailyFlagCreateBulk struct {
	config
	err      error
	builders []*DailyFlagCreate
}

// Save creates the DailyFlag entities in the database.
func (_c *DailyFlagCreateBulk) Save(ctx context.Context) ([]*DailyFlag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyFlag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyFlagMutation)
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
func (_c *DailyFlagCreateBulk) SaveX(ctx context.Context) []*DailyFlag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyFlagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyFlagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
