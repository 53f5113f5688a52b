// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/naghz/naghz/ent/heartledger"
)

// HeartLedgerCreate is the builder for creating a HeartLedger entity.
type HeartLedgerCreate struct {
	config
	mutation *HeartLedgerMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *HeartLedgerCreate) SetUserID(v string) *HeartLedgerCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetHearts sets the "hearts" field.
func (_c *HeartLedgerCreate) SetHearts(v int) *HeartLedgerCreate {
	_c.mutation.SetHearts(v)
	return _c
}

// SetNillableHearts sets the "hearts" field if the given value is not nil.
func (_c *HeartLedgerCreate) SetNillableHearts(v *int) *HeartLedgerCreate {
	if v != nil {
		_c.SetHearts(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HeartLedgerCreate) SetUpdatedAt(v time.Time) *HeartLedgerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HeartLedgerCreate) SetNillableUpdatedAt(v *time.Time) *HeartLedgerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the HeartLedgerMutation object of the builder.
func (_c *HeartLedgerCreate) Mutation() *HeartLedgerMutation {
	return _c.mutation
}

// Save creates the HeartLedger in the database.
func (_c *HeartLedgerCreate) Save(ctx context.Context) (*HeartLedger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HeartLedgerCreate) SaveX(ctx context.Context) *HeartLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeartLedgerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeartLedgerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HeartLedgerCreate) defaults() {
	if _, ok := _c.mutation.Hearts(); !ok {
		v := heartledger.DefaultHearts
		_c.mutation.SetHearts(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := heartledger.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HeartLedgerCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "HeartLedger.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := heartledger.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "HeartLedger.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hearts(); !ok {
		return &ValidationError{Name: "hearts", err: errors.New(`ent: missing required field "HeartLedger.hearts"`)}
	}
	if v, ok := _c.mutation.Hearts(); ok {
		if err := heartledger.HeartsValidator(v); err != nil {
			return &ValidationError{Name: "hearts", err: fmt.Errorf(`ent: validator failed for field "HeartLedger.hearts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HeartLedger.updated_at"`)}
	}
	return nil
}

func (_c *HeartLedgerCreate) sqlSave(ctx context.Context) (*HeartLedger, error) {
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

func (_c *HeartLedgerCreate) createSpec() (*HeartLedger, *sqlgraph.CreateSpec) {
	var (
		_node = &HeartLedger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(heartledger.Table, sqlgraph.NewFieldSpec(heartledger.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(heartledger.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Hearts(); ok {
		_spec.SetField(heartledger.FieldHearts, field.TypeInt, value)
		_node.Hearts = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(heartledger.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// HeartLedgerCreateBulk is the builder for creating many HeartLedger entities in bulk.
type HeartLedgerCreateBulk struct {
	config
	err      error
	builders []*HeartLedgerCreate
}

// Save creates the HeartLedger entities in the database.
func (_c *HeartLedgerCreateBulk) Save(ctx context.Context) ([]*HeartLedger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HeartLedger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HeartLedgerMutation)
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
func (_c *HeartLedgerCreateBulk) SaveX(ctx context.Context) []*HeartLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeartLedgerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeartLedgerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
