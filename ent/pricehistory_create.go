// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pricewatch/pricewatch/ent/pricehistory"
)

// PriceHistoryCreate is the builder for creating a PriceHistory entity.
type PriceHistoryCreate struct {
	config
	mutation *PriceHistoryMutation
	hooks    []Hook
}

// SetProductID sets the "product_id" field.
func (_c *PriceHistoryCreate) SetProductID(v int) *PriceHistoryCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *PriceHistoryCreate) SetPrice(v float64) *PriceHistoryCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetDiscount sets the "discount" field.
func (_c *PriceHistoryCreate) SetDiscount(v float64) *PriceHistoryCreate {
	_c.mutation.SetDiscount(v)
	return _c
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_c *PriceHistoryCreate) SetNillableDiscount(v *float64) *PriceHistoryCreate {
	if v != nil {
		_c.SetDiscount(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PriceHistoryCreate) SetTimestamp(v time.Time) *PriceHistoryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PriceHistoryCreate) SetNillableTimestamp(v *time.Time) *PriceHistoryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the PriceHistoryMutation object of the builder.
func (_c *PriceHistoryCreate) Mutation() *PriceHistoryMutation {
	return _c.mutation
}

// Save creates the PriceHistory in the database.
func (_c *PriceHistoryCreate) Save(ctx context.Context) (*PriceHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PriceHistoryCreate) SaveX(ctx context.Context) *PriceHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PriceHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PriceHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PriceHistoryCreate) defaults() {
	if _, ok := _c.mutation.Discount(); !ok {
		v := pricehistory.DefaultDiscount
		_c.mutation.SetDiscount(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pricehistory.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PriceHistoryCreate) check() error {
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "PriceHistory.product_id"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "PriceHistory.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := pricehistory.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "PriceHistory.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Discount(); !ok {
		return &ValidationError{Name: "discount", err: errors.New(`ent: missing required field "PriceHistory.discount"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PriceHistory.timestamp"`)}
	}
	return nil
}

func (_c *PriceHistoryCreate) sqlSave(ctx context.Context) (*PriceHistory, error) {
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

func (_c *PriceHistoryCreate) createSpec() (*PriceHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &PriceHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pricehistory.Table, sqlgraph.NewFieldSpec(pricehistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProductID(); ok {
		_spec.SetField(pricehistory.FieldProductID, field.TypeInt, value)
		_node.ProductID = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(pricehistory.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Discount(); ok {
		_spec.SetField(pricehistory.FieldDiscount, field.TypeFloat64, value)
		_node.Discount = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pricehistory.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// PriceHistoryCreateBulk is the builder for creating many PriceHistory entities in bulk.
type PriceHistoryCreateBulk struct {
	config
	err      error
	builders []*PriceHistoryCreate
}

// Save creates the PriceHistory entities in the database.
func (_c *PriceHistoryCreateBulk) Save(ctx context.Context) ([]*PriceHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PriceHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PriceHistoryMutation)
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
func (_c *PriceHistoryCreateBulk) SaveX(ctx context.Context) []*PriceHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PriceHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PriceHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
