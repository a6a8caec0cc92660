// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pricewatch/pricewatch/ent/product"
)

// ProductCreate is the builder for creating a Product entity.
type ProductCreate struct {
	config
	mutation *ProductMutation
	hooks    []Hook
}

// SetCompetitorName sets the "competitor_name" field.
func (_c *ProductCreate) SetCompetitorName(v string) *ProductCreate {
	_c.mutation.SetCompetitorName(v)
	return _c
}

// SetProductName sets the "product_name" field.
func (_c *ProductCreate) SetProductName(v string) *ProductCreate {
	_c.mutation.SetProductName(v)
	return _c
}

// SetProductURL sets the "product_url" field.
func (_c *ProductCreate) SetProductURL(v string) *ProductCreate {
	_c.mutation.SetProductURL(v)
	return _c
}

// SetNillableProductURL sets the "product_url" field if the given value is not nil.
func (_c *ProductCreate) SetNillableProductURL(v *string) *ProductCreate {
	if v != nil {
		_c.SetProductURL(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *ProductCreate) SetPrice(v float64) *ProductCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetOriginalPrice sets the "original_price" field.
func (_c *ProductCreate) SetOriginalPrice(v float64) *ProductCreate {
	_c.mutation.SetOriginalPrice(v)
	return _c
}

// SetNillableOriginalPrice sets the "original_price" field if the given value is not nil.
func (_c *ProductCreate) SetNillableOriginalPrice(v *float64) *ProductCreate {
	if v != nil {
		_c.SetOriginalPrice(*v)
	}
	return _c
}

// SetDiscount sets the "discount" field.
func (_c *ProductCreate) SetDiscount(v float64) *ProductCreate {
	_c.mutation.SetDiscount(v)
	return _c
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_c *ProductCreate) SetNillableDiscount(v *float64) *ProductCreate {
	if v != nil {
		_c.SetDiscount(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ProductCreate) SetCategory(v string) *ProductCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ProductCreate) SetNillableCategory(v *string) *ProductCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSubCategory sets the "sub_category" field.
func (_c *ProductCreate) SetSubCategory(v string) *ProductCreate {
	_c.mutation.SetSubCategory(v)
	return _c
}

// SetNillableSubCategory sets the "sub_category" field if the given value is not nil.
func (_c *ProductCreate) SetNillableSubCategory(v *string) *ProductCreate {
	if v != nil {
		_c.SetSubCategory(*v)
	}
	return _c
}

// SetStockStatus sets the "stock_status" field.
func (_c *ProductCreate) SetStockStatus(v string) *ProductCreate {
	_c.mutation.SetStockStatus(v)
	return _c
}

// SetNillableStockStatus sets the "stock_status" field if the given value is not nil.
func (_c *ProductCreate) SetNillableStockStatus(v *string) *ProductCreate {
	if v != nil {
		_c.SetStockStatus(*v)
	}
	return _c
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_c *ProductCreate) SetLastUpdatedAt(v time.Time) *ProductCreate {
	_c.mutation.SetLastUpdatedAt(v)
	return _c
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_c *ProductCreate) SetNillableLastUpdatedAt(v *time.Time) *ProductCreate {
	if v != nil {
		_c.SetLastUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProductMutation object of the builder.
func (_c *ProductCreate) Mutation() *ProductMutation {
	return _c.mutation
}

// Save creates the Product in the database.
func (_c *ProductCreate) Save(ctx context.Context) (*Product, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductCreate) SaveX(ctx context.Context) *Product {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductCreate) defaults() {
	if _, ok := _c.mutation.Discount(); !ok {
		v := product.DefaultDiscount
		_c.mutation.SetDiscount(v)
	}
	if _, ok := _c.mutation.StockStatus(); !ok {
		v := product.DefaultStockStatus
		_c.mutation.SetStockStatus(v)
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		v := product.DefaultLastUpdatedAt()
		_c.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductCreate) check() error {
	if _, ok := _c.mutation.CompetitorName(); !ok {
		return &ValidationError{Name: "competitor_name", err: errors.New(`ent: missing required field "Product.competitor_name"`)}
	}
	if v, ok := _c.mutation.CompetitorName(); ok {
		if err := product.CompetitorNameValidator(v); err != nil {
			return &ValidationError{Name: "competitor_name", err: fmt.Errorf(`ent: validator failed for field "Product.competitor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProductName(); !ok {
		return &ValidationError{Name: "product_name", err: errors.New(`ent: missing required field "Product.product_name"`)}
	}
	if v, ok := _c.mutation.ProductName(); ok {
		if err := product.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "Product.product_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Product.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := product.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Product.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Discount(); !ok {
		return &ValidationError{Name: "discount", err: errors.New(`ent: missing required field "Product.discount"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := product.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Product.category": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SubCategory(); ok {
		if err := product.SubCategoryValidator(v); err != nil {
			return &ValidationError{Name: "sub_category", err: fmt.Errorf(`ent: validator failed for field "Product.sub_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StockStatus(); !ok {
		return &ValidationError{Name: "stock_status", err: errors.New(`ent: missing required field "Product.stock_status"`)}
	}
	if v, ok := _c.mutation.StockStatus(); ok {
		if err := product.StockStatusValidator(v); err != nil {
			return &ValidationError{Name: "stock_status", err: fmt.Errorf(`ent: validator failed for field "Product.stock_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		return &ValidationError{Name: "last_updated_at", err: errors.New(`ent: missing required field "Product.last_updated_at"`)}
	}
	return nil
}

func (_c *ProductCreate) sqlSave(ctx context.Context) (*Product, error) {
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

func (_c *ProductCreate) createSpec() (*Product, *sqlgraph.CreateSpec) {
	var (
		_node = &Product{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(product.Table, sqlgraph.NewFieldSpec(product.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CompetitorName(); ok {
		_spec.SetField(product.FieldCompetitorName, field.TypeString, value)
		_node.CompetitorName = value
	}
	if value, ok := _c.mutation.ProductName(); ok {
		_spec.SetField(product.FieldProductName, field.TypeString, value)
		_node.ProductName = value
	}
	if value, ok := _c.mutation.ProductURL(); ok {
		_spec.SetField(product.FieldProductURL, field.TypeString, value)
		_node.ProductURL = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.OriginalPrice(); ok {
		_spec.SetField(product.FieldOriginalPrice, field.TypeFloat64, value)
		_node.OriginalPrice = &value
	}
	if value, ok := _c.mutation.Discount(); ok {
		_spec.SetField(product.FieldDiscount, field.TypeFloat64, value)
		_node.Discount = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(product.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.SubCategory(); ok {
		_spec.SetField(product.FieldSubCategory, field.TypeString, value)
		_node.SubCategory = value
	}
	if value, ok := _c.mutation.StockStatus(); ok {
		_spec.SetField(product.FieldStockStatus, field.TypeString, value)
		_node.StockStatus = value
	}
	if value, ok := _c.mutation.LastUpdatedAt(); ok {
		_spec.SetField(product.FieldLastUpdatedAt, field.TypeTime, value)
		_node.LastUpdatedAt = value
	}
	return _node, _spec
}

// ProductCreateBulk is the builder for creating many Product entities in bulk.
type ProductCreateBulk struct {
	config
	err      error
	builders []*ProductCreate
}

// Save creates the Product entities in the database.
func (_c *ProductCreateBulk) Save(ctx context.Context) ([]*Product, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Product, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductMutation)
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
func (_c *ProductCreateBulk) SaveX(ctx context.Context) []*Product {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
