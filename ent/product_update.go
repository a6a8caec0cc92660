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
	"github.com/pricewatch/pricewatch/ent/predicate"
	"github.com/pricewatch/pricewatch/ent/product"
)

// ProductUpdate is the builder for updating Product entities.
type ProductUpdate struct {
	config
	hooks    []Hook
	mutation *ProductMutation
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdate) Where(ps ...predicate.Product) *ProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompetitorName sets the "competitor_name" field.
func (_u *ProductUpdate) SetCompetitorName(v string) *ProductUpdate {
	_u.mutation.SetCompetitorName(v)
	return _u
}

// SetNillableCompetitorName sets the "competitor_name" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCompetitorName(v *string) *ProductUpdate {
	if v != nil {
		_u.SetCompetitorName(*v)
	}
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *ProductUpdate) SetProductName(v string) *ProductUpdate {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableProductName(v *string) *ProductUpdate {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// SetProductURL sets the "product_url" field.
func (_u *ProductUpdate) SetProductURL(v string) *ProductUpdate {
	_u.mutation.SetProductURL(v)
	return _u
}

// SetNillableProductURL sets the "product_url" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableProductURL(v *string) *ProductUpdate {
	if v != nil {
		_u.SetProductURL(*v)
	}
	return _u
}

// ClearProductURL clears the value of the "product_url" field.
func (_u *ProductUpdate) ClearProductURL() *ProductUpdate {
	_u.mutation.ClearProductURL()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProductUpdate) SetPrice(v float64) *ProductUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProductUpdate) SetNillablePrice(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProductUpdate) AddPrice(v float64) *ProductUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetOriginalPrice sets the "original_price" field.
func (_u *ProductUpdate) SetOriginalPrice(v float64) *ProductUpdate {
	_u.mutation.ResetOriginalPrice()
	_u.mutation.SetOriginalPrice(v)
	return _u
}

// SetNillableOriginalPrice sets the "original_price" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableOriginalPrice(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetOriginalPrice(*v)
	}
	return _u
}

// AddOriginalPrice adds value to the "original_price" field.
func (_u *ProductUpdate) AddOriginalPrice(v float64) *ProductUpdate {
	_u.mutation.AddOriginalPrice(v)
	return _u
}

// ClearOriginalPrice clears the value of the "original_price" field.
func (_u *ProductUpdate) ClearOriginalPrice() *ProductUpdate {
	_u.mutation.ClearOriginalPrice()
	return _u
}

// SetDiscount sets the "discount" field.
func (_u *ProductUpdate) SetDiscount(v float64) *ProductUpdate {
	_u.mutation.ResetDiscount()
	_u.mutation.SetDiscount(v)
	return _u
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableDiscount(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetDiscount(*v)
	}
	return _u
}

// AddDiscount adds value to the "discount" field.
func (_u *ProductUpdate) AddDiscount(v float64) *ProductUpdate {
	_u.mutation.AddDiscount(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProductUpdate) SetCategory(v string) *ProductUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCategory(v *string) *ProductUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ProductUpdate) ClearCategory() *ProductUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubCategory sets the "sub_category" field.
func (_u *ProductUpdate) SetSubCategory(v string) *ProductUpdate {
	_u.mutation.SetSubCategory(v)
	return _u
}

// SetNillableSubCategory sets the "sub_category" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSubCategory(v *string) *ProductUpdate {
	if v != nil {
		_u.SetSubCategory(*v)
	}
	return _u
}

// ClearSubCategory clears the value of the "sub_category" field.
func (_u *ProductUpdate) ClearSubCategory() *ProductUpdate {
	_u.mutation.ClearSubCategory()
	return _u
}

// SetStockStatus sets the "stock_status" field.
func (_u *ProductUpdate) SetStockStatus(v string) *ProductUpdate {
	_u.mutation.SetStockStatus(v)
	return _u
}

// SetNillableStockStatus sets the "stock_status" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableStockStatus(v *string) *ProductUpdate {
	if v != nil {
		_u.SetStockStatus(*v)
	}
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *ProductUpdate) SetLastUpdatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdate) Mutation() *ProductMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdatedAt(); !ok {
		v := product.UpdateDefaultLastUpdatedAt()
		_u.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdate) check() error {
	if v, ok := _u.mutation.CompetitorName(); ok {
		if err := product.CompetitorNameValidator(v); err != nil {
			return &ValidationError{Name: "competitor_name", err: fmt.Errorf(`ent: validator failed for field "Product.competitor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProductName(); ok {
		if err := product.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "Product.product_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := product.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Product.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := product.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Product.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubCategory(); ok {
		if err := product.SubCategoryValidator(v); err != nil {
			return &ValidationError{Name: "sub_category", err: fmt.Errorf(`ent: validator failed for field "Product.sub_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StockStatus(); ok {
		if err := product.StockStatusValidator(v); err != nil {
			return &ValidationError{Name: "stock_status", err: fmt.Errorf(`ent: validator failed for field "Product.stock_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompetitorName(); ok {
		_spec.SetField(product.FieldCompetitorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(product.FieldProductName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductURL(); ok {
		_spec.SetField(product.FieldProductURL, field.TypeString, value)
	}
	if _u.mutation.ProductURLCleared() {
		_spec.ClearField(product.FieldProductURL, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OriginalPrice(); ok {
		_spec.SetField(product.FieldOriginalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOriginalPrice(); ok {
		_spec.AddField(product.FieldOriginalPrice, field.TypeFloat64, value)
	}
	if _u.mutation.OriginalPriceCleared() {
		_spec.ClearField(product.FieldOriginalPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Discount(); ok {
		_spec.SetField(product.FieldDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscount(); ok {
		_spec.AddField(product.FieldDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(product.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(product.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SubCategory(); ok {
		_spec.SetField(product.FieldSubCategory, field.TypeString, value)
	}
	if _u.mutation.SubCategoryCleared() {
		_spec.ClearField(product.FieldSubCategory, field.TypeString)
	}
	if value, ok := _u.mutation.StockStatus(); ok {
		_spec.SetField(product.FieldStockStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(product.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductUpdateOne is the builder for updating a single Product entity.
type ProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductMutation
}

// SetCompetitorName sets the "competitor_name" field.
func (_u *ProductUpdateOne) SetCompetitorName(v string) *ProductUpdateOne {
	_u.mutation.SetCompetitorName(v)
	return _u
}

// SetNillableCompetitorName sets the "competitor_name" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCompetitorName(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetCompetitorName(*v)
	}
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *ProductUpdateOne) SetProductName(v string) *ProductUpdateOne {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableProductName(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// SetProductURL sets the "product_url" field.
func (_u *ProductUpdateOne) SetProductURL(v string) *ProductUpdateOne {
	_u.mutation.SetProductURL(v)
	return _u
}

// SetNillableProductURL sets the "product_url" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableProductURL(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetProductURL(*v)
	}
	return _u
}

// ClearProductURL clears the value of the "product_url" field.
func (_u *ProductUpdateOne) ClearProductURL() *ProductUpdateOne {
	_u.mutation.ClearProductURL()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProductUpdateOne) SetPrice(v float64) *ProductUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillablePrice(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProductUpdateOne) AddPrice(v float64) *ProductUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetOriginalPrice sets the "original_price" field.
func (_u *ProductUpdateOne) SetOriginalPrice(v float64) *ProductUpdateOne {
	_u.mutation.ResetOriginalPrice()
	_u.mutation.SetOriginalPrice(v)
	return _u
}

// SetNillableOriginalPrice sets the "original_price" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableOriginalPrice(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetOriginalPrice(*v)
	}
	return _u
}

// AddOriginalPrice adds value to the "original_price" field.
func (_u *ProductUpdateOne) AddOriginalPrice(v float64) *ProductUpdateOne {
	_u.mutation.AddOriginalPrice(v)
	return _u
}

// ClearOriginalPrice clears the value of the "original_price" field.
func (_u *ProductUpdateOne) ClearOriginalPrice() *ProductUpdateOne {
	_u.mutation.ClearOriginalPrice()
	return _u
}

// SetDiscount sets the "discount" field.
func (_u *ProductUpdateOne) SetDiscount(v float64) *ProductUpdateOne {
	_u.mutation.ResetDiscount()
	_u.mutation.SetDiscount(v)
	return _u
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableDiscount(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetDiscount(*v)
	}
	return _u
}

// AddDiscount adds value to the "discount" field.
func (_u *ProductUpdateOne) AddDiscount(v float64) *ProductUpdateOne {
	_u.mutation.AddDiscount(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProductUpdateOne) SetCategory(v string) *ProductUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCategory(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ProductUpdateOne) ClearCategory() *ProductUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubCategory sets the "sub_category" field.
func (_u *ProductUpdateOne) SetSubCategory(v string) *ProductUpdateOne {
	_u.mutation.SetSubCategory(v)
	return _u
}

// SetNillableSubCategory sets the "sub_category" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSubCategory(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetSubCategory(*v)
	}
	return _u
}

// ClearSubCategory clears the value of the "sub_category" field.
func (_u *ProductUpdateOne) ClearSubCategory() *ProductUpdateOne {
	_u.mutation.ClearSubCategory()
	return _u
}

// SetStockStatus sets the "stock_status" field.
func (_u *ProductUpdateOne) SetStockStatus(v string) *ProductUpdateOne {
	_u.mutation.SetStockStatus(v)
	return _u
}

// SetNillableStockStatus sets the "stock_status" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableStockStatus(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetStockStatus(*v)
	}
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *ProductUpdateOne) SetLastUpdatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdateOne) Mutation() *ProductMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdateOne) Where(ps ...predicate.Product) *ProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductUpdateOne) Select(field string, fields ...string) *ProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Product entity.
func (_u *ProductUpdateOne) Save(ctx context.Context) (*Product, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdateOne) SaveX(ctx context.Context) *Product {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdatedAt(); !ok {
		v := product.UpdateDefaultLastUpdatedAt()
		_u.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdateOne) check() error {
	if v, ok := _u.mutation.CompetitorName(); ok {
		if err := product.CompetitorNameValidator(v); err != nil {
			return &ValidationError{Name: "competitor_name", err: fmt.Errorf(`ent: validator failed for field "Product.competitor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProductName(); ok {
		if err := product.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "Product.product_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := product.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Product.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := product.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Product.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubCategory(); ok {
		if err := product.SubCategoryValidator(v); err != nil {
			return &ValidationError{Name: "sub_category", err: fmt.Errorf(`ent: validator failed for field "Product.sub_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StockStatus(); ok {
		if err := product.StockStatusValidator(v); err != nil {
			return &ValidationError{Name: "stock_status", err: fmt.Errorf(`ent: validator failed for field "Product.stock_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductUpdateOne) sqlSave(ctx context.Context) (_node *Product, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Product.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, product.FieldID)
		for _, f := range fields {
			if !product.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != product.FieldID {
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
	if value, ok := _u.mutation.CompetitorName(); ok {
		_spec.SetField(product.FieldCompetitorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(product.FieldProductName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductURL(); ok {
		_spec.SetField(product.FieldProductURL, field.TypeString, value)
	}
	if _u.mutation.ProductURLCleared() {
		_spec.ClearField(product.FieldProductURL, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OriginalPrice(); ok {
		_spec.SetField(product.FieldOriginalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOriginalPrice(); ok {
		_spec.AddField(product.FieldOriginalPrice, field.TypeFloat64, value)
	}
	if _u.mutation.OriginalPriceCleared() {
		_spec.ClearField(product.FieldOriginalPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Discount(); ok {
		_spec.SetField(product.FieldDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscount(); ok {
		_spec.AddField(product.FieldDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(product.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(product.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SubCategory(); ok {
		_spec.SetField(product.FieldSubCategory, field.TypeString, value)
	}
	if _u.mutation.SubCategoryCleared() {
		_spec.ClearField(product.FieldSubCategory, field.TypeString)
	}
	if value, ok := _u.mutation.StockStatus(); ok {
		_spec.SetField(product.FieldStockStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(product.FieldLastUpdatedAt, field.TypeTime, value)
	}
	_node = &Product{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
