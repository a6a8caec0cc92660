// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pricewatch/pricewatch/ent/competitor"
	"github.com/pricewatch/pricewatch/ent/predicate"
)

// CompetitorUpdate is the builder for updating Competitor entities.
type CompetitorUpdate struct {
	config
	hooks    []Hook
	mutation *CompetitorMutation
}

// Where appends a list predicates to the CompetitorUpdate builder.
func (_u *CompetitorUpdate) Where(ps ...predicate.Competitor) *CompetitorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CompetitorUpdate) SetName(v string) *CompetitorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableName(v *string) *CompetitorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CompetitorUpdate) SetCategory(v string) *CompetitorUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableCategory(v *string) *CompetitorUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *CompetitorUpdate) ClearCategory() *CompetitorUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *CompetitorUpdate) SetWebsite(v string) *CompetitorUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableWebsite(v *string) *CompetitorUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *CompetitorUpdate) ClearWebsite() *CompetitorUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// Mutation returns the CompetitorMutation object of the builder.
func (_u *CompetitorUpdate) Mutation() *CompetitorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompetitorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetitorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompetitorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetitorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompetitorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := competitor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Competitor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := competitor.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Competitor.category": %w`, err)}
		}
	}
	return nil
}

func (_u *CompetitorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(competitor.Table, competitor.Columns, sqlgraph.NewFieldSpec(competitor.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(competitor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(competitor.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(competitor.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(competitor.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(competitor.FieldWebsite, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competitor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompetitorUpdateOne is the builder for updating a single Competitor entity.
type CompetitorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompetitorMutation
}

// SetName sets the "name" field.
func (_u *CompetitorUpdateOne) SetName(v string) *CompetitorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableName(v *string) *CompetitorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CompetitorUpdateOne) SetCategory(v string) *CompetitorUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableCategory(v *string) *CompetitorUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *CompetitorUpdateOne) ClearCategory() *CompetitorUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *CompetitorUpdateOne) SetWebsite(v string) *CompetitorUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableWebsite(v *string) *CompetitorUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *CompetitorUpdateOne) ClearWebsite() *CompetitorUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// Mutation returns the CompetitorMutation object of the builder.
func (_u *CompetitorUpdateOne) Mutation() *CompetitorMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompetitorUpdate builder.
func (_u *CompetitorUpdateOne) Where(ps ...predicate.Competitor) *CompetitorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompetitorUpdateOne) Select(field string, fields ...string) *CompetitorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Competitor entity.
func (_u *CompetitorUpdateOne) Save(ctx context.Context) (*Competitor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetitorUpdateOne) SaveX(ctx context.Context) *Competitor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompetitorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetitorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompetitorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := competitor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Competitor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := competitor.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Competitor.category": %w`, err)}
		}
	}
	return nil
}

func (_u *CompetitorUpdateOne) sqlSave(ctx context.Context) (_node *Competitor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(competitor.Table, competitor.Columns, sqlgraph.NewFieldSpec(competitor.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Competitor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, competitor.FieldID)
		for _, f := range fields {
			if !competitor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != competitor.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(competitor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(competitor.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(competitor.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(competitor.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(competitor.FieldWebsite, field.TypeString)
	}
	_node = &Competitor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competitor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
