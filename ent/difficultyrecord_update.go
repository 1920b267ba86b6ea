// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rkoval/brightpath/ent/difficultyrecord"
	"github.com/rkoval/brightpath/ent/predicate"
)

// DifficultyRecordUpdate is the builder for updating DifficultyRecord entities.
type DifficultyRecordUpdate struct {
	config
	hooks    []Hook
	mutation *DifficultyRecordMutation
}

// Where appends a list predicates to the DifficultyRecordUpdate builder.
func (_u *DifficultyRecordUpdate) Where(ps ...predicate.DifficultyRecord) *DifficultyRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *DifficultyRecordUpdate) SetItemID(v string) *DifficultyRecordUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *DifficultyRecordUpdate) SetNillableItemID(v *string) *DifficultyRecordUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DifficultyRecordUpdate) SetDifficulty(v float64) *DifficultyRecordUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DifficultyRecordUpdate) SetNillableDifficulty(v *float64) *DifficultyRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *DifficultyRecordUpdate) AddDifficulty(v float64) *DifficultyRecordUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *DifficultyRecordUpdate) SetTotalAttempts(v int) *DifficultyRecordUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *DifficultyRecordUpdate) SetNillableTotalAttempts(v *int) *DifficultyRecordUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *DifficultyRecordUpdate) AddTotalAttempts(v int) *DifficultyRecordUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *DifficultyRecordUpdate) SetSuccessRate(v int) *DifficultyRecordUpdate {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *DifficultyRecordUpdate) SetNillableSuccessRate(v *int) *DifficultyRecordUpdate {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *DifficultyRecordUpdate) AddSuccessRate(v int) *DifficultyRecordUpdate {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// Mutation returns the DifficultyRecordMutation object of the builder.
func (_u *DifficultyRecordUpdate) Mutation() *DifficultyRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DifficultyRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DifficultyRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DifficultyRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DifficultyRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DifficultyRecordUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := difficultyrecord.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := difficultyrecord.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := difficultyrecord.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.total_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessRate(); ok {
		if err := difficultyrecord.SuccessRateValidator(v); err != nil {
			return &ValidationError{Name: "success_rate", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.success_rate": %w`, err)}
		}
	}
	return nil
}

func (_u *DifficultyRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(difficultyrecord.Table, difficultyrecord.Columns, sqlgraph.NewFieldSpec(difficultyrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(difficultyrecord.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(difficultyrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(difficultyrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(difficultyrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(difficultyrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(difficultyrecord.FieldSuccessRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(difficultyrecord.FieldSuccessRate, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{difficultyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DifficultyRecordUpdateOne is the builder for updating a single DifficultyRecord entity.
type DifficultyRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DifficultyRecordMutation
}

// SetItemID sets the "item_id" field.
func (_u *DifficultyRecordUpdateOne) SetItemID(v string) *DifficultyRecordUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *DifficultyRecordUpdateOne) SetNillableItemID(v *string) *DifficultyRecordUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DifficultyRecordUpdateOne) SetDifficulty(v float64) *DifficultyRecordUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DifficultyRecordUpdateOne) SetNillableDifficulty(v *float64) *DifficultyRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *DifficultyRecordUpdateOne) AddDifficulty(v float64) *DifficultyRecordUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *DifficultyRecordUpdateOne) SetTotalAttempts(v int) *DifficultyRecordUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *DifficultyRecordUpdateOne) SetNillableTotalAttempts(v *int) *DifficultyRecordUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *DifficultyRecordUpdateOne) AddTotalAttempts(v int) *DifficultyRecordUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *DifficultyRecordUpdateOne) SetSuccessRate(v int) *DifficultyRecordUpdateOne {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *DifficultyRecordUpdateOne) SetNillableSuccessRate(v *int) *DifficultyRecordUpdateOne {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *DifficultyRecordUpdateOne) AddSuccessRate(v int) *DifficultyRecordUpdateOne {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// Mutation returns the DifficultyRecordMutation object of the builder.
func (_u *DifficultyRecordUpdateOne) Mutation() *DifficultyRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the DifficultyRecordUpdate builder.
func (_u *DifficultyRecordUpdateOne) Where(ps ...predicate.DifficultyRecord) *DifficultyRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DifficultyRecordUpdateOne) Select(field string, fields ...string) *DifficultyRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DifficultyRecord entity.
func (_u *DifficultyRecordUpdateOne) Save(ctx context.Context) (*DifficultyRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DifficultyRecordUpdateOne) SaveX(ctx context.Context) *DifficultyRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DifficultyRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DifficultyRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DifficultyRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := difficultyrecord.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := difficultyrecord.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := difficultyrecord.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.total_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessRate(); ok {
		if err := difficultyrecord.SuccessRateValidator(v); err != nil {
			return &ValidationError{Name: "success_rate", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.success_rate": %w`, err)}
		}
	}
	return nil
}

func (_u *DifficultyRecordUpdateOne) sqlSave(ctx context.Context) (_node *DifficultyRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(difficultyrecord.Table, difficultyrecord.Columns, sqlgraph.NewFieldSpec(difficultyrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DifficultyRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, difficultyrecord.FieldID)
		for _, f := range fields {
			if !difficultyrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != difficultyrecord.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(difficultyrecord.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(difficultyrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(difficultyrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(difficultyrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(difficultyrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(difficultyrecord.FieldSuccessRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(difficultyrecord.FieldSuccessRate, field.TypeInt, value)
	}
	_node = &DifficultyRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{difficultyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
