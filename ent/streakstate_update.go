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
	"github.com/rkoval/brightpath/ent/predicate"
	"github.com/rkoval/brightpath/ent/streakstate"
)

// StreakStateUpdate is the builder for updating StreakState entities.
type StreakStateUpdate struct {
	config
	hooks    []Hook
	mutation *StreakStateMutation
}

// Where appends a list predicates to the StreakStateUpdate builder.
func (_u *StreakStateUpdate) Where(ps ...predicate.StreakState) *StreakStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *StreakStateUpdate) SetLearnerID(v string) *StreakStateUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *StreakStateUpdate) SetNillableLearnerID(v *string) *StreakStateUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *StreakStateUpdate) SetCurrentStreak(v int) *StreakStateUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *StreakStateUpdate) SetNillableCurrentStreak(v *int) *StreakStateUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *StreakStateUpdate) AddCurrentStreak(v int) *StreakStateUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *StreakStateUpdate) SetLongestStreak(v int) *StreakStateUpdate {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *StreakStateUpdate) SetNillableLongestStreak(v *int) *StreakStateUpdate {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *StreakStateUpdate) AddLongestStreak(v int) *StreakStateUpdate {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *StreakStateUpdate) SetLastActivityAt(v time.Time) *StreakStateUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *StreakStateUpdate) SetNillableLastActivityAt(v *time.Time) *StreakStateUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetStreakStartedAt sets the "streak_started_at" field.
func (_u *StreakStateUpdate) SetStreakStartedAt(v time.Time) *StreakStateUpdate {
	_u.mutation.SetStreakStartedAt(v)
	return _u
}

// SetNillableStreakStartedAt sets the "streak_started_at" field if the given value is not nil.
func (_u *StreakStateUpdate) SetNillableStreakStartedAt(v *time.Time) *StreakStateUpdate {
	if v != nil {
		_u.SetStreakStartedAt(*v)
	}
	return _u
}

// Mutation returns the StreakStateMutation object of the builder.
func (_u *StreakStateUpdate) Mutation() *StreakStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StreakStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreakStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StreakStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreakStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreakStateUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := streakstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "StreakState.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := streakstate.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "StreakState.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreak(); ok {
		if err := streakstate.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "StreakState.longest_streak": %w`, err)}
		}
	}
	return nil
}

func (_u *StreakStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streakstate.Table, streakstate.Columns, sqlgraph.NewFieldSpec(streakstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(streakstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(streakstate.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(streakstate.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(streakstate.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(streakstate.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(streakstate.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StreakStartedAt(); ok {
		_spec.SetField(streakstate.FieldStreakStartedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streakstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StreakStateUpdateOne is the builder for updating a single StreakState entity.
type StreakStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StreakStateMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *StreakStateUpdateOne) SetLearnerID(v string) *StreakStateUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *StreakStateUpdateOne) SetNillableLearnerID(v *string) *StreakStateUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *StreakStateUpdateOne) SetCurrentStreak(v int) *StreakStateUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *StreakStateUpdateOne) SetNillableCurrentStreak(v *int) *StreakStateUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *StreakStateUpdateOne) AddCurrentStreak(v int) *StreakStateUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *StreakStateUpdateOne) SetLongestStreak(v int) *StreakStateUpdateOne {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *StreakStateUpdateOne) SetNillableLongestStreak(v *int) *StreakStateUpdateOne {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *StreakStateUpdateOne) AddLongestStreak(v int) *StreakStateUpdateOne {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *StreakStateUpdateOne) SetLastActivityAt(v time.Time) *StreakStateUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *StreakStateUpdateOne) SetNillableLastActivityAt(v *time.Time) *StreakStateUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetStreakStartedAt sets the "streak_started_at" field.
func (_u *StreakStateUpdateOne) SetStreakStartedAt(v time.Time) *StreakStateUpdateOne {
	_u.mutation.SetStreakStartedAt(v)
	return _u
}

// SetNillableStreakStartedAt sets the "streak_started_at" field if the given value is not nil.
func (_u *StreakStateUpdateOne) SetNillableStreakStartedAt(v *time.Time) *StreakStateUpdateOne {
	if v != nil {
		_u.SetStreakStartedAt(*v)
	}
	return _u
}

// Mutation returns the StreakStateMutation object of the builder.
func (_u *StreakStateUpdateOne) Mutation() *StreakStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the StreakStateUpdate builder.
func (_u *StreakStateUpdateOne) Where(ps ...predicate.StreakState) *StreakStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StreakStateUpdateOne) Select(field string, fields ...string) *StreakStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StreakState entity.
func (_u *StreakStateUpdateOne) Save(ctx context.Context) (*StreakState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreakStateUpdateOne) SaveX(ctx context.Context) *StreakState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StreakStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreakStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreakStateUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := streakstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "StreakState.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := streakstate.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "StreakState.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreak(); ok {
		if err := streakstate.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "StreakState.longest_streak": %w`, err)}
		}
	}
	return nil
}

func (_u *StreakStateUpdateOne) sqlSave(ctx context.Context) (_node *StreakState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streakstate.Table, streakstate.Columns, sqlgraph.NewFieldSpec(streakstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StreakState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, streakstate.FieldID)
		for _, f := range fields {
			if !streakstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != streakstate.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(streakstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(streakstate.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(streakstate.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(streakstate.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(streakstate.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(streakstate.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StreakStartedAt(); ok {
		_spec.SetField(streakstate.FieldStreakStartedAt, field.TypeTime, value)
	}
	_node = &StreakState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streakstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
