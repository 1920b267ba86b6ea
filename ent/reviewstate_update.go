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
	"github.com/rkoval/brightpath/ent/reviewstate"
)

// ReviewStateUpdate is the builder for updating ReviewState entities.
type ReviewStateUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewStateMutation
}

// Where appends a list predicates to the ReviewStateUpdate builder.
func (_u *ReviewStateUpdate) Where(ps ...predicate.ReviewState) *ReviewStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewStateUpdate) SetLearnerID(v string) *ReviewStateUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableLearnerID(v *string) *ReviewStateUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewStateUpdate) SetItemID(v string) *ReviewStateUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableItemID(v *string) *ReviewStateUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewStateUpdate) SetIntervalDays(v int) *ReviewStateUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableIntervalDays(v *int) *ReviewStateUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewStateUpdate) AddIntervalDays(v int) *ReviewStateUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewStateUpdate) SetEaseFactor(v float64) *ReviewStateUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableEaseFactor(v *float64) *ReviewStateUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewStateUpdate) AddEaseFactor(v float64) *ReviewStateUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewStateUpdate) SetRepetitions(v int) *ReviewStateUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableRepetitions(v *int) *ReviewStateUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewStateUpdate) AddRepetitions(v int) *ReviewStateUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewStateUpdate) SetLastReviewedAt(v time.Time) *ReviewStateUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableLastReviewedAt(v *time.Time) *ReviewStateUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewStateUpdate) SetNextReviewAt(v time.Time) *ReviewStateUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewStateUpdate) SetNillableNextReviewAt(v *time.Time) *ReviewStateUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// Mutation returns the ReviewStateMutation object of the builder.
func (_u *ReviewStateUpdate) Mutation() *ReviewStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewStateUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewstate.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewstate.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewState.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EaseFactor(); ok {
		if err := reviewstate.EaseFactorValidator(v); err != nil {
			return &ValidationError{Name: "ease_factor", err: fmt.Errorf(`ent: validator failed for field "ReviewState.ease_factor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := reviewstate.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewState.repetitions": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewstate.Table, reviewstate.Columns, sqlgraph.NewFieldSpec(reviewstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewstate.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewstate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewstate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewstate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewstate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewstate.FieldLastReviewedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewstate.FieldNextReviewAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewStateUpdateOne is the builder for updating a single ReviewState entity.
type ReviewStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewStateMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewStateUpdateOne) SetLearnerID(v string) *ReviewStateUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableLearnerID(v *string) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewStateUpdateOne) SetItemID(v string) *ReviewStateUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableItemID(v *string) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewStateUpdateOne) SetIntervalDays(v int) *ReviewStateUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableIntervalDays(v *int) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewStateUpdateOne) AddIntervalDays(v int) *ReviewStateUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewStateUpdateOne) SetEaseFactor(v float64) *ReviewStateUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableEaseFactor(v *float64) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewStateUpdateOne) AddEaseFactor(v float64) *ReviewStateUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewStateUpdateOne) SetRepetitions(v int) *ReviewStateUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableRepetitions(v *int) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewStateUpdateOne) AddRepetitions(v int) *ReviewStateUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewStateUpdateOne) SetLastReviewedAt(v time.Time) *ReviewStateUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableLastReviewedAt(v *time.Time) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewStateUpdateOne) SetNextReviewAt(v time.Time) *ReviewStateUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewStateUpdateOne) SetNillableNextReviewAt(v *time.Time) *ReviewStateUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// Mutation returns the ReviewStateMutation object of the builder.
func (_u *ReviewStateUpdateOne) Mutation() *ReviewStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewStateUpdate builder.
func (_u *ReviewStateUpdateOne) Where(ps ...predicate.ReviewState) *ReviewStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewStateUpdateOne) Select(field string, fields ...string) *ReviewStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewState entity.
func (_u *ReviewStateUpdateOne) Save(ctx context.Context) (*ReviewState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewStateUpdateOne) SaveX(ctx context.Context) *ReviewState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewStateUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewstate.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewstate.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewState.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EaseFactor(); ok {
		if err := reviewstate.EaseFactorValidator(v); err != nil {
			return &ValidationError{Name: "ease_factor", err: fmt.Errorf(`ent: validator failed for field "ReviewState.ease_factor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := reviewstate.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewState.repetitions": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewStateUpdateOne) sqlSave(ctx context.Context) (_node *ReviewState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewstate.Table, reviewstate.Columns, sqlgraph.NewFieldSpec(reviewstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewstate.FieldID)
		for _, f := range fields {
			if !reviewstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewstate.FieldID {
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
		_spec.SetField(reviewstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewstate.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewstate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewstate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewstate.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewstate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewstate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewstate.FieldLastReviewedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewstate.FieldNextReviewAt, field.TypeTime, value)
	}
	_node = &ReviewState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
