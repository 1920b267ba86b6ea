// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rkoval/brightpath/ent/reviewstate"
)

// ReviewStateCreate is the builder for creating a ReviewState entity.
type ReviewStateCreate struct {
	config
	mutation *ReviewStateMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ReviewStateCreate) SetLearnerID(v string) *ReviewStateCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReviewStateCreate) SetItemID(v string) *ReviewStateCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewStateCreate) SetIntervalDays(v int) *ReviewStateCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableIntervalDays(v *int) *ReviewStateCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewStateCreate) SetEaseFactor(v float64) *ReviewStateCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableEaseFactor(v *float64) *ReviewStateCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *ReviewStateCreate) SetRepetitions(v int) *ReviewStateCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *ReviewStateCreate) SetNillableRepetitions(v *int) *ReviewStateCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *ReviewStateCreate) SetLastReviewedAt(v time.Time) *ReviewStateCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *ReviewStateCreate) SetNextReviewAt(v time.Time) *ReviewStateCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// Mutation returns the ReviewStateMutation object of the builder.
func (_c *ReviewStateCreate) Mutation() *ReviewStateMutation {
	return _c.mutation
}

// Save creates the ReviewState in the database.
func (_c *ReviewStateCreate) Save(ctx context.Context) (*ReviewState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewStateCreate) SaveX(ctx context.Context) *ReviewState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewStateCreate) defaults() {
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewstate.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := reviewstate.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := reviewstate.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewStateCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ReviewState.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := reviewstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewState.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := reviewstate.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewState.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewState.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := reviewstate.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewState.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewState.ease_factor"`)}
	}
	if v, ok := _c.mutation.EaseFactor(); ok {
		if err := reviewstate.EaseFactorValidator(v); err != nil {
			return &ValidationError{Name: "ease_factor", err: fmt.Errorf(`ent: validator failed for field "ReviewState.ease_factor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "ReviewState.repetitions"`)}
	}
	if v, ok := _c.mutation.Repetitions(); ok {
		if err := reviewstate.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewState.repetitions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastReviewedAt(); !ok {
		return &ValidationError{Name: "last_reviewed_at", err: errors.New(`ent: missing required field "ReviewState.last_reviewed_at"`)}
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "ReviewState.next_review_at"`)}
	}
	return nil
}

func (_c *ReviewStateCreate) sqlSave(ctx context.Context) (*ReviewState, error) {
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

func (_c *ReviewStateCreate) createSpec() (*ReviewState, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewstate.Table, sqlgraph.NewFieldSpec(reviewstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(reviewstate.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reviewstate.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewstate.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewstate.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(reviewstate.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewstate.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewstate.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	return _node, _spec
}

// ReviewStateCreateBulk is the builder for creating many ReviewState entities in bulk.
type ReviewStateCreateBulk struct {
	config
	err      error
	builders []*ReviewStateCreate
}

// Save creates the ReviewState entities in the database.
func (_c *ReviewStateCreateBulk) Save(ctx context.Context) ([]*ReviewState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewStateMutation)
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
func (_c *ReviewStateCreateBulk) SaveX(ctx context.Context) []*ReviewState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
