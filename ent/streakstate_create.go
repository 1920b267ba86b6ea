// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rkoval/brightpath/ent/streakstate"
)

// StreakStateCreate is the builder for creating a StreakState entity.
type StreakStateCreate struct {
	config
	mutation *StreakStateMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *StreakStateCreate) SetLearnerID(v string) *StreakStateCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *StreakStateCreate) SetCurrentStreak(v int) *StreakStateCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetLongestStreak sets the "longest_streak" field.
func (_c *StreakStateCreate) SetLongestStreak(v int) *StreakStateCreate {
	_c.mutation.SetLongestStreak(v)
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *StreakStateCreate) SetLastActivityAt(v time.Time) *StreakStateCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetStreakStartedAt sets the "streak_started_at" field.
func (_c *StreakStateCreate) SetStreakStartedAt(v time.Time) *StreakStateCreate {
	_c.mutation.SetStreakStartedAt(v)
	return _c
}

// Mutation returns the StreakStateMutation object of the builder.
func (_c *StreakStateCreate) Mutation() *StreakStateMutation {
	return _c.mutation
}

// Save creates the StreakState in the database.
func (_c *StreakStateCreate) Save(ctx context.Context) (*StreakState, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StreakStateCreate) SaveX(ctx context.Context) *StreakState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreakStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreakStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StreakStateCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "StreakState.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := streakstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "StreakState.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "StreakState.current_streak"`)}
	}
	if v, ok := _c.mutation.CurrentStreak(); ok {
		if err := streakstate.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "StreakState.current_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		return &ValidationError{Name: "longest_streak", err: errors.New(`ent: missing required field "StreakState.longest_streak"`)}
	}
	if v, ok := _c.mutation.LongestStreak(); ok {
		if err := streakstate.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "StreakState.longest_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "StreakState.last_activity_at"`)}
	}
	if _, ok := _c.mutation.StreakStartedAt(); !ok {
		return &ValidationError{Name: "streak_started_at", err: errors.New(`ent: missing required field "StreakState.streak_started_at"`)}
	}
	return nil
}

func (_c *StreakStateCreate) sqlSave(ctx context.Context) (*StreakState, error) {
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

func (_c *StreakStateCreate) createSpec() (*StreakState, *sqlgraph.CreateSpec) {
	var (
		_node = &StreakState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(streakstate.Table, sqlgraph.NewFieldSpec(streakstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(streakstate.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(streakstate.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.LongestStreak(); ok {
		_spec.SetField(streakstate.FieldLongestStreak, field.TypeInt, value)
		_node.LongestStreak = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(streakstate.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	if value, ok := _c.mutation.StreakStartedAt(); ok {
		_spec.SetField(streakstate.FieldStreakStartedAt, field.TypeTime, value)
		_node.StreakStartedAt = value
	}
	return _node, _spec
}

// StreakStateCreateBulk is the builder for creating many StreakState entities in bulk.
type StreakStateCreateBulk struct {
	config
	err      error
	builders []*StreakStateCreate
}

// Save creates the StreakState entities in the database.
func (_c *StreakStateCreateBulk) Save(ctx context.Context) ([]*StreakState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StreakState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StreakStateMutation)
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
func (_c *StreakStateCreateBulk) SaveX(ctx context.Context) []*StreakState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreakStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreakStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
