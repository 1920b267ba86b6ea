// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rkoval/brightpath/ent/difficultyrecord"
)

// DifficultyRecordCreate is the builder for creating a DifficultyRecord entity.
type DifficultyRecordCreate struct {
	config
	mutation *DifficultyRecordMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *DifficultyRecordCreate) SetItemID(v string) *DifficultyRecordCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *DifficultyRecordCreate) SetDifficulty(v float64) *DifficultyRecordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *DifficultyRecordCreate) SetTotalAttempts(v int) *DifficultyRecordCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetSuccessRate sets the "success_rate" field.
func (_c *DifficultyRecordCreate) SetSuccessRate(v int) *DifficultyRecordCreate {
	_c.mutation.SetSuccessRate(v)
	return _c
}

// Mutation returns the DifficultyRecordMutation object of the builder.
func (_c *DifficultyRecordCreate) Mutation() *DifficultyRecordMutation {
	return _c.mutation
}

// Save creates the DifficultyRecord in the database.
func (_c *DifficultyRecordCreate) Save(ctx context.Context) (*DifficultyRecord, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DifficultyRecordCreate) SaveX(ctx context.Context) *DifficultyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DifficultyRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DifficultyRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DifficultyRecordCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "DifficultyRecord.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := difficultyrecord.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "DifficultyRecord.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := difficultyrecord.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "DifficultyRecord.total_attempts"`)}
	}
	if v, ok := _c.mutation.TotalAttempts(); ok {
		if err := difficultyrecord.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.total_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		return &ValidationError{Name: "success_rate", err: errors.New(`ent: missing required field "DifficultyRecord.success_rate"`)}
	}
	if v, ok := _c.mutation.SuccessRate(); ok {
		if err := difficultyrecord.SuccessRateValidator(v); err != nil {
			return &ValidationError{Name: "success_rate", err: fmt.Errorf(`ent: validator failed for field "DifficultyRecord.success_rate": %w`, err)}
		}
	}
	return nil
}

func (_c *DifficultyRecordCreate) sqlSave(ctx context.Context) (*DifficultyRecord, error) {
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

func (_c *DifficultyRecordCreate) createSpec() (*DifficultyRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &DifficultyRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(difficultyrecord.Table, sqlgraph.NewFieldSpec(difficultyrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(difficultyrecord.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(difficultyrecord.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(difficultyrecord.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.SuccessRate(); ok {
		_spec.SetField(difficultyrecord.FieldSuccessRate, field.TypeInt, value)
		_node.SuccessRate = value
	}
	return _node, _spec
}

// DifficultyRecordCreateBulk is the builder for creating many DifficultyRecord entities in bulk.
type DifficultyRecordCreateBulk struct {
	config
	err      error
	builders []*DifficultyRecordCreate
}

// Save creates the DifficultyRecord entities in the database.
func (_c *DifficultyRecordCreateBulk) Save(ctx context.Context) ([]*DifficultyRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DifficultyRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DifficultyRecordMutation)
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
func (_c *DifficultyRecordCreateBulk) SaveX(ctx context.Context) []*DifficultyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DifficultyRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DifficultyRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
