// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rkoval/brightpath/ent/difficultyrecord"
	"github.com/rkoval/brightpath/ent/predicate"
)

// DifficultyRecordDelete is the builder for deleting a DifficultyRecord entity.
type DifficultyRecordDelete struct {
	config
	hooks    []Hook
	mutation *DifficultyRecordMutation
}

// Where appends a list predicates to the DifficultyRecordDelete builder.
func (_d *DifficultyRecordDelete) Where(ps ...predicate.DifficultyRecord) *DifficultyRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DifficultyRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DifficultyRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DifficultyRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(difficultyrecord.Table, sqlgraph.NewFieldSpec(difficultyrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DifficultyRecordDeleteOne is the builder for deleting a single DifficultyRecord entity.
type DifficultyRecordDeleteOne struct {
	_d *DifficultyRecordDelete
}

// Where appends a list predicates to the DifficultyRecordDelete builder.
func (_d *DifficultyRecordDeleteOne) Where(ps ...predicate.DifficultyRecord) *DifficultyRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DifficultyRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{difficultyrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DifficultyRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
