// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pcaldeira/contractdraft/gen/ent/draftdocument"
	"github.com/pcaldeira/contractdraft/gen/ent/predicate"
)

// DraftDocumentDelete is the builder for deleting a DraftDocument entity.
type DraftDocumentDelete struct {
	config
	hooks    []Hook
	mutation *DraftDocumentMutation
}

// Where appends a list predicates to the DraftDocumentDelete builder.
func (_d *DraftDocumentDelete) Where(ps ...predicate.DraftDocument) *DraftDocumentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DraftDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DraftDocumentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DraftDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(draftdocument.Table, sqlgraph.NewFieldSpec(draftdocument.FieldID, field.TypeUUID))
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

// DraftDocumentDeleteOne is the builder for deleting a single DraftDocument entity.
type DraftDocumentDeleteOne struct {
	_d *DraftDocumentDelete
}

// Where appends a list predicates to the DraftDocumentDelete builder.
func (_d *DraftDocumentDeleteOne) Where(ps ...predicate.DraftDocument) *DraftDocumentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DraftDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{draftdocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DraftDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
