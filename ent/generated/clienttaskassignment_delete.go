// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/predicate"
)

// ClientTaskAssignmentDelete is the builder for deleting a ClientTaskAssignment entity.
type ClientTaskAssignmentDelete struct {
	config
	hooks    []Hook
	mutation *ClientTaskAssignmentMutation
}

// Where appends a list predicates to the ClientTaskAssignmentDelete builder.
func (ctad *ClientTaskAssignmentDelete) Where(ps ...predicate.ClientTaskAssignment) *ClientTaskAssignmentDelete {
	ctad.mutation.Where(ps...)
	return ctad
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ctad *ClientTaskAssignmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ctad.sqlExec, ctad.mutation, ctad.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ctad *ClientTaskAssignmentDelete) ExecX(ctx context.Context) int {
	n, err := ctad.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ctad *ClientTaskAssignmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(clienttaskassignment.Table, sqlgraph.NewFieldSpec(clienttaskassignment.FieldID, field.TypeUUID))
	if ps := ctad.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ctad.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ctad.mutation.done = true
	return affected, err
}

// ClientTaskAssignmentDeleteOne is the builder for deleting a single ClientTaskAssignment entity.
type ClientTaskAssignmentDeleteOne struct {
	ctad *ClientTaskAssignmentDelete
}

// Where appends a list predicates to the ClientTaskAssignmentDelete builder.
func (ctado *ClientTaskAssignmentDeleteOne) Where(ps ...predicate.ClientTaskAssignment) *ClientTaskAssignmentDeleteOne {
	ctado.ctad.mutation.Where(ps...)
	return ctado
}

// Exec executes the deletion query.
func (ctado *ClientTaskAssignmentDeleteOne) Exec(ctx context.Context) error {
	n, err := ctado.ctad.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{clienttaskassignment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ctado *ClientTaskAssignmentDeleteOne) ExecX(ctx context.Context) {
	if err := ctado.Exec(ctx); err != nil {
		panic(err)
	}
}
