// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/localbzz/clientops/ent/generated/clientaccount"
	"github.com/localbzz/clientops/ent/generated/predicate"
)

// ClientAccountDelete is the builder for deleting a ClientAccount entity.
type ClientAccountDelete struct {
	config
	hooks    []Hook
	mutation *ClientAccountMutation
}

// Where appends a list predicates to the ClientAccountDelete builder.
func (cad *ClientAccountDelete) Where(ps ...predicate.ClientAccount) *ClientAccountDelete {
	cad.mutation.Where(ps...)
	return cad
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cad *ClientAccountDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cad.sqlExec, cad.mutation, cad.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cad *ClientAccountDelete) ExecX(ctx context.Context) int {
	n, err := cad.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cad *ClientAccountDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(clientaccount.Table, sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID))
	if ps := cad.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cad.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cad.mutation.done = true
	return affected, err
}

// ClientAccountDeleteOne is the builder for deleting a single ClientAccount entity.
type ClientAccountDeleteOne struct {
	cad *ClientAccountDelete
}

// Where appends a list predicates to the ClientAccountDelete builder.
func (cado *ClientAccountDeleteOne) Where(ps ...predicate.ClientAccount) *ClientAccountDeleteOne {
	cado.cad.mutation.Where(ps...)
	return cado
}

// Exec executes the deletion query.
func (cado *ClientAccountDeleteOne) Exec(ctx context.Context) error {
	n, err := cado.cad.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{clientaccount.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cado *ClientAccountDeleteOne) ExecX(ctx context.Context) {
	if err := cado.Exec(ctx); err != nil {
		panic(err)
	}
}
