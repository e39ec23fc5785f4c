// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/clientaccount"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/profile"
)

// ContextEntryCreate is the builder for creating a ContextEntry entity.
type ContextEntryCreate struct {
	config
	mutation *ContextEntryMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (cec *ContextEntryCreate) SetClientID(u uuid.UUID) *ContextEntryCreate {
	cec.mutation.SetClientID(u)
	return cec
}

// SetCycleID sets the "cycle_id" field.
func (cec *ContextEntryCreate) SetCycleID(u uuid.UUID) *ContextEntryCreate {
	cec.mutation.SetCycleID(u)
	return cec
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (cec *ContextEntryCreate) SetNillableCycleID(u *uuid.UUID) *ContextEntryCreate {
	if u != nil {
		cec.SetCycleID(*u)
	}
	return cec
}

// SetAuthorID sets the "author_id" field.
func (cec *ContextEntryCreate) SetAuthorID(u uuid.UUID) *ContextEntryCreate {
	cec.mutation.SetAuthorID(u)
	return cec
}

// SetType sets the "type" field.
func (cec *ContextEntryCreate) SetType(c contextentry.Type) *ContextEntryCreate {
	cec.mutation.SetType(c)
	return cec
}

// SetContent sets the "content" field.
func (cec *ContextEntryCreate) SetContent(s string) *ContextEntryCreate {
	cec.mutation.SetContent(s)
	return cec
}

// SetCreatedAt sets the "created_at" field.
func (cec *ContextEntryCreate) SetCreatedAt(t time.Time) *ContextEntryCreate {
	cec.mutation.SetCreatedAt(t)
	return cec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cec *ContextEntryCreate) SetNillableCreatedAt(t *time.Time) *ContextEntryCreate {
	if t != nil {
		cec.SetCreatedAt(*t)
	}
	return cec
}

// SetID sets the "id" field.
func (cec *ContextEntryCreate) SetID(u uuid.UUID) *ContextEntryCreate {
	cec.mutation.SetID(u)
	return cec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (cec *ContextEntryCreate) SetNillableID(u *uuid.UUID) *ContextEntryCreate {
	if u != nil {
		cec.SetID(*u)
	}
	return cec
}

// SetClient sets the "client" edge to the ClientAccount entity.
func (cec *ContextEntryCreate) SetClient(c *ClientAccount) *ContextEntryCreate {
	return cec.SetClientID(c.ID)
}

// SetCycle sets the "cycle" edge to the Cycle entity.
func (cec *ContextEntryCreate) SetCycle(c *Cycle) *ContextEntryCreate {
	return cec.SetCycleID(c.ID)
}

// SetAuthor sets the "author" edge to the Profile entity.
func (cec *ContextEntryCreate) SetAuthor(p *Profile) *ContextEntryCreate {
	return cec.SetAuthorID(p.ID)
}

// Mutation returns the ContextEntryMutation object of the builder.
func (cec *ContextEntryCreate) Mutation() *ContextEntryMutation {
	return cec.mutation
}

// Save creates the ContextEntry in the database.
func (cec *ContextEntryCreate) Save(ctx context.Context) (*ContextEntry, error) {
	cec.defaults()
	return withHooks(ctx, cec.sqlSave, cec.mutation, cec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cec *ContextEntryCreate) SaveX(ctx context.Context) *ContextEntry {
	v, err := cec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cec *ContextEntryCreate) Exec(ctx context.Context) error {
	_, err := cec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cec *ContextEntryCreate) ExecX(ctx context.Context) {
	if err := cec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cec *ContextEntryCreate) defaults() {
	if _, ok := cec.mutation.CreatedAt(); !ok {
		v := contextentry.DefaultCreatedAt()
		cec.mutation.SetCreatedAt(v)
	}
	if _, ok := cec.mutation.ID(); !ok {
		v := contextentry.DefaultID()
		cec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cec *ContextEntryCreate) check() error {
	if _, ok := cec.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`generated: missing required field "ContextEntry.client_id"`)}
	}
	if _, ok := cec.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`generated: missing required field "ContextEntry.author_id"`)}
	}
	if _, ok := cec.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`generated: missing required field "ContextEntry.type"`)}
	}
	if v, ok := cec.mutation.GetType(); ok {
		if err := contextentry.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`generated: validator failed for field "ContextEntry.type": %w`, err)}
		}
	}
	if _, ok := cec.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`generated: missing required field "ContextEntry.content"`)}
	}
	if v, ok := cec.mutation.Content(); ok {
		if err := contextentry.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`generated: validator failed for field "ContextEntry.content": %w`, err)}
		}
	}
	if _, ok := cec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "ContextEntry.created_at"`)}
	}
	if len(cec.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`generated: missing required edge "ContextEntry.client"`)}
	}
	if len(cec.mutation.AuthorIDs()) == 0 {
		return &ValidationError{Name: "author", err: errors.New(`generated: missing required edge "ContextEntry.author"`)}
	}
	return nil
}

func (cec *ContextEntryCreate) sqlSave(ctx context.Context) (*ContextEntry, error) {
	if err := cec.check(); err != nil {
		return nil, err
	}
	_node, _spec := cec.createSpec()
	if err := sqlgraph.CreateNode(ctx, cec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	cec.mutation.id = &_node.ID
	cec.mutation.done = true
	return _node, nil
}

func (cec *ContextEntryCreate) createSpec() (*ContextEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextEntry{config: cec.config}
		_spec = sqlgraph.NewCreateSpec(contextentry.Table, sqlgraph.NewFieldSpec(contextentry.FieldID, field.TypeUUID))
	)
	if id, ok := cec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := cec.mutation.GetType(); ok {
		_spec.SetField(contextentry.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := cec.mutation.Content(); ok {
		_spec.SetField(contextentry.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := cec.mutation.CreatedAt(); ok {
		_spec.SetField(contextentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := cec.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.ClientTable,
			Columns: []string{contextentry.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientaccount.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cec.mutation.CycleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.CycleTable,
			Columns: []string{contextentry.CycleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cycle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CycleID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cec.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.AuthorTable,
			Columns: []string{contextentry.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuthorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContextEntryCreateBulk is the builder for creating many ContextEntry entities in bulk.
type ContextEntryCreateBulk struct {
	config
	err      error
	builders []*ContextEntryCreate
}

// Save creates the ContextEntry entities in the database.
func (cecb *ContextEntryCreateBulk) Save(ctx context.Context) ([]*ContextEntry, error) {
	if cecb.err != nil {
		return nil, cecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cecb.builders))
	nodes := make([]*ContextEntry, len(cecb.builders))
	mutators := make([]Mutator, len(cecb.builders))
	for i := range cecb.builders {
		func(i int, root context.Context) {
			builder := cecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextEntryMutation)
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
					_, err = mutators[i+1].Mutate(root, cecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, cecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cecb *ContextEntryCreateBulk) SaveX(ctx context.Context) []*ContextEntry {
	v, err := cecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cecb *ContextEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := cecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cecb *ContextEntryCreateBulk) ExecX(ctx context.Context) {
	if err := cecb.Exec(ctx); err != nil {
		panic(err)
	}
}
