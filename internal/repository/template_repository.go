// internal/repository/template_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
	"github.com/localbzz/clientops/internal/models"
)

type EntTemplateRepository struct {
	client *ent.Client
}

func NewEntTemplateRepository(client *ent.Client) *EntTemplateRepository {
	return &EntTemplateRepository{
		client: client,
	}
}

// ResolveForClient returns the template set materialization uses for the
// client and parent type: the client-scoped active set verbatim when it is
// non-empty, otherwise the global active set. The two sets are never merged.
// An empty result is valid and materializes zero tasks.
func (r *EntTemplateRepository) ResolveForClient(ctx context.Context, clientID uuid.UUID, parentType models.ParentType) ([]*ent.TaskTemplate, error) {
	return resolveTemplates(ctx, r.client.TaskTemplate, clientID, parentType)
}

// resolveTemplates implements the full-replace resolution rule. It operates
// on a TaskTemplateClient so the materializer can reuse it inside a
// transaction.
func resolveTemplates(ctx context.Context, tc *ent.TaskTemplateClient, clientID uuid.UUID, parentType models.ParentType) ([]*ent.TaskTemplate, error) {
	scoped, err := tc.Query().
		Where(
			tasktemplate.ClientIDEQ(clientID),
			tasktemplate.ParentTypeEQ(tasktemplate.ParentType(parentType)),
			tasktemplate.IsActive(true),
		).
		Order(ent.Asc(tasktemplate.FieldSortOrder), ent.Asc(tasktemplate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query client templates: %w", err)
	}

	// Client-scoped templates fully replace the global set
	if len(scoped) > 0 {
		return scoped, nil
	}

	global, err := tc.Query().
		Where(
			tasktemplate.ClientIDIsNil(),
			tasktemplate.ParentTypeEQ(tasktemplate.ParentType(parentType)),
			tasktemplate.IsActive(true),
		).
		Order(ent.Asc(tasktemplate.FieldSortOrder), ent.Asc(tasktemplate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query global templates: %w", err)
	}

	return global, nil
}

// ListGlobal returns every global template, active or not, grouped by
// parent type in sort order. This backs the settings editor.
func (r *EntTemplateRepository) ListGlobal(ctx context.Context) ([]*ent.TaskTemplate, error) {
	return r.client.TaskTemplate.
		Query().
		Where(tasktemplate.ClientIDIsNil()).
		Order(ent.Asc(tasktemplate.FieldParentType), ent.Asc(tasktemplate.FieldSortOrder)).
		All(ctx)
}

func (r *EntTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.TaskTemplate, error) {
	return r.client.TaskTemplate.
		Query().
		Where(tasktemplate.ID(id)).
		Only(ctx)
}

// Types for repository input
type TemplateInput struct {
	ClientID   *uuid.UUID // nil for a global template
	ParentType string
	Title      string
	Role       string
	SortOrder  int
	DaysOffset int
}

type TemplateUpdateInput struct {
	Title      *string
	Role       *string
	SortOrder  *int
	DaysOffset *int
	IsActive   *bool
}

func (r *EntTemplateRepository) Create(ctx context.Context, input *TemplateInput) (*ent.TaskTemplate, error) {
	return r.client.TaskTemplate.
		Create().
		SetNillableClientID(input.ClientID).
		SetParentType(tasktemplate.ParentType(input.ParentType)).
		SetTitle(input.Title).
		SetRole(tasktemplate.Role(input.Role)).
		SetSortOrder(input.SortOrder).
		SetDaysOffset(input.DaysOffset).
		SetIsActive(true).
		Save(ctx)
}

func (r *EntTemplateRepository) Update(ctx context.Context, id uuid.UUID, input *TemplateUpdateInput) (*ent.TaskTemplate, error) {
	update := r.client.TaskTemplate.UpdateOneID(id)

	if input.Title != nil {
		update = update.SetTitle(*input.Title)
	}
	if input.Role != nil {
		update = update.SetRole(tasktemplate.Role(*input.Role))
	}
	if input.SortOrder != nil {
		update = update.SetSortOrder(*input.SortOrder)
	}
	if input.DaysOffset != nil {
		update = update.SetDaysOffset(*input.DaysOffset)
	}
	if input.IsActive != nil {
		update = update.SetIsActive(*input.IsActive)
	}

	return update.Save(ctx)
}

func (r *EntTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.TaskTemplate.
		DeleteOneID(id).
		Exec(ctx)
}

// Reorder rewrites sort_order to the position of each ID in the given
// slice, starting at 1. Runs in one transaction so a half-applied order is
// never observable.
func (r *EntTemplateRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	for i, id := range ids {
		if err := tx.TaskTemplate.UpdateOneID(id).SetSortOrder(i + 1).Exec(ctx); err != nil {
			return rollback(tx, fmt.Errorf("reorder template %s: %w", id, err))
		}
	}

	return tx.Commit()
}
