// internal/repository/context_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/contextentry"
)

type EntContextRepository struct {
	client *ent.Client
}

func NewEntContextRepository(client *ent.Client) *EntContextRepository {
	return &EntContextRepository{
		client: client,
	}
}

// List returns a client's context feed, newest first, with authors loaded.
func (r *EntContextRepository) List(ctx context.Context, clientID uuid.UUID, cycleID *uuid.UUID) ([]*ent.ContextEntry, error) {
	query := r.client.ContextEntry.
		Query().
		Where(contextentry.ClientIDEQ(clientID))

	if cycleID != nil {
		query = query.Where(contextentry.CycleIDEQ(*cycleID))
	}

	return query.
		WithAuthor().
		Order(ent.Desc(contextentry.FieldCreatedAt)).
		All(ctx)
}

type ContextEntryInput struct {
	ClientID uuid.UUID
	CycleID  *uuid.UUID
	AuthorID uuid.UUID
	Type     string
	Content  string
}

func (r *EntContextRepository) Add(ctx context.Context, input *ContextEntryInput) (*ent.ContextEntry, error) {
	return r.client.ContextEntry.
		Create().
		SetClientID(input.ClientID).
		SetNillableCycleID(input.CycleID).
		SetAuthorID(input.AuthorID).
		SetType(contextentry.Type(input.Type)).
		SetContent(input.Content).
		Save(ctx)
}

func (r *EntContextRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.ContextEntry.
		DeleteOneID(id).
		Exec(ctx)
}
