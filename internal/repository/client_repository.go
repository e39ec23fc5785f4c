// internal/repository/client_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/clientaccount"
)

type EntClientRepository struct {
	client *ent.Client
}

func NewEntClientRepository(client *ent.Client) *EntClientRepository {
	return &EntClientRepository{
		client: client,
	}
}

type ClientInput struct {
	Name   string
	Status string // empty defaults to active
	Assets map[string]string
}

func (r *EntClientRepository) Create(ctx context.Context, input *ClientInput) (*ent.ClientAccount, error) {
	create := r.client.ClientAccount.
		Create().
		SetName(input.Name)

	if input.Status != "" {
		create = create.SetStatus(clientaccount.Status(input.Status))
	}
	if input.Assets != nil {
		create = create.SetAssets(input.Assets)
	} else {
		create = create.SetAssets(map[string]string{})
	}

	return create.Save(ctx)
}

func (r *EntClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.ClientAccount, error) {
	return r.client.ClientAccount.
		Query().
		Where(clientaccount.ID(id)).
		Only(ctx)
}

// List returns clients ordered by name, optionally filtered by status.
func (r *EntClientRepository) List(ctx context.Context, status string) ([]*ent.ClientAccount, error) {
	query := r.client.ClientAccount.Query()

	if status != "" {
		query = query.Where(clientaccount.StatusEQ(clientaccount.Status(status)))
	}

	return query.
		Order(ent.Asc(clientaccount.FieldName)).
		All(ctx)
}

func (r *EntClientRepository) Update(ctx context.Context, id uuid.UUID, input *ClientInput) (*ent.ClientAccount, error) {
	update := r.client.ClientAccount.
		UpdateOneID(id).
		SetName(input.Name)

	if input.Status != "" {
		update = update.SetStatus(clientaccount.Status(input.Status))
	}
	if input.Assets != nil {
		update = update.SetAssets(input.Assets)
	}

	return update.Save(ctx)
}

// Archive flips the client to archived. Clients are never hard-deleted.
func (r *EntClientRepository) Archive(ctx context.Context, id uuid.UUID) error {
	return r.client.ClientAccount.
		UpdateOneID(id).
		SetStatus(clientaccount.StatusArchived).
		Exec(ctx)
}

// CreateBatch inserts a pre-validated import batch in one bulk write.
func (r *EntClientRepository) CreateBatch(ctx context.Context, inputs []*ClientInput) ([]*ent.ClientAccount, error) {
	builders := make([]*ent.ClientAccountCreate, len(inputs))

	for i, input := range inputs {
		builder := r.client.ClientAccount.
			Create().
			SetName(input.Name)

		if input.Status != "" {
			builder = builder.SetStatus(clientaccount.Status(input.Status))
		}
		if input.Assets != nil {
			builder = builder.SetAssets(input.Assets)
		} else {
			builder = builder.SetAssets(map[string]string{})
		}

		builders[i] = builder
	}

	clients, err := r.client.ClientAccount.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("bulk create clients: %w", err)
	}

	return clients, nil
}
