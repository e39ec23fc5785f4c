// internal/repository/cycle_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/internal/models"
)

type EntCycleRepository struct {
	client *ent.Client
}

func NewEntCycleRepository(client *ent.Client) *EntCycleRepository {
	return &EntCycleRepository{
		client: client,
	}
}

// NormalizeMonth truncates a date to the first of its month in UTC. Cycle
// months are stored normalized and never mutated afterwards.
func NormalizeMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// StartCycle creates the cycle and materializes its task list in a single
// transaction. Returns the cycle and the number of tasks created.
func (r *EntCycleRepository) StartCycle(ctx context.Context, clientID uuid.UUID, month time.Time) (*ent.Cycle, int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("starting transaction: %w", err)
	}

	normalized := NormalizeMonth(month)

	c, err := tx.Cycle.
		Create().
		SetClientID(clientID).
		SetMonth(normalized).
		SetStatus(cycle.StatusPlanning).
		Save(ctx)
	if err != nil {
		return nil, 0, rollback(tx, fmt.Errorf("create cycle: %w", err))
	}

	created, err := materializeTasks(ctx, tx, clientID, models.CycleRef(c.ID), normalized)
	if err != nil {
		return nil, 0, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("commit cycle start: %w", err)
	}

	return c, created, nil
}

// List returns the client's cycles, most recent month first.
func (r *EntCycleRepository) List(ctx context.Context, clientID uuid.UUID) ([]*ent.Cycle, error) {
	return r.client.Cycle.
		Query().
		Where(cycle.ClientIDEQ(clientID)).
		Order(ent.Desc(cycle.FieldMonth)).
		All(ctx)
}

// Current returns the most recent cycle by month. Always computed from the
// store, never cached.
func (r *EntCycleRepository) Current(ctx context.Context, clientID uuid.UUID) (*ent.Cycle, error) {
	return r.client.Cycle.
		Query().
		Where(cycle.ClientIDEQ(clientID)).
		Order(ent.Desc(cycle.FieldMonth)).
		First(ctx)
}

func (r *EntCycleRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Cycle, error) {
	return r.client.Cycle.
		Query().
		Where(cycle.ID(id)).
		Only(ctx)
}

func (r *EntCycleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*ent.Cycle, error) {
	return r.client.Cycle.
		UpdateOneID(id).
		SetStatus(cycle.Status(status)).
		Save(ctx)
}
