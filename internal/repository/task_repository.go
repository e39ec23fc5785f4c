// internal/repository/task_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/task"
	"github.com/localbzz/clientops/internal/models"
)

type EntTaskRepository struct {
	client *ent.Client
}

func NewEntTaskRepository(client *ent.Client) *EntTaskRepository {
	return &EntTaskRepository{
		client: client,
	}
}

func (r *EntTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.ID(id)).
		Only(ctx)
}

// ListByParent returns a parent's tasks in template order.
func (r *EntTaskRepository) ListByParent(ctx context.Context, parent models.ParentRef) ([]*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(
			task.ParentTypeEQ(task.ParentType(parent.Type)),
			task.ParentIDEQ(parent.ID),
		).
		Order(ent.Asc(task.FieldSortOrder), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
}

// ListByClient returns every task across all of a client's cycles and
// shoots.
func (r *EntTaskRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.ClientIDEQ(clientID)).
		Order(ent.Asc(task.FieldSortOrder), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
}

// Pending returns open tasks across all clients.
func (r *EntTaskRepository) Pending(ctx context.Context, limit int) ([]*ent.Task, error) {
	if limit <= 0 {
		limit = 50
	}

	return r.client.Task.
		Query().
		Where(task.StatusEQ(task.StatusTodo)).
		Order(ent.Asc(task.FieldSortOrder)).
		Limit(limit).
		All(ctx)
}

// UpdateStatus flips a task's completion state. Callers are responsible
// for refusing the gated titles first; the repository applies the write
// as-is.
func (r *EntTaskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*ent.Task, error) {
	return r.client.Task.
		UpdateOneID(id).
		SetStatus(task.Status(status)).
		Save(ctx)
}

// UpdateAssignee sets or clears a task's assignee.
func (r *EntTaskRepository) UpdateAssignee(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID) (*ent.Task, error) {
	update := r.client.Task.UpdateOneID(id)
	if assigneeID != nil {
		update = update.SetAssigneeID(*assigneeID)
	} else {
		update = update.ClearAssigneeID()
	}
	return update.Save(ctx)
}

// CompleteCheckin writes the supplied context entries and marks the
// check-in task done in one transaction. Either everything lands or
// nothing does; a failed note never leaves the task open with a saved
// transcript.
func (r *EntTaskRepository) CompleteCheckin(ctx context.Context, t *ent.Task, cycleID uuid.UUID, authorID uuid.UUID, transcript, notes string) (*ent.Task, int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("starting transaction: %w", err)
	}

	entries := 0

	if transcript != "" {
		if err := tx.ContextEntry.
			Create().
			SetClientID(t.ClientID).
			SetCycleID(cycleID).
			SetAuthorID(authorID).
			SetType(contextentry.TypeTranscript).
			SetContent(transcript).
			Exec(ctx); err != nil {
			return nil, 0, rollback(tx, fmt.Errorf("save transcript: %w", err))
		}
		entries++
	}

	if notes != "" {
		if err := tx.ContextEntry.
			Create().
			SetClientID(t.ClientID).
			SetCycleID(cycleID).
			SetAuthorID(authorID).
			SetType(contextentry.TypeNote).
			SetContent(notes).
			Exec(ctx); err != nil {
			return nil, 0, rollback(tx, fmt.Errorf("save notes: %w", err))
		}
		entries++
	}

	updated, err := tx.Task.
		UpdateOneID(t.ID).
		SetStatus(task.StatusDone).
		Save(ctx)
	if err != nil {
		return nil, 0, rollback(tx, fmt.Errorf("complete check-in task: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("commit check-in: %w", err)
	}

	return updated, entries, nil
}
