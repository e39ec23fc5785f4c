// internal/repository/assignment_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
)

type EntAssignmentRepository struct {
	client *ent.Client
}

func NewEntAssignmentRepository(client *ent.Client) *EntAssignmentRepository {
	return &EntAssignmentRepository{
		client: client,
	}
}

// ResolvedAssignment is the resolver output for one (client, template) pair.
// Found distinguishes "no override row" from "row with a nil assignee":
// both leave the task unassigned, but only the latter is an explicit pin.
type ResolvedAssignment struct {
	AssigneeID *uuid.UUID
	DaysOffset *int
	Found      bool
}

// Resolve looks up the override row for (client, template). When a row
// exists its assignee_id is authoritative, nil included; when none exists
// the task is simply unassigned; there is no further fallback chain.
func (r *EntAssignmentRepository) Resolve(ctx context.Context, clientID, templateID uuid.UUID) (ResolvedAssignment, error) {
	row, err := r.client.ClientTaskAssignment.
		Query().
		Where(
			clienttaskassignment.ClientIDEQ(clientID),
			clienttaskassignment.TemplateIDEQ(templateID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ResolvedAssignment{}, nil
		}
		return ResolvedAssignment{}, fmt.Errorf("query assignment: %w", err)
	}

	return ResolvedAssignment{
		AssigneeID: row.AssigneeID,
		DaysOffset: row.DaysOffsetOverride,
		Found:      true,
	}, nil
}

// ListByClient returns every override row for a client.
func (r *EntAssignmentRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*ent.ClientTaskAssignment, error) {
	return r.client.ClientTaskAssignment.
		Query().
		Where(clienttaskassignment.ClientIDEQ(clientID)).
		All(ctx)
}

// Set upserts the override row for (client, template). A nil assigneeID
// pins the task to "explicitly unassigned"; removing the override is
// Clear's job, not Set's.
func (r *EntAssignmentRepository) Set(ctx context.Context, clientID, templateID uuid.UUID, assigneeID *uuid.UUID, daysOffsetOverride *int) (*ent.ClientTaskAssignment, error) {
	existing, err := r.client.ClientTaskAssignment.
		Query().
		Where(
			clienttaskassignment.ClientIDEQ(clientID),
			clienttaskassignment.TemplateIDEQ(templateID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query assignment: %w", err)
	}

	if existing != nil {
		update := existing.Update()
		if assigneeID != nil {
			update = update.SetAssigneeID(*assigneeID)
		} else {
			update = update.ClearAssigneeID()
		}
		if daysOffsetOverride != nil {
			update = update.SetDaysOffsetOverride(*daysOffsetOverride)
		} else {
			update = update.ClearDaysOffsetOverride()
		}
		return update.Save(ctx)
	}

	return r.client.ClientTaskAssignment.
		Create().
		SetClientID(clientID).
		SetTemplateID(templateID).
		SetNillableAssigneeID(assigneeID).
		SetNillableDaysOffsetOverride(daysOffsetOverride).
		Save(ctx)
}

// Clear deletes the override row, restoring the default (unassigned,
// template offset). Deleting is semantically different from setting a nil
// assignee.
func (r *EntAssignmentRepository) Clear(ctx context.Context, clientID, templateID uuid.UUID) error {
	_, err := r.client.ClientTaskAssignment.
		Delete().
		Where(
			clienttaskassignment.ClientIDEQ(clientID),
			clienttaskassignment.TemplateIDEQ(templateID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}
