// internal/repository/materializer.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/task"
	"github.com/localbzz/clientops/internal/models"
)

// materializeTasks creates one task per resolved template for the parent,
// inside the caller's transaction. Due dates are the anchor plus the
// effective days offset (assignment override wins over the template value),
// assignees come from the per-client override rows, and sort_order is
// copied verbatim. The unique index on (parent_type, parent_id,
// template_id) turns a second materialization of the same parent into a
// constraint violation instead of a silent duplicate task list.
func materializeTasks(ctx context.Context, tx *ent.Tx, clientID uuid.UUID, parent models.ParentRef, anchor time.Time) (int, error) {
	templates, err := resolveTemplates(ctx, tx.TaskTemplate, clientID, parent.Type)
	if err != nil {
		return 0, err
	}
	if len(templates) == 0 {
		// A client with no applicable templates materializes nothing;
		// that is a valid outcome, not an error.
		return 0, nil
	}

	overrides, err := tx.ClientTaskAssignment.
		Query().
		Where(clienttaskassignment.ClientIDEQ(clientID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query assignment overrides: %w", err)
	}

	byTemplate := make(map[uuid.UUID]*ent.ClientTaskAssignment, len(overrides))
	for _, o := range overrides {
		byTemplate[o.TemplateID] = o
	}

	builders := make([]*ent.TaskCreate, len(templates))
	for i, tpl := range templates {
		days := tpl.DaysOffset
		var assignee *uuid.UUID
		if o, ok := byTemplate[tpl.ID]; ok {
			assignee = o.AssigneeID
			if o.DaysOffsetOverride != nil {
				days = *o.DaysOffsetOverride
			}
		}

		builders[i] = tx.Task.
			Create().
			SetParentType(task.ParentType(parent.Type)).
			SetParentID(parent.ID).
			SetClientID(clientID).
			SetTemplateID(tpl.ID).
			SetTitle(tpl.Title).
			SetRole(task.Role(tpl.Role)).
			SetSortOrder(tpl.SortOrder).
			SetDueDate(anchor.AddDate(0, 0, days)).
			SetStatus(task.StatusTodo).
			SetNillableAssigneeID(assignee)
	}

	if _, err := tx.Task.CreateBulk(builders...).Save(ctx); err != nil {
		return 0, fmt.Errorf("create tasks for %s: %w", parent, err)
	}

	return len(templates), nil
}

// effectiveDaysOffset returns the days offset materialization would use
// for one (client, template) pair: the override row's value when present,
// else the template's own.
func effectiveDaysOffset(ctx context.Context, tx *ent.Tx, clientID, templateID uuid.UUID, templateDays int) (int, error) {
	row, err := tx.ClientTaskAssignment.
		Query().
		Where(
			clienttaskassignment.ClientIDEQ(clientID),
			clienttaskassignment.TemplateIDEQ(templateID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return templateDays, nil
		}
		return 0, fmt.Errorf("query assignment override: %w", err)
	}
	if row.DaysOffsetOverride != nil {
		return *row.DaysOffsetOverride, nil
	}
	return templateDays, nil
}

// Helper function for transaction rollback
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}
