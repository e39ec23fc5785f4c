// internal/repository/shoot_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/shoot"
	"github.com/localbzz/clientops/ent/generated/task"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
	"github.com/localbzz/clientops/internal/models"
)

type EntShootRepository struct {
	client *ent.Client
}

func NewEntShootRepository(client *ent.Client) *EntShootRepository {
	return &EntShootRepository{
		client: client,
	}
}

// ShootInput carries everything ScheduleShoot needs. CycleTaskID, when set,
// is the originating "Schedule Shoot" cycle task, completed in the same
// transaction that creates the shoot.
type ShootInput struct {
	ClientID     uuid.UUID
	CycleID      *uuid.UUID
	ShootDate    time.Time
	Type         string
	ShootTime    *string
	Location     *string
	CalendarLink *string
	CycleTaskID  *uuid.UUID
}

// ScheduleShoot creates the shoot, materializes its task list anchored at
// the shoot date, and completes the originating cycle task if one was
// given, all in one transaction.
func (r *EntShootRepository) ScheduleShoot(ctx context.Context, input *ShootInput) (*ent.Shoot, int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("starting transaction: %w", err)
	}

	create := tx.Shoot.
		Create().
		SetClientID(input.ClientID).
		SetNillableCycleID(input.CycleID).
		SetShootDate(input.ShootDate).
		SetType(shoot.Type(input.Type)).
		SetStatus(shoot.StatusPlanned)

	if input.ShootTime != nil {
		create = create.SetShootTime(*input.ShootTime)
	}
	if input.Location != nil {
		create = create.SetLocation(*input.Location)
	}
	if input.CalendarLink != nil {
		create = create.SetCalendarLink(*input.CalendarLink)
	}

	s, err := create.Save(ctx)
	if err != nil {
		return nil, 0, rollback(tx, fmt.Errorf("create shoot: %w", err))
	}

	created, err := materializeTasks(ctx, tx, input.ClientID, models.ShootRef(s.ID), input.ShootDate)
	if err != nil {
		return nil, 0, rollback(tx, err)
	}

	if input.CycleTaskID != nil {
		cycleTask, err := tx.Task.
			Query().
			Where(
				task.ID(*input.CycleTaskID),
				task.ParentTypeEQ(task.ParentTypeCycle),
			).
			Only(ctx)
		if err != nil {
			return nil, 0, rollback(tx, fmt.Errorf("load cycle task: %w", err))
		}
		if _, err := cycleTask.Update().SetStatus(task.StatusDone).Save(ctx); err != nil {
			return nil, 0, rollback(tx, fmt.Errorf("complete cycle task: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("commit shoot schedule: %w", err)
	}

	return s, created, nil
}

// Reschedule moves the anchor date and recomputes the due date of every
// task materialized from a template, using the template's current offset
// (plus any per-client override), in one transaction.
func (r *EntShootRepository) Reschedule(ctx context.Context, shootID uuid.UUID, newDate time.Time) (*ent.Shoot, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	s, err := tx.Shoot.
		UpdateOneID(shootID).
		SetShootDate(newDate).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("update shoot date: %w", err))
	}

	tasks, err := tx.Task.
		Query().
		Where(
			task.ParentTypeEQ(task.ParentTypeShoot),
			task.ParentIDEQ(shootID),
			task.TemplateIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("query shoot tasks: %w", err))
	}

	for _, t := range tasks {
		tpl, err := tx.TaskTemplate.
			Query().
			Where(tasktemplate.ID(*t.TemplateID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				// Template deleted since materialization; leave the due date alone.
				continue
			}
			return nil, rollback(tx, fmt.Errorf("query template: %w", err))
		}

		days, err := effectiveDaysOffset(ctx, tx, s.ClientID, tpl.ID, tpl.DaysOffset)
		if err != nil {
			return nil, rollback(tx, err)
		}

		if err := tx.Task.
			UpdateOneID(t.ID).
			SetDueDate(newDate.AddDate(0, 0, days)).
			Exec(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("update task due date: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reschedule: %w", err)
	}

	return s, nil
}

// UpdateStatus advances the production pipeline and completes the matching
// handoff task ("Shoot Content", "Edit Content", "Schedule Content") on the
// shoot's task list in the same transaction. The handoff tasks are system
// tasks: this transition is the only way they get done.
func (r *EntShootRepository) UpdateStatus(ctx context.Context, shootID uuid.UUID, status string) (*ent.Shoot, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	s, err := tx.Shoot.
		UpdateOneID(shootID).
		SetStatus(shoot.Status(status)).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("update shoot status: %w", err))
	}

	if title := models.HandoffTitleForShootStatus(status); title != "" {
		_, err := tx.Task.
			Update().
			Where(
				task.ParentTypeEQ(task.ParentTypeShoot),
				task.ParentIDEQ(shootID),
				task.TitleEQ(title),
				task.StatusEQ(task.StatusTodo),
			).
			SetStatus(task.StatusDone).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("complete handoff task: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit status update: %w", err)
	}

	return s, nil
}

// List returns a client's shoots, newest first, optionally narrowed to one
// cycle.
func (r *EntShootRepository) List(ctx context.Context, clientID uuid.UUID, cycleID *uuid.UUID) ([]*ent.Shoot, error) {
	query := r.client.Shoot.
		Query().
		Where(shoot.ClientIDEQ(clientID))

	if cycleID != nil {
		query = query.Where(shoot.CycleIDEQ(*cycleID))
	}

	return query.
		Order(ent.Desc(shoot.FieldShootDate)).
		All(ctx)
}

// Upcoming returns shoots from today onward across all clients, soonest
// first.
func (r *EntShootRepository) Upcoming(ctx context.Context, limit int) ([]*ent.Shoot, error) {
	if limit <= 0 {
		limit = 10
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	return r.client.Shoot.
		Query().
		Where(shoot.ShootDateGTE(today)).
		Order(ent.Asc(shoot.FieldShootDate)).
		Limit(limit).
		All(ctx)
}

func (r *EntShootRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Shoot, error) {
	return r.client.Shoot.
		Query().
		Where(shoot.ID(id)).
		Only(ctx)
}
