// internal/service/task_service_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/internal/models"
	"github.com/localbzz/clientops/internal/repository"

	_ "github.com/mattn/go-sqlite3"
)

// seedCycleTasks starts a cycle from the standard cycle templates and
// returns its materialized tasks keyed by title.
func seedCycleTasks(t *testing.T, helpers *TestHelpers, client *ent.Client, clientID uuid.UUID, month string) (uuid.UUID, map[string]*ent.Task) {
	t.Helper()

	cycleSvc := NewCycleService(repository.NewEntCycleRepository(client), newActivityLogger(client))
	started, err := cycleSvc.StartCycle(context.Background(), &opsv1.StartCycleRequest{
		ClientId: clientID.String(),
		Month:    month,
	})
	require.NoError(t, err)

	cycleID := uuid.MustParse(started.Cycle.Id)
	byTitle := make(map[string]*ent.Task)
	for _, task := range helpers.TasksOf("cycle", cycleID) {
		byTitle[task.Title] = task
	}
	return cycleID, byTitle
}

func TestTaskService_SetTaskStatus(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewTaskService(repository.NewEntTaskRepository(client), newActivityLogger(client))
	ctx := context.Background()

	acme := helpers.CreateTestClient("Acme Fitness")
	helpers.CreateGlobalTemplate("cycle", models.TitleScheduleShoot, models.RoleScheduler, 1, 0)
	helpers.CreateGlobalTemplate("cycle", models.TitleCheckinCall, models.RoleStrategist, 2, 14)
	helpers.CreateGlobalTemplate("cycle", "Plan Content Calendar", models.RoleStrategist, 3, 3)
	helpers.CreateGlobalTemplate("shoot", models.TitleShootContent, models.RoleShooter, 1, 0)

	_, cycleTasks := seedCycleTasks(t, helpers, client, acme.ID, "2026-04-01")

	t.Run("ordinary task toggles freely", func(t *testing.T) {
		planTask := cycleTasks["Plan Content Calendar"]

		resp, err := svc.SetTaskStatus(ctx, &opsv1.SetTaskStatusRequest{
			TaskId: planTask.ID.String(),
			Status: opsv1.TaskStatus_TASK_STATUS_DONE,
		})
		require.NoError(t, err)
		assert.Equal(t, opsv1.TaskStatus_TASK_STATUS_DONE, resp.Task.Status)

		resp, err = svc.SetTaskStatus(ctx, &opsv1.SetTaskStatusRequest{
			TaskId: planTask.ID.String(),
			Status: opsv1.TaskStatus_TASK_STATUS_TODO,
		})
		require.NoError(t, err)
		assert.Equal(t, opsv1.TaskStatus_TASK_STATUS_TODO, resp.Task.Status)
	})

	t.Run("schedule shoot task cannot be completed directly", func(t *testing.T) {
		_, err := svc.SetTaskStatus(ctx, &opsv1.SetTaskStatusRequest{
			TaskId: cycleTasks[models.TitleScheduleShoot].ID.String(),
			Status: opsv1.TaskStatus_TASK_STATUS_DONE,
		})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
		assert.Contains(t, err.Error(), "scheduling a shoot")
	})

	t.Run("check-in task cannot be completed directly", func(t *testing.T) {
		_, err := svc.SetTaskStatus(ctx, &opsv1.SetTaskStatusRequest{
			TaskId: cycleTasks[models.TitleCheckinCall].ID.String(),
			Status: opsv1.TaskStatus_TASK_STATUS_DONE,
		})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
		assert.Contains(t, err.Error(), "check-in flow")
	})

	t.Run("dialog-gated task can be reopened", func(t *testing.T) {
		scheduleTask := cycleTasks[models.TitleScheduleShoot]
		_, err := client.Task.UpdateOneID(scheduleTask.ID).SetStatus("done").Save(ctx)
		require.NoError(t, err)

		resp, err := svc.SetTaskStatus(ctx, &opsv1.SetTaskStatusRequest{
			TaskId: scheduleTask.ID.String(),
			Status: opsv1.TaskStatus_TASK_STATUS_TODO,
		})
		require.NoError(t, err)
		assert.Equal(t, opsv1.TaskStatus_TASK_STATUS_TODO, resp.Task.Status)
	})

	t.Run("handoff task refused in both directions", func(t *testing.T) {
		shootSvc := NewShootService(repository.NewEntShootRepository(client), newActivityLogger(client))
		created, err := shootSvc.ScheduleShoot(ctx, &opsv1.ScheduleShootRequest{
			ClientId:  acme.ID.String(),
			ShootDate: "2026-04-10",
			Type:      opsv1.ShootType_SHOOT_TYPE_MONTHLY,
		})
		require.NoError(t, err)

		shootTasks := helpers.TasksOf("shoot", uuid.MustParse(created.Shoot.Id))
		require.Len(t, shootTasks, 1)

		for _, target := range []opsv1.TaskStatus{
			opsv1.TaskStatus_TASK_STATUS_DONE,
			opsv1.TaskStatus_TASK_STATUS_TODO,
		} {
			_, err := svc.SetTaskStatus(ctx, &opsv1.SetTaskStatusRequest{
				TaskId: shootTasks[0].ID.String(),
				Status: target,
			})
			require.Error(t, err)
			assert.Equal(t, codes.FailedPrecondition, status.Code(err))
			assert.Contains(t, err.Error(), "driven by shoot status")
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.SetTaskStatus(ctx, &opsv1.SetTaskStatusRequest{
			TaskId: uuid.New().String(),
			Status: opsv1.TaskStatus_TASK_STATUS_DONE,
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestTaskService_UpdateTaskAssignee(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewTaskService(repository.NewEntTaskRepository(client), newActivityLogger(client))
	ctx := context.Background()

	acme := helpers.CreateTestClient("Acme Fitness")
	helpers.CreateGlobalTemplate("cycle", "Plan Content Calendar", models.RoleStrategist, 1, 3)
	assignee := helpers.CreateContributorProfile("strategist@example.com", "SecurePass123!")

	_, cycleTasks := seedCycleTasks(t, helpers, client, acme.ID, "2026-05-01")
	planTask := cycleTasks["Plan Content Calendar"]

	resp, err := svc.UpdateTaskAssignee(ctx, &opsv1.UpdateTaskAssigneeRequest{
		TaskId:     planTask.ID.String(),
		AssigneeId: stringPtr(assignee.ID.String()),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Task.AssigneeId)
	assert.Equal(t, assignee.ID.String(), *resp.Task.AssigneeId)

	resp, err = svc.UpdateTaskAssignee(ctx, &opsv1.UpdateTaskAssigneeRequest{
		TaskId: planTask.ID.String(),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Task.AssigneeId)
}

func TestTaskService_CompleteCheckin(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewTaskService(repository.NewEntTaskRepository(client), newActivityLogger(client))

	acme := helpers.CreateTestClient("Acme Fitness")
	helpers.CreateGlobalTemplate("cycle", models.TitleCheckinCall, models.RoleStrategist, 1, 14)
	helpers.CreateGlobalTemplate("cycle", "Plan Content Calendar", models.RoleStrategist, 2, 3)

	strategist := helpers.CreateContributorProfile("strategist@example.com", "SecurePass123!")
	ctx := helpers.AuthenticatedContext(strategist)

	cycleID, cycleTasks := seedCycleTasks(t, helpers, client, acme.ID, "2026-06-01")
	checkinTask := cycleTasks[models.TitleCheckinCall]

	t.Run("writes entries and completes the task", func(t *testing.T) {
		resp, err := svc.CompleteCheckin(ctx, &opsv1.CompleteCheckinRequest{
			TaskId:     checkinTask.ID.String(),
			Transcript: "Call recording transcript goes here.",
			Notes:      "Client wants more reels next month.",
		})
		require.NoError(t, err)
		assert.Equal(t, opsv1.TaskStatus_TASK_STATUS_DONE, resp.Task.Status)
		assert.Equal(t, int32(2), resp.ContextEntriesCreated)

		entries, err := client.ContextEntry.
			Query().
			Where(contextentry.CycleIDEQ(cycleID)).
			All(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)

		byType := make(map[string]*ent.ContextEntry)
		for _, entry := range entries {
			byType[string(entry.Type)] = entry
		}
		require.Contains(t, byType, models.ContextTypeTranscript)
		require.Contains(t, byType, models.ContextTypeNote)
		assert.Equal(t, "Call recording transcript goes here.", byType[models.ContextTypeTranscript].Content)
		assert.Equal(t, strategist.ID, byType[models.ContextTypeNote].AuthorID)
	})

	t.Run("already done rejected", func(t *testing.T) {
		_, err := svc.CompleteCheckin(ctx, &opsv1.CompleteCheckinRequest{
			TaskId:     checkinTask.ID.String(),
			Transcript: "again",
		})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("non check-in task rejected", func(t *testing.T) {
		_, err := svc.CompleteCheckin(ctx, &opsv1.CompleteCheckinRequest{
			TaskId: cycleTasks["Plan Content Calendar"].ID.String(),
			Notes:  "notes",
		})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("requires authenticated caller", func(t *testing.T) {
		_, freshTasks := seedCycleTasks(t, helpers, client, acme.ID, "2026-07-01")

		_, err := svc.CompleteCheckin(context.Background(), &opsv1.CompleteCheckinRequest{
			TaskId: freshTasks[models.TitleCheckinCall].ID.String(),
		})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("oversized content writes nothing", func(t *testing.T) {
		freshCycleID, freshTasks := seedCycleTasks(t, helpers, client, acme.ID, "2026-08-01")
		freshCheckin := freshTasks[models.TitleCheckinCall]

		_, err := svc.CompleteCheckin(ctx, &opsv1.CompleteCheckinRequest{
			TaskId:     freshCheckin.ID.String(),
			Transcript: "A short transcript that saves fine.",
			Notes:      strings.Repeat("x", models.MaxContextContentLength+1),
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))

		count, err := client.ContextEntry.
			Query().
			Where(contextentry.CycleIDEQ(freshCycleID)).
			Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count, "transcript must roll back with the failed notes")

		reloaded, err := client.Task.Get(context.Background(), freshCheckin.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusTodo, string(reloaded.Status))
	})
}
