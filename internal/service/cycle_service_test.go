// internal/service/cycle_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	"github.com/localbzz/clientops/internal/models"
	"github.com/localbzz/clientops/internal/repository"

	_ "github.com/mattn/go-sqlite3"
)

func TestCycleService_StartCycle(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewCycleService(repository.NewEntCycleRepository(client), newActivityLogger(client))
	ctx := context.Background()

	acme := helpers.CreateTestClient("Acme Fitness")
	assignee := helpers.CreateContributorProfile("scheduler@example.com", "SecurePass123!")

	schedule := helpers.CreateGlobalTemplate("cycle", models.TitleScheduleShoot, models.RoleScheduler, 1, 0)
	checkin := helpers.CreateGlobalTemplate("cycle", models.TitleCheckinCall, models.RoleStrategist, 2, 14)
	planning := helpers.CreateGlobalTemplate("cycle", "Plan Content Calendar", models.RoleStrategist, 3, 3)

	helpers.SetAssignment(acme.ID, schedule.ID, &assignee.ID, nil)
	override := 5
	helpers.SetAssignment(acme.ID, planning.ID, nil, &override)

	t.Run("materializes resolved templates", func(t *testing.T) {
		resp, err := svc.StartCycle(ctx, &opsv1.StartCycleRequest{
			ClientId: acme.ID.String(),
			Month:    "2026-03-01",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Cycle)
		assert.Equal(t, int32(3), resp.TasksCreated)
		assert.Equal(t, opsv1.CycleStatus_CYCLE_STATUS_PLANNING, resp.Cycle.Status)

		cycleID := uuid.MustParse(resp.Cycle.Id)
		tasks := helpers.TasksOf("cycle", cycleID)
		require.Len(t, tasks, 3)

		// Template order is preserved
		assert.Equal(t, models.TitleScheduleShoot, tasks[0].Title)
		assert.Equal(t, models.TitleCheckinCall, tasks[1].Title)
		assert.Equal(t, "Plan Content Calendar", tasks[2].Title)

		for _, task := range tasks {
			assert.Equal(t, models.TaskStatusTodo, string(task.Status))
		}

		// due_date = month anchor + days_offset
		require.NotNil(t, tasks[0].DueDate)
		assert.Equal(t, "2026-03-01", tasks[0].DueDate.Format("2006-01-02"))
		require.NotNil(t, tasks[1].DueDate)
		assert.Equal(t, "2026-03-15", tasks[1].DueDate.Format("2006-01-02"))

		// Assignment override: explicit assignee on the schedule step
		require.NotNil(t, tasks[0].AssigneeID)
		assert.Equal(t, assignee.ID, *tasks[0].AssigneeID)

		// An override row with no assignee pins the task unassigned,
		// while its days offset override still applies
		assert.Nil(t, tasks[2].AssigneeID)
		require.NotNil(t, tasks[2].DueDate)
		assert.Equal(t, "2026-03-06", tasks[2].DueDate.Format("2006-01-02"))

		// No override at all leaves the check-in unassigned too
		assert.Nil(t, tasks[1].AssigneeID)
	})

	t.Run("duplicate month rejected", func(t *testing.T) {
		_, err := svc.StartCycle(ctx, &opsv1.StartCycleRequest{
			ClientId: acme.ID.String(),
			Month:    "2026-03-15",
		})
		require.Error(t, err)
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("same month for another client is fine", func(t *testing.T) {
		other := helpers.CreateTestClient("Other Co")

		resp, err := svc.StartCycle(ctx, &opsv1.StartCycleRequest{
			ClientId: other.ID.String(),
			Month:    "2026-03-01",
		})
		require.NoError(t, err)
		assert.Equal(t, int32(3), resp.TasksCreated)
	})

	t.Run("invalid month format", func(t *testing.T) {
		_, err := svc.StartCycle(ctx, &opsv1.StartCycleRequest{
			ClientId: acme.ID.String(),
			Month:    "March 2026",
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestCycleService_GetCurrentCycle(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewCycleService(repository.NewEntCycleRepository(client), newActivityLogger(client))
	ctx := context.Background()

	acme := helpers.CreateTestClient("Acme Fitness")

	t.Run("empty when no cycles exist", func(t *testing.T) {
		resp, err := svc.GetCurrentCycle(ctx, &opsv1.GetCurrentCycleRequest{
			ClientId: acme.ID.String(),
		})
		require.NoError(t, err)
		assert.Nil(t, resp.Cycle)
	})

	t.Run("latest month wins regardless of creation order", func(t *testing.T) {
		_, err := svc.StartCycle(ctx, &opsv1.StartCycleRequest{
			ClientId: acme.ID.String(),
			Month:    "2026-05-01",
		})
		require.NoError(t, err)
		_, err = svc.StartCycle(ctx, &opsv1.StartCycleRequest{
			ClientId: acme.ID.String(),
			Month:    "2026-04-01",
		})
		require.NoError(t, err)

		resp, err := svc.GetCurrentCycle(ctx, &opsv1.GetCurrentCycleRequest{
			ClientId: acme.ID.String(),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Cycle)
		assert.Equal(t, "2026-05-01", resp.Cycle.Month)
	})
}

func TestCycleService_UpdateCycleStatus(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewCycleService(repository.NewEntCycleRepository(client), newActivityLogger(client))
	admin := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	contributor := helpers.CreateContributorProfile("member@example.com", "SecurePass123!")

	acme := helpers.CreateTestClient("Acme Fitness")
	started, err := svc.StartCycle(context.Background(), &opsv1.StartCycleRequest{
		ClientId: acme.ID.String(),
		Month:    "2026-06-01",
	})
	require.NoError(t, err)

	t.Run("admin can activate", func(t *testing.T) {
		_, err := svc.UpdateCycleStatus(helpers.AuthenticatedContext(admin), &opsv1.UpdateCycleStatusRequest{
			CycleId: started.Cycle.Id,
			Status:  opsv1.CycleStatus_CYCLE_STATUS_ACTIVE,
		})
		require.NoError(t, err)

		resp, err := svc.ListCycles(context.Background(), &opsv1.ListCyclesRequest{ClientId: acme.ID.String()})
		require.NoError(t, err)
		require.Len(t, resp.Cycles, 1)
		assert.Equal(t, opsv1.CycleStatus_CYCLE_STATUS_ACTIVE, resp.Cycles[0].Status)
	})

	t.Run("contributor denied", func(t *testing.T) {
		_, err := svc.UpdateCycleStatus(helpers.AuthenticatedContext(contributor), &opsv1.UpdateCycleStatusRequest{
			CycleId: started.Cycle.Id,
			Status:  opsv1.CycleStatus_CYCLE_STATUS_COMPLETED,
		})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("unknown cycle", func(t *testing.T) {
		_, err := svc.UpdateCycleStatus(helpers.AuthenticatedContext(admin), &opsv1.UpdateCycleStatusRequest{
			CycleId: uuid.New().String(),
			Status:  opsv1.CycleStatus_CYCLE_STATUS_COMPLETED,
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}
