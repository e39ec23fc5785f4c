// internal/service/shoot_service_test.go
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
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/internal/models"
	"github.com/localbzz/clientops/internal/repository"

	_ "github.com/mattn/go-sqlite3"
)

func stringPtr(s string) *string {
	return &s
}

// seedShootPipeline creates the standard shoot task templates.
func seedShootPipeline(helpers *TestHelpers) {
	helpers.CreateGlobalTemplate("shoot", models.TitleShootContent, models.RoleShooter, 1, 0)
	helpers.CreateGlobalTemplate("shoot", models.TitleEditContent, models.RoleEditor, 2, 3)
	helpers.CreateGlobalTemplate("shoot", models.TitleScheduleContent, models.RoleScheduler, 3, 7)
}

func TestShootService_ScheduleShoot(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewShootService(repository.NewEntShootRepository(client), newActivityLogger(client))
	cycleSvc := NewCycleService(repository.NewEntCycleRepository(client), newActivityLogger(client))
	ctx := context.Background()

	acme := helpers.CreateTestClient("Acme Fitness")
	helpers.CreateGlobalTemplate("cycle", models.TitleScheduleShoot, models.RoleScheduler, 1, 0)
	seedShootPipeline(helpers)

	started, err := cycleSvc.StartCycle(ctx, &opsv1.StartCycleRequest{
		ClientId: acme.ID.String(),
		Month:    "2026-07-01",
	})
	require.NoError(t, err)
	cycleID := uuid.MustParse(started.Cycle.Id)

	cycleTasks := helpers.TasksOf("cycle", cycleID)
	require.Len(t, cycleTasks, 1)
	scheduleTask := cycleTasks[0]

	t.Run("materializes shoot tasks and completes the cycle task", func(t *testing.T) {
		resp, err := svc.ScheduleShoot(ctx, &opsv1.ScheduleShootRequest{
			ClientId:    acme.ID.String(),
			CycleId:     stringPtr(started.Cycle.Id),
			ShootDate:   "2026-07-10",
			Type:        opsv1.ShootType_SHOOT_TYPE_MONTHLY,
			ShootTime:   stringPtr("14:30"),
			Location:    stringPtr("Downtown Studio"),
			CycleTaskId: stringPtr(scheduleTask.ID.String()),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Shoot)
		assert.Equal(t, int32(3), resp.TasksCreated)
		assert.Equal(t, opsv1.ShootStatus_SHOOT_STATUS_PLANNED, resp.Shoot.Status)

		shootID := uuid.MustParse(resp.Shoot.Id)
		tasks := helpers.TasksOf("shoot", shootID)
		require.Len(t, tasks, 3)

		assert.Equal(t, models.TitleShootContent, tasks[0].Title)
		require.NotNil(t, tasks[0].DueDate)
		assert.Equal(t, "2026-07-10", tasks[0].DueDate.Format("2006-01-02"))

		assert.Equal(t, models.TitleEditContent, tasks[1].Title)
		require.NotNil(t, tasks[1].DueDate)
		assert.Equal(t, "2026-07-13", tasks[1].DueDate.Format("2006-01-02"))

		assert.Equal(t, models.TitleScheduleContent, tasks[2].Title)
		require.NotNil(t, tasks[2].DueDate)
		assert.Equal(t, "2026-07-17", tasks[2].DueDate.Format("2006-01-02"))

		// The originating "Schedule Shoot" task flipped to done
		reloaded, err := client.Task.Get(ctx, scheduleTask.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusDone, string(reloaded.Status))
	})

	t.Run("unknown cycle task rejected", func(t *testing.T) {
		_, err := svc.ScheduleShoot(ctx, &opsv1.ScheduleShootRequest{
			ClientId:    acme.ID.String(),
			ShootDate:   "2026-07-20",
			Type:        opsv1.ShootType_SHOOT_TYPE_ADHOC,
			CycleTaskId: stringPtr(uuid.New().String()),
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("adhoc shoot without a cycle", func(t *testing.T) {
		resp, err := svc.ScheduleShoot(ctx, &opsv1.ScheduleShootRequest{
			ClientId:  acme.ID.String(),
			ShootDate: "2026-07-25",
			Type:      opsv1.ShootType_SHOOT_TYPE_ADHOC,
		})
		require.NoError(t, err)
		assert.Nil(t, resp.Shoot.CycleId)
		assert.Equal(t, int32(3), resp.TasksCreated)
	})

	t.Run("invalid shoot date", func(t *testing.T) {
		_, err := svc.ScheduleShoot(ctx, &opsv1.ScheduleShootRequest{
			ClientId:  acme.ID.String(),
			ShootDate: "July 10",
			Type:      opsv1.ShootType_SHOOT_TYPE_MONTHLY,
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestShootService_RescheduleShoot(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewShootService(repository.NewEntShootRepository(client), newActivityLogger(client))
	ctx := context.Background()

	acme := helpers.CreateTestClient("Acme Fitness")
	seedShootPipeline(helpers)

	created, err := svc.ScheduleShoot(ctx, &opsv1.ScheduleShootRequest{
		ClientId:  acme.ID.String(),
		ShootDate: "2026-08-05",
		Type:      opsv1.ShootType_SHOOT_TYPE_MONTHLY,
	})
	require.NoError(t, err)
	shootID := uuid.MustParse(created.Shoot.Id)

	resp, err := svc.RescheduleShoot(ctx, &opsv1.RescheduleShootRequest{
		ShootId:   created.Shoot.Id,
		ShootDate: "2026-08-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-12", resp.Shoot.ShootDate)

	tasks := helpers.TasksOf("shoot", shootID)
	require.Len(t, tasks, 3)
	assert.Equal(t, "2026-08-12", tasks[0].DueDate.Format("2006-01-02"))
	assert.Equal(t, "2026-08-15", tasks[1].DueDate.Format("2006-01-02"))
	assert.Equal(t, "2026-08-19", tasks[2].DueDate.Format("2006-01-02"))
}

func TestShootService_UpdateShootStatus(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewShootService(repository.NewEntShootRepository(client), newActivityLogger(client))
	ctx := context.Background()

	acme := helpers.CreateTestClient("Acme Fitness")
	seedShootPipeline(helpers)

	created, err := svc.ScheduleShoot(ctx, &opsv1.ScheduleShootRequest{
		ClientId:  acme.ID.String(),
		ShootDate: "2026-09-03",
		Type:      opsv1.ShootType_SHOOT_TYPE_MONTHLY,
	})
	require.NoError(t, err)
	shootID := uuid.MustParse(created.Shoot.Id)

	taskByTitle := func(title string) *ent.Task {
		for _, task := range helpers.TasksOf("shoot", shootID) {
			if task.Title == title {
				return task
			}
		}
		t.Fatalf("no task titled %q", title)
		return nil
	}

	t.Run("shot completes Shoot Content", func(t *testing.T) {
		_, err := svc.UpdateShootStatus(ctx, &opsv1.UpdateShootStatusRequest{
			ShootId: created.Shoot.Id,
			Status:  opsv1.ShootStatus_SHOOT_STATUS_SHOT,
		})
		require.NoError(t, err)

		assert.Equal(t, models.TaskStatusDone, string(taskByTitle(models.TitleShootContent).Status))
		assert.Equal(t, models.TaskStatusTodo, string(taskByTitle(models.TitleEditContent).Status))
		assert.Equal(t, models.TaskStatusTodo, string(taskByTitle(models.TitleScheduleContent).Status))
	})

	t.Run("edited completes Edit Content", func(t *testing.T) {
		_, err := svc.UpdateShootStatus(ctx, &opsv1.UpdateShootStatusRequest{
			ShootId: created.Shoot.Id,
			Status:  opsv1.ShootStatus_SHOOT_STATUS_EDITED,
		})
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusDone, string(taskByTitle(models.TitleEditContent).Status))
	})

	t.Run("delivered completes Schedule Content", func(t *testing.T) {
		_, err := svc.UpdateShootStatus(ctx, &opsv1.UpdateShootStatusRequest{
			ShootId: created.Shoot.Id,
			Status:  opsv1.ShootStatus_SHOOT_STATUS_DELIVERED,
		})
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusDone, string(taskByTitle(models.TitleScheduleContent).Status))
	})

	t.Run("unknown shoot", func(t *testing.T) {
		_, err := svc.UpdateShootStatus(ctx, &opsv1.UpdateShootStatusRequest{
			ShootId: uuid.New().String(),
			Status:  opsv1.ShootStatus_SHOOT_STATUS_SHOT,
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestShootService_ListShoots(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewShootService(repository.NewEntShootRepository(client), newActivityLogger(client))
	cycleSvc := NewCycleService(repository.NewEntCycleRepository(client), newActivityLogger(client))
	ctx := context.Background()

	acme := helpers.CreateTestClient("Acme Fitness")
	started, err := cycleSvc.StartCycle(ctx, &opsv1.StartCycleRequest{
		ClientId: acme.ID.String(),
		Month:    "2026-10-01",
	})
	require.NoError(t, err)

	_, err = svc.ScheduleShoot(ctx, &opsv1.ScheduleShootRequest{
		ClientId:  acme.ID.String(),
		CycleId:   stringPtr(started.Cycle.Id),
		ShootDate: "2026-10-08",
		Type:      opsv1.ShootType_SHOOT_TYPE_MONTHLY,
	})
	require.NoError(t, err)
	_, err = svc.ScheduleShoot(ctx, &opsv1.ScheduleShootRequest{
		ClientId:  acme.ID.String(),
		ShootDate: "2026-10-20",
		Type:      opsv1.ShootType_SHOOT_TYPE_ADHOC,
	})
	require.NoError(t, err)

	all, err := svc.ListShoots(ctx, &opsv1.ListShootsRequest{ClientId: acme.ID.String()})
	require.NoError(t, err)
	assert.Len(t, all.Shoots, 2)

	scoped, err := svc.ListShoots(ctx, &opsv1.ListShootsRequest{
		ClientId: acme.ID.String(),
		CycleId:  stringPtr(started.Cycle.Id),
	})
	require.NoError(t, err)
	require.Len(t, scoped.Shoots, 1)
	assert.Equal(t, opsv1.ShootType_SHOOT_TYPE_MONTHLY, scoped.Shoots[0].Type)
}
