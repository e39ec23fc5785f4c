// internal/service/assignment_service_test.go
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

func int32Ptr(n int32) *int32 {
	return &n
}

func TestAssignmentService_SetClientAssignment(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewAssignmentService(
		repository.NewEntAssignmentRepository(client),
		repository.NewEntTemplateRepository(client),
	)
	admin := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	ctx := helpers.AuthenticatedContext(admin)

	acme := helpers.CreateTestClient("Acme Fitness")
	template := helpers.CreateGlobalTemplate("cycle", models.TitleScheduleShoot, models.RoleScheduler, 1, 0)
	assignee := helpers.CreateContributorProfile("scheduler@example.com", "SecurePass123!")

	t.Run("sets an assignee override", func(t *testing.T) {
		resp, err := svc.SetClientAssignment(ctx, &opsv1.SetClientAssignmentRequest{
			ClientId:   acme.ID.String(),
			TemplateId: template.ID.String(),
			AssigneeId: stringPtr(assignee.ID.String()),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Assignment.AssigneeId)
		assert.Equal(t, assignee.ID.String(), *resp.Assignment.AssigneeId)
	})

	t.Run("upsert replaces the existing row", func(t *testing.T) {
		resp, err := svc.SetClientAssignment(ctx, &opsv1.SetClientAssignmentRequest{
			ClientId:           acme.ID.String(),
			TemplateId:         template.ID.String(),
			DaysOffsetOverride: int32Ptr(5),
		})
		require.NoError(t, err)

		// The second set cleared the assignee and added an offset
		assert.Nil(t, resp.Assignment.AssigneeId)
		require.NotNil(t, resp.Assignment.DaysOffsetOverride)
		assert.Equal(t, int32(5), *resp.Assignment.DaysOffsetOverride)

		list, err := svc.ListClientAssignments(ctx, &opsv1.ListClientAssignmentsRequest{
			ClientId: acme.ID.String(),
		})
		require.NoError(t, err)
		assert.Len(t, list.Assignments, 1)
	})

	t.Run("unknown template rejected", func(t *testing.T) {
		_, err := svc.SetClientAssignment(ctx, &opsv1.SetClientAssignmentRequest{
			ClientId:   acme.ID.String(),
			TemplateId: uuid.New().String(),
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("requires admin", func(t *testing.T) {
		contributor := helpers.CreateContributorProfile("member@example.com", "SecurePass123!")
		_, err := svc.SetClientAssignment(helpers.AuthenticatedContext(contributor), &opsv1.SetClientAssignmentRequest{
			ClientId:   acme.ID.String(),
			TemplateId: template.ID.String(),
		})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestAssignmentService_ResolveAssignee(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewAssignmentService(
		repository.NewEntAssignmentRepository(client),
		repository.NewEntTemplateRepository(client),
	)
	admin := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	ctx := helpers.AuthenticatedContext(admin)

	acme := helpers.CreateTestClient("Acme Fitness")
	template := helpers.CreateGlobalTemplate("cycle", models.TitleCheckinCall, models.RoleStrategist, 1, 14)
	assignee := helpers.CreateContributorProfile("strategist@example.com", "SecurePass123!")

	t.Run("no override falls back to template defaults", func(t *testing.T) {
		resp, err := svc.ResolveAssignee(ctx, &opsv1.ResolveAssigneeRequest{
			ClientId:   acme.ID.String(),
			TemplateId: template.ID.String(),
		})
		require.NoError(t, err)
		assert.False(t, resp.OverridePresent)
		assert.Nil(t, resp.AssigneeId)
		assert.Equal(t, int32(14), resp.EffectiveDaysOffset)
	})

	t.Run("override with assignee and offset", func(t *testing.T) {
		_, err := svc.SetClientAssignment(ctx, &opsv1.SetClientAssignmentRequest{
			ClientId:           acme.ID.String(),
			TemplateId:         template.ID.String(),
			AssigneeId:         stringPtr(assignee.ID.String()),
			DaysOffsetOverride: int32Ptr(7),
		})
		require.NoError(t, err)

		resp, err := svc.ResolveAssignee(ctx, &opsv1.ResolveAssigneeRequest{
			ClientId:   acme.ID.String(),
			TemplateId: template.ID.String(),
		})
		require.NoError(t, err)
		assert.True(t, resp.OverridePresent)
		require.NotNil(t, resp.AssigneeId)
		assert.Equal(t, assignee.ID.String(), *resp.AssigneeId)
		assert.Equal(t, int32(7), resp.EffectiveDaysOffset)
	})

	t.Run("explicit null pins the pair unassigned", func(t *testing.T) {
		_, err := svc.SetClientAssignment(ctx, &opsv1.SetClientAssignmentRequest{
			ClientId:   acme.ID.String(),
			TemplateId: template.ID.String(),
		})
		require.NoError(t, err)

		resp, err := svc.ResolveAssignee(ctx, &opsv1.ResolveAssigneeRequest{
			ClientId:   acme.ID.String(),
			TemplateId: template.ID.String(),
		})
		require.NoError(t, err)

		// Override present with no assignee is distinct from no override
		assert.True(t, resp.OverridePresent)
		assert.Nil(t, resp.AssigneeId)
		assert.Equal(t, int32(14), resp.EffectiveDaysOffset)
	})

	t.Run("clear restores the default", func(t *testing.T) {
		_, err := svc.ClearClientAssignment(ctx, &opsv1.ClearClientAssignmentRequest{
			ClientId:   acme.ID.String(),
			TemplateId: template.ID.String(),
		})
		require.NoError(t, err)

		resp, err := svc.ResolveAssignee(ctx, &opsv1.ResolveAssigneeRequest{
			ClientId:   acme.ID.String(),
			TemplateId: template.ID.String(),
		})
		require.NoError(t, err)
		assert.False(t, resp.OverridePresent)
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := svc.ResolveAssignee(ctx, &opsv1.ResolveAssigneeRequest{
			ClientId:   acme.ID.String(),
			TemplateId: uuid.New().String(),
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}
