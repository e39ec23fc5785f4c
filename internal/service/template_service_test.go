// internal/service/template_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	"github.com/localbzz/clientops/internal/models"
	"github.com/localbzz/clientops/internal/repository"

	_ "github.com/mattn/go-sqlite3"
)

func TestTemplateService_ResolveTemplates(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewTemplateService(repository.NewEntTemplateRepository(client))
	ctx := context.Background()

	acme := helpers.CreateTestClient("Acme Fitness")
	other := helpers.CreateTestClient("Other Co")

	helpers.CreateGlobalTemplate("cycle", models.TitleScheduleShoot, models.RoleScheduler, 1, 0)
	helpers.CreateGlobalTemplate("cycle", models.TitleCheckinCall, models.RoleStrategist, 2, 14)
	helpers.CreateGlobalTemplate("cycle", "Plan Content Calendar", models.RoleStrategist, 3, 3)

	t.Run("falls back to global set", func(t *testing.T) {
		resp, err := svc.ResolveTemplates(ctx, &opsv1.ResolveTemplatesRequest{
			ClientId:   acme.ID.String(),
			ParentType: opsv1.ParentType_PARENT_TYPE_CYCLE,
		})
		require.NoError(t, err)
		require.Len(t, resp.Templates, 3)
		assert.Equal(t, models.TitleScheduleShoot, resp.Templates[0].Title)
		assert.Nil(t, resp.Templates[0].ClientId)
	})

	t.Run("client set replaces global entirely", func(t *testing.T) {
		helpers.CreateClientTemplate(acme.ID, "cycle", "Acme Strategy Call", models.RoleStrategist, 1, 2)

		resp, err := svc.ResolveTemplates(ctx, &opsv1.ResolveTemplatesRequest{
			ClientId:   acme.ID.String(),
			ParentType: opsv1.ParentType_PARENT_TYPE_CYCLE,
		})
		require.NoError(t, err)

		// One client template means the three globals are not used at all
		require.Len(t, resp.Templates, 1)
		assert.Equal(t, "Acme Strategy Call", resp.Templates[0].Title)
		require.NotNil(t, resp.Templates[0].ClientId)
		assert.Equal(t, acme.ID.String(), *resp.Templates[0].ClientId)
	})

	t.Run("other clients still get the global set", func(t *testing.T) {
		resp, err := svc.ResolveTemplates(ctx, &opsv1.ResolveTemplatesRequest{
			ClientId:   other.ID.String(),
			ParentType: opsv1.ParentType_PARENT_TYPE_CYCLE,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Templates, 3)
	})

	t.Run("inactive client templates do not count as an override", func(t *testing.T) {
		third := helpers.CreateTestClient("Third Co")

		tpl := helpers.CreateClientTemplate(third.ID, "cycle", "Disabled Step", models.RoleEditor, 1, 0)
		_, err := svc.UpdateTemplate(helpers.AuthenticatedContext(helpers.CreateAdminProfile("tpl-admin@example.com", "SecurePass123!")), &opsv1.UpdateTemplateRequest{
			Id:       tpl.ID.String(),
			IsActive: boolPtr(false),
		})
		require.NoError(t, err)

		resp, err := svc.ResolveTemplates(ctx, &opsv1.ResolveTemplatesRequest{
			ClientId:   third.ID.String(),
			ParentType: opsv1.ParentType_PARENT_TYPE_CYCLE,
		})
		require.NoError(t, err)

		// With its only client template inactive, the client falls back
		assert.Len(t, resp.Templates, 3)
	})

	t.Run("parent types resolve independently", func(t *testing.T) {
		helpers.CreateGlobalTemplate("shoot", models.TitleShootContent, models.RoleShooter, 1, 0)

		resp, err := svc.ResolveTemplates(ctx, &opsv1.ResolveTemplatesRequest{
			ClientId:   acme.ID.String(),
			ParentType: opsv1.ParentType_PARENT_TYPE_SHOOT,
		})
		require.NoError(t, err)

		// Acme's cycle override does not touch its shoot resolution
		require.Len(t, resp.Templates, 1)
		assert.Equal(t, models.TitleShootContent, resp.Templates[0].Title)
	})

	t.Run("missing parent type rejected", func(t *testing.T) {
		_, err := svc.ResolveTemplates(ctx, &opsv1.ResolveTemplatesRequest{
			ClientId: acme.ID.String(),
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestTemplateService_ReorderTemplates(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewTemplateService(repository.NewEntTemplateRepository(client))
	admin := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	ctx := helpers.AuthenticatedContext(admin)

	first := helpers.CreateGlobalTemplate("cycle", "First", models.RoleStrategist, 1, 0)
	second := helpers.CreateGlobalTemplate("cycle", "Second", models.RoleStrategist, 2, 0)
	third := helpers.CreateGlobalTemplate("cycle", "Third", models.RoleStrategist, 3, 0)

	_, err := svc.ReorderTemplates(ctx, &opsv1.ReorderTemplatesRequest{
		TemplateIds: []string{third.ID.String(), first.ID.String(), second.ID.String()},
	})
	require.NoError(t, err)

	resp, err := svc.ListGlobalTemplates(ctx, &opsv1.ListGlobalTemplatesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Templates, 3)

	assert.Equal(t, "Third", resp.Templates[0].Title)
	assert.Equal(t, int32(1), resp.Templates[0].SortOrder)
	assert.Equal(t, "First", resp.Templates[1].Title)
	assert.Equal(t, int32(2), resp.Templates[1].SortOrder)
	assert.Equal(t, "Second", resp.Templates[2].Title)
	assert.Equal(t, int32(3), resp.Templates[2].SortOrder)
}

func TestTemplateService_CreateTemplate_RequiresAdmin(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewTemplateService(repository.NewEntTemplateRepository(client))
	contributor := helpers.CreateContributorProfile("member@example.com", "SecurePass123!")

	_, err := svc.CreateTemplate(helpers.AuthenticatedContext(contributor), &opsv1.CreateTemplateRequest{
		ParentType: opsv1.ParentType_PARENT_TYPE_CYCLE,
		Title:      "New Step",
		Role:       opsv1.TemplateRole_TEMPLATE_ROLE_STRATEGIST,
	})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func boolPtr(b bool) *bool {
	return &b
}
