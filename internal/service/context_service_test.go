// internal/service/context_service_test.go
package service

import (
	"context"
	"strings"
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

func TestContextService_AddContextEntry(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewContextService(repository.NewEntContextRepository(client))
	author := helpers.CreateContributorProfile("strategist@example.com", "SecurePass123!")
	ctx := helpers.AuthenticatedContext(author)

	acme := helpers.CreateTestClient("Acme Fitness")
	cycleSvc := NewCycleService(repository.NewEntCycleRepository(client), newActivityLogger(client))
	started, err := cycleSvc.StartCycle(context.Background(), &opsv1.StartCycleRequest{
		ClientId: acme.ID.String(),
		Month:    "2026-03-01",
	})
	require.NoError(t, err)

	t.Run("client-level note", func(t *testing.T) {
		resp, err := svc.AddContextEntry(ctx, &opsv1.AddContextEntryRequest{
			ClientId: acme.ID.String(),
			Type:     opsv1.ContextType_CONTEXT_TYPE_NOTE,
			Content:  "Prefers morning shoots.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Prefers morning shoots.", resp.Entry.Content)
		assert.Nil(t, resp.Entry.CycleId)
		assert.Equal(t, author.ID.String(), resp.Entry.AuthorId)
	})

	t.Run("cycle-scoped report", func(t *testing.T) {
		resp, err := svc.AddContextEntry(ctx, &opsv1.AddContextEntryRequest{
			ClientId: acme.ID.String(),
			CycleId:  stringPtr(started.Cycle.Id),
			Type:     opsv1.ContextType_CONTEXT_TYPE_REPORT,
			Content:  "Reach up 12% month over month.",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Entry.CycleId)
		assert.Equal(t, started.Cycle.Id, *resp.Entry.CycleId)
	})

	t.Run("oversized content rejected", func(t *testing.T) {
		_, err := svc.AddContextEntry(ctx, &opsv1.AddContextEntryRequest{
			ClientId: acme.ID.String(),
			Type:     opsv1.ContextType_CONTEXT_TYPE_NOTE,
			Content:  strings.Repeat("x", models.MaxContextContentLength+1),
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("requires authenticated caller", func(t *testing.T) {
		_, err := svc.AddContextEntry(context.Background(), &opsv1.AddContextEntryRequest{
			ClientId: acme.ID.String(),
			Type:     opsv1.ContextType_CONTEXT_TYPE_NOTE,
			Content:  "anonymous",
		})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("list filters by cycle", func(t *testing.T) {
		all, err := svc.ListClientContext(ctx, &opsv1.ListClientContextRequest{
			ClientId: acme.ID.String(),
		})
		require.NoError(t, err)
		assert.Len(t, all.Entries, 2)

		scoped, err := svc.ListClientContext(ctx, &opsv1.ListClientContextRequest{
			ClientId: acme.ID.String(),
			CycleId:  stringPtr(started.Cycle.Id),
		})
		require.NoError(t, err)
		require.Len(t, scoped.Entries, 1)
		assert.Equal(t, opsv1.ContextType_CONTEXT_TYPE_REPORT, scoped.Entries[0].Type)
	})
}

func TestContextService_DeleteContextEntry(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewContextService(repository.NewEntContextRepository(client))
	admin := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	contributor := helpers.CreateContributorProfile("member@example.com", "SecurePass123!")

	acme := helpers.CreateTestClient("Acme Fitness")
	created, err := svc.AddContextEntry(helpers.AuthenticatedContext(contributor), &opsv1.AddContextEntryRequest{
		ClientId: acme.ID.String(),
		Type:     opsv1.ContextType_CONTEXT_TYPE_NOTE,
		Content:  "Temporary note.",
	})
	require.NoError(t, err)

	t.Run("contributor denied", func(t *testing.T) {
		_, err := svc.DeleteContextEntry(helpers.AuthenticatedContext(contributor), &opsv1.DeleteContextEntryRequest{
			EntryId: created.Entry.Id,
		})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("admin deletes", func(t *testing.T) {
		_, err := svc.DeleteContextEntry(helpers.AuthenticatedContext(admin), &opsv1.DeleteContextEntryRequest{
			EntryId: created.Entry.Id,
		})
		require.NoError(t, err)

		list, err := svc.ListClientContext(helpers.AuthenticatedContext(admin), &opsv1.ListClientContextRequest{
			ClientId: acme.ID.String(),
		})
		require.NoError(t, err)
		assert.Empty(t, list.Entries)
	})
}
