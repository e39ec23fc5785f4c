// internal/service/client_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/enttest"
	"github.com/localbzz/clientops/internal/repository"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client
}

func newActivityLogger(client *ent.Client) *ActivityLogger {
	return NewActivityLogger(NewActivityService(client))
}

func TestClientService_CreateClient(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewClientService(repository.NewEntClientRepository(client), newActivityLogger(client))

	admin := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	contributor := helpers.CreateContributorProfile("member@example.com", "SecurePass123!")

	t.Run("admin creates client with assets", func(t *testing.T) {
		resp, err := svc.CreateClient(helpers.AuthenticatedContext(admin), &opsv1.CreateClientRequest{
			Name:     "Acme Fitness",
			DriveUrl: "https://drive.example.com/acme",
		})
		require.NoError(t, err)

		assert.Equal(t, "Acme Fitness", resp.Client.Name)
		assert.Equal(t, opsv1.ClientStatus_CLIENT_STATUS_ACTIVE, resp.Client.Status)
		assert.Equal(t, "https://drive.example.com/acme", resp.Client.Assets["drive_url"])
	})

	t.Run("contributor is denied", func(t *testing.T) {
		_, err := svc.CreateClient(helpers.AuthenticatedContext(contributor), &opsv1.CreateClientRequest{
			Name: "Blocked Co",
		})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("unauthenticated is rejected", func(t *testing.T) {
		_, err := svc.CreateClient(context.Background(), &opsv1.CreateClientRequest{
			Name: "Nobody Inc",
		})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

func TestClientService_ListClients(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewClientService(repository.NewEntClientRepository(client), newActivityLogger(client))
	admin := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	ctx := helpers.AuthenticatedContext(admin)

	helpers.CreateTestClient("Beta Studio")
	helpers.CreateTestClient("Alpha Gym")

	archived := helpers.CreateTestClient("Gone LLC")
	_, err := svc.ArchiveClient(ctx, &opsv1.ArchiveClientRequest{Id: archived.ID.String()})
	require.NoError(t, err)

	t.Run("all clients sorted by name", func(t *testing.T) {
		resp, err := svc.ListClients(ctx, &opsv1.ListClientsRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Clients, 3)
		assert.Equal(t, "Alpha Gym", resp.Clients[0].Name)
		assert.Equal(t, "Beta Studio", resp.Clients[1].Name)
	})

	t.Run("status filter", func(t *testing.T) {
		resp, err := svc.ListClients(ctx, &opsv1.ListClientsRequest{
			Status: opsv1.ClientStatus_CLIENT_STATUS_ARCHIVED,
		})
		require.NoError(t, err)
		require.Len(t, resp.Clients, 1)
		assert.Equal(t, "Gone LLC", resp.Clients[0].Name)
	})
}

func TestClientService_BulkImportClients(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewClientService(repository.NewEntClientRepository(client), newActivityLogger(client))
	admin := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	ctx := helpers.AuthenticatedContext(admin)

	tests := []struct {
		name         string
		rows         []*opsv1.ClientImportRow
		wantErr      bool
		expectedCode codes.Code
		imported     int
	}{
		{
			name: "imports rows with contact assets",
			rows: []*opsv1.ClientImportRow{
				{Name: "First Co", ContactEmail: "a@first.co"},
				{Name: "Second Co", Status: "archived", Notes: "paused"},
			},
			imported: 2,
		},
		{
			name: "spreadsheet statuses normalized",
			rows: []*opsv1.ClientImportRow{
				{Name: "Ongoing Co", Status: "Ongoing"},
				{Name: "Inactive Co", Status: " INACTIVE "},
				{Name: "Dormant Co", Status: "dormant"},
			},
			imported: 3,
		},
		{
			name: "nameless rows skipped",
			rows: []*opsv1.ClientImportRow{
				{Name: "  "},
				{Name: "Kept Co"},
			},
			imported: 1,
		},
		{
			name:         "empty rows rejected",
			rows:         nil,
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name: "no valid rows rejected",
			rows: []*opsv1.ClientImportRow{
				{Name: ""},
				{Name: "   ", Status: "active"},
			},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.BulkImportClients(ctx, &opsv1.BulkImportClientsRequest{Rows: tt.rows})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int32(tt.imported), resp.Imported)
			assert.Len(t, resp.Clients, tt.imported)
		})
	}

	t.Run("normalized statuses land on the client", func(t *testing.T) {
		resp, err := svc.ListClients(ctx, &opsv1.ListClientsRequest{
			Status: opsv1.ClientStatus_CLIENT_STATUS_ARCHIVED,
		})
		require.NoError(t, err)

		names := make([]string, len(resp.Clients))
		for i, c := range resp.Clients {
			names[i] = c.Name
		}
		assert.Contains(t, names, "Inactive Co")
		assert.Contains(t, names, "Second Co")
		assert.NotContains(t, names, "Ongoing Co")
		assert.NotContains(t, names, "Dormant Co")
	})
}
