// internal/service/client_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/internal/middleware"
	"github.com/localbzz/clientops/internal/models"
	"github.com/localbzz/clientops/internal/repository"
)

type ClientService struct {
	opsv1.UnimplementedClientServiceServer
	repo           *repository.EntClientRepository
	activityLogger *ActivityLogger
}

func NewClientService(repo *repository.EntClientRepository, activityLogger *ActivityLogger) *ClientService {
	return &ClientService{
		repo:           repo,
		activityLogger: activityLogger,
	}
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, req *opsv1.CreateClientRequest) (*opsv1.CreateClientResponse, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	input := &repository.ClientInput{
		Name:   req.Name,
		Status: models.ClientStatusActive,
		Assets: buildAssets(req.DriveUrl, req.ScheduleUrl, req.BrandUrl),
	}

	client, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create client: %v", err)
	}

	s.activityLogger.LogClientCreated(ctx, client.ID, client.Name)

	return &opsv1.CreateClientResponse{
		Client: convertClientToProto(client),
	}, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, req *opsv1.GetClientRequest) (*opsv1.GetClientResponse, error) {
	id, err := parseID(req.Id, "client ID")
	if err != nil {
		return nil, err
	}

	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "client not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get client: %v", err)
	}

	return &opsv1.GetClientResponse{
		Client: convertClientToProto(client),
	}, nil
}

// ListClients retrieves clients, optionally filtered by status
func (s *ClientService) ListClients(ctx context.Context, req *opsv1.ListClientsRequest) (*opsv1.ListClientsResponse, error) {
	statusFilter := convertClientStatusToString(req.Status)

	clients, err := s.repo.List(ctx, statusFilter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list clients: %v", err)
	}

	protoClients := make([]*opsv1.Client, len(clients))
	for i, client := range clients {
		protoClients[i] = convertClientToProto(client)
	}

	return &opsv1.ListClientsResponse{
		Clients: protoClients,
	}, nil
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(ctx context.Context, req *opsv1.UpdateClientRequest) (*opsv1.UpdateClientResponse, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	id, err := parseID(req.Id, "client ID")
	if err != nil {
		return nil, err
	}

	input := &repository.ClientInput{
		Name:   req.Name,
		Status: convertClientStatusToString(req.Status),
		Assets: buildAssets(req.DriveUrl, req.ScheduleUrl, req.BrandUrl),
	}

	client, err := s.repo.Update(ctx, id, input)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "client not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update client: %v", err)
	}

	s.activityLogger.LogClientUpdated(ctx, client.ID, client.Name)

	return &opsv1.UpdateClientResponse{
		Client: convertClientToProto(client),
	}, nil
}

// ArchiveClient marks a client as archived
func (s *ClientService) ArchiveClient(ctx context.Context, req *opsv1.ArchiveClientRequest) (*emptypb.Empty, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	id, err := parseID(req.Id, "client ID")
	if err != nil {
		return nil, err
	}

	if err := s.repo.Archive(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "client not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to archive client: %v", err)
	}

	return &emptypb.Empty{}, nil
}

// BulkImportClients creates clients from imported rows in one batch
func (s *ClientService) BulkImportClients(ctx context.Context, req *opsv1.BulkImportClientsRequest) (*opsv1.BulkImportClientsResponse, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	if len(req.Rows) == 0 {
		return nil, status.Error(codes.InvalidArgument, "rows is required")
	}

	inputs := make([]*repository.ClientInput, 0, len(req.Rows))
	for _, row := range req.Rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}

		assets := make(map[string]string)
		if v := strings.TrimSpace(row.ContactName); v != "" {
			assets["contact_name"] = v
		}
		if v := strings.TrimSpace(row.ContactEmail); v != "" {
			assets["contact_email"] = v
		}
		if v := strings.TrimSpace(row.ContactPhone); v != "" {
			assets["contact_phone"] = v
		}
		if v := strings.TrimSpace(row.Notes); v != "" {
			assets["notes"] = v
		}

		inputs = append(inputs, &repository.ClientInput{
			Name:   name,
			Status: mapImportStatus(row.Status),
			Assets: assets,
		})
	}

	if len(inputs) == 0 {
		return nil, status.Error(codes.InvalidArgument, "no valid clients to import")
	}

	clients, err := s.repo.CreateBatch(ctx, inputs)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to import clients: %v", err)
	}

	s.activityLogger.LogClientsImported(ctx, len(clients))

	protoClients := make([]*opsv1.Client, len(clients))
	for i, client := range clients {
		protoClients[i] = convertClientToProto(client)
	}

	return &opsv1.BulkImportClientsResponse{
		Imported: int32(len(clients)),
		Clients:  protoClients,
	}, nil
}

// Helper functions

// mapImportStatus normalizes CSV status values to the client status enum.
// Spreadsheet exports commonly say "Ongoing" or "Inactive"; anything
// unrecognized defaults to active.
func mapImportStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ongoing", models.ClientStatusActive:
		return models.ClientStatusActive
	case "inactive", models.ClientStatusArchived:
		return models.ClientStatusArchived
	default:
		return models.ClientStatusActive
	}
}

func buildAssets(driveURL, scheduleURL, brandURL string) map[string]string {
	assets := make(map[string]string)
	if driveURL != "" {
		assets["drive_url"] = driveURL
	}
	if scheduleURL != "" {
		assets["schedule_url"] = scheduleURL
	}
	if brandURL != "" {
		assets["brand_url"] = brandURL
	}
	return assets
}

// parseID parses a wire UUID, mapping failures to InvalidArgument
func parseID(raw, label string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, fmt.Sprintf("%s is required", label))
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid %s format", label))
	}

	return id, nil
}
