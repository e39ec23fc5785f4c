// internal/service/context_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/internal/middleware"
	"github.com/localbzz/clientops/internal/repository"
)

type ContextService struct {
	opsv1.UnimplementedContextServiceServer
	repo *repository.EntContextRepository
}

func NewContextService(repo *repository.EntContextRepository) *ContextService {
	return &ContextService{
		repo: repo,
	}
}

// ListClientContext retrieves a client's context entries, newest first
func (s *ContextService) ListClientContext(ctx context.Context, req *opsv1.ListClientContextRequest) (*opsv1.ListClientContextResponse, error) {
	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	var cycleID *uuid.UUID
	if req.CycleId != nil {
		id, err := parseID(*req.CycleId, "cycle ID")
		if err != nil {
			return nil, err
		}
		cycleID = &id
	}

	entries, err := s.repo.List(ctx, clientID, cycleID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list context entries: %v", err)
	}

	protoEntries := make([]*opsv1.ContextEntry, len(entries))
	for i, entry := range entries {
		protoEntries[i] = convertContextEntryToProto(entry)
	}

	return &opsv1.ListClientContextResponse{
		Entries: protoEntries,
	}, nil
}

// AddContextEntry records a transcript, report, or note for a client
func (s *ContextService) AddContextEntry(ctx context.Context, req *opsv1.AddContextEntryRequest) (*opsv1.AddContextEntryResponse, error) {
	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	entryType := convertContextTypeToString(req.Type)
	if entryType == "" {
		return nil, status.Error(codes.InvalidArgument, "type is required")
	}

	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}

	authorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid user in context")
	}

	input := &repository.ContextEntryInput{
		ClientID: clientID,
		AuthorID: authorID,
		Type:     entryType,
		Content:  req.Content,
	}

	if req.CycleId != nil {
		id, err := parseID(*req.CycleId, "cycle ID")
		if err != nil {
			return nil, err
		}
		input.CycleID = &id
	}

	entry, err := s.repo.Add(ctx, input)
	if err != nil {
		if ent.IsValidationError(err) {
			return nil, status.Error(codes.InvalidArgument, "content exceeds the maximum length")
		}
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.InvalidArgument, "client or cycle does not exist")
		}
		return nil, status.Errorf(codes.Internal, "failed to add context entry: %v", err)
	}

	return &opsv1.AddContextEntryResponse{
		Entry: convertContextEntryToProto(entry),
	}, nil
}

// DeleteContextEntry removes a context entry
func (s *ContextService) DeleteContextEntry(ctx context.Context, req *opsv1.DeleteContextEntryRequest) (*emptypb.Empty, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	entryID, err := parseID(req.EntryId, "entry ID")
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, entryID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "context entry not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to delete context entry: %v", err)
	}

	return &emptypb.Empty{}, nil
}
