// internal/service/cycle_service.go
package service

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/internal/middleware"
	"github.com/localbzz/clientops/internal/repository"
)

type CycleService struct {
	opsv1.UnimplementedCycleServiceServer
	repo           *repository.EntCycleRepository
	activityLogger *ActivityLogger
}

func NewCycleService(repo *repository.EntCycleRepository, activityLogger *ActivityLogger) *CycleService {
	return &CycleService{
		repo:           repo,
		activityLogger: activityLogger,
	}
}

// ListCycles retrieves a client's cycles, newest month first
func (s *CycleService) ListCycles(ctx context.Context, req *opsv1.ListCyclesRequest) (*opsv1.ListCyclesResponse, error) {
	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	cycles, err := s.repo.List(ctx, clientID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list cycles: %v", err)
	}

	protoCycles := make([]*opsv1.Cycle, len(cycles))
	for i, cycle := range cycles {
		protoCycles[i] = convertCycleToProto(cycle)
	}

	return &opsv1.ListCyclesResponse{
		Cycles: protoCycles,
	}, nil
}

// GetCurrentCycle returns the client's most recent cycle by month. The
// current cycle is always computed, never stored as a flag.
func (s *CycleService) GetCurrentCycle(ctx context.Context, req *opsv1.GetCurrentCycleRequest) (*opsv1.GetCurrentCycleResponse, error) {
	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	cycle, err := s.repo.Current(ctx, clientID)
	if err != nil {
		if ent.IsNotFound(err) {
			// No cycles yet is not an error
			return &opsv1.GetCurrentCycleResponse{}, nil
		}
		return nil, status.Errorf(codes.Internal, "failed to get current cycle: %v", err)
	}

	return &opsv1.GetCurrentCycleResponse{
		Cycle: convertCycleToProto(cycle),
	}, nil
}

// StartCycle creates the cycle and materializes its task list in one
// transaction. The month is normalized to the first of the month.
func (s *CycleService) StartCycle(ctx context.Context, req *opsv1.StartCycleRequest) (*opsv1.StartCycleResponse, error) {
	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	month, err := parseDate(req.Month)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid month format")
	}

	cycle, tasksCreated, err := s.repo.StartCycle(ctx, clientID, month)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.AlreadyExists, "cycle already exists for this month")
		}
		return nil, status.Errorf(codes.Internal, "failed to start cycle: %v", err)
	}

	s.activityLogger.LogCycleStarted(ctx, clientID, formatDate(cycle.Month))

	return &opsv1.StartCycleResponse{
		Cycle:        convertCycleToProto(cycle),
		TasksCreated: int32(tasksCreated),
	}, nil
}

// UpdateCycleStatus moves a cycle through planning, active, completed
func (s *CycleService) UpdateCycleStatus(ctx context.Context, req *opsv1.UpdateCycleStatusRequest) (*emptypb.Empty, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	cycleID, err := parseID(req.CycleId, "cycle ID")
	if err != nil {
		return nil, err
	}

	cycleStatus := convertCycleStatusToString(req.Status)
	if cycleStatus == "" {
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}

	if _, err := s.repo.UpdateStatus(ctx, cycleID, cycleStatus); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "cycle not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update cycle status: %v", err)
	}

	return &emptypb.Empty{}, nil
}
