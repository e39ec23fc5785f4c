// internal/service/shoot_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/internal/repository"
)

type ShootService struct {
	opsv1.UnimplementedShootServiceServer
	repo           *repository.EntShootRepository
	activityLogger *ActivityLogger
}

func NewShootService(repo *repository.EntShootRepository, activityLogger *ActivityLogger) *ShootService {
	return &ShootService{
		repo:           repo,
		activityLogger: activityLogger,
	}
}

// ListShoots retrieves a client's shoots, optionally scoped to a cycle
func (s *ShootService) ListShoots(ctx context.Context, req *opsv1.ListShootsRequest) (*opsv1.ListShootsResponse, error) {
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

	shoots, err := s.repo.List(ctx, clientID, cycleID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list shoots: %v", err)
	}

	return &opsv1.ListShootsResponse{
		Shoots: convertShootsToProto(shoots),
	}, nil
}

// ListUpcomingShoots retrieves shoots from today onward across all clients
func (s *ShootService) ListUpcomingShoots(ctx context.Context, req *opsv1.ListUpcomingShootsRequest) (*opsv1.ListUpcomingShootsResponse, error) {
	shoots, err := s.repo.Upcoming(ctx, int(req.Limit))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list upcoming shoots: %v", err)
	}

	return &opsv1.ListUpcomingShootsResponse{
		Shoots: convertShootsToProto(shoots),
	}, nil
}

// ScheduleShoot creates the shoot, materializes its task list anchored at
// the shoot date, and marks the originating "Schedule Shoot" cycle task
// done when cycle_task_id is supplied, all in one transaction.
func (s *ShootService) ScheduleShoot(ctx context.Context, req *opsv1.ScheduleShootRequest) (*opsv1.ScheduleShootResponse, error) {
	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	shootDate, err := parseDate(req.ShootDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid shoot_date format")
	}

	input := &repository.ShootInput{
		ClientID:     clientID,
		ShootDate:    shootDate,
		Type:         convertShootTypeToString(req.Type),
		ShootTime:    req.ShootTime,
		Location:     req.Location,
		CalendarLink: req.CalendarLink,
	}

	if req.CycleId != nil {
		id, err := parseID(*req.CycleId, "cycle ID")
		if err != nil {
			return nil, err
		}
		input.CycleID = &id
	}

	if req.CycleTaskId != nil {
		id, err := parseID(*req.CycleTaskId, "cycle task ID")
		if err != nil {
			return nil, err
		}
		input.CycleTaskID = &id
	}

	shoot, tasksCreated, err := s.repo.ScheduleShoot(ctx, input)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "cycle task not found")
		}
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.InvalidArgument, "client or cycle does not exist")
		}
		return nil, status.Errorf(codes.Internal, "failed to schedule shoot: %v", err)
	}

	s.activityLogger.LogShootScheduled(ctx, clientID, formatDate(shoot.ShootDate))

	return &opsv1.ScheduleShootResponse{
		Shoot:        convertShootToProto(shoot),
		TasksCreated: int32(tasksCreated),
	}, nil
}

// RescheduleShoot changes the anchor date and recomputes every surviving
// task's due date from its template offset in the same transaction
func (s *ShootService) RescheduleShoot(ctx context.Context, req *opsv1.RescheduleShootRequest) (*opsv1.RescheduleShootResponse, error) {
	shootID, err := parseID(req.ShootId, "shoot ID")
	if err != nil {
		return nil, err
	}

	shootDate, err := parseDate(req.ShootDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid shoot_date format")
	}

	shoot, err := s.repo.Reschedule(ctx, shootID, shootDate)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "shoot not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to reschedule shoot: %v", err)
	}

	return &opsv1.RescheduleShootResponse{
		Shoot: convertShootToProto(shoot),
	}, nil
}

// UpdateShootStatus advances the production pipeline. The transition marks
// the matching handoff task done in the same transaction.
func (s *ShootService) UpdateShootStatus(ctx context.Context, req *opsv1.UpdateShootStatusRequest) (*emptypb.Empty, error) {
	shootID, err := parseID(req.ShootId, "shoot ID")
	if err != nil {
		return nil, err
	}

	shootStatus := convertShootStatusToString(req.Status)
	if shootStatus == "" {
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}

	shoot, err := s.repo.UpdateStatus(ctx, shootID, shootStatus)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "shoot not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update shoot status: %v", err)
	}

	s.activityLogger.LogShootStatusChanged(ctx, shoot.ClientID, shootStatus)

	return &emptypb.Empty{}, nil
}

func convertShootsToProto(shoots []*ent.Shoot) []*opsv1.Shoot {
	protoShoots := make([]*opsv1.Shoot, len(shoots))
	for i, shoot := range shoots {
		protoShoots[i] = convertShootToProto(shoot)
	}
	return protoShoots
}
