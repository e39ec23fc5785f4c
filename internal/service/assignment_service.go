// internal/service/assignment_service.go
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

type AssignmentService struct {
	opsv1.UnimplementedAssignmentServiceServer
	repo         *repository.EntAssignmentRepository
	templateRepo *repository.EntTemplateRepository
}

func NewAssignmentService(repo *repository.EntAssignmentRepository, templateRepo *repository.EntTemplateRepository) *AssignmentService {
	return &AssignmentService{
		repo:         repo,
		templateRepo: templateRepo,
	}
}

// ListClientAssignments retrieves all assignment overrides for a client
func (s *AssignmentService) ListClientAssignments(ctx context.Context, req *opsv1.ListClientAssignmentsRequest) (*opsv1.ListClientAssignmentsResponse, error) {
	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list assignments: %v", err)
	}

	protoAssignments := make([]*opsv1.ClientTaskAssignment, len(assignments))
	for i, assignment := range assignments {
		protoAssignments[i] = convertAssignmentToProto(assignment)
	}

	return &opsv1.ListClientAssignmentsResponse{
		Assignments: protoAssignments,
	}, nil
}

// SetClientAssignment upserts the override row for (client, template). An
// absent assignee_id pins the pair to explicitly unassigned, which is not
// the same as having no override at all.
func (s *AssignmentService) SetClientAssignment(ctx context.Context, req *opsv1.SetClientAssignmentRequest) (*opsv1.SetClientAssignmentResponse, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	templateID, err := parseID(req.TemplateId, "template ID")
	if err != nil {
		return nil, err
	}

	var assigneeID *uuid.UUID
	if req.AssigneeId != nil {
		id, err := parseID(*req.AssigneeId, "assignee ID")
		if err != nil {
			return nil, err
		}
		assigneeID = &id
	}

	var daysOffsetOverride *int
	if req.DaysOffsetOverride != nil {
		override := int(*req.DaysOffsetOverride)
		daysOffsetOverride = &override
	}

	assignment, err := s.repo.Set(ctx, clientID, templateID, assigneeID, daysOffsetOverride)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.InvalidArgument, "client or template does not exist")
		}
		return nil, status.Errorf(codes.Internal, "failed to set assignment: %v", err)
	}

	return &opsv1.SetClientAssignmentResponse{
		Assignment: convertAssignmentToProto(assignment),
	}, nil
}

// ClearClientAssignment removes the override row entirely, restoring the
// unassigned default for future materializations
func (s *AssignmentService) ClearClientAssignment(ctx context.Context, req *opsv1.ClearClientAssignmentRequest) (*emptypb.Empty, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	templateID, err := parseID(req.TemplateId, "template ID")
	if err != nil {
		return nil, err
	}

	if err := s.repo.Clear(ctx, clientID, templateID); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to clear assignment: %v", err)
	}

	return &emptypb.Empty{}, nil
}

// ResolveAssignee reports what materialization would assign for the pair
func (s *AssignmentService) ResolveAssignee(ctx context.Context, req *opsv1.ResolveAssigneeRequest) (*opsv1.ResolveAssigneeResponse, error) {
	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	templateID, err := parseID(req.TemplateId, "template ID")
	if err != nil {
		return nil, err
	}

	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get template: %v", err)
	}

	resolved, err := s.repo.Resolve(ctx, clientID, templateID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to resolve assignee: %v", err)
	}

	resp := &opsv1.ResolveAssigneeResponse{
		EffectiveDaysOffset: int32(template.DaysOffset),
		OverridePresent:     resolved.Found,
	}

	if resolved.Found {
		if resolved.AssigneeID != nil {
			assigneeID := resolved.AssigneeID.String()
			resp.AssigneeId = &assigneeID
		}
		if resolved.DaysOffset != nil {
			resp.EffectiveDaysOffset = int32(*resolved.DaysOffset)
		}
	}

	return resp, nil
}
