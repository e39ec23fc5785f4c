// internal/service/template_service.go
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
	"github.com/localbzz/clientops/internal/models"
	"github.com/localbzz/clientops/internal/repository"
)

type TemplateService struct {
	opsv1.UnimplementedTemplateServiceServer
	repo *repository.EntTemplateRepository
}

func NewTemplateService(repo *repository.EntTemplateRepository) *TemplateService {
	return &TemplateService{
		repo: repo,
	}
}

// ListGlobalTemplates retrieves all global templates in sort order
func (s *TemplateService) ListGlobalTemplates(ctx context.Context, req *opsv1.ListGlobalTemplatesRequest) (*opsv1.ListGlobalTemplatesResponse, error) {
	templates, err := s.repo.ListGlobal(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list templates: %v", err)
	}

	return &opsv1.ListGlobalTemplatesResponse{
		Templates: convertTemplatesToProto(templates),
	}, nil
}

// ResolveTemplates returns the template set materialization would use for
// the client: the client-scoped set verbatim when non-empty, else the
// global set.
func (s *TemplateService) ResolveTemplates(ctx context.Context, req *opsv1.ResolveTemplatesRequest) (*opsv1.ResolveTemplatesResponse, error) {
	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	parentType, err := models.ParseParentType(convertParentTypeToString(req.ParentType))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "parent_type is required")
	}

	templates, err := s.repo.ResolveForClient(ctx, clientID, parentType)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to resolve templates: %v", err)
	}

	return &opsv1.ResolveTemplatesResponse{
		Templates: convertTemplatesToProto(templates),
	}, nil
}

// CreateTemplate creates a new template, global or client-scoped
func (s *TemplateService) CreateTemplate(ctx context.Context, req *opsv1.CreateTemplateRequest) (*opsv1.CreateTemplateResponse, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	input := &repository.TemplateInput{
		ParentType: convertParentTypeToString(req.ParentType),
		Title:      req.Title,
		Role:       convertTemplateRoleToString(req.Role),
		SortOrder:  int(req.SortOrder),
		DaysOffset: int(req.DaysOffset),
	}

	if req.ClientId != nil {
		clientID, err := parseID(*req.ClientId, "client ID")
		if err != nil {
			return nil, err
		}
		input.ClientID = &clientID
	}

	template, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create template: %v", err)
	}

	return &opsv1.CreateTemplateResponse{
		Template: convertTemplateToProto(template),
	}, nil
}

// UpdateTemplate updates an existing template
func (s *TemplateService) UpdateTemplate(ctx context.Context, req *opsv1.UpdateTemplateRequest) (*opsv1.UpdateTemplateResponse, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	id, err := parseID(req.Id, "template ID")
	if err != nil {
		return nil, err
	}

	input := &repository.TemplateUpdateInput{}

	if req.Title != nil {
		input.Title = req.Title
	}
	if req.Role != nil {
		role := convertTemplateRoleToString(*req.Role)
		if role == "" {
			return nil, status.Error(codes.InvalidArgument, "invalid role")
		}
		input.Role = &role
	}
	if req.SortOrder != nil {
		sortOrder := int(*req.SortOrder)
		input.SortOrder = &sortOrder
	}
	if req.DaysOffset != nil {
		daysOffset := int(*req.DaysOffset)
		input.DaysOffset = &daysOffset
	}
	if req.IsActive != nil {
		input.IsActive = req.IsActive
	}

	template, err := s.repo.Update(ctx, id, input)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update template: %v", err)
	}

	return &opsv1.UpdateTemplateResponse{
		Template: convertTemplateToProto(template),
	}, nil
}

// DeleteTemplate deletes a template. Tasks already materialized from it
// keep their snapshot and simply lose the template link.
func (s *TemplateService) DeleteTemplate(ctx context.Context, req *opsv1.DeleteTemplateRequest) (*emptypb.Empty, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	id, err := parseID(req.Id, "template ID")
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to delete template: %v", err)
	}

	return &emptypb.Empty{}, nil
}

// ReorderTemplates rewrites sort_order to match the supplied ID order
func (s *TemplateService) ReorderTemplates(ctx context.Context, req *opsv1.ReorderTemplatesRequest) (*emptypb.Empty, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	if len(req.TemplateIds) == 0 {
		return nil, status.Error(codes.InvalidArgument, "template_ids is required")
	}

	ids := make([]uuid.UUID, len(req.TemplateIds))
	for i, raw := range req.TemplateIds {
		id, err := parseID(raw, "template ID")
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	if err := s.repo.Reorder(ctx, ids); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to reorder templates: %v", err)
	}

	return &emptypb.Empty{}, nil
}

func convertTemplatesToProto(templates []*ent.TaskTemplate) []*opsv1.TaskTemplate {
	protoTemplates := make([]*opsv1.TaskTemplate, len(templates))
	for i, template := range templates {
		protoTemplates[i] = convertTemplateToProto(template)
	}
	return protoTemplates
}
