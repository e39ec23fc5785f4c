// internal/service/team_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/internal/middleware"
	"github.com/localbzz/clientops/internal/repository"
	"github.com/localbzz/clientops/pkg/auth"
	"github.com/localbzz/clientops/pkg/email"
)

const inviteTokenTTL = 7 * 24 * time.Hour

type TeamService struct {
	opsv1.UnimplementedTeamServiceServer
	repo            *repository.EntProfileRepository
	tokenManager    *auth.TokenManager
	passwordManager *auth.PasswordManager
	emailService    email.EmailService
	activityLogger  *ActivityLogger
}

func NewTeamService(
	repo *repository.EntProfileRepository,
	tokenManager *auth.TokenManager,
	passwordManager *auth.PasswordManager,
	emailService email.EmailService,
	activityLogger *ActivityLogger,
) *TeamService {
	return &TeamService{
		repo:            repo,
		tokenManager:    tokenManager,
		passwordManager: passwordManager,
		emailService:    emailService,
		activityLogger:  activityLogger,
	}
}

// Login authenticates a profile by email and password
func (s *TeamService) Login(ctx context.Context, req *opsv1.LoginRequest) (*opsv1.LoginResponse, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := s.repo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if ent.IsNotFound(err) {
			s.activityLogger.LogLoginFailed(ctx, emailAddr, "unknown email")
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		return nil, status.Errorf(codes.Internal, "failed to look up profile: %v", err)
	}

	if !profile.IsActive || profile.PasswordHash == "" {
		s.activityLogger.LogLoginFailed(ctx, emailAddr, "account not active")
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	if err := s.passwordManager.ComparePassword(profile.PasswordHash, req.Password); err != nil {
		s.activityLogger.LogLoginFailed(ctx, emailAddr, "wrong password")
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	accessToken, refreshToken, _, err := s.tokenManager.GenerateTokenPair(
		profile.ID.String(),
		profile.Email,
		profile.DisplayName,
		string(profile.Role),
	)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to generate tokens: %v", err)
	}

	if err := s.repo.RecordLogin(ctx, profile.ID); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to record login: %v", err)
	}

	s.activityLogger.LogLoginSuccess(ctx, profile.ID)

	return &opsv1.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      convertProfileToProto(profile),
	}, nil
}

// ListProfiles retrieves all team profiles, email ascending
func (s *TeamService) ListProfiles(ctx context.Context, req *opsv1.ListProfilesRequest) (*opsv1.ListProfilesResponse, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list profiles: %v", err)
	}

	protoProfiles := make([]*opsv1.Profile, len(profiles))
	for i, profile := range profiles {
		protoProfiles[i] = convertProfileToProto(profile)
	}

	return &opsv1.ListProfilesResponse{
		Profiles: protoProfiles,
	}, nil
}

// UpdateUserRole changes a profile's role
func (s *TeamService) UpdateUserRole(ctx context.Context, req *opsv1.UpdateUserRoleRequest) (*emptypb.Empty, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	userID, err := parseID(req.UserId, "user ID")
	if err != nil {
		return nil, err
	}

	role := convertUserRoleToString(req.Role)
	if role == "" {
		return nil, status.Error(codes.InvalidArgument, "role is required")
	}

	profile, err := s.repo.UpdateRole(ctx, userID, role)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "profile not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update role: %v", err)
	}

	s.activityLogger.LogRoleChanged(ctx, profile.Email, role)

	return &emptypb.Empty{}, nil
}

// InviteUser creates an inactive profile with an invite token and emails
// the invitation
func (s *TeamService) InviteUser(ctx context.Context, req *opsv1.InviteUserRequest) (*emptypb.Empty, error) {
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	token, err := generateInviteToken()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to generate invite token: %v", err)
	}

	profile, err := s.repo.CreateInvited(ctx, emailAddr, token, time.Now().Add(inviteTokenTTL))
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.AlreadyExists, "a profile with this email already exists")
		}
		return nil, status.Errorf(codes.Internal, "failed to create invited profile: %v", err)
	}

	if err := s.emailService.SendInviteEmail(ctx, profile, token); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to send invite email: %v", err)
	}

	s.activityLogger.LogInviteSent(ctx, emailAddr)

	return &emptypb.Empty{}, nil
}

// AcceptInvite activates an invited profile with a password and display name
func (s *TeamService) AcceptInvite(ctx context.Context, req *opsv1.AcceptInviteRequest) (*opsv1.AcceptInviteResponse, error) {
	profile, err := s.repo.GetByInviteToken(ctx, req.Token)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "invalid or expired invitation")
		}
		return nil, status.Errorf(codes.Internal, "failed to look up invitation: %v", err)
	}

	if profile.InviteExpiresAt == nil || time.Now().After(*profile.InviteExpiresAt) {
		return nil, status.Error(codes.FailedPrecondition, "invitation has expired")
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if err := auth.ValidateDisplayName(displayName); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	passwordHash, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	profile, err = s.repo.AcceptInvite(ctx, profile.ID, passwordHash, displayName)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to accept invitation: %v", err)
	}

	if err := s.emailService.SendWelcomeEmail(ctx, profile); err != nil {
		// The account is live; a lost welcome email is not fatal
		log.Printf("[ERROR] failed to send welcome email to %s: %v", profile.Email, err)
	}

	s.activityLogger.LogInviteAccepted(ctx, profile.ID)

	return &opsv1.AcceptInviteResponse{
		Profile: convertProfileToProto(profile),
	}, nil
}

// generateInviteToken returns a 64-character random hex token
func generateInviteToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
