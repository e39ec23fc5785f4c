// internal/service/team_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/internal/repository"
	"github.com/localbzz/clientops/pkg/auth"
	"github.com/localbzz/clientops/pkg/email"

	_ "github.com/mattn/go-sqlite3"
)

func newTeamService(client *ent.Client) (*TeamService, *email.MockEmailService) {
	mockEmail := email.NewMockEmailService()
	svc := NewTeamService(
		repository.NewEntProfileRepository(client),
		auth.NewTokenManager("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour),
		auth.NewPasswordManager(),
		mockEmail,
		newActivityLogger(client),
	)
	return svc, mockEmail
}

func TestTeamService_Login(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc, _ := newTeamService(client)
	ctx := context.Background()

	profile := helpers.CreateContributorProfile("member@example.com", "SecurePass123!")

	t.Run("successful login", func(t *testing.T) {
		resp, err := svc.Login(ctx, &opsv1.LoginRequest{
			Email:    "member@example.com",
			Password: "SecurePass123!",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		require.NotNil(t, resp.Profile)
		assert.Equal(t, profile.ID.String(), resp.Profile.Id)

		// last_login_at stamped
		reloaded, err := client.Profile.Get(ctx, profile.ID)
		require.NoError(t, err)
		assert.NotNil(t, reloaded.LastLoginAt)
	})

	t.Run("email is case-insensitive", func(t *testing.T) {
		_, err := svc.Login(ctx, &opsv1.LoginRequest{
			Email:    "  Member@Example.COM ",
			Password: "SecurePass123!",
		})
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &opsv1.LoginRequest{
			Email:    "member@example.com",
			Password: "WrongPass123!",
		})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("unknown email gets the same answer", func(t *testing.T) {
		_, err := svc.Login(ctx, &opsv1.LoginRequest{
			Email:    "nobody@example.com",
			Password: "SecurePass123!",
		})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("inactive profile cannot log in", func(t *testing.T) {
		inactive := helpers.CreateContributorProfile("gone@example.com", "SecurePass123!")
		_, err := client.Profile.UpdateOneID(inactive.ID).SetIsActive(false).Save(ctx)
		require.NoError(t, err)

		_, err = svc.Login(ctx, &opsv1.LoginRequest{
			Email:    "gone@example.com",
			Password: "SecurePass123!",
		})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

func TestTeamService_InviteFlow(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc, mockEmail := newTeamService(client)
	admin := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	adminCtx := helpers.AuthenticatedContext(admin)

	var inviteToken string

	t.Run("invite sends an email with the token", func(t *testing.T) {
		_, err := svc.InviteUser(adminCtx, &opsv1.InviteUserRequest{
			Email: "newhire@example.com",
		})
		require.NoError(t, err)

		sent := mockEmail.GetLastSentEmail()
		require.NotNil(t, sent)
		assert.Equal(t, "newhire@example.com", sent.To)
		assert.NotEmpty(t, sent.Data.Token)
		inviteToken = sent.Data.Token
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.InviteUser(adminCtx, &opsv1.InviteUserRequest{
			Email: "newhire@example.com",
		})
		require.Error(t, err)
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("contributor cannot invite", func(t *testing.T) {
		contributor := helpers.CreateContributorProfile("member@example.com", "SecurePass123!")
		_, err := svc.InviteUser(helpers.AuthenticatedContext(contributor), &opsv1.InviteUserRequest{
			Email: "another@example.com",
		})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("accept activates the profile", func(t *testing.T) {
		resp, err := svc.AcceptInvite(context.Background(), &opsv1.AcceptInviteRequest{
			Token:       inviteToken,
			Password:    "NewSecure123!",
			DisplayName: "New Hire",
		})
		require.NoError(t, err)
		assert.Equal(t, "New Hire", resp.Profile.DisplayName)

		// The new credentials work immediately
		login, err := svc.Login(context.Background(), &opsv1.LoginRequest{
			Email:    "newhire@example.com",
			Password: "NewSecure123!",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, login.AccessToken)
	})

	t.Run("token is single-use", func(t *testing.T) {
		_, err := svc.AcceptInvite(context.Background(), &opsv1.AcceptInviteRequest{
			Token:       inviteToken,
			Password:    "NewSecure123!",
			DisplayName: "New Hire",
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("expired invitation rejected", func(t *testing.T) {
		_, err := svc.InviteUser(adminCtx, &opsv1.InviteUserRequest{
			Email: "late@example.com",
		})
		require.NoError(t, err)
		token := mockEmail.GetLastSentEmail().Data.Token

		expired := time.Now().Add(-time.Hour)
		_, err = client.Profile.
			Update().
			Where(profile.EmailEQ("late@example.com")).
			SetInviteExpiresAt(expired).
			Save(context.Background())
		require.NoError(t, err)

		_, err = svc.AcceptInvite(context.Background(), &opsv1.AcceptInviteRequest{
			Token:       token,
			Password:    "NewSecure123!",
			DisplayName: "Late Hire",
		})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("weak password rejected", func(t *testing.T) {
		_, err := svc.InviteUser(adminCtx, &opsv1.InviteUserRequest{
			Email: "weak@example.com",
		})
		require.NoError(t, err)
		token := mockEmail.GetLastSentEmail().Data.Token

		_, err = svc.AcceptInvite(context.Background(), &opsv1.AcceptInviteRequest{
			Token:       token,
			Password:    "short",
			DisplayName: "Weak Pass",
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestTeamService_UpdateUserRole(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc, _ := newTeamService(client)
	admin := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	contributor := helpers.CreateContributorProfile("member@example.com", "SecurePass123!")

	t.Run("admin promotes a contributor", func(t *testing.T) {
		_, err := svc.UpdateUserRole(helpers.AuthenticatedContext(admin), &opsv1.UpdateUserRoleRequest{
			UserId: contributor.ID.String(),
			Role:   opsv1.UserRole_USER_ROLE_ADMIN,
		})
		require.NoError(t, err)

		reloaded, err := client.Profile.Get(context.Background(), contributor.ID)
		require.NoError(t, err)
		assert.Equal(t, "admin", string(reloaded.Role))
	})

	t.Run("contributor cannot change roles", func(t *testing.T) {
		other := helpers.CreateContributorProfile("other@example.com", "SecurePass123!")
		_, err := svc.UpdateUserRole(helpers.AuthenticatedContext(other), &opsv1.UpdateUserRoleRequest{
			UserId: admin.ID.String(),
			Role:   opsv1.UserRole_USER_ROLE_CONTRIBUTOR,
		})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := svc.UpdateUserRole(helpers.AuthenticatedContext(admin), &opsv1.UpdateUserRoleRequest{
			UserId: uuid.New().String(),
			Role:   opsv1.UserRole_USER_ROLE_ADMIN,
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}
