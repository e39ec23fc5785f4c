// internal/repository/profile_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/profile"
)

type EntProfileRepository struct {
	client *ent.Client
}

func NewEntProfileRepository(client *ent.Client) *EntProfileRepository {
	return &EntProfileRepository{
		client: client,
	}
}

func (r *EntProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Profile, error) {
	return r.client.Profile.
		Query().
		Where(profile.ID(id)).
		Only(ctx)
}

func (r *EntProfileRepository) GetByEmail(ctx context.Context, email string) (*ent.Profile, error) {
	return r.client.Profile.
		Query().
		Where(profile.EmailEQ(email)).
		Only(ctx)
}

func (r *EntProfileRepository) GetByInviteToken(ctx context.Context, token string) (*ent.Profile, error) {
	return r.client.Profile.
		Query().
		Where(profile.InviteTokenEQ(token)).
		Only(ctx)
}

// List returns every team member ordered by email.
func (r *EntProfileRepository) List(ctx context.Context) ([]*ent.Profile, error) {
	return r.client.Profile.
		Query().
		Order(ent.Asc(profile.FieldEmail)).
		All(ctx)
}

// CreateInvited creates an inactive profile holding a pending invitation.
func (r *EntProfileRepository) CreateInvited(ctx context.Context, email, token string, expiresAt time.Time) (*ent.Profile, error) {
	return r.client.Profile.
		Create().
		SetEmail(email).
		SetRole(profile.RoleContributor).
		SetIsActive(false).
		SetInviteToken(token).
		SetInviteExpiresAt(expiresAt).
		Save(ctx)
}

// AcceptInvite activates an invited profile: sets the password hash and
// display name and clears the invitation token.
func (r *EntProfileRepository) AcceptInvite(ctx context.Context, id uuid.UUID, passwordHash, displayName string) (*ent.Profile, error) {
	return r.client.Profile.
		UpdateOneID(id).
		SetPasswordHash(passwordHash).
		SetDisplayName(displayName).
		SetIsActive(true).
		ClearInviteToken().
		ClearInviteExpiresAt().
		Save(ctx)
}

func (r *EntProfileRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*ent.Profile, error) {
	return r.client.Profile.
		UpdateOneID(id).
		SetRole(profile.Role(role)).
		Save(ctx)
}

// RecordLogin stamps a successful login.
func (r *EntProfileRepository) RecordLogin(ctx context.Context, id uuid.UUID) error {
	return r.client.Profile.
		UpdateOneID(id).
		SetLastLogin(time.Now()).
		Exec(ctx)
}
