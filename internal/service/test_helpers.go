// internal/service/test_helpers.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/task"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
	"github.com/localbzz/clientops/internal/middleware"
	"github.com/localbzz/clientops/pkg/auth"
)

// TestHelpers provides common test utilities
type TestHelpers struct {
	t               *testing.T
	client          *ent.Client
	passwordManager *auth.PasswordManager
}

// NewTestHelpers creates a new test helper instance
func NewTestHelpers(t *testing.T, client *ent.Client) *TestHelpers {
	return &TestHelpers{
		t:               t,
		client:          client,
		passwordManager: auth.NewPasswordManager(),
	}
}

// CreateAdminProfile creates an active admin profile
func (h *TestHelpers) CreateAdminProfile(email, password string) *ent.Profile {
	return h.createProfile(email, password, profile.RoleAdmin)
}

// CreateContributorProfile creates an active contributor profile
func (h *TestHelpers) CreateContributorProfile(email, password string) *ent.Profile {
	return h.createProfile(email, password, profile.RoleContributor)
}

func (h *TestHelpers) createProfile(email, password string, role profile.Role) *ent.Profile {
	hashedPassword, err := h.passwordManager.HashPassword(password)
	require.NoError(h.t, err)

	p, err := h.client.Profile.Create().
		SetEmail(email).
		SetDisplayName("Test User").
		SetPasswordHash(hashedPassword).
		SetRole(role).
		SetIsActive(true).
		Save(context.Background())
	require.NoError(h.t, err)

	return p
}

// CreateTestClient creates an active client account
func (h *TestHelpers) CreateTestClient(name string) *ent.ClientAccount {
	c, err := h.client.ClientAccount.Create().
		SetName(name).
		Save(context.Background())
	require.NoError(h.t, err)

	return c
}

// CreateGlobalTemplate creates an active global template
func (h *TestHelpers) CreateGlobalTemplate(parentType, title, role string, sortOrder, daysOffset int) *ent.TaskTemplate {
	tpl, err := h.client.TaskTemplate.Create().
		SetParentType(tasktemplate.ParentType(parentType)).
		SetTitle(title).
		SetRole(tasktemplate.Role(role)).
		SetSortOrder(sortOrder).
		SetDaysOffset(daysOffset).
		Save(context.Background())
	require.NoError(h.t, err)

	return tpl
}

// CreateClientTemplate creates an active client-scoped template
func (h *TestHelpers) CreateClientTemplate(clientID uuid.UUID, parentType, title, role string, sortOrder, daysOffset int) *ent.TaskTemplate {
	tpl, err := h.client.TaskTemplate.Create().
		SetClientID(clientID).
		SetParentType(tasktemplate.ParentType(parentType)).
		SetTitle(title).
		SetRole(tasktemplate.Role(role)).
		SetSortOrder(sortOrder).
		SetDaysOffset(daysOffset).
		Save(context.Background())
	require.NoError(h.t, err)

	return tpl
}

// SetAssignment creates an assignment override row directly
func (h *TestHelpers) SetAssignment(clientID, templateID uuid.UUID, assigneeID *uuid.UUID, daysOffsetOverride *int) *ent.ClientTaskAssignment {
	create := h.client.ClientTaskAssignment.Create().
		SetClientID(clientID).
		SetTemplateID(templateID)

	if assigneeID != nil {
		create = create.SetAssigneeID(*assigneeID)
	}
	if daysOffsetOverride != nil {
		create = create.SetDaysOffsetOverride(*daysOffsetOverride)
	}

	a, err := create.Save(context.Background())
	require.NoError(h.t, err)

	return a
}

// TasksOf returns a parent's tasks in sort order
func (h *TestHelpers) TasksOf(parentType string, parentID uuid.UUID) []*ent.Task {
	tasks, err := h.client.Task.Query().
		Where(
			task.ParentTypeEQ(task.ParentType(parentType)),
			task.ParentIDEQ(parentID),
		).
		Order(ent.Asc(task.FieldSortOrder)).
		All(context.Background())
	require.NoError(h.t, err)

	return tasks
}

// AuthenticatedContext returns a context carrying the profile's auth claims
// the way the auth interceptor would set them
func (h *TestHelpers) AuthenticatedContext(p *ent.Profile) context.Context {
	ctx := context.WithValue(context.Background(), middleware.ContextKeyUserID, p.ID.String())
	ctx = context.WithValue(ctx, middleware.ContextKeyUserEmail, p.Email)
	ctx = context.WithValue(ctx, middleware.ContextKeyUserRole, string(p.Role))
	return ctx
}

// Date builds a UTC midnight time for wire-format assertions
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
