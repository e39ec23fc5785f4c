// internal/service/activity_logger.go
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/localbzz/clientops/internal/middleware"
	"github.com/localbzz/clientops/pkg/activity"
)

// ActivityLogger provides convenience methods for logging activity events
type ActivityLogger struct {
	activityService *ActivityService
}

// NewActivityLogger creates a new activity logger
func NewActivityLogger(activityService *ActivityService) *ActivityLogger {
	return &ActivityLogger{
		activityService: activityService,
	}
}

// LogFromContext logs an activity event using context information
func (al *ActivityLogger) LogFromContext(ctx context.Context, actorID, clientID uuid.UUID, eventType, description, severity string) error {
	callerInfo := middleware.GetCallerInfoFromContext(ctx)

	return al.activityService.LogActorEvent(
		ctx,
		actorID,
		clientID,
		eventType,
		description,
		severity,
		callerInfo.IPAddress,
	)
}

// LogSystemFromContext logs an activity event with no actor
func (al *ActivityLogger) LogSystemFromContext(ctx context.Context, eventType, description, severity string) error {
	callerInfo := middleware.GetCallerInfoFromContext(ctx)

	return al.activityService.LogSystemEvent(
		ctx,
		eventType,
		description,
		severity,
		callerInfo.IPAddress,
	)
}

// LogCurrentActorFromContext logs an activity event for the authenticated user
func (al *ActivityLogger) LogCurrentActorFromContext(ctx context.Context, clientID uuid.UUID, eventType, description, severity string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		// If no user in context, log with no actor
		return al.LogSystemFromContext(ctx, eventType, description, severity)
	}

	actorID, err := uuid.Parse(userID)
	if err != nil {
		return al.LogSystemFromContext(ctx, eventType, description, severity)
	}

	return al.LogFromContext(ctx, actorID, clientID, eventType, description, severity)
}

// Convenience methods for common activity events

func (al *ActivityLogger) LogLoginSuccess(ctx context.Context, actorID uuid.UUID) error {
	return al.LogFromContext(ctx, actorID, uuid.Nil, activity.EventTypeLoginSuccess,
		"User successfully logged in", activity.SeverityLow)
}

func (al *ActivityLogger) LogLoginFailed(ctx context.Context, email, reason string) error {
	return al.LogSystemFromContext(ctx, activity.EventTypeLoginFailed,
		"Login failed for "+email+": "+reason, activity.SeverityMedium)
}

func (al *ActivityLogger) LogClientCreated(ctx context.Context, clientID uuid.UUID, name string) error {
	return al.LogCurrentActorFromContext(ctx, clientID, activity.EventTypeClientCreated,
		"Client created: "+name, activity.SeverityLow)
}

func (al *ActivityLogger) LogClientUpdated(ctx context.Context, clientID uuid.UUID, name string) error {
	return al.LogCurrentActorFromContext(ctx, clientID, activity.EventTypeClientUpdated,
		"Client updated: "+name, activity.SeverityLow)
}

func (al *ActivityLogger) LogClientsImported(ctx context.Context, count int) error {
	return al.LogCurrentActorFromContext(ctx, uuid.Nil, activity.EventTypeClientsImported,
		"Clients imported via bulk import", activity.SeverityLow)
}

func (al *ActivityLogger) LogCycleStarted(ctx context.Context, clientID uuid.UUID, month string) error {
	return al.LogCurrentActorFromContext(ctx, clientID, activity.EventTypeCycleStarted,
		"Cycle started for "+month, activity.SeverityLow)
}

func (al *ActivityLogger) LogShootScheduled(ctx context.Context, clientID uuid.UUID, date string) error {
	return al.LogCurrentActorFromContext(ctx, clientID, activity.EventTypeShootScheduled,
		"Shoot scheduled for "+date, activity.SeverityLow)
}

func (al *ActivityLogger) LogShootStatusChanged(ctx context.Context, clientID uuid.UUID, newStatus string) error {
	return al.LogCurrentActorFromContext(ctx, clientID, activity.EventTypeShootStatusChanged,
		"Shoot status changed to "+newStatus, activity.SeverityLow)
}

func (al *ActivityLogger) LogCheckinCompleted(ctx context.Context, clientID uuid.UUID) error {
	return al.LogCurrentActorFromContext(ctx, clientID, activity.EventTypeCheckinCompleted,
		"Check-in call completed", activity.SeverityLow)
}

func (al *ActivityLogger) LogRoleChanged(ctx context.Context, targetEmail, newRole string) error {
	return al.LogCurrentActorFromContext(ctx, uuid.Nil, activity.EventTypeRoleChanged,
		"Role changed to "+newRole+" for "+targetEmail, activity.SeverityMedium)
}

func (al *ActivityLogger) LogInviteSent(ctx context.Context, email string) error {
	return al.LogCurrentActorFromContext(ctx, uuid.Nil, activity.EventTypeInviteSent,
		"Invitation sent to "+email, activity.SeverityLow)
}

func (al *ActivityLogger) LogInviteAccepted(ctx context.Context, actorID uuid.UUID) error {
	return al.LogFromContext(ctx, actorID, uuid.Nil, activity.EventTypeInviteAccepted,
		"Invitation accepted", activity.SeverityLow)
}
