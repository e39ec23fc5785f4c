// internal/service/activity_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/ent/generated/activityevent"
	"github.com/localbzz/clientops/pkg/activity"
)

// ActivityService handles activity event logging and retrieval
type ActivityService struct {
	client *ent.Client
}

// NewActivityService creates a new activity service
func NewActivityService(client *ent.Client) *ActivityService {
	return &ActivityService{
		client: client,
	}
}

// LogActivityEvent logs an activity event with proper type conversion
func (s *ActivityService) LogActivityEvent(ctx context.Context, req *LogActivityEventRequest) error {
	// Parse event type
	eventType, err := activity.ParseEventType(req.EventType)
	if err != nil {
		return fmt.Errorf("invalid event type: %w", err)
	}

	// Parse severity
	severity, err := activity.ParseSeverity(req.Severity)
	if err != nil {
		return fmt.Errorf("invalid severity: %w", err)
	}

	create := s.client.ActivityEvent.Create().
		SetEventType(eventType).
		SetSeverity(severity)

	if req.ActorID != uuid.Nil {
		create = create.SetActorID(req.ActorID)
	}
	if req.ClientID != uuid.Nil {
		create = create.SetClientID(req.ClientID)
	}

	// Set optional fields
	if req.Description != "" {
		create = create.SetDescription(req.Description)
	}
	if req.IPAddress != "" {
		create = create.SetIPAddress(req.IPAddress)
	}
	if len(req.Metadata) > 0 {
		create = create.SetMetadata(req.Metadata)
	}

	_, err = create.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to save activity event: %w", err)
	}

	return nil
}

// LogActorEvent is a convenience method for logging actor-specific events
func (s *ActivityService) LogActorEvent(ctx context.Context, actorID, clientID uuid.UUID, eventType, description, severity, ipAddress string) error {
	req := &LogActivityEventRequest{
		ActorID:     actorID,
		ClientID:    clientID,
		EventType:   eventType,
		Description: description,
		Severity:    severity,
		IPAddress:   ipAddress,
	}
	return s.LogActivityEvent(ctx, req)
}

// LogSystemEvent is a convenience method for logging events with no actor
func (s *ActivityService) LogSystemEvent(ctx context.Context, eventType, description, severity, ipAddress string) error {
	req := &LogActivityEventRequest{
		ActorID:     uuid.Nil, // No specific actor
		EventType:   eventType,
		Description: description,
		Severity:    severity,
		IPAddress:   ipAddress,
	}
	return s.LogActivityEvent(ctx, req)
}

// GetActivityEvents retrieves activity events with filtering
func (s *ActivityService) GetActivityEvents(ctx context.Context, req *GetActivityEventsRequest) (*GetActivityEventsResponse, error) {
	query := s.client.ActivityEvent.Query().
		WithActor()

	// Apply filters
	if req.ActorID != uuid.Nil {
		query = query.Where(activityevent.ActorIDEQ(req.ActorID))
	}

	if req.ClientID != uuid.Nil {
		query = query.Where(activityevent.ClientIDEQ(req.ClientID))
	}

	if req.EventType != "" {
		eventType, err := activity.ParseEventType(req.EventType)
		if err != nil {
			return nil, fmt.Errorf("invalid event type filter: %w", err)
		}
		query = query.Where(activityevent.EventTypeEQ(eventType))
	}

	if req.Severity != "" {
		severity, err := activity.ParseSeverity(req.Severity)
		if err != nil {
			return nil, fmt.Errorf("invalid severity filter: %w", err)
		}
		query = query.Where(activityevent.SeverityEQ(severity))
	}

	if !req.FromDate.IsZero() {
		query = query.Where(activityevent.CreatedAtGTE(req.FromDate))
	}

	if !req.ToDate.IsZero() {
		query = query.Where(activityevent.CreatedAtLTE(req.ToDate))
	}

	// Get total count
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count activity events: %w", err)
	}

	// Apply pagination
	if req.Limit > 0 {
		query = query.Limit(req.Limit)
	}
	if req.Offset > 0 {
		query = query.Offset(req.Offset)
	}

	// Order by creation date (newest first)
	query = query.Order(ent.Desc(activityevent.FieldCreatedAt))

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity events: %w", err)
	}

	return &GetActivityEventsResponse{
		Events:     events,
		TotalCount: totalCount,
	}, nil
}

// Request/Response types

// LogActivityEventRequest represents a request to log an activity event
type LogActivityEventRequest struct {
	ActorID     uuid.UUID              `json:"actor_id"`
	ClientID    uuid.UUID              `json:"client_id"`
	EventType   string                 `json:"event_type"`
	Description string                 `json:"description"`
	Severity    string                 `json:"severity"`
	IPAddress   string                 `json:"ip_address,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// GetActivityEventsRequest represents a request to get activity events
type GetActivityEventsRequest struct {
	ActorID   uuid.UUID `json:"actor_id,omitempty"`
	ClientID  uuid.UUID `json:"client_id,omitempty"`
	EventType string    `json:"event_type,omitempty"`
	Severity  string    `json:"severity,omitempty"`
	FromDate  time.Time `json:"from_date,omitempty"`
	ToDate    time.Time `json:"to_date,omitempty"`
	Limit     int       `json:"limit"`
	Offset    int       `json:"offset"`
}

// GetActivityEventsResponse represents the response from getting activity events
type GetActivityEventsResponse struct {
	Events     []*ent.ActivityEvent `json:"events"`
	TotalCount int                  `json:"total_count"`
}
