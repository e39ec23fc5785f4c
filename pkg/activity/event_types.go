// pkg/activity/event_types.go
package activity

import (
	"fmt"

	"github.com/localbzz/clientops/ent/generated/activityevent"
)

// EventType constants for string-based event type handling
const (
	EventTypeClientCreated      = "client_created"
	EventTypeClientUpdated      = "client_updated"
	EventTypeClientsImported    = "clients_imported"
	EventTypeCycleStarted       = "cycle_started"
	EventTypeShootScheduled     = "shoot_scheduled"
	EventTypeShootStatusChanged = "shoot_status_changed"
	EventTypeCheckinCompleted   = "checkin_completed"
	EventTypeRoleChanged        = "role_changed"
	EventTypeInviteSent         = "invite_sent"
	EventTypeInviteAccepted     = "invite_accepted"
	EventTypeLoginSuccess       = "login_success"
	EventTypeLoginFailed        = "login_failed"
)

// Severity constants for string-based severity handling
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// ParseEventType converts string event type to Ent enum
func ParseEventType(eventType string) (activityevent.EventType, error) {
	switch eventType {
	case EventTypeClientCreated:
		return activityevent.EventTypeClientCreated, nil
	case EventTypeClientUpdated:
		return activityevent.EventTypeClientUpdated, nil
	case EventTypeClientsImported:
		return activityevent.EventTypeClientsImported, nil
	case EventTypeCycleStarted:
		return activityevent.EventTypeCycleStarted, nil
	case EventTypeShootScheduled:
		return activityevent.EventTypeShootScheduled, nil
	case EventTypeShootStatusChanged:
		return activityevent.EventTypeShootStatusChanged, nil
	case EventTypeCheckinCompleted:
		return activityevent.EventTypeCheckinCompleted, nil
	case EventTypeRoleChanged:
		return activityevent.EventTypeRoleChanged, nil
	case EventTypeInviteSent:
		return activityevent.EventTypeInviteSent, nil
	case EventTypeInviteAccepted:
		return activityevent.EventTypeInviteAccepted, nil
	case EventTypeLoginSuccess:
		return activityevent.EventTypeLoginSuccess, nil
	case EventTypeLoginFailed:
		return activityevent.EventTypeLoginFailed, nil
	default:
		return "", fmt.Errorf("unknown event type: %s", eventType)
	}
}

// ParseSeverity converts string severity to Ent enum
func ParseSeverity(severity string) (activityevent.Severity, error) {
	switch severity {
	case SeverityLow:
		return activityevent.SeverityLow, nil
	case SeverityMedium:
		return activityevent.SeverityMedium, nil
	case SeverityHigh:
		return activityevent.SeverityHigh, nil
	default:
		return "", fmt.Errorf("unknown severity: %s", severity)
	}
}

// ValidEventTypes returns all valid event type strings
func ValidEventTypes() []string {
	return []string{
		EventTypeClientCreated,
		EventTypeClientUpdated,
		EventTypeClientsImported,
		EventTypeCycleStarted,
		EventTypeShootScheduled,
		EventTypeShootStatusChanged,
		EventTypeCheckinCompleted,
		EventTypeRoleChanged,
		EventTypeInviteSent,
		EventTypeInviteAccepted,
		EventTypeLoginSuccess,
		EventTypeLoginFailed,
	}
}

// IsValidEventType checks if the event type string is valid
func IsValidEventType(eventType string) bool {
	_, err := ParseEventType(eventType)
	return err == nil
}

// IsValidSeverity checks if the severity string is valid
func IsValidSeverity(severity string) bool {
	_, err := ParseSeverity(severity)
	return err == nil
}
