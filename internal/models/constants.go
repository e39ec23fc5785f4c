// internal/models/constants.go
package models

// Task status constants
const (
	TaskStatusTodo = "todo"
	TaskStatusDone = "done"
)

// Cycle status constants
const (
	CycleStatusPlanning  = "planning"
	CycleStatusActive    = "active"
	CycleStatusCompleted = "completed"
)

// Shoot status constants
const (
	ShootStatusPlanned   = "planned"
	ShootStatusShot      = "shot"
	ShootStatusEdited    = "edited"
	ShootStatusDelivered = "delivered"
)

// Shoot type constants
const (
	ShootTypeMonthly = "monthly"
	ShootTypeAdhoc   = "adhoc"
)

// Client status constants
const (
	ClientStatusActive   = "active"
	ClientStatusArchived = "archived"
)

// Context entry types
const (
	ContextTypeTranscript = "transcript"
	ContextTypeReport     = "report"
	ContextTypeNote       = "note"
)

// Template roles
const (
	RoleStrategist = "strategist"
	RoleScheduler  = "scheduler"
	RoleShooter    = "shooter"
	RoleEditor     = "editor"
)

// Profile roles
const (
	ProfileRoleAdmin       = "admin"
	ProfileRoleContributor = "contributor"
)

// Cycle task titles that complete through a dedicated operation instead of a
// plain status toggle.
const (
	TitleScheduleShoot = "Schedule Shoot"
	TitleCheckinCall   = "Conduct Check-in Call"
)

// Handoff task titles on shoot task lists. These are completed by shoot
// status transitions, never by a direct toggle.
const (
	TitleShootContent    = "Shoot Content"
	TitleEditContent     = "Edit Content"
	TitleScheduleContent = "Schedule Content"
)

// HandoffTaskTitles lists the shoot-driven system task titles.
var HandoffTaskTitles = []string{
	TitleShootContent,
	TitleEditContent,
	TitleScheduleContent,
}

// IsSystemTask reports whether a title belongs to a shoot-driven handoff task.
func IsSystemTask(title string) bool {
	for _, t := range HandoffTaskTitles {
		if t == title {
			return true
		}
	}
	return false
}

// HandoffTitleForShootStatus maps a shoot status transition to the handoff
// task it completes. Returns "" for statuses with no handoff.
func HandoffTitleForShootStatus(status string) string {
	switch status {
	case ShootStatusShot:
		return TitleShootContent
	case ShootStatusEdited:
		return TitleEditContent
	case ShootStatusDelivered:
		return TitleScheduleContent
	default:
		return ""
	}
}

// MaxContextContentLength caps context entry content (50KB of text).
const MaxContextContentLength = 50000
