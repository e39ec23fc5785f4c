// internal/service/converters.go
package service

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	"github.com/localbzz/clientops/internal/models"
)

// Calendar dates travel on the wire as "YYYY-MM-DD" strings; instants as
// protobuf timestamps.
const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// Entity converters

func convertClientToProto(c *ent.ClientAccount) *opsv1.Client {
	return &opsv1.Client{
		Id:        c.ID.String(),
		Name:      c.Name,
		Status:    convertStringToClientStatus(string(c.Status)),
		Assets:    c.Assets,
		CreatedAt: timestamppb.New(c.CreatedAt),
		UpdatedAt: timestamppb.New(c.UpdatedAt),
	}
}

func convertTemplateToProto(t *ent.TaskTemplate) *opsv1.TaskTemplate {
	proto := &opsv1.TaskTemplate{
		Id:         t.ID.String(),
		ParentType: convertStringToParentType(string(t.ParentType)),
		Title:      t.Title,
		Role:       convertStringToTemplateRole(string(t.Role)),
		SortOrder:  int32(t.SortOrder),
		DaysOffset: int32(t.DaysOffset),
		IsActive:   t.IsActive,
		CreatedAt:  timestamppb.New(t.CreatedAt),
		UpdatedAt:  timestamppb.New(t.UpdatedAt),
	}

	if t.ClientID != nil {
		clientID := t.ClientID.String()
		proto.ClientId = &clientID
	}

	return proto
}

func convertAssignmentToProto(a *ent.ClientTaskAssignment) *opsv1.ClientTaskAssignment {
	proto := &opsv1.ClientTaskAssignment{
		Id:         a.ID.String(),
		ClientId:   a.ClientID.String(),
		TemplateId: a.TemplateID.String(),
		CreatedAt:  timestamppb.New(a.CreatedAt),
		UpdatedAt:  timestamppb.New(a.UpdatedAt),
	}

	if a.AssigneeID != nil {
		assigneeID := a.AssigneeID.String()
		proto.AssigneeId = &assigneeID
	}

	if a.DaysOffsetOverride != nil {
		override := int32(*a.DaysOffsetOverride)
		proto.DaysOffsetOverride = &override
	}

	return proto
}

func convertCycleToProto(c *ent.Cycle) *opsv1.Cycle {
	return &opsv1.Cycle{
		Id:        c.ID.String(),
		ClientId:  c.ClientID.String(),
		Month:     formatDate(c.Month),
		Status:    convertStringToCycleStatus(string(c.Status)),
		CreatedAt: timestamppb.New(c.CreatedAt),
		UpdatedAt: timestamppb.New(c.UpdatedAt),
	}
}

func convertShootToProto(s *ent.Shoot) *opsv1.Shoot {
	proto := &opsv1.Shoot{
		Id:        s.ID.String(),
		ClientId:  s.ClientID.String(),
		ShootDate: formatDate(s.ShootDate),
		Status:    convertStringToShootStatus(string(s.Status)),
		Type:      convertStringToShootType(string(s.Type)),
		CreatedAt: timestamppb.New(s.CreatedAt),
		UpdatedAt: timestamppb.New(s.UpdatedAt),
	}

	if s.CycleID != nil {
		cycleID := s.CycleID.String()
		proto.CycleId = &cycleID
	}

	if s.ShootTime != "" {
		shootTime := s.ShootTime
		proto.ShootTime = &shootTime
	}
	if s.Location != "" {
		location := s.Location
		proto.Location = &location
	}
	if s.CalendarLink != "" {
		link := s.CalendarLink
		proto.CalendarLink = &link
	}

	return proto
}

func convertTaskToProto(t *ent.Task) *opsv1.Task {
	proto := &opsv1.Task{
		Id:         t.ID.String(),
		ParentType: convertStringToParentType(string(t.ParentType)),
		ParentId:   t.ParentID.String(),
		ClientId:   t.ClientID.String(),
		Title:      t.Title,
		Role:       convertStringToTemplateRole(string(t.Role)),
		SortOrder:  int32(t.SortOrder),
		Status:     convertStringToTaskStatus(string(t.Status)),
		CreatedAt:  timestamppb.New(t.CreatedAt),
		UpdatedAt:  timestamppb.New(t.UpdatedAt),
	}

	if t.TemplateID != nil {
		templateID := t.TemplateID.String()
		proto.TemplateId = &templateID
	}

	if t.DueDate != nil {
		dueDate := formatDate(*t.DueDate)
		proto.DueDate = &dueDate
	}

	if t.AssigneeID != nil {
		assigneeID := t.AssigneeID.String()
		proto.AssigneeId = &assigneeID
	}

	return proto
}

func convertContextEntryToProto(e *ent.ContextEntry) *opsv1.ContextEntry {
	proto := &opsv1.ContextEntry{
		Id:        e.ID.String(),
		ClientId:  e.ClientID.String(),
		AuthorId:  e.AuthorID.String(),
		Type:      convertStringToContextType(string(e.Type)),
		Content:   e.Content,
		CreatedAt: timestamppb.New(e.CreatedAt),
	}

	if e.CycleID != nil {
		cycleID := e.CycleID.String()
		proto.CycleId = &cycleID
	}

	if e.Edges.Author != nil {
		proto.AuthorEmail = e.Edges.Author.Email
	}

	return proto
}

func convertProfileToProto(p *ent.Profile) *opsv1.Profile {
	return &opsv1.Profile{
		Id:          p.ID.String(),
		Email:       p.Email,
		DisplayName: p.DisplayName,
		AvatarUrl:   p.AvatarURL,
		Role:        convertStringToUserRole(string(p.Role)),
		IsActive:    p.IsActive,
		CreatedAt:   timestamppb.New(p.CreatedAt),
	}
}

// Enum converters

func convertParentTypeToString(t opsv1.ParentType) string {
	switch t {
	case opsv1.ParentType_PARENT_TYPE_CYCLE:
		return string(models.ParentTypeCycle)
	case opsv1.ParentType_PARENT_TYPE_SHOOT:
		return string(models.ParentTypeShoot)
	default:
		return ""
	}
}

func convertStringToParentType(t string) opsv1.ParentType {
	switch t {
	case "cycle":
		return opsv1.ParentType_PARENT_TYPE_CYCLE
	case "shoot":
		return opsv1.ParentType_PARENT_TYPE_SHOOT
	default:
		return opsv1.ParentType_PARENT_TYPE_UNSPECIFIED
	}
}

func convertTaskStatusToString(s opsv1.TaskStatus) string {
	switch s {
	case opsv1.TaskStatus_TASK_STATUS_TODO:
		return models.TaskStatusTodo
	case opsv1.TaskStatus_TASK_STATUS_DONE:
		return models.TaskStatusDone
	default:
		return ""
	}
}

func convertStringToTaskStatus(s string) opsv1.TaskStatus {
	switch s {
	case models.TaskStatusTodo:
		return opsv1.TaskStatus_TASK_STATUS_TODO
	case models.TaskStatusDone:
		return opsv1.TaskStatus_TASK_STATUS_DONE
	default:
		return opsv1.TaskStatus_TASK_STATUS_UNSPECIFIED
	}
}

func convertCycleStatusToString(s opsv1.CycleStatus) string {
	switch s {
	case opsv1.CycleStatus_CYCLE_STATUS_PLANNING:
		return models.CycleStatusPlanning
	case opsv1.CycleStatus_CYCLE_STATUS_ACTIVE:
		return models.CycleStatusActive
	case opsv1.CycleStatus_CYCLE_STATUS_COMPLETED:
		return models.CycleStatusCompleted
	default:
		return ""
	}
}

func convertStringToCycleStatus(s string) opsv1.CycleStatus {
	switch s {
	case models.CycleStatusPlanning:
		return opsv1.CycleStatus_CYCLE_STATUS_PLANNING
	case models.CycleStatusActive:
		return opsv1.CycleStatus_CYCLE_STATUS_ACTIVE
	case models.CycleStatusCompleted:
		return opsv1.CycleStatus_CYCLE_STATUS_COMPLETED
	default:
		return opsv1.CycleStatus_CYCLE_STATUS_UNSPECIFIED
	}
}

func convertShootStatusToString(s opsv1.ShootStatus) string {
	switch s {
	case opsv1.ShootStatus_SHOOT_STATUS_PLANNED:
		return models.ShootStatusPlanned
	case opsv1.ShootStatus_SHOOT_STATUS_SHOT:
		return models.ShootStatusShot
	case opsv1.ShootStatus_SHOOT_STATUS_EDITED:
		return models.ShootStatusEdited
	case opsv1.ShootStatus_SHOOT_STATUS_DELIVERED:
		return models.ShootStatusDelivered
	default:
		return ""
	}
}

func convertStringToShootStatus(s string) opsv1.ShootStatus {
	switch s {
	case models.ShootStatusPlanned:
		return opsv1.ShootStatus_SHOOT_STATUS_PLANNED
	case models.ShootStatusShot:
		return opsv1.ShootStatus_SHOOT_STATUS_SHOT
	case models.ShootStatusEdited:
		return opsv1.ShootStatus_SHOOT_STATUS_EDITED
	case models.ShootStatusDelivered:
		return opsv1.ShootStatus_SHOOT_STATUS_DELIVERED
	default:
		return opsv1.ShootStatus_SHOOT_STATUS_UNSPECIFIED
	}
}

func convertShootTypeToString(t opsv1.ShootType) string {
	switch t {
	case opsv1.ShootType_SHOOT_TYPE_MONTHLY:
		return models.ShootTypeMonthly
	case opsv1.ShootType_SHOOT_TYPE_ADHOC:
		return models.ShootTypeAdhoc
	default:
		return models.ShootTypeMonthly
	}
}

func convertStringToShootType(t string) opsv1.ShootType {
	switch t {
	case models.ShootTypeMonthly:
		return opsv1.ShootType_SHOOT_TYPE_MONTHLY
	case models.ShootTypeAdhoc:
		return opsv1.ShootType_SHOOT_TYPE_ADHOC
	default:
		return opsv1.ShootType_SHOOT_TYPE_UNSPECIFIED
	}
}

func convertClientStatusToString(s opsv1.ClientStatus) string {
	switch s {
	case opsv1.ClientStatus_CLIENT_STATUS_ACTIVE:
		return models.ClientStatusActive
	case opsv1.ClientStatus_CLIENT_STATUS_ARCHIVED:
		return models.ClientStatusArchived
	default:
		return ""
	}
}

func convertStringToClientStatus(s string) opsv1.ClientStatus {
	switch s {
	case models.ClientStatusActive:
		return opsv1.ClientStatus_CLIENT_STATUS_ACTIVE
	case models.ClientStatusArchived:
		return opsv1.ClientStatus_CLIENT_STATUS_ARCHIVED
	default:
		return opsv1.ClientStatus_CLIENT_STATUS_UNSPECIFIED
	}
}

func convertContextTypeToString(t opsv1.ContextType) string {
	switch t {
	case opsv1.ContextType_CONTEXT_TYPE_TRANSCRIPT:
		return models.ContextTypeTranscript
	case opsv1.ContextType_CONTEXT_TYPE_REPORT:
		return models.ContextTypeReport
	case opsv1.ContextType_CONTEXT_TYPE_NOTE:
		return models.ContextTypeNote
	default:
		return ""
	}
}

func convertStringToContextType(t string) opsv1.ContextType {
	switch t {
	case models.ContextTypeTranscript:
		return opsv1.ContextType_CONTEXT_TYPE_TRANSCRIPT
	case models.ContextTypeReport:
		return opsv1.ContextType_CONTEXT_TYPE_REPORT
	case models.ContextTypeNote:
		return opsv1.ContextType_CONTEXT_TYPE_NOTE
	default:
		return opsv1.ContextType_CONTEXT_TYPE_UNSPECIFIED
	}
}

func convertTemplateRoleToString(r opsv1.TemplateRole) string {
	switch r {
	case opsv1.TemplateRole_TEMPLATE_ROLE_STRATEGIST:
		return models.RoleStrategist
	case opsv1.TemplateRole_TEMPLATE_ROLE_SCHEDULER:
		return models.RoleScheduler
	case opsv1.TemplateRole_TEMPLATE_ROLE_SHOOTER:
		return models.RoleShooter
	case opsv1.TemplateRole_TEMPLATE_ROLE_EDITOR:
		return models.RoleEditor
	default:
		return ""
	}
}

func convertStringToTemplateRole(r string) opsv1.TemplateRole {
	switch r {
	case models.RoleStrategist:
		return opsv1.TemplateRole_TEMPLATE_ROLE_STRATEGIST
	case models.RoleScheduler:
		return opsv1.TemplateRole_TEMPLATE_ROLE_SCHEDULER
	case models.RoleShooter:
		return opsv1.TemplateRole_TEMPLATE_ROLE_SHOOTER
	case models.RoleEditor:
		return opsv1.TemplateRole_TEMPLATE_ROLE_EDITOR
	default:
		return opsv1.TemplateRole_TEMPLATE_ROLE_UNSPECIFIED
	}
}

func convertUserRoleToString(r opsv1.UserRole) string {
	switch r {
	case opsv1.UserRole_USER_ROLE_ADMIN:
		return models.ProfileRoleAdmin
	case opsv1.UserRole_USER_ROLE_CONTRIBUTOR:
		return models.ProfileRoleContributor
	default:
		return ""
	}
}

func convertStringToUserRole(r string) opsv1.UserRole {
	switch r {
	case models.ProfileRoleAdmin:
		return opsv1.UserRole_USER_ROLE_ADMIN
	case models.ProfileRoleContributor:
		return opsv1.UserRole_USER_ROLE_CONTRIBUTOR
	default:
		return opsv1.UserRole_USER_ROLE_UNSPECIFIED
	}
}
