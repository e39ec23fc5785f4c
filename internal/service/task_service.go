// internal/service/task_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	ent "github.com/localbzz/clientops/ent/generated"
	enttask "github.com/localbzz/clientops/ent/generated/task"
	"github.com/localbzz/clientops/internal/middleware"
	"github.com/localbzz/clientops/internal/models"
	"github.com/localbzz/clientops/internal/repository"
)

type TaskService struct {
	opsv1.UnimplementedTaskServiceServer
	repo           *repository.EntTaskRepository
	activityLogger *ActivityLogger
}

func NewTaskService(repo *repository.EntTaskRepository, activityLogger *ActivityLogger) *TaskService {
	return &TaskService{
		repo:           repo,
		activityLogger: activityLogger,
	}
}

// ListTasks retrieves the task list of a cycle or shoot in sort order
func (s *TaskService) ListTasks(ctx context.Context, req *opsv1.ListTasksRequest) (*opsv1.ListTasksResponse, error) {
	parentType, err := models.ParseParentType(convertParentTypeToString(req.ParentType))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "parent_type is required")
	}

	parentID, err := parseID(req.ParentId, "parent ID")
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.ListByParent(ctx, models.ParentRef{Type: parentType, ID: parentID})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list tasks: %v", err)
	}

	return &opsv1.ListTasksResponse{
		Tasks: convertTasksToProto(tasks),
	}, nil
}

// ListClientTasks retrieves every task belonging to a client
func (s *TaskService) ListClientTasks(ctx context.Context, req *opsv1.ListClientTasksRequest) (*opsv1.ListClientTasksResponse, error) {
	clientID, err := parseID(req.ClientId, "client ID")
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list client tasks: %v", err)
	}

	return &opsv1.ListClientTasksResponse{
		Tasks: convertTasksToProto(tasks),
	}, nil
}

// ListPendingTasks retrieves open tasks across all clients, due soonest first
func (s *TaskService) ListPendingTasks(ctx context.Context, req *opsv1.ListPendingTasksRequest) (*opsv1.ListPendingTasksResponse, error) {
	tasks, err := s.repo.Pending(ctx, int(req.Limit))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list pending tasks: %v", err)
	}

	return &opsv1.ListPendingTasksResponse{
		Tasks: convertTasksToProto(tasks),
	}, nil
}

// SetTaskStatus is the plain status toggle. The dialog-gated cycle tasks
// and the shoot-driven handoff tasks are refused here; they complete
// through ScheduleShoot, CompleteCheckin, and UpdateShootStatus instead.
func (s *TaskService) SetTaskStatus(ctx context.Context, req *opsv1.SetTaskStatusRequest) (*opsv1.SetTaskStatusResponse, error) {
	taskID, err := parseID(req.TaskId, "task ID")
	if err != nil {
		return nil, err
	}

	taskStatus := convertTaskStatusToString(req.Status)
	if taskStatus == "" {
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get task: %v", err)
	}

	if err := checkStatusToggle(task, taskStatus); err != nil {
		return nil, err
	}

	task, err = s.repo.UpdateStatus(ctx, taskID, taskStatus)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to update task status: %v", err)
	}

	return &opsv1.SetTaskStatusResponse{
		Task: convertTaskToProto(task),
	}, nil
}

// checkStatusToggle rejects status changes that must flow through a
// dedicated operation instead of the plain toggle.
func checkStatusToggle(task *ent.Task, newStatus string) error {
	if models.IsSystemTask(task.Title) {
		return status.Errorf(codes.FailedPrecondition,
			"%q is driven by shoot status and cannot be toggled directly", task.Title)
	}

	if task.ParentType != enttask.ParentTypeCycle {
		return nil
	}

	// Completing these from a cycle opens a dialog in the client; the
	// server-side counterparts are ScheduleShoot and CompleteCheckin.
	if string(task.Status) == models.TaskStatusTodo && newStatus == models.TaskStatusDone {
		switch task.Title {
		case models.TitleScheduleShoot:
			return status.Error(codes.FailedPrecondition,
				"completing this task requires scheduling a shoot")
		case models.TitleCheckinCall:
			return status.Error(codes.FailedPrecondition,
				"completing this task requires the check-in flow")
		}
	}

	return nil
}

// UpdateTaskAssignee sets or clears the assignee on a single task
func (s *TaskService) UpdateTaskAssignee(ctx context.Context, req *opsv1.UpdateTaskAssigneeRequest) (*opsv1.UpdateTaskAssigneeResponse, error) {
	taskID, err := parseID(req.TaskId, "task ID")
	if err != nil {
		return nil, err
	}

	var assigneeID *uuid.UUID
	if req.AssigneeId != nil {
		id, err := parseID(*req.AssigneeId, "assignee ID")
		if err != nil {
			return nil, err
		}
		assigneeID = &id
	}

	task, err := s.repo.UpdateAssignee(ctx, taskID, assigneeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update assignee: %v", err)
	}

	return &opsv1.UpdateTaskAssigneeResponse{
		Task: convertTaskToProto(task),
	}, nil
}

// CompleteCheckin writes the supplied transcript and notes as context
// entries and marks the check-in task done, all in one transaction
func (s *TaskService) CompleteCheckin(ctx context.Context, req *opsv1.CompleteCheckinRequest) (*opsv1.CompleteCheckinResponse, error) {
	taskID, err := parseID(req.TaskId, "task ID")
	if err != nil {
		return nil, err
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get task: %v", err)
	}

	if task.ParentType != enttask.ParentTypeCycle || task.Title != models.TitleCheckinCall {
		return nil, status.Error(codes.FailedPrecondition, "task is not a check-in call task")
	}

	if string(task.Status) == models.TaskStatusDone {
		return nil, status.Error(codes.FailedPrecondition, "check-in task is already done")
	}

	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}

	authorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid user in context")
	}

	transcript := strings.TrimSpace(req.Transcript)
	notes := strings.TrimSpace(req.Notes)

	task, entriesCreated, err := s.repo.CompleteCheckin(ctx, task, task.ParentID, authorID, transcript, notes)
	if err != nil {
		if ent.IsValidationError(err) {
			return nil, status.Error(codes.InvalidArgument, "content exceeds the maximum length")
		}
		return nil, status.Errorf(codes.Internal, "failed to complete check-in: %v", err)
	}

	s.activityLogger.LogCheckinCompleted(ctx, task.ClientID)

	return &opsv1.CompleteCheckinResponse{
		Task:                  convertTaskToProto(task),
		ContextEntriesCreated: int32(entriesCreated),
	}, nil
}

func convertTasksToProto(tasks []*ent.Task) []*opsv1.Task {
	protoTasks := make([]*opsv1.Task, len(tasks))
	for i, task := range tasks {
		protoTasks[i] = convertTaskToProto(task)
	}
	return protoTasks
}
