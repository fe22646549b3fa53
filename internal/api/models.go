package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/service"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
}

// RegisterResponse defines the successful response for user registration.
// It deliberately carries no token; freshly registered users log in to get
// one.
type RegisterResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateTaskRequest defines the payload for creating a task. Priority and
// status default to low/pending when omitted.
type CreateTaskRequest struct {
	Description string     `json:"description"  validate:"required"`
	Priority    string     `json:"priority"     validate:"omitempty,oneof=low medium high"`
	Status      string     `json:"status"       validate:"omitempty,oneof=pending in_progress completed cancelled"`
	TaskListID  uuid.UUID  `json:"task_list_id" validate:"required"`
	UserID      *uuid.UUID `json:"user_id"`
}

// UpdateTaskRequest defines the payload for a partial task update. Absent
// fields keep their current values; a null user_id clears the assignee.
type UpdateTaskRequest struct {
	Description *string    `json:"description"  validate:"omitempty,min=1"`
	Priority    *string    `json:"priority"     validate:"omitempty,oneof=low medium high"`
	Status      *string    `json:"status"       validate:"omitempty,oneof=pending in_progress completed cancelled"`
	TaskListID  *uuid.UUID `json:"task_list_id"`
	UserID      *uuid.UUID `json:"user_id"`
}

// UpdateTaskStatusRequest defines the payload for the status-only update
// endpoint.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}

// UpdateTaskAssigneeRequest defines the payload for the assignee-only update
// endpoint. A null user_id unassigns the task.
type UpdateTaskAssigneeRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

// TaskResponse is the wire representation of a task.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	TaskListID  uuid.UUID  `json:"task_list_id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTaskResponse converts a task into its wire representation.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		TaskListID:  task.TaskListID,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// CreateTaskListRequest defines the payload for creating an empty task list.
type CreateTaskListRequest struct {
	Name   string     `json:"name" validate:"required"`
	UserID *uuid.UUID `json:"user_id"`
}

// TaskListTaskItem is a task embedded in a combined list-with-tasks creation
// request. The task list reference comes from the enclosing list.
type TaskListTaskItem struct {
	Description string     `json:"description" validate:"required"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Status      string     `json:"status"      validate:"omitempty,oneof=pending in_progress completed cancelled"`
	UserID      *uuid.UUID `json:"user_id"`
}

// CreateTaskListWithTasksRequest defines the payload for creating a task
// list together with its initial tasks in one request.
type CreateTaskListWithTasksRequest struct {
	Name   string             `json:"name" validate:"required"`
	UserID *uuid.UUID         `json:"user_id"`
	Tasks  []TaskListTaskItem `json:"tasks" validate:"dive"`
}

// UpdateTaskListRequest defines the payload for a partial task list update.
type UpdateTaskListRequest struct {
	Name   *string    `json:"name" validate:"omitempty,min=1"`
	UserID *uuid.UUID `json:"user_id"`
}

// TaskListResponse is the wire representation of a task list, including its
// (possibly filtered) tasks and the completeness percentage computed over
// the full task set.
type TaskListResponse struct {
	ID                       uuid.UUID      `json:"id"`
	Name                     string         `json:"name"`
	UserID                   *uuid.UUID     `json:"user_id,omitempty"`
	Tasks                    []TaskResponse `json:"tasks"`
	PercentageOfCompleteness float64        `json:"percentage_of_completeness"`
	CreatedAt                time.Time      `json:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at"`
}

// NewTaskListResponse converts a task list view into its wire
// representation.
func NewTaskListResponse(view *service.TaskListView) TaskListResponse {
	tasks := make([]TaskResponse, 0, len(view.Tasks))
	for _, task := range view.Tasks {
		tasks = append(tasks, NewTaskResponse(task))
	}

	return TaskListResponse{
		ID:                       view.ID,
		Name:                     view.Name,
		UserID:                   view.UserID,
		Tasks:                    tasks,
		PercentageOfCompleteness: view.PercentageOfCompleteness,
		CreatedAt:                view.CreatedAt,
		UpdatedAt:                view.UpdatedAt,
	}
}
