package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskPriority represents the priority level assigned to a task.
type TaskPriority string

// Possible task priority values
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// TaskStatus represents the lifecycle state of a task.
//
// The nominal progression is pending -> in_progress -> completed, with
// cancelled reachable from any non-terminal state. No transition table is
// enforced: any status may replace any other via a partial update.
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID         = errors.New("task ID cannot be empty")
	ErrEmptyTaskListRef    = errors.New("task must reference a task list")
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
)

// Task represents a unit of work belonging to a task list. The assignee is
// optional; an unassigned task is valid. The task's lifecycle is independent
// of its list once created.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	UserID      *uuid.UUID   `json:"user_id"` // Assignee; nil means unassigned
	TaskListID  uuid.UUID    `json:"task_list_id"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates a new Task under the given task list. Zero values for
// priority and status fall back to the creation defaults (low, pending);
// defaults never apply on update.
// Returns an error if validation fails.
func NewTask(
	userID *uuid.UUID,
	taskListID uuid.UUID,
	description string,
	priority TaskPriority,
	status TaskStatus,
) (*Task, error) {
	if priority == "" {
		priority = TaskPriorityLow
	}
	if status == "" {
		status = TaskStatusPending
	}

	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		TaskListID:  taskListID,
		Description: description,
		Priority:    priority,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.TaskListID == uuid.Nil {
		return ErrEmptyTaskListRef
	}

	if !IsValidTaskPriority(t.Priority) {
		return ErrInvalidTaskPriority
	}

	if !IsValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// IsValidTaskPriority reports whether the given value is one of the
// enumerated task priorities.
func IsValidTaskPriority(p TaskPriority) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// IsValidTaskStatus reports whether the given value is one of the
// enumerated task statuses.
func IsValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}
