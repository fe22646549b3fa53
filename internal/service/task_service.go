package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/events"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// TaskService defines task lifecycle operations.
type TaskService interface {
	// CreateTask persists a new task. A zero-valued priority or status is
	// filled with the defaults (low priority, pending status).
	CreateTask(ctx context.Context, task *domain.Task) error

	// GetTask retrieves a task by its ID, returning ErrTaskNotFound when
	// no task with that ID exists.
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// UpdateTask applies a partial update to the task. Fields left nil in
	// the patch keep their current values. When the update assigns the
	// task to a different user, a reassignment event is emitted.
	UpdateTask(ctx context.Context, id uuid.UUID, patch store.TaskPatch) (*domain.Task, error)

	// DeleteTask removes a task, returning ErrTaskNotFound when no task
	// with that ID exists.
	DeleteTask(ctx context.Context, id uuid.UUID) error

	// ListAllTasks returns every stored task.
	ListAllTasks(ctx context.Context) ([]*domain.Task, error)
}

type taskService struct {
	taskStore store.TaskStore
	emitter   events.EventEmitter
	logger    *slog.Logger
}

var _ TaskService = (*taskService)(nil)

// NewTaskService creates a TaskService backed by the given store and event
// emitter. All dependencies are required.
func NewTaskService(taskStore store.TaskStore, emitter events.EventEmitter, log *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("task store cannot be nil")
	}
	if emitter == nil {
		return nil, fmt.Errorf("event emitter cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &taskService{
		taskStore: taskStore,
		emitter:   emitter,
		logger:    log.With(slog.String("component", "task_service")),
	}, nil
}

func (s *taskService) CreateTask(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_list_id", task.TaskListID.String()))
		return newServiceError("create_task", "failed to save task", err)
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("task_list_id", task.TaskListID.String()))
	return nil
}

func (s *taskService) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, ErrTaskNotFound
		}
		log.Error("failed to retrieve task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, newServiceError("get_task", "failed to retrieve task", err)
	}

	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id uuid.UUID, patch store.TaskPatch) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	current, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrTaskNotFound
		}
		return nil, newServiceError("update_task", "failed to retrieve task", err)
	}
	previousAssignee := current.UserID

	updated, err := s.taskStore.Update(ctx, id, patch)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, newServiceError("update_task", "failed to update task", err)
	}

	s.notifyReassignment(ctx, updated, previousAssignee, patch)

	log.Debug("task updated", slog.String("task_id", id.String()))
	return updated, nil
}

// notifyReassignment emits a task_reassigned event when the update moved the
// task to a different, non-empty assignee. Emission failures are logged and
// swallowed; the update itself has already succeeded.
func (s *taskService) notifyReassignment(ctx context.Context, task *domain.Task, previous *uuid.UUID, patch store.TaskPatch) {
	if patch.UserID == nil || *patch.UserID == uuid.Nil {
		return
	}
	if previous != nil && *previous == *patch.UserID {
		return
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewTaskReassignedEvent(task.ID, previous, *patch.UserID)
	if err != nil {
		log.Error("failed to build reassignment event",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit reassignment event",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
	}
}

func (s *taskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for deletion", slog.String("task_id", id.String()))
			return ErrTaskNotFound
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return newServiceError("delete_task", "failed to delete task", err)
	}

	log.Debug("task deleted", slog.String("task_id", id.String()))
	return nil
}

func (s *taskService) ListAllTasks(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.ListAll(ctx)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, newServiceError("list_tasks", "failed to list tasks", err)
	}

	return tasks, nil
}
