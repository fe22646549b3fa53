package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// TaskListFilter narrows which tasks are included in a TaskListView. Nil
// fields match every task. The filter never affects the completeness
// percentage, which is always computed over the full task set.
type TaskListFilter struct {
	Status   *domain.TaskStatus
	Priority *domain.TaskPriority
}

// TaskListView is a task list as returned to callers: its tasks optionally
// filtered, plus the completeness percentage derived from all of its tasks.
type TaskListView struct {
	ID        uuid.UUID
	Name      string
	UserID    *uuid.UUID
	Tasks     []*domain.Task
	CreatedAt time.Time
	UpdatedAt time.Time

	// PercentageOfCompleteness is the share of completed tasks among all
	// tasks in the list, 0 through 100. An empty list is 0.
	PercentageOfCompleteness float64
}

// TaskListService defines task list lifecycle operations.
type TaskListService interface {
	// CreateTaskList persists a new, empty task list.
	CreateTaskList(ctx context.Context, list *domain.TaskList) error

	// CreateTaskListWithTasks persists a task list together with its
	// initial tasks in a single transaction. The tasks are forced to
	// reference the new list regardless of their TaskListID values.
	CreateTaskListWithTasks(ctx context.Context, list *domain.TaskList, tasks []*domain.Task) (*TaskListView, error)

	// GetTaskList retrieves a task list by ID as a view, with its tasks
	// narrowed by the filter. Returns ErrTaskListNotFound when no list
	// with that ID exists.
	GetTaskList(ctx context.Context, id uuid.UUID, filter TaskListFilter) (*TaskListView, error)

	// UpdateTaskList applies a partial update to the list.
	UpdateTaskList(ctx context.Context, id uuid.UUID, patch store.TaskListPatch) (*domain.TaskList, error)

	// DeleteTaskList removes a task list and, through the schema, all of
	// its tasks. Returns ErrTaskListNotFound when no list exists.
	DeleteTaskList(ctx context.Context, id uuid.UUID) error

	// ListAllTaskLists returns every stored task list as an unfiltered
	// view.
	ListAllTaskLists(ctx context.Context) ([]*TaskListView, error)
}

type taskListService struct {
	taskListStore store.TaskListStore
	taskStore     store.TaskStore
	tx            store.Transactor
	logger        *slog.Logger
}

var _ TaskListService = (*taskListService)(nil)

// NewTaskListService creates a TaskListService. All dependencies are
// required.
func NewTaskListService(
	taskListStore store.TaskListStore,
	taskStore store.TaskStore,
	tx store.Transactor,
	log *slog.Logger,
) (TaskListService, error) {
	if taskListStore == nil {
		return nil, fmt.Errorf("task list store cannot be nil")
	}
	if taskStore == nil {
		return nil, fmt.Errorf("task store cannot be nil")
	}
	if tx == nil {
		return nil, fmt.Errorf("transactor cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &taskListService{
		taskListStore: taskListStore,
		taskStore:     taskStore,
		tx:            tx,
		logger:        log.With(slog.String("component", "task_list_service")),
	}, nil
}

func (s *taskListService) CreateTaskList(ctx context.Context, list *domain.TaskList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskListStore.Create(ctx, list); err != nil {
		log.Error("failed to create task list",
			slog.String("error", err.Error()),
			slog.String("name", list.Name))
		return newServiceError("create_task_list", "failed to save task list", err)
	}

	log.Debug("task list created", slog.String("task_list_id", list.ID.String()))
	return nil
}

func (s *taskListService) CreateTaskListWithTasks(
	ctx context.Context,
	list *domain.TaskList,
	tasks []*domain.Task,
) (*TaskListView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		listStore := s.taskListStore.WithTx(tx)
		taskStore := s.taskStore.WithTx(tx)

		if err := listStore.Create(ctx, list); err != nil {
			return err
		}

		for _, task := range tasks {
			task.TaskListID = list.ID
			if err := taskStore.Create(ctx, task); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create task list with tasks",
			slog.String("error", err.Error()),
			slog.String("name", list.Name))
		return nil, newServiceError("create_task_list_with_tasks", "failed to save task list and tasks", err)
	}

	log.Debug("task list created with tasks",
		slog.String("task_list_id", list.ID.String()),
		slog.Int("task_count", len(tasks)))

	return s.GetTaskList(ctx, list.ID, TaskListFilter{})
}

func (s *taskListService) GetTaskList(ctx context.Context, id uuid.UUID, filter TaskListFilter) (*TaskListView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	list, err := s.taskListStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task list not found", slog.String("task_list_id", id.String()))
			return nil, ErrTaskListNotFound
		}
		log.Error("failed to retrieve task list",
			slog.String("error", err.Error()),
			slog.String("task_list_id", id.String()))
		return nil, newServiceError("get_task_list", "failed to retrieve task list", err)
	}

	return buildView(list, filter), nil
}

// buildView derives the caller-facing view of a list. The percentage is
// computed before filtering so that narrowing the tasks never changes it.
func buildView(list *domain.TaskList, filter TaskListFilter) *TaskListView {
	view := &TaskListView{
		ID:                       list.ID,
		Name:                     list.Name,
		UserID:                   list.UserID,
		CreatedAt:                list.CreatedAt,
		UpdatedAt:                list.UpdatedAt,
		PercentageOfCompleteness: list.CompletenessPercentage(),
	}

	view.Tasks = make([]*domain.Task, 0, len(list.Tasks))
	for _, task := range list.Tasks {
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		view.Tasks = append(view.Tasks, task)
	}

	return view
}

func (s *taskListService) UpdateTaskList(ctx context.Context, id uuid.UUID, patch store.TaskListPatch) (*domain.TaskList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	updated, err := s.taskListStore.Update(ctx, id, patch)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrTaskListNotFound
		}
		log.Error("failed to update task list",
			slog.String("error", err.Error()),
			slog.String("task_list_id", id.String()))
		return nil, newServiceError("update_task_list", "failed to update task list", err)
	}

	log.Debug("task list updated", slog.String("task_list_id", id.String()))
	return updated, nil
}

func (s *taskListService) DeleteTaskList(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskListStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task list not found for deletion", slog.String("task_list_id", id.String()))
			return ErrTaskListNotFound
		}
		log.Error("failed to delete task list",
			slog.String("error", err.Error()),
			slog.String("task_list_id", id.String()))
		return newServiceError("delete_task_list", "failed to delete task list", err)
	}

	log.Debug("task list deleted", slog.String("task_list_id", id.String()))
	return nil
}

func (s *taskListService) ListAllTaskLists(ctx context.Context) ([]*TaskListView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	lists, err := s.taskListStore.ListAll(ctx)
	if err != nil {
		log.Error("failed to list task lists", slog.String("error", err.Error()))
		return nil, newServiceError("list_task_lists", "failed to list task lists", err)
	}

	views := make([]*TaskListView, 0, len(lists))
	for _, list := range lists {
		views = append(views, buildView(list, TaskListFilter{}))
	}

	return views, nil
}
