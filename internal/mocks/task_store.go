package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, task *domain.Task) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateFn         func(ctx context.Context, id uuid.UUID, patch store.TaskPatch) (*domain.Task, error)
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
	ListAllFn        func(ctx context.Context) ([]*domain.Task, error)
	ListByTaskListFn func(ctx context.Context, taskListID uuid.UUID) ([]*domain.Task, error)

	// Data for default implementation; order preserves insertion order for
	// deterministic listings.
	Tasks map[uuid.UUID]*domain.Task
	order []uuid.UUID
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if err := task.Validate(); err != nil {
		return err
	}

	m.Tasks[task.ID] = task
	m.order = append(m.order, task.ID)
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// Update implements the TaskStore interface, applying the patch with the
// same semantics as the real store: nil fields keep their values, a UserID
// pointing at uuid.Nil clears the assignee.
func (m *MockTaskStore) Update(ctx context.Context, id uuid.UUID, patch store.TaskPatch) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}

	updated := *task
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Priority != nil {
		if !domain.IsValidTaskPriority(*patch.Priority) {
			return nil, domain.ErrInvalidTaskPriority
		}
		updated.Priority = *patch.Priority
	}
	if patch.Status != nil {
		if !domain.IsValidTaskStatus(*patch.Status) {
			return nil, domain.ErrInvalidTaskStatus
		}
		updated.Status = *patch.Status
	}
	if patch.TaskListID != nil {
		updated.TaskListID = *patch.TaskListID
	}
	if patch.UserID != nil {
		if *patch.UserID == uuid.Nil {
			updated.UserID = nil
		} else {
			assignee := *patch.UserID
			updated.UserID = &assignee
		}
	}

	m.Tasks[id] = &updated
	return &updated, nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, id)
	for i, taskID := range m.order {
		if taskID == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListAll implements the TaskStore interface
func (m *MockTaskStore) ListAll(ctx context.Context) ([]*domain.Task, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}

	tasks := make([]*domain.Task, 0, len(m.order))
	for _, id := range m.order {
		tasks = append(tasks, m.Tasks[id])
	}
	return tasks, nil
}

// ListByTaskList implements the TaskStore interface
func (m *MockTaskStore) ListByTaskList(ctx context.Context, taskListID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByTaskListFn != nil {
		return m.ListByTaskListFn(ctx, taskListID)
	}

	var tasks []*domain.Task
	for _, id := range m.order {
		if m.Tasks[id].TaskListID == taskListID {
			tasks = append(tasks, m.Tasks[id])
		}
	}
	return tasks, nil
}

// WithTx implements the TaskStore interface; the mock has no transaction
// state, so it returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
