package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// MockTaskListStore implements store.TaskListStore for testing. When a
// Tasks store is attached, GetByID and ListAll eagerly load each list's
// tasks the way the real store does.
type MockTaskListStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, list *domain.TaskList) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.TaskList, error)
	UpdateFn  func(ctx context.Context, id uuid.UUID, patch store.TaskListPatch) (*domain.TaskList, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
	ListAllFn func(ctx context.Context) ([]*domain.TaskList, error)

	// TaskSource, when set, supplies the tasks attached to returned lists.
	TaskSource *MockTaskStore

	// Data for default implementation
	Lists map[uuid.UUID]*domain.TaskList
	order []uuid.UUID
}

var _ store.TaskListStore = (*MockTaskListStore)(nil)

// NewMockTaskListStore creates a new mock store with initialized defaults
func NewMockTaskListStore() *MockTaskListStore {
	return &MockTaskListStore{
		Lists: make(map[uuid.UUID]*domain.TaskList),
	}
}

// Create implements the TaskListStore interface
func (m *MockTaskListStore) Create(ctx context.Context, list *domain.TaskList) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, list)
	}

	if err := list.Validate(); err != nil {
		return err
	}

	m.Lists[list.ID] = list
	m.order = append(m.order, list.ID)
	return nil
}

// GetByID implements the TaskListStore interface
func (m *MockTaskListStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskList, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	list, exists := m.Lists[id]
	if !exists {
		return nil, store.ErrTaskListNotFound
	}
	return m.withTasks(ctx, list)
}

// Update implements the TaskListStore interface
func (m *MockTaskListStore) Update(ctx context.Context, id uuid.UUID, patch store.TaskListPatch) (*domain.TaskList, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	list, exists := m.Lists[id]
	if !exists {
		return nil, store.ErrTaskListNotFound
	}

	updated := *list
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.UserID != nil {
		if *patch.UserID == uuid.Nil {
			updated.UserID = nil
		} else {
			owner := *patch.UserID
			updated.UserID = &owner
		}
	}

	m.Lists[id] = &updated
	return &updated, nil
}

// Delete implements the TaskListStore interface
func (m *MockTaskListStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Lists[id]; !exists {
		return store.ErrTaskListNotFound
	}

	delete(m.Lists, id)
	for i, listID := range m.order {
		if listID == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListAll implements the TaskListStore interface
func (m *MockTaskListStore) ListAll(ctx context.Context) ([]*domain.TaskList, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}

	lists := make([]*domain.TaskList, 0, len(m.order))
	for _, id := range m.order {
		list, err := m.withTasks(ctx, m.Lists[id])
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

// WithTx implements the TaskListStore interface; the mock has no
// transaction state, so it returns itself.
func (m *MockTaskListStore) WithTx(tx *sql.Tx) store.TaskListStore {
	return m
}

func (m *MockTaskListStore) withTasks(ctx context.Context, list *domain.TaskList) (*domain.TaskList, error) {
	loaded := *list
	if m.TaskSource != nil {
		tasks, err := m.TaskSource.ListByTaskList(ctx, list.ID)
		if err != nil {
			return nil, err
		}
		loaded.Tasks = tasks
	}
	return &loaded, nil
}
