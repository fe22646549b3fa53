package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/domain"
)

// TaskListPatch enumerates the updatable fields of a task list. A nil field
// leaves the stored value untouched.
type TaskListPatch struct {
	Name   *string
	UserID *uuid.UUID // New owner; to clear ownership, point at uuid.Nil
}

// IsEmpty reports whether the patch carries no field changes.
func (p TaskListPatch) IsEmpty() bool {
	return p.Name == nil && p.UserID == nil
}

// TaskListStore defines the interface for task list data persistence.
type TaskListStore interface {
	// Create saves a new task list to the store.
	// Returns validation errors from the domain TaskList if data is invalid.
	// Returns ErrInvalidEntity if the referenced owner is absent.
	Create(ctx context.Context, list *domain.TaskList) error

	// GetByID retrieves a task list by its unique ID with its member tasks
	// eagerly loaded.
	// Returns ErrTaskListNotFound if the task list does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskList, error)

	// Update applies the patch to the task list with the given ID and
	// returns the updated list (without member tasks). An empty patch
	// writes nothing and reads the current list instead.
	// Returns ErrTaskListNotFound if the task list does not exist.
	Update(ctx context.Context, id uuid.UUID, patch TaskListPatch) (*domain.TaskList, error)

	// Delete removes a task list from the store by its ID. Member tasks are
	// removed with it by the schema.
	// Returns ErrTaskListNotFound if the task list does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAll retrieves every task list with member tasks eagerly loaded
	// for each one. This is a full-table, full-fanout read; acceptable at
	// this system's intended scale.
	ListAll(ctx context.Context) ([]*domain.TaskList, error)

	// WithTx returns a new TaskListStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskListStore
}
