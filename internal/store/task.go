package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/domain"
)

// TaskPatch enumerates the updatable fields of a task. A nil field leaves
// the stored value untouched; a non-nil field overwrites it. Assignment is
// explicit and field-by-field; there is no reflection-driven merging.
type TaskPatch struct {
	UserID      *uuid.UUID           // New assignee; to clear an assignee, point at uuid.Nil
	TaskListID  *uuid.UUID           // Move the task to another list
	Description *string              //
	Priority    *domain.TaskPriority //
	Status      *domain.TaskStatus   //
}

// IsEmpty reports whether the patch carries no field changes.
func (p TaskPatch) IsEmpty() bool {
	return p.UserID == nil &&
		p.TaskListID == nil &&
		p.Description == nil &&
		p.Priority == nil &&
		p.Status == nil
}

// TaskStore defines the interface for task data persistence. Callers above
// the store branch on the not-found errors; the store never duplicates
// existence checks.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if a referenced user or task list is absent.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update applies the patch to the task with the given ID. Only fields
	// set on the patch are overwritten; all others retain their prior
	// values. Returns the updated task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id uuid.UUID, patch TaskPatch) (*domain.Task, error)

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAll retrieves every task, unfiltered and unpaginated.
	ListAll(ctx context.Context) ([]*domain.Task, error)

	// ListByTaskList retrieves every task belonging to the given task list.
	ListByTaskList(ctx context.Context, taskListID uuid.UUID) ([]*domain.Task, error)

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
