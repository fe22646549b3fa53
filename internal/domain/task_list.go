package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for TaskList
var (
	ErrEmptyTaskListID   = errors.New("task list ID cannot be empty")
	ErrEmptyTaskListName = errors.New("task list name cannot be empty")
)

// TaskList represents a named grouping of tasks. The owner reference is
// nullable at the data level; the route layer defaults it to the
// authenticated user when the caller omits it.
type TaskList struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	UserID    *uuid.UUID `json:"user_id"` // Owner; nil means unowned
	Tasks     []*Task    `json:"tasks,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewTaskList creates a new TaskList with the given name and optional owner.
// Returns an error if validation fails.
func NewTaskList(name string, userID *uuid.UUID) (*TaskList, error) {
	list := &TaskList{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return list, nil
}

// Validate checks if the TaskList has valid data.
func (l *TaskList) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyTaskListID
	}

	if l.Name == "" {
		return ErrEmptyTaskListName
	}

	return nil
}

// CompletenessPercentage returns the ratio of completed tasks to all tasks
// in the list, times 100. A list with no tasks is 0% complete. The
// computation always covers the full task set; display filters never
// change it.
func (l *TaskList) CompletenessPercentage() float64 {
	total := len(l.Tasks)
	if total == 0 {
		return 0
	}

	completed := 0
	for _, t := range l.Tasks {
		if t.Status == TaskStatusCompleted {
			completed++
		}
	}

	return float64(completed) / float64(total) * 100
}
