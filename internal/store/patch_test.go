package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/tasklist-api/internal/domain"
)

func TestTaskPatchIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, TaskPatch{}.IsEmpty())

	description := "changed"
	priority := domain.TaskPriorityHigh
	status := domain.TaskStatusCompleted
	id := uuid.New()

	tests := []struct {
		name  string
		patch TaskPatch
	}{
		{"user id", TaskPatch{UserID: &id}},
		{"task list id", TaskPatch{TaskListID: &id}},
		{"description", TaskPatch{Description: &description}},
		{"priority", TaskPatch{Priority: &priority}},
		{"status", TaskPatch{Status: &status}},
	}
	for _, tc := range tests {
		assert.False(t, tc.patch.IsEmpty(), tc.name)
	}
}

func TestTaskListPatchIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, TaskListPatch{}.IsEmpty())

	name := "renamed"
	owner := uuid.New()
	assert.False(t, TaskListPatch{Name: &name}.IsEmpty())
	assert.False(t, TaskListPatch{UserID: &owner}.IsEmpty())
}
