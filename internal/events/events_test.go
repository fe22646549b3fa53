package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskReassignedEvent(t *testing.T) {
	t.Parallel()

	taskID := uuid.New()
	previous := uuid.New()
	next := uuid.New()

	event, err := NewTaskReassignedEvent(taskID, &previous, next)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, EventTypeTaskReassigned, event.Type)
	assert.False(t, event.CreatedAt.IsZero())

	var payload TaskReassignedPayload
	require.NoError(t, event.UnmarshalPayload(&payload))
	assert.Equal(t, taskID, payload.TaskID)
	require.NotNil(t, payload.PreviousAssignee)
	assert.Equal(t, previous, *payload.PreviousAssignee)
	assert.Equal(t, next, payload.NewAssignee)
}

func TestNewTaskReassignedEventWithoutPrevious(t *testing.T) {
	t.Parallel()

	event, err := NewTaskReassignedEvent(uuid.New(), nil, uuid.New())
	require.NoError(t, err)

	var payload TaskReassignedPayload
	require.NoError(t, event.UnmarshalPayload(&payload))
	assert.Nil(t, payload.PreviousAssignee)
}

func TestUnmarshalPayloadRejectsGarbage(t *testing.T) {
	t.Parallel()

	event := &Event{Payload: []byte("{not json")}

	var payload TaskReassignedPayload
	assert.Error(t, event.UnmarshalPayload(&payload))
}
