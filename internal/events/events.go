package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventTypeTaskReassigned identifies a task changing hands to a new,
// non-nil assignee.
const EventTypeTaskReassigned = "task_reassigned"

// Event represents a notification emitted by the service layer. The payload
// is serialized JSON so handlers and emitters share no type dependency.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type identifies the kind of event (e.g. EventTypeTaskReassigned)
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates a new Event with the specified type and payload.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now(),
	}, nil
}

// TaskReassignedPayload is the payload of an EventTypeTaskReassigned event.
type TaskReassignedPayload struct {
	TaskID uuid.UUID `json:"task_id"`

	// PreviousAssignee is nil when the task was unassigned before.
	PreviousAssignee *uuid.UUID `json:"previous_assignee,omitempty"`

	// NewAssignee is always non-nil; assignment to nobody emits nothing.
	NewAssignee uuid.UUID `json:"new_assignee"`
}

// NewTaskReassignedEvent creates an event describing a task moving to a new
// assignee.
func NewTaskReassignedEvent(
	taskID uuid.UUID,
	previousAssignee *uuid.UUID,
	newAssignee uuid.UUID,
) (*Event, error) {
	return NewEvent(EventTypeTaskReassigned, TaskReassignedPayload{
		TaskID:           taskID,
		PreviousAssignee: previousAssignee,
		NewAssignee:      newAssignee,
	})
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *Event) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of
// handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *Event) error
}
