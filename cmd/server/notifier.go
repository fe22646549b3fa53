package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasklist-api/internal/events"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// AssignmentNotifierHandler reacts to task reassignment events by notifying
// the new assignee. Delivery is a structured log line; a real mail or chat
// integration would slot in here without touching the services.
type AssignmentNotifierHandler struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewAssignmentNotifierHandler creates an AssignmentNotifierHandler.
func NewAssignmentNotifierHandler(userStore store.UserStore, logger *slog.Logger) *AssignmentNotifierHandler {
	return &AssignmentNotifierHandler{
		userStore: userStore,
		logger:    logger.With("component", "assignment_notifier"),
	}
}

// HandleEvent implements events.EventHandler.
func (h *AssignmentNotifierHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.Type != events.EventTypeTaskReassigned {
		h.logger.Debug("ignoring event with unsupported type",
			"event_type", event.Type,
			"event_id", event.ID)
		return nil
	}

	var payload events.TaskReassignedPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		h.logger.Error("failed to unmarshal payload",
			"error", err,
			"event_id", event.ID)
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	assignee, err := h.userStore.GetByID(ctx, payload.NewAssignee)
	if err != nil {
		h.logger.Error("failed to look up new assignee",
			"error", err,
			"user_id", payload.NewAssignee,
			"event_id", event.ID)
		return fmt.Errorf("failed to look up new assignee: %w", err)
	}

	h.logger.Info("task assignment notification",
		"message", fmt.Sprintf("%s, you are now in charge of task %s", assignee.FullName, payload.TaskID),
		"task_id", payload.TaskID,
		"assignee_email", assignee.Email,
		"event_id", event.ID)
	return nil
}
