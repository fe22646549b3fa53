package mocks

import (
	"context"

	"github.com/phrazzld/tasklist-api/internal/events"
)

// RecordingEventEmitter implements events.EventEmitter, capturing every
// emitted event for assertions.
type RecordingEventEmitter struct {
	EmitEventFn func(ctx context.Context, event *events.Event) error

	Events []*events.Event
	Err    error
}

var _ events.EventEmitter = (*RecordingEventEmitter)(nil)

// EmitEvent implements the events.EventEmitter interface
func (m *RecordingEventEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	if m.EmitEventFn != nil {
		return m.EmitEventFn(ctx, event)
	}
	if m.Err != nil {
		return m.Err
	}
	m.Events = append(m.Events, event)
	return nil
}
