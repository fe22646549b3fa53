package events

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	seen []*Event
	err  error
}

func (h *stubHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.seen = append(h.seen, event)
	return h.err
}

func newTestEvent(t *testing.T) *Event {
	t.Helper()
	event, err := NewTaskReassignedEvent(uuid.New(), nil, uuid.New())
	require.NoError(t, err)
	return event
}

func TestInMemoryEventEmitter(t *testing.T) {
	t.Parallel()

	t.Run("dispatches to all handlers in order", func(t *testing.T) {
		t.Parallel()
		emitter := NewInMemoryEventEmitter(slog.Default())
		first := &stubHandler{}
		second := &stubHandler{}
		emitter.RegisterHandler(first)
		emitter.RegisterHandler(second)

		event := newTestEvent(t)
		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		require.Len(t, first.seen, 1)
		require.Len(t, second.seen, 1)
		assert.Equal(t, event.ID, first.seen[0].ID)
	})

	t.Run("no handlers is not an error", func(t *testing.T) {
		t.Parallel()
		emitter := NewInMemoryEventEmitter(slog.Default())
		assert.NoError(t, emitter.EmitEvent(context.Background(), newTestEvent(t)))
	})

	t.Run("failing handler does not stop the others", func(t *testing.T) {
		t.Parallel()
		emitter := NewInMemoryEventEmitter(slog.Default())
		failing := &stubHandler{err: errors.New("boom")}
		healthy := &stubHandler{}
		emitter.RegisterHandler(failing)
		emitter.RegisterHandler(healthy)

		err := emitter.EmitEvent(context.Background(), newTestEvent(t))
		assert.EqualError(t, err, "boom")
		assert.Len(t, healthy.seen, 1)
	})

	t.Run("first error wins", func(t *testing.T) {
		t.Parallel()
		emitter := NewInMemoryEventEmitter(slog.Default())
		emitter.RegisterHandler(&stubHandler{err: errors.New("first")})
		emitter.RegisterHandler(&stubHandler{err: errors.New("second")})

		err := emitter.EmitEvent(context.Background(), newTestEvent(t))
		assert.EqualError(t, err, "first")
	})
}
