package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		l, err := Setup(level)
		require.NoError(t, err, "level %q", level)
		assert.NotNil(t, l)
	}

	_, err := Setup("verbose")
	assert.Error(t, err)

	_, err = Setup("")
	assert.Error(t, err)
}

func TestLoggerContext(t *testing.T) {
	t.Parallel()

	attached := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("FromContext returns attached logger", func(t *testing.T) {
		t.Parallel()
		ctx := WithLogger(context.Background(), attached)
		assert.Same(t, attached, FromContext(ctx))
	})

	t.Run("FromContext falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("FromContextOrDefault prefers context over fallback", func(t *testing.T) {
		t.Parallel()
		fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := WithLogger(context.Background(), attached)
		assert.Same(t, attached, FromContextOrDefault(ctx, fallback))
	})

	t.Run("FromContextOrDefault uses fallback when nothing attached", func(t *testing.T) {
		t.Parallel()
		fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	})
}
