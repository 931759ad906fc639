package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContextAndFromContext(t *testing.T) {
	t.Run("retrieves stored logger", func(t *testing.T) {
		base := zap.NewNop()
		ctx := WithContext(context.Background(), base)
		assert.Same(t, base, FromContext(ctx))
	})

	t.Run("returns no-op logger when absent", func(t *testing.T) {
		l := FromContext(context.Background())
		assert.NotNil(t, l)
	})
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), base, "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))

	enriched.Info("hello")
	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
}

func TestL(t *testing.T) {
	t.Run("enriches with request id", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := WithContext(context.Background(), zap.New(core))
		ctx = context.WithValue(ctx, RequestIDKey, "req-9")

		L(ctx).Info("ping")

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, "req-9", entries[0].ContextMap()["request_id"])
	})

	t.Run("no-op without logger in context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			L(context.Background()).Info("ignored")
		})
	})
}
