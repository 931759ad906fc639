package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level), logs
}

func TestGormLoggerTrace(t *testing.T) {
	ctx := context.Background()
	query := func() (string, int64) { return "SELECT * FROM products", 2 }

	t.Run("logs statements at debug when info is enabled", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Info)

		gl.Trace(ctx, time.Now(), query, nil)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, "SELECT * FROM products", entries[0].ContextMap()["sql"])
		assert.Equal(t, int64(2), entries[0].ContextMap()["rows"])
	})

	t.Run("failures log the statement with the error", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Warn)

		gl.Trace(ctx, time.Now(), query, assert.AnError)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, "sql error", entries[0].Message)
	})

	t.Run("record-not-found is not an error", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Warn)

		gl.Trace(ctx, time.Now(), query, gormlogger.ErrRecordNotFound)

		assert.Empty(t, logs.All())
	})

	t.Run("slow statements log at warn", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Warn)

		gl.Trace(ctx, time.Now().Add(-time.Second), query, nil)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "slow sql", entries[0].Message)
	})

	t.Run("silent level logs nothing", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Silent)

		gl.Trace(ctx, time.Now(), query, assert.AnError)

		assert.Empty(t, logs.All())
	})

	t.Run("request id from the context is attached", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Info)
		reqCtx := context.WithValue(ctx, RequestIDKey, "req-42")

		gl.Trace(reqCtx, time.Now(), query, nil)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	})
}

func TestGormLoggerLogMode(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Info)

	silenced := gl.LogMode(gormlogger.Silent)
	silenced.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Empty(t, logs.All())

	// The original keeps its level.
	gl.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Len(t, logs.All(), 1)
}
