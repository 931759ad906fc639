package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedEngine(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	engine := gin.New()
	engine.Use(GinMiddleware(zap.New(core)))
	engine.Use(Recovery(zap.New(core)))
	return engine, logs
}

func TestGinMiddleware(t *testing.T) {
	t.Run("logs a successful request at info", func(t *testing.T) {
		engine, logs := newObservedEngine(t)
		engine.GET("/inventory/products", func(c *gin.Context) {
			c.Set("request_id", "req-1")
			c.JSON(http.StatusOK, gin.H{"items": 2})
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inventory/products?category=Matic", nil))

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, "request", entries[0].Message)

		fields := entries[0].ContextMap()
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/inventory/products", fields["path"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Equal(t, "category=Matic", fields["query"])
	})

	t.Run("levels follow the response status", func(t *testing.T) {
		engine, logs := newObservedEngine(t)
		engine.GET("/client-error", func(c *gin.Context) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{})
		})
		engine.GET("/server-error", func(c *gin.Context) {
			c.JSON(http.StatusBadGateway, gin.H{})
		})

		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/client-error", nil))
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/server-error", nil))

		entries := logs.All()
		require.Len(t, entries, 2)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	})

	t.Run("attached gin errors are included", func(t *testing.T) {
		engine, logs := newObservedEngine(t)
		engine.GET("/broken", func(c *gin.Context) {
			_ = c.Error(assert.AnError)
			c.JSON(http.StatusInternalServerError, gin.H{})
		})

		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].ContextMap(), "errors")
	})
}

func TestRecovery(t *testing.T) {
	engine, logs := newObservedEngine(t)
	engine.GET("/panic", func(c *gin.Context) {
		panic("journal repository gone")
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entries := logs.FilterMessage("panic recovered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "journal repository gone", entries[0].ContextMap()["panic"])
}
