package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logging.Logger
	logging.Logger = logging.New(zap.New(core))
	t.Cleanup(func() { logging.Logger = previous })
	return logs
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	logs := observeLogs(t)

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/200", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	router.GET("/400", func(c *gin.Context) { c.JSON(http.StatusBadRequest, gin.H{}) })
	router.GET("/500", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.JSON(http.StatusInternalServerError, gin.H{})
	})

	tests := []struct {
		path    string
		level   zapcore.Level
		message string
	}{
		{"/200", zapcore.InfoLevel, "request completed"},
		{"/400?cpf=123", zapcore.WarnLevel, "request rejected"},
		{"/500", zapcore.ErrorLevel, "request failed"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			entries := logs.TakeAll()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			assert.Equal(t, tt.message, entries[0].Message)
			assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
		})
	}

	assert.Equal(t, 0, logs.Len())
}

func TestRequestLogger_QuietPaths(t *testing.T) {
	logs := observeLogs(t)

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/v1/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	assert.Equal(t, 0, logs.Len())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, 1, logs.Len())
}

func TestRequestTracker(t *testing.T) {
	router := gin.New()
	router.Use(RequestTracker())

	var inFlight float64
	router.GET("/test", func(c *gin.Context) {
		inFlight = testutil.ToFloat64(observability.ActiveConnections)
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(observability.ActiveConnections)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, before+1, inFlight)
	assert.Equal(t, before, testutil.ToFloat64(observability.ActiveConnections))
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())

	var captured string
	router.GET("/test", func(c *gin.Context) {
		captured = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})

	serve := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		if header != "" {
			req.Header.Set(RequestIDHeader, header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("generated", func(t *testing.T) {
		w := serve("")
		_, err := uuid.Parse(captured)
		assert.NoError(t, err)
		assert.Equal(t, captured, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		w := serve("abc-123")
		assert.Equal(t, "abc-123", captured)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("malformed replaced", func(t *testing.T) {
		for _, bad := range []string{"id with spaces", "x\x7f", strings.Repeat("a", 65)} {
			serve(bad)
			assert.NotEqual(t, bad, captured)
			_, err := uuid.Parse(captured)
			assert.NoError(t, err)
		}
	})
}

func TestRequestTiming(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	router := gin.New()
	router.Use(RequestTiming())
	router.GET("/cultos/:id", func(c *gin.Context) {
		_, ok := c.Get(RequestStartKey)
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/cultos/1", "/cultos/2", "/nowhere", "/boom"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	// one series each for the culto route, unmatched and /boom
	assert.GreaterOrEqual(t, testutil.CollectAndCount(observability.RequestDuration), 3)

	ended := recorder.Ended()
	require.Len(t, ended, 4)
	assert.Equal(t, "GET /cultos/:id", ended[0].Name())
	assert.Equal(t, "GET unmatched", ended[2].Name())
	assert.Equal(t, codes.Error, ended[3].Status().Code)
	assert.NotEqual(t, codes.Error, ended[0].Status().Code)
}
