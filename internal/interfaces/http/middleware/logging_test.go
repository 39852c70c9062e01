package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
)

func observedLogger(t *testing.T) (logging.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.NewLoggerFromCore(core), logs
}

func TestLoggingMiddleware_LogsCompletedRequest(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger(t)
	mw := NewLoggingMiddleware(logger, nil, DefaultLoggingConfig())
	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/v1/stats", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.EqualValues(t, 2, fields["bytes"])
}

func TestLoggingMiddleware_ServerErrorLogsAtError(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger(t)
	mw := NewLoggingMiddleware(logger, nil, DefaultLoggingConfig())
	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestLoggingMiddleware_SkipsProbePaths(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger(t)
	mw := NewLoggingMiddleware(logger, nil, DefaultLoggingConfig())
	handler := mw.Handler(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Zero(t, logs.Len(), "probe paths stay out of the request log")
}

func TestLoggingMiddleware_DefaultStatusIs200(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger(t)
	mw := NewLoggingMiddleware(logger, nil, DefaultLoggingConfig())
	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("implicit header"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
}

//Personal.AI order the ending
