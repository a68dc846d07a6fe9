package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Millisecond)
		w.WriteHeader(http.StatusTeapot)
		_, err := w.Write([]byte("short and stout"))
		assert.NoError(t, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/gif/cats", nil)
	rr := httptest.NewRecorder()

	LoggingMiddleware(logger)(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "HTTP request", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, int64(len("short and stout")), fields["size"])

	// Длительность логируется без потери точности
	duration, ok := fields["duration"].(time.Duration)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, 5*time.Millisecond)
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "test-id")
	rr := httptest.NewRecorder()

	RequestIDMiddleware(LoggingMiddleware(logger)(handler)).ServeHTTP(rr, req)

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "test-id", entries[0].ContextMap()["request_id"])
}
