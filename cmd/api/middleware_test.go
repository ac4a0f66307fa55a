package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecoverPanic(t *testing.T) {
	app := newTestApp(t)
	handler := app.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "close", w.Header().Get("Connection"))
	assert.Contains(t, w.Body.String(), `"status": "error"`)
}

func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	app := newTestApp(t)

	var seen string
	handler := app.requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.NoError(t, uuid.Validate(seen))
	assert.Equal(t, seen, w.Header().Get(requestIDHeader))
}

func TestRequestID_ReusesValidClientID(t *testing.T) {
	app := newTestApp(t)
	handler := app.requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	clientID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set(requestIDHeader, clientID)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, clientID, w.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(requestIDHeader))
}

func TestRateLimit(t *testing.T) {
	app := newTestApp(t)
	app.config.limiter.enabled = true
	app.config.limiter.rps = 1
	app.config.limiter.burst = 2
	handler := app.routes()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	handler := newTestApp(t).routes()

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestClientLimiters_Evict(t *testing.T) {
	limiters := newClientLimiters(1, 1)
	now := time.Now()

	assert.True(t, limiters.allow("192.0.2.1", now.Add(-5*time.Minute)))
	assert.True(t, limiters.allow("192.0.2.2", now))

	limiters.evict(now.Add(-3 * time.Minute))

	assert.NotContains(t, limiters.clients, "192.0.2.1")
	assert.Contains(t, limiters.clients, "192.0.2.2")
}

func TestClientLimiters_SweepStopsOnShutdown(t *testing.T) {
	limiters := newClientLimiters(1, 1)
	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		limiters.sweep(done, time.Millisecond)
		close(stopped)
	}()

	close(done)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("sweep did not return after shutdown")
	}
}
