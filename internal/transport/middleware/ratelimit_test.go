package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newLimitedHandler(t *testing.T, maxPerMinute int) (http.Handler, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(time.Minute)
	rl.now = clock.Now
	t.Cleanup(rl.Stop)

	return rl.Limit(maxPerMinute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})), clock
}

func doFrom(h http.Handler, addr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/word", nil)
	req.RemoteAddr = addr
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	handler, _ := newLimitedHandler(t, 10)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, doFrom(handler, "1.2.3.4:1234").Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	handler, _ := newLimitedHandler(t, 5)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doFrom(handler, "1.2.3.4:1234").Code)
	}

	rec := doFrom(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "12", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_SameIPDifferentPorts(t *testing.T) {
	handler, _ := newLimitedHandler(t, 2)

	assert.Equal(t, http.StatusOK, doFrom(handler, "1.1.1.1:1000").Code)
	assert.Equal(t, http.StatusOK, doFrom(handler, "1.1.1.1:2000").Code)
	assert.Equal(t, http.StatusTooManyRequests, doFrom(handler, "1.1.1.1:3000").Code)
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	handler, _ := newLimitedHandler(t, 2)

	for i := 0; i < 2; i++ {
		doFrom(handler, "1.1.1.1:1234")
	}

	assert.Equal(t, http.StatusOK, doFrom(handler, "2.2.2.2:5678").Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	// 60 per minute = 1 per second
	handler, clock := newLimitedHandler(t, 60)

	for i := 0; i < 60; i++ {
		doFrom(handler, "3.3.3.3:1234")
	}
	assert.Equal(t, http.StatusTooManyRequests, doFrom(handler, "3.3.3.3:1234").Code)

	clock.Advance(1100 * time.Millisecond)

	assert.Equal(t, http.StatusOK, doFrom(handler, "3.3.3.3:1234").Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	handler, _ := newLimitedHandler(t, 0)

	for i := 0; i < 100; i++ {
		assert.Equal(t, http.StatusOK, doFrom(handler, "4.4.4.4:1").Code)
	}
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
