package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordoftheday/internal/config"
	"github.com/heartmarshall/wordoftheday/internal/transport/middleware"
	"github.com/heartmarshall/wordoftheday/internal/transport/render"
)

func newTestRouter(t *testing.T, rateLimit int) http.Handler {
	t.Helper()

	cfg := offlineConfig(config.BackendMemory)
	cfg.Server.RateLimit = rateLimit
	cfg.Server.CORS = config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET", MaxAge: 60}

	a, err := New(context.Background(), cfg, newTestLogger())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	return newRouter(cfg, a, limiter, newTestLogger())
}

func TestRouter_Word(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, 10)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/word", nil)
	req.Header.Set("Origin", "https://widget.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	var view render.WordView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.NotEmpty(t, view.Word)
	assert.Len(t, view.Translations, 3)
}

func TestRouter_HealthEndpoints(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, 10)

	for _, path := range []string{"/live", "/ready", "/health"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_WordIsRateLimited(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t, 1)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/word", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/word", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	health := httptest.NewRecorder()
	router.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, health.Code)
}
