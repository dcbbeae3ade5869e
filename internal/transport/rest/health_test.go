package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type storagePingerMock struct {
	err error
}

func (m *storagePingerMock) Ping(_ context.Context) error {
	return m.err
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{err: errors.New("down")}, "file", "test-version")

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
	}{
		{"storage up", nil, http.StatusOK, "ok"},
		{"storage down", errors.New("connection refused"), http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(&storagePingerMock{err: tt.pingErr}, "redis", "test-version")

			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if resp := decodeHealth(t, rec); resp.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
		})
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{}, "postgres", "v1.0.0")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}

	comp, ok := resp.Components["recent_storage"]
	if !ok {
		t.Fatal("expected 'recent_storage' component in response")
	}
	if comp.Status != "ok" || comp.Backend != "postgres" {
		t.Errorf("unexpected component %+v", comp)
	}
	if comp.Latency == "" {
		t.Error("expected non-empty latency")
	}
}

func TestHealth_StorageDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{err: errors.New("connection refused")}, "sqlite", "v1.0.0")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
	if comp := resp.Components["recent_storage"]; comp.Status != "down" || comp.Latency != "" {
		t.Errorf("unexpected component %+v", comp)
	}
}
