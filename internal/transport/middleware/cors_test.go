package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/wordoftheday/internal/config"
)

func corsConfig(origins string) config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: "GET,OPTIONS",
		AllowedHeaders: "Content-Type,X-Request-Id",
		MaxAge:         300,
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for preflight")
	})

	wrapped := CORS(corsConfig("https://example.com"))(handler)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/word", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	wantHeaders := map[string]string{
		"Access-Control-Allow-Origin":  "https://example.com",
		"Access-Control-Allow-Methods": "GET,OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type,X-Request-Id",
		"Access-Control-Max-Age":       "300",
		"Vary":                         "Origin",
	}
	for k, want := range wantHeaders {
		if got := rec.Header().Get(k); got != want {
			t.Errorf("expected %s %q, got %q", k, want, got)
		}
	}
}

func TestCORS_Origins(t *testing.T) {
	tests := []struct {
		name    string
		allowed string
		origin  string
		want    string
	}{
		{"listed origin", "https://example.com, https://other.com", "https://other.com", "https://other.com"},
		{"unlisted origin", "https://example.com", "https://evil.com", ""},
		{"wildcard", "*", "https://anything.dev", "*"},
		{"no origin header", "*", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/word", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(corsConfig(tt.allowed))(handler).ServeHTTP(rec, req)

			if !called {
				t.Error("expected handler to be called")
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("expected Access-Control-Allow-Origin %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCORS_PlainOptionsPassesThrough(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/word", nil)
	rec := httptest.NewRecorder()

	CORS(corsConfig("*"))(handler).ServeHTTP(rec, req)

	if !called {
		t.Error("OPTIONS without a preflight header should reach the handler")
	}
}
