package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resumind-backend/internal/shared/config"
)

func newTestRouter() http.Handler {
	return NewRouter(config.Config{
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   "", // never written by these requests
	}, nil)
}

func TestHealthIsOpen(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestMetricsIsOpen(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "feedback_started_total") {
		t.Fatalf("body missing counters: %s", w.Body.String())
	}
}

func TestAPIRequiresIdentity(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestMeWithGuestIdentity(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("X-Guest-Id", "g-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"userId":"guest:g-123"`) {
		t.Fatalf("body = %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"isGuest":true`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestAddr(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ":8080"},
		{"9000", ":9000"},
		{":7000", ":7000"},
	}
	for _, tt := range tests {
		if got := Addr(tt.in); got != tt.want {
			t.Fatalf("Addr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
