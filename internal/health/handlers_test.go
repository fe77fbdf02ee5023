package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/noah-isme/volume-discounts/internal/health"
)

func TestLive(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	health.Handler{}.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("expected ok body, got %q", rec.Body.String())
	}
}
