package observability_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotelpulse/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveReport("occupancy", nil, 3*time.Millisecond)
	observability.ObserveReport("pricing", errors.New("boom"), 3*time.Millisecond)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "hotelpulse_http_requests_total") {
		t.Fatalf("expected hotelpulse_http_requests_total in output")
	}
	if !strings.Contains(out, `hotelpulse_report_runs_total{outcome="error",report="pricing"}`) {
		t.Fatalf("expected report error counter in output:\n%s", out)
	}
}
