package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T) string {
	t.Helper()
	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(recorder.Body)
	if err != nil {
		t.Fatalf("read exposition: %v", err)
	}
	return string(body)
}

func TestUpstreamLoggerRecordsCalls(t *testing.T) {
	logger := NewUpstreamLogger("logger-test")

	logger.LogRequest("GET", "http://upstream/x", nil, "")
	logger.LogResponseSuccess("GET", "http://upstream/x", nil, "", 200, "{}", 12)
	logger.LogResponseError("GET", "http://upstream/x", nil, "", 0, "", 5000, errors.New("timeout"))

	exposition := scrape(t)
	for _, want := range []string{
		`beltempo_upstream_calls_total{status="200",upstream="logger-test"} 1`,
		`beltempo_upstream_calls_total{status="0",upstream="logger-test"} 1`,
		`beltempo_upstream_call_duration_seconds_count{upstream="logger-test"} 2`,
	} {
		if !strings.Contains(exposition, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestRecordUpstreamProbe(t *testing.T) {
	RecordUpstreamProbe("probe-test", true)
	if !strings.Contains(scrape(t), `beltempo_upstream_up{upstream="probe-test"} 1`) {
		t.Error("up gauge not set to 1")
	}
	RecordUpstreamProbe("probe-test", false)
	if !strings.Contains(scrape(t), `beltempo_upstream_up{upstream="probe-test"} 0`) {
		t.Error("up gauge not set to 0")
	}
}

func TestRecordDashboard(t *testing.T) {
	RecordDashboard("dashboard-test", true, false)

	want := `beltempo_dashboards_total{forecast="available",location_source="dashboard-test",summary="unavailable"} 1`
	if !strings.Contains(scrape(t), want) {
		t.Errorf("exposition missing %q", want)
	}
}
