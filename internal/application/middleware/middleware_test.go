package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestIsQuiet(t *testing.T) {
	tests := map[string]bool{
		"/health":             true,
		"/beltempo/health":    true,
		"/metrics":            true,
		"/swagger/index.html": true,
		"/":                   false,
		"/api/v1/dashboard":   false,
	}
	for path, want := range tests {
		if got := isQuiet(path); got != want {
			t.Errorf("isQuiet(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestSetupRequestIDGeneratesUUID(t *testing.T) {
	e := echo.New()
	SetupRequestID(e)
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if id := recorder.Header().Get(echo.HeaderXRequestID); len(id) != 36 {
		t.Errorf("X-Request-Id = %q, want a uuid", id)
	}
}

func TestSetupRequestIDKeepsIncomingID(t *testing.T) {
	e := echo.New()
	SetupRequestID(e)
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(echo.HeaderXRequestID, "upstream-id")
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	if id := recorder.Header().Get(echo.HeaderXRequestID); id != "upstream-id" {
		t.Errorf("X-Request-Id = %q, want upstream-id", id)
	}
}

func TestMiddlewareChainServesRequests(t *testing.T) {
	e := echo.New()
	SetupRequestID(e)
	SetupRequestLogger(e)
	SetupMetrics(e)
	e.GET("/api/v1/dashboard", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	if recorder.Code != http.StatusOK || recorder.Body.String() != "ok" {
		t.Errorf("response = %d %q", recorder.Code, recorder.Body.String())
	}

	recorder = httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if recorder.Code != http.StatusNotFound {
		t.Errorf("missing route status = %d", recorder.Code)
	}
}
