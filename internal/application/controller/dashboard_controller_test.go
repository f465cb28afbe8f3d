package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"beltempo/internal/application/view"
	"beltempo/internal/domain/entity"
	"beltempo/internal/domain/gateway/api"
	"beltempo/internal/domain/gateway/reference"
	"beltempo/internal/domain/usecase/dashboard"
	"beltempo/internal/domain/usecase/forecast"
	"beltempo/internal/domain/usecase/localtime"
	"beltempo/internal/domain/usecase/location"
	"beltempo/internal/domain/usecase/summary"
	"beltempo/internal/infra/dataset"
	beltempohttp "beltempo/pkg/http"
)

type fakeDashboard struct {
	byName string
	byIP   string
}

func (f *fakeDashboard) BuildByName(_ context.Context, search string) entity.DisplayRecord {
	f.byName = search
	return entity.DisplayRecord{City: "Paris", Country: "France", Theme: entity.ThemeSun, NextDays: []entity.DatedForecast{}}
}

func (f *fakeDashboard) BuildByIP(_ context.Context, ip string) entity.DisplayRecord {
	f.byIP = ip
	return entity.DisplayRecord{City: "London", Country: "United Kingdom", Theme: entity.ThemeClouds, NextDays: []entity.DatedForecast{}}
}

func newEcho(t *testing.T, useCase dashboard.UseCase) *echo.Echo {
	t.Helper()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	e := echo.New()
	e.Renderer = renderer
	NewDashboardController(e.Group(""), "", useCase).InitDashboardRoutes()
	return e
}

func TestRenderByIPUsesForwardedAddress(t *testing.T) {
	useCase := &fakeDashboard{}
	e := newEcho(t, useCase)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(echo.HeaderXForwardedFor, "203.0.113.7, 10.0.0.1")
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	if useCase.byIP != "203.0.113.7" {
		t.Errorf("BuildByIP called with %q", useCase.byIP)
	}
	if !strings.Contains(recorder.Body.String(), "London, United Kingdom") {
		t.Errorf("page does not mention the location:\n%s", recorder.Body.String())
	}
}

func TestRenderBySearchReadsFormField(t *testing.T) {
	useCase := &fakeDashboard{}
	e := newEcho(t, useCase)

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"search": {"France"}}.Encode()))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK || useCase.byName != "France" {
		t.Fatalf("status = %d, BuildByName(%q)", recorder.Code, useCase.byName)
	}
	if !strings.Contains(recorder.Body.String(), "theme-sun") {
		t.Error("page is not themed")
	}
}

func TestGetDashboard(t *testing.T) {
	t.Run("by ip", func(t *testing.T) {
		useCase := &fakeDashboard{}
		e := newEcho(t, useCase)

		request := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		request.RemoteAddr = "198.51.100.4:1234"
		recorder := httptest.NewRecorder()
		e.ServeHTTP(recorder, request)

		if recorder.Code != http.StatusOK || useCase.byIP != "198.51.100.4" {
			t.Fatalf("status = %d, BuildByIP(%q)", recorder.Code, useCase.byIP)
		}
	})

	t.Run("by search", func(t *testing.T) {
		useCase := &fakeDashboard{}
		e := newEcho(t, useCase)

		recorder := httptest.NewRecorder()
		e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?search=France", nil))

		var record entity.DisplayRecord
		if err := json.Unmarshal(recorder.Body.Bytes(), &record); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if useCase.byName != "France" || record.City != "Paris" {
			t.Errorf("BuildByName(%q) = %+v", useCase.byName, record)
		}
	})
}

func TestSearchDashboard(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantSearch  string
	}{
		{"json body", echo.MIMEApplicationJSON, `{"search":"Lyon"}`, http.StatusOK, "Lyon"},
		{"form body", echo.MIMEApplicationForm, "search=Lyon", http.StatusOK, "Lyon"},
		{"missing search", echo.MIMEApplicationJSON, `{}`, http.StatusBadRequest, ""},
		{"malformed json", echo.MIMEApplicationJSON, `{"search":`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := &fakeDashboard{}
			e := newEcho(t, useCase)

			request := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard", strings.NewReader(tt.body))
			request.Header.Set(echo.HeaderContentType, tt.contentType)
			recorder := httptest.NewRecorder()
			e.ServeHTTP(recorder, request)

			if recorder.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", recorder.Code, tt.wantStatus, recorder.Body.String())
			}
			if useCase.byName != tt.wantSearch {
				t.Errorf("BuildByName(%q), want %q", useCase.byName, tt.wantSearch)
			}
		})
	}
}

func TestStaticIconsAreServed(t *testing.T) {
	e := newEcho(t, &fakeDashboard{})

	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/static/icons/sun.svg", nil))
	if recorder.Code != http.StatusOK || !strings.Contains(recorder.Body.String(), "<svg") {
		t.Errorf("icon status = %d", recorder.Code)
	}
}

// upstreams fakes the four providers. Addresses other than 203.0.113.7 are unknown to the geolocation fake.
func upstreams(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/json/"):
			if r.URL.Path == "/json/203.0.113.7" {
				_, _ = w.Write([]byte(`{"status":"success","city":"Lyon","country":"France","lat":45.76,"lon":4.83}`))
				return
			}
			_, _ = w.Write([]byte(`{"status":"fail","message":"invalid query"}`))
		case r.URL.Path == "/search":
			_, _ = w.Write([]byte(`[{"lat":"48.8566","lon":"2.3522"}]`))
		case r.URL.Path == "/forecast/daily":
			_, _ = w.Write([]byte(`{"data":[
				{"low_temp":1,"max_temp":2,"weather":{"description":"Clear sky"}},
				{"low_temp":8.5,"max_temp":14.2,"weather":{"description":"Light rain"}},
				{"low_temp":6,"max_temp":11,"weather":{"description":"Few clouds"}}
			]}`))
		case r.URL.Path == "/w/api.php":
			if r.URL.Query().Get("list") == "search" {
				_, _ = w.Write([]byte(`{"query":{"search":[{"title":"Paris"}]}}`))
				return
			}
			_, _ = w.Write([]byte(`{"query":{"pages":[{"title":"Paris","extract":"Paris is the capital of France.","fullurl":"https://en.wikipedia.org/wiki/Paris"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newDashboardUseCase(t *testing.T, baseURL string) dashboard.UseCase {
	t.Helper()
	records, err := dataset.Countries()
	if err != nil {
		t.Fatalf("dataset.Countries() error = %v", err)
	}
	referenceGateway := reference.NewFileReferenceGateway("embedded", records)
	options := beltempohttp.ClientOptions{ReadTimeout: 2 * time.Second}

	return dashboard.NewDashboardUseCase(
		location.NewLocationUseCase(
			referenceGateway,
			api.NewIPAPIGeolocationGateway(baseURL, options),
			api.NewNominatimGeocodingGateway(baseURL, options),
		),
		forecast.NewForecastUseCase(api.NewWeatherbitGateway(baseURL, "weather.test", "key", options)),
		localtime.NewLocalTimeUseCase(referenceGateway, dataset.Zones(), "Europe/London", nil),
		summary.NewSummaryUseCase(api.NewWikipediaSummaryGateway(baseURL, 1000, options)),
	)
}

func TestDashboardEndToEnd(t *testing.T) {
	server := upstreams(t)
	defer server.Close()
	e := newEcho(t, newDashboardUseCase(t, server.URL))

	t.Run("search France resolves to Paris", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard", strings.NewReader(`{"search":"france"}`))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		recorder := httptest.NewRecorder()
		e.ServeHTTP(recorder, request)

		var record entity.DisplayRecord
		if err := json.Unmarshal(recorder.Body.Bytes(), &record); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if record.City != "Paris" || record.Country != "France" || record.Latitude != 48.8566 {
			t.Errorf("location = %s, %s, %v", record.City, record.Country, record.Latitude)
		}
		if record.Timezone != "Europe/Paris" {
			t.Errorf("Timezone = %q", record.Timezone)
		}
		if record.Today.Description != "Light rain" || record.Today.Low != 9 || record.Theme != entity.ThemeRain {
			t.Errorf("Today = %+v, theme %s", record.Today, record.Theme)
		}
		if record.Caption != "It's Raining Men" {
			t.Errorf("Caption = %q", record.Caption)
		}
		if len(record.NextDays) != 1 || record.NextDays[0].Forecast.Theme != entity.ThemeSun {
			t.Errorf("NextDays = %+v", record.NextDays)
		}
		if !record.SummaryAvailable || record.SummaryURL != "https://en.wikipedia.org/wiki/Paris" {
			t.Errorf("summary = %q %q", record.Summary, record.SummaryURL)
		}
	})

	t.Run("unresolvable forwarded ip falls back to London", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		request.Header.Set(echo.HeaderXForwardedFor, "198.51.100.99")
		recorder := httptest.NewRecorder()
		e.ServeHTTP(recorder, request)

		var record entity.DisplayRecord
		if err := json.Unmarshal(recorder.Body.Bytes(), &record); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if record.City != "London" || record.Country != "United Kingdom" {
			t.Errorf("location = %s, %s", record.City, record.Country)
		}
		if record.Latitude != 51.5074 || record.Longitude != 0.1278 {
			t.Errorf("coordinates = %v, %v", record.Latitude, record.Longitude)
		}
		if record.LocationSource != entity.SourceDefault {
			t.Errorf("LocationSource = %s", record.LocationSource)
		}
	})

	t.Run("located ip", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(echo.HeaderXForwardedFor, "203.0.113.7")
		recorder := httptest.NewRecorder()
		e.ServeHTTP(recorder, request)

		if !strings.Contains(recorder.Body.String(), "Lyon, France") {
			t.Errorf("page does not show Lyon:\n%s", recorder.Body.String())
		}
	})
}
