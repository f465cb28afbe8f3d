package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"beltempo/internal/domain/entity"
	"beltempo/internal/domain/gateway/api"
	"beltempo/internal/domain/model/external"
	"beltempo/internal/domain/usecase/forecast"
)

type fakeLocation struct {
	byName entity.Location
	byIP   entity.Location
	search string
	ip     string
}

func (f *fakeLocation) ResolveByName(_ context.Context, name string) entity.Location {
	f.search = name
	return f.byName
}

func (f *fakeLocation) ResolveByIP(_ context.Context, ip string) entity.Location {
	f.ip = ip
	return f.byIP
}

type fakeForecast struct {
	days []entity.DayForecast
	err  error
}

func (f *fakeForecast) Forecast(_ context.Context, _ entity.Coordinates) ([]entity.DayForecast, error) {
	return f.days, f.err
}

type fakeLocalTime struct {
	now time.Time
}

func (f *fakeLocalTime) ZoneFor(_, _ string) string { return f.now.Location().String() }
func (f *fakeLocalTime) Now(_ context.Context, _ string) time.Time {
	return f.now
}

type fakeSummary struct {
	summary *entity.Summary
	err     error
}

func (f *fakeSummary) Summary(_ context.Context, _ entity.Location) (*entity.Summary, error) {
	return f.summary, f.err
}

func paris() entity.Location {
	return entity.Location{
		City:        "Paris",
		Country:     "France",
		Coordinates: &entity.Coordinates{Latitude: 48.85, Longitude: 2.35},
		Source:      entity.SourceName,
	}
}

func days(n int) []entity.DayForecast {
	themes := []entity.Theme{entity.ThemeSun, entity.ThemeRain, entity.ThemeClouds, entity.ThemeStorm}
	result := make([]entity.DayForecast, n)
	for i := range result {
		theme := themes[i%len(themes)]
		result[i] = entity.DayForecast{Description: string(theme), Low: i, High: i + 5, Theme: theme, Icon: forecast.IconFor(theme)}
	}
	return result
}

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	zone, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}
	// Saturday
	return time.Date(2026, time.October, 17, 9, 5, 0, 0, zone)
}

func TestBuildByName(t *testing.T) {
	locations := &fakeLocation{byName: paris()}
	uc := NewDashboardUseCase(
		locations,
		&fakeForecast{days: days(15)},
		&fakeLocalTime{now: fixedNow(t)},
		&fakeSummary{summary: &entity.Summary{Text: "Paris is the capital.", URL: "https://en.wikipedia.org/wiki/Paris"}},
	)

	record := uc.BuildByName(context.Background(), "France")

	if locations.search != "France" {
		t.Errorf("ResolveByName called with %q", locations.search)
	}
	if record.City != "Paris" || record.Country != "France" || record.Latitude != 48.85 {
		t.Errorf("location fields = %s, %s, %v", record.City, record.Country, record.Latitude)
	}
	if record.Date != "SAT 17 OCT 2026" || record.Time != "09:05" || record.Timezone != "Europe/Paris" {
		t.Errorf("date/time = %q %q %q", record.Date, record.Time, record.Timezone)
	}
	if !record.ForecastAvailable || record.Today.Theme != entity.ThemeSun {
		t.Errorf("Today = %+v", record.Today)
	}
	if record.Theme != entity.ThemeSun || record.Caption != "Here Comes The Sun" {
		t.Errorf("theme/caption = %s %q", record.Theme, record.Caption)
	}

	wantLabels := [][2]string{{"SUN", "18"}, {"MON", "19"}, {"TUE", "20"}, {"WED", "21"}, {"THU", "22"}, {"FRI", "23"}}
	if len(record.NextDays) != len(wantLabels) {
		t.Fatalf("len(NextDays) = %d, want %d", len(record.NextDays), len(wantLabels))
	}
	for i, want := range wantLabels {
		got := record.NextDays[i]
		if got.Weekday != want[0] || got.Day != want[1] {
			t.Errorf("NextDays[%d] label = %s %s, want %s %s", i, got.Weekday, got.Day, want[0], want[1])
		}
		if got.Forecast.Low != i+1 {
			t.Errorf("NextDays[%d] forecast = %+v, want day %d", i, got.Forecast, i+1)
		}
	}

	if !record.SummaryAvailable || record.Summary != "Paris is the capital." || record.SummaryURL == "" {
		t.Errorf("summary = %+v", record)
	}
}

func TestBuildByIPWithShortForecast(t *testing.T) {
	locations := &fakeLocation{byIP: paris()}
	uc := NewDashboardUseCase(locations, &fakeForecast{days: days(3)}, &fakeLocalTime{now: fixedNow(t)}, &fakeSummary{summary: &entity.Summary{Text: "x"}})

	record := uc.BuildByIP(context.Background(), "203.0.113.7")
	if locations.ip != "203.0.113.7" {
		t.Errorf("ResolveByIP called with %q", locations.ip)
	}
	if len(record.NextDays) != 2 {
		t.Errorf("len(NextDays) = %d, want 2", len(record.NextDays))
	}
}

func TestBuildPartialRecord(t *testing.T) {
	uc := NewDashboardUseCase(
		&fakeLocation{byIP: entity.DefaultLocation()},
		&fakeForecast{err: forecast.ErrForecastUnavailable},
		&fakeLocalTime{now: fixedNow(t)},
		&fakeSummary{err: api.ErrSummaryAmbiguous},
	)

	record := uc.BuildByIP(context.Background(), "10.0.0.1")

	if record.City != entity.DefaultCity || record.Latitude != entity.DefaultLatitude || record.Longitude != entity.DefaultLongitude {
		t.Errorf("location = %s %v %v", record.City, record.Latitude, record.Longitude)
	}
	if record.ForecastAvailable || record.Today.Description != "Forecast unavailable" {
		t.Errorf("Today = %+v, want placeholder", record.Today)
	}
	if record.NextDays == nil || len(record.NextDays) != 0 {
		t.Errorf("NextDays = %v, want empty", record.NextDays)
	}
	if record.Theme != entity.ThemeClouds || record.Caption != "There Is No Sunshine When She is Gone" {
		t.Errorf("theme/caption = %s %q", record.Theme, record.Caption)
	}
	if record.SummaryAvailable || record.Summary != "No summary available for London." || record.SummaryURL != "" {
		t.Errorf("summary = %q %q", record.Summary, record.SummaryURL)
	}
}

type fakeWeather struct {
	data []external.WeatherbitDailyEntry
}

func (f *fakeWeather) Name() string { return "weather" }
func (f *fakeWeather) Probe(_ context.Context) error { return nil }
func (f *fakeWeather) GetDailyForecast(_ context.Context, _, _ float64) (*external.WeatherbitDailyResponse, error) {
	return &external.WeatherbitDailyResponse{Data: f.data}, nil
}

func weatherEntry(description string, low float64) external.WeatherbitDailyEntry {
	high := low + 5
	return external.WeatherbitDailyEntry{LowTemp: &low, MaxTemp: &high, Weather: &external.WeatherbitWeather{Description: description}}
}

func TestBuildDoesNotShiftDaysAroundIncompleteEntry(t *testing.T) {
	weather := &fakeWeather{data: []external.WeatherbitDailyEntry{
		weatherEntry("clear sky", 9),
		weatherEntry("clear sky", 10),
		{Weather: &external.WeatherbitWeather{Description: "few clouds"}},
		weatherEntry("light rain", 12),
		weatherEntry("heavy rain", 13),
	}}
	uc := NewDashboardUseCase(
		&fakeLocation{byName: paris()},
		forecast.NewForecastUseCase(weather),
		&fakeLocalTime{now: fixedNow(t)},
		&fakeSummary{summary: &entity.Summary{Text: "x"}},
	)

	record := uc.BuildByName(context.Background(), "Paris")

	if record.ForecastAvailable {
		t.Errorf("ForecastAvailable = true, NextDays = %+v", record.NextDays)
	}
	if len(record.NextDays) != 0 {
		t.Errorf("len(NextDays) = %d, want 0", len(record.NextDays))
	}
	if record.Today.Description != "Forecast unavailable" {
		t.Errorf("Today = %+v, want placeholder", record.Today)
	}
}

func TestBuildLabelsEachDayInOrder(t *testing.T) {
	weather := &fakeWeather{data: []external.WeatherbitDailyEntry{
		weatherEntry("clear sky", 9),
		weatherEntry("clear sky", 10),
		weatherEntry("few clouds", 11),
		weatherEntry("light rain", 12),
	}}
	uc := NewDashboardUseCase(
		&fakeLocation{byName: paris()},
		forecast.NewForecastUseCase(weather),
		&fakeLocalTime{now: fixedNow(t)},
		&fakeSummary{summary: &entity.Summary{Text: "x"}},
	)

	record := uc.BuildByName(context.Background(), "Paris")

	want := []struct {
		label string
		low   int
	}{{"SUN 18", 11}, {"MON 19", 12}}
	if len(record.NextDays) != len(want) {
		t.Fatalf("NextDays = %+v", record.NextDays)
	}
	for i, w := range want {
		got := record.NextDays[i]
		if got.Weekday+" "+got.Day != w.label || got.Forecast.Low != w.low {
			t.Errorf("NextDays[%d] = %s %s low=%d, want %s low=%d", i, got.Weekday, got.Day, got.Forecast.Low, w.label, w.low)
		}
	}
}

func TestBuildReplacesUnresolvedLocation(t *testing.T) {
	uc := NewDashboardUseCase(
		&fakeLocation{byName: entity.Location{City: "Nowhere"}},
		&fakeForecast{err: errors.New("boom")},
		&fakeLocalTime{now: fixedNow(t)},
		&fakeSummary{err: errors.New("boom")},
	)

	if record := uc.BuildByName(context.Background(), "x"); record.City != entity.DefaultCity {
		t.Errorf("City = %q, want default", record.City)
	}
}

func TestCaption(t *testing.T) {
	tests := map[entity.Theme]string{
		entity.ThemeSun:    "Here Comes The Sun",
		entity.ThemeClouds: "There Is No Sunshine When She is Gone",
		entity.ThemeRain:   "It's Raining Men",
		entity.ThemeStorm:  "",
	}
	for theme, want := range tests {
		if got := Caption(theme); got != want {
			t.Errorf("Caption(%s) = %q, want %q", theme, got, want)
		}
	}
}
