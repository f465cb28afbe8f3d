package dashboard

import (
	"context"
	"strings"
	"time"

	"beltempo/internal/domain/entity"
	"beltempo/internal/domain/usecase/forecast"
	"beltempo/internal/domain/usecase/localtime"
	"beltempo/internal/domain/usecase/location"
	"beltempo/internal/domain/usecase/summary"
	"beltempo/pkg/log"
	"beltempo/pkg/msg"
)

const (
	dateLayout = "Mon 02 Jan 2006"
	timeLayout = "15:04"

	// labelWindow counts today, so at most labelWindow-1 upcoming days are labelled.
	labelWindow = 7
)

var captions = map[entity.Theme]string{
	entity.ThemeSun:    "Here Comes The Sun",
	entity.ThemeClouds: "There Is No Sunshine When She is Gone",
	entity.ThemeRain:   "It's Raining Men",
	entity.ThemeStorm:  "",
}

type dashboardUseCase struct {
	locationUseCase  location.UseCase
	forecastUseCase  forecast.UseCase
	localTimeUseCase localtime.UseCase
	summaryUseCase   summary.UseCase
}

func NewDashboardUseCase(locationUseCase location.UseCase, forecastUseCase forecast.UseCase, localTimeUseCase localtime.UseCase, summaryUseCase summary.UseCase) UseCase {
	return &dashboardUseCase{
		locationUseCase:  locationUseCase,
		forecastUseCase:  forecastUseCase,
		localTimeUseCase: localTimeUseCase,
		summaryUseCase:   summaryUseCase,
	}
}

func (uc *dashboardUseCase) BuildByName(ctx context.Context, search string) entity.DisplayRecord {
	return uc.build(ctx, uc.locationUseCase.ResolveByName(ctx, search))
}

func (uc *dashboardUseCase) BuildByIP(ctx context.Context, ip string) entity.DisplayRecord {
	return uc.build(ctx, uc.locationUseCase.ResolveByIP(ctx, ip))
}

func (uc *dashboardUseCase) build(ctx context.Context, place entity.Location) entity.DisplayRecord {
	place = place.OrDefault()
	now := uc.localTimeUseCase.Now(ctx, place.Country)

	record := entity.DisplayRecord{
		City:           place.City,
		Country:        place.Country,
		Latitude:       place.Coordinates.Latitude,
		Longitude:      place.Coordinates.Longitude,
		LocationSource: place.Source,
		Date:           strings.ToUpper(now.Format(dateLayout)),
		Time:           now.Format(timeLayout),
		Timezone:       now.Location().String(),
		NextDays:       []entity.DatedForecast{},
	}

	uc.fillForecast(ctx, &record, place, now)
	uc.fillSummary(ctx, &record, place)

	record.Theme = record.Today.Theme
	record.Caption = Caption(record.Theme)
	return record
}

func (uc *dashboardUseCase) fillForecast(ctx context.Context, record *entity.DisplayRecord, place entity.Location, now time.Time) {
	days, err := uc.forecastUseCase.Forecast(ctx, *place.Coordinates)
	if err != nil {
		log.Warn(msg.GetMessage("forecast.failed", place.Query(), err))
		record.Today = entity.DayForecast{
			Description: msg.GetMessage("forecast.unavailable"),
			Theme:       entity.ThemeClouds,
			Icon:        forecast.IconFor(entity.ThemeClouds),
		}
		return
	}

	record.ForecastAvailable = true
	record.Today = days[0]
	for i, day := range days[1:] {
		if i+1 >= labelWindow {
			break
		}
		date := now.AddDate(0, 0, i+1)
		record.NextDays = append(record.NextDays, entity.DatedForecast{
			Weekday:  strings.ToUpper(date.Format("Mon")),
			Day:      date.Format("02"),
			Forecast: day,
		})
	}
}

func (uc *dashboardUseCase) fillSummary(ctx context.Context, record *entity.DisplayRecord, place entity.Location) {
	found, err := uc.summaryUseCase.Summary(ctx, place)
	if err != nil {
		log.Warn(msg.GetMessage("summary.failed", place.City, err))
		record.Summary = msg.GetMessage("summary.unavailable", place.City)
		return
	}

	record.SummaryAvailable = true
	record.Summary = found.Text
	record.SummaryURL = found.URL
}

// Caption is the tagline shown under a theme. Storm intentionally has none.
func Caption(theme entity.Theme) string {
	return captions[theme]
}
