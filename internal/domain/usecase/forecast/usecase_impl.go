package forecast

import (
	"context"
	"fmt"

	"beltempo/internal/domain/entity"
	"beltempo/internal/domain/gateway/api"
	"beltempo/internal/domain/model/external"
	"beltempo/pkg/util/numberutils"
)

type forecastUseCase struct {
	weatherGateway api.WeatherGateway
}

func NewForecastUseCase(weatherGateway api.WeatherGateway) UseCase {
	return &forecastUseCase{weatherGateway: weatherGateway}
}

func (uc *forecastUseCase) Forecast(ctx context.Context, coordinates entity.Coordinates) ([]entity.DayForecast, error) {
	response, err := uc.weatherGateway.GetDailyForecast(ctx, coordinates.Latitude, coordinates.Longitude)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForecastUnavailable, err)
	}

	if len(response.Data) < 2 {
		return nil, fmt.Errorf("%w: %d entries received", ErrForecastUnavailable, len(response.Data))
	}

	// Days are labelled by position, so a gap would shift every later day.
	days := make([]entity.DayForecast, 0, len(response.Data)-1)
	for i, entry := range response.Data[1:] {
		day, ok := toDayForecast(entry)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d is incomplete", ErrForecastUnavailable, i+1)
		}
		days = append(days, day)
	}
	return days, nil
}

// toDayForecast rejects entries without a description or temperature range.
func toDayForecast(entry external.WeatherbitDailyEntry) (entity.DayForecast, bool) {
	if entry.Weather == nil || entry.Weather.Description == "" || entry.LowTemp == nil || entry.MaxTemp == nil {
		return entity.DayForecast{}, false
	}

	theme := Classify(entry.Weather.Description)
	return entity.DayForecast{
		Description: entry.Weather.Description,
		Low:         numberutils.RoundToInt(*entry.LowTemp),
		High:        numberutils.RoundToInt(*entry.MaxTemp),
		Theme:       theme,
		Icon:        IconFor(theme),
	}, true
}
