package forecast

import (
	"context"
	"errors"

	"beltempo/internal/domain/entity"
)

// ErrForecastUnavailable is returned when the provider fails or yields no usable day.
var ErrForecastUnavailable = errors.New("forecast unavailable")

type UseCase interface {
	// Forecast returns the upcoming days for coordinates, oldest first.
	// The provider's first entry is dropped.
	Forecast(ctx context.Context, coordinates entity.Coordinates) ([]entity.DayForecast, error)
}
