package api

import (
	"context"

	"beltempo/internal/domain/model/external"
)

// WeatherGateway defines the daily forecast provider
type WeatherGateway interface {
	Prober

	// GetDailyForecast returns the provider's daily forecast for the given coordinates.
	GetDailyForecast(ctx context.Context, latitude, longitude float64) (*external.WeatherbitDailyResponse, error)
}
