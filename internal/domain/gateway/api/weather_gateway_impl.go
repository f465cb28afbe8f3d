package api

import (
	"context"
	"fmt"

	"beltempo/internal/domain/model/external"
	"beltempo/pkg/http"
	"beltempo/pkg/util/numberutils"
)

// weatherbitGateway implements WeatherGateway against Weatherbit served through RapidAPI
type weatherbitGateway struct {
	httpClient *http.Client
	host       string
	apiKey     string
}

// NewWeatherbitGateway creates a WeatherGateway. host is the RapidAPI host header value and
// apiKey the RapidAPI key sent with every call.
func NewWeatherbitGateway(baseUrl, host, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	return &weatherbitGateway{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		host:       host,
		apiKey:     apiKey,
	}
}

func (w *weatherbitGateway) Name() string {
	return "weather"
}

func (w *weatherbitGateway) Probe(ctx context.Context) error {
	return probe(ctx, w.httpClient)
}

func (w *weatherbitGateway) GetDailyForecast(ctx context.Context, latitude, longitude float64) (*external.WeatherbitDailyResponse, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast/daily").
		WithQueryParams(map[string]string{
			"lat": numberutils.FormatFloat(latitude),
			"lon": numberutils.FormatFloat(longitude),
		}).
		WithHeaders(map[string]string{
			"x-rapidapi-host": w.host,
			"x-rapidapi-key":  w.apiKey,
		}).
		WithSuccessResp(&external.WeatherbitDailyResponse{}).
		WithErrorResp(&external.WeatherbitError{}).
		Execute()

	if errResp != nil {
		errorResponse := errResp.(*external.WeatherbitError)
		return nil, fmt.Errorf("forecast rejected: %s%s: %w", errorResponse.Error, errorResponse.Message, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast for %s,%s: %w",
			numberutils.FormatFloat(latitude), numberutils.FormatFloat(longitude), err)
	}
	if successResp == nil {
		return nil, fmt.Errorf("empty forecast response")
	}

	return successResp.(*external.WeatherbitDailyResponse), nil
}
