package api

import (
	"context"
	"fmt"
	"strings"

	"beltempo/internal/domain/entity"
	"beltempo/internal/domain/model/external"
	"beltempo/pkg/http"
	"beltempo/pkg/util/numberutils"
)

// nominatimGeocodingGateway implements GeocodingGateway with the OpenStreetMap Nominatim search API
type nominatimGeocodingGateway struct {
	httpClient *http.Client
}

// NewNominatimGeocodingGateway creates a GeocodingGateway. Nominatim requires an identifying
// User-Agent, which is expected in clientOptions.DefaultHeaders.
func NewNominatimGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) GeocodingGateway {
	return &nominatimGeocodingGateway{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

func (g *nominatimGeocodingGateway) Name() string {
	return "geocoding"
}

func (g *nominatimGeocodingGateway) Probe(ctx context.Context) error {
	return probe(ctx, g.httpClient)
}

func (g *nominatimGeocodingGateway) Geocode(ctx context.Context, query string) (*entity.Coordinates, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", ErrGeocodeUnresolved)
	}

	successResp, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/search").
		WithQueryParams(map[string]string{
			"q":      query,
			"format": "json",
			"limit":  "1",
		}).
		WithHeaders(map[string]string{"Accept-Language": "en"}).
		WithSuccessResp(&[]external.NominatimPlace{}).
		WithErrorResp(&external.NominatimError{}).
		Execute()

	if errResp != nil {
		errorResponse := errResp.(*external.NominatimError)
		return nil, fmt.Errorf("geocoding %q rejected: %s: %w", query, errorResponse.Error.Message, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	places := *successResp.(*[]external.NominatimPlace)
	if len(places) == 0 {
		return nil, fmt.Errorf("%w: no match for %q", ErrGeocodeUnresolved, query)
	}

	latitude, err := numberutils.ParseFloatWithError(places[0].Lat)
	if err != nil {
		return nil, fmt.Errorf("%w: bad latitude %q", ErrGeocodeUnresolved, places[0].Lat)
	}
	longitude, err := numberutils.ParseFloatWithError(places[0].Lon)
	if err != nil {
		return nil, fmt.Errorf("%w: bad longitude %q", ErrGeocodeUnresolved, places[0].Lon)
	}

	return &entity.Coordinates{Latitude: latitude, Longitude: longitude}, nil
}
