package api

import (
	"context"

	"beltempo/internal/domain/entity"
)

// GeocodingGateway turns a free-text place query into coordinates
type GeocodingGateway interface {
	Prober

	// Geocode returns the coordinates of the best match for query, or ErrGeocodeUnresolved.
	Geocode(ctx context.Context, query string) (*entity.Coordinates, error)
}
