package api

import (
	"context"

	"beltempo/internal/domain/entity"
)

// GeolocationGateway maps a visitor IP address to an approximate location
type GeolocationGateway interface {
	Prober

	// Locate returns a fully resolved location for ip.
	// ErrLocationUnresolved is returned when any of city, country or coordinates is unknown.
	Locate(ctx context.Context, ip string) (*entity.Location, error)
}
