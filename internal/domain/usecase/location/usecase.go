package location

import (
	"context"

	"beltempo/internal/domain/entity"
)

// UseCase resolves the place a dashboard is built for. It never fails: anything that
// cannot be fully resolved is replaced by entity.DefaultLocation.
type UseCase interface {
	// ResolveByName maps a country (to its capital) or a city (to its country) and geocodes it
	ResolveByName(ctx context.Context, name string) entity.Location

	// ResolveByIP geolocates a visitor address
	ResolveByIP(ctx context.Context, ip string) entity.Location
}
