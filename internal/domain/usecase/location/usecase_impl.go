package location

import (
	"context"
	"strings"

	"beltempo/internal/domain/entity"
	"beltempo/internal/domain/gateway/api"
	"beltempo/internal/domain/gateway/reference"
	"beltempo/pkg/log"
	"beltempo/pkg/msg"
)

type locationUseCase struct {
	referenceGateway   reference.Gateway
	geolocationGateway api.GeolocationGateway
	geocodingGateway   api.GeocodingGateway
}

func NewLocationUseCase(referenceGateway reference.Gateway, geolocationGateway api.GeolocationGateway, geocodingGateway api.GeocodingGateway) UseCase {
	return &locationUseCase{
		referenceGateway:   referenceGateway,
		geolocationGateway: geolocationGateway,
		geocodingGateway:   geocodingGateway,
	}
}

func (uc *locationUseCase) ResolveByName(ctx context.Context, name string) entity.Location {
	name = strings.TrimSpace(name)

	location, ok := uc.match(ctx, name)
	if !ok {
		log.Info(msg.GetMessage("location.name-unresolved", name))
		return entity.DefaultLocation()
	}

	coordinates, err := uc.geocodingGateway.Geocode(ctx, location.Query())
	if err != nil {
		log.Warn(msg.GetMessage("location.geocode-failed", location.Query(), err))
		return entity.DefaultLocation()
	}

	location.Coordinates = coordinates
	return location.OrDefault()
}

// match looks name up as a country first, then as a city.
func (uc *locationUseCase) match(ctx context.Context, name string) (entity.Location, bool) {
	if name == "" {
		return entity.Location{}, false
	}

	country, found, err := uc.referenceGateway.FindCountry(ctx, name)
	if err != nil {
		log.Error(msg.GetMessage("reference.failed", err))
		return entity.Location{}, false
	}
	if found {
		capital, ok, err := uc.referenceGateway.CapitalOf(ctx, country)
		if err != nil {
			log.Error(msg.GetMessage("reference.failed", err))
			return entity.Location{}, false
		}
		if !ok {
			return entity.Location{}, false
		}
		return entity.Location{City: capital, Country: country, Source: entity.SourceName}, true
	}

	city, country, found, err := uc.referenceGateway.FindCity(ctx, name)
	if err != nil {
		log.Error(msg.GetMessage("reference.failed", err))
		return entity.Location{}, false
	}
	if !found {
		return entity.Location{}, false
	}
	return entity.Location{City: city, Country: country, Source: entity.SourceName}, true
}

func (uc *locationUseCase) ResolveByIP(ctx context.Context, ip string) entity.Location {
	location, err := uc.geolocationGateway.Locate(ctx, ip)
	if err != nil {
		log.Infow(msg.GetMessage("location.ip-unresolved", ip), "error", err.Error())
		return entity.DefaultLocation()
	}
	return location.OrDefault()
}
