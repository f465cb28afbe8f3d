package api

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"

	"beltempo/internal/domain/entity"
)

// probeAddress is looked up to check the database is open and carries city records.
var probeAddress = net.IPv4(1, 1, 1, 1)

// geoIPGeolocationGateway resolves addresses offline from a MaxMind-format city database
type geoIPGeolocationGateway struct {
	reader *geoip2.Reader
}

// NewGeoIPGeolocationGateway opens the .mmdb city database at path.
// The returned closer releases the memory-mapped file.
func NewGeoIPGeolocationGateway(path string) (GeolocationGateway, func() error, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open geoip database %s: %w", path, err)
	}

	gateway := &geoIPGeolocationGateway{reader: reader}
	if err = gateway.Probe(context.Background()); err != nil {
		_ = reader.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return gateway, reader.Close, nil
}

func (g *geoIPGeolocationGateway) Name() string {
	return "geolocation"
}

func (g *geoIPGeolocationGateway) Probe(_ context.Context) error {
	if _, err := g.reader.City(probeAddress); err != nil {
		return fmt.Errorf("geoip database unavailable: %w", err)
	}
	return nil
}

func (g *geoIPGeolocationGateway) Locate(_ context.Context, ip string) (*entity.Location, error) {
	if !isPublicIP(ip) {
		return nil, fmt.Errorf("%w: %q is not a public address", ErrLocationUnresolved, ip)
	}

	record, err := g.reader.City(net.ParseIP(ip))
	if err != nil {
		return nil, fmt.Errorf("failed to look up ip %s: %w", ip, err)
	}

	city := record.City.Names["en"]
	country := record.Country.Names["en"]
	if city == "" || country == "" {
		return nil, fmt.Errorf("%w: no city record for %s", ErrLocationUnresolved, ip)
	}

	return &entity.Location{
		City:    city,
		Country: country,
		Coordinates: &entity.Coordinates{
			Latitude:  record.Location.Latitude,
			Longitude: record.Location.Longitude,
		},
		Source: entity.SourceIP,
	}, nil
}
