package api

import (
	"context"
	"fmt"
	"net"

	"beltempo/internal/domain/entity"
	"beltempo/internal/domain/model/external"
	"beltempo/pkg/http"
)

const ipAPIFields = "status,message,country,countryCode,city,lat,lon,timezone,query"

// ipAPIGeolocationGateway implements GeolocationGateway on top of ip-api.com
type ipAPIGeolocationGateway struct {
	httpClient *http.Client
}

// NewIPAPIGeolocationGateway creates a GeolocationGateway backed by the ip-api.com JSON endpoint
func NewIPAPIGeolocationGateway(baseUrl string, clientOptions http.ClientOptions) GeolocationGateway {
	return &ipAPIGeolocationGateway{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

func (g *ipAPIGeolocationGateway) Name() string {
	return "geolocation"
}

func (g *ipAPIGeolocationGateway) Probe(ctx context.Context) error {
	return probe(ctx, g.httpClient)
}

// Locate resolves a public IP address through ip-api.com
func (g *ipAPIGeolocationGateway) Locate(ctx context.Context, ip string) (*entity.Location, error) {
	if !isPublicIP(ip) {
		return nil, fmt.Errorf("%w: %q is not a public address", ErrLocationUnresolved, ip)
	}

	successResp, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/json/" + ip).
		WithQueryParams(map[string]string{"fields": ipAPIFields}).
		WithSuccessResp(&external.IPAPIResponse{}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to locate ip %s: %w", ip, err)
	}

	response := successResp.(*external.IPAPIResponse)
	if response.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrLocationUnresolved, response.Message)
	}
	if response.Lat == nil || response.Lon == nil || response.City == "" || response.Country == "" {
		return nil, fmt.Errorf("%w: incomplete answer for %s", ErrLocationUnresolved, ip)
	}

	return &entity.Location{
		City:    response.City,
		Country: response.Country,
		Coordinates: &entity.Coordinates{
			Latitude:  *response.Lat,
			Longitude: *response.Lon,
		},
		Source: entity.SourceIP,
	}, nil
}

// isPublicIP rejects unparsable, loopback, private and link-local addresses,
// none of which can be geolocated.
func isPublicIP(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	return !(parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() ||
		parsed.IsLinkLocalUnicast() || parsed.IsLinkLocalMulticast() || parsed.IsMulticast())
}
