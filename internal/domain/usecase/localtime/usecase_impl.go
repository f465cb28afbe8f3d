package localtime

import (
	"context"
	"strings"
	"time"
	_ "time/tzdata"

	"beltempo/internal/domain/gateway/reference"
	"beltempo/pkg/log"
	"beltempo/pkg/msg"
)

type localTimeUseCase struct {
	referenceGateway reference.Gateway
	zones            []string
	fallback         string
	clock            func() time.Time
}

// NewLocalTimeUseCase scans zones in the given order. clock defaults to time.Now.
func NewLocalTimeUseCase(referenceGateway reference.Gateway, zones []string, fallback string, clock func() time.Time) UseCase {
	if clock == nil {
		clock = time.Now
	}
	return &localTimeUseCase{
		referenceGateway: referenceGateway,
		zones:            zones,
		fallback:         fallback,
		clock:            clock,
	}
}

// ZoneFor returns the first zone whose region or remainder (split at the first '/')
// equals the capital or the country. Spaces in names compare as underscores.
func (uc *localTimeUseCase) ZoneFor(capital, country string) string {
	names := make([]string, 0, 2)
	for _, name := range []string{capital, country} {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, strings.ReplaceAll(name, " ", "_"))
		}
	}
	if len(names) == 0 {
		return uc.fallback
	}

	for _, zone := range uc.zones {
		region, rest, _ := strings.Cut(zone, "/")
		for _, name := range names {
			if region == name || rest == name {
				return zone
			}
		}
	}
	return uc.fallback
}

func (uc *localTimeUseCase) Now(ctx context.Context, country string) time.Time {
	capital, _, err := uc.referenceGateway.CapitalOf(ctx, country)
	if err != nil {
		log.Warn(msg.GetMessage("reference.failed", err))
	}

	return uc.clock().In(uc.location(uc.ZoneFor(capital, country)))
}

func (uc *localTimeUseCase) location(zone string) *time.Location {
	if location, err := time.LoadLocation(zone); err == nil {
		return location
	}
	if location, err := time.LoadLocation(uc.fallback); err == nil {
		return location
	}
	return time.UTC
}
