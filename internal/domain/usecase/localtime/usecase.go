package localtime

import (
	"context"
	"time"
)

type UseCase interface {
	// ZoneFor guesses an IANA zone from a capital and country name, or returns the fallback zone
	ZoneFor(capital, country string) string

	// Now returns the current time in the zone of country's capital
	Now(ctx context.Context, country string) time.Time
}
