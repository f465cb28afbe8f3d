package reference

import (
	"context"

	"beltempo/internal/domain/model"
)

// Gateway answers place-name questions from the static countries/cities dataset.
// Names are matched after title-case normalization; results carry the dataset spelling.
type Gateway interface {
	// IsCountry reports whether name is a known country
	IsCountry(ctx context.Context, name string) (bool, error)

	// FindCountry returns the canonical spelling of a known country
	FindCountry(ctx context.Context, name string) (country string, found bool, err error)

	// FindCity returns the first (city, country) pair listing name, in dataset order
	FindCity(ctx context.Context, name string) (city string, country string, found bool, err error)

	// CapitalOf returns the capital of a known country
	CapitalOf(ctx context.Context, country string) (capital string, found bool, err error)

	// Health reports whether the backing store is usable
	Health(ctx context.Context) model.ComponentHealthStatus
}
