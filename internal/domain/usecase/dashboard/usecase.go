package dashboard

import (
	"context"

	"beltempo/internal/domain/entity"
)

// UseCase assembles the dashboard. Forecast and summary failures yield a partial record
// with placeholders instead of an error.
type UseCase interface {
	// BuildByName builds the dashboard for a typed country or city name
	BuildByName(ctx context.Context, search string) entity.DisplayRecord

	// BuildByIP builds the dashboard for the visitor's address
	BuildByIP(ctx context.Context, ip string) entity.DisplayRecord
}
