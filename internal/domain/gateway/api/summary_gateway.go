package api

import (
	"context"

	"beltempo/internal/domain/entity"
)

// SummaryGateway looks up a short encyclopedia introduction for a free-text query
type SummaryGateway interface {
	Prober

	// Search returns the intro of the best page for query.
	// ErrSummaryNotFound and ErrSummaryAmbiguous report unusable hits.
	Search(ctx context.Context, query string) (*entity.Summary, error)
}
