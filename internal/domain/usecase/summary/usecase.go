package summary

import (
	"context"

	"beltempo/internal/domain/entity"
)

type UseCase interface {
	// Summary returns the encyclopedia introduction of the location's city.
	// api.ErrSummaryNotFound and api.ErrSummaryAmbiguous pass through unchanged.
	Summary(ctx context.Context, location entity.Location) (*entity.Summary, error)
}
