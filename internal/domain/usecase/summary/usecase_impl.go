package summary

import (
	"context"
	"fmt"

	"beltempo/internal/domain/entity"
	"beltempo/internal/domain/gateway/api"
)

type summaryUseCase struct {
	summaryGateway api.SummaryGateway
}

func NewSummaryUseCase(summaryGateway api.SummaryGateway) UseCase {
	return &summaryUseCase{summaryGateway: summaryGateway}
}

func (uc *summaryUseCase) Summary(ctx context.Context, location entity.Location) (*entity.Summary, error) {
	summary, err := uc.summaryGateway.Search(ctx, SearchQuery(location))
	if err != nil {
		return nil, fmt.Errorf("failed to summarize %s: %w", location.City, err)
	}
	return summary, nil
}

// SearchQuery is the free-text search sent to the encyclopedia, e.g. "Paris city in France".
func SearchQuery(location entity.Location) string {
	return fmt.Sprintf("%s city in %s", location.City, location.Country)
}
