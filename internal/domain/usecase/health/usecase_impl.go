package health

import (
	"context"

	"beltempo/internal/domain/gateway/reference"
	"beltempo/internal/domain/gateway/upstream"
	"beltempo/internal/domain/model"
)

type healthUseCase struct {
	referenceGateway reference.Gateway
	upstreamGateway  upstream.HealthGateway
}

func NewHealthUseCase(referenceGateway reference.Gateway, upstreamGateway upstream.HealthGateway) UseCase {
	return &healthUseCase{
		referenceGateway: referenceGateway,
		upstreamGateway:  upstreamGateway,
	}
}

// CheckHealth is DOWN when the reference data or any probed upstream is down.
// Upstreams that were never probed do not affect the overall status.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	referenceHealth := useCase.referenceGateway.Health(ctx)
	upstreamHealth := useCase.upstreamGateway.Health()

	overallStatus := model.StatusUp
	if referenceHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}
	for _, status := range upstreamHealth {
		if status.Status == model.StatusDown {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Reference: referenceHealth,
		Upstreams: upstreamHealth,
	}
}
