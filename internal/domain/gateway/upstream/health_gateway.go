package upstream

import (
	"context"

	"beltempo/internal/domain/gateway/api"
	"beltempo/internal/domain/model"
)

// HealthGateway keeps the last reachability result of every registered upstream
type HealthGateway interface {
	Register(prober api.Prober)

	// ProbeAll probes every registered upstream concurrently and records the results
	ProbeAll(ctx context.Context) (up int, down int)

	// Health returns the last recorded result per upstream name
	Health() map[string]model.ComponentHealthStatus
}
