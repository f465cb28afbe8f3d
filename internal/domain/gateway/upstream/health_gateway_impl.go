package upstream

import (
	"context"
	"strconv"
	"sync"
	"time"

	"beltempo/internal/domain/gateway/api"
	"beltempo/internal/domain/model"
)

type UpstreamHealthGateway struct {
	probers map[string]api.Prober
	results map[string]model.ComponentHealthStatus
	timeout time.Duration
	now     func() time.Time
	mutex   sync.RWMutex
}

var _ HealthGateway = (*UpstreamHealthGateway)(nil)

// NewUpstreamHealthGateway bounds every single probe by timeout.
func NewUpstreamHealthGateway(timeout time.Duration) *UpstreamHealthGateway {
	return &UpstreamHealthGateway{
		probers: make(map[string]api.Prober),
		results: make(map[string]model.ComponentHealthStatus),
		timeout: timeout,
		now:     time.Now,
	}
}

func (gateway *UpstreamHealthGateway) Register(prober api.Prober) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.probers[prober.Name()] = prober
}

func (gateway *UpstreamHealthGateway) ProbeAll(ctx context.Context) (int, int) {
	gateway.mutex.RLock()
	probers := make([]api.Prober, 0, len(gateway.probers))
	for _, prober := range gateway.probers {
		probers = append(probers, prober)
	}
	gateway.mutex.RUnlock()

	results := make([]model.ComponentHealthStatus, len(probers))
	var wg sync.WaitGroup
	for i, prober := range probers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = gateway.probe(ctx, prober)
		}()
	}
	wg.Wait()

	up, down := 0, 0
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	for i, prober := range probers {
		gateway.results[prober.Name()] = results[i]
		if results[i].Status == model.StatusUp {
			up++
		} else {
			down++
		}
	}
	return up, down
}

func (gateway *UpstreamHealthGateway) probe(ctx context.Context, prober api.Prober) model.ComponentHealthStatus {
	probeCtx, cancel := context.WithTimeout(ctx, gateway.timeout)
	defer cancel()

	start := gateway.now()
	err := prober.Probe(probeCtx)
	details := map[string]string{
		"checked_at": start.UTC().Format(time.RFC3339),
		"latency_ms": strconv.FormatInt(gateway.now().Sub(start).Milliseconds(), 10),
	}

	if err != nil {
		details["message"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	details["message"] = string(model.StatusUp)
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

func (gateway *UpstreamHealthGateway) Health() map[string]model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	health := make(map[string]model.ComponentHealthStatus, len(gateway.probers))
	for name := range gateway.probers {
		if result, ok := gateway.results[name]; ok {
			health[name] = result
			continue
		}
		health[name] = model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "Not probed yet"},
		}
	}
	return health
}
