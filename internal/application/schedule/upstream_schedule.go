package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"beltempo/internal/domain/gateway/upstream"
	"beltempo/internal/domain/model"
	"beltempo/internal/infra/metrics"
	"beltempo/pkg/log"
	"beltempo/pkg/msg"
)

const upstreamProbeTask = "upstream_probe"

// UpstreamScheduler periodically probes the upstream providers and records their reachability
type UpstreamScheduler struct {
	cron            *cron.Cron
	upstreamGateway upstream.HealthGateway
	cronExpression  string
}

func NewUpstreamScheduler(upstreamGateway upstream.HealthGateway, cronExpression string) *UpstreamScheduler {
	return &UpstreamScheduler{
		cron:            cron.New(),
		upstreamGateway: upstreamGateway,
		cronExpression:  cronExpression,
	}
}

// InitUpstreamScheduleTasks runs a first probe immediately, then starts the cron.
// The scheduler stops when ctx is cancelled.
func (s *UpstreamScheduler) InitUpstreamScheduleTasks(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cronExpression, func() { s.ExecuteScheduledTask(ctx) })
	if err != nil {
		log.Error(msg.GetMessage("upstream.cron-failed", err))
		return err
	}

	go s.ExecuteScheduledTask(ctx)
	s.cron.Start()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// ExecuteScheduledTask probes every registered upstream once
func (s *UpstreamScheduler) ExecuteScheduledTask(ctx context.Context) {
	runID := uuid.NewString()
	start := time.Now()
	log.Debug(msg.GetMessage("upstream.probe-start", runID), zap.String("run_id", runID))

	up, down := s.upstreamGateway.ProbeAll(ctx)

	for name, status := range s.upstreamGateway.Health() {
		metrics.RecordUpstreamProbe(name, status.Status == model.StatusUp)
	}

	status := "success"
	if down > 0 {
		status = "degraded"
	}
	metrics.RecordSchedulerTask(upstreamProbeTask, status, time.Since(start))

	if down > 0 {
		log.Warn(msg.GetMessage("upstream.probe-end", runID, up, down), zap.String("run_id", runID))
		return
	}
	log.Info(msg.GetMessage("upstream.probe-end", runID, up, down), zap.String("run_id", runID))
}

// Stop gracefully stops the scheduler
func (s *UpstreamScheduler) Stop() {
	if s.cron != nil {
		stopCtx := s.cron.Stop()
		<-stopCtx.Done()
	}
}
