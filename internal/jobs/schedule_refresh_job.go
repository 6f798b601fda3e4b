package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ScheduleRefreshJob periodically recomputes the dispatch plan and publishes
// it to the plan cache.
type ScheduleRefreshJob struct {
	handler  queries.ComputeDispatchPlanQueryHandler
	cache    *PlanCache
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewScheduleRefreshJob creates a new plan refresh job with the given cron
// spec (standard five-field syntax).
func NewScheduleRefreshJob(
	handler queries.ComputeDispatchPlanQueryHandler,
	cache *PlanCache,
	cronSpec string,
	logger *slog.Logger,
) *ScheduleRefreshJob {
	return &ScheduleRefreshJob{
		handler:  handler,
		cache:    cache,
		cronSpec: cronSpec,
		cron:     cron.New(),
		logger:   logger.With("component", "schedule_refresh_job"),
	}
}

// Start begins the periodic plan refresh.
func (j *ScheduleRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, j.refresh)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Schedule refresh job started", "spec", j.cronSpec)
	return nil
}

// Stop stops the plan refresh job.
func (j *ScheduleRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Schedule refresh job stopped")
}

func (j *ScheduleRefreshJob) refresh() {
	ctx := context.Background()

	resp, err := j.handler.Handle(ctx, queries.NewComputeDispatchPlanQuery())
	if err != nil {
		// Keep the previous plan; the next tick retries.
		j.logger.ErrorContext(ctx, "Schedule refresh failed", "error", err)
		return
	}

	j.cache.Set(resp)
	j.logger.InfoContext(ctx, "Schedule refreshed",
		"trips", resp.Stats.TotalTrips,
		"delivered_m3", resp.Stats.DeliveredVolumeM3,
		"utilization_pct", resp.Stats.UtilizationPercent)
}
