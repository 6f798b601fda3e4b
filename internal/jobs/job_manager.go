package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	scheduleRefreshJob *ScheduleRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the plan query handler and cache as dependencies to wire up job execution.
func NewJobManager(
	planHandler queries.ComputeDispatchPlanQueryHandler,
	planCache *PlanCache,
	refreshSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		scheduleRefreshJob: NewScheduleRefreshJob(planHandler, planCache, refreshSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.scheduleRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start schedule refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.scheduleRefreshJob.Stop()
}
