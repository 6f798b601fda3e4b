// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. ScheduleRefreshJob - Periodically recomputes the dispatch plan over the
// current order book and publishes it to an in-memory PlanCache, so the
// schedule endpoint can serve a recent plan without recomputing per request.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(planHandler, planCache, refreshSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh keeps the previous cached plan; the error is logged and
// the next tick retries.
package jobs
