package jobs

import (
	"sync"
	"time"

	"dispatch/internal/core/application/usecases/queries"
)

// PlanCache holds the most recently computed dispatch plan for cheap reads.
// Safe for concurrent use; the refresh job writes, HTTP handlers read.
type PlanCache struct {
	mu        sync.RWMutex
	plan      *queries.ComputeDispatchPlanQueryResponse
	updatedAt time.Time
}

// NewPlanCache creates an empty plan cache.
func NewPlanCache() *PlanCache {
	return &PlanCache{}
}

// Set stores a freshly computed plan.
func (c *PlanCache) Set(plan queries.ComputeDispatchPlanQueryResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.plan = &plan
	c.updatedAt = time.Now()
}

// Get returns the cached plan, its computation time and whether a plan has
// been cached yet.
func (c *PlanCache) Get() (queries.ComputeDispatchPlanQueryResponse, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.plan == nil {
		return queries.ComputeDispatchPlanQueryResponse{}, time.Time{}, false
	}
	return *c.plan, c.updatedAt, true
}
