package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrComputeDispatchPlanQueryIsNotConstructed = errors.New(
		"ComputeDispatchPlanQuery must be created via NewComputeDispatchPlanQuery constructor",
	)
)

// ComputeDispatchPlanQuery requests a freshly computed dispatch plan for the
// current order book.
//
// The plan is randomized: without a seed every execution draws a new ordering
// and may produce a different (equally valid) plan. Supplying a seed pins the
// outcome, which operators use to re-inspect a plan they saw earlier.
type ComputeDispatchPlanQuery struct {
	seed *int64

	guard guard.ConstructorGuard
}

// NewComputeDispatchPlanQuery creates a plan computation query drawing a
// fresh random ordering.
func NewComputeDispatchPlanQuery() ComputeDispatchPlanQuery {
	return ComputeDispatchPlanQuery{guard: guard.NewConstructorGuard()}
}

// NewSeededComputeDispatchPlanQuery creates a plan computation query with a
// pinned random seed, for reproducible plans.
func NewSeededComputeDispatchPlanQuery(seed int64) ComputeDispatchPlanQuery {
	return ComputeDispatchPlanQuery{seed: &seed, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
// Returns ErrComputeDispatchPlanQueryIsNotConstructed if validation fails.
func (q ComputeDispatchPlanQuery) Validate() error {
	return q.guard.Validate(ErrComputeDispatchPlanQueryIsNotConstructed)
}

// Seed returns the pinned random seed, or nil when the plan should draw a
// fresh ordering.
func (q ComputeDispatchPlanQuery) Seed() *int64 {
	return q.seed
}
