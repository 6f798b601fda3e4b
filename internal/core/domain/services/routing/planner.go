package routing

import (
	"log/slog"
	"math/rand"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/pkg/errs"
)

// Plan is the complete result of one dispatch run: every trip with its
// schedule attached, plus the fleet that executes them.
type Plan struct {
	Trips []trip.Trip
	Fleet []FleetTruck
}

// DispatchPlanner is the facade over the whole routing pipeline: pooling,
// prioritization, load carving, leftover pairing and fleet scheduling.
//
// One planner instance serves one run: the injected random source is consumed
// by the priority stage, so reusing a planner across runs yields different
// (still valid) plans. Pools are processed sequentially in first-appearance
// order against the single shared source, which keeps runs reproducible under
// a fixed seed.
type DispatchPlanner struct {
	settings Settings
	rng      *rand.Rand
	logger   *slog.Logger
}

// NewDispatchPlanner creates a planner. A nil logger disables the lifespan
// warnings.
func NewDispatchPlanner(settings Settings, rng *rand.Rand, logger *slog.Logger) (DispatchPlanner, error) {
	if err := settings.Validate(); err != nil {
		return DispatchPlanner{}, err
	}
	if rng == nil {
		return DispatchPlanner{}, errs.NewValueIsRequiredError("rng")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return DispatchPlanner{settings: settings, rng: rng, logger: logger}, nil
}

// Plan computes the day's trips and schedule for the given orders.
// The input slice is not modified.
func (p DispatchPlanner) Plan(orders []*order.Order) (Plan, error) {
	for _, o := range orders {
		if o == nil {
			return Plan{}, errs.NewValueIsRequiredError("order")
		}
		if err := o.Validate(); err != nil {
			return Plan{}, err
		}
	}

	orderer := NewPriorityOrderer(p.settings, p.rng)
	packer := NewDirectTripPacker(p.settings)
	pairer := NewLeftoverPairer(p.settings)

	trips := make([]trip.Trip, 0, len(orders))
	for _, pool := range PartitionByCompatibility(orders, p.settings.PoolKey) {
		prioritized := orderer.Prioritize(pool.Orders)

		direct, leftovers := packer.Pack(prioritized)
		trips = append(trips, direct...)
		trips = append(trips, pairer.Pair(leftovers)...)
	}

	for _, t := range trips {
		if t.ExceedsLifespan(p.settings.MaxConcreteLifespanHours) {
			p.logger.Warn("trip exceeds concrete lifespan",
				"stops", t.Stops,
				"concrete_age_h", *t.ConcreteAgeAtFinish,
				"lifespan_h", p.settings.MaxConcreteLifespanHours)
		}
	}

	scheduled, fleet := NewFleetScheduler(p.settings).Schedule(trips)
	return Plan{Trips: scheduled, Fleet: fleet}, nil
}
