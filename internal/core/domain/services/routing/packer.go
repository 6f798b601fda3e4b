package routing

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/trip"
)

// LeftoverItem is a volume fragment too small for a full Medium load.
// The packer defers these whole to the pairing stage; they are never split
// across trucks, which would break the two-stops-per-trip ceiling.
type LeftoverItem struct {
	CustomerID  int
	Volume      float64
	Coordinates kernel.GeoPoint

	// Source is the order the fragment came from.
	Source *order.Order
}

// DirectTripPacker carves full-capacity truck loads out of each order using
// a greedy largest-fit rule: Big loads while the remainder allows, then
// Medium loads, then defer whatever is left.
type DirectTripPacker struct {
	settings Settings
	distance DistanceModel
}

// NewDirectTripPacker creates a packer with the given settings.
func NewDirectTripPacker(settings Settings) DirectTripPacker {
	return DirectTripPacker{
		settings: settings,
		distance: NewDistanceModel(settings),
	}
}

// Pack processes orders in the given (already prioritized) sequence and
// returns the Direct trips plus the deferred leftovers, both in generation
// order.
//
// A Direct trip whose concrete age at unloading exceeds the lifespan ceiling
// is still emitted with the age recorded: at this stage the order is already
// committed to direct dispatch and there is no fallback routing, so the
// breach is surfaced to the operator instead of rejected.
func (p DirectTripPacker) Pack(orders []*order.Order) ([]trip.Trip, []LeftoverItem) {
	trips := make([]trip.Trip, 0)
	leftovers := make([]LeftoverItem, 0)

	for _, o := range orders {
		remaining := o.Volume()

		outKm := p.distance.Distance(p.settings.Plant, o.Coordinates())
		outHours := p.distance.TravelTime(outKm)

		for remaining > 0 {
			var class trip.TruckClass
			var capacity float64

			switch {
			case remaining >= p.settings.BigCapacity:
				class, capacity = trip.BigTruck, p.settings.BigCapacity
			case remaining >= p.settings.MediumCapacity:
				class, capacity = trip.MediumTruck, p.settings.MediumCapacity
			default:
				leftovers = append(leftovers, LeftoverItem{
					CustomerID:  o.CustomerID(),
					Volume:      remaining,
					Coordinates: o.Coordinates(),
					Source:      o,
				})
				remaining = 0
				continue
			}

			concreteAge := p.settings.LoadingHours + outHours + p.settings.ServiceHours
			duration := p.settings.LoadingHours + outHours + p.settings.ServiceHours + outHours

			age := concreteAge
			trips = append(trips, trip.Trip{
				TruckType:           class,
				Stops:               []int{o.CustomerID()},
				Volume:              capacity,
				DurationHours:       duration,
				ConcreteAgeAtFinish: &age,
				RouteType:           trip.Direct,
			})

			remaining -= capacity
		}
	}

	return trips, leftovers
}
