package routing

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/pkg/errs"
)

// PoolKeyMode selects which material fields form the compatibility key.
//
// The two modes reflect two historical call sites of the pooling rule: one
// keyed on all four material fields, one ignoring exposure class. The
// discrepancy is surfaced here as explicit configuration instead of being
// resolved silently; PoolKeyFull is the default.
type PoolKeyMode int

const (
	// UnknownPoolKeyMode represents an invalid or undefined pooling mode.
	UnknownPoolKeyMode PoolKeyMode = iota

	// PoolKeyFull keys pools on strength, Dmax, consistency and exposure.
	PoolKeyFull

	// PoolKeyNoExposure keys pools on strength, Dmax and consistency only,
	// letting orders with different exposure classes share trucks.
	PoolKeyNoExposure
)

// Validate checks that the pooling mode is one of the defined values.
func (m PoolKeyMode) Validate() error {
	if m != PoolKeyFull && m != PoolKeyNoExposure {
		return errs.NewValueIsInvalidErrorWithCause("pool key mode",
			fmt.Errorf("%d is not a valid pool key mode", m))
	}
	return nil
}

// Settings is the immutable configuration of one routing engine instance.
// Build it once (DefaultSettings plus overrides) and pass it in; two engines
// with different settings can run side by side.
type Settings struct {
	// Truck capacity tiers in cubic meters.
	SmallCapacity  float64
	MediumCapacity float64
	BigCapacity    float64

	// AvoidSmallTrucks forces loads that would fit a small truck onto a
	// medium one, trading wasted capacity for a smaller vehicle pool.
	AvoidSmallTrucks bool

	// Time constants in fractional hours.
	LoadingHours             float64
	ServiceHours             float64
	DayStartHour             float64
	MaxConcreteLifespanHours float64

	// Travel model.
	SpeedKmh            float64
	TravelTimeFactor    float64 // multiplicative buffer on raw drive time
	FallbackDistanceKm  float64 // used when either endpoint is unresolved
	FallbackTravelHours float64 // used when a distance is non-finite

	// Priority policy.
	PriorityProbability   float64 // chance of the volume-priority branch
	LargeOrderThresholdM3 float64

	// Pairing policy: one wasted cubic meter of capacity costs as much as
	// this many kilometers of inter-customer travel.
	WastePenaltyPerM3 float64

	// Pooling.
	PoolKey PoolKeyMode

	// Plant is the loading site all trips start and end at.
	Plant kernel.GeoPoint
}

// DefaultSettings returns the production configuration of the dispatch plant.
func DefaultSettings() Settings {
	plant, _ := kernel.NewGeoPoint(47.624, 19.0655)

	return Settings{
		SmallCapacity:  3.0,
		MediumCapacity: 7.0,
		BigCapacity:    12.0,

		AvoidSmallTrucks: false,

		LoadingHours:             0.25,
		ServiceHours:             0.75,
		DayStartHour:             8.0,
		MaxConcreteLifespanHours: 6.0,

		SpeedKmh:            60.0,
		TravelTimeFactor:    1.1,
		FallbackDistanceKm:  50.0,
		FallbackTravelHours: 1.0,

		PriorityProbability:   0.45,
		LargeOrderThresholdM3: 7.0,

		WastePenaltyPerM3: 5.0,

		PoolKey: PoolKeyFull,

		Plant: plant,
	}
}

// Validate checks the settings for internal consistency.
func (s Settings) Validate() error {
	if !(0 < s.SmallCapacity && s.SmallCapacity < s.MediumCapacity && s.MediumCapacity < s.BigCapacity) {
		return errs.NewValueIsInvalidErrorWithCause("truck capacities",
			fmt.Errorf("capacities %v < %v < %v must be positive and strictly increasing",
				s.SmallCapacity, s.MediumCapacity, s.BigCapacity))
	}
	if s.LoadingHours < 0 || s.ServiceHours < 0 {
		return errs.NewValueIsInvalidError("time constants")
	}
	if s.MaxConcreteLifespanHours <= 0 {
		return errs.NewValueIsInvalidError("concrete lifespan")
	}
	if s.SpeedKmh <= 0 || s.TravelTimeFactor <= 0 {
		return errs.NewValueIsInvalidError("travel model")
	}
	if s.PriorityProbability < 0 || s.PriorityProbability > 1 {
		return errs.NewValueIsOutOfRangeError("priority probability", s.PriorityProbability, 0.0, 1.0)
	}
	if s.LargeOrderThresholdM3 <= 0 {
		return errs.NewValueIsInvalidError("large order threshold")
	}
	if err := s.PoolKey.Validate(); err != nil {
		return err
	}
	if err := s.Plant.Validate(); err != nil {
		return err
	}
	return nil
}

// TruckFor picks the smallest capacity tier that fits the given volume,
// honoring the small-truck-avoidance flag. The volume must already be within
// the big-truck ceiling; callers enforce that bound.
func (s Settings) TruckFor(volume float64) (trip.TruckClass, float64) {
	switch {
	case volume <= s.SmallCapacity:
		if s.AvoidSmallTrucks {
			return trip.MediumTruck, s.MediumCapacity
		}
		return trip.SmallTruck, s.SmallCapacity
	case volume <= s.MediumCapacity:
		return trip.MediumTruck, s.MediumCapacity
	default:
		return trip.BigTruck, s.BigCapacity
	}
}

// CapacityOf returns the configured capacity of a truck class.
func (s Settings) CapacityOf(class trip.TruckClass) float64 {
	switch class {
	case trip.SmallTruck:
		return s.SmallCapacity
	case trip.MediumTruck:
		return s.MediumCapacity
	case trip.BigTruck:
		return s.BigCapacity
	default:
		return 0
	}
}
