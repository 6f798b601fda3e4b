package routing

import (
	"math"

	"dispatch/internal/core/domain/model/trip"
)

// FleetTruck is a vehicle the scheduler has put into service during one run.
// Trucks are created lazily and never retired within a run, so the final
// fleet is the minimum needed to execute the computed schedule.
type FleetTruck struct {
	ID          int
	Class       trip.TruckClass
	AvailableAt float64 // fractional hours from midnight
}

// FleetScheduler assigns trips to reusable trucks over a single-day timeline.
//
// The plant's loading bay is the bottleneck: only one trip loads at a time,
// so the plant-ready clock advances by the loading time after every trip
// regardless of which truck was used. Truck reuse is first-fit by fleet-list
// order, not soonest-available; that is a deliberate simplicity tradeoff.
// Input order is dispatch priority and is preserved exactly in the output.
type FleetScheduler struct {
	settings Settings
}

// NewFleetScheduler creates a scheduler with the given settings.
func NewFleetScheduler(settings Settings) FleetScheduler {
	return FleetScheduler{settings: settings}
}

// Schedule attaches a Schedule to every trip and returns the scheduled trips
// together with the fleet that was needed. The input slice is not modified.
func (s FleetScheduler) Schedule(trips []trip.Trip) ([]trip.Trip, []FleetTruck) {
	scheduled := make([]trip.Trip, 0, len(trips))
	fleet := make([]FleetTruck, 0)

	plantReady := s.settings.DayStartHour
	nextTruckID := 1

	for _, t := range trips {
		startTime := plantReady
		endTime := startTime + t.DurationHours

		truckID := -1
		for idx := range fleet {
			if fleet[idx].Class == t.TruckType && fleet[idx].AvailableAt <= startTime {
				truckID = fleet[idx].ID
				fleet[idx].AvailableAt = endTime
				break
			}
		}

		if truckID == -1 {
			truckID = nextTruckID
			nextTruckID++
			fleet = append(fleet, FleetTruck{
				ID:          truckID,
				Class:       t.TruckType,
				AvailableAt: endTime,
			})
		}

		t.Schedule = &trip.Schedule{
			TruckID:       truckID,
			StartTime:     trip.FormatHours(startTime),
			EndTime:       trip.FormatHours(endTime),
			DurationHours: roundToTwoDecimals(t.DurationHours),
			StartHour:     startTime,
			EndHour:       endTime,
		}
		scheduled = append(scheduled, t)

		plantReady += s.settings.LoadingHours
	}

	return scheduled, fleet
}

func roundToTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
