package routing

// PlanStats summarizes a plan for operator dashboards: how much concrete
// ships, how much paid-for capacity rides empty, and how the fleet breaks
// down by class. Maps are keyed by the wire names of the enums so the
// struct serializes cleanly.
type PlanStats struct {
	TotalTrips         int            `json:"total_trips"`
	TripsByRouteType   map[string]int `json:"trips_by_route_type"`
	TripsByTruckClass  map[string]int `json:"trips_by_truck_class"`
	TrucksByTruckClass map[string]int `json:"trucks_by_truck_class"`
	DeliveredVolumeM3  float64        `json:"delivered_volume_m3"`
	WastedCapacityM3   float64        `json:"wasted_capacity_m3"`
	UtilizationPercent float64        `json:"utilization_percent"`
}

// ComputeStats derives summary statistics from a finished plan.
// Wasted capacity is the configured capacity of each trip's truck minus its
// carried volume; utilization is delivered volume over total capacity.
func ComputeStats(plan Plan, settings Settings) PlanStats {
	stats := PlanStats{
		TotalTrips:         len(plan.Trips),
		TripsByRouteType:   make(map[string]int),
		TripsByTruckClass:  make(map[string]int),
		TrucksByTruckClass: make(map[string]int),
	}

	totalCapacity := 0.0
	for _, t := range plan.Trips {
		stats.TripsByRouteType[t.RouteType.String()]++
		stats.TripsByTruckClass[t.TruckType.String()]++

		capacity := settings.CapacityOf(t.TruckType)
		totalCapacity += capacity
		stats.DeliveredVolumeM3 += t.Volume
		stats.WastedCapacityM3 += capacity - t.Volume
	}

	for _, truck := range plan.Fleet {
		stats.TrucksByTruckClass[truck.Class.String()]++
	}

	if totalCapacity > 0 {
		stats.UtilizationPercent = roundToTwoDecimals(stats.DeliveredVolumeM3 / totalCapacity * 100)
	}
	stats.DeliveredVolumeM3 = roundToTwoDecimals(stats.DeliveredVolumeM3)
	stats.WastedCapacityM3 = roundToTwoDecimals(stats.WastedCapacityM3)

	return stats
}
