package routing

import (
	"math"

	"dispatch/internal/core/domain/model/kernel"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceModel estimates road distance and travel time between geographic
// points. Both methods are pure and bit-reproducible for identical inputs;
// the pairing stage relies on that for its feasibility checks.
type DistanceModel struct {
	settings Settings
}

// NewDistanceModel creates a distance model with the given settings.
func NewDistanceModel(settings Settings) DistanceModel {
	return DistanceModel{settings: settings}
}

// Distance returns the great-circle distance between two points in
// kilometers. If either point is unresolved (non-finite coordinates) it
// returns the configured fallback distance: unknown positions are treated as
// moderately far rather than failing the plan.
func (m DistanceModel) Distance(a, b kernel.GeoPoint) float64 {
	if !a.IsResolved() || !b.IsResolved() {
		return m.settings.FallbackDistanceKm
	}

	lat1 := a.Latitude() * math.Pi / 180
	lon1 := a.Longitude() * math.Pi / 180
	lat2 := b.Latitude() * math.Pi / 180
	lon2 := b.Longitude() * math.Pi / 180

	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLon := math.Sin((lon2 - lon1) / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// TravelTime converts a distance in kilometers to driving hours at the
// configured average speed, with the configured buffer factor applied.
// A non-finite distance yields the configured fallback travel time.
func (m DistanceModel) TravelTime(distanceKm float64) float64 {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return m.settings.FallbackTravelHours
	}
	return distanceKm / m.settings.SpeedKmh * m.settings.TravelTimeFactor
}
