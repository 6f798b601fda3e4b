package kernel

import (
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or NewUnresolvedGeoPoint constructors")

// GeoPoint is an immutable latitude/longitude pair in decimal degrees.
//
// A GeoPoint may carry non-finite coordinates: geocoding can fail to resolve
// a postal code, and the routing engine substitutes a pessimistic fallback
// distance for such points instead of rejecting the order. Use IsResolved to
// distinguish the two cases.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from finite coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) ||
		math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("coordinates",
			fmt.Errorf("(%v, %v) is not finite; use NewUnresolvedGeoPoint for unknown positions", latitude, longitude))
	}
	if latitude < -90 || latitude > 90 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, -90.0, 90.0)
	}
	if longitude < -180 || longitude > 180 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, -180.0, 180.0)
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewUnresolvedGeoPoint creates a GeoPoint with NaN coordinates, representing
// a position that could not be geocoded.
func NewUnresolvedGeoPoint() GeoPoint {
	return GeoPoint{
		latitude:  math.NaN(),
		longitude: math.NaN(),
		guard:     guard.NewConstructorGuard(),
	}
}

// Latitude returns the latitude in decimal degrees (possibly NaN).
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees (possibly NaN).
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsResolved reports whether both coordinates are finite.
func (p GeoPoint) IsResolved() bool {
	return !math.IsNaN(p.latitude) && !math.IsInf(p.latitude, 0) &&
		!math.IsNaN(p.longitude) && !math.IsInf(p.longitude, 0)
}

// IsEqual compares two points for coordinate equality.
// Two unresolved points are not equal (NaN semantics).
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%v, %v)", p.latitude, p.longitude)
}

// Validate ensures the point was created via a constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
