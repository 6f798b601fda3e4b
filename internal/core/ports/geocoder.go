package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Geocoder resolves a postal address to geographic coordinates.
//
// Implementations return an unresolved point together with a nil error when
// the address is syntactically valid but unknown to the provider; callers
// decide what to do with it. Order creation rejects unresolved addresses,
// while the routing engine plans already-persisted unresolved orders with a
// fallback distance.
type Geocoder interface {
	Resolve(ctx context.Context, country, postalCode string) (kernel.GeoPoint, error)
}
