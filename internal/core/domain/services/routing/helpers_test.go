package routing_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

func testPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return point
}

func testMaterial(t *testing.T, strength string, dmax float64, consistency, exposure string) order.MaterialSpec {
	t.Helper()

	spec, err := order.NewMaterialSpec(strength, dmax, consistency, exposure)
	require.NoError(t, err)
	return spec
}

func testOrder(t *testing.T, customerID int, volume float64, point kernel.GeoPoint, material order.MaterialSpec) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), customerID, point, volume, material, time.Now())
	require.NoError(t, err)
	return o
}

func testOrderUnresolved(t *testing.T, customerID int, volume float64, material order.MaterialSpec) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), customerID, kernel.NewUnresolvedGeoPoint(),
		volume, material, time.Now())
	require.NoError(t, err)
	return o
}

// seedForBranch finds a seed whose first uniform draw lands inside (or
// outside) the priority branch, so branch-specific tests stay deterministic
// without hardcoding generator internals.
func seedForBranch(t *testing.T, priority bool, probability float64) int64 {
	t.Helper()

	for seed := int64(0); seed < 10000; seed++ {
		draw := rand.New(rand.NewSource(seed)).Float64()
		if (draw < probability) == priority {
			return seed
		}
	}

	t.Fatal("no seed found for requested branch")
	return 0
}
