package routing_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/core/domain/services/routing"
)

func Test_NewDispatchPlanner_RejectsInvalidSettings(t *testing.T) {
	settings := routing.DefaultSettings()
	settings.BigCapacity = 0

	_, err := routing.NewDispatchPlanner(settings, rand.New(rand.NewSource(1)), nil)

	assert.Error(t, err)
}

func Test_NewDispatchPlanner_RejectsNilRandomSource(t *testing.T) {
	_, err := routing.NewDispatchPlanner(routing.DefaultSettings(), nil, nil)

	assert.Error(t, err)
}

func Test_DispatchPlanner_FullLoadAndPairedRemainders(t *testing.T) {
	settings := routing.DefaultSettings()
	planner, err := routing.NewDispatchPlanner(settings, rand.New(rand.NewSource(1)), nil)
	require.NoError(t, err)

	spec := testMaterial(t, "C25/30", 16, "F3", "XC2")
	orders := []*order.Order{
		testOrder(t, 1, 12, testPoint(t, 47.63, 19.07), spec),
		testOrder(t, 2, 5, testPoint(t, 47.64, 19.08), spec),
		testOrder(t, 3, 5, testPoint(t, 47.65, 19.09), spec),
	}

	plan, err := planner.Plan(orders)
	require.NoError(t, err)

	require.Len(t, plan.Trips, 2)

	byRoute := make(map[trip.RouteType]trip.Trip)
	for _, tr := range plan.Trips {
		byRoute[tr.RouteType] = tr
	}

	direct, ok := byRoute[trip.Direct]
	require.True(t, ok)
	assert.Equal(t, trip.BigTruck, direct.TruckType)
	assert.Equal(t, []int{1}, direct.Stops)
	assert.InDelta(t, 12, direct.Volume, 1e-9)

	shared, ok := byRoute[trip.Shared]
	require.True(t, ok)
	assert.Equal(t, trip.BigTruck, shared.TruckType)
	assert.ElementsMatch(t, []int{2, 3}, shared.Stops)
	assert.InDelta(t, 10, shared.Volume, 1e-9)

	for _, tr := range plan.Trips {
		require.NotNil(t, tr.Schedule)
	}
	assert.NotEmpty(t, plan.Fleet)
}

func Test_DispatchPlanner_ConservesVolume(t *testing.T) {
	settings := routing.DefaultSettings()
	planner, err := routing.NewDispatchPlanner(settings, rand.New(rand.NewSource(99)), nil)
	require.NoError(t, err)

	point := testPoint(t, 47.63, 19.07)
	specA := testMaterial(t, "C25/30", 16, "F3", "XC2")
	specB := testMaterial(t, "C30/37", 22, "F4", "XD1")

	volumes := []float64{2.5, 4, 8.5, 11, 15, 24, 6, 1.5}
	orders := make([]*order.Order, 0, len(volumes))
	total := 0.0
	for i, v := range volumes {
		spec := specA
		if i%2 == 1 {
			spec = specB
		}
		orders = append(orders, testOrder(t, i+1, v, point, spec))
		total += v
	}

	plan, err := planner.Plan(orders)
	require.NoError(t, err)

	delivered := 0.0
	for _, tr := range plan.Trips {
		delivered += tr.Volume
	}
	assert.InDelta(t, total, delivered, 1e-9)
}

func Test_DispatchPlanner_NeverMixesPoolsInOneTrip(t *testing.T) {
	settings := routing.DefaultSettings()
	planner, err := routing.NewDispatchPlanner(settings, rand.New(rand.NewSource(3)), nil)
	require.NoError(t, err)

	point := testPoint(t, 47.63, 19.07)
	specA := testMaterial(t, "C25/30", 16, "F3", "XC2")
	specB := testMaterial(t, "C30/37", 16, "F3", "XC2")

	// Two pools of pairable remainders: a cross-pool pairing would waste
	// less capacity, but compatibility must win.
	orders := []*order.Order{
		testOrder(t, 1, 5, point, specA),
		testOrder(t, 2, 6, point, specB),
		testOrder(t, 3, 5, point, specA),
		testOrder(t, 4, 6, point, specB),
	}

	poolOf := map[int]string{1: "A", 2: "B", 3: "A", 4: "B"}

	plan, err := planner.Plan(orders)
	require.NoError(t, err)

	for _, tr := range plan.Trips {
		if len(tr.Stops) < 2 {
			continue
		}
		assert.Equal(t, poolOf[tr.Stops[0]], poolOf[tr.Stops[1]],
			"trip %v mixes material pools", tr.Stops)
	}
}

func Test_DispatchPlanner_SameSeedSamePlan(t *testing.T) {
	settings := routing.DefaultSettings()

	point := testPoint(t, 47.63, 19.07)
	spec := testMaterial(t, "C25/30", 16, "F3", "XC2")

	orders := make([]*order.Order, 0, 12)
	for i := 0; i < 12; i++ {
		orders = append(orders, testOrder(t, i+1, float64(i%10)+1.5, point, spec))
	}

	const seed = 4242

	plannerA, err := routing.NewDispatchPlanner(settings, rand.New(rand.NewSource(seed)), nil)
	require.NoError(t, err)
	planA, err := plannerA.Plan(orders)
	require.NoError(t, err)

	plannerB, err := routing.NewDispatchPlanner(settings, rand.New(rand.NewSource(seed)), nil)
	require.NoError(t, err)
	planB, err := plannerB.Plan(orders)
	require.NoError(t, err)

	assert.Equal(t, planA, planB)
}

func Test_DispatchPlanner_RejectsNilOrder(t *testing.T) {
	planner, err := routing.NewDispatchPlanner(routing.DefaultSettings(), rand.New(rand.NewSource(1)), nil)
	require.NoError(t, err)

	_, err = planner.Plan([]*order.Order{nil})

	assert.Error(t, err)
}

func Test_DispatchPlanner_EmptyOrdersYieldEmptyPlan(t *testing.T) {
	planner, err := routing.NewDispatchPlanner(routing.DefaultSettings(), rand.New(rand.NewSource(1)), nil)
	require.NoError(t, err)

	plan, err := planner.Plan(nil)
	require.NoError(t, err)

	assert.Empty(t, plan.Trips)
	assert.Empty(t, plan.Fleet)
}

func Test_DispatchPlanner_SharedTripsRespectCapacityAndLifespan(t *testing.T) {
	settings := routing.DefaultSettings()
	planner, err := routing.NewDispatchPlanner(settings, rand.New(rand.NewSource(17)), nil)
	require.NoError(t, err)

	spec := testMaterial(t, "C25/30", 16, "F3", "XC2")
	orders := make([]*order.Order, 0, 10)
	for i := 0; i < 10; i++ {
		lat := 47.55 + float64(i)*0.02
		orders = append(orders, testOrder(t, i+1, 3.5+float64(i%4), testPoint(t, lat, 19.1), spec))
	}

	plan, err := planner.Plan(orders)
	require.NoError(t, err)

	for _, tr := range plan.Trips {
		assert.LessOrEqual(t, tr.Volume, settings.CapacityOf(tr.TruckType)+1e-9)
		if tr.RouteType == trip.Shared {
			assert.Len(t, tr.Stops, 2)
		}
	}
}
