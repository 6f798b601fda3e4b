package order_test

import (
	"math"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMaterial(t *testing.T) order.MaterialSpec {
	t.Helper()
	spec, err := order.NewMaterialSpec("C25/30", 32, "F3", "XC2")
	require.NoError(t, err)
	return spec
}

func TestNewOrder(t *testing.T) {
	coords, err := kernel.NewGeoPoint(47.5, 19.0)
	require.NoError(t, err)
	day := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)

	t.Run("valid_order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 7, coords, 12.5, validMaterial(t), day)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, 7, o.CustomerID())
		assert.InEpsilon(t, 12.5, o.Volume(), 1e-9)
		assert.Equal(t, "C25/30", o.Material().Strength())
		assert.Equal(t, day, o.RequestedAt())
	})

	t.Run("unresolved_coordinates_are_allowed", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 8, kernel.NewUnresolvedGeoPoint(), 5.0, validMaterial(t), day)

		require.NoError(t, err)
		assert.False(t, o.Coordinates().IsResolved())
	})

	t.Run("invalid_customer_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), 0, coords, 5.0, validMaterial(t), day)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), -3, coords, 5.0, validMaterial(t), day)
		require.Error(t, err)
	})

	t.Run("invalid_volume", func(t *testing.T) {
		for _, volume := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := order.NewOrder(kernel.NewUUID(), 1, coords, volume, validMaterial(t), day)
			require.Error(t, err, "volume %v must be rejected", volume)
		}
	})

	t.Run("invalid_id", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := order.NewOrder(zeroID, 1, coords, 5.0, validMaterial(t), day)
		require.Error(t, err)
	})

	t.Run("unconstructed_material_spec", func(t *testing.T) {
		var spec order.MaterialSpec
		_, err := order.NewOrder(kernel.NewUUID(), 1, coords, 5.0, spec, day)
		require.ErrorIs(t, err, order.ErrMaterialSpecIsNotConstructed)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil_order", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero_value_order", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	coords, _ := kernel.NewGeoPoint(50, 10)
	day := time.Now()

	a, err := order.NewOrder(kernel.NewUUID(), 1, coords, 3.0, validMaterial(t), day)
	require.NoError(t, err)
	b, err := order.NewOrder(kernel.NewUUID(), 1, coords, 3.0, validMaterial(t), day)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b)) // same customer, different record identity
	assert.False(t, a.IsEqual(nil))
}

func TestNewMaterialSpec(t *testing.T) {
	t.Run("valid_spec", func(t *testing.T) {
		spec, err := order.NewMaterialSpec("C30/37", 16, "F4", "XF1")

		require.NoError(t, err)
		assert.Equal(t, "C30/37", spec.Strength())
		assert.InEpsilon(t, 16.0, spec.Dmax(), 1e-9)
		assert.Equal(t, "F4", spec.Consistency())
		assert.Equal(t, "XF1", spec.Exposure())
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := order.NewMaterialSpec("", 16, "F4", "XF1")
		require.ErrorIs(t, err, order.ErrStrengthIsRequired)

		_, err = order.NewMaterialSpec("C30/37", 16, "", "XF1")
		require.ErrorIs(t, err, order.ErrConsistencyIsRequired)

		_, err = order.NewMaterialSpec("C30/37", 16, "F4", "")
		require.ErrorIs(t, err, order.ErrExposureIsRequired)
	})

	t.Run("invalid_dmax", func(t *testing.T) {
		_, err := order.NewMaterialSpec("C30/37", 0, "F4", "XF1")
		require.Error(t, err)
	})

	t.Run("aggregated_errors", func(t *testing.T) {
		_, err := order.NewMaterialSpec("", -1, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrStrengthIsRequired)
		require.ErrorIs(t, err, order.ErrConsistencyIsRequired)
		require.ErrorIs(t, err, order.ErrExposureIsRequired)
	})
}
