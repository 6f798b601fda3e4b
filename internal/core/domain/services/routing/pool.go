package routing

import (
	"dispatch/internal/core/domain/model/order"
)

// PoolKey identifies a set of orders whose concrete can be mixed in the same
// drum. Exposure is left empty under PoolKeyNoExposure so that keys compare
// equal across exposure classes.
type PoolKey struct {
	Strength    string
	Dmax        float64
	Consistency string
	Exposure    string
}

// Pool is an ordered group of material-compatible orders. The backing slice
// preserves original input order so the priority stage starts from a
// deterministic sequence.
type Pool struct {
	Key    PoolKey
	Orders []*order.Order
}

// poolKeyFor derives the compatibility key of an order under the given mode.
func poolKeyFor(o *order.Order, mode PoolKeyMode) PoolKey {
	material := o.Material()
	key := PoolKey{
		Strength:    material.Strength(),
		Dmax:        material.Dmax(),
		Consistency: material.Consistency(),
	}
	if mode == PoolKeyFull {
		key.Exposure = material.Exposure()
	}
	return key
}

// PartitionByCompatibility splits orders into pools of identical material
// compatibility. The partition is stable and exact: every order lands in
// exactly one pool, orders keep their relative input order inside a pool, and
// pools are returned in order of first appearance.
func PartitionByCompatibility(orders []*order.Order, mode PoolKeyMode) []Pool {
	pools := make([]Pool, 0)
	index := make(map[PoolKey]int)

	for _, o := range orders {
		key := poolKeyFor(o, mode)
		i, ok := index[key]
		if !ok {
			i = len(pools)
			index[key] = i
			pools = append(pools, Pool{Key: key})
		}
		pools[i].Orders = append(pools[i].Orders, o)
	}

	return pools
}
