package routing

import (
	"math/rand"
	"sort"

	"dispatch/internal/core/domain/model/order"
)

// PriorityOrderer decides the processing order of a pool.
//
// With probability PriorityProbability the pool enters "priority mode":
// large orders (volume at or above the large-order threshold) go first,
// largest first, with small orders appended in their original relative
// order. Otherwise the whole pool is shuffled uniformly.
//
// The random source is injected so runs are reproducible under a fixed seed;
// the orderer never touches a global generator.
type PriorityOrderer struct {
	settings Settings
	rng      *rand.Rand
}

// NewPriorityOrderer creates an orderer drawing from the given source.
func NewPriorityOrderer(settings Settings, rng *rand.Rand) PriorityOrderer {
	return PriorityOrderer{settings: settings, rng: rng}
}

// Prioritize returns a new slice with the pool's processing order applied.
// The input slice is not modified. Exactly one uniform draw is consumed for
// the branch decision; the shuffle branch consumes further draws.
func (p PriorityOrderer) Prioritize(pool []*order.Order) []*order.Order {
	large := make([]*order.Order, 0, len(pool))
	small := make([]*order.Order, 0, len(pool))
	for _, o := range pool {
		if o.Volume() >= p.settings.LargeOrderThresholdM3 {
			large = append(large, o)
		} else {
			small = append(small, o)
		}
	}

	isPriorityMode := p.rng.Float64() < p.settings.PriorityProbability

	if isPriorityMode {
		sort.SliceStable(large, func(i, j int) bool {
			return large[i].Volume() > large[j].Volume()
		})
		return append(large, small...)
	}

	combined := append(large, small...)
	p.rng.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})
	return combined
}
