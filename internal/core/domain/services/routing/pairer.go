package routing

import (
	"math"
	"sort"

	"dispatch/internal/core/domain/model/trip"
)

// LeftoverPairer combines deferred volume fragments into two-stop Shared
// trips, or dispatches them alone as Leftover trips when no feasible partner
// exists.
//
// The matching is a single greedy pass over the fragments in descending
// volume order: for each unconsumed item the feasible partner with the lowest
// score wins, consumed items are skipped later, and earlier pairings are
// never revisited. This specific first-fit behavior is the contract; it is
// deliberately not an optimal matching.
type LeftoverPairer struct {
	settings  Settings
	distance  DistanceModel
	sequencer RouteSequencer
}

// NewLeftoverPairer creates a pairer with the given settings.
func NewLeftoverPairer(settings Settings) LeftoverPairer {
	return LeftoverPairer{
		settings:  settings,
		distance:  NewDistanceModel(settings),
		sequencer: NewRouteSequencer(settings),
	}
}

// pairing holds the best candidate found while scanning partners for one item.
type pairing struct {
	partnerIdx int
	class      trip.TruckClass
	first      LeftoverItem
	second     LeftoverItem
	duration   float64
}

// Pair consumes the leftover fragments of one pool and returns the resulting
// Shared and Leftover trips in generation order. The input slice is not
// modified.
func (p LeftoverPairer) Pair(items []LeftoverItem) []trip.Trip {
	sorted := make([]LeftoverItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Volume > sorted[j].Volume
	})

	trips := make([]trip.Trip, 0, len(sorted))
	consumed := make([]bool, len(sorted))

	for i, itemA := range sorted {
		if consumed[i] {
			continue
		}

		best, found := p.findBestPartner(sorted, consumed, i)
		if found {
			itemB := sorted[best.partnerIdx]
			trips = append(trips, trip.Trip{
				TruckType:     best.class,
				Stops:         []int{best.first.CustomerID, best.second.CustomerID},
				Volume:        itemA.Volume + itemB.Volume,
				DurationHours: best.duration,
				RouteType:     trip.Shared,
			})
			consumed[i] = true
			consumed[best.partnerIdx] = true
			continue
		}

		trips = append(trips, p.soloTrip(itemA))
		consumed[i] = true
	}

	return trips
}

// findBestPartner scans all unconsumed partners of sorted[i] and returns the
// feasible pairing with the lowest score.
//
// Feasibility is hard here, unlike for Direct trips: a pairing whose
// second-stop concrete age would exceed the lifespan ceiling is excluded,
// because solo dispatch is always available as a fallback.
func (p LeftoverPairer) findBestPartner(sorted []LeftoverItem, consumed []bool, i int) (pairing, bool) {
	itemA := sorted[i]

	best := pairing{partnerIdx: -1}
	bestScore := math.Inf(1)

	for j, itemB := range sorted {
		if i == j || consumed[j] {
			continue
		}

		combined := itemA.Volume + itemB.Volume
		if combined > p.settings.BigCapacity {
			continue
		}

		class, capacity := p.settings.TruckFor(combined)

		first, second := p.sequencer.Sequence(itemA, itemB)

		legOut := p.distance.Distance(p.settings.Plant, first.Coordinates)
		tOut := p.distance.TravelTime(legOut)
		legBetween := p.distance.Distance(first.Coordinates, second.Coordinates)
		tBetween := p.distance.TravelTime(legBetween)
		legHome := p.distance.Distance(second.Coordinates, p.settings.Plant)
		tHome := p.distance.TravelTime(legHome)

		ageAtSecondStop := p.settings.LoadingHours + tOut + p.settings.ServiceHours +
			tBetween + p.settings.ServiceHours
		if ageAtSecondStop > p.settings.MaxConcreteLifespanHours {
			continue
		}

		waste := capacity - combined
		score := legBetween + waste*p.settings.WastePenaltyPerM3

		if score < bestScore {
			bestScore = score
			best = pairing{
				partnerIdx: j,
				class:      class,
				first:      first,
				second:     second,
				duration: p.settings.LoadingHours + tOut + p.settings.ServiceHours +
					tBetween + p.settings.ServiceHours + tHome,
			}
		}
	}

	return best, best.partnerIdx != -1
}

// soloTrip dispatches an unpaired fragment alone, shaped like a single-stop
// Direct trip but tagged Leftover and billed at the tier the fragment fits.
func (p LeftoverPairer) soloTrip(item LeftoverItem) trip.Trip {
	class, _ := p.settings.TruckFor(item.Volume)

	legOut := p.distance.Distance(p.settings.Plant, item.Coordinates)
	tOut := p.distance.TravelTime(legOut)
	duration := p.settings.LoadingHours + tOut + p.settings.ServiceHours + tOut

	return trip.Trip{
		TruckType:     class,
		Stops:         []int{item.CustomerID},
		Volume:        item.Volume,
		DurationHours: duration,
		RouteType:     trip.Leftover,
	}
}
