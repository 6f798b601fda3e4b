package routing

// RouteSequencer picks the driving order for a two-customer trip: whichever
// of plant→A→B and plant→B→A is shorter in total. Ties keep the given order.
// Trips never exceed two stops by construction, so no general tour solver is
// needed.
type RouteSequencer struct {
	settings Settings
	distance DistanceModel
}

// NewRouteSequencer creates a sequencer with the given settings.
func NewRouteSequencer(settings Settings) RouteSequencer {
	return RouteSequencer{
		settings: settings,
		distance: NewDistanceModel(settings),
	}
}

// Sequence returns the two stops in driving order.
func (s RouteSequencer) Sequence(a, b LeftoverItem) (first, second LeftoverItem) {
	plantToA := s.distance.Distance(s.settings.Plant, a.Coordinates)
	plantToB := s.distance.Distance(s.settings.Plant, b.Coordinates)
	aToB := s.distance.Distance(a.Coordinates, b.Coordinates)

	if plantToA+aToB <= plantToB+aToB {
		return a, b
	}
	return b, a
}
