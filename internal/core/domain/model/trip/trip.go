package trip

// Trip is one planned truck departure from the plant.
//
// Stops holds one customer id for Direct and Leftover trips and exactly two
// for Shared trips, in driving order. ConcreteAgeAtFinish is only set for
// Direct trips, where a lifespan breach is reported instead of blocking the
// dispatch; for Shared trips the lifespan check is a hard constraint applied
// during pairing, so no age is carried.
type Trip struct {
	TruckType           TruckClass `json:"truck_type"`
	Stops               []int      `json:"stops"`
	Volume              float64    `json:"volume"`
	DurationHours       float64    `json:"duration"`
	ConcreteAgeAtFinish *float64   `json:"concrete_age_at_finish,omitempty"`
	RouteType           RouteType  `json:"route_type"`
	Schedule            *Schedule  `json:"schedule,omitempty"`
}

// ExceedsLifespan reports whether the recorded concrete age exceeds the given
// ceiling. Trips without a recorded age never exceed it.
func (t Trip) ExceedsLifespan(maxHours float64) bool {
	return t.ConcreteAgeAtFinish != nil && *t.ConcreteAgeAtFinish > maxHours
}
