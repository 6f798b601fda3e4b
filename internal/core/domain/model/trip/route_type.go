package trip

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// RouteType tags how a trip was constructed by the routing engine.
//
//	Direct   — single customer, full truck-capacity load
//	Shared   — two customers, combined sub-capacity remainders
//	Leftover — single customer, sub-capacity remainder with no partner
type RouteType int

const (
	// UnknownRouteType represents an invalid or undefined route type.
	UnknownRouteType RouteType = iota

	// Direct is a single-customer trip carrying a full truck-capacity load.
	Direct

	// Shared is a two-customer trip combining two sub-capacity remainders.
	Shared

	// Leftover is a single-customer trip carrying a remainder that found
	// no feasible pairing partner.
	Leftover
)

// getRouteTypeStrings maps route types to their wire names.
func getRouteTypeStrings() map[RouteType]string {
	return map[RouteType]string{
		UnknownRouteType: "Unknown",
		Direct:           "Direct",
		Shared:           "Shared",
		Leftover:         "Leftover",
	}
}

// getValidRouteTypeStrings maps only valid route types to their wire names.
func getValidRouteTypeStrings() map[RouteType]string {
	//nolint:exhaustive // UnknownRouteType is intentionally excluded
	return map[RouteType]string{
		Direct:   "Direct",
		Shared:   "Shared",
		Leftover: "Leftover",
	}
}

// RouteTypeFromString parses a wire name into a RouteType.
func RouteTypeFromString(s string) (RouteType, error) {
	for rt, name := range getValidRouteTypeStrings() {
		if name == s {
			return rt, nil
		}
	}
	return UnknownRouteType, errs.NewValueIsInvalidErrorWithCause("route type",
		fmt.Errorf("%q is not a valid route type", s))
}

// Validate checks that the route type is one of the valid values.
func (r RouteType) Validate() error {
	if _, ok := getValidRouteTypeStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("route type",
			fmt.Errorf("%d is not a valid route type", r))
	}
	return nil
}

// String returns the wire name of the route type.
func (r RouteType) String() string {
	if s, ok := getRouteTypeStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// MarshalJSON serializes the route type as its wire name.
func (r RouteType) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("%q", r.String())), nil
}

// UnmarshalJSON parses a route type from its wire name.
func (r *RouteType) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errs.NewValueIsInvalidError("route type")
	}

	parsed, err := RouteTypeFromString(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}
