package trip

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// TruckClass is one of the three mixer-truck capacity tiers of the fleet.
// Capacities are configuration (see routing.Settings), not properties of the
// enum, so multiple engine configurations can coexist.
type TruckClass int

const (
	// UnknownTruckClass represents an invalid or undefined truck class.
	UnknownTruckClass TruckClass = iota

	// SmallTruck is the smallest mixer tier (3.0 m³ by default).
	SmallTruck

	// MediumTruck is the mid mixer tier (7.0 m³ by default).
	MediumTruck

	// BigTruck is the largest mixer tier (12.0 m³ by default).
	BigTruck
)

// getTruckClassStrings maps truck classes to their wire names.
func getTruckClassStrings() map[TruckClass]string {
	return map[TruckClass]string{
		UnknownTruckClass: "Unknown",
		SmallTruck:        "Small_Truck",
		MediumTruck:       "Medium_Truck",
		BigTruck:          "Big_Truck",
	}
}

// getValidTruckClassStrings maps only valid truck classes to their wire names.
func getValidTruckClassStrings() map[TruckClass]string {
	//nolint:exhaustive // UnknownTruckClass is intentionally excluded
	return map[TruckClass]string{
		SmallTruck:  "Small_Truck",
		MediumTruck: "Medium_Truck",
		BigTruck:    "Big_Truck",
	}
}

// TruckClassFromString parses a wire name into a TruckClass.
func TruckClassFromString(s string) (TruckClass, error) {
	for tc, name := range getValidTruckClassStrings() {
		if name == s {
			return tc, nil
		}
	}
	return UnknownTruckClass, errs.NewValueIsInvalidErrorWithCause("truck class",
		fmt.Errorf("%q is not a valid truck class", s))
}

// Validate checks that the truck class is one of the valid values.
func (t TruckClass) Validate() error {
	if _, ok := getValidTruckClassStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("truck class",
			fmt.Errorf("%d is not a valid truck class", t))
	}
	return nil
}

// String returns the wire name of the truck class.
func (t TruckClass) String() string {
	if s, ok := getTruckClassStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// MarshalJSON serializes the truck class as its wire name.
func (t TruckClass) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UnmarshalJSON parses a truck class from its wire name.
func (t *TruckClass) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errs.NewValueIsInvalidError("truck class")
	}

	parsed, err := TruckClassFromString(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
