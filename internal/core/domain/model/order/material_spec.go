package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Validation errors for material specifications.
var (
	ErrStrengthIsRequired           = errs.NewValueIsRequiredError("strength")
	ErrConsistencyIsRequired        = errs.NewValueIsRequiredError("consistency")
	ErrExposureIsRequired           = errs.NewValueIsRequiredError("exposure")
	ErrMaterialSpecIsNotConstructed = errors.New(
		"MaterialSpec must be created via NewMaterialSpec constructor")
)

// MaterialSpec is the concrete mix specification of an order.
//
// Two orders may only share a truck when their specifications are compatible;
// the routing engine partitions orders into pools keyed on these fields. The
// values themselves are opaque categorical labels from the plant's catalog.
type MaterialSpec struct { //nolint:recvcheck //using for validation
	strength    string
	dmax        float64
	consistency string
	exposure    string

	guard guard.ConstructorGuard
}

// NewMaterialSpec creates a validated material specification.
// Dmax is the maximum aggregate grain size in millimeters and must be positive.
func NewMaterialSpec(strength string, dmax float64, consistency, exposure string) (MaterialSpec, error) {
	spec := MaterialSpec{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setStrength(strength),
		spec.setDmax(dmax),
		spec.setConsistency(consistency),
		spec.setExposure(exposure),
	); err != nil {
		return MaterialSpec{}, err
	}

	return spec, nil
}

// Validate ensures the spec was created through the constructor.
func (m MaterialSpec) Validate() error {
	return m.guard.Validate(ErrMaterialSpecIsNotConstructed)
}

// Strength returns the strength class label.
func (m MaterialSpec) Strength() string {
	return m.strength
}

// Dmax returns the maximum aggregate grain size in millimeters.
func (m MaterialSpec) Dmax() float64 {
	return m.dmax
}

// Consistency returns the consistency class label.
func (m MaterialSpec) Consistency() string {
	return m.consistency
}

// Exposure returns the exposure class label.
func (m MaterialSpec) Exposure() string {
	return m.exposure
}

func (m *MaterialSpec) setStrength(strength string) error {
	if strength == "" {
		return ErrStrengthIsRequired
	}

	m.strength = strength
	return nil
}

func (m *MaterialSpec) setDmax(dmax float64) error {
	if dmax <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("Dmax",
			fmt.Errorf("%v is not greater than 0", dmax))
	}

	m.dmax = dmax
	return nil
}

func (m *MaterialSpec) setConsistency(consistency string) error {
	if consistency == "" {
		return ErrConsistencyIsRequired
	}

	m.consistency = consistency
	return nil
}

func (m *MaterialSpec) setExposure(exposure string) error {
	if exposure == "" {
		return ErrExposureIsRequired
	}

	m.exposure = exposure
	return nil
}
