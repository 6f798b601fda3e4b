package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents an immutable ready-mix delivery request.
//
// Invariants:
//   - record id is a valid UUID
//   - customer id is a positive integer, unique per customer
//   - volume is positive and finite (cubic meters)
//   - material spec is constructor-validated
//
// Coordinates may be unresolved (NaN): the routing engine handles those with
// a fallback distance, so they are not a validation failure here.
type Order struct {
	// id is the identity of the persisted order record
	id kernel.UUID

	// customerID identifies the ordering customer
	customerID int

	// coordinates is the delivery site position, possibly unresolved
	coordinates kernel.GeoPoint

	// volume is the ordered amount in cubic meters
	volume float64

	// material is the required concrete mix specification
	material MaterialSpec

	// requestedAt is the delivery day requested by the customer
	requestedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a validated Order. This is the only way (besides
// RestoreOrder for persistence rehydration) to obtain a valid instance.
func NewOrder(
	id kernel.UUID,
	customerID int,
	coordinates kernel.GeoPoint,
	volume float64,
	material MaterialSpec,
	requestedAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCoordinates(coordinates),
		order.setVolume(volume),
		order.setMaterial(material),
	); err != nil {
		return nil, err
	}

	order.requestedAt = requestedAt
	return order, nil
}

// RestoreOrder rebuilds an Order from persistence. It applies the same
// validation as NewOrder.
func RestoreOrder(
	id kernel.UUID,
	customerID int,
	coordinates kernel.GeoPoint,
	volume float64,
	material MaterialSpec,
	requestedAt time.Time,
) (*Order, error) {
	return NewOrder(id, customerID, coordinates, volume, material, requestedAt)
}

// Validate ensures the Order was constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by record identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the persisted record identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() int {
	return o.customerID
}

// Coordinates returns the delivery site position.
func (o *Order) Coordinates() kernel.GeoPoint {
	return o.coordinates
}

// Volume returns the ordered amount in cubic meters.
func (o *Order) Volume() float64 {
	return o.volume
}

// Material returns the required mix specification.
func (o *Order) Material() MaterialSpec {
	return o.material
}

// RequestedAt returns the requested delivery day.
func (o *Order) RequestedAt() time.Time {
	return o.requestedAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID int) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer id",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCoordinates(coordinates kernel.GeoPoint) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	o.coordinates = coordinates
	return nil
}

func (o *Order) setVolume(volume float64) error {
	if math.IsNaN(volume) || math.IsInf(volume, 0) || volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume",
			fmt.Errorf("%v is not a positive finite number", volume))
	}
	o.volume = volume
	return nil
}

func (o *Order) setMaterial(material MaterialSpec) error {
	if err := material.Validate(); err != nil {
		return err
	}
	o.material = material
	return nil
}
