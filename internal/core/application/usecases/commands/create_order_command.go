package commands

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCountryIsRequired    = errors.New("country is required")
	ErrPostalCodeIsRequired = errors.New("postal code is required")
	ErrVolumeIsInvalid      = errors.New("volume must be a positive finite number")
)

// CreateOrderCommand represents a request to register a new concrete order.
// The delivery site is given as country plus postal code; the handler
// resolves it to coordinates before persisting.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "HU", "1117", 9.5,
//	    "C25/30", 16, "F3", "XC2")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	country    string
	postalCode string
	volume     float64

	strength    string
	dmax        float64
	consistency string
	exposure    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new concrete order.
// Validates identity, address fields, volume and the material spec fields.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	country string,
	postalCode string,
	volume float64,
	strength string,
	dmax float64,
	consistency string,
	exposure string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setAddress(country, postalCode),
		orderCommand.setVolume(volume),
		orderCommand.setMaterial(strength, dmax, consistency, exposure),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order record.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Country returns the delivery site country code.
func (c CreateOrderCommand) Country() string {
	return c.country
}

// PostalCode returns the delivery site postal code.
func (c CreateOrderCommand) PostalCode() string {
	return c.postalCode
}

// Volume returns the ordered amount in cubic meters.
func (c CreateOrderCommand) Volume() float64 {
	return c.volume
}

// Strength returns the concrete strength class label.
func (c CreateOrderCommand) Strength() string {
	return c.strength
}

// Dmax returns the maximum aggregate grain size in millimeters.
func (c CreateOrderCommand) Dmax() float64 {
	return c.dmax
}

// Consistency returns the consistency class label.
func (c CreateOrderCommand) Consistency() string {
	return c.consistency
}

// Exposure returns the exposure class label.
func (c CreateOrderCommand) Exposure() string {
	return c.exposure
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setAddress(country, postalCode string) error {
	if country == "" {
		return ErrCountryIsRequired
	}
	if postalCode == "" {
		return ErrPostalCodeIsRequired
	}

	c.country = country
	c.postalCode = postalCode
	return nil
}

func (c *CreateOrderCommand) setVolume(volume float64) error {
	if math.IsNaN(volume) || math.IsInf(volume, 0) || volume <= 0 {
		return ErrVolumeIsInvalid
	}

	c.volume = volume
	return nil
}

func (c *CreateOrderCommand) setMaterial(strength string, dmax float64, consistency, exposure string) error {
	if strength == "" || consistency == "" || exposure == "" {
		return fmt.Errorf("material spec fields are required")
	}
	if dmax <= 0 {
		return fmt.Errorf("Dmax must be greater than 0")
	}

	c.strength = strength
	c.dmax = dmax
	c.consistency = consistency
	c.exposure = exposure
	return nil
}
