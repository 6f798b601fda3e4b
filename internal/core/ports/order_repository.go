package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its record identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order of the current dispatch day in
	// insertion order. The routing engine plans over this set.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// MaxCustomerID returns the highest customer id on record, or zero
	// when no orders exist. New customers get the next sequential id.
	MaxCustomerID(ctx context.Context) (int, error)
}
