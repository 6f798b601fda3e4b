package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the postal address to coordinates, assigns the next sequential
// customer id and persists the order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	geocoder   ports.Geocoder
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a Geocoder
// for address resolution.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, geocoder ports.Geocoder) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes the order creation command.
// Geocoding happens before the transaction opens; an unreachable provider or
// a postal code unknown to it fails the command without touching the
// database.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	coordinates, err := h.geocoder.Resolve(ctx, cmd.Country(), cmd.PostalCode())
	if err != nil {
		return err
	}
	if !coordinates.IsResolved() {
		return errs.NewValueIsInvalidError("postal code")
	}

	material, err := order.NewMaterialSpec(cmd.Strength(), cmd.Dmax(), cmd.Consistency(), cmd.Exposure())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	maxCustomerID, err := orderRepo.MaxCustomerID(ctx)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), maxCustomerID+1, coordinates,
		cmd.Volume(), material, time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
