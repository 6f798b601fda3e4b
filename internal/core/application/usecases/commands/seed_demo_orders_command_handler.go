package commands

import (
	"context"
	"math/rand"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// demoVolumesM3 are the base order sizes the generator draws from, chosen to
// exercise every packing path: full big loads, full medium loads, multi-truck
// orders and sub-medium remainders.
var demoVolumesM3 = []float64{2, 4, 8, 11, 15, 24}

// demoMaterials is a small catalog of mix specifications so seeded orders
// land in several compatibility pools.
var demoMaterials = []struct {
	strength    string
	dmax        float64
	consistency string
	exposure    string
}{
	{"C16/20", 16, "F2", "XC1"},
	{"C25/30", 16, "F3", "XC2"},
	{"C25/30", 22, "F3", "XC2"},
	{"C30/37", 22, "F4", "XD1"},
}

// SeedDemoOrdersCommandHandler generates synthetic orders scattered around
// the plant.
type SeedDemoOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	rng        *rand.Rand
}

// NewSeedDemoOrdersCommandHandler creates a handler for demo order seeding.
// The random source is injected so seeded datasets are reproducible.
func NewSeedDemoOrdersCommandHandler(uowFactory OrderUoWFactory, rng *rand.Rand) (SeedDemoOrdersCommandHandler, error) {
	if rng == nil {
		return SeedDemoOrdersCommandHandler{}, errs.NewValueIsRequiredError("rng")
	}

	return SeedDemoOrdersCommandHandler{
		uowFactory: uowFactory,
		rng:        rng,
	}, nil
}

// Handle generates and persists the requested number of orders in a single
// transaction. Customer ids continue from the current maximum.
func (h *SeedDemoOrdersCommandHandler) Handle(ctx context.Context, cmd SeedDemoOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	for i := 0; i < cmd.Count(); i++ {
		aggregate, err := h.generateOrder(maxCustomerID + i + 1)
		if err != nil {
			return err
		}

		if err = orderRepo.Add(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *SeedDemoOrdersCommandHandler) generateOrder(customerID int) (*order.Order, error) {
	// Sites within roughly half a degree of the plant, so travel times stay
	// inside the concrete lifespan for most pairings.
	lat := 47.624 + (h.rng.Float64()-0.5)
	lon := 19.0655 + (h.rng.Float64()-0.5)

	coordinates, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return nil, err
	}

	volume := demoVolumesM3[h.rng.Intn(len(demoVolumesM3))] + h.rng.Float64()

	mat := demoMaterials[h.rng.Intn(len(demoMaterials))]
	material, err := order.NewMaterialSpec(mat.strength, mat.dmax, mat.consistency, mat.exposure)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(kernel.NewUUID(), customerID, coordinates, volume, material, time.Now())
}
