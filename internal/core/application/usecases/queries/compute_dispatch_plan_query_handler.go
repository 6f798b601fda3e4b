package queries

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services/routing"
)

// OrderSource loads the validated order aggregates the planner runs over.
// Unlike the other read-side handlers this query cannot work on a flat
// projection: the routing engine wants constructor-validated domain objects.
type OrderSource interface {
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// ComputeDispatchPlanQueryResponse is a scheduled plan with its statistics.
type ComputeDispatchPlanQueryResponse struct {
	Plan  routing.Plan
	Stats routing.PlanStats
}

// ComputeDispatchPlanQueryHandler runs the routing engine over the current
// order book. Plans are computed on demand and never persisted; the order
// book is the single source of truth.
type ComputeDispatchPlanQueryHandler struct {
	orders   OrderSource
	settings routing.Settings
	logger   *slog.Logger
}

// NewComputeDispatchPlanQueryHandler creates a handler for plan computation.
// The logger receives lifespan warnings for Direct trips; nil disables them.
func NewComputeDispatchPlanQueryHandler(
	orders OrderSource,
	settings routing.Settings,
	logger *slog.Logger,
) (ComputeDispatchPlanQueryHandler, error) {
	if err := settings.Validate(); err != nil {
		return ComputeDispatchPlanQueryHandler{}, err
	}

	return ComputeDispatchPlanQueryHandler{
		orders:   orders,
		settings: settings,
		logger:   logger,
	}, nil
}

// Handle loads the order book and computes a scheduled plan with statistics.
func (h ComputeDispatchPlanQueryHandler) Handle(
	ctx context.Context,
	query ComputeDispatchPlanQuery,
) (ComputeDispatchPlanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ComputeDispatchPlanQueryResponse{}, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return ComputeDispatchPlanQueryResponse{}, err
	}

	seed := time.Now().UnixNano()
	if query.Seed() != nil {
		seed = *query.Seed()
	}

	planner, err := routing.NewDispatchPlanner(h.settings, rand.New(rand.NewSource(seed)), h.logger)
	if err != nil {
		return ComputeDispatchPlanQueryResponse{}, err
	}

	plan, err := planner.Plan(orders)
	if err != nil {
		return ComputeDispatchPlanQueryResponse{}, err
	}

	return ComputeDispatchPlanQueryResponse{
		Plan:  plan,
		Stats: routing.ComputeStats(plan, h.settings),
	}, nil
}
