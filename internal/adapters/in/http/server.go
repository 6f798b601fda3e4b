// Package http is the inbound HTTP adapter: echo handlers translating the
// JSON API to application commands and queries.
package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	seedOrdersHandler  commands.SeedDemoOrdersCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	computePlanHandler  queries.ComputeDispatchPlanQueryHandler

	planCache *jobs.PlanCache
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	seedOrdersHandler commands.SeedDemoOrdersCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	computePlanHandler queries.ComputeDispatchPlanQueryHandler,
	planCache *jobs.PlanCache,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		seedOrdersHandler:   seedOrdersHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		computePlanHandler:  computePlanHandler,
		planCache:           planCache,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/seed", s.SeedOrders)
	api.PUT("/schedule", s.RecomputeSchedule)
	api.GET("/schedule", s.GetSchedule)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - lists the order book.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		row := Order{
			ID:          o.ID.String(),
			CustomerID:  o.CustomerID,
			Volume:      o.Volume,
			Strength:    o.Strength,
			Dmax:        o.Dmax,
			Consistency: o.Consistency,
			Exposure:    o.Exposure,
		}
		if !math.IsNaN(o.Latitude) && !math.IsNaN(o.Longitude) {
			lat, lon := o.Latitude, o.Longitude
			row.Latitude = &lat
			row.Longitude = &lon
		}
		response[i] = row
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.Country, req.PostalCode,
		req.Volume, req.Strength, req.Dmax, req.Consistency, req.Exposure)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrValueIsInvalid) || errors.Is(handleErr, errs.ErrValueIsRequired) {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order data: " + handleErr.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// SeedOrders handles POST /api/v1/orders/seed - generates synthetic orders.
func (s *Server) SeedOrders(ctx echo.Context) error {
	var req SeedOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSeedDemoOrdersCommand(req.Count)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid seed request: " + err.Error(),
		})
	}

	if handleErr := s.seedOrdersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to seed orders",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// RecomputeSchedule handles PUT /api/v1/schedule - computes a fresh plan,
// caches it and returns it. An optional ?seed= query pins the randomization.
func (s *Server) RecomputeSchedule(ctx echo.Context) error {
	query := queries.NewComputeDispatchPlanQuery()
	if raw := ctx.QueryParam("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid seed parameter",
			})
		}
		query = queries.NewSeededComputeDispatchPlanQuery(seed)
	}

	resp, err := s.computePlanHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute schedule",
		})
	}

	s.planCache.Set(resp)

	return ctx.JSON(http.StatusOK, Schedule{
		Trips:       resp.Plan.Trips,
		Stats:       resp.Stats,
		GeneratedAt: time.Now().Format(time.RFC3339),
	})
}

// GetSchedule handles GET /api/v1/schedule - returns the last computed plan.
func (s *Server) GetSchedule(ctx echo.Context) error {
	resp, updatedAt, ok := s.planCache.Get()
	if !ok {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "No schedule computed yet",
		})
	}

	return ctx.JSON(http.StatusOK, Schedule{
		Trips:       resp.Plan.Trips,
		Stats:       resp.Stats,
		GeneratedAt: updatedAt.Format(time.RFC3339),
	})
}
