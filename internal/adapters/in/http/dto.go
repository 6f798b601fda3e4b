package http

import (
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/core/domain/services/routing"
)

// Error is the uniform JSON error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the POST /api/v1/orders body. The delivery site is
// given as a postal address and geocoded server-side.
type CreateOrderRequest struct {
	Country     string  `json:"country"`
	PostalCode  string  `json:"postal_code"`
	Volume      float64 `json:"volume"`
	Strength    string  `json:"strength"`
	Dmax        float64 `json:"dmax"`
	Consistency string  `json:"consistency"`
	Exposure    string  `json:"exposure"`
}

// SeedOrdersRequest is the POST /api/v1/orders/seed body.
type SeedOrdersRequest struct {
	Count int `json:"count"`
}

// Order is one order row of the GET /api/v1/orders response. Coordinates
// are omitted for orders whose address never resolved.
type Order struct {
	ID          string   `json:"id"`
	CustomerID  int      `json:"customer_id"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Volume      float64  `json:"volume"`
	Strength    string   `json:"strength"`
	Dmax        float64  `json:"dmax"`
	Consistency string   `json:"consistency"`
	Exposure    string   `json:"exposure"`
}

// Schedule is the dispatch plan response of the schedule endpoints.
type Schedule struct {
	Trips       []trip.Trip       `json:"trips"`
	Stats       routing.PlanStats `json:"stats"`
	GeneratedAt string            `json:"generated_at"`
}
