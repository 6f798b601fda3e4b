package queries

import (
	"context"
	"database/sql"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
)

// GetAllOrdersQueryHandler lists the order book straight from the database.
// Coordinates are stored as nullable columns; NULL maps to NaN in the
// response, matching the unresolved-point convention of the domain.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Results are sorted by customer id for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			latitude,
			longitude,
			volume,
			strength,
			dmax,
			consistency,
			exposure
		FROM orders
		ORDER BY customer_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var id uuid.UUID
		var latitude, longitude sql.NullFloat64

		err = rows.Scan(
			&id,
			&orderResp.CustomerID,
			&latitude,
			&longitude,
			&orderResp.Volume,
			&orderResp.Strength,
			&orderResp.Dmax,
			&orderResp.Consistency,
			&orderResp.Exposure,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderResp.Latitude = math.NaN()
		orderResp.Longitude = math.NaN()
		if latitude.Valid && longitude.Valid {
			orderResp.Latitude = latitude.Float64
			orderResp.Longitude = longitude.Float64
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
