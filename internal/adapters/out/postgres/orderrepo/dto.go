// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Coordinates are nullable: an order whose address never resolved is stored
// with NULL coordinates and rehydrated as an unresolved point.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  int       `gorm:"uniqueIndex"`
	Latitude    *float64
	Longitude   *float64
	Volume      float64
	Material    MaterialDTO `gorm:"embedded"`
	RequestedAt time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// MaterialDTO represents the embedded concrete mix specification within the
// order table. The fields form the truck-sharing compatibility key.
type MaterialDTO struct {
	Strength    string
	Dmax        float64
	Consistency string
	Exposure    string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var latitude, longitude *float64
	if coordinates := aggregate.Coordinates(); coordinates.IsResolved() {
		lat := coordinates.Latitude()
		lon := coordinates.Longitude()
		latitude, longitude = &lat, &lon
	}

	material := aggregate.Material()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID(),
		Latitude:   latitude,
		Longitude:  longitude,
		Volume:     aggregate.Volume(),
		Material: MaterialDTO{
			Strength:    material.Strength(),
			Dmax:        material.Dmax(),
			Consistency: material.Consistency(),
			Exposure:    material.Exposure(),
		},
		RequestedAt: aggregate.RequestedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so persistence
// cannot bypass domain validation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coordinates := kernel.NewUnresolvedGeoPoint()
	if dto.Latitude != nil && dto.Longitude != nil {
		coordinates, err = kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
	}

	material, err := order.NewMaterialSpec(
		dto.Material.Strength,
		dto.Material.Dmax,
		dto.Material.Consistency,
		dto.Material.Exposure,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.CustomerID, coordinates, dto.Volume, material, dto.RequestedAt)
}
