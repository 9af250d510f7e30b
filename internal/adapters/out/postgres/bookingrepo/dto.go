// Package bookingrepo provides data transfer objects and mapping functions
// for booking persistence. This package implements the repository pattern for
// the booking domain aggregate, handling the conversion between domain
// entities and database representations.
package bookingrepo

import (
	"time"

	"shipment/internal/core/domain/model/booking"
	"shipment/internal/core/domain/model/courier"
	"shipment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents the database structure for persisting booking
// aggregates. The idempotency key carries a unique index so that a retried
// submission cannot insert a second row for the same client token.
type BookingDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdempotencyKey    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Pickup            string
	Delivery          string
	Courier           string
	Price             float64
	Status            string `gorm:"index"`
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
}

// TableName specifies the database table name for booking entities.
// Overrides GORM's default naming convention to use "bookings".
func (BookingDTO) TableName() string {
	return "bookings"
}

// fromDomain converts a booking domain aggregate to its database representation.
func fromDomain(aggregate *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:                aggregate.ID().Bytes(),
		IdempotencyKey:    aggregate.IdempotencyKey().Bytes(),
		Pickup:            aggregate.Pickup().String(),
		Delivery:          aggregate.Delivery().String(),
		Courier:           string(aggregate.Courier()),
		Price:             aggregate.Price(),
		Status:            aggregate.Status().String(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a booking domain aggregate.
// Reconstructs the complete aggregate including status and the optional
// estimated delivery using RestoreBooking.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	key, err := kernel.UUIDFromBytes(dto.IdempotencyKey[:])
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewAddress(dto.Pickup)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewAddress(dto.Delivery)
	if err != nil {
		return nil, err
	}

	courierID, err := courier.ParseID(dto.Courier)
	if err != nil {
		return nil, err
	}

	status, err := booking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id, key, pickup, delivery, courierID,
		dto.Price, status, dto.EstimatedDelivery, dto.CreatedAt,
	)
}
