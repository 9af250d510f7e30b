// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, and the outbound
// gateways. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"shipment/internal/core/domain/model/booking"
	"shipment/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage.
	// The booking must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no booking has that ID.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetByIdempotencyKey retrieves the booking created by a previous
	// submission carrying the same client-generated key. Returns an
	// ObjectNotFoundError when the key has never been used; callers treat
	// that as "safe to create".
	GetByIdempotencyKey(ctx context.Context, key kernel.UUID) (*booking.Booking, error)

	// GetAllConfirmed retrieves all bookings in Confirmed status.
	// Used by the tracking advancement job to find active shipments.
	GetAllConfirmed(ctx context.Context) ([]*booking.Booking, error)
}
