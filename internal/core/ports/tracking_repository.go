package ports

import (
	"context"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the append-only
// shipment tracking history.
type TrackingRepository interface {
	// Add appends a tracking event to a booking's history.
	Add(ctx context.Context, event *tracking.Event) error

	// GetForBooking retrieves a booking's full history ordered by event
	// time, oldest first. Returns an empty slice for a booking with no
	// events yet.
	GetForBooking(ctx context.Context, bookingID kernel.UUID) ([]*tracking.Event, error)

	// GetLatestForBooking retrieves the most recent tracking event for a
	// booking. Returns an ObjectNotFoundError when the booking has no
	// history.
	GetLatestForBooking(ctx context.Context, bookingID kernel.UUID) (*tracking.Event, error)
}
