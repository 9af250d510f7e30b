package ports

import (
	"context"

	"shipment/internal/core/domain/model/booking"
)

// CarrierGateway is the outbound contract to the courier partner's booking
// API. Implementations must propagate transport and remote failures to the
// caller; a booking is only confirmed once the carrier acknowledged it.
type CarrierGateway interface {
	// Confirm registers the booking with the carrier. Any error means the
	// shipment was not accepted and nothing must be persisted.
	Confirm(ctx context.Context, b *booking.Booking) error
}
