package commands

import (
	"context"
	"time"

	"shipment/internal/core/domain/model/booking"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/tracking"
)

// AdvanceShipmentsCommandHandler orchestrates shipment progression.
// Walks every confirmed booking, advances its latest tracking status one
// step along the journey, and appends the resulting event. Delivered
// shipments are left untouched.
//
// Example:
//
//	handler := NewAdvanceShipmentsCommandHandler(uowFactory)
//	cmd := NewAdvanceShipmentsCommand()
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment advancement failed: %w", err)
//	}
//
//	// This would typically be called periodically by a scheduler
type AdvanceShipmentsCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceShipmentsCommandHandler creates a handler for shipment
// progression operations. Requires a UoWFactory for coordinating reads and
// appends across booking and tracking repositories.
func NewAdvanceShipmentsCommandHandler(uowFactory UoWFactory) AdvanceShipmentsCommandHandler {
	return AdvanceShipmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment advancement command.
// Retrieves all confirmed bookings, advances each non-delivered shipment to
// its next tracking status, and appends one event per shipment. All appends
// occur within a single transaction.
func (h *AdvanceShipmentsCommandHandler) Handle(ctx context.Context, cmd AdvanceShipmentsCommand) error {
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

	bookingRepo := uow.BookingRepository()
	trackingRepo := uow.TrackingRepository()

	bookings, err := bookingRepo.GetAllConfirmed(ctx)
	if err != nil {
		return err
	}

	for _, b := range bookings {
		latest, latestErr := trackingRepo.GetLatestForBooking(ctx, b.ID())
		if latestErr != nil {
			return latestErr
		}

		if latest.Status().IsFinal() {
			continue
		}

		next, advanceErr := h.advanceShipment(b, latest)
		if advanceErr != nil {
			return advanceErr
		}

		if err = trackingRepo.Add(ctx, next); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// advanceShipment builds the next tracking event for a single shipment.
// The event location follows the journey: transit events sit at the carrier
// hub, the final legs at the delivery address.
func (h *AdvanceShipmentsCommandHandler) advanceShipment(
	b *booking.Booking,
	latest *tracking.Event,
) (*tracking.Event, error) {
	nextStatus, err := latest.Status().Advance()
	if err != nil {
		return nil, err
	}

	location := b.Delivery().String()
	if nextStatus == tracking.InTransit {
		location = "carrier sorting hub"
	}

	return tracking.NewEvent(
		kernel.NewUUID(),
		b.ID(),
		nextStatus,
		location,
		time.Now().UTC(),
	)
}
