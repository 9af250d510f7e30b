package commands

import (
	"context"
	"errors"
	"time"

	"shipment/internal/core/domain/model/booking"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/tracking"
	"shipment/internal/core/ports"
	"shipment/internal/pkg/errs"
)

// ErrBookingFailed is returned when the carrier rejected the shipment or was
// unreachable. Nothing is persisted in that case and the client may retry
// with identical inputs and the same idempotency key.
var ErrBookingFailed = errors.New("booking failed")

// CreateBookingCommandHandler handles the business logic for shipment booking.
// Confirms the shipment with the carrier before persisting anything, then
// stores the confirmed booking together with its first tracking event in a
// single transaction.
//
// Example:
//
//	handler := NewCreateBookingCommandHandler(uowFactory, gateway)
//	booked, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrBookingFailed):
//	    log.Println("Carrier rejected the shipment, retry later")
//	case err != nil:
//	    log.Printf("Booking failed: %v", err)
//	default:
//	    log.Printf("Booking %s confirmed", booked.ID())
//	}
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.CarrierGateway
}

// NewCreateBookingCommandHandler creates a handler for booking operations.
// Requires a UoWFactory for transactional persistence and a CarrierGateway
// for upstream confirmation.
func NewCreateBookingCommandHandler(
	uowFactory UoWFactory,
	gateway ports.CarrierGateway,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the booking command and returns the confirmed booking.
// If a booking with the same idempotency key already exists, that booking is
// returned and no new carrier attempt is made. Otherwise the shipment is
// confirmed with the carrier first; only after the carrier accepted it are
// the booking and its initial "picked_up" tracking event persisted, both in
// one transaction. A carrier failure wraps ErrBookingFailed and leaves no
// state behind.
func (h *CreateBookingCommandHandler) Handle(
	ctx context.Context,
	cmd CreateBookingCommand,
) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()

	existing, err := bookingRepo.GetByIdempotencyKey(ctx, cmd.IdempotencyKey())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	newBooking, err := booking.NewBooking(
		cmd.BookingID(),
		cmd.IdempotencyKey(),
		cmd.Pickup(),
		cmd.Delivery(),
		cmd.Courier(),
		cmd.Price(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = h.gateway.Confirm(ctx, newBooking); err != nil {
		return nil, errors.Join(ErrBookingFailed, err)
	}

	if err = newBooking.Confirm(); err != nil {
		return nil, err
	}

	if err = bookingRepo.Add(ctx, newBooking); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			// Lost a concurrent insert race on the idempotency key; the
			// winner's booking is the canonical one. The aborted transaction
			// is rolled back by the deferred call, so read outside it.
			return h.uowFactory.Create().BookingRepository().
				GetByIdempotencyKey(ctx, cmd.IdempotencyKey())
		}
		return nil, err
	}

	pickedUp, err := tracking.NewEvent(
		kernel.NewUUID(),
		newBooking.ID(),
		tracking.PickedUp,
		newBooking.Pickup().String(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingRepository().Add(ctx, pickedUp); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newBooking, nil
}
