package booking

import (
	"errors"
	"time"

	"shipment/internal/core/domain/model/courier"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
)

// EstimatedDeliveryOffset is the fixed window between booking submission and
// the estimated delivery timestamp.
const EstimatedDeliveryOffset = 3 * 24 * time.Hour

var (
	// ErrBookingIsNotConstructed is returned when a Booking instance was not
	// created through NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
)

// Booking represents a commitment to ship using a selected courier at a
// selected quoted price. It is the aggregate root for the booking lifecycle
// from submission through carrier confirmation.
//
// Booking follows these invariants:
//   - Must have a valid unique identifier and idempotency key
//   - Pickup and delivery addresses must be valid
//   - Courier must be one of the closed carrier set
//   - Price must be non-negative
//   - Status transitions follow the rules in Status
//   - Can only be created through NewBooking or RestoreBooking
//
// The idempotency key is client-generated: retrying a failed submission with
// the same key must not create a second booking.
type Booking struct {
	id                kernel.UUID
	idempotencyKey    kernel.UUID
	pickup            kernel.Address
	delivery          kernel.Address
	courier           courier.ID
	price             float64
	status            Status
	estimatedDelivery *time.Time
	createdAt         time.Time

	isConstructed bool
}

// NewBooking creates a Booking in Pending status. All inputs are validated;
// the creation timestamp is taken from the supplied clock value so that the
// estimated delivery window is anchored to submission time.
func NewBooking(
	id kernel.UUID,
	idempotencyKey kernel.UUID,
	pickup kernel.Address,
	delivery kernel.Address,
	courierID courier.ID,
	price float64,
	createdAt time.Time,
) (*Booking, error) {
	b := &Booking{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setIdempotencyKey(idempotencyKey),
		b.setPickup(pickup),
		b.setDelivery(delivery),
		b.setCourier(courierID),
		b.setPrice(price),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking reconstructs a Booking from persistence. Unlike NewBooking
// it accepts any valid status and an optional estimated delivery timestamp.
func RestoreBooking(
	id kernel.UUID,
	idempotencyKey kernel.UUID,
	pickup kernel.Address,
	delivery kernel.Address,
	courierID courier.ID,
	price float64,
	status Status,
	estimatedDelivery *time.Time,
	createdAt time.Time,
) (*Booking, error) {
	b, err := NewBooking(id, idempotencyKey, pickup, delivery, courierID, price, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	b.status = status
	b.estimatedDelivery = estimatedDelivery
	return b, nil
}

// Validate ensures the Booking was properly constructed through a
// constructor. Prevents bypassing validation by direct struct instantiation.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}

	return nil
}

// IsEqual compares two bookings by their unique identifiers.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// IdempotencyKey returns the client-generated deduplication token.
func (b *Booking) IdempotencyKey() kernel.UUID {
	return b.idempotencyKey
}

// Pickup returns the pickup address.
func (b *Booking) Pickup() kernel.Address {
	return b.pickup
}

// Delivery returns the delivery address.
func (b *Booking) Delivery() kernel.Address {
	return b.delivery
}

// Courier returns the selected carrier.
func (b *Booking) Courier() courier.ID {
	return b.courier
}

// Price returns the quoted price the booking was submitted at.
func (b *Booking) Price() float64 {
	return b.price
}

// Status returns the current status of the booking.
func (b *Booking) Status() Status {
	return b.status
}

// EstimatedDelivery returns the estimated delivery timestamp.
// Returns nil while the booking is still pending.
func (b *Booking) EstimatedDelivery() *time.Time {
	return b.estimatedDelivery
}

// CreatedAt returns the submission timestamp.
func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

// Confirm marks the booking as accepted by the carrier and stamps the
// estimated delivery a fixed offset from submission time.
//
// Returns an error if the booking is not in Pending status.
func (b *Booking) Confirm() error {
	newStatus, err := b.status.Confirm()
	if err != nil {
		return err
	}

	estimated := b.createdAt.Add(EstimatedDeliveryOffset)
	b.status = newStatus
	b.estimatedDelivery = &estimated
	return nil
}

// Cancel withdraws a pending booking.
//
// Returns an error if the booking is not in Pending status.
func (b *Booking) Cancel() error {
	newStatus, err := b.status.Cancel()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// setID validates and sets the booking's unique identifier.
func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

// setIdempotencyKey validates and sets the deduplication token.
func (b *Booking) setIdempotencyKey(key kernel.UUID) error {
	if err := key.Validate(); err != nil {
		return err
	}
	b.idempotencyKey = key
	return nil
}

// setPickup validates and sets the pickup address.
func (b *Booking) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	b.pickup = pickup
	return nil
}

// setDelivery validates and sets the delivery address.
func (b *Booking) setDelivery(delivery kernel.Address) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	b.delivery = delivery
	return nil
}

// setCourier validates and sets the selected carrier.
func (b *Booking) setCourier(id courier.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.courier = id
	return nil
}

// setPrice validates and sets the quoted price.
func (b *Booking) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	b.price = price
	return nil
}
