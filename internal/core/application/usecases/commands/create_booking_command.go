package commands

import (
	"errors"

	"shipment/internal/core/domain/model/courier"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)
	ErrPriceIsInvalid = errors.New("price must not be negative")
)

// CreateBookingCommand represents a request to book a shipment with a
// selected courier at a quoted price. Carries a client-generated idempotency
// key so that a retried submission cannot create a duplicate booking.
//
// Example:
//
//	bookingID := kernel.NewUUID()
//	cmd, err := NewCreateBookingCommand(
//	    bookingID, idempotencyKey,
//	    "MG Road, Bengaluru", "Connaught Place, Delhi",
//	    "delhivery", 370,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewCreateBookingCommandHandler(uowFactory, gateway)
//	booked, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to book shipment: %w", err)
//	}
//	fmt.Printf("Booking %s confirmed", booked.ID())
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID      kernel.UUID
	idempotencyKey kernel.UUID
	pickup         kernel.Address
	delivery       kernel.Address
	courier        courier.ID
	price          float64

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to book a shipment.
// Validates that both identifiers are valid, both addresses are non-empty,
// the courier is one of the known carriers, and the price is non-negative.
// Returns an error if any validation fails.
func NewCreateBookingCommand(
	bookingID kernel.UUID,
	idempotencyKey kernel.UUID,
	pickup string,
	delivery string,
	courierRaw string,
	price float64,
) (CreateBookingCommand, error) {
	bookingCommand := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookingCommand.setBookingID(bookingID),
		bookingCommand.setIdempotencyKey(idempotencyKey),
		bookingCommand.setPickup(pickup),
		bookingCommand.setDelivery(delivery),
		bookingCommand.setCourier(courierRaw),
		bookingCommand.setPrice(price),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return bookingCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateBookingCommandIsNotConstructed if validation fails.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// BookingID returns the unique identifier for the new booking.
func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// IdempotencyKey returns the client-generated deduplication token.
func (c CreateBookingCommand) IdempotencyKey() kernel.UUID {
	return c.idempotencyKey
}

// Pickup returns the pickup address.
func (c CreateBookingCommand) Pickup() kernel.Address {
	return c.pickup
}

// Delivery returns the delivery address.
func (c CreateBookingCommand) Delivery() kernel.Address {
	return c.delivery
}

// Courier returns the selected carrier.
func (c CreateBookingCommand) Courier() courier.ID {
	return c.courier
}

// Price returns the quoted price the shipment is booked at.
func (c CreateBookingCommand) Price() float64 {
	return c.price
}

func (c *CreateBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}

func (c *CreateBookingCommand) setIdempotencyKey(key kernel.UUID) error {
	if err := key.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("idempotencyKey", err)
	}

	c.idempotencyKey = key
	return nil
}

func (c *CreateBookingCommand) setPickup(pickup string) error {
	address, err := kernel.NewAddress(pickup)
	if err != nil {
		return err
	}

	c.pickup = address
	return nil
}

func (c *CreateBookingCommand) setDelivery(delivery string) error {
	address, err := kernel.NewAddress(delivery)
	if err != nil {
		return err
	}

	c.delivery = address
	return nil
}

func (c *CreateBookingCommand) setCourier(raw string) error {
	id, err := courier.ParseID(raw)
	if err != nil {
		return err
	}

	c.courier = id
	return nil
}

func (c *CreateBookingCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
