package tracking

import (
	"errors"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not
// created through the NewEvent constructor.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is a single entry in a shipment's tracking history: at a given
// moment the package was at a location in a given status. Events are
// append-only; history is never rewritten.
type Event struct {
	id         kernel.UUID
	bookingID  kernel.UUID
	status     Status
	location   string
	occurredAt time.Time

	isConstructed bool
}

// NewEvent creates a tracking event for a booking.
// The location is free text naming the carrier facility or area; it must be
// non-empty.
func NewEvent(
	id kernel.UUID,
	bookingID kernel.UUID,
	status Status,
	location string,
	occurredAt time.Time,
) (*Event, error) {
	e := &Event{
		occurredAt:    occurredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setBookingID(bookingID),
		e.setStatus(status),
		e.setLocation(location),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Event was created through the constructor.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// BookingID returns the booking this event belongs to.
func (e *Event) BookingID() kernel.UUID {
	return e.bookingID
}

// Status returns the shipment status recorded by this event.
func (e *Event) Status() Status {
	return e.status
}

// Location returns the free-text location of the package at event time.
func (e *Event) Location() string {
	return e.location
}

// OccurredAt returns the event timestamp.
func (e *Event) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.bookingID = id
	return nil
}

func (e *Event) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *Event) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	e.location = location
	return nil
}
