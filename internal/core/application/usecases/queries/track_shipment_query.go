package queries

import (
	"errors"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/guard"
)

var (
	ErrTrackShipmentQueryIsNotConstructed = errors.New(
		"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
	)
)

// TrackShipmentQuery requests the tracking history of a booked shipment.
//
// Example:
//
//	query, err := NewTrackShipmentQuery(bookingID)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking request: %w", err)
//	}
//
//	handler := NewTrackShipmentQueryHandler(db)
//	info, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown booking
//	}
type TrackShipmentQuery struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a query for a booking's tracking history.
func NewTrackShipmentQuery(bookingID kernel.UUID) (TrackShipmentQuery, error) {
	query := TrackShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setBookingID(bookingID); err != nil {
		return TrackShipmentQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackShipmentQueryIsNotConstructed if validation fails.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// BookingID returns the booking whose history is requested.
func (q TrackShipmentQuery) BookingID() kernel.UUID {
	return q.bookingID
}

func (q *TrackShipmentQuery) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	q.bookingID = bookingID
	return nil
}

// TrackingEventResponse is one entry of a shipment's journey.
type TrackingEventResponse struct {
	Status    string
	Location  string
	Timestamp time.Time
}

// TrackShipmentQueryResponse is the full tracking view of a booking: its
// current status plus the ordered event history.
type TrackShipmentQueryResponse struct {
	BookingID         kernel.UUID
	Courier           string
	Status            string
	EstimatedDelivery *time.Time
	Events            []TrackingEventResponse
}
