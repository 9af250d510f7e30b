package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipment/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackShipmentQueryHandler retrieves the tracking view of a booking.
// Joins the booking header with its ordered tracking history; the shipment's
// current status is the status of the latest event.
//
// Example:
//
//	handler := NewTrackShipmentQueryHandler(db)
//	query, _ := NewTrackShipmentQuery(bookingID)
//
//	info, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Shipment is %s, %d events\n", info.Status, len(info.Events))
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns an ObjectNotFoundError when the booking ID is unknown. Events are
// returned oldest first; the response status reflects the latest event, or
// the booking status while no events exist yet.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	response, err := h.loadBooking(ctx, query)
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	events, err := h.loadEvents(ctx, query)
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	response.Events = events
	if len(events) > 0 {
		response.Status = events[len(events)-1].Status
	}

	return response, nil
}

func (h TrackShipmentQueryHandler) loadBooking(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			courier,
			status,
			estimated_delivery
		FROM bookings
		WHERE id = ?
	`, query.BookingID().String()).Row()

	var response TrackShipmentQueryResponse
	var estimatedDelivery *time.Time

	err := row.Scan(&response.Courier, &response.Status, &estimatedDelivery)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackShipmentQueryResponse{}, errs.NewObjectNotFoundError(
			"bookingId", query.BookingID().String())
	}
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	response.BookingID = query.BookingID()
	response.EstimatedDelivery = estimatedDelivery
	return response, nil
}

func (h TrackShipmentQueryHandler) loadEvents(
	ctx context.Context,
	query TrackShipmentQuery,
) ([]TrackingEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			location,
			occurred_at
		FROM tracking_events
		WHERE booking_id = ?
		ORDER BY occurred_at, id
	`, query.BookingID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackingEventResponse, 0)
	for rows.Next() {
		var event TrackingEventResponse
		if err = rows.Scan(&event.Status, &event.Location, &event.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
