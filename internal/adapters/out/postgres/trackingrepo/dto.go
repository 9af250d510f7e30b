// Package trackingrepo persists the append-only tracking history of booked
// shipments. Events are immutable records rather than aggregates, so the
// repository only ever inserts and reads.
package trackingrepo

import (
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for tracking events.
// Indexed by booking so that history reads stay cheap.
type EventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID  uuid.UUID `gorm:"type:uuid;index"`
	Status     string
	Location   string
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for tracking events.
func (EventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(event *tracking.Event) EventDTO {
	return EventDTO{
		ID:         event.ID().Bytes(),
		BookingID:  event.BookingID().Bytes(),
		Status:     event.Status().String(),
		Location:   event.Location(),
		OccurredAt: event.OccurredAt(),
	}
}

// toDomain converts a database DTO back to a tracking event.
func toDomain(dto EventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	status, err := tracking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return tracking.NewEvent(id, bookingID, status, dto.Location, dto.OccurredAt)
}
