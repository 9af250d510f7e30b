package trackingrepo

import (
	"context"
	"errors"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/tracking"
	"shipment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Add appends a tracking event to a booking's history.
func (r *GormTrackingRepository) Add(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetForBooking retrieves a booking's full history, oldest event first.
func (r *GormTrackingRepository) GetForBooking(
	ctx context.Context,
	bookingID kernel.UUID,
) ([]*tracking.Event, error) {
	if err := bookingID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at, id").
		Find(&dtos, "booking_id = ?", bookingID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// GetLatestForBooking retrieves the most recent tracking event for a booking.
func (r *GormTrackingRepository) GetLatestForBooking(
	ctx context.Context,
	bookingID kernel.UUID,
) (*tracking.Event, error) {
	if err := bookingID.Validate(); err != nil {
		return nil, err
	}

	var dto EventDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at DESC, id DESC").
		First(&dto, "booking_id = ?", bookingID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", bookingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
