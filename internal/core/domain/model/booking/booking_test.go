package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment/internal/core/domain/model/booking"
	"shipment/internal/core/domain/model/courier"
	"shipment/internal/core/domain/model/kernel"
)

func mustAddress(t *testing.T, value string) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress(value)
	require.NoError(t, err)
	return addr
}

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(
		kernel.NewUUID(),
		kernel.NewUUID(),
		mustAddress(t, "MG Road, Bengaluru"),
		mustAddress(t, "Marine Drive, Mumbai"),
		courier.Delhivery,
		350,
		time.Now(),
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("creates pending booking", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		id := kernel.NewUUID()
		key := kernel.NewUUID()

		b, err := booking.NewBooking(
			id, key,
			mustAddress(t, "MG Road, Bengaluru"),
			mustAddress(t, "Marine Drive, Mumbai"),
			courier.Delhivery, 350, createdAt,
		)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, booking.Pending, b.Status())
		assert.True(t, b.ID().IsEqual(id))
		assert.True(t, b.IdempotencyKey().IsEqual(key))
		assert.Equal(t, courier.Delhivery, b.Courier())
		assert.InDelta(t, 350, b.Price(), 0)
		assert.Equal(t, createdAt, b.CreatedAt())
		assert.Nil(t, b.EstimatedDelivery())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		var zeroID kernel.UUID
		var zeroAddr kernel.Address
		valid := mustAddress(t, "MG Road, Bengaluru")

		_, err := booking.NewBooking(zeroID, kernel.NewUUID(), valid, valid, courier.Delhivery, 350, time.Now())
		require.Error(t, err)

		_, err = booking.NewBooking(kernel.NewUUID(), zeroID, valid, valid, courier.Delhivery, 350, time.Now())
		require.Error(t, err)

		_, err = booking.NewBooking(kernel.NewUUID(), kernel.NewUUID(), zeroAddr, valid, courier.Delhivery, 350, time.Now())
		require.Error(t, err)

		_, err = booking.NewBooking(kernel.NewUUID(), kernel.NewUUID(), valid, zeroAddr, courier.Delhivery, 350, time.Now())
		require.Error(t, err)

		_, err = booking.NewBooking(kernel.NewUUID(), kernel.NewUUID(), valid, valid, "fedex", 350, time.Now())
		require.Error(t, err)

		_, err = booking.NewBooking(kernel.NewUUID(), kernel.NewUUID(), valid, valid, courier.Delhivery, -1, time.Now())
		require.Error(t, err)
	})
}

func TestBooking_Confirm(t *testing.T) {
	t.Run("stamps estimated delivery offset from submission", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		b, err := booking.NewBooking(
			kernel.NewUUID(), kernel.NewUUID(),
			mustAddress(t, "MG Road, Bengaluru"),
			mustAddress(t, "Marine Drive, Mumbai"),
			courier.BlueDart, 500, createdAt,
		)
		require.NoError(t, err)

		require.NoError(t, b.Confirm())

		assert.Equal(t, booking.Confirmed, b.Status())
		require.NotNil(t, b.EstimatedDelivery())
		assert.Equal(t, createdAt.Add(booking.EstimatedDeliveryOffset), *b.EstimatedDelivery())
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.Confirm())

		require.Error(t, b.Confirm())
	})
}

func TestBooking_Cancel(t *testing.T) {
	t.Run("pending booking can be cancelled", func(t *testing.T) {
		b := newTestBooking(t)

		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.Cancelled, b.Status())
	})

	t.Run("confirmed booking cannot be cancelled", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.Confirm())

		require.Error(t, b.Cancel())
	})
}

func TestRestoreBooking(t *testing.T) {
	t.Run("restores confirmed booking with estimated delivery", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		estimated := createdAt.Add(booking.EstimatedDeliveryOffset)

		b, err := booking.RestoreBooking(
			kernel.NewUUID(), kernel.NewUUID(),
			mustAddress(t, "MG Road, Bengaluru"),
			mustAddress(t, "Marine Drive, Mumbai"),
			courier.DTDC, 420,
			booking.Confirmed, &estimated, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, booking.Confirmed, b.Status())
		require.NotNil(t, b.EstimatedDelivery())
		assert.Equal(t, estimated, *b.EstimatedDelivery())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := booking.RestoreBooking(
			kernel.NewUUID(), kernel.NewUUID(),
			mustAddress(t, "MG Road, Bengaluru"),
			mustAddress(t, "Marine Drive, Mumbai"),
			courier.DTDC, 420,
			booking.Unknown, nil, time.Now(),
		)

		require.Error(t, err)
	})
}

func TestBooking_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var b booking.Booking

		err := b.Validate()

		require.Error(t, err)
		assert.Equal(t, booking.ErrBookingIsNotConstructed, err)
	})

	t.Run("nil booking is invalid", func(t *testing.T) {
		var b *booking.Booking

		require.Error(t, b.Validate())
	})
}

func TestBooking_IsEqual(t *testing.T) {
	a := newTestBooking(t)
	b := newTestBooking(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
