package commands_test

import (
	"testing"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/domain/model/courier"
	"shipment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateBookingCommand_WhenValidParams_ShouldReturnCommand(t *testing.T) {
	// Arrange
	bookingID := kernel.NewUUID()
	idempotencyKey := kernel.NewUUID()

	// Act
	cmd, err := commands.NewCreateBookingCommand(
		bookingID, idempotencyKey,
		"MG Road, Bengaluru", "Connaught Place, Delhi",
		"delhivery", 370,
	)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, bookingID, cmd.BookingID())
	assert.Equal(t, idempotencyKey, cmd.IdempotencyKey())
	assert.Equal(t, "MG Road, Bengaluru", cmd.Pickup().String())
	assert.Equal(t, "Connaught Place, Delhi", cmd.Delivery().String())
	assert.Equal(t, courier.Delhivery, cmd.Courier())
	assert.InDelta(t, 370.0, cmd.Price(), 0.0001)
}

func TestNewCreateBookingCommand_WhenPickupIsEmpty_ShouldReturnError(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"", "Connaught Place, Delhi",
		"delhivery", 370,
	)

	require.Error(t, err)
}

func TestNewCreateBookingCommand_WhenDeliveryIsEmpty_ShouldReturnError(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"MG Road, Bengaluru", "   ",
		"delhivery", 370,
	)

	require.Error(t, err)
}

func TestNewCreateBookingCommand_WhenCourierIsUnknown_ShouldReturnError(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"MG Road, Bengaluru", "Connaught Place, Delhi",
		"pigeon-post", 370,
	)

	require.Error(t, err)
}

func TestNewCreateBookingCommand_WhenPriceIsNegative_ShouldReturnError(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"MG Road, Bengaluru", "Connaught Place, Delhi",
		"delhivery", -1,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
}

func TestNewCreateBookingCommand_WhenIdempotencyKeyIsZero_ShouldReturnError(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), kernel.UUID{},
		"MG Road, Bengaluru", "Connaught Place, Delhi",
		"delhivery", 370,
	)

	require.Error(t, err)
}

func TestCreateBookingCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.CreateBookingCommand // zero-value command

	err := cmd.Validate()

	require.Error(t, err)
	assert.Equal(t, commands.ErrCreateBookingCommandIsNotConstructed, err)
}
