package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/domain/model/booking"
	"shipment/internal/core/domain/model/courier"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/tracking"
	"shipment/internal/core/ports"
	"shipment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}
func (m *MockBookingRepository) GetByIdempotencyKey(
	ctx context.Context,
	key kernel.UUID,
) (*booking.Booking, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}
func (m *MockBookingRepository) GetAllConfirmed(ctx context.Context) ([]*booking.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, e *tracking.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockTrackingRepository) GetForBooking(
	ctx context.Context,
	bookingID kernel.UUID,
) ([]*tracking.Event, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Event), args.Error(1)
}
func (m *MockTrackingRepository) GetLatestForBooking(
	ctx context.Context,
	bookingID kernel.UUID,
) (*tracking.Event, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Event), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}
func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCarrierGateway struct{ mock.Mock }

func (m *MockCarrierGateway) Confirm(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func newBookingCommand(t *testing.T) commands.CreateBookingCommand {
	t.Helper()
	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"MG Road, Bengaluru", "Connaught Place, Delhi",
		"delhivery", 370,
	)
	require.NoError(t, err)
	return cmd
}

func notFound(param string, id any) error {
	return errs.NewObjectNotFoundError(param, id)
}

func TestCreateBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newBookingCommand(t)

	bookingRepo := new(MockBookingRepository)
	trackingRepo := new(MockTrackingRepository)
	gateway := new(MockCarrierGateway)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetByIdempotencyKey", mock.Anything, cmd.IdempotencyKey()).
			Return(nil, notFound("idempotencyKey", cmd.IdempotencyKey().String())).Once(),
		gateway.On("Confirm", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		bookingRepo.On("Add", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*tracking.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBookingCommandHandler(factory, gateway)
	booked, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, booked)
	assert.Equal(t, booking.Confirmed, booked.Status())
	require.NotNil(t, booked.EstimatedDelivery())
	assert.Equal(t,
		booked.CreatedAt().Add(booking.EstimatedDeliveryOffset),
		*booked.EstimatedDelivery())
	assert.Equal(t, courier.Delhivery, booked.Courier())

	bookingRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_InitialTrackingEventIsPickedUp(t *testing.T) {
	ctx := t.Context()
	cmd := newBookingCommand(t)

	var recorded *tracking.Event
	bookingRepo := new(MockBookingRepository)
	trackingRepo := new(MockTrackingRepository)
	gateway := new(MockCarrierGateway)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(bookingRepo).Once()
	uow.On("TrackingRepository").Return(trackingRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	bookingRepo.On("GetByIdempotencyKey", mock.Anything, cmd.IdempotencyKey()).
		Return(nil, notFound("idempotencyKey", cmd.IdempotencyKey().String())).Once()
	bookingRepo.On("Add", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
	gateway.On("Confirm", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
	trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*tracking.Event")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*tracking.Event)
		}).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBookingCommandHandler(factory, gateway)
	booked, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, recorded)
	assert.Equal(t, tracking.PickedUp, recorded.Status())
	assert.Equal(t, booked.ID(), recorded.BookingID())
	assert.Equal(t, "MG Road, Bengaluru", recorded.Location())
	assert.WithinDuration(t, time.Now().UTC(), recorded.OccurredAt(), time.Minute)
}

func TestCreateBookingCommandHandler_Handle_IdempotentRetryReturnsExistingBooking(t *testing.T) {
	ctx := t.Context()
	cmd := newBookingCommand(t)

	existing, err := booking.NewBooking(
		kernel.NewUUID(), cmd.IdempotencyKey(),
		cmd.Pickup(), cmd.Delivery(), cmd.Courier(), cmd.Price(),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	require.NoError(t, existing.Confirm())

	bookingRepo := new(MockBookingRepository)
	gateway := new(MockCarrierGateway)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetByIdempotencyKey", mock.Anything, cmd.IdempotencyKey()).
			Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBookingCommandHandler(factory, gateway)
	booked, handleErr := h.Handle(ctx, cmd)
	require.NoError(t, handleErr)
	assert.True(t, booked.IsEqual(existing))

	// no new carrier attempt and nothing persisted
	gateway.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	bookingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	bookingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_CarrierFailurePersistsNothing(t *testing.T) {
	ctx := t.Context()
	cmd := newBookingCommand(t)

	bookingRepo := new(MockBookingRepository)
	gateway := new(MockCarrierGateway)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetByIdempotencyKey", mock.Anything, cmd.IdempotencyKey()).
			Return(nil, notFound("idempotencyKey", cmd.IdempotencyKey().String())).Once(),
		gateway.On("Confirm", mock.Anything, mock.AnythingOfType("*booking.Booking")).
			Return(errors.New("carrier unreachable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBookingCommandHandler(factory, gateway)
	booked, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBookingFailed)
	assert.Nil(t, booked)

	bookingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	bookingRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_LostInsertRaceReturnsWinningBooking(t *testing.T) {
	ctx := t.Context()
	cmd := newBookingCommand(t)

	// The booking a concurrent submission with the same key persisted first.
	winner, err := booking.NewBooking(
		kernel.NewUUID(), cmd.IdempotencyKey(),
		cmd.Pickup(), cmd.Delivery(), cmd.Courier(), cmd.Price(),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	require.NoError(t, winner.Confirm())

	bookingRepo := new(MockBookingRepository)
	gateway := new(MockCarrierGateway)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetByIdempotencyKey", mock.Anything, cmd.IdempotencyKey()).
			Return(nil, notFound("idempotencyKey", cmd.IdempotencyKey().String())).Once(),
		gateway.On("Confirm", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		bookingRepo.On("Add", mock.Anything, mock.AnythingOfType("*booking.Booking")).
			Return(errs.NewObjectAlreadyExistsError(
				"idempotencyKey", cmd.IdempotencyKey().String())).Once(),
	)

	// The re-read runs on a fresh unit of work outside the aborted transaction.
	rereadRepo := new(MockBookingRepository)
	rereadUow := new(MockUoW)
	rereadUow.On("BookingRepository").Return(rereadRepo).Once()
	rereadRepo.On("GetByIdempotencyKey", mock.Anything, cmd.IdempotencyKey()).
		Return(winner, nil).Once()

	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	factory.On("Create").Return(rereadUow).Once()

	h := commands.NewCreateBookingCommandHandler(factory, gateway)
	booked, handleErr := h.Handle(ctx, cmd)
	require.NoError(t, handleErr)
	assert.True(t, booked.IsEqual(winner))

	uow.AssertNotCalled(t, "Commit", ctx)
	bookingRepo.AssertExpectations(t)
	rereadRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
	rereadUow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateBookingCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	gateway := new(MockCarrierGateway)
	h := commands.NewCreateBookingCommandHandler(factory, gateway)
	booked, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, booked)
}

func TestCreateBookingCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newBookingCommand(t)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	gateway := new(MockCarrierGateway)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateBookingCommandHandler(factory, gateway)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateBookingCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newBookingCommand(t)

	bookingRepo := new(MockBookingRepository)
	trackingRepo := new(MockTrackingRepository)
	gateway := new(MockCarrierGateway)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetByIdempotencyKey", mock.Anything, cmd.IdempotencyKey()).
			Return(nil, notFound("idempotencyKey", cmd.IdempotencyKey().String())).Once(),
		gateway.On("Confirm", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		bookingRepo.On("Add", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*tracking.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBookingCommandHandler(factory, gateway)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	bookingRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
