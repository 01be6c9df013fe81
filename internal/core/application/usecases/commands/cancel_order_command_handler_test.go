package commands_test

import (
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	// A scheduled order with external bookings attached.
	pickupAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	aggregate, err := order.RestoreOrder(id, testSender(t), testReceiver(t),
		order.CollectionScheduled, testDays(t, "2025-03-10"), testDays(t, "2025-03-11"),
		&pickupAt, nil, "morning", "", "job-17", "", 2)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, id).Return(aggregate, nil).Once(),
		mockRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCancelOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.Nil(t, aggregate.ScheduledPickupAt())
	assert.Empty(t, aggregate.PickupJobRef())
	// Candidate dates survive cancellation for audit.
	assert.Equal(t, testDays(t, "2025-03-10"), aggregate.SenderCandidateDates())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	pickupAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	deliveryAt := time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC)
	aggregate, err := order.RestoreOrder(id, testSender(t), testReceiver(t),
		order.Delivered, testDays(t, "2025-03-10"), testDays(t, "2025-03-11"),
		&pickupAt, &deliveryAt, "morning", "afternoon", "job-17", "job-18", 9)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, id).Return(aggregate, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCancelOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Delivered, aggregate.Status())
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CancelOrderCommand // zero value command

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}
