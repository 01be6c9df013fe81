package commands_test

import (
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmAvailabilityCommandHandler_Handle_SenderPath(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := testOrderInStatus(t, id, order.SenderAvailabilityPending, nil, nil)
	dates := testDays(t, "2025-03-12", "2025-03-10")

	cmd, err := commands.NewConfirmAvailabilityCommand(id, order.SenderParty, dates)
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

	handler := commands.NewConfirmAvailabilityCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.SenderAvailabilityConfirmed, result.Status)
	assert.False(t, result.HasWindow)
	assert.Equal(t, order.SenderAvailabilityConfirmed, aggregate.Status())
	assert.Equal(t, testDays(t, "2025-03-10", "2025-03-12"), aggregate.SenderCandidateDates())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestConfirmAvailabilityCommandHandler_Handle_ReceiverPathAutoWindow(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := testOrderInStatus(t, id, order.ReceiverAvailabilityPending,
		testDays(t, "2025-03-10", "2025-03-12"), nil)

	cmd, err := commands.NewConfirmAvailabilityCommand(id, order.ReceiverParty,
		testDays(t, "2025-03-11", "2025-03-14"))
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, id).Return(aggregate, nil).Once(),
		mockRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewConfirmAvailabilityCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.ScheduledDatesPending, result.Status)
	assert.True(t, result.HasWindow)
	assert.Equal(t, testDay(t, "2025-03-10"), result.PickupDay)
	assert.Equal(t, testDay(t, "2025-03-11"), result.DeliveryDay)
	assert.Equal(t, order.ScheduledDatesPending, aggregate.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestConfirmAvailabilityCommandHandler_Handle_ReceiverPathNeedsApproval(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	// No receiver day falls after the only sender day, so no window exists.
	aggregate := testOrderInStatus(t, id, order.ReceiverAvailabilityPending,
		testDays(t, "2025-03-12"), nil)

	cmd, err := commands.NewConfirmAvailabilityCommand(id, order.ReceiverParty,
		testDays(t, "2025-03-10", "2025-03-12"))
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, id).Return(aggregate, nil).Once(),
		mockRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewConfirmAvailabilityCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.PendingApproval, result.Status)
	assert.False(t, result.HasWindow)
	assert.Equal(t, order.PendingApproval, aggregate.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestConfirmAvailabilityCommandHandler_Handle_RepeatSubmission(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := testOrderInStatus(t, id, order.SenderAvailabilityConfirmed,
		testDays(t, "2025-03-10"), nil)

	cmd, err := commands.NewConfirmAvailabilityCommand(id, order.SenderParty,
		testDays(t, "2025-03-11"))
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

	handler := commands.NewConfirmAvailabilityCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrAlreadyConfirmed)
	assert.Equal(t, testDays(t, "2025-03-10"), aggregate.SenderCandidateDates())
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestConfirmAvailabilityCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.ConfirmAvailabilityCommand // zero value command

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewConfirmAvailabilityCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrConfirmAvailabilityCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}
