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

func TestScheduleLegCommandHandler_Handle_PickupLeg(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := testOrderInStatus(t, id, order.ScheduledDatesPending,
		testDays(t, "2025-03-10"), testDays(t, "2025-03-11"))
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	cmd, err := commands.NewScheduleLegCommand(id, order.PickupLeg, at, "morning")
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

	handler := commands.NewScheduleLegCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.CollectionScheduled, aggregate.Status())
	require.NotNil(t, aggregate.ScheduledPickupAt())
	assert.Equal(t, at, *aggregate.ScheduledPickupAt())
	assert.Equal(t, "morning", aggregate.PickupTimeslot())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestScheduleLegCommandHandler_Handle_DeliveryLeg(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	pickupAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	aggregate, err := order.RestoreOrder(id, testSender(t), testReceiver(t),
		order.CollectionScheduled, testDays(t, "2025-03-10"), testDays(t, "2025-03-11"),
		&pickupAt, nil, "morning", "", "job-17", "", 2)
	require.NoError(t, err)
	at := time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC)

	cmd, err := commands.NewScheduleLegCommand(id, order.DeliveryLeg, at, "afternoon")
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

	handler := commands.NewScheduleLegCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.DeliveryScheduled, aggregate.Status())
	require.NotNil(t, aggregate.ScheduledDeliveryAt())
	assert.Equal(t, at, *aggregate.ScheduledDeliveryAt())
	assert.Equal(t, "afternoon", aggregate.DeliveryTimeslot())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestScheduleLegCommandHandler_Handle_TransitionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	// Created orders have no confirmed availability and cannot be scheduled.
	aggregate := testOrderInStatus(t, id, order.Created, nil, nil)
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	cmd, err := commands.NewScheduleLegCommand(id, order.PickupLeg, at, "")
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

	handler := commands.NewScheduleLegCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Created, aggregate.Status())
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestScheduleLegCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.ScheduleLegCommand // zero value command

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewScheduleLegCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrScheduleLegCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}
