package commands_test

import (
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestAvailabilityCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewRequestAvailabilityCommand(id, order.ReceiverParty)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.ReceiverParty, cmd.Party())
	require.NoError(t, cmd.Validate())
}

func TestNewRequestAvailabilityCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewRequestAvailabilityCommand(invalidID, order.SenderParty)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRequestAvailabilityCommand_UnknownParty(t *testing.T) {
	_, err := commands.NewRequestAvailabilityCommand(kernel.NewUUID(), order.UnknownParty)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRequestAvailabilityCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.RequestAvailabilityCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRequestAvailabilityCommandIsNotConstructed)
}
