package commands_test

import (
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleLegCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	cmd, err := commands.NewScheduleLegCommand(id, order.PickupLeg, at, "morning")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.PickupLeg, cmd.Leg())
	assert.Equal(t, at, cmd.At())
	assert.Equal(t, "morning", cmd.Timeslot())
	require.NoError(t, cmd.Validate())
}

func TestNewScheduleLegCommand_EmptyTimeslot(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	cmd, err := commands.NewScheduleLegCommand(kernel.NewUUID(), order.DeliveryLeg, at, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Timeslot())
}

func TestNewScheduleLegCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := commands.NewScheduleLegCommand(invalidID, order.PickupLeg, at, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewScheduleLegCommand_UnknownLeg(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := commands.NewScheduleLegCommand(kernel.NewUUID(), order.UnknownLeg, at, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewScheduleLegCommand_ZeroTime(t *testing.T) {
	_, err := commands.NewScheduleLegCommand(kernel.NewUUID(), order.PickupLeg, time.Time{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "scheduled time")
}

func TestScheduleLegCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.ScheduleLegCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrScheduleLegCommandIsNotConstructed)
}
