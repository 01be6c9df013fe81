package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrResetScheduleCommandIsNotConstructed = errors.New(
	"ResetScheduleCommand must be created via NewResetScheduleCommand constructor",
)

// ResetScheduleCommand represents the explicit reschedule operation: the
// only sanctioned way to clear assigned dates. The order returns to the
// schedulable pool with both dates, both timeslots and both job references
// cleared.
type ResetScheduleCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetScheduleCommand creates a command resetting the schedule of the
// given order. Validates that the order ID is valid.
func NewResetScheduleCommand(orderID kernel.UUID) (ResetScheduleCommand, error) {
	command := ResetScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ResetScheduleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetScheduleCommandIsNotConstructed if validation fails.
func (c ResetScheduleCommand) Validate() error {
	return c.guard.Validate(ErrResetScheduleCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ResetScheduleCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResetScheduleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
