package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrFinalizeScheduleCommandIsNotConstructed = errors.New(
	"FinalizeScheduleCommand must be created via NewFinalizeScheduleCommand constructor",
)

// FinalizeScheduleCommand represents the confirmation that both assigned
// dates of an order form the final schedule.
type FinalizeScheduleCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinalizeScheduleCommand creates a command finalizing the schedule of
// the given order. Validates that the order ID is valid.
func NewFinalizeScheduleCommand(orderID kernel.UUID) (FinalizeScheduleCommand, error) {
	command := FinalizeScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return FinalizeScheduleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFinalizeScheduleCommandIsNotConstructed if validation fails.
func (c FinalizeScheduleCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeScheduleCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c FinalizeScheduleCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *FinalizeScheduleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
