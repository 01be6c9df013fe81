package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrScheduleLegCommandIsNotConstructed = errors.New(
	"ScheduleLegCommand must be created via NewScheduleLegCommand constructor",
)

// ScheduleLegCommand represents a manual per-order date assignment for one
// leg: the pickup visit or the delivery visit. The delivery can only be
// scheduled strictly after the pickup.
//
// Example:
//
//	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
//	cmd, err := NewScheduleLegCommand(orderID, order.PickupLeg, at, "morning")
//	if err != nil {
//	    return err
//	}
//	handler := NewScheduleLegCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("scheduling failed: %w", err)
//	}
type ScheduleLegCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	leg      order.Leg
	at       time.Time
	timeslot string

	guard guard.ConstructorGuard
}

// NewScheduleLegCommand creates a command assigning a date to one leg of an
// order. Validates that the order ID and leg are valid and the time is not
// zero. The timeslot is an optional named window ("morning", "14:00-16:00").
func NewScheduleLegCommand(
	orderID kernel.UUID,
	leg order.Leg,
	at time.Time,
	timeslot string,
) (ScheduleLegCommand, error) {
	command := ScheduleLegCommand{
		timeslot: timeslot,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setLeg(leg),
		command.setAt(at),
	); err != nil {
		return ScheduleLegCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrScheduleLegCommandIsNotConstructed if validation fails.
func (c ScheduleLegCommand) Validate() error {
	return c.guard.Validate(ErrScheduleLegCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ScheduleLegCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Leg returns the leg the date is assigned to.
func (c ScheduleLegCommand) Leg() order.Leg {
	return c.leg
}

// At returns the assigned date and time.
func (c ScheduleLegCommand) At() time.Time {
	return c.at
}

// Timeslot returns the optional named time window.
func (c ScheduleLegCommand) Timeslot() string {
	return c.timeslot
}

func (c *ScheduleLegCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ScheduleLegCommand) setLeg(leg order.Leg) error {
	if err := leg.Validate(); err != nil {
		return err
	}

	c.leg = leg
	return nil
}

func (c *ScheduleLegCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("scheduled time")
	}

	c.at = at
	return nil
}
