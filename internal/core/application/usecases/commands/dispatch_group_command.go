package commands

import (
	"errors"
	"strings"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrDispatchGroupCommandIsNotConstructed = errors.New(
	"DispatchGroupCommand must be created via NewDispatchGroupCommand constructor",
)

// DispatchGroupCommand represents a request to hand a whole scheduling
// group over to the external fulfilment provider for a concrete day.
//
// Example:
//
//	cmd, err := NewDispatchGroupCommand(order.PickupLeg, lane, day)
//	if err != nil {
//	    return err
//	}
//	handler := NewDispatchGroupCommandHandler(uowFactory, fulfilmentClient)
//	outcomes, err := handler.Handle(ctx, cmd)
type DispatchGroupCommand struct { //nolint:recvcheck //using for validation
	leg  order.Leg
	lane string
	day  kernel.Day

	guard guard.ConstructorGuard
}

// NewDispatchGroupCommand creates a command dispatching a group to the
// fulfilment provider. Validates that the leg is valid, the lane key is
// non-blank, and the day is constructed.
func NewDispatchGroupCommand(leg order.Leg, lane string, day kernel.Day) (DispatchGroupCommand, error) {
	command := DispatchGroupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLeg(leg),
		command.setLane(lane),
		command.setDay(day),
	); err != nil {
		return DispatchGroupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchGroupCommandIsNotConstructed if validation fails.
func (c DispatchGroupCommand) Validate() error {
	return c.guard.Validate(ErrDispatchGroupCommandIsNotConstructed)
}

// Leg returns the leg being dispatched.
func (c DispatchGroupCommand) Leg() order.Leg {
	return c.leg
}

// Lane returns the lane key identifying the group.
func (c DispatchGroupCommand) Lane() string {
	return c.lane
}

// Day returns the day the group is dispatched for.
func (c DispatchGroupCommand) Day() kernel.Day {
	return c.day
}

func (c *DispatchGroupCommand) setLeg(leg order.Leg) error {
	if err := leg.Validate(); err != nil {
		return err
	}

	c.leg = leg
	return nil
}

func (c *DispatchGroupCommand) setLane(lane string) error {
	if strings.TrimSpace(lane) == "" {
		return errs.NewValueIsRequiredError("lane")
	}

	c.lane = lane
	return nil
}

func (c *DispatchGroupCommand) setDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	c.day = day
	return nil
}
