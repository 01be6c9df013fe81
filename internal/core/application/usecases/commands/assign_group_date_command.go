package commands

import (
	"errors"
	"strings"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrAssignGroupDateCommandIsNotConstructed = errors.New(
	"AssignGroupDateCommand must be created via NewAssignGroupDateCommand constructor",
)

// AssignGroupDateCommand represents a manual date assignment across a whole
// scheduling group from the planning board: every member of the lane's group
// that offered the day gets the date assigned to the leg.
//
// Example:
//
//	cmd, err := NewAssignGroupDateCommand(order.PickupLeg, lane, day, "morning")
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignGroupDateCommandHandler(uowFactory)
//	outcomes, err := handler.Handle(ctx, cmd)
type AssignGroupDateCommand struct { //nolint:recvcheck //using for validation
	leg      order.Leg
	lane     string
	day      kernel.Day
	timeslot string

	guard guard.ConstructorGuard
}

// NewAssignGroupDateCommand creates a command assigning a date across a
// group. Validates that the leg is valid, the lane key is non-blank, and
// the day is constructed. The timeslot is optional.
func NewAssignGroupDateCommand(
	leg order.Leg,
	lane string,
	day kernel.Day,
	timeslot string,
) (AssignGroupDateCommand, error) {
	command := AssignGroupDateCommand{
		timeslot: timeslot,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLeg(leg),
		command.setLane(lane),
		command.setDay(day),
	); err != nil {
		return AssignGroupDateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignGroupDateCommandIsNotConstructed if validation fails.
func (c AssignGroupDateCommand) Validate() error {
	return c.guard.Validate(ErrAssignGroupDateCommandIsNotConstructed)
}

// Leg returns the leg the date is assigned to.
func (c AssignGroupDateCommand) Leg() order.Leg {
	return c.leg
}

// Lane returns the lane key identifying the group.
func (c AssignGroupDateCommand) Lane() string {
	return c.lane
}

// Day returns the assigned day.
func (c AssignGroupDateCommand) Day() kernel.Day {
	return c.day
}

// Timeslot returns the optional named time window.
func (c AssignGroupDateCommand) Timeslot() string {
	return c.timeslot
}

func (c *AssignGroupDateCommand) setLeg(leg order.Leg) error {
	if err := leg.Validate(); err != nil {
		return err
	}

	c.leg = leg
	return nil
}

func (c *AssignGroupDateCommand) setLane(lane string) error {
	if strings.TrimSpace(lane) == "" {
		return errs.NewValueIsRequiredError("lane")
	}

	c.lane = lane
	return nil
}

func (c *AssignGroupDateCommand) setDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	c.day = day
	return nil
}
