package commands

import (
	"errors"
	"slices"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrConfirmAvailabilityCommandIsNotConstructed = errors.New(
	"ConfirmAvailabilityCommand must be created via NewConfirmAvailabilityCommand constructor",
)

// ConfirmAvailabilityCommand represents a party's submission of candidate
// availability dates. Each party submits once; the receiver's submission
// also triggers the window reconciliation.
//
// Example:
//
//	dates := []kernel.Day{monday, wednesday}
//	cmd, err := NewConfirmAvailabilityCommand(orderID, order.SenderParty, dates)
//	if err != nil {
//	    return err
//	}
//	handler := NewConfirmAvailabilityCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type ConfirmAvailabilityCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	party   order.PartyRole
	dates   []kernel.Day

	guard guard.ConstructorGuard
}

// NewConfirmAvailabilityCommand creates a command recording the candidate
// dates of the given party. Validates that the order ID is valid, the party
// role is sender or receiver, and at least one constructed date is given.
func NewConfirmAvailabilityCommand(
	orderID kernel.UUID,
	party order.PartyRole,
	dates []kernel.Day,
) (ConfirmAvailabilityCommand, error) {
	command := ConfirmAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setParty(party),
		command.setDates(dates),
	); err != nil {
		return ConfirmAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmAvailabilityCommandIsNotConstructed if validation fails.
func (c ConfirmAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrConfirmAvailabilityCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ConfirmAvailabilityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Party returns the party submitting the dates.
func (c ConfirmAvailabilityCommand) Party() order.PartyRole {
	return c.party
}

// Dates returns a copy of the submitted candidate dates.
func (c ConfirmAvailabilityCommand) Dates() []kernel.Day {
	return slices.Clone(c.dates)
}

func (c *ConfirmAvailabilityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmAvailabilityCommand) setParty(party order.PartyRole) error {
	if err := party.Validate(); err != nil {
		return err
	}

	c.party = party
	return nil
}

func (c *ConfirmAvailabilityCommand) setDates(dates []kernel.Day) error {
	if len(dates) == 0 {
		return errs.NewValueIsRequiredError("candidate dates")
	}

	for _, date := range dates {
		if err := date.Validate(); err != nil {
			return err
		}
	}

	c.dates = slices.Clone(dates)
	return nil
}
