package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/guard"
)

var ErrRequestAvailabilityCommandIsNotConstructed = errors.New(
	"RequestAvailabilityCommand must be created via NewRequestAvailabilityCommand constructor",
)

// RequestAvailabilityCommand represents a request to ask one party of an
// order for their candidate availability dates. The sender is asked first;
// the receiver once the sender has confirmed.
//
// Example:
//
//	cmd, err := NewRequestAvailabilityCommand(orderID, order.SenderParty)
//	if err != nil {
//	    return err
//	}
//	handler := NewRequestAvailabilityCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("availability request failed: %w", err)
//	}
type RequestAvailabilityCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	party   order.PartyRole

	guard guard.ConstructorGuard
}

// NewRequestAvailabilityCommand creates a command to request availability
// from the given party of the order. Validates that the order ID is valid
// and the party role is sender or receiver.
func NewRequestAvailabilityCommand(orderID kernel.UUID, party order.PartyRole) (RequestAvailabilityCommand, error) {
	command := RequestAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setParty(party),
	); err != nil {
		return RequestAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestAvailabilityCommandIsNotConstructed if validation fails.
func (c RequestAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrRequestAvailabilityCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RequestAvailabilityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Party returns the party whose availability is requested.
func (c RequestAvailabilityCommand) Party() order.PartyRole {
	return c.party
}

func (c *RequestAvailabilityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestAvailabilityCommand) setParty(party order.PartyRole) error {
	if err := party.Validate(); err != nil {
		return err
	}

	c.party = party
	return nil
}
