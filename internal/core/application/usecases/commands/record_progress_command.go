package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/guard"
)

var ErrRecordProgressCommandIsNotConstructed = errors.New(
	"RecordProgressCommand must be created via NewRecordProgressCommand constructor",
)

// RecordProgressCommand represents an operational progress report for an
// order: the driver is en route, the bicycle was collected, shipped, or
// delivered. Events arrive from the operator or the fulfilment system and
// must follow the operational order.
//
// Example:
//
//	cmd, err := NewRecordProgressCommand(orderID, order.ProgressCollected)
//	if err != nil {
//	    return err
//	}
//	handler := NewRecordProgressCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("progress update failed: %w", err)
//	}
type RecordProgressCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	event   order.ProgressEvent

	guard guard.ConstructorGuard
}

// NewRecordProgressCommand creates a command recording an operational
// progress event. Validates that the order ID and the event are valid.
func NewRecordProgressCommand(orderID kernel.UUID, event order.ProgressEvent) (RecordProgressCommand, error) {
	command := RecordProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setEvent(event),
	); err != nil {
		return RecordProgressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordProgressCommandIsNotConstructed if validation fails.
func (c RecordProgressCommand) Validate() error {
	return c.guard.Validate(ErrRecordProgressCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RecordProgressCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Event returns the reported progress event.
func (c RecordProgressCommand) Event() order.ProgressEvent {
	return c.event
}

func (c *RecordProgressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordProgressCommand) setEvent(event order.ProgressEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	c.event = event
	return nil
}
