package commands

import (
	"errors"
	"time"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrSendAvailabilityRemindersCommandIsNotConstructed = errors.New(
	"SendAvailabilityRemindersCommand must be created via NewSendAvailabilityRemindersCommand constructor",
)

// SendAvailabilityRemindersCommand triggers a reminder sweep over orders
// stuck in an availability pending status. Orders whose last update is older
// than the cutoff get their availability request re-published.
//
// Example:
//
//	cmd, err := NewSendAvailabilityRemindersCommand(time.Now().Add(-48 * time.Hour))
//	if err != nil {
//	    return err
//	}
//	handler := NewSendAvailabilityRemindersCommandHandler(uowFactory, notifier)
//	sent, err := handler.Handle(ctx, cmd)
type SendAvailabilityRemindersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewSendAvailabilityRemindersCommand creates a reminder sweep command for
// orders not updated since the cutoff instant.
func NewSendAvailabilityRemindersCommand(cutoff time.Time) (SendAvailabilityRemindersCommand, error) {
	command := SendAvailabilityRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return SendAvailabilityRemindersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendAvailabilityRemindersCommandIsNotConstructed if validation fails.
func (c SendAvailabilityRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendAvailabilityRemindersCommandIsNotConstructed)
}

// Cutoff returns the staleness threshold: orders last updated before this
// instant are reminded.
func (c SendAvailabilityRemindersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *SendAvailabilityRemindersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}
