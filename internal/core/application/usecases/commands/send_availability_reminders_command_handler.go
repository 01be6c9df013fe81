package commands

import (
	"context"

	"booking/internal/core/domain/model/order"
	"booking/internal/core/ports"
)

// SendAvailabilityRemindersCommandHandler re-publishes availability requests
// for orders sitting in a pending status past the cutoff. The sweep only
// publishes events; the orders themselves are not modified, so there is no
// optimistic-lock traffic and a concurrent confirmation always wins.
type SendAvailabilityRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.AvailabilityNotifier
}

// NewSendAvailabilityRemindersCommandHandler creates a handler for reminder
// sweeps. Requires an OrderUoWFactory to read the stale pending orders and
// the notifier the reminders are published through.
func NewSendAvailabilityRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.AvailabilityNotifier,
) SendAvailabilityRemindersCommandHandler {
	return SendAvailabilityRemindersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reminder sweep command.
// Loads orders stuck in an availability pending status, re-publishes the
// request for the party the order is waiting on, and returns how many
// reminders were sent. A publish failure stops the sweep; the next run
// picks the remaining orders up again.
func (h SendAvailabilityRemindersCommandHandler) Handle(
	ctx context.Context,
	cmd SendAvailabilityRemindersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.OrderRepository().GetAllStalePending(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, aggregate := range stale {
		party := order.SenderParty
		if aggregate.Status() == order.ReceiverAvailabilityPending {
			party = order.ReceiverParty
		}

		if err = h.notifier.PublishAvailabilityRequest(ctx, aggregate, party); err != nil {
			return sent, err
		}
		sent++
	}

	return sent, nil
}
