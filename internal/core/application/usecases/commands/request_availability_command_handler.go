package commands

import (
	"context"

	"booking/internal/core/domain/model/order"
	"booking/internal/core/ports"
)

// RequestAvailabilityCommandHandler moves an order into the party's
// availability pending status and publishes the availability-request event
// for the notification sender.
//
// The handler applies the conditional state write first and publishes before
// committing: a lost optimistic-concurrency race fails the update and no
// event leaves the process; a publish failure rolls the transition back.
//
// Example:
//
//	handler := NewRequestAvailabilityCommandHandler(uowFactory, notifier)
//	cmd, _ := NewRequestAvailabilityCommand(orderID, order.SenderParty)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("availability request failed: %w", err)
//	}
type RequestAvailabilityCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.AvailabilityNotifier
}

// NewRequestAvailabilityCommandHandler creates a handler for availability
// request operations. Requires an OrderUoWFactory for transactional
// persistence and the notifier the event is published through.
func NewRequestAvailabilityCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.AvailabilityNotifier,
) RequestAvailabilityCommandHandler {
	return RequestAvailabilityCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the availability request command.
// Applies the pending transition for the commanded party, persists the
// order, publishes the availability-request event, and commits. The
// transition fails when the party has no phone and no email.
func (h RequestAvailabilityCommandHandler) Handle(ctx context.Context, cmd RequestAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Party() {
	case order.SenderParty:
		err = aggregate.RequestSenderAvailability()
	case order.ReceiverParty:
		err = aggregate.RequestReceiverAvailability()
	default:
		err = cmd.Party().Validate()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.notifier.PublishAvailabilityRequest(ctx, aggregate, cmd.Party()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
