package commands

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/core/domain/services"
)

// ConfirmAvailabilityResult reports the order status after a confirmation
// and, when the receiver's submission produced an automatic window, the
// suggested pickup and delivery days.
type ConfirmAvailabilityResult struct {
	Status      order.Status
	HasWindow   bool
	PickupDay   kernel.Day
	DeliveryDay kernel.Day
}

// ConfirmAvailabilityCommandHandler records a party's candidate dates. On
// the receiver path it immediately reconciles both date sets: a feasible
// window moves the order into the schedulable pool, no window flags it for
// manual approval. Everything happens in one transaction.
//
// Example:
//
//	handler := NewConfirmAvailabilityCommandHandler(uowFactory)
//	cmd, _ := NewConfirmAvailabilityCommand(orderID, order.ReceiverParty, dates)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if result.HasWindow {
//	    fmt.Printf("suggested window %s to %s", result.PickupDay, result.DeliveryDay)
//	}
type ConfirmAvailabilityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmAvailabilityCommandHandler creates a handler for availability
// confirmation operations. Requires an OrderUoWFactory for transactional
// persistence.
func NewConfirmAvailabilityCommandHandler(uowFactory OrderUoWFactory) ConfirmAvailabilityCommandHandler {
	return ConfirmAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability confirmation command.
// Records the party's dates (a repeat submission is rejected with
// AlreadyConfirmed), runs the reconciler on the receiver path, and persists
// the resulting status in the same transaction.
func (h ConfirmAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmAvailabilityCommand,
) (ConfirmAvailabilityResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmAvailabilityResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmAvailabilityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ConfirmAvailabilityResult{}, err
	}

	result := ConfirmAvailabilityResult{}
	switch cmd.Party() {
	case order.SenderParty:
		err = aggregate.ConfirmSenderAvailability(cmd.Dates())
	case order.ReceiverParty:
		if err = aggregate.ConfirmReceiverAvailability(cmd.Dates()); err != nil {
			break
		}
		result, err = h.applyResolution(aggregate)
	default:
		err = cmd.Party().Validate()
	}
	if err != nil {
		return ConfirmAvailabilityResult{}, err
	}
	result.Status = aggregate.Status()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ConfirmAvailabilityResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmAvailabilityResult{}, err
	}

	return result, nil
}

// applyResolution reconciles the two candidate date sets and applies the
// outcome: a feasible window marks the order schedulable, none marks it
// pending approval.
func (h ConfirmAvailabilityCommandHandler) applyResolution(aggregate *order.Order) (ConfirmAvailabilityResult, error) {
	resolution, err := services.NewAvailabilityReconciler().Reconcile(
		aggregate.SenderCandidateDates(),
		aggregate.ReceiverCandidateDates(),
	)
	if err != nil {
		return ConfirmAvailabilityResult{}, err
	}

	if resolution.NeedsApproval() {
		return ConfirmAvailabilityResult{}, aggregate.MarkPendingApproval()
	}

	if err := aggregate.MarkSchedulable(); err != nil {
		return ConfirmAvailabilityResult{}, err
	}

	return ConfirmAvailabilityResult{
		HasWindow:   true,
		PickupDay:   resolution.PickupDay(),
		DeliveryDay: resolution.DeliveryDay(),
	}, nil
}
