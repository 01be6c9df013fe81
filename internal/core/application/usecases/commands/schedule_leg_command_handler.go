package commands

import (
	"context"

	"booking/internal/core/domain/model/order"
)

// ScheduleLegCommandHandler handles manual per-order date assignment.
// Scheduling the pickup moves the order to collection_scheduled; scheduling
// the delivery moves it on to delivery_scheduled. Rescheduling goes through
// the explicit reset operation, never through this handler.
type ScheduleLegCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewScheduleLegCommandHandler creates a handler for leg scheduling
// operations. Requires an OrderUoWFactory for transactional persistence.
func NewScheduleLegCommandHandler(uowFactory OrderUoWFactory) ScheduleLegCommandHandler {
	return ScheduleLegCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the leg scheduling command.
// Applies the pickup or delivery assignment on the aggregate and persists
// the result. Assigning an already scheduled leg fails; the delivery must be
// strictly after the pickup.
func (h ScheduleLegCommandHandler) Handle(ctx context.Context, cmd ScheduleLegCommand) error {
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

	switch cmd.Leg() {
	case order.PickupLeg:
		err = aggregate.SchedulePickup(cmd.At(), cmd.Timeslot())
	case order.DeliveryLeg:
		err = aggregate.ScheduleDelivery(cmd.At(), cmd.Timeslot())
	default:
		err = cmd.Leg().Validate()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
