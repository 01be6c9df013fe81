package commands

import (
	"context"
)

// FinalizeScheduleCommandHandler confirms an order's schedule once both legs
// carry a date, moving it from delivery_scheduled to scheduled.
type FinalizeScheduleCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinalizeScheduleCommandHandler creates a handler for schedule
// finalization. Requires an OrderUoWFactory for transactional persistence.
func NewFinalizeScheduleCommandHandler(uowFactory OrderUoWFactory) FinalizeScheduleCommandHandler {
	return FinalizeScheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the schedule finalization command.
// The aggregate re-validates that both dates exist and keep their order
// before accepting the transition.
func (h FinalizeScheduleCommandHandler) Handle(ctx context.Context, cmd FinalizeScheduleCommand) error {
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

	if err = aggregate.FinalizeSchedule(); err != nil {
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
