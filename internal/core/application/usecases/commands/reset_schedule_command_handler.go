package commands

import (
	"context"
)

// ResetScheduleCommandHandler executes the explicit schedule reset,
// returning the order to scheduled_dates_pending with all scheduling fields
// cleared. Candidate dates survive, so the order is immediately groupable
// again.
type ResetScheduleCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResetScheduleCommandHandler creates a handler for schedule reset
// operations. Requires an OrderUoWFactory for transactional persistence.
func NewResetScheduleCommandHandler(uowFactory OrderUoWFactory) ResetScheduleCommandHandler {
	return ResetScheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the schedule reset command.
// Resetting is legal from the scheduled statuses and as a self-loop in
// scheduled_dates_pending; anything else is an invalid transition.
func (h ResetScheduleCommandHandler) Handle(ctx context.Context, cmd ResetScheduleCommand) error {
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

	if err = aggregate.ResetSchedule(); err != nil {
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
