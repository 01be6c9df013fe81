package commands

import (
	"context"
)

// RecordProgressCommandHandler applies operational progress events to an
// order. The aggregate enforces the operational sequence and the presence of
// the leg's job reference before the driver starts moving.
type RecordProgressCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordProgressCommandHandler creates a handler for progress recording
// operations. Requires an OrderUoWFactory for transactional persistence.
func NewRecordProgressCommandHandler(uowFactory OrderUoWFactory) RecordProgressCommandHandler {
	return RecordProgressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the progress recording command.
// Out-of-order events are rejected with an invalid transition error and
// leave the order unchanged.
func (h RecordProgressCommandHandler) Handle(ctx context.Context, cmd RecordProgressCommand) error {
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

	if err = aggregate.ApplyProgress(cmd.Event()); err != nil {
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
