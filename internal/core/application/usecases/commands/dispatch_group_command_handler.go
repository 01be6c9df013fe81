package commands

import (
	"context"
	"slices"

	"booking/internal/core/domain/model/dispatch"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
)

// DispatchOutcome reports what happened to one member order of a group
// dispatch. JobRef is set for dispatched and already_dispatched outcomes.
// Err carries the cause for failed outcomes.
type DispatchOutcome struct {
	OrderID kernel.UUID
	Outcome dispatch.Outcome
	JobRef  string
	Err     error
}

// DispatchGroupCommandHandler hands a scheduling group over to the external
// fulfilment provider, one job per member order and leg.
//
// Key responsibilities:
//   - Recomputing the group from current data instead of trusting the caller
//   - Processing every member in its own unit of work so one failure never
//     aborts the rest of the group
//   - Skipping members that already carry a job reference for the leg
//   - Adopting fulfilment jobs left behind by earlier failed runs through an
//     idempotency key read-back before creating new ones
//   - Recording an audit entry for every attempt
type DispatchGroupCommandHandler struct {
	uowFactory       UoWFactory
	fulfilmentClient ports.FulfilmentClient
}

// NewDispatchGroupCommandHandler creates a handler with the unit of work
// factory and the fulfilment client it needs to dispatch groups.
func NewDispatchGroupCommandHandler(
	uowFactory UoWFactory,
	fulfilmentClient ports.FulfilmentClient,
) DispatchGroupCommandHandler {
	return DispatchGroupCommandHandler{
		uowFactory:       uowFactory,
		fulfilmentClient: fulfilmentClient,
	}
}

// Handle executes the group dispatch.
//
// The lane's group is rebuilt from the current scheduling pool, members are
// narrowed to those that offered the dispatch day, and each one is handed
// over to the fulfilment provider in a separate transaction. The returned
// slice carries a per-order outcome of dispatched, already_dispatched or
// failed; failures are reported there and never abort the rest of the group.
//
// Returns ErrGroupNotFound when the current pool has no group for the lane.
func (h DispatchGroupCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchGroupCommand,
) ([]DispatchOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	group, err := h.loadGroup(ctx, cmd)
	if err != nil {
		return nil, err
	}

	outcomes := make([]DispatchOutcome, 0, len(group.Members))
	for _, member := range group.Members {
		if !slices.Contains(member.CandidateDates, cmd.Day()) {
			continue
		}

		outcomes = append(outcomes, h.dispatchMember(ctx, member.OrderID, cmd))
	}

	return outcomes, nil
}

func (h DispatchGroupCommandHandler) loadGroup(
	ctx context.Context,
	cmd DispatchGroupCommand,
) (services.SchedulingGroup, error) {
	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return services.SchedulingGroup{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	pool, err := uow.OrderRepository().GetAllSchedulable(ctx)
	if err != nil {
		return services.SchedulingGroup{}, err
	}

	return groupForLane(pool, cmd.Leg(), cmd.Lane())
}

// dispatchMember hands one member order over to the fulfilment provider.
// The member is re-read inside its own transaction: the group snapshot the
// operator acted on may be stale, so idempotency and transition checks run
// against fresh state.
func (h DispatchGroupCommandHandler) dispatchMember(
	ctx context.Context,
	orderID kernel.UUID,
	cmd DispatchGroupCommand,
) DispatchOutcome {
	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return h.failDispatch(ctx, orderID, cmd.Leg(), err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return h.failDispatch(ctx, orderID, cmd.Leg(), err)
	}

	if ref := aggregate.JobRef(cmd.Leg()); ref != "" {
		return h.repeatDispatch(ctx, uow, orderID, cmd.Leg(), ref)
	}

	if target := dispatchTarget(cmd.Leg()); !aggregate.Status().CanTransitionTo(target) {
		return h.failDispatch(ctx, orderID, cmd.Leg(), order.NewInvalidTransitionError(aggregate.Status(), target))
	}

	ref, err := h.provisionJob(ctx, aggregate, cmd.Leg())
	if err != nil {
		return h.failDispatch(ctx, orderID, cmd.Leg(), err)
	}

	switch cmd.Leg() {
	case order.PickupLeg:
		err = aggregate.SchedulePickup(cmd.Day().Time(), "")
	case order.DeliveryLeg:
		err = aggregate.ScheduleDelivery(cmd.Day().Time(), "")
	case order.UnknownLeg:
		err = cmd.Leg().Validate()
	}
	if err == nil {
		err = aggregate.AttachJobRef(cmd.Leg(), ref)
	}
	if err != nil {
		return h.failDispatch(ctx, orderID, cmd.Leg(), err)
	}

	record, err := dispatch.NewDispatchedRecord(kernel.NewUUID(), orderID, cmd.Leg(), ref)
	if err != nil {
		return h.failDispatch(ctx, orderID, cmd.Leg(), err)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return h.failDispatch(ctx, orderID, cmd.Leg(), err)
	}

	if err = uow.DispatchRecordRepository().Add(ctx, record); err != nil {
		return h.failDispatch(ctx, orderID, cmd.Leg(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return h.failDispatch(ctx, orderID, cmd.Leg(), err)
	}

	return DispatchOutcome{OrderID: orderID, Outcome: dispatch.Dispatched, JobRef: ref}
}

// provisionJob obtains the fulfilment job reference for the leg. An existing
// job is adopted first: the idempotency key read-back catches jobs created by
// a run that failed before the reference was persisted, so a retry never
// books the courier twice.
func (h DispatchGroupCommandHandler) provisionJob(
	ctx context.Context,
	aggregate *order.Order,
	leg order.Leg,
) (string, error) {
	key := dispatch.IdempotencyKey(aggregate.ID(), leg)

	ref, found, err := h.fulfilmentClient.LookupJob(ctx, key)
	if err != nil {
		return "", err
	}
	if found {
		return ref, nil
	}

	return h.fulfilmentClient.CreateJob(ctx, key, aggregate, leg)
}

// repeatDispatch records an attempt against a member that already carries a
// job reference for the leg. The order itself is left untouched and the
// audit write is best effort.
func (h DispatchGroupCommandHandler) repeatDispatch(
	ctx context.Context,
	uow UoW,
	orderID kernel.UUID,
	leg order.Leg,
	ref string,
) DispatchOutcome {
	record, err := dispatch.NewAlreadyDispatchedRecord(kernel.NewUUID(), orderID, leg, ref)
	if err == nil {
		if err = uow.DispatchRecordRepository().Add(ctx, record); err == nil {
			_ = uow.Commit(ctx)
		}
	}

	return DispatchOutcome{OrderID: orderID, Outcome: dispatch.AlreadyDispatched, JobRef: ref}
}

// failDispatch builds a failed outcome and writes the audit record for the
// attempt in its own transaction, so the member's rolled back unit of work
// cannot swallow it.
func (h DispatchGroupCommandHandler) failDispatch(
	ctx context.Context,
	orderID kernel.UUID,
	leg order.Leg,
	cause error,
) DispatchOutcome {
	h.recordFailure(ctx, orderID, leg, cause)

	return DispatchOutcome{OrderID: orderID, Outcome: dispatch.Failed, Err: cause}
}

// recordFailure persists a failed dispatch record best effort: the outcome
// already carries the error, so an audit write failure is not surfaced.
func (h DispatchGroupCommandHandler) recordFailure(
	ctx context.Context,
	orderID kernel.UUID,
	leg order.Leg,
	cause error,
) {
	record, err := dispatch.NewFailedRecord(kernel.NewUUID(), orderID, leg, cause.Error())
	if err != nil {
		return
	}

	uow := h.uowFactory.Create()

	if err = uow.Begin(ctx); err != nil {
		return
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err = uow.DispatchRecordRepository().Add(ctx, record); err != nil {
		return
	}

	_ = uow.Commit(ctx)
}

// dispatchTarget returns the status a successful dispatch moves the order to.
func dispatchTarget(leg order.Leg) order.Status {
	if leg == order.DeliveryLeg {
		return order.DeliveryScheduled
	}

	return order.CollectionScheduled
}
