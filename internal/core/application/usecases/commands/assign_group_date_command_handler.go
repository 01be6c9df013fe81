package commands

import (
	"context"
	"errors"
	"slices"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/core/domain/services"
)

var ErrGroupNotFound = errors.New("no scheduling group found for the lane")

// GroupDateAssignment reports the outcome for one member order of a group
// date assignment. Err is nil when the assignment succeeded.
type GroupDateAssignment struct {
	OrderID kernel.UUID
	Err     error
}

// AssignGroupDateCommandHandler processes AssignGroupDateCommand requests.
// The group is recomputed from current data rather than trusted from the
// caller, so a stale planning board cannot schedule orders that have moved
// on. Each member is updated in its own unit of work: one failed member
// never rolls back the others.
type AssignGroupDateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignGroupDateCommandHandler creates a handler with the unit of work
// factory it needs to load the scheduling pool and update member orders.
func NewAssignGroupDateCommandHandler(uowFactory OrderUoWFactory) AssignGroupDateCommandHandler {
	return AssignGroupDateCommandHandler{uowFactory: uowFactory}
}

// Handle executes the group date assignment.
//
// The lane's group is rebuilt from the current scheduling pool, members are
// narrowed to those that offered the assigned day, and each one has the date
// applied to the leg in a separate transaction. The returned slice carries a
// per-order outcome; a failure is reported there and never aborts the rest
// of the group.
//
// Returns ErrGroupNotFound when the current pool has no group for the lane.
func (h AssignGroupDateCommandHandler) Handle(
	ctx context.Context,
	cmd AssignGroupDateCommand,
) ([]GroupDateAssignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	group, err := h.loadGroup(ctx, cmd)
	if err != nil {
		return nil, err
	}

	outcomes := make([]GroupDateAssignment, 0, len(group.Members))
	for _, member := range group.Members {
		if !slices.Contains(member.CandidateDates, cmd.Day()) {
			continue
		}

		outcomes = append(outcomes, GroupDateAssignment{
			OrderID: member.OrderID,
			Err:     h.assignMember(ctx, member.OrderID, cmd),
		})
	}

	return outcomes, nil
}

func (h AssignGroupDateCommandHandler) loadGroup(
	ctx context.Context,
	cmd AssignGroupDateCommand,
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

func (h AssignGroupDateCommandHandler) assignMember(
	ctx context.Context,
	orderID kernel.UUID,
	cmd AssignGroupDateCommand,
) error {
	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	switch cmd.Leg() {
	case order.PickupLeg:
		err = aggregate.SchedulePickup(cmd.Day().Time(), cmd.Timeslot())
	case order.DeliveryLeg:
		err = aggregate.ScheduleDelivery(cmd.Day().Time(), cmd.Timeslot())
	case order.UnknownLeg:
		err = cmd.Leg().Validate()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// groupForLane recomputes the scheduling groups for the leg and selects the
// one matching the lane key. Grouping warnings are skipped: an order whose
// address cannot produce a lane key is never a member of any lane's group.
func groupForLane(pool []*order.Order, leg order.Leg, lane string) (services.SchedulingGroup, error) {
	groups, _, err := services.NewGroupingEngine().GroupOrders(pool, leg)
	if err != nil {
		return services.SchedulingGroup{}, err
	}

	for _, group := range groups {
		if group.Lane == lane {
			return group, nil
		}
	}

	return services.SchedulingGroup{}, ErrGroupNotFound
}
