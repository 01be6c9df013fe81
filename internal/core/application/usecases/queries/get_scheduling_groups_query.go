package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrGetSchedulingGroupsQueryIsNotConstructed = errors.New(
	"GetSchedulingGroupsQuery must be created via NewGetSchedulingGroupsQuery constructor",
)

// GetSchedulingGroupsQuery computes the planning board for one leg: the
// scheduling groups over the current pool, bucketed across a date horizon
// starting today. Groups are recomputed from order state on every call and
// never persisted.
//
// Example:
//
//	query, err := NewGetSchedulingGroupsQuery(order.PickupLeg, 5)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetSchedulingGroupsQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute planning board: %w", err)
//	}
//
//	for _, bucket := range board.Buckets {
//	    fmt.Printf("%s: %d groups\n", bucket.Day, len(bucket.Groups))
//	}
type GetSchedulingGroupsQuery struct { //nolint:recvcheck //using for validation
	leg         order.Leg
	horizonDays int

	guard guard.ConstructorGuard
}

// NewGetSchedulingGroupsQuery creates a planning board query for a leg.
// Validates that the leg is valid and the horizon length is positive; the
// upper bound on the horizon is enforced by the domain when the board is
// computed.
func NewGetSchedulingGroupsQuery(leg order.Leg, horizonDays int) (GetSchedulingGroupsQuery, error) {
	query := GetSchedulingGroupsQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setLeg(leg),
		query.setHorizonDays(horizonDays),
	); err != nil {
		return GetSchedulingGroupsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSchedulingGroupsQueryIsNotConstructed if validation fails.
func (q GetSchedulingGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetSchedulingGroupsQueryIsNotConstructed)
}

// Leg returns the leg the board is computed for.
func (q GetSchedulingGroupsQuery) Leg() order.Leg {
	return q.leg
}

// HorizonDays returns the number of days the board covers, starting today.
func (q GetSchedulingGroupsQuery) HorizonDays() int {
	return q.horizonDays
}

// GetSchedulingGroupsQueryResponse is the planning board for one leg: the
// full group list, the per-day buckets over the horizon, and the orders
// excluded from grouping with the reason each was skipped.
type GetSchedulingGroupsQueryResponse struct {
	Groups   []SchedulingGroupResponse
	Buckets  []DateBucketResponse
	Warnings []GroupingWarningResponse
}

// SchedulingGroupResponse represents one scheduling group on the board:
// orders sharing a grouping location and a directed lane for the leg.
type SchedulingGroupResponse struct {
	LocationKey string
	Lane        string
	Members     []GroupMemberResponse
}

// GroupMemberResponse pairs a member order with the candidate dates the
// relevant party offered for the grouped leg.
type GroupMemberResponse struct {
	OrderID        kernel.UUID
	CandidateDates []kernel.Day
}

// DateBucketResponse lists the groups available on one day of the horizon,
// each filtered down to the members that offered that day.
type DateBucketResponse struct {
	Day    kernel.Day
	Groups []SchedulingGroupResponse
}

// GroupingWarningResponse surfaces an order excluded from grouping, with a
// human-readable cause for the operator.
type GroupingWarningResponse struct {
	OrderID kernel.UUID
	Cause   string
}

func (q *GetSchedulingGroupsQuery) setLeg(leg order.Leg) error {
	if err := leg.Validate(); err != nil {
		return err
	}

	q.leg = leg
	return nil
}

func (q *GetSchedulingGroupsQuery) setHorizonDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsRequiredError("horizon days")
	}

	q.horizonDays = days
	return nil
}
