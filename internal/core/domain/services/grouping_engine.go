package services

import (
	"cmp"
	"slices"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
)

// GroupMember pairs an order with the candidate dates relevant to the
// grouped leg: sender dates for pickup groups, receiver dates for delivery
// groups.
type GroupMember struct {
	OrderID        kernel.UUID
	CandidateDates []kernel.Day
}

// SchedulingGroup is a set of schedulable orders sharing a grouping location
// and a lane for one leg. Groups are ephemeral snapshots: they are computed
// fresh from current order state on every query and never persisted.
type SchedulingGroup struct {
	Leg         order.Leg
	LocationKey string
	Lane        string
	Members     []GroupMember
}

// OrderIDs returns the member order identifiers in group order.
func (g SchedulingGroup) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(g.Members))
	for _, member := range g.Members {
		ids = append(ids, member.OrderID)
	}
	return ids
}

// GroupingWarning surfaces an order excluded from grouping, typically
// because its grouping address has no usable city. Excluded orders are
// reported, never dropped silently.
type GroupingWarning struct {
	OrderID kernel.UUID
	Cause   error
}

// DateBucket assigns groups to one day of the planning horizon. A group
// appears in a bucket filtered down to the members available on that day.
type DateBucket struct {
	Day    kernel.Day
	Groups []SchedulingGroup
}

// GroupingEngine is a domain service that partitions schedulable orders into
// location and lane groups and buckets them across a date horizon for the
// operator's planning board.
//
// Key responsibilities:
//   - Selecting the orders that belong to a leg's scheduling pool
//   - Grouping by city-level location key and directed lane
//   - Bucketing groups over the horizon by member availability
//   - Surfacing orders with unresolvable grouping addresses
//
// Business rules:
//   - The pickup pool is the schedulable status set; the delivery pool
//     additionally includes collection_scheduled (pickup fixed, delivery open)
//   - The location key comes from the sender address for pickup legs and
//     the receiver address for delivery legs
//   - The lane is the directed sender-to-receiver address pair; the reverse
//     direction is a distinct group
//   - Output ordering is deterministic: groups by location key then lane,
//     members by order ID
//
// The engine is pure: it reads the provided orders and computes, with no
// I/O and no clock access.
//
// Example usage:
//
//	engine := services.NewGroupingEngine()
//	groups, warnings, err := engine.GroupOrders(orders, order.PickupLeg)
//	if err != nil {
//	    // Handle invalid input
//	}
//	buckets, err := engine.BucketByDate(groups, horizon)
type GroupingEngine struct{}

// NewGroupingEngine creates a new GroupingEngine instance.
func NewGroupingEngine() GroupingEngine {
	return GroupingEngine{}
}

// GroupOrders partitions the given orders into scheduling groups for a leg.
//
// Parameters:
//   - orders: The orders to consider (typically the schedulable pool)
//   - leg: The leg to group for
//
// Returns:
//   - []SchedulingGroup: Deterministically ordered groups
//   - []GroupingWarning: Orders excluded for unresolvable addresses
//   - error: Validation error if the leg or any order is invalid
//
// Orders outside the leg's scheduling pool are skipped. Orders whose
// grouping address yields no location key are excluded and surfaced in the
// warnings list.
func (e GroupingEngine) GroupOrders(orders []*order.Order, leg order.Leg) ([]SchedulingGroup, []GroupingWarning, error) {
	if err := leg.Validate(); err != nil {
		return nil, nil, err
	}

	type laneKey struct {
		location string
		lane     string
	}

	members := make(map[laneKey][]GroupMember)
	var warnings []GroupingWarning

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, nil, err
		}

		if !inSchedulingPool(o.Status(), leg) {
			continue
		}

		location, err := groupingAddress(o, leg).RegionKey()
		if err != nil {
			warnings = append(warnings, GroupingWarning{OrderID: o.ID(), Cause: err})
			continue
		}

		key := laneKey{
			location: location,
			lane:     o.Sender().Address().LaneKey(o.Receiver().Address()),
		}
		members[key] = append(members[key], GroupMember{
			OrderID:        o.ID(),
			CandidateDates: candidateDatesFor(o, leg),
		})
	}

	groups := make([]SchedulingGroup, 0, len(members))
	for key, groupMembers := range members {
		slices.SortFunc(groupMembers, func(a, b GroupMember) int {
			return cmp.Compare(a.OrderID.String(), b.OrderID.String())
		})

		groups = append(groups, SchedulingGroup{
			Leg:         leg,
			LocationKey: key.location,
			Lane:        key.lane,
			Members:     groupMembers,
		})
	}

	slices.SortFunc(groups, func(a, b SchedulingGroup) int {
		if c := cmp.Compare(a.LocationKey, b.LocationKey); c != 0 {
			return c
		}
		return cmp.Compare(a.Lane, b.Lane)
	})

	return groups, warnings, nil
}

// BucketByDate assigns the groups to the days of the horizon.
//
// Parameters:
//   - groups: Groups produced by GroupOrders
//   - horizon: The planning horizon to bucket over
//
// Returns:
//   - []DateBucket: One bucket per horizon day in ascending order
//   - error: Validation error if the horizon is unconstructed
//
// A group appears in a day's bucket when at least one member offered that
// day; the bucketed group carries only those members. Days nobody offered
// yield an empty bucket so the board can render the full horizon.
func (e GroupingEngine) BucketByDate(groups []SchedulingGroup, horizon DateHorizon) ([]DateBucket, error) {
	if err := horizon.Validate(); err != nil {
		return nil, err
	}

	buckets := make([]DateBucket, 0, horizon.Length())
	for _, day := range horizon.Days() {
		bucket := DateBucket{Day: day}

		for _, group := range groups {
			var available []GroupMember
			for _, member := range group.Members {
				if slices.Contains(member.CandidateDates, day) {
					available = append(available, member)
				}
			}

			if len(available) == 0 {
				continue
			}

			bucket.Groups = append(bucket.Groups, SchedulingGroup{
				Leg:         group.Leg,
				LocationKey: group.LocationKey,
				Lane:        group.Lane,
				Members:     available,
			})
		}

		buckets = append(buckets, bucket)
	}

	return buckets, nil
}

// inSchedulingPool reports whether an order status belongs to the leg's
// scheduling pool. The delivery pool includes collection_scheduled because
// such orders still need a delivery date.
func inSchedulingPool(status order.Status, leg order.Leg) bool {
	if status.IsSchedulable() {
		return true
	}
	return leg == order.DeliveryLeg && status == order.CollectionScheduled
}

// groupingAddress returns the address that anchors the leg's visit.
func groupingAddress(o *order.Order, leg order.Leg) kernel.Address {
	if leg == order.DeliveryLeg {
		return o.Receiver().Address()
	}
	return o.Sender().Address()
}

// candidateDatesFor returns the party dates relevant to the leg.
func candidateDatesFor(o *order.Order, leg order.Leg) []kernel.Day {
	if leg == order.DeliveryLeg {
		return o.ReceiverCandidateDates()
	}
	return o.SenderCandidateDates()
}
