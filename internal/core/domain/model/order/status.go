package order

import (
	"errors"
	"fmt"

	"booking/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for rejected lifecycle transitions.
// Use errors.Is to classify and errors.As with *InvalidTransitionError to
// inspect the offending pair.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a status transition that the lifecycle
// graph does not allow. It is an expected business outcome rather than a
// fault: a concurrent operator action or a stale client view usually
// explains it.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// given current and requested statuses.
func NewInvalidTransitionError(from Status, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the booking workflow from creation through availability
// collection, scheduling, dispatch and the driver legs.
//
// State transitions:
//
//	created ──> sender_availability_pending ──> sender_availability_confirmed
//	                                                          │
//	                                                          v
//	               receiver_availability_confirmed <── receiver_availability_pending
//	                      │                  │
//	                      v                  v
//	        scheduled_dates_pending    pending_approval
//	                      │                  │
//	                      └────────┬─────────┘
//	                               v
//	                    collection_scheduled ──> delivery_scheduled ──> scheduled
//	                               │                      │                 │
//	                               └──────────────┬───────┴─────────────────┘
//	                                              v
//	                                    driver_to_collection ──> collected
//	                                                                 │
//	                                                                 v
//	                            delivered <── shipped <── driver_to_delivery
//
// Additional edges not drawn above: cancelled is reachable from every
// non-terminal status; the explicit schedule reset returns
// collection_scheduled, delivery_scheduled and scheduled to
// scheduled_dates_pending; and collection_scheduled is reachable directly
// from any schedulable status, which is how group dispatch assigns a
// pickup date without walking the intermediate states.
//
// Status is a value object that validates state transitions and provides
// the snake_case string representations used for persistence and the API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first registered.
	// Orders in this status hold no availability information yet.
	Created

	// SenderAvailabilityPending indicates the sender has been asked for
	// candidate pickup dates and has not answered yet.
	SenderAvailabilityPending

	// SenderAvailabilityConfirmed indicates the sender submitted at least
	// one candidate pickup date.
	SenderAvailabilityConfirmed

	// ReceiverAvailabilityPending indicates the receiver has been asked
	// for candidate delivery dates and has not answered yet.
	ReceiverAvailabilityPending

	// ReceiverAvailabilityConfirmed indicates the receiver submitted at
	// least one candidate delivery date.
	ReceiverAvailabilityConfirmed

	// PendingApproval indicates both parties answered but no automatic
	// pickup/delivery window exists, so an operator must pick dates.
	PendingApproval

	// ScheduledDatesPending indicates the order is cleared for scheduling
	// and waits for concrete dates.
	ScheduledDatesPending

	// CollectionScheduled indicates a concrete pickup date is assigned
	// while the delivery date is still open.
	CollectionScheduled

	// DeliveryScheduled indicates both dates are assigned and the
	// schedule awaits finalization.
	DeliveryScheduled

	// Scheduled indicates the schedule is finalized: both dates are set
	// and the delivery falls strictly after the pickup.
	Scheduled

	// DriverToCollection indicates a driver is en route to the sender.
	DriverToCollection

	// Collected indicates the shipment has been picked up from the sender.
	Collected

	// DriverToDelivery indicates a driver is en route to the receiver.
	DriverToDelivery

	// Shipped indicates the shipment is in transit on its delivery leg.
	Shipped

	// Delivered indicates the shipment reached the receiver.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was withdrawn.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                       "unknown",
		Created:                       "created",
		SenderAvailabilityPending:     "sender_availability_pending",
		SenderAvailabilityConfirmed:   "sender_availability_confirmed",
		ReceiverAvailabilityPending:   "receiver_availability_pending",
		ReceiverAvailabilityConfirmed: "receiver_availability_confirmed",
		PendingApproval:               "pending_approval",
		ScheduledDatesPending:         "scheduled_dates_pending",
		CollectionScheduled:           "collection_scheduled",
		DeliveryScheduled:             "delivery_scheduled",
		Scheduled:                     "scheduled",
		DriverToCollection:            "driver_to_collection",
		Collected:                     "collected",
		DriverToDelivery:              "driver_to_delivery",
		Shipped:                       "shipped",
		Delivered:                     "delivered",
		Cancelled:                     "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:                       "created",
		SenderAvailabilityPending:     "sender_availability_pending",
		SenderAvailabilityConfirmed:   "sender_availability_confirmed",
		ReceiverAvailabilityPending:   "receiver_availability_pending",
		ReceiverAvailabilityConfirmed: "receiver_availability_confirmed",
		PendingApproval:               "pending_approval",
		ScheduledDatesPending:         "scheduled_dates_pending",
		CollectionScheduled:           "collection_scheduled",
		DeliveryScheduled:             "delivery_scheduled",
		Scheduled:                     "scheduled",
		DriverToCollection:            "driver_to_collection",
		Collected:                     "collected",
		DriverToDelivery:              "driver_to_delivery",
		Shipped:                       "shipped",
		Delivered:                     "delivered",
		Cancelled:                     "cancelled",
	}
}

// getStatusTransitions returns the adjacency table of the lifecycle graph.
// A transition is legal when the target appears in the source's list.
//
// The backward edges into ScheduledDatesPending are the explicit schedule
// reset. Cancelled appears on every non-terminal status. CollectionScheduled
// is reachable from all four schedulable statuses so group dispatch can
// assign a pickup date in one step.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:                     {SenderAvailabilityPending, Cancelled},
		SenderAvailabilityPending:   {SenderAvailabilityConfirmed, Cancelled},
		SenderAvailabilityConfirmed: {ReceiverAvailabilityPending, CollectionScheduled, Cancelled},
		ReceiverAvailabilityPending: {ReceiverAvailabilityConfirmed, Cancelled},
		ReceiverAvailabilityConfirmed: {
			ScheduledDatesPending,
			PendingApproval,
			CollectionScheduled,
			Cancelled,
		},
		PendingApproval:       {CollectionScheduled, Cancelled},
		ScheduledDatesPending: {CollectionScheduled, Cancelled},
		CollectionScheduled: {
			DeliveryScheduled,
			DriverToCollection,
			ScheduledDatesPending,
			Cancelled,
		},
		DeliveryScheduled: {
			Scheduled,
			DriverToCollection,
			ScheduledDatesPending,
			Cancelled,
		},
		Scheduled:          {DriverToCollection, ScheduledDatesPending, Cancelled},
		DriverToCollection: {Collected, Cancelled},
		Collected:          {DriverToDelivery, Cancelled},
		DriverToDelivery:   {Shipped, Cancelled},
		Shipped:            {Delivered, Cancelled},
		Delivered:          {},
		Cancelled:          {},
	}
}

// ParseStatus converts the snake_case wire representation into a Status.
//
// Parameters:
//   - s: the status name as stored in the database or sent over the API
//
// Returns:
//   - the matching Status on success
//   - (Unknown, error) when the string names no valid status
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Unknown (0) and any out-of-range values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
//
// Returns:
//   - the status name for valid statuses
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
//
// Example:
//
//	fmt.Println(order.Status()) // Output: "collection_scheduled"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the lifecycle graph has an edge from the
// current status to the target.
//
// This method provides transition validation without side effects, useful
// for pre-validation before calling external systems.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition along the lifecycle graph.
//
// Valid transitions are defined by the adjacency table; see the Status type
// documentation for the full graph.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) when the target is not a valid status
//   - (0, *InvalidTransitionError) when the graph has no edge to the target
//
// This method is used by the Order transition methods to enforce the graph.
// Field-level guards (dates present, job references attached) live on Order.
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.Collected)
//	if err != nil {
//	    // Handle invalid transition
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, NewInvalidTransitionError(s, target)
	}

	return target, nil
}

// IsTerminal reports whether the status ends the lifecycle.
// Terminal orders accept no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsSchedulable reports whether the order sits in the scheduling pool:
// past availability collection but without a dispatched pickup. These are
// the statuses the grouping engine scans.
func (s Status) IsSchedulable() bool {
	switch s {
	case SenderAvailabilityConfirmed,
		ReceiverAvailabilityConfirmed,
		PendingApproval,
		ScheduledDatesPending:
		return true
	default:
		return false
	}
}

// IsCollected reports whether the shipment has left the sender.
func (s Status) IsCollected() bool {
	switch s {
	case Collected, DriverToDelivery, Shipped, Delivered:
		return true
	default:
		return false
	}
}

// IsCancelled reports whether the order was withdrawn.
func (s Status) IsCancelled() bool {
	return s == Cancelled
}

// SchedulableStatuses returns the statuses of the scheduling pool in
// lifecycle order. Used to build persistence queries that scan the pool.
func SchedulableStatuses() []Status {
	return []Status{
		SenderAvailabilityConfirmed,
		ReceiverAvailabilityConfirmed,
		PendingApproval,
		ScheduledDatesPending,
	}
}
