package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAlreadyConfirmed is the sentinel for repeated availability submissions.
	// A party's candidate date set is populated at most once.
	ErrAlreadyConfirmed = errors.New("availability already confirmed")
)

// AlreadyConfirmedError reports an availability submission for a party whose
// candidate dates are already recorded. The first submission wins; corrections
// go through support, not through a second submit.
type AlreadyConfirmedError struct {
	Party PartyRole
}

// NewAlreadyConfirmedError creates an AlreadyConfirmedError for the given party.
func NewAlreadyConfirmedError(party PartyRole) *AlreadyConfirmedError {
	return &AlreadyConfirmedError{Party: party}
}

func (e *AlreadyConfirmedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyConfirmed, e.Party)
}

func (e *AlreadyConfirmedError) Unwrap() error {
	return ErrAlreadyConfirmed
}

// Order represents a courier booking in the system. It is the aggregate root
// that manages the order lifecycle from creation through availability
// collection and scheduling to the operational driver legs.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have valid sender and receiver parties
//   - Status transitions follow the lifecycle graph (status is written only
//     by the transition methods below)
//   - Candidate date sets are recorded at most once per party
//   - When both scheduled dates are set, the delivery falls strictly after
//     the pickup
//   - External job references are write-once per leg until reset or cancel
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// sender is the party the shipment is collected from
	sender Party

	// receiver is the party the shipment is delivered to
	receiver Party

	// status represents the current state in the order lifecycle
	status Status

	// senderCandidateDates are the pickup dates offered by the sender,
	// sorted and deduplicated, populated at most once
	senderCandidateDates []kernel.Day

	// receiverCandidateDates are the delivery dates offered by the receiver,
	// sorted and deduplicated, populated at most once
	receiverCandidateDates []kernel.Day

	// scheduledPickupAt is the assigned pickup time (nil until scheduled)
	scheduledPickupAt *time.Time

	// scheduledDeliveryAt is the assigned delivery time (nil until scheduled)
	scheduledDeliveryAt *time.Time

	// pickupTimeslot is an optional named time window for the pickup leg
	pickupTimeslot string

	// deliveryTimeslot is an optional named time window for the delivery leg
	deliveryTimeslot string

	// pickupJobRef is the external fulfilment job reference for the pickup leg
	pickupJobRef string

	// deliveryJobRef is the external fulfilment job reference for the delivery leg
	deliveryJobRef string

	// version is the optimistic concurrency token, incremented by the store
	// on every persisted update
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid new Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - sender: The party the shipment is collected from
//   - receiver: The party the shipment is delivered to
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	orderID := kernel.NewUUID()
//	order, err := NewOrder(orderID, sender, receiver)
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and ensures the order is created with
// Created status, no availability recorded, no schedule and version 1.
func NewOrder(id kernel.UUID, sender Party, receiver Party) (*Order, error) {
	order := &Order{
		status:        Created,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setSender(sender),
		order.setReceiver(receiver),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state without applying
// lifecycle rules. It is intended for repositories loading rows from the
// database; application code must use NewOrder.
//
// Parameters:
//   - id, sender, receiver: identity and parties (validated)
//   - status: persisted lifecycle status (validated)
//   - senderDates, receiverDates: recorded candidate date sets
//   - pickupAt, deliveryAt: scheduled times, nil when unscheduled
//   - pickupTimeslot, deliveryTimeslot: optional named time windows
//   - pickupJobRef, deliveryJobRef: external job references, empty when absent
//   - version: optimistic concurrency token (must be positive)
//
// Returns:
//   - *Order: the restored order
//   - error: validation error if identity, parties, status or version are invalid
func RestoreOrder(
	id kernel.UUID,
	sender Party,
	receiver Party,
	status Status,
	senderDates []kernel.Day,
	receiverDates []kernel.Day,
	pickupAt *time.Time,
	deliveryAt *time.Time,
	pickupTimeslot string,
	deliveryTimeslot string,
	pickupJobRef string,
	deliveryJobRef string,
	version int,
) (*Order, error) {
	order := &Order{
		senderCandidateDates:   slices.Clone(senderDates),
		receiverCandidateDates: slices.Clone(receiverDates),
		scheduledPickupAt:      pickupAt,
		scheduledDeliveryAt:    deliveryAt,
		pickupTimeslot:         pickupTimeslot,
		deliveryTimeslot:       deliveryTimeslot,
		pickupJobRef:           pickupJobRef,
		deliveryJobRef:         deliveryJobRef,
		isConstructed:          true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setSender(sender),
		order.setReceiver(receiver),
		order.setStatus(status),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Sender returns the party the shipment is collected from.
func (o *Order) Sender() Party {
	return o.sender
}

// Receiver returns the party the shipment is delivered to.
func (o *Order) Receiver() Party {
	return o.receiver
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// SenderCandidateDates returns a copy of the sender's candidate pickup dates.
func (o *Order) SenderCandidateDates() []kernel.Day {
	return slices.Clone(o.senderCandidateDates)
}

// ReceiverCandidateDates returns a copy of the receiver's candidate delivery dates.
func (o *Order) ReceiverCandidateDates() []kernel.Day {
	return slices.Clone(o.receiverCandidateDates)
}

// ScheduledPickupAt returns the assigned pickup time.
// Returns nil if the pickup is not scheduled.
func (o *Order) ScheduledPickupAt() *time.Time {
	return o.scheduledPickupAt
}

// ScheduledDeliveryAt returns the assigned delivery time.
// Returns nil if the delivery is not scheduled.
func (o *Order) ScheduledDeliveryAt() *time.Time {
	return o.scheduledDeliveryAt
}

// PickupTimeslot returns the named time window for the pickup leg, if any.
func (o *Order) PickupTimeslot() string {
	return o.pickupTimeslot
}

// DeliveryTimeslot returns the named time window for the delivery leg, if any.
func (o *Order) DeliveryTimeslot() string {
	return o.deliveryTimeslot
}

// PickupJobRef returns the external fulfilment job reference for the pickup
// leg, or the empty string when the leg has not been dispatched.
func (o *Order) PickupJobRef() string {
	return o.pickupJobRef
}

// DeliveryJobRef returns the external fulfilment job reference for the
// delivery leg, or the empty string when the leg has not been dispatched.
func (o *Order) DeliveryJobRef() string {
	return o.deliveryJobRef
}

// JobRef returns the external job reference recorded for the given leg.
func (o *Order) JobRef(leg Leg) string {
	if leg == DeliveryLeg {
		return o.deliveryJobRef
	}
	return o.pickupJobRef
}

// Version returns the optimistic concurrency token of the loaded snapshot.
func (o *Order) Version() int {
	return o.version
}

// RequestSenderAvailability dispatches the availability request to the sender
// and moves the order to SenderAvailabilityPending.
//
// This method enforces the following business rules:
//   - The order must be in Created status
//   - The sender must be contactable (phone or email present)
//
// Returns:
//   - nil on success
//   - error if the sender is uncontactable or the transition is not allowed
func (o *Order) RequestSenderAvailability() error {
	if !o.sender.Contactable() {
		return errs.NewValueIsRequiredError("sender phone or email")
	}

	return o.transitionTo(SenderAvailabilityPending)
}

// ConfirmSenderAvailability records the sender's candidate pickup dates and
// moves the order to SenderAvailabilityConfirmed.
//
// This method enforces the following business rules:
//   - The sender's candidate set is recorded at most once; a repeat
//     submission returns *AlreadyConfirmedError
//   - At least one valid candidate date must be provided
//   - The order must be in SenderAvailabilityPending status
//
// The recorded set is sorted and deduplicated.
//
// Parameters:
//   - dates: the candidate pickup dates offered by the sender
//
// Returns:
//   - nil on success
//   - error if the set is empty, already recorded or the transition is not allowed
func (o *Order) ConfirmSenderAvailability(dates []kernel.Day) error {
	if len(o.senderCandidateDates) > 0 {
		return NewAlreadyConfirmedError(SenderParty)
	}

	normalized, err := normalizeCandidateDates(dates)
	if err != nil {
		return err
	}

	if err := o.transitionTo(SenderAvailabilityConfirmed); err != nil {
		return err
	}

	o.senderCandidateDates = normalized
	return nil
}

// RequestReceiverAvailability dispatches the availability request to the
// receiver and moves the order to ReceiverAvailabilityPending.
//
// This method enforces the following business rules:
//   - The order must be in SenderAvailabilityConfirmed status
//   - The receiver must be contactable (phone or email present)
//
// Returns:
//   - nil on success
//   - error if the receiver is uncontactable or the transition is not allowed
func (o *Order) RequestReceiverAvailability() error {
	if !o.receiver.Contactable() {
		return errs.NewValueIsRequiredError("receiver phone or email")
	}

	return o.transitionTo(ReceiverAvailabilityPending)
}

// ConfirmReceiverAvailability records the receiver's candidate delivery dates
// and moves the order to ReceiverAvailabilityConfirmed. Mirrors
// ConfirmSenderAvailability, including the at-most-once rule.
func (o *Order) ConfirmReceiverAvailability(dates []kernel.Day) error {
	if len(o.receiverCandidateDates) > 0 {
		return NewAlreadyConfirmedError(ReceiverParty)
	}

	normalized, err := normalizeCandidateDates(dates)
	if err != nil {
		return err
	}

	if err := o.transitionTo(ReceiverAvailabilityConfirmed); err != nil {
		return err
	}

	o.receiverCandidateDates = normalized
	return nil
}

// MarkSchedulable moves the order into the scheduling pool
// (ScheduledDatesPending). Applied when availability reconciliation found a
// feasible pickup/delivery window.
func (o *Order) MarkSchedulable() error {
	return o.transitionTo(ScheduledDatesPending)
}

// MarkPendingApproval flags the order for manual date selection
// (PendingApproval). Applied when availability reconciliation found no
// feasible window.
func (o *Order) MarkPendingApproval() error {
	return o.transitionTo(PendingApproval)
}

// SchedulePickup assigns the concrete pickup time and moves the order to
// CollectionScheduled.
//
// This method enforces the following business rules:
//   - The order must be in a schedulable status
//   - No pickup may already be scheduled; a reschedule goes through
//     ResetSchedule first, never through this method
//
// Parameters:
//   - at: the pickup time (must be non-zero)
//   - timeslot: optional named time window, may be empty
//
// Returns:
//   - nil on success
//   - error if a pickup is already scheduled or the transition is not allowed
func (o *Order) SchedulePickup(at time.Time, timeslot string) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("pickup date")
	}

	if o.scheduledPickupAt != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickup date is invalid",
			fmt.Errorf("pickup is already scheduled for %s", o.scheduledPickupAt.Format(time.RFC3339)),
		)
	}

	if err := o.transitionTo(CollectionScheduled); err != nil {
		return err
	}

	o.scheduledPickupAt = &at
	o.pickupTimeslot = timeslot
	return nil
}

// ScheduleDelivery assigns the concrete delivery time and moves the order to
// DeliveryScheduled.
//
// This method enforces the following business rules:
//   - The order must be in CollectionScheduled status
//   - No delivery may already be scheduled
//   - The delivery time must fall strictly after the scheduled pickup
//
// Parameters:
//   - at: the delivery time (must be non-zero)
//   - timeslot: optional named time window, may be empty
//
// Returns:
//   - nil on success
//   - error if the ordering rule is violated or the transition is not allowed
func (o *Order) ScheduleDelivery(at time.Time, timeslot string) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}

	if o.scheduledDeliveryAt != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery date is invalid",
			fmt.Errorf("delivery is already scheduled for %s", o.scheduledDeliveryAt.Format(time.RFC3339)),
		)
	}

	if o.scheduledPickupAt == nil || !at.After(*o.scheduledPickupAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery date is invalid",
			errors.New("delivery must be strictly after the scheduled pickup"),
		)
	}

	if err := o.transitionTo(DeliveryScheduled); err != nil {
		return err
	}

	o.scheduledDeliveryAt = &at
	o.deliveryTimeslot = timeslot
	return nil
}

// FinalizeSchedule confirms the assigned dates and moves the order to
// Scheduled. Both dates must be set with the delivery strictly after the
// pickup; the guard is re-asserted here in case restored state was edited
// out of band.
func (o *Order) FinalizeSchedule() error {
	if o.scheduledPickupAt == nil || o.scheduledDeliveryAt == nil {
		return errs.NewValueIsRequiredError("scheduled pickup and delivery dates")
	}

	if !o.scheduledDeliveryAt.After(*o.scheduledPickupAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery date is invalid",
			errors.New("delivery must be strictly after the scheduled pickup"),
		)
	}

	return o.transitionTo(Scheduled)
}

// UpdatePickupTimeslot sets or clears the named time window for the pickup
// leg. Timeslots are advisory and change independently of the scheduled
// dates; no status transition occurs.
func (o *Order) UpdatePickupTimeslot(timeslot string) error {
	if o.status.IsTerminal() {
		return NewInvalidTransitionError(o.status, o.status)
	}

	o.pickupTimeslot = timeslot
	return nil
}

// UpdateDeliveryTimeslot sets or clears the named time window for the
// delivery leg. See UpdatePickupTimeslot.
func (o *Order) UpdateDeliveryTimeslot(timeslot string) error {
	if o.status.IsTerminal() {
		return NewInvalidTransitionError(o.status, o.status)
	}

	o.deliveryTimeslot = timeslot
	return nil
}

// AttachJobRef records the external fulfilment job reference for the given
// leg.
//
// This method enforces the following business rules:
//   - The reference must be non-empty
//   - The leg's date must be scheduled before a reference can be attached
//   - References are write-once per leg: re-attaching the same reference is
//     a no-op, attaching a different one is rejected (a new reference only
//     becomes legal after ResetSchedule or Cancel cleared the old one)
//
// Parameters:
//   - leg: the leg the job belongs to
//   - ref: the job reference returned by the fulfilment system
//
// Returns:
//   - nil on success or idempotent repeat
//   - error if the reference is empty, the leg is unscheduled or a different
//     reference is already attached
func (o *Order) AttachJobRef(leg Leg, ref string) error {
	if err := leg.Validate(); err != nil {
		return err
	}

	if ref == "" {
		return errs.NewValueIsRequiredError(fmt.Sprintf("%s job reference", leg))
	}

	slot := &o.pickupJobRef
	scheduled := o.scheduledPickupAt
	if leg == DeliveryLeg {
		slot = &o.deliveryJobRef
		scheduled = o.scheduledDeliveryAt
	}

	if scheduled == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"job reference is invalid",
			fmt.Errorf("%s leg is not scheduled", leg),
		)
	}

	if *slot != "" && *slot != ref {
		return errs.NewValueIsInvalidErrorWithCause(
			"job reference is invalid",
			fmt.Errorf("%s leg already holds reference %s", leg, *slot),
		)
	}

	*slot = ref
	return nil
}

// StartCollection marks a driver as en route to the sender
// (DriverToCollection). Requires the pickup job reference to be attached:
// the external system owns the driver, so the leg cannot start before its
// job exists.
func (o *Order) StartCollection() error {
	if o.pickupJobRef == "" {
		return errs.NewValueIsRequiredError("pickup job reference")
	}

	return o.transitionTo(DriverToCollection)
}

// MarkCollected records the pickup from the sender (Collected).
func (o *Order) MarkCollected() error {
	return o.transitionTo(Collected)
}

// StartDelivery marks a driver as en route to the receiver
// (DriverToDelivery). Requires the delivery job reference to be attached.
func (o *Order) StartDelivery() error {
	if o.deliveryJobRef == "" {
		return errs.NewValueIsRequiredError("delivery job reference")
	}

	return o.transitionTo(DriverToDelivery)
}

// MarkShipped records the shipment as in transit on its delivery leg (Shipped).
func (o *Order) MarkShipped() error {
	return o.transitionTo(Shipped)
}

// MarkDelivered records the delivery to the receiver (Delivered).
// Delivered is a final state with no further transitions possible.
func (o *Order) MarkDelivered() error {
	return o.transitionTo(Delivered)
}

// Cancel withdraws the order from any non-terminal status.
//
// Cancellation clears the scheduling state (dates, timeslots and external
// job references) so a crashed dispatch cannot be resumed against a dead
// order. Identity, parties and the recorded candidate dates are preserved
// for audit.
//
// Returns:
//   - nil on success
//   - error if the order is already in a terminal status
func (o *Order) Cancel() error {
	if err := o.transitionTo(Cancelled); err != nil {
		return err
	}

	o.clearSchedule()
	return nil
}

// ResetSchedule redoes scheduling from scratch: both scheduled dates, both
// timeslots and both external job references are cleared and the order
// returns to ScheduledDatesPending.
//
// This is the only sanctioned way to reschedule; the scheduling transitions
// themselves refuse to overwrite an assigned date.
//
// Valid in ScheduledDatesPending (no-op on status), CollectionScheduled,
// DeliveryScheduled and Scheduled.
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if called in any other status
func (o *Order) ResetSchedule() error {
	if o.status != ScheduledDatesPending {
		if err := o.transitionTo(ScheduledDatesPending); err != nil {
			return err
		}
	}

	o.clearSchedule()
	return nil
}

// clearSchedule nulls the scheduling fields. Candidate dates survive.
func (o *Order) clearSchedule() {
	o.scheduledPickupAt = nil
	o.scheduledDeliveryAt = nil
	o.pickupTimeslot = ""
	o.deliveryTimeslot = ""
	o.pickupJobRef = ""
	o.deliveryJobRef = ""
}

// transitionTo moves the order along the lifecycle graph.
// All status writes funnel through this method.
func (o *Order) transitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setSender validates and sets the sender party.
// This is a private method used only during construction.
func (o *Order) setSender(sender Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	o.sender = sender
	return nil
}

// setReceiver validates and sets the receiver party.
// This is a private method used only during construction.
func (o *Order) setReceiver(receiver Party) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	o.receiver = receiver
	return nil
}

// setStatus validates and sets the persisted status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setVersion validates and sets the optimistic concurrency token.
// This is a private method used only during restoration.
func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"version is invalid",
			fmt.Errorf("%d is not a positive version", version),
		)
	}
	o.version = version
	return nil
}

// normalizeCandidateDates validates, sorts and deduplicates a submitted
// candidate date set. An empty set is rejected.
func normalizeCandidateDates(dates []kernel.Day) ([]kernel.Day, error) {
	if len(dates) == 0 {
		return nil, errs.NewValueIsRequiredError("candidate dates")
	}

	normalized := make([]kernel.Day, 0, len(dates))
	for _, day := range dates {
		if err := day.Validate(); err != nil {
			return nil, err
		}
		normalized = append(normalized, day)
	}

	slices.SortFunc(normalized, func(a, b kernel.Day) int {
		return a.Time().Compare(b.Time())
	})
	normalized = slices.Compact(normalized)

	return normalized, nil
}
