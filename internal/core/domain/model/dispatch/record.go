package dispatch

import (
	"errors"
	"strings"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
var ErrRecordIsNotConstructed = errors.New(
	"Record must be created via NewDispatchedRecord, NewAlreadyDispatchedRecord, or NewFailedRecord")

// IdempotencyKey derives the deterministic external job identifier for one
// leg of an order. A retried dispatch computes the same key, so the
// fulfilment system cannot end up with two jobs for the same leg.
//
// Example:
//
//	key := dispatch.IdempotencyKey(orderID, order.PickupLeg)
//	// key = "a8098c1a-f86e-11da-bd1a-00112444be1e:pickup"
func IdempotencyKey(orderID kernel.UUID, leg order.Leg) string {
	return orderID.String() + ":" + leg.String()
}

// Record is one entry of the append-only dispatch audit trail. Every attempt
// to hand an order leg to the external fulfilment system produces exactly one
// record, whether a job was created, an existing reference was reused, or the
// attempt failed. Records are never updated or deleted.
//
// Key responsibilities:
//   - Capturing which order and leg an attempt was made for
//   - Preserving the idempotency key the attempt used
//   - Holding the returned job reference or the failure reason
//
// Business rules:
//   - Successful outcomes carry a job reference and no failure reason
//   - Failed outcomes carry a failure reason and no job reference
//   - The idempotency key is derived from the order ID and the leg
//
// Example usage:
//
//	record, err := dispatch.NewDispatchedRecord(kernel.NewUUID(), orderID, order.PickupLeg, "job-42")
//	if err != nil {
//	    // Handle construction error
//	}
type Record struct {
	// id uniquely identifies the record
	id kernel.UUID
	// orderID identifies the order the attempt was made for
	orderID kernel.UUID
	// leg identifies which half of the journey was dispatched
	leg order.Leg
	// idempotencyKey is the derived external job identifier used by the attempt
	idempotencyKey string
	// jobRef is the external job reference, empty on failed attempts
	jobRef string
	// outcome classifies the attempt result
	outcome Outcome
	// failureReason describes a failed attempt, empty otherwise
	failureReason string
	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// NewDispatchedRecord creates the audit record for an attempt that created a
// new external job.
//
// Parameters:
//   - id: Unique identifier for the record (must be valid UUID)
//   - orderID: The dispatched order (must be valid UUID)
//   - leg: The dispatched leg (must be valid)
//   - jobRef: The job reference returned by the fulfilment system (must be non-blank)
//
// Returns:
//   - *Record: The created record
//   - error: Validation error if any parameter is invalid
func NewDispatchedRecord(id kernel.UUID, orderID kernel.UUID, leg order.Leg, jobRef string) (*Record, error) {
	record, err := newRecord(id, orderID, leg, Dispatched)
	if err != nil {
		return nil, err
	}

	if err := record.setJobRef(jobRef); err != nil {
		return nil, err
	}

	return record, nil
}

// NewAlreadyDispatchedRecord creates the audit record for an attempt that
// found the leg already holding a job reference and made no external call.
//
// Parameters:
//   - id: Unique identifier for the record (must be valid UUID)
//   - orderID: The order the attempt was made for (must be valid UUID)
//   - leg: The leg the attempt was made for (must be valid)
//   - jobRef: The job reference the leg already held (must be non-blank)
//
// Returns:
//   - *Record: The created record
//   - error: Validation error if any parameter is invalid
func NewAlreadyDispatchedRecord(id kernel.UUID, orderID kernel.UUID, leg order.Leg, jobRef string) (*Record, error) {
	record, err := newRecord(id, orderID, leg, AlreadyDispatched)
	if err != nil {
		return nil, err
	}

	if err := record.setJobRef(jobRef); err != nil {
		return nil, err
	}

	return record, nil
}

// NewFailedRecord creates the audit record for an attempt that produced no
// job reference.
//
// Parameters:
//   - id: Unique identifier for the record (must be valid UUID)
//   - orderID: The order the attempt was made for (must be valid UUID)
//   - leg: The leg the attempt was made for (must be valid)
//   - reason: What went wrong (must be non-blank)
//
// Returns:
//   - *Record: The created record
//   - error: Validation error if any parameter is invalid
func NewFailedRecord(id kernel.UUID, orderID kernel.UUID, leg order.Leg, reason string) (*Record, error) {
	record, err := newRecord(id, orderID, leg, Failed)
	if err != nil {
		return nil, err
	}

	if err := record.setFailureReason(reason); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a Record from persisted state. It is intended
// for repositories loading rows from the database; application code must use
// the outcome-specific constructors.
//
// Parameters:
//   - id, orderID: record and order identifiers (validated)
//   - leg: the dispatched leg (validated)
//   - idempotencyKey: the key the attempt used (must be non-blank)
//   - jobRef: the external job reference, empty on failed attempts
//   - outcome: the persisted outcome (validated)
//   - failureReason: the persisted failure description, empty otherwise
//
// Returns:
//   - *Record: the restored record
//   - error: validation error if identifiers, leg, key or outcome are invalid
func RestoreRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	leg order.Leg,
	idempotencyKey string,
	jobRef string,
	outcome Outcome,
	failureReason string,
) (*Record, error) {
	record := &Record{
		jobRef:        jobRef,
		failureReason: failureReason,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setOrderID(orderID),
		record.setLeg(leg),
		record.setOutcome(outcome),
		record.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// newRecord builds the common part of a record and derives the idempotency
// key from the validated order ID and leg.
func newRecord(id kernel.UUID, orderID kernel.UUID, leg order.Leg, outcome Outcome) (*Record, error) {
	record := &Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setOrderID(orderID),
		record.setLeg(leg),
		record.setOutcome(outcome),
	); err != nil {
		return nil, err
	}

	record.idempotencyKey = IdempotencyKey(orderID, leg)
	return record, nil
}

// IsEqual compares two records for equality based on their identifiers.
func (r *Record) IsEqual(other *Record) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

// Validate checks if the Record was properly constructed via a constructor.
// The zero value of Record is invalid and will fail this validation.
//
// Returns:
//   - error: ErrRecordIsNotConstructed if improperly initialized, nil if valid
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the unique identifier of the record.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the order the attempt was made for.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// Leg returns the leg the attempt was made for.
func (r *Record) Leg() order.Leg {
	return r.leg
}

// IdempotencyKey returns the external job identifier the attempt used.
func (r *Record) IdempotencyKey() string {
	return r.idempotencyKey
}

// JobRef returns the external job reference. Empty on failed attempts.
func (r *Record) JobRef() string {
	return r.jobRef
}

// Outcome returns the classification of the attempt result.
func (r *Record) Outcome() Outcome {
	return r.outcome
}

// FailureReason returns the failure description. Empty unless the outcome is
// Failed.
func (r *Record) FailureReason() string {
	return r.failureReason
}

// setID sets the record's unique identifier with validation.
// This is an internal setter used during record construction.
func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

// setOrderID sets the dispatched order's identifier with validation.
// This is an internal setter used during record construction.
func (r *Record) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	r.orderID = orderID
	return nil
}

// setLeg sets the dispatched leg with validation.
// This is an internal setter used during record construction.
func (r *Record) setLeg(leg order.Leg) error {
	if err := leg.Validate(); err != nil {
		return err
	}

	r.leg = leg
	return nil
}

// setOutcome sets the attempt outcome with validation.
// This is an internal setter used during record construction.
func (r *Record) setOutcome(outcome Outcome) error {
	if err := outcome.Validate(); err != nil {
		return err
	}

	r.outcome = outcome
	return nil
}

// setIdempotencyKey sets the key used by the attempt with validation.
// This is an internal setter used during record restoration.
func (r *Record) setIdempotencyKey(idempotencyKey string) error {
	if strings.TrimSpace(idempotencyKey) == "" {
		return errs.NewValueIsRequiredError("idempotency key")
	}

	r.idempotencyKey = idempotencyKey
	return nil
}

// setJobRef sets the external job reference with validation.
// This is an internal setter used during record construction.
func (r *Record) setJobRef(jobRef string) error {
	if strings.TrimSpace(jobRef) == "" {
		return errs.NewValueIsRequiredError("job reference")
	}

	r.jobRef = jobRef
	return nil
}

// setFailureReason sets the failure description with validation.
// This is an internal setter used during record construction.
func (r *Record) setFailureReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("failure reason")
	}

	r.failureReason = reason
	return nil
}
