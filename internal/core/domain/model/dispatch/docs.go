// Package dispatch provides the audit trail for hand-offs of order legs to
// the external fulfilment system.
//
// The package includes:
//   - Record: An append-only audit entry for one dispatch attempt
//   - Outcome: The classification of an attempt (dispatched, already
//     dispatched, failed)
//   - IdempotencyKey: The deterministic external job identifier for a leg
//
// Key business rules:
//   - Every dispatch attempt is recorded, successful or not
//   - Records are never rewritten; reconciliation reads the history
//   - The idempotency key is derived from the order and the leg, so retries
//     reuse the same external job identity
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package dispatch
