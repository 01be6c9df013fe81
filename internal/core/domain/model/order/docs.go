// Package order provides domain entities and business logic for booking
// management in the courier portal. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, parties,
//     availability, scheduling state and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Party: A value object describing the sender or receiver of a shipment
//   - Leg: The pickup/delivery leg identifier used by scheduling and dispatch
//   - ProgressEvent: Operational milestones reported from the field
//
// Key business rules:
//   - Orders must have a valid unique identifier and valid sender and
//     receiver parties
//   - Order status follows the lifecycle graph documented on Status; status
//     is written only by the Order transition methods
//   - Each party's candidate availability dates are recorded at most once
//   - A scheduled delivery falls strictly after the scheduled pickup
//   - External job references are write-once per leg; rescheduling goes
//     through the explicit reset operation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
