// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the booking portal. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AvailabilityReconciler: Merges sender and receiver candidate dates into
//     a feasible pickup/delivery window, or flags manual approval
//   - GroupingEngine: Partitions schedulable orders into location/lane groups
//     and buckets them across a planning horizon
//   - DateHorizon: The fixed day window the planning board covers
//
// Both services are pure: they compute from the state handed to them with no
// I/O and no clock reads, which keeps the planning queries deterministic.
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
