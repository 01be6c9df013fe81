// Package ports defines the contracts between the application core and the
// infrastructure: repositories, the unit of work, the availability notifier
// and the external fulfilment client. These interfaces establish the
// boundaries of the hexagon, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate under an
	// optimistic concurrency check: the write is conditional on the
	// version the aggregate was loaded with. A lost race surfaces as
	// errs.VersionIsInvalidError and leaves the row untouched; the caller
	// retries from a fresh read.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status, candidate dates,
	// schedule and job references.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllSchedulable retrieves the orders eligible for scheduling
	// groups: the schedulable statuses plus collection_scheduled, whose
	// delivery leg is still open. The grouping engine narrows the set per
	// leg.
	GetAllSchedulable(ctx context.Context) ([]*order.Order, error)

	// GetAllStalePending retrieves orders sitting in an availability
	// pending status whose last update is older than the given cutoff.
	// Used by the reminder job to re-send availability requests.
	GetAllStalePending(ctx context.Context, before time.Time) ([]*order.Order, error)
}
