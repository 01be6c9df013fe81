package ports

import (
	"context"

	"booking/internal/core/domain/model/dispatch"
	"booking/internal/core/domain/model/kernel"
)

// DispatchRecordRepository defines the persistence contract for the
// append-only dispatch audit trail. Records are only ever added; history is
// never rewritten.
type DispatchRecordRepository interface {
	// Add appends a dispatch attempt record to the audit trail.
	// The record must be valid and not already exist in the repository.
	Add(ctx context.Context, record *dispatch.Record) error

	// GetAllForOrder retrieves the dispatch history of one order, oldest
	// attempt first. Used for reconciliation and operator debugging.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*dispatch.Record, error)
}
