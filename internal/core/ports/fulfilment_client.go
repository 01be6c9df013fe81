package ports

import (
	"context"

	"booking/internal/core/domain/model/order"
)

// FulfilmentClient talks to the external fulfilment system that plans and
// optimizes driver tours. The client creates one job per order leg and reads
// jobs back so that retried dispatch attempts adopt an existing job instead
// of creating a duplicate.
type FulfilmentClient interface {
	// CreateJob creates the external job for one leg of an order. The key
	// doubles as the job identifier on the remote side, which makes the
	// call idempotent: retrying with the same key cannot create a second
	// job. Returns the external job reference.
	CreateJob(ctx context.Context, key string, aggregate *order.Order, leg order.Leg) (string, error)

	// LookupJob checks whether a job with the given key already exists in
	// the fulfilment system. Returns the job reference and true when
	// found, an empty reference and false when not.
	LookupJob(ctx context.Context, key string) (string, bool, error)
}
