package ports

import (
	"context"

	"booking/internal/core/domain/model/order"
)

// AvailabilityNotifier publishes availability-request events for the
// external notification sender. The event carries the order identity and
// the contact details of the party whose candidate dates are requested;
// message content and delivery channels are the notification system's
// concern.
type AvailabilityNotifier interface {
	// PublishAvailabilityRequest emits an availability-request event for
	// the given party of the order.
	PublishAvailabilityRequest(ctx context.Context, aggregate *order.Order, party order.PartyRole) error
}
