package order

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// ProgressEvent identifies an operational milestone reported from the field
// while the shipment moves through its driver legs.
type ProgressEvent int

const (
	// UnknownProgress represents an invalid or undefined progress event.
	UnknownProgress ProgressEvent = iota

	// ProgressEnRouteToCollection reports a driver heading to the sender.
	ProgressEnRouteToCollection

	// ProgressCollected reports the pickup from the sender.
	ProgressCollected

	// ProgressEnRouteToDelivery reports a driver heading to the receiver.
	ProgressEnRouteToDelivery

	// ProgressShipped reports the shipment in transit on its delivery leg.
	ProgressShipped

	// ProgressDelivered reports the hand-over to the receiver.
	ProgressDelivered
)

// getProgressEventStrings returns a map of ProgressEvent values to their string representations.
// All events are included for string conversion.
func getProgressEventStrings() map[ProgressEvent]string {
	return map[ProgressEvent]string{
		UnknownProgress:             "unknown",
		ProgressEnRouteToCollection: "en_route_to_collection",
		ProgressCollected:           "collected",
		ProgressEnRouteToDelivery:   "en_route_to_delivery",
		ProgressShipped:             "shipped",
		ProgressDelivered:           "delivered",
	}
}

// getValidProgressEventStrings returns a map of only valid ProgressEvent values.
// Only valid events are included to support validation.
func getValidProgressEventStrings() map[ProgressEvent]string {
	//nolint:exhaustive // UnknownProgress is intentionally excluded as it's invalid
	return map[ProgressEvent]string{
		ProgressEnRouteToCollection: "en_route_to_collection",
		ProgressCollected:           "collected",
		ProgressEnRouteToDelivery:   "en_route_to_delivery",
		ProgressShipped:             "shipped",
		ProgressDelivered:           "delivered",
	}
}

// ParseProgressEvent converts the snake_case wire representation into a
// ProgressEvent.
//
// Returns:
//   - the matching event on success
//   - (UnknownProgress, error) when the string names no valid event
func ParseProgressEvent(s string) (ProgressEvent, error) {
	for event, str := range getValidProgressEventStrings() {
		if str == s {
			return event, nil
		}
	}

	return UnknownProgress, errs.NewValueIsInvalidErrorWithCause(
		"progress event is invalid",
		fmt.Errorf("%q is not a valid progress event", s),
	)
}

// Validate checks if the ProgressEvent value is valid.
//
// Returns:
//   - nil if the event is valid
//   - error with details if the event is invalid
func (p ProgressEvent) Validate() error {
	if _, ok := getValidProgressEventStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"progress event is invalid",
			fmt.Errorf("%d is not a valid progress event", p),
		)
	}
	return nil
}

// String returns the snake_case name of the event.
// Safe to call on any ProgressEvent value, including invalid ones.
func (p ProgressEvent) String() string {
	if str, ok := getProgressEventStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// ApplyProgress applies a reported operational milestone to the order,
// delegating to the matching transition method. The lifecycle graph rejects
// out-of-order reports.
//
// Parameters:
//   - event: the reported milestone
//
// Returns:
//   - nil on success
//   - error if the event is invalid or the transition is not allowed
func (o *Order) ApplyProgress(event ProgressEvent) error {
	switch event {
	case ProgressEnRouteToCollection:
		return o.StartCollection()
	case ProgressCollected:
		return o.MarkCollected()
	case ProgressEnRouteToDelivery:
		return o.StartDelivery()
	case ProgressShipped:
		return o.MarkShipped()
	case ProgressDelivered:
		return o.MarkDelivered()
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"progress event is invalid",
			fmt.Errorf("%d is not a valid progress event", event),
		)
	}
}
