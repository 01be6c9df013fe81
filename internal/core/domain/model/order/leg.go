package order

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// Leg identifies one half of an order's journey: the pickup visit at the
// sender's address or the delivery visit at the receiver's address. Each leg
// is scheduled and dispatched to the fulfilment system independently.
type Leg int

const (
	// UnknownLeg represents an invalid or undefined leg.
	// This value (0) helps catch uninitialized Leg values.
	UnknownLeg Leg = iota

	// PickupLeg is the collection visit at the sender's address.
	PickupLeg

	// DeliveryLeg is the drop-off visit at the receiver's address.
	DeliveryLeg
)

// getLegStrings returns a map of Leg values to their string representations.
func getLegStrings() map[Leg]string {
	return map[Leg]string{
		UnknownLeg:  "unknown",
		PickupLeg:   "pickup",
		DeliveryLeg: "delivery",
	}
}

// getValidLegStrings returns a map of only valid Leg values.
func getValidLegStrings() map[Leg]string {
	//nolint:exhaustive // UnknownLeg is intentionally excluded as it's invalid
	return map[Leg]string{
		PickupLeg:   "pickup",
		DeliveryLeg: "delivery",
	}
}

// ParseLeg converts the wire representation ("pickup" or "delivery") into a
// Leg. Returns an error for any other input.
func ParseLeg(s string) (Leg, error) {
	for leg, str := range getValidLegStrings() {
		if str == s {
			return leg, nil
		}
	}
	return UnknownLeg, errs.NewValueIsInvalidErrorWithCause(
		"leg is invalid",
		fmt.Errorf("%q is not a valid leg", s),
	)
}

// Validate checks if the Leg value is valid.
func (l Leg) Validate() error {
	if _, ok := getValidLegStrings()[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"leg is invalid",
			fmt.Errorf("%d is not a valid leg", l),
		)
	}
	return nil
}

// String returns the human-readable name of the leg.
// This method implements the fmt.Stringer interface.
func (l Leg) String() string {
	if str, ok := getLegStrings()[l]; ok {
		return str
	}
	return "unknown"
}
