package services

import (
	"errors"
	"math"
	"slices"

	"booking/internal/core/domain/model/kernel"
)

// ErrResolutionIsNotConstructed is returned when a Resolution instance was
// not created through one of its factory methods.
var ErrResolutionIsNotConstructed = errors.New(
	"Resolution must be created via NewAutoWindowResolution or NewNeedsApprovalResolution")

// Resolution is the outcome of reconciling sender and receiver availability.
// It either carries the suggested pickup/delivery window or flags the order
// for manual date selection by an operator.
//
//nolint:recvcheck //using for validation
type Resolution struct {
	pickupDay     kernel.Day
	deliveryDay   kernel.Day
	needsApproval bool
	guard         kernel.ConstructorGuard
}

// NewAutoWindowResolution creates a Resolution carrying a feasible window.
//
// Parameters:
//   - pickupDay: The suggested pickup day
//   - deliveryDay: The suggested delivery day, at least one day after pickup
//
// Returns:
//   - Resolution: The created resolution if the window is well formed
//   - error: Validation error if either day is invalid or the ordering is wrong
func NewAutoWindowResolution(pickupDay kernel.Day, deliveryDay kernel.Day) (Resolution, error) {
	gap, err := pickupDay.DaysUntil(deliveryDay)
	if err != nil {
		return Resolution{}, err
	}
	if gap < 1 {
		return Resolution{}, errors.New("delivery day must be at least one day after the pickup day")
	}

	return Resolution{
		pickupDay:   pickupDay,
		deliveryDay: deliveryDay,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// NewNeedsApprovalResolution creates a Resolution flagging the order for
// manual date selection.
func NewNeedsApprovalResolution() Resolution {
	return Resolution{
		needsApproval: true,
		guard:         kernel.NewConstructorGuard(),
	}
}

// Validate ensures the Resolution instance was properly constructed.
func (r Resolution) Validate() error {
	return r.guard.Validate(ErrResolutionIsNotConstructed)
}

// NeedsApproval reports whether no feasible window exists and an operator
// must pick the dates manually.
func (r Resolution) NeedsApproval() bool {
	return r.needsApproval
}

// PickupDay returns the suggested pickup day.
// Only meaningful when NeedsApproval is false.
func (r Resolution) PickupDay() kernel.Day {
	return r.pickupDay
}

// DeliveryDay returns the suggested delivery day.
// Only meaningful when NeedsApproval is false.
func (r Resolution) DeliveryDay() kernel.Day {
	return r.deliveryDay
}

// AvailabilityReconciler is a domain service that merges the independently
// submitted sender and receiver candidate date sets into a feasible
// pickup/delivery window, or flags the order for manual approval.
//
// Key responsibilities:
//   - Finding the tightest feasible pickup/delivery pair
//   - Applying the one-full-day transit rule between pickup and delivery
//   - Flagging orders with no feasible window for manual approval
//
// Business rules:
//   - A pair (pickup, delivery) is feasible when the delivery day is at
//     least one full day after the pickup day
//   - The pair minimizing the gap wins; ties break to the earliest pickup
//     day, then the earliest delivery day
//   - An empty candidate set on either side means manual approval
//
// The reconciler is pure: no I/O, no clock reads, and deterministic output
// for a given input.
//
// Example usage:
//
//	reconciler := services.NewAvailabilityReconciler()
//	resolution, err := reconciler.Reconcile(senderDates, receiverDates)
//	if err != nil {
//	    // Handle invalid input dates
//	}
//	if resolution.NeedsApproval() {
//	    // Route the order to an operator
//	}
type AvailabilityReconciler struct{}

// NewAvailabilityReconciler creates a new AvailabilityReconciler instance.
func NewAvailabilityReconciler() AvailabilityReconciler {
	return AvailabilityReconciler{}
}

// Reconcile merges the two candidate date sets into a Resolution.
//
// Parameters:
//   - senderDates: Candidate pickup days offered by the sender
//   - receiverDates: Candidate delivery days offered by the receiver
//
// Returns:
//   - Resolution: The suggested window, or a needs-approval flag
//   - error: Validation error if any input day is unconstructed
//
// Selection algorithm:
//   - Sorts and deduplicates both sets
//   - Considers every pair with the delivery at least one day after the pickup
//   - Picks the pair with the smallest gap; ties break to the earliest
//     pickup day, then the earliest delivery day
func (a AvailabilityReconciler) Reconcile(senderDates []kernel.Day, receiverDates []kernel.Day) (Resolution, error) {
	pickupDays, err := sortedDays(senderDates)
	if err != nil {
		return Resolution{}, err
	}

	deliveryDays, err := sortedDays(receiverDates)
	if err != nil {
		return Resolution{}, err
	}

	if len(pickupDays) == 0 || len(deliveryDays) == 0 {
		return NewNeedsApprovalResolution(), nil
	}

	var (
		bestPickup   kernel.Day
		bestDelivery kernel.Day
		bestGap      = math.MaxInt
	)

	for _, pickup := range pickupDays {
		for _, delivery := range deliveryDays {
			gap, err := pickup.DaysUntil(delivery)
			if err != nil {
				return Resolution{}, err
			}

			if gap < 1 {
				continue
			}

			// Delivery days are ascending, so the first feasible one is
			// this pickup's tightest pair.
			if gap < bestGap {
				bestGap = gap
				bestPickup = pickup
				bestDelivery = delivery
			}
			break
		}
	}

	if bestGap == math.MaxInt {
		return NewNeedsApprovalResolution(), nil
	}

	return NewAutoWindowResolution(bestPickup, bestDelivery)
}

// sortedDays validates, sorts and deduplicates a candidate date set.
func sortedDays(days []kernel.Day) ([]kernel.Day, error) {
	sorted := make([]kernel.Day, 0, len(days))
	for _, day := range days {
		if err := day.Validate(); err != nil {
			return nil, err
		}
		sorted = append(sorted, day)
	}

	slices.SortFunc(sorted, func(a, b kernel.Day) int {
		return a.Time().Compare(b.Time())
	})

	return slices.Compact(sorted), nil
}
