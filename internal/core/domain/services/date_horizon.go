package services

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

const (
	// DefaultHorizonDays is the planning horizon length used when the
	// operator does not override it.
	DefaultHorizonDays = 5

	// maxHorizonDays bounds the horizon so board queries stay cheap.
	maxHorizonDays = 60
)

// ErrDateHorizonIsNotConstructed is returned when a DateHorizon instance was
// not created through the NewDateHorizon factory method.
var ErrDateHorizonIsNotConstructed = errors.New("DateHorizon must be created via NewDateHorizon constructor")

// DateHorizon is the fixed window of consecutive days the planning board
// covers. It starts at a given day (usually today) and spans a configurable
// number of days.
//
//nolint:recvcheck //using for validation
type DateHorizon struct {
	start kernel.Day
	days  int
	guard kernel.ConstructorGuard
}

// NewDateHorizon creates a DateHorizon starting at the given day.
//
// Parameters:
//   - start: The first day of the horizon (must be constructed)
//   - days: The horizon length in days, 1 to 60
//
// Returns:
//   - DateHorizon: The created horizon if all validations pass
//   - error: Validation error if the start day or length is invalid
func NewDateHorizon(start kernel.Day, days int) (DateHorizon, error) {
	horizon := DateHorizon{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		horizon.setStart(start),
		horizon.setDays(days),
	); err != nil {
		return DateHorizon{}, err
	}

	return horizon, nil
}

// Validate ensures the DateHorizon instance was properly constructed.
func (h DateHorizon) Validate() error {
	return h.guard.Validate(ErrDateHorizonIsNotConstructed)
}

// Start returns the first day of the horizon.
func (h DateHorizon) Start() kernel.Day {
	return h.start
}

// Length returns the horizon length in days.
func (h DateHorizon) Length() int {
	return h.days
}

// Days returns the horizon days in ascending order.
func (h DateHorizon) Days() []kernel.Day {
	days := make([]kernel.Day, 0, h.days)
	for i := range h.days {
		days = append(days, h.start.AddDays(i))
	}
	return days
}

// Contains reports whether the given day falls inside the horizon.
func (h DateHorizon) Contains(day kernel.Day) bool {
	offset, err := h.start.DaysUntil(day)
	if err != nil {
		return false
	}
	return offset >= 0 && offset < h.days
}

// setStart sets the first day with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (h *DateHorizon) setStart(start kernel.Day) error {
	if err := start.Validate(); err != nil {
		return err
	}

	h.start = start
	return nil
}

// setDays sets the horizon length with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (h *DateHorizon) setDays(days int) error {
	if days < 1 || days > maxHorizonDays {
		return errs.NewValueIsOutOfRangeError("horizon days", days, 1, maxHorizonDays)
	}

	h.days = days
	return nil
}
