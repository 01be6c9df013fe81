package kernel

import (
	"time"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// DayLayout is the wire and storage format for calendar days.
const DayLayout = "2006-01-02"

// ErrDayIsNotConstructed is returned when attempting to use an improperly initialized Day.
// Days must be created using NewDay or ParseDay constructors to ensure validity.
var ErrDayIsNotConstructed = errs.NewValueIsRequiredError(
	"day must be created via NewDay or ParseDay constructors")

// Day represents a calendar date without a time-of-day component.
// Candidate availability dates and horizon buckets are expressed in days:
// a party offers "Monday", not "Monday 09:15". Day is an immutable value
// object normalized to midnight UTC, so two Days naming the same calendar
// date are comparable with == and usable as map keys.
//
// The zero value of Day is invalid and will fail validation - use constructors to create instances.
//
// Example:
//
//	day, err := kernel.ParseDay("2024-03-18")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Pickup day: %s", day) // Output: Pickup day: 2024-03-18
type Day struct { //nolint:recvcheck //using for validation
	value time.Time
	guard guard.ConstructorGuard
}

// NewDay creates a Day from the given instant, truncating the time-of-day
// component. The instant's wall-clock date in UTC is used, so callers that
// care about a local calendar date should convert before constructing.
//
// Parameters:
//   - t: The instant whose UTC calendar date becomes the Day (must be non-zero)
//
// Returns:
//   - Day: A valid day instance
//   - error: Validation error if t is the zero time
//
// Example:
//
//	day, err := NewDay(time.Now())
//	if err != nil {
//	    log.Fatal("Invalid day:", err)
//	}
func NewDay(t time.Time) (Day, error) {
	day := Day{
		guard: guard.NewConstructorGuard(),
	}

	if err := day.setValue(t); err != nil {
		return Day{}, err
	}

	return day, nil
}

// ParseDay creates a Day from its "2006-01-02" string representation.
// This is the format availability confirmations and the scheduling API use.
//
// Returns:
//   - Day: A valid day instance
//   - error: Validation error if the string does not match DayLayout
//
// Example:
//
//	day, err := ParseDay("2024-03-18")
//	if err != nil {
//	    return fmt.Errorf("invalid candidate date: %w", err)
//	}
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, errs.NewValueIsInvalidErrorWithCause("day", err)
	}
	return NewDay(t)
}

// Validate checks if the Day was properly constructed using a constructor.
// The zero value of Day is invalid and will fail this validation.
//
// Returns:
//   - error: ErrDayIsNotConstructed if the day was not properly initialized, nil otherwise
func (d Day) Validate() error {
	return d.guard.Validate(ErrDayIsNotConstructed)
}

// Time returns the day as a time.Time at midnight UTC.
func (d Day) Time() time.Time {
	return d.value
}

// String returns the "2006-01-02" representation of the day.
// This method implements the fmt.Stringer interface.
//
// Example:
//
//	day, _ := ParseDay("2024-03-18")
//	fmt.Println(day.String()) // Output: 2024-03-18
func (d Day) String() string {
	return d.value.Format(DayLayout)
}

// Before reports whether the day falls strictly before other.
func (d Day) Before(other Day) bool {
	return d.value.Before(other.value)
}

// After reports whether the day falls strictly after other.
func (d Day) After(other Day) bool {
	return d.value.After(other.value)
}

// IsEqual compares two days for equality.
// Two days are equal if they name the same calendar date.
//
// Example:
//
//	day1, _ := ParseDay("2024-03-18")
//	day2, _ := NewDay(time.Date(2024, 3, 18, 17, 30, 0, 0, time.UTC))
//	fmt.Println(day1.IsEqual(day2)) // true
func (d Day) IsEqual(other Day) bool {
	return d.value.Equal(other.value)
}

// AddDays returns the day shifted by the given number of calendar days.
// Negative values shift into the past.
//
// Example:
//
//	monday, _ := ParseDay("2024-03-18")
//	tuesday := monday.AddDays(1) // 2024-03-19
func (d Day) AddDays(days int) Day {
	shifted := Day{
		value: d.value.AddDate(0, 0, days),
		guard: guard.NewConstructorGuard(),
	}
	return shifted
}

// DaysUntil returns the number of calendar days from this day to other.
// The result is positive when other is later, negative when earlier, and
// zero for the same day. Both days must be properly constructed.
//
// Example:
//
//	monday, _ := ParseDay("2024-03-18")
//	thursday, _ := ParseDay("2024-03-21")
//
//	gap, err := monday.DaysUntil(thursday)
//	// gap = 3, err = nil
func (d Day) DaysUntil(other Day) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	return int(other.value.Sub(d.value).Hours() / 24), nil
}

// setValue normalizes and sets the underlying date.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (d *Day) setValue(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("day")
	}

	utc := t.UTC()
	d.value = time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
