package dispatch

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// Outcome classifies the result of one dispatch attempt for one order leg.
// Every attempt is recorded with exactly one outcome, successful or not.
type Outcome int

const (
	// UnknownOutcome represents an invalid or undefined outcome.
	// This value (0) helps catch uninitialized Outcome values.
	UnknownOutcome Outcome = iota

	// Dispatched means a new external fulfilment job was created.
	Dispatched

	// AlreadyDispatched means the leg already held a job reference, so no
	// external call was made.
	AlreadyDispatched

	// Failed means the attempt produced no job reference.
	Failed
)

// getOutcomeStrings returns a map of Outcome values to their string representations.
func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		UnknownOutcome:    "unknown",
		Dispatched:        "dispatched",
		AlreadyDispatched: "already_dispatched",
		Failed:            "failed",
	}
}

// getValidOutcomeStrings returns a map of only valid Outcome values.
func getValidOutcomeStrings() map[Outcome]string {
	//nolint:exhaustive // UnknownOutcome is intentionally excluded as it's invalid
	return map[Outcome]string{
		Dispatched:        "dispatched",
		AlreadyDispatched: "already_dispatched",
		Failed:            "failed",
	}
}

// ParseOutcome converts the stored string representation into an Outcome.
// Returns an error for any other input.
func ParseOutcome(s string) (Outcome, error) {
	for outcome, str := range getValidOutcomeStrings() {
		if str == s {
			return outcome, nil
		}
	}
	return UnknownOutcome, errs.NewValueIsInvalidErrorWithCause(
		"outcome is invalid",
		fmt.Errorf("%q is not a valid outcome", s),
	)
}

// Validate checks if the Outcome value is valid.
func (o Outcome) Validate() error {
	if _, ok := getValidOutcomeStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"outcome is invalid",
			fmt.Errorf("%d is not a valid outcome", o),
		)
	}
	return nil
}

// String returns the human-readable name of the outcome.
// This method implements the fmt.Stringer interface.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "unknown"
}
