package kernel

import (
	"strings"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created using the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// ErrAddressUnresolvable is returned when an address cannot be reduced to a
// grouping key because its city is empty or blank. Orders carrying such an
// address are excluded from scheduling groups and surfaced as warnings.
var ErrAddressUnresolvable = errs.NewValueIsInvalidError(
	"address has no city to derive a grouping key from")

// Address represents a postal address of a sender or receiver.
// Address is an immutable value object. The street is mandatory; city and
// postcode may be absent on records that arrived through channels without
// address validation, which is why resolvability is checked at grouping
// time rather than at construction.
//
// The zero value of Address is invalid and will fail validation - use the constructor to create instances.
//
// Example:
//
//	addr, err := kernel.NewAddress("12 Bull Ring", "Birmingham", "B5 4BU")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Pickup at %s", addr) // Output: Pickup at 12 Bull Ring, Birmingham, B5 4BU
type Address struct { //nolint:recvcheck //using for validation
	street   string
	city     string
	postcode string
	guard    guard.ConstructorGuard
}

// NewAddress creates a new Address with the specified fields.
// The street must be non-blank; city and postcode are optional.
//
// Parameters:
//   - street: The street line including the house number (required)
//   - city: The city or town (optional, but required for scheduling groups)
//   - postcode: The postal code (optional)
//
// Returns:
//   - Address: A valid address instance
//   - error: Validation error if the street is blank
//
// Example:
//
//	addr, err := NewAddress("12 Bull Ring", "Birmingham", "B5 4BU")
//	if err != nil {
//	    log.Fatal("Invalid address:", err)
//	}
func NewAddress(street string, city string, postcode string) (Address, error) {
	addr := Address{
		city:     strings.TrimSpace(city),
		postcode: strings.TrimSpace(postcode),
		guard:    guard.NewConstructorGuard(),
	}

	if err := addr.setStreet(street); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed using the constructor.
// The zero value of Address is invalid and will fail this validation.
//
// Returns:
//   - error: ErrAddressIsNotConstructed if the address was not properly initialized, nil otherwise
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address. May be empty on unvalidated records.
func (a Address) City() string {
	return a.city
}

// Postcode returns the postal code of the address. May be empty.
func (a Address) Postcode() string {
	return a.postcode
}

// String returns a human-readable single-line representation of the address,
// joining the non-empty parts with commas.
// This method implements the fmt.Stringer interface.
//
// Example:
//
//	addr, _ := NewAddress("12 Bull Ring", "Birmingham", "B5 4BU")
//	fmt.Println(addr.String()) // Output: 12 Bull Ring, Birmingham, B5 4BU
func (a Address) String() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{a.street, a.city, a.postcode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// RegionKey derives the city-level grouping key of the address: the city,
// lower-cased, trimmed, with inner whitespace collapsed. Two addresses in
// "Birmingham" and " birmingham " share a region key.
//
// Returns:
//   - string: The normalized city key
//   - error: ErrAddressUnresolvable if the city is empty or blank
//
// Example:
//
//	addr, _ := NewAddress("12 Bull Ring", "  BIRMINGHAM ", "B5 4BU")
//	key, err := addr.RegionKey()
//	// key = "birmingham", err = nil
func (a Address) RegionKey() (string, error) {
	key := normalizeAddressPart(a.city)
	if key == "" {
		return "", ErrAddressUnresolvable
	}
	return key, nil
}

// LaneKey derives the directed lane key from this address to the given one:
// the two fully normalized addresses joined with " -> ". Lanes are
// directional, so the reverse journey has a different key.
//
// Example:
//
//	from, _ := NewAddress("12 Bull Ring", "Birmingham", "B5 4BU")
//	to, _ := NewAddress("3 Mill Lane", "Solihull", "B91 3AT")
//	lane := from.LaneKey(to)
//	// lane = "12 bull ring, birmingham, b5 4bu -> 3 mill lane, solihull, b91 3at"
func (a Address) LaneKey(to Address) string {
	return a.normalized() + " -> " + to.normalized()
}

// IsEqual compares two addresses for equality.
// Two addresses are equal if their normalized forms match.
func (a Address) IsEqual(other Address) bool {
	return a.normalized() == other.normalized()
}

// normalized returns the full address normalized for key derivation:
// non-empty parts joined with ", ", lower-cased, whitespace collapsed.
func (a Address) normalized() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{a.street, a.city, a.postcode} {
		norm := normalizeAddressPart(part)
		if norm != "" {
			parts = append(parts, norm)
		}
	}
	return strings.Join(parts, ", ")
}

// setStreet sets the street line with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (a *Address) setStreet(street string) error {
	trimmed := strings.TrimSpace(street)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("street")
	}

	a.street = trimmed
	return nil
}

// normalizeAddressPart lower-cases a part and collapses all runs of
// whitespace into single spaces.
func normalizeAddressPart(part string) string {
	return strings.Join(strings.Fields(strings.ToLower(part)), " ")
}
