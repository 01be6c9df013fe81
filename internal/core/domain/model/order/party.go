package order

import (
	"errors"
	"fmt"
	"strings"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// ErrPartyIsNotConstructed is returned when a Party instance was not created
// through the NewParty factory method.
var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty constructor")

// PartyRole identifies which side of an order a party stands on.
type PartyRole int

const (
	// UnknownParty represents an invalid or undefined party role.
	// This value (0) helps catch uninitialized PartyRole values.
	UnknownParty PartyRole = iota

	// SenderParty is the party handing the shipment over at pickup.
	SenderParty

	// ReceiverParty is the party accepting the shipment at delivery.
	ReceiverParty
)

// getPartyRoleStrings returns a map of PartyRole values to their string representations.
func getPartyRoleStrings() map[PartyRole]string {
	return map[PartyRole]string{
		UnknownParty:  "unknown",
		SenderParty:   "sender",
		ReceiverParty: "receiver",
	}
}

// getValidPartyRoleStrings returns a map of only valid PartyRole values.
func getValidPartyRoleStrings() map[PartyRole]string {
	//nolint:exhaustive // UnknownParty is intentionally excluded as it's invalid
	return map[PartyRole]string{
		SenderParty:   "sender",
		ReceiverParty: "receiver",
	}
}

// ParsePartyRole converts the wire representation ("sender" or "receiver")
// into a PartyRole. Returns an error for any other input.
func ParsePartyRole(s string) (PartyRole, error) {
	for role, str := range getValidPartyRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownParty, errs.NewValueIsInvalidErrorWithCause(
		"party role is invalid",
		fmt.Errorf("%q is not a valid party role", s),
	)
}

// Validate checks if the PartyRole value is valid.
func (r PartyRole) Validate() error {
	if _, ok := getValidPartyRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"party role is invalid",
			fmt.Errorf("%d is not a valid party role", r),
		)
	}
	return nil
}

// String returns the human-readable name of the party role.
// This method implements the fmt.Stringer interface.
func (r PartyRole) String() string {
	if str, ok := getPartyRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Party represents one side of an order: the person the portal contacts to
// confirm availability and whose address anchors one leg of the journey.
// Party is an immutable value; availability requests require the party to be
// contactable by phone or email.
//
// Example:
//
//	addr, _ := kernel.NewAddress("12 Bull Ring", "Birmingham", "B5 4BU")
//	sender, err := order.NewParty("Ada Shaw", "+44 121 555 0101", "ada@example.com", addr)
//	if err != nil {
//	    // Handle validation error
//	}
type Party struct {
	name    string
	phone   string
	email   string
	address kernel.Address
	guard   kernel.ConstructorGuard
}

// NewParty creates a new Party with validation.
//
// Parameters:
//   - name: Display name of the party (required)
//   - phone: Contact phone number (optional)
//   - email: Contact email (optional)
//   - address: Postal address of the party (must be constructed)
//
// Returns:
//   - Party: The created party if all validations pass
//   - error: Validation error if the name is blank or the address invalid
//
// A party without phone and email is valid but not contactable; availability
// requests against it fail until contact details are supplied.
func NewParty(name string, phone string, email string, address kernel.Address) (Party, error) {
	party := Party{
		phone: strings.TrimSpace(phone),
		email: strings.TrimSpace(email),
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		party.setName(name),
		party.setAddress(address),
	); err != nil {
		return Party{}, err
	}

	return party, nil
}

// Validate ensures the Party instance was properly constructed through NewParty.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

// Name returns the display name of the party.
func (p Party) Name() string {
	return p.name
}

// Phone returns the contact phone number. May be empty.
func (p Party) Phone() string {
	return p.phone
}

// Email returns the contact email. May be empty.
func (p Party) Email() string {
	return p.email
}

// Address returns the postal address of the party.
func (p Party) Address() kernel.Address {
	return p.address
}

// Contactable reports whether the party can be reached for an availability
// request: at least one of phone or email is present.
func (p Party) Contactable() bool {
	return p.phone != "" || p.email != ""
}

// setName sets the display name with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *Party) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = trimmed
	return nil
}

// setAddress sets the postal address with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *Party) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	p.address = address
	return nil
}
