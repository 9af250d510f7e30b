package kernel

import (
	"strings"

	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an opaque piece of free text identifying a pickup or delivery
// location. It is an immutable value object; the only invariant is that the
// text is non-empty after trimming. The zero value is invalid and fails
// validation - use NewAddress to create instances.
//
// Example:
//
//	pickup, err := kernel.NewAddress("MG Road, Bengaluru")
//	if err != nil {
//	    // empty address
//	}
//	fmt.Println(pickup.String()) // Output: MG Road, Bengaluru
type Address struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewAddress creates an Address from free text. Leading and trailing
// whitespace is trimmed; an address that is empty after trimming is rejected
// with a ValueIsRequiredError.
func NewAddress(value string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := addr.setValue(value); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was created through its constructor.
// Returns ErrAddressIsNotConstructed for zero-value instances.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// String returns the address text. Implements fmt.Stringer.
func (a Address) String() string {
	return a.value
}

// IsEqual compares two addresses by their text. Both addresses must be
// properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return a.value == other.value, nil
}

// setValue sets the address text with validation.
// Note: pointer receiver by intent, see NewAddress. Private setters keep
// validation self-encapsulated during construction.
func (a *Address) setValue(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError("address")
	}

	a.value = value
	return nil
}
