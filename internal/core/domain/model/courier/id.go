package courier

import (
	"fmt"

	"shipment/internal/pkg/errs"
)

// ID identifies a third-party delivery carrier by its fixed short code.
// The set of carriers is closed; extending it means extending the fixed
// tariff table as well.
type ID string

const (
	// Delhivery is the Delhivery carrier code.
	Delhivery ID = "delhivery"
	// DTDC is the DTDC carrier code.
	DTDC ID = "dtdc"
	// BlueDart is the Blue Dart carrier code.
	BlueDart ID = "bluedart"
)

// All returns every known courier in stable tariff-table order. The order is
// part of the quoting contract: quote lists are always emitted in this order.
func All() []ID {
	return []ID{Delhivery, DTDC, BlueDart}
}

// ParseID converts a raw courier code into an ID.
// Returns a ValueIsInvalidError for codes outside the closed set.
func ParseID(raw string) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate checks that the ID is one of the known courier codes.
// The empty string and any unknown code are invalid.
func (id ID) Validate() error {
	switch id {
	case Delhivery, DTDC, BlueDart:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"courier",
			fmt.Errorf("%q is not a known courier code", string(id)),
		)
	}
}

// String returns the courier code. Implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}
