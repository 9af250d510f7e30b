package tracking

import (
	"fmt"

	"shipment/internal/pkg/errs"
)

// Status represents where a confirmed shipment is in its delivery journey.
// The machine is forward-only:
//
//	PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//
// Delivered is the final state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// PickedUp means the package has been collected from the pickup address.
	PickedUp

	// InTransit means the package is moving between carrier facilities.
	InTransit

	// OutForDelivery means the package is on a vehicle headed to the
	// delivery address.
	OutForDelivery

	// Delivered means the package reached the delivery address.
	// This is the final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
	}
}

// Validate checks if the Status value is one of the valid tracking states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation ("picked_up", "in_transit",
// "out_for_delivery", "delivered"), or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a persisted status string back into a Status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// IsFinal reports whether the shipment has reached its final state.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// Advance moves the status one step forward along the journey.
//
// Returns (0, error) for Delivered (no further transitions) and for
// invalid statuses.
func (s Status) Advance() (Status, error) {
	switch s {
	case PickedUp:
		return InTransit, nil
	case InTransit:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to advance", s.String()),
		)
	}
}
