package bookingform

import "strings"

// Field error messages. ValidationErrors carry these as plain values,
// surfaced inline next to the offending field; they are never returned as
// Go errors.
const (
	MsgPickupRequired   = "pickup address required"
	MsgDeliveryRequired = "delivery address required"
	MsgCourierRequired  = "courier selection required"
)

// ValidationErrors holds the per-field validation state of the booking form.
// An empty string means the field is valid. The whole struct is recomputed
// on every validation pass, never merged incrementally.
type ValidationErrors struct {
	Pickup   string
	Delivery string
	Courier  string
}

// IsValid reports whether every field passed validation.
func (e ValidationErrors) IsValid() bool {
	return e.Pickup == "" && e.Delivery == "" && e.Courier == ""
}

// Validate checks the booking form inputs and returns the complete
// per-field error state. It is a pure function: all three rules are always
// evaluated, with no short-circuiting.
//
// Rules:
//   - pickup must be non-empty
//   - delivery must be non-empty
//   - a courier must be selected, but only once quotes exist
//     (ratesAvailable); before the first fetch no selection is possible
func Validate(pickup, delivery, courierSelected string, ratesAvailable bool) ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(pickup) == "" {
		errors.Pickup = MsgPickupRequired
	}
	if strings.TrimSpace(delivery) == "" {
		errors.Delivery = MsgDeliveryRequired
	}
	if courierSelected == "" && ratesAvailable {
		errors.Courier = MsgCourierRequired
	}

	return errors
}
