package bookingform

import (
	"fmt"

	"shipment/internal/pkg/errs"
)

// Phase represents where the booking form is in its workflow.
// It implements a state machine with defined transitions, replacing ad-hoc
// boolean flags so illegal state combinations cannot be represented.
//
// State transitions:
//
//	Editing ──submit──> RatesLoading ──success──> RatesShown
//	   ^                     │                        │
//	   └──────failure────────┘                        │ submit
//	   ^                                              v
//	   └──confirmed── BookingSubmitting <─────────────┘
//	                         │
//	                         └──failure──> RatesShown
//
// Exactly one phase is active at a time, so a rate fetch and a booking
// submission can never be in flight together.
type Phase int

const (
	// Unknown represents an invalid or undefined phase.
	// This value (0) helps catch uninitialized Phase values.
	Unknown Phase = iota

	// Editing is the initial phase: the user is entering addresses and no
	// quotes have been fetched.
	Editing

	// RatesLoading means a rate fetch is in flight.
	RatesLoading

	// RatesShown means quotes are available and a courier can be selected.
	RatesShown

	// BookingSubmitting means a booking submission is in flight.
	BookingSubmitting
)

func getPhaseStrings() map[Phase]string {
	return map[Phase]string{
		Unknown:           "Unknown",
		Editing:           "Editing",
		RatesLoading:      "RatesLoading",
		RatesShown:        "RatesShown",
		BookingSubmitting: "BookingSubmitting",
	}
}

// Validate checks if the Phase value is valid.
// Unknown (0) and out-of-range values are invalid.
func (p Phase) Validate() error {
	if p < Editing || p > BookingSubmitting {
		return errs.NewValueIsInvalidErrorWithCause("phase is invalid", fmt.Errorf("%d is not a valid phase", p))
	}
	return nil
}

// String returns the human-readable name of the phase.
// Implements the fmt.Stringer interface.
func (p Phase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// IsInFlight reports whether a network request is outstanding in this phase.
// While in flight, submits are rejected, mirroring a disabled action button.
func (p Phase) IsInFlight() bool {
	return p == RatesLoading || p == BookingSubmitting
}
