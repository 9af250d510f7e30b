package bookingform

import (
	"errors"
	"fmt"

	"shipment/internal/core/domain/model/quote"
	"shipment/internal/pkg/errs"
)

var (
	// ErrRequestInFlight is returned when a submit is attempted while a rate
	// fetch or booking submission is already outstanding. Equivalent to the
	// action button being disabled during loading.
	ErrRequestInFlight = errors.New("a request is already in flight")

	// ErrNoRateSelected is returned when a booking submit is attempted with
	// a courier selection that does not match any fetched quote.
	ErrNoRateSelected = errors.New("selected courier does not match any fetched quote")
)

// Action tells the caller which network operation a successful submit
// started. The form itself performs no I/O; the caller runs the operation
// and reports the outcome back through RatesLoaded/RatesFailed or
// BookingConfirmed/BookingFailed.
type Action int

const (
	// ActionNone means the submit did not start an operation; inspect
	// Errors() for the per-field validation state.
	ActionNone Action = iota

	// ActionFetchRates means the caller must fetch quotes for the form's
	// address pair.
	ActionFetchRates

	// ActionSubmitBooking means the caller must submit a booking for the
	// form's selected rate.
	ActionSubmitBooking
)

// Form is the single source of truth for an in-progress booking: the
// address pair, the last fetched quote set, the courier selection, the
// per-field validation state, and the workflow phase.
//
// Form is exclusively owned by its caller and is not safe for concurrent
// use; the phase machine serializes the workflow, not goroutines.
//
// A typical round trip:
//
//	form := bookingform.NewForm()
//	form.SetPickup("MG Road, Bengaluru")
//	form.SetDelivery("Marine Drive, Mumbai")
//
//	action, _ := form.Submit()          // ActionFetchRates
//	rates, err := fetchQuotes(...)      // caller-side I/O
//	if err != nil {
//	    _ = form.RatesFailed()
//	} else {
//	    _ = form.RatesLoaded(rates)
//	}
//
//	_ = form.SelectCourier("delhivery")
//	action, _ = form.Submit()           // ActionSubmitBooking
//	if bookingErr := submit(...); bookingErr != nil {
//	    _ = form.BookingFailed()        // inputs and quotes preserved
//	} else {
//	    _ = form.BookingConfirmed()     // form fully reset
//	}
type Form struct {
	phase           Phase
	pickup          string
	delivery        string
	selectedCourier string
	rates           []quote.ShippingRate
	errors          ValidationErrors
}

// NewForm creates an empty form in the Editing phase.
func NewForm() *Form {
	return &Form{
		phase: Editing,
	}
}

// Phase returns the current workflow phase.
func (f *Form) Phase() Phase {
	return f.phase
}

// Pickup returns the pickup address text as entered.
func (f *Form) Pickup() string {
	return f.pickup
}

// Delivery returns the delivery address text as entered.
func (f *Form) Delivery() string {
	return f.delivery
}

// SelectedCourier returns the selected courier code, or "" when none is
// selected.
func (f *Form) SelectedCourier() string {
	return f.selectedCourier
}

// Rates returns a copy of the last fetched quote set. Empty before the
// first successful fetch.
func (f *Form) Rates() []quote.ShippingRate {
	rates := make([]quote.ShippingRate, len(f.rates))
	copy(rates, f.rates)
	return rates
}

// Errors returns the per-field validation state from the last submit
// attempt.
func (f *Form) Errors() ValidationErrors {
	return f.errors
}

// SetPickup updates the pickup address text.
func (f *Form) SetPickup(pickup string) {
	f.pickup = pickup
}

// SetDelivery updates the delivery address text.
func (f *Form) SetDelivery(delivery string) {
	f.delivery = delivery
}

// SelectCourier records the user's courier choice. The code must match one
// of the fetched quotes; selection is only possible once rates are shown.
func (f *Form) SelectCourier(code string) error {
	if _, ok := f.rateFor(code); !ok {
		return ErrNoRateSelected
	}

	f.selectedCourier = code
	return nil
}

// SelectedRate returns the quote matching the current courier selection.
func (f *Form) SelectedRate() (quote.ShippingRate, bool) {
	return f.rateFor(f.selectedCourier)
}

// SelectedBreakdown itemizes the currently selected quote for display.
// Returns false when no courier is selected.
func (f *Form) SelectedBreakdown() (quote.PriceBreakdown, bool) {
	rate, ok := f.rateFor(f.selectedCourier)
	if !ok {
		return quote.PriceBreakdown{}, false
	}

	breakdown, err := quote.BreakdownForRate(rate)
	if err != nil {
		return quote.PriceBreakdown{}, false
	}

	return breakdown, true
}

// Submit runs the validation gate and, if it passes, starts the operation
// appropriate for the current phase:
//
//   - Editing: pickup and delivery must be valid (a courier is not yet
//     required); moves to RatesLoading and returns ActionFetchRates.
//   - RatesShown: the full gate applies, courier included, and the
//     selection must match a fetched quote; moves to BookingSubmitting and
//     returns ActionSubmitBooking.
//
// A failed gate keeps the phase unchanged, stores the per-field errors and
// returns ActionNone with a nil error. Submitting while a request is in
// flight returns ErrRequestInFlight; no validation runs and no state
// changes.
func (f *Form) Submit() (Action, error) {
	if f.phase.IsInFlight() {
		return ActionNone, ErrRequestInFlight
	}

	switch f.phase {
	case Editing:
		return f.submitForRates()
	case RatesShown:
		return f.submitForBooking()
	default:
		return ActionNone, errs.NewValueIsInvalidErrorWithCause(
			"phase is invalid",
			fmt.Errorf("%s is not a valid phase to submit from", f.phase),
		)
	}
}

// RatesLoaded reports a successful rate fetch. Only valid in RatesLoading;
// the fresh quote set supersedes any previous one and the selection is
// cleared because it may no longer correspond to a live quote.
func (f *Form) RatesLoaded(rates []quote.ShippingRate) error {
	if err := f.requirePhase(RatesLoading); err != nil {
		return err
	}

	f.rates = make([]quote.ShippingRate, len(rates))
	copy(f.rates, rates)
	f.selectedCourier = ""
	f.errors = ValidationErrors{}
	f.phase = RatesShown
	return nil
}

// RatesFailed reports a failed rate fetch. Only valid in RatesLoading; the
// form returns to Editing with the address fields preserved and no stale
// quotes kept.
func (f *Form) RatesFailed() error {
	if err := f.requirePhase(RatesLoading); err != nil {
		return err
	}

	f.rates = nil
	f.selectedCourier = ""
	f.phase = Editing
	return nil
}

// BookingConfirmed reports a successful booking. Only valid in
// BookingSubmitting; the form resets to Editing with every field, the
// selection and the quotes cleared.
func (f *Form) BookingConfirmed() error {
	if err := f.requirePhase(BookingSubmitting); err != nil {
		return err
	}

	*f = *NewForm()
	return nil
}

// BookingFailed reports a failed booking. Only valid in BookingSubmitting;
// the form returns to RatesShown with the addresses, quotes and selection
// all preserved so the user can retry with identical inputs.
func (f *Form) BookingFailed() error {
	if err := f.requirePhase(BookingSubmitting); err != nil {
		return err
	}

	f.phase = RatesShown
	return nil
}

func (f *Form) submitForRates() (Action, error) {
	f.errors = Validate(f.pickup, f.delivery, f.selectedCourier, false)
	if !f.errors.IsValid() {
		return ActionNone, nil
	}

	f.phase = RatesLoading
	return ActionFetchRates, nil
}

func (f *Form) submitForBooking() (Action, error) {
	f.errors = Validate(f.pickup, f.delivery, f.selectedCourier, len(f.rates) > 0)
	if !f.errors.IsValid() {
		return ActionNone, nil
	}

	if _, ok := f.SelectedRate(); !ok {
		return ActionNone, ErrNoRateSelected
	}

	f.phase = BookingSubmitting
	return ActionSubmitBooking, nil
}

func (f *Form) requirePhase(want Phase) error {
	if f.phase != want {
		return errs.NewValueIsInvalidErrorWithCause(
			"phase is invalid",
			fmt.Errorf("expected phase %s, form is in %s", want, f.phase),
		)
	}
	return nil
}

func (f *Form) rateFor(code string) (quote.ShippingRate, bool) {
	for _, rate := range f.rates {
		if rate.Courier().String() == code {
			return rate, true
		}
	}
	return quote.ShippingRate{}, false
}
