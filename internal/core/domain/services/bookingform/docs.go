// Package bookingform implements the booking form workflow: a validation
// gate plus an explicit finite-state machine tying user input, a rate
// fetch, a courier selection and a booking submission together.
//
// The package includes:
//   - Validate: the pure validation gate producing per-field ValidationErrors
//   - Form: the state machine owning the in-progress booking's inputs,
//     quotes, selection and phase
//
// Key business rules:
//   - Pickup and delivery are always required; a courier is required only
//     once quotes exist
//   - At most one request (rate fetch or booking submission) is in flight
//     at a time; re-entrant submits are rejected
//   - A failed booking preserves the form exactly so the user can retry
//     with identical inputs; a confirmed booking resets the form completely
//
// The Form performs no I/O itself: Submit tells the caller which operation
// to run, and the caller reports the outcome back through the transition
// methods.
package bookingform
