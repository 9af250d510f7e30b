// Package errs provides standardized error types for the shipment service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value fell outside its permitted bounds
//   - ObjectNotFoundError: an object cannot be found by its identifier
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// This keeps error classification uniform: transport adapters and use case
// handlers branch on the sentinels rather than on message text.
package errs
