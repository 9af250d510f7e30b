// Package services provides domain services for the shipment system:
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - HashDistanceCalculator: the authoritative distance source for quoting,
//     deriving a stable demo-range distance from an address pair
//
// The bookingform subpackage holds the booking form state machine that
// orchestrates validation, rate fetching and booking submission.
package services
