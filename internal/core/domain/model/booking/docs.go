// Package booking provides the Booking aggregate root for the shipment
// service. A booking is a commitment to ship using a selected courier at a
// selected quoted price.
//
// Key business rules:
//   - Bookings start Pending and transition to Confirmed or Cancelled;
//     both are final states
//   - Confirmation stamps an estimated delivery timestamp a fixed number of
//     days from submission time
//   - Every booking carries a client-generated idempotency key so retries
//     after transient carrier failures never create duplicates
//
// The package follows Domain-Driven Design principles: private fields,
// validated constructors, and state transitions enforced by the Status
// value object.
package booking
