// Package kernel provides core domain primitives for the shipment service.
// It implements the fundamental building blocks used throughout the domain
// model:
//
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - Address: an opaque, non-empty free-text pickup or delivery location
//   - Distance: a bounded number of kilometers between two addresses
//
// These primitives enforce domain invariants at construction time, are
// immutable, and are safe for concurrent use. Domain objects built on top of
// them never need to re-validate the primitives they hold.
package kernel
