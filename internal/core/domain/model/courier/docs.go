// Package courier defines the closed set of third-party delivery carriers
// and their pricing tariffs.
//
// The package includes:
//   - ID: a carrier identified by its fixed short code (delhivery, dtdc,
//     bluedart); the set is closed and ordered
//   - Tariff: a carrier's pricing row (base rate + per-kilometer rate),
//     mirroring one row of the shipping_rates table
//
// Key business rules:
//   - Every quoting operation produces exactly one price per known carrier,
//     in the stable order returned by All()
//   - Tariff rates are non-negative; a quote is never below the base rate
//   - Unknown carrier codes are rejected at the domain boundary
package courier
