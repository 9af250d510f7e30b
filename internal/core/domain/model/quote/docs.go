// Package quote models per-courier price quotes and their itemized
// decomposition.
//
// A ShippingRate is a courier's price for a pickup/delivery pair at fetch
// time; quote sets are produced fresh on every fetch and superseded, never
// mutated. A PriceBreakdown is a pure derived view of a selected rate
// (base + delivery charge + taxes) that is recomputed on demand and never
// persisted.
package quote
