package services

import (
	"hash/fnv"

	"shipment/internal/core/domain/model/kernel"
)

// HashDistanceCalculator is a domain service that derives a demo-range
// distance from a pickup/delivery address pair. It is the single
// authoritative distance source for quoting and estimating.
//
// The distance is a stable function of the two address strings (an FNV hash
// folded into the demo range), so the same pair always quotes the same
// price. A real deployment would replace this service with a geocoding or
// routing call behind the same port.
type HashDistanceCalculator struct{}

// NewHashDistanceCalculator creates a new HashDistanceCalculator instance.
func NewHashDistanceCalculator() HashDistanceCalculator {
	return HashDistanceCalculator{}
}

// Distance computes the distance between the two addresses.
// Both addresses must be properly constructed; the result is always inside
// the demo range [DistanceMinKm..DistanceMaxKm].
func (c HashDistanceCalculator) Distance(pickup, delivery kernel.Address) (kernel.Distance, error) {
	if err := pickup.Validate(); err != nil {
		return kernel.Distance{}, err
	}
	if err := delivery.Validate(); err != nil {
		return kernel.Distance{}, err
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(pickup.String()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(delivery.String()))

	span := uint32(kernel.DistanceMaxKm - kernel.DistanceMinKm + 1)
	km := kernel.Kilometers(h.Sum32()%span) + kernel.DistanceMinKm

	return kernel.NewDistance(km)
}
