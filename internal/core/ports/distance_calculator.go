package ports

import (
	"shipment/internal/core/domain/model/kernel"
)

// DistanceCalculator resolves the distance between a pickup and a delivery
// address. The same address pair must always yield the same distance.
type DistanceCalculator interface {
	Distance(pickup kernel.Address, delivery kernel.Address) (kernel.Distance, error)
}
