package ports

import (
	"context"

	"shipment/internal/core/domain/model/courier"
)

// TariffRepository defines the persistence contract for the fixed courier
// tariff table (shipping_rates).
type TariffRepository interface {
	// GetAll retrieves every tariff row in stable table-insertion order.
	// Quote lists inherit this order.
	GetAll(ctx context.Context) ([]courier.Tariff, error)

	// SeedIfEmpty inserts the fixed default tariff rows when the table is
	// empty. Called once at startup; a no-op when rows already exist.
	SeedIfEmpty(ctx context.Context) error
}
