// Package tariffrepo persists the fixed courier tariff table backing rate
// quotes. Rows are seeded once at startup and read-only afterwards.
package tariffrepo

import (
	"shipment/internal/core/domain/model/courier"
)

// TariffDTO represents one row of the shipping_rates table.
// The serial primary key fixes the quote order.
type TariffDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Courier   string `gorm:"uniqueIndex"`
	BaseRate  float64
	RatePerKm float64
}

// TableName specifies the database table name for tariff rows.
func (TariffDTO) TableName() string {
	return "shipping_rates"
}

// toDomain converts a database row to a tariff value object.
func toDomain(dto TariffDTO) (courier.Tariff, error) {
	id, err := courier.ParseID(dto.Courier)
	if err != nil {
		return courier.Tariff{}, err
	}

	return courier.NewTariff(id, dto.BaseRate, dto.RatePerKm)
}
