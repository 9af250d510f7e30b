package tariffrepo

import (
	"context"

	"shipment/internal/core/domain/model/courier"

	"gorm.io/gorm"
)

// defaultTariffs returns the seed rows inserted into an empty table.
// Insertion order fixes the quote order.
func defaultTariffs() []TariffDTO {
	return []TariffDTO{
		{Courier: string(courier.Delhivery), BaseRate: 250, RatePerKm: 10},
		{Courier: string(courier.DTDC), BaseRate: 300, RatePerKm: 10},
		{Courier: string(courier.BlueDart), BaseRate: 350, RatePerKm: 10},
	}
}

// GormTariffRepository implements TariffRepository using GORM.
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// GetAll retrieves every tariff row in table-insertion order.
func (r *GormTariffRepository) GetAll(ctx context.Context) ([]courier.Tariff, error) {
	var dtos []TariffDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tariffs := make([]courier.Tariff, 0, len(dtos))
	for _, dto := range dtos {
		tariff, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tariffs = append(tariffs, tariff)
	}

	return tariffs, nil
}

// SeedIfEmpty inserts the default tariff rows when the table is empty.
func (r *GormTariffRepository) SeedIfEmpty(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&TariffDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := defaultTariffs()
	return r.db.WithContext(ctx).Create(&rows).Error
}
