package courier

import (
	"errors"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

// ErrTariffIsNotConstructed is returned when attempting to use an improperly
// initialized Tariff. Tariffs must be created via NewTariff.
var ErrTariffIsNotConstructed = errs.NewValueIsRequiredError(
	"tariff must be created via NewTariff constructor")

// Tariff is a courier's pricing row: a base rate plus a per-kilometer rate.
// It mirrors one row of the shipping_rates table and is immutable once
// constructed. Rates are non-negative decimal amounts in rupees.
//
// Example:
//
//	tariff, err := courier.NewTariff(courier.Delhivery, 250, 10)
//	if err != nil {
//	    // invalid rates
//	}
//	price := tariff.Quote(distance) // 250 + km*10
type Tariff struct { //nolint:recvcheck //using for validation
	courier   ID
	baseRate  float64
	ratePerKm float64

	guard guard.ConstructorGuard
}

// NewTariff creates a tariff for the given courier. The courier code must be
// one of the closed set and both rates must be non-negative.
func NewTariff(id ID, baseRate float64, ratePerKm float64) (Tariff, error) {
	t := Tariff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setCourier(id),
		t.setBaseRate(baseRate),
		t.setRatePerKm(ratePerKm),
	); err != nil {
		return Tariff{}, err
	}

	return t, nil
}

// Validate ensures the tariff was created through the constructor.
// Returns ErrTariffIsNotConstructed for zero-value instances.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// Courier returns the carrier this tariff belongs to.
func (t Tariff) Courier() ID {
	return t.courier
}

// BaseRate returns the flat charge applied to every shipment.
func (t Tariff) BaseRate() float64 {
	return t.baseRate
}

// RatePerKm returns the per-kilometer charge.
func (t Tariff) RatePerKm() float64 {
	return t.ratePerKm
}

// Quote computes the price for shipping over the given distance:
// baseRate + km*ratePerKm. The result is never below the base rate.
func (t Tariff) Quote(distance kernel.Distance) (float64, error) {
	if err := errors.Join(t.Validate(), distance.Validate()); err != nil {
		return 0, err
	}

	return t.baseRate + float64(distance.Km())*t.ratePerKm, nil
}

func (t *Tariff) setCourier(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	t.courier = id
	return nil
}

func (t *Tariff) setBaseRate(baseRate float64) error {
	if baseRate < 0 {
		return errs.NewValueIsInvalidError("baseRate")
	}

	t.baseRate = baseRate
	return nil
}

func (t *Tariff) setRatePerKm(ratePerKm float64) error {
	if ratePerKm < 0 {
		return errs.NewValueIsInvalidError("ratePerKm")
	}

	t.ratePerKm = ratePerKm
	return nil
}
