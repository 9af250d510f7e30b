package quote

import (
	"errors"

	"shipment/internal/core/domain/model/courier"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

// ErrShippingRateIsNotConstructed is returned when attempting to use an
// improperly initialized ShippingRate. Rates must be created via
// NewShippingRate.
var ErrShippingRateIsNotConstructed = errs.NewValueIsRequiredError(
	"shipping rate must be created via NewShippingRate constructor")

// ShippingRate is a single courier's price for a given pickup/delivery pair
// at fetch time. Rates are immutable; a re-fetch produces a fresh set that
// supersedes the previous one rather than mutating it.
type ShippingRate struct { //nolint:recvcheck //using for validation
	courier courier.ID
	price   float64

	guard guard.ConstructorGuard
}

// NewShippingRate creates a rate for the given courier. The price must be
// non-negative.
func NewShippingRate(id courier.ID, price float64) (ShippingRate, error) {
	r := ShippingRate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setCourier(id), r.setPrice(price)); err != nil {
		return ShippingRate{}, err
	}

	return r, nil
}

// Validate ensures the rate was created through the constructor.
func (r ShippingRate) Validate() error {
	return r.guard.Validate(ErrShippingRateIsNotConstructed)
}

// Courier returns the carrier offering this rate.
func (r ShippingRate) Courier() courier.ID {
	return r.courier
}

// Price returns the quoted total in rupees.
func (r ShippingRate) Price() float64 {
	return r.price
}

func (r *ShippingRate) setCourier(id courier.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.courier = id
	return nil
}

func (r *ShippingRate) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	r.price = price
	return nil
}
