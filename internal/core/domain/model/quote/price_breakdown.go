package quote

import (
	"shipment/internal/pkg/errs"
)

// Display constants for itemizing a selected rate. The breakdown presents a
// flat base charge over a fixed reference distance, with the remainder of
// the quoted price shown as the delivery charge and GST on top.
const (
	// BreakdownBasePrice is the flat base charge shown in every breakdown.
	BreakdownBasePrice = 100.0
	// BreakdownDistanceKm is the reference distance the delivery charge is
	// itemized over.
	BreakdownDistanceKm = 10.0
	// TaxRate is the GST rate applied to the quoted price.
	TaxRate = 0.18
)

// PriceBreakdown is the itemized decomposition of a quote into base,
// distance and tax components. It is a derived, non-persisted view:
// recomputed on demand from a ShippingRate, never stored.
//
// The invariant Total == BasePrice + DeliveryCharge + Taxes holds exactly.
type PriceBreakdown struct {
	BasePrice      float64
	DeliveryCharge float64
	Taxes          float64
	Total          float64
}

// NewPriceBreakdown builds a breakdown from its raw components. The delivery
// charge is distanceKm*ratePerKm; all inputs must be non-negative.
func NewPriceBreakdown(basePrice, distanceKm, ratePerKm, taxes float64) (PriceBreakdown, error) {
	if basePrice < 0 {
		return PriceBreakdown{}, errs.NewValueIsInvalidError("basePrice")
	}
	if distanceKm < 0 {
		return PriceBreakdown{}, errs.NewValueIsInvalidError("distanceKm")
	}
	if ratePerKm < 0 {
		return PriceBreakdown{}, errs.NewValueIsInvalidError("ratePerKm")
	}
	if taxes < 0 {
		return PriceBreakdown{}, errs.NewValueIsInvalidError("taxes")
	}

	deliveryCharge := distanceKm * ratePerKm
	return PriceBreakdown{
		BasePrice:      basePrice,
		DeliveryCharge: deliveryCharge,
		Taxes:          taxes,
		Total:          basePrice + deliveryCharge + taxes,
	}, nil
}

// BreakdownForRate itemizes a selected shipping rate using the display
// constants: the quoted price is spread over the reference distance
// (ratePerKm = price/BreakdownDistanceKm, so the delivery charge equals the
// quoted price) and GST is added on top of it.
func BreakdownForRate(rate ShippingRate) (PriceBreakdown, error) {
	if err := rate.Validate(); err != nil {
		return PriceBreakdown{}, err
	}

	return NewPriceBreakdown(
		BreakdownBasePrice,
		BreakdownDistanceKm,
		rate.Price()/BreakdownDistanceKm,
		rate.Price()*TaxRate,
	)
}
