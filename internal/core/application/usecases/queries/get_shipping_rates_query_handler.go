package queries

import (
	"context"
	"errors"
	"fmt"

	"shipment/internal/core/domain/model/courier"
	"shipment/internal/core/ports"
)

// ErrQuoteUnavailable is returned when rate quotes could not be produced,
// typically because the tariff table was unreachable or incomplete. The
// response carries no partial results.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// GetShippingRatesQueryHandler produces one quote per courier for a route.
// Loads the tariff table and prices each courier as base rate plus distance
// times the per-kilometer rate. A successful response always carries exactly
// one quote per known courier; a tariff table missing couriers is a failure,
// never a shorter list.
//
// Example:
//
//	handler := NewGetShippingRatesQueryHandler(tariffRepo, distanceCalculator)
//	query, _ := NewGetShippingRatesQuery("MG Road, Bengaluru", "Connaught Place, Delhi")
//
//	rates, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrQuoteUnavailable) {
//	    // tell the client to retry later
//	}
type GetShippingRatesQueryHandler struct {
	tariffs  ports.TariffRepository
	distance ports.DistanceCalculator
}

// NewGetShippingRatesQueryHandler creates a handler for rate quote queries.
// Requires the tariff repository and the distance calculator.
func NewGetShippingRatesQueryHandler(
	tariffs ports.TariffRepository,
	distance ports.DistanceCalculator,
) GetShippingRatesQueryHandler {
	return GetShippingRatesQueryHandler{tariffs: tariffs, distance: distance}
}

// Handle executes the query and returns a quote for every known courier, in
// tariff table order. The distance is resolved once for the route and
// applied to every tariff. Any failure wraps ErrQuoteUnavailable.
func (h GetShippingRatesQueryHandler) Handle(
	ctx context.Context,
	query GetShippingRatesQuery,
) ([]ShippingRateResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	distance, err := h.distance.Distance(query.Pickup(), query.Delivery())
	if err != nil {
		return nil, errors.Join(ErrQuoteUnavailable, err)
	}

	tariffs, err := h.tariffs.GetAll(ctx)
	if err != nil {
		return nil, errors.Join(ErrQuoteUnavailable, err)
	}
	if len(tariffs) != len(courier.All()) {
		return nil, errors.Join(ErrQuoteUnavailable,
			fmt.Errorf("tariff table has %d of %d couriers", len(tariffs), len(courier.All())))
	}

	rates := make([]ShippingRateResponse, 0, len(tariffs))
	for _, tariff := range tariffs {
		price, err := tariff.Quote(distance)
		if err != nil {
			return nil, errors.Join(ErrQuoteUnavailable, err)
		}

		rates = append(rates, ShippingRateResponse{
			Courier: tariff.Courier().String(),
			Price:   price,
		})
	}

	return rates, nil
}
