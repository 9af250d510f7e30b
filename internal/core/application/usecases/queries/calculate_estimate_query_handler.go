package queries

import (
	"context"
	"errors"
	"fmt"
	"math"

	"shipment/internal/core/domain/model/courier"
	"shipment/internal/core/domain/model/quote"
	"shipment/internal/core/ports"
)

// EstimatedTimeWindow is the delivery window reported with every estimate.
const EstimatedTimeWindow = "2-3 days"

// CalculateEstimateQueryHandler produces weight-aware estimates per courier.
// Prices each courier as base rate plus distance and weight surcharges, and
// reports the tax on top of that price. Like the rate quote handler, a
// successful response always carries one estimate per known courier.
//
// Example:
//
//	handler := NewCalculateEstimateQueryHandler(tariffRepo, distanceCalculator)
//	query, _ := NewCalculateEstimateQuery("MG Road, Bengaluru", "Connaught Place, Delhi", 2.5)
//
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Delivery in %s over %dkm\n", estimate.EstimatedTime, estimate.DistanceKm)
type CalculateEstimateQueryHandler struct {
	tariffs  ports.TariffRepository
	distance ports.DistanceCalculator
}

// NewCalculateEstimateQueryHandler creates a handler for estimate queries.
// Requires the tariff repository and the distance calculator.
func NewCalculateEstimateQueryHandler(
	tariffs ports.TariffRepository,
	distance ports.DistanceCalculator,
) CalculateEstimateQueryHandler {
	return CalculateEstimateQueryHandler{tariffs: tariffs, distance: distance}
}

// Handle executes the estimate query. For every known courier the price is
// base + distance*perKm + weight*WeightRatePerKg, with the tax line floored
// to whole currency units. Any failure wraps ErrQuoteUnavailable.
func (h CalculateEstimateQueryHandler) Handle(
	ctx context.Context,
	query CalculateEstimateQuery,
) (CalculateEstimateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateEstimateQueryResponse{}, err
	}

	distance, err := h.distance.Distance(query.Pickup(), query.Delivery())
	if err != nil {
		return CalculateEstimateQueryResponse{}, errors.Join(ErrQuoteUnavailable, err)
	}

	tariffs, err := h.tariffs.GetAll(ctx)
	if err != nil {
		return CalculateEstimateQueryResponse{}, errors.Join(ErrQuoteUnavailable, err)
	}
	if len(tariffs) != len(courier.All()) {
		return CalculateEstimateQueryResponse{}, errors.Join(ErrQuoteUnavailable,
			fmt.Errorf("tariff table has %d of %d couriers", len(tariffs), len(courier.All())))
	}

	response := CalculateEstimateQueryResponse{
		DistanceKm:    int(distance.Km()),
		EstimatedTime: EstimatedTimeWindow,
		Estimates:     make([]CourierEstimateResponse, 0, len(tariffs)),
	}

	weightCharge := query.WeightKg() * WeightRatePerKg
	for _, tariff := range tariffs {
		transport, err := tariff.Quote(distance)
		if err != nil {
			return CalculateEstimateQueryResponse{}, errors.Join(ErrQuoteUnavailable, err)
		}

		price := transport + weightCharge
		response.Estimates = append(response.Estimates, CourierEstimateResponse{
			Courier: tariff.Courier().String(),
			Price:   price,
			Breakup: EstimateBreakup{
				Base:     tariff.BaseRate(),
				Distance: transport - tariff.BaseRate(),
				Weight:   weightCharge,
				Tax:      math.Floor(price * quote.TaxRate),
			},
		})
	}

	return response, nil
}
