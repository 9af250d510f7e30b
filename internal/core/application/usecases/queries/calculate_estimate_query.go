package queries

import (
	"errors"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

var (
	ErrCalculateEstimateQueryIsNotConstructed = errors.New(
		"CalculateEstimateQuery must be created via NewCalculateEstimateQuery constructor",
	)
)

// WeightRatePerKg is the surcharge applied per kilogram of package weight
// when estimating a weight-aware price.
const WeightRatePerKg = 20.0

// CalculateEstimateQuery requests a weight-aware price estimate for a route.
// Unlike the plain rate quote, the estimate includes a per-kilogram
// surcharge and a tax line.
//
// Example:
//
//	query, err := NewCalculateEstimateQuery("MG Road, Bengaluru", "Connaught Place, Delhi", 2.5)
//	if err != nil {
//	    return fmt.Errorf("invalid estimate request: %w", err)
//	}
//
//	handler := NewCalculateEstimateQueryHandler(tariffRepo, distanceCalculator)
//	estimates, err := handler.Handle(ctx, query)
type CalculateEstimateQuery struct { //nolint:recvcheck //using for validation
	pickup   kernel.Address
	delivery kernel.Address
	weightKg float64

	guard guard.ConstructorGuard
}

// NewCalculateEstimateQuery creates a query for a weight-aware estimate.
// Both addresses must be non-empty and the weight must be positive.
func NewCalculateEstimateQuery(pickup, delivery string, weightKg float64) (CalculateEstimateQuery, error) {
	query := CalculateEstimateQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPickup(pickup),
		query.setDelivery(delivery),
		query.setWeightKg(weightKg),
	); err != nil {
		return CalculateEstimateQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCalculateEstimateQueryIsNotConstructed if validation fails.
func (q CalculateEstimateQuery) Validate() error {
	return q.guard.Validate(ErrCalculateEstimateQueryIsNotConstructed)
}

// Pickup returns the pickup address.
func (q CalculateEstimateQuery) Pickup() kernel.Address {
	return q.pickup
}

// Delivery returns the delivery address.
func (q CalculateEstimateQuery) Delivery() kernel.Address {
	return q.delivery
}

// WeightKg returns the package weight in kilograms.
func (q CalculateEstimateQuery) WeightKg() float64 {
	return q.weightKg
}

func (q *CalculateEstimateQuery) setPickup(pickup string) error {
	address, err := kernel.NewAddress(pickup)
	if err != nil {
		return err
	}

	q.pickup = address
	return nil
}

func (q *CalculateEstimateQuery) setDelivery(delivery string) error {
	address, err := kernel.NewAddress(delivery)
	if err != nil {
		return err
	}

	q.delivery = address
	return nil
}

func (q *CalculateEstimateQuery) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}

	q.weightKg = weightKg
	return nil
}

// EstimateBreakup itemizes a weight-aware estimate.
type EstimateBreakup struct {
	Base     float64
	Distance float64
	Weight   float64
	Tax      float64
}

// CourierEstimateResponse is one courier's weight-aware estimate.
type CourierEstimateResponse struct {
	Courier string
	Price   float64
	Breakup EstimateBreakup
}

// CalculateEstimateQueryResponse carries the per-courier estimates together
// with the resolved route distance and the expected delivery window.
type CalculateEstimateQueryResponse struct {
	DistanceKm    int
	EstimatedTime string
	Estimates     []CourierEstimateResponse
}
