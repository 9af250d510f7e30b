// Package queries contains read-only operations that serve client views.
// Implements the Query side of the CQRS architecture: handlers read directly
// from the database through lightweight read models, bypassing the
// aggregates used by commands.
package queries

import (
	"errors"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/guard"
)

var (
	ErrGetShippingRatesQueryIsNotConstructed = errors.New(
		"GetShippingRatesQuery must be created via NewGetShippingRatesQuery constructor",
	)
)

// GetShippingRatesQuery requests a price quote from every known courier for
// a pickup/delivery address pair.
//
// Example:
//
//	query, err := NewGetShippingRatesQuery("MG Road, Bengaluru", "Connaught Place, Delhi")
//	if err != nil {
//	    return fmt.Errorf("invalid quote request: %w", err)
//	}
//
//	handler := NewGetShippingRatesQueryHandler(tariffRepo, distanceCalculator)
//	rates, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get rates: %w", err)
//	}
//
//	for _, rate := range rates {
//	    fmt.Printf("%s: %.2f\n", rate.Courier, rate.Price)
//	}
type GetShippingRatesQuery struct { //nolint:recvcheck //using for validation
	pickup   kernel.Address
	delivery kernel.Address

	guard guard.ConstructorGuard
}

// NewGetShippingRatesQuery creates a query for courier rate quotes.
// Both addresses must be non-empty.
func NewGetShippingRatesQuery(pickup, delivery string) (GetShippingRatesQuery, error) {
	query := GetShippingRatesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPickup(pickup),
		query.setDelivery(delivery),
	); err != nil {
		return GetShippingRatesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShippingRatesQueryIsNotConstructed if validation fails.
func (q GetShippingRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingRatesQueryIsNotConstructed)
}

// Pickup returns the pickup address.
func (q GetShippingRatesQuery) Pickup() kernel.Address {
	return q.pickup
}

// Delivery returns the delivery address.
func (q GetShippingRatesQuery) Delivery() kernel.Address {
	return q.delivery
}

func (q *GetShippingRatesQuery) setPickup(pickup string) error {
	address, err := kernel.NewAddress(pickup)
	if err != nil {
		return err
	}

	q.pickup = address
	return nil
}

func (q *GetShippingRatesQuery) setDelivery(delivery string) error {
	address, err := kernel.NewAddress(delivery)
	if err != nil {
		return err
	}

	q.delivery = address
	return nil
}

// ShippingRateResponse is one courier's quote for the requested route.
type ShippingRateResponse struct {
	Courier string
	Price   float64
}
