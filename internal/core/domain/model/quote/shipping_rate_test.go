package quote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment/internal/core/domain/model/courier"
	"shipment/internal/core/domain/model/quote"
	"shipment/internal/pkg/errs"
)

func TestNewShippingRate(t *testing.T) {
	tests := []struct {
		name    string
		courier courier.ID
		price   float64
		wantErr bool
	}{
		{name: "valid rate", courier: courier.Delhivery, price: 350},
		{name: "zero price is allowed", courier: courier.DTDC, price: 0},
		{name: "unknown courier", courier: "fedex", price: 350, wantErr: true},
		{name: "negative price", courier: courier.BlueDart, price: -10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := quote.NewShippingRate(tt.courier, tt.price)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NoError(t, rate.Validate())
			assert.Equal(t, tt.courier, rate.Courier())
			assert.InDelta(t, tt.price, rate.Price(), 0)
		})
	}
}

func TestShippingRate_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var rate quote.ShippingRate

		err := rate.Validate()

		require.Error(t, err)
		assert.Equal(t, quote.ErrShippingRateIsNotConstructed, err)
	})
}

func TestNewShippingRate_InvalidInputsUnwrap(t *testing.T) {
	_, err := quote.NewShippingRate(courier.Delhivery, -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
