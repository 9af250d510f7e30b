package bookingform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shipment/internal/core/domain/services/bookingform"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name            string
		pickup          string
		delivery        string
		courierSelected string
		ratesAvailable  bool
		want            bookingform.ValidationErrors
	}{
		{
			name:     "all valid before rates",
			pickup:   "MG Road, Bengaluru",
			delivery: "Marine Drive, Mumbai",
		},
		{
			name:            "all valid with rates and selection",
			pickup:          "MG Road, Bengaluru",
			delivery:        "Marine Drive, Mumbai",
			courierSelected: "delhivery",
			ratesAvailable:  true,
		},
		{
			name:     "empty pickup",
			delivery: "Marine Drive, Mumbai",
			want:     bookingform.ValidationErrors{Pickup: bookingform.MsgPickupRequired},
		},
		{
			name:   "empty delivery",
			pickup: "MG Road, Bengaluru",
			want:   bookingform.ValidationErrors{Delivery: bookingform.MsgDeliveryRequired},
		},
		{
			name:   "whitespace-only fields count as empty",
			pickup: "   ",
			delivery: "\t",
			want: bookingform.ValidationErrors{
				Pickup:   bookingform.MsgPickupRequired,
				Delivery: bookingform.MsgDeliveryRequired,
			},
		},
		{
			name:           "courier required once rates exist",
			pickup:         "MG Road, Bengaluru",
			delivery:       "Marine Drive, Mumbai",
			ratesAvailable: true,
			want:           bookingform.ValidationErrors{Courier: bookingform.MsgCourierRequired},
		},
		{
			name:     "courier never required before rates exist",
			pickup:   "MG Road, Bengaluru",
			delivery: "Marine Drive, Mumbai",
		},
		{
			name:           "all rules evaluated together",
			ratesAvailable: true,
			want: bookingform.ValidationErrors{
				Pickup:   bookingform.MsgPickupRequired,
				Delivery: bookingform.MsgDeliveryRequired,
				Courier:  bookingform.MsgCourierRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bookingform.Validate(tt.pickup, tt.delivery, tt.courierSelected, tt.ratesAvailable)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == bookingform.ValidationErrors{}, got.IsValid())
		})
	}
}
