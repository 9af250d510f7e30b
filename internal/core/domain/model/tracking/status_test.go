package tracking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment/internal/core/domain/model/tracking"
)

func TestStatus_Advance(t *testing.T) {
	t.Run("advances one step along the journey", func(t *testing.T) {
		steps := []struct {
			from, to tracking.Status
		}{
			{tracking.PickedUp, tracking.InTransit},
			{tracking.InTransit, tracking.OutForDelivery},
			{tracking.OutForDelivery, tracking.Delivered},
		}

		for _, step := range steps {
			next, err := step.from.Advance()
			require.NoError(t, err)
			assert.Equal(t, step.to, next)
		}
	})

	t.Run("delivered cannot advance", func(t *testing.T) {
		_, err := tracking.Delivered.Advance()
		require.Error(t, err)
	})

	t.Run("unknown cannot advance", func(t *testing.T) {
		_, err := tracking.Unknown.Advance()
		require.Error(t, err)
	})
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, tracking.Delivered.IsFinal())
	assert.False(t, tracking.PickedUp.IsFinal())
	assert.False(t, tracking.InTransit.IsFinal())
	assert.False(t, tracking.OutForDelivery.IsFinal())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips valid statuses", func(t *testing.T) {
		statuses := []tracking.Status{
			tracking.PickedUp,
			tracking.InTransit,
			tracking.OutForDelivery,
			tracking.Delivered,
		}
		for _, status := range statuses {
			parsed, err := tracking.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := tracking.StatusFromString("lost")
		require.Error(t, err)
	})
}
