package carrier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shipment/internal/adapters/out/carrier"
	"shipment/internal/core/domain/model/booking"
	"shipment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	pickup, err := kernel.NewAddress("MG Road, Bengaluru")
	require.NoError(t, err)
	delivery, err := kernel.NewAddress("Connaught Place, Delhi")
	require.NoError(t, err)

	b, err := booking.NewBooking(
		kernel.NewUUID(), kernel.NewUUID(),
		pickup, delivery, "delhivery", 370,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return b
}

func TestHTTPGateway_Confirm_SendsShipmentPayload(t *testing.T) {
	b := newTestBooking(t)

	var gotPath, gotMethod, gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	gateway := carrier.NewHTTPGateway(server.URL, server.Client())
	err := gateway.Confirm(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, "/v1/shipments", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, b.ID().String(), gotBody["bookingId"])
	assert.Equal(t, "delhivery", gotBody["courier"])
	assert.Equal(t, "MG Road, Bengaluru", gotBody["pickup"])
	assert.Equal(t, "Connaught Place, Delhi", gotBody["delivery"])
	assert.InDelta(t, 370.0, gotBody["price"].(float64), 0.0001)
}

func TestHTTPGateway_Confirm_RemoteRejection_ReturnsError(t *testing.T) {
	b := newTestBooking(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"no capacity"}`))
	}))
	defer server.Close()

	gateway := carrier.NewHTTPGateway(server.URL, server.Client())
	err := gateway.Confirm(context.Background(), b)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "no capacity")
}

func TestHTTPGateway_Confirm_TransportFailure_ReturnsError(t *testing.T) {
	b := newTestBooking(t)

	// Closed server forces a connection error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	gateway := carrier.NewHTTPGateway(server.URL, &http.Client{Timeout: time.Second})
	err := gateway.Confirm(context.Background(), b)

	require.Error(t, err)
}

func TestHTTPGateway_Confirm_ContextCancelled_ReturnsError(t *testing.T) {
	b := newTestBooking(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	gateway := carrier.NewHTTPGateway(server.URL, server.Client())
	err := gateway.Confirm(ctx, b)

	require.Error(t, err)
}

func TestHTTPGateway_Confirm_InvalidBooking_ReturnsError(t *testing.T) {
	gateway := carrier.NewHTTPGateway("http://localhost:0", &http.Client{})

	err := gateway.Confirm(context.Background(), &booking.Booking{})

	require.Error(t, err)
}
