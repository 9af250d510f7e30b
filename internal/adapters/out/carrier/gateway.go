// Package carrier implements the outbound gateway to the courier partner's
// booking API. The adapter only reports success once the remote side
// acknowledged the shipment; every transport or remote failure is returned
// to the caller unchanged so the application layer can decide what to do.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"shipment/internal/core/domain/model/booking"
)

// confirmRequest is the wire payload for a shipment confirmation.
type confirmRequest struct {
	BookingID string  `json:"bookingId"`
	Courier   string  `json:"courier"`
	Pickup    string  `json:"pickup"`
	Delivery  string  `json:"delivery"`
	Price     float64 `json:"price"`
}

// HTTPGateway talks to the carrier's shipment API over HTTP.
// Request timeouts come from the injected http.Client.
type HTTPGateway struct {
	baseURL string
	http    *http.Client
}

// NewHTTPGateway creates a gateway for the carrier API at baseURL.
func NewHTTPGateway(baseURL string, httpClient *http.Client) *HTTPGateway {
	return &HTTPGateway{baseURL: baseURL, http: httpClient}
}

// Confirm registers the booking with the carrier.
// Returns an error for any transport failure or non-2xx response; the caller
// must treat any error as "shipment not accepted".
func (g *HTTPGateway) Confirm(ctx context.Context, b *booking.Booking) error {
	if err := b.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(confirmRequest{
		BookingID: b.ID().String(),
		Courier:   string(b.Courier()),
		Pickup:    b.Pickup().String(),
		Delivery:  b.Delivery().String(),
		Price:     b.Price(),
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/shipments", g.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("carrier rejected shipment %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
