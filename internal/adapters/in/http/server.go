// Package http exposes the booking service over REST. Handlers translate
// between the wire contracts and the application layer's commands and
// queries; domain errors map onto HTTP status codes here and nowhere else.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the wire shape of every error the API returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ShippingRate is one courier's quote on the wire.
type ShippingRate struct {
	Courier string  `json:"courier"`
	Price   float64 `json:"price"`
}

// BookingRequest is the request body for POST /api/bookings.
type BookingRequest struct {
	Pickup         string  `json:"pickup"`
	Delivery       string  `json:"delivery"`
	Courier        string  `json:"courier"`
	Price          float64 `json:"price"`
	IdempotencyKey string  `json:"idempotencyKey"`
}

// BookingResponse confirms a booked shipment.
type BookingResponse struct {
	BookingID         string     `json:"bookingId"`
	Status            string     `json:"status"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
}

// TrackingEvent is one entry of a shipment's journey on the wire.
type TrackingEvent struct {
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackingResponse is the tracking view of a booking.
type TrackingResponse struct {
	BookingID         string          `json:"bookingId"`
	Courier           string          `json:"courier"`
	Status            string          `json:"status"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery"`
	Events            []TrackingEvent `json:"events"`
}

// EstimateBreakup itemizes a weight-aware estimate on the wire.
type EstimateBreakup struct {
	Base     float64 `json:"base"`
	Distance float64 `json:"distance"`
	Weight   float64 `json:"weight"`
	Tax      float64 `json:"tax"`
}

// CourierEstimate is one courier's weight-aware estimate on the wire.
type CourierEstimate struct {
	Courier string          `json:"courier"`
	Price   float64         `json:"price"`
	Breakup EstimateBreakup `json:"breakup"`
}

// EstimateResponse carries the per-courier estimates for a route.
type EstimateResponse struct {
	DistanceKm    int               `json:"distanceKm"`
	EstimatedTime string            `json:"estimatedTime"`
	Estimates     []CourierEstimate `json:"estimates"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createBookingHandler commands.CreateBookingCommandHandler

	// Query handlers
	getShippingRatesHandler  queries.GetShippingRatesQueryHandler
	trackShipmentHandler     queries.TrackShipmentQueryHandler
	calculateEstimateHandler queries.CalculateEstimateQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createBookingHandler commands.CreateBookingCommandHandler,
	getShippingRatesHandler queries.GetShippingRatesQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	calculateEstimateHandler queries.CalculateEstimateQueryHandler,
) *Server {
	return &Server{
		createBookingHandler:     createBookingHandler,
		getShippingRatesHandler:  getShippingRatesHandler,
		trackShipmentHandler:     trackShipmentHandler,
		calculateEstimateHandler: calculateEstimateHandler,
	}
}

// RegisterRoutes wires the API endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/shipping-rates", s.GetShippingRates)
	e.POST("/api/bookings", s.CreateBooking)
	e.GET("/api/bookings/:bookingId/tracking", s.GetTracking)
	e.GET("/api/shipping-estimate", s.GetShippingEstimate)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetShippingRates handles GET /api/shipping-rates - quotes every courier
// for a pickup/delivery route.
func (s *Server) GetShippingRates(ctx echo.Context) error {
	query, err := queries.NewGetShippingRatesQuery(
		ctx.QueryParam("pickup"),
		ctx.QueryParam("delivery"),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "pickup and delivery addresses are required",
		})
	}

	rates, err := s.getShippingRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to fetch shipping rates",
		})
	}

	response := make([]ShippingRate, len(rates))
	for i, rate := range rates {
		response[i] = ShippingRate{
			Courier: rate.Courier,
			Price:   rate.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateBooking handles POST /api/bookings - books a shipment with the
// selected courier at the quoted price.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var request BookingRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
		})
	}

	idempotencyKey, err := kernel.UUIDFromString(request.IdempotencyKey)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "idempotencyKey must be a valid UUID",
		})
	}

	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(),
		idempotencyKey,
		request.Pickup,
		request.Delivery,
		request.Courier,
		request.Price,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid booking data: " + err.Error(),
		})
	}

	booked, err := s.createBookingHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrBookingFailed) {
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Error: "Carrier did not accept the shipment, please retry",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to create booking",
		})
	}

	return ctx.JSON(http.StatusCreated, BookingResponse{
		BookingID:         booked.ID().String(),
		Status:            booked.Status().String(),
		EstimatedDelivery: booked.EstimatedDelivery(),
	})
}

// GetTracking handles GET /api/bookings/:bookingId/tracking - returns the
// shipment's journey so far.
func (s *Server) GetTracking(ctx echo.Context) error {
	bookingID, err := kernel.UUIDFromString(ctx.Param("bookingId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "bookingId must be a valid UUID",
		})
	}

	query, err := queries.NewTrackShipmentQuery(bookingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid tracking request",
		})
	}

	info, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Booking not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to fetch tracking info",
		})
	}

	events := make([]TrackingEvent, len(info.Events))
	for i, event := range info.Events {
		events[i] = TrackingEvent{
			Status:    event.Status,
			Location:  event.Location,
			Timestamp: event.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		BookingID:         info.BookingID.String(),
		Courier:           info.Courier,
		Status:            info.Status,
		EstimatedDelivery: info.EstimatedDelivery,
		Events:            events,
	})
}

// GetShippingEstimate handles GET /api/shipping-estimate - returns
// weight-aware estimates for a route.
func (s *Server) GetShippingEstimate(ctx echo.Context) error {
	weight, err := strconv.ParseFloat(ctx.QueryParam("weight"), 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "weight must be a positive number",
		})
	}

	query, err := queries.NewCalculateEstimateQuery(
		ctx.QueryParam("pickup"),
		ctx.QueryParam("delivery"),
		weight,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid estimate request: " + err.Error(),
		})
	}

	estimate, err := s.calculateEstimateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to calculate estimate",
		})
	}

	estimates := make([]CourierEstimate, len(estimate.Estimates))
	for i, courierEstimate := range estimate.Estimates {
		estimates[i] = CourierEstimate{
			Courier: courierEstimate.Courier,
			Price:   courierEstimate.Price,
			Breakup: EstimateBreakup{
				Base:     courierEstimate.Breakup.Base,
				Distance: courierEstimate.Breakup.Distance,
				Weight:   courierEstimate.Breakup.Weight,
				Tax:      courierEstimate.Breakup.Tax,
			},
		}
	}

	return ctx.JSON(http.StatusOK, EstimateResponse{
		DistanceKm:    estimate.DistanceKm,
		EstimatedTime: estimate.EstimatedTime,
		Estimates:     estimates,
	})
}
