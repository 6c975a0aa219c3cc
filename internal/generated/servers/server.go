// Package servers holds the HTTP contract of the rates API: the OpenAPI
// document, its models and the echo binding of its operations.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Price a shipment for every carrier
	// (POST /api/get-rates)
	GetRates(ctx echo.Context) error
	// List carriers with price data
	// (GET /api/carriers)
	GetCarriers(ctx echo.Context) error
	// Service health
	// (GET /api/health)
	GetHealth(ctx echo.Context) error
	// Book a quoted rate
	// (POST /api/bookings)
	CreateBooking(ctx echo.Context) error
	// Read a booking
	// (GET /api/bookings/{id})
	GetBooking(ctx echo.Context, id BookingID) error
	// Confirm a created booking
	// (POST /api/bookings/{id}/confirm)
	ConfirmBooking(ctx echo.Context, id BookingID) error
	// Cancel a booking
	// (POST /api/bookings/{id}/cancel)
	CancelBooking(ctx echo.Context, id BookingID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetRates converts echo context to params.
func (w *ServerInterfaceWrapper) GetRates(ctx echo.Context) error {
	return w.Handler.GetRates(ctx)
}

// GetCarriers converts echo context to params.
func (w *ServerInterfaceWrapper) GetCarriers(ctx echo.Context) error {
	return w.Handler.GetCarriers(ctx)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// CreateBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CreateBooking(ctx echo.Context) error {
	return w.Handler.CreateBooking(ctx)
}

// GetBooking converts echo context to params.
func (w *ServerInterfaceWrapper) GetBooking(ctx echo.Context) error {
	id, err := bindBookingID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetBooking(ctx, id)
}

// ConfirmBooking converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmBooking(ctx echo.Context) error {
	id, err := bindBookingID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ConfirmBooking(ctx, id)
}

// CancelBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CancelBooking(ctx echo.Context) error {
	id, err := bindBookingID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelBooking(ctx, id)
}

func bindBookingID(ctx echo.Context) (BookingID, error) {
	var id BookingID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is implemented by both echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to
// the paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/get-rates", wrapper.GetRates)
	router.GET(baseURL+"/api/carriers", wrapper.GetCarriers)
	router.GET(baseURL+"/api/health", wrapper.GetHealth)
	router.POST(baseURL+"/api/bookings", wrapper.CreateBooking)
	router.GET(baseURL+"/api/bookings/:id", wrapper.GetBooking)
	router.POST(baseURL+"/api/bookings/:id/confirm", wrapper.ConfirmBooking)
	router.POST(baseURL+"/api/bookings/:id/cancel", wrapper.CancelBooking)
}
