package http

import (
	"net/http"
	"strings"

	"ratefinder/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const (
	codeInvalidRequest    = "invalid_request"
	codeRateNotFound      = "rate_not_found"
	codeNotFound          = "not_found"
	codeInvalidTransition = "invalid_transition"
	codeBookingsDisabled  = "bookings_disabled"
	codeInternal          = "internal_error"
)

func newErrorResponse(code, message string) servers.Error {
	return servers.Error{Error: servers.ErrorBody{Code: code, Message: message}}
}

func respondError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, newErrorResponse(code, message))
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return codeInvalidRequest
	case http.StatusNotFound:
		return codeNotFound
	case http.StatusInternalServerError:
		return codeInternal
	}
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}
