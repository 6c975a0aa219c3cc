package http

import (
	"errors"
	"net/http"

	"ratefinder/internal/core/application/usecases/queries"
	"ratefinder/internal/core/domain/services"
	"ratefinder/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetRates handles POST /api/get-rates. A destination no carrier serves is
// a 200 with an empty result list.
func (s *Server) GetRates(c echo.Context) error {
	var req servers.GetRatesRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, codeInvalidRequest, "Invalid request body")
	}

	quote, err := s.findRatesHandler.Handle(c.Request().Context(), queries.NewFindRatesQuery(req.Country, req.Weight))
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		}
		s.logger.ErrorContext(c.Request().Context(), "Failed to find rates",
			"country", req.Country, "weight", req.Weight, "error", err)
		return respondError(c, http.StatusInternalServerError, codeInternal, "Failed to find rates")
	}

	return c.JSON(http.StatusOK, NewGetRatesResponse(req.Country, req.Weight, quote))
}

// GetCarriers handles GET /api/carriers.
func (s *Server) GetCarriers(c echo.Context) error {
	resp, err := s.getCarriersHandler.Handle(c.Request().Context(), queries.NewGetCarriersQuery())
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "Failed to list carriers", "error", err)
		return respondError(c, http.StatusInternalServerError, codeInternal, "Failed to retrieve carriers")
	}

	return c.JSON(http.StatusOK, servers.CarriersResponse{Carriers: resp.Carriers})
}

// GetHealth handles GET /api/health.
func (s *Server) GetHealth(c echo.Context) error {
	resp, err := s.getCarriersHandler.Handle(c.Request().Context(), queries.NewGetCarriersQuery())
	if err != nil || resp.Entries == 0 {
		return c.JSON(http.StatusServiceUnavailable, servers.HealthResponse{
			Status:          "unhealthy",
			BookingsEnabled: s.bookingsEnabled(),
		})
	}

	return c.JSON(http.StatusOK, servers.HealthResponse{
		Status:          "healthy",
		DatasetLoaded:   true,
		CarriersCount:   len(resp.Carriers),
		EntriesCount:    resp.Entries,
		BookingsEnabled: s.bookingsEnabled(),
	})
}
