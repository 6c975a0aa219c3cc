package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody defines the nested error of Error.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetRatesRequest defines model for GetRatesRequest.
type GetRatesRequest struct {
	Country string  `json:"country"`
	Weight  float64 `json:"weight"`
}

// GetRatesResponse defines model for GetRatesResponse.
type GetRatesResponse struct {
	Country           string    `json:"country"`
	NormalizedCountry string    `json:"normalized_country"`
	Weight            float64   `json:"weight"`
	Data              RatesData `json:"data"`
}

// RatesData defines model for RatesData.
type RatesData struct {
	ZoneMappings map[string]string `json:"zone_mappings"`
	Results      []MatchResult     `json:"results"`
	Unpriced     []MatchResult     `json:"unpriced,omitempty"`
	TotalFound   int               `json:"total_found"`
}

// MatchResult defines model for MatchResult.
type MatchResult struct {
	Carrier        string  `json:"carrier"`
	ServiceType    string  `json:"service_type"`
	Rate           float64 `json:"rate"`
	Currency       string  `json:"currency"`
	Zone           string  `json:"zone"`
	MatchedCountry string  `json:"matched_country"`
	WeightTier     float64 `json:"weight_tier"`
	MatchType      string  `json:"match_type"`
	FinalRate      float64 `json:"final_rate"`
	IsPerKg        bool    `json:"is_per_kg"`
	Calculation    string  `json:"calculation"`
}

// CarriersResponse defines model for CarriersResponse.
type CarriersResponse struct {
	Carriers []string `json:"carriers"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status          string `json:"status"`
	DatasetLoaded   bool   `json:"dataset_loaded"`
	CarriersCount   int    `json:"carriers_count"`
	EntriesCount    int    `json:"entries_count"`
	BookingsEnabled bool   `json:"bookings_enabled"`
}

// CreateBookingRequest defines model for CreateBookingRequest.
type CreateBookingRequest struct {
	Country       string  `json:"country"`
	Weight        float64 `json:"weight"`
	Carrier       string  `json:"carrier"`
	ServiceType   string  `json:"service_type"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
}

// Booking defines model for Booking.
type Booking struct {
	ID            openapi_types.UUID `json:"id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Country       string             `json:"country"`
	Weight        float64            `json:"weight"`
	Carrier       string             `json:"carrier"`
	ServiceType   string             `json:"service_type"`
	MatchType     string             `json:"match_type"`
	Zone          string             `json:"zone"`
	WeightTier    float64            `json:"weight_tier"`
	Amount        float64            `json:"amount"`
	Currency      string             `json:"currency"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// BookingID defines model for the id path parameter.
type BookingID = openapi_types.UUID
