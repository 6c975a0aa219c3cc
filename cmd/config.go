package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"ratefinder/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort       = "8080"
	defaultDatasetPath    = "courier_rates_master.json"
	defaultBookingTTL     = 24 * time.Hour
	defaultExpirySchedule = "@every 1m"
)

type Config struct {
	HTTPPort              string
	RatesDatasetPath      string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	BookingTTL            time.Duration
	BookingExpirySchedule string
	CORSAllowOrigins      []string
	LogLevel              slog.Level
}

// BookingsEnabled reports whether a database is configured.
func (c Config) BookingsEnabled() bool {
	return c.DBHost != ""
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// LoadConfig reads path (usually ".env") when it exists, then the process
// environment. Variables already set in the environment win over the file.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from getenv, applying defaults.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	value := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:              value("HTTP_PORT", defaultHTTPPort),
		RatesDatasetPath:      value("RATES_DATASET_PATH", defaultDatasetPath),
		DBHost:                value("DB_HOST", ""),
		DBPort:                value("DB_PORT", "5432"),
		DBUser:                value("DB_USER", ""),
		DBPassword:            getenv("DB_PASSWORD"),
		DBName:                value("DB_NAME", ""),
		DBSslMode:             value("DB_SSLMODE", "disable"),
		BookingExpirySchedule: value("BOOKING_EXPIRY_SCHEDULE", defaultExpirySchedule),
	}

	var problems []error

	ttl, err := time.ParseDuration(value("BOOKING_TTL", defaultBookingTTL.String()))
	switch {
	case err != nil:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("BOOKING_TTL", err))
	case ttl <= 0:
		problems = append(problems, errs.NewValueIsOutOfRangeError("BOOKING_TTL", ttl, 0, "+Inf"))
	}
	cfg.BookingTTL = ttl

	for _, origin := range strings.Split(value("CORS_ALLOW_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}

	if err = cfg.LogLevel.UnmarshalText([]byte(value("LOG_LEVEL", "info"))); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}

	if err = errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
