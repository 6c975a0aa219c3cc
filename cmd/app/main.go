package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ratefinder/cmd"
	"ratefinder/internal/adapters/out/dataset"
	"ratefinder/internal/adapters/out/postgres"
	"ratefinder/internal/core/domain/services"
	"ratefinder/internal/core/ports"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var loader ports.DatasetLoader = dataset.NewFileLoader(configs.RatesDatasetPath, logger)
	ds, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load rate data: %v", err)
	}
	finder, err := services.NewRateFinderFromDataset(ds)
	if err != nil {
		log.Fatalf("Failed to index rate data: %v", err)
	}
	if n := finder.ZonesSkipped(); n > 0 {
		logger.Warn("zone values dropped", "component", "rate_finder", "count", n)
	}

	gormDB, err := openDatabase(configs, logger)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, finder, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, app, configs.HTTPPort, logger); err != nil {
		logger.Error("HTTP server stopped with error", "error", err)
	}
}

// openDatabase returns nil when no database is configured.
func openDatabase(configs cmd.Config, logger *slog.Logger) (*gorm.DB, error) {
	if !configs.BookingsEnabled() {
		logger.Warn("DB_HOST is not set, bookings are disabled")
		return nil, nil
	}

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("Database connected", "host", configs.DBHost, "name", configs.DBName)
	return db, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port, "bookings_enabled", app.BookingsEnabled())
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down HTTP server")
	return e.Shutdown(shutdownCtx)
}
