package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wholesale/cmd"
	"wholesale/internal/adapters/out/kafka"
	"wholesale/internal/adapters/out/postgres"
	"wholesale/internal/core/ports"
	"wholesale/internal/jobs"
	"wholesale/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := telemetry.NewLogger(os.Stdout, parseLevel(configs.LogLevel)).
		With("service", configs.ServiceName)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracer, err := telemetry.SetupTracer(ctx, configs.ServiceName, configs.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Error setting up tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := shutdownTracer(shutdownCtx); shutdownErr != nil {
			logger.Error("Failed to shut down tracer", "error", shutdownErr)
		}
	}()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	var publisher ports.OrderEventPublisher = kafka.NoopPublisher{}
	if configs.KafkaHost != "" {
		writer, writerErr := kafka.NewWriter(configs.KafkaHost, configs.KafkaOrderChangedTopic, configs.ServiceName, tp)
		if writerErr != nil {
			log.Fatalf("Error creating Kafka writer: %v", writerErr)
		}
		orderChanged := kafka.NewOrderChangedPublisher(writer)
		defer func() {
			if closeErr := orderChanged.Close(); closeErr != nil {
				logger.Error("Failed to close Kafka writer", "error", closeErr)
			}
		}()
		publisher = orderChanged
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := jobs.NewJobManager(
		app.CreateGetProductsToReorderQueryHandler(),
		configs.ReorderAlertSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down web server", "error", err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
		logger.Error("Web server stopped", "error", err)
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
