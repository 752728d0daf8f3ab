// riskd serves vital-sign risk predictions over gRPC and HTTP.
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

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/iggi84/patients-health-tracker/internal/application/usecase"
	"github.com/iggi84/patients-health-tracker/internal/domain/port"
	"github.com/iggi84/patients-health-tracker/internal/domain/service"
	"github.com/iggi84/patients-health-tracker/internal/infrastructure/artifact"
	"github.com/iggi84/patients-health-tracker/internal/infrastructure/config"
	"github.com/iggi84/patients-health-tracker/internal/infrastructure/kafka"
	"github.com/iggi84/patients-health-tracker/internal/infrastructure/metrics"
	"github.com/iggi84/patients-health-tracker/internal/infrastructure/postgres"
	grpcpresentation "github.com/iggi84/patients-health-tracker/internal/presentation/grpc"
	"github.com/iggi84/patients-health-tracker/internal/presentation/rest"
	pkgkafka "github.com/iggi84/patients-health-tracker/pkg/kafka"
	"github.com/iggi84/patients-health-tracker/pkg/observability"
	pgutil "github.com/iggi84/patients-health-tracker/pkg/postgres"
)

const serviceName = "vitals-risk-service"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("vitals-risk-service failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting vitals-risk-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"environment", cfg.Environment,
	)

	// Tracing is optional.
	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: serviceName,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    !cfg.IsProduction(),
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(context.Background()) }()
		}
	}

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: serviceName})
	if err != nil {
		return err
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()

	recorder, err := metrics.NewRecorder(meterProvider.Meter(serviceName))
	if err != nil {
		return err
	}

	// Model artifacts. Nothing is served without them.
	artifacts, err := artifact.Load(cfg.ArtifactDir)
	if err != nil {
		return fmt.Errorf("failed to load model artifacts: %w", err)
	}
	predictor, err := service.NewPredictor(*artifacts)
	if err != nil {
		return err
	}
	logger.Info("model artifacts loaded",
		"dir", cfg.ArtifactDir,
		"features", len(artifacts.Features),
		"categories", artifacts.Categories.Len(),
	)

	checks := map[string]rest.ReadinessCheck{}

	// Snapshot store.
	var snapshots port.SnapshotRepository
	if cfg.DatabaseURL != "" {
		dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
		pool, err := pgutil.NewPool(dbCtx, pgutil.Config{URL: cfg.DatabaseURL})
		dbCancel()
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		if err := pgutil.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			return err
		}
		logger.Info("connected to database")

		snapshots = postgres.NewSnapshotRepository(pool)
		checks["database"] = func(ctx context.Context) error {
			return pgutil.HealthCheck(ctx, pool)
		}
	} else {
		logger.Warn("DATABASE_URL not set, patient assessments are disabled")
	}

	// Event publisher.
	var publisher port.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkgkafka.NewProducer(pkgkafka.Config{
			ClientID: serviceName,
			Brokers:  cfg.KafkaBrokers,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Error("failed to close kafka producer", "error", err)
			}
		}()
		publisher = kafka.NewPublisher(producer, cfg.EventsTopic, logger)
	} else {
		logger.Warn("KAFKA_BROKERS not set, assessment events are not published")
	}

	// Use cases.
	predictRisk := usecase.NewPredictRisk(predictor, publisher, recorder, logger)
	var assessPatient *usecase.AssessPatient
	if snapshots != nil {
		assessPatient = usecase.NewAssessPatient(snapshots, predictRisk, logger)
	}

	// gRPC server.
	grpcServer, err := grpcpresentation.NewServer(
		grpcpresentation.NewVitalsRiskHandler(predictRisk, assessPatient, logger),
		grpcpresentation.ServerConfig{
			Address:     cfg.GRPCAddress(),
			TLSCertFile: cfg.TLSCertFile,
			TLSKeyFile:  cfg.TLSKeyFile,
			Reflection:  cfg.Reflection,
		},
		logger,
	)
	if err != nil {
		return err
	}

	// HTTP server.
	var limiter *rate.Limiter
	if cfg.HTTPRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.HTTPRateLimit), max(1, int(cfg.HTTPRateLimit)))
	}
	httpServer := &http.Server{
		Addr: cfg.HTTPAddress(),
		Handler: rest.NewRouter(
			rest.NewHealthHandler(logger, checks),
			rest.NewPredictionHandler(predictRisk, assessPatient, logger),
			metricsHandler,
			limiter,
			logger,
		),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Start(); err != nil {
			return fmt.Errorf("gRPC server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down vitals-risk-service")

		grpcServer.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown error: %w", err)
		}
		return nil
	})

	logger.Info("vitals-risk-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
	)

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("vitals-risk-service stopped")
	return nil
}
