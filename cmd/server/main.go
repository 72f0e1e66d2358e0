// Package main is the entry point for the construction stage service. It wires
// all dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/stage-service/internal/adapters/http"
	"github.com/jsamuelsen11/stage-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/stage-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/stage-service/internal/adapters/storage/cache"
	"github.com/jsamuelsen11/stage-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/stage-service/internal/adapters/storage/postgres"

	"github.com/jsamuelsen11/stage-service/internal/app"
	"github.com/jsamuelsen11/stage-service/internal/platform/config"
	"github.com/jsamuelsen11/stage-service/internal/platform/guard"
	"github.com/jsamuelsen11/stage-service/internal/platform/health"
	"github.com/jsamuelsen11/stage-service/internal/platform/logging"
	"github.com/jsamuelsen11/stage-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/stage-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storageConnectTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*storage](injector)
	for _, checker := range store.checkers {
		registry.Register(checker)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		store.close(logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Release storage connections once no request can use them.
	store.close(logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, telemetry.InstrumentationScope)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// storage is the wired repository stack plus the health checkers and
// connection closers that belong to it.
type storage struct {
	repo     ports.StageRepository
	checkers []ports.HealthChecker
	closers  []func() error
}

func (s *storage) close(logger *slog.Logger) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			logger.Error("storage close error", slog.Any("error", err))
		}
	}
}

// newStorage builds the configured repository backend and, when enabled,
// decorates it with the Redis read cache.
func newStorage(cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
	defer cancel()

	s := &storage{}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		g := guard.New(&cfg.Storage, "postgres", metrics, logger)
		repo := postgres.NewRepository(db, g)

		s.repo = repo
		s.checkers = append(s.checkers, repo, g)
		s.closers = append(s.closers, func() error { return postgres.Close(db) })
	case config.DriverMemory:
		repo := memory.NewRepository()
		s.repo = repo
		s.checkers = append(s.checkers, repo)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	logger.Info("storage backend ready", slog.String("driver", cfg.Database.Driver))

	if !cfg.Cache.Enabled {
		return s, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		// The cache falls back to the backend on every Redis error, so an
		// unreachable Redis at startup is reported by readiness, not fatal.
		logger.Warn("redis unreachable at startup",
			slog.String("addr", cfg.Cache.Addr),
			slog.Any("error", err),
		)
	}

	cached := cache.NewRepository(s.repo, client, cfg.Cache.TTL, logger)
	s.repo = cached
	s.checkers = append(s.checkers, cached)
	s.closers = append(s.closers, client.Close)

	return s, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*storage, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return newStorage(cfg, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.StageService, error) {
		store := do.MustInvoke[*storage](i)
		return app.NewStageService(store.repo, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.StageHandler, error) {
		svc := do.MustInvoke[ports.StageService](i)
		return handlers.NewStageHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		stageH := do.MustInvoke[*handlers.StageHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(stageH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
