// Package guard wraps calls to the stage store with a circuit breaker,
// rate limiting, retry with exponential backoff, per-attempt timeouts,
// OpenTelemetry tracing and metrics.
//
// The guard applies its layers in this order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry → Attempt Timeout → Call
//
// Construction:
//
//	g := guard.New(&cfg.Storage, "postgres", metrics, logger)
//
// Guarding a call:
//
//	err := g.Do(ctx, "insert", func(ctx context.Context) error { ... })
//	s, err := guard.Call(ctx, g, "select_by_id", func(ctx context.Context) (*stage.Stage, error) { ... })
package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/stage-service/internal/domain"
	"github.com/jsamuelsen11/stage-service/internal/platform/config"
	"github.com/jsamuelsen11/stage-service/internal/platform/telemetry"
)

// retryConfig holds the retry policy values extracted from config.RetryConfig
// using unexported types to avoid leaking the config package through the API.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Guard protects one backing store. It is safe for concurrent use.
type Guard struct {
	name     string
	breaker  *gobreaker.CircuitBreaker[struct{}]
	limiter  *rate.Limiter // nil when rate limiting is disabled
	timeout  time.Duration
	retryCfg retryConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New creates a Guard for the store identified by name (e.g. "postgres").
// If metrics is nil, metric recording is skipped.
func New(cfg *config.StorageConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}

	return &Guard{
		name:    name,
		breaker: cb,
		limiter: limiter,
		timeout: cfg.Timeout,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do runs fn through the full guard pipeline. operation names the call in
// spans, metrics and logs.
//
// When the breaker rejects the call the returned error wraps both
// domain.ErrUnavailable and the gobreaker sentinel.
func (g *Guard) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	start := time.Now()

	_, err := g.breaker.Execute(func() (struct{}, error) {
		if err := g.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		spanCtx, span := g.startSpan(ctx, operation)
		defer span.End()

		retryErr := g.doWithRetry(spanCtx, operation, fn)
		finishSpan(span, retryErr)

		return struct{}{}, retryErr
	})

	g.recordMetrics(ctx, operation, start, err)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s: %w: %w", g.name, domain.ErrUnavailable, err)
	}
	return err
}

// Call is Do for functions that return a value.
func Call[T any](ctx context.Context, g *Guard, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := g.Do(ctx, operation, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

// Name returns the guarded store identifier. Together with HealthCheck it
// satisfies ports.HealthChecker.
func (g *Guard) Name() string {
	return g.name + "-breaker"
}

// HealthCheck reports the store's availability from the circuit breaker
// state. No call is made to the store.
//
// State mapping:
//   - "closed"    returns nil.
//   - "half-open" returns an error indicating degraded state.
//   - "open"      returns an error indicating failure.
func (g *Guard) HealthCheck(_ context.Context) error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.name, state)
	}
}

// isSuccessful reports whether a call outcome counts as a success for the
// breaker. Domain outcomes such as a missing row say nothing about the
// store's health.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, context.Canceled)
}

// waitForRateLimit blocks until the rate limiter allows the call or the
// context is canceled. Returns nil immediately when rate limiting is disabled.
func (g *Guard) waitForRateLimit(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	return g.limiter.Wait(ctx)
}

// startSpan creates an OTEL client span for the store operation.
func (g *Guard) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(telemetry.InstrumentationScope)

	return tracer.Start(ctx, g.name+" "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrDBSystem.String(g.name),
			telemetry.AttrDBOperation.String(operation),
		),
	)
}

// finishSpan records the call outcome on the span.
func finishSpan(span trace.Span, err error) {
	if err != nil && !isSuccessful(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records store operation duration and count. Metrics are
// recorded outside the circuit breaker so that rejections are captured.
// Safe to call with nil metrics.
func (g *Guard) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil && !isSuccessful(err):
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(g.name),
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	g.metrics.StorageOperationDuration.Record(ctx, duration, attrs)
	g.metrics.StorageOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
