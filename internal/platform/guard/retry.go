package guard

import (
	"context"
	crand "crypto/rand"
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsamuelsen11/stage-service/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry runs fn with retry using exponential backoff and ±25% jitter.
// Each attempt gets its own timeout when one is configured.
func (g *Guard) doWithRetry(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	if g.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("guard: maxAttempts must be >= 1, got %d", g.retryCfg.maxAttempts)
	}

	var lastErr error

	for attempt := range g.retryCfg.maxAttempts {
		if attempt > 0 {
			if err := g.waitForRetry(ctx, operation, attempt, lastErr); err != nil {
				return err
			}
		}

		lastErr = g.attempt(ctx, fn)
		if lastErr == nil || ctx.Err() != nil || !isRetryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

func (g *Guard) attempt(ctx context.Context, fn func(ctx context.Context) error) error {
	if g.timeout <= 0 {
		return fn(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return fn(attemptCtx)
}

// waitForRetry calculates the backoff delay, logs the retry attempt at WARN
// level, and waits for the delay or context cancellation.
func (g *Guard) waitForRetry(ctx context.Context, operation string, attempt int, lastErr error) error {
	delay := backoff(attempt, g.retryCfg)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying store operation",
		slog.String("operation", operation),
		slog.String("store", g.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", g.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a failed attempt may be repeated. Only errors
// raised before the statement reached the server qualify, so a retried
// insert can never be applied twice.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	return pgconn.SafeToRetry(err)
}
