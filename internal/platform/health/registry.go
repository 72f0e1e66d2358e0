// Package health provides a thread-safe health check registry for tracking
// the health of the storage backend, the storage circuit breaker and the
// cache. The registry is used by the readiness endpoint to determine whether
// the service can accept traffic.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/stage-service/internal/ports"
)

// DefaultCheckTimeout bounds a single health check when the caller's context
// carries no earlier deadline.
const DefaultCheckTimeout = 2 * time.Second

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu           sync.RWMutex
	checkers     []ports.HealthChecker
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive values are
// ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs all registered health checks concurrently, each under its own
// timeout, and returns results keyed by checker name. Nil values indicate
// healthy components. When two checkers share a name the one registered last
// wins. The slice is copied under a read lock so checks run without holding
// the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			checkCtx, cancel := context.WithTimeout(ctx, r.checkTimeout)
			defer cancel()
			errs[i] = c.HealthCheck(checkCtx)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
