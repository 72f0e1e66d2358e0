// Package cache provides a Redis read-through cache in front of a
// ports.StageRepository. Writes go to the wrapped repository and then fence
// the affected keys. Redis failures never fail a request: reads fall back to
// the wrapped repository and are logged at WARN.
//
// A fence is a short-lived marker value. Reads treat it as a miss, and fills
// use SET NX, so a fill that read the row before a concurrent write cannot
// put the old row back while the fence is live.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/stage-service/internal/domain/stage"
	"github.com/jsamuelsen11/stage-service/internal/ports"
)

var (
	_ ports.StageRepository = (*Repository)(nil)
	_ ports.HealthChecker   = (*Repository)(nil)
)

const (
	defaultPrefix = "stages:"
	listKey       = "all"

	// fenceValue is not valid JSON for any cached entry.
	fenceValue = "~"
	fenceTTL   = 5 * time.Second
)

// Repository caches full rows, deleted ones included, and applies the
// excludeDeleted filter after the lookup.
type Repository struct {
	next   ports.StageRepository
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRepository wraps next with a cache stored in client. Entries expire
// after ttl.
func NewRepository(next ports.StageRepository, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		next:   next,
		client: client,
		prefix: defaultPrefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *Repository) idKey(id int64) string {
	return r.prefix + strconv.FormatInt(id, 10)
}

func (r *Repository) listKey() string {
	return r.prefix + listKey
}

// Insert stores s in the wrapped repository and fences the cached list.
func (r *Repository) Insert(ctx context.Context, s *stage.Stage) (int64, error) {
	id, err := r.next.Insert(ctx, s)
	if err != nil {
		return 0, err
	}
	r.fence(ctx, r.listKey())
	return id, nil
}

// UpdateFields writes through and fences the row and list entries.
func (r *Repository) UpdateFields(ctx context.Context, id int64, changes stage.Changes) error {
	err := r.next.UpdateFields(ctx, id, changes)
	r.fence(ctx, r.idKey(id), r.listKey())
	return err
}

// SelectAll serves the list from the cache when present.
func (r *Repository) SelectAll(ctx context.Context, excludeDeleted bool) ([]stage.Stage, error) {
	var entries []entry
	if r.load(ctx, r.listKey(), &entries) {
		return filter(fromEntries(entries), excludeDeleted), nil
	}

	all, err := r.next.SelectAll(ctx, false)
	if err != nil {
		return nil, err
	}
	r.store(ctx, r.listKey(), toEntries(all))

	return filter(all, excludeDeleted), nil
}

// SelectByID serves the row from the cache when present.
func (r *Repository) SelectByID(ctx context.Context, id int64, excludeDeleted bool) (*stage.Stage, error) {
	var e entry
	if !r.load(ctx, r.idKey(id), &e) {
		s, err := r.next.SelectByID(ctx, id, false)
		if err != nil {
			return nil, err
		}
		e = newEntry(*s)
		r.store(ctx, r.idKey(id), e)
	}

	s := e.toDomain()
	if excludeDeleted && s.IsDeleted() {
		return nil, notFound(id)
	}
	return &s, nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "redis" }

// HealthCheck pings Redis.
func (r *Repository) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// load reads key into dst. It reports false on a miss, a fence or any
// failure.
func (r *Repository) load(ctx context.Context, key string, dst any) bool {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.warn(ctx, "cache read failed", key, err)
		}
		return false
	}
	if string(b) == fenceValue {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		r.warn(ctx, "cache entry corrupt", key, err)
		r.invalidate(ctx, key)
		return false
	}
	return true
}

func (r *Repository) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		r.warn(ctx, "cache encode failed", key, err)
		return
	}
	if err := r.client.SetNX(ctx, key, b, r.ttl).Err(); err != nil {
		r.warn(ctx, "cache write failed", key, err)
	}
}

// fence replaces keys with a marker that blocks fills until it expires.
func (r *Repository) fence(ctx context.Context, keys ...string) {
	_, err := r.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, key := range keys {
			p.Set(ctx, key, fenceValue, fenceTTL)
		}
		return nil
	})
	if err != nil {
		r.warn(ctx, "cache fence failed", keys[0], err)
	}
}

func (r *Repository) invalidate(ctx context.Context, keys ...string) {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.warn(ctx, "cache invalidation failed", keys[0], err)
	}
}

func (r *Repository) warn(ctx context.Context, msg, key string, err error) {
	r.logger.WarnContext(ctx, msg,
		slog.String("operation", "cache"),
		slog.String("key", key),
		slog.Any("error", err),
	)
}

func filter(stages []stage.Stage, excludeDeleted bool) []stage.Stage {
	if !excludeDeleted {
		return stages
	}
	out := make([]stage.Stage, 0, len(stages))
	for _, s := range stages {
		if !s.IsDeleted() {
			out = append(out, s)
		}
	}
	return out
}
