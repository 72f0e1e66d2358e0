// Package memory provides an in-process implementation of
// ports.StageRepository. It backs local runs without a database and
// service-level tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jsamuelsen11/stage-service/internal/domain"
	"github.com/jsamuelsen11/stage-service/internal/domain/stage"
	"github.com/jsamuelsen11/stage-service/internal/ports"
)

var (
	_ ports.StageRepository = (*Repository)(nil)
	_ ports.HealthChecker   = (*Repository)(nil)
)

// Repository stores stages in a map guarded by a mutex. Ids are assigned
// sequentially starting at 1 and never reused.
type Repository struct {
	mu     sync.RWMutex
	stages map[int64]stage.Stage
	nextID int64
}

// NewRepository returns an empty Repository.
func NewRepository() *Repository {
	return &Repository{
		stages: make(map[int64]stage.Stage),
		nextID: 1,
	}
}

// Insert stores a copy of s and returns its new id.
func (r *Repository) Insert(ctx context.Context, s *stage.Stage) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clone(*s)
	stored.ID = r.nextID
	r.stages[stored.ID] = stored
	r.nextID++

	return stored.ID, nil
}

// UpdateFields applies changes to the stage with this id. Either every
// column is written or none is.
func (r *Repository) UpdateFields(ctx context.Context, id int64, changes stage.Changes) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.stages[id]
	if !ok {
		return fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}

	updated := clone(current)
	if err := updated.Apply(changes); err != nil {
		return err
	}
	r.stages[id] = updated

	return nil
}

// SelectAll returns copies of the stored stages ordered by id.
func (r *Repository) SelectAll(ctx context.Context, excludeDeleted bool) ([]stage.Stage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stage.Stage, 0, len(r.stages))
	for _, s := range r.stages {
		if excludeDeleted && s.IsDeleted() {
			continue
		}
		out = append(out, clone(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// SelectByID returns a copy of the stage with this id.
func (r *Repository) SelectByID(ctx context.Context, id int64, excludeDeleted bool) (*stage.Stage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stages[id]
	if !ok || (excludeDeleted && s.IsDeleted()) {
		return nil, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}

	out := clone(s)
	return &out, nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "memory" }

// HealthCheck implements ports.HealthChecker. An in-process store is always
// reachable.
func (r *Repository) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

// clone copies s so callers never share pointer fields with the store.
func clone(s stage.Stage) stage.Stage {
	if s.EndDate != nil {
		end := *s.EndDate
		s.EndDate = &end
	}
	if s.Duration != nil {
		d := *s.Duration
		s.Duration = &d
	}
	return s
}
