package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/stage-service/internal/domain"
	"github.com/jsamuelsen11/stage-service/internal/domain/stage"
	"github.com/jsamuelsen11/stage-service/internal/platform/guard"
	"github.com/jsamuelsen11/stage-service/internal/ports"
)

var (
	_ ports.StageRepository = (*Repository)(nil)
	_ ports.HealthChecker   = (*Repository)(nil)
)

// Repository is the GORM-backed stage store. When a guard is set, every
// statement runs through it.
type Repository struct {
	db    *gorm.DB
	guard *guard.Guard
}

// NewRepository creates a Repository over db. g may be nil.
func NewRepository(db *gorm.DB, g *guard.Guard) *Repository {
	return &Repository{db: db, guard: g}
}

// Insert stores s and returns the id assigned by the sequence.
func (r *Repository) Insert(ctx context.Context, s *stage.Stage) (int64, error) {
	return run(ctx, r.guard, "insert", func(ctx context.Context) (int64, error) {
		rec := newRecord(s)
		rec.ID = 0
		if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
			return 0, translateError(err)
		}
		return rec.ID, nil
	})
}

// UpdateFields writes changes to the row with this id in one UPDATE.
func (r *Repository) UpdateFields(ctx context.Context, id int64, changes stage.Changes) error {
	if len(changes) == 0 {
		return nil
	}

	_, err := run(ctx, r.guard, "update_fields", func(ctx context.Context) (struct{}, error) {
		res := r.db.WithContext(ctx).
			Model(&stageRecord{}).
			Where("id = ?", id).
			Updates(updateMap(changes))
		if res.Error != nil {
			return struct{}{}, translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return struct{}{}, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
		}
		return struct{}{}, nil
	})
	return err
}

// SelectAll returns stages ordered by id.
func (r *Repository) SelectAll(ctx context.Context, excludeDeleted bool) ([]stage.Stage, error) {
	return run(ctx, r.guard, "select_all", func(ctx context.Context) ([]stage.Stage, error) {
		q := r.db.WithContext(ctx).Order("id")
		if excludeDeleted {
			q = q.Where("status <> ?", stage.StatusDeleted.String())
		}

		var recs []stageRecord
		if err := q.Find(&recs).Error; err != nil {
			return nil, translateError(err)
		}

		out := make([]stage.Stage, 0, len(recs))
		for _, rec := range recs {
			out = append(out, rec.toDomain())
		}
		return out, nil
	})
}

// SelectByID returns the stage with this id.
func (r *Repository) SelectByID(ctx context.Context, id int64, excludeDeleted bool) (*stage.Stage, error) {
	return run(ctx, r.guard, "select_by_id", func(ctx context.Context) (*stage.Stage, error) {
		q := r.db.WithContext(ctx).Where("id = ?", id)
		if excludeDeleted {
			q = q.Where("status <> ?", stage.StatusDeleted.String())
		}

		var rec stageRecord
		if err := q.Take(&rec).Error; err != nil {
			err = translateError(err)
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("stage %d: %w", id, err)
			}
			return nil, err
		}

		s := rec.toDomain()
		return &s, nil
	})
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "postgres" }

// HealthCheck pings the database.
func (r *Repository) HealthCheck(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func run[T any](ctx context.Context, g *guard.Guard, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	if g == nil {
		return fn(ctx)
	}
	return guard.Call(ctx, g, op, fn)
}
