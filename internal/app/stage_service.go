// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/stage-service/internal/domain"
	"github.com/jsamuelsen11/stage-service/internal/domain/stage"
	"github.com/jsamuelsen11/stage-service/internal/ports"
)

// Compile-time check that StageService implements ports.StageService.
var _ ports.StageService = (*StageService)(nil)

// StageService implements ports.StageService. Each operation is a
// self-contained validate, write and read-back sequence against the
// repository; the service holds no per-request state.
type StageService struct {
	repo   ports.StageRepository
	logger *slog.Logger
}

// NewStageService creates a StageService backed by the given repository.
// A nil logger is replaced with one that discards output.
func NewStageService(repo ports.StageRepository, logger *slog.Logger) *StageService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StageService{
		repo:   repo,
		logger: logger,
	}
}

// ListStages returns every stage that has not been soft deleted.
func (s *StageService) ListStages(ctx context.Context) ([]stage.Stage, error) {
	s.logger.InfoContext(ctx, "listing stages")

	stages, err := s.repo.SelectAll(ctx, true)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list stages",
			slog.String("operation", "ListStages"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return stages, nil
}

// GetStage returns a single non-deleted stage.
func (s *StageService) GetStage(ctx context.Context, id int64) (*stage.Stage, error) {
	if id <= 0 {
		return nil, domain.ErrMissingID
	}

	s.logger.InfoContext(ctx, "fetching stage", slog.Int64("id", id))

	st, err := s.repo.SelectByID(ctx, id, true)
	if err != nil {
		s.logError(ctx, "failed to fetch stage", "GetStage", id, err)
		return nil, err
	}

	return st, nil
}

// CreateStage validates the input, derives the duration, inserts the stage
// and returns it as re-read from storage.
func (s *StageService) CreateStage(ctx context.Context, in stage.Input) (*stage.Stage, error) {
	candidate, err := stage.Validate(in, stage.ModeCreate)
	if err != nil {
		return nil, err
	}

	st := candidate.Stage()
	st.Duration = stage.ComputeDuration(candidate.StartDate, candidate.EndDate, st.DurationUnit)

	s.logger.InfoContext(ctx, "creating stage", slog.String("name", st.Name))

	id, err := s.repo.Insert(ctx, &st)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create stage",
			slog.String("operation", "CreateStage"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("inserting stage: %w", err)
	}

	created, err := s.repo.SelectByID(ctx, id, false)
	if err != nil {
		s.logError(ctx, "failed to read back created stage", "CreateStage", id, err)
		return nil, fmt.Errorf("reading created stage: %w", err)
	}

	return created, nil
}

// UpdateStage applies a partial update. Only fields present in the input are
// validated and written. Duration is rewritten only when both dates are part
// of the update; otherwise the stored duration is left untouched.
func (s *StageService) UpdateStage(ctx context.Context, id int64, in stage.Input) (*stage.Stage, error) {
	if id <= 0 {
		return nil, domain.ErrMissingID
	}

	candidate, err := stage.Validate(in, stage.ModeUpdate)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating stage", slog.Int64("id", id))

	changes := candidate.Changes()

	// Duration is only recomputed when both dates arrive together. A patch
	// carrying one date or only a unit keeps the stored duration.
	if candidate.StartDate != nil && candidate.EndDate != nil {
		unit, err := s.effectiveUnit(ctx, id, candidate)
		if err != nil {
			s.logError(ctx, "failed to resolve duration unit", "UpdateStage", id, err)
			return nil, err
		}
		if d := stage.ComputeDuration(candidate.StartDate, candidate.EndDate, unit); d != nil {
			changes[stage.ColumnDuration] = *d
		}
	}

	if len(changes) > 0 {
		if err := s.repo.UpdateFields(ctx, id, changes); err != nil {
			s.logError(ctx, "failed to update stage", "UpdateStage", id, err)
			return nil, fmt.Errorf("updating stage: %w", err)
		}
	}

	updated, err := s.repo.SelectByID(ctx, id, false)
	if err != nil {
		s.logError(ctx, "failed to read back updated stage", "UpdateStage", id, err)
		return nil, fmt.Errorf("reading updated stage: %w", err)
	}

	return updated, nil
}

// DeleteStage soft deletes a stage. The row is kept with status DELETED.
func (s *StageService) DeleteStage(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrMissingID
	}

	s.logger.InfoContext(ctx, "deleting stage", slog.Int64("id", id))

	changes := stage.Changes{stage.ColumnStatus: stage.StatusDeleted.String()}
	if err := s.repo.UpdateFields(ctx, id, changes); err != nil {
		s.logError(ctx, "failed to delete stage", "DeleteStage", id, err)
		return fmt.Errorf("deleting stage: %w", err)
	}

	return nil
}

// effectiveUnit returns the unit to compute a new duration with: the one in
// the update when present, else the unit already stored for the stage.
func (s *StageService) effectiveUnit(ctx context.Context, id int64, c stage.Candidate) (stage.DurationUnit, error) {
	if c.DurationUnit != nil {
		return *c.DurationUnit, nil
	}

	current, err := s.repo.SelectByID(ctx, id, false)
	if err != nil {
		return "", fmt.Errorf("reading current stage: %w", err)
	}
	return current.DurationUnit.OrDefault(), nil
}

func (s *StageService) logError(ctx context.Context, msg, operation string, id int64, err error) {
	s.logger.ErrorContext(ctx, msg,
		slog.String("operation", operation),
		slog.Int64("id", id),
		slog.Any("error", err),
	)
}
