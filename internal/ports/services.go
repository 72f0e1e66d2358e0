package ports

import (
	"context"

	"github.com/jsamuelsen11/stage-service/internal/domain/stage"
)

// StageService defines the service port for construction stage operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type StageService interface {
	// ListStages returns every stage that has not been soft deleted.
	ListStages(ctx context.Context) ([]stage.Stage, error)

	// GetStage returns a single non-deleted stage.
	// Returns domain.ErrMissingID if id is not positive and
	// domain.ErrNotFound if no visible stage has that id.
	GetStage(ctx context.Context, id int64) (*stage.Stage, error)

	// CreateStage validates the input, derives the duration, persists the
	// stage and returns it as stored.
	// Returns domain.ErrValidation if the input fails validation.
	CreateStage(ctx context.Context, in stage.Input) (*stage.Stage, error)

	// UpdateStage applies a partial update: only the fields present in the
	// input are validated and written.
	// Returns domain.ErrMissingID, domain.ErrValidation or domain.ErrNotFound.
	UpdateStage(ctx context.Context, id int64, in stage.Input) (*stage.Stage, error)

	// DeleteStage soft deletes a stage by setting its status to DELETED.
	// Returns domain.ErrMissingID or domain.ErrNotFound.
	DeleteStage(ctx context.Context, id int64) error
}
