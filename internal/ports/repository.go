package ports

import (
	"context"

	"github.com/jsamuelsen11/stage-service/internal/domain/stage"
)

// StageRepository defines the storage port for construction stages.
// Implementations must use parameterized statements only; the port exposes
// column-to-value semantics, never SQL text.
type StageRepository interface {
	// Insert stores a new stage and returns the storage-assigned id.
	Insert(ctx context.Context, s *stage.Stage) (int64, error)

	// UpdateFields writes the given columns of the stage with this id in a
	// single statement. Returns domain.ErrNotFound if no row has that id.
	UpdateFields(ctx context.Context, id int64, changes stage.Changes) error

	// SelectAll returns stages ordered by id, optionally hiding soft-deleted ones.
	SelectAll(ctx context.Context, excludeDeleted bool) ([]stage.Stage, error)

	// SelectByID returns the stage with this id.
	// Returns domain.ErrNotFound if it does not exist or is hidden by excludeDeleted.
	SelectByID(ctx context.Context, id int64, excludeDeleted bool) (*stage.Stage, error)
}
