package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/stage-service/internal/domain"
)

// SQLSTATE codes mapped to domain errors.
const (
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeAdminShutdown       = "57P01"
	codeCannotConnectNow    = "57P03"
	codeTooManyConnections  = "53300"
	codeSerializationFailed = "40001"
)

// translateError maps driver and GORM errors onto domain sentinels. The
// original error stays in the chain so callers can still inspect it with
// pgconn helpers.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		case codeCheckViolation, codeNotNullViolation:
			return fmt.Errorf("%w: %w", constraintError(pgErr), err)
		case codeAdminShutdown, codeCannotConnectNow, codeTooManyConnections, codeSerializationFailed:
			return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	return err
}

// msgConstraintViolation is returned to clients in place of the driver text.
const msgConstraintViolation = "value violates a storage constraint"

// columnFields maps table columns to the request field names clients use.
var columnFields = map[string]string{
	"name":          "name",
	"start_date":    "startDate",
	"end_date":      "endDate",
	"duration":      "duration",
	"duration_unit": "durationUnit",
	"color":         "color",
	"external_id":   "externalId",
	"status":        "status",
}

// constraintError turns a check or not-null violation into a ValidationError
// carrying a fixed message, so server-side constraint text never reaches
// API clients.
func constraintError(pgErr *pgconn.PgError) *domain.ValidationError {
	field, ok := columnFields[pgErr.ColumnName]
	if !ok {
		field = "stage"
	}
	return domain.NewValidationError(field, msgConstraintViolation)
}
