package stage

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/stage-service/internal/domain"
)

// Mode selects which presence rules Validate applies.
type Mode int

const (
	// ModeCreate requires name and startDate.
	ModeCreate Mode = iota
	// ModeUpdate checks only the fields that are present.
	ModeUpdate
)

// Rule-specific validation messages returned to API clients.
const (
	MsgNameRequired      = "name is required"
	MsgNameTooLong       = "name should be maximum 255 chars"
	MsgStartDateRequired = "startDate is required"
	MsgStartDateInvalid  = "startDate should match YYYY-MM-DDTHH:MM:SSZ and be a valid date"
	MsgEndDateInvalid    = "endDate should match YYYY-MM-DDTHH:MM:SSZ and not be earlier than startDate"
	MsgColorInvalid      = "color should match #FF0000 style"
	MsgExternalIDTooLong = "externalId should be maximum 255 chars"
	MsgStatusInvalid     = "status should be NEW, PLANNED or DELETED"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks in against the stage field rules and returns the normalized
// candidate. Rules run in a fixed order and the first failure is returned as a
// *domain.ValidationError. The input is never modified.
//
// Unknown duration units are rewritten to DefaultUnit rather than rejected.
// In ModeCreate an absent unit is also set to DefaultUnit.
func Validate(in Input, mode Mode) (Candidate, error) {
	var c Candidate

	name, hasName := value(in.Name)
	switch {
	case !hasName && mode == ModeCreate:
		return Candidate{}, domain.NewValidationError("name", MsgNameRequired)
	case hasName && utf8.RuneCountInString(name) > MaxTextLength:
		return Candidate{}, domain.NewValidationError("name", MsgNameTooLong)
	case hasName:
		c.Name = &name
	}

	rawStart, hasStart := value(in.StartDate)
	switch {
	case !hasStart && mode == ModeCreate:
		return Candidate{}, domain.NewValidationError("startDate", MsgStartDateRequired)
	case hasStart:
		start, ok := ParseTimestamp(rawStart)
		if !ok {
			return Candidate{}, domain.NewValidationError("startDate", MsgStartDateInvalid)
		}
		c.StartDate = &start
	}

	if rawEnd, ok := value(in.EndDate); ok {
		end, err := validateEndDate(rawStart, hasStart, rawEnd)
		if err != nil {
			return Candidate{}, err
		}
		c.EndDate = &end
	}

	if rawUnit, ok := value(in.DurationUnit); ok {
		unit := DurationUnit(rawUnit).OrDefault()
		c.DurationUnit = &unit
	} else if mode == ModeCreate {
		unit := DefaultUnit
		c.DurationUnit = &unit
	}

	if color, ok := value(in.Color); ok {
		if !colorPattern.MatchString(color) {
			return Candidate{}, domain.NewValidationError("color", MsgColorInvalid)
		}
		c.Color = &color
	}

	if ext, ok := value(in.ExternalID); ok {
		if utf8.RuneCountInString(ext) > MaxTextLength {
			return Candidate{}, domain.NewValidationError("externalId", MsgExternalIDTooLong)
		}
		c.ExternalID = &ext
	}

	if rawStatus, ok := value(in.Status); ok {
		status := Status(rawStatus)
		if !status.IsValid() {
			return Candidate{}, domain.NewValidationError("status", MsgStatusInvalid)
		}
		c.Status = &status
	}

	return c, nil
}

// validateEndDate checks endDate against the startDate of the same payload.
// The lexical comparison is sound because both values are fixed-width.
func validateEndDate(rawStart string, hasStart bool, rawEnd string) (time.Time, error) {
	if !hasStart {
		return time.Time{}, domain.NewValidationError("endDate", MsgEndDateInvalid)
	}
	end, ok := ParseTimestamp(rawEnd)
	if !ok || rawStart > rawEnd {
		return time.Time{}, domain.NewValidationError("endDate", MsgEndDateInvalid)
	}
	return end, nil
}

// value dereferences p, treating nil and "" as absent.
func value(p *string) (string, bool) {
	if p == nil || *p == "" {
		return "", false
	}
	return *p, true
}
