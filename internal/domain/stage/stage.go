package stage

import (
	"fmt"
	"time"
)

// MaxTextLength is the maximum number of characters accepted for name and
// externalId.
const MaxTextLength = 255

// Stage is a scheduled construction activity as persisted by the repository.
// Color and ExternalID use the empty string for "not set".
type Stage struct {
	ID           int64
	Name         string
	StartDate    time.Time
	EndDate      *time.Time
	Duration     *float64
	DurationUnit DurationUnit
	Color        string
	ExternalID   string
	Status       Status
}

// IsDeleted reports whether the stage has been soft deleted.
func (s *Stage) IsDeleted() bool {
	return s.Status == StatusDeleted
}

// Input carries caller-supplied fields for create and partial update.
// A nil pointer means the field was not supplied. An empty string is treated
// the same as an absent field.
type Input struct {
	Name         *string
	StartDate    *string
	EndDate      *string
	DurationUnit *string
	Color        *string
	ExternalID   *string
	Status       *string
}

// Candidate is the normalized result of Validate. Nil fields were absent from
// the input. Dates are parsed, the unit and status are typed.
type Candidate struct {
	Name         *string
	StartDate    *time.Time
	EndDate      *time.Time
	DurationUnit *DurationUnit
	Color        *string
	ExternalID   *string
	Status       *Status
}

// Column names a persisted stage attribute in a write set.
type Column string

const (
	ColumnName         Column = "name"
	ColumnStartDate    Column = "start_date"
	ColumnEndDate      Column = "end_date"
	ColumnDuration     Column = "duration"
	ColumnDurationUnit Column = "duration_unit"
	ColumnColor        Column = "color"
	ColumnExternalID   Column = "external_id"
	ColumnStatus       Column = "status"
)

// Changes is a partial-update write set keyed by column. Values are plain
// storage types: string for text and enum columns, time.Time for dates and
// float64 for duration.
type Changes map[Column]any

// Changes builds the write set containing exactly the fields present in c.
// Duration is never included here; callers add it only when it was computed.
func (c Candidate) Changes() Changes {
	changes := make(Changes)
	if c.Name != nil {
		changes[ColumnName] = *c.Name
	}
	if c.StartDate != nil {
		changes[ColumnStartDate] = *c.StartDate
	}
	if c.EndDate != nil {
		changes[ColumnEndDate] = *c.EndDate
	}
	if c.DurationUnit != nil {
		changes[ColumnDurationUnit] = c.DurationUnit.String()
	}
	if c.Color != nil {
		changes[ColumnColor] = *c.Color
	}
	if c.ExternalID != nil {
		changes[ColumnExternalID] = *c.ExternalID
	}
	if c.Status != nil {
		changes[ColumnStatus] = c.Status.String()
	}
	return changes
}

// Stage converts a create-mode candidate into a new Stage. Absent status
// defaults to NEW and absent unit to DefaultUnit. Duration is left nil.
func (c Candidate) Stage() Stage {
	s := Stage{
		StartDate:    derefTime(c.StartDate),
		EndDate:      c.EndDate,
		DurationUnit: DefaultUnit,
		Status:       StatusNew,
	}
	if c.Name != nil {
		s.Name = *c.Name
	}
	if c.DurationUnit != nil {
		s.DurationUnit = *c.DurationUnit
	}
	if c.Color != nil {
		s.Color = *c.Color
	}
	if c.ExternalID != nil {
		s.ExternalID = *c.ExternalID
	}
	if c.Status != nil {
		s.Status = *c.Status
	}
	return s
}

// Apply writes a change set onto s. It is used by stores that keep Stage
// values directly rather than issuing SQL.
func (s *Stage) Apply(changes Changes) error {
	for col, v := range changes {
		if err := s.applyOne(col, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stage) applyOne(col Column, v any) error {
	switch col {
	case ColumnName:
		return assign(col, v, &s.Name)
	case ColumnColor:
		return assign(col, v, &s.Color)
	case ColumnExternalID:
		return assign(col, v, &s.ExternalID)
	case ColumnStartDate:
		return assign(col, v, &s.StartDate)
	case ColumnEndDate:
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("column %s: unexpected value type %T", col, v)
		}
		s.EndDate = &t
	case ColumnDuration:
		d, ok := v.(float64)
		if !ok {
			return fmt.Errorf("column %s: unexpected value type %T", col, v)
		}
		s.Duration = &d
	case ColumnDurationUnit:
		var raw string
		if err := assign(col, v, &raw); err != nil {
			return err
		}
		s.DurationUnit = DurationUnit(raw)
	case ColumnStatus:
		var raw string
		if err := assign(col, v, &raw); err != nil {
			return err
		}
		s.Status = Status(raw)
	default:
		return fmt.Errorf("unknown column %q", col)
	}
	return nil
}

func assign[T any](col Column, v any, dst *T) error {
	typed, ok := v.(T)
	if !ok {
		return fmt.Errorf("column %s: unexpected value type %T", col, v)
	}
	*dst = typed
	return nil
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
