package postgres

import (
	"time"

	"github.com/jsamuelsen11/stage-service/internal/domain/stage"
)

const tableName = "construction_stages"

// stageRecord is the row layout of construction_stages. Optional text
// columns are NULL when unset.
type stageRecord struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string     `gorm:"column:name;size:255;not null"`
	StartDate    time.Time  `gorm:"column:start_date;type:timestamptz;not null"`
	EndDate      *time.Time `gorm:"column:end_date;type:timestamptz"`
	Duration     *float64   `gorm:"column:duration"`
	DurationUnit string     `gorm:"column:duration_unit;size:8;not null"`
	Color        *string    `gorm:"column:color;size:7"`
	ExternalID   *string    `gorm:"column:external_id;size:255"`
	Status       string     `gorm:"column:status;size:8;not null;index"`
}

// TableName overrides GORM's pluralized default.
func (stageRecord) TableName() string { return tableName }

func newRecord(s *stage.Stage) stageRecord {
	return stageRecord{
		ID:           s.ID,
		Name:         s.Name,
		StartDate:    s.StartDate.UTC(),
		EndDate:      utcPtr(s.EndDate),
		Duration:     s.Duration,
		DurationUnit: s.DurationUnit.String(),
		Color:        nullString(s.Color),
		ExternalID:   nullString(s.ExternalID),
		Status:       s.Status.String(),
	}
}

func (r stageRecord) toDomain() stage.Stage {
	s := stage.Stage{
		ID:           r.ID,
		Name:         r.Name,
		StartDate:    r.StartDate.UTC(),
		EndDate:      utcPtr(r.EndDate),
		Duration:     r.Duration,
		DurationUnit: stage.DurationUnit(r.DurationUnit),
		Status:       stage.Status(r.Status),
	}
	if r.Color != nil {
		s.Color = *r.Color
	}
	if r.ExternalID != nil {
		s.ExternalID = *r.ExternalID
	}
	return s
}

// updateMap converts a write set into GORM column assignments.
func updateMap(changes stage.Changes) map[string]any {
	m := make(map[string]any, len(changes))
	for col, v := range changes {
		switch val := v.(type) {
		case time.Time:
			m[string(col)] = val.UTC()
		case string:
			if col == stage.ColumnColor || col == stage.ColumnExternalID {
				m[string(col)] = nullString(val)
			} else {
				m[string(col)] = val
			}
		default:
			m[string(col)] = v
		}
	}
	return m
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
