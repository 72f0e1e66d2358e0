package cache

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/stage-service/internal/domain"
	"github.com/jsamuelsen11/stage-service/internal/domain/stage"
)

// entry is the cached JSON form of a stage.
type entry struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Duration     *float64   `json:"duration,omitempty"`
	DurationUnit string     `json:"durationUnit"`
	Color        string     `json:"color,omitempty"`
	ExternalID   string     `json:"externalId,omitempty"`
	Status       string     `json:"status"`
}

func newEntry(s stage.Stage) entry {
	return entry{
		ID:           s.ID,
		Name:         s.Name,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		Duration:     s.Duration,
		DurationUnit: s.DurationUnit.String(),
		Color:        s.Color,
		ExternalID:   s.ExternalID,
		Status:       s.Status.String(),
	}
}

func (e entry) toDomain() stage.Stage {
	return stage.Stage{
		ID:           e.ID,
		Name:         e.Name,
		StartDate:    e.StartDate.UTC(),
		EndDate:      e.EndDate,
		Duration:     e.Duration,
		DurationUnit: stage.DurationUnit(e.DurationUnit),
		Color:        e.Color,
		ExternalID:   e.ExternalID,
		Status:       stage.Status(e.Status),
	}
}

func toEntries(stages []stage.Stage) []entry {
	out := make([]entry, len(stages))
	for i, s := range stages {
		out[i] = newEntry(s)
	}
	return out
}

func fromEntries(entries []entry) []stage.Stage {
	out := make([]stage.Stage, len(entries))
	for i, e := range entries {
		out[i] = e.toDomain()
	}
	return out
}

func notFound(id int64) error {
	return fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
}
