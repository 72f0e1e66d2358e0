package dto

import "github.com/jsamuelsen11/stage-service/internal/domain/stage"

// StageRequest is the JSON body for creating or patching a construction
// stage. Every field is optional at the wire level; a nil pointer means the
// field was not sent. Field rules are enforced by stage.Validate so create and
// patch report the same rule-specific messages.
type StageRequest struct {
	Name         *string `json:"name,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	DurationUnit *string `json:"durationUnit,omitempty"`
	Color        *string `json:"color,omitempty"`
	ExternalID   *string `json:"externalId,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// ToInput converts the request into the service input.
func (r *StageRequest) ToInput() stage.Input {
	return stage.Input{
		Name:         r.Name,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		DurationUnit: r.DurationUnit,
		Color:        r.Color,
		ExternalID:   r.ExternalID,
		Status:       r.Status,
	}
}
