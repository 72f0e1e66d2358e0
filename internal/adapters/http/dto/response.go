// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/stage-service/internal/domain/stage"

// StageResponse represents a single construction stage in HTTP responses.
// Unset optional values are rendered as null.
type StageResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	StartDate    string   `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Duration     *float64 `json:"duration"`
	DurationUnit string   `json:"durationUnit"`
	Color        *string  `json:"color"`
	ExternalID   *string  `json:"externalId"`
	Status       string   `json:"status"`
}

// StageListResponse represents a list of stages in HTTP responses.
type StageListResponse struct {
	Stages []StageResponse `json:"stages"`
	Count  int             `json:"count"`
}

// DeletedResponse acknowledges a soft delete.
type DeletedResponse struct {
	Deleted DeletedID `json:"deleted"`
}

// DeletedID carries the id of the deleted stage.
type DeletedID struct {
	ID int64 `json:"id"`
}

// ToStageResponse converts a domain Stage to an HTTP response DTO.
func ToStageResponse(s *stage.Stage) StageResponse {
	resp := StageResponse{
		ID:           s.ID,
		Name:         s.Name,
		StartDate:    stage.FormatTimestamp(s.StartDate),
		Duration:     s.Duration,
		DurationUnit: s.DurationUnit.String(),
		Color:        optional(s.Color),
		ExternalID:   optional(s.ExternalID),
		Status:       s.Status.String(),
	}
	if s.EndDate != nil {
		end := stage.FormatTimestamp(*s.EndDate)
		resp.EndDate = &end
	}
	return resp
}

// ToStageListResponse converts a slice of domain stages to an HTTP list
// response DTO.
func ToStageListResponse(stages []stage.Stage) StageListResponse {
	items := make([]StageResponse, len(stages))
	for i := range stages {
		items[i] = ToStageResponse(&stages[i])
	}
	return StageListResponse{
		Stages: items,
		Count:  len(items),
	}
}

// NewDeletedResponse builds the soft delete acknowledgement for id.
func NewDeletedResponse(id int64) DeletedResponse {
	return DeletedResponse{Deleted: DeletedID{ID: id}}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
