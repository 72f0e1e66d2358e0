package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/stage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stage-service/internal/ports"
)

// StageHandler handles HTTP requests for construction stage operations.
type StageHandler struct {
	service ports.StageService
}

// NewStageHandler creates a new StageHandler with the given service port.
func NewStageHandler(service ports.StageService) *StageHandler {
	return &StageHandler{service: service}
}

// ListStages handles GET /api/v1/constructionStages.
func (h *StageHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.service.ListStages(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStageListResponse(stages))
}

// GetStage handles GET /api/v1/constructionStages/{id}.
func (h *StageHandler) GetStage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	s, err := h.service.GetStage(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStageResponse(s))
}

// CreateStage handles POST /api/v1/constructionStages.
func (h *StageHandler) CreateStage(w http.ResponseWriter, r *http.Request) {
	var req dto.StageRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.service.CreateStage(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToStageResponse(created))
}

// UpdateStage handles PATCH /api/v1/constructionStages/{id}.
// The id is checked before the body is read.
func (h *StageHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.StageRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.service.UpdateStage(r.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStageResponse(updated))
}

// DeleteStage handles DELETE /api/v1/constructionStages/{id}.
func (h *StageHandler) DeleteStage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteStage(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewDeletedResponse(id))
}
