// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/stage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stage-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/stage-service/internal/domain"
)

var (
	errRouteNotFound    = fmt.Errorf("route %w", domain.ErrNotFound)
	errMethodNotAllowed = errors.New("method not allowed")
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
//
// PATCH and DELETE are also mounted on the collection path so that a request
// without an id gets the same "id is missing" response as id 0.
func NewRouter(
	stageHandler *handlers.StageHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, errRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeMethodNotAllowed(w, req)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1/constructionStages", func(r chi.Router) {
		r.Get("/", stageHandler.ListStages)
		r.Post("/", stageHandler.CreateStage)
		r.Patch("/", stageHandler.UpdateStage)
		r.Delete("/", stageHandler.DeleteStage)

		r.Get("/{id}", stageHandler.GetStage)
		r.Patch("/{id}", stageHandler.UpdateStage)
		r.Delete("/{id}", stageHandler.DeleteStage)
	})

	return r
}

// writeMethodNotAllowed writes a 405 problem+json body. The domain error
// mapping has no 405 case, so the response is built here.
func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, dto.ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusMethodNotAllowed),
		Status:   http.StatusMethodNotAllowed,
		Detail:   errMethodNotAllowed.Error(),
		Instance: r.RequestURI,
		Code:     http.StatusMethodNotAllowed,
		Message:  errMethodNotAllowed.Error(),
	})
}
