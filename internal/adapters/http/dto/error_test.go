package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/stage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stage-service/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "ErrNotFound maps to 404",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "ValidationError maps to 400",
			err:        domain.NewValidationError("name", "name is required"),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "ErrMissingID maps to 400",
			err:        domain.ErrMissingID,
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "ErrConflict maps to 409",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
		},
		{
			name:       "ErrUnavailable maps to 503",
			err:        fmt.Errorf("postgres: %w", domain.ErrUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantTitle:  "Service Unavailable",
		},
		{
			name:       "deadline exceeded maps to 504",
			err:        fmt.Errorf("selecting stage: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantTitle:  "Gateway Timeout",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "wrapped ErrNotFound preserves mapping",
			err:        fmt.Errorf("deleting stage: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/constructionStages/42", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Code != tt.wantStatus {
				t.Errorf("Code = %d, want %d", got.Code, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPatch, "/api/v1/constructionStages/0", nil)
	err := domain.ErrMissingID

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/constructionStages/0" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/constructionStages/0")
	}
	if got.Detail != "id is missing" || got.Message != "id is missing" {
		t.Errorf("Detail = %q, Message = %q, want %q", got.Detail, got.Message, "id is missing")
	}
}

func TestNewErrorResponse_HidesInternalDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/constructionStages", nil)
	got := dto.NewErrorResponse(r, errors.New(`pq: relation "construction_stages" does not exist`))

	if got.Detail != "Internal Server Error" {
		t.Errorf("Detail = %q, want generic text", got.Detail)
	}
}

func TestNewErrorResponse_ValidationErrorDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/constructionStages", nil)
	got := dto.NewErrorResponse(r, domain.NewValidationError("color", "color should match #FF0000 style"))

	if got.Message != "color should match #FF0000 style" {
		t.Errorf("Message = %q, want rule message", got.Message)
	}
	if len(got.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(got.Errors))
	}
	if got.Errors[0].Location != "body.color" {
		t.Errorf("Errors[0].Location = %q, want %q", got.Errors[0].Location, "body.color")
	}
}

func TestNewErrorResponse_WrappedValidationUsesRuleMessage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/constructionStages", nil)
	driverErr := errors.New(`ERROR: null value in column "start_date" of relation "construction_stages"`)
	err := fmt.Errorf("%w: %w", domain.NewValidationError("startDate", "value violates a storage constraint"), driverErr)

	got := dto.NewErrorResponse(r, err)

	if got.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", got.Status)
	}
	if got.Detail != "value violates a storage constraint" {
		t.Errorf("Detail = %q, want rule message only", got.Detail)
	}
	if got.Message != got.Detail {
		t.Errorf("Message = %q, want %q", got.Message, got.Detail)
	}
}

func TestNewErrorResponse_NoValidationErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/constructionStages/1", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestWriteErrorResponse_ContentType(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/constructionStages/42", nil)

	dto.WriteErrorResponse(w, r, domain.ErrNotFound)

	ct := w.Header().Get("Content-Type")
	if ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
}

func TestWriteErrorResponse_ValidJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/constructionStages", nil)

	dto.WriteErrorResponse(w, r, domain.NewValidationError("name", "name is required"))

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if w.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if body["code"] != float64(http.StatusBadRequest) {
		t.Errorf("code = %v, want 400", body["code"])
	}
	if body["message"] != "name is required" {
		t.Errorf("message = %v, want %q", body["message"], "name is required")
	}
}
