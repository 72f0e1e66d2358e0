package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/stage-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/stage-service/mocks"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

// --- Readiness ---

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"postgres": nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "ready" {
		t.Errorf("status = %q, want %q", resp["status"], "ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["postgres"] != "ok" {
		t.Errorf("postgres check = %v, want %q", checks["postgres"], "ok")
	}
}

func TestReadiness_Unhealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"postgres":         errors.New("connection refused"),
		"postgres-breaker": nil,
		"redis":            errors.New("dial tcp: i/o timeout"),
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "not_ready" {
		t.Errorf("status = %q, want %q", resp["status"], "not_ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["postgres"] != "connection refused" {
		t.Errorf("postgres check = %v, want %q", checks["postgres"], "connection refused")
	}
	if checks["postgres-breaker"] != "ok" {
		t.Errorf("postgres-breaker check = %v, want %q", checks["postgres-breaker"], "ok")
	}
	failing, ok := resp["failing"].([]any)
	if !ok || len(failing) != 2 || failing[0] != "postgres" || failing[1] != "redis" {
		t.Errorf("failing = %v, want [postgres redis]", resp["failing"])
	}
}

func TestReadiness_NoCheckers(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if _, ok := resp["failing"]; ok {
		t.Errorf("failing = %v, want omitted", resp["failing"])
	}
}
