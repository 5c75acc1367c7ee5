package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/schooldesk/school-api/internal/core/domain"
)

type fixedVerifier map[string]string

func (v fixedVerifier) Verify(token string) (domain.Identity, error) {
	id, ok := v[token]
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return domain.Identity{SchoolID: id}, nil
}

func newTestRouter() http.Handler {
	reg := prometheus.NewRegistry()
	return NewRouter(Options{
		Tokens:     fixedVerifier{"token-a": "school-a"},
		Logger:     zerolog.Nop(),
		Registerer: reg,
		Gatherer:   reg,
	})
}

func serve(t *testing.T, h http.Handler, method, path, token string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec.Code, body
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	code, body := serve(t, newTestRouter(), http.MethodGet, "/api/schools/school-a/students", "")
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["error"] != "please authenticate." {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRouter_OtherSchoolIsForbidden(t *testing.T) {
	code, body := serve(t, newTestRouter(), http.MethodGet, "/api/schools/school-b/students", "token-a")
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if body["error"] != "not authorized to access this resource" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRouter_Liveness(t *testing.T) {
	code, body := serve(t, newTestRouter(), http.MethodGet, "/health", "")
	if code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("unexpected liveness response: %d %v", code, body)
	}
}
