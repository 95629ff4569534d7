package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/packaging-selector/internal/catalog"
	"github.com/eugenenazirov/packaging-selector/internal/packaging"
)

var fixedNow = time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)

func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()

	source := catalog.Default()
	selector := packaging.New(source.Options())
	handler := NewHandler(selector, source, WithClock(func() time.Time { return fixedNow }))
	logger := zaptest.NewLogger(t)

	return NewRouter(handler, logger, WithLogging(false), WithRateLimit(0, 0))
}

func postSelect(t *testing.T, router http.Handler, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/packaging/select", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type selectBody struct {
	Packaging struct {
		Name       string  `json:"name"`
		Kind       string  `json:"kind"`
		TareWeight float64 `json:"tareWeight"`
	} `json:"packaging"`
	PackageDepth  float64 `json:"packageDepth"`
	PackageWidth  float64 `json:"packageWidth"`
	PackageHeight float64 `json:"packageHeight"`
	TotalWeight   float64 `json:"totalWeight"`
	Quantity      int     `json:"quantity"`
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := contextWithRequestID(context.Background(), "abc")
	if got := requestIDFromContext(ctx); got != "abc" {
		t.Fatalf("expected abc, got %s", got)
	}
	resp := httptest.NewRecorder()
	writeInternalError(resp, assertError("boom"))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 status, got %d", resp.Code)
	}
}

type assertError string

func (a assertError) Error() string { return string(a) }

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Status != "ok" {
		t.Fatalf("expected status ok, got %s", body.Status)
	}
	if !body.Timestamp.Equal(fixedNow) {
		t.Fatalf("expected timestamp %s, got %s", fixedNow, body.Timestamp)
	}
}

func TestListPackagingReturnsCatalog(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/packaging", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Packaging []struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
		} `json:"packaging"`
		Count int `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := packaging.DefaultCatalog()
	if body.Count != len(want) || len(body.Packaging) != len(want) {
		t.Fatalf("expected %d entries, got count=%d len=%d", len(want), body.Count, len(body.Packaging))
	}
	for i, opt := range want {
		if body.Packaging[i].Name != opt.Name || body.Packaging[i].Kind != opt.Kind.String() {
			t.Fatalf("unexpected entry at %d: %+v", i, body.Packaging[i])
		}
	}
}

func TestSelectEndpointSingleItem(t *testing.T) {
	router := setupTestRouter(t)

	rec := postSelect(t, router, map[string]any{
		"depth":  30,
		"width":  50,
		"height": 10,
		"weight": 50,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body selectBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Packaging.Name != "100×150" || body.Packaging.Kind != "bag" {
		t.Fatalf("unexpected packaging %+v", body.Packaging)
	}
	if body.PackageDepth != 150 || body.PackageWidth != 100 || body.PackageHeight != 10 {
		t.Fatalf("unexpected envelope %vx%vx%v", body.PackageDepth, body.PackageWidth, body.PackageHeight)
	}
	if body.TotalWeight != 60 {
		t.Fatalf("expected total weight 60, got %v", body.TotalWeight)
	}
	if body.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", body.Quantity)
	}
}

func TestSelectEndpointBatch(t *testing.T) {
	router := setupTestRouter(t)

	rec := postSelect(t, router, map[string]any{
		"depth":    30,
		"width":    50,
		"height":   10,
		"weight":   50,
		"quantity": 100,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body selectBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Packaging.Name != "195×145×145" || body.Packaging.Kind != "box" {
		t.Fatalf("unexpected packaging %+v", body.Packaging)
	}
	if body.TotalWeight != 5080 {
		t.Fatalf("expected total weight 5080, got %v", body.TotalWeight)
	}
	if body.Quantity != 100 {
		t.Fatalf("expected quantity 100, got %d", body.Quantity)
	}
}

func TestSelectEndpointNoFit(t *testing.T) {
	router := setupTestRouter(t)

	rec := postSelect(t, router, map[string]any{
		"depth":  700,
		"width":  500,
		"height": 500,
		"weight": 10000,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	var body struct {
		Error      string `json:"error"`
		Suggestion string `json:"suggestion"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Error != "No packaging fits" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
	if body.Suggestion == "" {
		t.Fatalf("expected suggestion to be populated")
	}
}

func TestSelectEndpointRejectsInvalidInput(t *testing.T) {
	router := setupTestRouter(t)

	cases := map[string]map[string]any{
		"zero depth":        {"depth": 0, "width": 50, "height": 10, "weight": 50},
		"negative weight":   {"depth": 30, "width": 50, "height": 10, "weight": -1},
		"negative quantity": {"depth": 30, "width": 50, "height": 10, "weight": 50, "quantity": -2},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postSelect(t, router, payload)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestSelectEndpointRejectsMalformedJSON(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/packaging/select", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCorsPreflight(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/packaging/select", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("expected Access-Control-Allow-Origin header to be set")
	}
}

func TestRequestIDPropagation(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "test-request-id")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "test-request-id" {
		t.Fatalf("expected X-Request-ID header to be echoed, got %s", got)
	}
}

func TestRequestIDGenerated(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if got := rec.Header().Get("X-Request-ID"); len(got) != 36 {
		t.Fatalf("expected generated UUID request ID, got %q", got)
	}
}
