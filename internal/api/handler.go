package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/eugenenazirov/packaging-selector/internal/catalog"
	"github.com/eugenenazirov/packaging-selector/internal/metrics"
	"github.com/eugenenazirov/packaging-selector/internal/packaging"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const (
	modeSingle = "single"
	modeBatch  = "batch"
)

// Handler wires the packaging selector and catalog into HTTP handlers.
type Handler struct {
	selector packaging.Selector
	catalog  catalog.Source

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler. The selector must have been built from the
// same catalog that is listed by GET /api/packaging.
func NewHandler(selector packaging.Selector, source catalog.Source, opts ...HandlerOption) *Handler {
	h := &Handler{
		selector: selector,
		catalog:  source,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListPackaging(w http.ResponseWriter, r *http.Request) {
	_ = r
	options := h.catalog.Options()
	resp := catalogResponse{
		Packaging: options,
		Count:     len(options),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	item := packaging.Dimensions{
		Depth:  req.Depth,
		Width:  req.Width,
		Height: req.Height,
		Weight: req.Weight,
	}
	if err := packaging.Validate(item, req.Quantity); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	quantity := max(req.Quantity, 1)
	mode := modeSingle
	if quantity > 1 {
		mode = modeBatch
	}

	start := time.Now()
	var (
		result packaging.Result
		ok     bool
	)
	if mode == modeBatch {
		result, ok = h.selector.SelectForBatch(item, quantity)
	} else {
		result, ok = h.selector.Select(item)
	}
	elapsed := time.Since(start)

	if !ok {
		metrics.RecordSelection(elapsed, mode, metrics.OutcomeNone)
		suggestion := "Split the shipment into smaller batches or use non-standard packaging"
		if mode == modeSingle {
			suggestion = "The item exceeds every standard packaging option; use non-standard packaging"
		}
		writeError(w, http.StatusUnprocessableEntity, "No packaging fits",
			fmt.Sprintf("no catalog packaging can hold %d item(s) of %gx%gx%g mm", quantity, req.Depth, req.Width, req.Height),
			suggestion)
		return
	}
	metrics.RecordSelection(elapsed, mode, result.Packaging.Kind.String())

	resp := selectResponse{
		Result:          result,
		Quantity:        quantity,
		SelectionTimeUs: elapsed.Microseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type selectRequest struct {
	Depth    float64 `json:"depth"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Quantity int     `json:"quantity"`
}

type selectResponse struct {
	packaging.Result
	Quantity        int   `json:"quantity"`
	SelectionTimeUs int64 `json:"selectionTimeUs"`
}

type catalogResponse struct {
	Packaging []packaging.Option `json:"packaging"`
	Count     int                `json:"count"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}

var errUnexpectedPanic = errors.New("unexpected server error")
