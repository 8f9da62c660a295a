package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	domaingames "github.com/preston-bernstein/mlb-live-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-live-service/internal/logging"
	"github.com/preston-bernstein/mlb-live-service/internal/metrics"
	"github.com/preston-bernstein/mlb-live-service/internal/providers"
)

const liveFailureMessage = "Failed to fetch game data"

// LiveService produces the /api/live payload.
type LiveService interface {
	Live(ctx context.Context) (domaingames.Response, error)
}

// Handler wires HTTP routes to the live game service.
type Handler struct {
	svc      LiveService
	logger   *slog.Logger
	recorder *metrics.Recorder
	rootText string
}

// NewHandler constructs a Handler. teamName labels the root helper text.
func NewHandler(svc LiveService, logger *slog.Logger, recorder *metrics.Recorder, teamName string) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		recorder: recorder,
		rootText: teamName + " Live API. Use /api/live",
	}
}

// ServeHTTP dispatches on path so the Handler can be served without the router.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/api/live":
		h.Live(w, r)
	case "/health":
		h.Health(w, r)
	case "/":
		h.Root(w, r)
	default:
		h.NotFound(w, r)
	}
}

// Live runs the pipeline for the target team. Any failure is a 500 with the error detail.
func (h *Handler) Live(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	if h.svc == nil {
		h.liveFailed(w, logger, providers.ErrProviderUnavailable)
		return
	}
	resp, err := h.svc.Live(r.Context())
	if err != nil {
		h.liveFailed(w, logger, err)
		return
	}

	h.recorder.RecordOutcome(resp.Outcome())
	logging.Info(logger, "served live status", logging.FieldOutcome, resp.Outcome())
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

func (h *Handler) liveFailed(w nethttp.ResponseWriter, logger *slog.Logger, err error) {
	h.recorder.RecordOutcome(domaingames.OutcomeError)
	args := []any{}
	if up, ok := providers.AsUpstreamError(err); ok {
		args = append(args, logging.FieldEndpoint, up.Endpoint)
	}
	logging.Error(logger, "live status failed", err, args...)
	writeJSON(w, nethttp.StatusInternalServerError, map[string]string{
		"error":  liveFailureMessage,
		"detail": err.Error(),
	}, h.logger)
}

// Root serves the plain-text helper message.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeText(w, nethttp.StatusOK, h.rootText, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// NotFound answers unknown paths.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}
