package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/mlb-live-service/internal/http/handlers"
	"github.com/preston-bernstein/mlb-live-service/internal/http/middleware"
	"github.com/preston-bernstein/mlb-live-service/internal/metrics"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/api/live", handler.Live)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/", handler.Root)
	return mux
}

// NewStack wraps the router with CORS inside request logging, so preflights are logged too.
func NewStack(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	return middleware.LoggingMiddleware(logger, recorder, middleware.CORS(NewRouter(handler)))
}
