package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/validation-status-listener/internal/interfaces/rest/middleware"
)

// NewRouter registers the routes and wraps them in recovery, request logging and the
// per-request timeout, outermost last.
func NewRouter(h *Handlers, logger *slog.Logger, timeout time.Duration) http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(timeout)(handler)
	return handler
}
