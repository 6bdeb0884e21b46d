package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/validation-status-listener/internal/application/services"
	"github.com/DanielPopoola/validation-status-listener/internal/interfaces/queue"
)

// maxPayloadBytes bounds message and delivery bodies.
const maxPayloadBytes = 1 << 20

// Pinger reports whether the request store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	listener      *queue.Listener
	queryService  *services.QueryService
	store         Pinger
	signingSecret []byte
	logger        *slog.Logger
}

func NewHandlers(
	listener *queue.Listener,
	queryService *services.QueryService,
	store Pinger,
	signingSecret string,
	logger *slog.Logger,
) *Handlers {
	h := &Handlers{
		listener:     listener,
		queryService: queryService,
		store:        store,
		logger:       logger,
	}
	if signingSecret != "" {
		h.signingSecret = []byte(signingSecret)
	}
	return h
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/messages/{key}", h.PostMessage)
	mux.HandleFunc("POST /v1/deliveries", h.PostDelivery)
	mux.HandleFunc("GET /v1/validation-requests/{id}", h.GetValidationRequest)
	mux.HandleFunc("GET /health", h.Health)
}
