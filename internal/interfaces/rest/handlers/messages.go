package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/validation-status-listener/internal/application"
	"github.com/DanielPopoola/validation-status-listener/internal/interfaces/rest"
)

// PostMessage hands the raw body to the listener under the key in the path.
// Undecodable bodies are dropped by the listener and still answered with 202.
func (h *Handlers) PostMessage(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("read body: %w", err)), h.logger)
		return
	}

	if err := h.listener.Receive(r.Context(), key, string(payload)); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusAccepted, rest.SuccessResponse{Success: true}, h.logger)
}
