package handlers

import (
	"net/http"

	"github.com/DanielPopoola/validation-status-listener/internal/application"
	"github.com/DanielPopoola/validation-status-listener/internal/interfaces/rest"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		rest.WriteError(w, application.NewUnavailableError(err), h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.SuccessResponse{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	}, h.logger)
}
