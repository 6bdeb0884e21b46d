package handlers

import (
	"net/http"

	"github.com/DanielPopoola/validation-status-listener/internal/interfaces/rest"
)

func (h *Handlers) GetValidationRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.queryService.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.SuccessResponse{
		Success: true,
		Data:    rest.ToAPIValidationRequest(req),
	}, h.logger)
}
