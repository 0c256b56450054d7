package api

import (
	"encoding/json"
	"net/http"

	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
)

type ContactService interface {
	Submit(req entities.ContactRequest) error
}

type ContactHandler struct {
	Service ContactService
}

func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	if err := h.Service.Submit(req); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Message received. We will get back to you shortly.",
	})
}
