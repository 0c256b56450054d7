package api

import (
	"encoding/json"
	"net/http"

	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
	"vincanto/internal/service"
)

type ConfigHandler struct {
	Service *service.ConfigService
}

func NewConfigHandler(svc *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{Service: svc}
}

func (h *ConfigHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Service.GetPricing()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"pricing": cfg,
	})
}

func (h *ConfigHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	var upd entities.PricingUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	cfg, err := h.Service.UpdatePricing(upd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"pricing": cfg,
	})
}

func (h *ConfigHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Service.Settings())
}
