package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
	"vincanto/internal/service"
)

type CalendarHandler struct {
	Service *service.CalendarSyncService
}

func NewCalendarHandler(svc *service.CalendarSyncService) *CalendarHandler {
	return &CalendarHandler{Service: svc}
}

func (h *CalendarHandler) ListFeeds(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListFeeds()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *CalendarHandler) CreateFeed(w http.ResponseWriter, r *http.Request) {
	var req entities.CalendarFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	feed, err := h.Service.CreateFeed(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, feed)
}

func (h *CalendarHandler) UpdateFeed(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid calendar id"))
		return
	}
	var req entities.CalendarFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	feed, err := h.Service.UpdateFeed(id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, feed)
}

func (h *CalendarHandler) DeleteFeed(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid calendar id"))
		return
	}
	if err := h.Service.DeleteFeed(id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ForceSync triggers an immediate refresh of one platform's feed, or of
// every active feed when the platform is "all".
func (h *CalendarHandler) ForceSync(w http.ResponseWriter, r *http.Request) {
	platform := mux.Vars(r)["platform"]
	if platform == "all" {
		results, err := h.Service.SyncAll()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"results": results,
		})
		return
	}

	result, err := h.Service.SyncPlatform(platform)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
