package api

import (
	"net/http"
	"strconv"

	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
)

type AvailabilityService interface {
	CheckAvailability(checkIn, checkOut string) (*entities.AvailabilityResponse, error)
	Calendar(from, to string) (*entities.CalendarResponse, error)
	NextAvailable(nights int, from string) (*entities.NextAvailableResponse, error)
}

type AvailabilityHandler struct {
	Service AvailabilityService
}

func NewAvailabilityHandler(svc AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func (h *AvailabilityHandler) Check(w http.ResponseWriter, r *http.Request) {
	checkIn := r.URL.Query().Get("check_in_date")
	checkOut := r.URL.Query().Get("check_out_date")
	if checkIn == "" || checkOut == "" {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "check_in_date and check_out_date query parameters are required"))
		return
	}
	resp, err := h.Service.CheckAvailability(checkIn, checkOut)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *AvailabilityHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Calendar(r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *AvailabilityHandler) NextAvailable(w http.ResponseWriter, r *http.Request) {
	nights := 2
	if raw := r.URL.Query().Get("nights"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "nights must be a positive integer"))
			return
		}
		nights = parsed
	}
	resp, err := h.Service.NextAvailable(nights, r.URL.Query().Get("from_date"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
