package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
	"vincanto/internal/repository"
	"vincanto/internal/service"
)

type AdminHandler struct {
	bookingService *service.BookingService
	adminService   *service.AdminService
}

func NewAdminHandler(bookingService *service.BookingService, adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{bookingService: bookingService, adminService: adminService}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := repository.ListFilters{
		Status:        q.Get("status"),
		PaymentStatus: q.Get("payment_status"),
		FromDate:      q.Get("from"),
		ToDate:        q.Get("to"),
	}
	filters.Limit, _ = strconv.Atoi(q.Get("limit"))
	filters.Offset, _ = strconv.Atoi(q.Get("offset"))

	list, err := h.bookingService.List(filters)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *AdminHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid booking id"))
		return
	}
	booking, err := h.bookingService.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid booking id"))
		return
	}
	var upd entities.BookingStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	booking, err := h.bookingService.UpdateStatus(id, upd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.bookingService.Dashboard()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) ListBlockedDates(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.adminService.ListBlockedDates()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"blocked_dates": blocks,
	})
}

func (h *AdminHandler) CreateBlockedDate(w http.ResponseWriter, r *http.Request) {
	var req entities.BlockedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	block, err := h.adminService.CreateBlockedDate(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, block)
}

func (h *AdminHandler) DeleteBlockedDate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid blocked date id"))
		return
	}
	if err := h.adminService.DeleteBlockedDate(id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
