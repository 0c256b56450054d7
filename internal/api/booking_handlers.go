package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
)

type BookingService interface {
	Quote(req entities.QuoteRequest) (*entities.QuoteResponse, error)
	CreateBooking(req *entities.BookingRequest) (*entities.BookingCreatedResponse, error)
	GetByReference(code, email string) (*entities.BookingResponse, error)
}

type BookingHandler struct {
	Service BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// Quote prices a stay without creating anything.
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	resp, err := h.Service.Quote(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	resp, err := h.Service.CreateBooking(&req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

// GetBooking looks a booking up by reference code. The guest email doubles
// as a lightweight ownership check.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, apperrors.NewHTTPError(http.StatusBadRequest, "email query parameter is required"))
		return
	}
	resp, err := h.Service.GetByReference(code, email)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
