package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
	"vincanto/internal/pricing"
	"vincanto/internal/repository"
)

type stubBookingService struct {
	quoteResp  *entities.QuoteResponse
	quoteErr   error
	createResp *entities.BookingCreatedResponse
	createErr  error
	getResp    *entities.BookingResponse
	getErr     error

	gotQuote entities.QuoteRequest
	gotCode  string
	gotEmail string
}

func (s *stubBookingService) Quote(req entities.QuoteRequest) (*entities.QuoteResponse, error) {
	s.gotQuote = req
	return s.quoteResp, s.quoteErr
}

func (s *stubBookingService) CreateBooking(req *entities.BookingRequest) (*entities.BookingCreatedResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubBookingService) GetByReference(code, email string) (*entities.BookingResponse, error) {
	s.gotCode = code
	s.gotEmail = email
	return s.getResp, s.getErr
}

func TestQuoteHandlerReturnsCosts(t *testing.T) {
	stub := &stubBookingService{
		quoteResp: &entities.QuoteResponse{
			Success:         true,
			Costs:           &pricing.Quote{Nights: 2, TotalAmount: 218, DepositAmount: 65.40},
			QuoteValidUntil: time.Now().Add(30 * time.Minute),
		},
	}
	h := NewBookingHandler(stub)

	body, _ := json.Marshal(entities.QuoteRequest{
		CheckInDate:  "2026-09-15",
		CheckOutDate: "2026-09-17",
		NumAdults:    2,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/booking/quote", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Quote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-09-15", stub.gotQuote.CheckInDate)

	var resp entities.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 218.0, resp.Costs.TotalAmount)
}

func TestQuoteHandlerRejectsBadBody(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})
	req := httptest.NewRequest(http.MethodPost, "/api/booking/quote", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Quote(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteHandlerMapsMinimumStay(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{quoteErr: pricing.ErrMinimumStay})
	req := httptest.NewRequest(http.MethodPost, "/api/booking/quote", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	h.Quote(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingHandlerConflict(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{createErr: apperrors.ErrDatesUnavailable})
	req := httptest.NewRequest(http.MethodPost, "/api/booking", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestCreateBookingHandlerCreated(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{
		createResp: &entities.BookingCreatedResponse{
			Success:       true,
			BookingID:     7,
			ReferenceCode: "VIN-1A2B3C4D",
			PaymentAmount: 65.40,
			CheckoutURL:   "https://checkout.stripe.com/pay/cs_test",
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/booking", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp entities.BookingCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VIN-1A2B3C4D", resp.ReferenceCode)
	assert.NotEmpty(t, resp.CheckoutURL)
}

func TestGetBookingHandlerRequiresEmail(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})
	req := httptest.NewRequest(http.MethodGet, "/api/booking/VIN-1A2B3C4D", nil)
	rec := httptest.NewRecorder()
	h.GetBooking(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{getErr: repository.ErrNotFound})

	r := mux.NewRouter()
	r.HandleFunc("/api/booking/{code}", h.GetBooking).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/booking/VIN-MISSING?email=guest@example.com", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBookingHandlerPassesRouteVars(t *testing.T) {
	stub := &stubBookingService{getResp: &entities.BookingResponse{ReferenceCode: "VIN-1A2B3C4D"}}
	h := NewBookingHandler(stub)

	r := mux.NewRouter()
	r.HandleFunc("/api/booking/{code}", h.GetBooking).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/booking/VIN-1A2B3C4D?email=guest@example.com", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "VIN-1A2B3C4D", stub.gotCode)
	assert.Equal(t, "guest@example.com", stub.gotEmail)
}
