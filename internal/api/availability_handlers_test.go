package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vincanto/internal/availability"
	"vincanto/internal/entities"
)

type stubAvailabilityService struct {
	checkResp *entities.AvailabilityResponse
	checkErr  error
	calResp   *entities.CalendarResponse
	nextResp  *entities.NextAvailableResponse

	gotNights int
	gotFrom   string
}

func (s *stubAvailabilityService) CheckAvailability(checkIn, checkOut string) (*entities.AvailabilityResponse, error) {
	return s.checkResp, s.checkErr
}

func (s *stubAvailabilityService) Calendar(from, to string) (*entities.CalendarResponse, error) {
	return s.calResp, nil
}

func (s *stubAvailabilityService) NextAvailable(nights int, from string) (*entities.NextAvailableResponse, error) {
	s.gotNights = nights
	s.gotFrom = from
	return s.nextResp, nil
}

func TestCheckHandlerRequiresDates(t *testing.T) {
	h := NewAvailabilityHandler(&stubAvailabilityService{})
	req := httptest.NewRequest(http.MethodGet, "/api/availability/check?check_in_date=2026-09-15", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckHandlerReportsConflicts(t *testing.T) {
	h := NewAvailabilityHandler(&stubAvailabilityService{
		checkResp: &entities.AvailabilityResponse{
			Success:   true,
			Available: false,
			Conflicts: entities.AvailabilityConflicts{Bookings: 1},
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/api/availability/check?check_in_date=2026-09-15&check_out_date=2026-09-17", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp entities.AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, 1, resp.Conflicts.Bookings)
}

func TestCheckHandlerMapsInvalidRange(t *testing.T) {
	h := NewAvailabilityHandler(&stubAvailabilityService{checkErr: availability.ErrInvalidRange})
	req := httptest.NewRequest(http.MethodGet, "/api/availability/check?check_in_date=2026-09-17&check_out_date=2026-09-15", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNextAvailableHandlerDefaultsNights(t *testing.T) {
	stub := &stubAvailabilityService{nextResp: &entities.NextAvailableResponse{Success: true, Nights: 2}}
	h := NewAvailabilityHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/availability/next-available", nil)
	rec := httptest.NewRecorder()
	h.NextAvailable(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, stub.gotNights)
}

func TestNextAvailableHandlerRejectsBadNights(t *testing.T) {
	h := NewAvailabilityHandler(&stubAvailabilityService{})
	req := httptest.NewRequest(http.MethodGet, "/api/availability/next-available?nights=zero", nil)
	rec := httptest.NewRecorder()
	h.NextAvailable(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendarHandler(t *testing.T) {
	h := NewAvailabilityHandler(&stubAvailabilityService{
		calResp: &entities.CalendarResponse{
			Success: true,
			OccupiedDates: []entities.OccupiedRange{
				{Start: "2026-09-15", End: "2026-09-18", Type: "booking", Status: "confirmed"},
			},
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/api/availability/calendar", nil)
	rec := httptest.NewRecorder()
	h.Calendar(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp entities.CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.OccupiedDates, 1)
	assert.Equal(t, "booking", resp.OccupiedDates[0].Type)
}
