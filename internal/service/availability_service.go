package service

import (
	"time"

	"vincanto/internal/availability"
	"vincanto/internal/db"
	"vincanto/internal/entities"
	"vincanto/internal/repository"
)

const (
	// How far ahead the next-available scan looks.
	nextAvailableHorizon = 84 * 24 * time.Hour
	maxSuggestedSlots    = 10

	defaultCalendarMonths = 6
)

type AvailabilityService struct {
	bookingRepo *repository.BookingRepository
	blockedRepo *repository.BlockedDateRepository
}

func NewAvailabilityService(bookingRepo *repository.BookingRepository, blockedRepo *repository.BlockedDateRepository) *AvailabilityService {
	return &AvailabilityService{bookingRepo: bookingRepo, blockedRepo: blockedRepo}
}

// loadPeriods snapshots every booking and administrative block overlapping
// [start, end) as in-memory blocked periods.
func (s *AvailabilityService) loadPeriods(start, end time.Time) ([]availability.BlockedPeriod, []db.Booking, []db.BlockedDate, error) {
	bookings, err := s.bookingRepo.FindOverlapping(start, end)
	if err != nil {
		return nil, nil, nil, err
	}
	blocks, err := s.blockedRepo.FindOverlapping(start, end)
	if err != nil {
		return nil, nil, nil, err
	}

	periods := make([]availability.BlockedPeriod, 0, len(bookings)+len(blocks))
	for _, b := range bookings {
		periods = append(periods, availability.BlockedPeriod{
			Range:  availability.DateRange{Start: b.CheckInDate, End: b.CheckOutDate},
			Kind:   availability.KindBooking,
			Status: b.BookingStatus,
		})
	}
	for _, bd := range blocks {
		periods = append(periods, availability.BlockedPeriod{
			Range:  availability.DateRange{Start: bd.StartDate, End: bd.EndDate},
			Kind:   availability.KindMaintenance,
			Status: bd.Reason,
		})
	}
	return periods, bookings, blocks, nil
}

// CheckAvailability reports whether the stay [checkIn, checkOut) is free.
func (s *AvailabilityService) CheckAvailability(checkInStr, checkOutStr string) (*entities.AvailabilityResponse, error) {
	checkIn, checkOut, err := parseStayDates(checkInStr, checkOutStr)
	if err != nil {
		return nil, err
	}
	r, err := availability.NewDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	periods, _, _, err := s.loadPeriods(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	result := availability.Check(r, periods)

	return &entities.AvailabilityResponse{
		Success:      true,
		Available:    result.Available,
		CheckInDate:  checkInStr,
		CheckOutDate: checkOutStr,
		Conflicts: entities.AvailabilityConflicts{
			Bookings:     result.ConflictingBookings,
			BlockedDates: result.ConflictingBlocks,
		},
	}, nil
}

// Calendar returns the occupied ranges inside a period, defaulting to the
// next six months. Guest identities never leave the server here.
func (s *AvailabilityService) Calendar(fromStr, toStr string) (*entities.CalendarResponse, error) {
	from := time.Now().UTC().Truncate(24 * time.Hour)
	if fromStr != "" {
		parsed, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return nil, availability.ErrInvalidRange
		}
		from = parsed
	}
	to := from.AddDate(0, defaultCalendarMonths, 0)
	if toStr != "" {
		parsed, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return nil, availability.ErrInvalidRange
		}
		to = parsed
	}
	if !to.After(from) {
		return nil, availability.ErrInvalidRange
	}

	_, bookings, blocks, err := s.loadPeriods(from, to)
	if err != nil {
		return nil, err
	}

	occupied := make([]entities.OccupiedRange, 0, len(bookings)+len(blocks))
	for _, b := range bookings {
		occupied = append(occupied, entities.OccupiedRange{
			Start:  b.CheckInDate.Format(dateLayout),
			End:    b.CheckOutDate.Format(dateLayout),
			Type:   "booking",
			Status: b.BookingStatus,
		})
	}
	for _, bd := range blocks {
		occupied = append(occupied, entities.OccupiedRange{
			Start:  bd.StartDate.Format(dateLayout),
			End:    bd.EndDate.Format(dateLayout),
			Type:   "blocked",
			Status: bd.Reason,
		})
	}

	return &entities.CalendarResponse{
		Success: true,
		Period: entities.CalendarPeriod{
			Start: from.Format(dateLayout),
			End:   to.Format(dateLayout),
		},
		OccupiedDates: occupied,
	}, nil
}

// NextAvailable suggests the first free slots of the requested length,
// scanning day by day from the given date.
func (s *AvailabilityService) NextAvailable(nights int, fromStr string) (*entities.NextAvailableResponse, error) {
	if nights < 1 {
		return nil, availability.ErrInvalidRange
	}
	from := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	if fromStr != "" {
		parsed, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return nil, availability.ErrInvalidRange
		}
		from = parsed
	}

	horizon := from.Add(nextAvailableHorizon)
	periods, _, _, err := s.loadPeriods(from, horizon.AddDate(0, 0, nights))
	if err != nil {
		return nil, err
	}

	resp := &entities.NextAvailableResponse{
		Success:        true,
		Nights:         nights,
		FromDate:       from.Format(dateLayout),
		AvailableSlots: []entities.AvailableSlot{},
	}

	for day := from; day.Before(horizon) && len(resp.AvailableSlots) < maxSuggestedSlots; day = day.AddDate(0, 0, 1) {
		checkOut := day.AddDate(0, 0, nights)
		r := availability.DateRange{Start: day, End: checkOut}
		if availability.Check(r, periods).Available {
			resp.AvailableSlots = append(resp.AvailableSlots, entities.AvailableSlot{
				CheckIn:  day.Format(dateLayout),
				CheckOut: checkOut.Format(dateLayout),
				Nights:   nights,
			})
		}
	}
	return resp, nil
}
