package service

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"vincanto/internal/db"
	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
	"vincanto/internal/pricing"
	"vincanto/internal/repository"
	"vincanto/internal/utils"
)

const (
	statusPending   = "pending"
	statusConfirmed = "confirmed"
	statusCancelled = "cancelled"
	statusCompleted = "completed"

	paymentPending  = "pending"
	paymentPaid     = "paid"
	paymentRefunded = "refunded"

	// How long a quote stays valid before the guest should re-request it.
	quoteValidity = 30 * time.Minute

	dateLayout = "2006-01-02"
)

type BookingService struct {
	Repo          *repository.BookingRepository
	blockedRepo   *repository.BlockedDateRepository
	pricingRepo   *repository.PricingRepository
	stripeService *StripeService
	notify        *NotifyService
}

func NewBookingService(repo *repository.BookingRepository, blockedRepo *repository.BlockedDateRepository,
	pricingRepo *repository.PricingRepository, stripeService *StripeService, notify *NotifyService) *BookingService {
	return &BookingService{
		Repo:          repo,
		blockedRepo:   blockedRepo,
		pricingRepo:   pricingRepo,
		stripeService: stripeService,
		notify:        notify,
	}
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewHTTPError(http.StatusBadRequest, "check_in_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewHTTPError(http.StatusBadRequest, "check_out_date must be YYYY-MM-DD")
	}
	return start, end, nil
}

// Quote prices a stay without persisting anything.
func (s *BookingService) Quote(req entities.QuoteRequest) (*entities.QuoteResponse, error) {
	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !utils.IsValidParkingOption(req.ParkingOption) {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "unknown parking_option")
	}
	if len(req.ChildrenAges) != req.NumChildren {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "children_ages must list one age per child")
	}

	cfg, err := s.pricingRepo.GetCurrent()
	if err != nil {
		return nil, err
	}

	guests := pricing.Guests{Adults: req.NumAdults, ChildrenAges: req.ChildrenAges}
	quote, err := pricing.ComputeQuote(checkIn, checkOut, guests, utils.ParkingBillable(req.ParkingOption), cfg)
	if err != nil {
		return nil, err
	}

	return &entities.QuoteResponse{
		Success:         true,
		Costs:           quote,
		QuoteValidUntil: time.Now().UTC().Add(quoteValidity),
	}, nil
}

// CreateBooking prices the stay, verifies the dates are free and stores a
// pending booking. Stripe payments additionally open a checkout session.
func (s *BookingService) CreateBooking(req *entities.BookingRequest) (*entities.BookingCreatedResponse, error) {
	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !utils.IsValidParkingOption(req.ParkingOption) {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "unknown parking_option")
	}
	if len(req.ChildrenAges) != req.NumChildren {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "children_ages must list one age per child")
	}
	if req.GuestName == "" || req.GuestEmail == "" {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "guest_name and guest_email are required")
	}

	if err := s.ensureAvailable(checkIn, checkOut); err != nil {
		return nil, err
	}

	cfg, err := s.pricingRepo.GetCurrent()
	if err != nil {
		return nil, err
	}
	guests := pricing.Guests{Adults: req.NumAdults, ChildrenAges: req.ChildrenAges}
	quote, err := pricing.ComputeQuote(checkIn, checkOut, guests, utils.ParkingBillable(req.ParkingOption), cfg)
	if err != nil {
		return nil, err
	}

	paymentAmount := quote.TotalAmount
	if req.PaymentType == "deposit" {
		paymentAmount = quote.DepositAmount
	}

	code := newReferenceCode()

	booking := &db.Booking{
		ReferenceCode: code,
		GuestName:     req.GuestName,
		GuestSurname:  req.GuestSurname,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		NumAdults:     req.NumAdults,
		NumChildren:   req.NumChildren,
		ChildrenAges:  toInt64Array(req.ChildrenAges),
		ParkingOption: normalizeParking(req.ParkingOption),
		BasePrice:     quote.BasePrice,
		ParkingCost:   quote.ParkingCost,
		CleaningFee:   quote.CleaningFee,
		TouristTax:    quote.TouristTax,
		TotalAmount:   quote.TotalAmount,
		DepositAmount: quote.DepositAmount,
		PaymentAmount: paymentAmount,
		PaymentMethod: req.PaymentMethod,
		PaymentType:   req.PaymentType,
		PaymentStatus: paymentPending,
		BookingStatus: statusPending,
		GuestMessage:  toNullString(req.GuestMessage),
	}

	resp := &entities.BookingCreatedResponse{
		Success:       true,
		ReferenceCode: code,
		PaymentAmount: paymentAmount,
		PaymentMethod: req.PaymentMethod,
		Message:       "Booking received. We will confirm it once the payment is completed.",
	}

	if req.PaymentMethod == "stripe" {
		amountCents := int64(math.Round(paymentAmount * 100))
		description := fmt.Sprintf("Vincanto stay %s, %s to %s", code, req.CheckInDate, req.CheckOutDate)
		sessionURL, sessionID, err := s.stripeService.CreateCheckoutSession(amountCents, strings.ToLower(cfg.Currency), description, req.GuestEmail)
		if err != nil {
			log.Printf("Error creating Stripe session for booking %s: %v", code, err)
			return nil, err
		}
		booking.StripeSessionID = toNullString(sessionID)
		resp.CheckoutURL = sessionURL
	} else {
		resp.Message = "Booking received. We will contact you with payment instructions."
	}

	if err := s.Repo.Create(booking); err != nil {
		log.Printf("Error creating booking in repository: %v", err)
		return nil, err
	}
	resp.BookingID = booking.ID

	bookingResp := toBookingResponse(booking)
	s.notify.SendBookingEmail(bookingResp, "received")
	s.notify.SendAdminBookingAlert(bookingResp)

	return resp, nil
}

// ensureAvailable rejects stays overlapping a confirmed or pending booking
// or an administrative block.
func (s *BookingService) ensureAvailable(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return pricing.ErrInvalidRange
	}
	bookings, err := s.Repo.FindOverlapping(checkIn, checkOut)
	if err != nil {
		return err
	}
	if len(bookings) > 0 {
		return apperrors.ErrDatesUnavailable
	}
	blocks, err := s.blockedRepo.FindOverlapping(checkIn, checkOut)
	if err != nil {
		return err
	}
	if len(blocks) > 0 {
		return apperrors.ErrDatesUnavailable
	}
	return nil
}

func (s *BookingService) GetByReference(code, email string) (*entities.BookingResponse, error) {
	booking, err := s.Repo.GetByReference(strings.ToUpper(strings.TrimSpace(code)), strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *BookingService) GetByID(id int) (*entities.BookingResponse, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *BookingService) List(f repository.ListFilters) (*entities.BookingList, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}
	bookings, total, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}
	list := &entities.BookingList{
		Total:    total,
		Limit:    f.Limit,
		Offset:   f.Offset,
		Bookings: make([]entities.BookingResponse, 0, len(bookings)),
	}
	for i := range bookings {
		list.Bookings = append(list.Bookings, toBookingResponse(&bookings[i]))
	}
	return list, nil
}

// UpdateStatus applies an admin status change. Confirmations and
// cancellations notify the guest, cancelling a paid Stripe booking refunds it.
func (s *BookingService) UpdateStatus(id int, upd entities.BookingStatusUpdate) (*entities.BookingResponse, error) {
	if upd.BookingStatus != "" && !isValidBookingStatus(upd.BookingStatus) {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "unknown booking_status")
	}
	if upd.PaymentStatus != "" && !isValidPaymentStatus(upd.PaymentStatus) {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "unknown payment_status")
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.BookingStatus == statusCancelled && current.BookingStatus != statusCancelled &&
		current.PaymentStatus == paymentPaid && current.StripeSessionID.Valid {
		if err := s.stripeService.RefundPaymentBySessionID(current.StripeSessionID.String); err != nil {
			log.Printf("Error refunding booking %s: %v", current.ReferenceCode, err)
			return nil, err
		}
		if upd.PaymentStatus == "" {
			upd.PaymentStatus = paymentRefunded
		}
	}

	booking, err := s.Repo.UpdateStatus(id, upd)
	if err != nil {
		return nil, err
	}
	resp := toBookingResponse(booking)

	switch {
	case upd.BookingStatus == statusConfirmed && current.BookingStatus != statusConfirmed:
		s.notify.SendBookingEmail(resp, "confirmed")
	case upd.BookingStatus == statusCancelled && current.BookingStatus != statusCancelled:
		s.notify.SendBookingEmail(resp, "cancelled")
	}
	return &resp, nil
}

// ConfirmBySessionID marks the booking behind a completed checkout session
// as confirmed and paid, and emails the guest.
func (s *BookingService) ConfirmBySessionID(sessionID string) error {
	if err := s.Repo.UpdateStatusBySessionID(sessionID, statusConfirmed, paymentPaid); err != nil {
		return err
	}
	booking, err := s.Repo.GetByStripeSessionID(sessionID)
	if err != nil {
		return err
	}
	s.notify.SendBookingEmail(toBookingResponse(booking), "confirmed")
	return nil
}

// CancelBySessionID marks the booking behind a refunded charge as cancelled.
func (s *BookingService) CancelBySessionID(sessionID string) error {
	if err := s.Repo.UpdateStatusBySessionID(sessionID, statusCancelled, paymentRefunded); err != nil {
		return err
	}
	booking, err := s.Repo.GetByStripeSessionID(sessionID)
	if err != nil {
		return err
	}
	s.notify.SendBookingEmail(toBookingResponse(booking), "cancelled")
	return nil
}

func (s *BookingService) Dashboard() (*entities.DashboardResponse, error) {
	stats, err := s.Repo.Stats()
	if err != nil {
		return nil, err
	}
	recent, err := s.Repo.Recent(5)
	if err != nil {
		return nil, err
	}
	arrivals, err := s.Repo.UpcomingArrivals(14)
	if err != nil {
		return nil, err
	}

	resp := &entities.DashboardResponse{
		Success:          true,
		Stats:            stats,
		RecentBookings:   make([]entities.BookingResponse, 0, len(recent)),
		UpcomingArrivals: make([]entities.BookingResponse, 0, len(arrivals)),
	}
	for i := range recent {
		resp.RecentBookings = append(resp.RecentBookings, toBookingResponse(&recent[i]))
	}
	for i := range arrivals {
		resp.UpcomingArrivals = append(resp.UpcomingArrivals, toBookingResponse(&arrivals[i]))
	}
	return resp, nil
}

func newReferenceCode() string {
	return "VIN-" + strings.ToUpper(uuid.NewString()[:8])
}

func isValidBookingStatus(status string) bool {
	switch status {
	case statusPending, statusConfirmed, statusCancelled, statusCompleted:
		return true
	}
	return false
}

func isValidPaymentStatus(status string) bool {
	switch status {
	case paymentPending, paymentPaid, paymentRefunded:
		return true
	}
	return false
}

func normalizeParking(option string) string {
	if option == "" {
		return utils.ParkingNone
	}
	return strings.ToLower(option)
}

func toInt64Array(ages []int) []int64 {
	out := make([]int64, len(ages))
	for i, a := range ages {
		out[i] = int64(a)
	}
	return out
}

func toIntSlice(ages []int64) []int {
	out := make([]int, len(ages))
	for i, a := range ages {
		out[i] = int(a)
	}
	return out
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toBookingResponse(b *db.Booking) entities.BookingResponse {
	resp := entities.BookingResponse{
		ID:            b.ID,
		ReferenceCode: b.ReferenceCode,
		GuestName:     b.GuestName,
		GuestSurname:  b.GuestSurname,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		Nights:        pricing.Nights(b.CheckInDate, b.CheckOutDate),
		NumAdults:     b.NumAdults,
		NumChildren:   b.NumChildren,
		ChildrenAges:  toIntSlice(b.ChildrenAges),
		ParkingOption: b.ParkingOption,
		BasePrice:     b.BasePrice,
		ParkingCost:   b.ParkingCost,
		CleaningFee:   b.CleaningFee,
		TouristTax:    b.TouristTax,
		TotalAmount:   b.TotalAmount,
		DepositAmount: b.DepositAmount,
		PaymentAmount: b.PaymentAmount,
		PaymentMethod: b.PaymentMethod,
		PaymentType:   b.PaymentType,
		PaymentStatus: b.PaymentStatus,
		BookingStatus: b.BookingStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.GuestMessage.Valid {
		resp.GuestMessage = b.GuestMessage.String
	}
	if b.AdminNotes.Valid {
		resp.AdminNotes = b.AdminNotes.String
	}
	if b.ConfirmedAt.Valid {
		t := b.ConfirmedAt.Time
		resp.ConfirmedAt = &t
	}
	if b.CancelledAt.Valid {
		t := b.CancelledAt.Time
		resp.CancelledAt = &t
	}
	return resp
}
