package entities

import (
	"time"

	"vincanto/internal/pricing"
)

type BookingRequest struct {
	GuestName     string `json:"guest_name"`
	GuestSurname  string `json:"guest_surname"`
	GuestEmail    string `json:"guest_email"`
	GuestPhone    string `json:"guest_phone"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	NumAdults     int    `json:"num_adults"`
	NumChildren   int    `json:"num_children"`
	ChildrenAges  []int  `json:"children_ages"`
	ParkingOption string `json:"parking_option"`
	PaymentMethod string `json:"payment_method"`
	PaymentType   string `json:"payment_type"`
	GuestMessage  string `json:"guest_message"`
}

type BookingCreatedResponse struct {
	Success       bool    `json:"success"`
	BookingID     int     `json:"booking_id"`
	ReferenceCode string  `json:"reference_code"`
	PaymentAmount float64 `json:"payment_amount"`
	PaymentMethod string  `json:"payment_method"`
	CheckoutURL   string  `json:"checkout_url,omitempty"`
	Message       string  `json:"message"`
}

type BookingResponse struct {
	ID            int            `json:"id"`
	ReferenceCode string         `json:"reference_code"`
	GuestName     string         `json:"guest_name"`
	GuestSurname  string         `json:"guest_surname"`
	GuestEmail    string         `json:"guest_email"`
	GuestPhone    string         `json:"guest_phone"`
	CheckInDate   time.Time      `json:"check_in_date"`
	CheckOutDate  time.Time      `json:"check_out_date"`
	Nights        int            `json:"nights"`
	NumAdults     int            `json:"num_adults"`
	NumChildren   int            `json:"num_children"`
	ChildrenAges  []int          `json:"children_ages"`
	ParkingOption string         `json:"parking_option"`
	Costs         *pricing.Quote `json:"costs,omitempty"`
	BasePrice     float64        `json:"base_price"`
	ParkingCost   float64        `json:"parking_cost"`
	CleaningFee   float64        `json:"cleaning_fee"`
	TouristTax    float64        `json:"tourist_tax"`
	TotalAmount   float64        `json:"total_amount"`
	DepositAmount float64        `json:"deposit_amount"`
	PaymentAmount float64        `json:"payment_amount"`
	PaymentMethod string         `json:"payment_method"`
	PaymentType   string         `json:"payment_type"`
	PaymentStatus string         `json:"payment_status"`
	BookingStatus string         `json:"booking_status"`
	GuestMessage  string         `json:"guest_message,omitempty"`
	AdminNotes    string         `json:"admin_notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	ConfirmedAt   *time.Time     `json:"confirmed_at,omitempty"`
	CancelledAt   *time.Time     `json:"cancelled_at,omitempty"`
}

type BookingList struct {
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	Bookings []BookingResponse `json:"bookings"`
}

type BookingStatusUpdate struct {
	BookingStatus string  `json:"booking_status"`
	PaymentStatus string  `json:"payment_status"`
	AdminNotes    *string `json:"admin_notes"`
}
