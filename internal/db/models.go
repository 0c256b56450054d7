package db

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Booking struct {
	ID              int
	ReferenceCode   string
	GuestName       string
	GuestSurname    string
	GuestEmail      string
	GuestPhone      string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumAdults       int
	NumChildren     int
	ChildrenAges    pq.Int64Array
	ParkingOption   string
	BasePrice       float64
	ParkingCost     float64
	CleaningFee     float64
	TouristTax      float64
	TotalAmount     float64
	DepositAmount   float64
	PaymentAmount   float64
	PaymentMethod   string
	PaymentType     string
	PaymentStatus   string
	BookingStatus   string
	StripeSessionID sql.NullString
	GuestMessage    sql.NullString
	AdminNotes      sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ConfirmedAt     sql.NullTime
	CancelledAt     sql.NullTime
}

type BlockedDate struct {
	ID          int
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	CreatedBy   string
	ExternalUID sql.NullString
	CreatedAt   time.Time
}

type CalendarFeed struct {
	ID           int
	Name         string
	Platform     string
	URL          string
	Active       bool
	SyncStatus   string
	LastSync     sql.NullTime
	ErrorMessage sql.NullString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
