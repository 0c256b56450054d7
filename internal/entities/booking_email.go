package entities

type BookingEmailData struct {
	GuestName         string
	ReferenceCode     string
	CheckInFormatted  string
	CheckOutFormatted string
	Nights            int
	NumGuests         int
	TotalAmount       float64
	DepositAmount     float64
	Currency          string
	Status            string
	CurrentYear       int
}
