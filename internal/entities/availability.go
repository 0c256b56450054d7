package entities

type AvailabilityConflicts struct {
	Bookings     int `json:"bookings"`
	BlockedDates int `json:"blocked_dates"`
}

type AvailabilityResponse struct {
	Success      bool                  `json:"success"`
	Available    bool                  `json:"available"`
	CheckInDate  string                `json:"check_in_date"`
	CheckOutDate string                `json:"check_out_date"`
	Conflicts    AvailabilityConflicts `json:"conflicts"`
}

// OccupiedRange is one unavailable range in the public calendar, either a
// guest stay or an administrative block.
type OccupiedRange struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type CalendarPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CalendarResponse struct {
	Success       bool            `json:"success"`
	Period        CalendarPeriod  `json:"period"`
	OccupiedDates []OccupiedRange `json:"occupied_dates"`
}

type AvailableSlot struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Nights   int    `json:"nights"`
}

type NextAvailableResponse struct {
	Success        bool            `json:"success"`
	Nights         int             `json:"nights"`
	FromDate       string          `json:"from_date"`
	AvailableSlots []AvailableSlot `json:"available_slots"`
}
