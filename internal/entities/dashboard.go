package entities

type DashboardStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	PaidBookings      int64   `json:"paid_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	CollectedRevenue  float64 `json:"collected_revenue"`
}

type DashboardResponse struct {
	Success          bool              `json:"success"`
	Stats            DashboardStats    `json:"stats"`
	RecentBookings   []BookingResponse `json:"recent_bookings"`
	UpcomingArrivals []BookingResponse `json:"upcoming_arrivals"`
}
