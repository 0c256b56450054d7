package entities

import (
	"time"

	"vincanto/internal/pricing"
)

type QuoteRequest struct {
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	NumAdults     int    `json:"num_adults"`
	NumChildren   int    `json:"num_children"`
	ChildrenAges  []int  `json:"children_ages"`
	ParkingOption string `json:"parking_option"`
}

type QuoteResponse struct {
	Success         bool           `json:"success"`
	Costs           *pricing.Quote `json:"costs"`
	QuoteValidUntil time.Time      `json:"quote_valid_until"`
}
