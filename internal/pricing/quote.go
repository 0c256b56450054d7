package pricing

import (
	"math"
	"time"
)

const (
	// FreeStayMaxAge is the oldest age (inclusive) at which children stay free.
	FreeStayMaxAge = 3

	// TouristTaxMinAge is the youngest age (inclusive) subject to tourist tax.
	TouristTaxMinAge = 14
)

// Config is the pricing configuration snapshot a quote is computed against.
// It is read fresh per request and never mutated here.
type Config struct {
	// BasePricePerAdult is the flat nightly rate covering the first two
	// paying guests combined. The column name is a lineage artifact.
	BasePricePerAdult    float64 `json:"base_price_per_adult"`
	AdditionalGuestPrice float64 `json:"additional_guest_price"`
	CleaningFee          float64 `json:"cleaning_fee"`
	ParkingFeePerNight   float64 `json:"parking_fee_per_night"`
	TouristTaxPerPerson  float64 `json:"tourist_tax_per_person"`
	MinimumNights        int     `json:"minimum_nights"`
	DepositPercentage    float64 `json:"deposit_percentage"`
	Currency             string  `json:"currency"`
}

// Validate reports whether the configuration satisfies the invariants
// enforced on admin updates.
func (c *Config) Validate() error {
	if c.BasePricePerAdult < 0 || c.AdditionalGuestPrice < 0 || c.CleaningFee < 0 ||
		c.ParkingFeePerNight < 0 || c.TouristTaxPerPerson < 0 {
		return ErrNegativeAmount
	}
	if c.MinimumNights < 1 {
		return ErrInvalidMinimumNights
	}
	if c.DepositPercentage <= 0 || c.DepositPercentage > 1 {
		return ErrInvalidDepositPercentage
	}
	return nil
}

// Guests describes the guest composition of a stay.
type Guests struct {
	Adults       int
	ChildrenAges []int
}

// PayingChildren counts children old enough to be charged for the stay.
func (g Guests) PayingChildren() int {
	n := 0
	for _, age := range g.ChildrenAges {
		if age > FreeStayMaxAge {
			n++
		}
	}
	return n
}

// TaxableGuests counts guests subject to tourist tax: all adults plus
// children aged TouristTaxMinAge or older.
func (g Guests) TaxableGuests() int {
	n := g.Adults
	for _, age := range g.ChildrenAges {
		if age >= TouristTaxMinAge {
			n++
		}
	}
	return n
}

// Quote is the computed cost breakdown for a stay. Monetary fields are
// rounded to two decimals; the intermediate math keeps full precision.
type Quote struct {
	Nights            int `json:"nights"`
	NumAdults         int `json:"num_adults"`
	NumChildren       int `json:"num_children"`
	PayingChildren    int `json:"paying_children"`
	TotalPayingGuests int `json:"total_paying_guests"`
	TaxableGuests     int `json:"taxable_guests"`

	BasePrice   float64 `json:"base_price"`
	ParkingCost float64 `json:"parking_cost"`
	CleaningFee float64 `json:"cleaning_fee"`
	TouristTax  float64 `json:"tourist_tax"`

	Subtotal          float64 `json:"subtotal"`
	TotalAmount       float64 `json:"total_amount"`
	DepositAmount     float64 `json:"deposit_amount"`
	DepositPercentage float64 `json:"deposit_percentage"`
	Currency          string  `json:"currency"`
}

// Nights returns the whole-day difference between check-in and check-out.
// Occupancy is half-open: the check-out day itself is not a night.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Round(checkOut.Sub(checkIn).Hours() / 24))
}

// ComputeQuote prices a stay against the supplied configuration.
//
// The nightly rate is tiered: the base rate is a flat nightly charge covering
// the first two paying guests as a unit, every further paying guest adds
// AdditionalGuestPrice per night. Children aged FreeStayMaxAge or younger
// stay free; tourist tax applies to guests aged TouristTaxMinAge or older.
// The cleaning fee is flat.
func ComputeQuote(checkIn, checkOut time.Time, guests Guests, parkingRequested bool, cfg *Config) (*Quote, error) {
	if cfg == nil {
		return nil, ErrMissingConfig
	}
	if guests.Adults < 1 {
		return nil, ErrInvalidGuestCount
	}

	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, ErrInvalidRange
	}
	if nights < cfg.MinimumNights {
		return nil, ErrMinimumStay
	}

	payingChildren := guests.PayingChildren()
	totalPaying := guests.Adults + payingChildren

	costPerNight := cfg.BasePricePerAdult
	if totalPaying > 2 {
		costPerNight += float64(totalPaying-2) * cfg.AdditionalGuestPrice
	}
	basePrice := costPerNight * float64(nights)

	parkingCost := 0.0
	if parkingRequested {
		parkingCost = cfg.ParkingFeePerNight * float64(nights)
	}

	taxableGuests := guests.TaxableGuests()
	touristTax := float64(taxableGuests) * cfg.TouristTaxPerPerson * float64(nights)

	subtotal := basePrice + parkingCost + cfg.CleaningFee
	totalAmount := subtotal + touristTax
	depositAmount := totalAmount * cfg.DepositPercentage

	return &Quote{
		Nights:            nights,
		NumAdults:         guests.Adults,
		NumChildren:       len(guests.ChildrenAges),
		PayingChildren:    payingChildren,
		TotalPayingGuests: totalPaying,
		TaxableGuests:     taxableGuests,
		BasePrice:         round2(basePrice),
		ParkingCost:       round2(parkingCost),
		CleaningFee:       round2(cfg.CleaningFee),
		TouristTax:        round2(touristTax),
		Subtotal:          round2(subtotal),
		TotalAmount:       round2(totalAmount),
		DepositAmount:     round2(depositAmount),
		DepositPercentage: cfg.DepositPercentage,
		Currency:          cfg.Currency,
	}, nil
}

// round2 rounds half-up to two decimal places. Applied once per output
// value so rounding error never compounds across steps.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
