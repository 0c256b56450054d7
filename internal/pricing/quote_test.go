package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		BasePricePerAdult:    80,
		AdditionalGuestPrice: 20,
		CleaningFee:          50,
		ParkingFeePerNight:   10,
		TouristTaxPerPerson:  2,
		MinimumNights:        2,
		DepositPercentage:    0.30,
		Currency:             "EUR",
	}
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeQuote_TwoAdultsTwoNights(t *testing.T) {
	q, err := ComputeQuote(date("2025-11-01"), date("2025-11-03"), Guests{Adults: 2}, false, testConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, q.Nights)
	assert.Equal(t, 2, q.TotalPayingGuests)
	assert.Equal(t, 2, q.TaxableGuests)
	assert.Equal(t, 160.0, q.BasePrice)
	assert.Equal(t, 0.0, q.ParkingCost)
	assert.Equal(t, 50.0, q.CleaningFee)
	assert.Equal(t, 8.0, q.TouristTax)
	assert.Equal(t, 210.0, q.Subtotal)
	assert.Equal(t, 218.0, q.TotalAmount)
	assert.Equal(t, 65.40, q.DepositAmount)
	assert.Equal(t, "EUR", q.Currency)
}

func TestComputeQuote_ThirdAdultAddsGuestRate(t *testing.T) {
	q, err := ComputeQuote(date("2025-11-01"), date("2025-11-03"), Guests{Adults: 3}, false, testConfig())
	require.NoError(t, err)

	// Nightly rate: 80 (covers first two) + 20 (third guest) = 100.
	assert.Equal(t, 200.0, q.BasePrice)
	assert.Equal(t, 12.0, q.TouristTax)
	assert.Equal(t, 250.0, q.Subtotal)
	assert.Equal(t, 262.0, q.TotalAmount)
	assert.Equal(t, 78.60, q.DepositAmount)
}

func TestComputeQuote_SingleAdultChargedOneBaseUnit(t *testing.T) {
	q, err := ComputeQuote(date("2025-11-01"), date("2025-11-03"), Guests{Adults: 1}, false, testConfig())
	require.NoError(t, err)
	assert.Equal(t, 160.0, q.BasePrice, "base rate is flat up to two paying guests")
	assert.Equal(t, 1, q.TotalPayingGuests)
}

func TestComputeQuote_YoungChildrenStayFree(t *testing.T) {
	// Ages 2 and 3 are free; age 4 pays. None reach tourist-tax age.
	q, err := ComputeQuote(date("2025-11-01"), date("2025-11-03"),
		Guests{Adults: 2, ChildrenAges: []int{2, 3, 4}}, false, testConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, q.PayingChildren)
	assert.Equal(t, 3, q.TotalPayingGuests)
	assert.Equal(t, 2, q.TaxableGuests)
	// (80 + 20) per night x 2 nights.
	assert.Equal(t, 200.0, q.BasePrice)
	assert.Equal(t, 8.0, q.TouristTax)
}

func TestComputeQuote_TeenagerPaysTouristTax(t *testing.T) {
	q, err := ComputeQuote(date("2025-11-01"), date("2025-11-03"),
		Guests{Adults: 2, ChildrenAges: []int{14}}, false, testConfig())
	require.NoError(t, err)

	assert.Equal(t, 3, q.TaxableGuests)
	assert.Equal(t, 12.0, q.TouristTax)
}

func TestComputeQuote_ParkingChargedPerNight(t *testing.T) {
	q, err := ComputeQuote(date("2025-11-01"), date("2025-11-04"), Guests{Adults: 2}, true, testConfig())
	require.NoError(t, err)
	assert.Equal(t, 30.0, q.ParkingCost)
}

func TestComputeQuote_MinimumStayBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.MinimumNights = 3

	_, err := ComputeQuote(date("2025-11-01"), date("2025-11-03"), Guests{Adults: 2}, false, cfg)
	assert.ErrorIs(t, err, ErrMinimumStay)

	q, err := ComputeQuote(date("2025-11-01"), date("2025-11-04"), Guests{Adults: 2}, false, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Nights)
}

func TestComputeQuote_InvalidInputs(t *testing.T) {
	cfg := testConfig()

	_, err := ComputeQuote(date("2025-11-03"), date("2025-11-03"), Guests{Adults: 2}, false, cfg)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = ComputeQuote(date("2025-11-03"), date("2025-11-01"), Guests{Adults: 2}, false, cfg)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = ComputeQuote(date("2025-11-01"), date("2025-11-03"), Guests{Adults: 0}, false, cfg)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)

	_, err = ComputeQuote(date("2025-11-01"), date("2025-11-03"), Guests{Adults: 2}, false, nil)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestComputeQuote_Deterministic(t *testing.T) {
	cfg := testConfig()
	guests := Guests{Adults: 3, ChildrenAges: []int{2, 9, 15}}

	first, err := ComputeQuote(date("2025-07-10"), date("2025-07-17"), guests, true, cfg)
	require.NoError(t, err)
	second, err := ComputeQuote(date("2025-07-10"), date("2025-07-17"), guests, true, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeQuote_TotalMonotonicInNights(t *testing.T) {
	cfg := testConfig()
	prev := 0.0
	for nights := cfg.MinimumNights; nights <= 14; nights++ {
		q, err := ComputeQuote(date("2025-11-01"), date("2025-11-01").AddDate(0, 0, nights),
			Guests{Adults: 2}, true, cfg)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, q.TotalAmount, prev, "nights=%d", nights)
		prev = q.TotalAmount
	}
}

func TestComputeQuote_TotalMonotonicInAdults(t *testing.T) {
	cfg := testConfig()
	prev := 0.0
	for adults := 1; adults <= 8; adults++ {
		q, err := ComputeQuote(date("2025-11-01"), date("2025-11-03"),
			Guests{Adults: adults}, false, cfg)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, q.TotalAmount, prev, "adults=%d", adults)
		prev = q.TotalAmount
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.CleaningFee = -1
	assert.ErrorIs(t, bad.Validate(), ErrNegativeAmount)

	bad = *cfg
	bad.MinimumNights = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidMinimumNights)

	bad = *cfg
	bad.DepositPercentage = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidDepositPercentage)

	bad = *cfg
	bad.DepositPercentage = 1.5
	assert.ErrorIs(t, bad.Validate(), ErrInvalidDepositPercentage)
}
