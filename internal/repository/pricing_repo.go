package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"vincanto/internal/entities"
	"vincanto/internal/pricing"
)

type PricingRepository struct {
	DB *sql.DB
}

func NewPricingRepository(database *sql.DB) *PricingRepository {
	return &PricingRepository{DB: database}
}

// GetCurrent reads the latest pricing configuration. Rows are versioned:
// updates insert a new row, the newest one wins.
func (r *PricingRepository) GetCurrent() (*pricing.Config, error) {
	var cfg pricing.Config
	query := `
		SELECT base_price_per_adult, additional_guest_price, cleaning_fee,
		       parking_fee_per_night, tourist_tax_per_person, minimum_nights,
		       deposit_percentage, currency
		FROM pricing_config ORDER BY id DESC LIMIT 1`
	err := r.DB.QueryRow(query).Scan(
		&cfg.BasePricePerAdult, &cfg.AdditionalGuestPrice, &cfg.CleaningFee,
		&cfg.ParkingFeePerNight, &cfg.TouristTaxPerPerson, &cfg.MinimumNights,
		&cfg.DepositPercentage, &cfg.Currency,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pricing.ErrMissingConfig
		}
		return nil, fmt.Errorf("error querying pricing config: %w", err)
	}
	return &cfg, nil
}

// Update merges the partial update into the current configuration and
// inserts it as a new version.
func (r *PricingRepository) Update(upd entities.PricingUpdate) (*pricing.Config, error) {
	cfg, err := r.GetCurrent()
	if err != nil {
		return nil, err
	}

	if upd.BasePricePerAdult != nil {
		cfg.BasePricePerAdult = *upd.BasePricePerAdult
	}
	if upd.AdditionalGuestPrice != nil {
		cfg.AdditionalGuestPrice = *upd.AdditionalGuestPrice
	}
	if upd.CleaningFee != nil {
		cfg.CleaningFee = *upd.CleaningFee
	}
	if upd.ParkingFeePerNight != nil {
		cfg.ParkingFeePerNight = *upd.ParkingFeePerNight
	}
	if upd.TouristTaxPerPerson != nil {
		cfg.TouristTaxPerPerson = *upd.TouristTaxPerPerson
	}
	if upd.MinimumNights != nil {
		cfg.MinimumNights = *upd.MinimumNights
	}
	if upd.DepositPercentage != nil {
		cfg.DepositPercentage = *upd.DepositPercentage
	}
	if upd.Currency != nil {
		cfg.Currency = *upd.Currency
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO pricing_config
		(base_price_per_adult, additional_guest_price, cleaning_fee,
		 parking_fee_per_night, tourist_tax_per_person, minimum_nights,
		 deposit_percentage, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.DB.Exec(query,
		cfg.BasePricePerAdult, cfg.AdditionalGuestPrice, cfg.CleaningFee,
		cfg.ParkingFeePerNight, cfg.TouristTaxPerPerson, cfg.MinimumNights,
		cfg.DepositPercentage, cfg.Currency,
	)
	if err != nil {
		return nil, fmt.Errorf("error inserting pricing config: %w", err)
	}
	return cfg, nil
}
