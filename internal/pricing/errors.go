package pricing

import "errors"

var (
	// ErrInvalidRange is returned when check-out is not strictly after check-in.
	ErrInvalidRange = errors.New("pricing: check-out date must be after check-in date")

	// ErrMinimumStay is returned when the stay is shorter than the configured minimum.
	ErrMinimumStay = errors.New("pricing: stay is shorter than the minimum number of nights")

	// ErrMissingConfig is returned when no pricing configuration is available.
	ErrMissingConfig = errors.New("pricing: no pricing configuration available")

	// ErrInvalidGuestCount is returned when the request carries fewer than one adult.
	ErrInvalidGuestCount = errors.New("pricing: at least one adult is required")

	// ErrNegativeAmount is returned on config updates with a negative monetary field.
	ErrNegativeAmount = errors.New("pricing: monetary amounts must not be negative")

	// ErrInvalidMinimumNights is returned on config updates with minimum_nights < 1.
	ErrInvalidMinimumNights = errors.New("pricing: minimum_nights must be at least 1")

	// ErrInvalidDepositPercentage is returned on config updates with a deposit
	// percentage outside (0, 1].
	ErrInvalidDepositPercentage = errors.New("pricing: deposit_percentage must be in (0, 1]")
)
