package utils

import "strings"

const (
	ParkingNone    = "none"
	ParkingStreet  = "street"
	ParkingPrivate = "private"
)

// IsValidParkingOption reports whether the option is one the booking form offers.
// An empty option is treated as "none".
func IsValidParkingOption(option string) bool {
	switch strings.ToLower(option) {
	case "", ParkingNone, ParkingStreet, ParkingPrivate:
		return true
	}
	return false
}

// ParkingBillable reports whether the option carries a nightly charge.
// Street parking is free, only the private spot is billed.
func ParkingBillable(option string) bool {
	return strings.ToLower(option) == ParkingPrivate
}
