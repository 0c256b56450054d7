package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidParkingOption(t *testing.T) {
	assert.True(t, IsValidParkingOption(""))
	assert.True(t, IsValidParkingOption("none"))
	assert.True(t, IsValidParkingOption("street"))
	assert.True(t, IsValidParkingOption("Private"))
	assert.False(t, IsValidParkingOption("garage"))
}

func TestParkingBillable(t *testing.T) {
	assert.True(t, ParkingBillable("private"))
	assert.False(t, ParkingBillable("street"))
	assert.False(t, ParkingBillable("none"))
	assert.False(t, ParkingBillable(""))
}
