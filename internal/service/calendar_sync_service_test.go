package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlockingEvent(t *testing.T) {
	tests := []struct {
		name        string
		platform    string
		summary     string
		description string
		blocking    bool
	}{
		{"booking com always blocks", "booking", "CLOSED - Not available", "", true},
		{"booking com blocks empty summary", "booking", "", "", true},
		{"airbnb reserved", "airbnb", "Reserved", "", true},
		{"airbnb not available filler", "airbnb", "Airbnb (Not available)", "", false},
		{"google booked keyword", "google", "Booked: family stay", "", true},
		{"google blocked in description", "google", "House", "blocked for maintenance", true},
		{"google unrelated event", "google", "Dentist appointment", "", false},
		{"other platform occupied", "other", "Occupied", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.blocking, isBlockingEvent(tt.platform, tt.summary, tt.description))
		})
	}
}
