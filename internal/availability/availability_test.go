package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := NewDateRange(date(start), date(end))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	_, err := NewDateRange(date("2025-11-03"), date("2025-11-03"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewDateRange(date("2025-11-03"), date("2025-11-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err := NewDateRange(date("2025-11-01"), date("2025-11-03"))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Nights())
}

func TestOverlaps(t *testing.T) {
	base := mustRange(t, "2025-11-10", "2025-11-15")

	tests := []struct {
		name    string
		other   DateRange
		overlap bool
	}{
		{"identical", mustRange(t, "2025-11-10", "2025-11-15"), true},
		{"nested inside", mustRange(t, "2025-11-11", "2025-11-13"), true},
		{"containing", mustRange(t, "2025-11-08", "2025-11-20"), true},
		{"partial front", mustRange(t, "2025-11-08", "2025-11-11"), true},
		{"partial back", mustRange(t, "2025-11-14", "2025-11-18"), true},
		{"back-to-back after", mustRange(t, "2025-11-15", "2025-11-18"), false},
		{"back-to-back before", mustRange(t, "2025-11-05", "2025-11-10"), false},
		{"disjoint", mustRange(t, "2025-12-01", "2025-12-05"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, base.Overlaps(tt.other))
			assert.Equal(t, tt.overlap, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestCheck_ConflictOnSharedNight(t *testing.T) {
	// Blocked 2025-11-15..18, query 17..20: the 17th is shared.
	blocked := []BlockedPeriod{
		{Range: mustRange(t, "2025-11-15", "2025-11-18"), Kind: KindBooking, Status: "confirmed"},
	}
	res := Check(mustRange(t, "2025-11-17", "2025-11-20"), blocked)
	assert.False(t, res.Available)
	assert.Equal(t, 1, res.ConflictingBookings)
	assert.Equal(t, 0, res.ConflictingBlocks)
}

func TestCheck_HalfOpenBoundary(t *testing.T) {
	// Check-in on the day an existing stay checks out is allowed.
	blocked := []BlockedPeriod{
		{Range: mustRange(t, "2025-11-15", "2025-11-18"), Kind: KindBooking, Status: "confirmed"},
	}
	res := Check(mustRange(t, "2025-11-18", "2025-11-20"), blocked)
	assert.True(t, res.Available)
	assert.Equal(t, 0, res.ConflictingBookings)
	assert.Equal(t, 0, res.ConflictingBlocks)
}

func TestCheck_CountsByKind(t *testing.T) {
	query := mustRange(t, "2025-11-01", "2025-11-30")
	periods := []BlockedPeriod{
		{Range: mustRange(t, "2025-11-02", "2025-11-05"), Kind: KindBooking, Status: "pending"},
		{Range: mustRange(t, "2025-11-10", "2025-11-12"), Kind: KindBooking, Status: "confirmed"},
		{Range: mustRange(t, "2025-11-20", "2025-11-22"), Kind: KindMaintenance, Status: "maintenance"},
		{Range: mustRange(t, "2025-11-25", "2025-11-27"), Kind: KindOther, Status: "manual hold"},
		{Range: mustRange(t, "2025-12-01", "2025-12-05"), Kind: KindBooking, Status: "confirmed"},
	}
	res := Check(query, periods)
	assert.False(t, res.Available)
	assert.Equal(t, 2, res.ConflictingBookings)
	assert.Equal(t, 2, res.ConflictingBlocks)
}

func TestCheck_EmptySnapshotIsAvailable(t *testing.T) {
	res := Check(mustRange(t, "2025-11-01", "2025-11-03"), nil)
	assert.True(t, res.Available)
}
