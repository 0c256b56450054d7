package availability

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a range's end is not strictly after its start.
var ErrInvalidRange = errors.New("availability: end date must be after start date")

// DateRange is a half-open calendar range [Start, End): the end date is the
// check-out day and is free for a new arrival.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates end > start before any overlap comparison happens.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if !end.After(start) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open ranges share at least one night.
// Back-to-back stays (one ending the day the other starts) do not overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Nights returns the number of whole days the range spans.
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// PeriodKind classifies why a period is unavailable.
type PeriodKind string

const (
	KindBooking     PeriodKind = "booking"
	KindMaintenance PeriodKind = "maintenance"
	KindOther       PeriodKind = "other"
)

// BlockedPeriod is a snapshot of a period unavailable for new bookings,
// either a confirmed/pending guest stay or an administrative block.
type BlockedPeriod struct {
	Range  DateRange
	Kind   PeriodKind
	Status string
}

// Result is the outcome of an availability check.
type Result struct {
	Available           bool
	ConflictingBookings int
	ConflictingBlocks   int
}

// Check counts the supplied periods conflicting with the requested range.
// It is pure: the caller supplies the snapshot of candidate periods.
func Check(r DateRange, periods []BlockedPeriod) Result {
	var res Result
	for _, p := range periods {
		if !r.Overlaps(p.Range) {
			continue
		}
		if p.Kind == KindBooking {
			res.ConflictingBookings++
		} else {
			res.ConflictingBlocks++
		}
	}
	res.Available = res.ConflictingBookings == 0 && res.ConflictingBlocks == 0
	return res
}
