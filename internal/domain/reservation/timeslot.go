package reservation

import (
	"fmt"
	"time"

	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	minutesPerDay = 24 * 60
)

// --------------------------------------------------
// Wall-clock parsing
// --------------------------------------------------

// ClockMinutes parses an "HH:MM" string into minutes since midnight.
func ClockMinutes(hm string) (int, error) {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// --------------------------------------------------
// Interval arithmetic
// --------------------------------------------------

// ComputeEndTime adds a duration to a start time within the same calendar
// day. Sums that reach past midnight are rejected, never wrapped.
func ComputeEndTime(start string, durationMin int) (string, error) {
	if durationMin <= 0 {
		return "", httperr.ErrBusiness("degenerate_time_range")
	}

	startMin, err := ClockMinutes(start)
	if err != nil {
		return "", err
	}

	endMin := startMin + durationMin
	if endMin > minutesPerDay {
		return "", httperr.ErrBusiness("time_past_midnight")
	}

	return FormatClock(endMin), nil
}

// IntervalsOverlap is the half-open [start, end) overlap test. Back-to-back
// intervals (endA == startB) do not overlap. Zero-padded "HH:MM" strings
// compare correctly as strings.
func IntervalsOverlap(startA, endA, startB, endB string) bool {
	return startA < endB && startB < endA
}

// --------------------------------------------------
// Absolute instants
// --------------------------------------------------

// SlotInstant combines a "YYYY-MM-DD" date and "HH:MM" clock time into an
// absolute instant in loc.
func SlotInstant(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return t, nil
}

// IsPastSlot reports whether the slot's start instant is strictly before
// now. A slot on today's date is only past once its clock time has elapsed.
func IsPastSlot(date, start string, now time.Time) bool {
	instant, err := SlotInstant(date, start, now.Location())
	if err != nil {
		return false
	}
	return instant.Before(now)
}

// IsPastDate reports whether the calendar date is strictly before today's
// date in now's location, ignoring time of day.
func IsPastDate(date string, now time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}
