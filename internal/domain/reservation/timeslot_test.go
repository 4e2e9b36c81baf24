package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
)

func TestComputeEndTime(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		duration int
		want     string
		wantCode string
	}{
		{name: "simple add", start: "10:00", duration: 45, want: "10:45"},
		{name: "crosses hour", start: "10:30", duration: 45, want: "11:15"},
		{name: "ends exactly at midnight", start: "23:00", duration: 60, want: "24:00"},
		{name: "zero duration", start: "10:00", duration: 0, wantCode: "degenerate_time_range"},
		{name: "negative duration", start: "10:00", duration: -30, wantCode: "degenerate_time_range"},
		{name: "past midnight", start: "23:30", duration: 45, wantCode: "time_past_midnight"},
		{name: "bad clock", start: "25:00", duration: 30, wantCode: "invalid_time"},
		{name: "not a clock", start: "morning", duration: 30, wantCode: "invalid_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeEndTime(tt.start, tt.duration)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, httperr.IsBusiness(err, tt.wantCode), "expected code %s, got %v", tt.wantCode, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		startA, endA, startB, endB     string
		want                           bool
	}{
		{"disjoint", "10:00", "10:45", "11:00", "11:30", false},
		{"contained", "10:00", "11:00", "10:15", "10:30", true},
		{"partial overlap", "10:00", "10:45", "10:30", "11:15", true},
		{"identical", "10:00", "10:45", "10:00", "10:45", true},
		{"back to back", "10:00", "10:45", "10:45", "11:30", false},
		{"back to back reversed", "10:45", "11:30", "10:00", "10:45", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntervalsOverlap(tt.startA, tt.endA, tt.startB, tt.endB)
			assert.Equal(t, tt.want, got)

			// overlap is symmetric
			assert.Equal(t, tt.want, IntervalsOverlap(tt.startB, tt.endB, tt.startA, tt.endA))
		})
	}
}

func TestIsPastSlot(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsPastSlot("2025-03-09", "23:30", now), "yesterday is past")
	assert.True(t, IsPastSlot("2025-03-10", "09:00", now), "earlier today is past")
	assert.False(t, IsPastSlot("2025-03-10", "12:00", now), "exactly now is not strictly past")
	assert.False(t, IsPastSlot("2025-03-10", "14:00", now), "later today is not past")
	assert.False(t, IsPastSlot("2025-03-11", "00:00", now), "tomorrow is not past")
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)

	assert.True(t, IsPastDate("2025-03-09", now))
	assert.False(t, IsPastDate("2025-03-10", now), "today is not a past date even late in the day")
	assert.False(t, IsPastDate("2025-03-11", now))
}

func TestSlotInstant(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Tunis")
	require.NoError(t, err)

	got, err := SlotInstant("2025-03-10", "10:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 10, 30, 0, 0, loc), got)

	_, err = SlotInstant("2025-13-40", "10:30", loc)
	require.Error(t, err)
}
