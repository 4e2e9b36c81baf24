package reservation

import (
	"time"

	"github.com/jihedaidrive/razor-spark-book/internal/models"
)

// ===============================
// Calendar Projection
// ===============================

// CellStatus is the display state of one bookable slot.
type CellStatus string

const (
	CellAvailable CellStatus = "available"
	CellPending   CellStatus = "pending"
	CellConfirmed CellStatus = "confirmed"
	CellCompleted CellStatus = "completed"
	CellPast      CellStatus = "past"
)

type CalendarCell struct {
	StartTime     string     `json:"start_time"`
	Status        CellStatus `json:"status"`
	IsAvailable   bool       `json:"is_available"`
	ReservationID string     `json:"reservation_id,omitempty"`
}

// SlotTimes expands a [dayStart, dayEnd) working window into the grid of
// bookable start times, stepMin minutes apart.
func SlotTimes(dayStart, dayEnd string, stepMin int) ([]string, error) {
	startMin, err := ClockMinutes(dayStart)
	if err != nil {
		return nil, err
	}
	endMin, err := ClockMinutes(dayEnd)
	if err != nil {
		return nil, err
	}

	var slots []string
	for cur := startMin; cur < endMin; cur += stepMin {
		slots = append(slots, FormatClock(cur))
	}
	return slots, nil
}

// ProjectDay computes the display status of every grid cell for one barber
// and date. It is a pure function of (reservations, now): callers re-run it
// on every fresh fetch instead of patching previous output, so any status
// change anywhere shows up in every view on its next read.
//
// Per cell, in priority order:
//  1. occupied by a pending/confirmed/completed reservation starting exactly
//     at the cell -> that status, unavailable;
//  2. start instant already elapsed -> past;
//  3. otherwise -> available (a cancelled reservation is kept for history
//     but does not occupy the slot).
func ProjectDay(
	reservations []models.Reservation,
	barberName string,
	date string,
	slots []string,
	now time.Time,
) []CalendarCell {

	occupied := make(map[string]*models.Reservation, len(reservations))
	for i := range reservations {
		r := &reservations[i]
		if r.BarberName != barberName || r.Date != date {
			continue
		}
		if Status(r.Status) == StatusCancelled {
			continue
		}
		occupied[r.StartTime] = r
	}

	cells := make([]CalendarCell, 0, len(slots))
	for _, slot := range slots {
		cell := CalendarCell{StartTime: slot}

		if r, ok := occupied[slot]; ok {
			cell.Status = CellStatus(r.Status)
			cell.ReservationID = r.ID
		} else if IsPastSlot(date, slot, now) {
			cell.Status = CellPast
		} else {
			cell.Status = CellAvailable
			cell.IsAvailable = true
		}

		cells = append(cells, cell)
	}

	return cells
}
