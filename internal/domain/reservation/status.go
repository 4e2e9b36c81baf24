package reservation

import "github.com/jihedaidrive/razor-spark-book/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no transition out of s is legal.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Blocking statuses occupy their time slot for conflict checking.
// Cancelled frees the slot; completed is already-elapsed history.
func IsBlocking(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

var BlockingStatuses = []Status{StatusPending, StatusConfirmed}

// ===============================
// Transitions
// ===============================

// CanTransition validates a status change:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled
//	completed, cancelled -> (terminal)
func CanTransition(from, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}

	var legal bool
	switch from {
	case StatusPending:
		legal = to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		legal = to == StatusCompleted || to == StatusCancelled
	}

	if !legal {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}
