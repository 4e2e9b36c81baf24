package reservation

import (
	"time"

	"github.com/jihedaidrive/razor-spark-book/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition applies a status change to the record, stamping the matching
// timestamp. The caller persists the result.
func Transition(r *models.Reservation, to Status, now time.Time) error {
	if err := CanTransition(Status(r.Status), to); err != nil {
		return err
	}

	r.Status = string(to)
	switch to {
	case StatusCancelled:
		r.CancelledAt = &now
	case StatusCompleted:
		r.CompletedAt = &now
	}
	return nil
}
