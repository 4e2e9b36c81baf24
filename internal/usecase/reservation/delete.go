package reservation

import (
	"context"

	"github.com/jihedaidrive/razor-spark-book/internal/audit"
	"github.com/jihedaidrive/razor-spark-book/internal/cache"
	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
)

// DeleteReservation is the administrative hard delete. Cancellation keeps
// the record; this removes it.
type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	days  *cache.DayCache
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	days *cache.DayCache,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
		days:  days,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	reservationID string,
	actor domain.Actor,
) error {

	if actor.IsZero() {
		return httperr.ErrBusiness("unauthenticated")
	}
	if !actor.IsAdmin() {
		return httperr.ErrBusiness("not_authorized")
	}

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return httperr.ErrBusiness("reservation_not_found")
	}

	if err := uc.repo.DeleteReservation(ctx, res.ID); err != nil {
		return err
	}

	uc.days.Invalidate(ctx, res.BarberName, res.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return nil
}
