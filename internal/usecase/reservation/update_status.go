package reservation

import (
	"context"
	"time"

	"github.com/jihedaidrive/razor-spark-book/internal/audit"
	"github.com/jihedaidrive/razor-spark-book/internal/cache"
	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
	"github.com/jihedaidrive/razor-spark-book/internal/models"
	"github.com/jihedaidrive/razor-spark-book/internal/timezone"
)

type UpdateReservationStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	days  *cache.DayCache

	tz  string
	now func() time.Time
}

func NewUpdateReservationStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	days *cache.DayCache,
	tz string,
) *UpdateReservationStatus {
	return &UpdateReservationStatus{
		repo:  repo,
		audit: audit,
		days:  days,
		tz:    tz,
		now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *UpdateReservationStatus) Execute(
	ctx context.Context,
	reservationID string,
	newStatus string,
	actor domain.Actor,
) (*models.Reservation, error) {

	if actor.IsZero() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	to := domain.Status(newStatus)
	if !domain.IsValidStatus(to) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		if actor.IsAdmin() {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		// Non-staff callers learn nothing about other records.
		return nil, httperr.ErrBusiness("not_authorized")
	}

	if err := domain.AuthorizeTransition(actor, res, to); err != nil {
		return nil, err
	}

	if err := domain.Transition(res, to, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.days.Invalidate(ctx, res.BarberName, res.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "reservation_" + string(to),
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
