package reservation

import (
	"context"

	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
	"github.com/jihedaidrive/razor-spark-book/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// Execute lists reservations for the caller. Staff see everything the
// filter allows; everyone else is pinned to their own records regardless of
// the requested filter.
func (uc *ListReservations) Execute(
	ctx context.Context,
	filter domain.ListFilter,
	actor domain.Actor,
) ([]models.Reservation, error) {

	if actor.IsZero() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	if !actor.IsAdmin() {
		filter.ClientID = actor.ID
	}

	return uc.repo.ListReservations(ctx, filter)
}
