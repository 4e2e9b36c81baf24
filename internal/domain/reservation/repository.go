package reservation

import (
	"context"

	"github.com/jihedaidrive/razor-spark-book/internal/models"
)

// ListFilter narrows a reservation listing. Zero-valued fields are ignored.
type ListFilter struct {
	BarberName string
	ClientID   string
	Date       string
	Status     string
}

type Repository interface {
	// -------- Identity --------
	GetUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Service catalog --------
	GetServicesByIDs(
		ctx context.Context,
		ids []string,
	) ([]models.Service, error)

	// -------- Reservation (create / conflict) --------
	//
	// CreateReservation must serialize conflicting writers: the overlap
	// check and the insert run in one transaction, with row locking where
	// the store supports it, so at most one of two racing requests for an
	// overlapping slot succeeds. The loser gets the time_conflict business
	// error.
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	// -------- Reservation (read) --------
	GetReservationByID(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	ListReservations(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Reservation, error)

	ListForBarberDate(
		ctx context.Context,
		barberName string,
		date string,
	) ([]models.Reservation, error)

	// -------- Reservation (state change / delete) --------
	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		id string,
	) error
}
