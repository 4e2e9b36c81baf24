package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
	"github.com/jihedaidrive/razor-spark-book/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Identity
// --------------------------------------------------

func (r *ReservationGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *ReservationGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

// CreateReservation runs the overlap check and the insert in one
// transaction. On postgres an advisory lock on (barber, date) serializes
// writers for the same day before the scan: FOR UPDATE alone cannot close
// the race for an empty slot, since there is no conflicting row to lock
// until somebody inserts one.
func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		onPostgres := tx.Dialector.Name() == "postgres"

		if onPostgres {
			if err := tx.Exec(
				"SELECT pg_advisory_xact_lock(hashtext(? || ?))",
				res.BarberName, res.Date,
			).Error; err != nil {
				return err
			}
		}

		blocking := make([]string, len(domain.BlockingStatuses))
		for i, s := range domain.BlockingStatuses {
			blocking[i] = string(s)
		}

		// Fetch, don't count: FOR UPDATE is invalid on an aggregate.
		q := tx.Model(&models.Reservation{})
		if onPostgres {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var conflicts []models.Reservation
		if err := q.
			Where(
				"barber_name = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
				res.BarberName,
				res.Date,
				blocking,
				res.EndTime,
				res.StartTime,
			).
			Limit(1).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(res).Error
	})
}

// --------------------------------------------------
// Reservation (read)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})

	if filter.BarberName != "" {
		q = q.Where("barber_name = ?", filter.BarberName)
	}
	if filter.ClientID != "" {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var out []models.Reservation
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListForBarberDate(
	ctx context.Context,
	barberName string,
	date string,
) ([]models.Reservation, error) {

	return r.ListReservations(ctx, domain.ListFilter{
		BarberName: barberName,
		Date:       date,
	})
}

// --------------------------------------------------
// Reservation (state change / delete)
// --------------------------------------------------

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	// Services are append-only at creation time; status changes must not
	// touch the snapshot rows.
	return r.db.WithContext(ctx).
		Omit("Services").
		Save(res).Error
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("reservation_id = ?", id).
			Delete(&models.ReservationService{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Reservation{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
