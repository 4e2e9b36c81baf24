package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jihedaidrive/razor-spark-book/internal/audit"
	"github.com/jihedaidrive/razor-spark-book/internal/cache"
	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
	"github.com/jihedaidrive/razor-spark-book/internal/models"
	"github.com/jihedaidrive/razor-spark-book/internal/timezone"
	"github.com/jihedaidrive/razor-spark-book/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	BarberName string
	Date       string
	StartTime  string

	// ServiceID is the legacy single-service field; ServiceIDs wins when
	// both are present.
	ServiceID  string
	ServiceIDs []string

	Notes string
}

func (in CreateReservationInput) requestedServiceIDs() []string {
	ids := make([]string, 0, len(in.ServiceIDs)+1)
	for _, id := range in.ServiceIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 && in.ServiceID != "" {
		ids = append(ids, in.ServiceID)
	}
	return ids
}

// ======================================================
// USE CASE
// ======================================================

// CreateReservation is the availability engine: the only write path that
// creates reservations.
type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	days  *cache.DayCache

	tz  string
	now func() time.Time
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	days *cache.DayCache,
	tz string,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
		days:  days,
		tz:    tz,
		now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
	actor domain.Actor,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// Caller identity
	// --------------------------------------------------
	if actor.IsZero() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	client, err := uc.repo.GetUserByID(ctx, actor.ID)
	if err != nil {
		// Only a missing account is an auth failure; a store fault stays an
		// internal error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("unauthenticated")
		}
		return nil, err
	}

	// --------------------------------------------------
	// Barber and date
	// --------------------------------------------------
	if !domain.IsBarber(in.BarberName) {
		return nil, httperr.ErrBusiness("invalid_barber")
	}

	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if domain.IsPastDate(in.Date, uc.now()) {
		return nil, httperr.ErrBusiness("past_date")
	}

	// Canonicalize the start time to zero-padded "HH:MM". The conflict
	// predicate and the day grid compare clock strings lexically, so an
	// unpadded "9:15" must never reach the store.
	startMin, err := domain.ClockMinutes(in.StartTime)
	if err != nil {
		return nil, err
	}
	in.StartTime = domain.FormatClock(startMin)

	// --------------------------------------------------
	// Services (snapshot from the catalog)
	// --------------------------------------------------
	serviceIDs := in.requestedServiceIDs()
	if len(serviceIDs) == 0 {
		return nil, httperr.ErrBusiness("no_service_specified")
	}

	resolved, err := uc.repo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Service, len(resolved))
	for _, s := range resolved {
		byID[s.ID] = s
	}

	var (
		snapshots     []models.ReservationService
		totalDuration int
		totalPrice    float64
	)
	for i, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok {
			return nil, httperr.ErrBusiness("invalid_service")
		}
		if !svc.Active {
			return nil, httperr.ErrBusiness("service_inactive")
		}

		snapshots = append(snapshots, models.ReservationService{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Duration:    svc.DurationMin,
			Price:       svc.Price,
			Position:    i,
		})
		totalDuration += svc.DurationMin
		totalPrice += svc.Price
	}

	// --------------------------------------------------
	// Timing (any caller-supplied end time is ignored)
	// --------------------------------------------------
	endTime, err := domain.ComputeEndTime(in.StartTime, totalDuration)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Persist; the repository serializes the conflict
	// check and the insert
	// --------------------------------------------------
	res := &models.Reservation{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		ClientPhone: client.Phone,
		BarberName:  in.BarberName,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     endTime,

		Services:      snapshots,
		TotalDuration: totalDuration,
		TotalPrice:    totalPrice,

		Status: string(domain.InitialStatus()),
		Notes:  validators.SanitizeNotes(in.Notes),
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.audit.Dispatch(audit.Event{
				UserID: &actor.ID,
				Action: "reservation_conflict",
				Entity: "reservation",
				Metadata: map[string]any{
					"barber": in.BarberName,
					"date":   in.Date,
					"start":  in.StartTime,
					"end":    endTime,
				},
			})
		}
		return nil, err
	}

	uc.days.Invalidate(ctx, res.BarberName, res.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
