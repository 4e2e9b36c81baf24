package reservation

import (
	"context"
	"time"

	"github.com/jihedaidrive/razor-spark-book/internal/cache"
	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
	"github.com/jihedaidrive/razor-spark-book/internal/timezone"
)

// GetCalendar produces the day grid for one barber. Every call re-runs the
// projection against a fresh (or briefly cached) reservation snapshot;
// nothing is patched incrementally, so staff actions surface in every view
// on its next fetch.
type GetCalendar struct {
	repo domain.Repository
	days *cache.DayCache

	tz       string
	dayStart string
	dayEnd   string
	stepMin  int

	now func() time.Time
}

func NewGetCalendar(
	repo domain.Repository,
	days *cache.DayCache,
	tz string,
	dayStart string,
	dayEnd string,
	stepMin int,
) *GetCalendar {
	return &GetCalendar{
		repo:     repo,
		days:     days,
		tz:       tz,
		dayStart: dayStart,
		dayEnd:   dayEnd,
		stepMin:  stepMin,
		now:      func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *GetCalendar) Execute(
	ctx context.Context,
	barberName string,
	date string,
) ([]domain.CalendarCell, error) {

	if !domain.IsBarber(barberName) {
		return nil, httperr.ErrBusiness("invalid_barber")
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	reservations, ok := uc.days.GetDay(ctx, barberName, date)
	if !ok {
		var err error
		reservations, err = uc.repo.ListForBarberDate(ctx, barberName, date)
		if err != nil {
			return nil, err
		}
		uc.days.SetDay(ctx, barberName, date, reservations)
	}

	slots, err := domain.SlotTimes(uc.dayStart, uc.dayEnd, uc.stepMin)
	if err != nil {
		return nil, err
	}

	return domain.ProjectDay(reservations, barberName, date, slots, uc.now()), nil
}
