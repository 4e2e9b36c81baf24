package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
)

func newCalendarUC(f *fixture) *GetCalendar {
	uc := NewGetCalendar(f.repo, nil, "UTC", "09:00", "19:00", 30)
	uc.now = func() time.Time { return testNow }
	return uc
}

func gridCell(t *testing.T, cells []domain.CalendarCell, start string) domain.CalendarCell {
	t.Helper()
	for _, c := range cells {
		if c.StartTime == start {
			return c
		}
	}
	t.Fatalf("no cell for %s", start)
	return domain.CalendarCell{}
}

func TestCalendarReflectsBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := newCalendarUC(f)

	res, err := f.create.Execute(ctx, f.bookingInput(), f.client)
	require.NoError(t, err)

	cells, err := uc.Execute(ctx, "John", "2025-03-10")
	require.NoError(t, err)
	require.Len(t, cells, 20)

	booked := gridCell(t, cells, "10:00")
	assert.Equal(t, domain.CellPending, booked.Status)
	assert.False(t, booked.IsAvailable)
	assert.Equal(t, res.ID, booked.ReservationID)

	open := gridCell(t, cells, "14:00")
	assert.Equal(t, domain.CellAvailable, open.Status)
	assert.True(t, open.IsAvailable)
	assert.Empty(t, open.ReservationID)
}

func TestCalendarStatusChangeMovesWithRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := newCalendarUC(f)

	res, err := f.create.Execute(ctx, f.bookingInput(), f.client)
	require.NoError(t, err)
	_, err = f.status.Execute(ctx, res.ID, "confirmed", f.admin)
	require.NoError(t, err)

	cells, err := uc.Execute(ctx, "John", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, domain.CellConfirmed, gridCell(t, cells, "10:00").Status)

	_, err = f.status.Execute(ctx, res.ID, "cancelled", f.admin)
	require.NoError(t, err)

	cells, err = uc.Execute(ctx, "John", "2025-03-10")
	require.NoError(t, err)
	freed := gridCell(t, cells, "10:00")
	assert.Equal(t, domain.CellAvailable, freed.Status)
	assert.True(t, freed.IsAvailable)
}

func TestCalendarPastSlotsToday(t *testing.T) {
	f := newFixture(t)
	uc := newCalendarUC(f)

	// testNow is 12:00 UTC, so the morning half of today is gone
	cells, err := uc.Execute(context.Background(), "John", "2025-03-01")
	require.NoError(t, err)

	assert.Equal(t, domain.CellPast, gridCell(t, cells, "09:00").Status)
	assert.Equal(t, domain.CellPast, gridCell(t, cells, "11:30").Status)
	assert.Equal(t, domain.CellAvailable, gridCell(t, cells, "12:00").Status)
	assert.Equal(t, domain.CellAvailable, gridCell(t, cells, "18:30").Status)
}

func TestCalendarBarbersAreIndependent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := newCalendarUC(f)

	_, err := f.create.Execute(ctx, f.bookingInput(), f.client)
	require.NoError(t, err)

	cells, err := uc.Execute(ctx, "Mike", "2025-03-10")
	require.NoError(t, err)
	assert.True(t, gridCell(t, cells, "10:00").IsAvailable)
}

func TestCalendarRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	uc := newCalendarUC(f)

	_, err := uc.Execute(context.Background(), "Bob", "2025-03-10")
	assert.True(t, httperr.IsBusiness(err, "invalid_barber"))

	_, err = uc.Execute(context.Background(), "John", "10-03-2025")
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}
