package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
	"github.com/jihedaidrive/razor-spark-book/internal/models"
)

func seedTwoClients(t *testing.T, f *fixture) (mine, theirs *models.Reservation) {
	t.Helper()
	ctx := context.Background()

	mine, err := f.create.Execute(ctx, f.bookingInput(), f.client)
	require.NoError(t, err)

	in := f.bookingInput()
	in.StartTime = "11:00"
	theirs, err = f.create.Execute(ctx, in, f.otherClient)
	require.NoError(t, err)

	return mine, theirs
}

func TestListScopesClientsToOwnRecords(t *testing.T) {
	f := newFixture(t)
	mine, theirs := seedTwoClients(t, f)

	// an unscoped request from a client only yields their own records
	got, err := f.list.Execute(context.Background(), domain.ListFilter{}, f.client)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)

	// explicitly asking for someone else's records doesn't help
	got, err = f.list.Execute(context.Background(), domain.ListFilter{ClientID: theirs.ClientID}, f.client)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestListAdminSeesEverything(t *testing.T) {
	f := newFixture(t)
	seedTwoClients(t, f)

	got, err := f.list.Execute(context.Background(), domain.ListFilter{}, f.admin)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = f.list.Execute(context.Background(), domain.ListFilter{ClientID: "user-2"}, f.admin)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "user-2", got[0].ClientID)
}

func TestListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedTwoClients(t, f)

	in := f.bookingInput()
	in.BarberName = "Alex"
	in.Date = "2025-03-11"
	res, err := f.create.Execute(ctx, in, f.client)
	require.NoError(t, err)
	_, err = f.status.Execute(ctx, res.ID, "confirmed", f.admin)
	require.NoError(t, err)

	got, err := f.list.Execute(ctx, domain.ListFilter{BarberName: "Alex"}, f.admin)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = f.list.Execute(ctx, domain.ListFilter{Status: "confirmed"}, f.admin)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, res.ID, got[0].ID)

	got, err = f.list.Execute(ctx, domain.ListFilter{Date: "2025-03-10"}, f.admin)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListRequiresIdentity(t *testing.T) {
	f := newFixture(t)

	_, err := f.list.Execute(context.Background(), domain.ListFilter{}, domain.Actor{})
	assert.True(t, httperr.IsBusiness(err, "unauthenticated"))
}

func TestDeleteIsAdminOnly(t *testing.T) {
	f := newFixture(t)
	mine, _ := seedTwoClients(t, f)

	err := f.delete.Execute(context.Background(), mine.ID, f.client)
	assert.True(t, httperr.IsBusiness(err, "not_authorized"), "owners cannot hard-delete")

	err = f.delete.Execute(context.Background(), mine.ID, f.admin)
	require.NoError(t, err)

	_, err = f.repo.GetReservationByID(context.Background(), mine.ID)
	assert.Error(t, err, "record is gone, not soft-deleted")

	// snapshot rows are removed with the record
	var count int64
	require.NoError(t, f.db.Model(&models.ReservationService{}).
		Where("reservation_id = ?", mine.ID).
		Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.delete.Execute(context.Background(), "missing-id", f.admin)
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))
}

func TestDeleteFreesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.create.Execute(ctx, f.bookingInput(), f.client)
	require.NoError(t, err)

	require.NoError(t, f.delete.Execute(ctx, res.ID, f.admin))

	_, err = f.create.Execute(ctx, f.bookingInput(), f.otherClient)
	assert.NoError(t, err)
}
