package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jihedaidrive/razor-spark-book/internal/audit"
	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	infraRepo "github.com/jihedaidrive/razor-spark-book/internal/infra/repository"
	"github.com/jihedaidrive/razor-spark-book/internal/models"
)

// testNow is "now" for every use case under test: a fixed instant well
// before the booking dates the tests use.
var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db   *gorm.DB
	repo domain.Repository

	create *CreateReservation
	status *UpdateReservationStatus
	list   *ListReservations
	delete *DeleteReservation

	client      domain.Actor
	otherClient domain.Actor
	admin       domain.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Reservation{},
		&models.ReservationService{},
		&models.AuditLog{},
	))

	users := []models.User{
		{ID: "user-1", Name: "Sami Ben Ali", Email: "sami@example.com", PasswordHash: "x", Phone: "+216 20 111 222", Role: models.RoleClient},
		{ID: "user-2", Name: "Leila Trabelsi", Email: "leila@example.com", PasswordHash: "x", Phone: "+216 20 333 444", Role: models.RoleClient},
		{ID: "admin-1", Name: "Staff", Email: "staff@example.com", PasswordHash: "x", Role: models.RoleAdmin},
	}
	require.NoError(t, db.Create(&users).Error)

	services := []models.Service{
		{ID: "svc-cut", Name: "Haircut", DurationMin: 45, Price: 35, Active: true},
		{ID: "svc-beard", Name: "Beard Trim", DurationMin: 30, Price: 20, Active: true},
		{ID: "svc-retired", Name: "Hot Towel Shave", DurationMin: 30, Price: 25, Active: false},
	}
	require.NoError(t, db.Create(&services).Error)

	repo := infraRepo.NewReservationGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	f := &fixture{
		db:     db,
		repo:   repo,
		create: NewCreateReservation(repo, dispatcher, nil, "UTC"),
		status: NewUpdateReservationStatus(repo, dispatcher, nil, "UTC"),
		list:   NewListReservations(repo),
		delete: NewDeleteReservation(repo, dispatcher, nil),

		client:      domain.Actor{ID: "user-1", Role: models.RoleClient},
		otherClient: domain.Actor{ID: "user-2", Role: models.RoleClient},
		admin:       domain.Actor{ID: "admin-1", Role: models.RoleAdmin},
	}

	f.create.now = func() time.Time { return testNow }
	f.status.now = func() time.Time { return testNow }

	return f
}

func (f *fixture) bookingInput() CreateReservationInput {
	return CreateReservationInput{
		BarberName: "John",
		Date:       "2025-03-10",
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-cut"},
	}
}
