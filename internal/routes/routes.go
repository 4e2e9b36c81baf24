package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/jihedaidrive/razor-spark-book/internal/audit"
	"github.com/jihedaidrive/razor-spark-book/internal/cache"
	"github.com/jihedaidrive/razor-spark-book/internal/config"
	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	"github.com/jihedaidrive/razor-spark-book/internal/handlers"
	infraRepo "github.com/jihedaidrive/razor-spark-book/internal/infra/repository"
	"github.com/jihedaidrive/razor-spark-book/internal/middleware"
	ucReservation "github.com/jihedaidrive/razor-spark-book/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var dayCache *cache.DayCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		dayCache = cache.NewDayCache(rdb, 15*time.Second)
	}

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		dayCache,
		cfg.ShopTimezone,
	)

	listReservationsUC := ucReservation.NewListReservations(
		reservationRepo,
	)

	updateStatusUC := ucReservation.NewUpdateReservationStatus(
		reservationRepo,
		auditDispatcher,
		dayCache,
		cfg.ShopTimezone,
	)

	deleteReservationUC := ucReservation.NewDeleteReservation(
		reservationRepo,
		auditDispatcher,
		dayCache,
	)

	calendarUC := ucReservation.NewGetCalendar(
		reservationRepo,
		dayCache,
		cfg.ShopTimezone,
		cfg.DayStart,
		cfg.DayEnd,
		cfg.SlotMinutes,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		listReservationsUC,
		updateStatusUC,
		deleteReservationUC,
	)

	calendarHandler := handlers.NewCalendarHandler(calendarUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", func(c *gin.Context) {
				c.JSON(200, gin.H{"barbers": domain.Barbers})
			})
			publicAPI.GET("/services", serviceHandler.List)
			publicAPI.GET("/calendar", calendarHandler.Day)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/reservations", reservationHandler.List)
			secured.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.DELETE("/reservations/:id", reservationHandler.Delete)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
