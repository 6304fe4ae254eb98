package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studio316/booking-api/internal/audit"
	"github.com/studio316/booking-api/internal/config"
	domain "github.com/studio316/booking-api/internal/domain/appointment"
	"github.com/studio316/booking-api/internal/handlers"
	"github.com/studio316/booking-api/internal/metrics"
	"github.com/studio316/booking-api/internal/middleware"
	"github.com/studio316/booking-api/internal/reconcile"
	"github.com/studio316/booking-api/internal/session"
	"github.com/studio316/booking-api/internal/store"
	"github.com/studio316/booking-api/internal/timezone"
	ucAppointment "github.com/studio316/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	st *store.Store,
	cfg *config.Config,
	snapshots *session.Snapshots,
	m *metrics.Metrics,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clock := func() time.Time { return timezone.NowIn(cfg.Timezone) }

	auditLogger := audit.New(st)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	reconciler := reconcile.NewDispatcher(st, clock)

	window := domain.Window{
		Open:        cfg.OpenTime,
		Close:       cfg.CloseTime,
		SlotMinutes: cfg.SlotMinutes,
	}
	source := domain.NewHashSource(cfg.AvailabilitySeed, cfg.AvailabilityRate)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		st,
		source,
		window,
		auditDispatcher,
		reconciler,
		clock,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		st,
		auditDispatcher,
		reconciler,
		clock,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		st,
		auditDispatcher,
		reconciler,
		clock,
	)

	availabilityUC := ucAppointment.NewGetAvailability(st, source, window)

	listMineUC := ucAppointment.NewListUserAppointments(st)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(st)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(st, cfg, snapshots)
	meHandler := handlers.NewMeHandler(st, snapshots)
	barberHandler := handlers.NewBarberHandler(st, availabilityUC)
	serviceHandler := handlers.NewServiceHandler(st)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		listMineUC,
		m,
	)

	adminHandler := handlers.NewAdminHandler(
		st,
		listByDateUC,
		completeUC,
		auditDispatcher,
		clock,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(st)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/services", serviceHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.GET("/barbers/:id/slots", barberHandler.Slots)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.POST("/me/appointments", appointmentHandler.Book)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminRequired())
			{
				admin.GET("/stats", adminHandler.Stats)
				admin.GET("/appointments", adminHandler.ListAppointments)
				admin.PATCH("/appointments/:id/complete", adminHandler.CompleteAppointment)
				admin.PATCH("/barbers/:id/status", adminHandler.UpdateBarberStatus)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
