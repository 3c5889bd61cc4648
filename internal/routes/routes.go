package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/studiobarber49/agendamento-api/internal/audit"
	"github.com/studiobarber49/agendamento-api/internal/catalog"
	"github.com/studiobarber49/agendamento-api/internal/config"
	domain "github.com/studiobarber49/agendamento-api/internal/domain/booking"
	"github.com/studiobarber49/agendamento-api/internal/feed"
	"github.com/studiobarber49/agendamento-api/internal/handlers"
	infraRepo "github.com/studiobarber49/agendamento-api/internal/infra/repository"
	"github.com/studiobarber49/agendamento-api/internal/infra/storage"
	"github.com/studiobarber49/agendamento-api/internal/middleware"
	"github.com/studiobarber49/agendamento-api/internal/store"
	ucBooking "github.com/studiobarber49/agendamento-api/internal/usecase/booking"
	ucRoster "github.com/studiobarber49/agendamento-api/internal/usecase/roster"

	supa "github.com/supabase-community/supabase-go"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	cat := catalog.Default()
	hours := domain.DefaultHours()

	var changeFeed *feed.Feed
	if rdb != nil {
		changeFeed = feed.New(rdb, log)
	}

	appointmentStore := feed.WrapStore(newAppointmentStore(db, cfg, log), changeFeed)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	resolver := ucBooking.NewResolver(hours, appointmentStore)

	submitter := ucBooking.NewSubmitter(
		cat,
		domain.NewValidator(cat, hours),
		resolver,
		appointmentStore,
		auditDispatcher,
		log,
	)

	roster := ucRoster.New(appointmentStore, cat, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	bookingHandler := handlers.NewBookingHandler(db, cat, hours, resolver, submitter)
	adminHandler := handlers.NewAdminHandler(roster, changeFeed)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	serviceImageHandler := handlers.NewServiceImageHandler(db, cat, uploader)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/services", bookingHandler.ListServices)
		api.GET("/business-hours", bookingHandler.GetBusinessHours)
		api.GET("/availability", bookingHandler.Availability)
		api.POST("/appointments", bookingHandler.CreateAppointment)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (painel)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/appointments", adminHandler.List)
			admin.PATCH("/appointments/:id", adminHandler.Update)
			admin.DELETE("/appointments/:id", adminHandler.Delete)
			admin.GET("/events", adminHandler.Events)

			admin.POST("/services/:id/image", serviceImageHandler.Upload)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

// newAppointmentStore escolhe o driver de persistência dos agendamentos.
// O resto do app (admin, audit, imagens) sempre usa o Postgres local.
func newAppointmentStore(db *gorm.DB, cfg *config.Config, log *zap.Logger) store.Store {
	if cfg.StoreDriver == "supabase" && cfg.SupabaseURL != "" {
		client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)
		if err == nil {
			log.Info("appointment store: supabase")
			return infraRepo.NewAppointmentSupabaseRepository(client)
		}
		log.Error("failed to create supabase client, falling back to postgres", zap.Error(err))
	}

	return infraRepo.NewAppointmentGormRepository(db)
}
