package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/frontdesk/internal/audit"
	"github.com/BruksfildServices01/frontdesk/internal/config"
	"github.com/BruksfildServices01/frontdesk/internal/handlers"
	"github.com/BruksfildServices01/frontdesk/internal/infra/kv"
	infraRepo "github.com/BruksfildServices01/frontdesk/internal/infra/repository"
	"github.com/BruksfildServices01/frontdesk/internal/middleware"
	"github.com/BruksfildServices01/frontdesk/internal/rowlock"
	"github.com/BruksfildServices01/frontdesk/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/frontdesk/internal/usecase/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/usecase/dashboard"
	ucPatient "github.com/BruksfildServices01/frontdesk/internal/usecase/patient"
	"github.com/BruksfildServices01/frontdesk/internal/usecase/session"
)

// Infra holds the process-wide singletons the routes share.
type Infra struct {
	DB       *gorm.DB
	KV       kv.Store
	Audit    *audit.Dispatcher
	Archiver ucAppointment.Archiver
	Log      zerolog.Logger
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Disposition", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	return c
}

// NewEngine builds the gin engine. Forwarded client addresses are honored
// only from cfg.TrustedProxies.
func NewEngine(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	return r, nil
}

// RegisterRoutes wires every handler. Background work it starts stops when
// ctx ends.
func RegisterRoutes(ctx context.Context, r *gin.Engine, cfg *config.Config, infra Infra) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(infra.Log),
		middleware.Recovery(infra.Log),
		cors.New(corsConfig(cfg.CORSOrigins)),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(infra.DB)
	patientRepo := infraRepo.NewPatientGormRepository(infra.DB)
	userRepo := infraRepo.NewUserGormRepository(infra.DB)
	auditRepo := infraRepo.NewAuditLogGormRepository(infra.DB)

	locks := rowlock.New(infra.KV, cfg.RowLockTTL, infra.Log)
	clock := timezone.NewClock(cfg.Timezone)
	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	sessions := session.NewManager(userRepo, infra.KV, cfg.JWTSecret, cfg.SessionTTL, infra.Log)
	dash := dashboard.New(appointmentRepo, patientRepo, infra.Log)

	// ======================================================
	// USE CASES
	// ======================================================
	listView := ucAppointment.NewListView(dash)

	appointmentUC := handlers.AppointmentUseCases{
		View:   listView,
		Book:   ucAppointment.NewBookAppointment(appointmentRepo, infra.Audit, infra.Log),
		Toggle: ucAppointment.NewToggleStatus(appointmentRepo, locks, infra.Audit),
		Open:   ucAppointment.NewOpenEdit(appointmentRepo),
		Save:   ucAppointment.NewSaveEdit(appointmentRepo, infra.Audit),
		Delete: ucAppointment.NewDeleteAppointment(appointmentRepo, locks, infra.Audit),
		Clear:  ucAppointment.NewClearAppointments(appointmentRepo, infra.Audit),
		Export: ucAppointment.NewExportAppointments(listView, infra.Archiver, clock, infra.Audit, infra.Log),
	}

	patientUC := handlers.PatientUseCases{
		List:     ucPatient.NewListPatients(patientRepo),
		Register: ucPatient.NewRegisterPatient(patientRepo, infra.Audit),
		Delete:   ucPatient.NewDeletePatient(patientRepo, infra.Audit),
		Clear:    ucPatient.NewClearPatients(patientRepo, infra.Audit, infra.Log),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(sessions, dash)
	dashboardHandler := handlers.NewDashboardHandler(dash)
	patientHandler := handlers.NewPatientHandler(patientUC)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUC, locks)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo)

	// ======================================================
	// PUBLIC
	// ======================================================
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/sign-up", middleware.RateLimit(limiter), authHandler.SignUp)
	auth.POST("/sign-in", middleware.RateLimit(limiter), authHandler.SignIn)
	auth.GET("/session", authHandler.Session)
	auth.POST("/sign-out", authHandler.SignOut)

	// ======================================================
	// PROTECTED
	// ======================================================
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(sessions))

	protected.GET("/dashboard", dashboardHandler.Get)

	protected.GET("/patients", patientHandler.List)
	protected.POST("/patients", patientHandler.Register)
	protected.DELETE("/patients", patientHandler.ClearAll)
	protected.DELETE("/patients/:id", patientHandler.Delete)

	protected.GET("/appointments", appointmentHandler.List)
	protected.POST("/appointments", appointmentHandler.Book)
	protected.DELETE("/appointments", appointmentHandler.ClearAll)
	protected.GET("/appointments/export", appointmentHandler.Export)
	protected.GET("/appointments/:id/edit", appointmentHandler.OpenEdit)
	protected.PATCH("/appointments/:id", appointmentHandler.SaveEdit)
	protected.POST("/appointments/:id/toggle-status", appointmentHandler.ToggleStatus)
	protected.DELETE("/appointments/:id", appointmentHandler.Delete)

	protected.GET("/audit-logs", auditLogsHandler.List)
}
