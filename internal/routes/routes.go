package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/car-service-agent/internal/agent"
	"github.com/BruksfildServices01/car-service-agent/internal/config"
	"github.com/BruksfildServices01/car-service-agent/internal/handlers"
	infraRepo "github.com/BruksfildServices01/car-service-agent/internal/infra/repository"
	"github.com/BruksfildServices01/car-service-agent/internal/logger"
	"github.com/BruksfildServices01/car-service-agent/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/car-service-agent/internal/usecase/appointment"
)

// NewRegistry builds the tool registry over db.
func NewRegistry(
	db *gorm.DB,
	cfg *config.Config,
	booking ucAppointment.Booking,
	log logger.LoggerInterface,
) *agent.Registry {

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	return agent.NewRegistry(cfg, agent.UseCases{
		Schedule:     ucAppointment.NewScheduleAppointment(appointmentRepo, booking),
		Update:       ucAppointment.NewUpdateUserData(appointmentRepo, booking),
		Cancel:       ucAppointment.NewCancelAppointment(appointmentRepo, booking),
		DeleteUser:   ucAppointment.NewDeleteUser(appointmentRepo, booking),
		CheckUser:    ucAppointment.NewCheckUserData(appointmentRepo),
		Availability: ucAppointment.NewCheckDatetimeAvailability(booking),
	}, log)
}

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	registry *agent.Registry,
	log logger.LoggerInterface,
) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// HANDLERS
	// ======================================================
	toolHandler := handlers.NewToolHandler(registry)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/tools", toolHandler.List)
		api.POST("/tools/:name", toolHandler.Call)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
