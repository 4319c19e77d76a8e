package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/car-service-agent/internal/config"
	dbpkg "github.com/BruksfildServices01/car-service-agent/internal/db"
	"github.com/BruksfildServices01/car-service-agent/internal/logger"
	"github.com/BruksfildServices01/car-service-agent/internal/routes"
	"github.com/BruksfildServices01/car-service-agent/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/car-service-agent/internal/usecase/appointment"
)

func main() {

	cfg := config.Load()

	log := logger.NewWithOptions(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(cfg.LogFormat),
	)

	if !timezone.IsValid(cfg.ServiceTimezone) {
		log.Warn("invalid service timezone, using default",
			"timezone", cfg.ServiceTimezone, "default", timezone.DefaultTimezone)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Error("failed to open database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	registry := routes.NewRegistry(db, cfg, ucAppointment.NewBooking(cfg), log)
	routes.RegisterRoutes(r, db, registry, log)

	log.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
