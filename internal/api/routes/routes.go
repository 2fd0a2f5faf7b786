package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/riskgauge/backend/internal/api/handlers"
	"github.com/riskgauge/backend/internal/config"
	"github.com/riskgauge/backend/internal/logger"
	"github.com/riskgauge/backend/internal/metrics"
	"github.com/riskgauge/backend/internal/services"
	"github.com/riskgauge/backend/internal/store"
)

// Register migrates the risks table and wires up all routes.
func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) error {
	riskStore := store.NewGormRiskStore(db)
	if err := riskStore.Migrate(); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(registry)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	router.GET("/", handlers.Home)
	router.GET("/api/v1/health", handlers.NewHealthHandler(db))

	riskHandler := handlers.NewRiskHandler(services.NewRiskService(riskStore, cfg.StrictLevelFilter))
	router.POST("/assess-risk", riskHandler.Assess)
	router.GET("/risks", riskHandler.List)

	logger.Log().WithField("strict_level_filter", cfg.StrictLevelFilter).Info("routes registered")
	return nil
}
