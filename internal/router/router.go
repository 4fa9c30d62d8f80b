// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/marketradar/marketradar-backend/internal/config"
	"github.com/marketradar/marketradar-backend/internal/handlers"
	"github.com/marketradar/marketradar-backend/internal/middleware"
	"github.com/marketradar/marketradar-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(db, cfg.Images.URLPrefix)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Generated placeholder images
	r.Static(cfg.Images.URLPrefix, cfg.Images.Dir)

	// Read-only API consumed by the static frontend
	api := r.Group("/api")
	{
		api.GET("/products", catalogHandler.GetProducts)
		api.GET("/best-products", catalogHandler.GetBestProducts)
		api.GET("/predictions", catalogHandler.GetPredictions)
	}

	return r
}
