// api/routes/router.go
package routes

import (
	"log"
	"net/http"
	"time"

	"seatwise/internal/availability"
	"seatwise/internal/editor"
	"seatwise/internal/importer"
	"seatwise/internal/layouts"
	"seatwise/internal/notifications"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/database"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config        *config.Config
	db            *database.DB
	producer      notifications.LayoutEventProducer
	layoutService layouts.Service // For dependency injection
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.LayoutEventProducer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Setup layout routes (must be before editor/importer routes for dependency injection)
		r.setupLayoutRoutes(api)

		// Setup editor routes
		r.setupEditorRoutes(api)

		// Setup importer routes
		r.setupImporterRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "seatwise-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "seatwise-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupLayoutRoutes configures seating layout management routes
func (r *Router) setupLayoutRoutes(rg *gin.RouterGroup) {
	// Availability overlay comes from the booking service
	availabilityClient := availability.NewClient(r.config.Services.BookingBaseURL, r.config.Services.RequestTimeout)
	availabilityService := availability.NewService(availabilityClient, r.db.GetRedisClient())

	// Initialize layout dependencies
	layoutRepo := layouts.NewRepository(r.db.GetPostgreSQL())
	layoutService := layouts.NewService(layoutRepo, availabilityService, r.producer)
	layoutController := layouts.NewController(layoutService)

	// Store layout service for dependency injection
	r.layoutService = layoutService

	// Setup layout routes
	layouts.SetupLayoutRoutes(rg, layoutController)
}

// setupEditorRoutes configures interactive editor session routes
func (r *Router) setupEditorRoutes(rg *gin.RouterGroup) {
	if r.layoutService == nil {
		log.Println("Warning: layout service not initialized, skipping editor routes")
		return
	}

	manager := editor.NewManager()
	editorController := editor.NewController(manager, r.layoutService)

	editor.SetupEditorRoutes(rg, editorController)
}

// setupImporterRoutes configures chart import and template routes
func (r *Router) setupImporterRoutes(rg *gin.RouterGroup) {
	if r.layoutService == nil {
		log.Println("Warning: layout service not initialized, skipping importer routes")
		return
	}

	detectionClient := importer.NewDetectionClient(r.config.Services.DetectionBaseURL, r.config.Services.AnalyzeTimeout)
	templateClient := importer.NewTemplateClient(r.config.Services.TemplateBaseURL, r.config.Services.RequestTimeout)
	importerService := importer.NewService(detectionClient, templateClient, r.layoutService)
	importerController := importer.NewController(importerService)

	importer.SetupImporterRoutes(rg, importerController)
}
