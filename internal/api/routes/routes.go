// Package routes handles the setup and configuration of API routes
package routes

import (
	_ "tzconv/docs" // Import swagger docs
	"tzconv/internal/api/handlers"
	"tzconv/internal/api/middleware"
	"tzconv/internal/auth"
	"tzconv/internal/config"
	"tzconv/internal/history"
	"tzconv/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies holds the services the routes are built from
type Dependencies struct {
	// ConversionLogs is nil when history is disabled
	ConversionLogs repository.ConversionLogRepository
	// AuthService guards the history routes; required when ConversionLogs is set
	AuthService *auth.Service
	Log         logrus.FieldLogger
}

// SetupRoutes configures all API routes and their handlers.
// The returned RateLimiter must be stopped once the router is no longer served.
func SetupRoutes(cfg *config.Config, deps Dependencies) (*gin.Engine, *middleware.RateLimiter) {
	// Create router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(deps.Log))

	// Apply compression middleware globally
	r.Use(middleware.Compression(middleware.DefaultCompressionConfig()))

	// Routes without rate limiting
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Apply rate limiting to all other routes
	limiter := middleware.NewRateLimiter(cfg)
	r.Use(limiter.Middleware())

	// Conversions are only recorded when a history store is configured
	var (
		recorder history.Recorder = history.NopRecorder{}
		pinger   handlers.Pinger
	)
	if deps.ConversionLogs != nil {
		recorder = history.NewRepositoryRecorder(deps.ConversionLogs)
		pinger = deps.ConversionLogs
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(pinger)
	zoneHandler := handlers.NewZoneHandler()
	convertHandler := handlers.NewConvertHandler(cfg.Zones, recorder, deps.Log)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Health check (no authentication required)
		v1.GET("/health", healthHandler.Health)

		// Zone routes
		zones := v1.Group("/zones")
		{
			zones.GET("", zoneHandler.ListZones)
			zones.GET("/:name", zoneHandler.GetZone)
		}

		// Conversion routes
		v1.GET("/convert", convertHandler.ConvertQuery)
		v1.POST("/convert", convertHandler.ConvertJSON)

		// History routes (admin only)
		if deps.ConversionLogs != nil {
			authMiddleware := middleware.NewAuthMiddleware(deps.AuthService)
			conversionLogHandler := handlers.NewConversionLogHandler(deps.ConversionLogs)

			conversions := v1.Group("/conversions")
			conversions.Use(authMiddleware.AuthRequired(), authMiddleware.AdminRequired())
			{
				conversions.GET("", conversionLogHandler.ListConversions)
				conversions.GET("/:id", conversionLogHandler.GetConversion)
			}
		}
	}

	return r, limiter
}
