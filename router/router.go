package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gruhahomes/gruha-backend/config"
	"github.com/gruhahomes/gruha-backend/handlers"
	"github.com/gruhahomes/gruha-backend/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config            *config.Config
	ContactHandler    *handlers.ContactHandler
	NewsletterHandler *handlers.NewsletterHandler
	HealthHandler     *handlers.HealthHandler
	Logger            *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API Group
	api := r.Group("/api")
	{
		api.GET("/", handlers.Root)

		api.POST("/contact", deps.ContactHandler.CreateContact)
		api.GET("/contacts", deps.ContactHandler.ListContacts)

		api.POST("/newsletter", deps.NewsletterHandler.Subscribe)
		api.GET("/newsletter", deps.NewsletterHandler.ListSubscriptions)
	}

	return r
}
