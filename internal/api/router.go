package api

import (
	"github.com/Conceptual-Machines/vibe-chords/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/vibe-chords/internal/api/middleware"
	"github.com/Conceptual-Machines/vibe-chords/internal/metrics"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/Conceptual-Machines/vibe-chords/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies the router wires into handlers. DB and CloudWatch may be nil.
type Dependencies struct {
	DB         *gorm.DB
	Resolver   *progression.Resolver
	CloudWatch *metrics.Client
	Version    string
}

func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(deps.CloudWatch))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	cat := deps.Resolver.Catalogue()
	history := services.NewHistoryService(deps.DB)

	// Health check
	healthHandler := handlers.NewHealthHandler(deps.DB, cat)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(deps.Version, cat, history.Enabled())
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	{
		catalogueHandler := handlers.NewCatalogueHandler(cat)
		v1.GET("/moods", catalogueHandler.ListMoods)
		v1.GET("/moods/:id", catalogueHandler.GetMood)
		v1.GET("/keys", catalogueHandler.ListKeys)
		v1.GET("/fields/:key", catalogueHandler.GetField)

		progressionHandler := handlers.NewProgressionHandler(deps.Resolver, history, deps.CloudWatch)
		v1.POST("/progressions", progressionHandler.Generate)
		v1.POST("/progressions/render", progressionHandler.Render)

		historyHandler := handlers.NewHistoryHandler(history)
		v1.GET("/history", historyHandler.List)
	}

	return router
}
