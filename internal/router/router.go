package router

import (
	"github.com/gin-gonic/gin"

	"taxwise/internal/config"
	"taxwise/internal/handler"
	"taxwise/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	ingestionH *handler.IngestionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	// Document analysis routes
	documents := v1.Group("/documents")
	documents.POST("/analyze", ingestionH.Analyze)
	documents.GET("/last/tax", ingestionH.LastTax)
	documents.GET("/last/credit", ingestionH.LastCredit)

	return r
}
