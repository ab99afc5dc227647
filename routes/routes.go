package routes

import (
	"time"

	"snapfix/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMatchingRoutes registers the matching entry point.
func RegisterMatchingRoutes(r *gin.Engine, mh *handlers.MatchingHandler) {
	api := r.Group("/api/match")
	{
		api.POST("", mh.FindProvidersHandler)
	}
}

// RegisterProviderRoutes registers provider management endpoints.
func RegisterProviderRoutes(r *gin.Engine, ph *handlers.ProviderHandler) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", ph.RegisterProviderHandler)
		api.GET("/id/:id", ph.GetProviderByIDHandler)
		api.PATCH("/status/:id", ph.UpdateProviderStatusHandler)
		api.POST("/complete-job/:id", ph.CompleteJobHandler)
	}
}

// RegisterHealthRoute registers the dependency health snapshot endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, mh *handlers.MatchingHandler, ph *handlers.ProviderHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterMatchingRoutes(r, mh)
	RegisterProviderRoutes(r, ph)
	RegisterHealthRoute(r)
}
