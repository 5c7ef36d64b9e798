package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veriframe/vf-pipeline/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health and metrics endpoints (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		// Asset endpoints (owner access)
		v1.POST("/assets", middleware.JWTAuth(authCfg), handler.RegisterAsset)
		v1.GET("/assets", middleware.JWTAuth(authCfg), handler.ListAssets)
		v1.GET("/assets/:asset_id", middleware.JWTAuth(authCfg), handler.GetAsset)
		v1.GET("/assets/:asset_id/similar", middleware.JWTAuth(authCfg), handler.ListSimilarAssets)
		v1.POST("/assets/:asset_id/mint", middleware.JWTAuth(authCfg), handler.RequestMint)

		// Hashing subsystem callback (requires API key authentication only)
		v1.POST("/assets/:asset_id/hash", middleware.APIKeyAuth(authCfg), handler.RecordHashResult)

		// User profile
		v1.PUT("/users/me", middleware.JWTAuth(authCfg), handler.UpsertUser)

		// Subscriptions; confirmation is open, the token is the credential
		v1.POST("/subscriptions", middleware.JWTAuth(authCfg), handler.Subscribe)
		v1.GET("/subscriptions/confirm", handler.ConfirmSubscription)
		v1.DELETE("/subscriptions/:asset_id", middleware.JWTAuth(authCfg), handler.Unsubscribe)
	}
}
