package controller

import (
	"time"

	"github.com/Scalingo/sclng-top-languages/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter define all routes and middlewares
func SetupRouter(cfg config.Config, apiController APIController) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Content-Type, Content-Length, Accept-Encoding, Host, accept, Origin, Cache-Control, X-Requested-With"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/health", apiController.Health)

	// all routes share the same limiter
	limiter := NewRequestLimiter(cfg.API.MaxRequestsPerMinute)

	api := router.Group("/top-langs")
	{
		api.GET("", RateLimit(limiter, SingleCall), apiController.GetTopLanguages)
		api.GET("/raw", RateLimit(limiter, SingleCall), apiController.GetRawTopLanguages)
		api.GET("/compare", RateLimit(limiter, CallPerUser), apiController.CompareTopLanguages)
	}

	return router
}
