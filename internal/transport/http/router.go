package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"blaizn/internal/infrastructure/security"
	"blaizn/internal/middleware"
)

func NewRouter(authHandler *AuthHandler, trackerHandler *TrackerHandler, tokens *security.TokenManager, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "https://blaizn.app", "https://www.blaizn.app"}
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", limiter.Limit("register", 10, 1*time.Minute), authHandler.Register)
			auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
		}

		session := api.Group("")
		session.Use(middleware.AuthMiddleware(tokens))
		{
			session.POST("/auth/logout", authHandler.Logout)
			session.GET("/me", authHandler.Me)
			session.POST("/onboarding", trackerHandler.CompleteOnboarding)
			session.GET("/tasks/today", trackerHandler.TodayTasks)
			session.POST("/tasks/:id/toggle", trackerHandler.ToggleTask)
			session.GET("/suggestion", trackerHandler.Suggestion)
			session.GET("/dashboard", trackerHandler.Dashboard)
		}
	}

	return r
}
