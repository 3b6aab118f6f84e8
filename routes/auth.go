package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/bakery-api/auth"
	"github.com/junaidrashid-git/bakery-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the "/auth/*" endpoints. These are the only
// unauthenticated routes, so they sit behind the rate limiter.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimiter())
	{
		authGroup.POST("/register", auth.Register(db)) // POST /auth/register
		authGroup.POST("/login", auth.Login(db))       // POST /auth/login

		authGroup.GET("/google/login", auth.GoogleLogin())         // GET /auth/google/login
		authGroup.GET("/google/callback", auth.GoogleCallback(db)) // GET /auth/google/callback
	}
}
