package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/junaidrashid-git/bakery-api/controllers/user"
	"github.com/junaidrashid-git/bakery-api/middleware"
	"github.com/junaidrashid-git/bakery-api/models"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the "/user/*" endpoints. Reads and updates by id
// are open to any authenticated caller; listing and deletion are admin only.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth)
	{
		userGroup.GET("/", middleware.RequireRoles(models.RoleAdmin), userControllers.GetUsers(db)) // GET /user
		userGroup.GET("/:id", userControllers.GetUserByID(db))                                      // GET /user/:id
		userGroup.PATCH("/:id", userControllers.UpdateUser(db))                                     // PATCH /user/:id
		userGroup.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), userControllers.DeleteUser(db))
	}
}
