package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (rate limited, no JWT)
	SetupAuthRoutes(r, db)

	// Account management
	SetupUserRoutes(r, db)

	// Catalog (categories + products)
	SetupCatalogRoutes(r, db)

	// Shopping flow (cart, checkout, orders)
	SetupShopRoutes(r, db)

	// Site content (testimonials, sliders, contact messages)
	SetupContentRoutes(r, db)
}
