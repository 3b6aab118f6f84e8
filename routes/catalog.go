package routes

import (
	"github.com/gin-gonic/gin"
	categoryControllers "github.com/junaidrashid-git/bakery-api/controllers/category"
	productcontroller "github.com/junaidrashid-git/bakery-api/controllers/product"
	"github.com/junaidrashid-git/bakery-api/middleware"
	"github.com/junaidrashid-git/bakery-api/models"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the "/category/*" and "/product/*" endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	categoryGroup := r.Group("/category")
	categoryGroup.Use(middleware.RequireAuth)
	{
		categoryGroup.POST("/", adminOnly, categoryControllers.CreateCategory(db)) // POST /category
		categoryGroup.GET("/", categoryControllers.GetCategories(db))              // GET /category
		categoryGroup.GET("/:id", adminOnly, categoryControllers.GetCategoryByID(db)) // GET /category/:id
		categoryGroup.PATCH("/:id", adminOnly, categoryControllers.UpdateCategory(db))
		categoryGroup.DELETE("/:id", adminOnly, categoryControllers.DeleteCategory(db))
	}

	productGroup := r.Group("/product")
	productGroup.Use(middleware.RequireAuth)
	{
		// creation admits both roles at the route level, the handler
		// enforces the admin gate itself
		productGroup.POST("/", productcontroller.CreateProduct(db)) // POST /product

		productGroup.GET("/", adminOnly, productcontroller.GetProducts(db))               // GET /product
		productGroup.GET("/export-excel", adminOnly, productcontroller.ExportProductsToExcel(db)) // GET /product/export-excel
		productGroup.GET("/:id", productcontroller.GetProductByID(db))                    // GET /product/:id
		productGroup.PATCH("/:id", adminOnly, productcontroller.UpdateProduct(db))
		productGroup.DELETE("/:id", adminOnly, productcontroller.DeleteProduct(db))
	}
}
