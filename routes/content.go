package routes

import (
	"github.com/gin-gonic/gin"
	contactControllers "github.com/junaidrashid-git/bakery-api/controllers/contact"
	sliderControllers "github.com/junaidrashid-git/bakery-api/controllers/slider"
	testimonialControllers "github.com/junaidrashid-git/bakery-api/controllers/testimonial"
	"github.com/junaidrashid-git/bakery-api/middleware"
	"github.com/junaidrashid-git/bakery-api/models"
	"gorm.io/gorm"
)

// SetupContentRoutes registers the "/testimonial/*", "/slider/*" and
// "/contact/*" endpoints.
func SetupContentRoutes(r *gin.Engine, db *gorm.DB) {
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	testimonialGroup := r.Group("/testimonial")
	testimonialGroup.Use(middleware.RequireAuth)
	{
		testimonialGroup.POST("/", testimonialControllers.CreateTestimonial(db))
		testimonialGroup.GET("/", testimonialControllers.GetTestimonials(db))
		testimonialGroup.GET("/:id", testimonialControllers.GetTestimonialByID(db))
		testimonialGroup.PATCH("/:id", adminOnly, testimonialControllers.UpdateTestimonial(db))
		testimonialGroup.DELETE("/:id", adminOnly, testimonialControllers.DeleteTestimonial(db))
	}

	sliderGroup := r.Group("/slider")
	sliderGroup.Use(middleware.RequireAuth)
	{
		sliderGroup.POST("/", adminOnly, sliderControllers.CreateSlider(db))
		sliderGroup.POST("/upload", adminOnly, sliderControllers.UploadSliderImage())
		sliderGroup.GET("/", sliderControllers.GetSliders(db))
		sliderGroup.GET("/:id", sliderControllers.GetSliderByID(db))
		sliderGroup.PATCH("/:id", adminOnly, sliderControllers.UpdateSlider(db))
		sliderGroup.DELETE("/:id", adminOnly, sliderControllers.DeleteSlider(db))
	}

	contactGroup := r.Group("/contact")
	contactGroup.Use(middleware.RequireAuth)
	{
		contactGroup.POST("/", contactControllers.CreateContact(db))
		contactGroup.GET("/", adminOnly, contactControllers.GetContacts(db))
		contactGroup.GET("/:id", adminOnly, contactControllers.GetContactByID(db))
		contactGroup.PATCH("/:id", adminOnly, contactControllers.UpdateContact(db))
		contactGroup.DELETE("/:id", adminOnly, contactControllers.DeleteContact(db))
	}
}
