package testimonialControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/bakery-api/common"
	"github.com/junaidrashid-git/bakery-api/middleware"
	"github.com/junaidrashid-git/bakery-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateTestimonialInput struct {
	Description string `json:"description" binding:"required"`
	PersonImage string `json:"person_image" binding:"omitempty,max=255"`
	PersonName  string `json:"person_name" binding:"required,max=100"`
	Review      int    `json:"review" binding:"required,min=1,max=5"`
}

type UpdateTestimonialInput struct {
	Description *string `json:"description"`
	PersonImage *string `json:"person_image" binding:"omitempty,max=255"`
	PersonName  *string `json:"person_name" binding:"omitempty,max=100"`
	Review      *int    `json:"review" binding:"omitempty,min=1,max=5"`
}

var listSpec = common.ListSpec{
	SortColumns:   []string{"id", "person_name", "review", "created_at", "updated_at"},
	DefaultSort:   "id",
	DefaultOrder:  "ASC",
	SearchColumns: []string{"person_name", "description"},
}

// POST /testimonial
// The create response is flattened with a bare userId, unlike the other
// resources. Frontend already consumes this shape.
func CreateTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.Principal(c)

		var input CreateTestimonialInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		testimonial := models.Testimonial{
			Description: input.Description,
			PersonImage: input.PersonImage,
			PersonName:  input.PersonName,
			Review:      input.Review,
			UserID:      userID,
		}
		if err := db.Create(&testimonial).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Testimonial not created", err.Error())
			return
		}

		common.Respond(c, http.StatusCreated, "Testimonial created successfully", gin.H{
			"id":           testimonial.ID,
			"description":  testimonial.Description,
			"person_image": testimonial.PersonImage,
			"person_name":  testimonial.PersonName,
			"review":       testimonial.Review,
			"userId":       testimonial.UserID,
			"created_at":   testimonial.CreatedAt,
			"updated_at":   testimonial.UpdatedAt,
		})
	}
}

// GET /testimonial
func GetTestimonials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := common.ParseListParams(c, listSpec)

		query := db.Model(&models.Testimonial{}).Preload("User")

		testimonials := []models.Testimonial{}
		result, err := common.Paginate(query, listSpec, params, &testimonials)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch testimonials", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Testimonials fetched successfully", gin.H{
			"data":       testimonials,
			"total":      result.Total,
			"page":       result.Page,
			"limit":      result.Limit,
			"totalPages": result.TotalPages,
		})
	}
}

// GET /testimonial/:id
func GetTestimonialByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var testimonial models.Testimonial
		if err := db.Preload("User").First(&testimonial, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Testimonial not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch testimonial", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Testimonial fetched successfully", testimonial)
	}
}

// PATCH /testimonial/:id
func UpdateTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var input UpdateTestimonialInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var testimonial models.Testimonial
		if err := db.First(&testimonial, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Testimonial not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Testimonial not updated", err.Error())
			return
		}

		if input.Description != nil {
			testimonial.Description = *input.Description
		}
		if input.PersonImage != nil {
			testimonial.PersonImage = *input.PersonImage
		}
		if input.PersonName != nil {
			testimonial.PersonName = *input.PersonName
		}
		if input.Review != nil {
			testimonial.Review = *input.Review
		}

		if err := db.Omit(clause.Associations).Save(&testimonial).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Testimonial not updated", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Testimonial updated successfully", testimonial)
	}
}

// DELETE /testimonial/:id
func DeleteTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		result := db.Delete(&models.Testimonial{}, id)
		if result.Error != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to delete testimonial", result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			common.Respond(c, http.StatusNotFound, "Testimonial not found or already deleted")
			return
		}

		common.Respond(c, http.StatusOK, "Testimonial deleted successfully")
	}
}
