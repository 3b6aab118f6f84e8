package sliderControllers

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

type CreateSliderInput struct {
	ImageURL    string `json:"imageUrl" binding:"required,max=255"`
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty"`
}

type UpdateSliderInput struct {
	ImageURL    *string `json:"imageUrl" binding:"omitempty,max=255"`
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

var listSpec = common.ListSpec{
	SortColumns:   []string{"id", "title", "created_at", "updated_at"},
	DefaultSort:   "id",
	DefaultOrder:  "ASC",
	SearchColumns: []string{"title", "description"},
}

// POST /slider
func CreateSlider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.Principal(c)

		var input CreateSliderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "User not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Slider not created", err.Error())
			return
		}

		slider := models.Slider{
			ImageURL:    input.ImageURL,
			Title:       input.Title,
			Description: input.Description,
			UserID:      user.ID,
		}
		if err := db.Create(&slider).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Slider not created", err.Error())
			return
		}

		common.Respond(c, http.StatusCreated, "Slider created successfully", slider)
	}
}

// GET /slider
func GetSliders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := common.ParseListParams(c, listSpec)

		query := db.Model(&models.Slider{})

		sliders := []models.Slider{}
		result, err := common.Paginate(query, listSpec, params, &sliders)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch sliders", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Sliders fetched successfully", gin.H{
			"data":       sliders,
			"total":      result.Total,
			"page":       result.Page,
			"limit":      result.Limit,
			"totalPages": result.TotalPages,
		})
	}
}

// GET /slider/:id
func GetSliderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var slider models.Slider
		if err := db.First(&slider, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Slider not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch slider", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Slider fetched successfully", slider)
	}
}

// PATCH /slider/:id
func UpdateSlider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var input UpdateSliderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var slider models.Slider
		if err := db.First(&slider, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Slider not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Slider not updated", err.Error())
			return
		}

		if input.ImageURL != nil {
			slider.ImageURL = *input.ImageURL
		}
		if input.Title != nil {
			slider.Title = *input.Title
		}
		if input.Description != nil {
			slider.Description = *input.Description
		}

		if err := db.Omit(clause.Associations).Save(&slider).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Slider not updated", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Slider updated successfully", slider)
	}
}

// DELETE /slider/:id
func DeleteSlider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		result := db.Delete(&models.Slider{}, id)
		if result.Error != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to delete slider", result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			common.Respond(c, http.StatusNotFound, "Slider not found or already deleted")
			return
		}

		common.Respond(c, http.StatusOK, "Slider deleted successfully")
	}
}
