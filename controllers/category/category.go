package categoryControllers

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

type CreateCategoryInput struct {
	CategoryName string `json:"category_name" binding:"required"`
}

type UpdateCategoryInput struct {
	CategoryName *string `json:"category_name"`
}

var listSpec = common.ListSpec{
	SortColumns:   []string{"category_id", "category_name", "created_at", "updated_at"},
	DefaultSort:   "category_id",
	DefaultOrder:  "ASC",
	SearchColumns: []string{"category_name"},
}

// POST /category
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.Principal(c)

		var input CreateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		name, err := models.ParseCategoryName(input.CategoryName)
		if err != nil {
			common.Respond(c, http.StatusBadRequest, "Invalid category name")
			return
		}

		category := models.Category{
			CategoryName: string(name),
			UserID:       userID,
		}
		if err := db.Create(&category).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Category not created", err.Error())
			return
		}

		common.Respond(c, http.StatusCreated, "Category created successfully", category)
	}
}

// GET /category
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := common.ParseListParams(c, listSpec)

		query := db.Model(&models.Category{})

		categories := []models.Category{}
		result, err := common.Paginate(query, listSpec, params, &categories)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch categories", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Categories fetched successfully", gin.H{
			"data":       categories,
			"total":      result.Total,
			"page":       result.Page,
			"limit":      result.Limit,
			"totalPages": result.TotalPages,
		})
	}
}

// GET /category/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Category not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch category", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Category fetched successfully", category)
	}
}

// PATCH /category/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var input UpdateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Category not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Category not updated", err.Error())
			return
		}

		if input.CategoryName != nil {
			name, err := models.ParseCategoryName(*input.CategoryName)
			if err != nil {
				common.Respond(c, http.StatusBadRequest, "Invalid category name")
				return
			}
			category.CategoryName = string(name)
		}

		if err := db.Omit(clause.Associations).Save(&category).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Category not updated", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Category updated successfully", category)
	}
}

// DELETE /category/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		result := db.Delete(&models.Category{}, id)
		if result.Error != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to delete category", result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			common.Respond(c, http.StatusNotFound, "Category not found or already deleted")
			return
		}

		common.Respond(c, http.StatusOK, "Category deleted successfully")
	}
}
