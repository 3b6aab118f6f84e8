package productcontroller

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

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Image       string  `json:"image" binding:"omitempty,max=255"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Description string  `json:"description" binding:"omitempty"`
	Weight      float64 `json:"weight" binding:"omitempty,min=0"`
	Quantity    int     `json:"quantity" binding:"omitempty,min=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}

type UpdateProductInput struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Image       *string  `json:"image" binding:"omitempty,max=255"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Description *string  `json:"description"`
	Weight      *float64 `json:"weight" binding:"omitempty,min=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,min=0"`
	CategoryID  *uint    `json:"category_id"`
}

var listSpec = common.ListSpec{
	SortColumns:   []string{"product_id", "name", "price", "quantity", "weight", "created_at", "updated_at"},
	DefaultSort:   "created_at",
	DefaultOrder:  "DESC",
	SearchColumns: []string{"name", "description"},
}

// POST /product
// The route admits both roles but creation itself is admin only. The
// in-handler gate stays so the behavior survives route reshuffles.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)

		if role != models.RoleAdmin {
			common.Respond(c, http.StatusForbidden, "Only admin can create products")
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Category not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Product not created", err.Error())
			return
		}

		product := models.Product{
			Name:        input.Name,
			Image:       input.Image,
			Price:       input.Price,
			Description: input.Description,
			Weight:      input.Weight,
			Quantity:    input.Quantity,
			CategoryID:  category.ID,
			UserID:      userID,
		}
		if err := db.Create(&product).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Product not created", err.Error())
			return
		}

		product.Category = &category
		common.Respond(c, http.StatusCreated, "Product created successfully", product)
	}
}

// GET /product
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := common.ParseListParams(c, listSpec)

		query := db.Model(&models.Product{}).Preload("Category").Preload("User")

		products := []models.Product{}
		result, err := common.Paginate(query, listSpec, params, &products)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch products", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Products fetched successfully", gin.H{
			"data":     products,
			"total":    result.Total,
			"page":     result.Page,
			"lastPage": result.TotalPages,
		})
	}
}

// GET /product/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var product models.Product
		if err := db.Preload("Category").Preload("User").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Product not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch product", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Product fetched successfully", product)
	}
}

// PATCH /product/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Product not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Product not updated", err.Error())
			return
		}

		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					common.Respond(c, http.StatusNotFound, "Category not found")
					return
				}
				common.Respond(c, http.StatusInternalServerError, "Product not updated", err.Error())
				return
			}
			product.CategoryID = category.ID
			product.Category = &category
		}
		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Weight != nil {
			product.Weight = *input.Weight
		}
		if input.Quantity != nil {
			product.Quantity = *input.Quantity
		}

		if err := db.Omit(clause.Associations).Save(&product).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Product not updated", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Product updated successfully", product)
	}
}

// DELETE /product/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to delete product", result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			common.Respond(c, http.StatusNotFound, "Product not found or already deleted")
			return
		}

		common.Respond(c, http.StatusOK, "Product deleted successfully")
	}
}
