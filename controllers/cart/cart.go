package cartControllers

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

type CreateCartInput struct {
	Quantity   float64 `json:"quantity" binding:"required"`
	TotalPrice float64 `json:"total_price" binding:"required"`
	UserID     uint    `json:"user_id" binding:"required"` // accepted for shape, owner is always the token user
	ProductID  uint    `json:"product_id" binding:"required"`
}

type UpdateCartInput struct {
	Quantity   *float64 `json:"quantity"`
	TotalPrice *float64 `json:"total_price"`
	ProductID  *uint    `json:"product_id"`
}

var listSpec = common.ListSpec{
	SortColumns:  []string{"cart_id", "quantity", "total_price", "created_at", "updated_at"},
	DefaultSort:  "cart_id",
	DefaultOrder: "DESC",
	// search is accepted on the query string but carts have no text columns
}

// POST /cart
func CreateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.Principal(c)

		var input CreateCartInput
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
			common.Respond(c, http.StatusInternalServerError, "Cart not created", err.Error())
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Product not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Cart not created", err.Error())
			return
		}

		cart := models.Cart{
			Quantity:   input.Quantity,
			TotalPrice: input.TotalPrice,
			UserID:     user.ID,
			ProductID:  product.ID,
		}
		if err := db.Create(&cart).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Cart not created", err.Error())
			return
		}

		cart.User = &user
		cart.Product = &product
		common.Respond(c, http.StatusCreated, "Cart is created", cart)
	}
}

// GET /cart
func GetCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		params := common.ParseListParams(c, listSpec)

		query := common.OwnerScoped(
			db.Model(&models.Cart{}).Preload("User").Preload("Product"),
			role, userID,
		)

		carts := []models.Cart{}
		result, err := common.Paginate(query, listSpec, params, &carts)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch carts", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Carts fetched successfully", gin.H{
			"data":       carts,
			"total":      result.Total,
			"page":       result.Page,
			"limit":      result.Limit,
			"totalPages": result.TotalPages,
		})
	}
}

// GET /cart/:id
func GetCartByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		id, _ := strconv.Atoi(c.Param("id"))

		var cart models.Cart
		if err := db.Preload("User").Preload("Product").First(&cart, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Cart not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Cannot fetch cart", err.Error())
			return
		}

		if !common.CanAccess(role, userID, cart.UserID) {
			common.Respond(c, http.StatusForbidden, "Access denied")
			return
		}

		common.Respond(c, http.StatusOK, "Cart fetched", cart)
	}
}

// PATCH /cart/:id
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		id, _ := strconv.Atoi(c.Param("id"))

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Preload("User").Preload("Product").First(&cart, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Cart not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Cart not updated", err.Error())
			return
		}

		if !common.CanAccess(role, userID, cart.UserID) {
			common.Respond(c, http.StatusForbidden, "Access denied")
			return
		}

		if input.ProductID != nil {
			var product models.Product
			if err := db.First(&product, *input.ProductID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					common.Respond(c, http.StatusNotFound, "Product not found")
					return
				}
				common.Respond(c, http.StatusInternalServerError, "Cart not updated", err.Error())
				return
			}
			cart.ProductID = product.ID
			cart.Product = &product
		}
		if input.Quantity != nil {
			cart.Quantity = *input.Quantity
		}
		if input.TotalPrice != nil {
			cart.TotalPrice = *input.TotalPrice
		}

		if err := db.Omit(clause.Associations).Save(&cart).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Cart not updated", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Cart updated", cart)
	}
}

// DELETE /cart/:id
func DeleteCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		id, _ := strconv.Atoi(c.Param("id"))

		var cart models.Cart
		if err := db.First(&cart, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Cart not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Cart not deleted", err.Error())
			return
		}

		if !common.CanAccess(role, userID, cart.UserID) {
			common.Respond(c, http.StatusForbidden, "Access denied")
			return
		}

		if err := db.Delete(&cart).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Cart not deleted", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Cart is deleted")
	}
}
