package checkoutControllers

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

type CreateCheckoutInput struct {
	CartID          uint   `json:"cart_id" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required,max=255"`
	PaymentMethod   string `json:"payment_method" binding:"required,max=50"`
	CardDetails     string `json:"card_details" binding:"omitempty,max=100"`
	OfferCode       string `json:"offer_code" binding:"omitempty,max=50"`
}

type UpdateCheckoutInput struct {
	ShippingAddress *string `json:"shipping_address" binding:"omitempty,max=255"`
	PaymentMethod   *string `json:"payment_method" binding:"omitempty,max=50"`
	CardDetails     *string `json:"card_details" binding:"omitempty,max=100"`
	OfferCode       *string `json:"offer_code" binding:"omitempty,max=50"`
}

var listSpec = common.ListSpec{
	SortColumns:  []string{"checkout_id", "shipping_address", "payment_method", "created_at", "updated_at"},
	DefaultSort:  "checkout_id",
	DefaultOrder: "DESC",
}

// POST /checkout
func CreateCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.Principal(c)

		var input CreateCheckoutInput
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
			common.Respond(c, http.StatusInternalServerError, "Checkout creation failed", err.Error())
			return
		}

		var cart models.Cart
		if err := db.First(&cart, input.CartID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Cart not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Checkout creation failed", err.Error())
			return
		}

		checkout := models.Checkout{
			ShippingAddress: input.ShippingAddress,
			PaymentMethod:   input.PaymentMethod,
			CardDetails:     input.CardDetails,
			OfferCode:       input.OfferCode,
			UserID:          user.ID,
			CartID:          cart.ID,
		}
		if err := db.Create(&checkout).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Checkout creation failed", err.Error())
			return
		}

		checkout.User = &user
		checkout.Cart = &cart
		common.Respond(c, http.StatusCreated, "Checkout created successfully", checkout)
	}
}

// GET /checkout
func GetCheckouts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		params := common.ParseListParams(c, listSpec)

		query := common.OwnerScoped(
			db.Model(&models.Checkout{}).Preload("User").Preload("Cart"),
			role, userID,
		)

		checkouts := []models.Checkout{}
		result, err := common.Paginate(query, listSpec, params, &checkouts)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch checkouts", err.Error())
			return
		}

		// this listing historically omits the limit key
		common.Respond(c, http.StatusOK, "Checkout list fetched", gin.H{
			"data":       checkouts,
			"total":      result.Total,
			"page":       result.Page,
			"totalPages": result.TotalPages,
		})
	}
}

// GET /checkout/:id
func GetCheckoutByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		id, _ := strconv.Atoi(c.Param("id"))

		var checkout models.Checkout
		if err := db.Preload("User").Preload("Cart").First(&checkout, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Checkout not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch checkout", err.Error())
			return
		}

		if !common.CanAccess(role, userID, checkout.UserID) {
			common.Respond(c, http.StatusForbidden, "Access denied")
			return
		}

		common.Respond(c, http.StatusOK, "Checkout fetched", checkout)
	}
}

// PATCH /checkout/:id
func UpdateCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		id, _ := strconv.Atoi(c.Param("id"))

		var input UpdateCheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var checkout models.Checkout
		if err := db.Preload("User").Preload("Cart").First(&checkout, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Checkout not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to update checkout", err.Error())
			return
		}

		if !common.CanAccess(role, userID, checkout.UserID) {
			common.Respond(c, http.StatusForbidden, "Access denied")
			return
		}

		if input.ShippingAddress != nil {
			checkout.ShippingAddress = *input.ShippingAddress
		}
		if input.PaymentMethod != nil {
			checkout.PaymentMethod = *input.PaymentMethod
		}
		if input.CardDetails != nil {
			checkout.CardDetails = *input.CardDetails
		}
		if input.OfferCode != nil {
			checkout.OfferCode = *input.OfferCode
		}

		if err := db.Omit(clause.Associations).Save(&checkout).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to update checkout", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Checkout updated successfully", checkout)
	}
}

// DELETE /checkout/:id
func DeleteCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		id, _ := strconv.Atoi(c.Param("id"))

		var checkout models.Checkout
		if err := db.First(&checkout, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Checkout not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to delete checkout", err.Error())
			return
		}

		if !common.CanAccess(role, userID, checkout.UserID) {
			common.Respond(c, http.StatusForbidden, "Access denied")
			return
		}

		if err := db.Delete(&checkout).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to delete checkout", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Checkout deleted successfully")
	}
}
