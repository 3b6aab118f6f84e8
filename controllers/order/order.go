package orderControllers

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

type CreateOrderInput struct {
	CheckoutID  uint    `json:"checkout_id" binding:"required"`
	Subtotal    float64 `json:"subtotal"`     // ignored, recomputed server-side
	Discount    float64 `json:"discount" binding:"omitempty,min=0"`
	DeliveryFee float64 `json:"delivery_fee" binding:"omitempty,min=0"`
	TotalAmount float64 `json:"total_amount"` // ignored, recomputed server-side
}

type UpdateOrderInput struct {
	CheckoutID  *uint    `json:"checkout_id"`
	Subtotal    *float64 `json:"subtotal" binding:"omitempty,min=0"`
	Discount    *float64 `json:"discount" binding:"omitempty,min=0"`
	DeliveryFee *float64 `json:"delivery_fee" binding:"omitempty,min=0"`
	TotalAmount *float64 `json:"total_amount" binding:"omitempty,min=0"`
}

// CreateOrder derives the order amounts from the acting user's cart rows.
// Note: it intentionally sums every cart row the user owns, not just the
// cart referenced by the checkout, matching the long-standing behavior the
// storefront depends on.
func CreateOrder(db *gorm.DB, input CreateOrderInput, userID uint) (common.Envelope, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return common.NewEnvelope(http.StatusNotFound, "User not found"), nil
		}
		return common.Envelope{}, err
	}

	var checkout models.Checkout
	if err := db.First(&checkout, input.CheckoutID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return common.NewEnvelope(http.StatusNotFound, "Checkout not found"), nil
		}
		return common.Envelope{}, err
	}

	var cartItems []models.Cart
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		return common.Envelope{}, err
	}
	if len(cartItems) == 0 {
		return common.NewEnvelope(http.StatusNotFound, "Cart is empty"), nil
	}

	var subtotal float64
	for _, item := range cartItems {
		var price float64
		if item.Product != nil {
			price = item.Product.Price
		}
		qty := item.Quantity
		if qty == 0 {
			qty = 1
		}
		subtotal += price * qty
	}

	order := models.Order{
		UserID:      user.ID,
		CheckoutID:  checkout.ID,
		Subtotal:    subtotal,
		Discount:    input.Discount,
		DeliveryFee: input.DeliveryFee,
		TotalAmount: subtotal - input.Discount + input.DeliveryFee,
	}
	if err := db.Create(&order).Error; err != nil {
		return common.Envelope{}, err
	}

	order.User = &user
	order.Checkout = &checkout
	return common.NewEnvelope(http.StatusCreated, "Order created successfully", order), nil
}

// POST /order
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.Principal(c)

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		env, err := CreateOrder(db, input, userID)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Order not created", err.Error())
			return
		}

		if env.Status == http.StatusCreated {
			if order, ok := env.Data.(models.Order); ok {
				BroadcastNewOrder(order)
			}
		}
		common.Send(c, env)
	}
}

// GET /order?page=&limit=&search=&sort=
// This listing predates the shared query engine: it only sorts by creation
// time and searches on the owning user's name.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit < 1 {
			limit = 10
		}
		sort := c.DefaultQuery("sort", "DESC")
		if sort != "ASC" && sort != "DESC" {
			sort = "DESC"
		}
		search := c.Query("search")

		query := db.Model(&models.Order{}).Preload("User").Preload("Checkout")
		if search != "" {
			query = query.
				Joins(`LEFT JOIN "user" ON "user".user_id = orders.user_id`).
				Where(`"user".name LIKE ?`, "%"+search+"%")
		}
		if role != models.RoleAdmin {
			query = query.Where("orders.user_id = ?", userID)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch orders", err.Error())
			return
		}

		orders := []models.Order{}
		if err := query.
			Order("orders.created_at " + sort).
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&orders).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch orders", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Orders fetched successfully", gin.H{
			"total": total,
			"page":  page,
			"limit": limit,
			"data":  orders,
		})
	}
}

// GET /order/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		id, _ := strconv.Atoi(c.Param("id"))

		var order models.Order
		if err := db.Preload("User").Preload("Checkout").First(&order, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Order not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch order", err.Error())
			return
		}

		if !common.CanAccess(role, userID, order.UserID) {
			common.Respond(c, http.StatusForbidden, "Access denied")
			return
		}

		common.Respond(c, http.StatusOK, "Order fetched successfully", order)
	}
}

// PATCH /order/:id
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		id, _ := strconv.Atoi(c.Param("id"))

		var input UpdateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("User").First(&order, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Order not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Order not updated", err.Error())
			return
		}

		if !common.CanAccess(role, userID, order.UserID) {
			common.Respond(c, http.StatusForbidden, "Access denied")
			return
		}

		if input.CheckoutID != nil {
			var checkout models.Checkout
			if err := db.First(&checkout, *input.CheckoutID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					common.Respond(c, http.StatusNotFound, "Checkout not found")
					return
				}
				common.Respond(c, http.StatusInternalServerError, "Order not updated", err.Error())
				return
			}
			order.CheckoutID = checkout.ID
		}
		if input.Subtotal != nil {
			order.Subtotal = *input.Subtotal
		}
		if input.Discount != nil {
			order.Discount = *input.Discount
		}
		if input.DeliveryFee != nil {
			order.DeliveryFee = *input.DeliveryFee
		}
		if input.TotalAmount != nil {
			order.TotalAmount = *input.TotalAmount
		}

		if err := db.Omit(clause.Associations).Save(&order).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Order not updated", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Order updated successfully", order)
	}
}

// DELETE /order/:id
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role := middleware.Principal(c)
		id, _ := strconv.Atoi(c.Param("id"))

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Order not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to delete order", err.Error())
			return
		}

		if !common.CanAccess(role, userID, order.UserID) {
			common.Respond(c, http.StatusForbidden, "Access denied")
			return
		}

		if err := db.Delete(&order).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to delete order", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Order deleted successfully")
	}
}
