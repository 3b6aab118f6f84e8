package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/bakery-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:ordertest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Cart{}, &models.Checkout{}, &models.Order{},
	))
	for _, table := range []string{"orders", "checkout", "cart", "product", "category", "user"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
	return db
}

func seedCheckout(t *testing.T, db *gorm.DB) (models.User, models.Checkout) {
	user := models.User{Name: "Buyer", Email: "buyer@example.com", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)

	cart := models.Cart{Quantity: 1, TotalPrice: 10, UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)

	checkout := models.Checkout{
		ShippingAddress: "1 Main St",
		PaymentMethod:   "card",
		UserID:          user.ID,
		CartID:          cart.ID,
	}
	require.NoError(t, db.Create(&checkout).Error)
	return user, checkout
}

func seedProduct(t *testing.T, db *gorm.DB, price float64) models.Product {
	product := models.Product{Name: "Item", Price: price}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestCreateOrderTotals(t *testing.T) {
	db := setupTestDB(t)
	user, checkout := seedCheckout(t, db)

	// the seed cart row has no product, so it contributes nothing
	p1 := seedProduct(t, db, 10)
	p2 := seedProduct(t, db, 5)
	require.NoError(t, db.Create(&models.Cart{Quantity: 2, UserID: user.ID, ProductID: p1.ID}).Error)
	require.NoError(t, db.Create(&models.Cart{Quantity: 1, UserID: user.ID, ProductID: p2.ID}).Error)

	env, err := CreateOrder(db, CreateOrderInput{
		CheckoutID:  checkout.ID,
		Discount:    3,
		DeliveryFee: 2,
	}, user.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, env.Status)

	order, ok := env.Data.(models.Order)
	require.True(t, ok)
	assert.Equal(t, 25.0, order.Subtotal)
	assert.Equal(t, 24.0, order.TotalAmount)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, checkout.ID, order.CheckoutID)
}

func TestCreateOrderZeroQuantityCountsAsOne(t *testing.T) {
	db := setupTestDB(t)
	user, checkout := seedCheckout(t, db)

	// wipe the seed cart so only the zero-quantity row remains
	require.NoError(t, db.Exec("DELETE FROM cart").Error)
	p := seedProduct(t, db, 7)
	require.NoError(t, db.Create(&models.Cart{Quantity: 0, UserID: user.ID, ProductID: p.ID}).Error)

	env, err := CreateOrder(db, CreateOrderInput{CheckoutID: checkout.ID}, user.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, env.Status)

	order := env.Data.(models.Order)
	assert.Equal(t, 7.0, order.Subtotal)
	assert.Equal(t, 7.0, order.TotalAmount)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	user, checkout := seedCheckout(t, db)
	require.NoError(t, db.Exec("DELETE FROM cart").Error)

	env, err := CreateOrder(db, CreateOrderInput{CheckoutID: checkout.ID}, user.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, env.Status)
	assert.Equal(t, "Cart is empty", env.Message)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderMissingCheckout(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedCheckout(t, db)

	env, err := CreateOrder(db, CreateOrderInput{CheckoutID: 9999}, user.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, env.Status)
	assert.Equal(t, "Checkout not found", env.Message)
}

func TestCreateOrderMissingUser(t *testing.T) {
	db := setupTestDB(t)
	_, checkout := seedCheckout(t, db)

	env, err := CreateOrder(db, CreateOrderInput{CheckoutID: checkout.ID}, 9999)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, env.Status)
	assert.Equal(t, "User not found", env.Message)
}

// ordersRouter wires the listing behind a stub auth middleware injecting the
// given principal.
func ordersRouter(db *gorm.DB, userID uint, role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
	})
	r.GET("/order", GetOrders(db))
	return r
}

type orderListResponse struct {
	Data struct {
		Total int64          `json:"total"`
		Page  int            `json:"page"`
		Limit int            `json:"limit"`
		Data  []models.Order `json:"data"`
	} `json:"data"`
}

func listOrders(t *testing.T, r *gin.Engine, query string) orderListResponse {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/order"+query, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp orderListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func seedTwoBuyersWithOrders(t *testing.T, db *gorm.DB) (models.User, models.User) {
	alice := models.User{Name: "Alice Smith", Email: "alice@example.com", Role: models.RoleUser}
	require.NoError(t, db.Create(&alice).Error)
	bob := models.User{Name: "Bob Jones", Email: "bob@example.com", Role: models.RoleUser}
	require.NoError(t, db.Create(&bob).Error)

	require.NoError(t, db.Create(&models.Order{UserID: alice.ID, Subtotal: 10, TotalAmount: 10}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: bob.ID, Subtotal: 5, TotalAmount: 5}).Error)
	return alice, bob
}

func TestGetOrdersScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	alice, bob := seedTwoBuyersWithOrders(t, db)

	resp := listOrders(t, ordersRouter(db, alice.ID, models.RoleUser), "")
	assert.Equal(t, int64(1), resp.Data.Total)
	require.Len(t, resp.Data.Data, 1)
	assert.Equal(t, alice.ID, resp.Data.Data[0].UserID)

	// admins see every order
	resp = listOrders(t, ordersRouter(db, bob.ID, models.RoleAdmin), "")
	assert.Equal(t, int64(2), resp.Data.Total)
	assert.Len(t, resp.Data.Data, 2)
}

func TestGetOrdersSearchByUserName(t *testing.T) {
	db := setupTestDB(t)
	alice, bob := seedTwoBuyersWithOrders(t, db)

	admin := ordersRouter(db, bob.ID, models.RoleAdmin)

	resp := listOrders(t, admin, "?search=Alice")
	assert.Equal(t, int64(1), resp.Data.Total)
	require.Len(t, resp.Data.Data, 1)
	assert.Equal(t, alice.ID, resp.Data.Data[0].UserID)

	resp = listOrders(t, admin, "?search=Jones")
	assert.Equal(t, int64(1), resp.Data.Total)
	require.Len(t, resp.Data.Data, 1)
	assert.Equal(t, bob.ID, resp.Data.Data[0].UserID)

	// owner narrowing still applies when a non-admin searches
	resp = listOrders(t, ordersRouter(db, alice.ID, models.RoleUser), "?search=Jones")
	assert.Equal(t, int64(0), resp.Data.Total)
	assert.Len(t, resp.Data.Data, 0)
}
