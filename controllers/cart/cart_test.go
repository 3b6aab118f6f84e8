package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
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
	db, err := gorm.Open(sqlite.Open("file:carttest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.Cart{}))
	for _, table := range []string{"cart", "product", "category", "user"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
	return db
}

// setupRouter wires the cart handlers behind a stub auth middleware that
// injects the given principal.
func setupRouter(db *gorm.DB, userID uint, role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
	})
	r.POST("/cart", CreateCart(db))
	r.GET("/cart", GetCarts(db))
	r.GET("/cart/:id", GetCartByID(db))
	r.PATCH("/cart/:id", UpdateCart(db))
	r.DELETE("/cart/:id", DeleteCart(db))
	return r
}

func seedUserAndProduct(t *testing.T, db *gorm.DB) (models.User, models.Product) {
	user := models.User{Name: "Owner", Email: "owner@example.com", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)

	category := models.Category{CategoryName: string(models.CategoryCupcake), UserID: user.ID}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{Name: "Vanilla Cupcake", Price: 4.5, CategoryID: category.ID, UserID: user.ID}
	require.NoError(t, db.Create(&product).Error)
	return user, product
}

func doJSON(r *gin.Engine, method, url string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCartMissingProduct(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedUserAndProduct(t, db)
	router := setupRouter(db, user.ID, models.RoleUser)

	w := doJSON(router, "POST", "/cart", CreateCartInput{
		Quantity: 1, TotalPrice: 4.5, UserID: user.ID, ProductID: 9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCartOwnershipGate(t *testing.T) {
	db := setupTestDB(t)
	owner, product := seedUserAndProduct(t, db)

	intruder := models.User{Name: "Intruder", Email: "intruder@example.com", Role: models.RoleUser}
	require.NoError(t, db.Create(&intruder).Error)
	admin := models.User{Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	cart := models.Cart{Quantity: 2, TotalPrice: 9, UserID: owner.ID, ProductID: product.ID}
	require.NoError(t, db.Create(&cart).Error)
	url := fmt.Sprintf("/cart/%d", cart.ID)

	// another user is rejected with an envelope, not an error
	w := doJSON(setupRouter(db, intruder.ID, models.RoleUser), "GET", url, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied")

	// the owner and any admin both pass
	w = doJSON(setupRouter(db, owner.ID, models.RoleUser), "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(setupRouter(db, admin.ID, models.RoleAdmin), "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCartsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	owner, product := seedUserAndProduct(t, db)

	other := models.User{Name: "Other", Email: "other@example.com", Role: models.RoleUser}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, db.Create(&models.Cart{Quantity: 1, TotalPrice: 4.5, UserID: owner.ID, ProductID: product.ID}).Error)
	require.NoError(t, db.Create(&models.Cart{Quantity: 3, TotalPrice: 13.5, UserID: other.ID, ProductID: product.ID}).Error)

	w := doJSON(setupRouter(db, owner.ID, models.RoleUser), "GET", "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Data.Total)

	// admins see everything
	w = doJSON(setupRouter(db, other.ID, models.RoleAdmin), "GET", "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Data.Total)
}

func TestUpdateCartPartialPatch(t *testing.T) {
	db := setupTestDB(t)
	owner, product := seedUserAndProduct(t, db)
	router := setupRouter(db, owner.ID, models.RoleUser)

	cart := models.Cart{Quantity: 2, TotalPrice: 9, UserID: owner.ID, ProductID: product.ID}
	require.NoError(t, db.Create(&cart).Error)

	qty := 5.0
	w := doJSON(router, "PATCH", fmt.Sprintf("/cart/%d", cart.ID), UpdateCartInput{Quantity: &qty})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Cart
	require.NoError(t, db.First(&reloaded, cart.ID).Error)
	assert.Equal(t, 5.0, reloaded.Quantity)
	// untouched fields survive the patch
	assert.Equal(t, 9.0, reloaded.TotalPrice)
	assert.Equal(t, product.ID, reloaded.ProductID)
}

func TestDeleteCartTwice(t *testing.T) {
	db := setupTestDB(t)
	owner, product := seedUserAndProduct(t, db)
	router := setupRouter(db, owner.ID, models.RoleUser)

	cart := models.Cart{Quantity: 1, TotalPrice: 4.5, UserID: owner.ID, ProductID: product.ID}
	require.NoError(t, db.Create(&cart).Error)
	url := fmt.Sprintf("/cart/%d", cart.ID)

	w := doJSON(router, "DELETE", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "DELETE", url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Cart not found")
}
