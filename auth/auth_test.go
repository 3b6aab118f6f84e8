package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/bakery-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:authtest?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	require.NoError(t, db.Exec(`DELETE FROM user`).Error)
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", Register(db))
	r.POST("/auth/login", Login(db))
	return r
}

func postJSON(r *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	router := setupRouter(db)

	reg := RegisterInput{
		Name:        "Test Baker",
		DateOfBirth: "1990-04-12",
		Email:       "baker@example.com",
		Password:    "testpass",
		Role:        "user",
	}
	w := postJSON(router, "/auth/register", reg)
	assert.Equal(t, http.StatusCreated, w.Code)

	// password hash never leaves the server
	assert.NotContains(t, w.Body.String(), "testpass")
	assert.NotContains(t, w.Body.String(), "password")

	w = postJSON(router, "/auth/login", LoginInput{Email: "baker@example.com", Password: "testpass"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
	assert.Equal(t, "Login successful", resp["message"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	router := setupRouter(db)

	reg := RegisterInput{
		Name:        "Test Baker",
		DateOfBirth: "1990-04-12",
		Email:       "dup@example.com",
		Password:    "testpass",
		Role:        "user",
	}
	w := postJSON(router, "/auth/register", reg)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/auth/register", reg)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Duplicate entry is not allowed")
}

func TestLoginFailures(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	router := setupRouter(db)

	w := postJSON(router, "/auth/login", LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")

	reg := RegisterInput{
		Name:        "Test Baker",
		DateOfBirth: "1990-04-12",
		Email:       "baker2@example.com",
		Password:    "rightpass",
		Role:        "user",
	}
	w = postJSON(router, "/auth/register", reg)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/auth/login", LoginInput{Email: "baker2@example.com", Password: "wrongpass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestRegisterUnknownRoleBecomesUser(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	router := setupRouter(db)

	reg := RegisterInput{
		Name:        "Role Probe",
		DateOfBirth: "1985-01-01",
		Email:       "probe@example.com",
		Password:    "testpass",
		Role:        "superadmin",
	}
	w := postJSON(router, "/auth/register", reg)
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "probe@example.com").First(&user).Error)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestRegisterConcurrentDuplicate(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	router := setupRouter(db)

	// slip a conflicting row in after the handler's duplicate lookup but
	// before its insert, reproducing two registrations racing for one email
	var seeded bool
	var seedErr error
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("seed_conflict", func(tx *gorm.DB) {
		if seeded {
			return
		}
		seeded = true
		seedErr = tx.Session(&gorm.Session{NewDB: true}).Exec(
			`INSERT INTO user (name, email, password, role, provider) VALUES (?, ?, ?, ?, ?)`,
			"First Racer", "race@example.com", "x", "user", "local",
		).Error
	}))
	defer db.Callback().Create().Remove("seed_conflict")

	reg := RegisterInput{
		Name:        "Second Racer",
		DateOfBirth: "1992-06-01",
		Email:       "race@example.com",
		Password:    "testpass",
		Role:        "user",
	}
	w := postJSON(router, "/auth/register", reg)
	require.NoError(t, seedErr)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Duplicate entry is not allowed")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "race@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertGoogleUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := UpsertGoogleUser(db, "g@example.com", "Google Person", "https://img.example.com/p.png")
	require.NoError(t, err)
	assert.Equal(t, "google", user.Provider)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Empty(t, user.Password)

	// a second callback for the same email reuses the row
	again, err := UpsertGoogleUser(db, "g@example.com", "Renamed", "")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "g@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
