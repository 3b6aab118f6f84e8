package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/junaidrashid-git/bakery-api/common"
	"github.com/junaidrashid-git/bakery-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name        string `json:"name" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// IssueToken signs a bearer token carrying the principal claims.
func IssueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			common.Respond(c, http.StatusBadRequest, "Duplicate entry is not allowed")
			return
		} else if err != gorm.ErrRecordNotFound {
			common.Respond(c, http.StatusInternalServerError, "Failed to create user", err.Error())
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to create user", err.Error())
			return
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hash),
			Role:     models.ParseRole(input.Role),
			Provider: "local",
		}
		if dob, err := time.Parse("2006-01-02", input.DateOfBirth); err == nil {
			user.DateOfBirth = &dob
		}

		if err := db.Create(&user).Error; err != nil {
			// a concurrent registration can slip past the lookup above and
			// land on the unique index instead
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				common.Respond(c, http.StatusBadRequest, "Duplicate entry is not allowed")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to create user", err.Error())
			return
		}

		common.Respond(c, http.StatusCreated, "User created successfully", user)
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			common.Respond(c, http.StatusNotFound, "User not found")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			common.Respond(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := IssueToken(user)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Login failed", err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}
