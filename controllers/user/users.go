package userControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/bakery-api/common"
	"github.com/junaidrashid-git/bakery-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UpdateUserInput struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	DateOfBirth *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin user"`
}

var listSpec = common.ListSpec{
	SortColumns:   []string{"user_id", "name", "email", "created_at", "updated_at"},
	DefaultSort:   "user_id",
	DefaultOrder:  "ASC",
	SearchColumns: []string{"name", "email"},
}

// GET /user
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := common.ParseListParams(c, listSpec)

		query := db.Model(&models.User{})

		users := []models.User{}
		result, err := common.Paginate(query, listSpec, params, &users)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch users", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Users fetched successfully", gin.H{
			"data":       users,
			"total":      result.Total,
			"page":       result.Page,
			"limit":      result.Limit,
			"totalPages": result.TotalPages,
		})
	}
}

// GET /user/:id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "User not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch user", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "User fetched successfully", user)
	}
}

// PATCH /user/:id
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "User not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "User not updated", err.Error())
			return
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.DateOfBirth != nil {
			dob, err := time.Parse("2006-01-02", *input.DateOfBirth)
			if err != nil {
				common.Respond(c, http.StatusBadRequest, "Invalid date of birth")
				return
			}
			user.DateOfBirth = &dob
		}
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
			if err != nil {
				common.Respond(c, http.StatusInternalServerError, "User not updated", err.Error())
				return
			}
			user.Password = string(hash)
		}
		if input.Role != nil {
			user.Role = models.ParseRole(*input.Role)
		}

		if err := db.Omit(clause.Associations).Save(&user).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "User not updated", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "User updated successfully", user)
	}
}

// DELETE /user/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		result := db.Delete(&models.User{}, id)
		if result.Error != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to delete user", result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			common.Respond(c, http.StatusNotFound, "User not found or already deleted")
			return
		}

		common.Respond(c, http.StatusOK, "User deleted successfully")
	}
}
