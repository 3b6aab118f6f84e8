package contactControllers

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

type CreateContactInput struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,e164"`
	Subject   string `json:"subject" binding:"required,max=255"`
	Message   string `json:"message" binding:"required"`
}

type UpdateContactInput struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,e164"`
	Subject   *string `json:"subject" binding:"omitempty,max=255"`
	Message   *string `json:"message"`
}

var listSpec = common.ListSpec{
	SortColumns:   []string{"id", "first_name", "last_name", "email", "created_at", "updated_at"},
	DefaultSort:   "id",
	DefaultOrder:  "ASC",
	SearchColumns: []string{"first_name", "last_name", "email"},
}

// POST /contact
func CreateContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.Principal(c)

		var input CreateContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		contact := models.Contact{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Phone:     input.Phone,
			Subject:   input.Subject,
			Message:   input.Message,
			UserID:    userID,
		}
		if err := db.Create(&contact).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Contact not created", err.Error())
			return
		}

		common.Respond(c, http.StatusCreated, "Contact created successfully", contact)
	}
}

// GET /contact
func GetContacts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := common.ParseListParams(c, listSpec)

		query := db.Model(&models.Contact{}).Preload("User")

		contacts := []models.Contact{}
		result, err := common.Paginate(query, listSpec, params, &contacts)
		if err != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch contacts", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Contacts fetched successfully", gin.H{
			"data":       contacts,
			"total":      result.Total,
			"page":       result.Page,
			"limit":      result.Limit,
			"totalPages": result.TotalPages,
		})
	}
}

// GET /contact/:id
func GetContactByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var contact models.Contact
		if err := db.Preload("User").First(&contact, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Contact not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Failed to fetch contact", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Contact fetched successfully", contact)
	}
}

// PATCH /contact/:id
func UpdateContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var input UpdateContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var contact models.Contact
		if err := db.First(&contact, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				common.Respond(c, http.StatusNotFound, "Contact not found")
				return
			}
			common.Respond(c, http.StatusInternalServerError, "Contact not updated", err.Error())
			return
		}

		if input.FirstName != nil {
			contact.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			contact.LastName = *input.LastName
		}
		if input.Email != nil {
			contact.Email = *input.Email
		}
		if input.Phone != nil {
			contact.Phone = *input.Phone
		}
		if input.Subject != nil {
			contact.Subject = *input.Subject
		}
		if input.Message != nil {
			contact.Message = *input.Message
		}

		if err := db.Omit(clause.Associations).Save(&contact).Error; err != nil {
			common.Respond(c, http.StatusInternalServerError, "Contact not updated", err.Error())
			return
		}

		common.Respond(c, http.StatusOK, "Contact updated successfully", contact)
	}
}

// DELETE /contact/:id
func DeleteContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		result := db.Delete(&models.Contact{}, id)
		if result.Error != nil {
			common.Respond(c, http.StatusInternalServerError, "Failed to delete contact", result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			common.Respond(c, http.StatusNotFound, "Contact not found or already deleted")
			return
		}

		common.Respond(c, http.StatusOK, "Contact deleted successfully")
	}
}
