package common

import (
	"github.com/junaidrashid-git/bakery-api/models"
	"gorm.io/gorm"
)

// CanAccess is the single ownership rule shared by every owner-scoped
// resource: admins may touch any row, everyone else only their own.
func CanAccess(role models.Role, principalID, ownerID uint) bool {
	return role == models.RoleAdmin || principalID == ownerID
}

// OwnerScoped narrows a listing to the principal's rows unless the
// principal is an admin. Absent rows simply do not appear; listing never
// responds with a deny.
func OwnerScoped(query *gorm.DB, role models.Role, principalID uint) *gorm.DB {
	if role != models.RoleAdmin {
		return query.Where("user_id = ?", principalID)
	}
	return query
}
