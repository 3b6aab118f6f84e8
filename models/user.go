package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole maps an arbitrary role string to a known role. Anything
// unrecognized becomes a regular user.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

type User struct {
	ID          uint       `gorm:"column:user_id;primaryKey;autoIncrement" json:"id"`
	Name        string     `json:"name"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth;type:date" json:"date_of_birth,omitempty"`
	Email       string     `gorm:"unique;not null" json:"email"`
	Password    string     `json:"-"`
	Role        Role       `gorm:"type:varchar(20);default:'user'" json:"role"`
	Picture     string     `json:"picture,omitempty"`
	Provider    string     `gorm:"default:'local'" json:"provider"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "user" }
