package models

import "time"

type Testimonial struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string    `gorm:"type:text" json:"description"`
	PersonImage string    `gorm:"column:person_image;type:varchar(255)" json:"person_image,omitempty"`
	PersonName  string    `gorm:"column:person_name;type:varchar(100)" json:"person_name"`
	Review      int       `json:"review"`
	UserID      uint      `gorm:"column:user_id" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Testimonial) TableName() string { return "testimonial" }
