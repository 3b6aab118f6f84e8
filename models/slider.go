package models

import "time"

type Slider struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(255)" json:"imageUrl"`
	Title       string    `gorm:"type:varchar(100)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	UserID      uint      `gorm:"column:user_id" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Slider) TableName() string { return "slider" }
