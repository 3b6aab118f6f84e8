package models

import "time"

type Product struct {
	ID          uint      `gorm:"column:product_id;primaryKey;autoIncrement" json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Price       float64   `gorm:"type:decimal(10,2)" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	Weight      float64   `gorm:"type:decimal(10,2)" json:"weight"`
	Quantity    int       `gorm:"default:0" json:"quantity"`
	CategoryID  uint      `gorm:"column:category_id" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	UserID      uint      `gorm:"column:user_id" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string { return "product" }
