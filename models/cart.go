package models

import "time"

type Cart struct {
	ID         uint      `gorm:"column:cart_id;primaryKey;autoIncrement" json:"id"`
	Quantity   float64   `gorm:"type:decimal(10,2)" json:"quantity"`
	TotalPrice float64   `gorm:"column:total_price;type:decimal(10,2)" json:"total_price"`
	UserID     uint      `gorm:"column:user_id" json:"user_id"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProductID  uint      `gorm:"column:product_id" json:"product_id"`
	Product    *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Cart) TableName() string { return "cart" }
