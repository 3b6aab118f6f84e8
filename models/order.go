package models

import "time"

type Order struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CheckoutID  uint      `gorm:"column:checkout_id" json:"checkout_id"`
	Checkout    *Checkout `gorm:"foreignKey:CheckoutID" json:"checkout,omitempty"`
	UserID      uint      `gorm:"column:user_id" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Subtotal    float64   `gorm:"type:decimal(10,2)" json:"subtotal"`
	Discount    float64   `gorm:"type:decimal(10,2);default:0" json:"discount"`
	DeliveryFee float64   `gorm:"column:delivery_fee;type:decimal(10,2);default:0" json:"delivery_fee"`
	TotalAmount float64   `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }
