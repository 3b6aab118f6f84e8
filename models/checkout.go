package models

import "time"

type Checkout struct {
	ID              uint      `gorm:"column:checkout_id;primaryKey;autoIncrement" json:"id"`
	ShippingAddress string    `gorm:"column:shipping_address;type:varchar(255)" json:"shippingAddress"`
	PaymentMethod   string    `gorm:"column:payment_method;type:varchar(50)" json:"paymentMethod"`
	CardDetails     string    `gorm:"column:card_details;type:varchar(100)" json:"cardDetails,omitempty"`
	OfferCode       string    `gorm:"column:offer_code;type:varchar(50)" json:"offerCode,omitempty"`
	UserID          uint      `gorm:"column:user_id" json:"user_id"`
	User            *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CartID          uint      `gorm:"column:cart_id" json:"cart_id"`
	Cart            *Cart     `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Checkout) TableName() string { return "checkout" }
